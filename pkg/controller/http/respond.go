package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/tom-tochito/procomply/pkg/usecase"
	"github.com/tom-tochito/procomply/pkg/utils/errutil"
	"github.com/tom-tochito/procomply/pkg/utils/safe"
)

func respondJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "failed to marshal response"), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	safe.Write(ctx, w, data)
}

// handleError maps use case failures onto HTTP statuses: validation
// failures are the client's to fix, missing records are 404, in-use
// refusals 409, upload faults 502, everything else 500.
func handleError(ctx context.Context, w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case usecase.IsValidation(err):
		status = http.StatusBadRequest
	case usecase.IsNotFound(err):
		status = http.StatusNotFound
	case usecase.IsConflict(err):
		status = http.StatusConflict
	case errors.Is(err, usecase.ErrUploadFailed):
		status = http.StatusBadGateway
	case errors.Is(err, usecase.ErrStorageNotConfigured):
		status = http.StatusNotImplemented
	}
	errutil.HandleHTTP(ctx, w, err, status)
}

func decodeJSON(r *http.Request, into any) error {
	if err := json.NewDecoder(r.Body).Decode(into); err != nil {
		return goerr.Wrap(err, "failed to decode request body")
	}
	return nil
}
