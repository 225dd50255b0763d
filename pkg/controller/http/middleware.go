package http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/tom-tochito/procomply/pkg/domain/model"
	"github.com/tom-tochito/procomply/pkg/domain/types"
)

type contextKey string

const tenantContextKey contextKey = "tenant"

// tenantCtx resolves the {tenantID} path parameter, validating the ID
// shape and, when a registry is configured, that the tenant is declared.
// Every handler below this middleware can assume a known tenant.
func tenantCtx(registry *model.TenantRegistry) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tenantID := types.TenantID(chi.URLParam(r, "tenantID"))
			if err := tenantID.Validate(); err != nil {
				http.Error(w, "invalid tenant ID", http.StatusBadRequest)
				return
			}

			if registry != nil {
				if _, err := registry.Get(tenantID); err != nil {
					http.Error(w, "unknown tenant", http.StatusNotFound)
					return
				}
			}

			ctx := context.WithValue(r.Context(), tenantContextKey, tenantID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// tenantFromContext returns the tenant ID that tenantCtx stored
func tenantFromContext(ctx context.Context) types.TenantID {
	tenantID, _ := ctx.Value(tenantContextKey).(types.TenantID)
	return tenantID
}
