package usecase

import (
	"errors"

	"github.com/m-mizutani/goerr/v2"
	"github.com/tom-tochito/procomply/pkg/domain/interfaces"
	"github.com/tom-tochito/procomply/pkg/domain/model"
)

// Sentinel errors for the use case layer
var (
	ErrStorageNotConfigured = goerr.New("object storage is not configured")
	ErrUploadFailed         = goerr.New("failed to store uploaded file")
)

// Context keys for error values
const (
	TemplateIDKey = "template_id"
	BuildingIDKey = "building_id"
	TaskIDKey     = "task_id"
	DocumentIDKey = "document_id"
)

// IsValidation reports whether err is a user-correctable validation
// failure, as opposed to an infrastructure fault. Controllers use this to
// choose a 400 over a 500.
func IsValidation(err error) bool {
	for _, sentinel := range []error{
		model.ErrTemplateNameRequired,
		model.ErrTemplateFieldsEmpty,
		model.ErrFieldKeyEmpty,
		model.ErrFieldTypeInvalid,
		model.ErrFieldOptionsRequired,
		model.ErrFieldBoundsInverted,
		model.ErrEntityTypeInvalid,
		model.ErrMissingRequired,
		model.ErrInvalidFieldValue,
		model.ErrValueOutOfRange,
		model.ErrUnknownOption,
		model.ErrInvalidURL,
		model.ErrInvalidDate,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

// IsNotFound reports whether err stems from a missing record
func IsNotFound(err error) bool {
	return errors.Is(err, interfaces.ErrNotFound) || errors.Is(err, model.ErrTenantNotFound)
}

// IsConflict reports whether err is a refusal to act on referenced data
func IsConflict(err error) bool {
	return errors.Is(err, interfaces.ErrTemplateInUse)
}
