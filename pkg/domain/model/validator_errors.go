package model

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for form validation
var (
	ErrMissingRequired   = goerr.New("required field not provided")
	ErrInvalidFieldValue = goerr.New("field value has wrong type")
	ErrValueOutOfRange   = goerr.New("numeric value out of range")
	ErrUnknownOption     = goerr.New("value is not one of the field's options")
	ErrInvalidURL        = goerr.New("value is not a valid URL")
	ErrInvalidDate       = goerr.New("value is not a valid ISO date")
)

// Context keys for error values
const (
	FieldKeyKey     = "field_key"
	FieldTypeKey    = "field_type"
	ExpectedTypeKey = "expected_type"
	ActualTypeKey   = "actual_type"
	ValueKey        = "value"
)
