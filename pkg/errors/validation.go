package errors

import "errors"

// ValidationError reports invalid input supplied by a caller or user,
// such as a malformed compression option string or an out-of-range
// configuration value. It is always recoverable: the caller decides
// whether to fall back to defaults, abort, or report upstream.
type ValidationError struct {
	Value any    `json:"value"` // The value that failed validation.
	Field string `json:"field"` // Name of the field or option that failed.
	Err   error  `json:"error"` // Details about the validation failure.
}

// NewValidationError creates a new ValidationError instance.
func NewValidationError(field string, value any, err error) *ValidationError {
	return &ValidationError{
		Err:   err,
		Field: field,
		Value: value,
	}
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return "validation error"
}

// Unwrap exposes the underlying error for errors.Is / errors.As chains.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// IsValidationError checks if a given error is of type ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// AsValidationError attempts to extract a ValidationError from a given error.
func AsValidationError(err error) *ValidationError {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve
	}
	return nil
}
