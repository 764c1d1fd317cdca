package quotes

import "errors"

// Sentinel errors for the quote service. Handlers translate these to HTTP
// statuses in exactly one place; nothing below the handler layer knows
// about transport codes.
var (
	// ErrValidation indicates a request field failed a business rule.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidScope indicates an unrecognized scope parameter.
	ErrInvalidScope = errors.New("invalid scope parameter")

	// ErrAuthRequired indicates the operation needs a signed-in caller.
	ErrAuthRequired = errors.New("authentication required")

	// ErrForbidden indicates the quote exists but the caller does not own it.
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound indicates the quote does not exist.
	ErrNotFound = errors.New("quote not found")
)

// ValidationError wraps ErrValidation with the offending field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return "validation failed for " + e.Field + ": " + e.Message
}

// Unwrap returns the sentinel so errors.Is(err, ErrValidation) holds.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func newValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
