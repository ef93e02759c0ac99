package rules

import "errors"

// Sentinel kinds. Use errors.Is against these; the concrete error is a
// *ValidationError carrying the text shown in the alert.
var (
	ErrEmptyName    = errors.New("empty name")
	ErrInvalidPrice = errors.New("invalid price")
	ErrEmptyList    = errors.New("empty list")
)

const alertTitle = "Validation Error"

// ValidationError is a recoverable user-input failure. It is surfaced as a
// blocking alert and never changes list state.
type ValidationError struct {
	Kind    error
	Title   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Title + ": " + e.Message
}

func (e *ValidationError) Unwrap() error { return e.Kind }

func newValidationError(kind error, msg string) *ValidationError {
	return &ValidationError{Kind: kind, Title: alertTitle, Message: msg}
}

// EmptyList is returned when an empty list is finalized.
func EmptyList() error {
	return newValidationError(ErrEmptyList, "Please add at least one food item.")
}

// AsValidation extracts the alert payload from err, if any.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
