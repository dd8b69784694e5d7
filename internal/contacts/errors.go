package contacts

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned (wrapped) when a contact or phone lookup misses.
var ErrNotFound = errors.New("not found")

// ValidationError reports input that failed a format check.
// Its message is meant to be shown to the user as-is.
type ValidationError struct {
	Field string // phone, birthday, args
	Msg   string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// Invalid builds a ValidationError for field.
func Invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Msg: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
