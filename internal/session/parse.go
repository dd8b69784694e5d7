package session

import (
	"errors"
	"fmt"
	"strings"

	"addressbook/internal/contacts"
)

// ParseInput splits a line on whitespace. The command is lower-cased;
// arguments keep their case. A blank line yields an empty command.
func ParseInput(line string) (string, []string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	return strings.ToLower(fields[0]), fields[1:]
}

// lookupError is a miss that is reported to the user as plain text.
type lookupError struct {
	msg string
}

func (e *lookupError) Error() string { return e.msg }
func (e *lookupError) Unwrap() error { return contacts.ErrNotFound }

func noContact(name string) error {
	return &lookupError{msg: fmt.Sprintf("No contact with the name %s found.", name)}
}

// missingArgs reports a command called with too few arguments.
func missingArgs(msg string) error {
	return &contacts.ValidationError{Field: "args", Msg: msg}
}

// errorKind labels a failed command for logging and styling. The empty
// kind means the command succeeded.
type errorKind string

const (
	kindNone       errorKind = ""
	kindUnknown    errorKind = "unknown"
	kindValidation errorKind = "validation"
	kindLookup     errorKind = "lookup"
	kindUnexpected errorKind = "unexpected"
)

// formatError turns a handler error into the reply shown to the user.
func formatError(err error) (string, errorKind) {
	var ve *contacts.ValidationError
	var le *lookupError
	switch {
	case errors.As(err, &ve):
		return ve.Msg, kindValidation
	case errors.As(err, &le):
		return le.msg, kindLookup
	case errors.Is(err, contacts.ErrNotFound):
		return "No such contact in your list.", kindLookup
	}
	return "Error: " + err.Error(), kindUnexpected
}
