package fluent

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the sentinel for arguments rejected before a comparison runs.
var ErrInvalidArgument = errors.New("invalid argument")

// InvalidArgumentError reports a missing or unusable assertion argument.
type InvalidArgumentError struct {
	// Parameter names the offending argument, e.g. "expected".
	Parameter string
	Message   string
	Cause     error
}

// NewInvalidArgument creates an InvalidArgumentError for parameter.
func NewInvalidArgument(parameter, message string) *InvalidArgumentError {
	return &InvalidArgumentError{Parameter: parameter, Message: message}
}

// NilArgument reports that the named value to compare actual with is nil.
func NilArgument(parameter, typeName string) *InvalidArgumentError {
	return NewInvalidArgument(parameter, fmt.Sprintf("The %s to compare actual with should not be nil", typeName))
}

// EmptyStringArgument reports that the string form of typeName is empty.
func EmptyStringArgument(parameter, typeName string) *InvalidArgumentError {
	return NewInvalidArgument(parameter,
		fmt.Sprintf("The String representing the %s to compare actual with should not be empty", typeName))
}

// WithCause attaches the underlying error, e.g. a parse failure.
func (e *InvalidArgumentError) WithCause(cause error) *InvalidArgumentError {
	if e == nil {
		return nil
	}

	clone := *e
	clone.Cause = cause

	return &clone
}

// Error returns the descriptive message.
func (e *InvalidArgumentError) Error() string {
	if e == nil {
		return ErrInvalidArgument.Error()
	}

	if e.Cause == nil {
		return e.Message
	}

	return e.Message + ": " + e.Cause.Error()
}

// Unwrap exposes both the sentinel and the cause to errors.Is/As.
func (e *InvalidArgumentError) Unwrap() []error {
	if e == nil || e.Cause == nil {
		return []error{ErrInvalidArgument}
	}

	return []error{ErrInvalidArgument, e.Cause}
}
