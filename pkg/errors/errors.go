package errors

import (
	"errors"
	"fmt"
)

// ErrorType represents the kinds of console input that can be rejected
type ErrorType string

const (
	ErrorTypeNotANumber ErrorType = "not_a_number"
	ErrorTypeInvalidKey ErrorType = "invalid_key"
	ErrorTypeOutOfRange ErrorType = "out_of_range"
	ErrorTypeUnknown    ErrorType = "unknown"
)

// InputError reports console input that failed validation. The caller is
// expected to prompt again.
type InputError struct {
	Type    ErrorType
	Input   string
	Message string
}

func (e *InputError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("you entered %s, this is not valid", e.Input)
}

func NewInputError(t ErrorType, input string) *InputError {
	return &InputError{Type: t, Input: input}
}

// ErrQuit signals the annotator asked to end the session.
var ErrQuit = errors.New("annotation session quit")

// IsRetryable checks if an error type should be re-prompted
func IsRetryable(errorType ErrorType) bool {
	switch errorType {
	case ErrorTypeNotANumber, ErrorTypeInvalidKey, ErrorTypeOutOfRange:
		return true
	default:
		return false
	}
}

// IsInputError reports whether err wraps a retryable InputError
func IsInputError(err error) bool {
	var inErr *InputError
	if errors.As(err, &inErr) {
		return IsRetryable(inErr.Type)
	}
	return false
}
