package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInputErrorMessage(t *testing.T) {
	err := NewInputError(ErrorTypeInvalidKey, "q")
	assert.Equal(t, "you entered q, this is not valid", err.Error())

	err.Message = "not a number, try again"
	assert.Equal(t, "not a number, try again", err.Error())
}

func TestIsInputError(t *testing.T) {
	assert.True(t, IsInputError(NewInputError(ErrorTypeOutOfRange, "9")))
	assert.True(t, IsInputError(fmt.Errorf("reading score: %w", NewInputError(ErrorTypeNotANumber, "x"))))
	assert.False(t, IsInputError(NewInputError(ErrorTypeUnknown, "?")))
	assert.False(t, IsInputError(ErrQuit))
	assert.False(t, IsInputError(errors.New("disk full")))
	assert.False(t, IsInputError(nil))
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, IsRetryable(ErrorTypeNotANumber))
	assert.True(t, IsRetryable(ErrorTypeInvalidKey))
	assert.True(t, IsRetryable(ErrorTypeOutOfRange))
	assert.False(t, IsRetryable(ErrorTypeUnknown))
}
