package retry

import (
	"context"
	"errors"
	"io"
	"testing"

	errs "imgannotate/pkg/errors"
)

func TestRetryUntilValidInput(t *testing.T) {
	attempts := 0
	op := func() error {
		attempts++
		if attempts < 50 {
			return errs.NewInputError(errs.ErrorTypeNotANumber, "abc")
		}
		return nil
	}

	var retried []int
	cfg := &Config{
		RetryIf: DefaultRetryIf,
		OnRetry: func(attempt int, err error) { retried = append(retried, attempt) },
	}

	if err := Do(op, cfg); err != nil {
		t.Errorf("Expected success after retries, got error: %v", err)
	}
	if attempts != 50 {
		t.Errorf("Expected 50 attempts, got %d", attempts)
	}
	if len(retried) != 49 {
		t.Errorf("Expected 49 OnRetry calls, got %d", len(retried))
	}
}

func TestRetryWithMaxAttemptsExceeded(t *testing.T) {
	attempts := 0
	op := func() error {
		attempts++
		return errs.NewInputError(errs.ErrorTypeInvalidKey, "z")
	}

	err := Do(op, &Config{MaxAttempts: 3})
	if err == nil {
		t.Error("Expected error when max attempts exceeded")
	}
	if attempts != 3 {
		t.Errorf("Expected 3 attempts, got %d", attempts)
	}
}

func TestRetryWithNonRetryableError(t *testing.T) {
	attempts := 0
	op := func() error {
		attempts++
		return io.EOF
	}

	err := Do(op, &Config{RetryIf: DefaultRetryIf})
	if !errors.Is(err, io.EOF) {
		t.Errorf("Expected io.EOF, got: %v", err)
	}
	if attempts != 1 {
		t.Errorf("Expected 1 attempt, got %d", attempts)
	}
}

func TestRetryWithContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	attempts := 0

	op := func() error {
		attempts++
		if attempts == 2 {
			cancel()
		}
		return errs.NewInputError(errs.ErrorTypeOutOfRange, "9")
	}

	err := Do(op, &Config{Context: ctx})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
	if attempts != 2 {
		t.Errorf("Expected 2 attempts before cancellation, got %d", attempts)
	}
}

func TestDoWithResult(t *testing.T) {
	attempts := 0
	op := func() (int, error) {
		attempts++
		if attempts < 2 {
			return 0, errs.NewInputError(errs.ErrorTypeNotANumber, "x")
		}
		return 42, nil
	}

	result, err := DoWithResult(op, &Config{})
	if err != nil {
		t.Errorf("Expected success, got error: %v", err)
	}
	if result != 42 {
		t.Errorf("Expected 42, got %d", result)
	}
	if attempts != 2 {
		t.Errorf("Expected 2 attempts, got %d", attempts)
	}
}

func TestDefaultRetryIf(t *testing.T) {
	if DefaultRetryIf(nil) {
		t.Error("nil error should not be retried")
	}
	if DefaultRetryIf(errors.New("disk full")) {
		t.Error("plain errors should not be retried")
	}
	if !DefaultRetryIf(errs.NewInputError(errs.ErrorTypeInvalidKey, "q")) {
		t.Error("input errors should be retried")
	}
	if DefaultRetryIf(&errs.InputError{Type: errs.ErrorTypeUnknown}) {
		t.Error("unknown input errors should not be retried")
	}
}
