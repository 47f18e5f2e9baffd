package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "error without cause",
			err:      &Error{Code: ErrCodeNotFound, Message: "product 7"},
			expected: "[NOT_FOUND] product 7",
		},
		{
			name:     "error with cause",
			err:      Wrap(ErrCodeIO, "failed to write db.json", errors.New("no space left on device")),
			expected: "[IO_ERROR] failed to write db.json: no space left on device",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeInternal, "wrapper", cause)

	if unwrapped := err.Unwrap(); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}
}

func TestError_Is(t *testing.T) {
	err1 := &Error{Code: ErrCodeCorruptData, Message: "test error"}
	err2 := &Error{Code: ErrCodeCorruptData, Message: "another error"}
	err3 := &Error{Code: ErrCodeIO, Message: "io error"}

	if !err1.Is(err2) {
		t.Errorf("Expected errors with same code to match")
	}

	if err1.Is(err3) {
		t.Errorf("Expected errors with different codes to not match")
	}
}

func TestCodeOf(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", NewCorruptDataError("bad json", errors.New("unexpected EOF")))

	if got := CodeOf(wrapped); got != ErrCodeCorruptData {
		t.Errorf("CodeOf() = %v, want %v", got, ErrCodeCorruptData)
	}
	if got := CodeOf(errors.New("plain")); got != ErrCodeInternal {
		t.Errorf("CodeOf(plain) = %v, want %v", got, ErrCodeInternal)
	}
}

func TestHasCode(t *testing.T) {
	err := fmt.Errorf("create: %w", NewBadRequestError("nome is required", nil))

	if !HasCode(err, ErrCodeBadRequest) {
		t.Errorf("Expected HasCode to find BAD_REQUEST in chain")
	}
	if HasCode(err, ErrCodeNotFound) {
		t.Errorf("Expected HasCode to reject NOT_FOUND")
	}
}

func TestNewIOError(t *testing.T) {
	cause := errors.New("permission denied")
	err := NewIOError("failed to save products", cause)

	if err.Code != ErrCodeIO {
		t.Errorf("Expected code %v, got %v", ErrCodeIO, err.Code)
	}

	if err.Message != "failed to save products" {
		t.Errorf("Expected message 'failed to save products', got %v", err.Message)
	}

	if !errors.Is(err, cause) {
		t.Errorf("Expected cause to be preserved")
	}
}
