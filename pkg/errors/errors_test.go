package errors

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestNewFormatsCodeAndMessage(t *testing.T) {
	err := New(ErrCodeInvalidInput, "line %d: bad ship id %q", 4, "x")

	if err.Code != ErrCodeInvalidInput {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidInput)
	}
	if want := `INVALID_INPUT: line 4: bad ship id "x"`; err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if UserMessage(err) != `line 4: bad ship id "x"` {
		t.Errorf("UserMessage() = %q", UserMessage(err))
	}
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("disk full")
	err := Wrap(ErrCodeStorage, cause, "save run %s", "r1")

	if errors.Unwrap(err) != cause {
		t.Errorf("Unwrap() = %v, want %v", errors.Unwrap(err), cause)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
	if want := "STORAGE_ERROR: save run r1: disk full"; err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestIsAndGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code Code
	}{
		{"coded", New(ErrCodeNotFound, "line 9"), ErrCodeNotFound},
		{"outermost code wins", Wrap(ErrCodeTimeout, New(ErrCodeInvalidInput, "inner"), "outer"), ErrCodeTimeout},
		{"behind fmt wrap", fmt.Errorf("check: %w", New(ErrCodeInvalidFormat, "xml")), ErrCodeInvalidFormat},
		{"plain", errors.New("plain"), ""},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.code {
				t.Errorf("GetCode() = %q, want %q", got, tt.code)
			}
			if tt.code != "" && !Is(tt.err, tt.code) {
				t.Errorf("Is(%q) = false", tt.code)
			}
			if Is(tt.err, ErrCodeInternal) {
				t.Error("Is(INTERNAL_ERROR) = true")
			}
		})
	}
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Code
	}{
		{"coded", New(ErrCodeInvalidInput, "x"), ErrCodeInvalidInput},
		{"plain is internal", errors.New("boom"), ErrCodeInternal},
		{"deadline", fmt.Errorf("solve: %w", context.DeadlineExceeded), ErrCodeTimeout},
		{"deadline under another code", Wrap(ErrCodeStorage, context.DeadlineExceeded, "save"), ErrCodeTimeout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CodeOf(tt.err); got != tt.want {
				t.Errorf("CodeOf() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFromContext(t *testing.T) {
	if err := FromContext(context.DeadlineExceeded, "case %d", 3); err.Code != ErrCodeTimeout {
		t.Errorf("deadline: Code = %q, want TIMEOUT", err.Code)
	}
	err := FromContext(context.Canceled, "case %d", 3)
	if err.Code != ErrCodeInternal {
		t.Errorf("canceled: Code = %q, want INTERNAL_ERROR", err.Code)
	}
	if !errors.Is(err, context.Canceled) {
		t.Error("cause lost")
	}
}
