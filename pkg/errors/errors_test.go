package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidCount, "vertex count must be positive, got %d", -3)

	if err.Code != ErrCodeInvalidCount {
		t.Errorf("Code = %q, want %q", err.Code, ErrCodeInvalidCount)
	}
	if !strings.Contains(err.Error(), "INVALID_COUNT") {
		t.Errorf("Error() = %q, want code prefix", err.Error())
	}
	if !strings.Contains(err.Error(), "-3") {
		t.Errorf("Error() = %q, want formatted args", err.Error())
	}
}

func TestWrap(t *testing.T) {
	cause := stderrors.New("boom")
	err := Wrap(ErrCodeInternal, cause, "coloring failed")

	if !stderrors.Is(err, cause) {
		t.Error("wrapped error should match cause via errors.Is")
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Errorf("Error() = %q, want cause message", err.Error())
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeInvalidStrategy, "unknown strategy")

	if !Is(err, ErrCodeInvalidStrategy) {
		t.Error("Is() should match the error's own code")
	}
	if Is(err, ErrCodeInvalidMode) {
		t.Error("Is() should not match a different code")
	}
	if Is(stderrors.New("plain"), ErrCodeInvalidStrategy) {
		t.Error("Is() should not match a plain error")
	}

	// Code survives wrapping with fmt.Errorf
	wrapped := fmt.Errorf("run: %w", err)
	if !Is(wrapped, ErrCodeInvalidStrategy) {
		t.Error("Is() should unwrap fmt.Errorf chains")
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeNotFound, "missing")); got != ErrCodeNotFound {
		t.Errorf("GetCode() = %q, want %q", got, ErrCodeNotFound)
	}
	if got := GetCode(stderrors.New("plain")); got != "" {
		t.Errorf("GetCode() = %q, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeInvalidKind, "unknown graph kind: %q", "torus")
	if got := UserMessage(err); strings.Contains(got, "INVALID_KIND") {
		t.Errorf("UserMessage() = %q, should not contain the code", got)
	}

	plain := stderrors.New("plain failure")
	if got := UserMessage(plain); got != "plain failure" {
		t.Errorf("UserMessage() = %q, want %q", got, "plain failure")
	}
}
