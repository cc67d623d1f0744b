package extcheck

import (
	"errors"
	"fmt"
	"testing"
)

func TestExitCodeForError_Nil(t *testing.T) {
	if code := ExitCodeForError(nil); code != ExitSuccess {
		t.Errorf("Expected ExitSuccess for nil error, got %d", code)
	}
}

func TestExitCodeForError_ValidationError(t *testing.T) {
	err := &ValidationError{Count: 5}
	if code := ExitCodeForError(err); code != 5 {
		t.Errorf("Expected exit code 5 (failure count), got %d", code)
	}
}

func TestExitCodeForError_WrappedValidationError(t *testing.T) {
	err := fmt.Errorf("run failed: %w", &ValidationError{Count: 2})
	if code := ExitCodeForError(err); code != 2 {
		t.Errorf("Expected exit code 2 through wrapping, got %d", code)
	}
}

func TestExitCodeForError_ZeroCountValidationError(t *testing.T) {
	// A zero-count validation error should never be constructed, but if it
	// is, it must still signal failure.
	err := &ValidationError{Count: 0}
	if code := ExitCodeForError(err); code != ExitGeneralError {
		t.Errorf("Expected ExitGeneralError for zero count, got %d", code)
	}
}

func TestExitCodeForError_InvalidConfig(t *testing.T) {
	err := fmt.Errorf("loading config: %w", ErrInvalidConfig)
	if code := ExitCodeForError(err); code != ExitConfigError {
		t.Errorf("Expected ExitConfigError, got %d", code)
	}
}

func TestExitCodeForError_UnclassifiedError(t *testing.T) {
	if code := ExitCodeForError(errors.New("boom")); code != ExitGeneralError {
		t.Errorf("Expected ExitGeneralError, got %d", code)
	}
}

func TestValidationError_Message(t *testing.T) {
	singular := &ValidationError{Count: 1}
	if singular.Error() != "validation failed with 1 error" {
		t.Errorf("Unexpected singular message: %s", singular.Error())
	}

	plural := &ValidationError{Count: 3}
	if plural.Error() != "validation failed with 3 errors" {
		t.Errorf("Unexpected plural message: %s", plural.Error())
	}
}
