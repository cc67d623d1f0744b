package extcheck

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
var (
	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// ValidationError reports that one or more description files failed
// validation. Count is the total number of distinct failures across all
// files and doubles as the process exit code.
type ValidationError struct {
	Count int
}

func (e *ValidationError) Error() string {
	if e.Count == 1 {
		return "validation failed with 1 error"
	}
	return fmt.Sprintf("validation failed with %d errors", e.Count)
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, the failure count for
// validation failures, semantic codes for known errors, and
// ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		if validationErr.Count > 0 {
			return validationErr.Count
		}
		return ExitGeneralError
	}

	if errors.Is(err, ErrInvalidConfig) {
		return ExitConfigError
	}

	return ExitGeneralError
}
