package checks

import (
	"fmt"

	"github.com/slicer-infra/extcheck/internal/description"
	"github.com/slicer-infra/extcheck/pkg/extcheck"
)

// CheckError is the check-level failure outcome. It carries the
// extension identity the failure is attributed to, the name of the
// failing check, and a human-readable detail string.
//
// CheckError is expected and recoverable: the runner converts it into a
// failure record and continues with the remaining checks and files.
type CheckError struct {
	Extension string
	Check     string
	Details   string
}

// Error returns the detail string only; attribution is carried in the
// struct fields and added by the reporting layer.
func (e *CheckError) Error() string {
	return e.Details
}

// Check describes a single validation: a name, the metadata keys its
// body requires, and the semantic body itself. Representing the
// required keys as data lets the runner apply the guard uniformly
// instead of relying on wrapper stacking order.
type Check struct {
	Name     string
	Requires []string
	Run      func(extension string, meta *description.Metadata) error
}

// Apply guards then delegates: each required key is verified in declared
// order, and the first missing key fails with a missing-key outcome
// without ever invoking the semantic body. With all preconditions met,
// the body runs and its outcome is returned as-is.
func (c Check) Apply(extension string, meta *description.Metadata) error {
	for _, key := range c.Requires {
		if !meta.Has(key) {
			return &CheckError{
				Extension: extension,
				Check:     extcheck.RequireKeyCheckName,
				Details:   fmt.Sprintf("%s key is missing", key),
			}
		}
	}
	return c.Run(extension, meta)
}
