package runner

import (
	"errors"

	"github.com/slicer-infra/extcheck/internal/checks"
	"github.com/slicer-infra/extcheck/internal/description"
	"github.com/slicer-infra/extcheck/internal/logging"
	"github.com/slicer-infra/extcheck/pkg/extcheck"
)

// Runner executes an ordered list of checks against one file's metadata.
type Runner struct {
	checks []checks.Check
	logger extcheck.Logger
}

// NewRunner creates a runner for the given ordered check list.
// A nil logger disables logging.
func NewRunner(checkList []checks.Check, logger extcheck.Logger) *Runner {
	if logger == nil {
		logger = logging.NewNullLogger()
	}
	return &Runner{
		checks: checkList,
		logger: logger,
	}
}

// RunChecks invokes each configured check in order against the metadata
// mapping, guard first. Check-level failures become failure records and
// never stop the remaining checks. Failures with detail text already
// seen for this file are suppressed, so the returned list holds distinct
// failures in first-occurrence order. An empty list means the file
// passed.
func (r *Runner) RunChecks(extension string, meta *description.Metadata) []extcheck.Failure {
	var failures []extcheck.Failure
	seen := make(map[string]struct{})

	for _, check := range r.checks {
		err := check.Apply(extension, meta)
		if err == nil {
			r.logger.Verbose("%s: %s passed", extension, check.Name)
			continue
		}

		var checkErr *checks.CheckError
		if !errors.As(err, &checkErr) {
			// Checks are expected to fail through CheckError; anything
			// else is still attributed to the check rather than aborting
			// the run.
			checkErr = &checks.CheckError{
				Extension: extension,
				Check:     check.Name,
				Details:   err.Error(),
			}
		}

		if _, duplicate := seen[checkErr.Details]; duplicate {
			r.logger.Verbose("%s: suppressing duplicate failure from %s", extension, check.Name)
			continue
		}
		seen[checkErr.Details] = struct{}{}

		failures = append(failures, extcheck.Failure{
			Extension: checkErr.Extension,
			Check:     checkErr.Check,
			Details:   checkErr.Details,
		})
	}

	return failures
}
