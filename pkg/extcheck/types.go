package extcheck

import "github.com/google/uuid"

// Failure records a single check failure attributed to one extension.
// Failures are created by the check runner and collected into per-file
// reports; they are never persisted beyond a run.
type Failure struct {
	Extension string `json:"extension"`
	Check     string `json:"check"`
	Details   string `json:"details"`
}

// FileReport collects the outcome of validating one description file.
type FileReport struct {
	// Path is the file path as supplied on the command line.
	Path string `json:"path"`

	// Extension is the extension identity derived from the file's base
	// name, used for failure attribution.
	Extension string `json:"extension"`

	// CatalogID is the deterministic catalog identity for the extension.
	// Stable across runs, so downstream catalog tooling can correlate
	// reports without relying on file paths.
	CatalogID uuid.UUID `json:"catalog_id"`

	// Checksum is the SHA-256 of the normalized file content (comments
	// and blank lines stripped, whitespace collapsed). ChecksumRaw is
	// the SHA-256 of the content as submitted.
	Checksum    string `json:"checksum"`
	ChecksumRaw string `json:"checksum_raw"`

	// Failures holds the distinct failures found, in check order.
	Failures []Failure `json:"failures,omitempty"`
}

// Passed reports whether the file produced no failures.
func (r FileReport) Passed() bool {
	return len(r.Failures) == 0
}

// RunResult is the externally observable result of a full invocation:
// how many files were checked and how many distinct failures were found.
type RunResult struct {
	FilesChecked  int          `json:"files_checked"`
	TotalFailures int          `json:"total_failures"`
	Reports       []FileReport `json:"reports"`
}

// Passed reports whether every checked file passed.
func (r RunResult) Passed() bool {
	return r.TotalFailures == 0
}
