package extcheck

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
//
// A run that finds check failures exits with the total failure count
// itself, so CI pipelines can read the magnitude directly. A count of 1
// is therefore indistinguishable from a general error, which matches the
// original checker where an unreadable file also terminated with status 1.
const (
	ExitSuccess      = 0  // All description files passed
	ExitGeneralError = 1  // Unknown or unclassified error (including unreadable files)
	ExitUsageError   = 2  // CLI usage error (invalid flags)
	ExitPanic        = 3  // Internal panic (unexpected crash)
	ExitConfigError  = 10 // Invalid configuration
)

const (
	// DescriptionFileExtension is the canonical suffix for extension
	// description files submitted to the catalog.
	DescriptionFileExtension = ".s4ext"

	// RequireKeyCheckName is the implicit check name attributed to
	// precondition failures, reported when a check's required metadata
	// key is absent from a description file.
	RequireKeyCheckName = "require-metadata-key"
)
