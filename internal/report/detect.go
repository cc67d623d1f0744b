package report

import (
	"os"

	"golang.org/x/term"
)

// ColorsEnabled determines whether the text report should use styled
// output.
//
// Returns false if:
//   - the --no-color flag was passed
//   - NO_COLOR is set (accessibility/automation indicator)
//   - CI is set (common CI/CD convention)
//   - stdout is not a terminal (piped or redirected output)
func ColorsEnabled(noColorFlag bool) bool {
	if noColorFlag {
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("CI") != "" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}
