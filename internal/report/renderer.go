package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/slicer-infra/extcheck/pkg/extcheck"
)

// Renderer writes run results to a writer, optionally styled.
type Renderer struct {
	out     io.Writer
	colored bool
}

// NewRenderer creates a renderer. When colored is false the output is
// plain text with a stable byte-level shape.
func NewRenderer(out io.Writer, colored bool) *Renderer {
	return &Renderer{
		out:     out,
		colored: colored,
	}
}

// RenderText writes the classic report: for each file with failures, a
// header line naming the file followed by one indented line per distinct
// failure detail, then the final summary line. Passing files contribute
// nothing except to the summary counts.
func (r *Renderer) RenderText(result *extcheck.RunResult) error {
	for _, report := range result.Reports {
		if report.Passed() {
			continue
		}

		if _, err := fmt.Fprintln(r.out, r.styled(headerStyle, report.Path)); err != nil {
			return err
		}
		for _, failure := range report.Failures {
			if _, err := fmt.Fprintf(r.out, "  %s\n", r.styled(failureStyle, failure.Details)); err != nil {
				return err
			}
		}
	}

	summary := fmt.Sprintf("Checked %d description files: Found %d errors",
		result.FilesChecked, result.TotalFailures)
	if result.Passed() {
		summary = r.styled(passSummaryStyle, summary)
	} else {
		summary = r.styled(failSummaryStyle, summary)
	}

	_, err := fmt.Fprintln(r.out, summary)
	return err
}

// RenderJSON writes the full run result as indented JSON, including
// catalog identities and content checksums for downstream tooling.
func (r *Renderer) RenderJSON(result *extcheck.RunResult) error {
	encoded, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	_, err = fmt.Fprintln(r.out, string(encoded))
	return err
}

// styled applies a lipgloss style when colors are enabled.
func (r *Renderer) styled(style lipgloss.Style, text string) string {
	if !r.colored {
		return text
	}
	return style.Render(text)
}
