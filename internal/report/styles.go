package report

import "github.com/charmbracelet/lipgloss"

// Color palette - keeping it minimal and accessible.
var (
	colorSuccess = lipgloss.Color("34")  // Green
	colorError   = lipgloss.Color("196") // Red
)

// Styles for report elements.
var (
	headerStyle = lipgloss.NewStyle().
			Bold(true)

	failureStyle = lipgloss.NewStyle().
			Foreground(colorError)

	passSummaryStyle = lipgloss.NewStyle().
				Foreground(colorSuccess)

	failSummaryStyle = lipgloss.NewStyle().
				Foreground(colorError).
				Bold(true)
)
