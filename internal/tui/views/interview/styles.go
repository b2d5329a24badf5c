package interview

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles holds precomputed styles for the interview UI
type Styles struct {
	// Style for user message headers
	userHeader lipgloss.Style

	// Style for persona message headers
	personaHeader lipgloss.Style

	// Style for the transcript container
	transcript lipgloss.Style

	// Style for the empty transcript state
	emptyTranscript lipgloss.Style

	// Style for the research sources panel under a reply
	sources lipgloss.Style

	// Style for the status bar
	statusBar lipgloss.Style

	// Style for the suggestion hint line
	suggestion lipgloss.Style
}

// DefaultStyles creates default styles for the interview UI
func DefaultStyles() Styles {
	return Styles{
		userHeader: lipgloss.NewStyle().
			Foreground(lipgloss.Color("12")).
			Bold(true),

		personaHeader: lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")).
			Bold(true),

		transcript: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#8A7FD8")).
			Padding(0, 1),

		emptyTranscript: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),

		sources: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			PaddingLeft(2),

		statusBar: lipgloss.NewStyle().
			Align(lipgloss.Left).
			Foreground(lipgloss.Color("240")).
			PaddingLeft(1),

		suggestion: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true).
			PaddingLeft(1),
	}
}
