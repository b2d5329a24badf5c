package picker

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles holds precomputed styles for the persona picker
type Styles struct {
	// Style for the picker title
	title lipgloss.Style

	// Style for the highlighted persona row
	selectedRow lipgloss.Style

	// Style for unselected persona rows
	row lipgloss.Style

	// Style for the persona detail panel
	detail lipgloss.Style

	// Style for the persona label under the name
	label lipgloss.Style

	// Style for detail section headers
	sectionHeader lipgloss.Style

	// Style for the persona initials badge
	badge lipgloss.Style
}

// DefaultStyles creates default styles for the persona picker
func DefaultStyles() Styles {
	return Styles{
		title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("#8A7FD8")).
			Bold(true).
			Padding(0, 1),

		selectedRow: lipgloss.NewStyle().
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("#8A7FD8")).
			Bold(true).
			PaddingLeft(1),

		row: lipgloss.NewStyle().
			Foreground(lipgloss.Color("7")).
			PaddingLeft(1),

		detail: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#8A7FD8")).
			Padding(0, 1),

		label: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),

		sectionHeader: lipgloss.NewStyle().
			Foreground(lipgloss.Color("12")).
			Bold(true),

		badge: lipgloss.NewStyle().
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("#8A7FD8")).
			Bold(true).
			Padding(0, 1),
	}
}
