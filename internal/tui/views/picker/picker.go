// Package picker renders the persona selection screen: a list of the
// available interviewees with a detail panel for the highlighted one.
package picker

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bettercallmanav/Simulation-of-User-Personas/internal/persona"
)

// PersonaChosenMsg is emitted when the user confirms a persona.
type PersonaChosenMsg struct {
	Persona persona.Persona
}

// Model represents the persona picker
type Model struct {
	personas []persona.Persona
	cursor   int
	width    int
	height   int
	styles   Styles
}

// NewModel creates a new picker model over the persona catalog
func NewModel() Model {
	return Model{
		personas: persona.Catalog,
		styles:   DefaultStyles(),
	}
}

// Highlighted returns the persona under the cursor
func (m Model) Highlighted() persona.Persona {
	return m.personas[m.cursor]
}

// Init initializes the picker model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the picker model
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.personas)-1 {
				m.cursor++
			}
		case "home":
			m.cursor = 0
		case "end":
			m.cursor = len(m.personas) - 1
		case "enter":
			chosen := m.personas[m.cursor]
			return m, func() tea.Msg {
				return PersonaChosenMsg{Persona: chosen}
			}
		}
	}

	return m, nil
}

// View renders the picker
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	title := m.styles.title.Render("Choose a persona to interview")

	listWidth := m.width / 3
	if listWidth < 24 {
		listWidth = 24
	}

	var rows []string
	for i, p := range m.personas {
		line := p.Name
		if m.width >= 60 {
			line += " · " + p.SummaryLine()
		}
		if len(line) > listWidth-2 {
			line = line[:listWidth-2]
		}
		if i == m.cursor {
			rows = append(rows, m.styles.selectedRow.Width(listWidth).Render(line))
		} else {
			rows = append(rows, m.styles.row.Width(listWidth).Render(line))
		}
	}
	list := lipgloss.JoinVertical(lipgloss.Left, rows...)

	// Narrow terminals get the list only
	if m.width < 60 {
		return lipgloss.JoinVertical(lipgloss.Left, title, list)
	}

	detailWidth := m.width - listWidth - 4
	detail := m.styles.detail.Width(detailWidth).Render(m.renderDetail(detailWidth - 2))

	body := lipgloss.JoinHorizontal(lipgloss.Top, list, detail)
	return lipgloss.JoinVertical(lipgloss.Left, title, body)
}

// renderDetail renders the detail panel for the highlighted persona
func (m Model) renderDetail(width int) string {
	p := m.Highlighted()

	var b strings.Builder
	b.WriteString(m.styles.badge.Render(p.Initials()) + " " + m.styles.sectionHeader.Render(p.Name) + "\n")
	b.WriteString(m.styles.label.Render(p.Label) + "\n\n")

	for _, field := range p.Demographics {
		b.WriteString(field.Key + ": " + field.Value + "\n")
	}
	b.WriteString("\n")

	b.WriteString(m.styles.sectionHeader.Render("Background") + "\n")
	b.WriteString(wrap(p.Background, width) + "\n\n")

	b.WriteString(m.styles.sectionHeader.Render("Key concerns") + "\n")
	for _, concern := range p.KeyConcerns {
		b.WriteString("- " + concern + "\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

// wrap breaks text into lines no longer than width
func wrap(text string, width int) string {
	if width <= 0 || len(text) <= width {
		return text
	}
	words := strings.Fields(text)
	var lines []string
	var sb strings.Builder
	for _, word := range words {
		if sb.Len() == 0 {
			sb.WriteString(word)
		} else if sb.Len()+len(word)+1 <= width {
			sb.WriteString(" ")
			sb.WriteString(word)
		} else {
			lines = append(lines, sb.String())
			sb.Reset()
			sb.WriteString(word)
		}
	}
	if sb.Len() > 0 {
		lines = append(lines, sb.String())
	}
	return strings.Join(lines, "\n")
}
