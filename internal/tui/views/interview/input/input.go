package input

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Model is the single-line prompt field at the bottom of the interview
// view.
type Model struct {
	value   string
	cursor  int
	width   int
	height  int
	style   lipgloss.Style
	prompt  string
	loading bool
	status  string // shown while a turn is in flight
}

// NewModel creates a new input model
func NewModel() Model {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Height(3).
		Padding(0, 1)

	return Model{
		value:  "",
		cursor: 0,
		width:  80,
		height: 3,
		style:  style,
		prompt: "> ",
	}
}

// SetSize updates the dimensions of the input component
func (m *Model) SetSize(width, height int) {
	const fixedHeight = 3
	if m.width != width {
		m.width = width
		m.height = fixedHeight
		m.style = m.style.Width(width - 2).Height(fixedHeight)
	}
}

// Value returns the current input text
func (m Model) Value() string {
	return m.value
}

// SetValue sets the input value and moves the cursor to the end
func (m *Model) SetValue(value string) {
	m.value = value
	m.cursor = len(value)
}

// Clear resets the input value
func (m *Model) Clear() {
	m.value = ""
	m.cursor = 0
}

// SetLoading sets the loading state of the input
func (m *Model) SetLoading(loading bool) {
	m.loading = loading
	if !loading {
		m.status = ""
	}
}

// IsLoading returns whether the input is in loading state
func (m Model) IsLoading() bool {
	return m.loading
}

// SetStatus sets the in-flight status text shown next to the prompt
func (m *Model) SetStatus(status string) {
	m.status = status
}

// Update handles events for the input component
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.loading {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, 3)
		return m, nil
	}
	return m, nil
}

// Backspace removes the character before the cursor
func (m *Model) Backspace() {
	if m.cursor > 0 {
		if m.cursor < len(m.value) {
			m.value = m.value[:m.cursor-1] + m.value[m.cursor:]
		} else {
			m.value = m.value[:m.cursor-1]
		}
		m.cursor--
	}
}

// MoveCursorLeft moves the cursor one position to the left
func (m *Model) MoveCursorLeft() {
	if m.cursor > 0 {
		m.cursor--
	}
}

// MoveCursorRight moves the cursor one position to the right
func (m *Model) MoveCursorRight() {
	if m.cursor < len(m.value) {
		m.cursor++
	}
}

// InsertCharacter inserts a character at the current cursor position
func (m *Model) InsertCharacter(char string) {
	if len(char) != 1 {
		return
	}

	if m.cursor == len(m.value) {
		m.value += char
	} else {
		var sb strings.Builder
		sb.Grow(len(m.value) + 1)
		sb.WriteString(m.value[:m.cursor])
		sb.WriteString(char)
		sb.WriteString(m.value[m.cursor:])
		m.value = sb.String()
	}
	m.cursor++
}

// handleKeyMsg processes keyboard input
func (m Model) handleKeyMsg(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "backspace":
		m.Backspace()
		return m, nil

	case "left":
		m.MoveCursorLeft()
		return m, nil

	case "right":
		m.MoveCursorRight()
		return m, nil

	case "home":
		m.cursor = 0
		return m, nil

	case "end":
		m.cursor = len(m.value)
		return m, nil

	default:
		char := msg.String()
		if len(char) == 1 {
			m.InsertCharacter(char)
			return m, nil
		}
	}

	return m, nil
}

// View renders the input component
func (m *Model) View() string {
	var content string
	if len(m.value) == 0 && !m.loading {
		content = m.prompt + "Ask the interviewee...█"
	} else if m.cursor == len(m.value) {
		content = m.prompt + m.value + "█"
	} else {
		content = m.prompt + m.value[:m.cursor] + "█" + m.value[m.cursor:]
	}

	if m.loading {
		status := m.status
		if status == "" {
			status = "Thinking..."
		}
		content += " [" + status + "]"
	}

	return m.style.Render(content)
}
