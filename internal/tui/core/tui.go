package core

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bettercallmanav/Simulation-of-User-Personas/internal/configuration"
	"github.com/bettercallmanav/Simulation-of-User-Personas/internal/logging"
	"github.com/bettercallmanav/Simulation-of-User-Personas/internal/session"
	"github.com/bettercallmanav/Simulation-of-User-Personas/internal/tui/views/interview"
	"github.com/bettercallmanav/Simulation-of-User-Personas/internal/tui/views/picker"
)

// Screen represents the different screens in the application
type Screen int

const (
	PickerScreen Screen = iota
	InterviewScreen
)

// Model represents the main TUI model
type Model struct {
	ctx            context.Context
	config         *configuration.Config
	session        *session.Session
	activeScreen   Screen
	pickerModel    picker.Model
	interviewModel interview.Model
	width          int
	height         int
}

// NewModel creates a new TUI model
func NewModel(ctx context.Context, config *configuration.Config, sess *session.Session) *Model {
	logger := logging.WithComponent("tui-core")
	logger.Debug("Creating new TUI model")

	model := &Model{
		ctx:            ctx,
		config:         config,
		session:        sess,
		activeScreen:   PickerScreen,
		pickerModel:    picker.NewModel(),
		interviewModel: interview.NewModel(ctx, config, sess),
	}

	logger.Info("TUI model created successfully")
	return model
}

// Init initializes the TUI model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.pickerModel.Init(),
		m.interviewModel.Init(),
	)
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		// Reserve one line for the footer
		childSize := tea.WindowSizeMsg{Width: m.width, Height: m.height - 1}
		m.pickerModel, _ = m.pickerModel.Update(childSize)
		m.interviewModel, cmd = m.interviewModel.Update(childSize)
		return m, cmd

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			logging.WithComponent("tui-core").Info("User requested quit")
			return m, tea.Quit
		}
		switch m.activeScreen {
		case PickerScreen:
			m.pickerModel, cmd = m.pickerModel.Update(msg)
		case InterviewScreen:
			m.interviewModel, cmd = m.interviewModel.Update(msg)
		}
		return m, cmd

	case picker.PersonaChosenMsg:
		m.session.SelectPersona(msg.Persona)
		m.interviewModel.Reset()
		m.activeScreen = InterviewScreen
		return m, nil

	case interview.BackMsg:
		m.session.DeselectPersona()
		m.interviewModel.Reset()
		m.activeScreen = PickerScreen
		return m, nil

	default:
		// Forward other messages to the active screen
		switch m.activeScreen {
		case PickerScreen:
			m.pickerModel, cmd = m.pickerModel.Update(msg)
		case InterviewScreen:
			m.interviewModel, cmd = m.interviewModel.Update(msg)
		}
		return m, cmd
	}
}

// View renders the TUI
func (m Model) View() string {
	var content string
	switch m.activeScreen {
	case PickerScreen:
		content = m.pickerModel.View()
	case InterviewScreen:
		content = m.interviewModel.View()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		content,
		m.renderFooter(),
	)
}

// renderFooter renders the footer with help text
func (m Model) renderFooter() string {
	footerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Background(lipgloss.Color("235")).
		Width(m.width)

	var helpText string
	switch {
	case m.width >= 80:
		if m.activeScreen == PickerScreen {
			helpText = "↑/↓: Navigate • Enter: Interview • Ctrl+C: Quit"
		} else {
			helpText = "Enter: Send • Tab: Suggestion • ↑/↓: Scroll • Ctrl+L: New conversation • Esc: Personas • Ctrl+C: Quit"
		}
	case m.width >= 40:
		helpText = "Enter: Send • Esc: Back • Ctrl+C: Quit"
	case m.width >= 15:
		helpText = "Ctrl+C: Quit"
	default:
		helpText = "^C"
	}

	return footerStyle.Render(helpText)
}
