// Package interview renders the conversation screen: the transcript
// viewport, research sources, suggestion hints, and the prompt input.
package interview

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/bettercallmanav/Simulation-of-User-Personas/internal/configuration"
	"github.com/bettercallmanav/Simulation-of-User-Personas/internal/persona"
	"github.com/bettercallmanav/Simulation-of-User-Personas/internal/session"
	"github.com/bettercallmanav/Simulation-of-User-Personas/internal/tui/views/interview/input"
)

// BackMsg is emitted when the user leaves the interview for the persona
// picker.
type BackMsg struct{}

// streamDeltaMsg carries one streamed text fragment
type streamDeltaMsg struct {
	text string
}

// turnDoneMsg is sent when a turn finishes, success or failure
type turnDoneMsg struct {
	turn session.Turn
}

const maxFollowups = 3

// Model represents the interview screen
type Model struct {
	ctx     context.Context
	config  *configuration.Config
	session *session.Session

	inputModel *input.Model
	viewport   viewport.Model
	spinner    spinner.Model
	renderer   *glamour.TermRenderer
	styles     Styles

	width  int
	height int
	ready  bool

	// Transcript cache. The session is only read between turns; while a
	// turn is in flight the goroutine running it owns the session and
	// the view renders from this cache plus the streamed fragments.
	transcript     []session.Turn
	inFlightPrompt string
	pending        strings.Builder
	deltaCh        chan string
	loading        bool

	prompts     []string
	promptIndex int
}

// NewModel creates a new interview model bound to a session
func NewModel(ctx context.Context, config *configuration.Config, sess *session.Session) Model {
	inputModel := input.NewModel()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))

	return Model{
		ctx:        ctx,
		config:     config,
		session:    sess,
		inputModel: &inputModel,
		spinner:    sp,
		styles:     DefaultStyles(),
	}
}

// Reset syncs the screen with the session after a persona change or a
// conversation reset.
func (m *Model) Reset() {
	m.transcript = m.session.Transcript()
	m.inFlightPrompt = ""
	m.pending.Reset()
	m.loading = false
	m.promptIndex = 0
	if p := m.session.Persona(); p != nil && len(m.transcript) == 0 {
		m.prompts = persona.SuggestedPrompts(p.ID)
	} else {
		m.prompts = nil
	}
	if m.ready {
		m.refreshViewport()
	}
}

// Init initializes the interview model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the interview model
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.inputModel.SetSize(msg.Width, 3)

		// Transcript gets what is left after the status bar, the
		// suggestion line, and the input box.
		viewportHeight := m.height - 6
		if viewportHeight < 1 {
			viewportHeight = 1
		}
		if !m.ready {
			m.viewport = viewport.New(m.width-2, viewportHeight)
			m.ready = true
		} else {
			m.viewport.Width = m.width - 2
			m.viewport.Height = viewportHeight
		}

		renderer, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(m.width-6),
		)
		if err == nil {
			m.renderer = renderer
		}
		m.refreshViewport()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case streamDeltaMsg:
		if m.loading {
			m.pending.WriteString(msg.text)
			m.refreshViewport()
			m.viewport.GotoBottom()
			return m, listenForDeltas(m.deltaCh)
		}
		return m, nil

	case turnDoneMsg:
		m.loading = false
		m.inputModel.SetLoading(false)
		m.inFlightPrompt = ""
		m.pending.Reset()
		m.transcript = m.session.Transcript()
		m.promptIndex = 0
		if p := m.session.Persona(); p != nil {
			m.prompts = persona.FollowupPrompts(*p, maxFollowups)
		}
		m.refreshViewport()
		m.viewport.GotoBottom()
		return m, nil

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			m.refreshViewport()
			return m, cmd
		}
		return m, nil
	}

	return m, nil
}

// handleKeyMsg processes keyboard input for the interview screen
func (m Model) handleKeyMsg(msg tea.KeyMsg) (Model, tea.Cmd) {
	key := msg.String()

	if m.loading && key != "up" && key != "down" && key != "pgup" && key != "pgdown" {
		return m, nil
	}

	switch key {
	case "esc":
		return m, func() tea.Msg { return BackMsg{} }

	case "enter":
		return m.submit()

	case "ctrl+l":
		m.session.ResetConversation()
		m.Reset()
		return m, nil

	case "tab":
		if len(m.prompts) > 0 {
			m.inputModel.SetValue(m.prompts[m.promptIndex])
			m.promptIndex = (m.promptIndex + 1) % len(m.prompts)
		}
		return m, nil

	case "up", "down", "pgup", "pgdown":
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	default:
		updatedInputModel, cmd := m.inputModel.Update(msg)
		m.inputModel = &updatedInputModel
		return m, cmd
	}
}

// submit starts a turn for the current input value
func (m Model) submit() (Model, tea.Cmd) {
	prompt := strings.TrimSpace(m.inputModel.Value())
	if prompt == "" {
		return m, nil
	}

	m.inputModel.Clear()
	m.inputModel.SetLoading(true)
	if p := m.session.Persona(); p != nil {
		m.inputModel.SetStatus("Interviewing " + p.FirstName() + "...")
	}

	m.loading = true
	m.inFlightPrompt = prompt
	m.pending.Reset()
	m.deltaCh = make(chan string, 64)
	m.refreshViewport()
	m.viewport.GotoBottom()

	ch := m.deltaCh
	sess := m.session
	ctx := m.ctx
	runTurn := func() tea.Msg {
		turn := sess.SubmitPrompt(ctx, prompt, func(delta string) {
			ch <- delta
		})
		close(ch)
		return turnDoneMsg{turn: turn}
	}

	return m, tea.Batch(runTurn, listenForDeltas(ch), m.spinner.Tick)
}

// listenForDeltas waits for the next streamed fragment. The command
// re-subscribes itself from Update until the channel is drained.
func listenForDeltas(ch chan string) tea.Cmd {
	return func() tea.Msg {
		delta, ok := <-ch
		if !ok {
			return nil
		}
		return streamDeltaMsg{text: delta}
	}
}

// View renders the interview screen
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	transcript := m.styles.transcript.Width(m.width - 2).Render(m.viewport.View())
	status := m.renderStatusBar()
	suggestion := m.renderSuggestionLine()
	inputView := m.inputModel.View()

	return lipgloss.JoinVertical(
		lipgloss.Left,
		transcript,
		status,
		suggestion,
		inputView,
	)
}

// refreshViewport re-renders the transcript into the viewport
func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderTranscript())
}

// renderTranscript renders all turns plus anything in flight
func (m *Model) renderTranscript() string {
	p := m.session.Persona()
	personaName := "Interviewee"
	if p != nil {
		personaName = p.FirstName()
	}

	var sections []string
	for _, turn := range m.transcript {
		sections = append(sections, m.renderTurn(turn, personaName))
	}

	if m.loading {
		sections = append(sections, m.styles.userHeader.Render("You")+"\n"+m.inFlightPrompt)
		partial := m.pending.String()
		if partial == "" {
			sections = append(sections, m.styles.personaHeader.Render(personaName)+" "+m.spinner.View())
		} else {
			sections = append(sections, m.styles.personaHeader.Render(personaName)+" "+m.spinner.View()+"\n"+partial)
		}
	}

	if len(sections) == 0 {
		return m.renderEmptyState(personaName)
	}
	return strings.Join(sections, "\n\n")
}

// renderTurn renders one completed turn
func (m *Model) renderTurn(turn session.Turn, personaName string) string {
	if turn.Role == "user" {
		return m.styles.userHeader.Render("You") + "\n" + turn.Content
	}

	content := turn.Content
	if m.renderer != nil {
		if rendered, err := m.renderer.Render(turn.Content); err == nil {
			content = strings.TrimRight(rendered, "\n")
		}
	}
	section := m.styles.personaHeader.Render(personaName) + "\n" + content
	if turn.Sources != "" {
		section += "\n" + m.styles.sources.Render(turn.Sources)
	}
	return section
}

// renderEmptyState renders the pre-conversation help text
func (m *Model) renderEmptyState(personaName string) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("You are interviewing %s.\n\n", personaName))
	if len(m.prompts) > 0 {
		b.WriteString("Suggested openers (Tab to cycle into the input):\n")
		for _, prompt := range m.prompts {
			b.WriteString("- " + prompt + "\n")
		}
	}
	return m.styles.emptyTranscript.Render(strings.TrimRight(b.String(), "\n"))
}

// renderStatusBar renders the status bar under the transcript
func (m *Model) renderStatusBar() string {
	statusStyle := m.styles.statusBar.Width(m.width - 2)

	personaInfo := "No persona"
	if p := m.session.Persona(); p != nil {
		personaInfo = fmt.Sprintf("Persona: %s", p.Name)
	}

	mode := "blocking"
	if m.config.StreamResponses {
		mode = "streaming"
	}

	tools := "tools: off"
	switch {
	case m.config.EnableWebSearch && m.config.EnableWebFetch:
		tools = "tools: search+fetch"
	case m.config.EnableWebSearch:
		tools = "tools: search"
	case m.config.EnableWebFetch:
		tools = "tools: fetch"
	}

	status := fmt.Sprintf("%s | Model: %s | %s | %s", personaInfo, m.config.Model, mode, tools)
	return statusStyle.Render(status)
}

// renderSuggestionLine renders the next suggestion hint, if any
func (m *Model) renderSuggestionLine() string {
	if m.loading || len(m.prompts) == 0 {
		return m.styles.suggestion.Width(m.width - 2).Render("")
	}
	hint := fmt.Sprintf("Tab: %s", m.prompts[m.promptIndex])
	if len(hint) > m.width-4 && m.width > 7 {
		hint = hint[:m.width-7] + "..."
	}
	return m.styles.suggestion.Width(m.width - 2).Render(hint)
}
