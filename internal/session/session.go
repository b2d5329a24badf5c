// Package session holds the state of one persona interview: the selected
// persona, the display transcript, and the API-native conversation history
// that gets resent to the backend on every turn.
package session

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/bettercallmanav/Simulation-of-User-Personas/internal/claude"
	"github.com/bettercallmanav/Simulation-of-User-Personas/internal/configuration"
	"github.com/bettercallmanav/Simulation-of-User-Personas/internal/dataset"
	"github.com/bettercallmanav/Simulation-of-User-Personas/internal/logging"
	"github.com/bettercallmanav/Simulation-of-User-Personas/internal/persona"
)

// EmptyReplyMessage stands in for a completion that returned no content
// blocks at all.
const EmptyReplyMessage = "_The assistant returned an empty response._"

// Completer runs completions. Satisfied by *claude.Driver; tests swap in
// a stub.
type Completer interface {
	Complete(ctx context.Context, req claude.Request) (*claude.Message, error)
	Stream(ctx context.Context, req claude.Request, onDelta func(string)) (*claude.Message, error)
}

// Turn is one transcript entry as shown to the user.
type Turn struct {
	Role    string
	Content string
	Sources string
}

// Session is a single-user interview session. Not safe for concurrent
// use; the TUI serializes access to it.
type Session struct {
	cfg       *configuration.Config
	completer Completer
	records   []dataset.Record
	logger    *logging.Logger
	now       func() time.Time

	persona      *persona.Persona
	systemPrompt string
	display      []Turn
	api          []claude.Message
}

// New builds a session over the given dataset records. No persona is
// selected yet.
func New(cfg *configuration.Config, completer Completer, records []dataset.Record) *Session {
	return &Session{
		cfg:       cfg,
		completer: completer,
		records:   records,
		logger:    logging.WithComponent("session"),
		now:       time.Now,
	}
}

// Persona returns the selected persona, or nil.
func (s *Session) Persona() *persona.Persona {
	return s.persona
}

// Transcript returns the display turns in order.
func (s *Session) Transcript() []Turn {
	return s.display
}

// History returns the API-native conversation history.
func (s *Session) History() []claude.Message {
	return s.api
}

// LastSourceSummary returns the research summary of the most recent
// assistant turn, or "" when the last reply used no tools.
func (s *Session) LastSourceSummary() string {
	for i := len(s.display) - 1; i >= 0; i-- {
		if s.display[i].Role == claude.RoleAssistant {
			return s.display[i].Sources
		}
	}
	return ""
}

// SelectPersona switches the interview to a persona. Both transcripts
// start fresh; a mid-conversation switch never leaks the previous
// persona's turns into the new system prompt's context.
func (s *Session) SelectPersona(p persona.Persona) {
	s.persona = &p
	s.systemPrompt = persona.BuildInterviewPrompt(p)
	s.display = nil
	s.api = nil
	s.logger.Info("Persona selected", "persona", p.ID)
}

// DeselectPersona clears the persona and both transcripts.
func (s *Session) DeselectPersona() {
	s.logger.Info("Persona deselected")
	s.persona = nil
	s.systemPrompt = ""
	s.display = nil
	s.api = nil
}

// ResetConversation clears both transcripts but keeps the persona, so
// the next prompt starts a fresh interview with the same interviewee.
func (s *Session) ResetConversation() {
	s.display = nil
	s.api = nil
	s.logger.Info("Conversation reset")
}

// SubmitPrompt runs one interview turn: composes the user message with
// time and dataset context, calls the backend, and records both the
// display turn and the API-native turn. Failures still produce exactly
// one assistant entry in each transcript, so the two histories never
// drift apart. onDelta, when non-nil and streaming is enabled, receives
// text fragments as they arrive.
func (s *Session) SubmitPrompt(ctx context.Context, text string, onDelta func(string)) Turn {
	turnID := ulid.Make().String()
	logger := s.logger.With("turnID", turnID)

	userBlocks := claude.ComposeUserTurn(text, s.records, claude.TimeContext(s.now()), s.cfg.MaxContextRows)
	s.display = append(s.display, Turn{Role: claude.RoleUser, Content: text})
	s.api = append(s.api, claude.Message{Role: claude.RoleUser, Content: userBlocks})

	system := s.systemPrompt
	if system == "" {
		system = persona.BasePrompt
	}

	req := claude.Request{
		System:   system,
		Messages: s.api,
		Tools: claude.BuildTools(claude.ToolOptions{
			EnableSearch:  s.cfg.EnableWebSearch,
			EnableFetch:   s.cfg.EnableWebFetch,
			SearchMaxUses: s.cfg.WebSearchMaxUses,
			FetchMaxUses:  s.cfg.WebFetchMaxUses,
		}),
	}

	logger.Info("Submitting prompt",
		"promptLength", len(text),
		"historyTurns", len(s.api),
		"streaming", s.cfg.StreamResponses)

	var msg *claude.Message
	var err error
	if s.cfg.StreamResponses {
		msg, err = s.completer.Stream(ctx, req, onDelta)
	} else {
		msg, err = s.completer.Complete(ctx, req)
	}
	if err != nil {
		logger.Error("Turn failed", "error", err)
		return s.appendAssistantText(claude.FailureMessage(err))
	}
	if len(msg.Content) == 0 {
		logger.Warn("Empty reply")
		return s.appendAssistantText(EmptyReplyMessage)
	}

	turn := Turn{
		Role:    claude.RoleAssistant,
		Content: claude.RenderDisplay(msg.Content),
		Sources: claude.SummarizeSources(msg.Content),
	}
	s.display = append(s.display, turn)
	s.api = append(s.api, *msg)
	logger.Info("Turn finished", "blocks", len(msg.Content), "hasSources", turn.Sources != "")
	return turn
}

// appendAssistantText records a plain text assistant turn in both
// transcripts.
func (s *Session) appendAssistantText(text string) Turn {
	turn := Turn{Role: claude.RoleAssistant, Content: text}
	s.display = append(s.display, turn)
	s.api = append(s.api, claude.Message{
		Role:    claude.RoleAssistant,
		Content: []claude.Block{claude.NewTextBlock(text)},
	})
	return turn
}
