package claude

import (
	"time"

	"github.com/bettercallmanav/Simulation-of-User-Personas/internal/dataset"
)

// TimeContext renders the user's current local time for the model, so
// "today" and "this week" resolve against the interviewee's clock rather
// than the server's.
func TimeContext(now time.Time) string {
	display := now.Format("Monday, 02 January 2006 15:04 MST (UTC-0700)")
	zone, _ := now.Zone()
	return "User local datetime: " + display + " | Additional context: " + zone
}

// ComposeUserTurn builds the ordered content blocks for one user turn:
// an optional time context block, an optional dataset context block, then
// the user's prompt verbatim. The prompt block is always last so the
// model reads supporting context before the question.
func ComposeUserTurn(prompt string, records []dataset.Record, timeContext string, limit int) []Block {
	var blocks []Block
	if timeContext != "" {
		blocks = append(blocks, NewTextBlock(
			"User time context:\n"+timeContext+"\nTreat timestamps as the user's current local view."))
	}
	if context := dataset.SelectContext(prompt, records, limit); context != "" {
		blocks = append(blocks, NewTextBlock(
			"Internal dataset excerpts (Honda Data Sources workbook):\n"+context+"\nUse this structured context when forming your answer."))
	}
	return append(blocks, NewTextBlock(prompt))
}
