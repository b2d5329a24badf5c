package claude

import (
	"encoding/json"
	"strings"
	"testing"
)

func mustEvent(t *testing.T, wire string) streamEvent {
	t.Helper()
	var event streamEvent
	if err := json.Unmarshal([]byte(wire), &event); err != nil {
		t.Fatalf("bad test event %s: %v", wire, err)
	}
	return event
}

func runEvents(t *testing.T, acc *accumulator, onDelta func(string), wires ...string) {
	t.Helper()
	for _, wire := range wires {
		if err := acc.apply(mustEvent(t, wire), onDelta); err != nil {
			t.Fatalf("apply(%s): %v", wire, err)
		}
	}
}

func TestAccumulatorTextStream(t *testing.T) {
	acc := newAccumulator()
	var deltas []string

	runEvents(t, acc, func(d string) { deltas = append(deltas, d) },
		`{"type":"message_start","message":{"id":"msg_1","role":"assistant","usage":{"input_tokens":10}}}`,
		`{"type":"ping"}`,
		`{"type":"content_block_start","index":0,"content_block":{"type":"text","text":""}}`,
		`{"type":"content_block_delta","index":0,"delta":{"type":"text_delta","text":"Hel"}}`,
		`{"type":"content_block_delta","index":0,"delta":{"type":"text_delta","text":"lo"}}`,
		`{"type":"content_block_stop","index":0}`,
		`{"type":"message_delta","delta":{"type":"message_delta","stop_reason":"end_turn"}}`,
		`{"type":"message_stop"}`,
	)

	msg, err := acc.finish()
	if err != nil {
		t.Fatalf("finish: %v", err)
	}
	if msg.Role != RoleAssistant {
		t.Errorf("role = %q", msg.Role)
	}
	if len(msg.Content) != 1 || msg.Content[0].Type != TypeText || msg.Content[0].Text != "Hello" {
		t.Errorf("unexpected content: %+v", msg.Content)
	}
	if strings.Join(deltas, "|") != "Hel|lo" {
		t.Errorf("deltas = %v", deltas)
	}
	if acc.stopReason != "end_turn" {
		t.Errorf("stopReason = %q", acc.stopReason)
	}
}

func TestAccumulatorThinkingAndToolUse(t *testing.T) {
	acc := newAccumulator()
	var deltas []string

	runEvents(t, acc, func(d string) { deltas = append(deltas, d) },
		`{"type":"message_start","message":{"id":"msg_2","role":"assistant"}}`,
		`{"type":"content_block_start","index":0,"content_block":{"type":"thinking","thinking":""}}`,
		`{"type":"content_block_delta","index":0,"delta":{"type":"thinking_delta","thinking":"step one "}}`,
		`{"type":"content_block_delta","index":0,"delta":{"type":"thinking_delta","thinking":"step two"}}`,
		`{"type":"content_block_delta","index":0,"delta":{"type":"signature_delta","signature":"sig=="}}`,
		`{"type":"content_block_stop","index":0}`,
		`{"type":"content_block_start","index":1,"content_block":{"type":"server_tool_use","id":"t1","name":"web_search","input":{}}}`,
		`{"type":"content_block_delta","index":1,"delta":{"type":"input_json_delta","partial_json":"{\"query\":"}}`,
		`{"type":"content_block_delta","index":1,"delta":{"type":"input_json_delta","partial_json":"\"EV sales\"}"}}`,
		`{"type":"content_block_stop","index":1}`,
		`{"type":"message_stop"}`,
	)

	msg, err := acc.finish()
	if err != nil {
		t.Fatalf("finish: %v", err)
	}
	if len(msg.Content) != 2 {
		t.Fatalf("got %d blocks, want 2", len(msg.Content))
	}

	// Thinking deltas never reach the caller's text stream
	if len(deltas) != 0 {
		t.Errorf("thinking leaked into deltas: %v", deltas)
	}

	thinking := msg.Content[0]
	if thinking.Type != TypeThinking {
		t.Errorf("block 0 type = %q", thinking.Type)
	}
	raw := string(thinking.RawJSON())
	if !strings.Contains(raw, "step one step two") || !strings.Contains(raw, "sig==") {
		t.Errorf("thinking block incomplete: %s", raw)
	}

	toolUse := msg.Content[1]
	if toolUse.Type != TypeServerToolUse || toolUse.Name != "web_search" {
		t.Errorf("block 1 = %+v", toolUse)
	}
	if toolUse.InputString("query") != "EV sales" {
		t.Errorf("accumulated input = %v", toolUse.Input)
	}
}

func TestAccumulatorCitationsDelta(t *testing.T) {
	acc := newAccumulator()

	runEvents(t, acc, nil,
		`{"type":"message_start","message":{"id":"msg_3","role":"assistant"}}`,
		`{"type":"content_block_start","index":0,"content_block":{"type":"text","text":"","citations":[]}}`,
		`{"type":"content_block_delta","index":0,"delta":{"type":"text_delta","text":"Cited claim."}}`,
		`{"type":"content_block_delta","index":0,"delta":{"type":"citations_delta","citation":{"title":"Report","url":"https://r.example","cited_text":"claim"}}}`,
		`{"type":"content_block_stop","index":0}`,
		`{"type":"message_stop"}`,
	)

	msg, err := acc.finish()
	if err != nil {
		t.Fatalf("finish: %v", err)
	}
	block := msg.Content[0]
	if len(block.Citations) != 1 {
		t.Fatalf("got %d citations, want 1", len(block.Citations))
	}
	if block.Citations[0].Title != "Report" || block.Citations[0].URL != "https://r.example" {
		t.Errorf("citation = %+v", block.Citations[0])
	}
}

func TestAccumulatorCompleteToolResultBlock(t *testing.T) {
	// Server tool results arrive whole in the start event.
	acc := newAccumulator()

	runEvents(t, acc, nil,
		`{"type":"message_start","message":{"id":"msg_4","role":"assistant"}}`,
		`{"type":"content_block_start","index":0,"content_block":{"type":"web_search_tool_result","tool_use_id":"t1","content":[{"type":"web_search_result","title":"A","url":"https://a.example"}]}}`,
		`{"type":"content_block_stop","index":0}`,
		`{"type":"message_stop"}`,
	)

	msg, err := acc.finish()
	if err != nil {
		t.Fatalf("finish: %v", err)
	}
	results := msg.Content[0].SearchResults()
	if len(results) != 1 || results[0].Title != "A" {
		t.Errorf("results = %+v", results)
	}
}

func TestAccumulatorIncompleteStreams(t *testing.T) {
	t.Run("no message start", func(t *testing.T) {
		acc := newAccumulator()
		if _, err := acc.finish(); err == nil {
			t.Error("expected error for empty stream")
		}
	})

	t.Run("missing message stop", func(t *testing.T) {
		acc := newAccumulator()
		runEvents(t, acc, nil,
			`{"type":"message_start","message":{"id":"msg_5","role":"assistant"}}`,
			`{"type":"content_block_start","index":0,"content_block":{"type":"text","text":""}}`,
		)
		if _, err := acc.finish(); err == nil {
			t.Error("expected error for truncated stream")
		}
	})

	t.Run("delta for unknown index", func(t *testing.T) {
		acc := newAccumulator()
		event := mustEvent(t, `{"type":"content_block_delta","index":3,"delta":{"type":"text_delta","text":"x"}}`)
		if err := acc.apply(event, nil); err == nil {
			t.Error("expected error for orphan delta")
		}
	})

	t.Run("malformed accumulated tool input", func(t *testing.T) {
		acc := newAccumulator()
		runEvents(t, acc, nil,
			`{"type":"message_start","message":{"id":"msg_6","role":"assistant"}}`,
			`{"type":"content_block_start","index":0,"content_block":{"type":"server_tool_use","id":"t1","name":"web_search","input":{}}}`,
			`{"type":"content_block_delta","index":0,"delta":{"type":"input_json_delta","partial_json":"{\"query\":"}}`,
		)
		event := mustEvent(t, `{"type":"content_block_stop","index":0}`)
		if err := acc.apply(event, nil); err == nil {
			t.Error("expected error for truncated tool input")
		}
	})
}
