package claude

import (
	"bytes"
	"encoding/json"
	"testing"
)

func compact(t *testing.T, data []byte) string {
	t.Helper()
	var buf bytes.Buffer
	if err := json.Compact(&buf, data); err != nil {
		t.Fatalf("compacting %s: %v", data, err)
	}
	return buf.String()
}

func TestBlockRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		wire string
	}{
		{
			name: "text block",
			wire: `{"type":"text","text":"Hello"}`,
		},
		{
			name: "text block with citations",
			wire: `{"type":"text","text":"Per the report","citations":[{"type":"web_search_result_location","title":"Report","url":"https://example.com","cited_text":"the figure"}]}`,
		},
		{
			name: "server tool use",
			wire: `{"type":"server_tool_use","id":"srvtoolu_1","name":"web_search","input":{"query":"EV sales India"}}`,
		},
		{
			name: "web fetch tool result",
			wire: `{"type":"web_fetch_tool_result","tool_use_id":"srvtoolu_1","content":{"type":"web_fetch_result","url":"https://example.com","content":{"type":"document","title":"Doc"}}}`,
		},
		{
			name: "unknown block type",
			wire: `{"type":"mystery_block","payload":{"nested":[1,2,3]},"note":"keep me"}`,
		},
		{
			name: "thinking block with signature",
			wire: `{"type":"thinking","thinking":"step one","signature":"sig=="}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var block Block
			if err := json.Unmarshal([]byte(tt.wire), &block); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			out, err := json.Marshal(block)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			if compact(t, out) != compact(t, []byte(tt.wire)) {
				t.Errorf("round trip changed the block:\n in: %s\nout: %s", tt.wire, out)
			}
		})
	}
}

func TestMessageRoundTrip(t *testing.T) {
	wire := `{"role":"assistant","content":[` +
		`{"type":"thinking","thinking":"hmm","signature":"s"},` +
		`{"type":"server_tool_use","id":"t1","name":"web_fetch","input":{"url":"https://example.com"}},` +
		`{"type":"web_fetch_tool_result","tool_use_id":"t1","content":{"type":"web_fetch_result","url":"https://example.com"}},` +
		`{"type":"text","text":"Done"}]}`

	var msg Message
	if err := json.Unmarshal([]byte(wire), &msg); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if msg.Role != "assistant" || len(msg.Content) != 4 {
		t.Fatalf("unexpected message: role=%q blocks=%d", msg.Role, len(msg.Content))
	}
	out, err := json.Marshal(msg)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if compact(t, out) != compact(t, []byte(wire)) {
		t.Errorf("round trip changed the message:\n in: %s\nout: %s", wire, out)
	}
}

func TestNewTextBlockMarshal(t *testing.T) {
	out, err := json.Marshal(NewTextBlock("hi"))
	if err != nil {
		t.Fatal(err)
	}
	want := `{"type":"text","text":"hi"}`
	if string(out) != want {
		t.Errorf("NewTextBlock marshal = %s, want %s", out, want)
	}
}

func TestSearchError(t *testing.T) {
	tests := []struct {
		name     string
		wire     string
		wantCode string
		wantOK   bool
	}{
		{
			name:     "error payload",
			wire:     `{"type":"web_search_tool_result","content":{"type":"web_search_tool_result_error","error_code":"max_uses_exceeded"}}`,
			wantCode: "max_uses_exceeded",
			wantOK:   true,
		},
		{
			name:     "error payload without code",
			wire:     `{"type":"web_search_tool_result","content":{"type":"web_search_tool_result_error"}}`,
			wantCode: "unknown error",
			wantOK:   true,
		},
		{
			name:   "result list is not an error",
			wire:   `{"type":"web_search_tool_result","content":[{"type":"web_search_result","title":"A","url":"https://a.example"}]}`,
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var block Block
			if err := json.Unmarshal([]byte(tt.wire), &block); err != nil {
				t.Fatal(err)
			}
			code, ok := block.SearchError()
			if ok != tt.wantOK || code != tt.wantCode {
				t.Errorf("SearchError() = (%q, %v), want (%q, %v)", code, ok, tt.wantCode, tt.wantOK)
			}
		})
	}
}

func TestFetchEntries(t *testing.T) {
	t.Run("single object normalized to list", func(t *testing.T) {
		var block Block
		wire := `{"type":"web_fetch_tool_result","content":{"type":"web_fetch_result","url":"https://a.example","content":{"title":"Doc A"}}}`
		if err := json.Unmarshal([]byte(wire), &block); err != nil {
			t.Fatal(err)
		}
		entries := block.FetchEntries()
		if len(entries) != 1 {
			t.Fatalf("got %d entries, want 1", len(entries))
		}
		if entries[0].URL != "https://a.example" || entries[0].Content == nil || entries[0].Content.Title != "Doc A" {
			t.Errorf("unexpected entry: %+v", entries[0])
		}
		if entries[0].IsError() {
			t.Error("successful fetch flagged as error")
		}
	})

	t.Run("list form", func(t *testing.T) {
		var block Block
		wire := `{"type":"web_fetch_tool_result","content":[{"type":"web_fetch_result","url":"https://a.example"},{"type":"web_fetch_tool_result_error","error_code":"url_not_allowed"}]}`
		if err := json.Unmarshal([]byte(wire), &block); err != nil {
			t.Fatal(err)
		}
		entries := block.FetchEntries()
		if len(entries) != 2 {
			t.Fatalf("got %d entries, want 2", len(entries))
		}
		if entries[0].IsError() || !entries[1].IsError() {
			t.Errorf("error detection wrong: %+v", entries)
		}
	})

	t.Run("error code without type counts as error", func(t *testing.T) {
		entry := FetchEntry{ErrorCode: "too_many_requests"}
		if !entry.IsError() {
			t.Error("entry with bare error_code not flagged as error")
		}
	})
}
