package claude

import (
	"encoding/json"
	"strings"
	"testing"
)

func mustBlock(t *testing.T, wire string) Block {
	t.Helper()
	var block Block
	if err := json.Unmarshal([]byte(wire), &block); err != nil {
		t.Fatalf("bad test block %s: %v", wire, err)
	}
	return block
}

func TestRenderDisplay(t *testing.T) {
	tests := []struct {
		name   string
		blocks []Block
		want   string
	}{
		{
			name:   "single text block",
			blocks: []Block{NewTextBlock("Hello")},
			want:   "Hello",
		},
		{
			name:   "no blocks",
			blocks: nil,
			want:   NoContentPlaceholder,
		},
		{
			name: "thinking and tool use are hidden",
			blocks: []Block{
				mustBlock(t, `{"type":"thinking","thinking":"let me think"}`),
				mustBlock(t, `{"type":"redacted_thinking","data":"xxx"}`),
				mustBlock(t, `{"type":"server_tool_use","id":"t1","name":"web_search","input":{"query":"q"}}`),
				NewTextBlock("Answer"),
			},
			want: "Answer",
		},
		{
			name: "only hidden blocks falls back to placeholder",
			blocks: []Block{
				mustBlock(t, `{"type":"thinking","thinking":"let me think"}`),
				mustBlock(t, `{"type":"server_tool_use","id":"t1","name":"web_search","input":{"query":"q"}}`),
			},
			want: NoContentPlaceholder,
		},
		{
			name: "text with citations",
			blocks: []Block{
				mustBlock(t, `{"type":"text","text":"EV sales doubled.","citations":[`+
					`{"title":"SIAM Report","url":"https://siam.example","cited_text":"sales doubled in FY24 "},`+
					`{"url":"https://untitled.example"},`+
					`{"cited_text":"quoted"}]}`),
			},
			want: "EV sales doubled.\n\n**Citations:**\n" +
				"- [SIAM Report](https://siam.example) — sales doubled in FY24\n" +
				"- [https://untitled.example](https://untitled.example)\n" +
				"- Source — quoted",
		},
		{
			name: "search error surfaces as warning",
			blocks: []Block{
				mustBlock(t, `{"type":"web_search_tool_result","content":{"type":"web_search_tool_result_error","error_code":"max_uses_exceeded"}}`),
				NewTextBlock("Partial answer"),
			},
			want: "⚠️ Web search error: max_uses_exceeded\n\nPartial answer",
		},
		{
			name: "successful search results are hidden",
			blocks: []Block{
				mustBlock(t, `{"type":"web_search_tool_result","content":[{"type":"web_search_result","title":"A","url":"https://a.example"}]}`),
				NewTextBlock("Answer"),
			},
			want: "Answer",
		},
		{
			name: "fetch errors surface per entry",
			blocks: []Block{
				mustBlock(t, `{"type":"web_fetch_tool_result","content":[`+
					`{"type":"web_fetch_result","url":"https://ok.example"},`+
					`{"type":"web_fetch_tool_result_error","error_code":"url_not_allowed"},`+
					`{"error_code":"too_many_requests"}]}`),
			},
			want: "⚠️ Web fetch error: url_not_allowed\n\n⚠️ Web fetch error: too_many_requests",
		},
		{
			name: "unknown block shown raw",
			blocks: []Block{
				mustBlock(t, `{"type":"mystery_block","value":1}`),
			},
			want: `_mystery_block: {"type":"mystery_block","value":1}_`,
		},
		{
			name: "empty text blocks are skipped",
			blocks: []Block{
				NewTextBlock(""),
				NewTextBlock("Visible"),
			},
			want: "Visible",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RenderDisplay(tt.blocks)
			if got != tt.want {
				t.Errorf("RenderDisplay() =\n%q\nwant\n%q", got, tt.want)
			}
		})
	}
}

func TestRenderDisplayJoinsWithBlankLines(t *testing.T) {
	got := RenderDisplay([]Block{NewTextBlock("One"), NewTextBlock("Two")})
	if got != "One\n\nTwo" {
		t.Errorf("RenderDisplay() = %q", got)
	}
	if strings.Contains(got, "\n\n\n") {
		t.Error("unexpected triple newline")
	}
}
