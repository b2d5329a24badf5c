// Package claude drives conversations against the Anthropic Messages API:
// composing user turns, configuring server-side tools, running blocking and
// streaming completions, and rendering structured responses for display.
package claude

import "encoding/json"

// Message roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Content block type identifiers as they appear on the wire.
const (
	TypeText                = "text"
	TypeThinking            = "thinking"
	TypeRedactedThinking    = "redacted_thinking"
	TypeServerToolUse       = "server_tool_use"
	TypeWebSearchToolResult = "web_search_tool_result"
	TypeWebFetchToolResult  = "web_fetch_tool_result"
)

// Message is one API-native conversation turn. This is what gets sent back
// to the backend on the next turn, so assistant content must round-trip
// tool-use blocks byte-for-byte, not just text.
type Message struct {
	Role    string  `json:"role"`
	Content []Block `json:"content"`
}

// Block is one typed unit of structured message content. Known fields are
// decoded for rendering; the original wire form is retained so unknown and
// partially-understood blocks pass through unchanged when the history is
// resent.
type Block struct {
	Type      string
	Text      string
	Citations []Citation
	Name      string          // server_tool_use tool name
	Input     map[string]any  // server_tool_use input
	Content   json.RawMessage // tool result payload, object or array

	raw json.RawMessage
}

// Citation annotates a span of text with its web source.
type Citation struct {
	Type      string `json:"type,omitempty"`
	Title     string `json:"title,omitempty"`
	URL       string `json:"url,omitempty"`
	CitedText string `json:"cited_text,omitempty"`
}

// blockWire mirrors Block for JSON coding without recursing into the
// custom (un)marshalers.
type blockWire struct {
	Type      string          `json:"type"`
	Text      string          `json:"text,omitempty"`
	Citations []Citation      `json:"citations,omitempty"`
	Name      string          `json:"name,omitempty"`
	Input     map[string]any  `json:"input,omitempty"`
	Content   json.RawMessage `json:"content,omitempty"`
}

// NewTextBlock returns a plain text block.
func NewTextBlock(text string) Block {
	return Block{Type: TypeText, Text: text}
}

// UnmarshalJSON decodes the recognized fields and keeps the raw bytes.
func (b *Block) UnmarshalJSON(data []byte) error {
	var wire blockWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	b.Type = wire.Type
	b.Text = wire.Text
	b.Citations = wire.Citations
	b.Name = wire.Name
	b.Input = wire.Input
	b.Content = wire.Content
	b.raw = append(json.RawMessage(nil), data...)
	return nil
}

// MarshalJSON emits the original wire form when the block came off the
// wire, so nothing the API sent is ever dropped on the way back.
func (b Block) MarshalJSON() ([]byte, error) {
	if b.raw != nil {
		return b.raw, nil
	}
	return json.Marshal(blockWire{
		Type:      b.Type,
		Text:      b.Text,
		Citations: b.Citations,
		Name:      b.Name,
		Input:     b.Input,
		Content:   b.Content,
	})
}

// RawJSON returns the block's wire form.
func (b Block) RawJSON() json.RawMessage {
	if b.raw != nil {
		return b.raw
	}
	data, err := b.MarshalJSON()
	if err != nil {
		return nil
	}
	return data
}

// InputString returns a string field from a server_tool_use input.
func (b Block) InputString(key string) string {
	if b.Input == nil {
		return ""
	}
	s, _ := b.Input[key].(string)
	return s
}

// SearchResult is one entry of a web_search_tool_result payload.
type SearchResult struct {
	Type  string `json:"type"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

// searchErrorPayload is the error form of a web_search_tool_result payload.
type searchErrorPayload struct {
	Type      string `json:"type"`
	ErrorCode string `json:"error_code"`
}

// SearchError reports whether a web_search_tool_result block carries an
// error payload instead of results, and the error code if so.
func (b Block) SearchError() (string, bool) {
	if len(b.Content) == 0 {
		return "", false
	}
	var payload searchErrorPayload
	if err := json.Unmarshal(b.Content, &payload); err != nil {
		return "", false
	}
	if payload.Type != "web_search_tool_result_error" {
		return "", false
	}
	if payload.ErrorCode == "" {
		return "unknown error", true
	}
	return payload.ErrorCode, true
}

// SearchResults decodes the result entries of a web_search_tool_result
// block. Error payloads and malformed content yield nil.
func (b Block) SearchResults() []SearchResult {
	if len(b.Content) == 0 {
		return nil
	}
	var results []SearchResult
	if err := json.Unmarshal(b.Content, &results); err != nil {
		return nil
	}
	return results
}

// FetchEntry is one entry of a web_fetch_tool_result payload. The payload
// may be a single object or a list; entries may be fetched documents or
// per-item errors.
type FetchEntry struct {
	Type      string         `json:"type"`
	ErrorCode string         `json:"error_code"`
	URL       string         `json:"url"`
	Content   *FetchDocument `json:"content"`
}

// FetchDocument is the nested document of a successful fetch entry.
type FetchDocument struct {
	Title string `json:"title"`
}

// IsError reports whether the entry represents a fetch failure.
func (e FetchEntry) IsError() bool {
	switch e.Type {
	case "web_fetch_tool_result_error", "web_fetch_tool_error":
		return true
	}
	return e.Type == "" && e.ErrorCode != ""
}

// FetchEntries decodes the entries of a web_fetch_tool_result block,
// normalizing the single-object form into a one-element list.
func (b Block) FetchEntries() []FetchEntry {
	if len(b.Content) == 0 {
		return nil
	}
	var entries []FetchEntry
	if err := json.Unmarshal(b.Content, &entries); err == nil {
		return entries
	}
	var single FetchEntry
	if err := json.Unmarshal(b.Content, &single); err == nil {
		return []FetchEntry{single}
	}
	return nil
}
