package claude

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// NoContentPlaceholder is shown when a reply carried no displayable blocks.
const NoContentPlaceholder = "_The assistant returned no readable content._"

// RenderDisplay flattens an assistant message's blocks into the markdown
// shown in the transcript. Thinking blocks and tool invocations are
// omitted; tool errors surface as warnings; block types this build does
// not recognize are shown raw rather than dropped silently.
func RenderDisplay(blocks []Block) string {
	var parts []string
	for _, block := range blocks {
		switch block.Type {
		case TypeThinking, TypeRedactedThinking, TypeServerToolUse:
		case TypeText:
			if text := renderText(block); text != "" {
				parts = append(parts, text)
			}
		case TypeWebSearchToolResult:
			if code, ok := block.SearchError(); ok {
				parts = append(parts, "⚠️ Web search error: "+code)
			}
		case TypeWebFetchToolResult:
			for _, entry := range block.FetchEntries() {
				if entry.IsError() {
					code := entry.ErrorCode
					if code == "" {
						code = "unknown error"
					}
					parts = append(parts, "⚠️ Web fetch error: "+code)
				}
			}
		default:
			parts = append(parts, fmt.Sprintf("_%s: %s_", block.Type, compactJSON(block.RawJSON())))
		}
	}
	out := strings.TrimSpace(strings.Join(parts, "\n\n"))
	if out == "" {
		return NoContentPlaceholder
	}
	return out
}

// renderText returns a text block's content with its citations, if any,
// appended as a markdown list.
func renderText(block Block) string {
	text := block.Text
	if len(block.Citations) == 0 {
		return text
	}
	lines := make([]string, 0, len(block.Citations))
	for _, citation := range block.Citations {
		title := citation.Title
		if title == "" {
			title = citation.URL
		}
		if title == "" {
			title = "Source"
		}
		line := "- " + title
		if citation.URL != "" {
			line = fmt.Sprintf("- [%s](%s)", title, citation.URL)
		}
		if cited := strings.TrimSpace(citation.CitedText); cited != "" {
			line += " — " + cited
		}
		lines = append(lines, line)
	}
	return text + "\n\n**Citations:**\n" + strings.Join(lines, "\n")
}

func compactJSON(raw json.RawMessage) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}
	return buf.String()
}
