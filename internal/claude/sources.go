package claude

import (
	"fmt"
	"strings"
)

const (
	maxSearchHitsPerBlock  = 5
	maxFetchedDocsPerBlock = 3
)

// SummarizeSources builds the research panel shown alongside a reply:
// what the model searched and fetched, and the top hits it saw. Returns
// "" when the reply used no tools.
func SummarizeSources(blocks []Block) string {
	var actions, hits, docs []string
	for _, block := range blocks {
		switch block.Type {
		case TypeServerToolUse:
			switch block.Name {
			case WebSearchToolName:
				if query := block.InputString("query"); query != "" {
					actions = append(actions, "Web search: "+query)
				}
			case WebFetchToolName:
				if url := block.InputString("url"); url != "" {
					actions = append(actions, "Web fetch: "+url)
				}
			}
		case TypeWebSearchToolResult:
			for i, result := range block.SearchResults() {
				if i == maxSearchHitsPerBlock {
					break
				}
				if result.Type != "web_search_result" {
					continue
				}
				title := result.Title
				if title == "" {
					title = "Search result"
				}
				if result.URL != "" {
					hits = append(hits, fmt.Sprintf("[%s](%s)", title, result.URL))
				} else {
					hits = append(hits, title)
				}
			}
		case TypeWebFetchToolResult:
			count := 0
			for _, entry := range block.FetchEntries() {
				if entry.IsError() {
					continue
				}
				if count == maxFetchedDocsPerBlock {
					break
				}
				count++
				title := ""
				if entry.Content != nil {
					title = entry.Content.Title
				}
				if title == "" {
					title = "Fetched document"
				}
				if entry.URL != "" {
					docs = append(docs, fmt.Sprintf("[%s](%s)", title, entry.URL))
				} else {
					docs = append(docs, title)
				}
			}
		}
	}

	var sections []string
	if len(actions) > 0 {
		sections = append(sections, section("**Research actions**", actions))
	}
	if len(hits) > 0 {
		sections = append(sections, section("**Search hits**", hits))
	}
	if len(docs) > 0 {
		sections = append(sections, section("**Fetched docs**", docs))
	}
	return strings.Join(sections, "\n\n")
}

func section(title string, items []string) string {
	lines := make([]string, 0, len(items)+1)
	lines = append(lines, title)
	for _, item := range items {
		lines = append(lines, "- "+item)
	}
	return strings.Join(lines, "\n")
}
