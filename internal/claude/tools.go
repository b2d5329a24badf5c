package claude

// Server-side tool identifiers and versions.
const (
	WebSearchToolType = "web_search_20250305"
	WebFetchToolType  = "web_fetch_20250910"

	WebSearchToolName = "web_search"
	WebFetchToolName  = "web_fetch"

	// WebFetchBetaHeader must accompany any request whose tool list
	// includes web_fetch.
	WebFetchBetaHeader = "web-fetch-2025-09-10"

	DefaultToolMaxUses = 10
)

// ToolSpec is one entry of the request tool list.
type ToolSpec struct {
	Type      string         `json:"type"`
	Name      string         `json:"name"`
	MaxUses   int            `json:"max_uses,omitempty"`
	Citations *ToolCitations `json:"citations,omitempty"`
}

// ToolCitations toggles citation support on a tool.
type ToolCitations struct {
	Enabled bool `json:"enabled"`
}

// ToolOptions selects which server-side tools a request may use.
type ToolOptions struct {
	EnableSearch  bool
	EnableFetch   bool
	SearchMaxUses int
	FetchMaxUses  int
}

// BuildTools assembles the tool list for a request. Order is stable:
// search before fetch. Non-positive use caps fall back to the default.
func BuildTools(opts ToolOptions) []ToolSpec {
	var tools []ToolSpec
	if opts.EnableSearch {
		maxUses := opts.SearchMaxUses
		if maxUses <= 0 {
			maxUses = DefaultToolMaxUses
		}
		tools = append(tools, ToolSpec{
			Type:    WebSearchToolType,
			Name:    WebSearchToolName,
			MaxUses: maxUses,
		})
	}
	if opts.EnableFetch {
		maxUses := opts.FetchMaxUses
		if maxUses <= 0 {
			maxUses = DefaultToolMaxUses
		}
		tools = append(tools, ToolSpec{
			Type:      WebFetchToolType,
			Name:      WebFetchToolName,
			MaxUses:   maxUses,
			Citations: &ToolCitations{Enabled: true},
		})
	}
	return tools
}

// NeedsBetaHeader reports whether the tool list requires the web fetch
// beta header.
func NeedsBetaHeader(tools []ToolSpec) bool {
	for _, tool := range tools {
		if tool.Name == WebFetchToolName {
			return true
		}
	}
	return false
}
