// Package dataset loads the internal market-research dataset and selects
// excerpts relevant to an interview question via keyword overlap.
package dataset

import (
	"encoding/json"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/bettercallmanav/Simulation-of-User-Personas/internal/logging"
)

// DefaultContextRows caps how many dataset rows are injected into one turn.
const DefaultContextRows = 4

// Record is one row of the internal dataset. All fields are optional.
type Record struct {
	Source           string `json:"source"`
	Category         string `json:"category"`
	CustomerInsights string `json:"customer_insights"`
	Remark           string `json:"remark"`
	Details          string `json:"details"`
}

var wordPattern = regexp.MustCompile(`\w+`)

// Load reads the dataset from a JSON file. A missing or malformed file
// yields an empty dataset rather than an error; the app stays usable
// without internal context.
func Load(path string) []Record {
	logger := logging.WithComponent("dataset")

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("Dataset file unavailable, continuing without internal context", "path", path, "error", err)
		return nil
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		logger.Warn("Dataset file is not a JSON array of records", "path", path, "error", err)
		return nil
	}

	logger.Info("Loaded internal dataset", "path", path, "records", len(records))
	return records
}

// Tokenize returns lowercase word tokens for simple keyword matching.
func Tokenize(text string) []string {
	if text == "" {
		return nil
	}
	return wordPattern.FindAllString(strings.ToLower(text), -1)
}

func tokenSet(text string) map[string]struct{} {
	tokens := Tokenize(text)
	set := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		set[tok] = struct{}{}
	}
	return set
}

// FormatSummary produces a compact one-line summary for a dataset record.
// Returns "" when the record carries no usable text.
func FormatSummary(r Record) string {
	var parts []string
	if r.Source != "" {
		if r.Category != "" {
			parts = append(parts, r.Source+" ["+r.Category+"]")
		} else {
			parts = append(parts, r.Source)
		}
	}
	if r.CustomerInsights != "" {
		parts = append(parts, "Key insight: "+r.CustomerInsights)
	}
	if r.Remark != "" {
		parts = append(parts, "Notes: "+r.Remark)
	}
	if r.Details != "" {
		parts = append(parts, "Details: "+r.Details)
	}
	return strings.Join(parts, " | ")
}

func searchableText(r Record) string {
	return strings.Join([]string{r.Source, r.Category, r.Details, r.CustomerInsights, r.Remark}, " ")
}

// SelectContext picks the most relevant records for a query and renders
// them as a bulleted excerpt block. Scoring counts distinct query tokens
// present in a record's token set. Records that share at least one token
// win; with no overlap at all the single best (first) record is still
// offered so the model gets some grounding. An empty query applies no
// filter and takes up to limit records in dataset order.
func SelectContext(query string, records []Record, limit int) string {
	if len(records) == 0 {
		return ""
	}
	if limit <= 0 {
		limit = DefaultContextRows
	}

	queryTerms := tokenSet(query)

	type scored struct {
		score  int
		record Record
	}
	candidates := make([]scored, 0, len(records))
	for _, record := range records {
		haystack := tokenSet(searchableText(record))
		score := 0
		for term := range queryTerms {
			if _, ok := haystack[term]; ok {
				score++
			}
		}
		candidates = append(candidates, scored{score: score, record: record})
	}

	var top []Record
	if len(queryTerms) == 0 {
		// No query terms to rank by: hand back the leading rows unfiltered.
		for _, c := range candidates {
			if len(top) == limit {
				break
			}
			top = append(top, c.record)
		}
	} else {
		sort.SliceStable(candidates, func(i, j int) bool {
			return candidates[i].score > candidates[j].score
		})
		for _, c := range candidates {
			if c.score == 0 || len(top) == limit {
				break
			}
			top = append(top, c.record)
		}
		if len(top) == 0 {
			top = []Record{candidates[0].record}
		}
	}

	var lines []string
	for _, record := range top {
		if summary := FormatSummary(record); summary != "" {
			lines = append(lines, "- "+summary)
		}
	}
	return strings.Join(lines, "\n")
}
