package dataset

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: nil,
		},
		{
			name:     "lowercases and splits on punctuation",
			input:    "EV charging, range-anxiety!",
			expected: []string{"ev", "charging", "range", "anxiety"},
		},
		{
			name:     "keeps digits",
			input:    "City 125 vs Activa 6G",
			expected: []string{"city", "125", "vs", "activa", "6g"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.input)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestFormatSummary(t *testing.T) {
	tests := []struct {
		name     string
		record   Record
		expected string
	}{
		{
			name: "all fields",
			record: Record{
				Source:           "JD Power 2023",
				Category:         "Service",
				CustomerInsights: "Owners value transparent pricing",
				Remark:           "Urban sample",
				Details:          "Survey of 5000 owners",
			},
			expected: "JD Power 2023 [Service] | Key insight: Owners value transparent pricing | Notes: Urban sample | Details: Survey of 5000 owners",
		},
		{
			name:     "source without category",
			record:   Record{Source: "Dealer interviews"},
			expected: "Dealer interviews",
		},
		{
			name:     "empty record",
			record:   Record{},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatSummary(tt.record)
			if got != tt.expected {
				t.Errorf("FormatSummary() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestSelectContext(t *testing.T) {
	records := []Record{
		{Source: "Alpha", Details: "scooter commute traffic"},
		{Source: "Beta", Details: "EV charging infrastructure range"},
		{Source: "Gamma", Details: "EV charging cost at home"},
		{Source: "Delta", Details: "family sedan safety ratings"},
	}

	tests := []struct {
		name          string
		query         string
		records       []Record
		limit         int
		wantSources   []string
		wantEmpty     bool
		wantLineCount int
	}{
		{
			name:      "empty dataset",
			query:     "anything",
			records:   nil,
			wantEmpty: true,
		},
		{
			name:          "empty query takes leading rows in order",
			query:         "",
			records:       records,
			limit:         2,
			wantSources:   []string{"Alpha", "Beta"},
			wantLineCount: 2,
		},
		{
			name:          "scored query ranks by distinct token overlap",
			query:         "EV charging range",
			records:       records,
			limit:         2,
			wantSources:   []string{"Beta", "Gamma"},
			wantLineCount: 2,
		},
		{
			name:          "no overlap falls back to single first record",
			query:         "quantum blockchain",
			records:       records,
			limit:         3,
			wantSources:   []string{"Alpha"},
			wantLineCount: 1,
		},
		{
			name:          "zero limit uses default cap",
			query:         "",
			records:       records,
			limit:         0,
			wantLineCount: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SelectContext(tt.query, tt.records, tt.limit)

			if tt.wantEmpty {
				if got != "" {
					t.Errorf("SelectContext() = %q, want empty", got)
				}
				return
			}

			lines := strings.Split(got, "\n")
			if len(lines) != tt.wantLineCount {
				t.Fatalf("SelectContext() returned %d lines, want %d:\n%s", len(lines), tt.wantLineCount, got)
			}
			for _, line := range lines {
				if !strings.HasPrefix(line, "- ") {
					t.Errorf("line %q missing bullet prefix", line)
				}
			}
			for i, source := range tt.wantSources {
				if !strings.Contains(lines[i], source) {
					t.Errorf("line %d = %q, want it to mention %q", i, lines[i], source)
				}
			}
		})
	}
}

func TestSelectContextStableOrderOnTies(t *testing.T) {
	records := []Record{
		{Source: "First", Details: "EV charging"},
		{Source: "Second", Details: "EV charging"},
		{Source: "Third", Details: "EV charging"},
	}

	got := SelectContext("EV charging", records, 2)
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d:\n%s", len(lines), got)
	}
	if !strings.Contains(lines[0], "First") || !strings.Contains(lines[1], "Second") {
		t.Errorf("tied records reordered:\n%s", got)
	}
}

func TestLoad(t *testing.T) {
	t.Run("missing file yields empty dataset", func(t *testing.T) {
		records := Load(filepath.Join(t.TempDir(), "nope.json"))
		if records != nil {
			t.Errorf("Load() = %v, want nil", records)
		}
	})

	t.Run("malformed file yields empty dataset", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.json")
		if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
			t.Fatal(err)
		}
		if records := Load(path); records != nil {
			t.Errorf("Load() = %v, want nil", records)
		}
	})

	t.Run("valid file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "data.json")
		content := `[{"source":"Alpha","category":"Sales","details":"d"}]`
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
		records := Load(path)
		if len(records) != 1 {
			t.Fatalf("Load() returned %d records, want 1", len(records))
		}
		if records[0].Source != "Alpha" || records[0].Category != "Sales" {
			t.Errorf("unexpected record: %+v", records[0])
		}
	})
}
