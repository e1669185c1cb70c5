package domain

import (
	"testing"
	"time"
)

func TestWordCount(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{"empty", "", 0},
		{"single word", "Rise", 1},
		{"spaces and newlines", "# Rise\n\n## Scripture\n  be strong ", 5},
		{"tabs", "one\ttwo\tthree", 3},
		{"leading whitespace", "\n\nfaith", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WordCount(tt.content); got != tt.want {
				t.Errorf("WordCount(%q) = %d, want %d", tt.content, got, tt.want)
			}
		})
	}
}

func TestTitleFromMarkdown(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"plain heading", "# Rise and Battle the Day\n## Scripture", "Rise and Battle the Day"},
		{"heading after preamble", "Here you go:\n\n# Stand Firm\nbody", "Stand Firm"},
		{"bracketed template echo", "# [Armor of God]\n", "Armor of God"},
		{"second level only", "## Scripture\ntext", ""},
		{"no heading", "just text", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TitleFromMarkdown(tt.content); got != tt.want {
				t.Errorf("TitleFromMarkdown() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsDatedFileName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"2025-10-13.json", true},
		{"1999-01-01.json", true},
		{"2025-1-1.json", false},
		{"notes.txt", false},
		{"2025-10-13.json.bak", false},
		{"x2025-10-13.json", false},
		{"2025-10-13.JSON", false},
		{"2025-10-13.yaml", false},
		{"content_tracker.json", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsDatedFileName(tt.name); got != tt.want {
				t.Errorf("IsDatedFileName(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestFileNameForDate_UsesUTC(t *testing.T) {
	loc := time.FixedZone("UTC-8", -8*60*60)
	// 20:00 on Jan 1 in UTC-8 is already Jan 2 in UTC
	ts := time.Date(2025, 1, 1, 20, 0, 0, 0, loc)

	if got := FileNameForDate(ts); got != "2025-01-02.json" {
		t.Errorf("FileNameForDate() = %q, want %q", got, "2025-01-02.json")
	}
}

func TestParseDate(t *testing.T) {
	if _, err := ParseDate("2025-02-30"); err == nil {
		t.Error("expected error for impossible date")
	}
	if _, err := ParseDate("2025-2-3"); err == nil {
		t.Error("expected error for non-padded date")
	}
	got, err := ParseDate("2025-02-03")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Day() != 3 || got.Month() != time.February {
		t.Errorf("ParseDate() = %v", got)
	}
}

func TestParseDevotional(t *testing.T) {
	data := []byte(`{"app":"Warriors of Christ","date":"2025-01-01","provider":"groq","model":"llama-3.1-8b-instant","max_tokens":500,"temperature":0.7,"words":3,"content_markdown":"# Hi there"}`)

	d, err := ParseDevotional(data)
	if err != nil {
		t.Fatalf("ParseDevotional failed: %v", err)
	}
	if d.Provider != "groq" || d.Words != 3 || d.Content != "# Hi there" {
		t.Errorf("unexpected devotional: %+v", d)
	}
	if d.FileName() != "2025-01-01.json" {
		t.Errorf("FileName() = %q", d.FileName())
	}

	if _, err := ParseDevotional([]byte("{")); err == nil {
		t.Error("expected error for invalid JSON")
	}
}
