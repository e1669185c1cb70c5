package domain

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// DateLayout is the calendar date format used in artifact filenames and the date field
const DateLayout = "2006-01-02"

// SchemaVersion is written to the version field of every generated artifact
const SchemaVersion = "1"

// DefaultApp labels artifacts when no app name is configured
const DefaultApp = "Warriors of Christ"

// Dated artifact filename: 2025-10-13.json
var datedFileRegex = regexp.MustCompile(`^[0-9]{4}-[0-9]{2}-[0-9]{2}\.json$`)

// Devotional is one generated artifact, stored as <date>.json
type Devotional struct {
	ID          string  `json:"id,omitempty"`
	App         string  `json:"app"`
	Date        string  `json:"date"`
	Title       string  `json:"title,omitempty"`
	Provider    string  `json:"provider"`
	Model       string  `json:"model"`
	MaxTokens   int     `json:"max_tokens"`
	Temperature float64 `json:"temperature"`
	Words       int     `json:"words"`
	Content     string  `json:"content_markdown"`
	CreatedAt   string  `json:"createdAt,omitempty"`
	Version     string  `json:"version,omitempty"`
}

// FileName returns the artifact filename for the devotional's date
func (d *Devotional) FileName() string {
	return d.Date + ".json"
}

// WordCount returns the number of whitespace-delimited tokens in content
func WordCount(content string) int {
	return len(strings.Fields(content))
}

// TitleFromMarkdown returns the text of the first level-1 heading, or "" if there is none
func TitleFromMarkdown(content string) string {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "# ") {
			continue
		}
		title := strings.TrimSpace(strings.TrimPrefix(line, "# "))
		// Models sometimes echo the template brackets back
		title = strings.TrimSuffix(strings.TrimPrefix(title, "["), "]")
		return strings.TrimSpace(title)
	}
	return ""
}

// DateOf formats t as a UTC calendar date
func DateOf(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// FileNameForDate returns the artifact filename for the UTC date of t
func FileNameForDate(t time.Time) string {
	return DateOf(t) + ".json"
}

// IsDatedFileName reports whether name is exactly YYYY-MM-DD.json
func IsDatedFileName(name string) bool {
	return datedFileRegex.MatchString(name)
}

// ParseDate validates a YYYY-MM-DD string
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", s)
	}
	return t, nil
}

// ParseDevotional decodes an artifact file
func ParseDevotional(data []byte) (*Devotional, error) {
	var d Devotional
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("failed to parse devotional: %w", err)
	}
	return &d, nil
}
