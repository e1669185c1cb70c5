package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"

	"devotional/internal/application/commands"
	"devotional/internal/domain"
	"devotional/internal/ports"
)

// Entry is one row of the browser
type Entry struct {
	File  string
	Date  string
	Title string
}

// NewEntry builds a browser row from a tracker record. The date falls back
// to the file name when the artifact has no string date.
func NewEntry(r domain.Record) Entry {
	date := domain.StringField(r.Date)
	if date == "" {
		date = strings.TrimSuffix(r.File, ".json")
	}
	return Entry{
		File:  r.File,
		Date:  date,
		Title: domain.StringField(r.Title),
	}
}

// EntriesNewestFirst converts records in filename order to rows, newest first
func EntriesNewestFirst(records []domain.Record) []Entry {
	entries := make([]Entry, len(records))
	for i, r := range records {
		entries[len(records)-1-i] = NewEntry(r)
	}
	return entries
}

// fileDate is the date encoded in the artifact's file name
func (e Entry) fileDate() string {
	return strings.TrimSuffix(e.File, ".json")
}

// loadEntry reads the artifact behind an entry
func loadEntry(ctx context.Context, library ports.ContentLibrary, e Entry) (*commands.ShowResult, error) {
	return commands.NewShowDevotionalCommand(library, e.fileDate()).Execute(ctx)
}

// readableText is the markdown body, or the raw JSON for files not in
// generator format
func readableText(result *commands.ShowResult) string {
	if result.Devotional != nil {
		return result.Devotional.Content
	}
	return string(result.Raw)
}

// copyEntry puts an entry's text on the system clipboard
func copyEntry(library ports.ContentLibrary, e Entry) StatusMsg {
	result, err := loadEntry(context.Background(), library, e)
	if err != nil {
		return StatusMsg{Text: err.Error(), Err: true}
	}
	if err := clipboard.WriteAll(readableText(result)); err != nil {
		return StatusMsg{Text: fmt.Sprintf("Copy failed: %v", err), Err: true}
	}
	return StatusMsg{Text: fmt.Sprintf("Copied %s to clipboard", e.Date)}
}
