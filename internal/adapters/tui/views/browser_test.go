package views

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"devotional/internal/adapters/filesystem"
	"devotional/internal/application/commands"
	"devotional/internal/domain"
)

func TestEntriesNewestFirst(t *testing.T) {
	records := []domain.Record{
		{File: "2025-10-11.json", Date: json.RawMessage(`"2025-10-11"`), Title: json.RawMessage(`"Armor"`)},
		{File: "2025-10-12.json"},
		{File: "2025-10-13.json", Date: json.RawMessage(`42`), Title: json.RawMessage(`null`)},
	}

	entries := EntriesNewestFirst(records)

	want := []Entry{
		{File: "2025-10-13.json", Date: "2025-10-13", Title: ""},
		{File: "2025-10-12.json", Date: "2025-10-12", Title: ""},
		{File: "2025-10-11.json", Date: "2025-10-11", Title: "Armor"},
	}
	if len(entries) != len(want) {
		t.Fatalf("got %d entries, want %d", len(entries), len(want))
	}
	for i := range want {
		if entries[i] != want[i] {
			t.Errorf("entries[%d] = %+v, want %+v", i, entries[i], want[i])
		}
	}
}

func newTestBrowser(t *testing.T, files map[string]string) (*BrowserModel, *filesystem.Repository) {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	repo := filesystem.NewRepository(dir, dir, filepath.Join(dir, "tracker.json"))
	indexer := commands.NewIndexCommand(repo, repo, nil)
	return NewBrowserModel(repo, nil, indexer), repo
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestBrowser_LoadAndSelect(t *testing.T) {
	m, _ := newTestBrowser(t, map[string]string{
		"2025-10-12.json": `{"date":"2025-10-12","title":"Stand Firm"}`,
		"2025-10-13.json": `{"date":"2025-10-13","title":"Rise"}`,
		"notes.json":      `{"title":"ignored"}`,
	})

	m.Update(m.Init()())

	if got := len(m.Entries()); got != 2 {
		t.Fatalf("loaded %d entries, want 2", got)
	}
	if e, _ := m.Selected(); e.Title != "Rise" {
		t.Errorf("cursor should start on newest entry, got %+v", e)
	}

	view := m.View()
	if !strings.Contains(view, "Stand Firm") || strings.Contains(view, "ignored") {
		t.Errorf("unexpected view:\n%s", view)
	}

	m.Update(keyPress("j"))
	e, ok := m.Selected()
	if !ok || e.Date != "2025-10-12" {
		t.Errorf("after j, selected = %+v", e)
	}

	_, cmd := m.Update(keyPress("enter"))
	if cmd == nil {
		t.Fatal("enter should return a command")
	}
	msg, ok := cmd().(SwitchToReaderMsg)
	if !ok || msg.Entry.Date != "2025-10-12" {
		t.Errorf("enter produced %#v", msg)
	}
}

func TestBrowser_EditUsesContentPath(t *testing.T) {
	m, repo := newTestBrowser(t, map[string]string{
		"2025-10-13.json": `{"date":"2025-10-13"}`,
	})
	m.Update(m.Init()())

	_, cmd := m.Update(keyPress("e"))
	if cmd == nil {
		t.Fatal("e should return a command")
	}
	msg, ok := cmd().(OpenEditorMsg)
	if !ok || msg.Path != repo.ContentPath("2025-10-13.json") {
		t.Errorf("edit produced %#v", msg)
	}
}

func TestBrowser_GenerateDisabledWithoutGenerator(t *testing.T) {
	m, _ := newTestBrowser(t, nil)
	m.Update(m.Init()())

	if _, cmd := m.Update(keyPress("g")); cmd != nil {
		t.Error("generate should be a no-op without a generator")
	}
	if !strings.Contains(m.View(), "No devotionals yet") {
		t.Errorf("empty archive view:\n%s", m.View())
	}
}

func TestBrowser_Reindex(t *testing.T) {
	m, repo := newTestBrowser(t, map[string]string{
		"2025-10-13.json": `{"date":"2025-10-13","title":"Rise"}`,
	})

	_, cmd := m.Update(keyPress("r"))
	status, ok := cmd().(StatusMsg)
	if !ok || status.Err {
		t.Fatalf("reindex produced %#v", status)
	}

	manifest, err := repo.ReadManifest()
	if err != nil {
		t.Fatalf("tracker not written: %v", err)
	}
	if manifest.Count != 1 || domain.StringField(manifest.Latest.Title) != "Rise" {
		t.Errorf("manifest = %+v", manifest)
	}
}
