package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"devotional/internal/adapters/tui/styles"
	"devotional/internal/application/commands"
	"devotional/internal/ports"
)

// BrowserKeyMap defines key bindings for the browser view
type BrowserKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextPage key.Binding
	PrevPage key.Binding
	Open     key.Binding
	Generate key.Binding
	Reindex  key.Binding
	Copy     key.Binding
	Edit     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

var BrowserKeys = BrowserKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("j/k", "navigate"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	NextPage: key.NewBinding(
		key.WithKeys("l", "right", "pgdown"),
		key.WithHelp("h/l", "page"),
	),
	PrevPage: key.NewBinding(
		key.WithKeys("h", "left", "pgup"),
		key.WithHelp("h/←", "previous page"),
	),
	Open: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "read"),
	),
	Generate: key.NewBinding(
		key.WithKeys("g"),
		key.WithHelp("g", "generate"),
	),
	Reindex: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reindex"),
	),
	Copy: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "copy"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "edit"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// BrowserModel lists archived devotionals, newest first
type BrowserModel struct {
	ViewState
	archive   ports.Archive
	generator *commands.GenerateCommand
	indexer   *commands.IndexCommand

	entries   []Entry
	loaded    bool
	paginator *Paginator

	generating bool
	spinner    spinner.Model
}

// NewBrowserModel creates a new browser model. generator may be nil, in
// which case the generate key is disabled.
func NewBrowserModel(archive ports.Archive, generator *commands.GenerateCommand, indexer *commands.IndexCommand) *BrowserModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.Spinner

	return &BrowserModel{
		archive:   archive,
		generator: generator,
		indexer:   indexer,
		paginator: NewPaginator(15),
		spinner:   s,
	}
}

// Init initializes the browser
func (m *BrowserModel) Init() tea.Cmd {
	return m.loadEntries
}

func (m *BrowserModel) loadEntries() tea.Msg {
	result, err := m.indexer.Build(context.Background())
	if err != nil {
		return errMsg{err}
	}
	return entriesLoadedMsg{
		entries: EntriesNewestFirst(result.Manifest.Files),
		skipped: len(result.Skipped),
	}
}

type entriesLoadedMsg struct {
	entries []Entry
	skipped int
}

type errMsg struct {
	err error
}

type generatedMsg struct {
	result *commands.GenerateResult
	err    error
}

// Update handles messages for the browser
func (m *BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case entriesLoadedMsg:
		m.entries = msg.entries
		m.loaded = true
		m.paginator.SetTotal(len(m.entries))
		if msg.skipped > 0 && m.Message == "" {
			m.SetMessage(fmt.Sprintf("%d file(s) could not be read", msg.skipped), true)
		}
		return m, nil

	case errMsg:
		m.loaded = true
		m.SetMessage(msg.err.Error(), true)
		return m, nil

	case StatusMsg:
		m.SetMessage(msg.Text, msg.Err)
		return m, nil

	case spinner.TickMsg:
		if m.generating {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case generatedMsg:
		m.generating = false
		if msg.err != nil {
			m.SetMessage(msg.err.Error(), true)
			return m, nil
		}
		m.SetMessage(msg.result.Message, false)
		m.paginator.SetCursor(0)
		return m, m.loadEntries

	case tea.KeyMsg:
		m.ClearMessage()

		switch {
		case key.Matches(msg, BrowserKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, BrowserKeys.Up):
			m.paginator.CursorUp()
			return m, nil

		case key.Matches(msg, BrowserKeys.Down):
			m.paginator.CursorDown()
			return m, nil

		case key.Matches(msg, BrowserKeys.NextPage):
			m.paginator.NextPage()
			return m, nil

		case key.Matches(msg, BrowserKeys.PrevPage):
			m.paginator.PrevPage()
			return m, nil

		case key.Matches(msg, BrowserKeys.Open):
			if e, ok := m.Selected(); ok {
				return m, func() tea.Msg {
					return SwitchToReaderMsg{Entry: e}
				}
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Generate):
			if m.generator == nil || m.generating {
				return m, nil
			}
			m.generating = true
			return m, tea.Batch(m.spinner.Tick, m.generate)

		case key.Matches(msg, BrowserKeys.Reindex):
			return m, m.reindex

		case key.Matches(msg, BrowserKeys.Copy):
			if e, ok := m.Selected(); ok {
				return m, func() tea.Msg {
					return copyEntry(m.archive, e)
				}
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Edit):
			if e, ok := m.Selected(); ok {
				path := m.archive.ContentPath(e.File)
				return m, func() tea.Msg {
					return OpenEditorMsg{Path: path}
				}
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Help):
			return m, func() tea.Msg {
				return SwitchToHelpMsg{}
			}
		}
	}

	return m, nil
}

func (m *BrowserModel) generate() tea.Msg {
	result, err := m.generator.Execute(context.Background())
	return generatedMsg{result: result, err: err}
}

func (m *BrowserModel) reindex() tea.Msg {
	result, err := m.indexer.Execute(context.Background())
	if err != nil {
		return StatusMsg{Text: err.Error(), Err: true}
	}
	return StatusMsg{Text: result.Message}
}

// Selected returns the entry under the cursor
func (m *BrowserModel) Selected() (Entry, bool) {
	cursor := m.paginator.Cursor()
	if cursor >= 0 && cursor < len(m.entries) {
		return m.entries[cursor], true
	}
	return Entry{}, false
}

// Entries returns the loaded rows
func (m *BrowserModel) Entries() []Entry {
	return m.entries
}

// View renders the browser
func (m *BrowserModel) View() string {
	if !m.loaded {
		return "Loading..."
	}

	v := NewViewBuilder().
		Title("Daily Devotionals").
		Subtitle(m.subtitle())

	if len(m.entries) == 0 {
		v.Muted("No devotionals yet. Press g to generate today's.")
	} else {
		start, end := m.paginator.VisibleRange()
		for i := start; i < end; i++ {
			v.Line(renderEntry(m.entries[i], i == m.paginator.Cursor()))
		}
		if m.paginator.TotalPages() > 1 {
			v.BlankLine().Muted(fmt.Sprintf("Page %d/%d", m.paginator.CurrentPage(), m.paginator.TotalPages()))
		}
	}

	v.BlankLine()
	if m.generating {
		v.Line(m.spinner.View() + " Generating today's devotional...")
	}
	v.Message(m.Message, m.MessageErr)

	keys := BrowserKeys
	return v.Help(keys.Up, keys.NextPage, keys.Open, keys.Generate, keys.Reindex, keys.Copy, keys.Edit, keys.Help, keys.Quit).String()
}

func (m *BrowserModel) subtitle() string {
	switch len(m.entries) {
	case 0:
		return "Empty archive"
	case 1:
		return "1 devotional"
	default:
		return fmt.Sprintf("%d devotionals", len(m.entries))
	}
}

func renderEntry(e Entry, selected bool) string {
	if selected {
		title := e.Title
		if title == "" {
			title = "(untitled)"
		}
		return styles.EntrySelected.Render(fmt.Sprintf("%s  %s", e.Date, title))
	}

	title := styles.EntryTitle.Render(e.Title)
	if strings.TrimSpace(e.Title) == "" {
		title = styles.EntryUntitled.Render("(untitled)")
	}
	return styles.EntryDate.Render(e.Date) + "  " + title
}

// Reload reloads the list from disk
func (m *BrowserModel) Reload() tea.Cmd {
	return m.loadEntries
}

// SetSize updates the view dimensions and fits the page to the height
func (m *BrowserModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	m.paginator.SetPageSize(height - 12)
}
