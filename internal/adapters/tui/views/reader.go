package views

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"devotional/internal/adapters/tui/styles"
	"devotional/internal/application/commands"
	"devotional/internal/ports"
)

// ReaderKeyMap defines key bindings for the reader view
type ReaderKeyMap struct {
	Back key.Binding
	Copy key.Binding
	Edit key.Binding
	Quit key.Binding
}

var ReaderKeys = ReaderKeyMap{
	Back: key.NewBinding(
		key.WithKeys("esc", "backspace", "q"),
		key.WithHelp("esc", "back"),
	),
	Copy: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "copy"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "edit"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
}

// readerChrome is the height taken by the title, meta line and help line
const readerChrome = 8

// ReaderModel shows one devotional in a scrollable viewport
type ReaderModel struct {
	ViewState
	library  ports.ContentLibrary
	viewport viewport.Model

	entry  Entry
	result *commands.ShowResult
}

// NewReaderModel creates a new reader view model
func NewReaderModel(library ports.ContentLibrary) *ReaderModel {
	return &ReaderModel{
		library:  library,
		viewport: viewport.New(80, 20),
	}
}

type readerLoadedMsg struct {
	entry  Entry
	result *commands.ShowResult
	err    error
}

// Open loads an entry into the reader
func (m *ReaderModel) Open(e Entry) tea.Cmd {
	m.entry = e
	m.result = nil
	m.ClearMessage()
	m.viewport.SetContent("Loading...")
	m.viewport.GotoTop()

	return func() tea.Msg {
		result, err := loadEntry(context.Background(), m.library, e)
		return readerLoadedMsg{entry: e, result: result, err: err}
	}
}

// Init initializes the reader
func (m *ReaderModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the reader
func (m *ReaderModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case readerLoadedMsg:
		// Ignore results for an entry the user already left
		if msg.entry != m.entry {
			return m, nil
		}
		if msg.err != nil {
			m.SetMessage(msg.err.Error(), true)
			m.viewport.SetContent("")
			return m, nil
		}
		m.result = msg.result
		m.viewport.SetContent(readableText(msg.result))
		return m, nil

	case StatusMsg:
		m.SetMessage(msg.Text, msg.Err)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, ReaderKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, ReaderKeys.Back):
			return m, func() tea.Msg {
				return SwitchToBrowserMsg{}
			}

		case key.Matches(msg, ReaderKeys.Copy):
			e := m.entry
			return m, func() tea.Msg {
				return copyEntry(m.library, e)
			}

		case key.Matches(msg, ReaderKeys.Edit):
			path := m.library.ContentPath(m.entry.File)
			return m, func() tea.Msg {
				return OpenEditorMsg{Path: path}
			}
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the reader
func (m *ReaderModel) View() string {
	title := m.entry.Title
	if title == "" {
		title = m.entry.Date
	}

	v := NewViewBuilder().
		Title(title).
		Line(styles.ReaderMeta.Render(m.meta())).
		BlankLine().
		Line(styles.ReaderFrame.Render(m.viewport.View())).
		Message(m.Message, m.MessageErr)

	keys := ReaderKeys
	return v.Help(keys.Back, keys.Copy, keys.Edit).String()
}

func (m *ReaderModel) meta() string {
	if m.result == nil || m.result.Devotional == nil {
		return fmt.Sprintf("%s  %s", m.entry.Date, m.entry.File)
	}
	d := m.result.Devotional
	return fmt.Sprintf("%s  %s/%s  %d words  %3.0f%%",
		d.Date, d.Provider, d.Model, d.Words, m.viewport.ScrollPercent()*100)
}

// SetSize updates the view dimensions and resizes the viewport
func (m *ReaderModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	m.viewport.Width = max(width-8, 20)
	m.viewport.Height = max(height-readerChrome-4, 5)
}

// Entry returns the entry being read
func (m *ReaderModel) Entry() Entry {
	return m.entry
}
