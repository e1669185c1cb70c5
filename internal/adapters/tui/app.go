package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"devotional/internal/adapters/tui/views"
	"devotional/internal/application/commands"
	"devotional/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewBrowser ViewState = iota
	ViewReader
	ViewHelp
)

// App is the main TUI application model
type App struct {
	archive ports.Archive
	editor  ports.EditorOpener

	state   ViewState
	browser *views.BrowserModel
	reader  *views.ReaderModel
	help    *views.HelpModel

	width  int
	height int
}

// NewApp creates a new TUI application. generator may be nil to browse
// without generation; editor may be nil to disable editing.
func NewApp(archive ports.Archive, generator *commands.GenerateCommand, indexer *commands.IndexCommand, editor ports.EditorOpener) *App {
	var providerNames []string
	if generator != nil {
		providerNames = generator.ProviderNames()
	}

	return &App{
		archive: archive,
		editor:  editor,
		state:   ViewBrowser,
		browser: views.NewBrowserModel(archive, generator, indexer),
		reader:  views.NewReaderModel(archive),
		help:    views.NewHelpModel(providerNames),
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.browser.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.browser.SetSize(msg.Width, msg.Height)
		a.reader.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	// View switching messages
	case views.SwitchToReaderMsg:
		a.state = ViewReader
		return a, a.reader.Open(msg.Entry)

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SwitchToBrowserMsg:
		a.state = ViewBrowser
		return a, a.browser.Reload()

	case views.OpenEditorMsg:
		return a, a.openEditor(msg.Path)

	case editorFinishedMsg:
		if msg.err != nil {
			status := views.StatusMsg{Text: fmt.Sprintf("Editor: %v", msg.err), Err: true}
			return a.Update(status)
		}
		if a.state == ViewReader {
			return a, a.reader.Open(a.reader.Entry())
		}
		return a, a.browser.Reload()
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewBrowser:
		_, cmd = a.browser.Update(msg)
	case ViewReader:
		_, cmd = a.reader.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	// Generation and load results belong to the browser whatever is on screen
	if a.state != ViewBrowser {
		if _, ok := msg.(tea.KeyMsg); !ok {
			var bcmd tea.Cmd
			_, bcmd = a.browser.Update(msg)
			cmd = tea.Batch(cmd, bcmd)
		}
	}

	return a, cmd
}

type editorFinishedMsg struct{ err error }

func (a *App) openEditor(path string) tea.Cmd {
	if a.editor == nil {
		return func() tea.Msg {
			return editorFinishedMsg{err: fmt.Errorf("no editor configured")}
		}
	}

	cmd, err := a.editor.Command(path)
	if err != nil {
		return func() tea.Msg {
			return editorFinishedMsg{err: err}
		}
	}

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{err: err}
	})
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewReader:
		return a.reader.View()
	case ViewHelp:
		return a.help.View()
	default:
		return a.browser.View()
	}
}
