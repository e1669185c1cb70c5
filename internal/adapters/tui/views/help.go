package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"devotional/internal/adapters/tui/styles"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
	Quit  key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "?"),
		key.WithHelp("esc/q/?", "close"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
}

// HelpModel is the model for the help view
type HelpModel struct {
	ViewState
	providers []string
}

// NewHelpModel creates a new help view model listing the provider order
func NewHelpModel(providers []string) *HelpModel {
	return &HelpModel{providers: providers}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, HelpKeys.Quit) {
			return m, tea.Quit
		}
		if key.Matches(msg, HelpKeys.Close) {
			return m, func() tea.Msg {
				return SwitchToBrowserMsg{}
			}
		}
	}

	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Devotional Help"))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render("One devotional per day, newest first"))
	b.WriteString("\n\n")

	b.WriteString(styles.Label.Render("Browser"))
	b.WriteString("\n")
	b.WriteString(helpLine("j / k / ↑ / ↓", "Move up/down"))
	b.WriteString(helpLine("h / l / PgUp / PgDn", "Previous/next page"))
	b.WriteString(helpLine("Enter", "Read devotional"))
	b.WriteString(helpLine("g", "Generate today's devotional"))
	b.WriteString(helpLine("r", "Rebuild the content tracker"))
	b.WriteString(helpLine("c", "Copy to clipboard"))
	b.WriteString(helpLine("e", "Open file in $EDITOR"))
	b.WriteString("\n")

	b.WriteString(styles.Label.Render("Reader"))
	b.WriteString("\n")
	b.WriteString(helpLine("j / k / PgUp / PgDn", "Scroll"))
	b.WriteString(helpLine("c / e", "Copy / edit"))
	b.WriteString(helpLine("Esc / q", "Back to list"))
	b.WriteString("\n")

	b.WriteString(styles.Label.Render("General"))
	b.WriteString("\n")
	b.WriteString(helpLine("?", "Toggle help"))
	b.WriteString(helpLine("q", "Quit from the list, go back elsewhere"))
	b.WriteString(helpLine("Ctrl+C", "Quit from any view"))
	b.WriteString("\n")

	if len(m.providers) > 0 {
		b.WriteString(styles.Label.Render("Provider order"))
		b.WriteString("\n")
		b.WriteString(styles.MutedText.Render("  " + strings.Join(m.providers, " → ")))
		b.WriteString("\n\n")
	}

	b.WriteString(styles.HelpDesc.Render("Press "))
	b.WriteString(styles.HelpKey.Render("esc"))
	b.WriteString(styles.HelpDesc.Render(", "))
	b.WriteString(styles.HelpKey.Render("q"))
	b.WriteString(styles.HelpDesc.Render(" or "))
	b.WriteString(styles.HelpKey.Render("?"))
	b.WriteString(styles.HelpDesc.Render(" to close"))

	return styles.App.Render(b.String())
}

func helpLine(key, desc string) string {
	return "  " + styles.HelpKey.Render(padRight(key, 22)) + styles.HelpDesc.Render(desc) + "\n"
}

func padRight(s string, length int) string {
	n := len([]rune(s))
	if n >= length {
		return s
	}
	return s + strings.Repeat(" ", length-n)
}
