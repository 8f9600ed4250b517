package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/rosterpick/internal/storage"
)

// maxRecentPicks bounds the recent view.
const maxRecentPicks = 100

// PicksView selects which history table is shown.
type PicksView int

const (
	PicksViewPopular PicksView = iota
	PicksViewRecent
)

// String returns the view's tab title.
func (v PicksView) String() string {
	if v == PicksViewRecent {
		return "Recent"
	}
	return "Popular"
}

// PicksKeyMap defines the key bindings for the pick history screen.
type PicksKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextView key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k PicksKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextView, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k PicksKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextView},
		{k.Back, k.Quit},
	}
}

// DefaultPicksKeyMap returns default key bindings.
func DefaultPicksKeyMap() PicksKeyMap {
	return PicksKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextView: key.NewBinding(
			key.WithKeys("tab", "shift+tab", "left", "right"),
			key.WithHelp("tab", "popular/recent"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// PicksModel is the Bubble Tea model for the pick history screen.
type PicksModel struct {
	store    *storage.Store
	view     PicksView
	counts   []storage.PickCount
	recent   []storage.Pick
	table    table.Model
	help     help.Model
	keys     PicksKeyMap
	width    int
	height   int
	quitting bool
	loadErr  error
}

// NewPicksModel creates a new pick history model.
func NewPicksModel(store *storage.Store, width, height int) PicksModel {
	h := help.New()
	h.ShowAll = false

	m := PicksModel{
		store:  store,
		keys:   DefaultPicksKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.load()
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

// load reads both views from the store.
func (m *PicksModel) load() {
	if m.store == nil {
		return
	}
	counts, err := m.store.PickCounts()
	if err != nil {
		m.loadErr = err
		return
	}
	recent, err := m.store.RecentPicks(maxRecentPicks)
	if err != nil {
		m.loadErr = err
		return
	}
	m.counts = counts
	m.recent = recent
}

// createTable creates a new table with columns for the current view.
func (m *PicksModel) createTable() table.Model {
	var columns []table.Column
	switch m.view {
	case PicksViewRecent:
		columns = []table.Column{
			{Title: "Character", Width: 16},
			{Title: "Session", Width: 10},
			{Title: "Date", Width: 14},
		}
	default:
		columns = []table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Character", Width: 16},
			{Title: "Picks", Width: 8},
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// updateTableRows fills the table for the current view.
func (m *PicksModel) updateTableRows() {
	var rows []table.Row
	switch m.view {
	case PicksViewRecent:
		rows = make([]table.Row, len(m.recent))
		for i, p := range m.recent {
			rows[i] = table.Row{
				p.Character,
				shortSession(p.SessionID),
				p.CreatedAt.Format("Jan 02 15:04"),
			}
		}
	default:
		rows = make([]table.Row, len(m.counts))
		for i, c := range m.counts {
			rows[i] = table.Row{
				fmt.Sprintf("#%d", i+1),
				c.Character,
				fmt.Sprintf("%d", c.Count),
			}
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// shortSession trims a session ID for display.
func shortSession(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// Init initializes the model.
func (m PicksModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the pick history screen.
func (m PicksModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit), key.Matches(msg, m.keys.Back):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextView):
			m.view = (m.view + 1) % 2
			m.table = m.createTable()
			m.updateTableRows()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the pick history.
func (m PicksModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))

	b.WriteString(titleStyle.Render(centerText("PICK HISTORY - "+m.view.String(), m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or empty message.
func (m PicksModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	if m.loadErr != nil {
		return emptyStyle.Render("Could not load history:\n" + m.loadErr.Error())
	}
	if len(m.counts) == 0 {
		return emptyStyle.Render("No picks recorded yet.\nRun 'rosterpick select' to choose a character!")
	}
	return m.table.View()
}

// CurrentView returns the active view.
func (m PicksModel) CurrentView() PicksView {
	return m.view
}

// Rows returns the number of rows in the active table.
func (m PicksModel) Rows() int {
	return len(m.table.Rows())
}

// RunPicks runs the pick history screen.
func RunPicks(store *storage.Store, width, height int) error {
	p := tea.NewProgram(
		NewPicksModel(store, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
