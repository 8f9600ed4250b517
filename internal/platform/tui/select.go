package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/rosterpick/internal/core"
	"github.com/vovakirdan/rosterpick/internal/preview"
	"github.com/vovakirdan/rosterpick/internal/roster"
	"github.com/vovakirdan/rosterpick/internal/selection"
)

// Selection screen layout constants
const (
	listTop      = 5  // Rows above the roster list: blank, title, blank, subtitle, blank
	minListWidth = 16 // Narrowest roster column
	listGap      = 2  // Columns between list and preview panel
)

// Setup holds everything a host needs to build selection screens.
type Setup struct {
	Catalog *roster.Catalog
	Bounds  core.Size
	Options []preview.Option
	Theme   Theme
}

// NewRenderer creates a fresh preview renderer for one selection flow.
func (s Setup) NewRenderer() *preview.Renderer {
	return preview.NewRenderer(s.Bounds, s.Options...)
}

// SelectModel is the Bubble Tea model for the character selection screen.
// It owns one controller for the lifetime of a single selection flow.
type SelectModel struct {
	catalog   *roster.Catalog
	ctrl      *selection.Controller
	renderer  *preview.Renderer
	previous  string // Name committed before this flow started
	bounds    core.Size
	keys      KeyMap
	help      help.Model
	theme     Theme
	config    core.RuntimeConfig
	listWidth int
	quitting  bool
	cancelled bool
	confirmed *roster.Entity
}

// NewSelectModel creates a selection screen seeded from the choice stored in
// bridge. Confirming commits back through the same bridge.
func NewSelectModel(setup Setup, bridge *selection.Bridge, cfg core.RuntimeConfig) (SelectModel, error) {
	renderer := setup.NewRenderer()
	ctrl, err := selection.Begin(setup.Catalog, bridge, selection.WithPreview(renderer))
	if err != nil {
		return SelectModel{}, err
	}

	previous, _ := bridge.Load()

	listWidth := minListWidth
	for _, name := range setup.Catalog.Names() {
		// Cursor, name, space, marker
		listWidth = core.Max(listWidth, lipgloss.Width(name)+6)
	}

	h := help.New()
	h.ShowAll = false
	h.Width = cfg.ScreenW

	return SelectModel{
		catalog:   setup.Catalog,
		ctrl:      ctrl,
		renderer:  renderer,
		previous:  previous,
		bounds:    setup.Bounds,
		keys:      DefaultKeyMap(),
		help:      h,
		theme:     setup.Theme,
		config:    cfg,
		listWidth: listWidth,
	}, nil
}

// Init initializes the selection model.
func (m SelectModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the selection screen.
func (m SelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.apply(MouseIntents(msg, m.ListArea())...)
		return m, nil

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m SelectModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.Action(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionBack:
		// The controller is dropped without committing.
		m.cancelled = true
		return m, nil
	}

	if in, ok := m.keys.Intent(msg); ok {
		m.apply(in)
	}
	return m, nil
}

// apply routes intents to the controller in arrival order.
func (m *SelectModel) apply(intents ...selection.Intent) {
	if len(intents) == 0 || m.cancelled {
		return
	}
	res := m.ctrl.Dispatch(intents...)
	if res.Confirmed {
		e := m.ctrl.Current()
		m.confirmed = &e
	}
}

// ListArea returns the screen region holding the roster rows.
func (m SelectModel) ListArea() ListArea {
	return ListArea{Rect: core.NewRect(0, listTop, m.listWidth, m.ctrl.Len())}
}

// View renders the selection screen.
func (m SelectModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(m.theme.Title.Render(centerText("C H O O S E   Y O U R   C H A R A C T E R", m.config.ScreenW)))
	b.WriteString("\n\n")
	b.WriteString(m.theme.Subtitle.Render(centerText(m.subtitle(), m.config.ScreenW)))
	b.WriteString("\n\n")

	panel := RenderPreview(m.renderer.State(), m.bounds, m.theme)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderList(),
		strings.Repeat(" ", listGap),
		panel,
	))

	b.WriteString("\n\n")
	b.WriteString(m.theme.Help.Render(m.help.View(m.keys)))

	return b.String()
}

func (m SelectModel) subtitle() string {
	if m.previous == "" {
		return "Pick a character to play"
	}
	return "Last played: " + m.previous
}

// renderList renders one fixed-width row per roster entry.
func (m SelectModel) renderList() string {
	entities := m.catalog.List()
	rows := make([]string, len(entities))

	for i, e := range entities {
		cursor := "  "
		style := m.theme.ItemNormal
		if i == m.ctrl.Index() {
			cursor = "> "
			style = m.theme.ItemActive
		}

		line := cursor + e.Name
		if e.Name == m.previous {
			line += " " + m.theme.ItemMarker.Render("*")
		}
		rows[i] = style.Width(m.listWidth).Render(line)
	}
	return strings.Join(rows, "\n")
}

// Controller returns the selection controller driving this screen.
func (m SelectModel) Controller() *selection.Controller {
	return m.ctrl
}

// Preview returns the preview currently shown.
func (m SelectModel) Preview() preview.State {
	return m.renderer.State()
}

// Confirmed returns the confirmed character, if any.
func (m SelectModel) Confirmed() (roster.Entity, bool) {
	if m.confirmed == nil {
		return roster.Entity{}, false
	}
	return *m.confirmed, true
}

// Cancelled returns true if the user backed out without confirming.
func (m SelectModel) Cancelled() bool {
	return m.cancelled
}

// IsQuitting returns true if user requested to quit.
func (m SelectModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the current runtime config (may have been updated by resize).
func (m SelectModel) Config() core.RuntimeConfig {
	return m.config
}
