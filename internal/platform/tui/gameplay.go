package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/rosterpick/internal/core"
	"github.com/vovakirdan/rosterpick/internal/gameplay"
	"github.com/vovakirdan/rosterpick/internal/preview"
)

// GameplayKeyMap defines the key bindings for the gameplay scene.
type GameplayKeyMap struct {
	Change key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameplayKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Change, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameplayKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Change, k.Quit}}
}

// DefaultGameplayKeyMap returns default key bindings.
func DefaultGameplayKeyMap() GameplayKeyMap {
	return GameplayKeyMap{
		Change: key.NewBinding(
			key.WithKeys("b", "esc"),
			key.WithHelp("b", "change character"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// GameplayModel is the scene entered after a character is confirmed.
type GameplayModel struct {
	scene       gameplay.Scene
	player      preview.State
	bounds      core.Size
	keys        GameplayKeyMap
	help        help.Model
	theme       Theme
	config      core.RuntimeConfig
	quitting    bool
	wantsSelect bool
}

// NewGameplayModel creates the scene for a resolved player.
func NewGameplayModel(setup Setup, scene gameplay.Scene, cfg core.RuntimeConfig) GameplayModel {
	h := help.New()
	h.Width = cfg.ScreenW

	return GameplayModel{
		scene:  scene,
		player: setup.NewRenderer().Render(scene.Player),
		bounds: setup.Bounds,
		keys:   DefaultGameplayKeyMap(),
		help:   h,
		theme:  setup.Theme,
		config: cfg,
	}
}

// Init initializes the scene.
func (m GameplayModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scene.
func (m GameplayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Change):
			m.wantsSelect = true
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
	}

	return m, nil
}

// View renders the scene.
func (m GameplayModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(m.theme.Title.Render(centerText("Playing as "+m.scene.Player.Name, m.config.ScreenW)))
	b.WriteString("\n\n")
	if !m.scene.Stored {
		b.WriteString(m.theme.Subtitle.Render(centerText("No character chosen, using the default", m.config.ScreenW)))
		b.WriteString("\n\n")
	}
	b.WriteString(RenderPreview(m.player, m.bounds, m.theme))
	b.WriteString("\n\n")
	b.WriteString(m.theme.Help.Render(m.help.View(m.keys)))
	return b.String()
}

// Scene returns the scene state.
func (m GameplayModel) Scene() gameplay.Scene {
	return m.scene
}

// WantsSelect returns true if the player asked to change character.
func (m GameplayModel) WantsSelect() bool {
	return m.wantsSelect
}

// IsQuitting returns true if user requested to quit.
func (m GameplayModel) IsQuitting() bool {
	return m.quitting
}
