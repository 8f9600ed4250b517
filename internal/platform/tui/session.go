// Package tui provides the Bubble Tea hosts for the selection flow, locally
// and over SSH. Input is normalized into selection intents before it reaches
// a controller.
package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/rosterpick/internal/core"
	"github.com/vovakirdan/rosterpick/internal/gameplay"
	"github.com/vovakirdan/rosterpick/internal/registry"
	"github.com/vovakirdan/rosterpick/internal/selection"
	"github.com/vovakirdan/rosterpick/internal/storage"
)

// SessionModel manages the full flow: selection -> gameplay -> selection.
// Each session owns its shared state, so choices never leak between sessions.
type SessionModel struct {
	setup     Setup
	state     *registry.Registry
	store     *storage.Store
	logger    *log.Logger
	config    core.RuntimeConfig
	sessionID string
	user      string
	sel       *SelectModel
	game      *GameplayModel
	inGame    bool
	quitting  bool
	err       error
}

// NewSessionModel creates a session that starts on the selection screen.
// store may be nil, in which case picks are not recorded. A nil logger
// discards output.
func NewSessionModel(setup Setup, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig, user string) SessionModel {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	m := SessionModel{
		setup:     setup,
		state:     registry.New(),
		store:     store,
		logger:    logger,
		config:    cfg,
		sessionID: uuid.NewString(),
		user:      user,
	}
	m.startSelection()
	return m
}

// startSelection opens a new selection flow over the session state.
func (m *SessionModel) startSelection() {
	sel, err := NewSelectModel(m.setup, selection.NewBridge(m.state), m.config)
	if err != nil {
		m.err = err
		m.quitting = true
		return
	}
	m.sel = &sel
	m.inGame = false
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	if m.err != nil {
		return tea.Quit
	}
	return nil
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
		if m.game != nil && !m.inGame {
			// Keep the parked scene in sync for when selection is cancelled.
			updated, _ := m.game.Update(msg)
			if g, ok := updated.(GameplayModel); ok {
				m.game = &g
			}
		}
	}

	if m.quitting {
		return m, tea.Quit
	}

	if m.inGame && m.game != nil {
		return m.updateGame(msg)
	}
	return m.updateSelect(msg)
}

// updateSelect handles updates on the selection screen.
func (m SessionModel) updateSelect(msg tea.Msg) (tea.Model, tea.Cmd) {
	newSel, cmd := m.sel.Update(msg)
	if sel, ok := newSel.(SelectModel); ok {
		m.sel = &sel
	}

	if m.sel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if entity, ok := m.sel.Confirmed(); ok {
		m.logger.Info("character confirmed",
			"session", m.sessionID,
			"user", m.user,
			"character", entity.Name,
		)
		m.recordPick(entity.Name)
		m.enterGame()
		return m, m.game.Init()
	}

	if m.sel.Cancelled() {
		if m.game == nil {
			// Nothing to go back to on the first selection.
			m.quitting = true
			return m, tea.Quit
		}
		m.logger.Debug("selection cancelled", "session", m.sessionID)
		m.sel = nil
		m.inGame = true
		return m, nil
	}

	return m, cmd
}

// updateGame handles updates in the gameplay scene.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newGame, cmd := m.game.Update(msg)
	if g, ok := newGame.(GameplayModel); ok {
		m.game = &g
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.game.WantsSelect() {
		// Reset the flag so a cancelled selection returns to a live scene.
		g := *m.game
		g.wantsSelect = false
		m.game = &g
		m.startSelection()
		if m.quitting {
			return m, tea.Quit
		}
		return m, m.sel.Init()
	}

	return m, cmd
}

// enterGame opens the gameplay scene for the committed choice.
func (m *SessionModel) enterGame() {
	scene := gameplay.Start(m.state, m.setup.Catalog)
	g := NewGameplayModel(m.setup, scene, m.config)
	m.game = &g
	m.sel = nil
	m.inGame = true
}

// recordPick stores the pick in history.
func (m *SessionModel) recordPick(name string) {
	if m.store == nil {
		return
	}
	if _, err := m.store.SavePick(m.sessionID, name); err != nil {
		// Best-effort: history is never required for play.
		m.logger.Warn("could not record pick", "error", err)
	}
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	if m.inGame && m.game != nil {
		return m.game.View()
	}
	if m.sel != nil {
		return m.sel.View()
	}
	return ""
}

// State returns the session's shared state.
func (m SessionModel) State() *registry.Registry {
	return m.state
}

// SessionID returns the identifier used for pick history.
func (m SessionModel) SessionID() string {
	return m.sessionID
}

// InGame returns true while the gameplay scene is active.
func (m SessionModel) InGame() bool {
	return m.inGame
}

// Err returns the error that ended the session early, if any.
func (m SessionModel) Err() error {
	return m.err
}

// Run starts the session locally and blocks until the user quits.
// It returns the shared state so callers can report the final choice.
func Run(setup Setup, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) (*registry.Registry, error) {
	model := NewSessionModel(setup, store, logger, cfg, "local")
	if model.Err() != nil {
		return nil, model.Err()
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(), // Hover highlights rows
	)

	finalModel, err := p.Run()
	if err != nil {
		return model.State(), err
	}

	if m, ok := finalModel.(SessionModel); ok {
		return m.State(), m.Err()
	}
	return model.State(), nil
}
