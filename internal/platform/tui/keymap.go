package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/rosterpick/internal/selection"
)

// KeyMap defines the key bindings for the selection screen.
// Every binding resolves to a selection intent or a host action, so the
// controller never sees raw keys.
type KeyMap struct {
	Prev    key.Binding
	Next    key.Binding
	Confirm key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Confirm, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.Confirm},
		{k.Back, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Prev: key.NewBinding(
			key.WithKeys("up", "k", "w", "left", "h"),
			key.WithHelp("up/k", "previous"),
		),
		Next: key.NewBinding(
			key.WithKeys("down", "j", "s", "right", "l"),
			key.WithHelp("down/j", "next"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "confirm"),
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

// MenuAction represents a host-level action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionBack
	MenuActionQuit
)

// Intent translates a key to a selection intent.
// ok is false for keys that carry no selection meaning.
func (k KeyMap) Intent(msg tea.KeyMsg) (in selection.Intent, ok bool) {
	switch {
	case key.Matches(msg, k.Prev):
		return selection.Move(-1), true
	case key.Matches(msg, k.Next):
		return selection.Move(1), true
	case key.Matches(msg, k.Confirm):
		return selection.Confirm(), true
	}
	return selection.Intent{}, false
}

// Action translates a key to a host action.
func (k KeyMap) Action(msg tea.KeyMsg) MenuAction {
	switch {
	case key.Matches(msg, k.Quit):
		return MenuActionQuit
	case key.Matches(msg, k.Back):
		return MenuActionBack
	}
	return MenuActionNone
}
