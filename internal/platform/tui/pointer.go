package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/rosterpick/internal/core"
	"github.com/vovakirdan/rosterpick/internal/selection"
)

// ListArea is the screen region occupied by roster rows, one row per entry.
type ListArea struct {
	core.Rect
}

// Row returns the roster index under (x, y).
func (a ListArea) Row(x, y int) (int, bool) {
	if !a.Contains(x, y) {
		return -1, false
	}
	return y - a.Y, true
}

// MouseIntents translates a mouse event over the list into selection intents.
// Hovering a row highlights it, a left click highlights and confirms it,
// and the wheel steps through the roster.
func MouseIntents(msg tea.MouseMsg, area ListArea) []selection.Intent {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if msg.Action == tea.MouseActionPress {
			return []selection.Intent{selection.Move(-1)}
		}
		return nil
	case tea.MouseButtonWheelDown:
		if msg.Action == tea.MouseActionPress {
			return []selection.Intent{selection.Move(1)}
		}
		return nil
	}

	row, ok := area.Row(msg.X, msg.Y)
	if !ok {
		return nil
	}

	switch {
	case msg.Action == tea.MouseActionMotion:
		return []selection.Intent{selection.SetTo(row)}
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		return []selection.Intent{selection.SetTo(row), selection.Confirm()}
	}
	return nil
}
