package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/rosterpick/internal/core"
	"github.com/vovakirdan/rosterpick/internal/preview"
	"github.com/vovakirdan/rosterpick/internal/roster"
)

// spriteSizes is a fixed sprite source for tests.
type spriteSizes map[string]core.Size

func (s spriteSizes) Dimensions(key string) (core.Size, bool) {
	size, ok := s[key]
	return size, ok
}

func testSetup() Setup {
	tint := core.RGB(0xd94f30)
	return Setup{
		Catalog: roster.MustNew([]roster.Entity{
			{Name: "A", SpriteKey: "a/idle"},
			{Name: "B", Tint: &tint},
			{Name: "C"},
			{Name: "D"},
		}),
		Bounds:  core.Size{W: 24, H: 10},
		Options: []preview.Option{preview.WithSprites(spriteSizes{"a/idle": {W: 48, H: 64}})},
		Theme:   DefaultTheme(),
	}
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
)
