package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/rosterpick/internal/core"
	"github.com/vovakirdan/rosterpick/internal/preview"
)

// spriteFill is the glyph used to draw the fitted sprite box.
const spriteFill = "▓"

// RenderPreview draws a preview state inside a panel sized to the bounding box,
// so the layout does not shift between sprite and swatch entries.
func RenderPreview(s preview.State, bounds core.Size, th Theme) string {
	var body string
	switch s.Mode {
	case preview.ModeSprite:
		body = renderSprite(s, th)
	case preview.ModeSwatch:
		body = renderSwatch(s, bounds)
	default:
		body = ""
	}

	// Border adds one cell on each side of the sprite frame.
	area := lipgloss.Place(bounds.W+2, bounds.H+2, lipgloss.Center, lipgloss.Center, body)

	return th.Panel.Render(lipgloss.JoinVertical(lipgloss.Center,
		area,
		th.Label.Render(s.Label),
		th.Detail.Render(describe(s)),
	))
}

func renderSprite(s preview.State, th Theme) string {
	row := th.SpriteFill.Render(strings.Repeat(spriteFill, s.Fitted.W))
	rows := make([]string, s.Fitted.H)
	for i := range rows {
		rows[i] = row
	}
	return th.SpriteFrame.Render(strings.Join(rows, "\n"))
}

func renderSwatch(s preview.State, bounds core.Size) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(s.Color.Hex())).
		Width(bounds.W).
		Height(bounds.H).
		Render("")
}

// describe returns the one-line detail shown under the label.
func describe(s preview.State) string {
	switch s.Mode {
	case preview.ModeSprite:
		return fmt.Sprintf("%s %dx%d x%.2f", s.SpriteKey, s.Source.W, s.Source.H, s.Scale)
	case preview.ModeSwatch:
		return "swatch " + s.Color.Hex()
	}
	return ""
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}
