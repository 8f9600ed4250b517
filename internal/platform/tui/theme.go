package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme contains the visual styles for the selection and gameplay screens.
type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style

	// Roster list
	ItemNormal lipgloss.Style
	ItemActive lipgloss.Style
	ItemMarker lipgloss.Style // Last committed choice

	// Preview panel
	Panel       lipgloss.Style
	SpriteFrame lipgloss.Style
	SpriteFill  lipgloss.Style
	Label       lipgloss.Style
	Detail      lipgloss.Style

	Help lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true),
		Subtitle: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),

		ItemNormal: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		ItemActive: lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Bold(true),
		ItemMarker: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
		SpriteFrame: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("51")),
		SpriteFill: lipgloss.NewStyle().Foreground(lipgloss.Color("51")),
		Label:      lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		Detail:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),

		Help: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// MonochromeTheme returns a grayscale theme for terminals without color.
func MonochromeTheme() Theme {
	theme := DefaultTheme()
	theme.Title = lipgloss.NewStyle().Bold(true)
	theme.ItemActive = lipgloss.NewStyle().Reverse(true)
	theme.SpriteFrame = theme.SpriteFrame.BorderForeground(lipgloss.Color("250"))
	theme.SpriteFill = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	return theme
}

// ThemeByName resolves a theme name. Unknown names fall back to the default.
func ThemeByName(name string) Theme {
	switch name {
	case "mono", "monochrome":
		return MonochromeTheme()
	default:
		return DefaultTheme()
	}
}
