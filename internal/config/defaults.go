package config

import (
	_ "embed"
)

//go:embed defaults/rosterpick.yaml
var defaultRosterYAML []byte

//go:embed defaults/atlas.json
var defaultAtlasJSON []byte

// DefaultConfig returns the built-in roster configuration.
func DefaultConfig() Config {
	return Config{
		Characters: []CharacterConfig{
			{Name: "matteo", Tint: "#d94f30", Sprite: "matteo/idle"},
			{Name: "fede", Tint: "#3a7bd5"},
			{Name: "stanis", Tint: "#5cb85c", Sprite: "stanis/idle"},
			{Name: "noa", Tint: "#b04fd9", Sprite: "noa/idle"},
		},
		Preview: PreviewConfig{
			MaxWidth:     24,
			MaxHeight:    10,
			DefaultColor: "#808080",
		},
		UI: UIConfig{Theme: "default"},
	}
}

// DefaultAtlasJSON returns the embedded atlas metadata used when no atlas
// file is configured.
func DefaultAtlasJSON() []byte {
	return defaultAtlasJSON
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultRosterYAML
}
