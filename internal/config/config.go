// Package config provides YAML-based roster configuration loading for the
// selection flow, with environment overrides for host settings.
package config

// Config is the full roster configuration file.
type Config struct {
	Characters []CharacterConfig `yaml:"characters"`
	Preview    PreviewConfig     `yaml:"preview"`
	Atlas      AtlasConfig       `yaml:"atlas"`
	UI         UIConfig          `yaml:"ui"`
}

// CharacterConfig defines one roster entry. Order in the file is roster order.
type CharacterConfig struct {
	Name   string `yaml:"name"`
	Tint   string `yaml:"tint,omitempty"`   // "#rrggbb"; empty means no tint
	Sprite string `yaml:"sprite,omitempty"` // Atlas frame name; empty means no sprite
}

// PreviewConfig defines the preview panel.
type PreviewConfig struct {
	MaxWidth     int    `yaml:"max_width"`     // Sprite bounding box width in cells
	MaxHeight    int    `yaml:"max_height"`    // Sprite bounding box height in cells
	DefaultColor string `yaml:"default_color"` // Swatch color for entries without a tint
}

// AtlasConfig points at sprite atlas metadata.
type AtlasConfig struct {
	// Data is the atlas JSON path. May contain {char} when Characters is set.
	// Empty uses the embedded atlas.
	Data string `yaml:"data,omitempty"`

	// Characters expands {char} in Data, one atlas per character.
	Characters []string `yaml:"characters,omitempty"`
}

// UIConfig selects terminal styling.
type UIConfig struct {
	Theme string `yaml:"theme,omitempty"` // "default" or "mono"
}

// Env holds host settings read from the environment.
type Env struct {
	ConfigPath string `env:"ROSTERPICK_CONFIG"`
	DBPath     string `env:"ROSTERPICK_DB"`
	AtlasData  string `env:"ROSTERPICK_ATLAS"`
	LogLevel   string `env:"ROSTERPICK_LOG_LEVEL"`
}
