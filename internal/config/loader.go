package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/rosterpick/internal/core"
	"github.com/vovakirdan/rosterpick/internal/roster"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Load loads the roster configuration.
// Search order: customPath -> ~/.rosterpick/config.yaml -> ./configs/rosterpick.yaml -> embedded default
func Load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/rosterpick.yaml"); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultRosterYAML)
	if err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes and validates a YAML configuration. Missing preview fields
// take their default values.
func Parse(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	def := DefaultConfig().Preview
	if c.Preview.MaxWidth == 0 {
		c.Preview.MaxWidth = def.MaxWidth
	}
	if c.Preview.MaxHeight == 0 {
		c.Preview.MaxHeight = def.MaxHeight
	}
	if c.Preview.DefaultColor == "" {
		c.Preview.DefaultColor = def.DefaultColor
	}
}

// Validate checks colors and bounds. An empty character list is reported by
// Catalog as roster.ErrEmptyRoster, not here.
func (c Config) Validate() error {
	if c.Preview.MaxWidth < 0 || c.Preview.MaxHeight < 0 {
		return fmt.Errorf("%w: preview bounds must be positive", ErrInvalidConfig)
	}
	if _, err := core.ParseColor(c.Preview.DefaultColor); err != nil {
		return fmt.Errorf("%w: preview.default_color: %w", ErrInvalidConfig, err)
	}
	for i, ch := range c.Characters {
		if ch.Tint == "" {
			continue
		}
		if _, err := core.ParseColor(ch.Tint); err != nil {
			return fmt.Errorf("%w: characters[%d] (%s): %w", ErrInvalidConfig, i, ch.Name, err)
		}
	}
	return nil
}

// Catalog builds the roster from the configured characters.
func (c Config) Catalog() (*roster.Catalog, error) {
	entities := make([]roster.Entity, 0, len(c.Characters))
	for _, ch := range c.Characters {
		e := roster.Entity{
			Name:      ch.Name,
			SpriteKey: ch.Sprite,
		}
		if ch.Tint != "" {
			tint, err := core.ParseColor(ch.Tint)
			if err != nil {
				return nil, fmt.Errorf("config: character %q: %w", ch.Name, err)
			}
			e.Tint = &tint
		}
		entities = append(entities, e)
	}
	return roster.New(entities)
}

// PreviewBounds returns the sprite bounding box.
func (c Config) PreviewBounds() core.Size {
	return core.Size{W: c.Preview.MaxWidth, H: c.Preview.MaxHeight}
}

// DefaultSwatch returns the parsed default swatch color.
func (c Config) DefaultSwatch() core.Color {
	color, err := core.ParseColor(c.Preview.DefaultColor)
	if err != nil {
		return core.DefaultSwatch
	}
	return color
}

// ParseEnv reads host settings from the environment.
func ParseEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return e, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".rosterpick", filename)
}
