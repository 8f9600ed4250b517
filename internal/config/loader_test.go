package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/rosterpick/internal/core"
	"github.com/vovakirdan/rosterpick/internal/roster"
)

func TestLoadEmbeddedDefault(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	def := DefaultConfig()
	if len(cfg.Characters) != len(def.Characters) {
		t.Fatalf("Characters = %d, expected %d", len(cfg.Characters), len(def.Characters))
	}
	for i := range def.Characters {
		if cfg.Characters[i] != def.Characters[i] {
			t.Errorf("Characters[%d] = %+v, expected %+v", i, cfg.Characters[i], def.Characters[i])
		}
	}
	if cfg.Preview != def.Preview {
		t.Errorf("Preview = %+v, expected %+v", cfg.Preview, def.Preview)
	}
	if cfg.UI != def.UI {
		t.Errorf("UI = %+v, expected %+v", cfg.UI, def.UI)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte(`
characters:
  - name: A
    sprite: a
  - name: B
    tint: "#111111"
preview:
  max_width: 12
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if len(cfg.Characters) != 2 || cfg.Characters[1].Tint != "#111111" {
		t.Errorf("Characters = %+v, unexpected", cfg.Characters)
	}
	// Unset fields take defaults
	if cfg.PreviewBounds() != (core.Size{W: 12, H: 10}) {
		t.Errorf("PreviewBounds() = %v, expected 12x10", cfg.PreviewBounds())
	}
	if cfg.DefaultSwatch() != core.RGB(0x808080) {
		t.Errorf("DefaultSwatch() = %v, expected #808080", cfg.DefaultSwatch())
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".rosterpick")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	data := []byte("characters:\n  - name: solo\n")
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if len(cfg.Characters) != 1 || cfg.Characters[0].Name != "solo" {
		t.Errorf("Characters = %+v, expected user config", cfg.Characters)
	}
}

func TestLoadCustomPathMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Error("Load() with missing custom path should fail")
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bad tint", "characters:\n  - name: A\n    tint: nope\n"},
		{"bad default color", "preview:\n  default_color: '#12'\n"},
		{"negative bounds", "preview:\n  max_width: -1\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.data))
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Parse() error = %v, expected ErrInvalidConfig", err)
			}
		})
	}

	if _, err := Parse([]byte("characters: [")); err == nil {
		t.Error("Parse() with broken YAML should fail")
	}
}

func TestCatalog(t *testing.T) {
	cat, err := DefaultConfig().Catalog()
	if err != nil {
		t.Fatalf("Catalog() failed: %v", err)
	}

	names := cat.Names()
	expected := []string{"matteo", "fede", "stanis", "noa"}
	for i := range expected {
		if names[i] != expected[i] {
			t.Errorf("Names()[%d] = %s, expected %s", i, names[i], expected[i])
		}
	}

	fede, _, _ := cat.Find("fede")
	if fede.HasSprite() || fede.Tint == nil || *fede.Tint != core.RGB(0x3a7bd5) {
		t.Errorf("fede = %+v, expected tint-only entry", fede)
	}
}

func TestCatalogEmpty(t *testing.T) {
	_, err := Config{}.Catalog()
	if !errors.Is(err, roster.ErrEmptyRoster) {
		t.Errorf("Catalog() error = %v, expected ErrEmptyRoster", err)
	}
}

func TestParseEnv(t *testing.T) {
	t.Setenv("ROSTERPICK_CONFIG", "/tmp/roster.yaml")
	t.Setenv("ROSTERPICK_DB", "/tmp/picks.db")
	t.Setenv("ROSTERPICK_LOG_LEVEL", "debug")

	e, err := ParseEnv()
	if err != nil {
		t.Fatalf("ParseEnv() failed: %v", err)
	}
	if e.ConfigPath != "/tmp/roster.yaml" || e.DBPath != "/tmp/picks.db" || e.LogLevel != "debug" {
		t.Errorf("ParseEnv() = %+v, unexpected", e)
	}
	if e.AtlasData != "" {
		t.Errorf("AtlasData = %q, expected empty", e.AtlasData)
	}
}

func TestDefaultAtlasEmbedded(t *testing.T) {
	if len(DefaultAtlasJSON()) == 0 {
		t.Error("DefaultAtlasJSON() is empty")
	}
	if len(DefaultYAML()) == 0 {
		t.Error("DefaultYAML() is empty")
	}
}
