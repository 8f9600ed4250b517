package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/rosterpick/internal/config"
	"github.com/vovakirdan/rosterpick/internal/core"
	"github.com/vovakirdan/rosterpick/internal/preview"
)

func TestLoadSheetEmbedded(t *testing.T) {
	flagAtlas = ""
	sheet, err := loadSheet(config.DefaultConfig())
	if err != nil {
		t.Fatalf("loadSheet() failed: %v", err)
	}
	if _, ok := sheet.Dimensions("matteo/idle"); !ok {
		t.Error("expected matteo/idle in embedded atlas")
	}
}

func TestLoadSheetFlagOverridesConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "atlas.json")
	data := []byte(`{"frames":[{"filename":"x.png","frame":{"x":0,"y":0,"w":4,"h":2}}],"meta":{"size":{"w":4,"h":2}}}`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	flagAtlas = path
	defer func() { flagAtlas = "" }()

	cfg := config.DefaultConfig()
	cfg.Atlas.Data = filepath.Join(t.TempDir(), "missing.json")

	sheet, err := loadSheet(cfg)
	if err != nil {
		t.Fatalf("loadSheet() failed: %v", err)
	}
	if size, ok := sheet.Dimensions("x"); !ok || size != (core.Size{W: 4, H: 2}) {
		t.Errorf("Dimensions(x) = (%v, %v), expected 4x2", size, ok)
	}
}

func TestDetail(t *testing.T) {
	tests := []struct {
		state    preview.State
		expected string
	}{
		{
			preview.State{
				Mode:      preview.ModeSprite,
				SpriteKey: "a/idle",
				Source:    core.Size{W: 48, H: 64},
				Fitted:    core.Size{W: 8, H: 10},
			},
			"a/idle 48x64 -> 8x10",
		},
		{preview.State{Mode: preview.ModeSwatch, Color: core.RGB(0x3a7bd5)}, "#3a7bd5"},
		{preview.State{}, ""},
	}

	for _, tc := range tests {
		if got := detail(tc.state); got != tc.expected {
			t.Errorf("detail(%v) = %q, expected %q", tc.state.Mode, got, tc.expected)
		}
	}
}
