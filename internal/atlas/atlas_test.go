package atlas

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/rosterpick/internal/core"
)

const arrayJSON = `{
	"frames": [
		{"filename": "matteo/idle", "frame": {"x": 0, "y": 0, "w": 48, "h": 64}},
		{"filename": "matteo/run.png", "frame": {"x": 48, "y": 0, "w": 40, "h": 64}},
		{"filename": "matteo/flat", "frame": {"x": 0, "y": 64, "w": 16, "h": 0}}
	],
	"meta": {"size": {"w": 128, "h": 128}}
}`

const hashJSON = `{
	"frames": {
		"noa/idle.png": {"frame": {"x": 0, "y": 0, "w": 32, "h": 32}}
	},
	"meta": {"size": {"w": 32, "h": 32}}
}`

func TestParseArray(t *testing.T) {
	a, err := Parse([]byte(arrayJSON))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if len(a.Frames) != 3 {
		t.Fatalf("Frames = %d, expected 3", len(a.Frames))
	}
	if a.Size != (core.Size{W: 128, H: 128}) {
		t.Errorf("Size = %v, expected 128x128", a.Size)
	}
	f := a.Frames[1]
	if f.Name != "matteo/run.png" || f.X != 48 || f.W != 40 || f.H != 64 {
		t.Errorf("Frames[1] = %+v, unexpected", f)
	}
}

func TestParseHash(t *testing.T) {
	a, err := Parse([]byte(hashJSON))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if len(a.Frames) != 1 || a.Frames[0].Name != "noa/idle.png" || a.Frames[0].W != 32 {
		t.Errorf("Frames = %+v, unexpected", a.Frames)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", "frames: []"},
		{"frames scalar", `{"frames": 3}`},
		{"missing filename", `{"frames": [{"frame": {"x": 0, "y": 0, "w": 1, "h": 1}}]}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.data))
			if !errors.Is(err, ErrInvalidMetadata) {
				t.Errorf("Parse() error = %v, expected ErrInvalidMetadata", err)
			}
		})
	}
}

func TestParseEmpty(t *testing.T) {
	a, err := Parse([]byte(`{}`))
	if err != nil {
		t.Fatalf("Parse({}) failed: %v", err)
	}
	if len(a.Frames) != 0 || !a.Size.Empty() {
		t.Errorf("Parse({}) = %+v, expected empty atlas", a)
	}
}

func TestSheetDimensions(t *testing.T) {
	a, _ := Parse([]byte(arrayJSON))
	b, _ := Parse([]byte(hashJSON))
	s := NewSheet(a, nil, b)

	tests := []struct {
		key      string
		expected core.Size
		ok       bool
	}{
		{"matteo/idle", core.Size{W: 48, H: 64}, true},
		{"matteo/idle.png", core.Size{W: 48, H: 64}, true},
		{"matteo/run", core.Size{W: 40, H: 64}, true},
		{"noa/idle", core.Size{W: 32, H: 32}, true},
		{"matteo/flat", core.Size{W: 16, H: 0}, true},
		{"fede/idle", core.Size{}, false},
		{"matteo/idle.gif", core.Size{}, false},
	}

	for _, tc := range tests {
		size, ok := s.Dimensions(tc.key)
		if ok != tc.ok || size != tc.expected {
			t.Errorf("Dimensions(%q) = (%v, %v), expected (%v, %v)", tc.key, size, ok, tc.expected, tc.ok)
		}
	}

	if s.Len() != 4 {
		t.Errorf("Len() = %d, expected 4", s.Len())
	}
	if names := s.Names(); names[0] != "matteo/flat" {
		t.Errorf("Names()[0] = %s, expected sorted order", names[0])
	}
}

func TestLoadSheet(t *testing.T) {
	dir := t.TempDir()
	for name, data := range map[string]string{
		"matteo-atlas.json": arrayJSON,
		"noa-atlas.json":    hashJSON,
	} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(data), 0o600); err != nil {
			t.Fatal(err)
		}
	}

	s, err := LoadSheet(filepath.Join(dir, "{char}-atlas.json"), []string{"matteo", "noa"})
	if err != nil {
		t.Fatalf("LoadSheet() failed: %v", err)
	}
	if _, ok := s.Dimensions("noa/idle"); !ok {
		t.Error("Dimensions(noa/idle) missing from merged sheet")
	}
	if _, ok := s.Dimensions("matteo/idle"); !ok {
		t.Error("Dimensions(matteo/idle) missing from merged sheet")
	}

	single, err := LoadSheet(filepath.Join(dir, "noa-atlas.json"), nil)
	if err != nil {
		t.Fatalf("LoadSheet() single failed: %v", err)
	}
	if single.Len() != 1 {
		t.Errorf("Len() = %d, expected 1", single.Len())
	}

	if _, err := LoadSheet(filepath.Join(dir, "atlas.json"), []string{"noa"}); err == nil {
		t.Error("LoadSheet() without {char} placeholder should fail when batching")
	}
	if _, err := LoadSheet(filepath.Join(dir, "{char}-atlas.json"), []string{"fede"}); err == nil {
		t.Error("LoadSheet() with a missing atlas should fail")
	}
}
