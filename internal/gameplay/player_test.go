package gameplay

import (
	"testing"

	"github.com/vovakirdan/rosterpick/internal/registry"
	"github.com/vovakirdan/rosterpick/internal/roster"
	"github.com/vovakirdan/rosterpick/internal/selection"
)

func TestResolvePlayer(t *testing.T) {
	catalog := roster.MustNew([]roster.Entity{
		{Name: "matteo"},
		{Name: "fede"},
		{Name: "stanis"},
	})

	tests := []struct {
		name     string
		stored   string
		store    bool
		expected string
		used     bool
	}{
		{"absent", "", false, "matteo", false},
		{"stored", "stanis", true, "stanis", true},
		{"stale", "removed", true, "matteo", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			state := registry.New()
			if tc.store {
				state.Set(selection.SelectedCharacterKey, tc.stored)
			}

			e, used := ResolvePlayer(state, catalog)
			if e.Name != tc.expected {
				t.Errorf("ResolvePlayer() = %s, expected %s", e.Name, tc.expected)
			}
			if used != tc.used {
				t.Errorf("ResolvePlayer() used = %v, expected %v", used, tc.used)
			}
		})
	}
}

func TestStart(t *testing.T) {
	catalog := roster.MustNew([]roster.Entity{{Name: "matteo"}, {Name: "noa"}})
	state := registry.New()

	scene := Start(state, catalog)
	if scene.Player.Name != "matteo" || scene.Stored {
		t.Errorf("Start() on empty state = %+v, expected fallback matteo", scene)
	}

	selection.NewBridge(state).Commit("noa")
	scene = Start(state, catalog)
	if scene.Player.Name != "noa" || !scene.Stored {
		t.Errorf("Start() = %+v, expected stored noa", scene)
	}
}
