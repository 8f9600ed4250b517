// Package gameplay is the downstream consumer of the selection flow.
package gameplay

import (
	"github.com/vovakirdan/rosterpick/internal/roster"
	"github.com/vovakirdan/rosterpick/internal/selection"
)

// ResolvePlayer returns the character the player confirmed. It falls back to
// the roster's first entry when nothing was stored or the stored name is no
// longer in the roster. The bool reports whether the stored choice was used.
func ResolvePlayer(state selection.SharedState, catalog *roster.Catalog) (roster.Entity, bool) {
	name, ok := selection.NewBridge(state).Load()
	if ok {
		if e, _, found := catalog.Find(name); found {
			return e, true
		}
	}
	return catalog.First(), false
}

// Scene is the state a gameplay session starts from.
type Scene struct {
	Player roster.Entity
	Stored bool // Player is the committed choice, not the fallback
}

// Start resolves the player and opens a scene.
func Start(state selection.SharedState, catalog *roster.Catalog) Scene {
	player, stored := ResolvePlayer(state, catalog)
	return Scene{Player: player, Stored: stored}
}
