package selection

import "github.com/vovakirdan/rosterpick/internal/roster"

// SelectedCharacterKey is the shared-state key holding the confirmed name.
const SelectedCharacterKey = "selectedCharacter"

// SharedState is the host-owned key/value capability.
type SharedState interface {
	Get(key string) (string, bool)
	Set(key, value string)
}

// Bridge reads and writes the selected character in host shared state.
type Bridge struct {
	state SharedState
}

// NewBridge creates a bridge over the given shared state.
func NewBridge(state SharedState) *Bridge {
	return &Bridge{state: state}
}

// Load returns the previously committed name. ok is false on first run.
func (b *Bridge) Load() (name string, ok bool) {
	return b.state.Get(SelectedCharacterKey)
}

// Commit overwrites the stored name.
func (b *Bridge) Commit(name string) {
	b.state.Set(SelectedCharacterKey, name)
}

// Begin starts a selection flow seeded from the choice stored in b. The
// returned controller commits back to b on confirm.
func Begin(catalog *roster.Catalog, b *Bridge, opts ...Option) (*Controller, error) {
	previous, _ := b.Load()
	opts = append([]Option{WithCommitter(b)}, opts...)
	return New(catalog, previous, opts...)
}
