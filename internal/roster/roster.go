// Package roster holds the fixed, ordered catalog of selectable characters.
// A Catalog is immutable once built; lookups never mutate it.
package roster

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/rosterpick/internal/core"
)

var (
	// ErrEmptyRoster is returned when a catalog has no entities. The selection
	// flow cannot start without at least one entry.
	ErrEmptyRoster = errors.New("roster: empty roster")

	// ErrDuplicateName is returned when two entities share a name.
	ErrDuplicateName = errors.New("roster: duplicate entity name")

	// ErrUnnamedEntity is returned for an entity with an empty name.
	ErrUnnamedEntity = errors.New("roster: entity has no name")
)

// Entity is one selectable roster member.
type Entity struct {
	Name      string      // Unique, case-sensitive key
	Tint      *core.Color // Optional swatch color
	SpriteKey string      // Optional sprite frame reference; empty means none
}

// HasSprite reports whether the entity references a sprite.
func (e Entity) HasSprite() bool {
	return e.SpriteKey != ""
}

// Catalog is an ordered list of entities. Order defines index positions and
// the wrap-around order used for navigation.
type Catalog struct {
	entities []Entity
	index    map[string]int
}

// New builds a catalog, preserving the given order.
func New(entities []Entity) (*Catalog, error) {
	if len(entities) == 0 {
		return nil, ErrEmptyRoster
	}

	c := &Catalog{
		entities: make([]Entity, len(entities)),
		index:    make(map[string]int, len(entities)),
	}
	for i, e := range entities {
		if e.Name == "" {
			return nil, fmt.Errorf("%w (position %d)", ErrUnnamedEntity, i)
		}
		if _, dup := c.index[e.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, e.Name)
		}
		if e.Tint != nil {
			tint := *e.Tint
			e.Tint = &tint
		}
		c.entities[i] = e
		c.index[e.Name] = i
	}
	return c, nil
}

// MustNew is like New but panics on error. Intended for package-level rosters.
func MustNew(entities []Entity) *Catalog {
	c, err := New(entities)
	if err != nil {
		panic(err)
	}
	return c
}

// List returns the entities in catalog order. The slice is a copy.
func (c *Catalog) List() []Entity {
	out := make([]Entity, len(c.entities))
	copy(out, c.entities)
	return out
}

// Find looks up an entity by exact name. The boolean is false on a miss,
// which callers treat as a normal outcome.
func (c *Catalog) Find(name string) (Entity, int, bool) {
	i, ok := c.index[name]
	if !ok {
		return Entity{}, -1, false
	}
	return c.entities[i], i, true
}

// Len returns the number of entities.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entities)
}

// At returns the entity at position i. Panics if i is out of range.
func (c *Catalog) At(i int) Entity {
	return c.entities[i]
}

// First returns the first entity in catalog order.
func (c *Catalog) First() Entity {
	return c.entities[0]
}

// Names returns entity names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.entities))
	for i, e := range c.entities {
		names[i] = e.Name
	}
	return names
}
