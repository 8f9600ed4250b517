// Package selection implements the character selection state machine.
//
// A Controller owns the highlighted index and the Browsing -> Confirmed
// phase. Hosts translate raw input into Intents; the controller never sees
// which key or pointer produced them. A Controller is not safe for concurrent
// use: the host applies intents one at a time on its run loop.
package selection

import (
	"github.com/vovakirdan/rosterpick/internal/core"
	"github.com/vovakirdan/rosterpick/internal/roster"
)

// Phase is the controller lifecycle stage.
type Phase int

const (
	PhaseBrowsing Phase = iota
	PhaseConfirmed
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseBrowsing:
		return "browsing"
	case PhaseConfirmed:
		return "confirmed"
	default:
		return "unknown"
	}
}

// Refresher is notified with the current entity after every index change.
type Refresher interface {
	Refresh(e roster.Entity)
}

// Committer receives the confirmed entity name.
type Committer interface {
	Commit(name string)
}

// Controller is one instance of the selection flow. Discard it after
// confirm or cancel and create a new one on re-entry.
type Controller struct {
	catalog *roster.Catalog
	index   int
	phase   Phase

	preview Refresher
	commit  Committer
}

// Option configures a Controller.
type Option func(*Controller)

// WithPreview registers the refresher driven by index changes.
func WithPreview(r Refresher) Option {
	return func(c *Controller) {
		c.preview = r
	}
}

// WithCommitter registers where the confirmed choice is written.
func WithCommitter(cm Committer) Option {
	return func(c *Controller) {
		c.commit = cm
	}
}

// New initializes a controller seeded from a previous choice. An empty or
// unknown previous name starts at index 0. Only an empty catalog fails.
func New(catalog *roster.Catalog, previous string, opts ...Option) (*Controller, error) {
	if catalog.Len() == 0 {
		return nil, roster.ErrEmptyRoster
	}

	c := &Controller{
		catalog: catalog,
		phase:   PhaseBrowsing,
	}
	for _, opt := range opts {
		opt(c)
	}

	if _, i, ok := catalog.Find(previous); ok {
		c.index = i
	}
	c.refresh()

	return c, nil
}

// Index returns the highlighted position.
func (c *Controller) Index() int {
	return c.index
}

// Phase returns the current phase.
func (c *Controller) Phase() Phase {
	return c.phase
}

// Confirmed reports whether the flow has ended with a choice.
func (c *Controller) Confirmed() bool {
	return c.phase == PhaseConfirmed
}

// Current returns the highlighted entity.
func (c *Controller) Current() roster.Entity {
	return c.catalog.At(c.index)
}

// Len returns the roster size.
func (c *Controller) Len() int {
	return c.catalog.Len()
}

// Move shifts the highlight by delta, wrapping at both ends.
// Returns false if the controller is already confirmed.
func (c *Controller) Move(delta int) bool {
	if c.phase != PhaseBrowsing {
		return false
	}
	c.index = core.Wrap(c.index+delta, c.catalog.Len())
	c.refresh()
	return true
}

// Set highlights an absolute index. Out-of-range indices are ignored.
func (c *Controller) Set(index int) bool {
	if c.phase != PhaseBrowsing {
		return false
	}
	if index < 0 || index >= c.catalog.Len() {
		return false
	}
	c.index = index
	c.refresh()
	return true
}

// Confirm ends the flow and commits the highlighted entity. Only the first
// call commits; later calls return the same entity with ok false.
func (c *Controller) Confirm() (roster.Entity, bool) {
	e := c.Current()
	if c.phase != PhaseBrowsing {
		return e, false
	}

	c.phase = PhaseConfirmed
	if c.commit != nil {
		c.commit.Commit(e.Name)
	}
	return e, true
}

func (c *Controller) refresh() {
	if c.preview != nil {
		c.preview.Refresh(c.Current())
	}
}
