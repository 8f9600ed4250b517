// Package preview derives the visual shown for the highlighted roster entry.
// State is always recomputed from the current entity; nothing is cached per
// roster entry.
package preview

import (
	"github.com/vovakirdan/rosterpick/internal/core"
	"github.com/vovakirdan/rosterpick/internal/roster"
)

// Mode identifies which representation is visible.
type Mode int

const (
	ModeNone Mode = iota
	ModeSprite
	ModeSwatch
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeSprite:
		return "sprite"
	case ModeSwatch:
		return "swatch"
	default:
		return "none"
	}
}

// SpriteSource resolves a sprite key to its pixel dimensions.
// ok is false when the key is unknown.
type SpriteSource interface {
	Dimensions(key string) (size core.Size, ok bool)
}

// State is the derived preview for one entity.
type State struct {
	Mode  Mode
	Label string

	// Sprite mode
	SpriteKey string
	Source    core.Size // Original sprite dimensions
	Scale     float64
	Fitted    core.Size // Source scaled into the bounding box

	// Swatch mode
	Color core.Color
}

// Renderer computes preview states under a fixed bounding box.
type Renderer struct {
	bounds       core.Size
	defaultColor core.Color
	sprites      SpriteSource

	// Layers. Exactly one is visible after the first Refresh.
	sprite layer
	swatch layer
	state  State
}

type layer struct {
	visible bool
	state   State
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithDefaultColor sets the swatch color used for entities without a tint.
func WithDefaultColor(c core.Color) Option {
	return func(r *Renderer) {
		r.defaultColor = c
	}
}

// WithSprites sets the sprite dimension source. Without one, every entity
// renders as a swatch.
func WithSprites(src SpriteSource) Option {
	return func(r *Renderer) {
		r.sprites = src
	}
}

// NewRenderer creates a renderer that fits sprites inside bounds.
func NewRenderer(bounds core.Size, opts ...Option) *Renderer {
	r := &Renderer{
		bounds:       bounds,
		defaultColor: core.DefaultSwatch,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Bounds returns the sprite bounding box.
func (r *Renderer) Bounds() core.Size {
	return r.bounds
}

// Render computes the preview for e without touching the layers.
func (r *Renderer) Render(e roster.Entity) State {
	if e.HasSprite() && r.sprites != nil {
		if size, ok := r.sprites.Dimensions(e.SpriteKey); ok {
			// Zero-sized frames fall through to the swatch.
			if scale, ok := size.FitScale(r.bounds); ok {
				return State{
					Mode:      ModeSprite,
					Label:     e.Name,
					SpriteKey: e.SpriteKey,
					Source:    size,
					Scale:     scale,
					Fitted:    size.Scaled(scale),
				}
			}
		}
	}

	color := r.defaultColor
	if e.Tint != nil {
		color = *e.Tint
	}
	return State{
		Mode:  ModeSwatch,
		Label: e.Name,
		Color: color,
	}
}

// Refresh recomputes the preview for e and makes its layer the only visible one.
func (r *Renderer) Refresh(e roster.Entity) {
	s := r.Render(e)

	switch s.Mode {
	case ModeSprite:
		r.swatch.visible = false
		r.sprite = layer{visible: true, state: s}
	case ModeSwatch:
		r.sprite.visible = false
		r.swatch = layer{visible: true, state: s}
	}
	r.state = s
}

// State returns the current preview.
func (r *Renderer) State() State {
	return r.state
}

// Visible lists the modes whose layer is currently shown.
func (r *Renderer) Visible() []Mode {
	var modes []Mode
	if r.sprite.visible {
		modes = append(modes, ModeSprite)
	}
	if r.swatch.visible {
		modes = append(modes, ModeSwatch)
	}
	return modes
}
