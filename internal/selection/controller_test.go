package selection

import (
	"errors"
	"testing"

	"github.com/vovakirdan/rosterpick/internal/core"
	"github.com/vovakirdan/rosterpick/internal/preview"
	"github.com/vovakirdan/rosterpick/internal/registry"
	"github.com/vovakirdan/rosterpick/internal/roster"
)

type spriteMap map[string]core.Size

func (m spriteMap) Dimensions(key string) (core.Size, bool) {
	s, ok := m[key]
	return s, ok
}

// recordingCommitter counts commits.
type recordingCommitter struct {
	names []string
}

func (r *recordingCommitter) Commit(name string) {
	r.names = append(r.names, name)
}

// countingRefresher counts preview refreshes.
type countingRefresher struct {
	last  roster.Entity
	count int
}

func (r *countingRefresher) Refresh(e roster.Entity) {
	r.last = e
	r.count++
}

func tint(v uint32) *core.Color {
	c := core.RGB(v)
	return &c
}

func testCatalog() *roster.Catalog {
	return roster.MustNew([]roster.Entity{
		{Name: "A", SpriteKey: "a"},
		{Name: "B", Tint: tint(0x111111)},
		{Name: "C", SpriteKey: "c"},
		{Name: "D", Tint: tint(0x222222)},
	})
}

func testRenderer() *preview.Renderer {
	return preview.NewRenderer(
		core.Size{W: 20, H: 20},
		preview.WithSprites(spriteMap{
			"a": {W: 32, H: 32},
			"c": {W: 40, H: 20},
		}),
	)
}

func TestNewSeedsFromPrevious(t *testing.T) {
	tests := []struct {
		name     string
		previous string
		expected int
	}{
		{"found", "C", 2},
		{"first entry", "A", 0},
		{"unknown name", "<unknown>", 0},
		{"absent", "", 0},
		{"case mismatch", "c", 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, err := New(testCatalog(), tc.previous)
			if err != nil {
				t.Fatalf("New() failed: %v", err)
			}
			if c.Index() != tc.expected {
				t.Errorf("Index() = %d, expected %d", c.Index(), tc.expected)
			}
			if c.Phase() != PhaseBrowsing {
				t.Errorf("Phase() = %v, expected browsing", c.Phase())
			}
		})
	}
}

func TestNewEmptyRoster(t *testing.T) {
	_, err := New(nil, "A")
	if !errors.Is(err, roster.ErrEmptyRoster) {
		t.Errorf("New(nil) error = %v, expected ErrEmptyRoster", err)
	}
}

func TestNewRefreshesPreview(t *testing.T) {
	r := &countingRefresher{}
	_, err := New(testCatalog(), "B", WithPreview(r))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	if r.count != 1 || r.last.Name != "B" {
		t.Errorf("initial refresh = (%d, %s), expected (1, B)", r.count, r.last.Name)
	}
}

func TestMoveFullRotation(t *testing.T) {
	cat := testCatalog()
	n := cat.Len()

	for start := 0; start < n; start++ {
		c, _ := New(cat, cat.At(start).Name)
		for i := 0; i < n; i++ {
			c.Move(1)
		}
		if c.Index() != start {
			t.Errorf("after %d moves from %d: Index() = %d, expected %d", n, start, c.Index(), start)
		}
	}
}

func TestMoveWrap(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		delta    int
		expected int
	}{
		{"negative wrap at zero", "A", -1, 3},
		{"positive wrap at end", "D", 1, 0},
		{"large negative delta", "B", -6, 3},
		{"large positive delta", "B", 9, 2},
		{"zero delta", "C", 0, 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := New(testCatalog(), tc.start)
			c.Move(tc.delta)
			if c.Index() != tc.expected {
				t.Errorf("Move(%d) from %s: Index() = %d, expected %d", tc.delta, tc.start, c.Index(), tc.expected)
			}
		})
	}
}

func TestSetOutOfRangeIsNoop(t *testing.T) {
	r := &countingRefresher{}
	c, _ := New(testCatalog(), "B", WithPreview(r))

	for _, idx := range []int{-1, 4, 100, -100} {
		if c.Set(idx) {
			t.Errorf("Set(%d) reported a change", idx)
		}
		if c.Index() != 1 {
			t.Errorf("Set(%d) changed Index() to %d", idx, c.Index())
		}
	}
	if r.count != 1 {
		t.Errorf("ignored Set() calls refreshed the preview %d times", r.count-1)
	}

	if !c.Set(3) || c.Index() != 3 {
		t.Errorf("Set(3): Index() = %d, expected 3", c.Index())
	}
	if r.last.Name != "D" {
		t.Errorf("preview after Set(3) = %s, expected D", r.last.Name)
	}
}

func TestConfirmIdempotent(t *testing.T) {
	committer := &recordingCommitter{}
	r := &countingRefresher{}
	c, _ := New(testCatalog(), "C", WithCommitter(committer), WithPreview(r))

	e, ok := c.Confirm()
	if !ok || e.Name != "C" {
		t.Fatalf("Confirm() = (%s, %v), expected (C, true)", e.Name, ok)
	}
	if !c.Confirmed() {
		t.Error("Confirmed() should be true after Confirm()")
	}

	refreshes := r.count

	// Everything after confirm is ignored.
	if c.Move(1) {
		t.Error("Move() after confirm reported a change")
	}
	if c.Set(0) {
		t.Error("Set() after confirm reported a change")
	}
	e, ok = c.Confirm()
	if ok || e.Name != "C" {
		t.Errorf("second Confirm() = (%s, %v), expected (C, false)", e.Name, ok)
	}

	if c.Index() != 2 {
		t.Errorf("Index() = %d after confirmed no-ops, expected 2", c.Index())
	}
	if len(committer.names) != 1 || committer.names[0] != "C" {
		t.Errorf("commits = %v, expected [C]", committer.names)
	}
	if r.count != refreshes {
		t.Error("no-op calls after confirm refreshed the preview")
	}
}

func TestPreviewTracksEveryMutation(t *testing.T) {
	r := testRenderer()
	c, _ := New(testCatalog(), "", WithPreview(r))

	steps := []Intent{Move(1), Move(1), SetTo(0), Move(-1), SetTo(9), Move(2), SetTo(2)}
	for i, in := range steps {
		c.Apply(in)
		visible := r.Visible()
		if len(visible) != 1 {
			t.Fatalf("step %d (%v): Visible() = %v, expected one layer", i, in, visible)
		}
		if r.State().Label != c.Current().Name {
			t.Errorf("step %d (%v): Label = %q, expected %q", i, in, r.State().Label, c.Current().Name)
		}
	}
}

func TestScenarioBrowseAndConfirm(t *testing.T) {
	state := registry.New()
	state.Set(SelectedCharacterKey, "B")
	bridge := NewBridge(state)
	r := testRenderer()

	c, err := Begin(testCatalog(), bridge, WithPreview(r))
	if err != nil {
		t.Fatalf("Begin() failed: %v", err)
	}
	if c.Index() != 1 {
		t.Fatalf("Index() = %d, expected 1", c.Index())
	}

	c.Move(1)
	if c.Index() != 2 {
		t.Errorf("Index() = %d, expected 2", c.Index())
	}
	if r.State().Mode != preview.ModeSprite || r.State().Label != "C" {
		t.Errorf("preview = (%v, %q), expected (sprite, C)", r.State().Mode, r.State().Label)
	}

	c.Move(1)
	if r.State().Mode != preview.ModeSwatch || r.State().Color != core.RGB(0x222222) {
		t.Errorf("preview = (%v, %v), expected (swatch, #222222)", r.State().Mode, r.State().Color)
	}

	c.Move(1)
	if c.Index() != 0 {
		t.Errorf("Index() = %d, expected 0 after wrap", c.Index())
	}
	if r.State().Mode != preview.ModeSprite || r.State().Label != "A" {
		t.Errorf("preview = (%v, %q), expected (sprite, A)", r.State().Mode, r.State().Label)
	}

	c.Confirm()
	if name, ok := bridge.Load(); !ok || name != "A" {
		t.Errorf("committed = (%q, %v), expected (A, true)", name, ok)
	}
}

func TestScenarioFirstRun(t *testing.T) {
	bridge := NewBridge(registry.New())

	if _, ok := bridge.Load(); ok {
		t.Fatal("Load() on first run should report absent")
	}

	absent, _ := Begin(testCatalog(), bridge)
	unknown, _ := New(testCatalog(), "<unknown>")
	if absent.Index() != 0 || absent.Index() != unknown.Index() {
		t.Errorf("absent Index() = %d, unknown Index() = %d, expected both 0", absent.Index(), unknown.Index())
	}
}

func TestCancelLeavesSharedStateUntouched(t *testing.T) {
	state := registry.New()
	state.Set(SelectedCharacterKey, "D")
	bridge := NewBridge(state)

	c, _ := Begin(testCatalog(), bridge)
	c.Move(1)
	c.Set(2)
	// The host drops the controller without confirming.
	if c.Confirmed() {
		t.Fatal("controller should still be browsing")
	}

	if name, _ := bridge.Load(); name != "D" {
		t.Errorf("stored name = %q after cancel, expected D", name)
	}
}

func TestPhaseString(t *testing.T) {
	if PhaseBrowsing.String() != "browsing" || PhaseConfirmed.String() != "confirmed" {
		t.Error("Phase.String() returned unexpected value")
	}
}
