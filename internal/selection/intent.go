package selection

import "fmt"

// IntentKind is one of the normalized operations a host may request.
type IntentKind int

const (
	IntentNone IntentKind = iota
	IntentMove
	IntentSet
	IntentConfirm
)

// String returns a human-readable name for the intent kind.
func (k IntentKind) String() string {
	switch k {
	case IntentNone:
		return "none"
	case IntentMove:
		return "move"
	case IntentSet:
		return "set"
	case IntentConfirm:
		return "confirm"
	default:
		return "unknown"
	}
}

// Intent is a normalized request produced by a host input adapter.
type Intent struct {
	Kind  IntentKind
	Delta int // IntentMove
	Index int // IntentSet
}

// Move returns an intent that shifts the highlight by delta.
func Move(delta int) Intent {
	return Intent{Kind: IntentMove, Delta: delta}
}

// SetTo returns an intent that highlights an absolute index.
func SetTo(index int) Intent {
	return Intent{Kind: IntentSet, Index: index}
}

// Confirm returns an intent that ends the flow.
func Confirm() Intent {
	return Intent{Kind: IntentConfirm}
}

// String implements fmt.Stringer.
func (in Intent) String() string {
	switch in.Kind {
	case IntentMove:
		return fmt.Sprintf("move(%+d)", in.Delta)
	case IntentSet:
		return fmt.Sprintf("set(%d)", in.Index)
	default:
		return in.Kind.String()
	}
}

// Result reports what applying an intent did.
type Result struct {
	Changed   bool // Highlight moved or was re-set
	Confirmed bool // This intent confirmed the flow
}

// Apply routes an intent to the matching primitive.
func (c *Controller) Apply(in Intent) Result {
	switch in.Kind {
	case IntentMove:
		return Result{Changed: c.Move(in.Delta)}
	case IntentSet:
		return Result{Changed: c.Set(in.Index)}
	case IntentConfirm:
		_, ok := c.Confirm()
		return Result{Confirmed: ok}
	}
	return Result{}
}

// Dispatch applies intents strictly in order. There is no buffering or
// debouncing: the last applied update wins. The returned Result merges all
// outcomes.
func (c *Controller) Dispatch(intents ...Intent) Result {
	var out Result
	for _, in := range intents {
		r := c.Apply(in)
		out.Changed = out.Changed || r.Changed
		out.Confirmed = out.Confirmed || r.Confirmed
	}
	return out
}
