package ui

import "time"

// DefaultLongPressDelay is how long a press must be held before it turns
// into a long press.
const DefaultLongPressDelay = 500 * time.Millisecond

// PressPhase represents a phase of a long press.
type PressPhase int

const (
	// PressStart marks the press crossing the long-press delay.
	PressStart PressPhase = iota
	// PressChanged marks pointer movement during a long press.
	PressChanged
	// PressEnd marks the button release completing a long press.
	PressEnd
	// PressCancel marks a press abandoned by the input system.
	PressCancel
)

// GestureKind discriminates normalized gestures.
type GestureKind int

const (
	// GestureTap is a completed short press.
	GestureTap GestureKind = iota
	// GesturePress is one phase of a long press.
	GesturePress
)

// Gesture is a normalized input event carrying grid-screen coordinates.
type Gesture struct {
	Kind  GestureKind
	Phase PressPhase
	X, Y  int
}

// GestureRecognizer folds raw button-down/move/button-up events into
// logical gestures: exactly one tap per short press, or one
// start/changed.../end sequence per long press. This removes the
// tap-vs-long-press dual firing race from the selection controller's
// contract.
type GestureRecognizer struct {
	delay    time.Duration
	now      func() time.Time
	down     bool
	pressing bool
	downAt   time.Time
	downX    int
	downY    int
}

// NewGestureRecognizer returns a recognizer with the given long-press
// delay. A non-positive delay falls back to the default.
func NewGestureRecognizer(delay time.Duration) *GestureRecognizer {
	if delay <= 0 {
		delay = DefaultLongPressDelay
	}
	return &GestureRecognizer{
		delay: delay,
		now:   time.Now,
	}
}

// ButtonDown records the primary button going down at the given position.
func (g *GestureRecognizer) ButtonDown(x, y int) []Gesture {
	if g.down {
		return nil
	}
	g.down, g.pressing = true, false
	g.downAt = g.now()
	g.downX, g.downY = x, y
	return nil
}

// Move processes pointer motion. Motion while the button is held past the
// long-press delay starts or continues a long press.
func (g *GestureRecognizer) Move(x, y int) []Gesture {
	if !g.down {
		return nil
	}

	if !g.pressing {
		if g.now().Sub(g.downAt) < g.delay {
			return nil
		}
		g.pressing = true
		gg := []Gesture{{Kind: GesturePress, Phase: PressStart, X: g.downX, Y: g.downY}}
		if x != g.downX || y != g.downY {
			gg = append(gg, Gesture{Kind: GesturePress, Phase: PressChanged, X: x, Y: y})
		}
		return gg
	}

	return []Gesture{{Kind: GesturePress, Phase: PressChanged, X: x, Y: y}}
}

// ButtonUp processes the button release: a short press yields a tap, a
// long press its end phase. A hold past the delay with no intervening
// motion yields a full start/end pair.
func (g *GestureRecognizer) ButtonUp(x, y int) []Gesture {
	if !g.down {
		return nil
	}
	held := g.now().Sub(g.downAt)
	wasPressing := g.pressing
	g.down, g.pressing = false, false

	if wasPressing {
		return []Gesture{{Kind: GesturePress, Phase: PressEnd, X: x, Y: y}}
	}
	if held < g.delay {
		return []Gesture{{Kind: GestureTap, X: g.downX, Y: g.downY}}
	}
	return []Gesture{
		{Kind: GesturePress, Phase: PressStart, X: g.downX, Y: g.downY},
		{Kind: GesturePress, Phase: PressEnd, X: x, Y: y},
	}
}

// Cancel abandons any in-flight press without completing it.
func (g *GestureRecognizer) Cancel() []Gesture {
	wasPressing := g.pressing
	g.down, g.pressing = false, false
	if wasPressing {
		return []Gesture{{Kind: GesturePress, Phase: PressCancel}}
	}
	return nil
}
