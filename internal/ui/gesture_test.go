package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock drives the recognizer deterministically.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestRecognizer() (*GestureRecognizer, *fakeClock) {
	clk := &fakeClock{t: time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)}
	r := NewGestureRecognizer(DefaultLongPressDelay)
	r.now = clk.now
	return r, clk
}

func TestRecognizerTap(t *testing.T) {
	r, clk := newTestRecognizer()

	assert.Empty(t, r.ButtonDown(3, 4))
	clk.advance(50 * time.Millisecond)
	gg := r.ButtonUp(3, 4)

	require.Len(t, gg, 1)
	assert.Equal(t, GestureTap, gg[0].Kind)
	assert.Equal(t, 3, gg[0].X)
	assert.Equal(t, 4, gg[0].Y)
}

func TestRecognizerTapUsesDownPosition(t *testing.T) {
	r, clk := newTestRecognizer()

	r.ButtonDown(3, 4)
	clk.advance(50 * time.Millisecond)
	gg := r.ButtonUp(9, 9)

	require.Len(t, gg, 1)
	assert.Equal(t, 3, gg[0].X)
	assert.Equal(t, 4, gg[0].Y)
}

func TestRecognizerLongPressWithMotion(t *testing.T) {
	r, clk := newTestRecognizer()

	r.ButtonDown(1, 2)
	clk.advance(600 * time.Millisecond)

	gg := r.Move(1, 3)
	require.Len(t, gg, 2)
	assert.Equal(t, GesturePress, gg[0].Kind)
	assert.Equal(t, PressStart, gg[0].Phase)
	assert.Equal(t, 1, gg[0].X)
	assert.Equal(t, 2, gg[0].Y)
	assert.Equal(t, PressChanged, gg[1].Phase)
	assert.Equal(t, 3, gg[1].Y)

	gg = r.Move(1, 4)
	require.Len(t, gg, 1)
	assert.Equal(t, PressChanged, gg[0].Phase)

	gg = r.ButtonUp(1, 4)
	require.Len(t, gg, 1)
	assert.Equal(t, PressEnd, gg[0].Phase)
	assert.Equal(t, 4, gg[0].Y)
}

func TestRecognizerMotionInPlaceStartsPress(t *testing.T) {
	r, clk := newTestRecognizer()

	r.ButtonDown(5, 5)
	clk.advance(600 * time.Millisecond)

	// Terminals report motion even without displacement.
	gg := r.Move(5, 5)
	require.Len(t, gg, 1)
	assert.Equal(t, PressStart, gg[0].Phase)
}

func TestRecognizerHoldWithoutMotion(t *testing.T) {
	r, clk := newTestRecognizer()

	r.ButtonDown(2, 2)
	clk.advance(600 * time.Millisecond)
	gg := r.ButtonUp(2, 2)

	// No motion event ever fired: the release must still yield one full
	// press sequence, never a tap.
	require.Len(t, gg, 2)
	assert.Equal(t, PressStart, gg[0].Phase)
	assert.Equal(t, PressEnd, gg[1].Phase)
}

func TestRecognizerMotionBeforeDelayIgnored(t *testing.T) {
	r, clk := newTestRecognizer()

	r.ButtonDown(0, 0)
	clk.advance(100 * time.Millisecond)
	assert.Empty(t, r.Move(0, 1))

	clk.advance(100 * time.Millisecond)
	gg := r.ButtonUp(0, 1)
	require.Len(t, gg, 1)
	assert.Equal(t, GestureTap, gg[0].Kind)
}

func TestRecognizerMotionWithoutButtonIgnored(t *testing.T) {
	r, _ := newTestRecognizer()

	assert.Empty(t, r.Move(1, 1))
	assert.Empty(t, r.ButtonUp(1, 1))
}

func TestRecognizerRepeatedDownIgnored(t *testing.T) {
	r, clk := newTestRecognizer()

	r.ButtonDown(1, 1)
	clk.advance(600 * time.Millisecond)
	assert.Empty(t, r.ButtonDown(2, 2))

	// The original press is still in flight.
	gg := r.ButtonUp(1, 1)
	require.Len(t, gg, 2)
	assert.Equal(t, 1, gg[0].X)
}

func TestRecognizerCancel(t *testing.T) {
	r, clk := newTestRecognizer()

	r.ButtonDown(1, 1)
	clk.advance(600 * time.Millisecond)
	r.Move(1, 2)

	gg := r.Cancel()
	require.Len(t, gg, 1)
	assert.Equal(t, PressCancel, gg[0].Phase)

	// Cancel before the press started is silent.
	r.ButtonDown(1, 1)
	assert.Empty(t, r.Cancel())
	assert.Empty(t, r.ButtonUp(1, 1))
}

func TestRecognizerDefaultDelay(t *testing.T) {
	r := NewGestureRecognizer(0)
	assert.Equal(t, DefaultLongPressDelay, r.delay)

	r = NewGestureRecognizer(-time.Second)
	assert.Equal(t, DefaultLongPressDelay, r.delay)

	r = NewGestureRecognizer(time.Second)
	assert.Equal(t, time.Second, r.delay)
}

func TestRecognizerSequentialTaps(t *testing.T) {
	r, clk := newTestRecognizer()

	for i := 0; i < 3; i++ {
		r.ButtonDown(1, 1)
		clk.advance(10 * time.Millisecond)
		gg := r.ButtonUp(1, 1)
		require.Len(t, gg, 1)
		assert.Equal(t, GestureTap, gg[0].Kind)
		clk.advance(time.Second)
	}
}
