// Package widget provides animated controls drawn on top of package ui:
// a toggle switch, a slider with a smoothed fill, and a color swatch.
//
// Drawing is immediate mode, but each toggle and slider keeps a smoothed
// display value across frames in the Toolkit's side table, keyed by the
// caller-supplied identity string. Entries are created on first use and
// never removed; two widgets sharing an identity share their animation.
package widget

import (
	"math"

	"github.com/gogpu/gg"
)

const (
	// DefaultRate is the smoothing rate in 1/s used by New.
	DefaultRate = 12.0

	// Epsilon is the distance at which a smoothed value snaps to its target.
	Epsilon = 1e-3
)

// offColor is the toggle track color at progress 0.
var offColor = gg.RGBA{R: 80.0 / 255, G: 80.0 / 255, B: 80.0 / 255, A: 200.0 / 255}

// State is the persistent animation state of one widget identity.
type State struct {
	// Value is the smoothed display value.
	Value float64
	// Initialized is false until the first frame the identity is drawn.
	Initialized bool
}

// Toolkit owns the animation side table.
//
// Toolkit is NOT safe for concurrent use.
type Toolkit struct {
	// Rate is the exponential smoothing rate in 1/s.
	Rate float64

	states map[string]*State
}

// New returns a toolkit with DefaultRate.
func New() *Toolkit {
	return &Toolkit{
		Rate:   DefaultRate,
		states: make(map[string]*State),
	}
}

// State returns the state for id, creating it on first use.
func (t *Toolkit) State(id string) *State {
	st, ok := t.states[id]
	if !ok {
		st = &State{}
		t.states[id] = st
	}
	return st
}

// Len returns the number of identities seen so far.
func (t *Toolkit) Len() int {
	return len(t.states)
}

// advance moves the state for id toward target by one frame of dt seconds
// and returns the new display value. The first call for an identity jumps
// straight to target.
func (t *Toolkit) advance(id string, target, dt float64) float64 {
	st := t.State(id)
	if !st.Initialized {
		st.Value = target
		st.Initialized = true
		return st.Value
	}
	st.Value = Smooth(st.Value, target, t.Rate, dt)
	return st.Value
}

// Smooth moves cur toward target by the exponential-approach law
//
//	cur + (target-cur) * (1 - exp(-rate*dt))
//
// and returns target exactly once the remaining distance is below Epsilon.
func Smooth(cur, target, rate, dt float64) float64 {
	if math.Abs(target-cur) < Epsilon {
		return target
	}
	next := cur + (target-cur)*(1-math.Exp(-rate*dt))
	if math.Abs(target-next) < Epsilon {
		return target
	}
	return next
}
