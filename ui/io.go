package ui

import "github.com/gogpu/gg"

// MouseButton indexes the mouse button arrays of IO.
type MouseButton int

// Mouse buttons.
const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle

	mouseButtonCount
)

// IO carries input and display state from the window binding into the
// Context. Fields are written between frames and read during a frame.
type IO struct {
	// DisplaySize is the client area size in pixels.
	DisplaySize gg.Vec2

	// DeltaTime is the time since the previous frame in seconds.
	DeltaTime float64

	// MousePos is the cursor position in client coordinates.
	MousePos gg.Vec2

	// MouseDown is the current state of each button.
	MouseDown [mouseButtonCount]bool

	// MouseWheel accumulates vertical wheel steps until the next frame.
	MouseWheel float64

	clicked  [mouseButtonCount]bool
	released [mouseButtonCount]bool
}

// AddMousePos records a cursor move.
func (io *IO) AddMousePos(x, y float64) {
	io.MousePos = gg.V2(x, y)
}

// AddMouseButton records a button transition. Transitions are latched until
// the next NewFrame.
func (io *IO) AddMouseButton(b MouseButton, down bool) {
	if b < 0 || b >= mouseButtonCount {
		return
	}
	if down && !io.MouseDown[b] {
		io.clicked[b] = true
	}
	if !down && io.MouseDown[b] {
		io.released[b] = true
	}
	io.MouseDown[b] = down
}

// AddMouseWheel records wheel movement in notches.
func (io *IO) AddMouseWheel(delta float64) {
	io.MouseWheel += delta
}

// SetDisplaySize records the client area size.
func (io *IO) SetDisplaySize(w, h int) {
	io.DisplaySize = gg.V2(float64(w), float64(h))
}

// ClearInput drops button state and latched transitions, as when the window
// loses focus.
func (io *IO) ClearInput() {
	io.MouseDown = [mouseButtonCount]bool{}
	io.clicked = [mouseButtonCount]bool{}
	io.released = [mouseButtonCount]bool{}
	io.MouseWheel = 0
}
