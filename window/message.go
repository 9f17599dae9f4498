// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package window

import "fmt"

// Message is an event delivered by Window.Pump.
type Message interface {
	isMessage()
}

// Quit asks the frame loop to shut down.
type Quit struct{}

// Resize reports a new client area size.
type Resize struct {
	Width, Height int
	Minimized     bool
}

// MouseMove reports the cursor position in client coordinates.
type MouseMove struct {
	X, Y float64
}

// Button identifies a mouse button.
type Button int

// Mouse buttons.
const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonMiddle
)

// String returns the button name.
func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonRight:
		return "right"
	case ButtonMiddle:
		return "middle"
	default:
		return fmt.Sprintf("Button(%d)", int(b))
	}
}

// MouseButton reports a button transition.
type MouseButton struct {
	Button Button
	Down   bool
}

// MouseWheel reports vertical wheel movement in notches.
type MouseWheel struct {
	Delta float64
}

// Key reports a virtual key transition.
type Key struct {
	Code int
	Down bool
}

// Char reports a typed character.
type Char struct {
	Rune rune
}

// FocusLost reports that the window stopped receiving input.
type FocusLost struct{}

func (Quit) isMessage()        {}
func (Resize) isMessage()      {}
func (MouseMove) isMessage()   {}
func (MouseButton) isMessage() {}
func (MouseWheel) isMessage()  {}
func (Key) isMessage()         {}
func (Char) isMessage()        {}
func (FocusLost) isMessage()   {}
