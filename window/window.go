// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package window

import (
	"github.com/gogpu/overlay/device"
)

// Window is a host window with a message queue.
//
// All methods are called from the goroutine that created the window.
type Window interface {
	device.Window

	// Pump drains every pending message without blocking and passes each
	// to handle in arrival order. It returns false once a Quit message has
	// been delivered.
	Pump(handle func(Message)) bool

	// SetTitle replaces the window caption.
	SetTitle(title string) error

	// Show makes the window visible.
	Show()

	// Destroy closes the window. It is safe to call more than once.
	Destroy() error

	// Handle returns the native handle, or 0 when there is none.
	Handle() uintptr
}

// Options configures a new window.
type Options struct {
	// Title is the initial caption. Empty means a random title.
	Title string

	// X and Y are the initial screen position of the outer frame.
	X, Y int

	// Width and Height are the initial outer size in pixels.
	Width, Height int

	// MaxFrames makes offscreen backends quit after that many presented
	// frames. 0 means never.
	MaxFrames int

	// CaptureDir makes offscreen backends write every presented frame as
	// a PNG file into the directory. Empty disables capture.
	CaptureDir string
}

// Default window geometry.
const (
	DefaultX      = 100
	DefaultY      = 100
	DefaultWidth  = 570
	DefaultHeight = 490
)

// DefaultOptions returns the geometry of the panel window.
func DefaultOptions() Options {
	return Options{
		X:      DefaultX,
		Y:      DefaultY,
		Width:  DefaultWidth,
		Height: DefaultHeight,
	}
}

// Normalize fills zero geometry with defaults and an empty title with a
// random one.
func (o Options) Normalize() Options {
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Height <= 0 {
		o.Height = DefaultHeight
	}
	if o.Title == "" {
		o.Title = RandomTitle(TitleLength)
	}
	return o
}
