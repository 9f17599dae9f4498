// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package device

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/gputypes"
)

// Window is the part of a window the device needs.
type Window interface {
	// ClientSize returns the drawable area in pixels.
	ClientSize() (width, height int)
}

// Driver creates devices. It plays the role of the graphics API entry point.
type Driver interface {
	CreateDevice(win Window, params PresentParams) (Device, error)
}

// Device is one presentation device and its swap chain.
type Device interface {
	// Backbuffer returns the drawing target for the next present. The
	// returned context is replaced by Reset.
	Backbuffer() *gg.Context

	// Present shows the backbuffer. Returns ErrDeviceLost on loss and
	// ErrOccluded when the frame was skipped because the window is hidden.
	Present() error

	// TestCooperativeLevel returns nil while the device is usable,
	// ErrDeviceLost while it is lost, ErrOccluded while it is lost behind a
	// hidden window, and ErrDeviceNotReset once it can be reset.
	TestCooperativeLevel() error

	// Reset recreates the swap chain with params.
	Reset(params PresentParams) error

	// Format returns the pixel format of the presentation surface.
	Format() gputypes.TextureFormat

	// Release frees the device. It must be safe to call once.
	Release()
}

// ResourceOwner is implemented by objects that hold references to the
// backbuffer or anything sized to it.
type ResourceOwner interface {
	// InvalidateDeviceObjects drops every reference to the backbuffer.
	InvalidateDeviceObjects()

	// CreateDeviceObjects binds to a new backbuffer.
	CreateDeviceObjects(backbuffer *gg.Context) error
}
