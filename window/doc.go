// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package window defines the host window the frame loop drives.
//
// A Window owns one native (or simulated) window and its message queue.
// The frame loop drains the queue once per frame with Pump, translating the
// delivered Message values into resize calls and UI input.
//
// Backends register themselves with the package registry:
//
//	func init() {
//	    window.Register("win32", 100, open, nil)
//	}
//
// and are opened by name or by priority:
//
//	w, drv, err := window.Open(window.DefaultOptions())
//	w, drv, err := window.OpenByName("headless", opts)
//
// Two backends are provided: window/win32 (Windows, GDI presentation) and
// window/headless (offscreen, used for tests and frame capture).
package window
