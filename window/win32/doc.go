// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package win32 provides the native Windows backend: a top-level window
// with a non-blocking message pump and a GDI surface that presents the
// software backbuffer with StretchDIBits.
//
// The package registers itself as "win32" with priority 100. On other
// platforms it is empty and the registry falls back to headless.
//
// A Window must be created, pumped, and destroyed on one OS thread. Callers
// lock the main goroutine with runtime.LockOSThread before New.
package win32
