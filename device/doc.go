// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package device owns the presentation device and its loss/reset protocol.
//
// A Manager holds exactly one live Device created by a Driver for a window.
// Rendering code never keeps the device: it registers a ResourceOwner and
// receives the backbuffer through CreateDeviceObjects, and gives it back
// through InvalidateDeviceObjects before every resize or reset.
//
// # Loss and recovery
//
// Present reports ErrDeviceLost when the platform invalidated the device.
// The caller then polls CanReset once per frame; when it turns true, Reset
// invalidates every owner, resets the device with the stored parameters,
// and recreates the owners. UI state is untouched by a reset.
//
// # Drivers
//
// The software driver renders into a gg context and presents through a
// Surface supplied by the window binding (GDI on Windows, an in-memory
// capture for headless runs).
package device
