// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package device

import (
	"errors"
	"fmt"

	"github.com/gogpu/gg"
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/overlay"
)

// Manager owns one Device and the objects that depend on its backbuffer.
//
// Manager is NOT safe for concurrent use; it lives on the frame loop
// goroutine.
type Manager struct {
	drv    Driver
	win    Window
	dev    Device
	params PresentParams
	owners []ResourceOwner

	resets int
	lost   bool
}

// Create makes the device for win. The backbuffer is sized to the window's
// current client area; the remaining fields of params are used as given.
// Failures are fatal: the returned error has overlay.KindFatal and wraps
// ErrDeviceCreation.
func Create(win Window, params PresentParams, drv Driver) (*Manager, error) {
	if win == nil || drv == nil {
		return nil, overlay.Fatal("device.Create", fmt.Errorf("%w: nil window or driver", ErrDeviceCreation))
	}

	w, h := win.ClientSize()
	params.BackBufferWidth = max(w, 1)
	params.BackBufferHeight = max(h, 1)

	dev, err := drv.CreateDevice(win, params)
	if err != nil {
		return nil, overlay.Fatal("device.Create", fmt.Errorf("%w: %w", ErrDeviceCreation, err))
	}
	if dev == nil {
		return nil, overlay.Fatal("device.Create", fmt.Errorf("%w: driver returned no device", ErrDeviceCreation))
	}

	overlay.Logger().Info("device created",
		"width", params.BackBufferWidth,
		"height", params.BackBufferHeight,
		"format", dev.Format(),
		"interval", params.Interval)

	return &Manager{drv: drv, win: win, dev: dev, params: params}, nil
}

// Params returns the stored presentation parameters.
func (m *Manager) Params() PresentParams {
	return m.params
}

// Resets returns how many times the device was reset, by Reset or by
// HandleResize.
func (m *Manager) Resets() int {
	return m.resets
}

// Backbuffer returns the current drawing target, or nil after Destroy.
func (m *Manager) Backbuffer() *gg.Context {
	if m.dev == nil {
		return nil
	}
	return m.dev.Backbuffer()
}

// Clear fills the backbuffer with col.
func (m *Manager) Clear(col gg.RGBA) {
	if bb := m.Backbuffer(); bb != nil {
		bb.ClearWithColor(col)
	}
}

// Provider returns a gpucontext view of the managed device.
func (m *Manager) Provider() gpucontext.DeviceProvider {
	return Provider{m: m}
}

// Register adds owner to the objects recreated on reset and binds it to
// the current backbuffer.
func (m *Manager) Register(owner ResourceOwner) error {
	m.owners = append(m.owners, owner)
	if m.dev == nil {
		return nil
	}
	return owner.CreateDeviceObjects(m.dev.Backbuffer())
}

// HandleResize resizes the backbuffer to w x h. A zero-area size, as
// reported for a minimized window, is ignored.
func (m *Manager) HandleResize(w, h int) error {
	if w <= 0 || h <= 0 {
		return nil
	}
	if m.dev == nil {
		return ErrDestroyed
	}
	if w == m.params.BackBufferWidth && h == m.params.BackBufferHeight {
		return nil
	}

	overlay.Logger().Debug("device resize", "width", w, "height", h)
	m.params.BackBufferWidth = w
	m.params.BackBufferHeight = h
	return m.reset("device.HandleResize")
}

// Present shows the backbuffer. Device loss is returned as a
// KindTransient error wrapping ErrDeviceLost; a skipped frame behind a
// hidden window wraps ErrOccluded.
func (m *Manager) Present() error {
	if m.dev == nil {
		return ErrDestroyed
	}
	if err := m.dev.Present(); err != nil {
		if errors.Is(err, ErrDeviceLost) && !m.lost {
			m.lost = true
			overlay.Logger().Warn("device lost on present")
		}
		return overlay.Transient("device.Present", err)
	}
	m.lost = false
	return nil
}

// CooperativeLevel polls the device: nil while usable, ErrDeviceLost or
// ErrOccluded while lost, ErrDeviceNotReset once it can be reset.
func (m *Manager) CooperativeLevel() error {
	if m.dev == nil {
		return ErrDestroyed
	}
	return m.dev.TestCooperativeLevel()
}

// CanReset reports whether a lost device is ready to be reset.
func (m *Manager) CanReset() bool {
	return errors.Is(m.CooperativeLevel(), ErrDeviceNotReset)
}

// Reset invalidates every owner, resets the device with the stored
// parameters, and recreates the owners. ErrInvalidCall from the device is
// returned as KindFatal; other failures are KindTransient.
func (m *Manager) Reset() error {
	if m.dev == nil {
		return ErrDestroyed
	}
	return m.reset("device.Reset")
}

func (m *Manager) reset(op string) error {
	for _, o := range m.owners {
		o.InvalidateDeviceObjects()
	}

	if err := m.dev.Reset(m.params); err != nil {
		if errors.Is(err, ErrInvalidCall) {
			return overlay.Fatal(op, err)
		}
		return overlay.Transient(op, err)
	}
	m.resets++
	m.lost = false

	bb := m.dev.Backbuffer()
	for _, o := range m.owners {
		if err := o.CreateDeviceObjects(bb); err != nil {
			return overlay.Transient(op, err)
		}
	}

	overlay.Logger().Debug("device reset",
		"op", op,
		"resets", m.resets,
		"width", m.params.BackBufferWidth,
		"height", m.params.BackBufferHeight)
	return nil
}

// Destroy invalidates the owners and releases the device. Calling it again
// is a no-op.
func (m *Manager) Destroy() {
	if m.dev == nil {
		return
	}
	for _, o := range m.owners {
		o.InvalidateDeviceObjects()
	}
	m.dev.Release()
	m.dev = nil
	overlay.Logger().Info("device destroyed", "resets", m.resets)
}
