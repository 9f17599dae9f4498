// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package device

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// Provider exposes the managed device to gpucontext consumers. The
// software path has no GPU objects, so Device, Queue and Adapter are nil.
// SurfaceFormat and AdapterInfo follow the live device.
type Provider struct {
	m *Manager
}

// Device returns nil for the software device.
func (Provider) Device() gpucontext.Device { return nil }

// Queue returns nil for the software device.
func (Provider) Queue() gpucontext.Queue { return nil }

// Adapter returns nil for the software device.
func (Provider) Adapter() gpucontext.Adapter { return nil }

// SurfaceFormat returns the presentation format of the live device, or
// undefined when there is none.
func (p Provider) SurfaceFormat() gputypes.TextureFormat {
	if p.m == nil || p.m.dev == nil {
		return gputypes.TextureFormatUndefined
	}
	return p.m.dev.Format()
}

// AdapterInfo returns the adapter of the live device. Devices that do not
// describe their adapter report AdapterTypeUnknown.
func (p Provider) AdapterInfo() gpucontext.AdapterInfo {
	if p.m != nil && p.m.dev != nil {
		if a, ok := p.m.dev.(adapterDescriber); ok {
			return a.AdapterInfo()
		}
	}
	return gpucontext.AdapterInfo{Type: gpucontext.AdapterTypeUnknown}
}

// adapterDescriber is implemented by devices that know their adapter.
type adapterDescriber interface {
	AdapterInfo() gpucontext.AdapterInfo
}

// Ensure Provider implements gpucontext.DeviceProvider.
var _ gpucontext.DeviceProvider = Provider{}
