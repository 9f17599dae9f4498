// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package device

import (
	"errors"
	"fmt"

	"github.com/gogpu/gg"
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// SoftwareAdapter describes the adapter behind software devices.
var SoftwareAdapter = gpucontext.AdapterInfo{
	Name: "Software Renderer",
	Type: gpucontext.AdapterTypeSoftware,
}

// Surface is where a software device presents its backbuffer.
type Surface interface {
	// Blit copies pm to the screen. A failed blit loses the device.
	Blit(pm *gg.Pixmap) error

	// Ready reports whether the surface can accept frames again. It is
	// polled while the device is lost.
	Ready() bool

	// Occluded reports whether the window cannot show frames at all, as
	// when it is minimized. Presents to an occluded surface are skipped.
	Occluded() bool

	// Format returns the pixel format of the screen.
	Format() gputypes.TextureFormat

	// Close releases the surface.
	Close() error
}

// VSyncer is implemented by surfaces that can wait for a vertical blank.
type VSyncer interface {
	WaitVSync() error
}

// SurfaceFunc opens the presentation surface of a window.
type SurfaceFunc func(win Window) (Surface, error)

// SoftwareDriver creates devices that rasterize on the CPU into a gg
// context and present through a Surface.
type SoftwareDriver struct {
	Open SurfaceFunc
}

// NewSoftwareDriver returns a driver presenting through surfaces from open.
func NewSoftwareDriver(open SurfaceFunc) *SoftwareDriver {
	return &SoftwareDriver{Open: open}
}

// CreateDevice implements Driver.
func (d *SoftwareDriver) CreateDevice(win Window, params PresentParams) (Device, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}
	if d.Open == nil {
		return nil, errors.New("device: software driver has no surface")
	}
	surf, err := d.Open(win)
	if err != nil {
		return nil, fmt.Errorf("device: failed to open surface: %w", err)
	}
	return &softwareDevice{
		surf:   surf,
		dc:     gg.NewContext(params.BackBufferWidth, params.BackBufferHeight),
		params: params,
	}, nil
}

type softwareDevice struct {
	surf   Surface
	dc     *gg.Context
	params PresentParams
	lost   bool
}

func (d *softwareDevice) Backbuffer() *gg.Context { return d.dc }

func (d *softwareDevice) Format() gputypes.TextureFormat { return d.surf.Format() }

func (d *softwareDevice) Present() error {
	if d.lost {
		return ErrDeviceLost
	}
	if d.surf.Occluded() {
		return ErrOccluded
	}
	if err := d.surf.Blit(d.dc.ResizeTarget()); err != nil {
		d.lost = true
		return fmt.Errorf("%w: %w", ErrDeviceLost, err)
	}
	if v, ok := d.surf.(VSyncer); ok && d.params.Interval == IntervalOne {
		// A failed wait only costs pacing.
		_ = v.WaitVSync()
	}
	return nil
}

func (d *softwareDevice) TestCooperativeLevel() error {
	switch {
	case !d.lost:
		return nil
	case d.surf.Occluded():
		return ErrOccluded
	case d.surf.Ready():
		return ErrDeviceNotReset
	default:
		return ErrDeviceLost
	}
}

func (d *softwareDevice) Reset(params PresentParams) error {
	if err := params.validate(); err != nil {
		return err
	}
	if d.lost && !d.surf.Ready() {
		return ErrDeviceLost
	}
	old := d.dc
	d.dc = gg.NewContext(params.BackBufferWidth, params.BackBufferHeight)
	d.params = params
	d.lost = false
	if old != nil {
		_ = old.Close()
	}
	return nil
}

func (d *softwareDevice) AdapterInfo() gpucontext.AdapterInfo { return SoftwareAdapter }

func (d *softwareDevice) Release() {
	if d.dc != nil {
		_ = d.dc.Close()
		d.dc = nil
	}
	if d.surf != nil {
		_ = d.surf.Close()
		d.surf = nil
	}
}
