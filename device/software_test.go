// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package device

import (
	"errors"
	"testing"

	"github.com/gogpu/gg"
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

type fakeSurface struct {
	blitErr  error
	ready    bool
	occluded bool
	blits    int
	vsyncs   int
	closed   int
	lastW    int
}

func (s *fakeSurface) Blit(pm *gg.Pixmap) error {
	if s.blitErr != nil {
		return s.blitErr
	}
	s.blits++
	s.lastW = pm.Width()
	return nil
}

func (s *fakeSurface) Ready() bool                    { return s.ready }
func (s *fakeSurface) Occluded() bool                 { return s.occluded }
func (s *fakeSurface) Format() gputypes.TextureFormat { return gputypes.TextureFormatBGRA8Unorm }
func (s *fakeSurface) Close() error                   { s.closed++; return nil }
func (s *fakeSurface) WaitVSync() error               { s.vsyncs++; return nil }

func newSoftware(t *testing.T, surf *fakeSurface) *Manager {
	t.Helper()
	drv := NewSoftwareDriver(func(Window) (Surface, error) { return surf, nil })
	m, err := Create(&fakeWindow{w: 64, h: 48}, DefaultPresentParams(), drv)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	return m
}

func TestSoftwarePresent(t *testing.T) {
	surf := &fakeSurface{}
	m := newSoftware(t, surf)

	if err := m.Present(); err != nil {
		t.Fatalf("Present() error = %v", err)
	}
	if surf.blits != 1 || surf.lastW != 64 {
		t.Errorf("blits=%d width=%d, want 1 64", surf.blits, surf.lastW)
	}
	if surf.vsyncs != 1 {
		t.Errorf("vsyncs = %d, want 1 with IntervalOne", surf.vsyncs)
	}
}

func TestSoftwareLossAndRecovery(t *testing.T) {
	surf := &fakeSurface{blitErr: errors.New("blit failed")}
	m := newSoftware(t, surf)
	before := m.Backbuffer()

	if err := m.Present(); !errors.Is(err, ErrDeviceLost) {
		t.Fatalf("Present() error = %v, want ErrDeviceLost", err)
	}
	// Stays lost even if the blit would now succeed.
	surf.blitErr = nil
	if err := m.Present(); !errors.Is(err, ErrDeviceLost) {
		t.Fatalf("second Present() error = %v, want ErrDeviceLost", err)
	}

	if m.CanReset() {
		t.Fatal("CanReset() = true before the surface is ready")
	}
	if err := m.Reset(); !errors.Is(err, ErrDeviceLost) {
		t.Errorf("Reset() before ready = %v, want ErrDeviceLost", err)
	}

	surf.ready = true
	if !m.CanReset() {
		t.Fatal("CanReset() = false with a ready surface")
	}
	if err := m.Reset(); err != nil {
		t.Fatalf("Reset() error = %v", err)
	}
	if m.Backbuffer() == before {
		t.Error("reset should replace the backbuffer")
	}
	if err := m.Present(); err != nil {
		t.Errorf("Present() after reset error = %v", err)
	}
}

func TestSoftwareRejectsBadParams(t *testing.T) {
	drv := NewSoftwareDriver(func(Window) (Surface, error) { return &fakeSurface{}, nil })

	p := DefaultPresentParams()
	p.Windowed = false
	p.BackBufferWidth, p.BackBufferHeight = 10, 10
	if _, err := drv.CreateDevice(&fakeWindow{}, p); !errors.Is(err, ErrInvalidCall) {
		t.Errorf("fullscreen CreateDevice() error = %v, want ErrInvalidCall", err)
	}

	m := newSoftware(t, &fakeSurface{})
	// Zero-area resizes never reach the device.
	if err := m.HandleResize(0, 0); err != nil {
		t.Errorf("HandleResize(0, 0) error = %v", err)
	}
}

func TestSoftwareOpenFailure(t *testing.T) {
	drv := NewSoftwareDriver(func(Window) (Surface, error) { return nil, errors.New("no dc") })
	if _, err := Create(&fakeWindow{w: 1, h: 1}, DefaultPresentParams(), drv); !errors.Is(err, ErrDeviceCreation) {
		t.Errorf("Create() error = %v, want ErrDeviceCreation", err)
	}
}

func TestSoftwareReleaseClosesSurface(t *testing.T) {
	surf := &fakeSurface{}
	m := newSoftware(t, surf)
	m.Destroy()
	m.Destroy()
	if surf.closed != 1 {
		t.Errorf("surface closed %d times, want 1", surf.closed)
	}
}

func TestSoftwareOccludedSkipsPresent(t *testing.T) {
	surf := &fakeSurface{occluded: true}
	m := newSoftware(t, surf)

	for range 3 {
		if err := m.Present(); !errors.Is(err, ErrOccluded) {
			t.Fatalf("Present() error = %v, want ErrOccluded", err)
		}
	}
	if surf.blits != 0 || surf.vsyncs != 0 {
		t.Errorf("blits=%d vsyncs=%d while occluded, want 0", surf.blits, surf.vsyncs)
	}
	if err := m.CooperativeLevel(); err != nil {
		t.Errorf("CooperativeLevel() = %v, an occluded device is not lost", err)
	}

	surf.occluded = false
	if err := m.Present(); err != nil {
		t.Fatalf("Present() after restore error = %v", err)
	}
	if surf.blits != 1 || m.Resets() != 0 {
		t.Errorf("blits=%d resets=%d, want 1 and 0", surf.blits, m.Resets())
	}
}

func TestSoftwareLostWhileOccluded(t *testing.T) {
	surf := &fakeSurface{blitErr: errors.New("blit failed")}
	m := newSoftware(t, surf)
	if err := m.Present(); !errors.Is(err, ErrDeviceLost) {
		t.Fatalf("Present() error = %v, want ErrDeviceLost", err)
	}

	surf.blitErr = nil
	surf.occluded = true
	surf.ready = true
	if err := m.CooperativeLevel(); !errors.Is(err, ErrOccluded) {
		t.Errorf("CooperativeLevel() = %v, want ErrOccluded", err)
	}
	if m.CanReset() {
		t.Error("CanReset() = true behind a hidden window")
	}

	surf.occluded = false
	if !m.CanReset() {
		t.Fatal("CanReset() = false after restore")
	}
	if err := m.Reset(); err != nil {
		t.Fatalf("Reset() error = %v", err)
	}
	if err := m.Present(); err != nil {
		t.Errorf("Present() after reset error = %v", err)
	}
}

func TestSoftwareAdapterInfo(t *testing.T) {
	m := newSoftware(t, &fakeSurface{})
	info := m.Provider().AdapterInfo()
	if info.Type != gpucontext.AdapterTypeSoftware || info.Name != "Software Renderer" {
		t.Errorf("AdapterInfo() = %+v, want the software adapter", info)
	}

	m.Destroy()
	if got := m.Provider().AdapterInfo().Type; got != gpucontext.AdapterTypeUnknown {
		t.Errorf("AdapterInfo().Type after Destroy = %v, want Unknown", got)
	}
}
