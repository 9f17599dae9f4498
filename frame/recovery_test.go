// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package frame

import (
	"errors"
	"testing"
	"time"

	"github.com/gogpu/overlay/device"
	"github.com/gogpu/overlay/settings"
	"github.com/gogpu/overlay/ui"
	"github.com/gogpu/overlay/window"
	"github.com/gogpu/overlay/window/headless"
)

// headlessLoop runs a loop over a headless window and the software device.
type headlessLoop struct {
	win   *headless.Window
	mgr   *device.Manager
	loop  *Loop
	slept time.Duration
}

func newHeadlessLoop(t *testing.T, maxResetPolls int) *headlessLoop {
	t.Helper()
	h := &headlessLoop{win: headless.New(window.Options{Width: 120, Height: 80})}

	mgr, err := device.Create(h.win, device.DefaultPresentParams(), h.win.Driver())
	if err != nil {
		t.Fatalf("device.Create() error = %v", err)
	}
	h.mgr = mgr

	ctx, err := ui.NewContext(fakeFont{})
	if err != nil {
		t.Fatal(err)
	}
	s := settings.Defaults()
	h.loop, err = New(h.win, mgr, ctx, &s, func() { ctx.Text("panel") }, Options{
		MaxResetPolls: maxResetPolls,
		Sleep:         func(d time.Duration) { h.slept += d },
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { _ = h.loop.Close() })
	return h
}

func (h *headlessLoop) steps(t *testing.T, n int) {
	t.Helper()
	for i := range n {
		if _, err := h.loop.Step(); err != nil {
			t.Fatalf("Step() %d error = %v", i, err)
		}
	}
}

func TestMinimizedWindowKeepsRunning(t *testing.T) {
	h := newHeadlessLoop(t, 5)
	h.steps(t, 1)

	h.win.Minimize()
	h.steps(t, 1000)

	if h.win.Presented() != 1 {
		t.Errorf("Presented() = %d, frames must be skipped while minimized", h.win.Presented())
	}
	if h.mgr.Resets() != 0 {
		t.Errorf("Resets() = %d, minimizing must not lose the device", h.mgr.Resets())
	}
	if h.slept != 1000*DefaultIdleInterval {
		t.Errorf("slept %v, want one idle interval per skipped frame", h.slept)
	}

	h.win.Restore()
	h.steps(t, 1)
	if h.win.Presented() != 2 {
		t.Errorf("Presented() = %d after restore, want 2", h.win.Presented())
	}
}

func TestLostThenMinimizedRecovers(t *testing.T) {
	h := newHeadlessLoop(t, 5)
	h.win.FailPresents(1, 1)

	// Lost, and not yet resettable.
	h.steps(t, 1)
	if h.mgr.Resets() != 0 || h.win.Presented() != 0 {
		t.Fatalf("resets=%d presented=%d after the failed present", h.mgr.Resets(), h.win.Presented())
	}

	h.win.Minimize()
	h.steps(t, 700)
	if h.mgr.Resets() != 0 {
		t.Fatalf("reset while minimized")
	}

	h.win.Restore()
	h.steps(t, 1)
	if h.mgr.Resets() != 1 {
		t.Fatalf("Resets() = %d after restore, want 1", h.mgr.Resets())
	}
	h.steps(t, 1)
	if h.win.Presented() != 1 {
		t.Errorf("Presented() = %d, want a frame after recovery", h.win.Presented())
	}
	if h.loop.State() != Running {
		t.Errorf("State() = %v, want Running", h.loop.State())
	}
}

func TestVisibleLostDeviceExhaustsSlowly(t *testing.T) {
	h := newHeadlessLoop(t, 600)
	h.win.FailPresents(1, 700)

	var err error
	for i := 0; err == nil && i < 1000; i++ {
		_, err = h.loop.Step()
	}
	if !errors.Is(err, ErrRecoveryExhausted) {
		t.Fatalf("Step() error = %v, want ErrRecoveryExhausted", err)
	}
	if want := 599 * DefaultIdleInterval; h.slept < want {
		t.Errorf("gave up after %v of idling, want at least %v", h.slept, want)
	}
}
