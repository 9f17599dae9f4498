// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package headless

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/gg"
	"github.com/gogpu/overlay/device"
	"github.com/gogpu/overlay/window"
)

func drain(w *Window) ([]window.Message, bool) {
	var got []window.Message
	ok := w.Pump(func(m window.Message) { got = append(got, m) })
	return got, ok
}

func newDevice(t *testing.T, w *Window) *device.Manager {
	t.Helper()
	m, err := device.Create(w, device.DefaultPresentParams(), w.Driver())
	if err != nil {
		t.Fatalf("device.Create() error = %v", err)
	}
	t.Cleanup(m.Destroy)
	return m
}

func TestNewDefaults(t *testing.T) {
	w := New(window.Options{})
	if cw, ch := w.ClientSize(); cw != window.DefaultWidth || ch != window.DefaultHeight {
		t.Errorf("ClientSize() = %dx%d", cw, ch)
	}
	if len(w.Title()) != window.TitleLength {
		t.Errorf("Title() = %q, want a random title", w.Title())
	}
	if w.Shown() {
		t.Error("new window should be hidden")
	}
	w.Show()
	if !w.Shown() {
		t.Error("Show() did not show the window")
	}
	if err := w.SetTitle("panel"); err != nil || w.Title() != "panel" {
		t.Errorf("SetTitle() = %v, Title() = %q", err, w.Title())
	}
}

func TestPumpOrderAndQuit(t *testing.T) {
	w := New(window.Options{Width: 100, Height: 80})
	w.Post(window.MouseMove{X: 3, Y: 4}, window.MouseButton{Button: window.ButtonLeft, Down: true})
	w.Close()
	w.Post(window.MouseWheel{Delta: 1})

	got, ok := drain(w)
	if ok {
		t.Error("Pump() = true after Quit")
	}
	if len(got) != 3 {
		t.Fatalf("delivered %d messages, want 3 (stop at Quit)", len(got))
	}
	if _, isQuit := got[2].(window.Quit); !isQuit {
		t.Errorf("last message = %T, want Quit", got[2])
	}

	got, ok = drain(w)
	if !ok || len(got) != 0 {
		t.Errorf("second Pump() = %v, %v; queue should be empty", got, ok)
	}
}

func TestResize(t *testing.T) {
	w := New(window.Options{Width: 100, Height: 80})
	w.Resize(200, 150)
	w.Resize(0, 0)

	got, _ := drain(w)
	if len(got) != 2 {
		t.Fatalf("got %d messages", len(got))
	}
	if r := got[0].(window.Resize); r.Width != 200 || r.Height != 150 || r.Minimized {
		t.Errorf("first resize = %+v", r)
	}
	if r := got[1].(window.Resize); !r.Minimized {
		t.Errorf("second resize = %+v, want minimized", r)
	}
	if cw, ch := w.ClientSize(); cw != 200 || ch != 150 {
		t.Errorf("ClientSize() = %dx%d, minimize must keep the old area", cw, ch)
	}
}

func TestPresentCapturesFrame(t *testing.T) {
	dir := t.TempDir()
	w := New(window.Options{Width: 16, Height: 8, CaptureDir: dir})
	m := newDevice(t, w)

	m.Clear(gg.RGB(1, 0, 0))
	if err := m.Present(); err != nil {
		t.Fatalf("Present() error = %v", err)
	}
	if w.Presented() != 1 {
		t.Errorf("Presented() = %d, want 1", w.Presented())
	}
	img := w.LastFrame()
	if img == nil || img.Bounds().Dx() != 16 {
		t.Fatalf("LastFrame() = %v", img)
	}
	if c := img.RGBAAt(4, 4); c.R != 255 || c.G != 0 {
		t.Errorf("pixel = %v, want red", c)
	}
	if _, err := os.Stat(filepath.Join(dir, "frame-00001.png")); err != nil {
		t.Errorf("capture missing: %v", err)
	}
}

func TestFrameBudgetQuits(t *testing.T) {
	w := New(window.Options{Width: 8, Height: 8, MaxFrames: 2})
	m := newDevice(t, w)

	for i := range 2 {
		if _, ok := drain(w); !ok {
			t.Fatalf("quit before frame %d", i)
		}
		if err := m.Present(); err != nil {
			t.Fatal(err)
		}
	}
	if _, ok := drain(w); ok {
		t.Error("Pump() = true after the frame budget was spent")
	}
}

func TestScriptedPresentFailure(t *testing.T) {
	w := New(window.Options{Width: 8, Height: 8})
	m := newDevice(t, w)
	w.FailPresents(1, 2)

	err := m.Present()
	if !errors.Is(err, device.ErrDeviceLost) {
		t.Fatalf("Present() error = %v, want ErrDeviceLost", err)
	}

	polls := 0
	for !m.CanReset() {
		polls++
		if polls > 10 {
			t.Fatal("surface never became ready")
		}
	}
	if polls != 2 {
		t.Errorf("not-ready polls = %d, want 2", polls)
	}
	if err := m.Reset(); err != nil {
		t.Fatalf("Reset() error = %v", err)
	}
	if err := m.Present(); err != nil {
		t.Errorf("Present() after reset error = %v", err)
	}
	if w.Presented() != 1 {
		t.Errorf("Presented() = %d, want 1", w.Presented())
	}
}

func TestMinimizeSkipsPresents(t *testing.T) {
	w := New(window.Options{Width: 8, Height: 8})
	m := newDevice(t, w)

	w.Minimize()
	if !w.Minimized() {
		t.Fatal("Minimized() = false after Minimize")
	}
	if cw, ch := w.ClientSize(); cw != 8 || ch != 8 {
		t.Errorf("ClientSize() = %dx%d, minimizing keeps the client area", cw, ch)
	}
	for range 5 {
		if err := m.Present(); !errors.Is(err, device.ErrOccluded) {
			t.Fatalf("Present() error = %v, want ErrOccluded", err)
		}
	}
	if w.Presented() != 0 {
		t.Errorf("Presented() = %d while minimized", w.Presented())
	}

	w.Restore()
	if err := m.Present(); err != nil {
		t.Fatalf("Present() after Restore error = %v", err)
	}
	if w.Presented() != 1 || m.Resets() != 0 {
		t.Errorf("presented=%d resets=%d, want 1 and 0", w.Presented(), m.Resets())
	}

	msgs, _ := drain(w)
	if len(msgs) != 2 {
		t.Fatalf("messages = %v, want minimize and restore", msgs)
	}
	if r := msgs[0].(window.Resize); !r.Minimized {
		t.Errorf("first Resize = %+v, want Minimized", r)
	}
	if r := msgs[1].(window.Resize); r.Minimized || r.Width != 8 {
		t.Errorf("second Resize = %+v, want 8x8", r)
	}
}

func TestDestroy(t *testing.T) {
	w := New(window.Options{})
	w.Show()
	if err := w.Destroy(); err != nil {
		t.Fatal(err)
	}
	if err := w.Destroy(); err != nil {
		t.Errorf("second Destroy() error = %v", err)
	}
	if !w.Destroyed() || w.Shown() {
		t.Error("Destroy() should hide and mark the window")
	}
}

func TestRegistered(t *testing.T) {
	w, drv, err := window.OpenByName(Name, window.Options{Width: 10, Height: 10})
	if err != nil {
		t.Fatalf("OpenByName() error = %v", err)
	}
	if _, ok := w.(*Window); !ok || drv == nil {
		t.Errorf("OpenByName() = %T, %v", w, drv)
	}
}
