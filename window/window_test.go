// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package window

import (
	"errors"
	"strings"
	"testing"

	"github.com/gogpu/overlay/device"
)

type stubWindow struct {
	name string
	opts Options
}

func (w *stubWindow) ClientSize() (int, int)      { return w.opts.Width, w.opts.Height }
func (w *stubWindow) Pump(func(Message)) bool     { return true }
func (w *stubWindow) SetTitle(title string) error { w.opts.Title = title; return nil }
func (w *stubWindow) Show()                       {}
func (w *stubWindow) Destroy() error              { return nil }
func (w *stubWindow) Handle() uintptr             { return 0 }

func stubFactory(name string) Factory {
	return func(opts Options) (Window, device.Driver, error) {
		return &stubWindow{name: name, opts: opts}, nil, nil
	}
}

func failingFactory(err error) Factory {
	return func(Options) (Window, device.Driver, error) {
		return nil, nil, err
	}
}

func TestRegistryRegister(t *testing.T) {
	r := NewRegistry()
	r.Register("test", 50, stubFactory("test"), nil)

	b, ok := r.Get("test")
	if !ok {
		t.Fatal("registered backend not found")
	}
	if b.Name != "test" || b.Priority != 50 {
		t.Errorf("Get() = %+v", b)
	}
	if !b.Available() {
		t.Error("backend should be available (nil Available func)")
	}

	r.Unregister("test")
	if _, ok := r.Get("test"); ok {
		t.Error("backend should not exist after unregister")
	}
}

func TestRegistryOrder(t *testing.T) {
	r := NewRegistry()
	r.Register("low", 10, stubFactory("low"), nil)
	r.Register("high", 100, stubFactory("high"), nil)
	r.Register("off", 200, stubFactory("off"), func() bool { return false })

	if got := strings.Join(r.List(), ","); got != "off,high,low" {
		t.Errorf("List() = %s, want off,high,low", got)
	}
	if got := strings.Join(r.Available(), ","); got != "high,low" {
		t.Errorf("Available() = %s, want high,low", got)
	}
}

func TestRegistryOpen(t *testing.T) {
	r := NewRegistry()
	if _, _, err := r.Open(DefaultOptions()); !errors.Is(err, ErrNoBackendAvailable) {
		t.Fatalf("Open() on empty registry error = %v", err)
	}

	boom := errors.New("boom")
	r.Register("native", 100, failingFactory(boom), nil)
	r.Register("headless", 10, stubFactory("headless"), nil)

	w, _, err := r.Open(DefaultOptions())
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if sw := w.(*stubWindow); sw.name != "headless" {
		t.Errorf("Open() picked %s, want fallback to headless", sw.name)
	}

	if _, _, err := r.OpenByName("native", DefaultOptions()); !errors.Is(err, boom) {
		t.Errorf("OpenByName(native) error = %v, want boom", err)
	}
	w, _, err = r.OpenByName(Auto, DefaultOptions())
	if err != nil || w.(*stubWindow).name != "headless" {
		t.Errorf("OpenByName(auto) = %v, %v", w, err)
	}
}

func TestRegistryOpenErrors(t *testing.T) {
	r := NewRegistry()
	r.Register("off", 10, stubFactory("off"), func() bool { return false })

	var nf *BackendNotFoundError
	if _, _, err := r.OpenByName("missing", Options{}); !errors.As(err, &nf) || nf.Name != "missing" {
		t.Errorf("OpenByName(missing) error = %v", err)
	}
	var ua *BackendUnavailableError
	if _, _, err := r.OpenByName("off", Options{}); !errors.As(err, &ua) {
		t.Errorf("OpenByName(off) error = %v", err)
	}
}

func TestOpenNormalizesOptions(t *testing.T) {
	r := NewRegistry()
	r.Register("stub", 1, stubFactory("stub"), nil)

	w, _, err := r.OpenByName("stub", Options{})
	if err != nil {
		t.Fatal(err)
	}
	opts := w.(*stubWindow).opts
	if opts.Width != DefaultWidth || opts.Height != DefaultHeight {
		t.Errorf("size = %dx%d, want %dx%d", opts.Width, opts.Height, DefaultWidth, DefaultHeight)
	}
	if len(opts.Title) != TitleLength {
		t.Errorf("title %q, want %d random characters", opts.Title, TitleLength)
	}
}

func TestRandomTitle(t *testing.T) {
	seen := make(map[string]bool)
	for range 20 {
		s := RandomTitle(TitleLength)
		if len(s) != TitleLength {
			t.Fatalf("len(RandomTitle) = %d", len(s))
		}
		for _, c := range s {
			if !strings.ContainsRune(titleAlphabet, c) {
				t.Fatalf("RandomTitle() = %q contains %q", s, c)
			}
		}
		seen[s] = true
	}
	if len(seen) < 2 {
		t.Error("RandomTitle() returned the same title every time")
	}
	if RandomTitle(0) != "" {
		t.Error("RandomTitle(0) should be empty")
	}
}

func TestButtonString(t *testing.T) {
	tests := []struct {
		b    Button
		want string
	}{
		{ButtonLeft, "left"},
		{ButtonRight, "right"},
		{ButtonMiddle, "middle"},
		{Button(7), "Button(7)"},
	}
	for _, tt := range tests {
		if got := tt.b.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", int(tt.b), got, tt.want)
		}
	}
}
