// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package headless provides an offscreen window backend.
//
// A headless Window keeps its messages in a scripted queue and presents
// into memory. It can quit after a frame budget, capture presented frames
// as PNG files, and simulate presentation failures so device recovery can
// be exercised without a display.
package headless

import (
	"errors"
	"fmt"
	"image"
	"path/filepath"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/overlay"
	"github.com/gogpu/overlay/device"
	"github.com/gogpu/overlay/window"
)

// Name is the registry name of the backend.
const Name = "headless"

// ErrPresentFailed is returned by a scripted presentation failure.
var ErrPresentFailed = errors.New("headless: present failed")

func init() {
	window.Register(Name, 10, func(opts window.Options) (window.Window, device.Driver, error) {
		w := New(opts)
		return w, w.Driver(), nil
	}, nil)
}

// Window is an offscreen window.
//
// Thread Safety: Post, Resize, Close and FailPresents may be called from
// any goroutine. The remaining methods belong to the frame loop goroutine.
type Window struct {
	mu sync.Mutex

	title     string
	width     int
	height    int
	minimized bool
	shown     bool
	destroyed bool

	queue []window.Message

	maxFrames  int
	captureDir string
	presented  int
	last       *image.RGBA

	failures int
	notReady int
}

// New creates a hidden offscreen window. Zero geometry takes the window
// package defaults.
func New(opts window.Options) *Window {
	opts = opts.Normalize()
	return &Window{
		title:      opts.Title,
		width:      opts.Width,
		height:     opts.Height,
		maxFrames:  opts.MaxFrames,
		captureDir: opts.CaptureDir,
	}
}

// Post appends messages to the queue.
func (w *Window) Post(msgs ...window.Message) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.queue = append(w.queue, msgs...)
}

// Close posts a Quit message.
func (w *Window) Close() {
	w.Post(window.Quit{})
}

// Resize changes the client area and posts the matching Resize message.
// A zero dimension minimizes the window: the old client area is kept and
// presents are skipped until the next non-zero Resize or Restore.
func (w *Window) Resize(width, height int) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.minimized = width <= 0 || height <= 0
	if !w.minimized {
		w.width, w.height = width, height
	}
	w.queue = append(w.queue, window.Resize{Width: max(width, 0), Height: max(height, 0), Minimized: w.minimized})
}

// Minimize is Resize(0, 0).
func (w *Window) Minimize() {
	w.Resize(0, 0)
}

// Restore shows a minimized window again at its previous size.
func (w *Window) Restore() {
	w.mu.Lock()
	width, height := w.width, w.height
	w.mu.Unlock()
	w.Resize(width, height)
}

// Minimized reports whether the window is minimized.
func (w *Window) Minimized() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.minimized
}

// FailPresents makes the next n presents fail. After a failure the
// visible surface reports itself not ready for notReadyPolls polls.
func (w *Window) FailPresents(n, notReadyPolls int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.failures = n
	w.notReady = notReadyPolls
}

// Pump implements window.Window.
func (w *Window) Pump(handle func(window.Message)) bool {
	w.mu.Lock()
	msgs := w.queue
	w.queue = nil
	if w.maxFrames > 0 && w.presented >= w.maxFrames {
		msgs = append(msgs, window.Quit{})
	}
	w.mu.Unlock()

	for _, m := range msgs {
		handle(m)
		if _, ok := m.(window.Quit); ok {
			return false
		}
	}
	return true
}

// ClientSize implements window.Window.
func (w *Window) ClientSize() (int, int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.width, w.height
}

// SetTitle implements window.Window.
func (w *Window) SetTitle(title string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.title = title
	return nil
}

// Title returns the caption.
func (w *Window) Title() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.title
}

// Show implements window.Window.
func (w *Window) Show() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.shown = true
}

// Shown reports whether Show was called.
func (w *Window) Shown() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.shown
}

// Destroy implements window.Window.
func (w *Window) Destroy() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.destroyed = true
	w.shown = false
	return nil
}

// Destroyed reports whether Destroy was called.
func (w *Window) Destroyed() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.destroyed
}

// Handle implements window.Window. Headless windows have no native handle.
func (w *Window) Handle() uintptr { return 0 }

// Presented returns the number of frames presented successfully.
func (w *Window) Presented() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.presented
}

// LastFrame returns a copy of the most recently presented frame, or nil.
func (w *Window) LastFrame() *image.RGBA {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.last == nil {
		return nil
	}
	cp := *w.last
	cp.Pix = append([]uint8(nil), w.last.Pix...)
	return &cp
}

// Driver returns a software device driver presenting into w.
func (w *Window) Driver() device.Driver {
	return device.NewSoftwareDriver(func(device.Window) (device.Surface, error) {
		return &surface{w: w}, nil
	})
}

// surface presents into the owning window's memory.
type surface struct {
	w      *Window
	closed bool
}

func (s *surface) Blit(pm *gg.Pixmap) error {
	w := s.w
	w.mu.Lock()
	defer w.mu.Unlock()

	if s.closed || w.destroyed {
		return errors.New("headless: surface closed")
	}
	if w.failures > 0 {
		w.failures--
		return ErrPresentFailed
	}

	w.last = pm.ToImage()
	w.presented++
	if w.captureDir != "" {
		path := filepath.Join(w.captureDir, fmt.Sprintf("frame-%05d.png", w.presented))
		if err := pm.SavePNG(path); err != nil {
			// Capture failures never lose the device.
			overlay.Logger().Warn("headless capture failed", "path", path, "err", err)
		}
	}
	return nil
}

func (s *surface) Ready() bool {
	w := s.w
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.minimized {
		return false
	}
	if w.notReady > 0 {
		w.notReady--
		return false
	}
	return !s.closed && !w.destroyed
}

func (s *surface) Occluded() bool {
	w := s.w
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.minimized && !w.destroyed
}

func (s *surface) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

func (s *surface) Close() error {
	s.closed = true
	return nil
}

// Ensure Window implements window.Window.
var _ window.Window = (*Window)(nil)
