// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package frame

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/gogpu/gg"
	"github.com/gogpu/overlay"
	"github.com/gogpu/overlay/device"
	"github.com/gogpu/overlay/render"
	"github.com/gogpu/overlay/settings"
	"github.com/gogpu/overlay/theme"
	"github.com/gogpu/overlay/ui"
	"github.com/gogpu/overlay/window"
)

// State is the run state of a Loop.
type State int32

// Loop states.
const (
	Running State = iota
	ShuttingDown
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Running:
		return "Running"
	case ShuttingDown:
		return "ShuttingDown"
	default:
		return fmt.Sprintf("State(%d)", int32(s))
	}
}

// PanelName identifies the root panel.
const PanelName = "##root"

// ClearColor is the backbuffer color behind the root panel.
var ClearColor = gg.RGBA{R: 0, G: 0, B: 0, A: 1}

// Errors.
var (
	// ErrNilArgument is returned by New for a missing dependency.
	ErrNilArgument = errors.New("frame: nil argument")

	// ErrRecoveryExhausted is returned when a lost device did not become
	// resettable within Options.MaxResetPolls iterations.
	ErrRecoveryExhausted = errors.New("frame: device did not become resettable")
)

// DefaultIdleInterval paces iterations that present nothing: a hidden
// window or a lost device gets no vsync wait.
const DefaultIdleInterval = 16 * time.Millisecond

// Options configures a Loop.
type Options struct {
	// MaxResetPolls bounds the consecutive iterations a lost device may
	// stay non-resettable while its window is visible. Iterations spent
	// minimized are not counted. 0 means unbounded.
	MaxResetPolls int

	// IdleInterval is slept after an iteration whose frame was not shown.
	// Defaults to DefaultIdleInterval.
	IdleInterval time.Duration

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time

	// Sleep pauses the loop. Defaults to time.Sleep.
	Sleep func(time.Duration)
}

// Loop is the frame loop.
//
// Thread Safety: Run, Step and Close must be called from the goroutine that
// created the window. State and Frames may be read from any goroutine.
type Loop struct {
	win      window.Window
	dev      *device.Manager
	ui       *ui.Context
	renderer *render.Renderer
	engine   *theme.Engine
	settings *settings.Settings
	body     func()
	opts     Options

	state  atomic.Int32
	frames atomic.Int64

	last     time.Time
	polls    int
	inputErr error
	closed   bool
}

// New wires a loop over its collaborators. It registers a renderer with
// dev, installs the style for the current settings and sizes the UI to the
// window's client area. The settings are borrowed: the loop mutates them
// only from inside Step.
func New(win window.Window, dev *device.Manager, ctx *ui.Context, s *settings.Settings, body func(), opts Options) (*Loop, error) {
	if win == nil || dev == nil || ctx == nil || s == nil || body == nil {
		return nil, ErrNilArgument
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Sleep == nil {
		opts.Sleep = time.Sleep
	}
	if opts.IdleInterval <= 0 {
		opts.IdleInterval = DefaultIdleInterval
	}
	if opts.MaxResetPolls < 0 {
		opts.MaxResetPolls = 0
	}

	r := render.NewRenderer(dev.Provider())
	if err := dev.Register(r); err != nil {
		return nil, overlay.Fatal("frame.New", err)
	}

	engine := theme.NewEngine(s.Theme, s.Accent)
	ctx.SetStyle(engine.Style())
	w, h := win.ClientSize()
	ctx.IO.SetDisplaySize(w, h)

	l := &Loop{
		win:      win,
		dev:      dev,
		ui:       ctx,
		renderer: r,
		engine:   engine,
		settings: s,
		body:     body,
		opts:     opts,
		last:     opts.Now(),
	}
	l.state.Store(int32(Running))
	return l, nil
}

// State returns the run state.
func (l *Loop) State() State {
	return State(l.state.Load())
}

// Frames returns the number of completed iterations.
func (l *Loop) Frames() int64 {
	return l.frames.Load()
}

// Renderer returns the loop's renderer.
func (l *Loop) Renderer() *render.Renderer {
	return l.renderer
}

// Engine returns the loop's theme engine.
func (l *Loop) Engine() *theme.Engine {
	return l.engine
}

// Run steps until the window quits, ctx is cancelled, or an iteration
// fails fatally, then tears everything down. Cancellation is observed
// between frames.
func (l *Loop) Run(ctx context.Context) error {
	overlay.Logger().Info("frame loop started")
	defer func() {
		if err := l.Close(); err != nil {
			overlay.Logger().Warn("teardown failed", "err", err)
		}
	}()

	for {
		if err := ctx.Err(); err != nil {
			l.state.Store(int32(ShuttingDown))
			overlay.Logger().Info("frame loop cancelled", "frames", l.Frames())
			return nil
		}
		running, err := l.Step()
		if err != nil {
			l.state.Store(int32(ShuttingDown))
			overlay.Logger().Error("frame loop failed", "frames", l.Frames(), "err", err)
			return err
		}
		if !running {
			overlay.Logger().Info("frame loop stopped", "frames", l.Frames())
			return nil
		}
	}
}

// Step runs one iteration. It returns false once the loop is shutting
// down. Only fatal failures are returned as errors.
func (l *Loop) Step() (bool, error) {
	if l.State() != Running {
		return false, nil
	}

	// 1. messages
	l.inputErr = nil
	if !l.win.Pump(l.handle) {
		l.state.Store(int32(ShuttingDown))
		return false, nil
	}
	if l.inputErr != nil {
		return true, l.inputErr
	}

	// 2. theme
	if l.engine.Update(l.settings.Theme, l.settings.Accent) {
		l.ui.SetStyle(l.engine.Style())
		overlay.Logger().Debug("theme swapped",
			"theme", l.engine.Selector(),
			"accent", l.settings.Accent,
			"swaps", l.engine.Swaps())
	}

	// 3. UI frame
	now := l.opts.Now()
	dt := now.Sub(l.last).Seconds()
	l.last = now
	l.ui.NewFrame(dt)
	l.ui.Begin(PanelName)

	// 4. composition
	l.body()

	// 5. clamp
	l.settings.Clamp()

	// 6. end
	l.ui.End()
	dd := l.ui.EndFrame()

	// 7. submit
	if err := l.submit(dd); err != nil {
		return true, err
	}
	l.frames.Add(1)
	return true, nil
}

func (l *Loop) handle(m window.Message) {
	io := &l.ui.IO
	switch m := m.(type) {
	case window.Resize:
		if m.Minimized || m.Width <= 0 || m.Height <= 0 {
			return
		}
		io.SetDisplaySize(m.Width, m.Height)
		if err := l.dev.HandleResize(m.Width, m.Height); err != nil {
			if overlay.IsFatal(err) {
				l.inputErr = err
				return
			}
			overlay.Logger().Warn("resize failed", "width", m.Width, "height", m.Height, "err", err)
		}
	case window.MouseMove:
		io.AddMousePos(m.X, m.Y)
	case window.MouseButton:
		io.AddMouseButton(mouseButton(m.Button), m.Down)
	case window.MouseWheel:
		io.AddMouseWheel(m.Delta)
	case window.FocusLost:
		io.ClearInput()
	}
}

func mouseButton(b window.Button) ui.MouseButton {
	switch b {
	case window.ButtonRight:
		return ui.MouseRight
	case window.ButtonMiddle:
		return ui.MouseMiddle
	default:
		return ui.MouseLeft
	}
}

// submit clears, renders and presents dd. A frame skipped behind a hidden
// window only idles. A lost device is polled once per iteration and reset
// as soon as it reports itself resettable; the stale frame is not
// presented again.
func (l *Loop) submit(dd *ui.DrawData) error {
	l.dev.Clear(ClearColor)
	if err := l.renderer.Render(dd); err != nil && !errors.Is(err, render.ErrNoTarget) {
		overlay.Logger().Warn("render failed", "err", err)
	}

	err := l.dev.Present()
	switch {
	case err == nil:
		l.polls = 0
		return nil
	case errors.Is(err, device.ErrOccluded):
		l.idle()
		return nil
	case errors.Is(err, device.ErrDeviceLost):
		return l.recoverDevice()
	default:
		overlay.Logger().Warn("present failed", "err", err)
		return nil
	}
}

func (l *Loop) recoverDevice() error {
	level := l.dev.CooperativeLevel()
	switch {
	case level == nil:
		l.polls = 0
		return nil
	case errors.Is(level, device.ErrOccluded):
		l.idle()
		return nil
	case !errors.Is(level, device.ErrDeviceNotReset):
		l.polls++
		if l.opts.MaxResetPolls > 0 && l.polls >= l.opts.MaxResetPolls {
			return overlay.Fatal("frame.Step", fmt.Errorf("%w after %d polls", ErrRecoveryExhausted, l.polls))
		}
		l.idle()
		return nil
	}

	if err := l.dev.Reset(); err != nil {
		if overlay.IsFatal(err) {
			return err
		}
		l.polls++
		overlay.Logger().Warn("device reset failed", "err", err)
		l.idle()
		return nil
	}
	overlay.Logger().Debug("device recovered", "polls", l.polls, "resets", l.dev.Resets())
	l.polls = 0
	return nil
}

func (l *Loop) idle() {
	l.opts.Sleep(l.opts.IdleInterval)
}

// Close releases, in order, the UI context, the renderer's device objects,
// the device and the window. It is safe to call more than once.
func (l *Loop) Close() error {
	if l.closed {
		return nil
	}
	l.closed = true
	l.state.Store(int32(ShuttingDown))

	l.ui.Shutdown()
	l.renderer.InvalidateDeviceObjects()
	l.dev.Destroy()
	if err := l.win.Destroy(); err != nil {
		return fmt.Errorf("frame: destroy window: %w", err)
	}
	return nil
}
