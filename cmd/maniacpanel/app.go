package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gogpu/overlay"
	"github.com/gogpu/overlay/device"
	"github.com/gogpu/overlay/frame"
	"github.com/gogpu/overlay/internal/config"
	"github.com/gogpu/overlay/settings"
	"github.com/gogpu/overlay/ui"
	"github.com/gogpu/overlay/widget"
	"github.com/gogpu/overlay/window"
)

// opener opens the window and its device driver.
type opener func(opts window.Options) (window.Window, device.Driver, error)

// app wires settings, window, device, UI and the status driver around one
// frame loop.
type app struct {
	cfg    *config.Config
	open   opener
	attach attachFunc
	status overlay.Status

	// readOnly skips saving the settings on exit.
	readOnly bool
}

func newApp(cfg *config.Config) *app {
	return &app{
		cfg: cfg,
		open: func(opts window.Options) (window.Window, device.Driver, error) {
			return window.OpenByName(cfg.Window.Backend, opts)
		},
		attach: attachUnavailable,
	}
}

// run loads the settings, runs the panel until the window closes or ctx is
// cancelled, and saves the settings. Startup failures are KindFatal.
func (a *app) run(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := overlay.Logger()
	store := settings.NewStore(a.cfg.Settings.Path)
	s, err := store.Load()
	if err != nil {
		log.Warn("settings not loaded, using defaults", "path", store.Path, "err", err)
	}

	win, drv, err := a.open(a.cfg.WindowOptions())
	if err != nil {
		return overlay.Fatal("open window", err)
	}

	mgr, err := device.Create(win, device.DefaultPresentParams(), drv)
	if err != nil {
		_ = win.Destroy()
		return err
	}
	log.Info("presentation device ready",
		"adapter", mgr.Provider().AdapterInfo().Name,
		"format", mgr.Provider().SurfaceFormat(),
		"width", mgr.Params().BackBufferWidth,
		"height", mgr.Params().BackBufferHeight)

	font, err := a.loadFont()
	if err != nil {
		mgr.Destroy()
		_ = win.Destroy()
		return overlay.Fatal("load font", err)
	}
	uiCtx, err := ui.NewContext(font)
	if err != nil {
		mgr.Destroy()
		_ = win.Destroy()
		return overlay.Fatal("ui context", err)
	}

	p := newPanel(uiCtx, widget.New(), &s, &a.status)
	loop, err := frame.New(win, mgr, uiCtx, &s, p.Draw, frame.Options{
		MaxResetPolls: a.cfg.Device.MaxResetPolls,
	})
	if err != nil {
		mgr.Destroy()
		_ = win.Destroy()
		return err
	}

	driverCtx, cancelDriver := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		newDriver(&a.status, a.attach).run(driverCtx)
	}()

	win.Show()
	runErr := loop.Run(ctx)

	cancelDriver()
	<-done

	if a.readOnly {
		return runErr
	}
	if err := store.Save(s); err != nil {
		log.Warn("settings not saved", "path", store.Path, "err", err)
		if runErr == nil {
			runErr = err
		}
	} else {
		log.Info("settings saved", "path", store.Path)
	}
	return runErr
}

func (a *app) loadFont() (*ui.TextFont, error) {
	size := a.cfg.Font.Size
	if a.cfg.Font.Path == "" {
		return ui.DefaultFont(size)
	}
	data, err := os.ReadFile(a.cfg.Font.Path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	f, err := ui.LoadFont(data, size)
	if err != nil {
		return nil, fmt.Errorf("parse font %s: %w", a.cfg.Font.Path, err)
	}
	return f, nil
}

var errNoAutomation = errors.New("automation backend not available")

// attachUnavailable is the attach function used when no automation backend
// is linked in.
func attachUnavailable(context.Context, func(string)) error {
	return errNoAutomation
}
