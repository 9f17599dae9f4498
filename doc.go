// Package overlay is the rendering and presentation core of a real-time
// control-panel overlay.
//
// # Overview
//
// The core owns the presentation device, pumps the host window's message
// queue, drives an immediate-mode composition callback once per frame, and
// ships a small toolkit of animated widgets plus a hot-swappable theme engine.
//
// The packages are layered leaf first:
//
//   - settings: the Settings value and its JSON store
//   - theme: pure mapping from (theme, accent) to a complete Style
//   - ui: immediate-mode context, layout, draw lists, base controls
//   - widget: toggle switch, animated slider, color swatch
//   - render: rasterizes ui draw data into the device backbuffer
//   - device: presentation device lifecycle (create, resize, present, reset)
//   - window: window and message model with win32 and headless bindings
//   - frame: the frame loop tying everything together
//
// # Quick Start
//
//	win, _ := headless.New(headless.Config{Width: 570, Height: 490, Frames: 60})
//	mgr, _ := device.Create(win, device.DefaultPresentParams(), win.Driver())
//	loop := frame.New(frame.Config{}, win, mgr, &cfg)
//	err := loop.Run(func() {
//	    ctx := loop.UI()
//	    ctx.Text("hello")
//	})
//
// # Logging
//
// The core is silent by default. Call [SetLogger] to route diagnostics to a
// [log/slog] handler.
//
// # Errors
//
// Startup failures are reported as [Error] values with [KindFatal]. Device
// loss during steady state is recovered inside the frame loop and never
// surfaces unless recovery exceeds its configured bound.
package overlay

// Version information
const (
	// Version is the current version of the module
	Version = "0.3.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 3

	// VersionPatch is the patch version
	VersionPatch = 0
)
