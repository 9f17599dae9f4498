// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package render rasterizes ui draw data into a gg backbuffer.
//
// # Key Principle
//
// The renderer RECEIVES its target from the device, it does NOT create one.
// The device lifecycle manager hands the backbuffer over through
// CreateDeviceObjects and takes it back through InvalidateDeviceObjects
// around every resize and reset, so the renderer never holds a stale buffer.
//
// # Usage
//
//	r := render.NewRenderer()
//	mgr.Register(r) // binds the backbuffer immediately
//
//	for running {
//	    dd := ctx.EndFrame()
//	    mgr.Clear(bg)
//	    if err := r.Render(dd); err != nil {
//	        log.Printf("render failed: %v", err)
//	    }
//	    mgr.Present()
//	}
//
// # Text
//
// Text commands are drawn through gg/text into a view of the backbuffer
// clipped to the command's clip rectangle. Fonts that do not expose a
// gg/text face are measured for layout but skipped when drawing.
package render
