// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package frame drives the overlay: one Loop owns the window, the device
// manager, the UI context and the renderer, and runs the composition
// callback once per frame.
//
// Every iteration performs, in order:
//
//  1. drain window messages (a quit aborts the iteration)
//  2. reinstall the style when the theme or accent changed
//  3. start a UI frame with the whole client area as the root panel
//  4. call the composition callback
//  5. clamp the settings
//  6. end the UI frame
//  7. clear, render and present, resetting a lost device once it
//     reports itself resettable
//
// Basic usage:
//
//	loop, err := frame.New(win, mgr, uiCtx, &cfg, body, frame.Options{MaxResetPolls: 600})
//	if err != nil {
//	    return err
//	}
//	defer loop.Close()
//	return loop.Run(ctx)
package frame
