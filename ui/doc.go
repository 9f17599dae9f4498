// Package ui is a small immediate-mode UI context.
//
// The whole interface is rebuilt every frame: callers run NewFrame, issue
// control calls that both hit-test and record draw commands, then EndFrame
// returns the frame's [DrawData] for a renderer to rasterize. Controls keep
// no per-instance state beyond what the Context tracks for the active
// interaction (the item being dragged, an open popup, collapsing header
// open flags).
//
// # Identity
//
// Controls are identified by a hash of their label. The part of a label
// after "##" is hashed but not displayed, so "Mean##rmean" shows "Mean" and
// "##theme" shows nothing.
//
// # Input
//
// The window binding feeds input through [IO]. Button transitions are
// latched until the next NewFrame, so a press and release delivered inside
// the same message drain still register as a click.
package ui
