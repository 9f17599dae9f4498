// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package device

import (
	"fmt"

	"github.com/gogpu/gputypes"
)

// PresentInterval controls how presents synchronize with the display.
type PresentInterval uint8

const (
	// IntervalDefault lets the driver choose.
	IntervalDefault PresentInterval = iota

	// IntervalOne waits for one vertical blank per present.
	IntervalOne

	// IntervalImmediate presents without waiting.
	IntervalImmediate
)

// String returns the interval name.
func (i PresentInterval) String() string {
	switch i {
	case IntervalDefault:
		return "Default"
	case IntervalOne:
		return "One"
	case IntervalImmediate:
		return "Immediate"
	default:
		return fmt.Sprintf("PresentInterval(%d)", uint8(i))
	}
}

// SwapEffect controls what happens to the backbuffer after present.
type SwapEffect uint8

const (
	// SwapEffectDiscard leaves the backbuffer contents undefined after
	// present. Every frame is redrawn from scratch.
	SwapEffectDiscard SwapEffect = iota

	// SwapEffectCopy keeps the backbuffer contents after present.
	SwapEffectCopy
)

// PresentParams describe the swap chain.
type PresentParams struct {
	Windowed   bool
	SwapEffect SwapEffect

	BackBufferWidth  int
	BackBufferHeight int

	// BackBufferFormat is TextureFormatUndefined to use the display format.
	BackBufferFormat gputypes.TextureFormat

	EnableAutoDepthStencil bool
	DepthStencilFormat     gputypes.TextureFormat

	Interval PresentInterval
}

// DefaultPresentParams returns windowed, discard, display-format,
// vsync-locked parameters with an automatic 24/8 depth-stencil buffer.
func DefaultPresentParams() PresentParams {
	return PresentParams{
		Windowed:               true,
		SwapEffect:             SwapEffectDiscard,
		BackBufferFormat:       gputypes.TextureFormatUndefined,
		EnableAutoDepthStencil: true,
		DepthStencilFormat:     gputypes.TextureFormatDepth24PlusStencil8,
		Interval:               IntervalOne,
	}
}

// validate reports ErrInvalidCall for unusable parameters.
func (p PresentParams) validate() error {
	if p.BackBufferWidth <= 0 || p.BackBufferHeight <= 0 {
		return fmt.Errorf("%w: backbuffer %dx%d", ErrInvalidCall, p.BackBufferWidth, p.BackBufferHeight)
	}
	if !p.Windowed {
		return fmt.Errorf("%w: fullscreen is not supported", ErrInvalidCall)
	}
	return nil
}
