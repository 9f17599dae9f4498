// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build windows

package win32

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/gogpu/gg"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/overlay/device"
)

// ErrBlitFailed is returned when GDI rejects a frame.
var ErrBlitFailed = errors.New("win32: StretchDIBits failed")

// surface presents RGBA pixmaps into the window's device context.
type surface struct {
	w    *Window
	hdc  uintptr
	bgra []byte
	bmi  bitmapInfo
}

func openSurface(w *Window) (*surface, error) {
	s := &surface{w: w}
	if !s.acquire() {
		return nil, fmt.Errorf("win32: GetDC failed for window %#x", w.hwnd)
	}
	s.bmi.Header.Size = uint32(unsafe.Sizeof(s.bmi.Header))
	s.bmi.Header.Planes = 1
	s.bmi.Header.BitCount = 32
	s.bmi.Header.Compression = biRGB
	return s, nil
}

func (s *surface) acquire() bool {
	if s.hdc != 0 {
		return true
	}
	if s.w.hwnd == 0 {
		return false
	}
	hdc, _, _ := procGetDC.Call(s.w.hwnd)
	s.hdc = hdc
	return hdc != 0
}

// Blit converts pm to BGRA and stretches it over the client area.
func (s *surface) Blit(pm *gg.Pixmap) error {
	if !s.acquire() {
		return ErrBlitFailed
	}
	w, h := pm.Width(), pm.Height()
	src := pm.Data()
	if cap(s.bgra) < len(src) {
		s.bgra = make([]byte, len(src))
	}
	s.bgra = s.bgra[:len(src)]
	for i := 0; i+3 < len(src); i += 4 {
		s.bgra[i+0] = src[i+2]
		s.bgra[i+1] = src[i+1]
		s.bgra[i+2] = src[i+0]
		s.bgra[i+3] = src[i+3]
	}

	// A negative height selects a top-down DIB.
	s.bmi.Header.Width = int32(w)
	s.bmi.Header.Height = -int32(h)

	cw, ch := s.w.ClientSize()
	if cw <= 0 || ch <= 0 || len(s.bgra) == 0 {
		// Minimized between the occlusion check and the blit.
		return nil
	}
	lines, _, _ := procStretchDIBits.Call(
		s.hdc,
		0, 0, uintptr(cw), uintptr(ch),
		0, 0, uintptr(w), uintptr(h),
		uintptr(unsafe.Pointer(&s.bgra[0])),
		uintptr(unsafe.Pointer(&s.bmi)),
		dibRGBColors,
		srcCopy,
	)
	if lines == 0 {
		s.release()
		return ErrBlitFailed
	}
	return nil
}

// Ready reports whether the window has a visible client area and a device
// context.
func (s *surface) Ready() bool {
	return s.w.hwnd != 0 && !s.Occluded() && s.acquire()
}

// Occluded reports whether the window is minimized or has no client area.
func (s *surface) Occluded() bool {
	if s.w.hwnd == 0 {
		return false
	}
	if iconic, _, _ := procIsIconic.Call(s.w.hwnd); iconic != 0 {
		return true
	}
	cw, ch := s.w.ClientSize()
	return cw <= 0 || ch <= 0
}

func (s *surface) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatBGRA8Unorm
}

// WaitVSync blocks until the compositor has presented the frame.
func (s *surface) WaitVSync() error {
	if err := procDwmFlush.Find(); err != nil {
		return err
	}
	if hr, _, _ := procDwmFlush.Call(); hr != 0 {
		return fmt.Errorf("win32: DwmFlush: HRESULT %#x", uint32(hr))
	}
	return nil
}

func (s *surface) Close() error {
	s.release()
	return nil
}

func (s *surface) release() {
	if s.hdc != 0 && s.w.hwnd != 0 {
		_, _, _ = procReleaseDC.Call(s.w.hwnd, s.hdc)
	}
	s.hdc = 0
}

var (
	_ device.Surface = (*surface)(nil)
	_ device.VSyncer = (*surface)(nil)
)
