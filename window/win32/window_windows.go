// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build windows

package win32

import (
	"errors"
	"fmt"
	"sync/atomic"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/gogpu/overlay"
	"github.com/gogpu/overlay/device"
	"github.com/gogpu/overlay/window"
)

// Name is the registry name of the backend.
const Name = "win32"

// ClassName is the registered window class.
const ClassName = "maniac"

// ErrCreateWindow is returned when the native window cannot be created.
var ErrCreateWindow = errors.New("win32: failed to create window")

var (
	wndProcCallback = windows.NewCallback(wndProc)

	// active receives messages dispatched to the window procedure. Only one
	// window exists per process.
	active atomic.Pointer[Window]
)

func init() {
	window.Register(Name, 100, func(opts window.Options) (window.Window, device.Driver, error) {
		w, err := New(opts)
		if err != nil {
			return nil, nil, err
		}
		return w, w.Driver(), nil
	}, nil)
}

// Window is a native top-level window.
type Window struct {
	hwnd      uintptr
	instance  uintptr
	className *uint16

	pending   []window.Message
	quit      bool
	destroyed bool
}

// New registers the window class and creates a hidden overlapped window
// with the requested outer geometry.
func New(opts window.Options) (*Window, error) {
	opts = opts.Normalize()

	// Best effort: the window still works without DPI awareness.
	_, _, _ = procSetProcessDPIAware.Call()

	className, err := windows.UTF16PtrFromString(ClassName)
	if err != nil {
		return nil, err
	}
	title, err := windows.UTF16PtrFromString(opts.Title)
	if err != nil {
		return nil, err
	}

	instance, _, _ := procGetModuleHandleW.Call(0)
	cursor, _, _ := procLoadCursorW.Call(0, idcArrow)

	wc := wndClassEx{
		Style:     csClassDC,
		WndProc:   wndProcCallback,
		Instance:  instance,
		Cursor:    cursor,
		ClassName: className,
	}
	wc.Size = uint32(unsafe.Sizeof(wc))
	if atom, _, callErr := procRegisterClassExW.Call(uintptr(unsafe.Pointer(&wc))); atom == 0 {
		return nil, fmt.Errorf("%w: RegisterClassExW: %w", ErrCreateWindow, callErr)
	}

	w := &Window{instance: instance, className: className}
	if !active.CompareAndSwap(nil, w) {
		_, _, _ = procUnregisterClassW.Call(uintptr(unsafe.Pointer(className)), instance)
		return nil, fmt.Errorf("%w: a window already exists", ErrCreateWindow)
	}

	hwnd, _, callErr := procCreateWindowExW.Call(
		0,
		uintptr(unsafe.Pointer(className)),
		uintptr(unsafe.Pointer(title)),
		wsOverlappedWindow,
		uintptr(opts.X), uintptr(opts.Y),
		uintptr(opts.Width), uintptr(opts.Height),
		0, 0, instance, 0,
	)
	if hwnd == 0 {
		active.Store(nil)
		_, _, _ = procUnregisterClassW.Call(uintptr(unsafe.Pointer(className)), instance)
		return nil, fmt.Errorf("%w: CreateWindowExW: %w", ErrCreateWindow, callErr)
	}
	w.hwnd = hwnd

	cw, ch := w.ClientSize()
	overlay.Logger().Info("window created", "backend", Name, "width", cw, "height", ch)
	return w, nil
}

// Pump implements window.Window.
func (w *Window) Pump(handle func(window.Message)) bool {
	var m msg
	for {
		ok, _, _ := procPeekMessageW.Call(uintptr(unsafe.Pointer(&m)), 0, 0, 0, pmRemove)
		if ok == 0 {
			break
		}
		_, _, _ = procTranslateMessage.Call(uintptr(unsafe.Pointer(&m)))
		_, _, _ = procDispatchMessageW.Call(uintptr(unsafe.Pointer(&m)))
		if m.Message == wmQuit {
			w.quit = true
		}
	}

	msgs := w.pending
	w.pending = nil
	for _, ev := range msgs {
		handle(ev)
	}
	if w.quit {
		handle(window.Quit{})
		return false
	}
	return true
}

// ClientSize implements window.Window.
func (w *Window) ClientSize() (int, int) {
	if w.hwnd == 0 {
		return 0, 0
	}
	var r rect
	ok, _, _ := procGetClientRect.Call(w.hwnd, uintptr(unsafe.Pointer(&r)))
	if ok == 0 {
		return 0, 0
	}
	return int(r.Right - r.Left), int(r.Bottom - r.Top)
}

// SetTitle implements window.Window.
func (w *Window) SetTitle(title string) error {
	p, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return err
	}
	if ok, _, callErr := procSetWindowTextW.Call(w.hwnd, uintptr(unsafe.Pointer(p))); ok == 0 {
		return fmt.Errorf("win32: SetWindowTextW: %w", callErr)
	}
	return nil
}

// Show implements window.Window.
func (w *Window) Show() {
	_, _, _ = procShowWindow.Call(w.hwnd, swShowDefault)
	_, _, _ = procUpdateWindow.Call(w.hwnd)
}

// Destroy implements window.Window. A window already torn down by the
// user closing it only has its class unregistered.
func (w *Window) Destroy() error {
	if w.destroyed {
		return nil
	}
	w.destroyed = true
	var errs []error
	if w.hwnd != 0 {
		if ok, _, callErr := procDestroyWindow.Call(w.hwnd); ok == 0 {
			errs = append(errs, fmt.Errorf("win32: DestroyWindow: %w", callErr))
		}
	}
	w.hwnd = 0
	if ok, _, callErr := procUnregisterClassW.Call(uintptr(unsafe.Pointer(w.className)), w.instance); ok == 0 {
		errs = append(errs, fmt.Errorf("win32: UnregisterClassW: %w", callErr))
	}
	active.CompareAndSwap(w, nil)
	return errors.Join(errs...)
}

// Handle implements window.Window and returns the HWND.
func (w *Window) Handle() uintptr { return w.hwnd }

// Driver returns a software device driver presenting through GDI.
func (w *Window) Driver() device.Driver {
	return device.NewSoftwareDriver(func(device.Window) (device.Surface, error) {
		s, err := openSurface(w)
		if err != nil {
			return nil, err
		}
		return s, nil
	})
}

func (w *Window) post(m window.Message) {
	w.pending = append(w.pending, m)
}

func wndProc(hwnd uintptr, message uint32, wParam, lParam uintptr) uintptr {
	w := active.Load()
	if w == nil {
		r, _, _ := procDefWindowProcW.Call(hwnd, uintptr(message), wParam, lParam)
		return r
	}

	switch message {
	case wmSize:
		w.post(window.Resize{
			Width:     loword(lParam),
			Height:    hiword(lParam),
			Minimized: wParam == sizeMinimized,
		})
		return 0

	case wmSysCommand:
		// Alt would otherwise open the system menu and stall the loop.
		if wParam&0xfff0 == scKeyMenu {
			return 0
		}

	case wmDestroy:
		w.hwnd = 0
		_, _, _ = procPostQuitMessage.Call(0)
		return 0

	case wmMouseMove:
		w.post(window.MouseMove{X: signedLo(lParam), Y: signedHi(lParam)})
		return 0

	case wmLButtonDown, wmRButtonDown, wmMButtonDown:
		_, _, _ = procSetCapture.Call(hwnd)
		w.post(window.MouseButton{Button: buttonOf(message), Down: true})
		return 0

	case wmLButtonUp, wmRButtonUp, wmMButtonUp:
		_, _, _ = procReleaseCapture.Call()
		w.post(window.MouseButton{Button: buttonOf(message), Down: false})
		return 0

	case wmMouseWheel:
		delta := int16(uint16(wParam >> 16))
		w.post(window.MouseWheel{Delta: float64(delta) / wheelDelta})
		return 0

	case wmKeyDown, wmSysKeyDown:
		w.post(window.Key{Code: int(wParam), Down: true})

	case wmKeyUp, wmSysKeyUp:
		w.post(window.Key{Code: int(wParam), Down: false})

	case wmChar:
		w.post(window.Char{Rune: rune(wParam)})
		return 0

	case wmKillFocus:
		w.post(window.FocusLost{})
	}

	r, _, _ := procDefWindowProcW.Call(hwnd, uintptr(message), wParam, lParam)
	return r
}

func buttonOf(message uint32) window.Button {
	switch message {
	case wmRButtonDown, wmRButtonUp:
		return window.ButtonRight
	case wmMButtonDown, wmMButtonUp:
		return window.ButtonMiddle
	default:
		return window.ButtonLeft
	}
}

// Ensure Window implements window.Window.
var _ window.Window = (*Window)(nil)
