// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build windows

package win32

import (
	"golang.org/x/sys/windows"
)

const (
	csClassDC = 0x0040

	wsOverlappedWindow = 0x00CF0000

	swShowDefault = 10

	pmRemove = 0x0001

	idcArrow = 32512

	wmDestroy     = 0x0002
	wmSize        = 0x0005
	wmKillFocus   = 0x0008
	wmQuit        = 0x0012
	wmKeyDown     = 0x0100
	wmKeyUp       = 0x0101
	wmChar        = 0x0102
	wmSysKeyDown  = 0x0104
	wmSysKeyUp    = 0x0105
	wmSysCommand  = 0x0112
	wmMouseMove   = 0x0200
	wmLButtonDown = 0x0201
	wmLButtonUp   = 0x0202
	wmRButtonDown = 0x0204
	wmRButtonUp   = 0x0205
	wmMButtonDown = 0x0207
	wmMButtonUp   = 0x0208
	wmMouseWheel  = 0x020A

	sizeMinimized = 1
	scKeyMenu     = 0xF100
	wheelDelta    = 120

	biRGB        = 0
	dibRGBColors = 0
	srcCopy      = 0x00CC0020
)

var (
	user32   = windows.NewLazySystemDLL("user32.dll")
	gdi32    = windows.NewLazySystemDLL("gdi32.dll")
	kernel32 = windows.NewLazySystemDLL("kernel32.dll")
	dwmapi   = windows.NewLazySystemDLL("dwmapi.dll")

	procRegisterClassExW   = user32.NewProc("RegisterClassExW")
	procUnregisterClassW   = user32.NewProc("UnregisterClassW")
	procCreateWindowExW    = user32.NewProc("CreateWindowExW")
	procDestroyWindow      = user32.NewProc("DestroyWindow")
	procDefWindowProcW     = user32.NewProc("DefWindowProcW")
	procShowWindow         = user32.NewProc("ShowWindow")
	procUpdateWindow       = user32.NewProc("UpdateWindow")
	procSetWindowTextW     = user32.NewProc("SetWindowTextW")
	procGetClientRect      = user32.NewProc("GetClientRect")
	procIsIconic           = user32.NewProc("IsIconic")
	procPeekMessageW       = user32.NewProc("PeekMessageW")
	procTranslateMessage   = user32.NewProc("TranslateMessage")
	procDispatchMessageW   = user32.NewProc("DispatchMessageW")
	procPostQuitMessage    = user32.NewProc("PostQuitMessage")
	procLoadCursorW        = user32.NewProc("LoadCursorW")
	procSetCapture         = user32.NewProc("SetCapture")
	procReleaseCapture     = user32.NewProc("ReleaseCapture")
	procGetDC              = user32.NewProc("GetDC")
	procReleaseDC          = user32.NewProc("ReleaseDC")
	procSetProcessDPIAware = user32.NewProc("SetProcessDPIAware")

	procStretchDIBits = gdi32.NewProc("StretchDIBits")

	procGetModuleHandleW = kernel32.NewProc("GetModuleHandleW")

	procDwmFlush = dwmapi.NewProc("DwmFlush")
)

type wndClassEx struct {
	Size       uint32
	Style      uint32
	WndProc    uintptr
	ClsExtra   int32
	WndExtra   int32
	Instance   uintptr
	Icon       uintptr
	Cursor     uintptr
	Background uintptr
	MenuName   *uint16
	ClassName  *uint16
	IconSm     uintptr
}

type point struct {
	X, Y int32
}

type msg struct {
	Hwnd     uintptr
	Message  uint32
	WParam   uintptr
	LParam   uintptr
	Time     uint32
	Pt       point
	LPrivate uint32
}

type rect struct {
	Left, Top, Right, Bottom int32
}

type bitmapInfoHeader struct {
	Size          uint32
	Width         int32
	Height        int32
	Planes        uint16
	BitCount      uint16
	Compression   uint32
	SizeImage     uint32
	XPelsPerMeter int32
	YPelsPerMeter int32
	ClrUsed       uint32
	ClrImportant  uint32
}

type bitmapInfo struct {
	Header bitmapInfoHeader
	Colors [1]uint32
}

func loword(v uintptr) int { return int(uint16(v)) }
func hiword(v uintptr) int { return int(uint16(v >> 16)) }

// signedLo and signedHi extract signed coordinates packed into an LPARAM.
func signedLo(v uintptr) float64 { return float64(int16(uint16(v))) }
func signedHi(v uintptr) float64 { return float64(int16(uint16(v >> 16))) }
