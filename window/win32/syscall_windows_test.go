// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build windows

package win32

import (
	"testing"

	"github.com/gogpu/overlay/window"
)

func TestLParamDecoding(t *testing.T) {
	// x = -5, y = 300
	lp := uintptr(uint16(0xFFFB)) | uintptr(300)<<16
	if got := signedLo(lp); got != -5 {
		t.Errorf("signedLo = %v, want -5", got)
	}
	if got := signedHi(lp); got != 300 {
		t.Errorf("signedHi = %v, want 300", got)
	}

	size := uintptr(570) | uintptr(490)<<16
	if loword(size) != 570 || hiword(size) != 490 {
		t.Errorf("loword/hiword = %d/%d", loword(size), hiword(size))
	}
}

func TestButtonOf(t *testing.T) {
	tests := []struct {
		msg  uint32
		want window.Button
	}{
		{wmLButtonDown, window.ButtonLeft},
		{wmLButtonUp, window.ButtonLeft},
		{wmRButtonDown, window.ButtonRight},
		{wmMButtonUp, window.ButtonMiddle},
	}
	for _, tt := range tests {
		if got := buttonOf(tt.msg); got != tt.want {
			t.Errorf("buttonOf(%#x) = %v, want %v", tt.msg, got, tt.want)
		}
	}
}
