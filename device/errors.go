// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package device

import "errors"

var (
	// ErrDeviceLost is reported by Present and by the cooperative level
	// check while the device is lost and cannot be reset yet.
	ErrDeviceLost = errors.New("device: device lost")

	// ErrDeviceNotReset is reported by the cooperative level check once a
	// lost device can be reset.
	ErrDeviceNotReset = errors.New("device: device not reset")

	// ErrOccluded is reported by Present and by the cooperative level
	// check while the window cannot show frames, as when it is minimized.
	// An occluded device is not lost: the frame is skipped.
	ErrOccluded = errors.New("device: surface occluded")

	// ErrDeviceCreation wraps driver failures during Create.
	ErrDeviceCreation = errors.New("device: creation failed")

	// ErrInvalidCall is reported for calls with invalid parameters. A reset
	// failing with ErrInvalidCall is fatal.
	ErrInvalidCall = errors.New("device: invalid call")

	// ErrDestroyed is returned by operations on a destroyed Manager.
	ErrDestroyed = errors.New("device: manager destroyed")
)
