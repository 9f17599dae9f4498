// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package window

import "math/rand/v2"

// TitleLength is the length of generated window titles.
const TitleLength = 16

const titleAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// RandomTitle returns n characters drawn uniformly from [0-9A-Za-z].
func RandomTitle(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = titleAlphabet[rand.IntN(len(titleAlphabet))]
	}
	return string(b)
}
