package ui

import "strings"

// ID identifies an interactive item within a frame. Zero means "no item".
type ID uint32

const (
	fnvOffset = 2166136261
	fnvPrime  = 16777619
)

// hashString is FNV-1a over s, seeded with seed.
func hashString(s string, seed ID) ID {
	h := uint32(fnvOffset) ^ uint32(seed)
	for i := 0; i < len(s); i++ {
		h ^= uint32(s[i])
		h *= fnvPrime
	}
	if h == 0 {
		h = 1
	}
	return ID(h)
}

// DisplayLabel returns the visible part of a label: everything before "##".
func DisplayLabel(label string) string {
	if i := strings.Index(label, "##"); i >= 0 {
		return label[:i]
	}
	return label
}
