// Package settings holds the user-editable Settings value and its on-disk
// store.
//
// The Settings value is owned by the caller. The frame loop and the widgets
// borrow it for the duration of a frame and mutate UI-editable fields in
// place; nothing here keeps a reference across frames.
package settings

import "github.com/gogpu/overlay/theme"

// Humanization selects how hit-time offsets are derived from note density.
type Humanization int

// Humanization modes. The numeric values are persisted.
const (
	// Static computes density per one-second chunk.
	Static Humanization = iota
	// Dynamic computes density one second ahead of each hit.
	Dynamic
)

// String returns the mode name.
func (h Humanization) String() string {
	switch h {
	case Static:
		return "Static"
	case Dynamic:
		return "Dynamic"
	default:
		return "Unknown"
	}
}

// HumanizationNames returns the display names indexed by Humanization.
func HumanizationNames() []string {
	return []string{"Static", "Dynamic"}
}

// Settings is the plain mutable record edited by the panel.
type Settings struct {
	Theme  theme.Selector
	Accent [3]float64

	HumanizationType     Humanization
	HumanizationModifier int
	RandomizationMean    int
	RandomizationStdDev  int
	CompensationOffset   int
	TapTime              int
	MirrorMod            bool

	Keys       string
	DarkMode   bool
	Background [3]float64
}

// Defaults returns the settings used when nothing has been persisted.
func Defaults() Settings {
	return Settings{
		Theme:              theme.Cherry,
		Accent:             [3]float64{0.4, 0.6, 1.0},
		HumanizationType:   Dynamic,
		CompensationOffset: -5,
		TapTime:            20,
		Keys:               "asdfjkl;",
		DarkMode:           true,
		Background:         [3]float64{0.1, 0.1, 0.1},
	}
}

// Clamp floors TapTime and HumanizationModifier at zero. Values are never
// rejected; Clamp runs after every composition pass.
func (s *Settings) Clamp() {
	s.TapTime = max(0, s.TapTime)
	s.HumanizationModifier = max(0, s.HumanizationModifier)
}
