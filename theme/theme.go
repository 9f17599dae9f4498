// Package theme maps a theme selector and an accent color to a complete,
// swappable Style record.
//
// Style is a pure function of its two inputs: no global state is read and
// the result is a value, so the active style is always replaced wholesale,
// never merged. Unknown selectors resolve to [Default].
package theme

import (
	"fmt"

	"github.com/gogpu/gg"
)

// Selector names a built-in theme.
type Selector int

// Built-in themes. The numeric values are persisted in the settings file.
const (
	Cherry Selector = iota
	Moonlight
)

// Default is the theme used for selectors that name no built-in theme.
const Default = Moonlight

var names = [...]string{
	Cherry:    "Cherry",
	Moonlight: "Moonlight",
}

// Names returns the display names of the built-in themes, indexed by Selector.
func Names() []string {
	out := make([]string, len(names))
	copy(out, names[:])
	return out
}

// Valid reports whether s names a built-in theme.
func (s Selector) Valid() bool {
	return s >= 0 && int(s) < len(names)
}

// String returns the theme name, or "Selector(n)" for unknown values.
func (s Selector) String() string {
	if s.Valid() {
		return names[s]
	}
	return fmt.Sprintf("Selector(%d)", int(s))
}

// Col indexes a semantic color role in Style.Colors.
type Col int

// Color roles.
const (
	ColText Col = iota
	ColTextDisabled
	ColWindowBg
	ColChildBg
	ColPopupBg
	ColBorder
	ColBorderShadow
	ColFrameBg
	ColFrameBgHovered
	ColFrameBgActive
	ColTitleBg
	ColTitleBgActive
	ColTitleBgCollapsed
	ColScrollbarBg
	ColScrollbarGrab
	ColScrollbarGrabHovered
	ColScrollbarGrabActive
	ColCheckMark
	ColSliderGrab
	ColSliderGrabActive
	ColButton
	ColButtonHovered
	ColButtonActive
	ColHeader
	ColHeaderHovered
	ColHeaderActive
	ColSeparator
	ColSeparatorHovered
	ColSeparatorActive
	ColResizeGrip
	ColResizeGripHovered
	ColResizeGripActive
	ColTab
	ColTabHovered
	ColTabSelected
	ColTabDimmed
	ColTabDimmedSelected
	ColPlotLines
	ColPlotLinesHovered
	ColPlotHistogram
	ColPlotHistogramHovered
	ColTableHeaderBg

	// ColCount is the number of color roles.
	ColCount
)

// Style is a complete snapshot of color and geometry parameters.
//
// Style is a plain value and comparable with ==, which is how callers and
// tests check that two derivations produced identical records.
type Style struct {
	Colors [ColCount]gg.RGBA

	WindowRounding    float64
	ChildRounding     float64
	FrameRounding     float64
	GrabRounding      float64
	PopupRounding     float64
	ScrollbarRounding float64
	TabRounding       float64

	WindowBorderSize float64
	FrameBorderSize  float64

	WindowPadding    gg.Vec2
	FramePadding     gg.Vec2
	ItemSpacing      gg.Vec2
	ItemInnerSpacing gg.Vec2

	GrabMinSize   float64
	ScrollbarSize float64
}

// Color returns the color for role c.
func (s *Style) Color(c Col) gg.RGBA {
	return s.Colors[c]
}

// For derives the complete style for sel with the given accent color.
// Accent channels are expected in [0, 1]; they are used as given.
// Unknown selectors fall back to Default.
func For(sel Selector, accent [3]float64) Style {
	switch sel {
	case Cherry:
		return cherry(accent)
	case Moonlight:
		return moonlight(accent)
	default:
		return For(Default, accent)
	}
}

// scaled multiplies each accent channel by f and sets alpha a.
func scaled(accent [3]float64, f, a float64) gg.RGBA {
	return gg.RGBA{R: accent[0] * f, G: accent[1] * f, B: accent[2] * f, A: a}
}
