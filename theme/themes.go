package theme

import "github.com/gogpu/gg"

// cherry is a warm dark theme. Accent roles:
// dim 0.6x (alpha 0.80), hover 0.8x, header 0.4x (alpha 0.45),
// border and separator 0.3x (alpha 0.50).
func cherry(accent [3]float64) Style {
	bg := gg.RGB(0.10, 0.08, 0.10)
	bgMid := gg.RGB(0.17, 0.14, 0.17)
	bgHi := gg.RGB(0.22, 0.18, 0.22)
	acc := scaled(accent, 1, 1)
	accDim := scaled(accent, 0.6, 0.80)
	accHover := scaled(accent, 0.8, 1)
	edge := scaled(accent, 0.3, 0.50)

	var s Style
	c := &s.Colors
	c[ColText] = gg.RGB(0.86, 0.82, 0.86)
	c[ColTextDisabled] = gg.RGB(0.50, 0.45, 0.50)
	c[ColBorder] = edge
	c[ColFrameBgHovered] = gg.RGB(bgHi.R+0.05, bgHi.G+0.05, bgHi.B+0.05)
	c[ColHeader] = scaled(accent, 0.4, 0.45)
	c[ColSeparator] = edge
	fillCommon(c, bg, bgMid, bgHi, acc, accDim, accHover)

	s.WindowRounding = 5
	s.ChildRounding = 5
	s.FrameRounding = 4
	s.GrabRounding = 4
	s.PopupRounding = 4
	s.ScrollbarRounding = 6
	s.TabRounding = 4
	s.WindowBorderSize = 1
	s.FrameBorderSize = 1
	s.WindowPadding = gg.V2(10, 10)
	s.FramePadding = gg.V2(6, 4)
	s.ItemSpacing = gg.V2(8, 6)
	s.ItemInnerSpacing = gg.V2(4, 4)
	s.GrabMinSize = 10
	s.ScrollbarSize = 12
	return s
}

// moonlight is a cool blue-grey theme and the Default. Accent roles:
// dim 0.55x (alpha 0.85), hover 0.8x, header 0.35x (alpha 0.50).
// Border and separator are fixed shades, not accent-derived.
func moonlight(accent [3]float64) Style {
	bg := gg.RGB(0.113, 0.129, 0.180)
	bgMid := gg.RGB(0.141, 0.161, 0.220)
	bgHi := gg.RGB(0.172, 0.196, 0.259)
	acc := scaled(accent, 1, 1)
	accDim := scaled(accent, 0.55, 0.85)
	accHover := scaled(accent, 0.80, 1)

	var s Style
	c := &s.Colors
	c[ColText] = gg.RGB(0.82, 0.85, 0.95)
	c[ColTextDisabled] = gg.RGB(0.45, 0.50, 0.65)
	c[ColBorder] = gg.RGBA2(0.20, 0.23, 0.35, 0.80)
	c[ColFrameBgHovered] = gg.RGB(bgHi.R+0.04, bgHi.G+0.04, bgHi.B+0.06)
	c[ColHeader] = scaled(accent, 0.35, 0.50)
	c[ColSeparator] = gg.RGB(0.20, 0.23, 0.35)
	fillCommon(c, bg, bgMid, bgHi, acc, accDim, accHover)

	s.WindowRounding = 8
	s.ChildRounding = 6
	s.FrameRounding = 5
	s.GrabRounding = 5
	s.PopupRounding = 5
	s.ScrollbarRounding = 8
	s.TabRounding = 5
	s.WindowBorderSize = 1
	s.FrameBorderSize = 0
	s.WindowPadding = gg.V2(12, 12)
	s.FramePadding = gg.V2(8, 5)
	s.ItemSpacing = gg.V2(8, 7)
	s.ItemInnerSpacing = gg.V2(5, 5)
	s.GrabMinSize = 10
	s.ScrollbarSize = 10
	return s
}

// fillCommon assigns the roles both themes derive the same way from their
// background shades and accent variants.
func fillCommon(c *[ColCount]gg.RGBA, bg, bgMid, bgHi, acc, accDim, accHover gg.RGBA) {
	c[ColWindowBg] = bg
	c[ColChildBg] = bgMid
	c[ColPopupBg] = bgMid
	c[ColBorderShadow] = gg.Transparent
	c[ColFrameBg] = bgHi
	c[ColFrameBgActive] = accDim
	c[ColTitleBg] = bg
	c[ColTitleBgActive] = bgMid
	c[ColTitleBgCollapsed] = bg
	c[ColScrollbarBg] = bg
	c[ColScrollbarGrab] = accDim
	c[ColScrollbarGrabHovered] = accHover
	c[ColScrollbarGrabActive] = acc
	c[ColCheckMark] = acc
	c[ColSliderGrab] = acc
	c[ColSliderGrabActive] = accHover
	c[ColButton] = accDim
	c[ColButtonHovered] = accHover
	c[ColButtonActive] = acc
	c[ColHeaderHovered] = accHover
	c[ColHeaderActive] = acc
	c[ColSeparatorHovered] = accHover
	c[ColSeparatorActive] = acc
	c[ColResizeGrip] = accDim
	c[ColResizeGripHovered] = accHover
	c[ColResizeGripActive] = acc
	c[ColTab] = bgHi
	c[ColTabHovered] = accHover
	c[ColTabSelected] = acc
	c[ColTabDimmed] = bgMid
	c[ColTabDimmedSelected] = accDim
	c[ColPlotLines] = acc
	c[ColPlotLinesHovered] = accHover
	c[ColPlotHistogram] = acc
	c[ColPlotHistogramHovered] = accHover
	c[ColTableHeaderBg] = bgMid
}
