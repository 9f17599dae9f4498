package widget

import (
	"strconv"

	"github.com/gogpu/gg"
	"github.com/gogpu/overlay/theme"
	"github.com/gogpu/overlay/ui"
)

// Slider draws an integer slider bound to v within [lo, hi]. Dragging
// updates v immediately and returns true; the drawn fill and knob follow a
// smoothed display value. The value text is drawn three times, clipped to
// the filled part, the knob, and the empty track, each in its own color.
func (t *Toolkit) Slider(ctx *ui.Context, id string, v *int, lo, hi int) bool {
	w := ctx.CalcItemWidth()
	h := ctx.FrameHeight()
	frame := ui.RectFromSize(ctx.CursorScreenPos(), gg.V2(w, h))
	iid := ctx.GetID(id)

	ctx.ItemAdd(frame, iid)
	changed, _ := ctx.SliderBehavior(frame, iid, v, lo, hi)
	active := ctx.IsItemActive()
	hovered := ctx.IsItemHovered()

	shown := t.advance(id, float64(*v), ctx.DeltaTime())
	frac := 0.0
	if hi != lo {
		frac = min(max((shown-float64(lo))/float64(hi-lo), 0), 1)
	}

	s := ctx.Style()
	dl := ctx.DrawList()

	bg := theme.ColFrameBg
	switch {
	case active:
		bg = theme.ColFrameBgActive
	case hovered:
		bg = theme.ColFrameBgHovered
	}
	dl.AddRectFilled(frame.Min, frame.Max, s.Colors[bg], s.FrameRounding)

	// The knob sits where SliderBehavior maps the cursor; the fill ends
	// under its center.
	knob := ctx.SliderGrabRect(frame, lo, hi, frac)
	if fillX := knob.Center().X; frac > 0 {
		dl.AddRectFilled(frame.Min, gg.V2(fillX, frame.Max.Y), s.Colors[theme.ColButtonActive], s.FrameRounding)
	}

	knobCol := s.Colors[theme.ColSliderGrab]
	if active {
		knobCol = s.Colors[theme.ColSliderGrabActive]
	}
	dl.AddRectFilled(knob.Min, knob.Max, knobCol, s.GrabRounding)

	text := strconv.Itoa(*v)
	ts := ctx.CalcTextSize(text)
	pos := gg.V2(frame.Min.X+(w-ts.X)*0.5, frame.Min.Y+(h-ts.Y)*0.5)
	textCol := s.Colors[theme.ColText]
	font := ctx.Font()

	parts := [3]struct {
		clip ui.Rect
		col  gg.RGBA
	}{
		{ui.R(frame.Min.X, frame.Min.Y, knob.Min.X, frame.Max.Y), textCol},
		{ui.R(knob.Min.X, frame.Min.Y, knob.Max.X, frame.Max.Y), s.Colors[theme.ColWindowBg]},
		{ui.R(knob.Max.X, frame.Min.Y, frame.Max.X, frame.Max.Y), gg.RGBA2(textCol.R, textCol.G, textCol.B, textCol.A*0.7)},
	}
	for _, part := range parts {
		dl.PushClipRect(part.clip, true)
		dl.AddText(font, pos, part.col, text)
		dl.PopClipRect()
	}

	ctx.ItemLabel(frame, ui.DisplayLabel(id))
	return changed
}
