package ui

import (
	"math"
	"strconv"
	"strings"

	"github.com/gogpu/gg"
	"github.com/gogpu/overlay/theme"
)

// Text draws s in the text color.
func (c *Context) Text(s string) {
	c.TextColored(c.style.Colors[theme.ColText], s)
}

// TextDisabled draws s in the disabled text color.
func (c *Context) TextDisabled(s string) {
	c.TextColored(c.style.Colors[theme.ColTextDisabled], s)
}

// TextColored draws s in col. Multiple lines are separated by '\n'.
func (c *Context) TextColored(col gg.RGBA, s string) {
	pos := c.cursor
	size := c.CalcTextSize(s)
	c.drawText(c.drawList, pos, col, s)
	c.ItemAdd(RectFromSize(pos, size), 0)
	c.ItemSize(size)
}

func (c *Context) drawText(dl *DrawList, pos gg.Vec2, col gg.RGBA, s string) {
	lh := c.TextLineHeight()
	for i, line := range strings.Split(s, "\n") {
		dl.AddText(c.font, gg.V2(pos.X, pos.Y+float64(i)*lh), col, line)
	}
}

func (c *Context) renderFrame(r Rect, fill gg.RGBA, border bool, rounding float64) {
	c.drawList.AddRectFilled(r.Min, r.Max, fill, rounding)
	if bs := c.style.FrameBorderSize; border && bs > 0 {
		c.drawList.AddRect(r.Min, r.Max, c.style.Colors[theme.ColBorder], rounding, bs)
	}
}

// renderArrow draws a triangle of height h pointing down when open, right
// otherwise, with its bounding box at pos.
func renderArrow(dl *DrawList, pos gg.Vec2, h float64, open bool, col gg.RGBA) {
	r := h * 0.40
	center := gg.V2(pos.X+h*0.5, pos.Y+h*0.5)
	if open {
		dl.AddTriangleFilled(
			gg.V2(center.X-r, center.Y-r*0.5),
			gg.V2(center.X+r, center.Y-r*0.5),
			gg.V2(center.X, center.Y+r*0.75),
			col)
		return
	}
	dl.AddTriangleFilled(
		gg.V2(center.X-r*0.5, center.Y-r),
		gg.V2(center.X+r*0.75, center.Y),
		gg.V2(center.X-r*0.5, center.Y+r),
		col)
}

// Button draws a framed button and reports whether it was pressed. A zero
// size component is fitted to the label.
func (c *Context) Button(label string, size gg.Vec2) bool {
	id := c.GetID(label)
	text := DisplayLabel(label)
	ts := c.CalcTextSize(text)
	pad := c.style.FramePadding
	if size.X <= 0 {
		size.X = ts.X + 2*pad.X
	}
	if size.Y <= 0 {
		size.Y = ts.Y + 2*pad.Y
	}

	r := RectFromSize(c.cursor, size)
	c.ItemAdd(r, id)
	pressed, hovered, held := c.ButtonBehavior(r, id)

	col := theme.ColButton
	switch {
	case held && hovered:
		col = theme.ColButtonActive
	case hovered:
		col = theme.ColButtonHovered
	}
	c.renderFrame(r, c.style.Colors[col], true, c.style.FrameRounding)
	if text != "" {
		pos := gg.V2(r.Min.X+(size.X-ts.X)*0.5, r.Min.Y+(size.Y-ts.Y)*0.5)
		c.drawList.PushClipRect(r, true)
		c.drawText(c.drawList, pos, c.style.Colors[theme.ColText], text)
		c.drawList.PopClipRect()
	}

	c.ItemSize(size)
	return pressed
}

// InvisibleButton reserves size and reports whether it was pressed. Nothing
// is drawn.
func (c *Context) InvisibleButton(id string, size gg.Vec2) bool {
	iid := c.GetID(id)
	r := RectFromSize(c.cursor, gg.V2(max(size.X, 1), max(size.Y, 1)))
	c.ItemAdd(r, iid)
	pressed, _, _ := c.ButtonBehavior(r, iid)
	c.ItemSize(r.Size())
	return pressed
}

// SliderInt draws a horizontal slider editing v within [lo, hi] and reports
// whether v changed this frame.
func (c *Context) SliderInt(label string, v *int, lo, hi int) bool {
	id := c.GetID(label)
	text := DisplayLabel(label)
	w := c.CalcItemWidth()
	frame := RectFromSize(c.cursor, gg.V2(w, c.FrameHeight()))

	c.ItemAdd(frame, id)
	changed, grab := c.SliderBehavior(frame, id, v, lo, hi)
	active := c.activeID == id

	col := theme.ColFrameBg
	switch {
	case active:
		col = theme.ColFrameBgActive
	case c.last.hovered:
		col = theme.ColFrameBgHovered
	}
	c.renderFrame(frame, c.style.Colors[col], true, c.style.FrameRounding)

	grabCol := theme.ColSliderGrab
	if active {
		grabCol = theme.ColSliderGrabActive
	}
	c.drawList.AddRectFilled(grab.Min, grab.Max, c.style.Colors[grabCol], c.style.GrabRounding)

	value := strconv.Itoa(*v)
	vs := c.CalcTextSize(value)
	c.drawText(c.drawList, gg.V2(frame.Min.X+(w-vs.X)*0.5, frame.Min.Y+c.style.FramePadding.Y), c.style.Colors[theme.ColText], value)

	c.ItemLabel(frame, text)
	return changed
}

// ItemLabel draws the visible label right of frame and advances the cursor
// past both.
func (c *Context) ItemLabel(frame Rect, text string) {
	size := frame.Size()
	if text != "" {
		x := frame.Max.X + c.style.ItemInnerSpacing.X
		c.drawText(c.drawList, gg.V2(x, frame.Min.Y+c.style.FramePadding.Y), c.style.Colors[theme.ColText], text)
		size.X += c.style.ItemInnerSpacing.X + c.CalcTextSize(text).X
	}
	c.ItemSize(size)
}

// Combo draws a dropdown selecting *current from items and reports whether
// the selection changed.
func (c *Context) Combo(label string, current *int, items []string) bool {
	id := c.GetID(label)
	text := DisplayLabel(label)
	w := c.CalcItemWidth()
	h := c.FrameHeight()
	frame := RectFromSize(c.cursor, gg.V2(w, h))

	c.ItemAdd(frame, id)
	hovered := c.last.hovered
	if hovered && c.clicked[MouseLeft] {
		if c.popupID == id {
			c.popupID = 0
		} else {
			c.popupID = id
		}
	}

	s := &c.style
	bg := theme.ColFrameBg
	btn := theme.ColButton
	if hovered {
		bg = theme.ColFrameBgHovered
		btn = theme.ColButtonHovered
	}
	arrowX := frame.Max.X - h
	c.drawList.AddRectFilled(frame.Min, frame.Max, s.Colors[bg], s.FrameRounding)
	c.drawList.AddRectFilled(gg.V2(arrowX, frame.Min.Y), frame.Max, s.Colors[btn], s.FrameRounding)
	if s.FrameBorderSize > 0 {
		c.drawList.AddRect(frame.Min, frame.Max, s.Colors[theme.ColBorder], s.FrameRounding, s.FrameBorderSize)
	}
	renderArrow(c.drawList, gg.V2(arrowX, frame.Min.Y), h, true, s.Colors[theme.ColText])

	if *current >= 0 && *current < len(items) {
		c.drawList.PushClipRect(R(frame.Min.X, frame.Min.Y, arrowX, frame.Max.Y), true)
		c.drawText(c.drawList, frame.Min.Add(s.FramePadding), s.Colors[theme.ColText], items[*current])
		c.drawList.PopClipRect()
	}
	c.ItemLabel(frame, text)

	if c.popupID != id {
		return false
	}
	return c.comboPopup(id, frame, current, items)
}

func (c *Context) comboPopup(id ID, frame Rect, current *int, items []string) bool {
	s := &c.style
	fg := c.foreground
	rowH := c.TextLineHeight() + s.ItemSpacing.Y
	popup := R(frame.Min.X, frame.Max.Y, frame.Max.X,
		frame.Max.Y+2*s.WindowPadding.Y*0.5+float64(len(items))*rowH)
	c.popupRect = popup
	c.popupTouch = true

	fg.AddRectFilled(popup.Min, popup.Max, s.Colors[theme.ColPopupBg], s.PopupRounding)
	fg.AddRect(popup.Min, popup.Max, s.Colors[theme.ColBorder], s.PopupRounding, 1)

	changed, closing := false, false
	c.inPopup = true
	y := popup.Min.Y + s.WindowPadding.Y*0.5
	for i, item := range items {
		row := R(popup.Min.X+1, y, popup.Max.X-1, y+rowH)
		rid := hashString(strconv.Itoa(i), id)
		hovered := c.hoverable(row, rid)
		switch {
		case hovered:
			fg.AddRectFilled(row.Min, row.Max, s.Colors[theme.ColHeaderHovered], 0)
		case i == *current:
			fg.AddRectFilled(row.Min, row.Max, s.Colors[theme.ColHeader], 0)
		}
		c.drawText(fg, gg.V2(row.Min.X+s.FramePadding.X, row.Min.Y+s.ItemSpacing.Y*0.5), s.Colors[theme.ColText], item)
		if hovered && c.clicked[MouseLeft] {
			if *current != i {
				*current = i
				changed = true
			}
			closing = true
		}
		y += rowH
	}
	c.inPopup = false

	mouse := c.IO.MousePos
	if c.clicked[MouseLeft] && !popup.Contains(mouse) && !frame.Contains(mouse) {
		closing = true
	}
	if closing {
		c.popupID = 0
	}
	return changed
}

// CollapsingHeader draws a full-width header that toggles an open flag on
// click and returns the flag. The flag starts at defaultOpen and persists
// for the lifetime of the context.
func (c *Context) CollapsingHeader(label string, defaultOpen bool) bool {
	id := c.GetID(label)
	open, ok := c.open[id]
	if !ok {
		open = defaultOpen
		c.open[id] = open
	}

	s := &c.style
	h := c.FrameHeight()
	r := R(c.contentMin.X-s.WindowPadding.X*0.5, c.cursor.Y, c.contentMax.X+s.WindowPadding.X*0.5, c.cursor.Y+h)
	c.ItemAdd(r, id)
	pressed, hovered, held := c.ButtonBehavior(r, id)
	if pressed {
		open = !open
		c.open[id] = open
	}

	col := theme.ColHeader
	switch {
	case held && hovered:
		col = theme.ColHeaderActive
	case hovered:
		col = theme.ColHeaderHovered
	}
	c.renderFrame(r, s.Colors[col], false, s.FrameRounding)

	lh := c.TextLineHeight()
	renderArrow(c.drawList, gg.V2(r.Min.X+s.FramePadding.X, r.Min.Y+s.FramePadding.Y), lh, open, s.Colors[theme.ColText])
	c.drawText(c.drawList, gg.V2(r.Min.X+s.FramePadding.X+lh+s.ItemInnerSpacing.X, r.Min.Y+s.FramePadding.Y),
		s.Colors[theme.ColText], DisplayLabel(label))

	c.ItemSize(gg.V2(r.Width(), h))
	return open
}

// colorPickerWidth is the width of the ColorEdit3 popup.
const colorPickerWidth = 220

// ColorEdit3 draws a color square editing col. Clicking the square opens a
// popup with one slider per channel. It reports whether col changed.
func (c *Context) ColorEdit3(label string, col *[3]float64) bool {
	id := c.GetID(label)
	h := c.FrameHeight()
	sq := RectFromSize(c.cursor, gg.V2(h, h))

	c.ItemAdd(sq, id)
	pressed, hovered, _ := c.ButtonBehavior(sq, id)
	if pressed {
		if c.popupID == id {
			c.popupID = 0
		} else {
			c.popupID = id
		}
	}

	s := &c.style
	c.drawList.AddRectFilled(sq.Min, sq.Max, gg.RGB(col[0], col[1], col[2]), s.FrameRounding)
	if hovered || s.FrameBorderSize > 0 {
		c.drawList.AddRect(sq.Min, sq.Max, s.Colors[theme.ColBorder], s.FrameRounding, max(1, s.FrameBorderSize))
	}
	c.ItemLabel(sq, DisplayLabel(label))

	if c.popupID != id {
		return false
	}
	return c.colorPopup(id, sq, col)
}

func (c *Context) colorPopup(id ID, anchor Rect, col *[3]float64) bool {
	s := &c.style
	fg := c.foreground
	h := c.FrameHeight()
	pad := s.WindowPadding
	popup := RectFromSize(gg.V2(anchor.Min.X, anchor.Max.Y+2),
		gg.V2(colorPickerWidth, 2*pad.Y+4*h+3*s.ItemSpacing.Y))
	if over := popup.Max.X - c.IO.DisplaySize.X; over > 0 {
		popup.Min.X -= over
		popup.Max.X -= over
	}
	c.popupRect = popup
	c.popupTouch = true

	fg.AddRectFilled(popup.Min, popup.Max, s.Colors[theme.ColPopupBg], s.PopupRounding)
	fg.AddRect(popup.Min, popup.Max, s.Colors[theme.ColBorder], s.PopupRounding, 1)

	inner := R(popup.Min.X+pad.X, popup.Min.Y+pad.Y, popup.Max.X-pad.X, popup.Max.Y-pad.Y)
	fg.AddRectFilled(inner.Min, gg.V2(inner.Max.X, inner.Min.Y+h), gg.RGB(col[0], col[1], col[2]), s.FrameRounding)

	changed := false
	c.inPopup = true
	names := [3]string{"R", "G", "B"}
	y := inner.Min.Y + h + s.ItemSpacing.Y
	for i := range col {
		frame := R(inner.Min.X, y, inner.Max.X, y+h)
		cid := hashString(names[i], id)
		v := int(math.Round(clamp01(col[i]) * 255))
		ch, grab := c.SliderBehavior(frame, cid, &v, 0, 255)
		if ch {
			col[i] = float64(v) / 255
			changed = true
		}
		fg.AddRectFilled(frame.Min, frame.Max, s.Colors[theme.ColFrameBg], s.FrameRounding)
		fg.AddRectFilled(grab.Min, grab.Max, s.Colors[theme.ColSliderGrab], s.GrabRounding)
		c.drawText(fg, gg.V2(frame.Min.X+s.FramePadding.X, frame.Min.Y+s.FramePadding.Y),
			s.Colors[theme.ColText], names[i]+": "+strconv.Itoa(v))
		if c.activeID == cid {
			c.activeIDSeen = true
		}
		y += h + s.ItemSpacing.Y
	}
	c.inPopup = false

	mouse := c.IO.MousePos
	if c.clicked[MouseLeft] && !popup.Contains(mouse) && !anchor.Contains(mouse) {
		c.popupID = 0
	}
	return changed
}

// SetTooltip shows text in a box next to the mouse for this frame. Lines
// longer than wrapWidth are wrapped at spaces; zero disables wrapping.
func (c *Context) SetTooltip(text string, wrapWidth float64) {
	c.tooltip = text
	c.tooltipWrap = wrapWidth
}

func (c *Context) drawTooltip() {
	s := &c.style
	lines := wrapText(c.font, c.tooltip, c.tooltipWrap)
	text := strings.Join(lines, "\n")
	size := c.CalcTextSize(text).Add(s.WindowPadding.Mul(2))

	pos := c.IO.MousePos.Add(gg.V2(16, 8))
	if over := pos.X + size.X - c.IO.DisplaySize.X; over > 0 {
		pos.X = max(0, pos.X-over)
	}
	if over := pos.Y + size.Y - c.IO.DisplaySize.Y; over > 0 {
		pos.Y = max(0, c.IO.MousePos.Y-size.Y-4)
	}
	r := RectFromSize(pos, size)
	c.foreground.AddRectFilled(r.Min, r.Max, s.Colors[theme.ColPopupBg], s.PopupRounding)
	c.foreground.AddRect(r.Min, r.Max, s.Colors[theme.ColBorder], s.PopupRounding, 1)
	c.drawText(c.foreground, pos.Add(s.WindowPadding), s.Colors[theme.ColText], text)
}

// wrapText breaks s into lines no wider than width, splitting at spaces.
// Words wider than width get a line of their own.
func wrapText(f Font, s string, width float64) []string {
	if width <= 0 {
		return strings.Split(s, "\n")
	}
	var out []string
	for _, para := range strings.Split(s, "\n") {
		line := ""
		for _, word := range strings.Fields(para) {
			if line == "" {
				line = word
				continue
			}
			if f.Advance(line+" "+word) > width {
				out = append(out, line)
				line = word
				continue
			}
			line += " " + word
		}
		out = append(out, line)
	}
	return out
}
