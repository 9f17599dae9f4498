package ui

import (
	"math"

	"github.com/gogpu/gg"
)

// ItemAdd registers the last item's rectangle and ID and computes its hover
// state. Items with ID zero are hoverable but can never become active.
func (c *Context) ItemAdd(r Rect, id ID) {
	c.last = lastItem{id: id, rect: r, hovered: c.hoverable(r, id)}
	if id != 0 && id == c.activeID {
		c.activeIDSeen = true
	}
}

func (c *Context) hoverable(r Rect, id ID) bool {
	mouse := c.IO.MousePos
	if !r.Contains(mouse) {
		return false
	}
	if !c.drawList.ClipRect().Contains(mouse) && !c.inPopup {
		return false
	}
	if !c.inPopup && c.blockRect.Contains(mouse) {
		return false
	}
	return c.activeID == 0 || c.activeID == id
}

// IsItemHovered reports whether the mouse is over the last item.
func (c *Context) IsItemHovered() bool {
	return c.last.hovered
}

// IsItemClicked reports whether the left button went down over the last
// item this frame.
func (c *Context) IsItemClicked() bool {
	return c.last.hovered && c.clicked[MouseLeft]
}

// IsItemActive reports whether the last item is being held or dragged.
func (c *Context) IsItemActive() bool {
	return c.last.id != 0 && c.last.id == c.activeID
}

// LastItemRect returns the rectangle of the last item.
func (c *Context) LastItemRect() Rect {
	return c.last.rect
}

// ActiveID returns the item currently held, or zero.
func (c *Context) ActiveID() ID {
	return c.activeID
}

func (c *Context) setActive(id ID) {
	c.activeID = id
	c.activeIDSeen = true
}

// ButtonBehavior implements press-and-release click handling for r.
// pressed is true on the frame the left button is released over the item
// that captured the press.
func (c *Context) ButtonBehavior(r Rect, id ID) (pressed, hovered, held bool) {
	hovered = c.hoverable(r, id)
	if hovered && c.clicked[MouseLeft] {
		c.setActive(id)
	}
	if c.activeID == id && id != 0 {
		held = true
		if !c.IO.MouseDown[MouseLeft] {
			pressed = c.hoverable(r, id)
			c.activeID = 0
			held = false
		}
	}
	return pressed, hovered, held
}

// SliderGrabSize returns the grab width for an integer slider spanning
// [lo, hi] on a frame of inner width w.
func (c *Context) SliderGrabSize(w float64, lo, hi int) float64 {
	steps := math.Abs(float64(hi) - float64(lo))
	g := w / (steps + 1)
	return min(max(g, c.style.GrabMinSize), w)
}

// SliderBehavior implements horizontal dragging of an integer value in
// [lo, hi] over frame r. It writes *v and reports changed=true as soon as
// the dragged value differs from the current one. grab is the grab
// rectangle for the value after the update.
func (c *Context) SliderBehavior(r Rect, id ID, v *int, lo, hi int) (changed bool, grab Rect) {
	inner := c.sliderInner(r)
	grabW := c.SliderGrabSize(inner.Width(), lo, hi)
	travel := inner.Width() - grabW

	if c.hoverable(r, id) && c.clicked[MouseLeft] {
		c.setActive(id)
	}
	if c.activeID == id && id != 0 {
		if c.IO.MouseDown[MouseLeft] || c.clicked[MouseLeft] {
			t := 0.0
			if travel > 0 {
				t = (c.IO.MousePos.X - inner.Min.X - grabW*0.5) / travel
			}
			nv := lo + int(math.Round(clamp01(t)*float64(hi-lo)))
			nv = clampInt(nv, lo, hi)
			if nv != *v {
				*v = nv
				changed = true
			}
		}
		if !c.IO.MouseDown[MouseLeft] {
			c.activeID = 0
		}
	}

	t := 0.0
	if hi != lo {
		t = float64(*v-lo) / float64(hi-lo)
	}
	return changed, c.SliderGrabRect(r, lo, hi, t)
}

// SliderGrabRect returns the grab rectangle of a slider over frame r with
// the grab at position t in [0, 1] of its travel. SliderBehavior maps the
// mouse over the same travel.
func (c *Context) SliderGrabRect(r Rect, lo, hi int, t float64) Rect {
	inner := c.sliderInner(r)
	grabW := c.SliderGrabSize(inner.Width(), lo, hi)
	x := inner.Min.X + clamp01(t)*(inner.Width()-grabW)
	return R(x, inner.Min.Y, x+grabW, inner.Max.Y)
}

func (c *Context) sliderInner(r Rect) Rect {
	pad := c.style.FramePadding.Y * 0.5
	return Rect{Min: gg.V2(r.Min.X+pad, r.Min.Y+pad), Max: gg.V2(r.Max.X-pad, r.Max.Y-pad)}
}

func clamp01(t float64) float64 {
	return min(max(t, 0), 1)
}

func clampInt(v, lo, hi int) int {
	if lo > hi {
		lo, hi = hi, lo
	}
	return min(max(v, lo), hi)
}
