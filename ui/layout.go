package ui

import (
	"strings"

	"github.com/gogpu/gg"
	"github.com/gogpu/overlay/theme"
)

// defaultItemWidthRatio is the share of the content width given to framed
// controls when no width was requested.
const defaultItemWidthRatio = 0.65

// TextLineHeight returns the height of one line of text.
func (c *Context) TextLineHeight() float64 {
	return LineHeight(c.font)
}

// FrameHeight returns the height of a framed control such as a button or
// slider: one line of text plus vertical frame padding.
func (c *Context) FrameHeight() float64 {
	return c.TextLineHeight() + 2*c.style.FramePadding.Y
}

// CalcTextSize returns the size of s as drawn by Text. Lines are split on
// '\n'. Labels should be passed through DisplayLabel first.
func (c *Context) CalcTextSize(s string) gg.Vec2 {
	if s == "" {
		return gg.V2(0, c.TextLineHeight())
	}
	lines := strings.Split(s, "\n")
	w := 0.0
	for _, l := range lines {
		w = max(w, c.font.Advance(l))
	}
	return gg.V2(w, float64(len(lines))*c.TextLineHeight())
}

// CursorScreenPos returns where the next item will be placed.
func (c *Context) CursorScreenPos() gg.Vec2 {
	return c.cursor
}

// SetCursorScreenPos moves the layout cursor.
func (c *Context) SetCursorScreenPos(p gg.Vec2) {
	c.cursor = p
}

// CursorPos returns the cursor relative to the panel origin.
func (c *Context) CursorPos() gg.Vec2 {
	return c.cursor.Sub(c.panel.Min)
}

// SetCursorPosY moves the cursor vertically, relative to the panel origin.
func (c *Context) SetCursorPosY(y float64) {
	c.cursor.Y = c.panel.Min.Y + y
}

// ContentRegionAvail returns the space from the cursor to the bottom-right
// of the content area.
func (c *Context) ContentRegionAvail() gg.Vec2 {
	return c.contentMax.Sub(c.cursor)
}

// SetNextItemWidth sets the frame width of the next framed control.
func (c *Context) SetNextItemWidth(w float64) {
	c.nextItemWidth = w
}

// CalcItemWidth returns the frame width for the next framed control and
// consumes any width set with SetNextItemWidth.
func (c *Context) CalcItemWidth() float64 {
	if w := c.nextItemWidth; w > 0 {
		c.nextItemWidth = 0
		return w
	}
	return max(1, (c.contentMax.X-c.contentMin.X)*defaultItemWidthRatio)
}

// ItemSize advances the cursor past an item of the given size and starts a
// new line.
func (c *Context) ItemSize(size gg.Vec2) {
	h := max(c.lineHeight, size.Y)
	c.lastLineEnd = gg.V2(c.cursor.X+size.X, c.cursor.Y)
	c.prevLineY = c.cursor.Y
	c.prevLineHeight = h
	c.cursor = gg.V2(c.contentMin.X, c.cursor.Y+h+c.style.ItemSpacing.Y)
	c.lineHeight = 0
}

// SameLine places the next item to the right of the previous one,
// separated by the style's horizontal item spacing.
func (c *Context) SameLine() {
	c.SameLineSpacing(c.style.ItemSpacing.X)
}

// SameLineSpacing is SameLine with an explicit gap.
func (c *Context) SameLineSpacing(spacing float64) {
	c.cursor = gg.V2(c.lastLineEnd.X+spacing, c.prevLineY)
	c.lineHeight = c.prevLineHeight
}

// NewLine ends the current line with an empty text-height line.
func (c *Context) NewLine() {
	c.ItemSize(gg.V2(0, c.TextLineHeight()))
}

// Dummy reserves an empty area.
func (c *Context) Dummy(size gg.Vec2) {
	c.ItemAdd(RectFromSize(c.cursor, size), 0)
	c.ItemSize(size)
}

// Separator draws a horizontal line across the content width.
func (c *Context) Separator() {
	y := c.cursor.Y
	c.drawList.AddLine(gg.V2(c.panel.Min.X, y), gg.V2(c.panel.Max.X, y), c.style.Colors[theme.ColSeparator], 1)
	c.ItemAdd(R(c.panel.Min.X, y, c.panel.Max.X, y+1), 0)
	c.ItemSize(gg.V2(0, 1))
}
