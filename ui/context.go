package ui

import (
	"errors"

	"github.com/gogpu/gg"
	"github.com/gogpu/overlay"
	"github.com/gogpu/overlay/theme"
)

// ErrNoFont is returned by NewContext when no font is supplied.
var ErrNoFont = errors.New("ui: nil font")

// minDeltaTime keeps animation math away from dt == 0.
const minDeltaTime = 1.0 / 10000

type colorMod struct {
	col theme.Col
	old gg.RGBA
}

type varMod struct {
	v   StyleVar
	old float64
}

type lastItem struct {
	id      ID
	rect    Rect
	hovered bool
}

// Context is the immediate-mode UI state for one window.
//
// Context is NOT safe for concurrent use. All calls happen on the frame
// loop goroutine.
type Context struct {
	// IO receives input from the window binding between frames.
	IO IO

	style theme.Style
	font  Font

	frame   int
	inFrame bool
	dt      float64

	clicked  [mouseButtonCount]bool
	released [mouseButtonCount]bool

	drawList   *DrawList
	foreground *DrawList

	// Root panel.
	panel      Rect
	contentMin gg.Vec2
	contentMax gg.Vec2
	inPanel    bool

	// Layout cursor.
	cursor         gg.Vec2
	lineHeight     float64
	prevLineY      float64
	prevLineHeight float64
	lastLineEnd    gg.Vec2
	nextItemWidth  float64

	last lastItem

	activeID     ID
	activeIDSeen bool

	// Popups recorded this frame block hover for the next one.
	popupID    ID
	popupRect  Rect
	blockRect  Rect
	inPopup    bool
	popupTouch bool

	tooltip     string
	tooltipWrap float64

	idStack    []ID
	colorStack []colorMod
	varStack   []varMod
	open       map[ID]bool
}

// NewContext creates a context drawing text with font.
func NewContext(font Font) (*Context, error) {
	if font == nil {
		return nil, ErrNoFont
	}
	return &Context{
		font:       font,
		style:      theme.For(theme.Default, [3]float64{0.4, 0.6, 1.0}),
		drawList:   NewDrawList(Rect{}),
		foreground: NewDrawList(Rect{}),
		open:       make(map[ID]bool),
	}, nil
}

// SetStyle installs s as the active style, replacing the previous one.
// Must be called outside NewFrame/EndFrame.
func (c *Context) SetStyle(s theme.Style) {
	c.style = s
	c.colorStack = c.colorStack[:0]
	c.varStack = c.varStack[:0]
}

// Style returns the active style including pushed overrides.
func (c *Context) Style() *theme.Style {
	return &c.style
}

// Color returns the active color for role col.
func (c *Context) Color(col theme.Col) gg.RGBA {
	return c.style.Colors[col]
}

// Font returns the context font.
func (c *Context) Font() Font {
	return c.font
}

// FrameCount returns the number of frames begun so far.
func (c *Context) FrameCount() int {
	return c.frame
}

// DeltaTime returns the current frame's delta time in seconds.
func (c *Context) DeltaTime() float64 {
	return c.dt
}

// NewFrame starts a frame of dt seconds. Latched input transitions from IO
// become visible to controls and are cleared from IO.
func (c *Context) NewFrame(dt float64) {
	if dt < minDeltaTime {
		dt = minDeltaTime
	}
	c.dt = dt
	c.IO.DeltaTime = dt
	c.frame++
	c.inFrame = true

	c.clicked = c.IO.clicked
	c.released = c.IO.released
	c.IO.clicked = [mouseButtonCount]bool{}
	c.IO.released = [mouseButtonCount]bool{}

	display := RectFromSize(gg.V2(0, 0), c.IO.DisplaySize)
	c.drawList.Reset(display)
	c.foreground.Reset(display)

	c.activeIDSeen = false
	c.last = lastItem{}
	c.tooltip = ""
	c.nextItemWidth = 0

	if c.popupID != 0 && !c.popupTouch {
		c.popupID = 0
	}
	c.blockRect = Rect{}
	if c.popupID != 0 {
		c.blockRect = c.popupRect
	}
	c.popupTouch = false

	c.idStack = c.idStack[:0]
	c.unwindStyle()
	c.resetCursor(display)
}

// EndFrame finishes the frame and returns its draw data. The returned data
// is valid until the next NewFrame.
func (c *Context) EndFrame() *DrawData {
	if c.inPanel {
		c.End()
	}
	if c.activeID != 0 && !c.activeIDSeen {
		c.activeID = 0
	}
	if c.tooltip != "" {
		c.drawTooltip()
	}
	c.unwindStyle()
	c.IO.MouseWheel = 0
	c.inFrame = false
	return &DrawData{
		Lists:       []*DrawList{c.drawList, c.foreground},
		DisplaySize: c.IO.DisplaySize,
	}
}

// Shutdown drops frame state and draw buffers. The context may be reused
// after a new NewFrame.
func (c *Context) Shutdown() {
	c.drawList = NewDrawList(Rect{})
	c.foreground = NewDrawList(Rect{})
	c.activeID = 0
	c.popupID = 0
	c.inFrame = false
	c.inPanel = false
	clear(c.open)
}

// Begin opens the root panel covering the whole display. name is hashed
// into the ID seed of every item inside.
func (c *Context) Begin(name string) {
	display := RectFromSize(gg.V2(0, 0), c.IO.DisplaySize)
	c.panel = display
	c.inPanel = true
	c.idStack = append(c.idStack[:0], hashString(name, 0))

	s := &c.style
	c.drawList.AddRectFilled(display.Min, display.Max, s.Colors[theme.ColWindowBg], s.WindowRounding)
	if s.WindowBorderSize > 0 {
		c.drawList.AddRect(display.Min, display.Max, s.Colors[theme.ColBorder], s.WindowRounding, s.WindowBorderSize)
	}

	c.resetCursor(display)
	c.drawList.PushClipRect(display, true)
}

// End closes the root panel.
func (c *Context) End() {
	if !c.inPanel {
		return
	}
	c.drawList.PopClipRect()
	c.inPanel = false
}

func (c *Context) resetCursor(area Rect) {
	pad := c.style.WindowPadding
	c.contentMin = area.Min.Add(pad)
	c.contentMax = area.Max.Sub(pad)
	c.cursor = c.contentMin
	c.lineHeight = 0
	c.prevLineY = c.cursor.Y
	c.prevLineHeight = 0
	c.lastLineEnd = c.cursor
}

// DrawList returns the main draw list of the frame.
func (c *Context) DrawList() *DrawList {
	return c.drawList
}

// ForegroundDrawList returns the list drawn above everything else.
func (c *Context) ForegroundDrawList() *DrawList {
	return c.foreground
}

// PushID pushes s onto the ID stack so that equal labels below it hash
// differently.
func (c *Context) PushID(s string) {
	c.idStack = append(c.idStack, c.GetID(s))
}

// PopID pops the ID stack.
func (c *Context) PopID() {
	if n := len(c.idStack); n > 0 {
		c.idStack = c.idStack[:n-1]
	}
}

// GetID hashes label with the current ID stack.
func (c *Context) GetID(label string) ID {
	var seed ID
	if n := len(c.idStack); n > 0 {
		seed = c.idStack[n-1]
	}
	return hashString(label, seed)
}

// StyleVar names a float style parameter that can be pushed.
type StyleVar int

// Pushable style variables.
const (
	StyleVarFrameRounding StyleVar = iota
	StyleVarFrameBorderSize
	StyleVarGrabRounding
	StyleVarGrabMinSize
	StyleVarWindowRounding
	StyleVarWindowBorderSize
)

func (c *Context) styleVar(v StyleVar) *float64 {
	s := &c.style
	switch v {
	case StyleVarFrameRounding:
		return &s.FrameRounding
	case StyleVarFrameBorderSize:
		return &s.FrameBorderSize
	case StyleVarGrabRounding:
		return &s.GrabRounding
	case StyleVarGrabMinSize:
		return &s.GrabMinSize
	case StyleVarWindowRounding:
		return &s.WindowRounding
	case StyleVarWindowBorderSize:
		return &s.WindowBorderSize
	default:
		return nil
	}
}

// unwindStyle pops style overrides left pushed by the frame.
func (c *Context) unwindStyle() {
	colors, vars := len(c.colorStack), len(c.varStack)
	if colors == 0 && vars == 0 {
		return
	}
	overlay.Logger().Debug("ui: unbalanced style push", "frame", c.frame, "colors", colors, "vars", vars)
	c.PopStyleColor(colors)
	c.PopStyleVar(vars)
}

// PushStyleColor overrides role col until the matching PopStyleColor.
func (c *Context) PushStyleColor(col theme.Col, v gg.RGBA) {
	if col < 0 || col >= theme.ColCount {
		return
	}
	c.colorStack = append(c.colorStack, colorMod{col: col, old: c.style.Colors[col]})
	c.style.Colors[col] = v
}

// PopStyleColor restores the last n pushed colors.
func (c *Context) PopStyleColor(n int) {
	for ; n > 0 && len(c.colorStack) > 0; n-- {
		m := c.colorStack[len(c.colorStack)-1]
		c.colorStack = c.colorStack[:len(c.colorStack)-1]
		c.style.Colors[m.col] = m.old
	}
}

// PushStyleVar overrides style variable v until the matching PopStyleVar.
func (c *Context) PushStyleVar(v StyleVar, val float64) {
	p := c.styleVar(v)
	if p == nil {
		return
	}
	c.varStack = append(c.varStack, varMod{v: v, old: *p})
	*p = val
}

// PopStyleVar restores the last n pushed variables.
func (c *Context) PopStyleVar(n int) {
	for ; n > 0 && len(c.varStack) > 0; n-- {
		m := c.varStack[len(c.varStack)-1]
		c.varStack = c.varStack[:len(c.varStack)-1]
		*c.styleVar(m.v) = m.old
	}
}

// IsMouseClicked reports whether b went down since the previous frame.
func (c *Context) IsMouseClicked(b MouseButton) bool {
	return b >= 0 && b < mouseButtonCount && c.clicked[b]
}

// IsMouseReleased reports whether b went up since the previous frame.
func (c *Context) IsMouseReleased(b MouseButton) bool {
	return b >= 0 && b < mouseButtonCount && c.released[b]
}

// IsMouseDown reports whether b is currently held.
func (c *Context) IsMouseDown(b MouseButton) bool {
	return b >= 0 && b < mouseButtonCount && c.IO.MouseDown[b]
}
