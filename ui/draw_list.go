package ui

import "github.com/gogpu/gg"

// CmdKind selects the primitive a Cmd draws.
type CmdKind uint8

// Draw command kinds.
const (
	CmdRectFilled CmdKind = iota
	CmdRect
	CmdCircleFilled
	CmdCircle
	CmdLine
	CmdTriangleFilled
	CmdText
)

// String returns the command kind name.
func (k CmdKind) String() string {
	switch k {
	case CmdRectFilled:
		return "RectFilled"
	case CmdRect:
		return "Rect"
	case CmdCircleFilled:
		return "CircleFilled"
	case CmdCircle:
		return "Circle"
	case CmdLine:
		return "Line"
	case CmdTriangleFilled:
		return "TriangleFilled"
	case CmdText:
		return "Text"
	default:
		return "Unknown"
	}
}

// Cmd is one recorded primitive.
//
// Geometry by kind:
//   - rects: Min, Max, Rounding
//   - circles: Center (in Min), Radius
//   - lines: Min to Max
//   - triangles: Points[0..2]
//   - text: top-left at Min, Text drawn with Font
//
// Thickness applies to outlined shapes and lines.
type Cmd struct {
	Kind      CmdKind
	Min, Max  gg.Vec2
	Points    [3]gg.Vec2
	Rounding  float64
	Radius    float64
	Thickness float64
	Color     gg.RGBA
	Text      string
	Font      Font
	Clip      Rect
}

// DrawList records primitives in submission order. Every command carries
// the clip rectangle that was current when it was added.
type DrawList struct {
	Cmds []Cmd

	clipStack []Rect
	full      Rect
}

// NewDrawList returns an empty list whose base clip is full.
func NewDrawList(full Rect) *DrawList {
	dl := &DrawList{}
	dl.Reset(full)
	return dl
}

// Reset empties the list and sets the base clip to full. The command
// buffer is retained for reuse.
func (dl *DrawList) Reset(full Rect) {
	dl.Cmds = dl.Cmds[:0]
	dl.clipStack = dl.clipStack[:0]
	dl.full = full
}

// ClipRect returns the current clip rectangle.
func (dl *DrawList) ClipRect() Rect {
	if n := len(dl.clipStack); n > 0 {
		return dl.clipStack[n-1]
	}
	return dl.full
}

// PushClipRect makes r the current clip. When intersect is true r is
// first intersected with the current clip.
func (dl *DrawList) PushClipRect(r Rect, intersect bool) {
	if intersect {
		r = r.Intersect(dl.ClipRect())
	}
	dl.clipStack = append(dl.clipStack, r)
}

// PopClipRect restores the previous clip. Popping an empty stack is a no-op.
func (dl *DrawList) PopClipRect() {
	if n := len(dl.clipStack); n > 0 {
		dl.clipStack = dl.clipStack[:n-1]
	}
}

func (dl *DrawList) add(cmd Cmd) {
	if cmd.Color.A <= 0 {
		return
	}
	cmd.Clip = dl.ClipRect()
	if cmd.Clip.Empty() {
		return
	}
	dl.Cmds = append(dl.Cmds, cmd)
}

// AddRectFilled adds a filled rectangle with corner radius rounding.
func (dl *DrawList) AddRectFilled(pMin, pMax gg.Vec2, col gg.RGBA, rounding float64) {
	dl.add(Cmd{Kind: CmdRectFilled, Min: pMin, Max: pMax, Color: col, Rounding: rounding})
}

// AddRect adds a rectangle outline.
func (dl *DrawList) AddRect(pMin, pMax gg.Vec2, col gg.RGBA, rounding, thickness float64) {
	if thickness <= 0 {
		return
	}
	dl.add(Cmd{Kind: CmdRect, Min: pMin, Max: pMax, Color: col, Rounding: rounding, Thickness: thickness})
}

// AddCircleFilled adds a filled circle.
func (dl *DrawList) AddCircleFilled(center gg.Vec2, radius float64, col gg.RGBA) {
	if radius <= 0 {
		return
	}
	dl.add(Cmd{Kind: CmdCircleFilled, Min: center, Radius: radius, Color: col})
}

// AddCircle adds a circle outline.
func (dl *DrawList) AddCircle(center gg.Vec2, radius float64, col gg.RGBA, thickness float64) {
	if radius <= 0 || thickness <= 0 {
		return
	}
	dl.add(Cmd{Kind: CmdCircle, Min: center, Radius: radius, Color: col, Thickness: thickness})
}

// AddLine adds a straight line segment.
func (dl *DrawList) AddLine(p1, p2 gg.Vec2, col gg.RGBA, thickness float64) {
	if thickness <= 0 {
		return
	}
	dl.add(Cmd{Kind: CmdLine, Min: p1, Max: p2, Color: col, Thickness: thickness})
}

// AddTriangleFilled adds a filled triangle.
func (dl *DrawList) AddTriangleFilled(p1, p2, p3 gg.Vec2, col gg.RGBA) {
	dl.add(Cmd{Kind: CmdTriangleFilled, Points: [3]gg.Vec2{p1, p2, p3}, Color: col})
}

// AddText adds s with its top-left corner at pos.
func (dl *DrawList) AddText(f Font, pos gg.Vec2, col gg.RGBA, s string) {
	if s == "" || f == nil {
		return
	}
	dl.add(Cmd{Kind: CmdText, Min: pos, Color: col, Text: s, Font: f})
}

// DrawData is the output of one frame: draw lists in back-to-front order.
type DrawData struct {
	Lists       []*DrawList
	DisplaySize gg.Vec2
}

// CmdCount returns the total number of commands across all lists.
func (d *DrawData) CmdCount() int {
	n := 0
	for _, dl := range d.Lists {
		n += len(dl.Cmds)
	}
	return n
}
