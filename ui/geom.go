package ui

import "github.com/gogpu/gg"

// Rect is an axis-aligned rectangle in screen space. Max is exclusive.
type Rect struct {
	Min, Max gg.Vec2
}

// R returns the rectangle with corners (x0, y0) and (x1, y1).
func R(x0, y0, x1, y1 float64) Rect {
	return Rect{Min: gg.V2(x0, y0), Max: gg.V2(x1, y1)}
}

// RectFromSize returns the rectangle at pos with the given size.
func RectFromSize(pos, size gg.Vec2) Rect {
	return Rect{Min: pos, Max: pos.Add(size)}
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 { return r.Max.X - r.Min.X }

// Height returns the vertical extent.
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Size returns width and height as a vector.
func (r Rect) Size() gg.Vec2 { return gg.V2(r.Width(), r.Height()) }

// Center returns the midpoint.
func (r Rect) Center() gg.Vec2 {
	return gg.V2((r.Min.X+r.Max.X)*0.5, (r.Min.Y+r.Max.Y)*0.5)
}

// Empty reports whether r covers no area.
func (r Rect) Empty() bool {
	return r.Max.X <= r.Min.X || r.Max.Y <= r.Min.Y
}

// Contains reports whether p lies inside r.
func (r Rect) Contains(p gg.Vec2) bool {
	return p.X >= r.Min.X && p.Y >= r.Min.Y && p.X < r.Max.X && p.Y < r.Max.Y
}

// Intersect returns the overlap of r and s. The result may be empty.
func (r Rect) Intersect(s Rect) Rect {
	out := Rect{
		Min: gg.V2(max(r.Min.X, s.Min.X), max(r.Min.Y, s.Min.Y)),
		Max: gg.V2(min(r.Max.X, s.Max.X), min(r.Max.Y, s.Max.Y)),
	}
	if out.Empty() {
		return Rect{Min: out.Min, Max: out.Min}
	}
	return out
}

// Expand grows r by d on every side.
func (r Rect) Expand(d float64) Rect {
	return Rect{Min: gg.V2(r.Min.X-d, r.Min.Y-d), Max: gg.V2(r.Max.X+d, r.Max.Y+d)}
}
