package ui

import (
	"fmt"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

// Font measures text for layout. Renderers that can draw a font's glyphs
// look for a concrete type behind it, such as *TextFont.
type Font interface {
	// Size returns the nominal size in pixels.
	Size() float64
	// Ascent returns the distance from the top of a line to the baseline.
	Ascent() float64
	// Descent returns the distance from the baseline to the bottom of a line.
	Descent() float64
	// Advance returns the horizontal advance of s.
	Advance(s string) float64
}

// LineHeight returns the height of one line of f.
func LineHeight(f Font) float64 {
	return f.Ascent() + f.Descent()
}

// TextFont adapts a gg text face to Font.
type TextFont struct {
	face    text.Face
	metrics text.Metrics
}

// NewTextFont wraps face.
func NewTextFont(face text.Face) *TextFont {
	return &TextFont{face: face, metrics: face.Metrics()}
}

// LoadFont parses TrueType/OpenType data and returns a font at size pixels.
func LoadFont(data []byte, size float64) (*TextFont, error) {
	src, err := text.NewFontSource(data)
	if err != nil {
		return nil, fmt.Errorf("ui: failed to load font: %w", err)
	}
	return NewTextFont(src.Face(size)), nil
}

// DefaultFont returns Go Regular at size pixels.
func DefaultFont(size float64) (*TextFont, error) {
	return LoadFont(goregular.TTF, size)
}

// Face returns the wrapped face.
func (f *TextFont) Face() text.Face { return f.face }

// Size implements Font.
func (f *TextFont) Size() float64 { return f.face.Size() }

// Ascent implements Font.
func (f *TextFont) Ascent() float64 { return f.metrics.Ascent }

// Descent implements Font.
func (f *TextFont) Descent() float64 { return f.metrics.Descent }

// Advance implements Font.
func (f *TextFont) Advance(s string) float64 {
	if s == "" {
		return 0
	}
	return f.face.Advance(s)
}
