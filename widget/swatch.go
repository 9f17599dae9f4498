package widget

import (
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/overlay/theme"
	"github.com/gogpu/overlay/ui"
)

const (
	// SwatchSize is the edge length of a color swatch.
	SwatchSize = 22

	// SwatchEpsilon is the per-channel tolerance for a swatch to count as
	// the active accent.
	SwatchEpsilon = 0.01

	activeBorder = 2.0
)

// Matches reports whether every channel of a and b differs by less than
// SwatchEpsilon.
func Matches(a, b [3]float64) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) >= SwatchEpsilon {
			return false
		}
	}
	return true
}

// Swatch draws a square button filled with rgb. It has a thicker border
// while accent matches rgb. Clicking it assigns rgb to accent and returns
// true.
func (t *Toolkit) Swatch(ctx *ui.Context, id string, rgb [3]float64, accent *[3]float64) bool {
	active := Matches(rgb, *accent)
	if active {
		ctx.PushStyleVar(ui.StyleVarFrameBorderSize, activeBorder)
	}
	ctx.PushStyleColor(theme.ColButton, gg.RGB(rgb[0], rgb[1], rgb[2]))
	ctx.PushStyleColor(theme.ColButtonHovered, gg.RGB(rgb[0]*0.8, rgb[1]*0.8, rgb[2]*0.8))
	ctx.PushStyleColor(theme.ColButtonActive, gg.RGB(rgb[0]*0.6, rgb[1]*0.6, rgb[2]*0.6))

	clicked := ctx.Button(id, gg.V2(SwatchSize, SwatchSize))

	ctx.PopStyleColor(3)
	if active {
		ctx.PopStyleVar(1)
	}

	if clicked {
		*accent = rgb
	}
	return clicked
}
