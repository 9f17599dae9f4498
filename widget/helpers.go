package widget

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/overlay/ui"
)

// helpWrapEms is the tooltip wrap width in multiples of the font size.
const helpWrapEms = 30

// HelpMarker draws a dim "(?)" that shows desc as a tooltip on hover.
func HelpMarker(ctx *ui.Context, desc string) {
	ctx.TextDisabled("(?)")
	if ctx.IsItemHovered() {
		ctx.SetTooltip(desc, ctx.Font().Size()*helpWrapEms)
	}
}

// SectionGap separates panel sections with padding around a separator.
func SectionGap(ctx *ui.Context) {
	ctx.Dummy(gg.V2(0, 4))
	ctx.Separator()
	ctx.Dummy(gg.V2(0, 4))
}
