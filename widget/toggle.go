package widget

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/overlay/theme"
	"github.com/gogpu/overlay/ui"
)

// Toggle draws a pill-shaped switch bound to v followed by the visible part
// of id as a label. A click on the switch flips v and returns true. The
// knob position and track color follow a smoothed progress toward 0 or 1.
func (t *Toolkit) Toggle(ctx *ui.Context, id string, v *bool) bool {
	h := ctx.FrameHeight()
	w := h * 1.75
	radius := h * 0.5
	p := ctx.CursorScreenPos()

	ctx.InvisibleButton(id, gg.V2(w, h))
	changed := false
	if ctx.IsItemClicked() {
		*v = !*v
		changed = true
	}

	target := 0.0
	if *v {
		target = 1
	}
	progress := t.advance(id, target, ctx.DeltaTime())

	dl := ctx.DrawList()
	track := offColor.Lerp(ctx.Color(theme.ColButtonActive), progress)
	dl.AddRectFilled(p, gg.V2(p.X+w, p.Y+h), track, radius)
	knob := gg.V2(p.X+radius+progress*(w-2*radius), p.Y+radius)
	dl.AddCircleFilled(knob, radius-1.5, gg.White)

	if label := ui.DisplayLabel(id); label != "" {
		ctx.SameLine()
		ctx.SetCursorPosY(ctx.CursorPos().Y + (h-ctx.TextLineHeight())*0.5)
		ctx.Text(label)
	}
	return changed
}
