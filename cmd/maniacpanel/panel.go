package main

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/overlay"
	"github.com/gogpu/overlay/settings"
	"github.com/gogpu/overlay/theme"
	"github.com/gogpu/overlay/ui"
	"github.com/gogpu/overlay/widget"
)

// sliderWidth is the width of every combo and slider in the panel.
const sliderWidth = 180

var (
	statusPlayingColor = gg.RGBA{R: 0.4, G: 1, B: 0.5, A: 1}
	statusIdleColor    = gg.RGBA{R: 0.8, G: 0.8, B: 0.8, A: 0.7}
)

// accentPresets are the swatches offered next to the custom color editor.
var accentPresets = []struct {
	id  string
	rgb [3]float64
}{
	{"##pink", [3]float64{1.0, 0.40, 0.70}},
	{"##blue", [3]float64{0.40, 0.60, 1.0}},
	{"##green", [3]float64{0.30, 0.90, 0.55}},
	{"##purple", [3]float64{0.70, 0.40, 1.0}},
	{"##orange", [3]float64{1.0, 0.55, 0.20}},
}

// Help texts.
const (
	helpHumanizationType = "Static: density per 1s chunk. Dynamic: density 1s ahead of each hit, applied individually."
	helpModifier         = "Density-based hit-time offset. Higher = more human variation."
	helpMean             = "Mean of the normal distribution used for random hit-time offset."
	helpStdDev           = "Standard deviation. Higher = more spread."
	helpCompensation     = "Constant offset added to all hit-times. Compensates for input latency."
	helpTapTime          = "How long a key is held down per keypress."
)

// panel is the composition callback: it draws the status line and the
// Appearance, Humanization and Gameplay sections every frame.
type panel struct {
	ui       *ui.Context
	tk       *widget.Toolkit
	settings *settings.Settings
	status   *overlay.Status
}

func newPanel(ctx *ui.Context, tk *widget.Toolkit, s *settings.Settings, status *overlay.Status) *panel {
	return &panel{ui: ctx, tk: tk, settings: s, status: status}
}

// Draw composes one frame of the panel.
func (p *panel) Draw() {
	c := p.ui

	c.Dummy(gg.V2(0, 2))
	p.statusLine()
	c.Dummy(gg.V2(0, 2))

	widget.SectionGap(c)
	if c.CollapsingHeader("Appearance", true) {
		p.appearance()
	}

	widget.SectionGap(c)
	if c.CollapsingHeader("Humanization", true) {
		p.humanization()
	}

	widget.SectionGap(c)
	if c.CollapsingHeader("Gameplay", true) {
		p.gameplay()
	}

	widget.SectionGap(c)
	c.Dummy(gg.V2(0, 2))
	c.TextDisabled("  maniac-next")
	c.SameLine()
	c.TextDisabled("by miku (original by fs-c)")
}

func (p *panel) statusLine() {
	msg := p.status.Load()
	col := statusIdleColor
	if msg == StatusPlaying {
		col = statusPlayingColor
	}
	p.ui.TextColored(col, "  "+msg)
}

func (p *panel) appearance() {
	c, s := p.ui, p.settings
	c.Dummy(gg.V2(0, 3))

	c.Text("Theme")
	c.SameLine()
	c.SetNextItemWidth(sliderWidth)
	sel := int(s.Theme)
	if c.Combo("##theme", &sel, theme.Names()) {
		s.Theme = theme.Selector(sel)
	}

	c.Dummy(gg.V2(0, 4))

	c.Text("Accent")
	c.SameLine()
	for _, sw := range accentPresets {
		p.tk.Swatch(c, sw.id, sw.rgb, &s.Accent)
		c.SameLine()
	}
	c.ColorEdit3("##accent_custom", &s.Accent)
	c.SameLine()
	c.TextDisabled("custom")

	c.Dummy(gg.V2(0, 3))
}

func (p *panel) humanization() {
	c, s := p.ui, p.settings
	c.Dummy(gg.V2(0, 3))

	c.SetNextItemWidth(sliderWidth)
	kind := int(s.HumanizationType)
	if c.Combo("Type##htype", &kind, settings.HumanizationNames()) {
		s.HumanizationType = settings.Humanization(kind)
	}
	c.SameLine()
	widget.HelpMarker(c, helpHumanizationType)

	c.Dummy(gg.V2(0, 2))
	p.slider("Modifier##hmod", &s.HumanizationModifier, 0, 500, helpModifier)

	c.Dummy(gg.V2(0, 4))
	c.TextDisabled("Gaussian randomization")
	c.Dummy(gg.V2(0, 2))

	p.slider("Mean##rmean", &s.RandomizationMean, -50, 50, helpMean)
	p.slider("Std Dev##rstddev", &s.RandomizationStdDev, 0, 100, helpStdDev)

	c.Dummy(gg.V2(0, 3))
}

func (p *panel) gameplay() {
	c, s := p.ui, p.settings
	c.Dummy(gg.V2(0, 3))

	p.slider("Compensation (ms)##comp", &s.CompensationOffset, -100, 100, helpCompensation)
	c.Dummy(gg.V2(0, 2))
	p.slider("Tap Time (ms)##tap", &s.TapTime, 1, 100, helpTapTime)

	c.Dummy(gg.V2(0, 4))
	p.tk.Toggle(c, "Mirror Mod", &s.MirrorMod)

	c.Dummy(gg.V2(0, 3))
}

func (p *panel) slider(id string, v *int, lo, hi int, help string) {
	p.ui.SetNextItemWidth(sliderWidth)
	p.tk.Slider(p.ui, id, v, lo, hi)
	p.ui.SameLine()
	widget.HelpMarker(p.ui, help)
}
