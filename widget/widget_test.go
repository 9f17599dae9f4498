package widget

import (
	"math"
	"testing"

	"github.com/gogpu/gg"
	"github.com/gogpu/overlay/theme"
	"github.com/gogpu/overlay/ui"
)

type fakeFont struct{}

func (fakeFont) Size() float64            { return 10 }
func (fakeFont) Ascent() float64          { return 8 }
func (fakeFont) Descent() float64         { return 2 }
func (fakeFont) Advance(s string) float64 { return 6 * float64(len(s)) }

const dt = 1.0 / 60

func newTestContext(t *testing.T) *ui.Context {
	t.Helper()
	c, err := ui.NewContext(fakeFont{})
	if err != nil {
		t.Fatal(err)
	}
	c.IO.SetDisplaySize(570, 490)
	c.IO.AddMousePos(-100, -100)
	return c
}

func runFrame(c *ui.Context, fn func()) *ui.DrawData {
	c.NewFrame(dt)
	c.Begin("test")
	fn()
	return c.EndFrame()
}

func click(c *ui.Context, p gg.Vec2) {
	c.IO.AddMousePos(p.X, p.Y)
	c.IO.AddMouseButton(ui.MouseLeft, true)
	c.IO.AddMouseButton(ui.MouseLeft, false)
}

func TestSmooth(t *testing.T) {
	tests := []struct {
		name        string
		cur, target float64
	}{
		{"rising", 0, 1},
		{"falling", 1, 0},
		{"large range", -50, 450},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cur := tt.cur
			prevDist := math.Abs(tt.target - cur)
			for i := 0; i < 1000 && cur != tt.target; i++ {
				next := Smooth(cur, tt.target, DefaultRate, dt)
				dist := math.Abs(tt.target - next)
				if dist > prevDist {
					t.Fatalf("frame %d: distance grew %v -> %v", i, prevDist, dist)
				}
				// Never crosses the target.
				if (tt.target-cur)*(tt.target-next) < 0 {
					t.Fatalf("frame %d: overshoot %v -> %v (target %v)", i, cur, next, tt.target)
				}
				cur, prevDist = next, dist
			}
			if cur != tt.target {
				t.Errorf("did not snap to target: %v", cur)
			}
		})
	}
}

func TestSmoothSnapsWithinEpsilon(t *testing.T) {
	if got := Smooth(1-Epsilon/2, 1, DefaultRate, dt); got != 1 {
		t.Errorf("Smooth near target = %v, want exact 1", got)
	}
}

func TestToolkitStateLazy(t *testing.T) {
	tk := New()
	if tk.Len() != 0 {
		t.Fatal("new toolkit should be empty")
	}
	a := tk.State("x")
	b := tk.State("x")
	if a != b {
		t.Error("same identity must share state")
	}
	tk.State("y")
	if tk.Len() != 2 {
		t.Errorf("Len() = %d, want 2", tk.Len())
	}
}

func TestToggleFirstUseHasNoAnimation(t *testing.T) {
	c := newTestContext(t)
	tk := New()
	v := true

	runFrame(c, func() { tk.Toggle(c, "Mirror Mod", &v) })

	if st := tk.State("Mirror Mod"); !st.Initialized || st.Value != 1 {
		t.Errorf("first frame state = %+v, want initialized at 1", *st)
	}
}

func TestToggleClickAnimates(t *testing.T) {
	c := newTestContext(t)
	tk := New()
	v := true

	var origin gg.Vec2
	runFrame(c, func() {
		origin = c.CursorScreenPos()
		tk.Toggle(c, "Mirror Mod", &v)
	})

	click(c, origin.Add(gg.V2(3, 3)))
	changed := false
	runFrame(c, func() { changed = tk.Toggle(c, "Mirror Mod", &v) })
	if !changed || v {
		t.Fatalf("changed=%v v=%v, want true false", changed, v)
	}

	st := tk.State("Mirror Mod")
	prev := st.Value
	if prev <= 0 || prev >= 1 {
		t.Fatalf("progress after flip = %v, want strictly between 0 and 1", prev)
	}

	frames := 0
	for st.Value != 0 {
		runFrame(c, func() {
			if tk.Toggle(c, "Mirror Mod", &v) {
				t.Fatal("no click, but changed reported")
			}
		})
		if st.Value > prev || st.Value < 0 {
			t.Fatalf("progress %v -> %v is not monotone toward 0", prev, st.Value)
		}
		prev = st.Value
		frames++
		if frames > 500 {
			t.Fatal("progress never reached target")
		}
	}
}

func TestToggleTrackColorFollowsProgress(t *testing.T) {
	c := newTestContext(t)
	tk := New()
	v := false

	runFrame(c, func() { tk.Toggle(c, "t", &v) })
	v = true // external flip, no click
	dd := runFrame(c, func() { tk.Toggle(c, "t", &v) })

	progress := tk.State("t").Value
	want := offColor.Lerp(c.Color(theme.ColButtonActive), progress)
	h := c.FrameHeight()
	for _, cmd := range dd.Lists[0].Cmds {
		if cmd.Kind == ui.CmdRectFilled && cmd.Rounding == h*0.5 {
			if cmd.Color != want {
				t.Errorf("track color = %+v, want %+v (progress %v)", cmd.Color, want, progress)
			}
			return
		}
	}
	t.Error("toggle track not drawn")
}

func TestSliderConverges(t *testing.T) {
	c := newTestContext(t)
	tk := New()

	for _, start := range []float64{0, 125, 499} {
		id := "Modifier##hmod"
		st := tk.State(id)
		st.Value, st.Initialized = start, true
		v := 250

		frames := 0
		for st.Value != float64(v) {
			runFrame(c, func() {
				c.SetNextItemWidth(180)
				tk.Slider(c, id, &v, 0, 500)
			})
			frames++
			if frames > 300 {
				t.Fatalf("start %v: display value %v did not converge to %d", start, st.Value, v)
			}
		}
	}
}

func TestSliderChangesImmediately(t *testing.T) {
	c := newTestContext(t)
	tk := New()
	v := 50

	var origin gg.Vec2
	runFrame(c, func() {
		origin = c.CursorScreenPos()
		c.SetNextItemWidth(180)
		tk.Slider(c, "Tap##tap", &v, 0, 100)
	})

	c.IO.AddMousePos(origin.X+179, origin.Y+3)
	c.IO.AddMouseButton(ui.MouseLeft, true)
	changed := false
	runFrame(c, func() {
		c.SetNextItemWidth(180)
		changed = tk.Slider(c, "Tap##tap", &v, 0, 100)
	})

	if !changed || v != 100 {
		t.Fatalf("changed=%v v=%d, want true 100", changed, v)
	}
	if shown := tk.State("Tap##tap").Value; shown >= 100 || shown <= 50 {
		t.Errorf("display value = %v, want lagging between 50 and 100", shown)
	}
}

func TestSliderKnobFollowsCursor(t *testing.T) {
	const id = "Tap##tap"
	for _, at := range []float64{0.1, 0.5, 0.9} {
		c := newTestContext(t)
		tk := New()
		v := 50

		var frame ui.Rect
		runFrame(c, func() {
			frame = ui.RectFromSize(c.CursorScreenPos(), gg.V2(180, c.FrameHeight()))
			c.SetNextItemWidth(180)
			tk.Slider(c, id, &v, 0, 100)
		})

		mouseX := frame.Min.X + at*frame.Width()
		c.IO.AddMousePos(mouseX, frame.Center().Y)
		c.IO.AddMouseButton(ui.MouseLeft, true)

		var dd *ui.DrawData
		for frames := 0; frames == 0 || tk.State(id).Value != float64(v); frames++ {
			if frames > 300 {
				t.Fatalf("at %v: display value did not settle", at)
			}
			dd = runFrame(c, func() {
				c.SetNextItemWidth(180)
				tk.Slider(c, id, &v, 0, 100)
			})
		}

		var knob *ui.Cmd
		grabCol := c.Color(theme.ColSliderGrabActive)
		for i := range dd.Lists[0].Cmds {
			if cmd := &dd.Lists[0].Cmds[i]; cmd.Kind == ui.CmdRectFilled && cmd.Color == grabCol {
				knob = cmd
			}
		}
		if knob == nil {
			t.Fatalf("at %v: no knob drawn", at)
		}

		want := c.SliderGrabRect(frame, 0, 100, float64(v)/100)
		if knob.Min != want.Min || knob.Max != want.Max {
			t.Errorf("at %v: knob %v-%v, want the behavior grab %v-%v", at, knob.Min, knob.Max, want.Min, want.Max)
		}
		step := frame.Width() / 100
		if center := (knob.Min.X + knob.Max.X) / 2; math.Abs(center-mouseX) > step {
			t.Errorf("at %v: knob center %v drifted from cursor %v", at, center, mouseX)
		}
	}
}

func TestSliderLabelDrawnThreeTimes(t *testing.T) {
	c := newTestContext(t)
	tk := New()
	v := 250

	dd := runFrame(c, func() {
		c.SetNextItemWidth(180)
		tk.Slider(c, "Modifier##hmod", &v, 0, 500)
	})

	var texts []ui.Cmd
	for _, cmd := range dd.Lists[0].Cmds {
		if cmd.Kind == ui.CmdText && cmd.Text == "250" {
			texts = append(texts, cmd)
		}
	}
	if len(texts) != 3 {
		t.Fatalf("value text drawn %d times, want 3", len(texts))
	}
	for i := 1; i < 3; i++ {
		if texts[i].Clip == texts[i-1].Clip {
			t.Errorf("pass %d reuses clip %+v", i, texts[i].Clip)
		}
		if texts[i].Clip.Min.X < texts[i-1].Clip.Max.X-1e-9 {
			t.Errorf("clip %d overlaps clip %d", i, i-1)
		}
	}
	if texts[0].Color == texts[1].Color || texts[1].Color == texts[2].Color || texts[0].Color == texts[2].Color {
		t.Error("each pass should use its own color")
	}
}

func TestMatches(t *testing.T) {
	accent := [3]float64{0.4, 0.6, 1.0}
	tests := []struct {
		swatch [3]float64
		want   bool
	}{
		{[3]float64{0.40001, 0.6, 1.0}, true},
		{[3]float64{0.43, 0.6, 1.0}, false},
		{[3]float64{0.4, 0.6, 0.98}, false},
		{accent, true},
	}
	for _, tt := range tests {
		if got := Matches(tt.swatch, accent); got != tt.want {
			t.Errorf("Matches(%v, %v) = %v, want %v", tt.swatch, accent, got, tt.want)
		}
	}
}

func TestSwatchClickAssignsAccent(t *testing.T) {
	c := newTestContext(t)
	tk := New()
	accent := [3]float64{0.4, 0.6, 1.0}
	pink := [3]float64{1.0, 0.40, 0.70}

	var origin gg.Vec2
	runFrame(c, func() {
		origin = c.CursorScreenPos()
		tk.Swatch(c, "##pink", pink, &accent)
	})

	click(c, origin.Add(gg.V2(SwatchSize/2, SwatchSize/2)))
	clicked := false
	runFrame(c, func() { clicked = tk.Swatch(c, "##pink", pink, &accent) })
	if !clicked || accent != pink {
		t.Errorf("clicked=%v accent=%v, want true %v", clicked, accent, pink)
	}
}

func TestSwatchActiveBorder(t *testing.T) {
	c := newTestContext(t)
	tk := New()
	accent := [3]float64{0.4, 0.6, 1.0}
	base := c.Style().FrameBorderSize

	dd := runFrame(c, func() {
		tk.Swatch(c, "##blue", [3]float64{0.4, 0.6, 1.0}, &accent)
		tk.Swatch(c, "##green", [3]float64{0.3, 0.9, 0.55}, &accent)
	})

	var borders []float64
	for _, cmd := range dd.Lists[0].Cmds {
		if cmd.Kind == ui.CmdRect && cmd.Max.Sub(cmd.Min) == gg.V2(SwatchSize, SwatchSize) {
			borders = append(borders, cmd.Thickness)
		}
	}
	if len(borders) == 0 || borders[0] != activeBorder {
		t.Fatalf("active swatch borders = %v, want first %v", borders, activeBorder)
	}
	if base == 0 && len(borders) != 1 {
		t.Errorf("inactive swatch drew a border with zero border size: %v", borders)
	}
	if c.Style().FrameBorderSize != base {
		t.Error("swatch leaked its border override")
	}
}

func TestHelpMarkerTooltip(t *testing.T) {
	c := newTestContext(t)

	var origin gg.Vec2
	runFrame(c, func() {
		origin = c.CursorScreenPos()
		HelpMarker(c, "How long a key is held down per keypress.")
	})
	if dd := runFrame(c, func() { HelpMarker(c, "x") }); len(dd.Lists[1].Cmds) != 0 {
		t.Error("tooltip shown without hover")
	}

	c.IO.AddMousePos(origin.X+2, origin.Y+2)
	dd := runFrame(c, func() { HelpMarker(c, "How long a key is held down per keypress.") })
	if len(dd.Lists[1].Cmds) == 0 {
		t.Error("hovering the marker should show a tooltip")
	}
}

func TestSectionGapAdvancesCursor(t *testing.T) {
	c := newTestContext(t)
	runFrame(c, func() {
		y0 := c.CursorScreenPos().Y
		SectionGap(c)
		if c.CursorScreenPos().Y <= y0+8 {
			t.Errorf("cursor moved %v, want more than the padding", c.CursorScreenPos().Y-y0)
		}
	})
}
