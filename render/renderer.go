// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/overlay"
	"github.com/gogpu/overlay/device"
	"github.com/gogpu/overlay/ui"
)

// ErrNoTarget is returned by Render while no backbuffer is bound.
var ErrNoTarget = errors.New("render: no backbuffer bound")

// faceFont is implemented by fonts the renderer can draw.
type faceFont interface {
	Face() text.Face
}

// Stats counts work done by a Renderer since it was created.
type Stats struct {
	Frames      int
	Commands    int
	SkippedText int
	Rebinds     int
}

// Renderer replays ui draw data into a gg backbuffer.
//
// Commands whose clip rectangle covers the whole target are drawn straight
// into the backbuffer. Clipped runs are drawn into a scratch layer of the
// same size and composited through the clip rectangle, because the software
// rasterizer fills whole paths.
//
// Thread Safety: Renderer is NOT thread-safe. It is driven from the frame
// loop goroutine.
type Renderer struct {
	provider gpucontext.DeviceProvider
	mode     gg.RasterizerMode
	dc       *gg.Context
	scratch  *gg.Context
	stats    Stats
}

// NewRenderer creates a renderer with no target. Bind it by registering it
// with a device.Manager. The provider's adapter selects the rasterizer on
// every bind; a nil provider keeps gg's automatic selection.
func NewRenderer(provider gpucontext.DeviceProvider) *Renderer {
	return &Renderer{provider: provider, mode: gg.RasterizerAuto}
}

// RasterizerModeFor returns the rasterizer used for an adapter. Software
// adapters get the scanline filler: panel geometry is a few hundred simple
// shapes per frame, below what the tiled fillers amortize on the CPU.
func RasterizerModeFor(info gpucontext.AdapterInfo) gg.RasterizerMode {
	if info.Type == gpucontext.AdapterTypeSoftware {
		return gg.RasterizerAnalytic
	}
	return gg.RasterizerAuto
}

// Mode returns the rasterizer mode applied to the bound target.
func (r *Renderer) Mode() gg.RasterizerMode {
	return r.mode
}

// InvalidateDeviceObjects implements device.ResourceOwner.
func (r *Renderer) InvalidateDeviceObjects() {
	r.dc = nil
	if r.scratch != nil {
		_ = r.scratch.Close()
		r.scratch = nil
	}
}

// CreateDeviceObjects implements device.ResourceOwner.
func (r *Renderer) CreateDeviceObjects(backbuffer *gg.Context) error {
	if backbuffer == nil {
		return ErrNoTarget
	}
	if r.provider != nil {
		info := r.provider.AdapterInfo()
		if mode := RasterizerModeFor(info); mode != r.mode {
			overlay.Logger().Debug("renderer rasterizer selected", "adapter", info.Name, "type", info.Type, "mode", mode)
			r.mode = mode
		}
	}
	backbuffer.SetRasterizerMode(r.mode)
	r.dc = backbuffer
	r.stats.Rebinds++
	return nil
}

// Stats returns the work counters.
func (r *Renderer) Stats() Stats {
	return r.stats
}

// layer is a drawing target: a gg context and an image view of its pixels.
type layer struct {
	dc   *gg.Context
	view *image.RGBA
}

func newLayer(dc *gg.Context) layer {
	pm := dc.ResizeTarget()
	return layer{
		dc: dc,
		view: &image.RGBA{
			Pix:    pm.Data(),
			Stride: pm.Width() * 4,
			Rect:   image.Rect(0, 0, pm.Width(), pm.Height()),
		},
	}
}

// Render draws every list of dd in order. Commands are clipped to their
// clip rectangles. The first drawing error is returned after the whole
// frame has been replayed.
func (r *Renderer) Render(dd *ui.DrawData) error {
	if r.dc == nil {
		return ErrNoTarget
	}
	if dd == nil {
		return nil
	}

	target := newLayer(r.dc)
	bounds := target.view.Rect

	var (
		firstErr error
		scratch  layer
		batch    image.Rectangle
		pending  bool
	)
	flush := func() {
		if pending {
			draw.Draw(target.view, batch, scratch.view, batch.Min, draw.Over)
			pending = false
		}
	}

	for _, dl := range dd.Lists {
		for i := range dl.Cmds {
			cmd := &dl.Cmds[i]
			r.stats.Commands++

			clip := pixelRect(cmd.Clip).Intersect(bounds)
			if clip.Empty() {
				continue
			}

			dst := target
			if clip != bounds {
				if pending && clip != batch {
					flush()
				}
				if !pending {
					scratch = r.scratchLayer(bounds)
					clearRect(scratch.view, clip)
					batch = clip
					pending = true
				}
				dst = scratch
			} else {
				flush()
			}

			if err := r.draw(dst, clip, cmd); err != nil && firstErr == nil {
				firstErr = fmt.Errorf("render: %s: %w", cmd.Kind, err)
			}
		}
	}
	flush()

	r.stats.Frames++
	return firstErr
}

// scratchLayer returns the scratch layer, recreating it when the target
// size changed.
func (r *Renderer) scratchLayer(bounds image.Rectangle) layer {
	if r.scratch == nil || r.scratch.Width() != bounds.Dx() || r.scratch.Height() != bounds.Dy() {
		if r.scratch != nil {
			_ = r.scratch.Close()
		}
		r.scratch = gg.NewContext(bounds.Dx(), bounds.Dy())
	}
	r.scratch.SetRasterizerMode(r.mode)
	return newLayer(r.scratch)
}

func pixelRect(rc ui.Rect) image.Rectangle {
	return image.Rect(
		int(math.Floor(rc.Min.X)), int(math.Floor(rc.Min.Y)),
		int(math.Ceil(rc.Max.X)), int(math.Ceil(rc.Max.Y)),
	)
}

func clearRect(img *image.RGBA, rc image.Rectangle) {
	for y := rc.Min.Y; y < rc.Max.Y; y++ {
		off := img.PixOffset(rc.Min.X, y)
		clear(img.Pix[off : off+rc.Dx()*4])
	}
}

func (r *Renderer) draw(dst layer, clip image.Rectangle, cmd *ui.Cmd) error {
	if cmd.Kind == ui.CmdText {
		r.drawText(dst.view, clip, cmd)
		return nil
	}

	dc := dst.dc
	c := cmd.Color
	dc.SetRGBA(c.R, c.G, c.B, c.A)

	switch cmd.Kind {
	case ui.CmdRectFilled:
		rectPath(dc, cmd.Min, cmd.Max, cmd.Rounding)
		return dc.Fill()

	case ui.CmdRect:
		h := cmd.Thickness * 0.5
		rectPath(dc, cmd.Min.Add(gg.V2(h, h)), cmd.Max.Sub(gg.V2(h, h)), max(0, cmd.Rounding-h))
		dc.SetLineWidth(cmd.Thickness)
		return dc.Stroke()

	case ui.CmdCircleFilled:
		dc.DrawCircle(cmd.Min.X, cmd.Min.Y, cmd.Radius)
		return dc.Fill()

	case ui.CmdCircle:
		dc.DrawCircle(cmd.Min.X, cmd.Min.Y, cmd.Radius)
		dc.SetLineWidth(cmd.Thickness)
		return dc.Stroke()

	case ui.CmdLine:
		dc.DrawLine(cmd.Min.X, cmd.Min.Y, cmd.Max.X, cmd.Max.Y)
		dc.SetLineWidth(cmd.Thickness)
		return dc.Stroke()

	case ui.CmdTriangleFilled:
		p := cmd.Points
		dc.MoveTo(p[0].X, p[0].Y)
		dc.LineTo(p[1].X, p[1].Y)
		dc.LineTo(p[2].X, p[2].Y)
		dc.ClosePath()
		return dc.Fill()

	default:
		dc.ClearPath()
		return fmt.Errorf("unknown command kind %d", cmd.Kind)
	}
}

func rectPath(dc *gg.Context, pMin, pMax gg.Vec2, rounding float64) {
	w := pMax.X - pMin.X
	h := pMax.Y - pMin.Y
	rounding = min(rounding, w*0.5, h*0.5)
	if rounding > 0 {
		dc.DrawRoundedRectangle(pMin.X, pMin.Y, w, h, rounding)
		return
	}
	dc.DrawRectangle(pMin.X, pMin.Y, w, h)
}

// drawText draws through gg/text into a sub-image of the layer so that
// glyphs stop at the clip rectangle.
func (r *Renderer) drawText(view *image.RGBA, clip image.Rectangle, cmd *ui.Cmd) {
	ff, ok := cmd.Font.(faceFont)
	if !ok {
		r.stats.SkippedText++
		return
	}
	dst, ok := view.SubImage(clip).(*image.RGBA)
	if !ok {
		return
	}
	baseline := cmd.Min.Y + cmd.Font.Ascent()
	text.Draw(dst, cmd.Text, ff.Face(), math.Round(cmd.Min.X), math.Round(baseline), cmd.Color.Color())
}

// Ensure Renderer implements device.ResourceOwner.
var _ device.ResourceOwner = (*Renderer)(nil)
