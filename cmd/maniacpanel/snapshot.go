package main

import (
	"errors"
	"fmt"

	"github.com/gogpu/gg"
	"github.com/spf13/cobra"

	"github.com/gogpu/overlay"
	"github.com/gogpu/overlay/device"
	"github.com/gogpu/overlay/window"
	"github.com/gogpu/overlay/window/headless"
)

// defaultSnapshotFrames lets widget animations settle before the capture.
const defaultSnapshotFrames = 30

type snapshotOptions struct {
	root   *rootOptions
	out    string
	frames int
}

func newSnapshotCmd(root *rootOptions) *cobra.Command {
	o := &snapshotOptions{root: root}
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Render the panel offscreen and save the last frame as PNG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return o.run(cmd)
		},
	}
	cmd.Flags().StringVarP(&o.out, "out", "o", "panel.png", "output file")
	cmd.Flags().IntVar(&o.frames, "frames", defaultSnapshotFrames, "frames to render before capturing")
	return cmd
}

func (o *snapshotOptions) run(cmd *cobra.Command) error {
	if o.frames <= 0 {
		return fmt.Errorf("snapshot: frames must be positive, got %d", o.frames)
	}

	cfg := *o.root.cfg
	opts := cfg.WindowOptions()
	opts.MaxFrames = o.frames

	w := headless.New(opts)
	a := newApp(&cfg)
	a.readOnly = true
	a.open = func(window.Options) (window.Window, device.Driver, error) {
		return w, w.Driver(), nil
	}
	if err := a.run(cmd.Context()); err != nil {
		return err
	}

	img := w.LastFrame()
	if img == nil {
		return errors.New("snapshot: no frame was presented")
	}
	if err := gg.FromImage(img).SavePNG(o.out); err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	overlay.Logger().Info("snapshot saved", "path", o.out, "frames", w.Presented())
	fmt.Fprintf(cmd.OutOrStdout(), "saved %s (%dx%d)\n", o.out, img.Bounds().Dx(), img.Bounds().Dy())
	return nil
}
