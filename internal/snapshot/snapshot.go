// Package snapshot renders single frames without a window.
package snapshot

import (
	"context"
	"fmt"

	"ovalplayer/internal/config"
	"ovalplayer/internal/controller"
	"ovalplayer/internal/platform/headless"
	"ovalplayer/internal/render"
	"ovalplayer/internal/shade"
)

// Render drives a controller on a headless host for the configured
// number of ticks and writes the resulting frame to opts.SnapshotPath.
func Render(ctx context.Context, opts config.Options) error {
	host := headless.New()
	ctrl := controller.New(host)
	ctrl.GeometryChanged(controller.Size{W: float64(opts.Width), H: float64(opts.Height)})
	if opts.MediaPath != "" {
		if err := ctrl.OpenMedia(opts.MediaPath); err != nil {
			return fmt.Errorf("snapshot media: %w", err)
		}
	}
	for i := 0; i < opts.SnapshotTicks; i++ {
		ctrl.Tick()
	}

	un := ctrl.Uniforms()
	if m := host.Uniforms(); m != nil {
		un = shade.UniformsFromMap(m)
	}
	fb := render.NewFrameBuffer(opts.Width, opts.Height)
	if err := render.Shade(ctx, fb, un, opts.Workers); err != nil {
		return err
	}
	if err := render.WritePNG(opts.SnapshotPath, fb); err != nil {
		return err
	}
	controller.Logger().Info("snapshot written", "path", opts.SnapshotPath, "ticks", opts.SnapshotTicks)
	return nil
}
