package render

import (
	"context"
	"fmt"
	"image/color"
	"runtime"

	"ovalplayer/internal/shade"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/sync/errgroup"
)

// rows per errgroup task
const bandRows = 32

// Shade fills fb by evaluating shade.Color at every pixel center. Bands of
// rows run concurrently on up to workers goroutines; workers <= 0 means
// GOMAXPROCS. Cancellation is checked before each band.
func Shade(ctx context.Context, fb *FrameBuffer, un shade.Uniforms, workers int) error {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	size := mgl32.Vec2{float32(fb.W), float32(fb.H)}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for y0 := 0; y0 < fb.H; y0 += bandRows {
		y1 := min(y0+bandRows, fb.H)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			shadeRows(fb, size, un, y0, y1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("shade frame: %w", err)
	}
	return nil
}

func shadeRows(fb *FrameBuffer, size mgl32.Vec2, un shade.Uniforms, y0, y1 int) {
	invW := 1 / float32(fb.W)
	invH := 1 / float32(fb.H)
	for y := y0; y < y1; y++ {
		v := (float32(y) + 0.5) * invH
		for x := 0; x < fb.W; x++ {
			u := (float32(x) + 0.5) * invW
			fb.SetRGBA(x, y, premultiply(shade.Color(u, v, size, un)))
		}
	}
}

func premultiply(c mgl32.Vec4) color.RGBA {
	a := c[3]
	return color.RGBA{
		R: to8(c[0] * a),
		G: to8(c[1] * a),
		B: to8(c[2] * a),
		A: to8(a),
	}
}

func to8(v float32) uint8 {
	if !(v > 0) {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
