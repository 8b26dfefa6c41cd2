package render

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"
)

// WritePNG encodes fb, un-premultiplied, to a PNG file at path.
func WritePNG(path string, fb *FrameBuffer) error {
	out := image.NewNRGBA(image.Rect(0, 0, fb.W, fb.H))
	draw.Draw(out, out.Bounds(), fb.Image(), image.Point{}, draw.Src)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}
	if err := png.Encode(f, out); err != nil {
		f.Close()
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close snapshot: %w", err)
	}
	return nil
}
