package render

import (
	"image"
	"image/color"
)

type FrameBuffer struct {
	W      int
	H      int
	Pixels []uint8 // premultiplied RGBA
}

func NewFrameBuffer(w, h int) *FrameBuffer {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &FrameBuffer{W: w, H: h, Pixels: make([]uint8, w*h*4)}
}

// Resize reallocates the pixel buffer when the size changed and reports
// whether it did.
func (fb *FrameBuffer) Resize(w, h int) bool {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	if fb.W == w && fb.H == h {
		return false
	}
	fb.W, fb.H = w, h
	fb.Pixels = make([]uint8, w*h*4)
	return true
}

// SetRGBA stores a premultiplied color at (x, y). Out-of-range coordinates
// are ignored.
func (fb *FrameBuffer) SetRGBA(x, y int, c color.RGBA) {
	if x < 0 || y < 0 || x >= fb.W || y >= fb.H {
		return
	}
	idx := (y*fb.W + x) * 4
	fb.Pixels[idx+0] = c.R
	fb.Pixels[idx+1] = c.G
	fb.Pixels[idx+2] = c.B
	fb.Pixels[idx+3] = c.A
}

// At returns the premultiplied color at (x, y).
func (fb *FrameBuffer) At(x, y int) color.RGBA {
	if x < 0 || y < 0 || x >= fb.W || y >= fb.H {
		return color.RGBA{}
	}
	idx := (y*fb.W + x) * 4
	return color.RGBA{R: fb.Pixels[idx+0], G: fb.Pixels[idx+1], B: fb.Pixels[idx+2], A: fb.Pixels[idx+3]}
}

// Image wraps the pixels without copying.
func (fb *FrameBuffer) Image() *image.RGBA {
	return &image.RGBA{Pix: fb.Pixels, Stride: fb.W * 4, Rect: image.Rect(0, 0, fb.W, fb.H)}
}
