package render

import (
	"context"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"ovalplayer/internal/shade"
)

func TestShadeMasksCorners(t *testing.T) {
	fb := NewFrameBuffer(90, 160)
	if err := Shade(context.Background(), fb, shade.Uniforms{ElapsedTime: 1}, 3); err != nil {
		t.Fatal(err)
	}
	for _, p := range [][2]int{{0, 0}, {89, 0}, {0, 159}, {89, 159}} {
		if got := fb.At(p[0], p[1]); got.A != 0 {
			t.Fatalf("expected transparent corner %v, got %+v", p, got)
		}
	}
	if got := fb.At(45, 80); got.A != 255 {
		t.Fatalf("expected opaque center, got %+v", got)
	}
}

func TestShadePremultiplied(t *testing.T) {
	fb := NewFrameBuffer(64, 64)
	if err := Shade(context.Background(), fb, shade.Uniforms{Hover: 1}, 0); err != nil {
		t.Fatal(err)
	}
	for y := 0; y < fb.H; y++ {
		for x := 0; x < fb.W; x++ {
			c := fb.At(x, y)
			if c.R > c.A || c.G > c.A || c.B > c.A {
				t.Fatalf("expected premultiplied pixel at (%d,%d), got %+v", x, y, c)
			}
		}
	}
}

func TestShadeWorkerCountDoesNotChangeOutput(t *testing.T) {
	un := shade.Uniforms{ElapsedTime: 3.5, Hover: 1}
	a := NewFrameBuffer(120, 75)
	b := NewFrameBuffer(120, 75)
	if err := Shade(context.Background(), a, un, 1); err != nil {
		t.Fatal(err)
	}
	if err := Shade(context.Background(), b, un, 8); err != nil {
		t.Fatal(err)
	}
	for i := range a.Pixels {
		if a.Pixels[i] != b.Pixels[i] {
			t.Fatalf("pixel byte %d differs between worker counts", i)
		}
	}
}

func TestShadeCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := Shade(ctx, NewFrameBuffer(40, 200), shade.Uniforms{}, 2)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestResize(t *testing.T) {
	fb := NewFrameBuffer(0, -3)
	if fb.W != 1 || fb.H != 1 {
		t.Fatalf("expected 1x1 minimum, got %dx%d", fb.W, fb.H)
	}
	if !fb.Resize(10, 20) {
		t.Fatalf("expected resize to report a change")
	}
	if fb.Resize(10, 20) {
		t.Fatalf("expected same-size resize to be a no-op")
	}
	if len(fb.Pixels) != 10*20*4 {
		t.Fatalf("unexpected pixel buffer length %d", len(fb.Pixels))
	}
}

func TestWritePNG(t *testing.T) {
	fb := NewFrameBuffer(30, 50)
	if err := Shade(context.Background(), fb, shade.Uniforms{}, 0); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "oval.png")
	if err := WritePNG(path, fb); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 30 || b.Dy() != 50 {
		t.Fatalf("unexpected snapshot size %v", b)
	}
	if _, _, _, a := img.At(0, 0).RGBA(); a != 0 {
		t.Fatalf("expected transparent corner in snapshot")
	}
}
