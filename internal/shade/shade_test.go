package shade

import (
	"bufio"
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

var testSize = mgl32.Vec2{450, 800}

func TestCenterIsOpaque(t *testing.T) {
	c := Color(0.5, 0.5, testSize, Uniforms{})
	if c[3] != 1 {
		t.Fatalf("expected center alpha 1, got %v", c[3])
	}
}

func TestMaskAlphaBands(t *testing.T) {
	for _, d := range []float32{0, 0.3, 0.9, 1 - EdgeWidth} {
		if got := MaskAlpha(d); got != 1 {
			t.Fatalf("expected alpha 1 at dist %v, got %v", d, got)
		}
	}
	for _, d := range []float32{1 + EdgeWidth, 1.2, 3, float32(math.Inf(1))} {
		if got := MaskAlpha(d); got != 0 {
			t.Fatalf("expected alpha 0 at dist %v, got %v", d, got)
		}
	}
	mid := MaskAlpha(1)
	if mid <= 0 || mid >= 1 {
		t.Fatalf("expected partial alpha on the boundary, got %v", mid)
	}
}

func TestOutsideIsTransparent(t *testing.T) {
	un := Uniforms{PointerOffset: mgl32.Vec2{0.4, -0.7}, ElapsedTime: 12, Hover: 1}
	corners := [][2]float32{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {0.9, 0.9}, {0.1, 0.15}}
	for _, uv := range corners {
		if Dist(uv[0], uv[1], testSize) < 1+EdgeWidth {
			t.Fatalf("test point %v is not outside the edge band", uv)
		}
		if got := Color(uv[0], uv[1], testSize, un); got != (mgl32.Vec4{}) {
			t.Fatalf("expected transparent pixel at %v, got %v", uv, got)
		}
	}
}

func TestZeroSizeIsTransparent(t *testing.T) {
	for _, size := range []mgl32.Vec2{{0, 800}, {450, 0}, {-1, -1}} {
		if got := Color(0.5, 0.5, size, Uniforms{}); got != (mgl32.Vec4{}) {
			t.Fatalf("expected transparent pixel for size %v, got %v", size, got)
		}
		if d := Dist(0.5, 0.5, size); !math.IsInf(float64(d), 1) {
			t.Fatalf("expected infinite dist for size %v, got %v", size, d)
		}
	}
}

func TestChannelsClamped(t *testing.T) {
	uniforms := []Uniforms{
		{},
		{PointerOffset: mgl32.Vec2{1, 1}, ElapsedTime: 3.3, Hover: 1},
		{PointerOffset: mgl32.Vec2{-1, 1}, ElapsedTime: 1e6, Hover: 1},
		{PointerOffset: mgl32.Vec2{40, -90}, ElapsedTime: -5, Hover: 7},
		{PointerOffset: mgl32.Vec2{0.2, 0.1}, ElapsedTime: math.MaxFloat32, Hover: 0.5},
	}
	const steps = 48
	for _, un := range uniforms {
		for i := 0; i <= steps; i++ {
			for j := 0; j <= steps; j++ {
				u := float32(i) / steps
				v := float32(j) / steps
				c := Color(u, v, testSize, un)
				for k := 0; k < 4; k++ {
					if c[k] < 0 || c[k] > 1 || c[k] != c[k] {
						t.Fatalf("channel %d out of range at (%v,%v) with %+v: %v", k, u, v, un, c)
					}
				}
			}
		}
	}
}

func TestHoverRingOnlyWhenHovering(t *testing.T) {
	// v such that dist == 0.6 on the vertical axis
	v := float32(0.5 + 0.6*0.5)
	off := Color(0.5, v, testSize, Uniforms{})
	on := Color(0.5, v, testSize, Uniforms{Hover: 1})
	if on == off {
		t.Fatalf("expected hover ring to change the pixel at dist 0.6")
	}
	if on[2] <= off[2] {
		t.Fatalf("expected ring to add blue, got off=%v on=%v", off, on)
	}

	center := Color(0.5, 0.5, testSize, Uniforms{})
	centerHover := Color(0.5, 0.5, testSize, Uniforms{Hover: 1})
	if center != centerHover {
		t.Fatalf("expected ring to leave the center untouched")
	}
}

func TestBreathingAnimatesAtRest(t *testing.T) {
	// peak and trough of the breathing sine; only the upper highlight tint
	// also moves with time at the center, and only slightly
	peak := Color(0.5, 0.5, testSize, Uniforms{ElapsedTime: float32(math.Pi / 2 / breathSpeed)})
	trough := Color(0.5, 0.5, testSize, Uniforms{ElapsedTime: float32(3 * math.Pi / 2 / breathSpeed)})
	for i := 0; i < 3; i++ {
		delta := peak[i] - trough[i]
		if math.Abs(float64(delta-2*breathAmount)) > 0.005 {
			t.Fatalf("expected channel %d to swing by %v at rest, got %v", i, 2*breathAmount, delta)
		}
	}
}

func TestColorDeterministic(t *testing.T) {
	un := Uniforms{PointerOffset: mgl32.Vec2{0.3, -0.2}, ElapsedTime: 4.25, Hover: 1}
	a := Color(0.31, 0.62, testSize, un)
	b := Color(0.31, 0.62, testSize, un)
	if a != b {
		t.Fatalf("expected identical output for identical input: %v vs %v", a, b)
	}
}

func TestUniformsMapRoundTrip(t *testing.T) {
	un := Uniforms{PointerOffset: mgl32.Vec2{-0.5, 0.25}, ElapsedTime: 2.5, Hover: 1}
	m := un.Map(testSize)
	if got := UniformsFromMap(m); got != un {
		t.Fatalf("unexpected decoded uniforms: %+v", got)
	}
	if got := SurfaceSizeFromMap(m); got != testSize {
		t.Fatalf("unexpected surface size: %v", got)
	}
}

func TestUniformsFromMapToleratesBadValues(t *testing.T) {
	got := UniformsFromMap(map[string]any{
		KeyPointerOffset: "nope",
		KeyElapsedTime:   float64(1.5),
		KeyHover:         1,
	})
	want := Uniforms{ElapsedTime: 1.5}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
	if got := UniformsFromMap(nil); got != (Uniforms{}) {
		t.Fatalf("expected zero uniforms from nil map, got %+v", got)
	}
}

func TestKageUniformsMatchMapKeys(t *testing.T) {
	declared := map[string]string{}
	sc := bufio.NewScanner(bytes.NewReader(KageSource))
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 3 && fields[0] == "var" {
			declared[fields[1]] = fields[2]
		}
	}
	if err := sc.Err(); err != nil {
		t.Fatal(err)
	}

	m := Uniforms{}.Map(testSize)
	if len(declared) != len(m) {
		t.Fatalf("expected %d shader uniforms, found %v", len(m), declared)
	}
	for key, v := range m {
		typ, ok := declared[key]
		if !ok {
			t.Fatalf("shader declares no uniform %q", key)
		}
		want := "float"
		if _, isVec := v.([2]float32); isVec {
			want = "vec2"
		}
		if typ != want {
			t.Fatalf("uniform %q: expected shader type %s, got %s", key, want, typ)
		}
	}
}
