// Package shade implements the procedural coloring of the oval surface.
//
// Color is a pure function of the pixel position, the surface size and a
// Uniforms snapshot. It keeps no state and allocates nothing, so a renderer
// may call it from any number of goroutines.
package shade

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	// EdgeWidth is the half width of the anti-aliased band around dist = 1.
	EdgeWidth = 0.01

	alphaCutoff = 0.01

	breathSpeed  = 0.8 // rad/s, period ~7.85 s
	breathAmount = 0.06

	iridStrength  = 0.25
	iridMaskStart = 0.2
	iridMaskEnd   = 0.9

	rimStart    = 0.82
	rimEnd      = 0.98
	rimStrength = 0.6

	ringInner = 0.58
	ringMid   = 0.60
	ringOuter = 0.62
)

var (
	baseTop   = mgl32.Vec3{0.102, 0.102, 0.180} // #1a1a2e
	baseBot   = mgl32.Vec3{0.086, 0.129, 0.243} // #16213e
	white     = mgl32.Vec3{1, 1, 1}
	ringColor = mgl32.Vec3{0.55, 0.75, 1.0}
)

// phase offsets of the three thin-film waves, 120 degrees apart
const (
	phaseG = 2 * math.Pi / 3
	phaseB = 4 * math.Pi / 3
)

// Dist returns the normalized radial distance of (u, v) from the center of
// the inscribed ellipse: 0 at the center, 1 on the boundary. A surface with a
// non-positive dimension reports +Inf.
func Dist(u, v float32, size mgl32.Vec2) float32 {
	p, ok := ellipsePoint(u, v, size)
	if !ok {
		return float32(math.Inf(1))
	}
	return p.Len()
}

// MaskAlpha is the anti-aliased coverage of the ellipse at distance dist.
func MaskAlpha(dist float32) float32 {
	return 1 - smoothstep(1-EdgeWidth, 1+EdgeWidth, dist)
}

// Color returns the straight-alpha RGBA color of the pixel at (u, v), both in
// [0, 1], on a surface of the given size. Every channel is within [0, 1].
func Color(u, v float32, size mgl32.Vec2, un Uniforms) mgl32.Vec4 {
	p, ok := ellipsePoint(u, v, size)
	if !ok {
		return mgl32.Vec4{}
	}
	dist := p.Len()

	alpha := MaskAlpha(dist)
	if alpha < alphaCutoff {
		return mgl32.Vec4{}
	}

	t := un.ElapsedTime
	mouse := clampVec2(un.PointerOffset)
	uv := mgl32.Vec2{u, v}

	base := mix3(baseTop, baseBot, v)

	breath := breathAmount * sin32(t*breathSpeed)
	base = base.Add(mgl32.Vec3{breath, breath, breath})

	angle := dist*4.0 + p.Dot(mouse)*1.5 + t*0.15
	film := thinFilm(angle, 1)
	iridMask := smoothstep(iridMaskStart, iridMaskEnd, dist)
	base = mix3(base, film, iridMask*iridStrength)

	// upper highlight follows the pointer, tinted by a weaker film pass
	hlCenter := mgl32.Vec2{0.5 + mouse.X()*0.15, 0.25 + mouse.Y()*0.08}
	hlD := uv.Sub(hlCenter)
	hlD = mgl32.Vec2{hlD.X() / 0.4, hlD.Y() / 0.2}
	hl := exp32(-hlD.Dot(hlD) * 2.0)
	tint := mix3(white, thinFilm(angle*1.7+t*0.3, 0.5), 0.3)
	hlColor := tint.Mul(hl * 0.40)

	// lower reflection moves against the pointer
	btCenter := mgl32.Vec2{0.5 - mouse.X()*0.08, 0.82}
	btD := uv.Sub(btCenter)
	btD = mgl32.Vec2{btD.X() / 0.3, btD.Y() / 0.1}
	bt := exp32(-btD.Dot(btD) * 3.0)
	btColor := white.Mul(bt * 0.10)

	depth := 1 - pow32(dist, 3)*0.4

	rim := smoothstep(rimStart, rimEnd, dist) * (1 - smoothstep(1-EdgeWidth, 1, dist))
	rimHue := thinFilm(angle*1.3+t*0.4, 1)
	rimColor := rimHue.Mul(rim * rimStrength)

	var ringCol mgl32.Vec3
	if un.Hover > 0 {
		ring := smoothstep(ringInner, ringMid, dist) * (1 - smoothstep(ringMid, ringOuter, dist))
		ringCol = ringColor.Mul(ring * clamp01(un.Hover) * 0.5)
	}

	c := base.Mul(depth).Add(hlColor).Add(btColor).Add(rimColor).Add(ringCol)
	return mgl32.Vec4{clamp01(c[0]), clamp01(c[1]), clamp01(c[2]), alpha}
}

// thinFilm returns three sines 120 degrees apart, centered on 0.5 with the
// given amplitude in [0, 1].
func thinFilm(angle, amp float32) mgl32.Vec3 {
	h := 0.5 * amp
	return mgl32.Vec3{
		0.5 + h*sin32(angle),
		0.5 + h*sin32(angle+phaseG),
		0.5 + h*sin32(angle+phaseB),
	}
}

// ellipsePoint maps (u, v) to ellipse space where the boundary is the unit
// circle.
func ellipsePoint(u, v float32, size mgl32.Vec2) (mgl32.Vec2, bool) {
	if !(size.X() > 0) || !(size.Y() > 0) {
		return mgl32.Vec2{}, false
	}
	center := size.Mul(0.5)
	px := (u*size.X() - center.X()) / center.X()
	py := (v*size.Y() - center.Y()) / center.Y()
	return mgl32.Vec2{px, py}, true
}

func smoothstep(e0, e1, x float32) float32 {
	t := clamp01((x - e0) / (e1 - e0))
	return t * t * (3 - 2*t)
}

func mix3(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	return a.Mul(1 - t).Add(b.Mul(t))
}

func clamp01(x float32) float32 {
	if !(x > 0) {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

func clampVec2(v mgl32.Vec2) mgl32.Vec2 {
	return mgl32.Vec2{mgl32.Clamp(v.X(), -1, 1), mgl32.Clamp(v.Y(), -1, 1)}
}

func sin32(x float32) float32    { return float32(math.Sin(float64(x))) }
func exp32(x float32) float32    { return float32(math.Exp(float64(x))) }
func pow32(x, y float32) float32 { return float32(math.Pow(float64(x), float64(y))) }
