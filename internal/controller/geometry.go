package controller

import "github.com/go-gl/mathgl/mgl32"

// Size is the render surface size in device pixels.
type Size struct {
	W float64
	H float64
}

// Valid reports whether both dimensions are positive.
func (s Size) Valid() bool {
	return s.W > 0 && s.H > 0
}

// Point is a device-space position relative to the surface origin.
type Point struct {
	X float64
	Y float64
}

// ellipseSpace recenters p on the surface midpoint and divides by the half
// extents, so the inscribed ellipse becomes the unit circle.
func ellipseSpace(p Point, g Size) (dx, dy float64, ok bool) {
	if !g.Valid() {
		return 0, 0, false
	}
	hw := g.W / 2
	hh := g.H / 2
	return (p.X - hw) / hw, (p.Y - hh) / hh, true
}

// HitTest reports whether p lies inside or on the ellipse inscribed in a
// surface of size g. A surface with a non-positive dimension contains
// nothing.
func HitTest(p Point, g Size) bool {
	dx, dy, ok := ellipseSpace(p, g)
	if !ok {
		return false
	}
	return dx*dx+dy*dy <= 1
}

// PointerOffset maps p into [-1, 1] on both axes relative to the ellipse
// center. A position outside the surface bounds is no longer tracked and
// maps to the zero vector, as does any position on an invalid surface.
func PointerOffset(p Point, g Size) mgl32.Vec2 {
	if p.X < 0 || p.Y < 0 || p.X > g.W || p.Y > g.H {
		return mgl32.Vec2{}
	}
	dx, dy, ok := ellipseSpace(p, g)
	if !ok {
		return mgl32.Vec2{}
	}
	return mgl32.Vec2{float32(dx), float32(dy)}
}
