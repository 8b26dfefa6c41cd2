package shade

import "github.com/go-gl/mathgl/mgl32"

// Uniform map keys understood by UniformsFromMap. They are also the uniform
// variable names declared in KageSource.
const (
	KeyPointerOffset = "PointerOffset"
	KeyElapsedTime   = "ElapsedTime"
	KeyHover         = "Hover"
	KeySurfaceSize   = "SurfaceSize"
)

// Uniforms is the per-frame snapshot fed to Color.
type Uniforms struct {
	PointerOffset mgl32.Vec2 // each component in [-1, 1]
	ElapsedTime   float32    // seconds
	Hover         float32    // 0 or 1
}

// Map encodes u for a host uniform push. The surface size is carried along
// so a host can draw with the geometry the values were derived from.
func (u Uniforms) Map(size mgl32.Vec2) map[string]any {
	return map[string]any{
		KeyPointerOffset: [2]float32{u.PointerOffset.X(), u.PointerOffset.Y()},
		KeyElapsedTime:   u.ElapsedTime,
		KeyHover:         u.Hover,
		KeySurfaceSize:   [2]float32{size.X(), size.Y()},
	}
}

// UniformsFromMap decodes a map built by Map. Missing or mistyped entries
// decode to zero.
func UniformsFromMap(m map[string]any) Uniforms {
	var u Uniforms
	if v, ok := m[KeyPointerOffset]; ok {
		u.PointerOffset = vec2Of(v)
	}
	if v, ok := m[KeyElapsedTime]; ok {
		u.ElapsedTime = floatOf(v)
	}
	if v, ok := m[KeyHover]; ok {
		u.Hover = floatOf(v)
	}
	return u
}

// SurfaceSizeFromMap returns the surface size entry of a uniform map.
func SurfaceSizeFromMap(m map[string]any) mgl32.Vec2 {
	return vec2Of(m[KeySurfaceSize])
}

func floatOf(v any) float32 {
	switch f := v.(type) {
	case float32:
		return f
	case float64:
		return float32(f)
	}
	return 0
}

func vec2Of(v any) mgl32.Vec2 {
	switch p := v.(type) {
	case [2]float32:
		return mgl32.Vec2{p[0], p[1]}
	case mgl32.Vec2:
		return p
	case []float32:
		if len(p) == 2 {
			return mgl32.Vec2{p[0], p[1]}
		}
	}
	return mgl32.Vec2{}
}
