package shade

import _ "embed"

// KageSource is the ebiten shader rendition of Color. Its uniform variables
// are named after the Uniforms.Map keys, so a pushed map can be handed to
// DrawRectShaderOptions.Uniforms as is. The shader returns premultiplied
// alpha.
//
//go:embed oval.kage
var KageSource []byte
