package internal

// A grayscale intensity in [0, 1].
type Shade float64

// The shade as a color with the intensity in every channel and full alpha.
func (s Shade) RGBA() (r, g, b, a float64) {
	v := float64(s)
	return v, v, v, 1
}

// Assigns a shade to each triangle as it is emitted. emitted is the 1-based
// position of the triangle in the output, and vertexCount is the length of the
// polygon loop being triangulated.
type Shader interface {
	Shade(emitted, vertexCount int) Shade
}

type ShaderFunc func(emitted, vertexCount int) Shade

func (f ShaderFunc) Shade(emitted, vertexCount int) Shade {
	return f(emitted, vertexCount)
}

// Triangles get lighter the later they are cut. A loop of n vertices has n-2
// triangles, so the last one is (n-2)/n and never reaches white.
var Progressive Shader = ShaderFunc(func(emitted, vertexCount int) Shade {
	return Shade(float64(emitted) / float64(vertexCount))
})
