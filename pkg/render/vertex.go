package render

import (
	"github.com/taigrr/planets/pkg/math3d"
)

// Vertex is one mesh vertex. Position, Normal and TexCoords come from the
// mesh; ScreenPosition and ScreenNormal are filled in by TransformVertex.
type Vertex struct {
	Position  math3d.Vec3 // Object space
	Normal    math3d.Vec3 // Object space
	TexCoords math3d.Vec2 // Carried through, not used for shading

	ScreenPosition math3d.Vec3 // x, y in pixels; z is post-divide depth
	ScreenNormal   math3d.Vec3 // Normalized
}

// Fragment is one covered pixel produced by the rasterizer.
type Fragment struct {
	Position       math3d.Vec3 // Pixel x, y and depth
	Normal         math3d.Vec3 // Interpolated, normalized
	Depth          float64
	VertexPosition math3d.Vec3 // Interpolated object-space position
	Intensity      float64     // Always zero; shaders light themselves
}

// Uniforms holds everything constant across one draw call.
type Uniforms struct {
	Model      math3d.Mat4
	View       math3d.Mat4
	Projection math3d.Mat4
	Viewport   math3d.Mat4
	Time       uint32 // Frame counter

	// NoiseOffset is regenerated for every draw call. No shader reads it.
	NoiseOffset math3d.Vec3
}

// MVP returns projection * view * model.
func (u Uniforms) MVP() math3d.Mat4 {
	return u.Projection.Mul(u.View).Mul(u.Model)
}

// Shader colors a fragment.
type Shader interface {
	Shade(f Fragment, u Uniforms) Color
}

// ShaderFunc adapts a plain function to the Shader interface.
type ShaderFunc func(f Fragment, u Uniforms) Color

// Shade implements Shader.
func (fn ShaderFunc) Shade(f Fragment, u Uniforms) Color {
	return fn(f, u)
}

// TransformVertex runs the vertex stage: it projects v into screen space and
// returns a copy with ScreenPosition and ScreenNormal set. v is not modified.
func TransformVertex(v Vertex, u Uniforms) Vertex {
	return transformVertex(v, u.MVP(), u.Viewport)
}

func transformVertex(v Vertex, mvp, viewport math3d.Mat4) Vertex {
	clip := mvp.MulVec4(math3d.V4FromV3(v.Position, 1))
	screen := viewport.MulVec4(clip.PerspectiveDivide())

	// The normal matrix is the identity: normals stay in object space.
	v.ScreenPosition = screen.Vec3()
	v.ScreenNormal = v.Normal.Normalize()
	return v
}

// MeshRenderer is the indexed mesh interface the mesh providers implement.
type MeshRenderer interface {
	VertexCount() int
	TriangleCount() int
	GetVertex(i int) (pos, normal math3d.Vec3, uv math3d.Vec2)
	GetFace(i int) [3]int
}

// FlattenMesh expands an indexed mesh into the flat triangle list the
// pipeline consumes: three vertices per face, in face order.
func FlattenMesh(mesh MeshRenderer) []Vertex {
	out := make([]Vertex, 0, mesh.TriangleCount()*3)
	for i := range mesh.TriangleCount() {
		for _, idx := range mesh.GetFace(i) {
			pos, normal, uv := mesh.GetVertex(idx)
			out = append(out, Vertex{Position: pos, Normal: normal, TexCoords: uv})
		}
	}
	return out
}
