package render

import (
	"math"

	"github.com/taigrr/planets/pkg/math3d"
)

// Projection constants shared by every draw call.
const (
	FieldOfView = 45 * math.Pi / 180 // vertical, radians
	NearPlane   = 0.1
	FarPlane    = 1000.0
)

// ModelMatrix places a body in the world: rotate about X, then Y, then Z,
// then scale uniformly and translate.
// rotation holds one angle in radians per axis.
func ModelMatrix(translation math3d.Vec3, scale float64, rotation math3d.Vec3) math3d.Mat4 {
	rot := math3d.RotateZ(rotation.Z).
		Mul(math3d.RotateY(rotation.Y)).
		Mul(math3d.RotateX(rotation.X))
	return math3d.Translate(translation).
		Mul(math3d.ScaleUniform(scale)).
		Mul(rot)
}

// ViewMatrix is the look-at transform for a camera at eye facing center.
func ViewMatrix(eye, center, up math3d.Vec3) math3d.Mat4 {
	return math3d.LookAt(eye, center, up)
}

// ProjectionMatrix is the fixed 45° perspective for a viewport of the given
// size.
func ProjectionMatrix(width, height float64) math3d.Mat4 {
	return math3d.Perspective(FieldOfView, width/height, NearPlane, FarPlane)
}

// ViewportMatrix maps NDC [-1, 1] to pixels with a top-left origin.
// Y is flipped and Z passes through unchanged.
func ViewportMatrix(width, height float64) math3d.Mat4 {
	return math3d.Mat4{
		width / 2, 0, 0, 0,
		0, -height / 2, 0, 0,
		0, 0, 1, 0,
		width / 2, height / 2, 0, 1,
	}
}
