package math3d

import "math"

// Vec4 represents a 4D vector (or homogeneous 3D point).
type Vec4 struct {
	X, Y, Z, W float64
}

// V4 creates a new Vec4.
func V4(x, y, z, w float64) Vec4 {
	return Vec4{x, y, z, w}
}

// V4FromV3 creates a Vec4 from Vec3 with specified W.
func V4FromV3(v Vec3, w float64) Vec4 {
	return Vec4{v.X, v.Y, v.Z, w}
}

// Vec3 returns the Vec3 portion (ignoring W).
func (v Vec4) Vec3() Vec3 {
	return Vec3{v.X, v.Y, v.Z}
}

// MinW is the smallest magnitude PerspectiveDivide will divide by.
const MinW = 1e-6

// PerspectiveDivide divides X, Y and Z by W and resets W to 1.
//
// W is pushed away from zero (keeping its sign) so that points on the eye
// plane produce large but finite coordinates. Points behind the eye still
// divide by their negative W.
func (v Vec4) PerspectiveDivide() Vec4 {
	w := v.W
	if math.Abs(w) < MinW {
		w = math.Copysign(MinW, w)
	}
	return Vec4{v.X / w, v.Y / w, v.Z / w, 1}
}
