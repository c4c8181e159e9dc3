package math3d

import (
	"math"
	"testing"
)

// The benchmarks below follow one planet vertex through the per-frame
// matrix work: the body's model matrix, the combined MVP, then clip space
// to NDC.

func BenchmarkModelCompose(b *testing.B) {
	for b.Loop() {
		_ = Translate(V3(2, 0, 0)).
			Mul(ScaleUniform(0.3)).
			Mul(RotateZ(0)).
			Mul(RotateY(1.25)).
			Mul(RotateX(0))
	}
}

func BenchmarkMVP(b *testing.B) {
	model := Translate(V3(2, 0, 0)).Mul(ScaleUniform(0.3)).Mul(RotateY(1.25))
	view := LookAt(V3(0, 0, 5), Zero3(), Up())
	proj := Perspective(math.Pi/4, 16.0/9.0, 0.1, 1000)

	for b.Loop() {
		_ = proj.Mul(view).Mul(model)
	}
}

func BenchmarkClipToNDC(b *testing.B) {
	mvp := Perspective(math.Pi/4, 16.0/9.0, 0.1, 1000).
		Mul(LookAt(V3(0, 0, 5), Zero3(), Up())).
		Mul(RotateY(1.25))
	p := V3(0.5, -0.25, 0.8)

	for b.Loop() {
		_ = mvp.MulVec4(V4FromV3(p, 1)).PerspectiveDivide()
	}
}

func BenchmarkPerspectiveDivideEyePlane(b *testing.B) {
	v := V4(1, 2, 3, 0)

	for b.Loop() {
		_ = v.PerspectiveDivide()
	}
}

func BenchmarkBoundingSphereScale(b *testing.B) {
	m := Translate(V3(2, 0, 0)).Mul(Scale(V3(0.3, 0.6, 0.3))).Mul(RotateX(0.4))

	for b.Loop() {
		_ = m.MaxScale()
		_ = m.Translation()
	}
}
