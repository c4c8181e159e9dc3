package shaders

import (
	"math"

	"github.com/taigrr/planets/pkg/math3d"
	"github.com/taigrr/planets/pkg/render"
)

var (
	moonLight = math3d.V3(1, 1, 1).Normalize()

	moonGray   = render.RGB(150, 150, 150)
	moonCrater = render.RGB(100, 100, 100)
	moonBright = render.RGB(180, 180, 180)
)

// MoonShader is a cratered gray satellite. It does not animate.
type MoonShader struct{}

// Shade implements render.Shader.
func (MoonShader) Shade(f render.Fragment, _ render.Uniforms) render.Color {
	pos := f.VertexPosition

	const craterFreq = 15.0
	crater1 := math.Abs(math.Sin(pos.X*craterFreq) * math.Cos(pos.Y*craterFreq))
	crater2 := math.Abs(math.Sin(pos.Y*craterFreq*1.3) * math.Cos(pos.Z*craterFreq*1.3))

	c := moonCrater
	if crater1 <= 0.8 && crater2 <= 0.8 {
		variation := math.Abs(math.Sin(pos.X*8) * math.Cos(pos.Z*8))
		c = render.LerpColor(moonGray, moonBright, variation)
	}

	return render.MultiplyColor(c, diffuse(f.Normal, moonLight, 0.15))
}
