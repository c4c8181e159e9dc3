package shaders

import (
	"math"

	"github.com/taigrr/planets/pkg/math3d"
	"github.com/taigrr/planets/pkg/render"
)

var (
	ringedSun = math3d.V3(1, 0.8, 1).Normalize()

	ringedBand = render.RGB(230, 210, 170)
	ringedPale = render.RGB(250, 230, 190)
)

// RingedShader is a Saturn-like planet: pale bands with fine turbulence and
// the shadow of its rings across the equator.
type RingedShader struct{}

// Shade implements render.Shader.
func (RingedShader) Shade(f render.Fragment, u render.Uniforms) render.Color {
	pos := f.VertexPosition
	t := seconds(u, 0.005)

	const bandFreq = 12.0
	bands := (math.Sin(pos.Y*bandFreq+math.Sin(pos.X*3)*0.15) + 1) * 0.5
	banded := render.LerpColor(ringedBand, ringedPale, bands)

	turb := math.Abs(math.Sin(pos.X*25+t) * math.Cos(pos.Z*25))
	turbFactor := 0.9 + turb*0.1

	shadow := 1.0
	if math.Abs(pos.Y) < 0.15 {
		pattern := math.Abs(math.Sin(pos.X*50) * math.Cos(pos.Z*50))
		shadow = 0.5 + pattern*0.2
	}

	c := render.MultiplyColor(banded, turbFactor*shadow)
	return render.MultiplyColor(c, diffuse(f.Normal, ringedSun, 0.25))
}
