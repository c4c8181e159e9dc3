package shaders

import (
	"math"

	"github.com/taigrr/planets/pkg/math3d"
	"github.com/taigrr/planets/pkg/render"
)

var (
	gasLight     = math3d.V3(1, 0.5, 1).Normalize()
	gasStormSpot = math3d.V3(0.3, -0.2, 0)

	gasBeige = render.RGB(220, 180, 140)
	gasBrown = render.RGB(180, 120, 80)
	gasWhite = render.RGB(240, 220, 200)
	gasStorm = render.RGB(200, 80, 60)
)

// GasGiantShader is a Jupiter-like planet: wavy latitude bands, turbulence
// and a great red storm.
type GasGiantShader struct{}

// Shade implements render.Shader.
func (GasGiantShader) Shade(f render.Fragment, u render.Uniforms) render.Color {
	pos := f.VertexPosition
	t := seconds(u, 0.008)

	const bandFreq = 15.0
	bandY := pos.Y + math.Sin(pos.X*2)*0.1
	bands := (math.Sin(bandY*bandFreq) + 1) * 0.5

	const turbFreq = 20.0
	turbulence := math.Abs(math.Sin(pos.X*turbFreq+t) *
		math.Cos(pos.Y*turbFreq*0.5) *
		math.Sin(pos.Z*turbFreq-t*0.8))

	storm := math.Max(0, 1-math.Min(pos.Distance(gasStormSpot)/0.3, 1))
	swirl := math.Abs(math.Sin(pos.X*30+t*2) * math.Cos(pos.Y*30))
	stormIntensity := storm * swirl

	c := bandRamp(bands + turbulence*0.2)
	if stormIntensity > 0.3 {
		c = render.LerpColor(c, gasStorm, stormIntensity)
	}

	return render.MultiplyColor(c, diffuse(f.Normal, gasLight, 0.3))
}

// bandRamp cycles beige -> brown -> near-white -> beige over thirds of v.
func bandRamp(v float64) render.Color {
	switch {
	case v < 0.33:
		return render.LerpColor(gasBeige, gasBrown, v*3)
	case v < 0.66:
		return render.LerpColor(gasBrown, gasWhite, (v-0.33)*3)
	default:
		return render.LerpColor(gasWhite, gasBeige, (v-0.66)*3)
	}
}
