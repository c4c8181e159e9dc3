package shaders

import (
	"math"

	"github.com/taigrr/planets/pkg/render"
)

var (
	starOrange = render.RGB(255, 100, 0)
	starYellow = render.RGB(255, 255, 100)
	starCorona = render.RGB(255, 200, 50)
)

// StarShader is a self-lit star: moving plasma, a pulsing corona, dark
// sunspots and a radial glow. It ignores the normal.
type StarShader struct{}

// Shade implements render.Shader.
func (StarShader) Shade(f render.Fragment, u render.Uniforms) render.Color {
	pos := f.VertexPosition
	t := seconds(u, 0.01)

	const plasmaFreq = 3.0
	plasma1 := math.Abs(math.Sin(pos.X*plasmaFreq+t) * math.Cos(pos.Y*plasmaFreq+t*1.3))
	plasma2 := math.Abs(math.Sin(pos.Y*plasmaFreq-t*0.8) * math.Cos(pos.Z*plasmaFreq+t))
	plasma := (plasma1 + plasma2) * 0.5

	dist := pos.Len()
	corona := math.Max(0, 1-dist) * (math.Sin(t*2)*0.5 + 0.5) * 0.3

	const spotFreq = 8.0
	spot := math.Abs(math.Sin(pos.X*spotFreq) * math.Cos(pos.Y*spotFreq) * math.Sin(pos.Z*spotFreq+t))
	spots := 1.0
	if spot > 0.85 {
		spots = 0.6
	}

	radial := 1 - math.Min(dist, 1)
	glow := radial * radial * 0.5

	c := render.LerpColor(starOrange, starYellow, plasma)
	c = render.LerpColor(c, starCorona, corona)
	c = render.MultiplyColor(c, spots)
	return render.MultiplyColor(c, 1+glow)
}
