package shaders

import (
	"math"

	"github.com/taigrr/planets/pkg/math3d"
	"github.com/taigrr/planets/pkg/render"
)

var (
	lavaLight = math3d.V3(1, 1, 1).Normalize()

	lavaMolten = render.RGB(255, 100, 0)
	lavaCrust  = render.RGB(40, 40, 40)
	lavaCrack  = render.RGB(255, 150, 0)
)

// LavaShader is a volcanic world (the moon's host): pulsing lava under a
// dark crust, bright cracks and a red heat shimmer.
type LavaShader struct{}

// Shade implements render.Shader.
func (LavaShader) Shade(f render.Fragment, u render.Uniforms) render.Color {
	pos := f.VertexPosition
	t := seconds(u, 0.01)

	pulse := math.Sin(t*3)*0.5 + 0.5

	const crustFreq = 8.0
	crust := math.Abs(math.Sin(pos.X*crustFreq) *
		math.Cos(pos.Y*crustFreq) *
		math.Sin(pos.Z*crustFreq))

	const crackFreq = 20.0
	cracks := math.Abs(math.Sin(pos.X*crackFreq+t) * math.Cos(pos.Y*crackFreq-t*0.7))

	heat := math.Abs(math.Sin(pos.X*5+t*2)*math.Cos(pos.Z*5-t)) * 0.3

	c := render.MultiplyColor(lavaMolten, 0.7+pulse*0.3)
	if crust > 0.4 {
		c = lavaCrust
	}
	if cracks > 0.85 {
		c = lavaCrack
	}
	c = render.AddColor(c, render.RGB(uint8(heat*100), uint8(heat*50), 0))

	return render.MultiplyColor(c, diffuse(f.Normal, lavaLight, 0.3))
}
