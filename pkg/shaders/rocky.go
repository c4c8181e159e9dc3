package shaders

import (
	"math"

	"github.com/taigrr/planets/pkg/math3d"
	"github.com/taigrr/planets/pkg/render"
)

var (
	rockyLight = math3d.V3(1, 1, 1).Normalize()

	rockyForest = render.RGB(34, 139, 34)
	rockySoil   = render.RGB(139, 90, 43)
	rockyOcean  = render.RGB(30, 60, 140)
	rockyCloud  = render.RGB(255, 255, 255)
	rockyAir    = render.RGB(100, 150, 255)
)

// RockyShader is an Earth-like planet: continents over ocean, drifting
// clouds and a faint atmosphere.
type RockyShader struct{}

// Shade implements render.Shader.
func (RockyShader) Shade(f render.Fragment, u render.Uniforms) render.Color {
	pos := f.VertexPosition
	t := seconds(u, 0.005)

	const landFreq = 5.0
	land1 := math.Abs(math.Sin(pos.X*landFreq) * math.Cos(pos.Y*landFreq))
	land2 := math.Abs(math.Sin(pos.Y*landFreq*1.5) * math.Cos(pos.Z*landFreq*1.5))
	land := (land1 + land2) * 0.5

	c := rockyOcean
	if land > 0.5 {
		c = rockySoil
		if math.Abs(math.Sin(pos.X*10)*math.Cos(pos.Z*10)) > 0.6 {
			c = rockyForest
		}
	}

	const (
		cloudFreq      = 8.0
		cloudThreshold = 0.7
	)
	drift := t * 0.5
	clouds := math.Abs(math.Sin(pos.X*cloudFreq+drift) *
		math.Cos(pos.Y*cloudFreq) *
		math.Sin(pos.Z*cloudFreq-drift*0.7))
	if clouds > cloudThreshold {
		c = render.LerpColor(c, rockyCloud, (clouds-cloudThreshold)*2)
	}

	atmosphere := math.Pow(math.Max(0, 1-pos.Len()), 3) * 0.2
	c = render.LerpColor(c, rockyAir, atmosphere)

	return render.MultiplyColor(c, diffuse(f.Normal, rockyLight, 0.2))
}
