package shaders

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taigrr/planets/pkg/math3d"
	"github.com/taigrr/planets/pkg/render"
)

// surface returns n random fragments on the unit sphere.
func surface(n int) []render.Fragment {
	rng := rand.New(rand.NewPCG(42, 99))
	out := make([]render.Fragment, n)
	for i := range out {
		p := math3d.V3(rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64()).Normalize()
		out[i] = render.Fragment{
			Position:       math3d.V3(float64(rng.IntN(200)), float64(rng.IntN(100)), rng.Float64()),
			Normal:         p,
			Depth:          rng.Float64(),
			VertexPosition: p,
		}
	}
	return out
}

func TestUnknownIDShadesWhite(t *testing.T) {
	white := render.RGB(255, 255, 255)
	for _, id := range []ID{0, -1, 7, 99} {
		assert.False(t, id.Valid())
		for _, f := range surface(20) {
			assert.Equal(t, white, Shade(id, f, render.Uniforms{Time: 123}), "id %d", id)
		}
	}
}

func TestShadersDeterministic(t *testing.T) {
	frags := surface(200)
	for _, id := range IDs() {
		t.Run(id.String(), func(t *testing.T) {
			u := render.Uniforms{Time: 321}
			for _, f := range frags {
				assert.Equal(t, Shade(id, f, u), Shade(id, f, u))
			}
		})
	}
}

func TestShadersOpaqueAndLit(t *testing.T) {
	frags := surface(500)
	for _, id := range IDs() {
		t.Run(id.String(), func(t *testing.T) {
			for _, time := range []uint32{0, 1, 1000, 1 << 31} {
				u := render.Uniforms{Time: time}
				for _, f := range frags {
					c := Shade(id, f, u)
					assert.Equal(t, uint8(255), c.A)
					// The ambient floor keeps the night side visible.
					assert.NotZero(t, render.Hex(c), "black fragment at %v", f.VertexPosition)
				}
			}
		})
	}
}

func TestShadersIgnoreNoiseOffset(t *testing.T) {
	frags := surface(50)
	a := render.Uniforms{Time: 10}
	b := render.Uniforms{Time: 10, NoiseOffset: math3d.V3(12, 34, 56)}
	for _, id := range IDs() {
		for _, f := range frags {
			assert.Equal(t, Shade(id, f, a), Shade(id, f, b), "%s", id)
		}
	}
}

func TestAnimatedShadersChangeOverTime(t *testing.T) {
	frags := surface(200)
	for _, id := range []ID{Star, Rocky, GasGiant, Ringed, Lava} {
		changed := false
		for _, f := range frags {
			if Shade(id, f, render.Uniforms{Time: 0}) != Shade(id, f, render.Uniforms{Time: 157}) {
				changed = true
				break
			}
		}
		assert.True(t, changed, "%s does not animate", id)
	}

	for _, f := range frags {
		assert.Equal(t, Shade(Moon, f, render.Uniforms{Time: 0}), Shade(Moon, f, render.Uniforms{Time: 157}))
	}
}

func TestMoonCraters(t *testing.T) {
	// sin(15x) * cos(0) peaks at x = pi/30.
	f := render.Fragment{
		Normal:         math3d.V3(1, 1, 1),
		VertexPosition: math3d.V3(0.10471975511965977, 0, 0),
	}
	c := MoonShader{}.Shade(f, render.Uniforms{})
	assert.InDelta(t, 100, int(c.R), 1)
	assert.Equal(t, c.R, c.G)
	assert.Equal(t, c.R, c.B)
}

func TestIDs(t *testing.T) {
	ids := IDs()
	require.Len(t, ids, 6)
	for i, id := range ids {
		assert.Equal(t, ID(i+1), id)
		assert.True(t, id.Valid())
	}
	assert.Equal(t, "moon", Moon.String())
	assert.Equal(t, "shader(99)", ID(99).String())
}

func TestSolid(t *testing.T) {
	c := render.RGB(1, 2, 3)
	assert.Equal(t, c, Solid{Color: c}.Shade(render.Fragment{}, render.Uniforms{}))
}

// Golden colors at frame 0. Each row places the fragment so one layer rule
// fires; dark rows face away from the light and pin the ambient floor.
func TestShaderLayers(t *testing.T) {
	away := math3d.V3(-1, -1, -1)

	tests := []struct {
		name   string
		id     ID
		pos    math3d.Vec3
		normal math3d.Vec3
		want   render.Color
	}{
		// Star: at the center plasma is 0 and corona is 0.15, so
		// lerp(orange, corona, 0.15) = (255,115,7), then x1.5 glow.
		{"star core glow", Star, math3d.V3(0, 0, 0), math3d.V3(0, 0, 1), render.RGB(255, 172, 10)},
		// spot 0.96: lerp(orange, yellow, 0.28) = (255,143,28), x0.6.
		{"star sunspot", Star, math3d.V3(-1, -1.2, -1), math3d.V3(0, 0, 1), render.RGB(153, 85, 16)},
		{"star ignores normal", Star, math3d.V3(-1, -1.2, -1), away, render.RGB(153, 85, 16)},
		{"star plasma", Star, math3d.V3(-1.2, -1.2, -1.2), math3d.V3(0, 0, 1), render.RGB(255, 161, 39)},

		// Rocky: ocean lerped 0.2 toward the atmosphere at the center,
		// (44,78,163) x0.2.
		{"rocky atmosphere", Rocky, math3d.V3(0, 0, 0), away, render.RGB(8, 15, 32)},
		{"rocky ocean", Rocky, math3d.V3(-1.2, -1.2, -1.2), away, render.RGB(6, 12, 28)},
		// land 0.52 > 0.5: soil (139,90,43) x0.2.
		{"rocky soil", Rocky, math3d.V3(-1.2, -1.1, -1.2), away, render.RGB(27, 18, 8)},
		{"rocky soil lit", Rocky, math3d.V3(-1.2, -1.1, -1.2), math3d.V3(1, 1, 1), render.RGB(139, 90, 43)},
		// forest (34,139,34) x0.2.
		{"rocky forest", Rocky, math3d.V3(-1.1, -1.2, -1.2), away, render.RGB(6, 27, 6)},
		// clouds 0.97: ocean lerped (0.97-0.7)*2 toward white, x0.2.
		{"rocky cloud", Rocky, math3d.V3(-1, -1.2, -0.2), away, render.RGB(30, 33, 40)},

		// Gas giant: at the storm center storm is 1 and the swirl is 0.40,
		// above 0.3, so band (210,165,125) is lerped 0.40 toward red.
		{"gas storm", GasGiant, math3d.V3(0.3, -0.2, 0), math3d.V3(-1, -0.5, -1), render.RGB(61, 39, 29)},
		{"gas storm lit", GasGiant, math3d.V3(0.3, -0.2, 0), math3d.V3(1, 0.5, 1), render.RGB(206, 131, 99)},
		// Intensity 0.11 stays under the threshold: band (220,180,141) x0.3.
		{"gas weak storm", GasGiant, math3d.V3(0.2, -0.3, -0.1), math3d.V3(-1, -0.5, -1), render.RGB(66, 54, 42)},
		{"gas bands", GasGiant, math3d.V3(-1.2, -1.2, -1.2), math3d.V3(-1, -0.5, -1), render.RGB(66, 56, 48)},

		// Ringed: same band color (230,210,170) in and out of the ring
		// shadow; the shadow scales by 0.56 before the 0.25 floor.
		{"ringed shadow", Ringed, math3d.V3(-1.2, -0.1, -1.2), math3d.V3(-1, -0.8, -1), render.RGB(29, 26, 21)},
		{"ringed open", Ringed, math3d.V3(-1.2, -1.2, -1.2), math3d.V3(-1, -0.8, -1), render.RGB(52, 48, 38)},
		{"ringed lit", Ringed, math3d.V3(-1.2, -1.2, -1.2), math3d.V3(1, 0.8, 1), render.RGB(210, 192, 155)},

		// Lava: molten (255,100,0) x0.85 pulse, x0.3 floor.
		{"lava molten", Lava, math3d.V3(0, 0, 0), away, render.RGB(64, 25, 0)},
		{"lava molten lit", Lava, math3d.V3(0, 0, 0), math3d.V3(1, 1, 1), render.RGB(216, 85, 0)},
		// crust 0.57: (40,40,40) + heat (6,3,0), x0.3.
		{"lava crust", Lava, math3d.V3(-1.1, -1.2, -1), away, render.RGB(13, 12, 12)},
		// crust 0.47 and cracks 0.91: the crack wins, (255,150,0) + heat
		// (20,10,0) saturates to (255,160,0).
		{"lava crack over crust", Lava, math3d.V3(-1, -1.1, -1.1), away, render.RGB(76, 48, 0)},
		{"lava crack lit", Lava, math3d.V3(-1, -1.1, -1.1), math3d.V3(1, 1, 1), render.RGB(255, 160, 0)},

		// Moon: crater gray 100 or plain gray 150..180, x0.15 floor.
		{"moon crater", Moon, math3d.V3(-1.2, -1.2, -1.1), away, render.RGB(15, 15, 15)},
		{"moon plain", Moon, math3d.V3(-1.2, -1.2, -1.2), away, render.RGB(23, 23, 23)},
		{"moon plain lit", Moon, math3d.V3(-1.2, -1.2, -1.2), math3d.V3(1, 1, 1), render.RGB(155, 155, 155)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := render.Fragment{Normal: tt.normal, VertexPosition: tt.pos}
			assert.Equal(t, tt.want, Shade(tt.id, f, render.Uniforms{}))
		})
	}
}
