// Package shaders holds the procedural fragment shaders for the planet
// renderer. Each shader is a pure function of the fragment's object-space
// position, its normal and the frame counter; none of them sample textures.
package shaders

import (
	"fmt"
	"math"

	"github.com/taigrr/planets/pkg/math3d"
	"github.com/taigrr/planets/pkg/render"
)

// ID selects a shader variant.
type ID int

// Shader variants, numbered as on the keyboard.
const (
	Star ID = iota + 1
	Rocky
	GasGiant
	Ringed
	Lava
	Moon
)

// Fallback is the color every unknown ID shades to.
var Fallback = render.RGB(255, 255, 255)

var names = map[ID]string{
	Star:     "star",
	Rocky:    "rocky planet",
	GasGiant: "gas giant",
	Ringed:   "ringed planet",
	Lava:     "lava planet",
	Moon:     "moon",
}

// IDs returns every known variant in keyboard order.
func IDs() []ID {
	return []ID{Star, Rocky, GasGiant, Ringed, Lava, Moon}
}

// Valid reports whether id names a known variant.
func (id ID) Valid() bool {
	_, ok := names[id]
	return ok
}

func (id ID) String() string {
	if name, ok := names[id]; ok {
		return name
	}
	return fmt.Sprintf("shader(%d)", int(id))
}

// ByID returns the shader for id. Unknown ids get a shader that always
// returns Fallback.
func ByID(id ID) render.Shader {
	switch id {
	case Star:
		return StarShader{}
	case Rocky:
		return RockyShader{}
	case GasGiant:
		return GasGiantShader{}
	case Ringed:
		return RingedShader{}
	case Lava:
		return LavaShader{}
	case Moon:
		return MoonShader{}
	default:
		return Solid{Color: Fallback}
	}
}

// Shade is a convenience for ByID(id).Shade(f, u).
func Shade(id ID, f render.Fragment, u render.Uniforms) render.Color {
	return ByID(id).Shade(f, u)
}

// Solid shades every fragment with one color.
type Solid struct {
	Color render.Color
}

// Shade implements render.Shader.
func (s Solid) Shade(render.Fragment, render.Uniforms) render.Color {
	return s.Color
}

// diffuse is the Lambert term with an ambient floor, so no lit pixel is
// ever fully black.
func diffuse(normal, lightDir math3d.Vec3, floor float64) float64 {
	return math.Max(normal.Normalize().Dot(lightDir), floor)
}

// seconds scales the frame counter into shader time.
func seconds(u render.Uniforms, rate float64) float64 {
	return float64(u.Time) * rate
}

