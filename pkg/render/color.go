package render

import (
	"image/color"
	"math"
)

// Color is an alias for color.RGBA for convenience.
// Colors are values: every operation below returns a new Color and keeps
// the channels within [0, 255].
type Color = color.RGBA

// Colors for convenience
var (
	ColorBlack = color.RGBA{0, 0, 0, 255}
	ColorWhite = color.RGBA{255, 255, 255, 255}
)

// RGB creates an opaque color from RGB values.
func RGB(r, g, b uint8) Color {
	return color.RGBA{r, g, b, 255}
}

// clampChannel truncates v into the [0, 255] channel range.
// NaN maps to 0.
func clampChannel(v float64) uint8 {
	switch {
	case v >= 255:
		return 255
	case v > 0:
		return uint8(v)
	default:
		return 0
	}
}

// LerpColor blends a toward b by t. t is clamped to [0, 1], so t=0 yields a
// and t=1 yields b exactly.
func LerpColor(a, b Color, t float64) Color {
	t = math.Max(0, math.Min(1, t))
	if math.IsNaN(t) {
		t = 0
	}
	return Color{
		R: clampChannel(float64(a.R) + (float64(b.R)-float64(a.R))*t),
		G: clampChannel(float64(a.G) + (float64(b.G)-float64(a.G))*t),
		B: clampChannel(float64(a.B) + (float64(b.B)-float64(a.B))*t),
		A: 255,
	}
}

// MultiplyColor scales each channel by factor, saturating at 0 and 255.
func MultiplyColor(c Color, factor float64) Color {
	return Color{
		R: clampChannel(float64(c.R) * factor),
		G: clampChannel(float64(c.G) * factor),
		B: clampChannel(float64(c.B) * factor),
		A: 255,
	}
}

// AddColor adds b to a channel by channel, saturating at 255.
func AddColor(a, b Color) Color {
	return Color{
		R: clampChannel(float64(a.R) + float64(b.R)),
		G: clampChannel(float64(a.G) + float64(b.G)),
		B: clampChannel(float64(a.B) + float64(b.B)),
		A: 255,
	}
}

// Hex packs the color as 0xRRGGBB.
func Hex(c Color) uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}
