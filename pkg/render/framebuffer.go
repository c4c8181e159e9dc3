// Package render implements the software pipeline that turns a flat list of
// mesh vertices into shaded pixels: transform builders, the vertex stage,
// the triangle rasterizer, the frame orchestrator and the pixel sink.
package render

import (
	"image"
	"math"
)

// Framebuffer is the pixel sink the renderer writes into.
// It keeps a color and a depth value per pixel; writes are depth tested so
// several draw calls can be composited within one frame.
type Framebuffer struct {
	Width  int       // Width in pixels
	Height int       // Height in pixels (2x terminal rows due to half-blocks)
	Pixels []Color   // Row-major pixel data
	Depth  []float64 // Row-major depth data, smaller is nearer

	background Color
	current    Color
}

// NewFramebuffer creates a new framebuffer with the given dimensions,
// cleared to black.
func NewFramebuffer(width, height int) *Framebuffer {
	fb := &Framebuffer{
		Width:      width,
		Height:     height,
		Pixels:     make([]Color, width*height),
		Depth:      make([]float64, width*height),
		background: ColorBlack,
		current:    ColorWhite,
	}
	fb.Clear()
	return fb
}

// Bounds returns the pixel rectangle covered by the framebuffer.
func (fb *Framebuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, fb.Width, fb.Height)
}

// SetBackground sets the color used by Clear.
func (fb *Framebuffer) SetBackground(c Color) {
	fb.background = c
}

// Clear fills every pixel with the background color and resets depth.
func (fb *Framebuffer) Clear() {
	n := len(fb.Pixels)
	if n == 0 {
		return
	}
	// Use copy-doubling for faster clearing
	fb.Pixels[0] = fb.background
	fb.Depth[0] = math.Inf(1)
	for i := 1; i < n; i *= 2 {
		copy(fb.Pixels[i:], fb.Pixels[:i])
		copy(fb.Depth[i:], fb.Depth[:i])
	}
}

// SetCurrentColor sets the color written by Point.
func (fb *Framebuffer) SetCurrentColor(c Color) {
	fb.current = c
}

// Point writes the current color at (x, y) if depth is not farther than
// what the pixel already holds. It reports whether the write happened.
func (fb *Framebuffer) Point(x, y int, depth float64) bool {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return false
	}
	i := y*fb.Width + x
	if depth > fb.Depth[i] || math.IsNaN(depth) {
		return false
	}
	fb.Depth[i] = depth
	fb.Pixels[i] = fb.current
	return true
}

// SetPixel sets a pixel at (x, y) to the given color, ignoring depth.
// Bounds checking is performed.
func (fb *Framebuffer) SetPixel(x, y int, c Color) {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return
	}
	fb.Pixels[y*fb.Width+x] = c
}

// GetPixel returns the color at (x, y).
// Returns transparent black if out of bounds.
func (fb *Framebuffer) GetPixel(x, y int) Color {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return Color{}
	}
	return fb.Pixels[y*fb.Width+x]
}

// DepthAt returns the stored depth at (x, y), +Inf when out of bounds or
// never written this frame.
func (fb *Framebuffer) DepthAt(x, y int) float64 {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return math.Inf(1)
	}
	return fb.Depth[y*fb.Width+x]
}

// Packed returns the frame as 0xRRGGBB words, row-major.
func (fb *Framebuffer) Packed() []uint32 {
	out := make([]uint32, len(fb.Pixels))
	for i, c := range fb.Pixels {
		out[i] = Hex(c)
	}
	return out
}

// DrawLine draws a line from (x0, y0) to (x1, y1) using Bresenham's
// algorithm. Lines ignore and do not update depth.
func (fb *Framebuffer) DrawLine(x0, y0, x1, y1 int, c Color) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		fb.SetPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
