package main

import (
	"fmt"
	"image/color"
	"time"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/taigrr/planets/pkg/render"
	"github.com/taigrr/planets/pkg/shaders"
)

var (
	hudBg     = color.RGBA{0, 0, 0, 255}
	hudWhite  = color.RGBA{230, 230, 230, 255}
	hudGreen  = color.RGBA{80, 250, 120, 255}
	hudCyan   = color.RGBA{90, 220, 250, 255}
	hudYellow = color.RGBA{250, 220, 90, 255}
)

// HUD is a one-line overlay on the top and bottom terminal rows. It
// implements uv.Drawable so it can be drawn after the framebuffer.
type HUD struct {
	Visible   bool
	Wireframe bool
	Shader    shaders.ID
	Stats     render.Stats

	meshName  string
	polyCount int
	fps       float64
	fpsFrames int
	fpsTime   time.Time
}

// NewHUD creates a new HUD
func NewHUD(meshName string, polyCount int) *HUD {
	return &HUD{
		meshName:  meshName,
		polyCount: polyCount,
		fpsTime:   time.Now(),
	}
}

// UpdateFPS updates the FPS counter (call once per frame)
func (h *HUD) UpdateFPS() {
	h.fpsFrames++
	elapsed := time.Since(h.fpsTime)
	if elapsed >= time.Second {
		h.fps = float64(h.fpsFrames) / elapsed.Seconds()
		h.fpsFrames = 0
		h.fpsTime = time.Now()
	}
}

// Draw implements uv.Drawable.
func (h *HUD) Draw(scr uv.Screen, area uv.Rectangle) {
	if !h.Visible || area.Dy() < 2 {
		return
	}
	top, bottom := area.Min.Y, area.Max.Y-1

	// Top left: FPS, top middle: shader, top right: polygon count
	drawText(scr, area.Min.X, top, fmt.Sprintf(" %.0f FPS ", h.fps), hudGreen)
	title := fmt.Sprintf(" %d: %s ", int(h.Shader), h.Shader)
	drawText(scr, max(area.Min.X+(area.Dx()-len(title))/2, 0), top, title, hudWhite)
	polys := fmt.Sprintf(" %s %d polys ", h.meshName, h.polyCount)
	drawText(scr, max(area.Max.X-len(polys), 0), top, polys, hudCyan)

	// Bottom: wireframe checkbox and pipeline counters
	check := "[ ]"
	if h.Wireframe {
		check = "[x]"
	}
	drawText(scr, area.Min.X, bottom, fmt.Sprintf(" %s X-Ray  1-6 shader  arrows orbit  +/- zoom ", check), hudWhite)
	counters := fmt.Sprintf(" %d tris %d frags %d px ", h.Stats.Triangles, h.Stats.Fragments, h.Stats.Written)
	drawText(scr, max(area.Max.X-len(counters), 0), bottom, counters, hudYellow)
}

// drawText writes s one cell per rune starting at (x, y).
func drawText(scr uv.Screen, x, y int, s string, fg color.Color) {
	bounds := scr.Bounds()
	for _, r := range s {
		if x >= bounds.Max.X {
			return
		}
		scr.SetCell(x, y, &uv.Cell{
			Content: string(r),
			Width:   1,
			Style:   uv.Style{Fg: fg, Bg: hudBg},
		})
		x++
	}
}
