package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/taigrr/planets/pkg/render"
	"github.com/taigrr/planets/pkg/scene"
)

// renderFrames renders *frames frames of the scene into *outDir as
// frame_0000.png, frame_0001.png, ...
func renderFrames(sc *scene.Scene, vertices []render.Vertex, logger *slog.Logger) error {
	if *width <= 0 || *height <= 0 {
		return fmt.Errorf("invalid size %dx%d", *width, *height)
	}
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	fb := render.NewFramebuffer(*width, *height)
	renderer := newRenderer(fb, logger)

	bar := progressbar.Default(int64(*frames), "rendering")
	for i := range *frames {
		sc.Step()
		renderer.ResetStats()
		sc.Render(renderer, vertices)
		renderer.LogStats(sc.Time)

		path := filepath.Join(*outDir, fmt.Sprintf("frame_%04d.png", i))
		if err := fb.SavePNG(path, *scale); err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
		advance(bar, 1, logger)
	}
	if err := bar.Finish(); err != nil {
		logger.Debug("progress bar", "err", err)
	}

	logger.Info("frames written", "count", *frames, "dir", *outDir, "shader", sc.Shader.String())
	return nil
}

// advance moves bar forward by n. The bar only decorates stderr, so a
// failed redraw is logged rather than returned.
func advance(bar *progressbar.ProgressBar, n int, logger *slog.Logger) {
	if err := bar.Add(n); err != nil {
		logger.Debug("progress bar", "err", err)
	}
}
