// planets - Software-rendered procedural planets in the terminal.
// Draws a spinning sphere through a CPU rasterizer with six procedural
// shaders, either live in the terminal or as a batch of PNG frames.
//
// Controls:
//
//	1-6         - Star, rocky, gas giant, ringed, lava (with moon), moon
//	Arrow keys  - Orbit the camera
//	+/-         - Zoom in/out
//	X           - Toggle wireframe overlay (x-ray)
//	?           - Toggle HUD overlay (FPS, shader, poly count, counters)
//	Esc         - Quit
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/taigrr/planets/pkg/models"
	"github.com/taigrr/planets/pkg/render"
	"github.com/taigrr/planets/pkg/scene"
	"github.com/taigrr/planets/pkg/shaders"
)

var (
	targetFPS  = flag.Int("fps", 0, "Target FPS (default from scene, 60)")
	bgColor    = flag.String("bg", "", "Background color (R,G,B)")
	shaderID   = flag.Int("shader", 0, "Starting shader 1-6")
	meshPath   = flag.String("mesh", "", "Mesh file (.obj, .glb, .gltf); default is a UV sphere")
	scenePath  = flag.String("scene", "", "YAML scene file")
	frames     = flag.Int("frames", 0, "Render this many frames to PNG instead of the terminal")
	outDir     = flag.String("out", "frames", "Output directory for -frames")
	scale      = flag.Int("scale", 1, "Integer up-scaling for PNG output")
	width      = flag.Int("width", 320, "Framebuffer width for -frames")
	height     = flag.Int("height", 240, "Framebuffer height for -frames")
	logPath    = flag.String("log", "", "Log file (interactive mode logs nowhere without it)")
	verbose    = flag.Bool("v", false, "Debug logging, including per-frame pipeline counters")
	cull       = flag.Bool("cull", false, "Skip back faces and off-screen bodies")
)

// Default mesh resolution and overlay color.
const (
	sphereStacks = 24
	sphereSlices = 48
)

var wireColor = render.RGB(0, 255, 128)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "planets - Procedural planets in your terminal\n\n")
		fmt.Fprintf(os.Stderr, "Usage: planets [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nControls:\n")
		fmt.Fprintf(os.Stderr, "  1-6         - Switch shader (5 adds a moon)\n")
		fmt.Fprintf(os.Stderr, "  Arrow keys  - Orbit camera\n")
		fmt.Fprintf(os.Stderr, "  +/-         - Zoom\n")
		fmt.Fprintf(os.Stderr, "  X           - Toggle wireframe\n")
		fmt.Fprintf(os.Stderr, "  ?           - Toggle HUD overlay\n")
		fmt.Fprintf(os.Stderr, "  Esc         - Quit\n")
	}
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	sc, err := scene.New(cfg)
	if err != nil {
		return err
	}

	mesh, err := loadMesh(*meshPath)
	if err != nil {
		return fmt.Errorf("load mesh: %w", err)
	}
	logger.Info("mesh loaded", "name", mesh.Name, "vertices", mesh.VertexCount(), "triangles", mesh.TriangleCount())
	vertices := render.FlattenMesh(mesh)

	if *frames > 0 {
		return renderFrames(sc, vertices, logger)
	}
	return runInteractive(sc, vertices, mesh, logger)
}

// newLogger writes text logs to -log, or to stderr in headless mode. The
// terminal owns stdout and stderr while the viewer runs, so interactive
// mode without -log discards.
func newLogger() (*slog.Logger, func(), error) {
	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}

	var w io.Writer = io.Discard
	closeFn := func() {}
	switch {
	case *logPath != "":
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	case *frames > 0:
		w = os.Stderr
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), closeFn, nil
}

// loadConfig reads -scene and applies flag overrides on top.
func loadConfig() (scene.Config, error) {
	cfg := scene.Default()
	if *scenePath != "" {
		var err error
		cfg, err = scene.Load(*scenePath)
		if err != nil {
			return cfg, err
		}
	}
	if *targetFPS > 0 {
		cfg.FPS = *targetFPS
	}
	if *bgColor != "" {
		cfg.Background = *bgColor
	}
	if *shaderID != 0 {
		cfg.Shader = *shaderID
	}
	return cfg, cfg.Validate()
}

func loadMesh(path string) (*models.Mesh, error) {
	if path == "" {
		return models.NewUVSphere(sphereStacks, sphereSlices), nil
	}

	var (
		mesh *models.Mesh
		err  error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".glb", ".gltf":
		mesh, err = models.LoadGLB(path)
	case ".obj":
		mesh, err = models.LoadOBJ(path)
		if err == nil {
			mesh.Normalize()
		}
	default:
		return nil, fmt.Errorf("unsupported format: %s (use .obj, .glb or .gltf)", ext)
	}
	return mesh, err
}

func newRenderer(fb *render.Framebuffer, logger *slog.Logger) *render.Renderer {
	r := render.NewRenderer(fb, logger)
	r.Options.CullBackfaces = *cull
	r.Options.CullOffscreen = *cull
	return r
}

// frame composes the framebuffer and HUD into one uv.Drawable. It has no
// Bounds method, so the terminal keeps its own cell size.
type frame struct {
	fb  *render.Framebuffer
	hud *HUD
}

func (f frame) Draw(scr uv.Screen, area uv.Rectangle) {
	f.fb.Draw(scr, area)
	f.hud.Draw(scr, area)
}

func runInteractive(sc *scene.Scene, vertices []render.Vertex, mesh *models.Mesh, logger *slog.Logger) error {
	term := uv.DefaultTerminal()

	cols, rows, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}

	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}

	term.EnterAltScreen()
	term.HideCursor()
	if err := term.Resize(cols, rows); err != nil {
		return fmt.Errorf("resize terminal: %w", err)
	}

	fb := render.NewFramebuffer(render.FramebufferSize(cols, rows))
	renderer := newRenderer(fb, logger)

	fps := sc.Config.FPS
	rig := NewCameraRig(fps, sc.Camera)
	hud := NewHUD(mesh.Name, mesh.TriangleCount())

	// Context for clean shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cleanup := func() {
		term.ExitAltScreen()
		term.ShowCursor()
		if err := term.Shutdown(context.Background()); err != nil {
			logger.Warn("terminal shutdown", "err", err)
		}
	}
	defer cleanup()

	const orbitImpulse = 0.02
	handle := func(ev uv.Event) {
		switch ev := ev.(type) {
		case uv.WindowSizeEvent:
			cols, rows = ev.Width, ev.Height
			term.Erase()
			if err := term.Resize(cols, rows); err != nil {
				logger.Warn("resize terminal", "err", err)
			}
			fb = render.NewFramebuffer(render.FramebufferSize(cols, rows))
			renderer.SetFramebuffer(fb)
			logger.Debug("resized", "cols", cols, "rows", rows)

		case uv.KeyPressEvent:
			switch {
			case ev.MatchString("escape", "ctrl+c"):
				cancel()
			case ev.MatchString("1", "2", "3", "4", "5", "6"):
				id := shaders.ID(ev.String()[0] - '0')
				if sc.SetShader(id) {
					logger.Info("shader", "id", int(id), "name", id.String())
				}
			case ev.MatchString("left"):
				rig.ApplyImpulse(-orbitImpulse, 0)
			case ev.MatchString("right"):
				rig.ApplyImpulse(orbitImpulse, 0)
			case ev.MatchString("up"):
				rig.ApplyImpulse(0, orbitImpulse)
			case ev.MatchString("down"):
				rig.ApplyImpulse(0, -orbitImpulse)
			case ev.MatchString("+", "="):
				rig.Zoom.Nudge(-0.5)
			case ev.MatchString("-", "_"):
				rig.Zoom.Nudge(0.5)
			case ev.MatchString("x"):
				hud.Wireframe = !hud.Wireframe
			case ev.MatchString("?"), ev.MatchString("shift+/"):
				hud.Visible = !hud.Visible
			}
		}
	}

	targetDuration := time.Second / time.Duration(fps)
	events := term.Events()

	for {
		// Drain pending input before drawing the next frame.
	drain:
		for {
			select {
			case <-ctx.Done():
				return nil
			case ev, ok := <-events:
				if !ok {
					return nil
				}
				handle(ev)
			default:
				break drain
			}
		}

		now := time.Now()

		rig.Update()
		sc.Step()

		renderer.ResetStats()
		sc.Render(renderer, vertices)
		if hud.Wireframe {
			sc.RenderWireframe(renderer, vertices, wireColor)
		}
		renderer.LogStats(sc.Time)

		hud.Shader = sc.Shader
		hud.Stats = renderer.Stats
		hud.UpdateFPS()

		term.Draw(frame{fb: fb, hud: hud})
		if err := term.Display(); err != nil {
			return fmt.Errorf("display: %w", err)
		}

		// Frame timing
		elapsed := time.Since(now)
		if elapsed < targetDuration {
			time.Sleep(targetDuration - elapsed)
		}
	}
}
