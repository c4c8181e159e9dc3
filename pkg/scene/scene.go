package scene

import (
	"fmt"
	"math/rand/v2"

	"github.com/taigrr/planets/pkg/math3d"
	"github.com/taigrr/planets/pkg/render"
	"github.com/taigrr/planets/pkg/shaders"
)

// Body is one drawable instance of the shared mesh.
type Body struct {
	Translation math3d.Vec3
	Scale       float64
	Rotation    math3d.Vec3 // Euler angles, radians
	Shader      shaders.ID
}

// Model returns the body's model matrix.
func (b Body) Model() math3d.Mat4 {
	return render.ModelMatrix(b.Translation, b.Scale, b.Rotation)
}

// Scene is the animated state advanced once per frame.
type Scene struct {
	Config     Config
	Camera     *render.Camera
	Background render.Color
	Shader     shaders.ID // Active planet shader

	Time uint32  // Frames stepped so far
	Yaw  float64 // Planet rotation about Y

	rng *rand.Rand
}

// New builds a scene from a validated config.
func New(cfg Config) (*Scene, error) {
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	bg, err := ParseColor(cfg.Background)
	if err != nil {
		return nil, fmt.Errorf("background: %w", err)
	}

	cam := render.NewCamera(cfg.Camera.Eye.V3(), cfg.Camera.Center.V3())
	cam.Up = cfg.Camera.Up.V3()

	return &Scene{
		Config:     cfg,
		Camera:     cam,
		Background: bg,
		Shader:     shaders.ID(cfg.Shader),
		rng:        rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}, nil
}

// Seed makes noise offsets reproducible.
func (s *Scene) Seed(seed uint64) {
	s.rng = rand.New(rand.NewPCG(seed, seed))
}

// SetShader switches the planet shader. Unknown ids are ignored.
func (s *Scene) SetShader(id shaders.ID) bool {
	if !id.Valid() {
		return false
	}
	s.Shader = id
	return true
}

// Step advances one frame: the frame counter by one and the planet's yaw
// by the configured spin.
func (s *Scene) Step() {
	s.Time++
	s.Yaw += s.Config.Spin
}

// Bodies returns the bodies to draw this frame in draw order: the planet,
// then the moon when the active shader is the moon's host.
func (s *Scene) Bodies() []Body {
	bodies := []Body{{
		Scale:    1,
		Rotation: math3d.V3(0, s.Yaw, 0),
		Shader:   s.Shader,
	}}

	m := s.Config.Moon
	if m.Enabled && s.Shader == shaders.ID(m.Host) {
		bodies = append(bodies, Body{
			Translation: m.Translation.V3(),
			Scale:       m.Scale,
			Rotation:    math3d.V3(0, s.Yaw*m.SpinRatio, 0),
			Shader:      shaders.ID(m.Shader),
		})
	}
	return bodies
}

// Uniforms builds the per-draw constants for b on a width x height
// framebuffer. A fresh noise offset is drawn for every call.
func (s *Scene) Uniforms(b Body, width, height int) render.Uniforms {
	w, h := float64(width), float64(height)
	return render.Uniforms{
		Model:       b.Model(),
		View:        s.Camera.ViewMatrix(),
		Projection:  render.ProjectionMatrix(w, h),
		Viewport:    render.ViewportMatrix(w, h),
		Time:        s.Time,
		NoiseOffset: s.noiseOffset(),
	}
}

func (s *Scene) noiseOffset() math3d.Vec3 {
	return math3d.V3(s.rng.Float64(), s.rng.Float64(), s.rng.Float64()).Scale(100)
}

// Render clears the framebuffer to the background and draws every body of
// the current frame with its shader.
func (s *Scene) Render(r *render.Renderer, mesh []render.Vertex) {
	fb := r.Framebuffer()
	fb.SetBackground(s.Background)
	fb.Clear()
	for _, b := range s.Bodies() {
		r.Draw(mesh, s.Uniforms(b, fb.Width, fb.Height), shaders.ByID(b.Shader))
	}
}

// RenderWireframe overlays the outline of every body of the current frame.
func (s *Scene) RenderWireframe(r *render.Renderer, mesh []render.Vertex, color render.Color) {
	fb := r.Framebuffer()
	for _, b := range s.Bodies() {
		r.DrawWireframe(mesh, s.Uniforms(b, fb.Width, fb.Height), color)
	}
}
