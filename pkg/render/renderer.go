package render

import (
	"log/slog"

	"github.com/taigrr/planets/pkg/math3d"
)

// Options enables corrections the reference pipeline does not perform.
// The zero value renders every triangle of every draw.
type Options struct {
	CullBackfaces bool // Skip triangles with negative screen-space area
	CullOffscreen bool // Skip draws whose bounding sphere is outside the frustum
}

// Stats tracks pipeline work since the last ResetStats.
type Stats struct {
	Draws      int // Draw calls issued
	Culled     int // Draw calls skipped by CullOffscreen
	Triangles  int // Triangles assembled
	Backfaces  int // Triangles skipped by CullBackfaces
	Fragments  int // Fragments produced by the rasterizer
	Discarded  int // Fragments outside the framebuffer
	Written    int // Fragments that passed the depth test
	Overdrawn  int // Fragments rejected by the depth test
	Wireframes int // Wireframe overlays drawn
}

// LogValue implements slog.LogValuer.
func (s Stats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("draws", s.Draws),
		slog.Int("culled", s.Culled),
		slog.Int("triangles", s.Triangles),
		slog.Int("backfaces", s.Backfaces),
		slog.Int("fragments", s.Fragments),
		slog.Int("discarded", s.Discarded),
		slog.Int("written", s.Written),
		slog.Int("overdrawn", s.Overdrawn),
		slog.Int("wireframes", s.Wireframes),
	)
}

// Renderer runs draw calls against a framebuffer. It is not safe for
// concurrent use; one frame is one synchronous sequence of Draw calls.
type Renderer struct {
	fb     *Framebuffer
	logger *slog.Logger

	Options Options
	Stats   Stats
}

// NewRenderer creates a renderer drawing into fb. A nil logger discards.
func NewRenderer(fb *Framebuffer, logger *slog.Logger) *Renderer {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Renderer{fb: fb, logger: logger}
}

// Framebuffer returns the current sink.
func (r *Renderer) Framebuffer() *Framebuffer {
	return r.fb
}

// SetFramebuffer swaps the sink, e.g. after a terminal resize.
func (r *Renderer) SetFramebuffer(fb *Framebuffer) {
	r.fb = fb
}

// ResetStats clears the counters (call once per frame).
func (r *Renderer) ResetStats() {
	r.Stats = Stats{}
}

// LogStats writes the counters at debug level.
func (r *Renderer) LogStats(frame uint32) {
	r.logger.Debug("frame rendered", "frame", frame, "stats", r.Stats)
}

// Draw renders one body: every vertex goes through the vertex stage, the
// results are grouped into triangles, and each covered pixel is shaded
// and written to the framebuffer with a depth test.
func (r *Renderer) Draw(vertices []Vertex, u Uniforms, shader Shader) {
	r.Stats.Draws++
	if r.Options.CullOffscreen && !r.visible(vertices, u) {
		r.Stats.Culled++
		return
	}

	transformed := r.transformAll(vertices, u)
	clip := r.fb.Bounds()
	for _, tri := range Triangles(transformed) {
		r.Stats.Triangles++
		if r.Options.CullBackfaces && tri.SignedArea() < 0 {
			r.Stats.Backfaces++
			continue
		}
		for frag := range RasterizeClipped(tri[0], tri[1], tri[2], clip) {
			r.Stats.Fragments++
			r.writeFragment(frag, u, shader)
		}
	}
}

// writeFragment shades and stores one fragment. Fragments whose pixel lies
// outside the framebuffer are dropped before shading.
func (r *Renderer) writeFragment(frag Fragment, u Uniforms, shader Shader) {
	fx, fy := frag.Position.X, frag.Position.Y
	if fx < 0 || fy < 0 || fx >= float64(r.fb.Width) || fy >= float64(r.fb.Height) {
		r.Stats.Discarded++
		return
	}

	r.fb.SetCurrentColor(shader.Shade(frag, u))
	if r.fb.Point(int(fx), int(fy), frag.Depth) {
		r.Stats.Written++
	} else {
		r.Stats.Overdrawn++
	}
}

func (r *Renderer) transformAll(vertices []Vertex, u Uniforms) []Vertex {
	mvp := u.MVP()
	out := make([]Vertex, len(vertices))
	for i, v := range vertices {
		out[i] = transformVertex(v, mvp, u.Viewport)
	}
	return out
}

// visible tests the body's world-space bounding sphere against the view
// frustum.
func (r *Renderer) visible(vertices []Vertex, u Uniforms) bool {
	var radius float64
	for _, v := range vertices {
		radius = max(radius, v.Position.Len())
	}
	center := u.Model.MulVec3(math3d.Zero3())
	frustum := NewFrustumFromMatrix(u.Projection.Mul(u.View))
	return frustum.IntersectsSphere(center, radius*u.Model.MaxScale())
}

// DrawWireframe outlines every triangle of a body in color, on top of
// whatever is in the framebuffer. Edges with an endpoint far off screen
// are skipped.
func (r *Renderer) DrawWireframe(vertices []Vertex, u Uniforms, color Color) {
	r.Stats.Wireframes++
	transformed := r.transformAll(vertices, u)
	for _, tri := range Triangles(transformed) {
		if r.Options.CullBackfaces && tri.SignedArea() < 0 {
			continue
		}
		for i := range 3 {
			r.drawEdge(tri[i].ScreenPosition, tri[(i+1)%3].ScreenPosition, color)
		}
	}
}

func (r *Renderer) drawEdge(a, b math3d.Vec3, color Color) {
	if !r.nearScreen(a) || !r.nearScreen(b) {
		return
	}
	r.fb.DrawLine(int(a.X), int(a.Y), int(b.X), int(b.Y), color)
}

// nearScreen reports whether p lies within one screen size of the
// framebuffer.
func (r *Renderer) nearScreen(p math3d.Vec3) bool {
	w, h := float64(r.fb.Width), float64(r.fb.Height)
	return p.IsFinite() && p.X >= -w && p.X <= 2*w && p.Y >= -h && p.Y <= 2*h
}
