package render

import (
	"image"
	"iter"
	"math"

	"github.com/taigrr/planets/pkg/math3d"
)

// MinTriangleArea is the smallest absolute screen-space area (in pixel
// units, doubled) a triangle must have to be rasterized. Thinner triangles
// would produce non-finite barycentric weights and are skipped.
const MinTriangleArea = 1e-9

// Triangle is three transformed vertices.
type Triangle [3]Vertex

// Triangles groups a flat vertex list into consecutive triangles.
// A trailing one or two vertices that cannot form a triangle are dropped.
func Triangles(vertices []Vertex) []Triangle {
	tris := make([]Triangle, 0, len(vertices)/3)
	for i := 0; i+2 < len(vertices); i += 3 {
		tris = append(tris, Triangle{vertices[i], vertices[i+1], vertices[i+2]})
	}
	return tris
}

// edgeFunction returns the signed area test of c against the directed edge
// a->b. Only X and Y are used.
func edgeFunction(a, b, c math3d.Vec3) float64 {
	return (c.X-a.X)*(b.Y-a.Y) - (c.Y-a.Y)*(b.X-a.X)
}

// SignedArea returns edgeFunction over the triangle's own screen positions.
// Its sign gives the screen-space winding; the front faces of a
// counter-clockwise mesh are positive after the viewport's Y flip.
func (t Triangle) SignedArea() float64 {
	return edgeFunction(t[0].ScreenPosition, t[1].ScreenPosition, t[2].ScreenPosition)
}

// Rasterize yields one fragment per pixel whose center lies inside the
// triangle, scanning its bounding box row by row.
//
// A pixel is covered when its three edge values all share the sign of the
// triangle's area, that is when every barycentric weight is non-negative.
// Pixels on an edge are included. Degenerate triangles yield nothing.
//
// Both windings are covered, so clockwise and counter-clockwise input give
// the same fragments. Callers that want back faces dropped check
// Triangle.SignedArea first, as Renderer does with Options.CullBackfaces;
// on a closed mesh the depth test already hides them.
func Rasterize(v1, v2, v3 Vertex) iter.Seq[Fragment] {
	return rasterize(v1, v2, v3, image.Rectangle{})
}

// RasterizeClipped is Rasterize with the scan restricted to clip. Fragments
// are identical to Rasterize's for pixels inside clip; pixels outside are
// never visited.
func RasterizeClipped(v1, v2, v3 Vertex, clip image.Rectangle) iter.Seq[Fragment] {
	if clip.Empty() {
		return func(func(Fragment) bool) {}
	}
	return rasterize(v1, v2, v3, clip)
}

func rasterize(v1, v2, v3 Vertex, clip image.Rectangle) iter.Seq[Fragment] {
	return func(yield func(Fragment) bool) {
		a, b, c := v1.ScreenPosition, v2.ScreenPosition, v3.ScreenPosition
		if !a.IsFinite() || !b.IsFinite() || !c.IsFinite() {
			return
		}

		area := edgeFunction(a, b, c)
		if math.Abs(area) < MinTriangleArea {
			return
		}

		minX := int(math.Floor(min3(a.X, b.X, c.X)))
		minY := int(math.Floor(min3(a.Y, b.Y, c.Y)))
		maxX := int(math.Ceil(max3(a.X, b.X, c.X)))
		maxY := int(math.Ceil(max3(a.Y, b.Y, c.Y)))
		if !clip.Empty() {
			minX, minY = max(minX, clip.Min.X), max(minY, clip.Min.Y)
			maxX, maxY = min(maxX, clip.Max.X-1), min(maxY, clip.Max.Y-1)
		}

		for y := minY; y <= maxY; y++ {
			for x := minX; x <= maxX; x++ {
				p := math3d.V3(float64(x)+0.5, float64(y)+0.5, 0)

				w1 := edgeFunction(b, c, p) / area
				w2 := edgeFunction(c, a, p) / area
				w3 := edgeFunction(a, b, p) / area
				if w1 < 0 || w2 < 0 || w3 < 0 {
					continue
				}

				depth := a.Z*w1 + b.Z*w2 + c.Z*w3
				normal := v1.ScreenNormal.Scale(w1).
					Add(v2.ScreenNormal.Scale(w2)).
					Add(v3.ScreenNormal.Scale(w3)).
					Normalize()
				position := v1.Position.Scale(w1).
					Add(v2.Position.Scale(w2)).
					Add(v3.Position.Scale(w3))

				frag := Fragment{
					Position:       math3d.V3(float64(x), float64(y), depth),
					Normal:         normal,
					Depth:          depth,
					VertexPosition: position,
				}
				if !yield(frag) {
					return
				}
			}
		}
	}
}

func min3(a, b, c float64) float64 {
	return math.Min(a, math.Min(b, c))
}

func max3(a, b, c float64) float64 {
	return math.Max(a, math.Max(b, c))
}
