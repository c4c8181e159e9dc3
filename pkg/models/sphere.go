package models

import (
	"fmt"
	"math"

	"github.com/taigrr/planets/pkg/math3d"
)

// NewUVSphere builds a unit sphere centered on the origin with the given
// number of latitude stacks and longitude slices. Faces wind
// counter-clockwise seen from outside; normals point outward.
func NewUVSphere(stacks, slices int) *Mesh {
	stacks = max(stacks, 2)
	slices = max(slices, 3)

	mesh := NewMesh(fmt.Sprintf("sphere-%dx%d", stacks, slices))
	mesh.Vertices = make([]MeshVertex, 0, (stacks+1)*(slices+1))

	for i := 0; i <= stacks; i++ {
		v := float64(i) / float64(stacks)
		phi := v * math.Pi // 0 at the north pole
		y := math.Cos(phi)
		r := math.Sin(phi)

		for j := 0; j <= slices; j++ {
			u := float64(j) / float64(slices)
			theta := u * 2 * math.Pi
			p := math3d.V3(r*math.Sin(theta), y, r*math.Cos(theta))
			mesh.Vertices = append(mesh.Vertices, MeshVertex{
				Position: p,
				Normal:   p.Normalize(),
				UV:       math3d.V2(u, 1-v),
			})
		}
	}

	row := slices + 1
	// a-d is the quad top-left, bottom-left, bottom-right, top-right.
	for i := range stacks {
		for j := range slices {
			a := i*row + j
			b := (i+1)*row + j
			c := (i+1)*row + j + 1
			d := i*row + j + 1
			if i != 0 {
				mesh.Faces = append(mesh.Faces, Face{V: [3]int{a, b, d}})
			}
			if i != stacks-1 {
				mesh.Faces = append(mesh.Faces, Face{V: [3]int{d, b, c}})
			}
		}
	}

	mesh.CalculateBounds()
	return mesh
}
