package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/taigrr/planets/pkg/math3d"
)

func quadMesh() *Mesh {
	m := NewMesh("quad")
	m.Vertices = []MeshVertex{
		{Position: math3d.V3(0, 0, 0)},
		{Position: math3d.V3(2, 0, 0)},
		{Position: math3d.V3(2, 2, 0)},
		{Position: math3d.V3(0, 2, 0)},
	}
	m.Faces = []Face{
		{V: [3]int{0, 1, 2}},
		{V: [3]int{0, 2, 3}},
	}
	return m
}

func TestMeshBounds(t *testing.T) {
	m := quadMesh()
	m.CalculateBounds()

	assert.Equal(t, math3d.V3(0, 0, 0), m.BoundsMin)
	assert.Equal(t, math3d.V3(2, 2, 0), m.BoundsMax)
	assert.Equal(t, math3d.V3(1, 1, 0), m.Center())
	assert.Equal(t, math3d.V3(2, 2, 0), m.Size())
}

func TestMeshSmoothNormals(t *testing.T) {
	m := quadMesh()
	assert.False(t, m.HasNormals())

	m.CalculateSmoothNormals()
	assert.True(t, m.HasNormals())
	for i, v := range m.Vertices {
		assert.InDelta(t, 1.0, v.Normal.Z, 1e-9, "vertex %d", i)
	}
}

func TestMeshNormalize(t *testing.T) {
	m := quadMesh()
	m.Normalize()

	assert.InDelta(t, 1.0, m.Radius(), 1e-9)
	assert.InDelta(t, 0.0, m.Center().Len(), 1e-9)
}

func TestMeshNormalizeEmpty(t *testing.T) {
	m := NewMesh("empty")
	m.Normalize()
	assert.Zero(t, m.Radius())
}

func TestMeshAccessors(t *testing.T) {
	m := quadMesh()
	m.Vertices[2].UV = math3d.V2(1, 1)

	assert.Equal(t, 4, m.VertexCount())
	assert.Equal(t, 2, m.TriangleCount())
	assert.Equal(t, [3]int{0, 2, 3}, m.GetFace(1))

	pos, _, uv := m.GetVertex(2)
	assert.Equal(t, math3d.V3(2, 2, 0), pos)
	assert.Equal(t, math3d.V2(1, 1), uv)
}
