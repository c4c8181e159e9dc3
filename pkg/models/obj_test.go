package models

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const quadOBJ = `# unit quad
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
vt 0 0
vt 1 0
vt 1 1
vt 0 1
vn 0 0 1
f 1/1/1 2/2/1 3/3/1 4/4/1
`

func TestParseOBJQuad(t *testing.T) {
	mesh, err := ParseOBJ(strings.NewReader(quadOBJ), "quad")
	require.NoError(t, err)

	assert.Equal(t, 4, mesh.VertexCount())
	require.Equal(t, 2, mesh.TriangleCount())
	assert.Equal(t, [3]int{0, 1, 2}, mesh.GetFace(0))
	assert.Equal(t, [3]int{0, 2, 3}, mesh.GetFace(1))

	_, normal, uv := mesh.GetVertex(2)
	assert.Equal(t, 1.0, normal.Z)
	assert.Equal(t, 1.0, uv.X)
	assert.Equal(t, 1.0, uv.Y)
}

func TestParseOBJNegativeIndices(t *testing.T) {
	src := "v 0 0 0\nv 1 0 0\nv 0 1 0\nf -3 -2 -1\n"
	mesh, err := ParseOBJ(strings.NewReader(src), "neg")
	require.NoError(t, err)

	assert.Equal(t, [3]int{0, 1, 2}, mesh.GetFace(0))
	// No vn records: normals are computed.
	assert.InDelta(t, 1.0, mesh.Vertices[0].Normal.Z, 1e-9)
}

func TestParseOBJVertexNormalOnly(t *testing.T) {
	src := "v 0 0 0\nv 1 0 0\nv 0 1 0\nvn 0 0 -1\nf 1//1 2//1 3//1\n"
	mesh, err := ParseOBJ(strings.NewReader(src), "vn")
	require.NoError(t, err)
	assert.Equal(t, -1.0, mesh.Vertices[1].Normal.Z)
}

func TestParseOBJErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"bad float", "v 0 x 0\n"},
		{"short vertex", "v 0 0\n"},
		{"index zero", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 0 1 2\n"},
		{"index out of range", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 4\n"},
		{"two vertex face", "v 0 0 0\nv 1 0 0\nf 1 2\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseOBJ(strings.NewReader(tt.src), tt.name)
			assert.Error(t, err)
		})
	}
}

func TestParseOBJNoFaces(t *testing.T) {
	_, err := ParseOBJ(strings.NewReader("v 0 0 0\n"), "points")
	assert.ErrorIs(t, err, ErrNoGeometry)
}

func TestLoadOBJ(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quad.obj")
	require.NoError(t, os.WriteFile(path, []byte(quadOBJ), 0o644))

	mesh, err := LoadOBJ(path)
	require.NoError(t, err)
	assert.Equal(t, "quad.obj", mesh.Name)
	assert.Equal(t, 2, mesh.TriangleCount())

	_, err = LoadOBJ(filepath.Join(t.TempDir(), "missing.obj"))
	assert.Error(t, err)
}
