package models

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTriangleGLTF writes a single-triangle .gltf with an embedded buffer.
func writeTriangleGLTF(t *testing.T, positions [][3]float32) string {
	t.Helper()

	var buf bytes.Buffer
	for _, p := range positions {
		require.NoError(t, binary.Write(&buf, binary.LittleEndian, p))
	}
	uri := "data:application/octet-stream;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())

	doc := fmt.Sprintf(`{
  "asset": {"version": "2.0"},
  "buffers": [{"byteLength": %d, "uri": %q}],
  "bufferViews": [{"buffer": 0, "byteOffset": 0, "byteLength": %d}],
  "accessors": [{"bufferView": 0, "componentType": 5126, "count": %d, "type": "VEC3"}],
  "meshes": [{"name": "tri", "primitives": [{"attributes": {"POSITION": 0}}]}]
}`, buf.Len(), uri, buf.Len(), len(positions))

	path := filepath.Join(t.TempDir(), "tri.gltf")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))
	return path
}

func TestLoadGLBInvalidPath(t *testing.T) {
	_, err := LoadGLB("/nonexistent/path.glb")
	assert.Error(t, err)
}

func TestGLTFLoaderCreation(t *testing.T) {
	loader := NewGLTFLoader()
	require.NotNil(t, loader)
	assert.True(t, loader.CalculateNormals)
	assert.True(t, loader.Normalize)
}

func TestGLTFLoaderTriangle(t *testing.T) {
	path := writeTriangleGLTF(t, [][3]float32{{0, 0, 0}, {2, 0, 0}, {0, 2, 0}})

	loader := &GLTFLoader{CalculateNormals: true}
	mesh, err := loader.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "tri.gltf", mesh.Name)
	assert.Equal(t, 3, mesh.VertexCount())
	assert.Equal(t, 1, mesh.TriangleCount())
	assert.Equal(t, [3]int{0, 1, 2}, mesh.GetFace(0))
	assert.InDelta(t, 2.0, mesh.Vertices[1].Position.X, 1e-6)

	// CCW in the XY plane faces +Z.
	assert.InDelta(t, 1.0, mesh.Vertices[0].Normal.Z, 1e-9)
}

func TestGLTFLoaderNormalize(t *testing.T) {
	path := writeTriangleGLTF(t, [][3]float32{{10, 10, 0}, {14, 10, 0}, {10, 14, 0}})

	mesh, err := LoadGLB(path)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, mesh.Radius(), 1e-6)
}

func TestGLTFLoaderNoGeometry(t *testing.T) {
	path := writeTriangleGLTF(t, [][3]float32{{0, 0, 0}, {1, 0, 0}})

	_, err := LoadGLB(path)
	assert.ErrorIs(t, err, ErrNoGeometry)
}
