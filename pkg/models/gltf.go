package models

import (
	"fmt"
	"path/filepath"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"github.com/taigrr/planets/pkg/math3d"
)

// GLTFLoader loads GLTF/GLB files into Mesh format.
type GLTFLoader struct {
	// CalculateNormals generates smooth normals when the file has none.
	CalculateNormals bool
	// Normalize recenters the mesh and scales it to unit radius.
	Normalize bool
}

// NewGLTFLoader creates a new GLTF loader with default options.
func NewGLTFLoader() *GLTFLoader {
	return &GLTFLoader{
		CalculateNormals: true,
		Normalize:        true,
	}
}

// LoadGLB loads a GLTF or binary GLTF (.glb) file with default options.
func LoadGLB(path string) (*Mesh, error) {
	return NewGLTFLoader().Load(path)
}

// Load loads a GLTF or GLB file and merges every triangle primitive of
// every mesh into one Mesh.
func (l *GLTFLoader) Load(path string) (*Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}

	mesh := NewMesh(filepath.Base(path))
	for _, m := range doc.Meshes {
		for _, prim := range m.Primitives {
			if err := appendPrimitive(doc, prim, mesh); err != nil {
				return nil, fmt.Errorf("process mesh %q: %w", m.Name, err)
			}
		}
	}
	if len(mesh.Faces) == 0 {
		return nil, fmt.Errorf("load %s: %w", path, ErrNoGeometry)
	}

	if l.CalculateNormals && !mesh.HasNormals() {
		mesh.CalculateSmoothNormals()
	}
	if l.Normalize {
		mesh.Normalize()
	}
	mesh.CalculateBounds()

	return mesh, nil
}

// appendPrimitive adds one primitive's vertices and faces to mesh.
// Non-triangle primitives (lines, points, strips) are skipped.
func appendPrimitive(doc *gltf.Document, prim *gltf.Primitive, mesh *Mesh) error {
	if prim.Mode != gltf.PrimitiveTriangles {
		return nil
	}

	posIdx, ok := prim.Attributes[gltf.POSITION]
	if !ok {
		return nil
	}
	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return fmt.Errorf("read positions: %w", err)
	}

	var normals [][3]float32
	if idx, ok := prim.Attributes[gltf.NORMAL]; ok {
		normals, err = modeler.ReadNormal(doc, doc.Accessors[idx], nil)
		if err != nil {
			return fmt.Errorf("read normals: %w", err)
		}
	}

	var uvs [][2]float32
	if idx, ok := prim.Attributes[gltf.TEXCOORD_0]; ok {
		uvs, err = modeler.ReadTextureCoord(doc, doc.Accessors[idx], nil)
		if err != nil {
			return fmt.Errorf("read uvs: %w", err)
		}
	}

	base := len(mesh.Vertices)
	for i, p := range positions {
		v := MeshVertex{Position: vec3(p)}
		if i < len(normals) {
			v.Normal = vec3(normals[i])
		}
		if i < len(uvs) {
			// GLTF uses top-left origin (V=0 at top), flip V for bottom-left origin
			v.UV = math3d.V2(float64(uvs[i][0]), 1-float64(uvs[i][1]))
		}
		mesh.Vertices = append(mesh.Vertices, v)
	}

	var indices []uint32
	if prim.Indices != nil {
		indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
		if err != nil {
			return fmt.Errorf("read indices: %w", err)
		}
	} else {
		indices = make([]uint32, len(positions))
		for i := range indices {
			indices[i] = uint32(i)
		}
	}

	// GLTF front faces are counter-clockwise, which is what the pipeline
	// expects, so indices are used as-is.
	for i := 0; i+2 < len(indices); i += 3 {
		f := Face{V: [3]int{
			base + int(indices[i]),
			base + int(indices[i+1]),
			base + int(indices[i+2]),
		}}
		if f.V[0] >= len(mesh.Vertices) || f.V[1] >= len(mesh.Vertices) || f.V[2] >= len(mesh.Vertices) {
			return fmt.Errorf("face %d: index out of range", i/3)
		}
		mesh.Faces = append(mesh.Faces, f)
	}

	return nil
}

func vec3(f [3]float32) math3d.Vec3 {
	return math3d.V3(float64(f[0]), float64(f[1]), float64(f[2]))
}
