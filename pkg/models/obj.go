package models

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/taigrr/planets/pkg/math3d"
)

// LoadOBJ loads a Wavefront OBJ file. Only v, vn, vt and f records are
// read; polygons are fan-triangulated.
func LoadOBJ(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open obj: %w", err)
	}
	defer f.Close()

	mesh, err := ParseOBJ(f, filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return mesh, nil
}

// objKey identifies one v/vt/vn combination; -1 means absent.
type objKey struct {
	v, vt, vn int
}

// ParseOBJ reads OBJ data from r. Vertices are deduplicated per unique
// v/vt/vn triple. Missing normals are computed from the faces.
func ParseOBJ(r io.Reader, name string) (*Mesh, error) {
	var (
		positions []math3d.Vec3
		normals   []math3d.Vec3
		uvs       []math3d.Vec2
		lookup    = make(map[objKey]int)
		mesh      = NewMesh(name)
		hasNormal bool
	)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		fields := strings.Fields(line)

		switch fields[0] {
		case "v":
			p, err := parseFloats(fields[1:], 3)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			positions = append(positions, math3d.V3(p[0], p[1], p[2]))
		case "vn":
			n, err := parseFloats(fields[1:], 3)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			normals = append(normals, math3d.V3(n[0], n[1], n[2]))
		case "vt":
			t, err := parseFloats(fields[1:], 2)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			uvs = append(uvs, math3d.V2(t[0], t[1]))
		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: face needs at least 3 vertices", lineNo)
			}
			idx := make([]int, 0, len(fields)-1)
			for _, ref := range fields[1:] {
				key, err := parseFaceRef(ref, len(positions), len(uvs), len(normals))
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNo, err)
				}
				vi, ok := lookup[key]
				if !ok {
					v := MeshVertex{Position: positions[key.v]}
					if key.vt >= 0 {
						v.UV = uvs[key.vt]
					}
					if key.vn >= 0 {
						v.Normal = normals[key.vn]
						hasNormal = true
					}
					vi = len(mesh.Vertices)
					mesh.Vertices = append(mesh.Vertices, v)
					lookup[key] = vi
				}
				idx = append(idx, vi)
			}
			for i := 1; i+1 < len(idx); i++ {
				mesh.Faces = append(mesh.Faces, Face{V: [3]int{idx[0], idx[i], idx[i+1]}})
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read obj: %w", err)
	}
	if len(mesh.Faces) == 0 {
		return nil, ErrNoGeometry
	}

	if !hasNormal {
		mesh.CalculateSmoothNormals()
	}
	mesh.CalculateBounds()
	return mesh, nil
}

func parseFloats(fields []string, n int) ([]float64, error) {
	if len(fields) < n {
		return nil, fmt.Errorf("expected %d values, got %d", n, len(fields))
	}
	out := make([]float64, n)
	for i := range n {
		f, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", fields[i], err)
		}
		out[i] = f
	}
	return out, nil
}

// parseFaceRef parses "v", "v/vt", "v//vn" or "v/vt/vn" into zero-based
// indices. Negative OBJ indices count back from the last element.
func parseFaceRef(ref string, nv, nvt, nvn int) (objKey, error) {
	key := objKey{v: -1, vt: -1, vn: -1}
	parts := strings.Split(ref, "/")

	var err error
	if key.v, err = resolveIndex(parts[0], nv); err != nil {
		return key, fmt.Errorf("vertex %q: %w", ref, err)
	}
	if len(parts) > 1 && parts[1] != "" {
		if key.vt, err = resolveIndex(parts[1], nvt); err != nil {
			return key, fmt.Errorf("texcoord %q: %w", ref, err)
		}
	}
	if len(parts) > 2 && parts[2] != "" {
		if key.vn, err = resolveIndex(parts[2], nvn); err != nil {
			return key, fmt.Errorf("normal %q: %w", ref, err)
		}
	}
	return key, nil
}

func resolveIndex(s string, count int) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	switch {
	case i > 0:
		i--
	case i < 0:
		i += count
	default:
		return 0, fmt.Errorf("index 0 is invalid")
	}
	if i < 0 || i >= count {
		return 0, fmt.Errorf("index out of range")
	}
	return i, nil
}
