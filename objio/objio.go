package objio

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/lvlath-labs/uvwrap/mesh"
)

// Load reads a Wavefront OBJ file at path, keeping only vertex
// positions (v) and triangular faces (f); any existing texture
// coordinates in the file are ignored since this pipeline computes
// its own. Faces with more than 3 vertices are rejected.
func Load(path string) (*mesh.Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("objio: open %s: %w", path, err)
	}
	defer f.Close()

	var vertices []float32
	var triangles []int32

	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, fmt.Errorf("objio: %s:%d: malformed vertex line", path, line)
			}
			for _, s := range fields[1:4] {
				v, err := strconv.ParseFloat(s, 32)
				if err != nil {
					return nil, fmt.Errorf("objio: %s:%d: %w", path, line, err)
				}
				vertices = append(vertices, float32(v))
			}
		case "f":
			if len(fields) != 4 {
				return nil, fmt.Errorf("objio: %s:%d: only triangular faces are supported", path, line)
			}
			for _, s := range fields[1:4] {
				idx, err := parseFaceIndex(s)
				if err != nil {
					return nil, fmt.Errorf("objio: %s:%d: %w", path, line, err)
				}
				triangles = append(triangles, int32(idx-1))
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("objio: read %s: %w", path, err)
	}

	m := mesh.New(vertices, triangles)
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("objio: %s: %w", path, err)
	}
	return m, nil
}

// parseFaceIndex extracts the vertex index from an OBJ face-vertex
// token, which may be "v", "v/vt", "v/vt/vn", or "v//vn".
func parseFaceIndex(token string) (int, error) {
	v := token
	if i := strings.IndexByte(token, '/'); i >= 0 {
		v = token[:i]
	}
	return strconv.Atoi(v)
}

// Save writes m to path as an OBJ file: one "v" line per vertex, one
// "vt" line per vertex UV, and one triangular "f" line per triangle,
// referencing matching v/vt indices (both 1-indexed).
func Save(path string, m *mesh.Mesh) error {
	if m == nil {
		return mesh.ErrNilMesh
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("objio: create %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	n := m.NumVertices()
	for i := 0; i < n; i++ {
		x, y, z := m.Position(int32(i))
		if _, err := fmt.Fprintf(w, "v %g %g %g\n", x, y, z); err != nil {
			return fmt.Errorf("objio: write %s: %w", path, err)
		}
	}
	for i := 0; i < n; i++ {
		u, v := m.UVAt(int32(i))
		if _, err := fmt.Fprintf(w, "vt %g %g\n", u, v); err != nil {
			return fmt.Errorf("objio: write %s: %w", path, err)
		}
	}
	for fi := 0; fi < m.NumTriangles(); fi++ {
		a, b, c := m.Triangle(int32(fi))
		if _, err := fmt.Fprintf(w, "f %d/%d %d/%d %d/%d\n", a+1, a+1, b+1, b+1, c+1, c+1); err != nil {
			return fmt.Errorf("objio: write %s: %w", path, err)
		}
	}
	return w.Flush()
}
