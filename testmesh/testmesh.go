package testmesh

import (
	"math"

	"github.com/lvlath-labs/uvwrap/mesh"
)

// PlanarTriangle returns the single-triangle fixture: vertices
// (0,0,0), (1,0,0), (0,1,0).
func PlanarTriangle() *mesh.Mesh {
	return mesh.New(
		[]float32{
			0, 0, 0,
			1, 0, 0,
			0, 1, 0,
		},
		[]int32{0, 1, 2},
	)
}

// Tetrahedron returns a closed, outward-oriented unit tetrahedron: 4
// vertices, 4 triangles, Euler characteristic 2.
func Tetrahedron() *mesh.Mesh {
	return mesh.New(
		[]float32{
			0, 0, 0,
			1, 0, 0,
			0, 1, 0,
			0, 0, 1,
		},
		[]int32{
			0, 2, 1,
			0, 1, 3,
			0, 3, 2,
			1, 2, 3,
		},
	)
}

// Cube returns a closed, outward-oriented unit cube triangulated as
// 12 triangles (one diagonal per face), 8 vertices, 18 edges — enough
// to demonstrate 6 islands at a 60 degree seam threshold (cube-edge
// dihedral angle 90 degrees cuts, face-diagonal dihedral angle 0
// degrees does not).
func Cube() *mesh.Mesh {
	return mesh.New(
		[]float32{
			0, 0, 0, // 0
			1, 0, 0, // 1
			1, 1, 0, // 2
			0, 1, 0, // 3
			0, 0, 1, // 4
			1, 0, 1, // 5
			1, 1, 1, // 6
			0, 1, 1, // 7
		},
		[]int32{
			// bottom (z=0), outward -z
			0, 3, 2, 0, 2, 1,
			// top (z=1), outward +z
			4, 5, 6, 4, 6, 7,
			// front (y=0), outward -y
			0, 1, 5, 0, 5, 4,
			// back (y=1), outward +y
			3, 7, 6, 3, 6, 2,
			// left (x=0), outward -x
			0, 4, 7, 0, 7, 3,
			// right (x=1), outward +x
			1, 2, 6, 1, 6, 5,
		},
	)
}

// Strip returns the open two-triangle strip fixture sharing a single
// interior edge: 4 vertices, 5 edges (4 boundary, 1 interior), 2
// triangles, Euler characteristic 1.
func Strip() *mesh.Mesh {
	return mesh.New(
		[]float32{
			0, 0, 0,
			1, 0, 0,
			1, 1, 0,
			0, 1, 0,
		},
		[]int32{
			0, 1, 2,
			0, 2, 3,
		},
	)
}

// domeOffset is how far a capped cylinder's cap-center vertex is
// pushed along the axis away from its ring, turning an otherwise flat
// disk cap into a cone. A perfectly flat fan cap has zero angular
// defect at its center (its wedge angles sum to exactly 2*pi); doming
// it by roughly one radius gives the center enough cone-point
// curvature to clear a 60 degree seam threshold.
const domeOffset = 1.0

// Cylinder returns a cylindrical mesh with segments quads around its
// side, each split into two triangles. When capped is true, both ends
// are closed with a fan of triangles around a doomed center vertex
// (see domeOffset); otherwise the cylinder is an open tube with all
// boundary edges on the two rings.
func Cylinder(segments int, capped bool) *mesh.Mesh {
	if segments < 3 {
		segments = 3
	}
	const radius = 1.0
	const height = 2.0

	verts := make([]float32, 0, (2*segments+2)*3)
	appendVert := func(x, y, z float64) {
		verts = append(verts, float32(x), float32(y), float32(z))
	}

	for i := 0; i < segments; i++ {
		a := 2 * math.Pi * float64(i) / float64(segments)
		appendVert(radius*math.Cos(a), radius*math.Sin(a), 0)
	}
	for i := 0; i < segments; i++ {
		a := 2 * math.Pi * float64(i) / float64(segments)
		appendVert(radius*math.Cos(a), radius*math.Sin(a), height)
	}

	bottomCenter := int32(-1)
	topCenter := int32(-1)
	if capped {
		bottomCenter = int32(2 * segments)
		appendVert(0, 0, -domeOffset)
		topCenter = int32(2*segments + 1)
		appendVert(0, 0, height+domeOffset)
	}

	tris := make([]int32, 0, (2*segments+2*segments)*3)
	for i := 0; i < segments; i++ {
		j := (i + 1) % segments
		b0, b1 := int32(i), int32(j)
		t0, t1 := int32(segments+i), int32(segments+j)
		tris = append(tris, b0, b1, t0)
		tris = append(tris, b1, t1, t0)
	}
	if capped {
		for i := 0; i < segments; i++ {
			j := (i + 1) % segments
			b0, b1 := int32(i), int32(j)
			t0, t1 := int32(segments+i), int32(segments+j)
			tris = append(tris, bottomCenter, b1, b0)
			tris = append(tris, topCenter, t0, t1)
		}
	}

	return mesh.New(verts, tris)
}
