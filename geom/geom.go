package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/lvlath-labs/uvwrap/mesh"
)

// DegenerateAreaEpsilon is the twice-area threshold below which a
// triangle is treated as degenerate throughout the pipeline: skipped
// during LSCM assembly and dihedral-angle seam detection, and given a
// zero normal by FaceNormal.
const DegenerateAreaEpsilon = 1e-12

// Position returns the 3D position of vertex vid as an r3.Vec.
func Position(m *mesh.Mesh, vid int32) r3.Vec {
	x, y, z := m.Position(vid)
	return r3.Vec{X: float64(x), Y: float64(y), Z: float64(z)}
}

// TriangleVectors returns the two edge vectors e0 = pb-pa, e1 = pc-pa
// for triangle faceIdx, along with the vertex positions themselves.
func TriangleVectors(m *mesh.Mesh, faceIdx int32) (pa, pb, pc, e0, e1 r3.Vec) {
	a, b, c := m.Triangle(faceIdx)
	pa, pb, pc = Position(m, a), Position(m, b), Position(m, c)
	e0 = r3.Sub(pb, pa)
	e1 = r3.Sub(pc, pa)
	return pa, pb, pc, e0, e1
}

// TriangleArea2 returns twice the area of triangle faceIdx, i.e. the
// norm of the (non-unit) face normal e0 x e1.
func TriangleArea2(m *mesh.Mesh, faceIdx int32) float64 {
	_, _, _, e0, e1 := TriangleVectors(m, faceIdx)
	return r3.Norm(r3.Cross(e0, e1))
}

// FaceNormal returns the unit normal of triangle faceIdx and twice its
// area. If the triangle is degenerate (area2 below
// DegenerateAreaEpsilon), the returned normal is the zero vector.
func FaceNormal(m *mesh.Mesh, faceIdx int32) (n r3.Vec, area2 float64) {
	_, _, _, e0, e1 := TriangleVectors(m, faceIdx)
	cross := r3.Cross(e0, e1)
	area2 = r3.Norm(cross)
	if area2 < DegenerateAreaEpsilon {
		return r3.Vec{}, area2
	}
	return r3.Scale(1/area2, cross), area2
}

// VertexAngle returns the interior angle, in radians, at vertex
// vertexGlobal within triangle faceIdx. vertexGlobal must be one of
// the triangle's three vertices; otherwise 0 is returned.
func VertexAngle(m *mesh.Mesh, faceIdx int32, vertexGlobal int32) float64 {
	a, b, c := m.Triangle(faceIdx)
	var p0, p1, p2 r3.Vec
	switch vertexGlobal {
	case a:
		p0, p1, p2 = Position(m, a), Position(m, b), Position(m, c)
	case b:
		p0, p1, p2 = Position(m, b), Position(m, a), Position(m, c)
	case c:
		p0, p1, p2 = Position(m, c), Position(m, a), Position(m, b)
	default:
		return 0
	}
	return AngleBetween(r3.Sub(p1, p0), r3.Sub(p2, p0))
}

// AngleBetween returns the angle, in radians, between vectors u and
// v, clamping the cosine to [-1, 1] to absorb floating point drift.
func AngleBetween(u, v r3.Vec) float64 {
	nu, nv := r3.Norm(u), r3.Norm(v)
	if nu < 1e-12 || nv < 1e-12 {
		return 0
	}
	cos := r3.Dot(u, v) / (nu * nv)
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	return math.Acos(cos)
}
