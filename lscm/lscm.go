package lscm

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/lvlath-labs/uvwrap/geom"
	"github.com/lvlath-labs/uvwrap/mesh"
)

// Fixed UV values LSCM pins its two boundary vertices to:
// pin0 -> (0,0), pin1 -> (1,0).
const (
	pin0U, pin0V = 0.0, 0.0
	pin1U, pin1V = 1.0, 0.0
)

// Parameterize computes the LSCM solution for the island described by
// faceIndices (global triangle indices into m). It builds a local
// vertex numbering, assembles the conformal-energy Gram operator,
// pins two boundary vertices, factors and solves, and normalizes the
// result to the unit square.
func Parameterize(m *mesh.Mesh, faceIndices []int32) (*Result, error) {
	if m == nil {
		return nil, ErrNilMesh
	}
	if len(faceIndices) == 0 {
		return nil, ErrTooFewFaces
	}

	globalToLocal := make(map[int32]int32, len(faceIndices)*3)
	localToGlobal := make([]int32, 0, len(faceIndices)*3)
	localOf := func(g int32) int32 {
		if li, ok := globalToLocal[g]; ok {
			return li
		}
		li := int32(len(localToGlobal))
		globalToLocal[g] = li
		localToGlobal = append(localToGlobal, g)
		return li
	}

	type localFace struct {
		la, lb, lc int32
		global     int32
	}
	faces := make([]localFace, 0, len(faceIndices))
	for _, fi := range faceIndices {
		a, b, c := m.Triangle(fi)
		faces = append(faces, localFace{la: localOf(a), lb: localOf(b), lc: localOf(c), global: fi})
	}

	n := len(localToGlobal)
	if n < 3 {
		return nil, ErrTooFewFaces
	}

	size := 2 * n
	A := mat.NewDense(size, size, nil)
	assembled := 0

	addBlock := func(i, j int32, s complex128) {
		ui, vi := int(i), n+int(i)
		uj, vj := int(j), n+int(j)
		sigma, tau := real(s), imag(s)
		A.Set(ui, uj, A.At(ui, uj)+sigma)
		A.Set(ui, vj, A.At(ui, vj)-tau)
		A.Set(vi, uj, A.At(vi, uj)+tau)
		A.Set(vi, vj, A.At(vi, vj)+sigma)
	}

	for _, lf := range faces {
		_, _, _, e0, e1 := geom.TriangleVectors(m, lf.global)
		normal := r3.Cross(e0, e1)
		area2 := r3.Norm(normal)
		if area2 < geom.DegenerateAreaEpsilon {
			continue
		}
		assembled++

		ex := r3.Scale(1/r3.Norm(e0), e0)
		nCrossEx := r3.Cross(normal, ex)
		ey := r3.Scale(1/r3.Norm(nCrossEx), nCrossEx)

		p2b := complex(r3.Dot(e0, ex), r3.Dot(e0, ey))
		p2c := complex(r3.Dot(e1, ex), r3.Dot(e1, ey))

		w0 := -(p2b + p2c)
		w1 := p2b
		w2 := p2c
		weight := complex(1/(0.5*area2), 0)

		locals := [3]int32{lf.la, lf.lb, lf.lc}
		coeffs := [3]complex128{w0, w1, w2}

		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				s := (weight * coeffs[i]) * cmplxConj(coeffs[j])
				addBlock(locals[i], locals[j], s)
			}
		}
	}

	if assembled == 0 {
		return nil, ErrAllDegenerate
	}

	pin0, pin1 := choosePins(m, localToGlobal, globalToLocal, faceIndices, n)

	rhs := mat.NewDense(size, 1, nil)
	fixed := []struct {
		idx int
		val float64
	}{
		{int(pin0), pin0U},
		{n + int(pin0), pin0V},
		{int(pin1), pin1U},
		{n + int(pin1), pin1V},
	}
	for _, fx := range fixed {
		for c := 0; c < size; c++ {
			A.Set(fx.idx, c, 0)
		}
		for r := 0; r < size; r++ {
			if r == fx.idx {
				continue
			}
			A.Set(r, fx.idx, 0)
		}
		A.Set(fx.idx, fx.idx, 1)
		rhs.Set(fx.idx, 0, fx.val)
	}

	var x mat.Dense
	if err := x.Solve(A, rhs); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSingularSystem, err)
	}

	uv := make([]float64, 2*n)
	for i := 0; i < n; i++ {
		uv[2*i] = x.At(i, 0)
		uv[2*i+1] = x.At(n+i, 0)
	}
	NormalizeToUnitSquare(uv)

	return &Result{UV: uv, LocalToGlobal: localToGlobal}, nil
}

// cmplxConj returns the complex conjugate of z.
func cmplxConj(z complex128) complex128 {
	return complex(real(z), -imag(z))
}

// choosePins picks the two local vertex indices LSCM pins: the first
// boundary vertex and the boundary vertex farthest from it in 3D
// squared distance, falling back to local 0 and local n/2 when the
// island has fewer than two boundary vertices.
func choosePins(m *mesh.Mesh, localToGlobal []int32, globalToLocal map[int32]int32, faceIndices []int32, n int) (pin0, pin1 int32) {
	boundary := FindBoundaryVertices(m, faceIndices)
	if len(boundary) < 2 {
		pin1 = 0
		if n > 1 {
			pin1 = int32(n / 2)
		}
		return 0, pin1
	}

	pin0 = globalToLocal[boundary[0]]
	p0 := geom.Position(m, localToGlobal[pin0])

	best := pin0
	maxD := -1.0
	for _, g := range boundary {
		l := globalToLocal[g]
		p := geom.Position(m, localToGlobal[l])
		d := r3.Norm(r3.Sub(p, p0))
		d *= d
		if d > maxD {
			maxD = d
			best = l
		}
	}
	return pin0, best
}

// FindBoundaryVertices returns the global vertex ids that lie on a
// boundary edge (an edge appearing in exactly one triangle) of the
// sub-mesh described by faceIndices, recomputed from that face list
// alone rather than reusing the mesh's global topology. Results are
// sorted ascending for determinism.
func FindBoundaryVertices(m *mesh.Mesh, faceIndices []int32) []int32 {
	if m == nil {
		return nil
	}
	count := make(map[[2]int32]int, len(faceIndices)*3)
	for _, fi := range faceIndices {
		a, b, c := m.Triangle(fi)
		for _, e := range [3][2]int32{{a, b}, {b, c}, {c, a}} {
			key := e
			if key[0] > key[1] {
				key[0], key[1] = key[1], key[0]
			}
			count[key]++
		}
	}

	seen := make(map[int32]struct{})
	for e, c := range count {
		if c == 1 {
			seen[e[0]] = struct{}{}
			seen[e[1]] = struct{}{}
		}
	}

	out := make([]int32, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// NormalizeToUnitSquare rescales the interleaved (u,v) buffer in
// place so its axis-aligned bounding box has min (0,0), preserving
// aspect ratio independently per axis. A near-zero range on either
// axis is treated as 1 to avoid division blow-up, matching the
// reference implementation this pipeline is derived from.
func NormalizeToUnitSquare(uv []float64) {
	if len(uv) == 0 {
		return
	}
	minU, maxU := math.Inf(1), math.Inf(-1)
	minV, maxV := math.Inf(1), math.Inf(-1)
	for i := 0; i < len(uv); i += 2 {
		u, v := uv[i], uv[i+1]
		if u < minU {
			minU = u
		}
		if u > maxU {
			maxU = u
		}
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}
	rangeU := maxU - minU
	rangeV := maxV - minV
	if rangeU < 1e-6 {
		rangeU = 1
	}
	if rangeV < 1e-6 {
		rangeV = 1
	}
	for i := 0; i < len(uv); i += 2 {
		uv[i] = (uv[i] - minU) / rangeU
		uv[i+1] = (uv[i+1] - minV) / rangeV
	}
}
