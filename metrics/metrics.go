package metrics

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/lvlath-labs/uvwrap/geom"
	"github.com/lvlath-labs/uvwrap/mesh"
)

// eigenFloor is the minimum eigenvalue Compute divides by when scoring
// stretch, matching the reference formula's 1e-12 guard.
const eigenFloor = 1e-12

// Compute scores mesh m's current UV parameterization.
func Compute(m *mesh.Mesh, opts ...Option) (*Report, error) {
	if m == nil {
		return nil, ErrNilMesh
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	avg, max := computeStretch(m)
	cov := computeCoverage(m, o.CoverageResolution)
	dist := computeAngleDistortion(m)

	return &Report{
		AvgStretch:      avg,
		MaxStretch:      max,
		Coverage:        cov,
		AngleDistortion: dist,
	}, nil
}

// computeStretch returns the mean and max per-triangle stretch, the
// ratio of the largest to smallest singular value of the UV-to-3D
// Jacobian, obtained from the closed-form eigenvalues of the
// symmetric 2x2 matrix J^T J.
func computeStretch(m *mesh.Mesh) (avg, maxStretch float64) {
	f := m.NumTriangles()
	if f == 0 {
		return 1, 1
	}
	sum := 0.0
	count := 0
	for fi := 0; fi < f; fi++ {
		s, ok := triangleStretch(m, int32(fi))
		if !ok {
			s = 1
		}
		sum += s
		if s > maxStretch {
			maxStretch = s
		}
		count++
	}
	if count == 0 {
		return 1, 1
	}
	return sum / float64(count), maxStretch
}

// triangleStretch computes the stretch of one triangle. ok is false
// when the UV triangle is degenerate (zero signed area), in which
// case the caller substitutes a neutral stretch of 1.0.
func triangleStretch(m *mesh.Mesh, fi int32) (stretch float64, ok bool) {
	a, b, c := m.Triangle(fi)
	p0, p1, p2 := geom.Position(m, a), geom.Position(m, b), geom.Position(m, c)
	u0x, u0y := m.UVAt(a)
	u1x, u1y := m.UVAt(b)
	u2x, u2y := m.UVAt(c)

	m00 := float64(u1x - u0x)
	m01 := float64(u2x - u0x)
	m10 := float64(u1y - u0y)
	m11 := float64(u2y - u0y)
	det := m00*m11 - m01*m10
	if math.Abs(det) < eigenFloor {
		return 1, false
	}

	// Invert the 2x2 UV-difference matrix M.
	invDet := 1 / det
	i00, i01 := m11*invDet, -m01*invDet
	i10, i11 := -m10*invDet, m00*invDet

	e0 := r3.Sub(p1, p0)
	e1 := r3.Sub(p2, p0)

	// J = [e0 e1] * M^-1, columns j0, j1 in R^3.
	j0 := r3.Vec{
		X: e0.X*i00 + e1.X*i10,
		Y: e0.Y*i00 + e1.Y*i10,
		Z: e0.Z*i00 + e1.Z*i10,
	}
	j1 := r3.Vec{
		X: e0.X*i01 + e1.X*i11,
		Y: e0.Y*i01 + e1.Y*i11,
		Z: e0.Z*i01 + e1.Z*i11,
	}

	// J^T J is the symmetric 2x2 [[a,b],[b,c]].
	a2 := r3.Dot(j0, j0)
	b2 := r3.Dot(j0, j1)
	c2 := r3.Dot(j1, j1)

	trace := a2 + c2
	det2 := a2*c2 - b2*b2
	disc := math.Max(trace*trace/4-det2, 0)
	root := math.Sqrt(disc)
	eigMax := trace/2 + root
	eigMin := trace/2 - root
	if eigMin < 0 {
		eigMin = 0
	}

	return math.Sqrt(eigMax / math.Max(eigMin, eigenFloor)), true
}

// computeCoverage rasterizes every triangle's UV footprint onto a
// resolution x resolution grid via a barycentric membership test and
// reports the occupied fraction.
func computeCoverage(m *mesh.Mesh, resolution int) float64 {
	if resolution < 1 {
		resolution = 1
	}
	grid := make([]bool, resolution*resolution)
	occupied := 0

	for fi := 0; fi < m.NumTriangles(); fi++ {
		a, b, c := m.Triangle(int32(fi))
		u0x, u0y := m.UVAt(a)
		u1x, u1y := m.UVAt(b)
		u2x, u2y := m.UVAt(c)
		rasterizeTriangle(grid, resolution, float64(u0x), float64(u0y), float64(u1x), float64(u1y), float64(u2x), float64(u2y), &occupied)
	}

	return float64(occupied) / float64(resolution*resolution)
}

func rasterizeTriangle(grid []bool, resolution int, u0, v0, u1, v1, u2, v2 float64, occupied *int) {
	minU := math.Max(0, math.Min(u0, math.Min(u1, u2)))
	maxU := math.Min(1, math.Max(u0, math.Max(u1, u2)))
	minV := math.Max(0, math.Min(v0, math.Min(v1, v2)))
	maxV := math.Min(1, math.Max(v0, math.Max(v1, v2)))

	denom := (v1-v2)*(u0-u2) + (u2-u1)*(v0-v2)
	if math.Abs(denom) < 1e-12 {
		return
	}

	last := float64(resolution - 1)
	x0 := int(minU * last)
	x1 := int(maxU * last)
	y0 := int(minV * last)
	y1 := int(maxV * last)

	for y := y0; y <= y1; y++ {
		v := float64(y) / last
		for x := x0; x <= x1; x++ {
			u := float64(x) / last
			la := ((v1-v2)*(u-u2) + (u2-u1)*(v-v2)) / denom
			lb := ((v2-v0)*(u-u2) + (u0-u2)*(v-v2)) / denom
			lc := 1 - la - lb
			if la >= 0 && lb >= 0 && lc >= 0 {
				idx := y*resolution + x
				if !grid[idx] {
					grid[idx] = true
					*occupied++
				}
			}
		}
	}
}

// computeAngleDistortion returns the largest absolute difference, in
// radians, between a triangle's 3D interior angle and its UV interior
// angle over all triangles and all three corners.
func computeAngleDistortion(m *mesh.Mesh) float64 {
	maxErr := 0.0
	for fi := 0; fi < m.NumTriangles(); fi++ {
		a, b, c := m.Triangle(int32(fi))
		p0, p1, p2 := geom.Position(m, a), geom.Position(m, b), geom.Position(m, c)
		u0x, u0y := m.UVAt(a)
		u1x, u1y := m.UVAt(b)
		u2x, u2y := m.UVAt(c)
		q0 := r3.Vec{X: float64(u0x), Y: float64(u0y)}
		q1 := r3.Vec{X: float64(u1x), Y: float64(u1y)}
		q2 := r3.Vec{X: float64(u2x), Y: float64(u2y)}

		a0 := geom.AngleBetween(r3.Sub(p1, p0), r3.Sub(p2, p0))
		a1 := geom.AngleBetween(r3.Sub(p0, p1), r3.Sub(p2, p1))
		a2 := geom.AngleBetween(r3.Sub(p0, p2), r3.Sub(p1, p2))

		b0 := geom.AngleBetween(r3.Sub(q1, q0), r3.Sub(q2, q0))
		b1 := geom.AngleBetween(r3.Sub(q0, q1), r3.Sub(q2, q1))
		b2 := geom.AngleBetween(r3.Sub(q0, q2), r3.Sub(q1, q2))

		errs := [3]float64{
			math.Abs(a0 - b0),
			math.Abs(a1 - b1),
			math.Abs(a2 - b2),
		}
		for _, e := range errs {
			if e > maxErr {
				maxErr = e
			}
		}
	}
	return maxErr
}
