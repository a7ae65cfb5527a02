package lscm

import "errors"

// Sentinel errors for the LSCM solver.
var (
	// ErrNilMesh is returned when a nil mesh is passed to Parameterize.
	ErrNilMesh = errors.New("lscm: mesh is nil")

	// ErrTooFewFaces is returned when faceIndices selects fewer than
	// one triangle, or the resulting local vertex count is below 3.
	ErrTooFewFaces = errors.New("lscm: island has too few faces or vertices")

	// ErrAllDegenerate is returned when every triangle in the island
	// has area below the degenerate-area threshold, leaving nothing to
	// assemble.
	ErrAllDegenerate = errors.New("lscm: every triangle in the island is degenerate")

	// ErrSingularSystem is returned when the assembled operator cannot
	// be factored (singular or numerically indefinite past pivoting).
	ErrSingularSystem = errors.New("lscm: system is singular, cannot solve")
)

// Result is the outcome of parameterizing a single island: n local
// vertices, their interleaved (u,v) coordinates, and the local-to-
// global vertex index mapping needed to write UVs back into the
// mesh's shared buffer.
type Result struct {
	// UV holds 2n float64 scalars: UV[2*i], UV[2*i+1] is the (u,v) of
	// local vertex i.
	UV []float64

	// LocalToGlobal maps a local vertex index to its global mesh
	// vertex id.
	LocalToGlobal []int32
}

// N returns the number of local vertices in the result.
func (r *Result) N() int {
	if r == nil {
		return 0
	}
	return len(r.LocalToGlobal)
}
