package seam

import (
	"context"
	"errors"
	"sort"
)

// Sentinel errors for seam detection.
var (
	// ErrNilMesh is returned when a nil mesh or topology is passed to Detect.
	ErrNilMesh = errors.New("seam: mesh or topology is nil")
)

// Set is an immutable, sorted set of edge indices (indices into a
// mesh.TopologyInfo.Edges/EdgeFaces slice).
type Set struct {
	edges []int32 // sorted, deduplicated
}

// newSet builds a Set from an unordered, possibly-duplicated slice.
func newSet(edges []int32) *Set {
	if len(edges) == 0 {
		return &Set{}
	}
	dedup := make(map[int32]struct{}, len(edges))
	for _, e := range edges {
		dedup[e] = struct{}{}
	}
	sorted := make([]int32, 0, len(dedup))
	for e := range dedup {
		sorted = append(sorted, e)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	return &Set{edges: sorted}
}

// Contains reports whether edgeIdx is a seam.
func (s *Set) Contains(edgeIdx int32) bool {
	if s == nil {
		return false
	}
	i := sort.Search(len(s.edges), func(i int) bool { return s.edges[i] >= edgeIdx })
	return i < len(s.edges) && s.edges[i] == edgeIdx
}

// Indices returns the seam edge indices in ascending order. The
// returned slice must not be mutated by the caller.
func (s *Set) Indices() []int32 {
	if s == nil {
		return nil
	}
	return s.edges
}

// Len returns the number of seam edges.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.edges)
}

// Options configures Detect.
type Options struct {
	// Ctx allows cancellation of long-running detection on very large
	// meshes; checked between the dihedral-angle and angular-defect
	// passes.
	Ctx context.Context
}

// Option configures Detect via a functional argument.
type Option func(*Options)

// DefaultOptions returns the zero-value Options with Ctx defaulted to
// context.Background().
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// SpanningTree is the informational BFS spanning tree of the dual
// (face-adjacency) graph. It is retained as a structural diagnostic
// and is never consulted by Detect to gate seam membership.
type SpanningTree struct {
	// TreeEdges holds the topology edge indices selected by the BFS
	// (i.e. the edge that connected each newly-discovered face to the
	// tree).
	TreeEdges []int32
}
