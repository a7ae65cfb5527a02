package seam

import (
	"math"

	"github.com/lvlath-labs/uvwrap/geom"
	"github.com/lvlath-labs/uvwrap/mesh"
)

const (
	// flatAngleDeg is the near-planar threshold below which a manifold
	// edge is never a seam candidate, regardless of the configured
	// angle threshold.
	flatAngleDeg = 5.0

	// antiParallelDot below this value the two face normals are
	// considered flipped (a normal-orientation artefact) and the edge
	// is skipped rather than marked a seam.
	antiParallelDot = -0.99
)

// Detect combines dihedral-angle seams and angular-defect
// augmentation into the final seam Set for m, given its topology and
// an angle threshold in degrees.
//
// Returns (nil, ErrNilMesh) if m or topo is nil.
func Detect(m *mesh.Mesh, topo *mesh.TopologyInfo, angleThresholdDeg float64, logger mesh.Logger, opts ...Option) (*Set, error) {
	if m == nil || topo == nil {
		return nil, ErrNilMesh
	}
	if logger == nil {
		logger = mesh.NopLogger{}
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	candidates := make(map[int32]struct{})

	// Dihedral-angle pass.
	for ei, ef := range topo.EdgeFaces {
		f0, f1 := ef[0], ef[1]
		if f0 < 0 || f1 < 0 {
			continue // boundary edge: implicit seam, never a dihedral candidate
		}
		n0, area0 := geom.FaceNormal(m, f0)
		n1, area1 := geom.FaceNormal(m, f1)
		if area0 < geom.DegenerateAreaEpsilon || area1 < geom.DegenerateAreaEpsilon {
			continue
		}
		dot := n0.X*n1.X + n0.Y*n1.Y + n0.Z*n1.Z
		if dot > 1 {
			dot = 1
		} else if dot < -1 {
			dot = -1
		}
		angleDeg := math.Acos(dot) * 180 / math.Pi
		if angleDeg < flatAngleDeg || dot < antiParallelDot {
			continue
		}
		if angleDeg > angleThresholdDeg {
			candidates[int32(ei)] = struct{}{}
		}
	}

	// cancellation check between passes, following the walker idiom's
	// once-per-loop select against ctx.Done()
	select {
	case <-o.Ctx.Done():
		return nil, o.Ctx.Err()
	default:
	}

	// Angular-defect augmentation. 2*pi minus the incident interior
	// angles is only a meaningful curvature measure for a vertex whose
	// triangle fan closes up on itself; a boundary vertex's fan is
	// necessarily partial; every boundary edge is already an implicit
	// seam per rule (2), so boundary vertices are skipped here rather
	// than reported as spuriously "cone-like".
	vertexFaces := buildVertexFaces(m)
	vertexEdges := buildVertexEdges(topo)
	thresholdRad := angleThresholdDeg * math.Pi / 180

	v := m.NumVertices()
	for vid := 0; vid < v; vid++ {
		if vid >= len(vertexEdges) {
			break // trailing vertices used by no triangle have no edges to mark
		}
		if hasBoundaryEdge(topo, vertexEdges[vid]) {
			continue
		}
		defect := angularDefect(m, int32(vid), vertexFaces[vid])
		if defect > thresholdRad {
			for _, ei := range vertexEdges[vid] {
				candidates[ei] = struct{}{}
			}
		}
	}

	// Boundary edges are implicit seams already; exclude them from the
	// explicit set so callers don't double-count them.
	final := make([]int32, 0, len(candidates))
	for ei := range candidates {
		if topo.EdgeFaces[ei][1] != -1 {
			final = append(final, ei)
		}
	}

	set := newSet(final)
	logger.Printf("seam: detected %d seam edges (threshold=%.1f deg)", set.Len(), angleThresholdDeg)
	return set, nil
}

// hasBoundaryEdge reports whether any of the given topology edge
// indices is a boundary edge (fewer than two incident faces).
func hasBoundaryEdge(topo *mesh.TopologyInfo, edges []int32) bool {
	for _, ei := range edges {
		if topo.EdgeFaces[ei][1] == -1 {
			return true
		}
	}
	return false
}

// angularDefect computes 2*pi minus the sum of interior angles at
// vertex vid across its incident triangles.
func angularDefect(m *mesh.Mesh, vid int32, faces []int32) float64 {
	sum := 0.0
	for _, fi := range faces {
		sum += geom.VertexAngle(m, fi, vid)
	}
	return 2*math.Pi - sum
}

// buildVertexFaces returns, for each vertex id, the list of triangle
// indices incident to it.
func buildVertexFaces(m *mesh.Mesh) [][]int32 {
	v := m.NumVertices()
	out := make([][]int32, v)
	for fi := 0; fi < m.NumTriangles(); fi++ {
		a, b, c := m.Triangle(int32(fi))
		out[a] = append(out[a], int32(fi))
		out[b] = append(out[b], int32(fi))
		out[c] = append(out[c], int32(fi))
	}
	return out
}

// buildVertexEdges returns, for each vertex id, the list of topology
// edge indices incident to it.
func buildVertexEdges(topo *mesh.TopologyInfo) [][]int32 {
	maxV := int32(0)
	for _, e := range topo.Edges {
		if e[0] > maxV {
			maxV = e[0]
		}
		if e[1] > maxV {
			maxV = e[1]
		}
	}
	out := make([][]int32, maxV+1)
	for ei, e := range topo.Edges {
		out[e[0]] = append(out[e[0]], int32(ei))
		out[e[1]] = append(out[e[1]], int32(ei))
	}
	return out
}

// DualSpanningTree computes a BFS spanning tree of the dual
// (face-adjacency) graph starting at face 0, over manifold edges
// only. It is retained purely as a structural diagnostic: Detect does
// not consult it.
func DualSpanningTree(m *mesh.Mesh, topo *mesh.TopologyInfo) (*SpanningTree, error) {
	if m == nil || topo == nil {
		return nil, ErrNilMesh
	}
	f := m.NumTriangles()
	if f == 0 {
		return &SpanningTree{}, nil
	}

	type dualEdge struct {
		neighbor int32
		edgeIdx  int32
	}
	adj := make([][]dualEdge, f)
	for ei, ef := range topo.EdgeFaces {
		f0, f1 := ef[0], ef[1]
		if f0 < 0 || f1 < 0 {
			continue
		}
		adj[f0] = append(adj[f0], dualEdge{neighbor: f1, edgeIdx: int32(ei)})
		adj[f1] = append(adj[f1], dualEdge{neighbor: f0, edgeIdx: int32(ei)})
	}

	visited := make([]bool, f)
	queue := make([]int32, 0, f)
	queue = append(queue, 0)
	visited[0] = true
	var tree []int32

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, ne := range adj[cur] {
			if visited[ne.neighbor] {
				continue
			}
			visited[ne.neighbor] = true
			tree = append(tree, ne.edgeIdx)
			queue = append(queue, ne.neighbor)
		}
	}

	return &SpanningTree{TreeEdges: tree}, nil
}
