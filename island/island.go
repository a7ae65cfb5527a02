package island

import (
	"github.com/lvlath-labs/uvwrap/mesh"
	"github.com/lvlath-labs/uvwrap/seam"
)

// walker encapsulates mutable flood-fill state, mirroring the
// queue/visited/result shape used by this codebase's other graph
// walks.
type walker struct {
	m        *mesh.Mesh
	edgeIdx  map[[2]int32]int32
	topo     *mesh.TopologyInfo
	seams    *seam.Set
	visited  []bool
	queue    []int32
	assigned []int32
}

// Segment partitions m's triangles into UV islands by flood-filling
// the dual graph, refusing to cross any edge in seams or any boundary
// edge.
//
// Returns (nil, ErrNilMesh) if m or topo is nil. A nil seams is
// treated as an empty set (no cuts beyond mesh boundaries).
func Segment(m *mesh.Mesh, topo *mesh.TopologyInfo, seams *seam.Set) (*Map, error) {
	if m == nil || topo == nil {
		return nil, ErrNilMesh
	}
	f := m.NumTriangles()
	w := &walker{
		m:        m,
		topo:     topo,
		seams:    seams,
		visited:  make([]bool, f),
		assigned: make([]int32, f),
		edgeIdx:  buildEdgeIndex(topo),
	}
	for i := range w.assigned {
		w.assigned[i] = -1
	}

	var next int32
	for start := 0; start < f; start++ {
		if w.visited[start] {
			continue
		}
		w.floodFill(int32(start), next)
		next++
	}

	return &Map{FaceIsland: w.assigned, K: next}, nil
}

// floodFill runs one BFS component starting at root, labeling every
// reached face with id.
func (w *walker) floodFill(root, id int32) {
	w.visited[root] = true
	w.assigned[root] = id
	w.queue = append(w.queue[:0], root)

	for len(w.queue) > 0 {
		cur := w.queue[0]
		w.queue = w.queue[1:]

		for _, nb := range w.neighbors(cur) {
			if w.visited[nb] {
				continue
			}
			w.visited[nb] = true
			w.assigned[nb] = id
			w.queue = append(w.queue, nb)
		}
	}
}

// neighbors returns the faces reachable from face fi across its own
// three edges, in canonical (a,b),(b,c),(c,a) order, skipping seam and
// boundary edges.
func (w *walker) neighbors(fi int32) []int32 {
	a, b, c := w.m.Triangle(fi)
	var out []int32
	for _, e := range [3][2]int32{{a, b}, {b, c}, {c, a}} {
		key := canonicalEdge(e[0], e[1])
		ei, ok := w.edgeIdx[key]
		if !ok {
			continue
		}
		if w.seams.Contains(ei) {
			continue
		}
		ef := w.topo.EdgeFaces[ei]
		f0, f1 := ef[0], ef[1]
		if f0 < 0 || f1 < 0 {
			continue // boundary edge, implicit cut
		}
		nb := f0
		if nb == fi {
			nb = f1
		}
		out = append(out, nb)
	}
	return out
}

func buildEdgeIndex(topo *mesh.TopologyInfo) map[[2]int32]int32 {
	idx := make(map[[2]int32]int32, len(topo.Edges))
	for i, e := range topo.Edges {
		idx[e] = int32(i)
	}
	return idx
}

func canonicalEdge(a, b int32) [2]int32 {
	if a < b {
		return [2]int32{a, b}
	}
	return [2]int32{b, a}
}
