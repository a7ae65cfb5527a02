package mesh

import "sort"

// TopologyInfo enumerates the unique undirected edges of a mesh and
// the (up to two) faces incident to each one. It is built once by
// BuildTopology and treated as read-only by every later stage.
type TopologyInfo struct {
	// Edges holds E ordered pairs (v0, v1) with v0 < v1; each
	// undirected edge appears exactly once.
	Edges [][2]int32

	// EdgeFaces is parallel to Edges: (f0, f1) with f0 always valid
	// and f1 == -1 for boundary edges.
	EdgeFaces [][2]int32

	// NonManifold lists indices into Edges/EdgeFaces for edges that
	// were seen incident to more than two faces. Those edges keep
	// their first two incident faces; the rest are dropped with a
	// logged warning.
	NonManifold []int32
}

// NumEdges returns E.
func (t *TopologyInfo) NumEdges() int {
	if t == nil {
		return 0
	}
	return len(t.Edges)
}

type edgeRecord struct {
	face0, face1 int32
	extra        int // count of additional incident faces beyond the first two
}

// BuildTopology enumerates every triangle's three canonical
// (min,max) edges, records the (up to two) incident faces per edge,
// and reports non-manifold edges (more than two incident faces)
// through logger without failing the build.
//
// Returns (nil, ErrNilMesh) for a nil mesh and (nil, ErrEmptyMesh) for
// a mesh with zero triangles: invalid input is a no-op, not a panic.
func BuildTopology(m *Mesh, logger Logger) (*TopologyInfo, error) {
	if m == nil {
		return nil, ErrNilMesh
	}
	if logger == nil {
		logger = NopLogger{}
	}
	f := m.NumTriangles()
	if f == 0 {
		return nil, ErrEmptyMesh
	}

	edgeMap := make(map[[2]int32]*edgeRecord, f*3)
	for fi := 0; fi < f; fi++ {
		a, b, c := m.Triangle(int32(fi))
		for _, e := range [3][2]int32{{a, b}, {b, c}, {c, a}} {
			key := canonicalEdge(e[0], e[1])
			rec, ok := edgeMap[key]
			if !ok {
				edgeMap[key] = &edgeRecord{face0: int32(fi), face1: -1}
				continue
			}
			switch {
			case rec.face1 == -1:
				rec.face1 = int32(fi)
			default:
				rec.extra++
				logger.Printf("mesh: non-manifold edge (%d,%d): face %d ignored (already has %d,%d)",
					key[0], key[1], fi, rec.face0, rec.face1)
			}
		}
	}

	keys := make([][2]int32, 0, len(edgeMap))
	for k := range edgeMap {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i][0] != keys[j][0] {
			return keys[i][0] < keys[j][0]
		}
		return keys[i][1] < keys[j][1]
	})

	topo := &TopologyInfo{
		Edges:     make([][2]int32, len(keys)),
		EdgeFaces: make([][2]int32, len(keys)),
	}
	for i, k := range keys {
		rec := edgeMap[k]
		topo.Edges[i] = k
		topo.EdgeFaces[i] = [2]int32{rec.face0, rec.face1}
		if rec.extra > 0 {
			topo.NonManifold = append(topo.NonManifold, int32(i))
		}
	}
	return topo, nil
}

// canonicalEdge orders (a,b) so the smaller vertex index comes first.
func canonicalEdge(a, b int32) [2]int32 {
	if a < b {
		return [2]int32{a, b}
	}
	return [2]int32{b, a}
}

// ValidateTopology computes the Euler characteristic V - E + F and
// reports whether it matches 2 (the expected value for a closed
// genus-0 surface). A mismatch is a warning, not a failure: ok is
// still true unless m or topo is nil.
func ValidateTopology(m *Mesh, topo *TopologyInfo, logger Logger) (euler int, ok bool) {
	if m == nil || topo == nil {
		return 0, false
	}
	if logger == nil {
		logger = NopLogger{}
	}
	v := m.NumVertices()
	e := topo.NumEdges()
	f := m.NumTriangles()
	euler = v - e + f

	logger.Printf("mesh: topology V=%d E=%d F=%d euler=%d", v, e, f, euler)
	if euler != 2 {
		logger.Printf("mesh: non-standard Euler characteristic %d (expected 2 for a closed genus-0 surface; fine for open meshes or boundaries)", euler)
	}
	return euler, true
}
