// Package mesh defines the Mesh and TopologyInfo types shared by every
// stage of the UV parameterization pipeline, and builds/validates
// topology from raw triangle data.
//
// What
//
//   - Mesh holds flat vertex, triangle, and UV buffers — the same
//     layout a mesh-file loader (OBJ/PLY, out of scope here) would
//     hand off.
//   - TopologyInfo enumerates unique undirected edges and the (up to
//     two) faces incident to each, built once and treated as read-only
//     by every later stage.
//
// Why
//
//   - Every downstream stage (seam detection, island segmentation,
//     LSCM) needs edge adjacency; computing it once avoids repeating
//     an O(F) scan per consumer.
//
// Determinism
//
//	Edges are flattened in ascending (v0, v1) lexicographic order so
//	that BuildTopology produces identical TopologyInfo for identical
//	input, independent of Go's randomized map iteration order.
//
// Errors
//
//   - ErrNilMesh is returned when a nil *Mesh is passed to
//     BuildTopology, Validate, or Clone; ValidateTopology reports a nil
//     mesh or topology through its ok result instead.
//   - Non-manifold edges are not an error: they are reported to the
//     configured Logger and the edge retains its first two incident
//     faces.
package mesh
