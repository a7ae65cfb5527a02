// Package seam marks a subset of mesh edges as seams — edges across
// which the UV parameterization is allowed to tear — combining two
// geometric signals plus an informational structural diagnostic.
//
// What
//
//   - Dihedral-angle seams: manifold edges whose adjacent face normals
//     differ by more than a threshold angle.
//   - Angular-defect augmentation: every edge incident to a
//     cone-like vertex (2π minus the sum of incident interior angles
//     exceeds the threshold) is marked a seam candidate. Only applied
//     to vertices whose triangle fan is closed (no incident boundary
//     edge); an open fan's angle sum is not comparable to 2π.
//   - Dual spanning tree: a BFS spanning tree of the face adjacency
//     graph, computed and retained as a structural diagnostic but not
//     consumed to gate seam membership (a hook reserved for future
//     minimum-spanning-tree seam reduction).
//
// Why
//
//   - Dihedral angle catches ridges and creases; angular defect
//     catches vertices where any local flattening must tear.
//
// Determinism
//
//	Detect iterates topo.Edges/EdgeFaces and mesh vertices in index
//	order, so the resulting Set is identical for identical input.
package seam
