// Package island partitions a mesh's triangles into UV islands: the
// connected components of the dual (face-adjacency) graph once seam
// edges are cut.
//
// What
//
//	Segment walks the dual graph breadth-first, refusing to cross any
//	edge seam.Set marks as a seam (or any boundary edge, which is
//	always an implicit cut), and assigns each discovered component an
//	increasing island id.
//
// Why
//
//	Every later stage (lscm, packing, metrics) operates per island;
//	this package is the one place that decides where an island begins
//	and ends.
//
// Determinism
//
//	Faces are visited starting from the lowest-numbered unvisited face
//	index and its neighbors are enqueued in the fixed order returned by
//	the triangle's own edge list, so island ids and per-island face
//	order are identical across runs on identical input.
package island
