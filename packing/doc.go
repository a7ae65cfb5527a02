// Package packing arranges an already-parameterized mesh's UV
// islands into the unit square using a shelf-packing heuristic: tall
// islands first, left-to-right within a shelf, wrapping to a new
// shelf when a row fills up, then a single uniform rescale to fit
// [0,1]^2 exactly.
//
// What
//
//	Pack mutates m.UV in place; it never touches m.Vertices or
//	m.Triangles.
//
// Why
//
//	Shelf packing is simple, deterministic, and good enough once every
//	island already has a compact conformal parameterization from lscm;
//	this package does not attempt a tighter (e.g. guillotine or
//	max-rects) packing.
//
// Determinism
//
//	Islands are sorted by (height desc, width desc, id asc) before
//	placement, so packing order — and therefore the final layout — is
//	identical for identical input.
package packing
