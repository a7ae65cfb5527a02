// Package lscm implements the Least-Squares Conformal Map solve: for
// one island (a local vertex numbering plus its face list), assemble
// the conformal-energy Gram operator, pin two boundary vertices to
// fix the remaining gauge freedom, factor and solve, and normalize
// the result to the unit square.
//
// What
//
//	Parameterize is the single entry point. FindBoundaryVertices and
//	NormalizeToUnitSquare are exported separately because they are
//	independently useful (and independently testable) building blocks.
//
// Why
//
//	Per-triangle coefficients are naturally complex numbers (a 2D
//	rotation/scale is a complex multiplication); Go's native
//	complex128 expresses that compactly without hand-rolled 2x2 block
//	arithmetic. The assembled system is solved with a dense LU
//	factorization rather than a hand-rolled sparse one — see this
//	repository's design notes for why.
//
// Determinism
//
//	Local numbering follows first-occurrence order over faceIndices;
//	boundary vertices are listed in ascending global vertex id, and
//	pin selection iterates in that order, so ties resolve identically
//	across runs.
package lscm
