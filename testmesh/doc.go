// Package testmesh provides deterministic, hand-picked triangle mesh
// fixtures for the end-to-end scenarios this pipeline is validated
// against: a single planar triangle, a unit tetrahedron, a unit cube
// (12 triangles), an open two-triangle strip, and a cylinder (capped
// or open).
//
// Each constructor returns consistently (outward) oriented geometry
// and never touches randomness, in the spirit of the reference
// dependency surface's canonical-fixture builders: same call, same
// mesh, every time.
package testmesh
