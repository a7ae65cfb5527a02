// Package geom collects the small 3D vector computations shared by
// seam detection, LSCM assembly, and quality metrics: face normals,
// interior angles, and triangle areas.
//
// It is built directly on gonum.org/v1/gonum/spatial/r3 rather than
// hand-rolled vector math, following the reference dependency
// surface's own use of r3.Vec for mesh vertex positions.
package geom
