// Package metrics scores a finished UV parameterization: per-triangle
// stretch (how far the UV-to-3D map deviates from an isometry),
// texture-space coverage (how much of [0,1]^2 the packed islands
// actually occupy), and angle distortion (how far the map deviates
// from conformal).
//
// What
//
//	Compute is the single entry point, returning a Report with
//	average and max stretch, coverage, and angle distortion.
//
// Why
//
//	Stretch uses a per-triangle 2x2 Jacobian; angle distortion
//	compares each corner's 3D and UV interior angles directly;
//	coverage rasterizes the packed triangles onto a configurable grid
//	and reports the occupied fraction — the reference implementation
//	this pipeline replaces shipped fixed placeholder numbers here, and
//	this package computes them for real.
package metrics
