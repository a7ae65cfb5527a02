package metrics

import "errors"

// ErrNilMesh is returned when a nil mesh is passed to Compute.
var ErrNilMesh = errors.New("metrics: mesh is nil")

// Report holds the quality figures Compute produces for one mesh.
type Report struct {
	// AvgStretch and MaxStretch are the mean and maximum per-triangle
	// stretch (ratio of the UV-to-3D Jacobian's two singular values;
	// 1.0 is a perfect local isometry).
	AvgStretch float64
	MaxStretch float64

	// Coverage is the fraction of [0,1]^2 the packed triangles occupy,
	// estimated by rasterizing onto an Options.CoverageResolution grid.
	Coverage float64

	// AngleDistortion is the largest absolute difference, in radians,
	// between a triangle's 3D interior angle and its UV interior angle
	// across all three corners of all triangles.
	AngleDistortion float64
}

// Options configures Compute.
type Options struct {
	// CoverageResolution is the side length of the square raster grid
	// used to estimate Coverage.
	CoverageResolution int
}

// Option configures Compute via a functional argument.
type Option func(*Options)

// DefaultOptions returns the default Options: a 256x256 coverage grid.
func DefaultOptions() Options {
	return Options{CoverageResolution: 256}
}

// WithCoverageResolution overrides the coverage raster resolution.
func WithCoverageResolution(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.CoverageResolution = n
		}
	}
}
