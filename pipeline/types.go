package pipeline

import (
	"errors"

	"github.com/lvlath-labs/uvwrap/island"
	"github.com/lvlath-labs/uvwrap/mesh"
	"github.com/lvlath-labs/uvwrap/metrics"
)

// ErrNilMesh is returned when a nil mesh is passed to Unwrap.
var ErrNilMesh = errors.New("pipeline: mesh is nil")

// Result aggregates everything a caller needs after a run: the mesh
// (its UV buffer now holds the final parameterization), the island
// assignment, the quality report, and how many islands the LSCM solve
// rejected.
type Result struct {
	Mesh          *mesh.Mesh
	Islands       *island.Map
	Metrics       *metrics.Report
	FailedIslands int
}

// Options configures Unwrap.
type Options struct {
	// Logger receives structural warnings (non-manifold edges, Euler
	// characteristic mismatches, per-island solver failures). Defaults
	// to mesh.NopLogger.
	Logger mesh.Logger

	// ParallelIslands, when > 1, solves that many islands' LSCM systems
	// concurrently via a bounded worker pool. The safe default (0 or 1)
	// processes islands sequentially in ascending id order.
	ParallelIslands int
}

// Option configures Unwrap via a functional argument.
type Option func(*Options)

// DefaultOptions returns Options with a NopLogger and sequential
// island processing.
func DefaultOptions() Options {
	return Options{Logger: mesh.NopLogger{}, ParallelIslands: 1}
}

// WithLogger sets the logger Unwrap reports diagnostics through.
func WithLogger(l mesh.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithParallelIslands enables a bounded worker pool of size n for
// per-island LSCM solving. n <= 1 is equivalent to the sequential
// default.
func WithParallelIslands(n int) Option {
	return func(o *Options) {
		o.ParallelIslands = n
	}
}
