package pipeline

import (
	"sync"

	"github.com/lvlath-labs/uvwrap/config"
	"github.com/lvlath-labs/uvwrap/island"
	"github.com/lvlath-labs/uvwrap/lscm"
	"github.com/lvlath-labs/uvwrap/mesh"
	"github.com/lvlath-labs/uvwrap/metrics"
	"github.com/lvlath-labs/uvwrap/packing"
	"github.com/lvlath-labs/uvwrap/seam"
)

// Unwrap runs topology construction, seam detection, island
// segmentation, per-island LSCM solving, packing, and quality
// scoring against m, in that order, and writes the final UVs into
// m.UV.
func Unwrap(m *mesh.Mesh, cfg config.Config, opts ...Option) (*Result, error) {
	if m == nil {
		return nil, ErrNilMesh
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	logger := o.Logger

	topo, err := mesh.BuildTopology(m, logger)
	if err != nil {
		return nil, err
	}
	mesh.ValidateTopology(m, topo, logger)

	seams, err := seam.Detect(m, topo, cfg.SeamAngleThresholdDeg, logger)
	if err != nil {
		return nil, err
	}

	islands, err := island.Segment(m, topo, seams)
	if err != nil {
		return nil, err
	}

	failed := parameterizeIslands(m, islands, logger, o.ParallelIslands)

	if err := packing.Pack(m, islands, cfg.PackingMargin); err != nil {
		return nil, err
	}

	report, err := metrics.Compute(m, metrics.WithCoverageResolution(cfg.CoverageResolution))
	if err != nil {
		return nil, err
	}

	return &Result{
		Mesh:          m,
		Islands:       islands,
		Metrics:       report,
		FailedIslands: failed,
	}, nil
}

// parameterizeIslands solves LSCM for every island and writes each
// solution's UVs into m, returning the count of islands whose solve
// failed. Sequential when parallel <= 1; otherwise dispatches across
// a bounded worker pool of that size. Islands that meet at a seam
// share those vertices' UV slots, so in the pool each island's
// write-back holds mu; a shared vertex keeps the UV of whichever
// island writes it last, which in the pool depends on scheduling.
func parameterizeIslands(m *mesh.Mesh, islands *island.Map, logger mesh.Logger, parallel int) int {
	k := int(islands.K)
	if parallel <= 1 || k <= 1 {
		failed := 0
		for id := 0; id < k; id++ {
			if !solveIsland(m, islands, int32(id), logger, nil) {
				failed++
			}
		}
		return failed
	}

	var failed int32
	var mu sync.Mutex
	sem := make(chan struct{}, parallel)
	var wg sync.WaitGroup

	for id := 0; id < k; id++ {
		wg.Add(1)
		sem <- struct{}{}
		go func(id int32) {
			defer wg.Done()
			defer func() { <-sem }()
			if !solveIsland(m, islands, id, logger, &mu) {
				mu.Lock()
				failed++
				mu.Unlock()
			}
		}(int32(id))
	}
	wg.Wait()
	return int(failed)
}

// solveIsland parameterizes one island and writes its UVs into m,
// reporting success. A non-nil mu is held while the UVs are written.
func solveIsland(m *mesh.Mesh, islands *island.Map, id int32, logger mesh.Logger, mu *sync.Mutex) bool {
	faces := islands.Faces(id)
	res, err := lscm.Parameterize(m, faces)
	if err != nil {
		logger.Printf("pipeline: island %d: LSCM solve failed: %v", id, err)
		return false
	}
	if mu != nil {
		mu.Lock()
		defer mu.Unlock()
	}
	for i, g := range res.LocalToGlobal {
		m.SetUV(g, float32(res.UV[2*i]), float32(res.UV[2*i+1]))
	}
	return true
}
