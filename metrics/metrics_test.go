package metrics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lvlath-labs/uvwrap/lscm"
	"github.com/lvlath-labs/uvwrap/metrics"
	"github.com/lvlath-labs/uvwrap/testmesh"
)

func TestComputeNilMesh(t *testing.T) {
	report, err := metrics.Compute(nil)
	assert.Nil(t, report)
	assert.ErrorIs(t, err, metrics.ErrNilMesh)
}

func TestComputeStripNearIsometric(t *testing.T) {
	m := testmesh.Strip()
	res, err := lscm.Parameterize(m, []int32{0, 1})
	require.NoError(t, err)
	for i, g := range res.LocalToGlobal {
		m.SetUV(g, float32(res.UV[2*i]), float32(res.UV[2*i+1]))
	}

	report, err := metrics.Compute(m, metrics.WithCoverageResolution(64))
	require.NoError(t, err)
	assert.InDelta(t, 1.0, report.AvgStretch, 0.2)
	assert.InDelta(t, 1.0, report.MaxStretch, 0.2)
	assert.GreaterOrEqual(t, report.Coverage, 0.0)
	assert.LessOrEqual(t, report.Coverage, 1.0)
}

func TestComputeCoverageFullSquareTriangle(t *testing.T) {
	m := testmesh.PlanarTriangle()
	m.SetUV(0, 0, 0)
	m.SetUV(1, 1, 0)
	m.SetUV(2, 0, 1)

	report, err := metrics.Compute(m, metrics.WithCoverageResolution(128))
	require.NoError(t, err)
	// A right triangle filling the unit square's lower-left half should
	// cover roughly half the grid.
	assert.InDelta(t, 0.5, report.Coverage, 0.1)
}

func TestComputeAngleDistortionZeroForIdentityMap(t *testing.T) {
	m := testmesh.PlanarTriangle()
	m.SetUV(0, 0, 0)
	m.SetUV(1, 1, 0)
	m.SetUV(2, 0, 1)

	report, err := metrics.Compute(m, metrics.WithCoverageResolution(8))
	require.NoError(t, err)
	assert.InDelta(t, 0, report.AngleDistortion, 1e-9)
}

func TestDefaultOptionsCoverageResolution(t *testing.T) {
	o := metrics.DefaultOptions()
	assert.Equal(t, 256, o.CoverageResolution)
}
