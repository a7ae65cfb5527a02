package packing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lvlath-labs/uvwrap/island"
	"github.com/lvlath-labs/uvwrap/lscm"
	"github.com/lvlath-labs/uvwrap/mesh"
	"github.com/lvlath-labs/uvwrap/packing"
	"github.com/lvlath-labs/uvwrap/seam"
	"github.com/lvlath-labs/uvwrap/testmesh"
)

func parameterizeIsland(t *testing.T, m *mesh.Mesh, faces []int32) *lscm.Result {
	t.Helper()
	res, err := lscm.Parameterize(m, faces)
	require.NoError(t, err)
	return res
}

func writeResultToMesh(m *mesh.Mesh, res *lscm.Result) {
	for i, g := range res.LocalToGlobal {
		m.SetUV(g, float32(res.UV[2*i]), float32(res.UV[2*i+1]))
	}
}

func TestPackNilArgs(t *testing.T) {
	assert.ErrorIs(t, packing.Pack(nil, nil, 0.02), packing.ErrNilMesh)
}

func TestPackSingleIslandIsNoOp(t *testing.T) {
	m := testmesh.PlanarTriangle()
	m.SetUV(0, 0.25, 0.25)
	m.SetUV(1, 0.75, 0.25)
	m.SetUV(2, 0.25, 0.75)
	mp := &island.Map{FaceIsland: []int32{0}, K: 1}

	before := append([]float32(nil), m.UV...)
	require.NoError(t, packing.Pack(m, mp, 0.02))
	assert.Equal(t, before, m.UV)
}

func TestPackCubeSixIslandsFitUnitSquare(t *testing.T) {
	m := testmesh.Cube()
	topo, err := mesh.BuildTopology(m, nil)
	require.NoError(t, err)
	set, err := seam.Detect(m, topo, 60, nil)
	require.NoError(t, err)
	mp, err := island.Segment(m, topo, set)
	require.NoError(t, err)
	require.Equal(t, int32(6), mp.K)

	for iid := int32(0); iid < mp.K; iid++ {
		faces := mp.Faces(iid)
		res := parameterizeIsland(t, m, faces)
		writeResultToMesh(m, res)
	}

	require.NoError(t, packing.Pack(m, mp, 0.02))

	for v := 0; v < m.NumVertices(); v++ {
		u, vv := m.UVAt(int32(v))
		assert.GreaterOrEqual(t, u, float32(-1e-5))
		assert.GreaterOrEqual(t, vv, float32(-1e-5))
		assert.LessOrEqual(t, u, float32(1+1e-5))
		assert.LessOrEqual(t, vv, float32(1+1e-5))
	}
}
