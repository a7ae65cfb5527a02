package lscm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lvlath-labs/uvwrap/lscm"
	"github.com/lvlath-labs/uvwrap/testmesh"
)

func TestParameterizeNilMesh(t *testing.T) {
	res, err := lscm.Parameterize(nil, []int32{0})
	assert.Nil(t, res)
	assert.ErrorIs(t, err, lscm.ErrNilMesh)
}

func TestParameterizeEmptyFaceList(t *testing.T) {
	m := testmesh.PlanarTriangle()
	res, err := lscm.Parameterize(m, nil)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, lscm.ErrTooFewFaces)
}

func TestParameterizePlanarTriangle(t *testing.T) {
	m := testmesh.PlanarTriangle()
	res, err := lscm.Parameterize(m, []int32{0})
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, 3, res.N())

	minU, maxU := res.UV[0], res.UV[0]
	minV, maxV := res.UV[1], res.UV[1]
	for i := 0; i < res.N(); i++ {
		u, v := res.UV[2*i], res.UV[2*i+1]
		if u < minU {
			minU = u
		}
		if u > maxU {
			maxU = u
		}
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}
	assert.InDelta(t, 0, minU, 1e-6)
	assert.InDelta(t, 0, minV, 1e-6)
	assert.LessOrEqual(t, maxU, 1.0+1e-6)
	assert.LessOrEqual(t, maxV, 1.0+1e-6)
}

func TestParameterizeTetrahedronSingleFaceIsland(t *testing.T) {
	m := testmesh.Tetrahedron()
	res, err := lscm.Parameterize(m, []int32{0})
	require.NoError(t, err)
	assert.Equal(t, 3, res.N())
}

func TestFindBoundaryVerticesPlanarTriangle(t *testing.T) {
	m := testmesh.PlanarTriangle()
	b := lscm.FindBoundaryVertices(m, []int32{0})
	assert.ElementsMatch(t, []int32{0, 1, 2}, b)
}

func TestFindBoundaryVerticesStripInteriorEdgeExcluded(t *testing.T) {
	m := testmesh.Strip()
	b := lscm.FindBoundaryVertices(m, []int32{0, 1})
	// All 4 vertices touch some boundary edge in this fixture.
	assert.ElementsMatch(t, []int32{0, 1, 2, 3}, b)
}

func TestFindBoundaryVerticesNilMesh(t *testing.T) {
	assert.Nil(t, lscm.FindBoundaryVertices(nil, []int32{0}))
}

func TestNormalizeToUnitSquareRange(t *testing.T) {
	uv := []float64{-2, 3, 4, -1, 0, 0}
	lscm.NormalizeToUnitSquare(uv)
	minU, maxU := uv[0], uv[0]
	minV, maxV := uv[1], uv[1]
	for i := 0; i < len(uv); i += 2 {
		if uv[i] < minU {
			minU = uv[i]
		}
		if uv[i] > maxU {
			maxU = uv[i]
		}
		if uv[i+1] < minV {
			minV = uv[i+1]
		}
		if uv[i+1] > maxV {
			maxV = uv[i+1]
		}
	}
	assert.InDelta(t, 0, minU, 1e-12)
	assert.InDelta(t, 0, minV, 1e-12)
	assert.LessOrEqual(t, maxU, 1.0)
	assert.LessOrEqual(t, maxV, 1.0)
}

func TestNormalizeToUnitSquareIdempotent(t *testing.T) {
	uv := []float64{-2, 3, 4, -1, 0, 0}
	lscm.NormalizeToUnitSquare(uv)
	once := append([]float64(nil), uv...)
	lscm.NormalizeToUnitSquare(uv)
	assert.Equal(t, once, uv)
}

func TestNormalizeToUnitSquareEmpty(t *testing.T) {
	var uv []float64
	assert.NotPanics(t, func() { lscm.NormalizeToUnitSquare(uv) })
}

func TestParameterizeCubeFaceIsland(t *testing.T) {
	m := testmesh.Cube()
	// One cube face (two triangles): local vertex count should be 4.
	res, err := lscm.Parameterize(m, []int32{0, 1})
	require.NoError(t, err)
	assert.Equal(t, 4, res.N())
}
