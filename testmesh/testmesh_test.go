package testmesh_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lvlath-labs/uvwrap/mesh"
	"github.com/lvlath-labs/uvwrap/testmesh"
)

func TestPlanarTriangle(t *testing.T) {
	m := testmesh.PlanarTriangle()
	assert.Equal(t, 3, m.NumVertices())
	assert.Equal(t, 1, m.NumTriangles())
	require.NoError(t, m.Validate())
}

func TestTetrahedronIsClosed(t *testing.T) {
	m := testmesh.Tetrahedron()
	require.NoError(t, m.Validate())
	topo, err := mesh.BuildTopology(m, nil)
	require.NoError(t, err)
	assert.Equal(t, 6, topo.NumEdges())
	for _, ef := range topo.EdgeFaces {
		assert.NotEqual(t, int32(-1), ef[0])
		assert.NotEqual(t, int32(-1), ef[1])
	}
	euler, ok := mesh.ValidateTopology(m, topo, nil)
	assert.True(t, ok)
	assert.Equal(t, 2, euler)
}

func TestCubeIsClosedWithEighteenEdges(t *testing.T) {
	m := testmesh.Cube()
	require.NoError(t, m.Validate())
	assert.Equal(t, 8, m.NumVertices())
	assert.Equal(t, 12, m.NumTriangles())

	topo, err := mesh.BuildTopology(m, nil)
	require.NoError(t, err)
	assert.Equal(t, 18, topo.NumEdges())

	euler, ok := mesh.ValidateTopology(m, topo, nil)
	assert.True(t, ok)
	assert.Equal(t, 2, euler)
}

func TestStripHasOneInteriorEdge(t *testing.T) {
	m := testmesh.Strip()
	topo, err := mesh.BuildTopology(m, nil)
	require.NoError(t, err)
	assert.Equal(t, 5, topo.NumEdges())

	interior, boundary := 0, 0
	for _, ef := range topo.EdgeFaces {
		if ef[1] == -1 {
			boundary++
		} else {
			interior++
		}
	}
	assert.Equal(t, 1, interior)
	assert.Equal(t, 4, boundary)
}

func TestCylinderOpenHasNoCapVertices(t *testing.T) {
	m := testmesh.Cylinder(8, false)
	assert.Equal(t, 16, m.NumVertices())
	assert.Equal(t, 16, m.NumTriangles())
	require.NoError(t, m.Validate())

	topo, err := mesh.BuildTopology(m, nil)
	require.NoError(t, err)
	boundary := 0
	for _, ef := range topo.EdgeFaces {
		if ef[1] == -1 {
			boundary++
		}
	}
	assert.Equal(t, 16, boundary) // two open rings of 8 edges each
}

func TestCylinderCappedIsClosed(t *testing.T) {
	m := testmesh.Cylinder(8, true)
	assert.Equal(t, 18, m.NumVertices())
	assert.Equal(t, 32, m.NumTriangles())
	require.NoError(t, m.Validate())

	topo, err := mesh.BuildTopology(m, nil)
	require.NoError(t, err)
	for _, ef := range topo.EdgeFaces {
		assert.NotEqual(t, int32(-1), ef[1], "capped cylinder must have no boundary edges")
	}
}

func TestCylinderClampsSmallSegmentCount(t *testing.T) {
	m := testmesh.Cylinder(1, false)
	assert.Equal(t, 6, m.NumVertices()) // clamped to 3 segments
}
