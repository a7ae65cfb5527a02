package mesh_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lvlath-labs/uvwrap/mesh"
)

func TestCloneNilMesh(t *testing.T) {
	var m *mesh.Mesh
	got, err := m.Clone()
	assert.Nil(t, got)
	assert.ErrorIs(t, err, mesh.ErrNilMesh)
}

func TestCloneIsIndependent(t *testing.T) {
	m := mesh.New([]float32{0, 0, 0, 1, 0, 0, 0, 1, 0}, []int32{0, 1, 2})
	m.SetUV(0, 0.1, 0.2)

	c, err := m.Clone()
	require.NoError(t, err)

	c.SetUV(0, 0.9, 0.9)
	c.Vertices[0] = 42

	u, v := m.UVAt(0)
	assert.Equal(t, float32(0.1), u)
	assert.Equal(t, float32(0.2), v)
	assert.Equal(t, float32(0), m.Vertices[0])

	assert.Equal(t, m.Triangles, c.Triangles)
}
