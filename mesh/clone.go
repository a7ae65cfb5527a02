package mesh

// Clone returns a deep copy of m: its own Vertices, Triangles, and UV
// backing arrays, independent of the source.
//
// Tests that need to mutate a fixture mesh (a UV buffer, say) without
// disturbing a shared original use this instead of hand-rolling a
// slice copy per field.
func (m *Mesh) Clone() (*Mesh, error) {
	if m == nil {
		return nil, ErrNilMesh
	}
	clone := &Mesh{
		Vertices:  append([]float32(nil), m.Vertices...),
		Triangles: append([]int32(nil), m.Triangles...),
		UV:        append([]float32(nil), m.UV...),
	}
	return clone, nil
}
