package island

import "errors"

// ErrNilMesh is returned when a nil mesh or topology is passed to Segment.
var ErrNilMesh = errors.New("island: mesh or topology is nil")

// Map assigns every triangle of a mesh to an island id in [0, K).
type Map struct {
	// FaceIsland is parallel to the mesh's triangle list: FaceIsland[fi]
	// is the island id of triangle fi.
	FaceIsland []int32

	// K is the number of islands.
	K int32
}

// Faces returns the triangle indices belonging to island id, in
// ascending order.
func (mp *Map) Faces(id int32) []int32 {
	if mp == nil {
		return nil
	}
	var out []int32
	for fi, isl := range mp.FaceIsland {
		if isl == id {
			out = append(out, int32(fi))
		}
	}
	return out
}
