package packing

import (
	"errors"
	"math"
	"sort"

	"github.com/lvlath-labs/uvwrap/island"
	"github.com/lvlath-labs/uvwrap/mesh"
)

// ErrNilMesh is returned when a nil mesh or island map is passed to Pack.
var ErrNilMesh = errors.New("packing: mesh or island map is nil")

// minDim is the minimum width/height an island's bounding box is
// clamped to, avoiding zero-sized footprints for degenerate islands.
const minDim = 1e-6

// islandBounds is one island's UV bounding box and packed target
// position, mirroring the reference implementation's Island struct.
type islandBounds struct {
	id                     int32
	minU, maxU, minV, maxV float32
	width, height          float32
	targetX, targetY       float32
	vertices               []int32
}

// Pack packs m's UV islands into [0,1]^2 with margin on all sides and
// between items. If islands.K <= 1 it is a no-op: a single island's
// UVs are already normalized to [0,1]^2 by lscm.
func Pack(m *mesh.Mesh, islands *island.Map, margin float64) error {
	if m == nil || islands == nil {
		return ErrNilMesh
	}
	if islands.K <= 1 {
		return nil
	}

	bounds := collectIslandBounds(m, islands)
	sort.Slice(bounds, func(i, j int) bool {
		if bounds[i].height != bounds[j].height {
			return bounds[i].height > bounds[j].height
		}
		if bounds[i].width != bounds[j].width {
			return bounds[i].width > bounds[j].width
		}
		return bounds[i].id < bounds[j].id
	})

	mg := float32(margin)
	shelfPack(bounds, mg)
	applyTargets(m, bounds)
	rescaleToUnitSquare(m)
	return nil
}

// collectIslandBounds gathers each island's unique vertex set and its
// UV bounding box.
func collectIslandBounds(m *mesh.Mesh, islands *island.Map) []islandBounds {
	sets := make([]map[int32]struct{}, islands.K)
	for i := range sets {
		sets[i] = make(map[int32]struct{})
	}
	for fi, iid := range islands.FaceIsland {
		a, b, c := m.Triangle(int32(fi))
		sets[iid][a] = struct{}{}
		sets[iid][b] = struct{}{}
		sets[iid][c] = struct{}{}
	}

	out := make([]islandBounds, islands.K)
	for iid := int32(0); iid < islands.K; iid++ {
		ib := islandBounds{
			id:   iid,
			minU: float32(math.Inf(1)), maxU: float32(math.Inf(-1)),
			minV: float32(math.Inf(1)), maxV: float32(math.Inf(-1)),
		}
		verts := make([]int32, 0, len(sets[iid]))
		for v := range sets[iid] {
			verts = append(verts, v)
		}
		sort.Slice(verts, func(i, j int) bool { return verts[i] < verts[j] })

		for _, v := range verts {
			u, vv := m.UVAt(v)
			if u < ib.minU {
				ib.minU = u
			}
			if u > ib.maxU {
				ib.maxU = u
			}
			if vv < ib.minV {
				ib.minV = vv
			}
			if vv > ib.maxV {
				ib.maxV = vv
			}
		}
		if len(verts) == 0 {
			ib.minU, ib.maxU, ib.minV, ib.maxV = 0, 0, 0, 0
		}
		ib.width = maxf32(ib.maxU-ib.minU, minDim)
		ib.height = maxf32(ib.maxV-ib.minV, minDim)
		ib.vertices = verts
		out[iid] = ib
	}
	return out
}

// shelfPack assigns targetX/targetY to each island via left-to-right,
// top-shelf placement, wrapping to a new shelf when a row overflows.
func shelfPack(bounds []islandBounds, margin float32) {
	curX, curY := margin, margin
	shelfH := float32(0)

	for i := range bounds {
		footprintW := bounds[i].width + margin
		footprintH := bounds[i].height + margin

		if curX+footprintW > 1-margin && curX > margin {
			curX = margin
			curY += shelfH + margin
			shelfH = 0
		}

		bounds[i].targetX = curX
		bounds[i].targetY = curY

		curX += footprintW
		shelfH = maxf32(shelfH, footprintH)
	}
}

// applyTargets rewrites each island's vertex UVs relative to its
// packed target position.
func applyTargets(m *mesh.Mesh, bounds []islandBounds) {
	for _, ib := range bounds {
		for _, v := range ib.vertices {
			u, vv := m.UVAt(v)
			du := u - ib.minU
			dv := vv - ib.minV
			m.SetUV(v, ib.targetX+du, ib.targetY+dv)
		}
	}
}

// rescaleToUnitSquare computes the bounding box over every vertex's
// UV and uniformly rescales (a single scale factor, preserving aspect
// ratio) so the packed layout fits exactly in [0,1]^2.
func rescaleToUnitSquare(m *mesh.Mesh) {
	n := m.NumVertices()
	if n == 0 {
		return
	}
	minU, maxU := float32(math.Inf(1)), float32(math.Inf(-1))
	minV, maxV := float32(math.Inf(1)), float32(math.Inf(-1))
	for v := 0; v < n; v++ {
		u, vv := m.UVAt(int32(v))
		if u < minU {
			minU = u
		}
		if u > maxU {
			maxU = u
		}
		if vv < minV {
			minV = vv
		}
		if vv > maxV {
			maxV = vv
		}
	}

	w := maxf32(maxU-minU, minDim)
	h := maxf32(maxV-minV, minDim)
	scale := 1 / maxf32(w, h)

	for v := 0; v < n; v++ {
		u, vv := m.UVAt(int32(v))
		m.SetUV(int32(v), (u-minU)*scale, (vv-minV)*scale)
	}
}

func maxf32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
