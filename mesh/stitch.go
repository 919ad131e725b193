package mesh

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// coordEps is the absolute tolerance for matching shared edge
// coordinates. Subdivision halves extents exactly in binary floating
// point, so matching coordinates are usually bit-identical; the tolerance
// only absorbs noise from degenerate domain extents.
const coordEps = 1e-12

// stitch repairs the neighbor graph right after id was subdivided into
// kids. Sibling links are always set both ways. External links follow the
// parent's prior neighbors: a leaf neighbor is referenced one-way by the
// relevant children (the leaf's own pointer is deliberately left alone,
// see the package notes on stale adjacency), while an internal neighbor
// has its matching children paired bidirectionally with the new ones.
func (t *Tree) stitch(id CellID, kids [4]CellID) {
	sw, se, nw, ne := kids[SW], kids[SE], kids[NW], kids[NE]

	t.cells[sw].Neighbors[East] = se
	t.cells[se].Neighbors[West] = sw
	t.cells[sw].Neighbors[North] = nw
	t.cells[nw].Neighbors[South] = sw
	t.cells[se].Neighbors[North] = ne
	t.cells[ne].Neighbors[South] = se
	t.cells[nw].Neighbors[East] = ne
	t.cells[ne].Neighbors[West] = nw

	parent := t.cells[id]
	t.stitchSide(parent.Neighbors[South], South, sw, se)
	t.stitchSide(parent.Neighbors[North], North, nw, ne)
	t.stitchSide(parent.Neighbors[West], West, sw, nw)
	t.stitchSide(parent.Neighbors[East], East, se, ne)
}

// stitchSide links the two new children facing dir with the parent's
// prior neighbor on that side.
func (t *Tree) stitchSide(neighbor CellID, dir Direction, a, b CellID) {
	if neighbor == NoCell {
		return
	}

	if t.cells[neighbor].IsLeaf() {
		t.cells[a].Neighbors[dir] = neighbor
		t.cells[b].Neighbors[dir] = neighbor
		return
	}

	opp := dir.Opposite()
	for _, kid := range [2]CellID{a, b} {
		for _, nc := range t.cells[neighbor].Children {
			if t.edgeTouch(kid, nc, dir) {
				t.cells[kid].Neighbors[dir] = nc
				t.cells[nc].Neighbors[opp] = kid
			}
		}
	}
}

// edgeTouch reports whether b touches a's edge in direction dir over a
// positive-length segment.
func (t *Tree) edgeTouch(a, b CellID, dir Direction) bool {
	ca := &t.cells[a]
	cb := &t.cells[b]

	switch dir {
	case North:
		return scalar.EqualWithinAbs(ca.YMax(), cb.YMin, coordEps) &&
			overlaps(ca.XMin, ca.XMax(), cb.XMin, cb.XMax())
	case South:
		return scalar.EqualWithinAbs(ca.YMin, cb.YMax(), coordEps) &&
			overlaps(ca.XMin, ca.XMax(), cb.XMin, cb.XMax())
	case East:
		return scalar.EqualWithinAbs(ca.XMax(), cb.XMin, coordEps) &&
			overlaps(ca.YMin, ca.YMax(), cb.YMin, cb.YMax())
	default:
		return scalar.EqualWithinAbs(ca.XMin, cb.XMax(), coordEps) &&
			overlaps(ca.YMin, ca.YMax(), cb.YMin, cb.YMax())
	}
}

func overlaps(lo1, hi1, lo2, hi2 float64) bool {
	return math.Min(hi1, hi2)-math.Max(lo1, lo2) > coordEps
}
