package mesh

// balance iterates plain geometric splits until every pair of adjacent
// leaves differs by at most one level. It returns the number of passes.
//
// Termination: a marked leaf's level strictly increases and is bounded by
// the Params floors. Leaves that cannot refine further are never marked,
// so a coarse leaf pinned next to a maximally refined neighbor is an
// accepted boundary condition rather than an infinite loop.
func (t *Tree) balance(p Params) int {
	passes := 0
	for {
		passes++
		instrumentBalancePass()

		var marked []CellID
		for _, id := range t.LeafCells() {
			c := t.cells[id]
			if !p.canRefine(&c) {
				continue
			}
			if t.exceedsLevelGap(id) {
				marked = append(marked, id)
			}
		}

		if len(marked) == 0 {
			return passes
		}

		for _, id := range marked {
			kids := t.Subdivide(id)
			t.stitch(id, kids)
			instrumentSubdivision(causeBalance)
		}
	}
}

// exceedsLevelGap reports whether any leaf adjacent to id is more than
// one level finer.
func (t *Tree) exceedsLevelGap(id CellID) bool {
	neighbors := t.cells[id].Neighbors
	for _, n := range neighbors {
		if n == NoCell {
			continue
		}
		if t.finerAdjacentLeaf(n, id, t.cells[id].Level+1) {
			return true
		}
	}
	return false
}

// finerAdjacentLeaf reports whether some leaf under n touching id's
// boundary sits above maxLevel. Neighbor pointers can reference a cell
// that has since gone internal (a leaf neighbor's pointer is not updated
// when the other side subdivides); descending through children routes
// around such stale references.
func (t *Tree) finerAdjacentLeaf(n, id CellID, maxLevel int) bool {
	if t.cells[n].IsLeaf() {
		return t.cells[n].Level > maxLevel && t.touches(n, id)
	}

	for _, kid := range t.cells[n].Children {
		if t.touches(kid, id) && t.finerAdjacentLeaf(kid, id, maxLevel) {
			return true
		}
	}
	return false
}

// touches reports whether a and b share a positive-length boundary
// segment on any side.
func (t *Tree) touches(a, b CellID) bool {
	for _, dir := range [4]Direction{North, South, East, West} {
		if t.edgeTouch(b, a, dir) {
			return true
		}
	}
	return false
}
