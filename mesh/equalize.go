package mesh

import (
	"github.com/aukilabs/skera/levelset"
)

// IsMixedCell reports whether the level set changes sign across the
// cell's 4 corners. This is a coarser test than the Whitney stencil; it
// is the classification the interface-level equalization works on.
func (t *Tree) IsMixedCell(id CellID, f levelset.Func) bool {
	c := t.cells[id]

	var hasPos, hasNeg bool
	for _, pt := range [4][2]float64{
		{c.XMin, c.YMin},
		{c.XMax(), c.YMin},
		{c.XMin, c.YMax()},
		{c.XMax(), c.YMax()},
	} {
		v := f(pt[0], pt[1])
		if v > 0 {
			hasPos = true
		} else if v < 0 {
			hasNeg = true
		}
	}
	return hasPos && hasNeg
}

// equalizeInterface raises every mixed leaf to the level of the deepest
// mixed leaf, re-applying Whitney refinement to the new children capped
// at that level. It reports whether the tree changed.
func (t *Tree) equalizeInterface(f levelset.Func, p Params) bool {
	var mixed []CellID
	maxInterfaceLevel := 0
	for _, id := range t.LeafCells() {
		if !t.IsMixedCell(id, f) {
			continue
		}
		mixed = append(mixed, id)
		if l := t.cells[id].Level; l > maxInterfaceLevel {
			maxInterfaceLevel = l
		}
	}
	if len(mixed) == 0 {
		return false
	}

	capped := Params{
		MaxLevel:    maxInterfaceLevel,
		MinCellSize: p.MinCellSize,
		LipConst:    1,
	}

	changed := false
	for _, id := range mixed {
		c := t.cells[id]
		if c.Level >= maxInterfaceLevel || !p.canRefine(&c) {
			continue
		}

		kids := t.Subdivide(id)
		t.stitch(id, kids)
		instrumentSubdivision(causeEqualize)
		changed = true

		for _, kid := range kids {
			t.refineWhitney(kid, f, capped)
		}
	}
	return changed
}
