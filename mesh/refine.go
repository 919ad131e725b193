package mesh

import (
	"math"

	"github.com/aukilabs/skera/levelset"
)

// denseStencilMaxLevel is the coarsest band of levels that gets the extra
// 3x3 interior sample grid. Coarse cells are large relative to interface
// curvature, so the boundary-only stencil aliases there.
const denseStencilMaxLevel = 4

// Params are the refinement floors and sensitivity shared by every
// refinement pass of a build.
type Params struct {
	// MaxLevel is the hard depth cap.
	MaxLevel int

	// MinCellSize is the absolute size floor. It overrides the level cap:
	// a cell whose smaller extent is already below it never refines.
	MinCellSize float64

	// LipConst scales the proximity heuristic. Larger values refine more
	// aggressively near, but not yet across, the interface.
	LipConst float64
}

func (p Params) canRefine(c *Cell) bool {
	return c.Level < p.MaxLevel && c.minSize() >= p.MinCellSize
}

// refineWhitney recursively subdivides a cell while the Whitney criterion
// holds: the level set changes sign over the sample stencil, or the
// smallest sampled magnitude is within LipConst of the cell diagonal,
// meaning the interface could pass through the cell between samples.
// Recursion bottoms out on the Params floors.
func (t *Tree) refineWhitney(id CellID, f levelset.Func, p Params) {
	c := t.cells[id]
	if !p.canRefine(&c) {
		return
	}

	var hasPos, hasNeg bool
	minAbs := math.Inf(1)
	for _, pt := range whitneyStencil(&c) {
		v := f(pt[0], pt[1])
		if v > 0 {
			hasPos = true
		} else if v < 0 {
			hasNeg = true
		}
		minAbs = math.Min(minAbs, math.Abs(v))
	}

	isInterfaceCell := hasPos && hasNeg
	needsRefinement := minAbs <= p.LipConst*c.Diagonal()
	if !isInterfaceCell && !needsRefinement {
		return
	}

	kids := t.Subdivide(id)
	t.stitch(id, kids)
	instrumentSubdivision(causeWhitney)

	for _, kid := range kids {
		t.refineWhitney(kid, f, p)
	}
}

// whitneyStencil samples the cell boundary and center: corners, edge
// midpoints and the center point. Cells at the coarse levels additionally
// sample a 3x3 interior grid at the quarter offsets.
func whitneyStencil(c *Cell) [][2]float64 {
	pts := make([][2]float64, 0, 18)

	for _, ry := range [3]float64{0, 0.5, 1} {
		for _, rx := range [3]float64{0, 0.5, 1} {
			pts = append(pts, [2]float64{c.XMin + rx*c.Width, c.YMin + ry*c.Height})
		}
	}

	if c.Level <= denseStencilMaxLevel {
		for _, ry := range [3]float64{0.25, 0.5, 0.75} {
			for _, rx := range [3]float64{0.25, 0.5, 0.75} {
				pts = append(pts, [2]float64{c.XMin + rx*c.Width, c.YMin + ry*c.Height})
			}
		}
	}
	return pts
}
