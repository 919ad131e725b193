package geometry

import (
	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/aukilabs/skera/levelset"
	"github.com/aukilabs/skera/mesh"
)

// DefaultOrder is the quadrature order used when callers pass a
// non-positive one.
const DefaultOrder = 8

// CellGeometry carries a leaf's volume fraction and the 4 face fractions,
// each the share of the cell area or edge length on the fluid (negative)
// side of the level set. All values are in [0,1].
type CellGeometry struct {
	VolumeFraction float64

	North float64
	South float64
	East  float64
	West  float64
}

// ComputeFractions evaluates volume and face fractions for every given
// leaf by mapping the numPoints quadrature rule onto each cell rectangle
// and counting the fluid-side sample weight. The result is keyed by cell
// handle: handles are the cell identity, rectangle values are not.
//
// The fractions are point-sampled approximations, not exact boundary
// integrals: fully inside or outside cells converge to 1 and 0 with the
// rule order, while genuinely cut cells keep an error proportional to how
// the interface crosses the sample grid.
func ComputeFractions(t *mesh.Tree, leaves []mesh.CellID, f levelset.Func, numPoints int) map[mesh.CellID]CellGeometry {
	if numPoints <= 0 {
		numPoints = DefaultOrder
	}

	rule := Legendre(numPoints)
	if !rule.Exact {
		logs.WithTag("order", numPoints).
			Warn("no tabulated Gauss-Legendre rule for this order, falling back to the reduced-accuracy uniform-angle rule")
	}

	out := make(map[mesh.CellID]CellGeometry, len(leaves))
	for _, id := range leaves {
		out[id] = cellFractions(t.Cell(id), f, rule)
	}
	return out
}

func cellFractions(c *mesh.Cell, f levelset.Func, rule Rule) CellGeometry {
	mapX := func(xi float64) float64 { return c.XMin + 0.5*(xi+1)*c.Width }
	mapY := func(eta float64) float64 { return c.YMin + 0.5*(eta+1)*c.Height }

	// tensor-product sum of the fluid indicator, normalized by the
	// reference square's area
	var volume float64
	for j, eta := range rule.Nodes {
		y := mapY(eta)
		for i, xi := range rule.Nodes {
			if f(mapX(xi), y) < 0 {
				volume += rule.Weights[i] * rule.Weights[j]
			}
		}
	}

	return CellGeometry{
		VolumeFraction: volume / 4,
		North:          edgeFraction(rule, func(s float64) (float64, float64) { return mapX(s), c.YMax() }, f),
		South:          edgeFraction(rule, func(s float64) (float64, float64) { return mapX(s), c.YMin }, f),
		East:           edgeFraction(rule, func(s float64) (float64, float64) { return c.XMax(), mapY(s) }, f),
		West:           edgeFraction(rule, func(s float64) (float64, float64) { return c.XMin, mapY(s) }, f),
	}
}

// edgeFraction runs the 1D rule along a cell edge, normalized by the
// reference segment's length.
func edgeFraction(rule Rule, at func(s float64) (x, y float64), f levelset.Func) float64 {
	var sum float64
	for i, node := range rule.Nodes {
		x, y := at(node)
		if f(x, y) < 0 {
			sum += rule.Weights[i]
		}
	}
	return sum / 2
}
