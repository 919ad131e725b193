// Package geometry computes per-cell volume and face fractions for
// cut-cell discretizations by point-sampling a level set on quadrature
// grids mapped onto the mesh cells.
package geometry

import (
	"math"
)

// Rule is a 1D quadrature rule over the reference segment [-1,1].
type Rule struct {
	Nodes   []float64
	Weights []float64

	// Exact marks the tabulated Gauss-Legendre rules. Orders without a
	// table fall back to a uniform-angle approximation whose accuracy is
	// well below true Gauss-Legendre; callers must not treat the two as
	// numerically equivalent.
	Exact bool
}

var legendre8 = Rule{
	Nodes: []float64{
		-0.9602898564975363,
		-0.7966664774136267,
		-0.5255324099163290,
		-0.1834346424956498,
		0.1834346424956498,
		0.5255324099163290,
		0.7966664774136267,
		0.9602898564975363,
	},
	Weights: []float64{
		0.1012285362903763,
		0.2223810344533745,
		0.3137066458778873,
		0.3626837833783620,
		0.3626837833783620,
		0.3137066458778873,
		0.2223810344533745,
		0.1012285362903763,
	},
	Exact: true,
}

var legendre10 = Rule{
	Nodes: []float64{
		-0.9739065285171717,
		-0.8650633666889845,
		-0.6794095682990244,
		-0.4333953941292472,
		-0.1488743389816312,
		0.1488743389816312,
		0.4333953941292472,
		0.6794095682990244,
		0.8650633666889845,
		0.9739065285171717,
	},
	Weights: []float64{
		0.0666713443086881,
		0.1494513491505806,
		0.2190863625159821,
		0.2692667193099963,
		0.2955242247147529,
		0.2955242247147529,
		0.2692667193099963,
		0.2190863625159821,
		0.1494513491505806,
		0.0666713443086881,
	},
	Exact: true,
}

// Legendre returns the n-point quadrature rule on [-1,1]. Orders 8 and 10
// are exact tabulated Gauss-Legendre rules. Any other positive order
// degrades to nodes at uniform angles with uniform weights, flagged
// Exact=false. Non-positive orders resolve to DefaultOrder.
func Legendre(n int) Rule {
	if n < 1 {
		n = DefaultOrder
	}

	switch n {
	case 8:
		return legendre8
	case 10:
		return legendre10
	}

	nodes := make([]float64, n)
	weights := make([]float64, n)
	for i := 0; i < n; i++ {
		// descending cos arguments give ascending nodes
		nodes[i] = math.Cos(math.Pi * (float64(n-i) - 0.5) / float64(n))
		weights[i] = 2 / float64(n)
	}
	return Rule{Nodes: nodes, Weights: weights}
}
