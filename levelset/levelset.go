// Package levelset provides scalar fields whose sign partitions the plane
// into an inside and an outside region: negative values are inside
// ("fluid"), positive values are outside ("solid"), and the zero contour
// is the interface.
package levelset

import (
	"math"
)

// Func evaluates a level-set field at a point. Implementations must be
// pure: the mesh builder samples them repeatedly and assumes identical
// inputs yield identical outputs.
type Func func(x, y float64) float64

// Circle returns the signed distance to a circle of radius r centered at
// (cx, cy).
func Circle(cx, cy, r float64) Func {
	return func(x, y float64) float64 {
		return math.Hypot(x-cx, y-cy) - r
	}
}

// Rectangle returns the signed distance to an axis-aligned box.
func Rectangle(xMin, yMin, xMax, yMax float64) Func {
	return func(x, y float64) float64 {
		dx := math.Max(xMin-x, x-xMax)
		dy := math.Max(yMin-y, y-yMax)
		if dx > 0 && dy > 0 {
			return math.Hypot(dx, dy)
		}
		return math.Max(dx, dy)
	}
}

// Union combines fields so that a point inside any of them is inside the
// result.
func Union(fields ...Func) Func {
	return func(x, y float64) float64 {
		v := math.Inf(1)
		for _, f := range fields {
			v = math.Min(v, f(x, y))
		}
		return v
	}
}

// Intersection combines fields so that only points inside all of them are
// inside the result.
func Intersection(fields ...Func) Func {
	return func(x, y float64) float64 {
		v := math.Inf(-1)
		for _, f := range fields {
			v = math.Max(v, f(x, y))
		}
		return v
	}
}

// Complement swaps the inside and outside of a field.
func Complement(f Func) Func {
	return func(x, y float64) float64 {
		return -f(x, y)
	}
}

// Translate shifts a field by (dx, dy).
func Translate(f Func, dx, dy float64) Func {
	return func(x, y float64) float64 {
		return f(x-dx, y-dy)
	}
}
