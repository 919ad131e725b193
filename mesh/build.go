package mesh

import (
	"time"

	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/aukilabs/skera/levelset"
)

// Options configures a mesh build.
type Options struct {
	// MaxLevel is the hard refinement depth cap.
	MaxLevel int

	// MinCellSize is the absolute cell size floor. It overrides MaxLevel.
	MinCellSize float64

	// LipConst tunes the Whitney proximity heuristic. Zero or negative
	// values default to 1.
	LipConst float64
}

// Build constructs a finished mesh over the given domain: Whitney
// refinement around the level-set interface, 2:1 level balancing, then
// interface-level equalization and re-balancing until a fixpoint. The
// returned tree is read-only from the caller's perspective.
func Build(xMin, yMin, width, height float64, f levelset.Func, opts Options) (*Tree, error) {
	if opts.LipConst <= 0 {
		opts.LipConst = 1
	}

	t, err := NewTree(xMin, yMin, width, height)
	if err != nil {
		return nil, err
	}

	p := Params{
		MaxLevel:    opts.MaxLevel,
		MinCellSize: opts.MinCellSize,
		LipConst:    opts.LipConst,
	}

	start := time.Now()
	t.refineWhitney(t.Root(), f, p)

	balancePasses := t.balance(p)
	equalizeRounds := 0
	for t.equalizeInterface(f, p) {
		equalizeRounds++
		balancePasses += t.balance(p)
	}

	leafCount := len(t.LeafCells())
	instrumentBuild(leafCount)

	logs.WithTag("build_id", t.ID).
		WithTag("cells", t.Len()).
		WithTag("leaves", leafCount).
		WithTag("balance_passes", balancePasses).
		WithTag("equalize_rounds", equalizeRounds).
		WithTag("duration", time.Since(start).String()).
		Debug("mesh build completed")

	return t, nil
}
