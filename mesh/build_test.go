package mesh

import (
	"testing"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/skera/levelset"
	"github.com/stretchr/testify/require"
)

func TestBuildCircle(t *testing.T) {
	circle := levelset.Circle(0.5, 0.5, 0.25)

	tr, err := Build(0, 0, 1, 1, circle, Options{MaxLevel: 4})
	require.NoError(t, err)

	leaves := tr.LeafCells()
	require.NotEmpty(t, leaves)

	for _, id := range leaves {
		c := tr.Cell(id)
		require.True(t, c.Level >= 0 && c.Level <= 4)
	}

	assertBalanced(t, tr)

	// interface uniformity: every mixed leaf sits at the same level
	level := -1
	for _, id := range leaves {
		if !tr.IsMixedCell(id, circle) {
			continue
		}
		if level == -1 {
			level = tr.cells[id].Level
		}
		require.Equal(t, level, tr.cells[id].Level)
	}
	require.NotEqual(t, -1, level)

	// structural invariants over the whole arena:
	for id := CellID(0); int(id) < tr.Len(); id++ {
		c := tr.Cell(id)
		if c.IsLeaf() {
			for _, kid := range c.Children {
				require.Equal(t, NoCell, kid)
			}
			continue
		}

		area := 0.0
		for _, kid := range c.Children {
			k := tr.Cell(kid)
			require.Equal(t, id, k.Parent)
			require.Equal(t, c.Level+1, k.Level)
			require.Equal(t, c.Width/2, k.Width)
			require.Equal(t, c.Height/2, k.Height)
			area += k.Width * k.Height
		}
		require.InDelta(t, c.Width*c.Height, area, 1e-12)
	}
}

func TestBuildDeterminism(t *testing.T) {
	circle := levelset.Circle(0.5, 0.5, 0.25)
	opts := Options{MaxLevel: 4}

	a, err := Build(0, 0, 1, 1, circle, opts)
	require.NoError(t, err)
	b, err := Build(0, 0, 1, 1, circle, opts)
	require.NoError(t, err)

	// identical inputs produce structurally identical arenas
	require.Equal(t, a.cells, b.cells)
	require.Equal(t, len(a.LeafCells()), len(b.LeafCells()))
}

func TestBuildInvalidDomain(t *testing.T) {
	circle := levelset.Circle(0.5, 0.5, 0.25)

	_, err := Build(0, 0, 0, 1, circle, Options{MaxLevel: 4})
	require.Error(t, err)
	require.Equal(t, ErrTypeInvalidDomain, errors.Type(err))
}

func TestBuildDefaultLipConst(t *testing.T) {
	circle := levelset.Circle(0.5, 0.5, 0.25)

	explicit, err := Build(0, 0, 1, 1, circle, Options{MaxLevel: 3, LipConst: 1})
	require.NoError(t, err)
	defaulted, err := Build(0, 0, 1, 1, circle, Options{MaxLevel: 3})
	require.NoError(t, err)

	require.Equal(t, explicit.cells, defaulted.cells)
}

func TestBuildMinCellSizeFloor(t *testing.T) {
	circle := levelset.Circle(0.5, 0.5, 0.25)

	tr, err := Build(0, 0, 1, 1, circle, Options{MaxLevel: 10, MinCellSize: 0.2})
	require.NoError(t, err)

	// cells below 0.2 never refine: leaves stop at level 3 (size 0.125
	// cells are created, but not refined further)
	for _, id := range tr.LeafCells() {
		require.True(t, tr.Cell(id).Level <= 3)
	}
}
