package mesh

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStitchSiblings(t *testing.T) {
	tr, err := NewTree(0, 0, 1, 1)
	require.NoError(t, err)

	kids := tr.Subdivide(tr.Root())
	tr.stitch(tr.Root(), kids)

	require.Equal(t, kids[SE], tr.Cell(kids[SW]).Neighbors[East])
	require.Equal(t, kids[SW], tr.Cell(kids[SE]).Neighbors[West])
	require.Equal(t, kids[NW], tr.Cell(kids[SW]).Neighbors[North])
	require.Equal(t, kids[SW], tr.Cell(kids[NW]).Neighbors[South])
	require.Equal(t, kids[NE], tr.Cell(kids[SE]).Neighbors[North])
	require.Equal(t, kids[SE], tr.Cell(kids[NE]).Neighbors[South])
	require.Equal(t, kids[NE], tr.Cell(kids[NW]).Neighbors[East])
	require.Equal(t, kids[NW], tr.Cell(kids[NE]).Neighbors[West])

	// domain boundary stays open:
	require.Equal(t, NoCell, tr.Cell(kids[SW]).Neighbors[South])
	require.Equal(t, NoCell, tr.Cell(kids[SW]).Neighbors[West])
	require.Equal(t, NoCell, tr.Cell(kids[NE]).Neighbors[North])
	require.Equal(t, NoCell, tr.Cell(kids[NE]).Neighbors[East])
}

func TestStitchLeafNeighborIsOneWay(t *testing.T) {
	tr, err := NewTree(0, 0, 1, 1)
	require.NoError(t, err)

	kids := tr.Subdivide(tr.Root())
	tr.stitch(tr.Root(), kids)

	swKids := tr.Subdivide(kids[SW])
	tr.stitch(kids[SW], swKids)

	// the new children facing the coarse leaf point at it:
	require.Equal(t, kids[SE], tr.Cell(swKids[SE]).Neighbors[East])
	require.Equal(t, kids[SE], tr.Cell(swKids[NE]).Neighbors[East])
	require.Equal(t, kids[NW], tr.Cell(swKids[NW]).Neighbors[North])
	require.Equal(t, kids[NW], tr.Cell(swKids[NE]).Neighbors[North])

	// the coarse leaf keeps its now-stale reference to the subdivided
	// cell; balance routes around it by scanning children:
	require.Equal(t, kids[SW], tr.Cell(kids[SE]).Neighbors[West])
	require.Equal(t, kids[SW], tr.Cell(kids[NW]).Neighbors[South])
	require.False(t, tr.Cell(kids[SW]).IsLeaf())
}

func TestStitchInternalNeighborIsBidirectional(t *testing.T) {
	tr, err := NewTree(0, 0, 1, 1)
	require.NoError(t, err)

	kids := tr.Subdivide(tr.Root())
	tr.stitch(tr.Root(), kids)

	swKids := tr.Subdivide(kids[SW])
	tr.stitch(kids[SW], swKids)

	seKids := tr.Subdivide(kids[SE])
	tr.stitch(kids[SE], seKids)

	// SE's west children pair up with SW's east children both ways:
	require.Equal(t, swKids[SE], tr.Cell(seKids[SW]).Neighbors[West])
	require.Equal(t, seKids[SW], tr.Cell(swKids[SE]).Neighbors[East])
	require.Equal(t, swKids[NE], tr.Cell(seKids[NW]).Neighbors[West])
	require.Equal(t, seKids[NW], tr.Cell(swKids[NE]).Neighbors[East])

	// children on SE's other sides link to the remaining coarse leaves:
	require.Equal(t, kids[NE], tr.Cell(seKids[NW]).Neighbors[North])
	require.Equal(t, kids[NE], tr.Cell(seKids[NE]).Neighbors[North])
	require.Equal(t, NoCell, tr.Cell(seKids[SE]).Neighbors[East])
	require.Equal(t, NoCell, tr.Cell(seKids[SW]).Neighbors[South])
}

func TestEdgeTouch(t *testing.T) {
	tr, err := NewTree(0, 0, 1, 1)
	require.NoError(t, err)

	kids := tr.Subdivide(tr.Root())
	tr.stitch(tr.Root(), kids)
	swKids := tr.Subdivide(kids[SW])
	tr.stitch(kids[SW], swKids)

	// positive-length shared edge:
	require.True(t, tr.edgeTouch(swKids[SE], kids[SE], East))
	// corner-only contact does not count:
	require.False(t, tr.edgeTouch(swKids[SE], swKids[NW], North))
	// disjoint cells never touch:
	require.False(t, tr.edgeTouch(swKids[SW], kids[NE], East))
}
