// Package mesh builds fully-threaded adaptive quadtree meshes: every cell
// carries direct references to its geometric neighbors, so adjacency
// lookups never descend the tree. Cells live in an arena owned by the
// Tree and reference each other through stable integer handles.
package mesh

import (
	"math"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/google/uuid"
)

// ErrTypeInvalidDomain is the error type returned when a tree is created
// over a degenerate domain.
const ErrTypeInvalidDomain = "invalid_domain"

// CellID is a stable handle into a Tree's cell arena.
type CellID int32

// NoCell marks an absent reference: a leaf's children, the root's parent,
// or a neighbor on the domain boundary.
const NoCell CellID = -1

// Child quadrant indices. Subdivision always produces children in this
// order, which keeps builds deterministic.
const (
	SW = iota
	SE
	NW
	NE
)

// Direction indexes a cell's neighbor references.
type Direction int

const (
	North Direction = iota
	South
	East
	West
)

func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	default:
		return East
	}
}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	default:
		return "west"
	}
}

// Cell is an axis-aligned rectangle at a given refinement level. A cell is
// either a leaf (no children) or internal (exactly 4 children tiling it).
type Cell struct {
	XMin   float64
	YMin   float64
	Width  float64
	Height float64
	Level  int

	Parent    CellID
	Children  [4]CellID
	Neighbors [4]CellID
}

func (c *Cell) XMax() float64 {
	return c.XMin + c.Width
}

func (c *Cell) YMax() float64 {
	return c.YMin + c.Height
}

func (c *Cell) IsLeaf() bool {
	return c.Children[SW] == NoCell
}

// Diagonal is the cell's corner-to-corner length, the scale used by the
// Whitney proximity bound.
func (c *Cell) Diagonal() float64 {
	return math.Hypot(c.Width, c.Height)
}

func (c *Cell) minSize() float64 {
	return math.Min(c.Width, c.Height)
}

// Tree owns a quadtree cell arena. Cells are only ever added: subdivision
// creates nodes, nothing deletes them, so handles stay valid for the
// tree's whole lifetime.
type Tree struct {
	// ID correlates build logs and downstream artifacts.
	ID string

	cells []Cell
}

// NewTree creates a tree whose root leaf spans the given domain.
func NewTree(xMin, yMin, width, height float64) (*Tree, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.New("domain has a non-positive extent").
			WithType(ErrTypeInvalidDomain).
			WithTag("width", width).
			WithTag("height", height)
	}

	t := &Tree{ID: uuid.New().String()}
	t.newCell(Cell{
		XMin:   xMin,
		YMin:   yMin,
		Width:  width,
		Height: height,
		Parent: NoCell,
	})
	return t, nil
}

func (t *Tree) newCell(c Cell) CellID {
	for i := range c.Children {
		c.Children[i] = NoCell
	}
	for i := range c.Neighbors {
		c.Neighbors[i] = NoCell
	}
	t.cells = append(t.cells, c)
	instrumentCellCreated()
	return CellID(len(t.cells) - 1)
}

// Root returns the handle of the root cell.
func (t *Tree) Root() CellID {
	return 0
}

// Cell returns the cell behind a handle. The returned pointer stays valid
// only until the next subdivision; downstream consumers of a finished
// build may hold it freely.
func (t *Tree) Cell(id CellID) *Cell {
	return &t.cells[id]
}

// Len returns the total number of cells, leaves and internals alike.
func (t *Tree) Len() int {
	return len(t.cells)
}

// Subdivide splits a leaf into 4 congruent children tiling its rectangle,
// in SW/SE/NW/NE order, each one level deeper. The cell becomes internal.
// Callers must stitch the neighbor graph afterwards.
func (t *Tree) Subdivide(id CellID) [4]CellID {
	parent := t.cells[id]
	w := parent.Width / 2
	h := parent.Height / 2

	var kids [4]CellID
	for q, offset := range [4][2]float64{
		SW: {0, 0},
		SE: {w, 0},
		NW: {0, h},
		NE: {w, h},
	} {
		kids[q] = t.newCell(Cell{
			XMin:   parent.XMin + offset[0],
			YMin:   parent.YMin + offset[1],
			Width:  w,
			Height: h,
			Level:  parent.Level + 1,
			Parent: id,
		})
	}

	t.cells[id].Children = kids
	return kids
}

// LeafCells collects every leaf handle. It walks an explicit stack rather
// than recursing so that very deep trees cannot exhaust the call stack.
// The order is not spatially meaningful.
func (t *Tree) LeafCells() []CellID {
	leaves := make([]CellID, 0, len(t.cells)/2+1)
	stack := []CellID{t.Root()}

	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		c := &t.cells[id]
		if c.IsLeaf() {
			leaves = append(leaves, id)
			continue
		}
		stack = append(stack, c.Children[:]...)
	}
	return leaves
}
