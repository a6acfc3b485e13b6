// Package hive holds the pieces of the game Hive, and a hexagonal grid to place them.
//
// Pieces that climb on top of others (Beetles) are stored as stacks: the grid holds
// only the top piece at each position, and the top piece holds the stack under it.
package hive

import (
	"github.com/janpfeifer/hexhive/internal/generics"
	"github.com/janpfeifer/hexhive/internal/grid"
	"github.com/pkg/errors"
	"iter"
	"slices"
)

// ErrStackFull is returned by Grid.Stack if the stack would become higher than the configured maximum.
var ErrStackFull = errors.New("stack is full")

// Grid is a grid.DynamicHexGrid of Hive pieces, with some Hive specific queries.
//
// All grid.Grid methods see only the top of the stacks.
// It is not safe for concurrent use, see grid.Synchronized.
type Grid struct {
	base *grid.DynamicHexGrid[Piece]

	// maxStack is the maximum height of a stack enforced by Stack, or 0 if there is no limit.
	maxStack int
}

// Assert Grid is a grid.Grid.
var _ grid.Grid[Piece] = (*Grid)(nil)

// NewGrid creates an empty grid with no limit on the height of stacks.
// See also NewGridFromConfig.
func NewGrid() *Grid {
	return &Grid{base: grid.NewDynamicHexGrid[Piece]()}
}

// Clone makes a copy of the grid. The stacks themselves are shared, since they are never changed in place.
func (g *Grid) Clone() *Grid {
	return &Grid{base: g.base.Clone(), maxStack: g.maxStack}
}

// MaxStack returns the maximum stack height enforced by Stack, or 0 if there is no limit.
func (g *Grid) MaxStack() int {
	return g.maxStack
}

// Height implements grid.Grid.
func (g *Grid) Height() int { return g.base.Height() }

// Width implements grid.Grid.
func (g *Grid) Width() int { return g.base.Width() }

// Min implements grid.Grid.
func (g *Grid) Min() grid.Coord { return g.base.Min() }

// Max implements grid.Grid.
func (g *Grid) Max() grid.Coord { return g.base.Max() }

// NumPieces implements grid.Grid. A stack counts as one.
func (g *Grid) NumPieces() int { return g.base.NumPieces() }

// Remove implements grid.Grid. It removes the whole stack at coord.
func (g *Grid) Remove(coord grid.Coord) { g.base.Remove(coord) }

// Add stores the stack represented by piece at coord, replacing what was there.
//
// To put a Beetle on top of an occupied position, either use Stack, or read the existing stack
// with At, and Add a Beetle with it as Under.
func (g *Grid) Add(coord grid.Coord, piece Piece) {
	g.base.Add(coord, piece)
}

// At returns the stack at coord, represented by its top piece.
func (g *Grid) At(coord grid.Coord) (Piece, bool) {
	return g.base.At(coord)
}

// Occupied returns whether there is at least one piece at coord.
func (g *Grid) Occupied(coord grid.Coord) bool {
	return g.base.Occupied(coord)
}

// Adjacents returns the 6 neighbour positions of coord, see grid.Adjacents.
func (g *Grid) Adjacents(coord grid.Coord) []grid.Coord {
	return g.base.Adjacents(coord)
}

// All iterates over the occupied positions and their stacks, in no particular order.
func (g *Grid) All() iter.Seq2[grid.Coord, Piece] {
	return g.base.All()
}

// SortedCoords returns the occupied positions sorted by y and then x.
func (g *Grid) SortedCoords() []grid.Coord {
	return g.base.SortedCoords()
}

// AdjacentOccupied returns the neighbours of coord that hold a piece, in the order of Adjacents.
func (g *Grid) AdjacentOccupied(coord grid.Coord) []grid.Coord {
	return generics.FilterInPlace(g.Adjacents(coord), g.Occupied)
}

// AdjacentEmpty returns the neighbours of coord that are empty, in the order of Adjacents.
func (g *Grid) AdjacentEmpty(coord grid.Coord) []grid.Coord {
	return generics.FilterInPlace(g.Adjacents(coord), func(c grid.Coord) bool { return !g.Occupied(c) })
}

// AdjacentOccupiedIter iterates over the neighbours of coord that hold a piece.
func (g *Grid) AdjacentOccupiedIter(coord grid.Coord) iter.Seq[grid.Coord] {
	return generics.IterFilter(slices.Values(g.Adjacents(coord)), g.Occupied)
}

// AdjacentEmptyIter iterates over the neighbours of coord that are empty.
func (g *Grid) AdjacentEmptyIter(coord grid.Coord) iter.Seq[grid.Coord] {
	return generics.IterFilter(slices.Values(g.Adjacents(coord)), func(c grid.Coord) bool { return !g.Occupied(c) })
}

// AdjacentOwnedBy returns the neighbours of coord whose top piece has the given color.
func (g *Grid) AdjacentOwnedBy(coord grid.Coord, color Color) []grid.Coord {
	return generics.FilterInPlace(g.Adjacents(coord), func(c grid.Coord) bool {
		top, found := g.At(c)
		return found && top.Color == color
	})
}

// Perimeter returns the empty positions adjacent to at least one piece, sorted by y and then x.
// Like Adjacents, it panics if a piece sits at the edge of the coordinates range.
func (g *Grid) Perimeter() []grid.Coord {
	occupied := generics.CollectSet(g.base.Coords())
	neighbors := generics.MakeSet[grid.Coord](grid.NumNeighbors * len(occupied))
	for coord := range occupied {
		neighbors.Insert(g.Adjacents(coord)...)
	}
	perimeter := generics.KeysSlice(neighbors.Sub(occupied))
	grid.SortCoords(perimeter)
	return perimeter
}

// StackHeight returns the number of pieces at coord, 0 if it is empty.
func (g *Grid) StackHeight(coord grid.Coord) int {
	if top, found := g.At(coord); found {
		return top.Height()
	}
	return 0
}

// Stack puts piece on top of whatever is at coord.
//
// If coord is empty, piece is simply placed there. Otherwise, piece must be a Beetle not
// on top of anything yet (ErrNotClimber, ErrAlreadyStacked), and the resulting stack
// can't be higher than MaxStack (ErrStackFull). On error the grid is not changed.
func (g *Grid) Stack(coord grid.Coord, piece Piece) error {
	if err := piece.Validate(); err != nil {
		return errors.WithMessagef(err, "can't stack piece at %s", coord)
	}
	under, found := g.At(coord)
	if !found {
		if g.maxStack > 0 && piece.Height() > g.maxStack {
			return errors.Wrapf(ErrStackFull, "can't place %s at %s, max stack is %d", piece, coord, g.maxStack)
		}
		g.Add(coord, piece)
		return nil
	}
	stacked, err := piece.ClimbOnto(under)
	if err != nil {
		return errors.WithMessagef(err, "can't stack at %s", coord)
	}
	if g.maxStack > 0 && stacked.Height() > g.maxStack {
		return errors.Wrapf(ErrStackFull, "can't stack %s on %s at %s, max stack is %d",
			piece, under, coord, g.maxStack)
	}
	g.Add(coord, stacked)
	return nil
}

// Unstack removes the top piece at coord and returns it alone (without the stack under it).
// The pieces under it, if any, are left at coord.
// It returns false if coord is empty.
func (g *Grid) Unstack(coord grid.Coord) (Piece, bool) {
	top, found := g.At(coord)
	if !found {
		return Piece{}, false
	}
	if under, stacked := top.Underneath(); stacked {
		g.Add(coord, under)
	} else {
		g.Remove(coord)
	}
	return top.Top(), true
}

// QueenCoord returns the position of the QueenBee of the given color, if it is on the grid.
// It may be under some Beetles.
func (g *Grid) QueenCoord(color Color) (grid.Coord, bool) {
	for coord, stack := range g.All() {
		if hasQueen, queenColor := stack.HasQueen(); hasQueen && queenColor == color {
			return coord, true
		}
	}
	return grid.Coord{}, false
}
