// Package grid defines hexagonal grids of pieces: the Grid interface and its
// sparse, unbounded implementation DynamicHexGrid.
//
// A grid holds at most one value per coordinate. Games where pieces can be stacked
// encode the whole stack in the value stored, the grid is not aware of it.
package grid

import (
	"github.com/gomlx/exceptions"
)

// Piece is implemented by anything that can be stored in a Grid.
type Piece interface {
	// HexPiece is a marker method: it has no behavior.
	HexPiece()
}

// Grid is the contract of a hexagonal grid of pieces of type P.
//
// It is not safe for concurrent use: even the bounds queries may update internal
// caches. See Synchronized.
type Grid[P Piece] interface {
	// Height is the number of rows spanned by the occupied positions, 0 if the grid is empty.
	Height() int

	// Width is the number of columns spanned by the occupied positions, 0 if the grid is empty.
	Width() int

	// Min returns the minimum x and the minimum y of the occupied positions.
	// (x, y) may not be occupied, but (x, _) and (_, y) are.
	// It returns (0, 0) for an empty grid.
	Min() Coord

	// Max returns the maximum x and the maximum y of the occupied positions.
	// It returns (0, 0) for an empty grid.
	Max() Coord

	// Add stores piece at coord, silently replacing whatever was there.
	Add(coord Coord, piece P)

	// Remove deletes the piece at coord. It is a no-op if coord is empty.
	Remove(coord Coord)

	// At returns the piece at coord, and whether there was one.
	At(coord Coord) (piece P, found bool)

	// Occupied returns whether there is a piece at coord.
	Occupied(coord Coord) bool

	// NumPieces returns the number of occupied positions.
	NumPieces() int

	// Adjacents returns the 6 neighbours of coord, independent of the grid contents.
	// See the package function Adjacents for the order and failure mode.
	Adjacents(coord Coord) []Coord
}

// OccupiedAt is Occupied derived from Grid.At, for implementations of Grid that
// don't have a faster way.
func OccupiedAt[P Piece](g Grid[P], coord Coord) bool {
	_, found := g.At(coord)
	return found
}

// TryAdjacents calls g.Adjacents and returns the overflow error instead of panicking.
func TryAdjacents[P Piece](g Grid[P], coord Coord) (adjacents []Coord, err error) {
	err = exceptions.TryCatch[error](func() {
		adjacents = g.Adjacents(coord)
	})
	if err != nil {
		adjacents = nil
	}
	return
}
