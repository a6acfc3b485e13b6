package grid

import (
	"fmt"
	"github.com/janpfeifer/hexhive/internal/generics"
	"slices"
)

// Coord is an (X, Y) position on the unbounded hex grid.
//
// Row Y is horizontally offset from rows Y-1 and Y+1, see Adjacents for the
// neighbour relation. Any pair of int16 values is a valid coordinate, and
// there is no privileged origin.
type Coord struct {
	X, Y int16
}

// NewCoord returns the coordinate (x, y).
func NewCoord(x, y int16) Coord {
	return Coord{X: x, Y: y}
}

// String returns a text representation of Coord.
func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// compareCoords orders by Y first and then X.
func compareCoords(a, b Coord) int {
	if a.Y != b.Y {
		if a.Y < b.Y {
			return -1
		}
		return 1
	}
	if a.X < b.X {
		return -1
	} else if a.X > b.X {
		return 1
	}
	return 0
}

// SortCoords sorts in-place according to y first and then x.
func SortCoords(coords []Coord) {
	slices.SortFunc(coords, compareCoords)
}

// CoordStrings converts each coordinate to its string representation.
func CoordStrings(coords []Coord) []string {
	return generics.SliceMap(coords, Coord.String)
}
