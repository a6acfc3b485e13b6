package grid

import (
	"github.com/pkg/errors"
	"math"
)

// Direction to one of the 6 neighbours of a position.
type Direction uint8

// The order of the directions is part of the contract of Adjacents: callers
// may index the result of Adjacents by Direction.
const (
	NorthWest Direction = iota
	NorthEast
	West
	East
	SouthWest
	SouthEast
)

// NumNeighbors of each position: the grid is hexagonal.
const NumNeighbors = 6

// Directions enumerates all directions, in the order used by Adjacents.
var Directions = [NumNeighbors]Direction{NorthWest, NorthEast, West, East, SouthWest, SouthEast}

var (
	directionNames = [NumNeighbors]string{"NorthWest", "NorthEast", "West", "East", "SouthWest", "SouthEast"}

	// neighborOffsets indexed by Direction.
	neighborOffsets = [NumNeighbors][2]int32{{0, -1}, {1, -1}, {-1, 0}, {1, 0}, {-1, 1}, {0, 1}}
)

// ErrCoordOverflow is returned (or wrapped) when a neighbour would fall outside the int16 coordinate domain.
var ErrCoordOverflow = errors.New("coordinate overflows the int16 range")

// String returns the direction name.
func (d Direction) String() string {
	if int(d) >= NumNeighbors {
		return "InvalidDirection"
	}
	return directionNames[d]
}

// Opposite returns the direction pointing back.
//
// The directions are listed symmetrically, so the opposite of direction d is NumNeighbors-1-d.
func (d Direction) Opposite() Direction {
	return NumNeighbors - 1 - d
}

// Neighbor returns the position adjacent to c in the given direction.
//
// It returns an error wrapping ErrCoordOverflow if the neighbour can't be
// represented: coordinates never wrap around.
func (c Coord) Neighbor(dir Direction) (Coord, error) {
	if int(dir) >= NumNeighbors {
		return c, errors.Errorf("invalid direction %d", dir)
	}
	offset := neighborOffsets[dir]
	x, y := int32(c.X)+offset[0], int32(c.Y)+offset[1]
	if x < math.MinInt16 || x > math.MaxInt16 || y < math.MinInt16 || y > math.MaxInt16 {
		return c, errors.Wrapf(ErrCoordOverflow, "neighbour %s of %s", dir, c)
	}
	return Coord{X: int16(x), Y: int16(y)}, nil
}

// Neighbors returns the 6 neighbours of c, indexed by Direction.
// It fails if any of them overflows, see Neighbor.
func (c Coord) Neighbors() (neighbors [NumNeighbors]Coord, err error) {
	for _, dir := range Directions {
		neighbors[dir], err = c.Neighbor(dir)
		if err != nil {
			return
		}
	}
	return
}

// Adjacents returns the 6 hex neighbours of coord in the order
// (x, y-1), (x+1, y-1), (x-1, y), (x+1, y), (x-1, y+1), (x, y+1), that is, indexed
// by Direction. It returns a newly allocated slice.
//
// It is a pure function of coord. It panics with an error wrapping ErrCoordOverflow if
// coord is at the edge of the int16 domain: use TryAdjacents to get the error instead.
func Adjacents(coord Coord) []Coord {
	neighbors, err := coord.Neighbors()
	if err != nil {
		panic(err)
	}
	return neighbors[:]
}
