package grid_test

import (
	. "github.com/janpfeifer/hexhive/internal/grid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"math"
	"testing"
)

func TestCoordString(t *testing.T) {
	assert.Equal(t, "(3, -1)", NewCoord(3, -1).String())
	assert.Equal(t, []string{"(0, 0)", "(1, 2)"}, CoordStrings([]Coord{{0, 0}, {1, 2}}))
}

func TestSortCoords(t *testing.T) {
	coords := []Coord{{2, 1}, {0, 1}, {5, -1}, {-3, 0}}
	SortCoords(coords)
	assert.Equal(t, []Coord{{5, -1}, {-3, 0}, {0, 1}, {2, 1}}, coords)
}

func TestDirections(t *testing.T) {
	c := NewCoord(-2, 5)
	for _, dir := range Directions {
		neighbor, err := c.Neighbor(dir)
		require.NoError(t, err)
		back, err := neighbor.Neighbor(dir.Opposite())
		require.NoError(t, err)
		assert.Equal(t, c, back, "going %s and then %s", dir, dir.Opposite())
		assert.Equal(t, dir, dir.Opposite().Opposite())
	}
	assert.Equal(t, "NorthWest", NorthWest.String())
	assert.Equal(t, "SouthEast", SouthEast.String())
	assert.Equal(t, SouthEast, NorthWest.Opposite())
	assert.Equal(t, East, West.Opposite())

	_, err := c.Neighbor(Direction(NumNeighbors))
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrCoordOverflow))
}

func TestNeighborOverflow(t *testing.T) {
	edge := NewCoord(math.MaxInt16, 0)
	_, err := edge.Neighbor(East)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCoordOverflow))
	_, err = edge.Neighbor(NorthEast)
	require.ErrorIs(t, err, ErrCoordOverflow)
	neighbor, err := edge.Neighbor(West)
	require.NoError(t, err)
	assert.Equal(t, NewCoord(math.MaxInt16-1, 0), neighbor)

	_, err = NewCoord(0, math.MinInt16).Neighbor(NorthWest)
	require.ErrorIs(t, err, ErrCoordOverflow)
	_, err = NewCoord(math.MinInt16, 0).Neighbor(SouthWest)
	require.ErrorIs(t, err, ErrCoordOverflow)
	_, err = NewCoord(0, math.MaxInt16).Neighbor(SouthEast)
	require.ErrorIs(t, err, ErrCoordOverflow)

	_, err = NewCoord(math.MaxInt16, math.MaxInt16).Neighbors()
	require.ErrorIs(t, err, ErrCoordOverflow)

	// Coordinates one step away from the edge are fine.
	neighbors, err := NewCoord(math.MaxInt16-1, math.MinInt16+1).Neighbors()
	require.NoError(t, err)
	assert.Equal(t, NewCoord(math.MaxInt16, math.MinInt16), neighbors[NorthEast])
}

func TestAdjacentsOverflow(t *testing.T) {
	g := newGrid()
	edge := NewCoord(math.MaxInt16, 0)
	g.Add(edge, 1)

	// Adjacents rejects the position instead of wrapping around.
	require.Panics(t, func() { g.Adjacents(edge) })

	adjacents, err := TryAdjacents[testPiece](g, edge)
	require.ErrorIs(t, err, ErrCoordOverflow)
	assert.Nil(t, adjacents)

	adjacents, err = TryAdjacents[testPiece](g, NewCoord(3, 1))
	require.NoError(t, err)
	assert.Len(t, adjacents, NumNeighbors)
}
