package grid

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

type idPiece int

func (idPiece) HexPiece() {}

func TestBoundsRecomputedLazily(t *testing.T) {
	g := NewDynamicHexGrid[idPiece]()

	// Empty grid: nothing to recompute.
	_ = g.Min()
	assert.Equal(t, 0, g.numRecomputes)

	// Mutations don't scan.
	for ii := range 10 {
		g.Add(NewCoord(int16(ii), int16(-ii)), idPiece(ii))
	}
	assert.True(t, g.boundsDirty)
	assert.Equal(t, 0, g.numRecomputes)

	// First query scans once, following queries reuse the cache.
	assert.Equal(t, NewCoord(0, -9), g.Min())
	assert.Equal(t, NewCoord(9, 0), g.Max())
	assert.Equal(t, 10, g.Height())
	assert.Equal(t, 10, g.Width())
	assert.False(t, g.boundsDirty)
	assert.Equal(t, 1, g.numRecomputes)

	// Overwriting and removing absent positions don't change the set of keys.
	g.Add(NewCoord(3, -3), idPiece(100))
	g.Remove(NewCoord(50, 50))
	assert.False(t, g.boundsDirty)
	_ = g.Max()
	assert.Equal(t, 1, g.numRecomputes)

	// Several mutations between queries are coalesced into one scan.
	g.Remove(NewCoord(9, -9))
	g.Remove(NewCoord(0, 0))
	g.Add(NewCoord(-4, 4), idPiece(-4))
	assert.Equal(t, 1, g.numRecomputes)
	assert.Equal(t, NewCoord(-4, -8), g.Min())
	assert.Equal(t, NewCoord(8, 4), g.Max())
	assert.Equal(t, 2, g.numRecomputes)

	// Removing all pieces recomputes to the degenerate (0, 0) bounds.
	for c := range g.Coords() {
		g.Remove(c)
	}
	assert.Equal(t, Coord{}, g.Min())
	assert.Equal(t, Coord{}, g.Max())
	assert.Equal(t, 3, g.numRecomputes)
}
