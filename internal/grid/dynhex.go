package grid

import (
	"github.com/janpfeifer/hexhive/internal/generics"
	"iter"
	"k8s.io/klog/v2"
	"maps"
)

// DynamicHexGrid is a sparse hexagonal grid that grows in any direction as pieces are added.
//
// The bounding box (Min, Max, Height, Width) is recomputed lazily: mutations only
// mark it dirty, and the next bounds query scans all positions once. Queries after
// that are O(1) until the next mutation that changes the set of occupied positions.
//
// The zero value is an empty grid ready to use. It is not safe for concurrent use,
// including the read-only bounds queries, see Synchronized.
type DynamicHexGrid[P Piece] struct {
	pieces map[Coord]P

	// Cached bounds, only valid if !boundsDirty.
	boundsDirty            bool
	minX, maxX, minY, maxY int16

	// numRecomputes counts the scans over all positions, for testing.
	numRecomputes int
}

// Assert DynamicHexGrid is a Grid.
var _ Grid[Piece] = (*DynamicHexGrid[Piece])(nil)

// NewDynamicHexGrid creates an empty grid.
func NewDynamicHexGrid[P Piece]() *DynamicHexGrid[P] {
	return NewDynamicHexGridWithCapacity[P](0)
}

// NewDynamicHexGridWithCapacity creates an empty grid with space reserved for the given number of pieces.
func NewDynamicHexGridWithCapacity[P Piece](capacity int) *DynamicHexGrid[P] {
	return &DynamicHexGrid[P]{pieces: make(map[Coord]P, capacity)}
}

// Clone makes a copy of the grid. Pieces are copied by value.
func (g *DynamicHexGrid[P]) Clone() *DynamicHexGrid[P] {
	newG := &DynamicHexGrid[P]{}
	*newG = *g
	newG.pieces = maps.Clone(g.pieces)
	if newG.pieces == nil {
		newG.pieces = make(map[Coord]P)
	}
	newG.numRecomputes = 0
	return newG
}

// ensureBounds recomputes minX, maxX, minY and maxY in one pass over the occupied positions,
// if they are dirty.
func (g *DynamicHexGrid[P]) ensureBounds() {
	if !g.boundsDirty {
		return
	}
	g.boundsDirty = false
	g.numRecomputes++
	g.minX, g.maxX, g.minY, g.maxY = 0, 0, 0, 0
	first := true
	for coord := range g.pieces {
		x, y := coord.X, coord.Y
		if first || x > g.maxX {
			g.maxX = x
		}
		if first || x < g.minX {
			g.minX = x
		}
		if first || y > g.maxY {
			g.maxY = y
		}
		if first || y < g.minY {
			g.minY = y
		}
		first = false
	}
	if klog.V(2).Enabled() {
		klog.Infof("DynamicHexGrid: recomputed bounds of %d pieces: min=(%d, %d), max=(%d, %d)",
			len(g.pieces), g.minX, g.minY, g.maxX, g.maxY)
	}
}

// Min implements Grid.
func (g *DynamicHexGrid[P]) Min() Coord {
	g.ensureBounds()
	return Coord{X: g.minX, Y: g.minY}
}

// Max implements Grid.
func (g *DynamicHexGrid[P]) Max() Coord {
	g.ensureBounds()
	return Coord{X: g.maxX, Y: g.maxY}
}

// Height implements Grid. It is 0 for an empty grid, even though Min and Max are both (0, 0).
func (g *DynamicHexGrid[P]) Height() int {
	if len(g.pieces) == 0 {
		return 0
	}
	g.ensureBounds()
	// Computed in int: the span of the int16 range doesn't fit an int16.
	return int(g.maxY) - int(g.minY) + 1
}

// Width implements Grid. It is 0 for an empty grid, even though Min and Max are both (0, 0).
func (g *DynamicHexGrid[P]) Width() int {
	if len(g.pieces) == 0 {
		return 0
	}
	g.ensureBounds()
	return int(g.maxX) - int(g.minX) + 1
}

// Add implements Grid. Overwriting an occupied position doesn't change the bounds.
func (g *DynamicHexGrid[P]) Add(coord Coord, piece P) {
	if g.pieces == nil {
		g.pieces = make(map[Coord]P)
	}
	if _, found := g.pieces[coord]; !found {
		g.boundsDirty = true
	}
	g.pieces[coord] = piece
}

// Remove implements Grid. Removing an empty position is a no-op.
func (g *DynamicHexGrid[P]) Remove(coord Coord) {
	if _, found := g.pieces[coord]; !found {
		return
	}
	delete(g.pieces, coord)
	g.boundsDirty = true
}

// At implements Grid.
func (g *DynamicHexGrid[P]) At(coord Coord) (piece P, found bool) {
	piece, found = g.pieces[coord]
	return
}

// Occupied implements Grid.
func (g *DynamicHexGrid[P]) Occupied(coord Coord) bool {
	_, found := g.pieces[coord]
	return found
}

// NumPieces implements Grid.
func (g *DynamicHexGrid[P]) NumPieces() int {
	return len(g.pieces)
}

// Adjacents implements Grid, see the package function Adjacents.
func (g *DynamicHexGrid[P]) Adjacents(coord Coord) []Coord {
	return Adjacents(coord)
}

// Coords iterates over the occupied positions, in no particular order.
func (g *DynamicHexGrid[P]) Coords() iter.Seq[Coord] {
	return maps.Keys(g.pieces)
}

// All iterates over the occupied positions and their pieces, in no particular order.
func (g *DynamicHexGrid[P]) All() iter.Seq2[Coord, P] {
	return maps.All(g.pieces)
}

// SortedCoords returns the occupied positions sorted by y and then x. It returns a newly allocated slice.
func (g *DynamicHexGrid[P]) SortedCoords() []Coord {
	coords := generics.KeysSlice(g.pieces)
	SortCoords(coords)
	return coords
}
