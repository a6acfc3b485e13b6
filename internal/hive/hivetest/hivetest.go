// Package hivetest provides helper functions to create tests using Hive grids.
package hivetest

import (
	"github.com/janpfeifer/hexhive/internal/grid"
	"github.com/janpfeifer/hexhive/internal/hive"
	"github.com/janpfeifer/must"
)

// PieceOnGrid represents a position and ownership of a piece in the grid.
type PieceOnGrid struct {
	Coord grid.Coord
	Color hive.Color
	Bug   hive.Bug
}

// BuildGrid from a collection of pieces, placed in order. A piece on an already
// occupied position is stacked on top of it, so it must be a Beetle.
//
// It panics if the layout is invalid.
func BuildGrid(layout []PieceOnGrid) *hive.Grid {
	g := hive.NewGrid()
	for _, p := range layout {
		must.M(g.Stack(p.Coord, hive.NewPiece(p.Color, p.Bug)))
	}
	return g
}
