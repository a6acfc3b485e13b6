package hive

import (
	"github.com/janpfeifer/hexhive/internal/grid"
	"github.com/pkg/errors"
	"strings"
)

var (
	// ErrNotClimber is returned when a piece other than a Beetle is put on top of another piece.
	ErrNotClimber = errors.New("only a Beetle can climb on top of another piece")

	// ErrAlreadyStacked is returned when a Beetle that is already on top of a stack climbs
	// onto another one: it has to leave its stack first.
	ErrAlreadyStacked = errors.New("beetle is already on top of a stack")

	// ErrInvalidPiece is returned by Piece.Validate.
	ErrInvalidPiece = errors.New("invalid piece")
)

// Piece is the stack of pieces at a position of the grid, represented by its top piece.
//
// Only a Beetle can be on top of other pieces, in which case Under points to the
// stack beneath it. Under is nil for all other bugs, and for a Beetle on the ground.
// So a stack of height n is n-1 Beetles over some base piece.
//
// Pieces are values and are never changed in place: stacking creates a new Piece.
// Copies of a Piece share the stack pointed by Under, which must not be modified.
type Piece struct {
	Color Color
	Bug   Bug
	Under *Piece
}

// Assert Piece can be stored in a grid.
var _ grid.Piece = Piece{}

// HexPiece implements grid.Piece.
func (p Piece) HexPiece() {}

// NewPiece returns a piece on the ground.
func NewPiece(color Color, bug Bug) Piece {
	return Piece{Color: color, Bug: bug}
}

// NewBeetle returns a Beetle on top of the given stack, or on the ground if under is nil.
// The stack is copied.
func NewBeetle(color Color, under *Piece) Piece {
	p := Piece{Color: color, Bug: Beetle}
	if under != nil {
		u := *under
		p.Under = &u
	}
	return p
}

// Validate checks that color and bug are valid, and that only Beetles are stacked on top of other pieces.
// It checks the whole stack.
func (p Piece) Validate() error {
	for depth := 0; ; depth++ {
		if !p.Color.IsAColor() {
			return errors.Wrapf(ErrInvalidPiece, "unknown color %s at stack depth %d", p.Color, depth)
		}
		if !p.Bug.IsValid() {
			return errors.Wrapf(ErrInvalidPiece, "unknown bug %s at stack depth %d", p.Bug, depth)
		}
		if p.Under == nil {
			return nil
		}
		if !p.Bug.CanClimb() {
			return errors.Wrapf(ErrInvalidPiece, "%s at stack depth %d is on top of another piece", p.Bug, depth)
		}
		p = *p.Under
	}
}

// Equal compares the whole stack.
func (p Piece) Equal(p2 Piece) bool {
	for {
		if p.Color != p2.Color || p.Bug != p2.Bug {
			return false
		}
		if p.Under == nil || p2.Under == nil {
			return p.Under == p2.Under
		}
		p, p2 = *p.Under, *p2.Under
	}
}

// IsStacked returns whether there are pieces under p.
func (p Piece) IsStacked() bool {
	return p.Under != nil
}

// Height of the stack, including p. It is always >= 1.
func (p Piece) Height() (height int) {
	for height = 1; p.Under != nil; height++ {
		p = *p.Under
	}
	return
}

// Top returns the piece p alone, without the stack under it.
func (p Piece) Top() Piece {
	p.Under = nil
	return p
}

// Underneath returns the stack under p, if there is one.
func (p Piece) Underneath() (under Piece, found bool) {
	if p.Under == nil {
		return
	}
	return *p.Under, true
}

// At returns the stack at the given depth: 0 is p itself, 1 is the stack just under it, etc.
// It returns false if the stack is not that high.
func (p Piece) At(depth int) (Piece, bool) {
	if depth < 0 {
		return Piece{}, false
	}
	for ; depth > 0; depth-- {
		if p.Under == nil {
			return Piece{}, false
		}
		p = *p.Under
	}
	return p, true
}

// Layers returns the pieces of the stack from top to bottom, each one alone (see Top).
func (p Piece) Layers() []Piece {
	layers := make([]Piece, 0, p.Height())
	for {
		layers = append(layers, p.Top())
		if p.Under == nil {
			return layers
		}
		p = *p.Under
	}
}

// HasQueen returns whether there is a QueenBee in the stack, and the color owning it.
func (p Piece) HasQueen() (bool, Color) {
	for {
		if p.Bug == QueenBee {
			return true, p.Color
		}
		if p.Under == nil {
			return false, 0
		}
		p = *p.Under
	}
}

// ClimbOnto returns p on top of the stack under.
//
// It fails with ErrNotClimber if p is not a Beetle, and with ErrAlreadyStacked if p is already
// on top of something.
func (p Piece) ClimbOnto(under Piece) (Piece, error) {
	if !p.Bug.CanClimb() {
		return p, errors.Wrapf(ErrNotClimber, "%s can't climb onto %s", p, under)
	}
	if p.Under != nil {
		return p, errors.Wrapf(ErrAlreadyStacked, "%s can't climb onto %s", p, under)
	}
	p.Under = &under
	return p, nil
}

// String returns the color and bug letters of the top piece, followed by the pieces under it
// in parenthesis, top to bottom. E.g.: "wB(bB,wQ)" is a white Beetle on top of a black Beetle,
// on top of the white QueenBee.
func (p Piece) String() string {
	var sb strings.Builder
	sb.WriteString(p.Color.letter())
	sb.WriteString(p.Bug.Letter())
	if p.Under == nil {
		return sb.String()
	}
	sb.WriteString("(")
	for under := p.Under; under != nil; under = under.Under {
		if under != p.Under {
			sb.WriteString(",")
		}
		sb.WriteString(under.Color.letter())
		sb.WriteString(under.Bug.Letter())
	}
	sb.WriteString(")")
	return sb.String()
}
