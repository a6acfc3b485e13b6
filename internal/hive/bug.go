package hive

import "fmt"

// Bug is the kind of insect of a piece: the 5 basic types of the game.
type Bug uint8

const (
	Ant Bug = iota
	Beetle
	Grasshopper
	QueenBee
	Spider

	// NumBugs is the number of bug kinds, it is not a valid Bug.
	NumBugs
)

var (
	BugLetters  = [NumBugs]string{"A", "B", "G", "Q", "S"}
	BugNames    = [NumBugs]string{"Ant", "Beetle", "Grasshopper", "QueenBee", "Spider"}
	LetterToBug = map[string]Bug{"A": Ant, "B": Beetle, "G": Grasshopper, "Q": QueenBee, "S": Spider}

	// Bugs enumerates all the bugs.
	Bugs = [NumBugs]Bug{Ant, Beetle, Grasshopper, QueenBee, Spider}
)

// IsValid returns whether b is one of the 5 bugs.
func (b Bug) IsValid() bool {
	return b < NumBugs
}

// String returns the long bug name.
func (b Bug) String() string {
	if !b.IsValid() {
		return fmt.Sprintf("Bug(%d)", b)
	}
	return BugNames[b]
}

// Letter returns the one letter abbreviation of the bug, or "?" if invalid.
func (b Bug) Letter() string {
	if !b.IsValid() {
		return "?"
	}
	return BugLetters[b]
}

// CanClimb returns whether the bug can move on top of other pieces. Only the Beetle can.
func (b Bug) CanClimb() bool {
	return b == Beetle
}
