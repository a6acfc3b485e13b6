package hive

// Color of the player owning a piece. Hive is played by exactly 2 players.
type Color uint8

const (
	ColorWhite Color = iota
	ColorBlack
)

// NumColors is the number of players.
const NumColors = 2

//go:generate go tool enumer -type=Color -trimprefix=Color -values -text color.go

// Opponent returns the other color.
func (c Color) Opponent() Color {
	return 1 - c
}

// letter used in the compact piece representation.
func (c Color) letter() string {
	if c == ColorWhite {
		return "w"
	}
	return "b"
}
