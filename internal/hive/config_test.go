package hive_test

import (
	"fmt"
	"github.com/janpfeifer/hexhive/internal/grid"
	. "github.com/janpfeifer/hexhive/internal/hive"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestNewGridFromConfig(t *testing.T) {
	g, err := NewGridFromConfig("")
	require.NoError(t, err)
	assert.Equal(t, 0, g.MaxStack())
	assert.Equal(t, 0, g.NumPieces())

	g, err = NewGridFromConfig("capacity=32,max_stack=2")
	require.NoError(t, err)
	assert.Equal(t, 2, g.MaxStack())

	c := grid.NewCoord(0, 0)
	require.NoError(t, g.Stack(c, NewPiece(ColorWhite, Spider)))
	require.NoError(t, g.Stack(c, NewPiece(ColorBlack, Beetle)))
	err = g.Stack(c, NewPiece(ColorWhite, Beetle))
	assert.True(t, errors.Is(err, ErrStackFull))
	assert.Equal(t, 2, g.StackHeight(c))

	// A stack placed on an empty position is also limited.
	tall, _ := g.At(c)
	tall = NewBeetle(ColorWhite, &tall)
	err = g.Stack(grid.NewCoord(1, 1), tall)
	assert.True(t, errors.Is(err, ErrStackFull))
	assert.False(t, g.Occupied(grid.NewCoord(1, 1)))
	require.NoError(t, g.Stack(grid.NewCoord(1, 1), tall.Top()))
	assert.Equal(t, 1, g.StackHeight(grid.NewCoord(1, 1)))

	// Capacity is only a hint, but absurd values are rejected.
	g, err = NewGridFromConfig(fmt.Sprintf("capacity=%d", MaxCapacity))
	require.NoError(t, err)
	assert.Equal(t, 0, g.NumPieces())

	invalidConfigs := []string{"capacity=-1", "max_stack=-3", "max_stack=x", "unknown=1", "capacity=3,size",
		fmt.Sprintf("capacity=%d", MaxCapacity+1), "capacity=4000000000"}
	for _, config := range invalidConfigs {
		_, err = NewGridFromConfig(config)
		assert.Error(t, err, "config %q", config)
	}
}
