package puzzle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tilesearch/core"
	"github.com/katalvlaran/tilesearch/puzzle"
)

// compile-time interface checks
var (
	_ core.State  = puzzle.Board{}
	_ core.Action = puzzle.Up
)

func TestNewBoard_Validation(t *testing.T) {
	cases := []struct {
		name  string
		size  int
		tiles []int
		err   error
	}{
		{"size below minimum", 1, []int{0}, puzzle.ErrBadSize},
		{"wrong tile count", 2, []int{1, 2, 3, 0, 4}, puzzle.ErrBadTiles},
		{"duplicate tile", 2, []int{1, 1, 3, 0}, puzzle.ErrBadTiles},
		{"tile out of range", 2, []int{1, 2, 4, 0}, puzzle.ErrBadTiles},
		{"negative tile", 2, []int{1, 2, -1, 0}, puzzle.ErrBadTiles},
		{"missing blank", 2, []int{4, 1, 2, 3}, puzzle.ErrBadTiles},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := puzzle.NewBoard(tc.size, tc.tiles)
			assert.ErrorIs(t, err, tc.err)
		})
	}

	b, err := puzzle.NewBoard(3, []int{1, 2, 3, 4, 0, 6, 7, 5, 8})
	require.NoError(t, err)
	assert.Equal(t, 3, b.Size())
	assert.Equal(t, 0, b.Tile(1, 1))
	assert.Equal(t, 6, b.Tile(1, 2))
	row, col := b.Blank()
	assert.Equal(t, 1, row)
	assert.Equal(t, 1, col)
	assert.Equal(t, []int{1, 2, 3, 4, 0, 6, 7, 5, 8}, b.Tiles())
}

func TestSolved_Canonical(t *testing.T) {
	b, err := puzzle.Solved(3)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 0}, b.Tiles())
	row, col := b.Blank()
	assert.Equal(t, 2, row)
	assert.Equal(t, 2, col)

	_, err = puzzle.Solved(0)
	assert.ErrorIs(t, err, puzzle.ErrBadSize)
}

func TestBoard_KeyEquality(t *testing.T) {
	a, err := puzzle.NewBoard(3, []int{1, 2, 3, 4, 5, 6, 7, 8, 0})
	require.NoError(t, err)
	b, err := puzzle.Solved(3)
	require.NoError(t, err)
	c, err := puzzle.NewBoard(3, []int{1, 2, 3, 4, 5, 6, 7, 0, 8})
	require.NoError(t, err)

	assert.Equal(t, a.Key(), b.Key())
	assert.NotEqual(t, a.Key(), c.Key())
}

func TestMove_StringAndOpposite(t *testing.T) {
	assert.Equal(t, "UP", puzzle.Up.String())
	assert.Equal(t, "DOWN", puzzle.Down.String())
	assert.Equal(t, "LEFT", puzzle.Left.String())
	assert.Equal(t, "RIGHT", puzzle.Right.String())

	for _, a := range puzzle.AllMoves {
		m := a.(puzzle.Move)
		assert.Equal(t, m, m.Opposite().Opposite(), "double opposite of %v", m)
		assert.NotEqual(t, m, m.Opposite(), "opposite of %v", m)
	}
}

func TestBoard_String(t *testing.T) {
	b, err := puzzle.NewBoard(3, []int{1, 2, 3, 4, 0, 6, 7, 5, 8})
	require.NoError(t, err)
	want := " 1  2  3\n 4  .  6\n 7  5  8"
	assert.Equal(t, want, b.String())
}
