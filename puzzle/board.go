// Package puzzle - immutable board state and moves.
package puzzle

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/tilesearch/core"
)

// Sentinel errors for board and problem construction.
var (
	// ErrBadSize indicates a puzzle side length below the 2×2 minimum.
	ErrBadSize = errors.New("puzzle: size must be at least 2")

	// ErrBadTiles indicates the tiles are not a permutation of 0..N²-1
	// with exactly one blank.
	ErrBadTiles = errors.New("puzzle: tiles must be a permutation of 0..N²-1")

	// ErrBadDepth indicates a negative scramble depth.
	ErrBadDepth = errors.New("puzzle: scramble depth must be non-negative")

	// ErrSizeMismatch indicates initial and goal boards of different sizes.
	ErrSizeMismatch = errors.New("puzzle: initial and goal sizes differ")
)

// Move is the direction the blank moves. Moves are the domain's
// core.Action implementation.
type Move int8

const (
	// Up moves the blank one row up.
	Up Move = iota
	// Down moves the blank one row down.
	Down
	// Left moves the blank one column left.
	Left
	// Right moves the blank one column right.
	Right
)

// AllMoves lists every move in canonical enumeration order.
// Genetic search uses it as the chromosome alphabet.
var AllMoves = []core.Action{Up, Down, Left, Right}

// String returns the canonical upper-case move label.
func (m Move) String() string {
	switch m {
	case Up:
		return "UP"
	case Down:
		return "DOWN"
	case Left:
		return "LEFT"
	case Right:
		return "RIGHT"
	default:
		return fmt.Sprintf("Move(%d)", int8(m))
	}
}

// Opposite returns the move that undoes m.
func (m Move) Opposite() Move {
	switch m {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// delta returns the (row, col) displacement of the blank under m.
func (m Move) delta() (int, int) {
	switch m {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	default:
		return 0, 1
	}
}

// Board is an immutable sliding-tile configuration: an N×N grid flattened
// row-major, one byte per tile, tile 0 being the blank. Boards are value
// types; copying is cheap and two boards are equal iff their keys are equal.
type Board struct {
	size  int
	tiles string // row-major tile labels; byte value 0 is the blank
	blank int    // cached index of the blank within tiles
}

// NewBoard validates tiles as a permutation of 0..size²-1 and returns the
// board. The slice is copied; the caller keeps ownership of tiles.
func NewBoard(size int, tiles []int) (Board, error) {
	if size < 2 {
		return Board{}, fmt.Errorf("%w: got %d", ErrBadSize, size)
	}
	n := size * size
	if len(tiles) != n {
		return Board{}, fmt.Errorf("%w: got %d tiles for size %d", ErrBadTiles, len(tiles), size)
	}

	seen := make([]bool, n)
	buf := make([]byte, n)
	blank := -1
	for i, t := range tiles {
		if t < 0 || t >= n || seen[t] {
			return Board{}, fmt.Errorf("%w: tile %d at index %d", ErrBadTiles, t, i)
		}
		seen[t] = true
		buf[i] = byte(t)
		if t == 0 {
			blank = i
		}
	}

	return Board{size: size, tiles: string(buf), blank: blank}, nil
}

// Solved returns the canonical goal board for size: tiles ascending with
// the blank last.
func Solved(size int) (Board, error) {
	if size < 2 {
		return Board{}, fmt.Errorf("%w: got %d", ErrBadSize, size)
	}
	n := size * size
	buf := make([]byte, n)
	for i := 0; i < n-1; i++ {
		buf[i] = byte(i + 1)
	}
	buf[n-1] = 0
	return Board{size: size, tiles: string(buf), blank: n - 1}, nil
}

// Key returns the canonical encoding of the board. The side length is
// implied by the length of the tile string, so the tiles alone are a
// collision-free key.
func (b Board) Key() string { return b.tiles }

// Size returns the side length N.
func (b Board) Size() int { return b.size }

// Tile returns the label at (row, col), 0 for the blank.
func (b Board) Tile(row, col int) int { return int(b.tiles[row*b.size+col]) }

// Tiles returns the row-major tile labels as a fresh slice.
func (b Board) Tiles() []int {
	out := make([]int, len(b.tiles))
	for i := 0; i < len(b.tiles); i++ {
		out[i] = int(b.tiles[i])
	}
	return out
}

// Blank returns the blank's (row, col) position.
func (b Board) Blank() (int, int) { return b.blank / b.size, b.blank % b.size }

// legal reports whether m keeps the blank on the grid.
func (b Board) legal(m Move) bool {
	row, col := b.Blank()
	dr, dc := m.delta()
	row, col = row+dr, col+dc
	return row >= 0 && row < b.size && col >= 0 && col < b.size
}

// apply swaps the blank with the tile in direction m. Callers must have
// checked legality; apply is the only mutation path and it always returns a
// fresh board.
func (b Board) apply(m Move) Board {
	dr, dc := m.delta()
	swap := b.blank + dr*b.size + dc

	buf := []byte(b.tiles)
	buf[b.blank], buf[swap] = buf[swap], buf[b.blank]
	return Board{size: b.size, tiles: string(buf), blank: swap}
}

// String renders the board as a grid, the blank as ".", e.g.
//
//	 1  2  3
//	 4  .  6
//	 7  5  8
func (b Board) String() string {
	var sb strings.Builder
	for r := 0; r < b.size; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < b.size; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			if t := b.Tile(r, c); t == 0 {
				sb.WriteString(" .")
			} else {
				fmt.Fprintf(&sb, "%2d", t)
			}
		}
	}
	return sb.String()
}
