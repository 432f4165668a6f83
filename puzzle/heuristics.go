// Package puzzle - admissible distance heuristics.
//
// Each constructor binds the problem's goal mapping once (tile → goal
// position) and returns a pure core.Heuristic closure. All three return 0 on
// the goal board and never overestimate the true remaining move count.
//
// Dominance: Misplaced ≤ Manhattan ≤ LinearConflict for every state, so
// LinearConflict prunes at least as much as Manhattan, which prunes at least
// as much as Misplaced.
package puzzle

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/tilesearch/core"
)

// ErrUnknownHeuristic is returned by HeuristicByName for unrecognized names.
var ErrUnknownHeuristic = errors.New("puzzle: unknown heuristic")

// HeuristicByName resolves a heuristic by its stable name: "misplaced",
// "manhattan" or "linear_conflict". Collaborators that configure runs from
// tables or flags use this instead of function references.
func HeuristicByName(p *Problem, name string) (core.Heuristic, error) {
	switch name {
	case "misplaced":
		return Misplaced(p), nil
	case "manhattan":
		return Manhattan(p), nil
	case "linear_conflict":
		return LinearConflict(p), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownHeuristic, name)
	}
}

// Misplaced counts tiles (excluding the blank) that are not on their goal
// position. Admissible; weak, because it ignores how far each tile is.
//
// Complexity: O(N²) per evaluation.
func Misplaced(p *Problem) core.Heuristic {
	goal := p.goal.tiles
	return func(s core.State) float64 {
		b := s.(Board)
		misplaced := 0
		for i := 0; i < len(b.tiles); i++ {
			if b.tiles[i] != 0 && b.tiles[i] != goal[i] {
				misplaced++
			}
		}
		return float64(misplaced)
	}
}

// Manhattan sums, over all non-blank tiles, the row+column distance from the
// tile's position to its goal position. Admissible; dominates Misplaced.
//
// Complexity: O(N²) per evaluation.
func Manhattan(p *Problem) core.Heuristic {
	size := p.size
	goalIndex := p.goalIndex
	return func(s core.State) float64 {
		b := s.(Board)
		total := 0
		for i := 0; i < len(b.tiles); i++ {
			t := int(b.tiles[i])
			if t == 0 {
				continue
			}
			g := goalIndex[t]
			total += abs(i/size-g/size) + abs(i%size-g%size)
		}
		return float64(total)
	}
}

// LinearConflict is Manhattan plus 2 for every pair of tiles that share a
// goal row (or column), currently sit in that same row (or column), and are
// reversed relative to their goal order. Each such pair forces at least one
// tile to temporarily leave the line, costing two extra moves beyond its
// Manhattan distance. Admissible; dominates Manhattan.
//
// Complexity: O(N³) per evaluation (O(N²) pairs per line, N lines each way).
func LinearConflict(p *Problem) core.Heuristic {
	size := p.size
	goalIndex := p.goalIndex
	manhattan := Manhattan(p)
	return func(s core.State) float64 {
		b := s.(Board)
		conflicts := 0

		// Row conflicts: tiles in their goal row, reversed by goal column.
		for r := 0; r < size; r++ {
			conflicts += lineConflicts(b, goalIndex, size, r, true)
		}
		// Column conflicts, symmetrically.
		for c := 0; c < size; c++ {
			conflicts += lineConflicts(b, goalIndex, size, c, false)
		}

		return manhattan(s) + 2*float64(conflicts)
	}
}

// lineConflicts counts reversed pairs among tiles whose goal line equals the
// given row (byRow) or column (!byRow) and that currently sit in that line.
func lineConflicts(b Board, goalIndex []int, size, line int, byRow bool) int {
	// goalSlots collects, in traversal order, the goal offset along the line
	// of each tile that belongs to this line and currently sits in it.
	goalSlots := make([]int, 0, size)
	for i := 0; i < size; i++ {
		var idx int
		if byRow {
			idx = line*size + i
		} else {
			idx = i*size + line
		}
		t := int(b.tiles[idx])
		if t == 0 {
			continue
		}
		g := goalIndex[t]
		if byRow {
			if g/size == line {
				goalSlots = append(goalSlots, g%size)
			}
		} else {
			if g%size == line {
				goalSlots = append(goalSlots, g/size)
			}
		}
	}

	conflicts := 0
	for i := 0; i < len(goalSlots); i++ {
		for j := i + 1; j < len(goalSlots); j++ {
			if goalSlots[i] > goalSlots[j] {
				conflicts++
			}
		}
	}
	return conflicts
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
