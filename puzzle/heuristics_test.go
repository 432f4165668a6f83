package puzzle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tilesearch/puzzle"
)

func TestHeuristics_ZeroAtGoal(t *testing.T) {
	p, err := puzzle.New(3)
	require.NoError(t, err)
	goal := p.Goal()

	assert.Zero(t, puzzle.Misplaced(p)(goal))
	assert.Zero(t, puzzle.Manhattan(p)(goal))
	assert.Zero(t, puzzle.LinearConflict(p)(goal))
}

func TestHeuristics_KnownValues(t *testing.T) {
	p, err := puzzle.New(3)
	require.NoError(t, err)

	// Tiles 5 and 8 are each one slot from home; blank does not count.
	b, err := puzzle.NewBoard(3, []int{1, 2, 3, 4, 0, 6, 7, 5, 8})
	require.NoError(t, err)
	assert.Equal(t, 2.0, puzzle.Misplaced(p)(b))
	assert.Equal(t, 2.0, puzzle.Manhattan(p)(b))
	assert.Equal(t, 2.0, puzzle.LinearConflict(p)(b))

	// 2 and 1 share their goal row in reversed order: one linear conflict
	// adds 2 on top of the Manhattan sum of 2.
	rev, err := puzzle.NewBoard(3, []int{2, 1, 3, 4, 5, 6, 7, 8, 0})
	require.NoError(t, err)
	assert.Equal(t, 2.0, puzzle.Misplaced(p)(rev))
	assert.Equal(t, 2.0, puzzle.Manhattan(p)(rev))
	assert.Equal(t, 4.0, puzzle.LinearConflict(p)(rev))
}

// TestHeuristics_Dominance checks misplaced ≤ manhattan ≤ linear conflict on
// a spread of scrambled boards.
func TestHeuristics_Dominance(t *testing.T) {
	p, err := puzzle.New(3)
	require.NoError(t, err)
	mis, man, lin := puzzle.Misplaced(p), puzzle.Manhattan(p), puzzle.LinearConflict(p)

	for depth := 1; depth <= 40; depth++ {
		for seed := int64(1); seed <= 25; seed++ {
			inst, err := puzzle.Scrambled(3, depth, seed)
			require.NoError(t, err)
			s := inst.InitialState()

			hMis, hMan, hLin := mis(s), man(s), lin(s)
			assert.LessOrEqual(t, hMis, hMan, "depth=%d seed=%d\n%v", depth, seed, s)
			assert.LessOrEqual(t, hMan, hLin, "depth=%d seed=%d\n%v", depth, seed, s)
		}
	}
}

// TestHeuristics_Admissible checks h(s) ≤ true distance over the full
// reachable 3×3 space table.
func TestHeuristics_Admissible(t *testing.T) {
	p, err := puzzle.New(3)
	require.NoError(t, err)
	heuristics := map[string]func(s puzzle.Board) float64{}
	for _, name := range []string{"misplaced", "manhattan", "linear_conflict"} {
		h, err := puzzle.HeuristicByName(p, name)
		require.NoError(t, err)
		heuristics[name] = func(s puzzle.Board) float64 { return h(s) }
	}

	dist := goalDistances(t)
	for depth := 1; depth <= 31; depth += 2 {
		for seed := int64(1); seed <= 20; seed++ {
			inst, err := puzzle.Scrambled(3, depth, seed)
			require.NoError(t, err)
			b := inst.Initial()

			d, ok := dist[b.Key()]
			require.True(t, ok)
			for name, h := range heuristics {
				assert.LessOrEqual(t, h(b), float64(d), "%s on depth=%d seed=%d\n%v", name, depth, seed, b)
			}
		}
	}
}

func TestHeuristicByName(t *testing.T) {
	p, err := puzzle.New(3)
	require.NoError(t, err)

	for _, name := range []string{"misplaced", "manhattan", "linear_conflict"} {
		h, err := puzzle.HeuristicByName(p, name)
		require.NoError(t, err, name)
		assert.Zero(t, h(p.Goal()), name)
	}

	_, err = puzzle.HeuristicByName(p, "euclidean")
	assert.ErrorIs(t, err, puzzle.ErrUnknownHeuristic)
}
