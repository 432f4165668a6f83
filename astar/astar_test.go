package astar_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tilesearch/astar"
	"github.com/katalvlaran/tilesearch/core"
	"github.com/katalvlaran/tilesearch/puzzle"
)

var _ core.Algorithm = (*astar.AStar)(nil)

// zero is the trivial heuristic; A* degenerates to uniform-cost search,
// which the optimality tests use as ground truth.
func zero(core.State) float64 { return 0 }

func TestNew_Validation(t *testing.T) {
	p, err := puzzle.New(3)
	require.NoError(t, err)
	h := puzzle.Manhattan(p)

	_, err = astar.New(nil)
	assert.ErrorIs(t, err, astar.ErrNilHeuristic)

	_, err = astar.NewWeighted(h, 0.5)
	assert.ErrorIs(t, err, astar.ErrBadWeight)

	_, err = astar.New(h, astar.WithMaxExpansions(-1))
	assert.ErrorIs(t, err, astar.ErrOptionViolation)

	_, err = astar.New(h, astar.WithTimeLimit(-time.Second))
	assert.ErrorIs(t, err, astar.ErrOptionViolation)

	plain, err := astar.New(h)
	require.NoError(t, err)
	assert.Equal(t, "astar", plain.Name())
	assert.Equal(t, 1.0, plain.Weight())

	weighted, err := astar.NewWeighted(h, 2)
	require.NoError(t, err)
	assert.Equal(t, "astar_weighted", weighted.Name())
	assert.Equal(t, 2.0, weighted.Weight())

	greedy, err := astar.NewGreedy(h)
	require.NoError(t, err)
	assert.Equal(t, "greedy", greedy.Name())
}

func TestSearch_NilProblem(t *testing.T) {
	alg, err := astar.New(zero)
	require.NoError(t, err)
	_, err = alg.Search(nil)
	assert.ErrorIs(t, err, core.ErrNilProblem)
}

func TestSearch_SolvedAtStart(t *testing.T) {
	p, err := puzzle.New(3)
	require.NoError(t, err)
	alg, err := astar.New(puzzle.Manhattan(p))
	require.NoError(t, err)

	res, err := alg.Search(p)
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, core.ReasonGoal, res.Reason)
	assert.Zero(t, res.SolutionCost())
	assert.Empty(t, res.SolutionPath())
	assert.Zero(t, res.NodesExpanded)
}

func TestSearch_TwoMoveInstance(t *testing.T) {
	start, err := puzzle.NewBoard(3, []int{1, 2, 3, 4, 0, 6, 7, 5, 8})
	require.NoError(t, err)
	p, err := puzzle.New(3, puzzle.WithInitial(start))
	require.NoError(t, err)
	alg, err := astar.New(puzzle.Manhattan(p))
	require.NoError(t, err)

	res, err := alg.Search(p)
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.Equal(t, 2.0, res.SolutionCost())
	assert.Equal(t, 2, res.SolutionDepth())
	assert.Equal(t, []core.Action{puzzle.Down, puzzle.Right}, res.SolutionPath())

	// Replaying the path from the initial state must land on the goal.
	s := p.InitialState()
	for _, a := range res.SolutionPath() {
		s, err = p.Result(s, a)
		require.NoError(t, err)
	}
	assert.True(t, p.IsGoal(s))
}

// TestSearch_Optimal cross-checks admissible-heuristic A* against
// uniform-cost search on scrambled instances.
func TestSearch_Optimal(t *testing.T) {
	for depth := 2; depth <= 12; depth += 2 {
		for seed := int64(1); seed <= 5; seed++ {
			p, err := puzzle.Scrambled(3, depth, seed)
			require.NoError(t, err)

			ucs, err := astar.New(zero)
			require.NoError(t, err)
			truth, err := ucs.Search(p)
			require.NoError(t, err)
			require.True(t, truth.Success)

			for _, name := range []string{"misplaced", "manhattan", "linear_conflict"} {
				h, err := puzzle.HeuristicByName(p, name)
				require.NoError(t, err)
				alg, err := astar.New(h)
				require.NoError(t, err)

				res, err := alg.Search(p)
				require.NoError(t, err)
				require.True(t, res.Success, "%s depth=%d seed=%d", name, depth, seed)
				assert.Equal(t, truth.SolutionCost(), res.SolutionCost(),
					"%s depth=%d seed=%d", name, depth, seed)
			}
		}
	}
}

// TestSearch_StrongerHeuristicExpandsLess compares total expansion counts of
// the three heuristics on hard instances. Manhattan dominates misplaced and
// the gap is wide at depth 20.
func TestSearch_StrongerHeuristicExpandsLess(t *testing.T) {
	expansions := func(name string) int {
		total := 0
		for seed := int64(1); seed <= 5; seed++ {
			p, err := puzzle.Scrambled(3, 20, seed)
			require.NoError(t, err)
			h, err := puzzle.HeuristicByName(p, name)
			require.NoError(t, err)
			alg, err := astar.New(h)
			require.NoError(t, err)
			res, err := alg.Search(p)
			require.NoError(t, err)
			require.True(t, res.Success)
			total += res.NodesExpanded
		}
		return total
	}

	mis := expansions("misplaced")
	man := expansions("manhattan")
	lin := expansions("linear_conflict")
	assert.Less(t, man, mis, "manhattan should expand fewer nodes than misplaced")
	assert.LessOrEqual(t, lin, man, "linear conflict should not expand more than manhattan")
}

// TestWeighted_CostBound checks the w×optimal guarantee and that the inflated
// heuristic usually pays off in expansions.
func TestWeighted_CostBound(t *testing.T) {
	const w = 2.0
	faster := 0
	for seed := int64(1); seed <= 10; seed++ {
		p, err := puzzle.Scrambled(3, 20, seed)
		require.NoError(t, err)
		h := puzzle.Manhattan(p)

		plain, err := astar.New(h)
		require.NoError(t, err)
		optimal, err := plain.Search(p)
		require.NoError(t, err)
		require.True(t, optimal.Success)

		weighted, err := astar.NewWeighted(h, w)
		require.NoError(t, err)
		res, err := weighted.Search(p)
		require.NoError(t, err)
		require.True(t, res.Success, "seed=%d", seed)

		assert.LessOrEqual(t, res.SolutionCost(), w*optimal.SolutionCost(), "seed=%d", seed)
		if res.NodesExpanded < optimal.NodesExpanded {
			faster++
		}
	}
	assert.Greater(t, faster, 5, "weighted A* should beat plain A* expansions on most hard instances")
}

// TestGreedy_CompleteWithoutGuarantee checks that greedy always reaches the
// goal on the finite 3×3 space, at a cost no better than optimal.
func TestGreedy_CompleteWithoutGuarantee(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		p, err := puzzle.Scrambled(3, 20, seed)
		require.NoError(t, err)
		h := puzzle.Manhattan(p)

		plain, err := astar.New(h)
		require.NoError(t, err)
		optimal, err := plain.Search(p)
		require.NoError(t, err)

		greedy, err := astar.NewGreedy(h)
		require.NoError(t, err)
		res, err := greedy.Search(p)
		require.NoError(t, err)

		require.True(t, res.Success, "seed=%d", seed)
		assert.GreaterOrEqual(t, res.SolutionCost(), optimal.SolutionCost(), "seed=%d", seed)
	}
}

func TestSearch_ExpansionBudget(t *testing.T) {
	p, err := puzzle.Scrambled(3, 20, 3)
	require.NoError(t, err)
	alg, err := astar.New(puzzle.Manhattan(p), astar.WithMaxExpansions(1))
	require.NoError(t, err)

	res, err := alg.Search(p)
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, core.ReasonBudget, res.Reason)
	assert.Equal(t, core.NoNode, res.Node)
	assert.Equal(t, 1, res.NodesExpanded)
	assert.Nil(t, res.SolutionPath())
}

func TestSearch_TimeBudget(t *testing.T) {
	p, err := puzzle.Scrambled(3, 20, 3)
	require.NoError(t, err)
	alg, err := astar.New(puzzle.Manhattan(p), astar.WithTimeLimit(time.Nanosecond))
	require.NoError(t, err)

	res, err := alg.Search(p)
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, core.ReasonBudget, res.Reason)
}

// TestSearch_Exhausted runs A* on an unreachable goal: swapping two tiles of
// the solved 2×2 board flips permutation parity, so no move sequence
// connects the two. The reachable component has 12 states.
func TestSearch_Exhausted(t *testing.T) {
	start, err := puzzle.NewBoard(2, []int{2, 1, 3, 0})
	require.NoError(t, err)
	p, err := puzzle.New(2, puzzle.WithInitial(start))
	require.NoError(t, err)
	alg, err := astar.New(puzzle.Manhattan(p))
	require.NoError(t, err)

	res, err := alg.Search(p)
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, core.ReasonExhausted, res.Reason)
	assert.Equal(t, 12, res.NodesExpanded)
	assert.Nil(t, res.SolutionPath())
}

// TestSearch_Deterministic re-runs one search and expects identical
// trajectories thanks to FIFO tie-breaking.
func TestSearch_Deterministic(t *testing.T) {
	p, err := puzzle.Scrambled(3, 18, 11)
	require.NoError(t, err)
	alg, err := astar.New(puzzle.Manhattan(p))
	require.NoError(t, err)

	first, err := alg.Search(p)
	require.NoError(t, err)
	second, err := alg.Search(p)
	require.NoError(t, err)

	assert.Equal(t, first.NodesExpanded, second.NodesExpanded)
	assert.Equal(t, first.SolutionCost(), second.SolutionCost())
	assert.Equal(t, first.SolutionPath(), second.SolutionPath())
}
