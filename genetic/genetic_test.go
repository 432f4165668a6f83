package genetic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tilesearch/core"
	"github.com/katalvlaran/tilesearch/genetic"
	"github.com/katalvlaran/tilesearch/puzzle"
)

var _ core.Algorithm = (*genetic.Genetic)(nil)

func newProblem(t *testing.T, depth int, seed int64) (*puzzle.Problem, core.Heuristic) {
	t.Helper()
	p, err := puzzle.Scrambled(3, depth, seed)
	require.NoError(t, err)
	return p, puzzle.Manhattan(p)
}

func TestNew_Validation(t *testing.T) {
	p, err := puzzle.New(3)
	require.NoError(t, err)
	h := puzzle.Manhattan(p)

	_, err = genetic.New(nil, genetic.WithAlphabet(puzzle.AllMoves))
	assert.ErrorIs(t, err, genetic.ErrNilHeuristic)

	cases := []struct {
		name string
		opts []genetic.Option
		err  error
	}{
		{"missing alphabet", nil, genetic.ErrEmptyAlphabet},
		{"population of one",
			[]genetic.Option{genetic.WithAlphabet(puzzle.AllMoves), genetic.WithPopulationSize(1)},
			genetic.ErrBadPopulation},
		{"negative mutation rate",
			[]genetic.Option{genetic.WithAlphabet(puzzle.AllMoves), genetic.WithMutationRate(-0.1)},
			genetic.ErrBadMutationRate},
		{"mutation rate above one",
			[]genetic.Option{genetic.WithAlphabet(puzzle.AllMoves), genetic.WithMutationRate(1.5)},
			genetic.ErrBadMutationRate},
		{"zero generations",
			[]genetic.Option{genetic.WithAlphabet(puzzle.AllMoves), genetic.WithMaxGenerations(0)},
			genetic.ErrBadGenerations},
		{"chromosome of one",
			[]genetic.Option{genetic.WithAlphabet(puzzle.AllMoves), genetic.WithChromosomeLength(1)},
			genetic.ErrBadChromosome},
		{"zero tournament",
			[]genetic.Option{genetic.WithAlphabet(puzzle.AllMoves), genetic.WithTournamentSize(0)},
			genetic.ErrBadTournament},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := genetic.New(h, tc.opts...)
			assert.ErrorIs(t, err, tc.err)
		})
	}

	alg, err := genetic.New(h, genetic.WithAlphabet(puzzle.AllMoves))
	require.NoError(t, err)
	assert.Equal(t, "genetic", alg.Name())
}

func TestSearch_NilProblem(t *testing.T) {
	p, err := puzzle.New(3)
	require.NoError(t, err)
	alg, err := genetic.New(puzzle.Manhattan(p), genetic.WithAlphabet(puzzle.AllMoves))
	require.NoError(t, err)

	_, err = alg.Search(nil)
	assert.ErrorIs(t, err, core.ErrNilProblem)
}

func TestSearch_SolvedAtStart(t *testing.T) {
	p, err := puzzle.New(3)
	require.NoError(t, err)
	alg, err := genetic.New(puzzle.Manhattan(p), genetic.WithAlphabet(puzzle.AllMoves))
	require.NoError(t, err)

	res, err := alg.Search(p)
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, core.ReasonGoal, res.Reason)
	assert.Zero(t, res.SolutionCost())
	assert.Empty(t, res.SolutionPath())
	assert.Zero(t, res.Iterations)
}

// TestSearch_ShallowInstances: one move from the goal, a 50-individual
// random population contains a winning chromosome with near certainty.
func TestSearch_ShallowInstances(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		p, h := newProblem(t, 1, seed)
		alg, err := genetic.New(h,
			genetic.WithAlphabet(puzzle.AllMoves),
			genetic.WithSeed(seed),
		)
		require.NoError(t, err)

		res, err := alg.Search(p)
		require.NoError(t, err)
		require.True(t, res.Success, "seed=%d reason=%v", seed, res.Reason)

		// The evolved path must replay to the goal.
		s := p.InitialState()
		for _, a := range res.SolutionPath() {
			s, err = p.Result(s, a)
			require.NoError(t, err)
		}
		assert.True(t, p.IsGoal(s), "seed=%d", seed)
		assert.GreaterOrEqual(t, res.SolutionCost(), 1.0, "seed=%d", seed)
	}
}

// TestSearch_SeededRunsIdentical: one seed, one trajectory.
func TestSearch_SeededRunsIdentical(t *testing.T) {
	p, h := newProblem(t, 8, 3)
	alg, err := genetic.New(h,
		genetic.WithAlphabet(puzzle.AllMoves),
		genetic.WithSeed(7),
		genetic.WithMaxGenerations(20),
	)
	require.NoError(t, err)

	first, err := alg.Search(p)
	require.NoError(t, err)
	second, err := alg.Search(p)
	require.NoError(t, err)

	assert.Equal(t, first.Success, second.Success)
	assert.Equal(t, first.Iterations, second.Iterations)
	assert.Equal(t, first.NodesExpanded, second.NodesExpanded)
	assert.Equal(t, first.Reason, second.Reason)
	assert.Equal(t, first.SolutionPath(), second.SolutionPath())
}

// TestSearch_GenerationBudget: on an unsolvable 2×2 the run must stop after
// MaxGenerations and still expose the best survivor's partial replay.
func TestSearch_GenerationBudget(t *testing.T) {
	start, err := puzzle.NewBoard(2, []int{2, 1, 3, 0})
	require.NoError(t, err)
	p, err := puzzle.New(2, puzzle.WithInitial(start))
	require.NoError(t, err)

	alg, err := genetic.New(puzzle.Manhattan(p),
		genetic.WithAlphabet(puzzle.AllMoves),
		genetic.WithMaxGenerations(3),
		genetic.WithPopulationSize(10),
		genetic.WithChromosomeLength(8),
		genetic.WithSeed(2),
	)
	require.NoError(t, err)

	res, err := alg.Search(p)
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, core.ReasonGenerations, res.Reason)
	assert.Equal(t, 3, res.Iterations)
	assert.NotEqual(t, core.NoNode, res.Node)
	assert.NotNil(t, res.SolutionPath())
	assert.Positive(t, res.NodesExpanded)
}
