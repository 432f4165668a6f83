// Package puzzle - the sliding-tile core.Problem implementation and
// solvable-instance generation.
package puzzle

import (
	"fmt"

	"github.com/katalvlaran/tilesearch/core"
)

// Problem is the sliding-tile instance: an initial board, a goal board and
// unit step costs. It implements core.Problem and is read-only after
// construction, so one Problem may back many independent search runs.
type Problem struct {
	size    int
	initial Board
	goal    Board

	// goalIndex[tile] = goal position of tile, precomputed for heuristics.
	goalIndex []int

	// provenance of Scrambled instances; -1 depth for hand-built problems.
	scrambleDepth int
	seed          int64
}

// Option customizes New.
type Option func(*config)

type config struct {
	initial *Board
	goal    *Board
}

// WithInitial sets an explicit initial board (default: the goal board).
func WithInitial(b Board) Option {
	return func(c *config) { c.initial = &b }
}

// WithGoal sets an explicit goal board (default: ascending, blank last).
func WithGoal(b Board) Option {
	return func(c *config) { c.goal = &b }
}

// New builds a sliding-tile problem of the given side length.
// Without options the initial board equals the goal board, so solve() on a
// fresh problem trivially succeeds with an empty path.
func New(size int, opts ...Option) (*Problem, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	goal, err := Solved(size)
	if err != nil {
		return nil, err
	}
	if cfg.goal != nil {
		goal = *cfg.goal
	}
	initial := goal
	if cfg.initial != nil {
		initial = *cfg.initial
	}

	if initial.size != size || goal.size != size {
		return nil, fmt.Errorf("%w: size=%d initial=%d goal=%d",
			ErrSizeMismatch, size, initial.size, goal.size)
	}

	return &Problem{
		size:          size,
		initial:       initial,
		goal:          goal,
		goalIndex:     indexTiles(goal),
		scrambleDepth: -1,
	}, nil
}

// indexTiles builds tile → goal-position lookup for b.
func indexTiles(b Board) []int {
	idx := make([]int, b.size*b.size)
	for i := 0; i < len(b.tiles); i++ {
		idx[b.tiles[i]] = i
	}
	return idx
}

// Scrambled builds a solvable instance by applying depth random legal moves
// to the goal board, never immediately undoing the previous move. The true
// solution length is therefore at most depth. seed==0 selects the fixed
// default stream (see core.NewRNG); identical seeds yield identical
// instances.
func Scrambled(size, depth int, seed int64) (*Problem, error) {
	if depth < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadDepth, depth)
	}
	base, err := New(size)
	if err != nil {
		return nil, err
	}

	rng := core.NewRNG(seed)
	board := base.goal
	prev := Move(-1) // no previous move yet

	legal := make([]Move, 0, 4)
	for step := 0; step < depth; step++ {
		legal = legal[:0]
		for _, a := range AllMoves {
			m := a.(Move)
			if prev >= 0 && m == prev.Opposite() {
				continue // would undo the previous move
			}
			if board.legal(m) {
				legal = append(legal, m)
			}
		}
		// The blank always has ≥2 legal moves on a ≥2×2 grid, so excluding
		// the one undo still leaves a choice; legal is never empty here.
		m := legal[rng.Intn(len(legal))]
		board = board.apply(m)
		prev = m
	}

	p, err := New(size, WithInitial(board))
	if err != nil {
		return nil, err
	}
	p.scrambleDepth = depth
	p.seed = seed
	return p, nil
}

// Size returns the side length N.
func (p *Problem) Size() int { return p.size }

// Goal returns the goal board.
func (p *Problem) Goal() Board { return p.goal }

// Initial returns the initial board.
func (p *Problem) Initial() Board { return p.initial }

// ScrambleDepth returns the scramble depth of a Scrambled instance,
// or -1 for hand-built problems.
func (p *Problem) ScrambleDepth() int { return p.scrambleDepth }

// Seed returns the scramble seed of a Scrambled instance, 0 otherwise.
func (p *Problem) Seed() int64 { return p.seed }

// InitialState implements core.Problem.
func (p *Problem) InitialState() core.State { return p.initial }

// Actions returns the moves that keep the blank on the grid, always in
// UP, DOWN, LEFT, RIGHT order. Deterministic ordering is load-bearing:
// every algorithm's tie-breaking builds on it.
func (p *Problem) Actions(s core.State) []core.Action {
	b := s.(Board)
	acts := make([]core.Action, 0, 4)
	for _, a := range AllMoves {
		if b.legal(a.(Move)) {
			acts = append(acts, a)
		}
	}
	return acts
}

// Result swaps the blank with the tile in the move's direction.
// Moves that would push the blank off-grid yield core.ErrInvalidTransition.
func (p *Problem) Result(s core.State, a core.Action) (core.State, error) {
	b := s.(Board)
	m, ok := a.(Move)
	if !ok || !b.legal(m) {
		return nil, fmt.Errorf("%w: %v on\n%v", core.ErrInvalidTransition, a, b)
	}
	return b.apply(m), nil
}

// IsGoal reports whether s equals the goal board.
func (p *Problem) IsGoal(s core.State) bool {
	return s.Key() == p.goal.Key()
}

// StepCost is constant 1 per move in this domain.
func (p *Problem) StepCost(core.State, core.Action, core.State) float64 { return 1 }
