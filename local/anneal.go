// Package local - simulated annealing with a geometric cooling schedule.
package local

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/katalvlaran/tilesearch/core"
)

// Annealing walks random neighbors, always accepting improvements and
// accepting worse moves with probability exp(−Δh/T) under a geometric
// temperature schedule T(t) = T0·cooling^t. The RNG is injected and
// seedable, so a run is exactly reproducible given its seed.
type Annealing struct {
	heuristic core.Heuristic
	opts      Options
}

// NewAnnealing returns a simulated-annealing search using h.
// Defaults: T0 = DefaultInitialTemperature, cooling = DefaultCooling,
// freeze threshold = DefaultMinTemperature, MaxSteps = DefaultAnnealingSteps.
//
// Configuration errors (fail fast, before any search):
// ErrBadTemperature, ErrBadCooling, ErrBadMinTemperature, ErrOptionViolation.
func NewAnnealing(h core.Heuristic, opts ...Option) (*Annealing, error) {
	if h == nil {
		return nil, ErrNilHeuristic
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if o.InitialTemperature <= 0 {
		return nil, fmt.Errorf("%w: got %g", ErrBadTemperature, o.InitialTemperature)
	}
	if o.Cooling <= 0 || o.Cooling >= 1 {
		return nil, fmt.Errorf("%w: got %g", ErrBadCooling, o.Cooling)
	}
	if o.MinTemperature <= 0 {
		return nil, fmt.Errorf("%w: got %g", ErrBadMinTemperature, o.MinTemperature)
	}
	if o.MaxSteps == 0 {
		o.MaxSteps = DefaultAnnealingSteps
	}
	return &Annealing{heuristic: h, opts: o}, nil
}

// Name identifies the algorithm in per-run records.
func (sa *Annealing) Name() string { return "simulated_annealing" }

// rng returns the injected source or a fresh deterministic stream.
// A fresh stream per Search keeps repeated runs of one instance identical.
func (sa *Annealing) rng() *rand.Rand {
	if sa.opts.Rand != nil {
		return sa.opts.Rand
	}
	return core.NewRNG(sa.opts.Seed)
}

// Search runs simulated annealing on p. Terminates at the goal (success),
// when the temperature falls below the freeze threshold (ReasonFrozen), or
// at the step/time ceiling (ReasonBudget). The accepted chain of nodes is
// retained as the partial path.
func (sa *Annealing) Search(p core.Problem) (*core.SearchResult, error) {
	if p == nil {
		return nil, core.ErrNilProblem
	}

	start := time.Now()
	rng := sa.rng()
	arena := core.NewArena(64)
	cur := arena.Root(p.InitialState())
	curState := p.InitialState()
	curH := sa.heuristic(curState)

	temperature := sa.opts.InitialTemperature
	expanded := 0
	iterations := 0

	finish := func(reason core.Reason) *core.SearchResult {
		success := p.IsGoal(curState)
		if success {
			reason = core.ReasonGoal
		}
		res := core.NewResult(arena, cur, success, reason)
		res.NodesExpanded = expanded
		res.Iterations = iterations
		res.Runtime = time.Since(start)
		return res
	}

	for iterations < sa.opts.MaxSteps {
		if p.IsGoal(curState) {
			return finish(core.ReasonGoal), nil
		}
		if temperature < sa.opts.MinTemperature {
			return finish(core.ReasonFrozen), nil
		}
		if sa.opts.TimeLimit > 0 && time.Since(start) >= sa.opts.TimeLimit {
			return finish(core.ReasonBudget), nil
		}
		iterations++

		acts := p.Actions(curState)
		a := acts[rng.Intn(len(acts))]
		next, err := p.Result(curState, a)
		if err != nil {
			return nil, fmt.Errorf("local: annealing: %w", err)
		}
		expanded++

		nextH := sa.heuristic(next)
		delta := nextH - curH

		// Improving moves are always taken; worse moves (Δh > 0) survive
		// with probability exp(−Δh/T), which shrinks as T cools.
		if delta < 0 || rng.Float64() < math.Exp(-delta/temperature) {
			cost := arena.Node(cur).Cost + p.StepCost(curState, a, next)
			cur = arena.Add(next, cur, a, cost, arena.Node(cur).Depth+1)
			curState, curH = next, nextH
		}

		temperature *= sa.opts.Cooling
	}

	return finish(core.ReasonBudget), nil
}
