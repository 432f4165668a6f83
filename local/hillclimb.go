// Package local - steepest-ascent hill climbing (descent on h).
package local

import (
	"fmt"
	"time"

	"github.com/katalvlaran/tilesearch/core"
)

// HillClimbing greedily walks to the strictly best-improving neighbor until
// the goal, a local optimum, or a ceiling. No backtracking: a local optimum
// is a permanent failure for the run, reported as a result, not an error.
type HillClimbing struct {
	heuristic core.Heuristic
	opts      Options
}

// NewHillClimbing returns a hill-climbing search using h.
// Defaults: MaxSteps = DefaultMaxSteps, no time ceiling.
func NewHillClimbing(h core.Heuristic, opts ...Option) (*HillClimbing, error) {
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
	if o.MaxSteps == 0 {
		o.MaxSteps = DefaultMaxSteps
	}
	return &HillClimbing{heuristic: h, opts: o}, nil
}

// Name identifies the algorithm in per-run records.
func (hc *HillClimbing) Name() string { return "hill_climbing" }

// Search runs hill climbing on p. Only the accepted chain of nodes is
// retained, so a failed run still exposes its partial path for diagnostics.
//
// Per step: evaluate h over every one-action neighbor, move to the strictly
// best improvement, stop at the goal (success), at a local optimum
// (ReasonLocalOptimum) or at the step/time ceiling (ReasonBudget).
func (hc *HillClimbing) Search(p core.Problem) (*core.SearchResult, error) {
	if p == nil {
		return nil, core.ErrNilProblem
	}

	start := time.Now()
	arena := core.NewArena(hc.opts.MaxSteps + 1)
	cur := arena.Root(p.InitialState())
	curState := p.InitialState()
	curH := hc.heuristic(curState)

	expanded := 0
	iterations := 0

	finish := func(reason core.Reason) *core.SearchResult {
		success := p.IsGoal(curState)
		if success {
			reason = core.ReasonGoal
		}
		// The chain to cur is kept even on failure: the partial path is the
		// run's diagnostic record.
		res := core.NewResult(arena, cur, success, reason)
		res.NodesExpanded = expanded
		res.Iterations = iterations
		res.Runtime = time.Since(start)
		return res
	}

	for iterations < hc.opts.MaxSteps {
		if p.IsGoal(curState) {
			return finish(core.ReasonGoal), nil
		}
		if hc.opts.TimeLimit > 0 && time.Since(start) >= hc.opts.TimeLimit {
			return finish(core.ReasonBudget), nil
		}
		iterations++

		// One expansion: generate and evaluate all one-action neighbors.
		acts := p.Actions(curState)
		expanded++

		var (
			bestAct   core.Action
			bestState core.State
			bestH     = curH
		)
		for _, a := range acts {
			next, err := p.Result(curState, a)
			if err != nil {
				return nil, fmt.Errorf("local: hill climbing: %w", err)
			}
			// Strict improvement only; ties keep the earlier action so the
			// walk is deterministic.
			if nh := hc.heuristic(next); nh < bestH {
				bestAct, bestState, bestH = a, next, nh
			}
		}

		if bestAct == nil {
			// No neighbor strictly improves on curH: stuck.
			return finish(core.ReasonLocalOptimum), nil
		}

		cost := arena.Node(cur).Cost + p.StepCost(curState, bestAct, bestState)
		cur = arena.Add(bestState, cur, bestAct, cost, arena.Node(cur).Depth+1)
		curState, curH = bestState, bestH
	}

	return finish(core.ReasonBudget), nil
}
