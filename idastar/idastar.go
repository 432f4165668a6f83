// Package idastar implements iterative-deepening A* (IDA*) over any
// core.Problem: cost-threshold-bounded depth-first search with O(depth)
// memory.
//
// Each deepening iteration runs a depth-first search that prunes any branch
// where f(n) = g(n) + h(n) exceeds the current threshold, while tracking the
// minimum pruned f to become the next threshold. The first goal found within
// a threshold is optimal for an admissible heuristic, because thresholds
// only ever take achievable f values in increasing order.
//
// The depth-first search uses an explicit frontier stack, not recursion:
// deep 15-puzzle instances reach ~80 ply, and an explicit stack bounds
// memory deterministically and sidesteps call-stack limits. An arena mirrors
// the live branch, truncated on every backtrack, so node memory stays
// O(depth) and a found goal already owns its root-to-goal chain.
//
// Complexity:
//
//   - Time:  exponential in solution depth (as all tile-puzzle searches).
//   - Space: O(depth) frames — not O(nodes expanded).
package idastar

import (
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/tilesearch/core"
)

// IDAStar is a configured IDA* instance. Construct via New; a single
// instance may run many searches.
type IDAStar struct {
	heuristic core.Heuristic
	opts      Options
}

// New returns an IDA* search using h. With an admissible h the returned
// solution cost is optimal.
func New(h core.Heuristic, opts ...Option) (*IDAStar, error) {
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
	return &IDAStar{heuristic: h, opts: o}, nil
}

// Name identifies the algorithm in per-run records.
func (ida *IDAStar) Name() string { return "idastar" }

// frame is one live branch element: the state, how it was reached, and how
// far its action list has been consumed. The branch below the current leaf
// is exactly the stack of frames, so backtracking is a pop.
type frame struct {
	state  core.State
	g      float64
	id     core.NodeID   // this frame's node in the branch arena
	acts   []core.Action // lazily filled on first visit
	next   int           // index of the next action to try
	opened bool          // whether this frame passed the threshold check
}

// Search runs IDA* on p. Terminates with success when a goal is found
// (optimal under admissible h), ReasonExhausted when no finite next
// threshold exists, or ReasonBudget when a ceiling is hit.
//
// An unreachable goal in a cyclic space keeps producing larger thresholds
// indefinitely, since only the immediate parent is excluded from
// re-expansion. Set WithMaxExpansions or WithTimeLimit when the instance is
// not known to be solvable.
func (ida *IDAStar) Search(p core.Problem) (*core.SearchResult, error) {
	if p == nil {
		return nil, core.ErrNilProblem
	}

	start := time.Now()
	root := p.InitialState()
	threshold := ida.heuristic(root)
	expanded := 0

	finish := func(arena *core.Arena, goal core.NodeID, reason core.Reason) *core.SearchResult {
		res := core.NewResult(arena, goal, reason == core.ReasonGoal, reason)
		res.NodesExpanded = expanded
		res.Runtime = time.Since(start)
		return res
	}

	// Deepening loop: each pass re-searches with a larger cost threshold.
	// Re-expansion across passes is the price of O(depth) memory. The arena
	// holds exactly the live branch: pushes append, backtracks Truncate.
	arena := core.NewArena(64)
	for {
		nextThreshold := math.Inf(1)
		arena.Truncate(0)
		stack := make([]frame, 1, 64)
		stack[0] = frame{state: root, id: arena.Root(root)}

		for len(stack) > 0 {
			if ida.overBudget(expanded, start) {
				return finish(nil, core.NoNode, core.ReasonBudget), nil
			}

			top := &stack[len(stack)-1]

			if !top.opened {
				f := top.g + ida.heuristic(top.state)
				if f > threshold {
					// Pruned branch: its f is a candidate next threshold.
					if f < nextThreshold {
						nextThreshold = f
					}
					arena.Truncate(int(top.id))
					stack = stack[:len(stack)-1]
					continue
				}
				if p.IsGoal(top.state) {
					return finish(arena, top.id, core.ReasonGoal), nil
				}
				top.acts = p.Actions(top.state)
				top.opened = true
				expanded++
			}

			if top.next >= len(top.acts) {
				// Branch exhausted: drop its node and backtrack.
				arena.Truncate(int(top.id))
				stack = stack[:len(stack)-1]
				continue
			}

			a := top.acts[top.next]
			top.next++

			next, err := p.Result(top.state, a)
			if err != nil {
				return nil, fmt.Errorf("idastar: %w", err)
			}
			// Never step straight back to the parent state: the inverse move
			// only revisits a node on the current branch at a higher g.
			if len(stack) >= 2 && next.Key() == stack[len(stack)-2].state.Key() {
				continue
			}
			g := top.g + p.StepCost(top.state, a, next)
			id := arena.Add(next, top.id, a, g, len(stack))
			stack = append(stack, frame{state: next, g: g, id: id})
		}

		if math.IsInf(nextThreshold, 1) {
			// No pruned branch to revisit: nothing below any threshold leads
			// anywhere new.
			return finish(nil, core.NoNode, core.ReasonExhausted), nil
		}
		threshold = nextThreshold
	}
}

// overBudget reports whether an expansion or wall-clock ceiling is spent.
func (ida *IDAStar) overBudget(expanded int, start time.Time) bool {
	if ida.opts.MaxExpansions > 0 && expanded >= ida.opts.MaxExpansions {
		return true
	}
	if ida.opts.TimeLimit > 0 && time.Since(start) >= ida.opts.TimeLimit {
		return true
	}
	return false
}
