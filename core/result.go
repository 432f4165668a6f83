// Package core - the standardized search outcome record.
package core

import (
	"math"
	"time"
)

// Reason explains why a search run terminated.
//
// Reasons keep failure modes distinguishable without errors: an exhausted
// frontier, a hit expansion/time ceiling, a local optimum and a frozen
// annealing schedule are all normal outcomes, not exceptions.
type Reason int

const (
	// ReasonGoal - the goal test passed; the run succeeded.
	ReasonGoal Reason = iota

	// ReasonExhausted - the frontier emptied with no goal found.
	ReasonExhausted

	// ReasonBudget - the expansion-count or wall-clock ceiling was hit.
	ReasonBudget

	// ReasonLocalOptimum - no neighbor strictly improves the heuristic
	// (hill climbing only; failure is permanent for that run).
	ReasonLocalOptimum

	// ReasonFrozen - the annealing temperature fell below its minimum.
	ReasonFrozen

	// ReasonGenerations - the generation budget ran out (genetic search).
	ReasonGenerations
)

// String returns a stable lower-case label for per-run records.
func (r Reason) String() string {
	switch r {
	case ReasonGoal:
		return "goal"
	case ReasonExhausted:
		return "exhausted"
	case ReasonBudget:
		return "budget"
	case ReasonLocalOptimum:
		return "local_optimum"
	case ReasonFrozen:
		return "frozen"
	case ReasonGenerations:
		return "generations"
	default:
		return "unknown"
	}
}

// SearchResult is the standardized outcome of one search run.
//
// Invariant: Success == true iff Node != NoNode and Node's state satisfies
// the Problem's goal test. Failed local-search runs may still carry their
// best-reached node so the partial path stays available for diagnostics.
type SearchResult struct {
	// Success reports whether a goal state was reached.
	Success bool

	// Node is the terminal (goal) node on success; on failure it is either
	// NoNode or, for local search, the last node reached before giving up.
	Node NodeID

	// NodesExpanded counts nodes whose children were generated.
	NodesExpanded int

	// Runtime is the wall-clock duration of the run.
	Runtime time.Duration

	// Iterations counts outer-loop steps for algorithms whose main loop is
	// distinct from expansion (local and evolutionary search); 0 otherwise.
	Iterations int

	// Reason records why the run terminated.
	Reason Reason

	arena *Arena
}

// NewResult assembles a SearchResult bound to the arena that owns its nodes.
// Algorithm packages call this; consumers read the exported fields only.
func NewResult(arena *Arena, node NodeID, success bool, reason Reason) *SearchResult {
	return &SearchResult{
		Success: success,
		Node:    node,
		Reason:  reason,
		arena:   arena,
	}
}

// SolutionPath lazily reconstructs the ordered action sequence from the
// initial state to Node. It is empty when the initial state was already a
// goal and nil when no node was retained. For failed local-search runs it is
// the partial path to the best-reached node (diagnostics only).
func (r *SearchResult) SolutionPath() []Action {
	if r.Node == NoNode || r.arena == nil {
		return nil
	}
	return r.arena.PathActions(r.Node)
}

// SolutionCost returns the accumulated path cost g of the terminal node,
// or +Inf when no node was retained.
func (r *SearchResult) SolutionCost() float64 {
	if r.Node == NoNode || r.arena == nil {
		return math.Inf(1)
	}
	return r.arena.Node(r.Node).Cost
}

// SolutionDepth returns the terminal node's depth, or -1 when absent.
func (r *SearchResult) SolutionDepth() int {
	if r.Node == NoNode || r.arena == nil {
		return -1
	}
	return r.arena.Node(r.Node).Depth
}
