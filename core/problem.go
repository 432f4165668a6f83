// Package core - Problem, State, Action and Heuristic contracts.
package core

import "errors"

// Sentinel errors shared across the engine.
var (
	// ErrInvalidTransition indicates an action was applied to a state in
	// which it is not legal. This is a collaborator programming error, not
	// a search outcome: correct algorithms only replay actions returned by
	// Problem.Actions for the same state.
	ErrInvalidTransition = errors.New("core: action not legal in this state")

	// ErrNilProblem indicates a nil Problem was passed where one is required.
	ErrNilProblem = errors.New("core: problem is nil")

	// ErrNilAlgorithm indicates a nil Algorithm was passed to NewAgent.
	ErrNilAlgorithm = errors.New("core: algorithm is nil")

	// ErrNodeOutOfRange indicates a NodeID that does not belong to the arena.
	ErrNodeOutOfRange = errors.New("core: node id out of range")
)

// State is an immutable configuration of a search domain.
//
// Key returns a canonical, collision-free encoding of the state; two states
// are equal iff their keys are equal. Algorithms use the key for duplicate
// detection, so Key must be cheap and stable.
type State interface {
	Key() string
}

// Action is a single domain move. Implementations must be small comparable
// values; String is used for display and for the solution path.
type Action interface {
	String() string
}

// Problem binds an initial state, a goal test, a transition function and a
// step-cost function. Implementations must be read-only during a search run.
//
// Contracts:
//
//   - Actions returns legal actions in a deterministic order; reproducible
//     tie-breaking across algorithms depends on it.
//   - Result is defined only for actions returned by Actions(s); any other
//     action yields ErrInvalidTransition.
//   - StepCost is non-negative. The sliding-tile domain uses a constant 1,
//     but algorithms never assume unit costs.
type Problem interface {
	// InitialState returns the root state of the search.
	InitialState() State

	// Actions returns the legal actions in s, in deterministic order.
	Actions(s State) []Action

	// Result returns the successor of s under a, or ErrInvalidTransition
	// if a is not legal in s.
	Result(s State, a Action) (State, error)

	// IsGoal reports whether s satisfies the goal test.
	IsGoal(s State) bool

	// StepCost returns the non-negative cost of applying a in s to reach next.
	StepCost(s State, a Action, next State) float64
}

// Heuristic estimates the remaining cost from s to the nearest goal.
//
// A Heuristic is a pure function: no mutable state, non-negative values,
// and exactly 0 on goal states. Admissibility (never overestimating the true
// remaining cost) is documented per function by the providing domain package.
type Heuristic func(s State) float64

// Algorithm is the single capability every search strategy implements.
//
// Search runs to completion on the calling goroutine and returns a
// SearchResult for every outcome — success, exhaustion, or a cooperative
// budget abort. The error return is reserved for usage errors (a broken
// Problem implementation surfacing ErrInvalidTransition); it is never used
// to signal "no solution found".
type Algorithm interface {
	Search(p Problem) (*SearchResult, error)

	// Name identifies the algorithm in per-run records (e.g. "astar").
	Name() string
}
