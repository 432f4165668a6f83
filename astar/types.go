// Package astar defines configuration options and sentinel errors for the
// best-first search family: A*, Weighted A* and Greedy Best-First.
package astar

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors for best-first configuration.
var (
	// ErrNilHeuristic indicates a nil heuristic was passed to a constructor.
	ErrNilHeuristic = errors.New("astar: heuristic is nil")

	// ErrBadWeight indicates a heuristic weight below 1.
	// w < 1 would break the w×optimal cost guarantee of Weighted A*.
	ErrBadWeight = errors.New("astar: weight must be >= 1")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")
)

// Option configures the search via functional arguments. Invalid options
// are recorded internally and surfaced from the constructor.
type Option func(*Options)

// Options holds the tunable parameters of a best-first run.
type Options struct {
	// MaxExpansions, if > 0, aborts the run with ReasonBudget once that many
	// nodes have been expanded. 0 disables the ceiling.
	MaxExpansions int

	// TimeLimit, if > 0, aborts the run with ReasonBudget once the
	// wall-clock budget is spent. Enforcement is cooperative: the budget is
	// checked once per main-loop iteration. 0 disables the ceiling.
	TimeLimit time.Duration

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no expansion or time ceiling.
func DefaultOptions() Options {
	return Options{MaxExpansions: 0, TimeLimit: 0}
}

// WithMaxExpansions caps the number of node expansions.
//
//	n > 0:  abort after n expansions
//	n == 0: explicit no ceiling
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithTimeLimit caps the wall-clock duration of the run.
//
//	d > 0:  abort once d has elapsed
//	d == 0: explicit no ceiling
//	d < 0:  invalid option → ErrOptionViolation
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: TimeLimit cannot be negative (%v)", ErrOptionViolation, d)
			return
		}
		o.TimeLimit = d
	}
}
