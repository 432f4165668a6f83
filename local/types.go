// Package local defines configuration options and sentinel errors for the
// local search strategies: Hill Climbing and Simulated Annealing.
package local

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// Sentinel errors for local-search configuration.
var (
	// ErrNilHeuristic indicates a nil heuristic was passed to a constructor.
	ErrNilHeuristic = errors.New("local: heuristic is nil")

	// ErrBadTemperature indicates a non-positive initial temperature.
	ErrBadTemperature = errors.New("local: initial temperature must be positive")

	// ErrBadCooling indicates a cooling factor outside (0, 1).
	ErrBadCooling = errors.New("local: cooling factor must be in (0, 1)")

	// ErrBadMinTemperature indicates a non-positive freeze threshold.
	ErrBadMinTemperature = errors.New("local: minimum temperature must be positive")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("local: invalid option supplied")
)

// Default schedule values, matching the documented behavior of the engine.
const (
	// DefaultMaxSteps bounds a hill-climbing run.
	DefaultMaxSteps = 1000

	// DefaultAnnealingSteps bounds a simulated-annealing run.
	DefaultAnnealingSteps = 5000

	// DefaultInitialTemperature is the annealing start temperature T0.
	DefaultInitialTemperature = 10.0

	// DefaultCooling is the geometric cooling factor: T(t+1) = T(t)·cooling.
	DefaultCooling = 0.99

	// DefaultMinTemperature is the freeze threshold; the run stops with
	// ReasonFrozen once T drops below it.
	DefaultMinTemperature = 1e-8
)

// Option configures local search via functional arguments. Invalid options
// are recorded internally and surfaced from the constructor.
type Option func(*Options)

// Options holds the tunable parameters of a local-search run.
// Hill Climbing reads MaxSteps and TimeLimit only; the temperature schedule
// and RNG fields belong to Simulated Annealing.
type Options struct {
	// MaxSteps bounds the number of outer-loop iterations.
	MaxSteps int

	// TimeLimit, if > 0, aborts the run with ReasonBudget once the
	// wall-clock budget is spent. Checked once per iteration. 0 disables.
	TimeLimit time.Duration

	// InitialTemperature is the annealing start temperature T0 (> 0).
	InitialTemperature float64

	// Cooling is the geometric schedule factor in (0, 1).
	Cooling float64

	// MinTemperature is the freeze threshold (> 0).
	MinTemperature float64

	// Seed selects the deterministic RNG stream; 0 maps to the fixed
	// default stream (see core.NewRNG). Ignored when Rand is set.
	Seed int64

	// Rand, if non-nil, is used verbatim as the random source. Injecting a
	// source makes stochastic outcomes exactly reproducible in tests.
	Rand *rand.Rand

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns the documented defaults. MaxSteps is filled by the
// constructor (hill climbing and annealing default differently).
func DefaultOptions() Options {
	return Options{
		MaxSteps:           0,
		InitialTemperature: DefaultInitialTemperature,
		Cooling:            DefaultCooling,
		MinTemperature:     DefaultMinTemperature,
	}
}

// WithMaxSteps bounds the number of outer-loop iterations.
//
//	n > 0:  stop after n iterations
//	n == 0: use the per-algorithm default
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSteps = n
	}
}

// WithTimeLimit caps the wall-clock duration of the run.
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: TimeLimit cannot be negative (%v)", ErrOptionViolation, d)
			return
		}
		o.TimeLimit = d
	}
}

// WithInitialTemperature sets the annealing start temperature T0.
// Validated at construction: T0 ≤ 0 → ErrBadTemperature.
func WithInitialTemperature(t0 float64) Option {
	return func(o *Options) { o.InitialTemperature = t0 }
}

// WithCooling sets the geometric cooling factor.
// Validated at construction: outside (0, 1) → ErrBadCooling.
func WithCooling(c float64) Option {
	return func(o *Options) { o.Cooling = c }
}

// WithMinTemperature sets the freeze threshold.
// Validated at construction: ≤ 0 → ErrBadMinTemperature.
func WithMinTemperature(min float64) Option {
	return func(o *Options) { o.MinTemperature = min }
}

// WithSeed selects the deterministic RNG stream for annealing.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithRand injects a random source, overriding WithSeed.
// The source must not be shared with a concurrently running search.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}
