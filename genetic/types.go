// Package genetic defines configuration options and sentinel errors for the
// genetic-algorithm search.
package genetic

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/katalvlaran/tilesearch/core"
)

// Sentinel errors for genetic-algorithm configuration. All of them fail
// fast at construction, before any search runs.
var (
	// ErrNilHeuristic indicates a nil heuristic was passed to New.
	ErrNilHeuristic = errors.New("genetic: heuristic is nil")

	// ErrEmptyAlphabet indicates no action alphabet was provided. The
	// Problem contract exposes legal actions per state only; chromosomes
	// need the full action universe, so callers must supply it.
	ErrEmptyAlphabet = errors.New("genetic: action alphabet is empty")

	// ErrBadPopulation indicates a population size below 2.
	ErrBadPopulation = errors.New("genetic: population size must be at least 2")

	// ErrBadMutationRate indicates a per-gene mutation rate outside [0, 1].
	ErrBadMutationRate = errors.New("genetic: mutation rate must be in [0, 1]")

	// ErrBadGenerations indicates a non-positive generation budget.
	ErrBadGenerations = errors.New("genetic: generation budget must be positive")

	// ErrBadChromosome indicates a chromosome length below 2.
	ErrBadChromosome = errors.New("genetic: chromosome length must be at least 2")

	// ErrBadTournament indicates a tournament size below 1.
	ErrBadTournament = errors.New("genetic: tournament size must be at least 1")
)

// Default parameter values.
const (
	DefaultPopulationSize   = 50
	DefaultMutationRate     = 0.1
	DefaultMaxGenerations   = 100
	DefaultChromosomeLength = 30
	DefaultTournamentSize   = 3
)

// Option configures the search via functional arguments.
type Option func(*Options)

// Options holds the tunable parameters of a genetic-algorithm run.
type Options struct {
	// PopulationSize is the number of individuals per generation (≥ 2).
	PopulationSize int

	// MutationRate is the per-gene probability of replacing an action with
	// a random alternative from the alphabet, in [0, 1].
	MutationRate float64

	// MaxGenerations bounds the number of generations (> 0).
	MaxGenerations int

	// ChromosomeLength is the fixed length of every action sequence (≥ 2).
	ChromosomeLength int

	// TournamentSize is the number of candidates per parent selection (≥ 1).
	TournamentSize int

	// Alphabet is the full action universe genes are drawn from. Required.
	Alphabet []core.Action

	// Seed selects the deterministic RNG stream; 0 maps to the fixed
	// default stream (see core.NewRNG). Ignored when Rand is set.
	Seed int64

	// Rand, if non-nil, is used verbatim as the random source.
	Rand *rand.Rand

	// TimeLimit, if > 0, aborts the run with ReasonBudget once the
	// wall-clock budget is spent. Checked once per generation. 0 disables.
	TimeLimit time.Duration

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns the documented defaults (no alphabet: callers must
// supply one, e.g. puzzle.AllMoves).
func DefaultOptions() Options {
	return Options{
		PopulationSize:   DefaultPopulationSize,
		MutationRate:     DefaultMutationRate,
		MaxGenerations:   DefaultMaxGenerations,
		ChromosomeLength: DefaultChromosomeLength,
		TournamentSize:   DefaultTournamentSize,
	}
}

// WithPopulationSize sets the number of individuals per generation.
func WithPopulationSize(n int) Option {
	return func(o *Options) { o.PopulationSize = n }
}

// WithMutationRate sets the per-gene mutation probability.
func WithMutationRate(rate float64) Option {
	return func(o *Options) { o.MutationRate = rate }
}

// WithMaxGenerations bounds the number of generations.
func WithMaxGenerations(n int) Option {
	return func(o *Options) { o.MaxGenerations = n }
}

// WithChromosomeLength sets the fixed action-sequence length.
func WithChromosomeLength(n int) Option {
	return func(o *Options) { o.ChromosomeLength = n }
}

// WithTournamentSize sets the number of candidates per parent selection.
func WithTournamentSize(k int) Option {
	return func(o *Options) { o.TournamentSize = k }
}

// WithAlphabet sets the action universe genes are drawn from.
func WithAlphabet(alphabet []core.Action) Option {
	return func(o *Options) { o.Alphabet = alphabet }
}

// WithSeed selects the deterministic RNG stream.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithRand injects a random source, overriding WithSeed.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// WithTimeLimit caps the wall-clock duration of the run.
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("genetic: TimeLimit cannot be negative (%v)", d)
			return
		}
		o.TimeLimit = d
	}
}

// validate checks every field after all options were applied.
func (o *Options) validate() error {
	if o.err != nil {
		return o.err
	}
	if len(o.Alphabet) == 0 {
		return ErrEmptyAlphabet
	}
	if o.PopulationSize < 2 {
		return fmt.Errorf("%w: got %d", ErrBadPopulation, o.PopulationSize)
	}
	if o.MutationRate < 0 || o.MutationRate > 1 {
		return fmt.Errorf("%w: got %g", ErrBadMutationRate, o.MutationRate)
	}
	if o.MaxGenerations <= 0 {
		return fmt.Errorf("%w: got %d", ErrBadGenerations, o.MaxGenerations)
	}
	if o.ChromosomeLength < 2 {
		return fmt.Errorf("%w: got %d", ErrBadChromosome, o.ChromosomeLength)
	}
	if o.TournamentSize < 1 {
		return fmt.Errorf("%w: got %d", ErrBadTournament, o.TournamentSize)
	}
	return nil
}
