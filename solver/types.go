// Package solver defines the unified configuration surface for the
// dispatcher.
package solver

import (
	"time"

	"github.com/katalvlaran/tilesearch/core"
)

// DefaultWeight is the Weighted A* weight applied when Options.Weight is 0.
const DefaultWeight = 1.5

// Options is the union of per-algorithm knobs. Only the fields relevant to
// the selected Algorithm are read; zero values defer to the owning
// package's documented defaults.
type Options struct {
	// Algorithm selects the strategy; see the Algorithm enum.
	Algorithm Algorithm

	// Weight is the Weighted A* heuristic weight (≥ 1; 0 → DefaultWeight).
	Weight float64

	// MaxExpansions caps node expansions for astar/idastar (0 = no cap).
	MaxExpansions int

	// TimeLimit caps wall-clock runtime for any algorithm (0 = no cap).
	TimeLimit time.Duration

	// MaxSteps caps local-search outer iterations (0 = package default).
	MaxSteps int

	// InitialTemperature, Cooling, MinTemperature configure the annealing
	// schedule (0 = package defaults).
	InitialTemperature float64
	Cooling            float64
	MinTemperature     float64

	// PopulationSize, MutationRate, MaxGenerations, ChromosomeLength and
	// TournamentSize configure genetic search (0 = package defaults).
	PopulationSize   int
	MutationRate     float64
	MaxGenerations   int
	ChromosomeLength int
	TournamentSize   int

	// Alphabet is the genetic action universe (required for Genetic;
	// tile-puzzle callers pass puzzle.AllMoves).
	Alphabet []core.Action

	// Seed routes to every stochastic component, each through its own
	// derived stream (core.DeriveSeed), so one experiment seed fans out
	// into decorrelated randomness per algorithm. 0 selects the fixed
	// default stream (see core.NewRNG).
	Seed int64
}

// DefaultOptions returns an Options selecting standard A* with no ceilings;
// all other knobs defer to the per-package defaults.
func DefaultOptions() Options {
	return Options{Algorithm: AStar}
}
