// Package solver - unified dispatcher for the search strategies.
//
// This file provides the canonical entry points to run any of the engine's
// algorithms behind one configuration surface:
//
//   - New: construct a core.Algorithm from an Options value, routing on the
//     closed Algorithm enum (AStar / WeightedAStar / Greedy / IDAStar /
//     HillClimbing / SimulatedAnnealing / Genetic).
//   - Solve: construct, bind to a Problem through a core.Agent, and run.
//   - ParseAlgorithm: resolve the enum from its stable string name, for
//     callers that configure runs from tables or flags.
//
// Design principles:
//   - Deterministic: one Seed field routes to every stochastic component.
//   - Strict validation: configuration errors surface from New, before any
//     search runs; zero-valued knobs fall back to the per-package defaults.
//   - No hidden policy: this package only routes; behavior and defaults are
//     owned by the algorithm packages.
package solver

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/tilesearch/astar"
	"github.com/katalvlaran/tilesearch/core"
	"github.com/katalvlaran/tilesearch/genetic"
	"github.com/katalvlaran/tilesearch/idastar"
	"github.com/katalvlaran/tilesearch/local"
)

// ErrUnknownAlgorithm is returned for names or enum values outside the
// closed algorithm set.
var ErrUnknownAlgorithm = errors.New("solver: unknown algorithm")

// Stream identifiers for core.DeriveSeed: each stochastic component draws
// from its own decorrelated stream of the one Options.Seed, so an annealing
// run and a genetic run configured with the same experiment seed do not
// replay each other's random choices. Scramble generation consumes the raw
// seed upstream (puzzle.Scrambled).
const (
	annealingStream uint64 = 1 + iota
	geneticStream
)

// Algorithm enumerates the closed set of search strategies.
type Algorithm int

const (
	// AStar - optimal best-first search, f = g + h.
	AStar Algorithm = iota
	// WeightedAStar - bounded-suboptimal best-first, f = g + w·h.
	WeightedAStar
	// Greedy - best-first on h alone, no cost guarantee.
	Greedy
	// IDAStar - optimal iterative deepening, O(depth) memory.
	IDAStar
	// HillClimbing - strictly-improving descent; fails at local optima.
	HillClimbing
	// SimulatedAnnealing - stochastic descent with a cooling schedule.
	SimulatedAnnealing
	// Genetic - evolutionary search over action chromosomes.
	Genetic
)

// String returns the stable name used in per-run records and ParseAlgorithm.
func (a Algorithm) String() string {
	switch a {
	case AStar:
		return "astar"
	case WeightedAStar:
		return "astar_weighted"
	case Greedy:
		return "greedy"
	case IDAStar:
		return "idastar"
	case HillClimbing:
		return "hill_climbing"
	case SimulatedAnnealing:
		return "simulated_annealing"
	case Genetic:
		return "genetic"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// ParseAlgorithm resolves a stable name back to its enum value.
func ParseAlgorithm(name string) (Algorithm, error) {
	for _, a := range []Algorithm{
		AStar, WeightedAStar, Greedy, IDAStar,
		HillClimbing, SimulatedAnnealing, Genetic,
	} {
		if a.String() == name {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// New constructs the configured algorithm. Zero-valued knobs fall back to
// the owning package's documented defaults; invalid values surface that
// package's sentinel error here, before any search runs.
func New(h core.Heuristic, opts Options) (core.Algorithm, error) {
	switch opts.Algorithm {
	case AStar:
		return astar.New(h, bestFirstOptions(opts)...)

	case WeightedAStar:
		w := opts.Weight
		if w == 0 {
			w = DefaultWeight
		}
		return astar.NewWeighted(h, w, bestFirstOptions(opts)...)

	case Greedy:
		return astar.NewGreedy(h, bestFirstOptions(opts)...)

	case IDAStar:
		var io []idastar.Option
		if opts.MaxExpansions > 0 {
			io = append(io, idastar.WithMaxExpansions(opts.MaxExpansions))
		}
		if opts.TimeLimit > 0 {
			io = append(io, idastar.WithTimeLimit(opts.TimeLimit))
		}
		return idastar.New(h, io...)

	case HillClimbing:
		return local.NewHillClimbing(h, localOptions(opts)...)

	case SimulatedAnnealing:
		lo := localOptions(opts)
		if opts.Seed != 0 {
			lo = append(lo, local.WithSeed(core.DeriveSeed(opts.Seed, annealingStream)))
		}
		return local.NewAnnealing(h, lo...)

	case Genetic:
		var gopts []genetic.Option
		if opts.PopulationSize > 0 {
			gopts = append(gopts, genetic.WithPopulationSize(opts.PopulationSize))
		}
		if opts.MutationRate > 0 {
			gopts = append(gopts, genetic.WithMutationRate(opts.MutationRate))
		}
		if opts.MaxGenerations > 0 {
			gopts = append(gopts, genetic.WithMaxGenerations(opts.MaxGenerations))
		}
		if opts.ChromosomeLength > 0 {
			gopts = append(gopts, genetic.WithChromosomeLength(opts.ChromosomeLength))
		}
		if opts.TournamentSize > 0 {
			gopts = append(gopts, genetic.WithTournamentSize(opts.TournamentSize))
		}
		if opts.Alphabet != nil {
			gopts = append(gopts, genetic.WithAlphabet(opts.Alphabet))
		}
		if opts.Seed != 0 {
			gopts = append(gopts, genetic.WithSeed(core.DeriveSeed(opts.Seed, geneticStream)))
		}
		if opts.TimeLimit > 0 {
			gopts = append(gopts, genetic.WithTimeLimit(opts.TimeLimit))
		}
		return genetic.New(h, gopts...)

	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownAlgorithm, opts.Algorithm)
	}
}

// Solve constructs the algorithm, binds it to p through a core.Agent and
// runs it, returning the agent-timed result.
func Solve(p core.Problem, h core.Heuristic, opts Options) (*core.SearchResult, error) {
	alg, err := New(h, opts)
	if err != nil {
		return nil, err
	}
	agent, err := core.NewAgent(p, alg)
	if err != nil {
		return nil, err
	}
	return agent.Solve()
}

// bestFirstOptions translates the shared knobs for the astar family.
func bestFirstOptions(opts Options) []astar.Option {
	var ao []astar.Option
	if opts.MaxExpansions > 0 {
		ao = append(ao, astar.WithMaxExpansions(opts.MaxExpansions))
	}
	if opts.TimeLimit > 0 {
		ao = append(ao, astar.WithTimeLimit(opts.TimeLimit))
	}
	return ao
}

// localOptions translates the shared knobs for the local family.
func localOptions(opts Options) []local.Option {
	var lo []local.Option
	if opts.MaxSteps > 0 {
		lo = append(lo, local.WithMaxSteps(opts.MaxSteps))
	}
	if opts.TimeLimit > 0 {
		lo = append(lo, local.WithTimeLimit(opts.TimeLimit))
	}
	if opts.InitialTemperature > 0 {
		lo = append(lo, local.WithInitialTemperature(opts.InitialTemperature))
	}
	if opts.Cooling > 0 {
		lo = append(lo, local.WithCooling(opts.Cooling))
	}
	if opts.MinTemperature > 0 {
		lo = append(lo, local.WithMinTemperature(opts.MinTemperature))
	}
	return lo
}
