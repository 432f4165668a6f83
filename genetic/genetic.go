// Package genetic implements evolutionary search over fixed-length action
// sequences.
//
// An individual is a chromosome of ChromosomeLength actions, interpreted by
// replaying it from the initial state: a gene that is illegal in the current
// state is a no-op (skipped, never an error), and the replay stops early
// when the goal is reached. Fitness rewards closeness to the goal and, among
// goal-reaching individuals, shorter effective prefixes.
//
// Evolution per generation: tournament selection of parents, single-point
// crossover, per-gene mutation at a fixed rate, plus elitism (the best
// individual survives unchanged). The search is inherently suboptimal and
// is deterministic only for a fixed seed.
//
// Complexity per generation: O(PopulationSize × ChromosomeLength) replays.
package genetic

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/katalvlaran/tilesearch/core"
)

// goalBonus dominates every heuristic-based fitness value, so any
// goal-reaching individual outranks all non-reaching ones; the remaining
// slack rewards shorter effective prefixes among reachers.
const goalBonus = 1e9

// Genetic is a configured genetic-algorithm search instance.
type Genetic struct {
	heuristic core.Heuristic
	opts      Options
}

// New returns a genetic-algorithm search using h and, at minimum, an action
// alphabet (WithAlphabet). All parameters are validated here, so an invalid
// configuration never reaches Search.
func New(h core.Heuristic, opts ...Option) (*Genetic, error) {
	if h == nil {
		return nil, ErrNilHeuristic
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}
	return &Genetic{heuristic: h, opts: o}, nil
}

// Name identifies the algorithm in per-run records.
func (g *Genetic) Name() string { return "genetic" }

// chromosome is one candidate solution attempt.
type chromosome []core.Action

// evaluation is the replay outcome of one chromosome.
type evaluation struct {
	fitness float64
	reached bool // the replay hit the goal
	applied int  // effective (legal) genes consumed, up to goal or end
}

// run holds the mutable state of one Search execution.
type run struct {
	alg      *Genetic
	problem  core.Problem
	rng      *rand.Rand
	expanded int // applied genes across all replays
}

// Search evolves chromosomes on p until an individual reaches the goal
// (success) or the generation budget runs out (ReasonGenerations; the best
// individual's replay is kept as the diagnostic partial path). TimeLimit,
// if set, aborts between generations with ReasonBudget.
func (g *Genetic) Search(p core.Problem) (*core.SearchResult, error) {
	if p == nil {
		return nil, core.ErrNilProblem
	}

	start := time.Now()
	rng := g.opts.Rand
	if rng == nil {
		rng = core.NewRNG(g.opts.Seed)
	}
	r := &run{alg: g, problem: p, rng: rng}

	finish := func(best chromosome, ev evaluation, generations int, reason core.Reason) (*core.SearchResult, error) {
		arena, node, err := r.materialize(best, ev.applied)
		if err != nil {
			return nil, err
		}
		res := core.NewResult(arena, node, reason == core.ReasonGoal, reason)
		res.NodesExpanded = r.expanded
		res.Iterations = generations
		res.Runtime = time.Since(start)
		return res, nil
	}

	// Generation 0 is uniformly random over the alphabet.
	population := make([]chromosome, g.opts.PopulationSize)
	for i := range population {
		population[i] = r.randomChromosome()
	}

	scores := make([]evaluation, g.opts.PopulationSize)
	for gen := 0; gen < g.opts.MaxGenerations; gen++ {
		if g.opts.TimeLimit > 0 && time.Since(start) >= g.opts.TimeLimit {
			best, ev, err := r.bestOf(population)
			if err != nil {
				return nil, err
			}
			return finish(best, ev, gen, core.ReasonBudget)
		}

		for i, ind := range population {
			ev, err := r.evaluate(ind)
			if err != nil {
				return nil, err
			}
			scores[i] = ev
			if ev.reached {
				return finish(ind, ev, gen, core.ReasonGoal)
			}
		}

		// Keep scores paired with population: no breeding after the final
		// evaluated generation.
		if gen == g.opts.MaxGenerations-1 {
			break
		}
		population = r.nextGeneration(population, scores)
	}

	// Budget exhausted: report the best survivor for diagnostics.
	i := bestIndex(scores)
	return finish(population[i], scores[i], g.opts.MaxGenerations, core.ReasonGenerations)
}

// randomChromosome draws ChromosomeLength genes uniformly from the alphabet.
func (r *run) randomChromosome() chromosome {
	alphabet := r.alg.opts.Alphabet
	c := make(chromosome, r.alg.opts.ChromosomeLength)
	for i := range c {
		c[i] = alphabet[r.rng.Intn(len(alphabet))]
	}
	return c
}

// evaluate replays c from the initial state, skipping illegal genes and
// stopping early at the goal. Each applied gene counts as one expansion.
func (r *run) evaluate(c chromosome) (evaluation, error) {
	p := r.problem
	state := p.InitialState()

	applied := 0
	for _, gene := range c {
		if p.IsGoal(state) {
			break
		}
		if !legal(p, state, gene) {
			continue // illegal gene is a no-op, not an error
		}
		next, err := p.Result(state, gene)
		if err != nil {
			return evaluation{}, fmt.Errorf("genetic: replay: %w", err)
		}
		state = next
		applied++
		r.expanded++
	}

	if p.IsGoal(state) {
		// All reachers beat all non-reachers; shorter effective prefixes
		// score higher among reachers.
		bonus := goalBonus + float64(len(c)-applied)
		return evaluation{fitness: bonus, reached: true, applied: applied}, nil
	}
	return evaluation{fitness: 1 / (r.alg.heuristic(state) + 1), applied: applied}, nil
}

// legal reports whether gene is among the legal actions of state.
func legal(p core.Problem, state core.State, gene core.Action) bool {
	for _, a := range p.Actions(state) {
		if a == gene {
			return true
		}
	}
	return false
}

// nextGeneration breeds a full replacement population: the best individual
// survives unchanged (elitism), the rest come from tournament-selected
// parents via single-point crossover and per-gene mutation.
func (r *run) nextGeneration(population []chromosome, scores []evaluation) []chromosome {
	next := make([]chromosome, 0, len(population))
	next = append(next, population[bestIndex(scores)])

	for len(next) < len(population) {
		p1 := population[r.selectParent(scores)]
		p2 := population[r.selectParent(scores)]
		next = append(next, r.mutate(r.crossover(p1, p2)))
	}
	return next
}

// selectParent runs one tournament and returns the winner's index.
func (r *run) selectParent(scores []evaluation) int {
	winner := r.rng.Intn(len(scores))
	for i := 1; i < r.alg.opts.TournamentSize; i++ {
		c := r.rng.Intn(len(scores))
		if scores[c].fitness > scores[winner].fitness {
			winner = c
		}
	}
	return winner
}

// crossover splices p1[:point] with p2[point:] at a random interior point.
func (r *run) crossover(p1, p2 chromosome) chromosome {
	point := 1 + r.rng.Intn(len(p1)-1)
	child := make(chromosome, len(p1))
	copy(child, p1[:point])
	copy(child[point:], p2[point:])
	return child
}

// mutate replaces each gene, independently with probability MutationRate,
// by a random alternative from the alphabet (never the same action).
func (r *run) mutate(c chromosome) chromosome {
	alphabet := r.alg.opts.Alphabet
	for i := range c {
		if r.rng.Float64() >= r.alg.opts.MutationRate {
			continue
		}
		if len(alphabet) == 1 {
			break // no alternative exists
		}
		// Draw among the other len-1 actions via an offset from the
		// current gene's alphabet position.
		cur := indexOf(alphabet, c[i])
		if cur < 0 {
			c[i] = alphabet[r.rng.Intn(len(alphabet))]
			continue
		}
		c[i] = alphabet[(cur+1+r.rng.Intn(len(alphabet)-1))%len(alphabet)]
	}
	return c
}

func indexOf(alphabet []core.Action, a core.Action) int {
	for i, x := range alphabet {
		if x == a {
			return i
		}
	}
	return -1
}

// bestIndex returns the index of the highest-fitness evaluation.
func bestIndex(scores []evaluation) int {
	best := 0
	for i := 1; i < len(scores); i++ {
		if scores[i].fitness > scores[best].fitness {
			best = i
		}
	}
	return best
}

// bestOf evaluates population on demand and returns its fittest individual.
// Used on time-budget aborts, where the current population may not have
// been scored yet.
func (r *run) bestOf(population []chromosome) (chromosome, evaluation, error) {
	best := 0
	var bestEv evaluation
	for i, ind := range population {
		ev, err := r.evaluate(ind)
		if err != nil {
			return nil, evaluation{}, err
		}
		if i == 0 || ev.fitness > bestEv.fitness {
			best, bestEv = i, ev
		}
	}
	return population[best], bestEv, nil
}

// materialize replays the first applied genes of c into a fresh arena so
// the result can expose its (partial) path.
func (r *run) materialize(c chromosome, applied int) (*core.Arena, core.NodeID, error) {
	p := r.problem
	arena := core.NewArena(applied + 1)
	state := p.InitialState()
	id := arena.Root(state)

	done := 0
	for _, gene := range c {
		if done == applied || p.IsGoal(state) {
			break
		}
		if !legal(p, state, gene) {
			continue
		}
		next, err := p.Result(state, gene)
		if err != nil {
			return nil, core.NoNode, fmt.Errorf("genetic: replay: %w", err)
		}
		cost := arena.Node(id).Cost + p.StepCost(state, gene, next)
		id = arena.Add(next, id, gene, cost, arena.Node(id).Depth+1)
		state = next
		done++
	}
	return arena, id, nil
}
