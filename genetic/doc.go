// Package genetic provides evolutionary search: a population of fixed-length
// action sequences evolved toward the goal state.
//
// What:
//
//   - Chromosomes are fixed-length sequences over an action alphabet
//     (for tile puzzles, puzzle.AllMoves).
//   - Replay semantics: genes illegal in the current state are no-ops;
//     replay stops early when the goal is reached.
//   - Fitness: 1/(h(final)+1) for non-reachers; reachers get a dominating
//     bonus plus a shorter-effective-prefix reward.
//   - Evolution: tournament selection, single-point crossover, per-gene
//     mutation to a random alternative action, elitism.
//
// Why:
//
//   - A deliberately suboptimal, non-systematic strategy included for
//     comparison against informed search; it needs no neighborhood
//     structure, only a replayable action alphabet.
//
// Termination:
//
//   - An individual reaches the goal (success; Iterations = generation
//     index at which it appeared).
//   - The generation budget runs out (ReasonGenerations; the fittest
//     survivor's replay remains as the diagnostic partial path).
//   - The wall-clock budget is spent (ReasonBudget, checked per generation).
//
// Reproducibility:
//
//   - All randomness flows through one injected, seedable source (WithSeed
//     / WithRand); identical seeds evolve identical populations.
//
// Errors (sentinel, all at construction):
//
//   - ErrNilHeuristic, ErrEmptyAlphabet, ErrBadPopulation,
//     ErrBadMutationRate, ErrBadGenerations, ErrBadChromosome,
//     ErrBadTournament.
//
// Example:
//
//	p, _ := puzzle.Scrambled(3, 6, 11)
//	alg, _ := genetic.New(
//	    puzzle.Manhattan(p),
//	    genetic.WithAlphabet(puzzle.AllMoves),
//	    genetic.WithSeed(11),
//	)
//	res, err := alg.Search(p)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Success, res.Iterations)
package genetic
