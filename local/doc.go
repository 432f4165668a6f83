// Package local provides the single-state stochastic strategies: Hill
// Climbing and Simulated Annealing.
//
// What:
//
//   - HillClimbing: per step, evaluate h over all one-action neighbors and
//     move to the strictly best improvement. Stops at the goal, at a local
//     optimum (no improving neighbor — ReasonLocalOptimum), or at the
//     step/time ceiling. No backtracking; failure is permanent per run.
//   - Annealing: per iteration, draw one random neighbor; accept
//     improvements unconditionally and worse moves with probability
//     exp(−Δh/T) under T(t) = T0·cooling^t. Stops at the goal, once T drops
//     below the freeze threshold (ReasonFrozen), or at the ceiling.
//
// Why:
//
//   - Both keep O(path) state instead of an exponential frontier. They trade
//     completeness for cheapness: Hill Climbing fails on most non-trivial
//     scrambles (local optima are everywhere in tile puzzles), Annealing
//     escapes shallow optima while the temperature is high. Their failures
//     are expected outcomes, reported as results with a populated Reason,
//     never as errors — and the partial path stays available for
//     diagnostics.
//
// Reproducibility:
//
//   - Annealing draws from an injected, seedable source (WithSeed /
//     WithRand); identical seeds replay identical runs. Hill Climbing is
//     fully deterministic (strict improvement + first-action tie-break).
//
// Errors (sentinel):
//
//   - ErrNilHeuristic — constructor called without a heuristic.
//   - ErrBadTemperature / ErrBadCooling / ErrBadMinTemperature — invalid
//     annealing schedule (fails fast at construction).
//   - ErrOptionViolation — negative MaxSteps or TimeLimit.
//
// Example:
//
//	p, _ := puzzle.Scrambled(3, 10, 3)
//	alg, _ := local.NewAnnealing(puzzle.Manhattan(p), local.WithSeed(3))
//	res, err := alg.Search(p)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Success, res.Reason, res.Iterations)
package local
