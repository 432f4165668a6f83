// Package solver is the unified front door to the search engine: a closed
// set of algorithms behind one Options surface, selectable by enum or by
// stable string name.
//
// What:
//
//   - Algorithm enum: AStar, WeightedAStar, Greedy, IDAStar, HillClimbing,
//     SimulatedAnnealing, Genetic — with String()/ParseAlgorithm round trip.
//   - Options: the union of every algorithm's knobs; zero values defer to
//     the owning package's documented defaults.
//   - New(h, opts): build a configured core.Algorithm.
//   - Solve(p, h, opts): build, bind through core.Agent, run, return the
//     timed core.SearchResult.
//
// Why:
//
//   - External collaborators (experiment drivers, front ends) configure
//     runs from tables of names and parameters; this package gives them one
//     stable construction surface instead of seven package APIs, while the
//     algorithm packages stay independently usable.
//
// Typical batch-driver usage:
//
//	p, _ := puzzle.Scrambled(3, 20, seed)
//	alg, _ := solver.ParseAlgorithm(row.Name)
//	res, err := solver.Solve(p, puzzle.Manhattan(p), solver.Options{
//	    Algorithm: alg,
//	    Seed:      seed,
//	    Alphabet:  puzzle.AllMoves,
//	})
//
// Errors:
//
//   - ErrUnknownAlgorithm for names/values outside the closed set; all
//     other construction errors are the algorithm packages' sentinels,
//     forwarded as-is.
package solver
