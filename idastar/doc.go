// Package idastar provides memory-bounded optimal search via iterative
// deepening A* (IDA*).
//
// What:
//
//   - Depth-first search bounded by an f = g + h cost threshold.
//   - Initial threshold h(initial state); each iteration deepens to the
//     minimum f seen among pruned branches.
//   - Explicit frontier stack instead of recursion: memory is O(depth),
//     deterministic, and safe at 15-puzzle depths (~80 ply).
//   - Immediate inverse moves are skipped — walking straight back to the
//     parent state can never lead to a cheaper path on the same branch.
//
// Why:
//
//   - A* retains every generated node; on hard 15-puzzle instances that is
//     gigabytes. IDA* re-expands across iterations instead of remembering,
//     trading time for an O(depth) footprint while keeping optimality.
//
// Termination:
//
//   - Goal found — optimal under an admissible heuristic (thresholds only
//     ever take achievable f values, in increasing order).
//   - No finite next threshold — no pruned branch remains to revisit
//     (ReasonExhausted). In cyclic spaces an unreachable goal keeps growing
//     the threshold instead; bound those runs with the ceilings below.
//   - Expansion/time ceiling hit (ReasonBudget).
//
// Errors (sentinel):
//
//   - ErrNilHeuristic — New called without a heuristic.
//   - ErrOptionViolation — negative MaxExpansions or TimeLimit.
//
// Example:
//
//	p, _ := puzzle.Scrambled(4, 40, 7)
//	alg, _ := idastar.New(puzzle.LinearConflict(p))
//	res, err := alg.Search(p)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.SolutionCost(), res.NodesExpanded)
package idastar
