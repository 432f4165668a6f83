// Package astar provides the informed best-first search family — A*,
// Weighted A* and Greedy Best-First — over any core.Problem.
//
// What:
//
//   - One engine, three variants, selected by constructor:
//     New (f = g + h), NewWeighted (f = g + w·h, w ≥ 1), NewGreedy (f = h).
//   - Min-heap frontier (container/heap) with “lazy decrease-key”: improved
//     paths push duplicate entries, stale ones are skipped when popped.
//   - Duplicate handling via a state-key → best-known-g table.
//   - FIFO tie-breaking among equal f values through a monotone insertion
//     counter, so expansion order is deterministic.
//   - Cooperative ceilings: WithMaxExpansions, WithTimeLimit — exceeding
//     either yields a failure result with ReasonBudget, never a crash.
//
// Why:
//
//   - A* is the workhorse for optimal sliding-tile solutions; Weighted A*
//     buys large expansion savings for a bounded (≤ w×) cost increase;
//     Greedy is the fastest way to any solution when cost does not matter.
//
// Termination:
//
//   - Success when a popped node passes the goal test (first goal popped is
//     minimal-f); ReasonExhausted when the frontier empties (unreachable
//     goal — impossible for scrambled tile instances, handled for general
//     Problems); ReasonBudget when a ceiling is hit.
//
// Errors (sentinel):
//
//   - ErrNilHeuristic — constructor called without a heuristic.
//   - ErrBadWeight — NewWeighted with w < 1.
//   - ErrOptionViolation — negative MaxExpansions or TimeLimit.
//
// Example:
//
//	p, _ := puzzle.Scrambled(3, 20, 42)
//	alg, _ := astar.New(puzzle.Manhattan(p))
//	res, err := alg.Search(p)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Success, res.SolutionCost(), res.NodesExpanded)
package astar
