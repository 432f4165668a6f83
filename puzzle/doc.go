// Package puzzle models the sliding-tile domain (8-puzzle, 15-puzzle and any
// N×N sibling) as a core.Problem, and provides the classic admissible
// heuristics over it.
//
// What:
//
//   - Board: an immutable N×N grid flattened row-major; tile 0 is the blank.
//   - Move: UP / DOWN / LEFT / RIGHT — the direction the blank moves.
//   - Problem: initial + goal boards, legal-move enumeration, transitions
//     with unit step cost, goal test.
//   - Scrambled: solvable-instance generation by walking random reversible
//     moves back from the goal, never immediately undoing the previous move.
//   - Heuristics: Misplaced, Manhattan, LinearConflict — each constructor
//     binds the problem's goal mapping and returns a pure core.Heuristic.
//
// Why:
//
//   - Scrambling from the goal guarantees solvability and a known move-count
//     upper bound by construction; no parity checks on arbitrary
//     permutations, no unsolvable instances.
//
// Complexity:
//
//   - Actions/Result: O(1) per call (the blank index is cached on the board).
//   - Misplaced/Manhattan: O(N²) per evaluation.
//   - LinearConflict: O(N³) per evaluation (pairs per line).
//
// Heuristic ordering (for every state s):
//
//	Misplaced(s) ≤ Manhattan(s) ≤ LinearConflict(s) ≤ true distance
//
// All three are admissible; LinearConflict dominates Manhattan, which
// dominates Misplaced.
//
// Errors (sentinel):
//
//   - ErrBadSize — size < 2.
//   - ErrBadTiles — tile multiset is not a permutation of 0..N²-1.
//   - ErrBadDepth — negative scramble depth.
//   - ErrSizeMismatch — initial and goal boards of different sizes.
//
// Determinism:
//
//   - Actions are always enumerated UP, DOWN, LEFT, RIGHT (filtered by the
//     blank's position); Scrambled is fully determined by its seed.
package puzzle
