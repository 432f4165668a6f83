// Package core defines the fundamental contracts and building blocks shared
// by every search algorithm in tilesearch: the Problem abstraction, the node
// arena, the SearchResult record, and the Agent that binds one Problem to one
// Algorithm.
//
// What:
//
//   - Problem: a domain contract (initial state, legal actions, transitions,
//     goal test, step costs) that keeps algorithms domain-agnostic.
//   - State / Action: small value interfaces; states are immutable and expose
//     a canonical Key for hashing, actions expose a display name.
//   - Heuristic: a pure func(State) float64 estimating remaining cost.
//   - Arena / NodeID: an append-only node store. Parent links are indices
//     into the arena, not pointers, so an entire search run's memory is
//     released atomically when the arena is dropped and memory-bounded
//     algorithms can discard dead branches by truncation.
//   - SearchResult: the standardized outcome of one search run — success
//     flag, terminal node, expansion/iteration counters, wall-clock runtime
//     and a Reason code for every failure path.
//   - Agent: thin composition of one Problem and one Algorithm; Solve runs
//     the algorithm synchronously and records runtime around the call.
//
// Why:
//
//   - Seven interchangeable search strategies consume exactly this surface;
//     adding a new domain means implementing Problem, nothing else.
//
// Concurrency:
//
//   - A single Agent (and its arena) is strictly single-threaded; Solve runs
//     to completion on the calling goroutine. Distinct Agent instances share
//     no state and may run in parallel as independent units.
//
// Errors (sentinel):
//
//   - ErrInvalidTransition — an action applied to a state where it is not
//     legal; a programming error in a collaborator, never a search outcome.
//   - ErrNilProblem / ErrNilAlgorithm — invalid Agent construction.
//   - ErrNodeOutOfRange — a NodeID that does not belong to the arena.
//
// Failures that are search outcomes (frontier exhausted, budget exceeded,
// local optimum, frozen schedule) are never errors: they surface as a
// SearchResult with Success=false and a populated Reason.
package core
