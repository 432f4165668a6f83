// Package core - the Agent: one Problem bound to one Algorithm.
package core

import "time"

// Agent binds one Problem instance to one Algorithm instance.
//
// Each Agent owns its algorithm's node store and RNG state; distinct agents
// share nothing and may run concurrently as independent units. A single
// Agent is not goroutine-safe.
type Agent struct {
	problem   Problem
	algorithm Algorithm
}

// NewAgent validates and binds the collaborators.
// Construction fails fast (ErrNilProblem, ErrNilAlgorithm) so that an agent,
// once built, can always attempt a search.
func NewAgent(p Problem, alg Algorithm) (*Agent, error) {
	if p == nil {
		return nil, ErrNilProblem
	}
	if alg == nil {
		return nil, ErrNilAlgorithm
	}
	return &Agent{problem: p, algorithm: alg}, nil
}

// Problem returns the bound problem.
func (a *Agent) Problem() Problem { return a.problem }

// Algorithm returns the bound algorithm.
func (a *Agent) Algorithm() Algorithm { return a.algorithm }

// Solve invokes the algorithm on the bound problem, synchronously on the
// calling goroutine, and records wall-clock runtime around the call.
//
// Every terminating run yields a SearchResult; the error return only fires
// for usage errors surfaced by the algorithm (see Algorithm.Search).
func (a *Agent) Solve() (*SearchResult, error) {
	start := time.Now()
	res, err := a.algorithm.Search(a.problem)
	if err != nil {
		return nil, err
	}
	res.Runtime = time.Since(start)
	return res, nil
}
