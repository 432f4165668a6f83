// Package astar implements the informed best-first search family over any
// core.Problem: A* (w=1), Weighted A* (w>1) and Greedy Best-First (f=h).
//
// All three share one engine: a min-heap frontier keyed by
// f(n) = g(n)·[not greedy] + w·h(n), a best-known-g table for duplicate
// handling with lazy deletion, and FIFO tie-breaking among equal f via a
// monotone insertion counter.
//
// Complexity:
//
//   - Time:  O(M log M) heap operations, M = nodes pushed.
//   - Space: O(M) — the arena retains every generated node until the run's
//     result is discarded.
//
// Optimality:
//
//   - A* with an admissible heuristic returns a minimal-cost solution.
//   - Weighted A* returns cost ≤ w × optimal (speed for bounded suboptimality).
//   - Greedy offers no cost guarantee but is complete on finite spaces
//     thanks to the duplicate table.
package astar

import (
	"container/heap"
	"fmt"
	"time"

	"github.com/katalvlaran/tilesearch/core"
)

// AStar is a configured best-first search instance. Construct via New,
// NewWeighted or NewGreedy; a single instance may run many searches, each
// with its own arena and frontier.
type AStar struct {
	heuristic core.Heuristic
	weight    float64
	greedy    bool
	name      string
	opts      Options
}

// New returns standard A*: f(n) = g(n) + h(n).
// With an admissible heuristic the returned solution cost is optimal.
func New(h core.Heuristic, opts ...Option) (*AStar, error) {
	return build(h, 1, false, "astar", opts)
}

// NewWeighted returns Weighted A*: f(n) = g(n) + w·h(n), w ≥ 1.
// Trades optimality for speed; the solution cost is at most w × optimal.
func NewWeighted(h core.Heuristic, w float64, opts ...Option) (*AStar, error) {
	if w < 1 {
		return nil, fmt.Errorf("%w: got %g", ErrBadWeight, w)
	}
	return build(h, w, false, "astar_weighted", opts)
}

// NewGreedy returns Greedy Best-First search: f(n) = h(n), ignoring g.
// Fast and complete on finite spaces, with no cost guarantee.
func NewGreedy(h core.Heuristic, opts ...Option) (*AStar, error) {
	return build(h, 1, true, "greedy", opts)
}

func build(h core.Heuristic, w float64, greedy bool, name string, opts []Option) (*AStar, error) {
	if h == nil {
		return nil, ErrNilHeuristic
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	return &AStar{heuristic: h, weight: w, greedy: greedy, name: name, opts: o}, nil
}

// Name identifies the variant in per-run records:
// "astar", "astar_weighted" or "greedy".
func (a *AStar) Name() string { return a.name }

// Weight returns the heuristic weight w (1 for standard A* and Greedy).
func (a *AStar) Weight() float64 { return a.weight }

// Search runs best-first search on p until a popped node is a goal
// (success), the frontier empties (ReasonExhausted) or a ceiling is hit
// (ReasonBudget). The error return fires only for nil problems and broken
// Problem implementations.
func (a *AStar) Search(p core.Problem) (*core.SearchResult, error) {
	if p == nil {
		return nil, core.ErrNilProblem
	}

	r := &runner{
		alg:      a,
		problem:  p,
		arena:    core.NewArena(64),
		bestG:    make(map[string]float64),
		frontier: make(frontier, 0, 64),
		start:    time.Now(),
	}
	return r.run()
}

// runner holds the mutable state of a single best-first execution.
type runner struct {
	alg     *AStar
	problem core.Problem
	arena   *core.Arena
	// bestG maps a state key to the best g at which that state was expanded.
	// Stale frontier entries are skipped on pop (lazy deletion) instead of
	// decreasing heap keys in place.
	bestG    map[string]float64
	frontier frontier
	counter  int64 // monotone push counter: FIFO among equal f
	expanded int
	start    time.Time
}

// f computes the frontier key for a node with path cost g in state s.
func (r *runner) f(g float64, s core.State) float64 {
	h := r.alg.heuristic(s)
	if r.alg.greedy {
		return r.alg.weight * h
	}
	return g + r.alg.weight*h
}

// push inserts a node into the frontier with its current f value.
func (r *runner) push(id core.NodeID) {
	n := r.arena.Node(id)
	r.counter++
	heap.Push(&r.frontier, &entry{id: id, f: r.f(n.Cost, n.State), order: r.counter})
}

// overBudget reports whether an expansion or wall-clock ceiling is spent.
// Checked once per pop; enforcement is cooperative, never preemptive.
func (r *runner) overBudget() bool {
	if r.alg.opts.MaxExpansions > 0 && r.expanded >= r.alg.opts.MaxExpansions {
		return true
	}
	if r.alg.opts.TimeLimit > 0 && time.Since(r.start) >= r.alg.opts.TimeLimit {
		return true
	}
	return false
}

// run is the main best-first loop.
func (r *runner) run() (*core.SearchResult, error) {
	// Seed the frontier with the root node.
	root := r.arena.Root(r.problem.InitialState())
	r.push(root)

	for r.frontier.Len() > 0 {
		if r.overBudget() {
			return r.finish(core.NoNode, core.ReasonBudget), nil
		}

		e := heap.Pop(&r.frontier).(*entry)
		n := r.arena.Node(e.id)

		// Termination test on pop: the first goal popped is the answer.
		if r.problem.IsGoal(n.State) {
			return r.finish(e.id, core.ReasonGoal), nil
		}

		// Lazy deletion: skip entries whose state has since been expanded
		// at an equal or better g.
		key := n.State.Key()
		if g, seen := r.bestG[key]; seen && g <= n.Cost {
			continue
		}
		r.bestG[key] = n.Cost
		r.expanded++

		children, err := r.arena.Expand(e.id, r.problem)
		if err != nil {
			return nil, err
		}
		for _, child := range children {
			c := r.arena.Node(child)
			if g, seen := r.bestG[c.State.Key()]; seen && g <= c.Cost {
				continue // already expanded at least as cheaply
			}
			r.push(child)
		}
	}

	// Frontier emptied without reaching a goal: nothing left to explore.
	return r.finish(core.NoNode, core.ReasonExhausted), nil
}

// finish assembles the SearchResult for any termination path.
func (r *runner) finish(goal core.NodeID, reason core.Reason) *core.SearchResult {
	res := core.NewResult(r.arena, goal, reason == core.ReasonGoal, reason)
	res.NodesExpanded = r.expanded
	res.Runtime = time.Since(r.start)
	return res
}

// entry is one frontier element: a node id, its f value, and the push order
// used to break f ties FIFO.
type entry struct {
	id    core.NodeID
	f     float64
	order int64
}

// frontier is a min-heap of *entry ordered by (f, order).
type frontier []*entry

func (q frontier) Len() int { return len(q) }

// Less orders by f ascending, breaking ties by insertion order (FIFO),
// which keeps expansion order deterministic across runs.
func (q frontier) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}
	return q[i].order < q[j].order
}

func (q frontier) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

// Push appends x; called by container/heap.
func (q *frontier) Push(x interface{}) { *q = append(*q, x.(*entry)) }

// Pop removes and returns the last element; called by container/heap.
func (q *frontier) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}
