// Package core - append-only node arena and path reconstruction.
//
// Nodes form a tree, never a general graph: each node holds the index of its
// parent, and reconstructing a solution walks parent indices back to the
// root. Storing indices instead of pointers keeps the whole run's nodes in
// one slice, released together when the arena is dropped, and lets
// memory-bounded algorithms discard dead branches with a single Truncate.
package core

import "fmt"

// NodeID is an index into an Arena. The zero-value arena has no nodes;
// NoNode marks "no node" (absent parent, failed search).
type NodeID int32

// NoNode is the sentinel NodeID for "no node".
const NoNode NodeID = -1

// Node is one point in the search tree.
//
// The node does not own its parent; the arena owns all nodes of a run.
type Node struct {
	State  State   // the configuration this node holds
	Parent NodeID  // index of the parent node, NoNode for the root
	Action Action  // action taken to reach this node, nil for the root
	Cost   float64 // accumulated path cost g
	Depth  int     // number of actions from the root
}

// Arena is an append-only store of search nodes.
//
// Not goroutine-safe: one arena belongs to one running algorithm.
type Arena struct {
	nodes []Node
}

// NewArena returns an empty arena with room for hint nodes.
func NewArena(hint int) *Arena {
	if hint < 0 {
		hint = 0
	}
	return &Arena{nodes: make([]Node, 0, hint)}
}

// Root appends a root node (no parent, zero cost) and returns its id.
func (ar *Arena) Root(s State) NodeID {
	ar.nodes = append(ar.nodes, Node{State: s, Parent: NoNode, Cost: 0, Depth: 0})
	return NodeID(len(ar.nodes) - 1)
}

// Add appends a child node and returns its id.
// The caller is responsible for cost/depth bookkeeping; Expand is the
// convenience path that derives both from the parent.
func (ar *Arena) Add(s State, parent NodeID, a Action, cost float64, depth int) NodeID {
	ar.nodes = append(ar.nodes, Node{State: s, Parent: parent, Action: a, Cost: cost, Depth: depth})
	return NodeID(len(ar.nodes) - 1)
}

// Node returns a copy of the node with the given id.
// Panics with ErrNodeOutOfRange on a foreign id; handing an id from one
// arena to another is a programming error on par with ErrInvalidTransition.
func (ar *Arena) Node(id NodeID) Node {
	if id < 0 || int(id) >= len(ar.nodes) {
		panic(fmt.Sprintf("%v: %d (len %d)", ErrNodeOutOfRange, id, len(ar.nodes)))
	}
	return ar.nodes[id]
}

// Len returns the number of nodes currently stored.
func (ar *Arena) Len() int { return len(ar.nodes) }

// Truncate discards all nodes with id >= n.
// Memory-bounded algorithms use it to drop dead branches; callers must not
// retain ids >= n afterwards.
func (ar *Arena) Truncate(n int) {
	if n < 0 {
		n = 0
	}
	if n < len(ar.nodes) {
		ar.nodes = ar.nodes[:n]
	}
}

// Expand generates one child per action in p.Actions(node.State), each with
// g = node.Cost + p.StepCost(...), and returns the new ids in action order.
//
// Complexity: O(b) children per call, b = branching factor.
func (ar *Arena) Expand(id NodeID, p Problem) ([]NodeID, error) {
	if p == nil {
		return nil, ErrNilProblem
	}
	parent := ar.Node(id)

	acts := p.Actions(parent.State)
	children := make([]NodeID, 0, len(acts))
	for _, a := range acts {
		next, err := p.Result(parent.State, a)
		if err != nil {
			// Actions promised a is legal; a failing Result is a broken Problem.
			return nil, fmt.Errorf("core: expand %q: %w", a, err)
		}
		cost := parent.Cost + p.StepCost(parent.State, a, next)
		children = append(children, ar.Add(next, id, a, cost, parent.Depth+1))
	}
	return children, nil
}

// PathActions reconstructs the action sequence from the root to id by
// walking parent links and reversing. Empty for a root node.
//
// Complexity: O(depth).
func (ar *Arena) PathActions(id NodeID) []Action {
	node := ar.Node(id)
	path := make([]Action, 0, node.Depth)
	for node.Parent != NoNode {
		path = append(path, node.Action)
		node = ar.Node(node.Parent)
	}
	// reverse in place: actions were collected goal→root
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
