// This file implements the predicate-driven depth-first walks.

package traverse

import (
	"fmt"

	"github.com/tracelab/nngraph/core"
)

// Traverse walks g depth-first from startID, threading acc through visit at
// every reached node in pre-order. When visit reports stop, descent past
// that node is pruned. Nodes reachable via several paths are visited once
// per path: there is no visited set, so visit must be idempotent or
// monotonic on graphs with shared descendants. The walk terminates on DAGs;
// a reachable cycle makes it diverge, exactly like the trace semantics it
// mirrors.
//
// Returns ErrGraphNil or ErrStartNotFound on invalid input.
// Complexity: O(paths) - exponential on dense diamond fan-in.
func Traverse[T any](g *core.Graph, startID int, acc T, visit VisitFunc[T], opts ...Option) (T, error) {
	// 1. Validate inputs.
	if g == nil {
		return acc, ErrGraphNil
	}
	if !g.HasNode(startID) {
		return acc, fmt.Errorf("%w: id %d", ErrStartNotFound, startID)
	}

	// 2. Apply options.
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// 3. Explicit-stack pre-order descent; neighbors are pushed in reverse
	//    so the first neighbor is explored first.
	stack := []int{startID}
	var stop bool
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n, err := g.NodeByID(id)
		if err != nil {
			return acc, err
		}
		stop, acc = visit(n, acc)
		if stop {
			continue
		}

		next, err := neighbors(g, id, o.dir)
		if err != nil {
			return acc, err
		}
		for i := len(next) - 1; i >= 0; i-- {
			stack = append(stack, next[i].ID)
		}
	}

	return acc, nil
}

// TraverseOnce is the visited-set variant of Traverse: every reachable node
// is visited exactly once, in pre-order of its first discovery. Safe on
// graphs with cycles and shared descendants.
//
// Returns ErrGraphNil or ErrStartNotFound on invalid input.
// Complexity: O(V + E).
func TraverseOnce[T any](g *core.Graph, startID int, acc T, visit VisitFunc[T], opts ...Option) (T, error) {
	// 1. Validate inputs.
	if g == nil {
		return acc, ErrGraphNil
	}
	if !g.HasNode(startID) {
		return acc, fmt.Errorf("%w: id %d", ErrStartNotFound, startID)
	}

	// 2. Apply options.
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// 3. Same descent as Traverse with a discovery set: a node enters the
	//    stack at most once.
	seen := map[int]struct{}{startID: {}}
	stack := []int{startID}
	var stop bool
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n, err := g.NodeByID(id)
		if err != nil {
			return acc, err
		}
		stop, acc = visit(n, acc)
		if stop {
			continue
		}

		next, err := neighbors(g, id, o.dir)
		if err != nil {
			return acc, err
		}
		for i := len(next) - 1; i >= 0; i-- {
			nid := next[i].ID
			if _, dup := seen[nid]; dup {
				continue
			}
			seen[nid] = struct{}{}
			stack = append(stack, nid)
		}
	}

	return acc, nil
}

// neighbors resolves the adjacency for the walk direction.
func neighbors(g *core.Graph, id int, dir Direction) ([]core.Node, error) {
	if dir == Backward {
		return g.PrevNodes(id)
	}

	return g.NextNodes(id)
}
