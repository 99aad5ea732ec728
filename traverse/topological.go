// This file implements the deterministic lexicographic topological sort.
//
// Kahn's algorithm with a min-heap over ready node ids: whenever several
// nodes have all their producers emitted, the smallest id is emitted first.
// Two structurally identical traces therefore sort identically.
//
// Complexity:
//
//   - Time:   O(V log V + E)
//   - Memory: O(V)

package traverse

import (
	"container/heap"

	"github.com/tracelab/nngraph/core"
)

// TopologicalSort returns every node of g in topological order, ties broken
// by ascending node id. Parallel edges are counted per edge, so a consumer
// becomes ready only after all of its incoming edges are satisfied.
//
// Returns ErrGraphNil for a nil graph and ErrCycleDetected if the graph is
// not a DAG.
func TopologicalSort(g *core.Graph) ([]core.Node, error) {
	// 1. Validate the graph pointer.
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Count incoming edges per node.
	ids := g.NodeIDs()
	indegree := make(map[int]int, len(ids))
	for _, id := range ids {
		edges, err := g.InEdges(id)
		if err != nil {
			return nil, err
		}
		indegree[id] = len(edges)
	}

	// 3. Seed the ready heap with every source node.
	ready := &idHeap{}
	heap.Init(ready)
	for _, id := range ids {
		if indegree[id] == 0 {
			heap.Push(ready, id)
		}
	}

	// 4. Repeatedly emit the smallest ready id and release its consumers.
	order := make([]core.Node, 0, len(ids))
	for ready.Len() > 0 {
		id := heap.Pop(ready).(int)
		n, err := g.NodeByID(id)
		if err != nil {
			return nil, err
		}
		order = append(order, n)

		out, err := g.OutEdges(id)
		if err != nil {
			return nil, err
		}
		for _, e := range out {
			indegree[e.To]--
			if indegree[e.To] == 0 {
				heap.Push(ready, e.To)
			}
		}
	}

	// 5. Unemitted nodes mean a cycle.
	if len(order) != len(ids) {
		return nil, ErrCycleDetected
	}

	return order, nil
}

// idHeap is a min-heap of node ids implementing container/heap.
type idHeap []int

func (h idHeap) Len() int           { return len(h) }
func (h idHeap) Less(i, j int) bool { return h[i] < h[j] }
func (h idHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *idHeap) Push(x any)        { *h = append(*h, x.(int)) }

func (h *idHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]

	return x
}
