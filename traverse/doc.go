// Package traverse implements the topology and traversal engine over
// core.Graph: a deterministic lexicographic topological sort and
// depth-first walks driven by a caller-supplied continuation predicate.
//
// TopologicalSort orders the whole graph; when several nodes are ready at
// once the smallest node id wins, so two structurally identical traces
// always produce identical orderings.
//
// Traverse is the raw multi-visit walk: it carries an accumulator through a
// pre-order depth-first descent and revisits a node once per path reaching
// it, because downstream passes are path-sensitive. On graphs with heavy
// diamond-shaped fan-in this degrades exponentially - that is a documented
// property, not a bug; use TraverseOnce when a single visit per node is
// enough.
//
// Both walks use an explicit stack, so traversal depth is bounded by heap,
// not by goroutine stack.
//
// Errors:
//
//	ErrGraphNil      - nil *core.Graph passed in.
//	ErrStartNotFound - the start node id does not exist.
//	ErrCycleDetected - TopologicalSort on a graph with a cycle.
package traverse
