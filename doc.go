// Package nngraph is the intermediate-representation layer of a neural
// network compression toolkit: a mutable, attributed, directed and mostly
// acyclic execution graph extracted from a traced model, together with the
// structural queries compression passes need.
//
// A tracer populates the graph once through the insertion API; quantizer
// placement, pruning, and statistics passes then query it read-only. The
// graph never executes the model and never touches tensors - it only
// describes structure.
//
// Everything is organized under focused subpackages:
//
//	core/      - Graph, Node, and Edge types; insertion, lookups, adjacency
//	metatypes/ - operator taxonomy used to classify nodes (input/output/...)
//	traverse/  - lexicographic topological sort and predicate-driven walks
//	match/     - declarative structural pattern matching over node paths
//	subgraph/  - boundary-edge extraction for matched subgraphs
//	isomorph/  - structural equality under configurable attribute comparators
//	export/    - lossy DOT/Mermaid projections for diagnostics
//
// Construction is expected to finish before concurrent queries begin; the
// store is additionally guarded by a reader-writer lock so the build-once,
// query-many pattern is safe across goroutines.
//
//	go get github.com/tracelab/nngraph
package nngraph
