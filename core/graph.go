// This file declares the Graph store itself: construction, node insertion,
// and edge insertion. Lookups live in methods_lookup.go, adjacency queries
// in methods_adjacent.go.

package core

import (
	"fmt"
	"sync"

	"github.com/tracelab/nngraph/metatypes"
)

// Graph is the attributed directed graph store. It owns all nodes and
// edges exclusively: query methods hand out value snapshots only.
//
// Invariants maintained at insertion time:
//   - node ids are unique; absent an override, ids grow by the max+1 rule;
//   - the derived storage key "{id} {name}" is unique;
//   - nodes classified under the registered "input"/"output" metatype
//     groups are indexed incrementally and never acquire incoming/outgoing
//     edges respectively.
//
// mu guards all state; construction is single-writer, queries may then run
// concurrently.
type Graph struct {
	mu  sync.RWMutex
	reg *metatypes.Registry

	// nextID is kept at max(existing ids)+1 so assignment matches the
	// max-scan rule in O(1) per insertion.
	nextID int

	nodes map[int]*Node   // id -> attribute record
	keys  map[int]string  // id -> derived storage key
	byKey map[string]int  // storage key -> id
	edges []*Edge         // global insertion order
	out   map[int][]*Edge // forward adjacency, insertion order
	in    map[int][]*Edge // backward adjacency, insertion order

	inputs  map[int]struct{} // ids of registered graph-input nodes
	outputs map[int]struct{} // ids of registered graph-output nodes
}

// NewGraph creates an empty Graph classified against metatypes.Default()
// unless WithMetatypes overrides the registry.
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		reg:     metatypes.Default(),
		nodes:   make(map[int]*Node),
		keys:    make(map[int]string),
		byKey:   make(map[string]int),
		out:     make(map[int][]*Edge),
		in:      make(map[int][]*Edge),
		inputs:  make(map[int]struct{}),
		outputs: make(map[int]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// AddNode inserts a new node with the given name, operation type, and
// metatype, applying any NodeOption overrides, and returns a snapshot of
// the stored record.
//
// The id is WithID's override when present, otherwise max(existing)+1
// (0 for an empty graph). Nodes whose metatype belongs to the registered
// "input"/"output" groups are added to the corresponding index.
//
// Returns ErrInvalidID for a negative override and ErrDuplicateID if the
// assigned id is already present.
// Complexity: O(1) amortized.
func (g *Graph) AddNode(name, nodeType string, metatype metatypes.Metatype, opts ...NodeOption) (Node, error) {
	// 1. Gather optional attributes.
	var cfg nodeConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.hasID && cfg.id < 0 {
		return Node{}, fmt.Errorf("%w: got %d", ErrInvalidID, cfg.id)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// 2. Assign the id: override if given, else the next free one.
	id := g.nextID
	if cfg.hasID {
		id = cfg.id
	}
	if _, exists := g.nodes[id]; exists {
		return Node{}, fmt.Errorf("%w: id %d", ErrDuplicateID, id)
	}

	// 3. Build and store the full attribute record under its derived key.
	key := nodeKey(id, name)
	n := &Node{
		ID:                id,
		Name:              name,
		Type:              nodeType,
		Metatype:          metatype,
		Layer:             cfg.layer,
		IgnoredAlgorithms: append([]string(nil), cfg.ignored...),
		InIterationScope:  cfg.iteration,
		IntegerInput:      cfg.integer,
		Display:           cfg.display,
		Extra:             cfg.extra,
	}
	g.nodes[id] = n
	g.keys[id] = key
	g.byKey[key] = id

	// 4. Keep the counter at max(existing)+1.
	if id >= g.nextID {
		g.nextID = id + 1
	}

	// 5. Incrementally maintain the derived input/output index sets.
	if g.reg.IsInput(metatype) {
		g.inputs[id] = struct{}{}
	}
	if g.reg.IsOutput(metatype) {
		g.outputs[id] = struct{}{}
	}

	return n.snapshot(), nil
}

// AddEdge inserts a directed data-flow edge from node `from` to node `to`,
// carrying the given tensor shape, consumer port, and dtype.
//
// Parallel edges between the same pair are legal on distinct ports; no
// dedup is attempted. Returns ErrUnknownNode if either endpoint is absent
// and ErrInvalidTopology if `from` is a registered output node or `to` a
// registered input node.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to int, tensorShape Shape, portID int, dtype Dtype) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	// 1. Both endpoints must exist.
	if _, ok := g.nodes[from]; !ok {
		return fmt.Errorf("%w: id %d", ErrUnknownNode, from)
	}
	if _, ok := g.nodes[to]; !ok {
		return fmt.Errorf("%w: id %d", ErrUnknownNode, to)
	}

	// 2. Structural invariant: output nodes produce nothing, input nodes
	//    consume nothing.
	if _, ok := g.outputs[from]; ok {
		return fmt.Errorf("%w: cannot add edge from output node %d", ErrInvalidTopology, from)
	}
	if _, ok := g.inputs[to]; ok {
		return fmt.Errorf("%w: cannot add edge into input node %d", ErrInvalidTopology, to)
	}

	// 3. Append to both adjacency directions.
	e := &Edge{
		From:        from,
		To:          to,
		TensorShape: tensorShape.Clone(),
		PortID:      portID,
		Dtype:       dtype,
	}
	g.edges = append(g.edges, e)
	g.out[from] = append(g.out[from], e)
	g.in[to] = append(g.in[to], e)

	return nil
}

// SetDisplay attaches (or replaces) rendering hints on an existing node.
// Display data feeds the export projections only and never influences
// structural queries. Returns ErrUnknownNode for an absent id.
func (g *Graph) SetDisplay(id int, d Display) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	n, ok := g.nodes[id]
	if !ok {
		return fmt.Errorf("%w: id %d", ErrUnknownNode, id)
	}
	display := d
	n.Display = &display

	return nil
}

// SetExtra stores an opaque pass-specific payload in the node's extension
// slot, replacing any previous value. Returns ErrUnknownNode for an absent
// id.
func (g *Graph) SetExtra(id int, v any) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	n, ok := g.nodes[id]
	if !ok {
		return fmt.Errorf("%w: id %d", ErrUnknownNode, id)
	}
	n.Extra = v

	return nil
}

// snapshot returns a read copy of the record: shared slices are duplicated
// so callers cannot corrupt the store through the returned value.
func (n *Node) snapshot() Node {
	out := *n
	out.IgnoredAlgorithms = append([]string(nil), n.IgnoredAlgorithms...)
	if n.Display != nil {
		d := *n.Display
		out.Display = &d
	}

	return out
}

// snapshot returns a read copy of the edge with its shape duplicated.
func (e *Edge) snapshot() Edge {
	out := *e
	out.TensorShape = e.TensorShape.Clone()

	return out
}
