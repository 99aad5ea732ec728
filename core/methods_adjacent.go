// This file provides neighborhood and edge queries.
// Determinism:
//   - InEdges sorts ascending by PortID (stable for equal ports).
//   - OutEdges and NextNodes/PrevNodes follow edge insertion order.
//   - Edges enumerates producers in ascending id order.

package core

import (
	"fmt"
	"sort"
)

// NextNodes returns snapshots of the consumers of the given node, in edge
// insertion order with duplicates removed (a consumer reached through
// several ports appears once). Returns ErrUnknownNode for an absent id.
// Complexity: O(deg(v)).
func (g *Graph) NextNodes(id int) ([]Node, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.nodes[id]; !ok {
		return nil, fmt.Errorf("%w: id %d", ErrUnknownNode, id)
	}

	return g.uniqueEndpoints(g.out[id], func(e *Edge) int { return e.To }), nil
}

// PrevNodes returns snapshots of the producers of the given node, in edge
// insertion order with duplicates removed. Returns ErrUnknownNode for an
// absent id.
// Complexity: O(deg(v)).
func (g *Graph) PrevNodes(id int) ([]Node, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.nodes[id]; !ok {
		return nil, fmt.Errorf("%w: id %d", ErrUnknownNode, id)
	}

	return g.uniqueEndpoints(g.in[id], func(e *Edge) int { return e.From }), nil
}

// InEdges returns snapshots of the node's incoming edges sorted ascending
// by PortID; downstream passes rely on the positional correspondence to
// operand slots. Returns ErrUnknownNode for an absent id.
// Complexity: O(deg(v) log deg(v)).
func (g *Graph) InEdges(id int) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.nodes[id]; !ok {
		return nil, fmt.Errorf("%w: id %d", ErrUnknownNode, id)
	}

	out := make([]Edge, 0, len(g.in[id]))
	for _, e := range g.in[id] {
		out = append(out, e.snapshot())
	}
	// Stable keeps insertion order among edges sharing a port.
	sort.SliceStable(out, func(i, j int) bool { return out[i].PortID < out[j].PortID })

	return out, nil
}

// OutEdges returns snapshots of the node's outgoing edges in insertion
// order (deterministic for a fixed graph). Returns ErrUnknownNode for an
// absent id.
// Complexity: O(deg(v)).
func (g *Graph) OutEdges(id int) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.nodes[id]; !ok {
		return nil, fmt.Errorf("%w: id %d", ErrUnknownNode, id)
	}

	out := make([]Edge, 0, len(g.out[id]))
	for _, e := range g.out[id] {
		out = append(out, e.snapshot())
	}

	return out, nil
}

// EdgesBetween returns snapshots of every edge from producer `from` to
// consumer `to`, sorted ascending by PortID. Parallel edges on distinct
// ports all appear. Returns ErrUnknownNode if either endpoint is absent.
// Complexity: O(deg(from) log deg(from)).
func (g *Graph) EdgesBetween(from, to int) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.nodes[from]; !ok {
		return nil, fmt.Errorf("%w: id %d", ErrUnknownNode, from)
	}
	if _, ok := g.nodes[to]; !ok {
		return nil, fmt.Errorf("%w: id %d", ErrUnknownNode, to)
	}

	var out []Edge
	for _, e := range g.out[from] {
		if e.To == to {
			out = append(out, e.snapshot())
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].PortID < out[j].PortID })

	return out, nil
}

// Edges returns snapshots of every edge in the graph in insertion order
// (deterministic for a fixed graph).
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e.snapshot())
	}

	return out
}

// NodeCount returns the number of nodes.
// Complexity: O(1).
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// EdgeCount returns the number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// uniqueEndpoints maps edges to node snapshots of one endpoint, dropping
// repeats while preserving first-occurrence order. Callers must hold at
// least a read lock.
func (g *Graph) uniqueEndpoints(edges []*Edge, pick func(*Edge) int) []Node {
	seen := make(map[int]struct{}, len(edges))
	out := make([]Node, 0, len(edges))
	for _, e := range edges {
		id := pick(e)
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, g.nodes[id].snapshot())
	}

	return out
}
