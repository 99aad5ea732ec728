// This file provides node lookups: by id, by derived storage key, by unique
// name, by operation type, and by metatype, plus the registered
// input/output index queries. All enumerations are deterministic, ordered
// by ascending node id.

package core

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tracelab/nngraph/metatypes"
)

// HasNode reports whether a node with the given id exists.
// Complexity: O(1).
func (g *Graph) HasNode(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.nodes[id]

	return ok
}

// NodeByID returns a snapshot of the node with the given id.
// Returns ErrUnknownNode if the id is absent.
// Complexity: O(1).
func (g *Graph) NodeByID(id int) (Node, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.nodes[id]
	if !ok {
		return Node{}, fmt.Errorf("%w: id %d", ErrUnknownNode, id)
	}

	return n.snapshot(), nil
}

// NodeByKey returns a snapshot of the node stored under the derived key
// "{id} {name}". Returns ErrUnknownNode if the key is absent.
// Complexity: O(1).
func (g *Graph) NodeByKey(key string) (Node, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	id, ok := g.byKey[key]
	if !ok {
		return Node{}, fmt.Errorf("%w: key %q", ErrUnknownNode, key)
	}

	return g.nodes[id].snapshot(), nil
}

// KeyByID returns the derived storage key of the node with the given id.
// Returns ErrUnknownNode if the id is absent.
// Complexity: O(1).
func (g *Graph) KeyByID(id int) (string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	key, ok := g.keys[id]
	if !ok {
		return "", fmt.Errorf("%w: id %d", ErrUnknownNode, id)
	}

	return key, nil
}

// NodeByName returns the single node carrying the given human-readable
// name. Returns ErrNodeNotFound when no node matches and ErrAmbiguousName
// (listing the colliding keys) when several do.
// Complexity: O(V).
func (g *Graph) NodeByName(name string) (Node, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var matches []*Node
	for _, id := range g.sortedIDs() {
		if g.nodes[id].Name == name {
			matches = append(matches, g.nodes[id])
		}
	}
	if len(matches) == 0 {
		return Node{}, fmt.Errorf("%w: name %q", ErrNodeNotFound, name)
	}
	if len(matches) > 1 {
		keys := make([]string, len(matches))
		for i, n := range matches {
			keys[i] = g.keys[n.ID]
		}

		return Node{}, fmt.Errorf("%w: %q matches %s", ErrAmbiguousName, name, strings.Join(keys, ", "))
	}

	return matches[0].snapshot(), nil
}

// Nodes returns snapshots of all nodes in ascending id order.
// Complexity: O(V log V).
func (g *Graph) Nodes() []Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := g.sortedIDs()
	out := make([]Node, 0, len(ids))
	for _, id := range ids {
		out = append(out, g.nodes[id].snapshot())
	}

	return out
}

// NodeIDs returns all node ids in ascending order.
// Complexity: O(V log V).
func (g *Graph) NodeIDs() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.sortedIDs()
}

// NodeKeys returns all derived storage keys in ascending id order.
// Complexity: O(V log V).
func (g *Graph) NodeKeys() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := g.sortedIDs()
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, g.keys[id])
	}

	return out
}

// NodesByType returns snapshots of all nodes whose operation type equals
// one of the given types, in ascending id order.
// Complexity: O(V log V).
func (g *Graph) NodesByType(types ...string) []Node {
	wanted := make(map[string]struct{}, len(types))
	for _, t := range types {
		wanted[t] = struct{}{}
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []Node
	for _, id := range g.sortedIDs() {
		if _, ok := wanted[g.nodes[id].Type]; ok {
			out = append(out, g.nodes[id].snapshot())
		}
	}

	return out
}

// NodesByMetatype returns snapshots of all nodes classified under one of
// the given metatypes, in ascending id order. Metatypes compare by name.
// Complexity: O(V log V).
func (g *Graph) NodesByMetatype(mts ...metatypes.Metatype) []Node {
	wanted := make(map[string]struct{}, len(mts))
	for _, m := range mts {
		if m != nil {
			wanted[m.Name()] = struct{}{}
		}
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []Node
	for _, id := range g.sortedIDs() {
		m := g.nodes[id].Metatype
		if m == nil {
			continue
		}
		if _, ok := wanted[m.Name()]; ok {
			out = append(out, g.nodes[id].snapshot())
		}
	}

	return out
}

// IsInputNode reports whether the node with the given id is registered in
// the graph's input index.
// Complexity: O(1).
func (g *Graph) IsInputNode(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.inputs[id]

	return ok
}

// IsOutputNode reports whether the node with the given id is registered in
// the graph's output index.
// Complexity: O(1).
func (g *Graph) IsOutputNode(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.outputs[id]

	return ok
}

// InputNodes returns snapshots of all registered graph-input nodes in
// ascending id order.
// Complexity: O(I log I) for I input nodes.
func (g *Graph) InputNodes() []Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.indexedNodes(g.inputs)
}

// OutputNodes returns snapshots of all registered graph-output nodes in
// ascending id order.
// Complexity: O(O log O) for O output nodes.
func (g *Graph) OutputNodes() []Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.indexedNodes(g.outputs)
}

// indexedNodes snapshots one derived index set in ascending id order.
// Callers must hold at least a read lock.
func (g *Graph) indexedNodes(index map[int]struct{}) []Node {
	ids := make([]int, 0, len(index))
	for id := range index {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	out := make([]Node, 0, len(ids))
	for _, id := range ids {
		out = append(out, g.nodes[id].snapshot())
	}

	return out
}

// sortedIDs returns all node ids ascending. Callers must hold at least a
// read lock.
func (g *Graph) sortedIDs() []int {
	ids := make([]int, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return ids
}
