// This file provides deep copying of the store. Passes snapshot a graph
// before speculative analysis and compare against the copy afterwards.

package core

// Clone returns a deep copy of the graph sharing no mutable state with the
// receiver. Metatype values and the opaque Layer/Extra payloads are shared;
// both are immutable by convention.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := &Graph{
		reg:     g.reg,
		nextID:  g.nextID,
		nodes:   make(map[int]*Node, len(g.nodes)),
		keys:    make(map[int]string, len(g.keys)),
		byKey:   make(map[string]int, len(g.byKey)),
		edges:   make([]*Edge, 0, len(g.edges)),
		out:     make(map[int][]*Edge, len(g.out)),
		in:      make(map[int][]*Edge, len(g.in)),
		inputs:  make(map[int]struct{}, len(g.inputs)),
		outputs: make(map[int]struct{}, len(g.outputs)),
	}

	// 1. Copy node records (snapshot duplicates shared slices).
	for id, n := range g.nodes {
		copied := n.snapshot()
		out.nodes[id] = &copied
	}
	for id, key := range g.keys {
		out.keys[id] = key
	}
	for key, id := range g.byKey {
		out.byKey[key] = id
	}

	// 2. Replay edges in insertion order so both adjacency directions keep
	//    the exact ordering of the source graph.
	for _, e := range g.edges {
		dup := e.snapshot()
		out.edges = append(out.edges, &dup)
		out.out[e.From] = append(out.out[e.From], &dup)
		out.in[e.To] = append(out.in[e.To], &dup)
	}

	// 3. Copy the derived index sets.
	for id := range g.inputs {
		out.inputs[id] = struct{}{}
	}
	for id := range g.outputs {
		out.outputs[id] = struct{}{}
	}

	return out
}
