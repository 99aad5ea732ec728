package core

// SharedNodeSource is implemented by tracer adapters that can attribute
// several graph nodes to a single reused layer of the source model (for
// example a module applied twice in one forward pass). The core store has
// no notion of layer reuse; passes that need it accept this interface from
// the adapter that produced the graph.
type SharedNodeSource interface {
	// SharedNodeGroups returns, per reused layer, the nodes it produced.
	SharedNodeGroups(g *Graph) [][]Node

	// IsSharedNode reports whether n originates from a reused layer.
	IsSharedNode(n Node) bool
}

// SharedNodes returns every node of g attributed to a reused layer by src,
// in ascending id order. Compression passes use it to exclude reused layers
// from per-node transformations.
// Complexity: O(V log V).
func SharedNodes(g *Graph, src SharedNodeSource) []Node {
	if g == nil || src == nil {
		return nil
	}

	var out []Node
	for _, n := range g.Nodes() {
		if src.IsSharedNode(n) {
			out = append(out, n)
		}
	}

	return out
}
