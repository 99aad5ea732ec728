// This file implements boundary extraction for a node subset.

package subgraph

import (
	"errors"
	"fmt"

	"github.com/tracelab/nngraph/core"
)

// ErrInvalidMatch reports an edge incident to the subset that touches it on
// neither endpoint. It can only surface if the adjacency indexes are
// corrupted.
var ErrInvalidMatch = errors.New("subgraph: boundary edge does not touch the match")

// PatternIO is the boundary of a node subset.
//
// InputEdges enter the subset (producer outside, consumer inside) and
// OutputEdges leave it. InputNodes and OutputNodes are the subset's own
// boundary nodes; which subset nodes qualify depends on the extraction
// rule, see Boundary and RegisteredBoundary.
type PatternIO struct {
	InputEdges  []core.Edge
	OutputEdges []core.Edge
	InputNodes  []core.Node
	OutputNodes []core.Node
}

// Boundary extracts the boundary of the subset named by storage keys,
// classifying boundary nodes structurally: a subset node with no
// predecessors anywhere in g is an input node, one with no successors
// anywhere in g is an output node. A node may be both.
//
// Returns core.ErrUnknownNode via NodeByKey for an unknown key.
// Complexity: O(k * deg) for k subset nodes.
func Boundary(g *core.Graph, keys []string) (PatternIO, error) {
	nodes, member, err := resolve(g, keys)
	if err != nil {
		return PatternIO{}, err
	}

	io, err := classifyBoundary(g, nodes, member)
	if err != nil {
		return PatternIO{}, err
	}

	for _, n := range nodes {
		prev, err := g.PrevNodes(n.ID)
		if err != nil {
			return PatternIO{}, err
		}
		if len(prev) == 0 {
			io.InputNodes = append(io.InputNodes, n)
		}
		next, err := g.NextNodes(n.ID)
		if err != nil {
			return PatternIO{}, err
		}
		if len(next) == 0 {
			io.OutputNodes = append(io.OutputNodes, n)
		}
	}

	return io, nil
}

// RegisteredBoundary extracts the boundary of the subset named by storage
// keys, classifying boundary nodes by the graph's input/output metatype
// index: subset nodes registered as model inputs become input nodes, those
// registered as model outputs become output nodes.
//
// Returns core.ErrUnknownNode via NodeByKey for an unknown key.
// Complexity: O(k * deg) for k subset nodes.
func RegisteredBoundary(g *core.Graph, keys []string) (PatternIO, error) {
	nodes, member, err := resolve(g, keys)
	if err != nil {
		return PatternIO{}, err
	}

	io, err := classifyBoundary(g, nodes, member)
	if err != nil {
		return PatternIO{}, err
	}

	for _, n := range nodes {
		if g.IsInputNode(n.ID) {
			io.InputNodes = append(io.InputNodes, n)
		}
		if g.IsOutputNode(n.ID) {
			io.OutputNodes = append(io.OutputNodes, n)
		}
	}

	return io, nil
}

// resolve maps storage keys to nodes and builds the membership set.
func resolve(g *core.Graph, keys []string) ([]core.Node, map[int]struct{}, error) {
	nodes := make([]core.Node, 0, len(keys))
	member := make(map[int]struct{}, len(keys))
	for _, key := range keys {
		n, err := g.NodeByKey(key)
		if err != nil {
			return nil, nil, err
		}
		if _, dup := member[n.ID]; dup {
			continue
		}
		member[n.ID] = struct{}{}
		nodes = append(nodes, n)
	}

	return nodes, member, nil
}

// classifyBoundary collects every edge with exactly one endpoint inside the
// subset and sorts it onto the input or output side.
func classifyBoundary(g *core.Graph, nodes []core.Node, member map[int]struct{}) (PatternIO, error) {
	var io PatternIO
	appendCrossing := func(e core.Edge) error {
		_, fromIn := member[e.From]
		_, toIn := member[e.To]
		switch {
		case fromIn && toIn:
			// interior edge, not part of the boundary
		case toIn:
			io.InputEdges = append(io.InputEdges, e)
		case fromIn:
			io.OutputEdges = append(io.OutputEdges, e)
		default:
			return fmt.Errorf("%w: %s", ErrInvalidMatch, e.String())
		}

		return nil
	}

	for _, n := range nodes {
		in, err := g.InEdges(n.ID)
		if err != nil {
			return PatternIO{}, err
		}
		for _, e := range in {
			if err := appendCrossing(e); err != nil {
				return PatternIO{}, err
			}
		}
		out, err := g.OutEdges(n.ID)
		if err != nil {
			return PatternIO{}, err
		}
		for _, e := range out {
			if _, toIn := member[e.To]; toIn {
				continue // will be (or was) seen as the consumer's in-edge
			}
			if err := appendCrossing(e); err != nil {
				return PatternIO{}, err
			}
		}
	}

	return io, nil
}
