package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tracelab/nngraph/core"
	"github.com/tracelab/nngraph/metatypes"
)

// chain builds input -> conv -> relu -> output and returns the graph plus
// the four nodes in order.
func chain(t *testing.T) (*core.Graph, []core.Node) {
	t.Helper()
	g := core.NewGraph()
	in, err := g.AddNode("input_0", "parameter", metatypes.ModelInput)
	assert.NoError(t, err)
	conv, err := g.AddNode("model/conv_0", "conv", metatypes.UnknownMetatype)
	assert.NoError(t, err)
	relu, err := g.AddNode("model/relu_0", "relu", metatypes.UnknownMetatype)
	assert.NoError(t, err)
	out, err := g.AddNode("output_0", "result", metatypes.ModelOutput)
	assert.NoError(t, err)

	shape := core.Shape{1, 3, 224, 224}
	assert.NoError(t, g.AddEdge(in.ID, conv.ID, shape, 0, core.DtypeFloat))
	assert.NoError(t, g.AddEdge(conv.ID, relu.ID, shape, 0, core.DtypeFloat))
	assert.NoError(t, g.AddEdge(relu.ID, out.ID, shape, 0, core.DtypeFloat))

	return g, []core.Node{in, conv, relu, out}
}

// TestNodeByName_Unique resolves a unique name and errors on misses and
// collisions.
func TestNodeByName_Unique(t *testing.T) {
	g, ns := chain(t)

	got, err := g.NodeByName("model/conv_0")
	assert.NoError(t, err)
	assert.Equal(t, ns[1].ID, got.ID)

	_, err = g.NodeByName("model/absent")
	assert.ErrorIs(t, err, core.ErrNodeNotFound)

	// second node under an existing name makes the lookup ambiguous
	_, err = g.AddNode("model/conv_0", "conv", metatypes.UnknownMetatype)
	assert.NoError(t, err)
	_, err = g.NodeByName("model/conv_0")
	assert.ErrorIs(t, err, core.ErrAmbiguousName)
}

// TestNodeEnumerations checks Nodes, NodeIDs and NodeKeys are ascending by id.
func TestNodeEnumerations(t *testing.T) {
	g, _ := chain(t)

	assert.Equal(t, []int{0, 1, 2, 3}, g.NodeIDs())
	keys := g.NodeKeys()
	assert.Equal(t, []string{"0 input_0", "1 model/conv_0", "2 model/relu_0", "3 output_0"}, keys)

	nodes := g.Nodes()
	assert.Len(t, nodes, 4)
	for i, n := range nodes {
		assert.Equal(t, i, n.ID)
	}
}

// TestNodesByTypeAndMetatype filters by operation type and by metatype name.
func TestNodesByTypeAndMetatype(t *testing.T) {
	g, ns := chain(t)

	convs := g.NodesByType("conv", "relu")
	assert.Len(t, convs, 2)
	assert.Equal(t, ns[1].ID, convs[0].ID)
	assert.Equal(t, ns[2].ID, convs[1].ID)

	inputs := g.NodesByMetatype(metatypes.ModelInput)
	assert.Len(t, inputs, 1)
	assert.Equal(t, ns[0].ID, inputs[0].ID)
}

// TestAdjacency covers NextNodes and PrevNodes on the chain.
func TestAdjacency(t *testing.T) {
	g, ns := chain(t)

	next, err := g.NextNodes(ns[1].ID)
	assert.NoError(t, err)
	assert.Len(t, next, 1)
	assert.Equal(t, ns[2].ID, next[0].ID)

	prev, err := g.PrevNodes(ns[1].ID)
	assert.NoError(t, err)
	assert.Len(t, prev, 1)
	assert.Equal(t, ns[0].ID, prev[0].ID)

	_, err = g.NextNodes(99)
	assert.ErrorIs(t, err, core.ErrUnknownNode)
}

// TestInEdges_PortOrder verifies incoming edges come back sorted by port
// regardless of insertion order.
func TestInEdges_PortOrder(t *testing.T) {
	g := core.NewGraph()
	a, _ := g.AddNode("model/conv_0", "conv", metatypes.UnknownMetatype)
	b, _ := g.AddNode("model/conv_1", "conv", metatypes.UnknownMetatype)
	c, _ := g.AddNode("model/cat_0", "cat", metatypes.UnknownMetatype)

	// inserted out of port order on purpose
	assert.NoError(t, g.AddEdge(b.ID, c.ID, core.Shape{1, 8}, 1, core.DtypeFloat))
	assert.NoError(t, g.AddEdge(a.ID, c.ID, core.Shape{1, 8}, 0, core.DtypeFloat))

	in, err := g.InEdges(c.ID)
	assert.NoError(t, err)
	assert.Len(t, in, 2)
	assert.Equal(t, 0, in[0].PortID)
	assert.Equal(t, a.ID, in[0].From)
	assert.Equal(t, 1, in[1].PortID)
	assert.Equal(t, b.ID, in[1].From)
}

// TestEdges_InsertionOrder verifies the global edge enumeration follows
// insertion order.
func TestEdges_InsertionOrder(t *testing.T) {
	g, ns := chain(t)

	edges := g.Edges()
	assert.Len(t, edges, 3)
	assert.Equal(t, ns[0].ID, edges[0].From)
	assert.Equal(t, ns[1].ID, edges[1].From)
	assert.Equal(t, ns[2].ID, edges[2].From)
	assert.Equal(t, 3, g.EdgeCount())
	assert.Equal(t, 4, g.NodeCount())
}

// TestStats aggregates counts and per-type tallies.
func TestStats(t *testing.T) {
	g, _ := chain(t)

	s := g.Stats()
	assert.Equal(t, 4, s.NodeCount)
	assert.Equal(t, 3, s.EdgeCount)
	assert.Equal(t, 1, s.InputCount)
	assert.Equal(t, 1, s.OutputCount)
	assert.Equal(t, 1, s.TypeCounts["conv"])
	assert.Equal(t, 1, s.TypeCounts["parameter"])
}

// TestClone_Independence verifies the clone carries identical structure and
// later mutations of the original never reach it.
func TestClone_Independence(t *testing.T) {
	g, ns := chain(t)
	c := g.Clone()

	assert.Equal(t, g.NodeIDs(), c.NodeIDs())
	assert.Equal(t, g.Edges(), c.Edges())
	assert.True(t, c.IsInputNode(ns[0].ID))
	assert.True(t, c.IsOutputNode(ns[3].ID))

	// grow the original; the clone must not change
	extra, err := g.AddNode("model/pool_0", "pool", metatypes.UnknownMetatype)
	assert.NoError(t, err)
	assert.NoError(t, g.AddEdge(ns[2].ID, extra.ID, core.Shape{1}, 1, core.DtypeFloat))

	assert.False(t, c.HasNode(extra.ID))
	assert.Equal(t, 3, c.EdgeCount())

	// automatic ids on the clone continue past the copied maximum
	n, err := c.AddNode("model/new_0", "conv", metatypes.UnknownMetatype)
	assert.NoError(t, err)
	assert.Equal(t, 4, n.ID)
}
