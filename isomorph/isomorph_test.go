package isomorph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tracelab/nngraph/core"
	"github.com/tracelab/nngraph/isomorph"
	"github.com/tracelab/nngraph/metatypes"
)

// buildChain constructs input -> conv -> output with the given id order.
func buildChain(t *testing.T, ids [3]int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	_, err := g.AddNode("input_0", "parameter", metatypes.ModelInput, core.WithID(ids[0]))
	assert.NoError(t, err)
	_, err = g.AddNode("model/conv_0", "conv", metatypes.UnknownMetatype, core.WithID(ids[1]))
	assert.NoError(t, err)
	_, err = g.AddNode("output_0", "result", metatypes.ModelOutput, core.WithID(ids[2]))
	assert.NoError(t, err)

	shape := core.Shape{1, 3, 8, 8}
	assert.NoError(t, g.AddEdge(ids[0], ids[1], shape, 0, core.DtypeFloat))
	assert.NoError(t, g.AddEdge(ids[1], ids[2], shape, 0, core.DtypeFloat))

	return g
}

// TestEqual_Reflexive checks a graph equals its own clone under defaults.
func TestEqual_Reflexive(t *testing.T) {
	g := buildChain(t, [3]int{0, 1, 2})
	assert.True(t, isomorph.Equal(g, g.Clone()))
}

// TestEqual_NilHandling treats two nils as equal and nil against a graph as
// unequal.
func TestEqual_NilHandling(t *testing.T) {
	g := core.NewGraph()
	assert.True(t, isomorph.Equal(nil, nil))
	assert.False(t, isomorph.Equal(g, nil))
	assert.False(t, isomorph.Equal(nil, g))
}

// TestEqual_RelabeledIDs fails under the default comparator (ids compared)
// but succeeds once the node comparator ignores ids.
func TestEqual_RelabeledIDs(t *testing.T) {
	a := buildChain(t, [3]int{0, 1, 2})
	b := buildChain(t, [3]int{5, 6, 7})

	assert.False(t, isomorph.Equal(a, b))
	assert.True(t, isomorph.Equal(a, b,
		isomorph.WithNodeMatch(isomorph.MatchNodeFields(isomorph.NodeFieldName, isomorph.NodeFieldType))))
}

// TestEqual_AttributeMismatch detects a differing edge attribute.
func TestEqual_AttributeMismatch(t *testing.T) {
	a := buildChain(t, [3]int{0, 1, 2})

	b := core.NewGraph()
	_, err := b.AddNode("input_0", "parameter", metatypes.ModelInput)
	assert.NoError(t, err)
	_, err = b.AddNode("model/conv_0", "conv", metatypes.UnknownMetatype)
	assert.NoError(t, err)
	_, err = b.AddNode("output_0", "result", metatypes.ModelOutput)
	assert.NoError(t, err)
	assert.NoError(t, b.AddEdge(0, 1, core.Shape{1, 3, 8, 8}, 0, core.DtypeFloat))
	assert.NoError(t, b.AddEdge(1, 2, core.Shape{1, 3, 4, 4}, 0, core.DtypeFloat)) // differing shape

	assert.False(t, isomorph.Equal(a, b))

	// ignoring shapes restores equality
	assert.True(t, isomorph.Equal(a, b,
		isomorph.WithEdgeMatch(isomorph.MatchEdgeFields(isomorph.EdgeFieldPort))))
}

// TestEqual_StructureMismatch detects differing edge orientation with equal
// node sets.
func TestEqual_StructureMismatch(t *testing.T) {
	build := func(reversed bool) *core.Graph {
		g := core.NewGraph()
		for i := 0; i < 3; i++ {
			_, err := g.AddNode("op", "op", metatypes.UnknownMetatype, core.WithID(i))
			assert.NoError(t, err)
		}
		assert.NoError(t, g.AddEdge(0, 1, core.Shape{1}, 0, core.DtypeFloat))
		if reversed {
			assert.NoError(t, g.AddEdge(2, 1, core.Shape{1}, 1, core.DtypeFloat))
		} else {
			assert.NoError(t, g.AddEdge(1, 2, core.Shape{1}, 0, core.DtypeFloat))
		}

		return g
	}

	assert.False(t, isomorph.Equal(build(false), build(true),
		isomorph.WithNodeMatch(isomorph.MatchNodeFields(isomorph.NodeFieldType)),
		isomorph.WithEdgeMatch(isomorph.MatchEdgeFields())))
}

// TestEqual_ParallelEdges compares parallel-edge bundles as multisets.
func TestEqual_ParallelEdges(t *testing.T) {
	build := func(ports [2]int) *core.Graph {
		g := core.NewGraph()
		_, err := g.AddNode("a", "op", metatypes.UnknownMetatype)
		assert.NoError(t, err)
		_, err = g.AddNode("b", "op", metatypes.UnknownMetatype)
		assert.NoError(t, err)
		assert.NoError(t, g.AddEdge(0, 1, core.Shape{1}, ports[0], core.DtypeFloat))
		assert.NoError(t, g.AddEdge(0, 1, core.Shape{1}, ports[1], core.DtypeFloat))

		return g
	}

	// same ports in either insertion order match as a multiset
	assert.True(t, isomorph.Equal(build([2]int{0, 1}), build([2]int{1, 0})))
	// a differing port breaks the bundle
	assert.False(t, isomorph.Equal(build([2]int{0, 1}), build([2]int{0, 2})))
}

// TestEqual_MutationBreaksEquality compares a graph against its
// pre-mutation snapshot after growing it.
func TestEqual_MutationBreaksEquality(t *testing.T) {
	g := buildChain(t, [3]int{0, 1, 2})
	snap := g.Clone()
	assert.True(t, isomorph.Equal(g, snap))
	// symmetry
	assert.True(t, isomorph.Equal(snap, g))

	_, err := g.AddNode("model/relu_0", "relu", metatypes.UnknownMetatype)
	assert.NoError(t, err)
	assert.False(t, isomorph.Equal(g, snap))
	assert.False(t, isomorph.Equal(snap, g))
}

// TestEqual_SelfLoopAttributes compares the edge bundle a node carries to
// itself, so self-loops differing on a compared attribute break equality.
func TestEqual_SelfLoopAttributes(t *testing.T) {
	build := func(port int) *core.Graph {
		g := core.NewGraph()
		_, err := g.AddNode("model/rnn_0", "rnn", metatypes.UnknownMetatype)
		assert.NoError(t, err)
		assert.NoError(t, g.AddEdge(0, 0, core.Shape{1, 8}, port, core.DtypeFloat))

		return g
	}

	assert.True(t, isomorph.Equal(build(0), build(0)))
	assert.False(t, isomorph.Equal(build(0), build(5)))
}

// TestEqual_CountPrechecks rejects graphs with differing cardinalities
// before any search.
func TestEqual_CountPrechecks(t *testing.T) {
	a := buildChain(t, [3]int{0, 1, 2})
	b := core.NewGraph()
	assert.False(t, isomorph.Equal(a, b))
}

// TestEqual_LayerAttributes compares the opaque payload deeply under the
// default node comparator.
func TestEqual_LayerAttributes(t *testing.T) {
	build := func(weight core.Shape) *core.Graph {
		g := core.NewGraph()
		_, err := g.AddNode("model/conv_0", "conv", metatypes.UnknownMetatype,
			core.WithLayerAttributes(core.WeightedLayerAttributes{WeightShape: weight}))
		assert.NoError(t, err)

		return g
	}

	assert.True(t, isomorph.Equal(build(core.Shape{16, 3, 3, 3}), build(core.Shape{16, 3, 3, 3})))
	assert.False(t, isomorph.Equal(build(core.Shape{16, 3, 3, 3}), build(core.Shape{8, 3, 3, 3})))
}
