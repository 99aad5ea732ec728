package traverse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tracelab/nngraph/core"
	"github.com/tracelab/nngraph/metatypes"
	"github.com/tracelab/nngraph/traverse"
)

// diamond builds a -> b, a -> c, b -> d, c -> d and returns the graph.
// All ids are sequential from 0.
func diamond(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, name := range []string{"a", "b", "c", "d"} {
		_, err := g.AddNode(name, "op", metatypes.UnknownMetatype)
		assert.NoError(t, err)
	}
	shape := core.Shape{1}
	assert.NoError(t, g.AddEdge(0, 1, shape, 0, core.DtypeFloat))
	assert.NoError(t, g.AddEdge(0, 2, shape, 0, core.DtypeFloat))
	assert.NoError(t, g.AddEdge(1, 3, shape, 0, core.DtypeFloat))
	assert.NoError(t, g.AddEdge(2, 3, shape, 1, core.DtypeFloat))

	return g
}

// collectIDs appends every visited id to the accumulator.
func collectIDs(n core.Node, acc []int) (bool, []int) {
	return false, append(acc, n.ID)
}

// TestTraverse_NilGraph verifies the nil-graph sentinel.
func TestTraverse_NilGraph(t *testing.T) {
	_, err := traverse.Traverse[[]int](nil, 0, nil, collectIDs)
	assert.ErrorIs(t, err, traverse.ErrGraphNil)
}

// TestTraverse_StartNotFound verifies the absent-start sentinel.
func TestTraverse_StartNotFound(t *testing.T) {
	g := diamond(t)
	_, err := traverse.Traverse(g, 42, []int(nil), collectIDs)
	assert.ErrorIs(t, err, traverse.ErrStartNotFound)
}

// TestTraverse_MultiVisit checks the join node of a diamond is visited once
// per path when no visited set is used.
func TestTraverse_MultiVisit(t *testing.T) {
	g := diamond(t)
	ids, err := traverse.Traverse(g, 0, []int(nil), collectIDs)
	assert.NoError(t, err)
	assert.Equal(t, []int{0, 1, 3, 2, 3}, ids)
}

// TestTraverseOnce_VisitedSet checks every reachable node appears exactly
// once in discovery pre-order.
func TestTraverseOnce_VisitedSet(t *testing.T) {
	g := diamond(t)
	ids, err := traverse.TraverseOnce(g, 0, []int(nil), collectIDs)
	assert.NoError(t, err)
	assert.Equal(t, []int{0, 1, 3, 2}, ids)
}

// TestTraverse_Backward walks producer-wards from the join node.
func TestTraverse_Backward(t *testing.T) {
	g := diamond(t)
	ids, err := traverse.Traverse(g, 3, []int(nil), collectIDs,
		traverse.WithDirection(traverse.Backward))
	assert.NoError(t, err)
	assert.Equal(t, []int{3, 1, 0, 2, 0}, ids)
}

// TestTraverse_StopPrunes verifies a stop answer prunes descent past the
// node without aborting sibling branches.
func TestTraverse_StopPrunes(t *testing.T) {
	g := diamond(t)
	ids, err := traverse.Traverse(g, 0, []int(nil), func(n core.Node, acc []int) (bool, []int) {
		return n.ID == 1, append(acc, n.ID)
	})
	assert.NoError(t, err)
	// branch through b (id 1) is cut, branch through c still reaches d
	assert.Equal(t, []int{0, 1, 2, 3}, ids)
}

// TestTraverse_AccumulatorThreading folds a sum through the walk.
func TestTraverse_AccumulatorThreading(t *testing.T) {
	g := diamond(t)
	sum, err := traverse.TraverseOnce(g, 0, 0, func(n core.Node, acc int) (bool, int) {
		return false, acc + n.ID
	})
	assert.NoError(t, err)
	assert.Equal(t, 6, sum)
}
