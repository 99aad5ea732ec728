// This file defines the Expression combinators. Expressions are immutable
// and safe to reuse across graphs and goroutines.

package match

import (
	"github.com/tracelab/nngraph/core"
	"github.com/tracelab/nngraph/metatypes"
)

// Expression is a declarative structural motif matched against directed
// node paths of a graph.
type Expression interface {
	// matchFrom returns every node-id path beginning at id whose node
	// sequence satisfies the expression.
	matchFrom(g *core.Graph, id int) [][]int
}

// Type matches a single node whose operation type equals nodeType.
func Type(nodeType string) Expression {
	return nodeExpr{pred: func(n core.Node) bool { return n.Type == nodeType }}
}

// Pred matches a single node satisfying the caller-supplied predicate over
// the node's attributes.
func Pred(fn func(core.Node) bool) Expression {
	return nodeExpr{pred: fn}
}

// Metatype matches a single node classified under m (compared by name).
func Metatype(m metatypes.Metatype) Expression {
	return nodeExpr{pred: func(n core.Node) bool {
		return m != nil && n.Metatype != nil && n.Metatype.Name() == m.Name()
	}}
}

// Seq composes expressions sequentially: each following expression must
// match on a path continuing from a direct successor of the previous
// match's last node.
func Seq(first Expression, rest ...Expression) Expression {
	return seqExpr{parts: append([]Expression{first}, rest...)}
}

// Alt matches any one of the alternative expressions; all alternatives are
// explored, in declaration order.
func Alt(first Expression, rest ...Expression) Expression {
	return altExpr{alts: append([]Expression{first}, rest...)}
}

// Repeat matches between min and max consecutive repetitions of expr along
// directed edges. A min below 1 is treated as 1, a max below min as min.
// Zero-width repetition is not supported: every match occupies at least one
// node, because an empty segment has no node for the following part of a
// sequence to continue from. Wrap the repetition in Alt with the shorter
// form to express optionality.
func Repeat(expr Expression, min, max int) Expression {
	if min < 1 {
		min = 1
	}
	if max < min {
		max = min
	}

	return repeatExpr{expr: expr, min: min, max: max}
}

// nodeExpr matches exactly one node.
type nodeExpr struct {
	pred func(core.Node) bool
}

func (x nodeExpr) matchFrom(g *core.Graph, id int) [][]int {
	n, err := g.NodeByID(id)
	if err != nil || x.pred == nil || !x.pred(n) {
		return nil
	}

	return [][]int{{id}}
}

// seqExpr chains sub-expressions along directed edges.
type seqExpr struct {
	parts []Expression
}

func (x seqExpr) matchFrom(g *core.Graph, id int) [][]int {
	paths := x.parts[0].matchFrom(g, id)
	for _, part := range x.parts[1:] {
		if len(paths) == 0 {
			return nil
		}
		var extended [][]int
		for _, p := range paths {
			for _, succ := range successorIDs(g, p[len(p)-1]) {
				for _, q := range part.matchFrom(g, succ) {
					joined := make([]int, 0, len(p)+len(q))
					joined = append(append(joined, p...), q...)
					extended = append(extended, joined)
				}
			}
		}
		paths = extended
	}

	return paths
}

// altExpr explores every alternative.
type altExpr struct {
	alts []Expression
}

func (x altExpr) matchFrom(g *core.Graph, id int) [][]int {
	var out [][]int
	for _, alt := range x.alts {
		out = append(out, alt.matchFrom(g, id)...)
	}

	return out
}

// repeatExpr unrolls expr between min and max times.
type repeatExpr struct {
	expr     Expression
	min, max int
}

func (x repeatExpr) matchFrom(g *core.Graph, id int) [][]int {
	var out [][]int

	// Grow repetition count one step at a time, collecting every length in
	// the [min, max] window.
	paths := x.expr.matchFrom(g, id)
	for count := 1; count <= x.max && len(paths) > 0; count++ {
		if count >= x.min {
			out = append(out, paths...)
		}
		if count == x.max {
			break
		}
		var extended [][]int
		for _, p := range paths {
			for _, succ := range successorIDs(g, p[len(p)-1]) {
				for _, q := range x.expr.matchFrom(g, succ) {
					joined := make([]int, 0, len(p)+len(q))
					joined = append(append(joined, p...), q...)
					extended = append(extended, joined)
				}
			}
		}
		paths = extended
	}

	return out
}

// successorIDs lists the direct consumers of a node in deterministic (edge
// insertion) order.
func successorIDs(g *core.Graph, id int) []int {
	next, err := g.NextNodes(id)
	if err != nil {
		return nil
	}
	ids := make([]int, len(next))
	for i, n := range next {
		ids[i] = n.ID
	}

	return ids
}
