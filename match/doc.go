// Package match implements structural pattern matching over core.Graph: a
// declarative Expression describes a motif as a composition of single-node
// predicates, and SearchAll finds every directed node path in the graph
// whose sequence satisfies it.
//
// Expressions compose from single-node primitives and three combinators:
//
//	Type("conv")            - one node whose operation type is "conv"
//	Pred(fn) / Metatype(m)  - one node satisfying a predicate / metatype
//	Seq(a, b, ...)          - a, then b, ... along directed edges
//	Alt(a, b, ...)          - either a or b ...
//	Repeat(x, min, max)     - min to max consecutive repetitions of x
//
// A typical fusable-sequence query:
//
//	expr := match.Seq(match.Type("conv"), match.Alt(match.Type("relu"), match.Type("sigmoid")))
//	paths := match.SearchAll(g, expr)
//
// Matching is exhaustive: every node is tried as a path start in ascending
// id order, and alternation may yield several matches from one start.
// Matches that are contiguous sub-paths of another match are dropped, so
// only maximal paths are reported. Results are deterministic for a fixed
// graph.
package match
