// Package isomorph decides attributed graph equality: two graphs are equal
// when a bijection between their nodes preserves every edge and every
// compared attribute. Regression suites use it to check that a captured
// trace still matches a golden reference even when node ids were assigned
// in a different order.
//
// Which attributes take part in the comparison is configurable:
//
//	isomorph.Equal(a, b)                                  // default fields
//	isomorph.Equal(a, b,
//	    isomorph.WithNodeMatch(isomorph.MatchNodeFields(isomorph.NodeFieldType)),
//	    isomorph.WithEdgeMatch(isomorph.MatchEdgeFields(isomorph.EdgeFieldTensorShape)))
//
// The default node comparison covers id, name and layer attributes; the
// default edge comparison covers tensor shape and input port. Matching is
// exact backtracking search, exponential in the worst case but fast on the
// sparse, highly-attributed graphs produced by model tracing.
package isomorph
