// Package subgraph extracts the input/output boundary of a node subset: the
// edges crossing into and out of the subset and the subset nodes that touch
// the rest of the graph. Compression passes use the boundary to splice a
// fused or quantized replacement block in place of a matched pattern.
//
// Two classification rules are offered:
//
//   - Boundary classifies by local structure: subset nodes with no
//     predecessors at all are boundary inputs, nodes with no successors at
//     all are boundary outputs.
//   - RegisteredBoundary classifies by the graph's input/output metatype
//     index instead, so interior nodes of the full model never count as
//     model entry or exit points.
//
// MatchBoundaries bridges from package match: it runs a pattern search and
// returns the registered boundary of every match.
package subgraph
