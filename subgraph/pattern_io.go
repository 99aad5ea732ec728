// This file bridges pattern matching and boundary extraction.

package subgraph

import (
	"github.com/tracelab/nngraph/core"
	"github.com/tracelab/nngraph/match"
)

// MatchBoundaries runs expr against g and returns the registered boundary
// of every maximal match, in match order. A nil expression or graph yields
// no boundaries.
//
// Complexity: cost of match.SearchAll plus O(k * deg) per match.
func MatchBoundaries(g *core.Graph, expr match.Expression) ([]PatternIO, error) {
	matches := match.SearchAll(g, expr)
	if len(matches) == 0 {
		return nil, nil
	}

	out := make([]PatternIO, 0, len(matches))
	for _, keys := range matches {
		io, err := RegisteredBoundary(g, keys)
		if err != nil {
			return nil, err
		}
		out = append(out, io)
	}

	return out, nil
}
