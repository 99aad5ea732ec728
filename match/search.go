// This file implements the exhaustive graph-wide search.

package match

import "github.com/tracelab/nngraph/core"

// SearchAll evaluates expr with every node of g as a path start, in
// ascending node-id order, and returns each match as a sequence of node
// storage keys. Consecutive nodes of a match are always joined by a
// directed edge. Matches that are contiguous sub-paths of another match
// are dropped, so only maximal paths survive; branching alternation may
// still produce several matches per start node.
//
// Order of results: first appearance during the scan - deterministic for a
// fixed graph.
// Complexity: exhaustive; exponential against adversarial expressions, fine
// for the small graphs compression tooling deals with.
func SearchAll(g *core.Graph, expr Expression) [][]string {
	if g == nil || expr == nil {
		return nil
	}

	// 1. Collect every match from every start node.
	var found [][]int
	for _, id := range g.NodeIDs() {
		found = append(found, expr.matchFrom(g, id)...)
	}

	// 2. Keep only maximal paths: drop exact duplicates (first one wins)
	//    and matches fully contained in a longer match.
	kept := make([][]int, 0, len(found))
	for i, p := range found {
		redundant := false
		for j, q := range found {
			if i == j {
				continue
			}
			if len(p) < len(q) && isSubPath(p, q) {
				redundant = true
				break
			}
			if j < i && equalPath(p, q) {
				redundant = true
				break
			}
		}
		if !redundant {
			kept = append(kept, p)
		}
	}

	// 3. Resolve ids to storage keys.
	out := make([][]string, 0, len(kept))
	for _, p := range kept {
		keys := make([]string, len(p))
		for i, id := range p {
			key, err := g.KeyByID(id)
			if err != nil {
				return nil
			}
			keys[i] = key
		}
		out = append(out, keys)
	}

	return out
}

// isSubPath reports whether p occurs as a contiguous sub-sequence of q.
func isSubPath(p, q []int) bool {
	if len(p) > len(q) {
		return false
	}
outer:
	for off := 0; off+len(p) <= len(q); off++ {
		for i := range p {
			if q[off+i] != p[i] {
				continue outer
			}
		}

		return true
	}

	return false
}

// equalPath reports whether p and q are the same id sequence.
func equalPath(p, q []int) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}

	return true
}
