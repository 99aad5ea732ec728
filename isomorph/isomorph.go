// This file implements the backtracking isomorphism check.

package isomorph

import (
	"sort"

	"github.com/tracelab/nngraph/core"
)

// Equal reports whether a and b are isomorphic as attributed graphs: some
// bijection between their node sets maps every edge of a onto an edge of b
// with identical orientation, multiplicity and compared attributes, and
// back. Nil graphs are equal only to each other. Comparators default to
// the field sets documented in the package comment; override them with
// WithNodeMatch and WithEdgeMatch.
//
// Complexity: exponential worst case, pruned hard by attribute and degree
// filters.
func Equal(a, b *core.Graph, opts ...Option) bool {
	// 1. Nil handling and cheap cardinality prechecks.
	if a == nil || b == nil {
		return a == b
	}
	if a.NodeCount() != b.NodeCount() || a.EdgeCount() != b.EdgeCount() {
		return false
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// 2. Snapshot both sides.
	sa, err := snapshot(a)
	if err != nil {
		return false
	}
	sb, err := snapshot(b)
	if err != nil {
		return false
	}

	// 3. Assign high-degree nodes first so mismatches surface early.
	order := make([]int, len(sa.ids))
	copy(order, sa.ids)
	sort.Slice(order, func(i, j int) bool {
		di, dj := sa.degree(order[i]), sa.degree(order[j])
		if di != dj {
			return di > dj
		}

		return order[i] < order[j]
	})

	m := matcher{a: sa, b: sb, opts: o, assign: make(map[int]int, len(order)), used: make(map[int]struct{}, len(order))}

	return m.extend(order, 0)
}

// side is an immutable adjacency snapshot of one graph.
type side struct {
	ids   []int
	nodes map[int]core.Node
	out   map[int][]core.Edge
	in    map[int][]core.Edge
}

func (s *side) degree(id int) int { return len(s.out[id]) + len(s.in[id]) }

func snapshot(g *core.Graph) (*side, error) {
	s := &side{
		ids:   g.NodeIDs(),
		nodes: make(map[int]core.Node),
		out:   make(map[int][]core.Edge),
		in:    make(map[int][]core.Edge),
	}
	for _, id := range s.ids {
		n, err := g.NodeByID(id)
		if err != nil {
			return nil, err
		}
		s.nodes[id] = n
		if s.out[id], err = g.OutEdges(id); err != nil {
			return nil, err
		}
		if s.in[id], err = g.InEdges(id); err != nil {
			return nil, err
		}
	}

	return s, nil
}

type matcher struct {
	a, b   *side
	opts   options
	assign map[int]int      // a-id -> b-id
	used   map[int]struct{} // assigned b-ids
}

// extend tries every admissible b-node for order[idx] and recurses.
func (m *matcher) extend(order []int, idx int) bool {
	if idx == len(order) {
		return true
	}
	aid := order[idx]
	an := m.a.nodes[aid]

	for _, bid := range m.b.ids {
		if _, taken := m.used[bid]; taken {
			continue
		}
		if len(m.a.out[aid]) != len(m.b.out[bid]) || len(m.a.in[aid]) != len(m.b.in[bid]) {
			continue
		}
		if !m.opts.nodeMatch(an, m.b.nodes[bid]) {
			continue
		}
		// Self-loop bundles never surface as a pair with an earlier
		// assignment, so they are compared here.
		if !m.bundlesMatch(aid, aid, bid, bid) {
			continue
		}
		if !m.consistent(aid, bid) {
			continue
		}

		m.assign[aid] = bid
		m.used[bid] = struct{}{}
		if m.extend(order, idx+1) {
			return true
		}
		delete(m.assign, aid)
		delete(m.used, bid)
	}

	return false
}

// consistent checks the candidate pair against every already assigned pair:
// the parallel-edge bundles between the pairs must correspond in both
// directions.
func (m *matcher) consistent(aid, bid int) bool {
	for pa, pb := range m.assign {
		if !m.bundlesMatch(aid, pa, bid, pb) {
			return false
		}
		if !m.bundlesMatch(pa, aid, pb, bid) {
			return false
		}
	}

	return true
}

// bundlesMatch compares the edges a1->a2 against b1->b2 as multisets under
// the edge comparator.
func (m *matcher) bundlesMatch(a1, a2, b1, b2 int) bool {
	ea := edgesBetween(m.a.out[a1], a2)
	eb := edgesBetween(m.b.out[b1], b2)

	return edgeSetsMatch(ea, eb, m.opts.edgeMatch)
}

func edgesBetween(out []core.Edge, to int) []core.Edge {
	var es []core.Edge
	for _, e := range out {
		if e.To == to {
			es = append(es, e)
		}
	}

	return es
}

// edgeSetsMatch reports whether a bijection under match exists between the
// two edge bundles. Bundles are tiny, plain backtracking is enough.
func edgeSetsMatch(ea, eb []core.Edge, match EdgeMatch) bool {
	if len(ea) != len(eb) {
		return false
	}
	if len(ea) == 0 {
		return true
	}
	taken := make([]bool, len(eb))

	var pick func(i int) bool
	pick = func(i int) bool {
		if i == len(ea) {
			return true
		}
		for j := range eb {
			if taken[j] || !match(ea[i], eb[j]) {
				continue
			}
			taken[j] = true
			if pick(i + 1) {
				return true
			}
			taken[j] = false
		}

		return false
	}

	return pick(0)
}
