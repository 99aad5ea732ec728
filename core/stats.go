// This file provides the aggregated read-only counts consumed by external
// statistics collectors. The store only counts; formatting and reporting
// are the collectors' concern.

package core

// GraphStats is a deterministic snapshot of catalog sizes: totals, the
// registered input/output index sizes, and per-operation-type counts.
type GraphStats struct {
	NodeCount   int
	EdgeCount   int
	InputCount  int
	OutputCount int

	// TypeCounts maps each operation type to the number of nodes tagged
	// with it.
	TypeCounts map[string]int
}

// Stats produces a read-only snapshot of the graph's aggregated counts.
// Complexity: O(V).
func (g *Graph) Stats() *GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := &GraphStats{
		NodeCount:   len(g.nodes),
		EdgeCount:   len(g.edges),
		InputCount:  len(g.inputs),
		OutputCount: len(g.outputs),
		TypeCounts:  make(map[string]int, len(g.nodes)),
	}
	for _, n := range g.nodes {
		stats.TypeCounts[n.Type]++
	}

	return stats
}
