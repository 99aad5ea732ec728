package traverse

import (
	"errors"

	"github.com/tracelab/nngraph/core"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to
	// TopologicalSort, Traverse, or TraverseOnce.
	ErrGraphNil = errors.New("traverse: graph is nil")

	// ErrStartNotFound indicates that the start node id does not exist in
	// the graph.
	ErrStartNotFound = errors.New("traverse: start node not found")

	// ErrCycleDetected indicates that TopologicalSort found a cycle.
	ErrCycleDetected = errors.New("traverse: cycle detected")
)

// Direction selects which adjacency a walk follows.
type Direction int

const (
	// Forward follows producer-to-consumer edges.
	Forward Direction = iota

	// Backward follows consumer-to-producer edges.
	Backward
)

// VisitFunc inspects node n together with the accumulator acc and returns
// the updated accumulator plus a stop flag. When stop is true the walk does
// not descend past n; other branches continue.
type VisitFunc[T any] func(n core.Node, acc T) (stop bool, out T)

// Option configures optional behavior of a walk.
// Use with Traverse(g, startID, acc, visit, opts...).
type Option func(*options)

// options holds configurable walk parameters.
type options struct {
	dir Direction
}

// defaultOptions returns a forward walk.
func defaultOptions() options {
	return options{dir: Forward}
}

// WithDirection selects the walk direction; the default is Forward.
func WithDirection(d Direction) Option {
	return func(o *options) { o.dir = d }
}
