// Package core defines the central Graph, Node, and Edge types of the IR
// layer: an attributed directed graph describing the execution trace of a
// neural network, owned exclusively by the Graph and queried read-only by
// compression passes.
//
// A tracer builds the graph through AddNode and AddEdge; ids are dense
// non-negative integers assigned at insertion (or overridden by the tracer
// when it replays a previously recorded trace). Each node also receives a
// derived storage key "{id} {name}" which is unique because ids are unique.
// Nodes whose metatype belongs to the registered "input"/"output" taxonomy
// groups are indexed automatically at insertion; the index enforces the
// structural invariant that output nodes have no outgoing edges and input
// nodes have no incoming edges.
//
// All query methods return value snapshots: mutating a returned Node or
// Edge never corrupts the store. The expected usage pattern is build-once,
// query-many; a single RWMutex additionally makes concurrent reads safe
// once construction has finished.
//
// Errors:
//
//	ErrDuplicateID     - insertion with a node id already present.
//	ErrInvalidID       - negative node id override.
//	ErrUnknownNode     - reference to an absent node id or storage key.
//	ErrInvalidTopology - edge from an output node or into an input node.
//	ErrNodeNotFound    - name lookup matched no node.
//	ErrAmbiguousName   - name lookup matched several nodes.
package core
