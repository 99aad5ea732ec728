// This file declares Node, Edge, the attribute value types they carry,
// sentinel errors, and the GraphOption/NodeOption configuration hooks.

package core

import (
	"errors"
	"strconv"
	"strings"

	"github.com/tracelab/nngraph/metatypes"
)

// Sentinel errors for core graph operations.
var (
	// ErrDuplicateID indicates an insertion with a node id already present.
	ErrDuplicateID = errors.New("core: node id already in graph")

	// ErrInvalidID indicates a negative node id override.
	ErrInvalidID = errors.New("core: node id must be non-negative")

	// ErrUnknownNode indicates a reference to an absent node id or key.
	ErrUnknownNode = errors.New("core: unknown node")

	// ErrInvalidTopology indicates an edge violating the input/output
	// boundary invariant: output nodes have no outgoing edges and input
	// nodes have no incoming edges.
	ErrInvalidTopology = errors.New("core: edge violates input/output boundary")

	// ErrNodeNotFound indicates a name lookup that matched no node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrAmbiguousName indicates a name lookup that matched several nodes.
	ErrAmbiguousName = errors.New("core: more than one node shares the name")
)

// Dtype is the element type tag carried by an edge's tensor.
type Dtype string

const (
	// DtypeFloat marks floating-point activation tensors.
	DtypeFloat Dtype = "float"

	// DtypeInteger marks integer activation tensors.
	DtypeInteger Dtype = "integer"
)

// DynamicDim marks a dimension whose size is unknown until runtime.
const DynamicDim int64 = -1

// Shape is the ordered dimension sequence of a tensor. A DynamicDim entry
// is a wildcard for a dynamic dimension.
type Shape []int64

// Clone returns an independent copy of the shape.
func (s Shape) Clone() Shape {
	if s == nil {
		return nil
	}

	return append(Shape(nil), s...)
}

// Equal reports whether both shapes have identical dimensions.
// DynamicDim entries compare like any other value; wildcard-aware matching
// is the caller's concern.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}

	return true
}

// String renders the shape as "[1,3,?]", with "?" for dynamic dimensions.
func (s Shape) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, d := range s {
		if i > 0 {
			b.WriteByte(',')
		}
		if d == DynamicDim {
			b.WriteByte('?')
			continue
		}
		b.WriteString(strconv.FormatInt(d, 10))
	}
	b.WriteByte(']')

	return b.String()
}

// LayerAttributes is an opaque payload describing the learnable parameters
// of the operation behind a node (weight shapes and similar). The store
// never inspects it; passes downcast to the concrete type they expect.
type LayerAttributes interface{}

// WeightedLayerAttributes is the common payload for operations owning a
// single weight tensor.
type WeightedLayerAttributes struct {
	// WeightShape is the shape of the learnable weight tensor.
	WeightShape Shape
}

// Display carries optional rendering hints consumed only by the export
// projections. It never influences structural queries.
type Display struct {
	Color string
	Label string
	Style string
}

// Node describes a single operation of the traced model.
//
// The record is closed: passes that need to stash metadata beyond the named
// fields use the single opaque Extra slot instead of an open attribute map.
type Node struct {
	// ID uniquely identifies this node within its Graph.
	ID int

	// Name is the human-readable secondary key (scope path in the model).
	// It must be unique per node because the storage key is derived from it.
	Name string

	// Type is the framework-level tag of the underlying operation.
	Type string

	// Metatype classifies the operation within the fixed taxonomy.
	Metatype metatypes.Metatype

	// Layer optionally describes the operation's learnable parameters.
	Layer LayerAttributes

	// IgnoredAlgorithms lists compression passes this node is excluded from.
	IgnoredAlgorithms []string

	// InIterationScope marks nodes traced inside a recurrent iteration.
	InIterationScope bool

	// IntegerInput marks graph-input nodes fed with integer tensors.
	IntegerInput bool

	// Display optionally carries rendering hints for export projections.
	Display *Display

	// Extra is the opaque extension slot for pass-specific metadata.
	Extra any
}

// Key returns the derived storage key "{id} {name}". Ids are unique within
// a graph, so derived keys never collide.
func (n Node) Key() string { return nodeKey(n.ID, n.Name) }

// String renders the node as "id name type".
func (n Node) String() string {
	return strconv.Itoa(n.ID) + " " + n.Name + " " + n.Type
}

// nodeKey derives the storage key from a node id and name.
func nodeKey(id int, name string) string {
	return strconv.Itoa(id) + " " + name
}

// Edge describes one directed data-flow connection from the producer node
// From to the consumer node To. Parallel edges between the same pair are
// legal as long as they fill distinct consumer ports.
type Edge struct {
	// From is the producer node id.
	From int

	// To is the consumer node id.
	To int

	// TensorShape is the shape of the tensor flowing along this edge.
	TensorShape Shape

	// PortID is the operand slot of the consumer this edge fills.
	PortID int

	// Dtype is the element type of the flowing tensor.
	Dtype Dtype
}

// String renders the edge as "from -> [shape] -> to".
func (e Edge) String() string {
	return strconv.Itoa(e.From) + " -> " + e.TensorShape.String() + " -> " + strconv.Itoa(e.To)
}

// GraphOption configures a Graph at construction time.
type GraphOption func(*Graph)

// WithMetatypes overrides the metatype registry consulted at insertion time
// to classify nodes as graph inputs/outputs. Defaults to metatypes.Default().
func WithMetatypes(r *metatypes.Registry) GraphOption {
	return func(g *Graph) {
		if r != nil {
			g.reg = r
		}
	}
}

// NodeOption configures optional attributes of a node at insertion time.
type NodeOption func(*nodeConfig)

// nodeConfig accumulates AddNode options before the record is built.
type nodeConfig struct {
	id        int
	hasID     bool
	layer     LayerAttributes
	ignored   []string
	iteration bool
	integer   bool
	display   *Display
	extra     any
}

// WithID overrides the automatically assigned node id. The override must be
// non-negative and not yet present in the graph.
func WithID(id int) NodeOption {
	return func(c *nodeConfig) {
		c.id = id
		c.hasID = true
	}
}

// WithLayerAttributes attaches the learnable-parameter payload to the node.
func WithLayerAttributes(attrs LayerAttributes) NodeOption {
	return func(c *nodeConfig) { c.layer = attrs }
}

// WithIgnoredAlgorithms excludes the node from the named compression passes.
func WithIgnoredAlgorithms(algorithms ...string) NodeOption {
	return func(c *nodeConfig) {
		c.ignored = append(c.ignored, algorithms...)
	}
}

// WithIterationScope marks the node as traced inside a recurrent iteration.
func WithIterationScope() NodeOption {
	return func(c *nodeConfig) { c.iteration = true }
}

// WithIntegerInput marks a graph-input node as fed with integer tensors.
func WithIntegerInput() NodeOption {
	return func(c *nodeConfig) { c.integer = true }
}

// WithDisplay attaches rendering hints for the export projections.
func WithDisplay(d Display) NodeOption {
	return func(c *nodeConfig) {
		display := d
		c.display = &display
	}
}

// WithExtra stores an opaque pass-specific payload in the extension slot.
func WithExtra(v any) NodeOption {
	return func(c *nodeConfig) { c.extra = v }
}
