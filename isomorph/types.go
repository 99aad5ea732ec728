// This file defines the comparator types and functional options.

package isomorph

import (
	"reflect"

	"github.com/tracelab/nngraph/core"
)

// NodeMatch reports whether two nodes may correspond under the bijection.
type NodeMatch func(a, b core.Node) bool

// EdgeMatch reports whether two edges may correspond under the bijection.
// Endpoint ids are matched structurally and must not be compared here.
type EdgeMatch func(a, b core.Edge) bool

// NodeField selects a node attribute for MatchNodeFields.
type NodeField int

const (
	NodeFieldID NodeField = iota
	NodeFieldName
	NodeFieldType
	NodeFieldMetatype
	NodeFieldLayerAttributes
)

// EdgeField selects an edge attribute for MatchEdgeFields.
type EdgeField int

const (
	EdgeFieldTensorShape EdgeField = iota
	EdgeFieldPort
	EdgeFieldDtype
)

// Option customises Equal.
type Option func(*options)

type options struct {
	nodeMatch NodeMatch
	edgeMatch EdgeMatch
}

func defaultOptions() options {
	return options{
		nodeMatch: MatchNodeFields(NodeFieldID, NodeFieldName, NodeFieldLayerAttributes),
		edgeMatch: MatchEdgeFields(EdgeFieldTensorShape, EdgeFieldPort),
	}
}

// WithNodeMatch replaces the node comparator.
func WithNodeMatch(m NodeMatch) Option {
	return func(o *options) { o.nodeMatch = m }
}

// WithEdgeMatch replaces the edge comparator.
func WithEdgeMatch(m EdgeMatch) Option {
	return func(o *options) { o.edgeMatch = m }
}

// MatchNodeFields builds a NodeMatch requiring equality on the listed
// fields. Metatypes compare by name, with two nil metatypes equal. Layer
// attributes are opaque payloads and compare deeply.
func MatchNodeFields(fields ...NodeField) NodeMatch {
	return func(a, b core.Node) bool {
		for _, f := range fields {
			switch f {
			case NodeFieldID:
				if a.ID != b.ID {
					return false
				}
			case NodeFieldName:
				if a.Name != b.Name {
					return false
				}
			case NodeFieldType:
				if a.Type != b.Type {
					return false
				}
			case NodeFieldMetatype:
				switch {
				case a.Metatype == nil && b.Metatype == nil:
				case a.Metatype == nil || b.Metatype == nil:
					return false
				case a.Metatype.Name() != b.Metatype.Name():
					return false
				}
			case NodeFieldLayerAttributes:
				if !reflect.DeepEqual(a.Layer, b.Layer) {
					return false
				}
			}
		}

		return true
	}
}

// MatchEdgeFields builds an EdgeMatch requiring equality on the listed
// fields.
func MatchEdgeFields(fields ...EdgeField) EdgeMatch {
	return func(a, b core.Edge) bool {
		for _, f := range fields {
			switch f {
			case EdgeFieldTensorShape:
				if !a.TensorShape.Equal(b.TensorShape) {
					return false
				}
			case EdgeFieldPort:
				if a.PortID != b.PortID {
					return false
				}
			case EdgeFieldDtype:
				if a.Dtype != b.Dtype {
					return false
				}
			}
		}

		return true
	}
}
