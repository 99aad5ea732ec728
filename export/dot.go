// This file implements the Graphviz DOT writers.

package export

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tracelab/nngraph/core"
)

// ErrGraphNil is returned when a writer receives a nil graph.
var ErrGraphNil = errors.New("export: graph is nil")

// Option customises WriteDOT.
type Option func(*options)

type options struct {
	edgeLabels bool
}

func defaultOptions() options { return options{} }

// WithEdgeLabels labels every edge with its tensor shape.
func WithEdgeLabels() Option {
	return func(o *options) { o.edgeLabels = true }
}

// WriteDOT writes g as a Graphviz digraph. Node identifiers are the quoted
// storage keys; each node carries its numeric id and operation type as
// attributes, plus any display overrides set on it. Structure-preserving
// and diff-friendly: two equal graphs dump to identical text.
func WriteDOT(w io.Writer, g *core.Graph, opts ...Option) error {
	if g == nil {
		return ErrGraphNil
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var b strings.Builder
	b.WriteString("digraph G {\n")

	for _, id := range g.NodeIDs() {
		n, err := g.NodeByID(id)
		if err != nil {
			return err
		}
		attrs := []string{
			fmt.Sprintf("id=%d", n.ID),
			"type=" + quote(n.Type),
		}
		if d := n.Display; d != nil {
			if d.Color != "" {
				attrs = append(attrs, "color="+quote(d.Color))
			}
			if d.Label != "" {
				attrs = append(attrs, "label="+quote(d.Label))
			}
			if d.Style != "" {
				attrs = append(attrs, "style="+quote(d.Style))
			}
		}
		fmt.Fprintf(&b, "  %s [%s];\n", quote(n.Key()), strings.Join(attrs, ", "))
	}

	for _, e := range g.Edges() {
		fromKey, err := g.KeyByID(e.From)
		if err != nil {
			return err
		}
		toKey, err := g.KeyByID(e.To)
		if err != nil {
			return err
		}
		if o.edgeLabels {
			fmt.Fprintf(&b, "  %s -> %s [label=%s];\n", quote(fromKey), quote(toKey), quote(e.TensorShape.String()))
		} else {
			fmt.Fprintf(&b, "  %s -> %s;\n", quote(fromKey), quote(toKey))
		}
	}

	b.WriteString("}\n")
	_, err := io.WriteString(w, b.String())

	return err
}

// WriteVisualizationDOT writes g as a Graphviz digraph tuned for a human
// viewer. Nodes render as "id name", display overrides set on a node
// (color, label, style) are honoured and every edge is labelled with its
// tensor shape.
func WriteVisualizationDOT(w io.Writer, g *core.Graph) error {
	if g == nil {
		return ErrGraphNil
	}

	var b strings.Builder
	b.WriteString("digraph G {\n")

	for _, id := range g.NodeIDs() {
		n, err := g.NodeByID(id)
		if err != nil {
			return err
		}
		attrs := make([]string, 0, 3)
		label := fmt.Sprintf("%d %s", n.ID, n.Name)
		if d := n.Display; d != nil {
			if d.Label != "" {
				label = d.Label
			}
			if d.Color != "" {
				attrs = append(attrs, "color="+quote(d.Color))
			}
			if d.Style != "" {
				attrs = append(attrs, "style="+quote(d.Style))
			}
		}
		attrs = append([]string{"label=" + quote(label)}, attrs...)
		fmt.Fprintf(&b, "  %s [%s];\n", quote(n.Key()), strings.Join(attrs, ", "))
	}

	for _, e := range g.Edges() {
		fromKey, err := g.KeyByID(e.From)
		if err != nil {
			return err
		}
		toKey, err := g.KeyByID(e.To)
		if err != nil {
			return err
		}
		fmt.Fprintf(&b, "  %s -> %s [label=%s];\n", quote(fromKey), quote(toKey), quote(e.TensorShape.String()))
	}

	b.WriteString("}\n")
	_, err := io.WriteString(w, b.String())

	return err
}

// quote wraps s in double quotes, escaping embedded quotes and backslashes.
func quote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)

	return `"` + s + `"`
}
