// This file implements the Mermaid flowchart writer.

package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/tracelab/nngraph/core"
)

// WriteMermaid writes g as a Mermaid flowchart (top-down). Node identifiers
// are n<id> and node labels show the storage key, so the chart reads the
// same as the DOT dumps and embeds directly in markdown.
func WriteMermaid(w io.Writer, g *core.Graph) error {
	if g == nil {
		return ErrGraphNil
	}

	var b strings.Builder
	b.WriteString("flowchart TD\n")

	for _, id := range g.NodeIDs() {
		n, err := g.NodeByID(id)
		if err != nil {
			return err
		}
		fmt.Fprintf(&b, "    n%d[\"%s\"]\n", n.ID, escapeLabel(n.Key()))
	}

	for _, e := range g.Edges() {
		fmt.Fprintf(&b, "    n%d --> n%d\n", e.From, e.To)
	}

	_, err := io.WriteString(w, b.String())

	return err
}

// escapeLabel neutralises characters that break Mermaid node labels.
func escapeLabel(s string) string {
	return strings.ReplaceAll(s, `"`, "#quot;")
}
