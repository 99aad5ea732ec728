// Package export renders a core.Graph to text formats for inspection and
// debugging.
//
//   - WriteDOT emits a Graphviz digraph keyed by node storage keys, with
//     id and type attributes, suitable for diffing two dumps.
//   - WriteVisualizationDOT emits a Graphviz digraph tuned for viewing:
//     display overrides (color, label, style) are applied and every edge
//     carries its tensor shape.
//   - WriteMermaid emits a Mermaid flowchart for embedding in markdown.
//
// All writers emit nodes in ascending id order and edges in insertion
// order, so output is reproducible for a fixed graph.
package export
