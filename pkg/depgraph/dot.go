package depgraph

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"
)

// ToDOT converts the dependency graph to Graphviz DOT format.
// The resulting DOT string can be rendered with [RenderSVG] or external
// Graphviz tools.
//
// Node representation:
//   - parameters: ellipse
//   - derived quantities: box
//   - geometry: rounded box, grey fill
func ToDOT(g *Graph) string {
	var buf bytes.Buffer
	buf.WriteString("digraph constraints {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [fontname=\"SF Mono, Menlo, monospace\", fontsize=14, style=filled, fillcolor=white];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for _, n := range g.Nodes() {
		fmt.Fprintf(&buf, "  %q [label=%q, %s];\n", n.ID, n.ID, nodeAttrs(n))
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		fmt.Fprintf(&buf, "  %q -> %q;\n", e.From, e.To)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeAttrs(n Node) string {
	switch n.Kind {
	case KindParam:
		return "shape=ellipse"
	case KindDerived:
		return "shape=box"
	default:
		return `shape=box, style="rounded,filled", fillcolor=lightgrey`
	}
}

// RenderSVG renders the dependency graph to SVG using Graphviz.
func RenderSVG(g *Graph) ([]byte, error) {
	dot := ToDOT(g)

	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	parsed, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer parsed.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, parsed, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
