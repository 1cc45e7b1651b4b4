package graph

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"
)

// ToDOT returns a Graphviz DOT representation of the graph structure.
//
// The DOT format can be rendered with Graphviz tools (dot, neato, etc.) or
// programmatically with RenderSVG. The output is a complete undirected DOT
// graph with styling suitable for documentation and debugging.
//
// Vertices are emitted in insertion order, edges as "u -- v" in insertion
// order, so identical graphs always produce identical DOT text.
func ToDOT(g *Graph) string {
	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [fontname=\"SF Mono, Menlo, monospace\", fontsize=14, shape=circle, style=filled, fillcolor=white];\n\n")

	for _, v := range g.Vertices() {
		fmt.Fprintf(&buf, "  %q;\n", v)
	}
	for _, e := range g.Edges() {
		fmt.Fprintf(&buf, "  %q -- %q;\n", e.U, e.V)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders the graph structure as an SVG image.
//
// RenderSVG generates a DOT representation via ToDOT, then uses Graphviz to
// render it to SVG format. The returned bytes are a complete SVG document
// suitable for embedding in HTML or saving to a file.
//
// RenderSVG requires the Graphviz library (github.com/goccy/go-graphviz).
// Errors are returned if Graphviz cannot initialize, the DOT is malformed,
// or rendering fails. All errors are wrapped with context using fmt.Errorf
// with %w, suitable for unwrapping with errors.Unwrap or errors.Is.
func RenderSVG(ctx context.Context, g *Graph) ([]byte, error) {
	dot := ToDOT(g)

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
