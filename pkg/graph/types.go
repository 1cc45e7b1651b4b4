package graph

import (
	"encoding/json"
	"fmt"

	"github.com/graphtint/graphtint/pkg/errors"
)

// =============================================================================
// Document - Graph Serialization
// =============================================================================

// Document is the canonical serialization format for graphs.
// Used for the generate/color file handoff, API payloads, and caching.
//
// The format is human-readable and designed for round-trip fidelity:
// generate → export → re-import produces an identical graph, including
// vertex and edge order (which the coloring strategies depend on).
type Document struct {
	Nodes []Node `json:"nodes" bson:"nodes"`
	Edges []Link `json:"edges" bson:"edges"`
}

// Node is a serialized vertex.
type Node struct {
	ID string `json:"id" bson:"id"`
}

// Link is a serialized undirected edge. The from/to naming mirrors common
// graph interchange formats; orientation is preserved only so edge keys in
// traces match the original insertion order.
type Link struct {
	From string `json:"from" bson:"from"`
	To   string `json:"to" bson:"to"`
}

// =============================================================================
// Graph ↔ Document Conversion
// =============================================================================

// FromGraph converts a Graph to its serialization format.
// Vertices and edges keep their insertion order so the document round-trips
// deterministically.
func FromGraph(g *Graph) Document {
	vertices := g.Vertices()
	edges := g.Edges()

	out := Document{
		Nodes: make([]Node, len(vertices)),
		Edges: make([]Link, len(edges)),
	}
	for i, id := range vertices {
		out.Nodes[i] = Node{ID: id}
	}
	for i, e := range edges {
		out.Edges[i] = Link{From: e.U, To: e.V}
	}
	return out
}

// ToGraph converts a Document to a Graph.
// Vertex IDs are validated (non-empty, no control characters, no reserved
// separator) and the structural invariants are enforced: unknown endpoints,
// self-loops, and duplicate edges all fail with INVALID_GRAPH.
func ToGraph(doc Document) (*Graph, error) {
	g := New()

	for _, n := range doc.Nodes {
		if err := errors.ValidateVertexID(n.ID); err != nil {
			return nil, err
		}
		if err := g.AddVertex(n.ID); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidGraph, err, "add vertex %q", n.ID)
		}
	}

	for _, l := range doc.Edges {
		if err := g.AddEdge(l.From, l.To); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidGraph, err, "add edge %s -- %s", l.From, l.To)
		}
	}

	return g, nil
}

// UnmarshalDocument deserializes JSON bytes to a Document.
func UnmarshalDocument(data []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("decode graph document: %w", err)
	}
	return doc, nil
}
