package graph

import (
	"fmt"
	"strings"
)

// EdgeID returns the canonical line-graph identifier for an edge: the two
// endpoint IDs joined by "|", in insertion order. The pipe is reserved for
// this purpose - vertex IDs containing it are rejected during import.
func EdgeID(e Edge) string { return e.U + "|" + e.V }

// ParseEdgeID converts a line-graph vertex ID back into the source edge.
// Returns false if the ID is not a well-formed edge identifier.
func ParseEdgeID(id string) (Edge, bool) {
	u, v, ok := strings.Cut(id, "|")
	if !ok || u == "" || v == "" {
		return Edge{}, false
	}
	return Edge{U: u, V: v}, true
}

// LineGraph constructs the line graph of g: one vertex per edge of g, with
// two line-graph vertices adjacent iff their source edges share an endpoint.
//
// Line-graph vertices are created in the source graph's edge insertion
// order, so a coloring strategy that walks the line graph in natural order
// visits edges in the order they were added to g. The result is a fresh
// graph with no aliasing back into g; the only link is the edge tuple
// encoded in each vertex ID (see EdgeID and ParseEdgeID).
//
// Size note: the line graph has |E| vertices and up to O(|E|·maxDegree)
// edges. For dense inputs this construction, not the coloring itself,
// dominates the cost of edge coloring.
func LineGraph(g *Graph) (*Graph, error) {
	lg := New()

	edges := g.Edges()
	for _, e := range edges {
		if err := lg.AddVertex(EdgeID(e)); err != nil {
			return nil, fmt.Errorf("line graph vertex for %s: %w", EdgeID(e), err)
		}
	}

	// Walk vertices in natural order; all edges incident to a shared vertex
	// are pairwise adjacent in the line graph. Two simple-graph edges share
	// at most one endpoint, so each adjacency is visited exactly once per
	// shared vertex, guarded by HasEdge against the double-visit when both
	// incident lists contain the pair.
	for _, v := range g.Vertices() {
		incident := g.IncidentEdges(v)
		for i := 0; i < len(incident); i++ {
			for j := i + 1; j < len(incident); j++ {
				a, b := EdgeID(incident[i]), EdgeID(incident[j])
				if lg.HasEdge(a, b) {
					continue
				}
				if err := lg.AddEdge(a, b); err != nil {
					return nil, fmt.Errorf("line graph edge %s -- %s: %w", a, b, err)
				}
			}
		}
	}

	return lg, nil
}
