package coloring

import (
	"fmt"

	"github.com/graphtint/graphtint/pkg/graph"
)

// ColorEdges produces a proper edge coloring of g using the given strategy.
//
// The reduction goes through the line graph: each edge of g becomes a
// vertex, adjacent iff the edges share an endpoint, and the vertex-coloring
// engine runs on that derived graph unchanged. Trace keys are edge
// identifiers (graph.EdgeID form, "u|v"); use graph.ParseEdgeID to recover
// the edge tuple. No further transformation is applied - the line-graph
// node identity is the edge identity.
//
// The properness guarantee transfers directly: two edges sharing an
// endpoint are adjacent in the line graph, so the engine never gives them
// the same color. The trace has exactly one entry per edge of g.
//
// Cost note: building the line graph is O(|E|·maxDegree) and dominates on
// dense graphs; the line graph itself is discarded once the trace is built.
func ColorEdges(g *graph.Graph, strategy Strategy) (Trace, error) {
	lg, err := graph.LineGraph(g)
	if err != nil {
		return nil, fmt.Errorf("build line graph: %w", err)
	}
	return Color(lg, strategy)
}
