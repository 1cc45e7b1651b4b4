package graph

import (
	"slices"
	"testing"
)

func TestLineGraphTriangle(t *testing.T) {
	g, err := Generate(KindCycle, 3, 0, 0)
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}

	lg, err := LineGraph(g)
	if err != nil {
		t.Fatalf("LineGraph() failed: %v", err)
	}

	// The line graph of a triangle is a triangle.
	if lg.VertexCount() != 3 || lg.EdgeCount() != 3 {
		t.Errorf("L(C3): %d vertices, %d edges, want 3 and 3", lg.VertexCount(), lg.EdgeCount())
	}
}

func TestLineGraphPath(t *testing.T) {
	g, err := Generate(KindPath, 4, 0, 0)
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}

	lg, err := LineGraph(g)
	if err != nil {
		t.Fatalf("LineGraph() failed: %v", err)
	}

	// L(P4) is P3: edges 0-1, 1-2, 2-3 chain through shared endpoints.
	if lg.VertexCount() != 3 || lg.EdgeCount() != 2 {
		t.Errorf("L(P4): %d vertices, %d edges, want 3 and 2", lg.VertexCount(), lg.EdgeCount())
	}
	if !lg.HasEdge("0|1", "1|2") || !lg.HasEdge("1|2", "2|3") {
		t.Error("consecutive path edges should be adjacent in the line graph")
	}
	if lg.HasEdge("0|1", "2|3") {
		t.Error("disjoint edges must not be adjacent in the line graph")
	}
}

func TestLineGraphStar(t *testing.T) {
	g, err := Generate(KindStar, 5, 0, 0)
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}

	lg, err := LineGraph(g)
	if err != nil {
		t.Fatalf("LineGraph() failed: %v", err)
	}

	// All star edges share the hub, so the line graph is complete: K4.
	if lg.VertexCount() != 4 || lg.EdgeCount() != 6 {
		t.Errorf("L(star5): %d vertices, %d edges, want 4 and 6", lg.VertexCount(), lg.EdgeCount())
	}
}

func TestLineGraphEmpty(t *testing.T) {
	lg, err := LineGraph(New())
	if err != nil {
		t.Fatalf("LineGraph() failed: %v", err)
	}
	if lg.VertexCount() != 0 {
		t.Error("line graph of the empty graph should be empty")
	}
}

func TestLineGraphVertexOrder(t *testing.T) {
	g := New()
	for _, id := range []string{"a", "b", "c"} {
		_ = g.AddVertex(id)
	}
	_ = g.AddEdge("b", "c")
	_ = g.AddEdge("a", "b")

	lg, err := LineGraph(g)
	if err != nil {
		t.Fatalf("LineGraph() failed: %v", err)
	}

	// Line-graph vertices follow source edge insertion order.
	want := []string{"b|c", "a|b"}
	if got := lg.Vertices(); !slices.Equal(got, want) {
		t.Errorf("Vertices() = %v, want %v", got, want)
	}
}

func TestLineGraphAdjacencyProperty(t *testing.T) {
	g, err := Generate(KindRandom, 12, 0.4, 1)
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}
	lg, err := LineGraph(g)
	if err != nil {
		t.Fatalf("LineGraph() failed: %v", err)
	}

	if lg.VertexCount() != g.EdgeCount() {
		t.Fatalf("line graph has %d vertices, want |E| = %d", lg.VertexCount(), g.EdgeCount())
	}

	// Adjacency in the line graph must hold exactly when the source edges
	// share an endpoint.
	edges := g.Edges()
	for i := 0; i < len(edges); i++ {
		for j := i + 1; j < len(edges); j++ {
			shares := edges[i].SharesEndpoint(edges[j])
			adjacent := lg.HasEdge(EdgeID(edges[i]), EdgeID(edges[j]))
			if shares != adjacent {
				t.Errorf("edges %v and %v: shares=%v adjacent=%v", edges[i], edges[j], shares, adjacent)
			}
		}
	}
}

func TestEdgeIDRoundTrip(t *testing.T) {
	e := Edge{U: "3", V: "0"}
	id := EdgeID(e)
	if id != "3|0" {
		t.Errorf("EdgeID = %q, want %q", id, "3|0")
	}

	back, ok := ParseEdgeID(id)
	if !ok || back != e {
		t.Errorf("ParseEdgeID(%q) = %v, %v", id, back, ok)
	}

	if _, ok := ParseEdgeID("noseparator"); ok {
		t.Error("ParseEdgeID should reject IDs without a separator")
	}
	if _, ok := ParseEdgeID("|x"); ok {
		t.Error("ParseEdgeID should reject empty endpoints")
	}
}
