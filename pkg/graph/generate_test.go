package graph

import (
	"testing"

	"github.com/graphtint/graphtint/pkg/errors"
)

func TestGenerateCycle(t *testing.T) {
	g, err := Generate(KindCycle, 4, 0, 0)
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}

	if g.VertexCount() != 4 || g.EdgeCount() != 4 {
		t.Fatalf("cycle(4): %d vertices, %d edges, want 4 and 4", g.VertexCount(), g.EdgeCount())
	}
	for _, v := range g.Vertices() {
		if g.Degree(v) != 2 {
			t.Errorf("Degree(%s) = %d, want 2", v, g.Degree(v))
		}
	}
	if !g.HasEdge("3", "0") {
		t.Error("cycle should close back to vertex 0")
	}
}

func TestGenerateCycleSmall(t *testing.T) {
	// 1- and 2-vertex cycles degrade to paths (no self-loops or parallel edges).
	g, err := Generate(KindCycle, 2, 0, 0)
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}
	if g.EdgeCount() != 1 {
		t.Errorf("cycle(2) edges = %d, want 1", g.EdgeCount())
	}
}

func TestGenerateComplete(t *testing.T) {
	g, err := Generate(KindComplete, 5, 0, 0)
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}
	if g.EdgeCount() != 10 {
		t.Errorf("K5 edges = %d, want 10", g.EdgeCount())
	}
	if g.MaxDegree() != 4 {
		t.Errorf("K5 max degree = %d, want 4", g.MaxDegree())
	}
}

func TestGenerateBipartite(t *testing.T) {
	g, err := Generate(KindBipartite, 5, 0, 0)
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}

	// Split is 2 + 3, complete across the parts.
	if g.EdgeCount() != 6 {
		t.Errorf("K(2,3) edges = %d, want 6", g.EdgeCount())
	}
	if g.HasEdge("0", "1") {
		t.Error("no edges within the first part")
	}
	if g.HasEdge("2", "3") {
		t.Error("no edges within the second part")
	}
	if !g.HasEdge("0", "2") || !g.HasEdge("1", "4") {
		t.Error("parts should be completely connected")
	}
}

func TestGenerateStar(t *testing.T) {
	g, err := Generate(KindStar, 6, 0, 0)
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}
	if g.Degree("0") != 5 {
		t.Errorf("hub degree = %d, want 5", g.Degree("0"))
	}
	if g.EdgeCount() != 5 {
		t.Errorf("star(6) edges = %d, want 5", g.EdgeCount())
	}
}

func TestGeneratePath(t *testing.T) {
	g, err := Generate(KindPath, 4, 0, 0)
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}
	if g.EdgeCount() != 3 {
		t.Errorf("path(4) edges = %d, want 3", g.EdgeCount())
	}
	if g.Degree("0") != 1 || g.Degree("3") != 1 {
		t.Error("path endpoints should have degree 1")
	}
}

func TestGenerateEmpty(t *testing.T) {
	g, err := Generate(KindEmpty, 3, 0, 0)
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}
	if g.VertexCount() != 3 || g.EdgeCount() != 0 {
		t.Error("empty kind should produce isolated vertices")
	}

	g, err = Generate(KindCycle, 0, 0, 0)
	if err != nil {
		t.Fatalf("Generate(n=0) failed: %v", err)
	}
	if g.VertexCount() != 0 {
		t.Error("n=0 should produce the empty graph")
	}
}

func TestGenerateRandomDeterminism(t *testing.T) {
	a, err := Generate(KindRandom, 20, 0.3, 1)
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}
	b, err := Generate(KindRandom, 20, 0.3, 1)
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}

	dataA, _ := Marshal(a)
	dataB, _ := Marshal(b)
	if string(dataA) != string(dataB) {
		t.Error("same seed should produce identical graphs")
	}

	c, err := Generate(KindRandom, 20, 0.3, 2)
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}
	dataC, _ := Marshal(c)
	if string(dataA) == string(dataC) {
		t.Error("different seeds should (almost surely) differ")
	}
}

func TestGenerateRandomProbabilityExtremes(t *testing.T) {
	g, err := Generate(KindRandom, 6, 0, 7)
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}
	if g.EdgeCount() != 0 {
		t.Errorf("p=0 edges = %d, want 0", g.EdgeCount())
	}

	g, err = Generate(KindRandom, 6, 1, 7)
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}
	if g.EdgeCount() != 15 {
		t.Errorf("p=1 edges = %d, want 15 (complete)", g.EdgeCount())
	}
}

func TestGenerateValidation(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		n    int
		p    float64
		seed int64
		code errors.Code
	}{
		{"BadKind", Kind("torus"), 5, 0, 0, errors.ErrCodeInvalidKind},
		{"NegativeCount", KindCycle, -1, 0, 0, errors.ErrCodeInvalidCount},
		{"BadProbability", KindRandom, 5, 1.5, 0, errors.ErrCodeInvalidProbability},
		{"NegativeSeed", KindRandom, 5, 0.5, -1, errors.ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Generate(tt.kind, tt.n, tt.p, tt.seed)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if got := errors.GetCode(err); got != tt.code {
				t.Errorf("code = %q, want %q", got, tt.code)
			}
		})
	}
}

func TestParseKind(t *testing.T) {
	if k, err := ParseKind("cycle"); err != nil || k != KindCycle {
		t.Errorf("ParseKind(cycle) = %v, %v", k, err)
	}
	if _, err := ParseKind("moebius"); !errors.Is(err, errors.ErrCodeInvalidKind) {
		t.Errorf("ParseKind(moebius) error = %v, want INVALID_KIND", err)
	}
}
