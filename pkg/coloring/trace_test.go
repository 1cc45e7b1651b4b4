package coloring

import (
	"slices"
	"testing"

	"github.com/graphtint/graphtint/pkg/graph"
)

func TestColoringClone(t *testing.T) {
	c := Coloring{"a": 0, "b": 1}
	clone := c.Clone()
	clone["a"] = 5

	if c["a"] != 0 {
		t.Error("Clone() should not share storage")
	}
}

func TestColoringCount(t *testing.T) {
	tests := []struct {
		name string
		c    Coloring
		want int
	}{
		{"Empty", Coloring{}, 0},
		{"Single", Coloring{"a": 0}, 1},
		{"Repeated", Coloring{"a": 0, "b": 0, "c": 1}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Count(); got != tt.want {
				t.Errorf("Count() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestTraceFinal(t *testing.T) {
	if got := (Trace{}).Final(); got != nil {
		t.Errorf("empty trace Final() = %v, want nil", got)
	}

	trace := Trace{{"a": 0}, {"a": 0, "b": 1}}
	if got := trace.Final(); got.Count() != 2 {
		t.Errorf("Final() = %v", got)
	}
}

func TestColorCurve(t *testing.T) {
	g, err := graph.Generate(graph.KindCycle, 4, 0, 0)
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}
	trace, err := Color(g, StrategyFirstFit)
	if err != nil {
		t.Fatalf("Color() failed: %v", err)
	}

	// C4 natural order: 0, then 0/1 alternating.
	want := []int{1, 2, 2, 2}
	if got := trace.ColorCurve(); !slices.Equal(got, want) {
		t.Errorf("ColorCurve() = %v, want %v", got, want)
	}
}

func TestSummarizeEmptyIdempotent(t *testing.T) {
	count, final := Summarize(Trace{})
	if count != 0 || final != nil {
		t.Errorf("Summarize(empty) = (%d, %v), want (0, nil)", count, final)
	}
	// Calling again gives the same answer.
	count, final = Summarize(Trace{})
	if count != 0 || final != nil {
		t.Errorf("second Summarize(empty) = (%d, %v), want (0, nil)", count, final)
	}
}
