package coloring

import (
	"sort"

	"github.com/graphtint/graphtint/pkg/errors"
	"github.com/graphtint/graphtint/pkg/graph"
)

// Strategy selects the order in which vertices are colored.
// The assignment rule is the same for every strategy: first-fit, the
// smallest color index absent from the colored neighborhood.
type Strategy string

// Supported strategies.
const (
	// StrategyFirstFit colors vertices in the graph's natural iteration
	// order with no reordering.
	StrategyFirstFit Strategy = "firstfit"

	// StrategyDegree is Welsh–Powell ordering: vertices sorted once,
	// descending by static degree, before any coloring begins. Ties keep
	// the natural order (stable sort).
	StrategyDegree Strategy = "degree"

	// StrategySaturation is DSATUR: at each step the uncolored vertex with
	// the most distinct colors among its colored neighbors is picked next.
	// Ties break by higher static degree, then by natural order.
	StrategySaturation Strategy = "saturation"
)

// ValidStrategies is the set of supported strategies.
var ValidStrategies = map[Strategy]bool{
	StrategyFirstFit:   true,
	StrategyDegree:     true,
	StrategySaturation: true,
}

// ParseStrategy converts a string to a Strategy.
// Returns an INVALID_STRATEGY error for unrecognized values.
func ParseStrategy(s string) (Strategy, error) {
	st := Strategy(s)
	if !ValidStrategies[st] {
		return "", errors.New(errors.ErrCodeInvalidStrategy,
			"unknown strategy: %q (must be one of: firstfit, degree, saturation)", s)
	}
	return st, nil
}

// Color produces a proper vertex coloring of g using the given strategy.
//
// The result is one trace entry per vertex, in assignment order. Colors are
// contiguous non-negative integers from 0; the whole run never uses more
// than maxDegree+1 colors. An empty graph yields an empty trace.
//
// The input graph is not modified, and the trace shares no state with it or
// with later runs, so concurrent calls on the same graph are safe.
func Color(g *graph.Graph, strategy Strategy) (Trace, error) {
	switch strategy {
	case StrategyFirstFit:
		return colorInOrder(g, g.Vertices())
	case StrategyDegree:
		return colorInOrder(g, degreeOrder(g))
	case StrategySaturation:
		return colorSaturation(g)
	default:
		return nil, errors.New(errors.ErrCodeInvalidStrategy, "unknown strategy: %q", strategy)
	}
}

// degreeOrder returns the vertices sorted descending by static degree,
// computed before any coloring begins. The sort is stable so equal-degree
// vertices keep their natural order.
func degreeOrder(g *graph.Graph) []string {
	order := g.Vertices()
	sort.SliceStable(order, func(i, j int) bool {
		return g.Degree(order[i]) > g.Degree(order[j])
	})
	return order
}

// colorInOrder runs the shared first-fit assignment over a fixed vertex
// order, appending one snapshot per assignment.
func colorInOrder(g *graph.Graph, order []string) (Trace, error) {
	colors := make(Coloring, len(order))
	trace := make(Trace, 0, len(order))

	for _, v := range order {
		c := firstFit(g, colors, v)
		if err := checkAssignment(g, colors, v, c); err != nil {
			return nil, err
		}
		colors[v] = c
		trace = append(trace, colors.Clone())
	}
	return trace, nil
}

// firstFit returns the smallest color index not present among the colored
// neighbors of v at decision time.
func firstFit(g *graph.Graph, colors Coloring, v string) int {
	used := make(map[int]struct{})
	for _, n := range g.Neighbors(v) {
		if c, ok := colors[n]; ok {
			used[c] = struct{}{}
		}
	}
	c := 0
	for {
		if _, taken := used[c]; !taken {
			return c
		}
		c++
	}
}

// checkAssignment verifies that giving v color c keeps the coloring proper.
// First-fit makes a conflict impossible, so a failure here is a programming
// defect; it fails fast with INTERNAL_ERROR instead of continuing with an
// improper coloring.
func checkAssignment(g *graph.Graph, colors Coloring, v string, c int) error {
	for _, n := range g.Neighbors(v) {
		if nc, ok := colors[n]; ok && nc == c {
			return errors.New(errors.ErrCodeInternal,
				"improper assignment: %s and %s would both get color %d", v, n, c)
		}
	}
	return nil
}

// Verify checks that a coloring is proper and complete for g: every vertex
// is colored and no edge connects two vertices of the same color.
// Returns INTERNAL_ERROR on violation. Exposed for tests and for consumers
// that re-validate traces from external sources.
func Verify(g *graph.Graph, colors Coloring) error {
	for _, v := range g.Vertices() {
		if _, ok := colors[v]; !ok {
			return errors.New(errors.ErrCodeInternal, "vertex %s is uncolored", v)
		}
	}
	for _, e := range g.Edges() {
		if colors[e.U] == colors[e.V] {
			return errors.New(errors.ErrCodeInternal,
				"edge %s -- %s has both endpoints colored %d", e.U, e.V, colors[e.U])
		}
	}
	return nil
}
