// Package coloring implements greedy graph-coloring with step traces.
//
// The engine assigns colors to vertices so that no two adjacent vertices
// share a color, recording a full snapshot of the partial coloring after
// every assignment. The snapshots form a [Trace] that downstream consumers
// (animation renderers, the compare command, the API) can replay frame by
// frame without reconstructing state.
//
// # Strategies
//
// Three vertex-selection strategies share one first-fit assignment rule:
//
//   - [StrategyFirstFit]: vertices in the graph's natural iteration order
//   - [StrategyDegree]: Welsh–Powell ordering, descending static degree
//   - [StrategySaturation]: DSATUR, dynamic saturation-driven selection
//
// All three are deterministic: the same graph and strategy always produce
// the same trace. All three respect the classical greedy bound of at most
// maxDegree+1 colors.
//
// # Edge Coloring
//
// ColorEdges reduces edge coloring to vertex coloring through the line
// graph (see pkg/graph.LineGraph): trace keys become edge identifiers and
// the properness guarantee transfers - edges sharing an endpoint are
// adjacent in the line graph, so they never share a color.
//
// # Example
//
//	g, _ := graph.Generate(graph.KindCycle, 4, 0, 0)
//	trace, err := coloring.Color(g, coloring.StrategyFirstFit)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	count, final := coloring.Summarize(trace)
//	// count == 2, final == {"0":0, "1":1, "2":0, "3":1}
package coloring
