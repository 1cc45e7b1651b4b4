package coloring

import "github.com/graphtint/graphtint/pkg/graph"

// colorSaturation implements DSATUR selection: repeatedly color the
// uncolored vertex with the highest saturation (distinct colors among its
// colored neighbors), breaking ties by higher static degree and then by
// natural order.
//
// Saturation is maintained lazily: after each assignment only the uncolored
// neighbors of the just-colored vertex are updated. Each such neighbor
// records the set of distinct neighbor colors it has seen, so recomputation
// never scans unrelated vertices. Selection scans all uncolored vertices,
// giving O(V²) overall; the lazy update keeps the constant small without a
// priority structure.
func colorSaturation(g *graph.Graph) (Trace, error) {
	vertices := g.Vertices()
	colors := make(Coloring, len(vertices))
	trace := make(Trace, 0, len(vertices))

	// seenColors[v] is the set of distinct colors among v's colored
	// neighbors; len(seenColors[v]) is v's saturation.
	seenColors := make(map[string]map[int]struct{}, len(vertices))

	for len(colors) < len(vertices) {
		v := selectMostSaturated(g, vertices, colors, seenColors)

		c := firstFit(g, colors, v)
		if err := checkAssignment(g, colors, v, c); err != nil {
			return nil, err
		}
		colors[v] = c
		trace = append(trace, colors.Clone())

		// Lazy update: only uncolored neighbors of v gain saturation.
		for _, n := range g.Neighbors(v) {
			if _, colored := colors[n]; colored {
				continue
			}
			if seenColors[n] == nil {
				seenColors[n] = make(map[int]struct{})
			}
			seenColors[n][c] = struct{}{}
		}
	}

	return trace, nil
}

// selectMostSaturated scans the uncolored vertices in natural order and
// returns the one with the highest (saturation, static degree) pair.
// Strict comparison means the earliest candidate wins all remaining ties,
// which keeps selection deterministic.
func selectMostSaturated(g *graph.Graph, vertices []string, colors Coloring, seenColors map[string]map[int]struct{}) string {
	best := ""
	bestSat, bestDeg := -1, -1

	for _, v := range vertices {
		if _, colored := colors[v]; colored {
			continue
		}
		sat := len(seenColors[v])
		deg := g.Degree(v)
		if sat > bestSat || (sat == bestSat && deg > bestDeg) {
			best, bestSat, bestDeg = v, sat, deg
		}
	}
	return best
}
