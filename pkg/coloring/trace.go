package coloring

import "maps"

// Coloring maps vertex (or edge) identifiers to non-negative color indexes.
// A Coloring inside a Trace is an immutable snapshot: the engine never
// mutates a snapshot after appending it.
type Coloring map[string]int

// Clone returns an independent copy of the coloring.
func (c Coloring) Clone() Coloring {
	out := make(Coloring, len(c))
	maps.Copy(out, c)
	return out
}

// Count returns the number of distinct colors in the coloring.
func (c Coloring) Count() int {
	seen := make(map[int]struct{}, len(c))
	for _, color := range c {
		seen[color] = struct{}{}
	}
	return len(seen)
}

// Trace is the ordered sequence of coloring snapshots, one per assignment
// decision, in the exact order elements were colored. Each entry is a full
// independent copy of the state at that point, so a consumer can render
// frame i without replaying frames 0..i-1.
type Trace []Coloring

// Final returns the last snapshot, or nil for an empty trace.
func (t Trace) Final() Coloring {
	if len(t) == 0 {
		return nil
	}
	return t[len(t)-1]
}

// ColorCurve returns the number of distinct colors in use after each step.
// Useful for charting how fast a strategy consumes colors.
func (t Trace) ColorCurve() []int {
	curve := make([]int, len(t))
	for i, snapshot := range t {
		curve[i] = snapshot.Count()
	}
	return curve
}
