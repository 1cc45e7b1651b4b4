package coloring

// Summarize reduces a trace to its headline result: the number of distinct
// colors in the final snapshot, and the final coloring itself.
//
// Summarize is agnostic to what the keys represent - it works identically
// for vertex traces and edge traces. An empty trace yields (0, nil).
func Summarize(t Trace) (colorCount int, final Coloring) {
	final = t.Final()
	if final == nil {
		return 0, nil
	}
	return final.Count(), final
}
