package errors

import (
	"strings"
	"unicode"
)

// MaxVertexCount bounds the size of generated graphs. Edge coloring builds a
// line graph with up to O(E·maxDegree) adjacencies, so unbounded input would
// let a single request exhaust memory.
const MaxVertexCount = 100000

// ValidateVertexCount validates the requested number of vertices for a
// generated graph. Zero is allowed (the empty graph is a valid input and
// yields an empty trace); negative counts and counts beyond MaxVertexCount
// are rejected.
func ValidateVertexCount(n int) error {
	if n < 0 {
		return New(ErrCodeInvalidCount, "vertex count cannot be negative, got %d", n)
	}
	if n > MaxVertexCount {
		return New(ErrCodeInvalidCount, "vertex count too large (max %d), got %d", MaxVertexCount, n)
	}
	return nil
}

// ValidateProbability validates an edge probability for random graph
// generation. The probability must lie in the closed interval [0, 1].
func ValidateProbability(p float64) error {
	if p < 0 || p > 1 {
		return New(ErrCodeInvalidProbability, "edge probability must be in [0, 1], got %g", p)
	}
	return nil
}

// ValidateSeed validates a PRNG seed. Any non-negative value is accepted;
// negative seeds are rejected to keep cache keys and logs unambiguous.
func ValidateSeed(seed int64) error {
	if seed < 0 {
		return New(ErrCodeInvalidInput, "seed cannot be negative, got %d", seed)
	}
	return nil
}

// ValidateOutputPath validates a user-supplied output file path.
// It rejects empty paths, control characters, and null bytes. Directory
// traversal is intentionally allowed here - the CLI writes wherever the
// user points it, unlike server-side paths.
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "output path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output path contains invalid characters")
		}
	}

	return nil
}

// ValidateVertexID validates a vertex identifier for externally supplied
// graphs (graph.json files, API payloads). Generated graphs use simple
// numeric IDs, but imported graphs may use arbitrary labels; the rules here
// are conservative to keep IDs safe in cache keys, DOT output, and logs.
func ValidateVertexID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidGraph, "vertex ID cannot be empty")
	}

	if len(id) > 256 {
		return New(ErrCodeInvalidGraph, "vertex ID too long (max 256 characters): %q", id)
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidGraph, "vertex ID contains control characters: %q", id)
		}
	}

	// The pipe is reserved as the line-graph edge-tuple separator.
	if strings.Contains(id, "|") {
		return New(ErrCodeInvalidGraph, "vertex ID cannot contain %q: %q", "|", id)
	}

	return nil
}
