package graph

import (
	"fmt"
	"math/rand/v2"
	"strconv"

	"github.com/graphtint/graphtint/pkg/errors"
)

// Kind identifies a graph generator family.
type Kind string

// Supported graph kinds.
const (
	KindCycle     Kind = "cycle"     // n vertices in a single cycle
	KindRandom    Kind = "random"    // Erdős–Rényi G(n, p)
	KindBipartite Kind = "bipartite" // complete bipartite on an n/2 + (n - n/2) split
	KindComplete  Kind = "complete"  // every pair of vertices connected
	KindPath      Kind = "path"      // n vertices in a simple path
	KindStar      Kind = "star"      // one hub connected to n-1 leaves
	KindEmpty     Kind = "empty"     // n isolated vertices
)

// ValidKinds is the set of supported graph kinds.
var ValidKinds = map[Kind]bool{
	KindCycle:     true,
	KindRandom:    true,
	KindBipartite: true,
	KindComplete:  true,
	KindPath:      true,
	KindStar:      true,
	KindEmpty:     true,
}

// ParseKind converts a string to a Kind.
// Returns an INVALID_KIND error for unrecognized values.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if !ValidKinds[k] {
		return "", errors.New(errors.ErrCodeInvalidKind,
			"unknown graph kind: %q (must be one of: cycle, random, bipartite, complete, path, star, empty)", s)
	}
	return k, nil
}

// Generate builds a graph of the given kind with n vertices.
//
// The probability p is only consulted for KindRandom; other kinds ignore it.
// The seed drives the PRNG for KindRandom so that repeated calls with the
// same parameters produce identical graphs. Vertices are numbered "0".."n-1"
// in insertion order, which is the natural iteration order seen by the
// coloring strategies.
//
// Inputs are validated before any construction happens: n must be
// non-negative (n == 0 yields the empty graph for every kind) and p must lie
// in [0, 1]. Validation failures carry INVALID_* error codes.
func Generate(kind Kind, n int, p float64, seed int64) (*Graph, error) {
	if !ValidKinds[kind] {
		return nil, errors.New(errors.ErrCodeInvalidKind, "unknown graph kind: %q", kind)
	}
	if err := errors.ValidateVertexCount(n); err != nil {
		return nil, err
	}
	if kind == KindRandom {
		if err := errors.ValidateProbability(p); err != nil {
			return nil, err
		}
		if err := errors.ValidateSeed(seed); err != nil {
			return nil, err
		}
	}

	g := New()
	for i := 0; i < n; i++ {
		if err := g.AddVertex(strconv.Itoa(i)); err != nil {
			return nil, fmt.Errorf("add vertex %d: %w", i, err)
		}
	}

	var err error
	switch kind {
	case KindCycle:
		err = connectCycle(g, n)
	case KindRandom:
		err = connectRandom(g, n, p, seed)
	case KindBipartite:
		err = connectBipartite(g, n)
	case KindComplete:
		err = connectComplete(g, n)
	case KindPath:
		err = connectPath(g, n)
	case KindStar:
		err = connectStar(g, n)
	case KindEmpty:
		// nothing to connect
	}
	if err != nil {
		return nil, fmt.Errorf("generate %s graph: %w", kind, err)
	}

	return g, nil
}

func connectCycle(g *Graph, n int) error {
	if n < 3 {
		// A 1- or 2-vertex "cycle" would need a self-loop or parallel edge;
		// degrade to the path on the same vertices.
		return connectPath(g, n)
	}
	for i := 0; i < n; i++ {
		if err := g.AddEdge(strconv.Itoa(i), strconv.Itoa((i+1)%n)); err != nil {
			return err
		}
	}
	return nil
}

func connectRandom(g *Graph, n int, p float64, seed int64) error {
	rng := rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0xdeadbeef))
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < p {
				if err := g.AddEdge(strconv.Itoa(i), strconv.Itoa(j)); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// connectBipartite builds the complete bipartite graph on parts
// {0..n/2-1} and {n/2..n-1}.
func connectBipartite(g *Graph, n int) error {
	half := n / 2
	for i := 0; i < half; i++ {
		for j := half; j < n; j++ {
			if err := g.AddEdge(strconv.Itoa(i), strconv.Itoa(j)); err != nil {
				return err
			}
		}
	}
	return nil
}

func connectComplete(g *Graph, n int) error {
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if err := g.AddEdge(strconv.Itoa(i), strconv.Itoa(j)); err != nil {
				return err
			}
		}
	}
	return nil
}

func connectPath(g *Graph, n int) error {
	for i := 0; i+1 < n; i++ {
		if err := g.AddEdge(strconv.Itoa(i), strconv.Itoa(i+1)); err != nil {
			return err
		}
	}
	return nil
}

func connectStar(g *Graph, n int) error {
	for i := 1; i < n; i++ {
		if err := g.AddEdge("0", strconv.Itoa(i)); err != nil {
			return err
		}
	}
	return nil
}
