// Package graph provides the undirected simple graph model for Graphtint,
// along with generators, the line-graph transform, and serialization.
//
// This package is the input side of the coloring pipeline: it builds graphs,
// guarantees their structural invariants (no self-loops, no parallel edges,
// symmetric adjacency), and defines the canonical wire format used for JSON
// files, API payloads, and caching.
//
// # Core Types
//
//   - [Graph]: Undirected simple graph with deterministic iteration order
//   - [Edge]: Comparable undirected edge value
//   - [Document], [Node], [Link]: Serialization types
//   - [Kind]: Generator family (cycle, random, bipartite, complete, ...)
//
// # Determinism
//
// Vertices and edges iterate in insertion order. The coloring strategies in
// pkg/coloring define "natural order" in terms of this iteration order, so
// two graphs built by the same sequence of calls (or the same generator
// parameters and seed) always color identically.
//
// # Generators
//
// Generate builds the standard graph families:
//
//	g, err := graph.Generate(graph.KindRandom, 12, 0.2, 1)
//
// Random graphs use a seeded PRNG; identical parameters produce identical
// graphs.
//
// # Line Graph
//
// LineGraph is the reduction behind edge coloring: each edge of the source
// graph becomes a vertex, adjacent iff the source edges share an endpoint.
// The transform is a pure function and independently testable:
//
//	lg, err := graph.LineGraph(g)
//
// # Graph Serialization
//
// Graphs use a simple node-link JSON format:
//
//	{
//	  "nodes": [{"id": "0"}, {"id": "1"}],
//	  "edges": [{"from": "0", "to": "1"}]
//	}
//
// Common operations:
//
//	g, _ := graph.ReadFile("graph.json")    // File → Graph
//	graph.WriteFile(g, "output.json")       // Graph → File
//	data, _ := graph.Marshal(g)             // Graph → []byte
//	doc, _ := graph.UnmarshalDocument(data) // []byte → Document
//
// # Concurrency
//
// All functions are safe for concurrent reads but not concurrent writes.
package graph
