// Package pkg provides the core libraries for Graphtint graph coloring.
//
// # Overview
//
// Graphtint generates graphs, colors them with classic greedy heuristics, and
// records every assignment so the run can be replayed step by step. The pkg
// directory is organized into four main areas:
//
//  1. [graph] - Graph structures, generators, and serialization
//  2. [coloring] - Greedy coloring strategies and step traces
//  3. [cache], [observability] - Infrastructure (result caching, hooks)
//  4. [pipeline], [api] - Orchestration and the HTTP surface
//
// # Architecture
//
// The typical data flow through Graphtint:
//
//	Graph kind + parameters (or a graph document)
//	         ↓
//	    [graph] package (generate or load the graph)
//	         ↓
//	    [coloring] package (greedy strategy → step trace)
//	         ↓
//	    [pipeline] package (cache lookups, orchestration)
//	         ↓
//	    JSON/DOT/SVG output, step replay, summaries
//
// # Quick Start
//
// Generate a graph and color it:
//
//	import (
//	    "github.com/graphtint/graphtint/pkg/coloring"
//	    "github.com/graphtint/graphtint/pkg/graph"
//	)
//
//	// 1. Generate a random graph
//	g, _ := graph.Generate(graph.KindRandom, 12, 0.4, 42)
//
//	// 2. Color it, recording every assignment
//	trace, _ := coloring.Color(g, coloring.StrategySaturation)
//
//	// 3. Inspect the result
//	final := trace.Final()
//	summary := coloring.Summarize(trace)
//
// Or run the whole thing through the pipeline, which adds caching:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, _ := runner.Execute(ctx, pipeline.Options{Kind: "random", N: 12})
//
// # Main Packages
//
// [graph] defines the undirected graph model (vertices, adjacency, stable
// ordering), the seven deterministic generators, the line-graph reduction used
// for edge coloring, and JSON/DOT/SVG serialization.
//
// [coloring] implements the three greedy strategies (first-fit, largest
// degree first, and saturation) and the append-only trace of colorings that
// every strategy produces.
//
// [pipeline] ties generation and coloring together behind content-addressed
// caching, so repeated runs with the same parameters are served from the
// cache.
//
// [api] exposes the pipeline over HTTP with chi.
//
// [cache] provides the cache backends (file, Redis, MongoDB, null) and the
// key derivation shared by the pipeline and the API.
//
// [observability] defines the hook interfaces the pipeline and API call at
// interesting moments, with no-op defaults.
//
// [errors] carries the coded error type used across the module, and
// [buildinfo] holds the version stamped at build time.
package pkg
