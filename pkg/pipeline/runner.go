package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/graphtint/graphtint/pkg/cache"
	"github.com/graphtint/graphtint/pkg/coloring"
	"github.com/graphtint/graphtint/pkg/graph"
	"github.com/graphtint/graphtint/pkg/observability"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete generate → color → summarize pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	result := &Result{}

	// Stage 1: Generate
	generateStart := time.Now()
	g, graphHit, err := r.GenerateWithCacheInfo(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}
	result.Graph = g
	result.Stats.GenerateTime = time.Since(generateStart)
	result.Stats.VertexCount = g.VertexCount()
	result.Stats.EdgeCount = g.EdgeCount()
	result.CacheInfo.GraphHit = graphHit

	// Compute graph hash for cache keys and API responses
	if graphData, err := graph.Marshal(g); err == nil {
		result.GraphHash = cache.Hash(graphData)
	}

	r.Logger.Info("generated graph",
		"kind", opts.Kind,
		"vertices", g.VertexCount(),
		"edges", g.EdgeCount(),
		"duration", result.Stats.GenerateTime)

	// Stage 2: Color
	colorStart := time.Now()
	trace, traceHit, err := r.ColorWithCacheInfo(ctx, g, opts)
	if err != nil {
		return nil, fmt.Errorf("color: %w", err)
	}
	result.Trace = trace
	result.Stats.ColorTime = time.Since(colorStart)
	result.CacheInfo.TraceHit = traceHit

	// Stage 3: Summarize
	result.ColorCount, result.Final = coloring.Summarize(trace)

	r.Logger.Info("colored graph",
		"strategy", opts.Strategy,
		"mode", opts.Mode,
		"steps", len(trace),
		"colors", result.ColorCount,
		"duration", result.Stats.ColorTime)

	return result, nil
}

// GenerateWithCacheInfo builds a graph with caching and returns cache hit info.
func (r *Runner) GenerateWithCacheInfo(ctx context.Context, opts Options) (*graph.Graph, bool, error) {
	if err := opts.ValidateForGenerate(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	cacheKey := r.Keyer.GraphKey(opts.GraphKeyOpts())

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			if g, err := graph.Read(bytes.NewReader(data)); err == nil {
				observability.Cache().OnCacheHit(ctx, "graph")
				return g, true, nil
			}
		}
		observability.Cache().OnCacheMiss(ctx, "graph")
	}

	// Generate
	observability.Pipeline().OnGenerateStart(ctx, opts.Kind, opts.N)
	start := time.Now()
	g, err := graph.Generate(graph.Kind(opts.Kind), opts.N, opts.P, opts.Seed)
	if err != nil {
		observability.Pipeline().OnGenerateComplete(ctx, opts.Kind, opts.N, 0, time.Since(start), err)
		return nil, false, err
	}
	observability.Pipeline().OnGenerateComplete(ctx, opts.Kind, opts.N, g.EdgeCount(), time.Since(start), nil)

	// Cache the result
	if !opts.Refresh {
		if data, err := graph.Marshal(g); err == nil {
			_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLGraph)
			observability.Cache().OnCacheSet(ctx, "graph", len(data))
		}
	}

	return g, false, nil
}

// Generate is a convenience wrapper that calls GenerateWithCacheInfo and discards the cache hit info.
func (r *Runner) Generate(ctx context.Context, opts Options) (*graph.Graph, error) {
	g, _, err := r.GenerateWithCacheInfo(ctx, opts)
	return g, err
}

// ColorWithCacheInfo colors a graph with caching and returns cache hit info.
func (r *Runner) ColorWithCacheInfo(ctx context.Context, g *graph.Graph, opts Options) (coloring.Trace, bool, error) {
	if err := opts.ValidateForColor(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	// Compute cache key from graph content
	graphData, err := graph.Marshal(g)
	if err != nil {
		return nil, false, fmt.Errorf("serialize graph for cache key: %w", err)
	}
	cacheKey := r.Keyer.TraceKey(cache.Hash(graphData), opts.TraceKeyOpts())

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			var cached coloring.Trace
			if err := json.Unmarshal(data, &cached); err == nil {
				observability.Cache().OnCacheHit(ctx, "trace")
				return cached, true, nil
			}
			// If deserialization fails, fall through to recompute
		}
		observability.Cache().OnCacheMiss(ctx, "trace")
	}

	// Color
	strategy, err := coloring.ParseStrategy(opts.Strategy)
	if err != nil {
		return nil, false, err
	}

	observability.Pipeline().OnColorStart(ctx, opts.Strategy, opts.Mode, g.VertexCount())
	start := time.Now()
	var trace coloring.Trace
	if opts.IsEdgeMode() {
		trace, err = coloring.ColorEdges(g, strategy)
	} else {
		trace, err = coloring.Color(g, strategy)
	}
	colors := 0
	if err == nil {
		colors, _ = coloring.Summarize(trace)
	}
	observability.Pipeline().OnColorComplete(ctx, opts.Strategy, opts.Mode, colors, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	// Cache the result
	if !opts.Refresh {
		if data, err := json.Marshal(trace); err == nil {
			_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLTrace)
			observability.Cache().OnCacheSet(ctx, "trace", len(data))
		}
	}

	return trace, false, nil
}

// ColorGraph is a convenience wrapper that calls ColorWithCacheInfo and discards the cache hit info.
func (r *Runner) ColorGraph(ctx context.Context, g *graph.Graph, opts Options) (coloring.Trace, error) {
	trace, _, err := r.ColorWithCacheInfo(ctx, g, opts)
	return trace, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
