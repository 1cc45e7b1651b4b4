// Package pipeline provides the core coloring pipeline for graphtint.
//
// This package implements the complete generate → color → summarize pipeline
// that can be used by CLI and API components. By centralizing this logic,
// we ensure consistent behavior across all entry points and avoid code duplication.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Generate: Build a graph from a named family (cycle, random, bipartite, ...)
//  2. Color: Run a greedy strategy over vertices or edges, recording a step trace
//  3. Summarize: Reduce the trace to a color count and final assignment
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Kind:     "random",
//	    N:        30,
//	    P:        0.3,
//	    Strategy: "saturation",
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.ColorCount)
//
// Run individual stages:
//
//	// Generate only
//	g, err := runner.Generate(ctx, opts)
//
//	// Color an existing graph
//	trace, err := runner.ColorGraph(ctx, g, opts)
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/graphtint/graphtint/pkg/cache"
	"github.com/graphtint/graphtint/pkg/coloring"
	"github.com/graphtint/graphtint/pkg/errors"
	"github.com/graphtint/graphtint/pkg/graph"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultN is the default vertex count for generated graphs.
	DefaultN = 10

	// DefaultP is the default edge probability for random graphs.
	DefaultP = 0.5

	// DefaultSeed is the default random seed for reproducibility.
	DefaultSeed = int64(42)
)

// DefaultKind is the default graph family.
const DefaultKind = string(graph.KindRandom)

// DefaultStrategy is the default coloring strategy.
const DefaultStrategy = string(coloring.StrategyFirstFit)

// Mode constants for what gets colored.
const (
	ModeVertex = "vertex"
	ModeEdge   = "edge"
)

// DefaultMode is the default coloring mode.
const DefaultMode = ModeVertex

// ValidModes is the set of supported coloring modes.
var ValidModes = map[string]bool{
	ModeVertex: true,
	ModeEdge:   true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the coloring pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Generate options
	Kind string  `json:"kind,omitempty"`
	N    int     `json:"n,omitempty"`
	P    float64 `json:"p,omitempty"`
	Seed int64   `json:"seed,omitempty"`

	// Color options
	Strategy string `json:"strategy,omitempty"`
	Mode     string `json:"mode,omitempty"`

	// Refresh bypasses the cache and recomputes every stage.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Graph is the graph that was colored.
	Graph *graph.Graph

	// GraphHash is the content hash of the serialized graph.
	GraphHash string

	// Trace is the full step trace, one snapshot per assignment.
	Trace coloring.Trace

	// ColorCount is the number of distinct colors in the final assignment.
	ColorCount int

	// Final is the last snapshot of the trace (nil for the empty graph).
	Final coloring.Coloring

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	VertexCount  int
	EdgeCount    int
	GenerateTime time.Duration
	ColorTime    time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	GraphHit bool // Whether the generated graph came from cache
	TraceHit bool // Whether the coloring trace came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateMode checks that a coloring mode is valid.
func ValidateMode(mode string) error {
	if !ValidModes[mode] {
		return errors.New(errors.ErrCodeInvalidMode, "invalid mode: %q (must be one of: vertex, edge)", mode)
	}
	return nil
}

// ValidateStrategy checks that a strategy name is valid.
func ValidateStrategy(strategy string) error {
	if _, err := coloring.ParseStrategy(strategy); err != nil {
		return err
	}
	return nil
}

// ValidateKind checks that a graph family name is valid.
func ValidateKind(kind string) error {
	if _, err := graph.ParseKind(kind); err != nil {
		return err
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks all fields and applies defaults for the full pipeline.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForGenerate(); err != nil {
		return err
	}
	if err := o.ValidateForColor(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForGenerate checks the generation fields and applies their defaults.
// Zero values are treated as unset: n=0 becomes DefaultN and p=0 becomes
// DefaultP. Callers that want an actual empty graph or an edgeless random
// graph must build it through pkg/graph and hand it to ColorGraph.
func (o *Options) ValidateForGenerate() error {
	if o.Kind == "" {
		o.Kind = DefaultKind
	}
	if o.N == 0 {
		o.N = DefaultN
	}
	if o.P == 0 {
		o.P = DefaultP
	}
	if o.Seed == 0 {
		o.Seed = DefaultSeed
	}
	o.applyLoggerDefault()
	return ValidateKind(o.Kind)
}

// ValidateForColor checks the coloring fields and applies their defaults.
func (o *Options) ValidateForColor() error {
	if o.Strategy == "" {
		o.Strategy = DefaultStrategy
	}
	if o.Mode == "" {
		o.Mode = DefaultMode
	}
	o.applyLoggerDefault()
	if err := ValidateStrategy(o.Strategy); err != nil {
		return err
	}
	return ValidateMode(o.Mode)
}

// IsEdgeMode returns true if edges are being colored rather than vertices.
func (o *Options) IsEdgeMode() bool {
	return o.Mode == ModeEdge
}

// GraphKeyOpts returns cache key options for graph generation.
func (o *Options) GraphKeyOpts() cache.GraphKeyOpts {
	return cache.GraphKeyOpts{
		Kind: o.Kind,
		N:    o.N,
		P:    o.P,
		Seed: o.Seed,
	}
}

// TraceKeyOpts returns cache key options for the coloring stage.
func (o *Options) TraceKeyOpts() cache.TraceKeyOpts {
	return cache.TraceKeyOpts{
		Strategy: o.Strategy,
		Mode:     o.Mode,
	}
}

func (o *Options) applyLoggerDefault() {
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}
