package api

import (
	"github.com/graphtint/graphtint/pkg/coloring"
	"github.com/graphtint/graphtint/pkg/graph"
	"github.com/graphtint/graphtint/pkg/pipeline"
)

// ColorRequest is the body of POST /api/v1/color.
//
// Either Graph carries an explicit graph document, or the generation fields
// (kind, n, p, seed) describe one to build. When Graph is set the generation
// fields are ignored.
type ColorRequest struct {
	pipeline.Options

	// Graph is an optional explicit graph to color instead of generating one.
	Graph *graph.Document `json:"graph,omitempty"`

	// IncludeTrace adds the full step trace to the response.
	IncludeTrace bool `json:"include_trace,omitempty"`
}

// ColorResponse is the result of a coloring run.
type ColorResponse struct {
	RunID      string            `json:"run_id"`
	GraphHash  string            `json:"graph_hash,omitempty"`
	Vertices   int               `json:"vertices"`
	Edges      int               `json:"edges"`
	Strategy   string            `json:"strategy"`
	Mode       string            `json:"mode"`
	Steps      int               `json:"steps"`
	ColorCount int               `json:"color_count"`
	ElapsedMS  float64           `json:"elapsed_ms"`
	Final      coloring.Coloring `json:"final,omitempty"`
	Trace      coloring.Trace    `json:"trace,omitempty"`
	CacheInfo  *CacheInfo        `json:"cache,omitempty"`
}

// CacheInfo reports which pipeline stages were served from cache.
type CacheInfo struct {
	GraphHit bool `json:"graph_hit"`
	TraceHit bool `json:"trace_hit"`
}

// GenerateRequest is the body of POST /api/v1/generate.
type GenerateRequest struct {
	Kind string  `json:"kind,omitempty"`
	N    int     `json:"n,omitempty"`
	P    float64 `json:"p,omitempty"`
	Seed int64   `json:"seed,omitempty"`
}

// GenerateResponse returns a generated graph document.
type GenerateResponse struct {
	RunID     string         `json:"run_id"`
	GraphHash string         `json:"graph_hash,omitempty"`
	Graph     graph.Document `json:"graph"`
}

// HealthResponse is returned by GET /healthz.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// StrategiesResponse lists the supported strategies, kinds, and modes.
type StrategiesResponse struct {
	Strategies []string `json:"strategies"`
	Kinds      []string `json:"kinds"`
	Modes      []string `json:"modes"`
}

// ErrorResponse is the JSON body of every non-2xx response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}
