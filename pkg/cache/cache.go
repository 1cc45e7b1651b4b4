// Package cache provides pluggable caching for graphtint pipeline results.
//
// Generating a large random graph is cheap; coloring its line graph is not.
// The pipeline caches both stages - serialized graphs and serialized traces -
// keyed by the full set of parameters that determine the output, so repeated
// runs with identical parameters are served from cache.
//
// Four backends implement the same [Cache] interface:
//
//   - [FileCache]: per-user cache directory, used by the CLI
//   - [RedisCache]: shared cache for server deployments
//   - [MongoCache]: TTL-indexed collection, for deployments already running Mongo
//   - [NullCache]: no-op, used with --no-cache and in tests
//
// The engine itself never touches the cache: a coloring run is a pure
// function of its input, and the trace lives in memory until the caller
// decides what to do with it. Caching is strictly outer infrastructure.
package cache

import (
	"context"
	"time"
)

// Default TTLs for cached pipeline stages. Both stages are deterministic
// functions of their key, so the TTL only bounds disk/keyspace growth, not
// staleness.
const (
	// TTLGraph is how long serialized generated graphs are kept.
	TTLGraph = 7 * 24 * time.Hour

	// TTLTrace is how long serialized coloring traces are kept.
	TTLTrace = 7 * 24 * time.Hour
)

// Cache is the interface all cache backends implement.
//
// Get returns (nil, false, nil) on a miss; an error indicates a backend
// failure, not a miss. A ttl of 0 in Set means the entry never expires.
// Close releases backend resources (connections, file handles) and must be
// called when the cache is no longer needed.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// GraphKeyOpts captures every parameter that determines a generated graph.
type GraphKeyOpts struct {
	Kind string
	N    int
	P    float64
	Seed int64
}

// TraceKeyOpts captures the parameters that determine a coloring trace,
// beyond the graph itself (identified separately by its content hash).
type TraceKeyOpts struct {
	Strategy string
	Mode     string // "vertex" or "edge"
}

// Keyer generates cache keys for the pipeline stages.
// Implementations must be deterministic: equal inputs produce equal keys.
type Keyer interface {
	// GraphKey generates a key for a generated graph.
	GraphKey(opts GraphKeyOpts) string

	// TraceKey generates a key for a coloring trace, scoped to the content
	// hash of the graph it colors.
	TraceKey(graphHash string, opts TraceKeyOpts) string
}

// DefaultKeyer is the standard Keyer: SHA-256 over the JSON-encoded key
// parts, prefixed by the entry type.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer { return &DefaultKeyer{} }

// GraphKey generates a key for a generated graph.
func (k *DefaultKeyer) GraphKey(opts GraphKeyOpts) string {
	return hashKey("graph", opts.Kind, opts.N, opts.P, opts.Seed)
}

// TraceKey generates a key for a coloring trace.
func (k *DefaultKeyer) TraceKey(graphHash string, opts TraceKeyOpts) string {
	return hashKey("trace", graphHash, opts.Strategy, opts.Mode)
}
