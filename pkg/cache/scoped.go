package cache

// ScopedKeyer wraps a Keyer with a prefix so separate deployments or users
// sharing one backend (Redis, Mongo) get isolated cache namespaces.
//
// Example usage:
//
//	// Per-run keys for an API server instance
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "api:v1:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// GraphKey generates a prefixed key for a generated graph.
func (k *ScopedKeyer) GraphKey(opts GraphKeyOpts) string {
	return k.prefix + k.inner.GraphKey(opts)
}

// TraceKey generates a prefixed key for a coloring trace.
func (k *ScopedKeyer) TraceKey(graphHash string, opts TraceKeyOpts) string {
	return k.prefix + k.inner.TraceKey(graphHash, opts)
}
