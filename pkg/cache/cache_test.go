package cache

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	// Get always returns miss
	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("NullCache.Get should always return miss")
	}
	if data != nil {
		t.Error("NullCache.Get should return nil data")
	}

	// Set does nothing (no error)
	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}

	// Still a miss after Set
	_, hit, _ = c.Get(ctx, "key")
	if hit {
		t.Error("NullCache should not store data")
	}

	// Delete does nothing (no error)
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestFileCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	defer c.Close()

	// Miss before Set
	_, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("expected miss before Set")
	}

	// Round trip
	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if !hit {
		t.Fatal("expected hit after Set")
	}
	if string(data) != "value" {
		t.Errorf("Get = %q, want %q", data, "value")
	}

	// Delete then miss
	if err := c.Delete(ctx, "key"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	_, hit, _ = c.Get(ctx, "key")
	if hit {
		t.Error("expected miss after Delete")
	}

	// Deleting a missing key is not an error
	if err := c.Delete(ctx, "missing"); err != nil {
		t.Errorf("Delete on missing key: %v", err)
	}
}

func TestFileCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	defer c.Close()

	// Already-expired entry is a miss
	if err := c.Set(ctx, "expired", []byte("old"), -time.Second); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	_, hit, err := c.Get(ctx, "expired")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("expired entry should be a miss")
	}

	// ttl 0 means no expiry
	if err := c.Set(ctx, "forever", []byte("data"), 0); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	_, hit, _ = c.Get(ctx, "forever")
	if !hit {
		t.Error("entry with ttl 0 should not expire")
	}
}

func TestHash(t *testing.T) {
	// Test determinism
	h1 := Hash([]byte("hello"))
	h2 := Hash([]byte("hello"))
	if h1 != h2 {
		t.Error("Hash should be deterministic")
	}

	// Test different inputs produce different hashes
	h3 := Hash([]byte("world"))
	if h1 == h3 {
		t.Error("Different inputs should produce different hashes")
	}

	// Test hash length (SHA-256 produces 64 hex chars)
	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()

	// Equal parameters produce equal keys
	gk1 := k.GraphKey(GraphKeyOpts{Kind: "random", N: 20, P: 0.3, Seed: 7})
	gk2 := k.GraphKey(GraphKeyOpts{Kind: "random", N: 20, P: 0.3, Seed: 7})
	if gk1 != gk2 {
		t.Error("GraphKey should be deterministic")
	}
	if !strings.HasPrefix(gk1, "graph:") {
		t.Errorf("GraphKey should carry the graph prefix: %s", gk1)
	}

	// Every parameter participates in the key
	variants := []GraphKeyOpts{
		{Kind: "cycle", N: 20, P: 0.3, Seed: 7},
		{Kind: "random", N: 21, P: 0.3, Seed: 7},
		{Kind: "random", N: 20, P: 0.4, Seed: 7},
		{Kind: "random", N: 20, P: 0.3, Seed: 8},
	}
	for _, opts := range variants {
		if k.GraphKey(opts) == gk1 {
			t.Errorf("GraphKey(%+v) should differ from base key", opts)
		}
	}

	// TraceKey depends on the graph hash and both options
	tk1 := k.TraceKey("hash123", TraceKeyOpts{Strategy: "firstfit", Mode: "vertex"})
	tk2 := k.TraceKey("hash123", TraceKeyOpts{Strategy: "saturation", Mode: "vertex"})
	tk3 := k.TraceKey("hash123", TraceKeyOpts{Strategy: "firstfit", Mode: "edge"})
	tk4 := k.TraceKey("otherhash", TraceKeyOpts{Strategy: "firstfit", Mode: "vertex"})
	if tk1 == tk2 || tk1 == tk3 || tk1 == tk4 {
		t.Error("TraceKey should vary with strategy, mode, and graph hash")
	}
	if !strings.HasPrefix(tk1, "trace:") {
		t.Errorf("TraceKey should carry the trace prefix: %s", tk1)
	}
}

func TestScopedKeyer(t *testing.T) {
	inner := NewDefaultKeyer()
	scoped := NewScopedKeyer(inner, "api:v1:")

	gk := scoped.GraphKey(GraphKeyOpts{Kind: "cycle", N: 4})
	if !strings.HasPrefix(gk, "api:v1:graph:") {
		t.Errorf("ScopedKeyer GraphKey should be prefixed: %s", gk)
	}

	tk := scoped.TraceKey("hash123", TraceKeyOpts{Strategy: "degree", Mode: "vertex"})
	if !strings.HasPrefix(tk, "api:v1:trace:") {
		t.Errorf("ScopedKeyer TraceKey should be prefixed: %s", tk)
	}
}

func TestScopedKeyerNilInner(t *testing.T) {
	// Should use DefaultKeyer when inner is nil
	scoped := NewScopedKeyer(nil, "prefix:")
	key := scoped.GraphKey(GraphKeyOpts{Kind: "star", N: 5})
	if !strings.HasPrefix(key, "prefix:graph:") {
		t.Errorf("Unexpected key with nil inner: %s", key)
	}
}

func TestRetryableError(t *testing.T) {
	// Retryable(nil) returns nil
	if Retryable(nil) != nil {
		t.Error("Retryable(nil) should return nil")
	}

	// Non-nil error is wrapped
	err := Retryable(ErrBackend)
	if err == nil {
		t.Fatal("Retryable should return wrapped error")
	}
	if !IsRetryable(err) {
		t.Error("IsRetryable should return true for wrapped error")
	}

	// Error message is preserved
	if err.Error() != ErrBackend.Error() {
		t.Errorf("Error message should be preserved: %s", err.Error())
	}

	// Non-wrapped errors are not retryable
	if IsRetryable(ErrNotFound) {
		t.Error("IsRetryable should return false for unwrapped error")
	}
}

func TestRetryWithBackoff(t *testing.T) {
	ctx := context.Background()

	// Success on first try
	calls := 0
	err := RetryWithBackoff(ctx, func() error {
		calls++
		return nil
	})
	if err != nil {
		t.Errorf("Should succeed: %v", err)
	}
	if calls != 1 {
		t.Errorf("Should call once: %d", calls)
	}

	// Non-retryable error stops immediately
	calls = 0
	err = RetryWithBackoff(ctx, func() error {
		calls++
		return ErrNotFound
	})
	if err != ErrNotFound {
		t.Errorf("Should return non-retryable error: %v", err)
	}
	if calls != 1 {
		t.Errorf("Should not retry non-retryable error: %d", calls)
	}

	// Retryable error triggers retries
	calls = 0
	err = RetryWithBackoff(ctx, func() error {
		calls++
		if calls < 2 {
			return Retryable(ErrBackend)
		}
		return nil
	})
	if err != nil {
		t.Errorf("Should succeed after retry: %v", err)
	}
	if calls != 2 {
		t.Errorf("Should retry once: %d", calls)
	}
}

func TestRetryWithBackoffContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // Cancel immediately

	err := RetryWithBackoff(ctx, func() error {
		return Retryable(ErrBackend)
	})
	if err != context.Canceled {
		t.Errorf("Should return context error: %v", err)
	}
}
