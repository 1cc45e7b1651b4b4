package cli

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/graphtint/graphtint/pkg/api"
	"github.com/graphtint/graphtint/pkg/buildinfo"
	"github.com/graphtint/graphtint/pkg/cache"
	"github.com/graphtint/graphtint/pkg/pipeline"
)

// serveCommand creates the serve command for running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	cfg := c.Config.Serve

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		Long: `Run the HTTP API server.

The server exposes the coloring pipeline over JSON:

  POST /api/v1/color       color a generated or posted graph
  POST /api/v1/generate    build and return a graph document
  GET  /api/v1/strategies  list strategies, kinds, and modes
  GET  /healthz            liveness probe

Cache backends: file (default, per-user directory), redis and mongo for
shared deployments, none to disable caching entirely.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVar(&cfg.Addr, "addr", cfg.Addr, "listen address")
	cmd.Flags().StringVar(&cfg.Cache, "cache", cfg.Cache, "cache backend: file, redis, mongo, none")
	cmd.Flags().StringVar(&cfg.RedisURL, "redis-url", cfg.RedisURL, "redis connection URL (cache=redis)")
	cmd.Flags().StringVar(&cfg.MongoURI, "mongo-uri", cfg.MongoURI, "mongodb connection URI (cache=mongo)")
	cmd.Flags().StringVar(&cfg.MongoDB, "mongo-db", cfg.MongoDB, "mongodb database name (cache=mongo)")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, cfg ServeConfig) error {
	store, err := c.serveCache(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initialize cache: %w", err)
	}

	runner := pipeline.NewRunner(store, cache.NewScopedKeyer(nil, "api:"), c.Logger)
	defer runner.Close()

	server := api.NewServer(runner, c.Logger, buildinfo.Version)
	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      server.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Info("listening", "addr", cfg.Addr, "cache", cfg.Cache)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	c.Logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}

// serveCache builds the cache backend selected for the server.
func (c *CLI) serveCache(ctx context.Context, cfg ServeConfig) (cache.Cache, error) {
	switch cfg.Cache {
	case "none":
		return cache.NewNullCache(), nil
	case "redis":
		if cfg.RedisURL == "" {
			return nil, fmt.Errorf("cache=redis requires --redis-url")
		}
		return cache.NewRedisCache(ctx, cfg.RedisURL)
	case "mongo":
		if cfg.MongoURI == "" {
			return nil, fmt.Errorf("cache=mongo requires --mongo-uri")
		}
		return cache.NewMongoCache(ctx, cfg.MongoURI, cfg.MongoDB, "cache")
	case "file", "":
		dir, err := cacheDir()
		if err != nil {
			return cache.NewNullCache(), nil
		}
		return cache.NewFileCache(dir)
	default:
		return nil, fmt.Errorf("unknown cache backend: %q (must be one of: file, redis, mongo, none)", cfg.Cache)
	}
}
