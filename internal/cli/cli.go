// Package cli implements the graphtint command-line interface.
//
// This package provides commands for generating graphs, running greedy
// coloring strategies over them, comparing strategies, exporting structural
// views, and serving the pipeline over HTTP. The CLI is built using cobra
// and supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - color: Generate (or load) a graph and run a coloring strategy
//   - generate: Build a graph and write its JSON document
//   - compare: Run every strategy on the same graph and tabulate results
//   - export: Convert a graph document to DOT or SVG
//   - serve: Run the HTTP API server
//   - cache: Manage the local result cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
//
// # Example
//
//	import "github.com/graphtint/graphtint/internal/cli"
//
//	func main() {
//	    c := cli.New(os.Stderr, cli.LogInfo)
//	    if err := c.RootCommand().ExecuteContext(ctx); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/graphtint/graphtint/pkg/buildinfo"
	"github.com/graphtint/graphtint/pkg/cache"
	"github.com/graphtint/graphtint/pkg/pipeline"
)

// appName is the application name used for directories and display.
const appName = "graphtint"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config *Config
}

// New creates a new CLI instance with a default logger and loaded config.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: LoadConfig(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "graphtint",
		Short:        "Graphtint colors graphs step by step with greedy strategies",
		Long:         `Graphtint is a CLI tool for generating graphs and coloring their vertices or edges with greedy strategies, recording every assignment so runs can be replayed, compared, and inspected.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.colorCommand())
	root.AddCommand(c.generateCommand())
	root.AddCommand(c.compareCommand())
	root.AddCommand(c.exportCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	store, err := c.newCache(noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(store, nil, c.Logger), nil
}

// newCache picks the cache backend configured for the CLI.
// A backend failure degrades to no caching rather than failing the command.
func (c *CLI) newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/graphtint/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// configPath returns the config file path using XDG standard
// (~/.config/graphtint/config.toml).
func configPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}
