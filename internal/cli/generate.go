package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/graphtint/graphtint/pkg/graph"
	"github.com/graphtint/graphtint/pkg/pipeline"
)

// generateCommand creates the generate command for building graph documents.
func (c *CLI) generateCommand() *cobra.Command {
	var (
		output  string
		noCache bool
	)
	opts := c.Config.Options()

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Build a graph and write its JSON document",
		Long: `Build a graph and write its JSON document.

The document keeps vertex and edge insertion order, so coloring the exported
file later gives exactly the same trace as coloring the graph directly.
Without --output the document is written to stdout.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(cmd.Context(), opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&opts.Kind, "kind", "k", opts.Kind, "graph kind: cycle, random, bipartite, complete, path, star, empty")
	cmd.Flags().IntVarP(&opts.N, "vertices", "n", opts.N, "number of vertices")
	cmd.Flags().Float64Var(&opts.P, "p", opts.P, "edge probability for random graphs")
	cmd.Flags().Int64Var(&opts.Seed, "seed", opts.Seed, "random seed for reproducible graphs")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "recompute even if cached")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

func (c *CLI) runGenerate(ctx context.Context, opts pipeline.Options, output string, noCache bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()
	opts.Logger = c.Logger

	prog := newProgress(c.Logger)
	g, err := runner.Generate(ctx, opts)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Generated %s graph with %d vertices and %d edges", opts.Kind, g.VertexCount(), g.EdgeCount()))

	if output == "" {
		return graph.Write(g, os.Stdout)
	}
	if err := graph.WriteFile(g, output); err != nil {
		return err
	}

	printSuccess("Wrote %s graph", StyleHighlight.Render(opts.Kind))
	printStats(g.VertexCount(), g.EdgeCount(), false)
	printFile(output)
	printNextStep("Color it", fmt.Sprintf("graphtint color %s -s saturation", output))
	return nil
}
