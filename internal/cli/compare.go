package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/graphtint/graphtint/pkg/coloring"
	"github.com/graphtint/graphtint/pkg/graph"
	"github.com/graphtint/graphtint/pkg/pipeline"
)

// compareResult is one strategy's outcome on the shared graph: the label,
// the color count, and the elapsed wall time of the run.
type compareResult struct {
	Strategy string
	Colors   int
	Steps    int
	Elapsed  time.Duration
	curve    []float64
}

// compareCommand creates the compare command for strategy comparisons.
func (c *CLI) compareCommand() *cobra.Command {
	var (
		noCache   bool
		showChart bool
	)
	opts := c.Config.Options()

	cmd := &cobra.Command{
		Use:   "compare [graph.json]",
		Short: "Run every strategy on the same graph and tabulate results",
		Long: `Run every strategy on the same graph and tabulate results.

All strategies see the identical graph (same generation parameters or the
same input file), so differences in the color count come from processing
order alone. Use --chart to overlay the per-step color curves.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := ""
			if len(args) == 1 {
				input = args[0]
			}
			return c.runCompare(cmd.Context(), input, opts, noCache, showChart)
		},
	}

	cmd.Flags().StringVarP(&opts.Kind, "kind", "k", opts.Kind, "graph kind: cycle, random, bipartite, complete, path, star, empty")
	cmd.Flags().IntVarP(&opts.N, "vertices", "n", opts.N, "number of vertices")
	cmd.Flags().Float64Var(&opts.P, "p", opts.P, "edge probability for random graphs")
	cmd.Flags().Int64Var(&opts.Seed, "seed", opts.Seed, "random seed for reproducible graphs")
	cmd.Flags().StringVarP(&opts.Mode, "mode", "m", opts.Mode, "what to color: vertex, edge")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&showChart, "chart", false, "overlay per-step color curves")

	return cmd
}

func (c *CLI) runCompare(ctx context.Context, input string, opts pipeline.Options, noCache, showChart bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()
	opts.Logger = c.Logger

	var g *graph.Graph
	if input != "" {
		g, err = graph.ReadFile(input)
		if err != nil {
			return fmt.Errorf("load graph %s: %w", input, err)
		}
	} else {
		g, err = runner.Generate(ctx, opts)
		if err != nil {
			return err
		}
	}

	results, err := compareStrategies(ctx, runner, g, opts)
	if err != nil {
		return err
	}

	best := results[0].Colors
	for _, r := range results[1:] {
		if r.Colors < best {
			best = r.Colors
		}
	}

	rows := make([][]string, 0, len(results))
	for _, r := range results {
		rows = append(rows, []string{
			r.Strategy,
			fmt.Sprintf("%d", r.Colors),
			fmt.Sprintf("%d", r.Steps),
			fmt.Sprintf("%.4fs", r.Elapsed.Seconds()),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Strategy", "Colors", "Steps", "Time").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 1 && rows[row][1] == fmt.Sprintf("%d", best) {
				return lipgloss.NewStyle().Foreground(colorGreen)
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	printStats(g.VertexCount(), g.EdgeCount(), false)
	fmt.Println(t.Render())

	if showChart && len(results[0].curve) > 1 {
		curves := make([][]float64, 0, len(results))
		names := make([]string, 0, len(results))
		for _, r := range results {
			curves = append(curves, r.curve)
			names = append(names, r.Strategy)
		}
		chart := asciigraph.PlotMany(curves,
			asciigraph.Height(10),
			asciigraph.Caption("colors used per step ("+strings.Join(names, ", ")+")"))
		fmt.Println(chart)
	}

	return nil
}

// compareStrategies colors g once per strategy and collects one timed result
// record each. Every run sees the same graph and mode; only the strategy
// varies.
func compareStrategies(ctx context.Context, runner *pipeline.Runner, g *graph.Graph, opts pipeline.Options) ([]compareResult, error) {
	strategies := []string{
		string(coloring.StrategyFirstFit),
		string(coloring.StrategyDegree),
		string(coloring.StrategySaturation),
	}

	results := make([]compareResult, 0, len(strategies))
	for _, strategy := range strategies {
		runOpts := opts
		runOpts.Strategy = strategy

		start := time.Now()
		trace, err := runner.ColorGraph(ctx, g, runOpts)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", strategy, err)
		}
		elapsed := time.Since(start)

		count, _ := coloring.Summarize(trace)
		curve := trace.ColorCurve()
		data := make([]float64, len(curve))
		for i, v := range curve {
			data[i] = float64(v)
		}

		results = append(results, compareResult{
			Strategy: strategy,
			Colors:   count,
			Steps:    len(trace),
			Elapsed:  elapsed,
			curve:    data,
		})
	}
	return results, nil
}
