package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/graphtint/graphtint/pkg/coloring"
	"github.com/graphtint/graphtint/pkg/errors"
	"github.com/graphtint/graphtint/pkg/graph"
	"github.com/graphtint/graphtint/pkg/pipeline"
)

// runDocument is the JSON written by `color --output`.
type runDocument struct {
	Graph      graph.Document    `json:"graph"`
	Strategy   string            `json:"strategy"`
	Mode       string            `json:"mode"`
	ColorCount int               `json:"color_count"`
	Final      coloring.Coloring `json:"final"`
	Trace      coloring.Trace    `json:"trace"`
}

// colorCommand creates the color command, the main entry point of the CLI.
func (c *CLI) colorCommand() *cobra.Command {
	var (
		output      string
		noCache     bool
		showSteps   bool
		showChart   bool
		interactive bool
	)
	opts := c.Config.Options()

	cmd := &cobra.Command{
		Use:   "color [graph.json]",
		Short: "Generate a graph and color it with a greedy strategy",
		Long: `Generate a graph and color it with a greedy strategy.

Without an argument, a graph is built from the --kind, -n, --p, and --seed
flags. With a graph.json argument (produced by 'generate' or by hand), the
file is colored as-is and the generation flags are ignored.

Vertices are processed in a strategy-specific order and each one receives the
smallest color not used by its already-colored neighbors. The full step trace
is recorded; use --steps to watch it, --chart for a terminal chart of colors
used per step, or --output to save the whole run as JSON.

Results are cached locally for faster repeated runs.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if interactive {
				if err := pickOptions(&opts); err != nil {
					return err
				}
			}
			input := ""
			if len(args) == 1 {
				input = args[0]
			}
			return c.runColor(cmd.Context(), input, opts, colorOutput{
				path:      output,
				noCache:   noCache,
				showSteps: showSteps,
				showChart: showChart,
			})
		},
	}

	cmd.Flags().StringVarP(&opts.Kind, "kind", "k", opts.Kind, "graph kind: cycle, random, bipartite, complete, path, star, empty")
	cmd.Flags().IntVarP(&opts.N, "vertices", "n", opts.N, "number of vertices")
	cmd.Flags().Float64Var(&opts.P, "p", opts.P, "edge probability for random graphs")
	cmd.Flags().Int64Var(&opts.Seed, "seed", opts.Seed, "random seed for reproducible graphs")
	cmd.Flags().StringVarP(&opts.Strategy, "strategy", "s", opts.Strategy, "coloring strategy: firstfit, degree, saturation")
	cmd.Flags().StringVarP(&opts.Mode, "mode", "m", opts.Mode, "what to color: vertex, edge")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "recompute even if cached")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the full run (graph, trace, final) as JSON")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&showSteps, "steps", false, "print every assignment step")
	cmd.Flags().BoolVar(&showChart, "chart", false, "chart colors used per step")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "pick kind and strategy interactively")

	return cmd
}

type colorOutput struct {
	path      string
	noCache   bool
	showSteps bool
	showChart bool
}

// runColor executes the color command against generated or loaded input.
func (c *CLI) runColor(ctx context.Context, input string, opts pipeline.Options, out colorOutput) error {
	runner, err := c.newRunner(out.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()
	opts.Logger = c.Logger

	spinner := newSpinnerWithContext(ctx, "Coloring...")
	spinner.Start()

	var (
		g     *graph.Graph
		trace coloring.Trace
		info  pipeline.CacheInfo
	)
	if input != "" {
		g, err = graph.ReadFile(input)
		if err != nil {
			spinner.StopWithError("Coloring failed")
			return fmt.Errorf("load graph %s: %w", input, err)
		}
		var hit bool
		trace, hit, err = runner.ColorWithCacheInfo(ctx, g, opts)
		info.TraceHit = hit
	} else {
		var result *pipeline.Result
		result, err = runner.Execute(ctx, opts)
		if err == nil {
			g = result.Graph
			trace = result.Trace
			info = result.CacheInfo
		}
	}
	if err != nil {
		if spinner.Cancelled() {
			spinner.Stop()
			printWarning("Interrupted")
		} else {
			spinner.StopWithError("Coloring failed")
		}
		return err
	}
	spinner.Stop()

	count, final := coloring.Summarize(trace)
	unit := "vertices"
	if opts.Mode == pipeline.ModeEdge {
		unit = "edges"
	}
	printSuccess("Colored %s %s with %s colors using %s",
		StyleNumber.Render(fmt.Sprintf("%d", len(trace))), unit,
		StyleNumber.Render(fmt.Sprintf("%d", count)),
		StyleHighlight.Render(opts.Strategy))
	printStats(g.VertexCount(), g.EdgeCount(), info.GraphHit && info.TraceHit)

	if out.showSteps {
		printNewline()
		printSteps(trace)
	}
	if out.showChart {
		printNewline()
		printColorCurve(trace)
	}

	printNewline()
	printClasses(final)

	if out.path != "" {
		doc := runDocument{
			Graph:      graph.FromGraph(g),
			Strategy:   opts.Strategy,
			Mode:       opts.Mode,
			ColorCount: count,
			Final:      final,
			Trace:      trace,
		}
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return fmt.Errorf("encode run: %w", err)
		}
		if err := os.WriteFile(out.path, data, 0644); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", out.path)
		}
		printFile(out.path)
	} else if input == "" {
		printNewline()
		printNextStep("Save the run", fmt.Sprintf("graphtint color -k %s -n %d -s %s -o run.json", opts.Kind, opts.N, opts.Strategy))
	}

	return nil
}

// printSteps prints one line per assignment, derived from consecutive snapshots.
func printSteps(trace coloring.Trace) {
	prev := coloring.Coloring{}
	for i, snapshot := range trace {
		id, color := newAssignment(prev, snapshot)
		if id == "" {
			// Every snapshot adds exactly one key; an empty diff means the
			// trace came from somewhere that broke that invariant.
			printDetail("step %-4d (no new assignment)", i+1)
			prev = snapshot
			continue
		}
		printDetail("step %-4d %s %s color %d", i+1, id, iconArrow, color)
		prev = snapshot
	}
}

// newAssignment finds the key added between two consecutive snapshots.
func newAssignment(prev, cur coloring.Coloring) (string, int) {
	for id, color := range cur {
		if _, ok := prev[id]; !ok {
			return id, color
		}
	}
	return "", 0
}

// printColorCurve charts the number of colors in use after each step.
func printColorCurve(trace coloring.Trace) {
	curve := trace.ColorCurve()
	if len(curve) < 2 {
		return
	}
	data := make([]float64, len(curve))
	for i, v := range curve {
		data[i] = float64(v)
	}
	chart := asciigraph.Plot(data,
		asciigraph.Height(8),
		asciigraph.Width(min(len(data)*2, 60)),
		asciigraph.Caption("colors used per step"))
	fmt.Println(chart)
}

// printClasses lists the members of each color class.
func printClasses(final coloring.Coloring) {
	if len(final) == 0 {
		printDetail("nothing to color")
		return
	}

	classes := map[int][]string{}
	maxColor := 0
	for id, color := range final {
		classes[color] = append(classes[color], id)
		if color > maxColor {
			maxColor = color
		}
	}
	for color := 0; color <= maxColor; color++ {
		members := classes[color]
		sort.Strings(members)
		printKeyValue(fmt.Sprintf("color %d", color), strings.Join(members, " "))
	}
}
