package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/graphtint/graphtint/pkg/errors"
	"github.com/graphtint/graphtint/pkg/graph"
)

// Export format constants.
const (
	exportDOT = "dot"
	exportSVG = "svg"
)

// exportCommand creates the export command for structural graph views.
func (c *CLI) exportCommand() *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "export [graph.json]",
		Short: "Convert a graph document to DOT or SVG",
		Long: `Convert a graph document to DOT or SVG.

DOT output can be piped into any graphviz tool; SVG is rendered directly
with an embedded graphviz engine. Both are structural views for inspecting
generated graphs - they carry no coloring information.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runExport(cmd.Context(), args[0], format, output)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", exportDOT, "output format: dot, svg")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")

	return cmd
}

func (c *CLI) runExport(ctx context.Context, input, format, output string) error {
	g, err := graph.ReadFile(input)
	if err != nil {
		return fmt.Errorf("load graph %s: %w", input, err)
	}

	var data []byte
	switch strings.ToLower(format) {
	case exportDOT:
		data = []byte(graph.ToDOT(g))
	case exportSVG:
		data, err = graph.RenderSVG(ctx, g)
		if err != nil {
			return fmt.Errorf("render svg: %w", err)
		}
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: dot, svg)", format)
	}

	if output == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(output, data, 0644); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", output)
	}

	printSuccess("Exported %s", StyleHighlight.Render(format))
	printFile(output)
	return nil
}
