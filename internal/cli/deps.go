package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rackworks/rackplan/pkg/depgraph"
	"github.com/rackworks/rackplan/pkg/errors"
	"github.com/rackworks/rackplan/pkg/params"
)

// depsCommand creates the deps command for rendering the constraint graph.
func (c *CLI) depsCommand() *cobra.Command {
	var (
		output string
		format string
	)

	cmd := &cobra.Command{
		Use:   "deps [params.toml]",
		Short: "Render the constraint dependency graph",
		Long: `Render the constraint dependency graph.

The deps command shows which upstream parameters feed each derived quantity:
levels depend on top clearance, beam size, and tier heights; each tier
envelope depends on the levels and the rack cross-section; ducts and pipes
depend on their tier's envelope. Output is Graphviz DOT by default, or SVG
with -f svg.`,
		Example: `  # DOT to stdout
  rackplan deps params.toml

  # SVG to a file
  rackplan deps params.toml -f svg -o constraints.svg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := params.Load(args[0])
			if err != nil {
				return fmt.Errorf("load params %s: %w", args[0], err)
			}

			g := depgraph.New(a)

			var data []byte
			switch format {
			case "dot":
				data = []byte(depgraph.ToDOT(g))
			case "svg":
				data, err = depgraph.RenderSVG(g)
				if err != nil {
					return fmt.Errorf("render: %w", err)
				}
			default:
				return errors.New(errors.ErrCodeUnsupported,
					"invalid format: %q (must be dot or svg)", format)
			}

			if err := writeFile(data, output); err != nil {
				return fmt.Errorf("write output: %w", err)
			}

			if output != "" {
				printSuccess("Constraint graph generated")
				printFile(output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().StringVarP(&format, "format", "f", "dot", "output format: dot (default), svg")

	return cmd
}

// writeFile writes data to path, or to stdout when path is empty.
func writeFile(data []byte, path string) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
