package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rackworks/rackplan/pkg/layout"
	"github.com/rackworks/rackplan/pkg/params"
)

// validateCommand creates the validate command for reporting clamps.
func (c *CLI) validateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [params.toml]",
		Short: "Resolve constraints and report every clamp",
		Long: `Resolve constraints and report every clamp without writing output.

The validate command runs a full propagation pass and prints each value that
had to be clamped into its feasible interval, each degenerate placement that
was flagged, and each element that was suppressed entirely. A clean file
prints a single success line.

Propagation never fails: validate reports what the solver changed, not
whether the file is acceptable.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runValidate(cmd.Context(), args[0])
		},
	}
}

// runValidate propagates the aggregate and prints the report.
func (c *CLI) runValidate(ctx context.Context, input string) error {
	logger := loggerFromContext(ctx)

	a, err := params.Load(input)
	if err != nil {
		return fmt.Errorf("load params %s: %w", input, err)
	}

	prog := newProgress(logger)
	rep := layout.Propagate(a)
	prog.done(fmt.Sprintf("Resolved %d tiers", len(a.Tiers)))

	if rep.Clean() {
		printSuccess("All parameters within range")
		return nil
	}

	for _, w := range rep.Warnings {
		printWarning("%s", w.String())
	}
	for _, s := range rep.Suppressed {
		printInfo("%s", s.String())
	}

	printNewline()
	printDetail("%d clamped, %d suppressed", len(rep.Warnings), len(rep.Suppressed))
	return nil
}
