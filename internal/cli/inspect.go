package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/rackworks/rackplan/pkg/layout"
	"github.com/rackworks/rackplan/pkg/params"
	"github.com/rackworks/rackplan/pkg/units"
)

// inspectCommand creates the inspect command for examining resolved geometry.
func (c *CLI) inspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [params.toml]",
		Short: "Print the resolved levels and tier envelopes",
		Long: `Print the resolved levels and tier envelopes.

The inspect command propagates the parameter file and prints the vertical
level stack (roof, tier bottoms, total frame height) and the clear envelope
of each tier. Values are shown in meters with the source-unit equivalents
alongside.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInspect(cmd.Context(), args[0])
		},
	}
}

// runInspect propagates the aggregate and prints levels and envelopes.
func (c *CLI) runInspect(ctx context.Context, input string) error {
	a, err := params.Load(input)
	if err != nil {
		return fmt.Errorf("load params %s: %w", input, err)
	}

	rep := layout.Propagate(a)
	lv := rep.Levels

	fmt.Println(StyleTitle.Render("Levels"))
	printKeyValue("roof", fmtMeters(lv.Roof))
	printKeyValue("total height", fmtMeters(lv.TotalHeight))
	printKeyValue("elevations", fmt.Sprintf("%d", len(lv.Elevations)))
	for i, b := range lv.TierBottoms {
		printKeyValue(fmt.Sprintf("tier[%d] btm", i+1), fmtMeters(b))
	}
	printNewline()

	fmt.Println(StyleTitle.Render("Envelopes"))
	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(StyleDim).
		Headers("TIER", "BOTTOM", "TOP", "CLEAR", "DEPTH CLEAR")
	for _, env := range rep.Envelopes {
		tbl.Row(
			fmt.Sprintf("%d", env.Tier),
			fmtMeters(env.BottomY),
			fmtMeters(env.TopY),
			fmtMeters(env.ClearHeight),
			fmtMeters(env.DepthClearance),
		)
	}
	fmt.Println(tbl.Render())

	if !rep.Clean() {
		printNewline()
		printDetail("%d clamped, %d suppressed", len(rep.Warnings), len(rep.Suppressed))
	}
	return nil
}

// fmtMeters formats a length in meters with the feet equivalent alongside.
func fmtMeters(m float64) string {
	return fmt.Sprintf("%.3fm (%.2fft)", m, units.UnitsToFeet(m))
}
