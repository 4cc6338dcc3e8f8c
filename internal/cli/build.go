package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rackworks/rackplan/pkg/pipeline"
	"github.com/rackworks/rackplan/pkg/scene"
)

// buildCommand creates the build command for emitting scene geometry.
func (c *CLI) buildCommand() *cobra.Command {
	var (
		output  string
		noCache bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "build [params.toml]",
		Short: "Resolve constraints and emit scene geometry",
		Long: `Resolve constraints and emit scene geometry.

The build command loads a TOML parameter file, propagates every constraint
(clamping out-of-range values into their feasible interval), assembles the
rack frame, places ducts and pipes, and writes the result as a scene.json
file. The scene lists one primitive per frame member, duct, and pipe, with
positions and extents in meters.

Clamped values are reported but never fatal: any parameter file produces a
valid scene.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBuild(cmd.Context(), args[0], opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.scene.json)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.IncludeReport, "report", false, "embed the clamp report in the scene")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "bypass the cache and recompute")

	return cmd
}

// runBuild executes the pipeline and writes the scene file.
func (c *CLI) runBuild(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.ParamsPath = input
	opts.Logger = c.Logger

	spinner := newSpinnerWithContext(ctx, "Resolving layout...")
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Build failed")
		return fmt.Errorf("build: %w", err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	outputPath := output
	if outputPath == "" {
		base := strings.TrimSuffix(input, filepath.Ext(input))
		outputPath = base + ".scene.json"
	}

	if err := scene.WriteFile(result.Scene, outputPath); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Build complete")
	printFile(outputPath)
	printStats(result.Stats.PrimitiveCount, result.Stats.WarningCount, result.CacheInfo.SceneHit)
	if result.Stats.WarningCount > 0 {
		printNewline()
		printNextStep("Review clamps", "rackplan validate "+input)
	}

	return nil
}
