package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rackworks/rackplan/pkg/params"
)

// initCommand creates the init command for writing a default parameter file.
func (c *CLI) initCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [params.toml]",
		Short: "Write a default parameter file",
		Long: `Write a default parameter file.

The init command writes a parameter file describing a 10ft corridor with a
four-bay, two-tier rack. Edit the file directly or with 'rackplan edit',
then run 'rackplan build' to emit the scene.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if !force {
				if _, err := os.Stat(path); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", path)
				}
			}

			if err := params.Save(params.Default(), path); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}

			printSuccess("Parameter file created")
			printFile(path)
			printNewline()
			printNextStep("Build", "rackplan build "+path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")

	return cmd
}
