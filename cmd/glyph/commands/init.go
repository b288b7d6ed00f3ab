package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/sumitttt4/glyph/internal/scaffold"
)

var (
	forceInit bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new glyph project",
	Long: `Initialize a glyph project in the current directory.

Creates:
  • glyph.yml - Project configuration file
  • brief.yml - Example brand brief for 'glyph design --brief'
  • marks/    - Output directory for rendered SVGs

Use --force to reinitialize an existing project (WARNING: overwrites existing configuration).`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	// Note: Cannot use -f shorthand because it conflicts with global --config flag
	initCmd.Flags().BoolVar(&forceInit, "force", false, "Force reinitialization (overwrites glyph.yml and brief.yml)")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	dir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to determine working directory: %w", err)
	}

	if err := scaffold.Initialize(dir, forceInit, cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("initialization failed: %w", err)
	}

	scaffold.PrintSuccess(cmd.OutOrStdout())
	return nil
}
