package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	version string
	commit  string
	date    string

	configPath string
	verbose    bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "glyph",
	Short: "glyph - Deterministic generative logo synthesis",
	Long: `glyph turns a brand name into vector logo marks.

Every mark is drawn from a seed, so the same seed always renders the same
SVG. Single marks, batches of unique candidates and a full designer
pipeline (discovery, association, sketching, refinement, quality check,
selection) are available. Results can be archived in Redis and browsed
with 'glyph hoard'.`,
	Version: version,
	// Prevent silent success when unknown flags are passed to root command
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
	FParseErrWhitelist: cobra.FParseErrWhitelist{},
}

// Execute runs the root command with a context cancelled on SIGINT or
// SIGTERM. This is called by main.main().
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Silence Cobra's default error and usage printing
	// We print formatted colored errors directly in the printer package
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
	return rootCmd.ExecuteContext(ctx)
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", v, c, d)
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "f", "glyph.yml", "Path to glyph.yml")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Log pipeline progress to stderr")
}
