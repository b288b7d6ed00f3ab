package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/sumitttt4/glyph/internal/printer"
	"github.com/sumitttt4/glyph/internal/watch"
)

var (
	watchOutputFormat string
	watchBrand        string
	watchAlgorithm    string
	watchSource       string
	watchFor          string
	watchTimeout      time.Duration
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Stream newly archived marks",
	Long: `Stream marks as they are saved to the archive.

Output Formats:
  default - One line per mark with a timestamp
  json    - Line-delimited JSON for programmatic processing

With --for, waits until the given full mark ID exists and prints it.

Examples:
  glyph watch
  glyph watch --brand acme --output=json > marks.jsonl
  glyph watch --for 3fa9c2... --timeout 30s`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVarP(&watchOutputFormat, "output", "o", "default", "Output format (default or json)")
	watchCmd.Flags().StringVar(&watchBrand, "brand", "", "Only marks for this brand")
	watchCmd.Flags().StringVar(&watchAlgorithm, "algorithm", "", "Only marks whose algorithm matches this glob")
	watchCmd.Flags().StringVar(&watchSource, "source", "", "Only marks from this source command")
	watchCmd.Flags().StringVar(&watchFor, "for", "", "Wait for a single mark ID and exit")
	watchCmd.Flags().DurationVar(&watchTimeout, "timeout", time.Minute, "How long --for waits")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	outputFormat, err := watch.ParseOutputFormat(watchOutputFormat)
	if err != nil {
		return printer.Error(
			"invalid output format",
			fmt.Sprintf("Unknown format: %s", watchOutputFormat),
			[]string{"Valid formats: default, json"},
		)
	}
	criteria, err := markCriteria("", "", watchBrand, watchAlgorithm, watchSource, 0)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	client, err := openPortfolio(ctx, cfg)
	if err != nil {
		return err
	}
	defer client.Close()

	if watchFor != "" {
		mark, err := watch.PollForMark(ctx, client, watchFor, watchTimeout)
		if err != nil {
			return printer.Error(
				fmt.Sprintf("mark '%s' did not appear", shortID(watchFor)),
				err.Error(),
				[]string{"Increase --timeout or check the workspace in glyph.yml."},
			)
		}
		return watch.WriteEvent(cmd.OutOrStdout(), outputFormat, mark)
	}

	return watch.StreamMarks(ctx, client, outputFormat, criteria, cmd.OutOrStdout())
}
