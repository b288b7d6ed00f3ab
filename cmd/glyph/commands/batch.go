package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/sumitttt4/glyph/internal/batch"
	"github.com/sumitttt4/glyph/internal/printer"
	"github.com/sumitttt4/glyph/pkg/portfolio"
)

var (
	batchCategory string
	batchCount    int
	batchOrder    string
	batchOutDir   string
	batchSave     bool
	batchJSON     bool
)

var batchCmd = &cobra.Command{
	Use:   "batch NAME",
	Short: "Generate a batch of unique marks",
	Long: `Generate several unique marks for one brand.

Each candidate gets its own salted seed. At least batch.min_candidates
candidates are drawn (15 by default) and trimmed to --count, either in
generation order or by quality score.

Examples:
  glyph batch Acme --category finance --count 5
  glyph batch Acme --count 8 --order score --out-dir marks/
  glyph batch Acme --json | jq '.[].algorithm'`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().StringVarP(&batchCategory, "category", "c", "", "Brand category mixed into each seed")
	batchCmd.Flags().IntVarP(&batchCount, "count", "n", 5, "Number of marks to return")
	batchCmd.Flags().StringVar(&batchOrder, "order", "", "Trim order: generated or score (default from glyph.yml)")
	batchCmd.Flags().StringVar(&batchOutDir, "out-dir", "", "Write each SVG into this directory")
	batchCmd.Flags().BoolVar(&batchSave, "save", false, "Archive every mark in the portfolio")
	batchCmd.Flags().BoolVar(&batchJSON, "json", false, "Print the results as a JSON array")
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	brand := args[0]

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	opts := cfg.BatchOptions()
	if batchOrder != "" {
		order, err := batch.ParseOrder(batchOrder)
		if err != nil {
			return printer.Error(
				"invalid batch order",
				err.Error(),
				[]string{"Valid orders: generated, score"},
			)
		}
		opts.Order = order
	}

	results, err := batch.New(opts, newLogger()).Generate(ctx, brand, batchCategory, batchCount)
	if err != nil {
		return err
	}

	switch {
	case batchJSON:
		if err := writeJSON(cmd.OutOrStdout(), results); err != nil {
			return err
		}
	case batchOutDir != "":
		for i, r := range results {
			path := filepath.Join(batchOutDir, fileName(brand, fmt.Sprintf("%02d", i+1), r.Algorithm))
			if err := writeOutput(cmd.OutOrStdout(), path, r.SVG); err != nil {
				return err
			}
		}
		printer.Success("Wrote %d %s to %s\n", len(results), plural(len(results), "mark", "marks"), batchOutDir)
	default:
		printBatchTable(brand, results)
	}

	if batchSave {
		marks := make([]*portfolio.Mark, len(results))
		for i, r := range results {
			marks[i] = resultMark(brand, batchCategory, r, portfolio.SourceBatch)
		}
		return saveMarks(ctx, cfg, marks)
	}
	return nil
}

func printBatchTable(brand string, results []batch.Result) {
	printer.Heading("Batch for '%s':", brand)
	printer.Printf("\n%-4s %-12s %-28s %-5s %s\n", "#", "ID", "ALGORITHM", "SCORE", "DESCRIPTION")
	for i, r := range results {
		printer.Printf("%-4d %-12s %-28s %-5d %s\n", i+1, shortID(string(r.ID)), r.Algorithm, r.QualityScore, r.Description)
	}
	printer.Printf("\nUse --out-dir to write the SVGs or --json for the full results.\n")
}
