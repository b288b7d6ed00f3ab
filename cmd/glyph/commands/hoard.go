package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/sumitttt4/glyph/internal/filter"
	"github.com/sumitttt4/glyph/internal/hoard"
	"github.com/sumitttt4/glyph/internal/printer"
	"github.com/sumitttt4/glyph/internal/resolver"
	"github.com/sumitttt4/glyph/internal/timespec"
	"github.com/sumitttt4/glyph/pkg/portfolio"
)

var (
	hoardOutputFormat string
	hoardSince        string
	hoardUntil        string
	hoardBrand        string
	hoardAlgorithm    string
	hoardSource       string
	hoardMinScore     float64
	hoardSVG          bool
	hoardDelete       bool
)

var hoardCmd = &cobra.Command{
	Use:   "hoard [MARK_ID]",
	Short: "Browse archived marks",
	Long: `Browse the marks archived with --save.

List Mode (no MARK_ID):
  Displays marks matching filters as a table or JSONL stream.

Get Mode (with MARK_ID):
  Displays a single mark as pretty-printed JSON, or its SVG with --svg.
  Supports short IDs (at least 6 characters of the seed).

Filters (list mode only):
  --brand      - Brand name (case-insensitive)
  --since      - Marks saved after this time (duration, days or RFC3339)
  --until      - Marks saved before this time
  --algorithm  - Algorithm name (glob pattern: "Premium*", "icon:*")
  --source     - generate, batch, design or icon
  --min-score  - Lowest quality score

Examples:
  glyph hoard --brand acme --since 7d
  glyph hoard --output=jsonl | jq -r '.algorithm'
  glyph hoard 3fa9c2 --svg > mark.svg
  glyph hoard 3fa9c2 --delete`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHoard,
}

func init() {
	hoardCmd.Flags().StringVarP(&hoardOutputFormat, "output", "o", "default", "Output format: default or jsonl (ignored in get mode)")
	hoardCmd.Flags().StringVar(&hoardSince, "since", "", "Show marks after time (duration, days or RFC3339)")
	hoardCmd.Flags().StringVar(&hoardUntil, "until", "", "Show marks before time (duration, days or RFC3339)")
	hoardCmd.Flags().StringVar(&hoardBrand, "brand", "", "Filter by brand")
	hoardCmd.Flags().StringVar(&hoardAlgorithm, "algorithm", "", "Filter by algorithm (glob pattern)")
	hoardCmd.Flags().StringVar(&hoardSource, "source", "", "Filter by source command")
	hoardCmd.Flags().Float64Var(&hoardMinScore, "min-score", 0, "Filter by lowest quality score")
	hoardCmd.Flags().BoolVar(&hoardSVG, "svg", false, "Print only the SVG (get mode)")
	hoardCmd.Flags().BoolVar(&hoardDelete, "delete", false, "Delete the mark (get mode)")
	rootCmd.AddCommand(hoardCmd)
}

func runHoard(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	isGetMode := len(args) > 0

	var outputFormat hoard.OutputFormat
	var criteria *filter.Criteria
	if !isGetMode {
		var err error
		outputFormat, err = hoard.ParseOutputFormat(hoardOutputFormat)
		if err != nil {
			return printer.Error(
				"invalid output format",
				fmt.Sprintf("Unknown format: %s", hoardOutputFormat),
				[]string{"Valid formats: default, jsonl"},
			)
		}
		criteria, err = markCriteria(hoardSince, hoardUntil, hoardBrand, hoardAlgorithm, hoardSource, hoardMinScore)
		if err != nil {
			return err
		}
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

	if !isGetMode {
		if err := hoard.ListMarks(ctx, client, outputFormat, criteria, cmd.OutOrStdout()); err != nil {
			return fmt.Errorf("failed to list marks: %w", err)
		}
		return nil
	}

	idArg := args[0]
	fullID, err := resolver.ResolveMarkID(ctx, client, idArg)
	if err != nil {
		if resolver.IsNotFoundError(err) {
			return printer.Error(
				fmt.Sprintf("mark with ID '%s' not found", idArg),
				fmt.Sprintf("No mark in workspace '%s' has that ID.", client.Workspace()),
				[]string{"List all marks:\n  glyph hoard"},
			)
		}
		if ambigErr, ok := err.(*resolver.AmbiguousError); ok {
			fmt.Fprintln(cmd.ErrOrStderr(), resolver.FormatAmbiguousError(ambigErr))
			return fmt.Errorf("ambiguous short ID")
		}
		return fmt.Errorf("failed to resolve mark ID: %w", err)
	}

	if hoardDelete {
		if err := client.DeleteMark(ctx, fullID); err != nil {
			if portfolio.IsNotFound(err) {
				return printer.Error(
					fmt.Sprintf("mark with ID '%s' not found", fullID),
					"The mark was resolved but deleted before it could be removed.",
					nil,
				)
			}
			return fmt.Errorf("failed to delete mark: %w", err)
		}
		printer.Success("Deleted mark %s\n", fullID)
		return nil
	}

	if err := hoard.GetMark(ctx, client, fullID, hoardSVG, cmd.OutOrStdout()); err != nil {
		if hoard.IsNotFound(err) {
			return printer.Error(
				fmt.Sprintf("mark with ID '%s' not found", fullID),
				"The mark was resolved but could not be fetched.",
				[]string{"This might indicate a race condition. Try again."},
			)
		}
		return fmt.Errorf("failed to get mark: %w", err)
	}
	return nil
}

// markCriteria validates list and watch filter flags.
func markCriteria(since, until, brand, algorithmGlob, source string, minScore float64) (*filter.Criteria, error) {
	sinceMS, untilMS, err := timespec.ParseRange(since, until)
	if err != nil {
		return nil, printer.Error(
			"invalid time filter",
			err.Error(),
			[]string{"Use duration format like '1h30m', days like '7d' or RFC3339 like '2025-10-29T13:00:00Z'"},
		)
	}

	src := portfolio.Source(source)
	if source != "" {
		if err := src.Validate(); err != nil {
			return nil, printer.Error(
				"invalid source filter",
				err.Error(),
				[]string{"Valid sources: generate, batch, design, icon"},
			)
		}
	}

	return &filter.Criteria{
		SinceTimestampMs: sinceMS,
		UntilTimestampMs: untilMS,
		AlgorithmGlob:    algorithmGlob,
		Brand:            brand,
		Source:           src,
		MinScore:         minScore,
	}, nil
}
