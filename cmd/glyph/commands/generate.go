package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/sumitttt4/glyph/internal/algorithm"
	"github.com/sumitttt4/glyph/internal/batch"
	"github.com/sumitttt4/glyph/internal/printer"
	"github.com/sumitttt4/glyph/pkg/portfolio"
)

var (
	generateCategory  string
	generateAlgorithm string
	generateOut       string
	generateSave      bool
	generateJSON      bool
)

var generateCmd = &cobra.Command{
	Use:   "generate NAME",
	Short: "Generate one logo mark",
	Long: `Generate a single mark for a brand from a fresh seed.

The seed picks the algorithm unless --algorithm names one. The SVG is
written to stdout, or to --out.

Examples:
  glyph generate Acme
  glyph generate Acme --category finance --algorithm "Premium Shield" --out acme.svg
  glyph generate Acme --json --save`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&generateCategory, "category", "c", "", "Brand category mixed into the seed")
	generateCmd.Flags().StringVarP(&generateAlgorithm, "algorithm", "a", "", "Library entry to draw with (see 'glyph algorithms')")
	generateCmd.Flags().StringVarP(&generateOut, "out", "o", "", "Write the SVG to this file instead of stdout")
	generateCmd.Flags().BoolVar(&generateSave, "save", false, "Archive the mark in the portfolio")
	generateCmd.Flags().BoolVar(&generateJSON, "json", false, "Print the full result as JSON")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	brand := args[0]

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	engine := batch.New(cfg.BatchOptions(), newLogger())
	result, err := engine.One(ctx, brand, generateCategory, generateAlgorithm)
	if err != nil {
		if generateAlgorithm != "" && isUnknownAlgorithm(err) {
			return printer.Error(
				fmt.Sprintf("unknown algorithm '%s'", generateAlgorithm),
				"No library entry has that name.",
				[]string{"List available algorithms:\n  glyph algorithms"},
			)
		}
		return err
	}

	if generateJSON {
		if err := writeJSON(cmd.OutOrStdout(), result); err != nil {
			return err
		}
	} else if err := writeOutput(cmd.OutOrStdout(), generateOut, result.SVG); err != nil {
		return err
	}

	if generateOut != "" {
		printer.Success("Wrote %s (%s, id %s)\n", generateOut, result.Algorithm, shortID(string(result.ID)))
	}

	if generateSave {
		return saveMarks(ctx, cfg, []*portfolio.Mark{resultMark(brand, generateCategory, result, portfolio.SourceGenerate)})
	}
	return nil
}

// resultMark converts an engine result into an archive record.
func resultMark(brand, category string, r batch.Result, source portfolio.Source) *portfolio.Mark {
	return &portfolio.Mark{
		ID:           string(r.ID),
		Brand:        brand,
		Category:     category,
		Algorithm:    r.Algorithm,
		Description:  r.Description,
		SVG:          r.SVG,
		Params:       rawJSON(r.Params),
		QualityScore: float64(r.QualityScore),
		Source:       source,
	}
}

func isUnknownAlgorithm(err error) bool {
	return errors.Is(err, algorithm.ErrUnknownAlgorithm)
}
