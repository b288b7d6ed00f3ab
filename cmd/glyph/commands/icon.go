package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/sumitttt4/glyph/internal/icon"
	"github.com/sumitttt4/glyph/internal/printer"
	"github.com/sumitttt4/glyph/internal/seed"
	"github.com/sumitttt4/glyph/pkg/portfolio"
)

var (
	iconCategory string
	iconKeywords []string
	iconOut      string
	iconSave     bool
	iconList     bool
)

var iconCmd = &cobra.Command{
	Use:   "icon [NAME]",
	Short: "Generate an abstract category icon",
	Long: `Generate an abstract icon for a brand.

The category resolves by exact name first, then by matching the category
text and --keyword values against each category's keywords. Unmatched
briefs use the default category. The brand name picks the composition.

Examples:
  glyph icon Acme --category finance
  glyph icon Zoom --keyword fast --out zoom.svg
  glyph icon --list`,
	Args: cobra.MaximumNArgs(1),
	RunE: runIcon,
}

func init() {
	iconCmd.Flags().StringVarP(&iconCategory, "category", "c", "", "Icon category or free-form industry")
	iconCmd.Flags().StringSliceVarP(&iconKeywords, "keyword", "k", nil, "Keyword used to resolve the category")
	iconCmd.Flags().StringVarP(&iconOut, "out", "o", "", "Write the SVG to this file instead of stdout")
	iconCmd.Flags().BoolVar(&iconSave, "save", false, "Archive the icon in the portfolio")
	iconCmd.Flags().BoolVar(&iconList, "list", false, "List the icon categories and exit")
	rootCmd.AddCommand(iconCmd)
}

func runIcon(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if iconList {
		for _, name := range icon.Categories() {
			c, _ := icon.Lookup(name)
			printer.Printf("%-14s %d compositions  %s\n", c.Name, len(c.Compositions), strings.Join(c.Keywords, ", "))
		}
		return nil
	}
	if len(args) == 0 {
		return printer.Error(
			"brand name is required",
			"The brand name selects the icon composition.",
			[]string{"glyph icon Acme --category finance"},
		)
	}
	brand := args[0]

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	s, err := seed.GenerateSeed(ctx, brand, iconCategory)
	if err != nil {
		return err
	}
	v := seed.DeriveParams(s)
	category := icon.Resolve(iconCategory, iconKeywords)
	markup := icon.Generate(v, brand, iconCategory, iconKeywords, cfg.Paint)

	if err := writeOutput(cmd.OutOrStdout(), iconOut, markup); err != nil {
		return err
	}
	if iconOut != "" {
		printer.Success("Wrote %s (%s icon)\n", iconOut, category.Name)
	}

	if iconSave {
		return saveMarks(ctx, cfg, []*portfolio.Mark{{
			ID:          string(s),
			Brand:       brand,
			Category:    iconCategory,
			Algorithm:   "icon:" + category.Name,
			Description: fmt.Sprintf("Abstract %s icon", category.Name),
			SVG:         markup,
			Params:      rawJSON(v),
			Source:      portfolio.SourceIcon,
		}})
	}
	return nil
}
