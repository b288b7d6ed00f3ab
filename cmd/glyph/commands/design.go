package commands

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/sumitttt4/glyph/internal/config"
	"github.com/sumitttt4/glyph/internal/designer"
	"github.com/sumitttt4/glyph/internal/printer"
	"github.com/sumitttt4/glyph/pkg/portfolio"
)

var (
	designBrief            string
	designCategory         string
	designDescription      string
	designAudience         string
	designKeywords         []string
	designPersonality      []string
	designPreferLettermark bool
	designPreferAbstract   bool
	designOutDir           string
	designSave             bool
	designJSON             bool
)

var designCmd = &cobra.Command{
	Use:   "design [NAME]",
	Short: "Run the designer pipeline for a brand brief",
	Long: `Run the full designer pipeline on a brand brief.

Stages:
  discovery    infers industry, audience, personality and visual direction
  association  expands the brief into ranked concept words and metaphors
  sketching    proposes 20-30 candidate concepts
  refinement   keeps the best 5, at most 2 of any concept type
  quality      renders and scores every refined concept
  selection    returns up to 4 variants and one recommendation

The brief comes from flags, from a YAML file (--brief), or both; flags
override the file.

Examples:
  glyph design Nexus --category technology --keyword connect
  glyph design --brief brief.yml --out-dir marks/
  glyph design Acme --personality bold,friendly --prefer-lettermark --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDesign,
}

func init() {
	designCmd.Flags().StringVarP(&designBrief, "brief", "b", "", "YAML brand brief (see 'glyph init')")
	designCmd.Flags().StringVarP(&designCategory, "category", "c", "", "Brand category or industry")
	designCmd.Flags().StringVarP(&designDescription, "description", "d", "", "What the brand does")
	designCmd.Flags().StringVar(&designAudience, "audience", "", "Who the brand serves")
	designCmd.Flags().StringSliceVarP(&designKeywords, "keyword", "k", nil, "Keyword (repeatable or comma-separated)")
	designCmd.Flags().StringSliceVarP(&designPersonality, "personality", "p", nil, fmt.Sprintf("Personality trait: %s", personalityNames()))
	designCmd.Flags().BoolVar(&designPreferLettermark, "prefer-lettermark", false, "Favour lettermark concepts")
	designCmd.Flags().BoolVar(&designPreferAbstract, "prefer-abstract", false, "Favour abstract concepts")
	designCmd.Flags().StringVar(&designOutDir, "out-dir", "", "Write each variant SVG into this directory")
	designCmd.Flags().BoolVar(&designSave, "save", false, "Archive every variant in the portfolio")
	designCmd.Flags().BoolVar(&designJSON, "json", false, "Print the full pipeline output as JSON")
	rootCmd.AddCommand(designCmd)
}

func runDesign(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	in, err := designInput(cmd, args)
	if err != nil {
		return err
	}

	out, err := designer.New(cfg.DesignerOptions(), newLogger()).Run(ctx, in)
	if err != nil {
		if errors.Is(err, designer.ErrEmptyName) {
			return printer.Error(
				"brand name is required",
				"Pass NAME as an argument or set 'name' in the brief.",
				[]string{"glyph design Acme", "glyph design --brief brief.yml"},
			)
		}
		return fmt.Errorf("design failed: %w", err)
	}

	switch {
	case designJSON:
		if err := writeJSON(cmd.OutOrStdout(), out); err != nil {
			return err
		}
	default:
		printDesign(out, cfg.Designer.PassThreshold)
	}

	if designOutDir != "" {
		for i, v := range out.Variants {
			path := filepath.Join(designOutDir, fileName(in.Name, fmt.Sprintf("%d", i+1), variantAlgorithm(v.Concept)))
			if err := writeOutput(cmd.OutOrStdout(), path, v.SVG); err != nil {
				return err
			}
		}
		printer.Success("Wrote %d %s to %s\n", len(out.Variants), plural(len(out.Variants), "variant", "variants"), designOutDir)
	}

	if designSave {
		marks := make([]*portfolio.Mark, len(out.Variants))
		for i, v := range out.Variants {
			marks[i] = variantMark(out.Discovery, v)
		}
		return saveMarks(ctx, cfg, marks)
	}
	return nil
}

// designInput merges the optional brief file with command-line flags.
// Flags that were set win over the file.
func designInput(cmd *cobra.Command, args []string) (designer.BrandInput, error) {
	var in designer.BrandInput
	if designBrief != "" {
		brief, err := config.LoadBrief(designBrief)
		if err != nil {
			return in, printer.Error(
				"invalid brief",
				err.Error(),
				[]string{"Create an example brief:\n  glyph init"},
			)
		}
		in = *brief
	}

	if len(args) > 0 {
		in.Name = args[0]
	}
	flags := cmd.Flags()
	if flags.Changed("category") {
		in.Category = designCategory
	}
	if flags.Changed("description") {
		in.Description = designDescription
	}
	if flags.Changed("audience") {
		in.Audience = designAudience
	}
	if flags.Changed("keyword") {
		in.Keywords = designKeywords
	}
	if flags.Changed("personality") {
		traits, err := parsePersonalities(designPersonality)
		if err != nil {
			return in, err
		}
		in.Personality = traits
	}
	if flags.Changed("prefer-lettermark") {
		in.PreferLettermark = designPreferLettermark
	}
	if flags.Changed("prefer-abstract") {
		in.PreferAbstract = designPreferAbstract
	}
	return in, nil
}

func parsePersonalities(names []string) ([]designer.Personality, error) {
	traits := make([]designer.Personality, 0, len(names))
	for _, name := range names {
		p, ok := designer.ParsePersonality(strings.ToLower(strings.TrimSpace(name)))
		if !ok {
			return nil, printer.Error(
				fmt.Sprintf("unknown personality '%s'", name),
				"Personality traits select matching library styles.",
				[]string{fmt.Sprintf("Valid traits: %s", personalityNames())},
			)
		}
		traits = append(traits, p)
	}
	return traits, nil
}

func personalityNames() string {
	names := make([]string, len(designer.Personalities))
	for i, p := range designer.Personalities {
		names[i] = string(p)
	}
	return strings.Join(names, ", ")
}

// variantAlgorithm names what drew a concept: a library entry or an icon
// category.
func variantAlgorithm(c designer.SketchConcept) string {
	if c.Icon != "" {
		return "icon:" + c.Icon
	}
	return c.Algorithm
}

func variantMark(d designer.Discovery, v designer.RefinedLogo) *portfolio.Mark {
	return &portfolio.Mark{
		ID:           string(designer.ConceptSeed(v.Concept, d)),
		Brand:        d.Input.Name,
		Category:     d.Industry,
		Algorithm:    variantAlgorithm(v.Concept),
		Description:  v.Concept.Approach,
		SVG:          v.SVG,
		Params:       rawJSON(v.Params),
		QualityScore: v.Quality.Overall,
		Source:       portfolio.SourceDesign,
	}
}

func printDesign(out designer.Output, threshold float64) {
	d := out.Discovery
	printer.Heading("Discovery for '%s'", d.Input.Name)
	printer.Printf("  Industry:     %s\n", d.Industry)
	printer.Printf("  Does:         %s\n", strings.Join(d.WhatTheyDo, ", "))
	printer.Printf("  Serves:       %s\n", strings.Join(d.WhoTheyServe, ", "))
	printer.Printf("  Personality:  %s\n", joinPersonalities(d.Personality))
	printer.Printf("  Tone:         %s\n", d.EmotionalTone)
	printer.Printf("  Direction:    %s\n", d.VisualDirection)

	words := make([]string, 0, len(out.Associations))
	for _, a := range out.Associations {
		words = append(words, a.Word)
	}
	printer.Printf("  Associations: %s\n", strings.Join(words, ", "))
	printer.Printf("  Concepts:     %d sketched\n\n", out.ConceptCount)

	printer.Heading("Variants")
	printer.Printf("  %-3s %-32s %-11s %-7s %s\n", "", "APPROACH", "TYPE", "OVERALL", "PASS")
	for _, v := range out.Variants {
		marker := " "
		if v.Concept.ID == out.Recommendation.Concept.ID {
			marker = "★"
		}
		pass := "no"
		if v.Approved {
			pass = "yes"
		}
		printer.Printf("  %-3s %-32s %-11s %-7s %s\n", marker, v.Concept.Approach, v.Concept.Type, printer.Score(v.Quality.Overall, threshold), pass)
	}

	printer.Printf("\n")
	printer.Heading("Recommendation")
	printer.Printf("  %s\n", out.Rationale)
}

func joinPersonalities(ps []designer.Personality) string {
	names := make([]string, len(ps))
	for i, p := range ps {
		names[i] = string(p)
	}
	return strings.Join(names, ", ")
}
