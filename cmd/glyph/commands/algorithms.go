package commands

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/sumitttt4/glyph/internal/algorithm"
	"github.com/sumitttt4/glyph/internal/params"
	"github.com/sumitttt4/glyph/internal/printer"
)

var (
	algorithmsFamily    string
	algorithmsTag       string
	algorithmsOverrides bool
	algorithmsJSON      bool
)

var algorithmsCmd = &cobra.Command{
	Use:   "algorithms",
	Short: "List the algorithm library",
	Long: `List every library entry in selection order.

Preset entries force some parameters over the seeded values; use
--overrides to show them.

Examples:
  glyph algorithms
  glyph algorithms --family premium --overrides
  glyph algorithms --tag minimal --json`,
	Args: cobra.NoArgs,
	RunE: runAlgorithms,
}

func init() {
	algorithmsCmd.Flags().StringVar(&algorithmsFamily, "family", "", "Only entries of this family")
	algorithmsCmd.Flags().StringVar(&algorithmsTag, "tag", "", "Only entries carrying this tag")
	algorithmsCmd.Flags().BoolVar(&algorithmsOverrides, "overrides", false, "Show preset parameter overrides")
	algorithmsCmd.Flags().BoolVar(&algorithmsJSON, "json", false, "Print entries as JSON")
	rootCmd.AddCommand(algorithmsCmd)
}

func runAlgorithms(cmd *cobra.Command, args []string) error {
	entries := algorithm.Library()

	if algorithmsFamily != "" {
		if !knownFamily(algorithm.Family(algorithmsFamily)) {
			return printer.Error(
				fmt.Sprintf("unknown family '%s'", algorithmsFamily),
				"Families group entries that share a drawing idea.",
				[]string{fmt.Sprintf("Valid families: %s", familyNames())},
			)
		}
		entries = algorithm.ByFamily(algorithm.Family(algorithmsFamily))
	}
	if algorithmsTag != "" {
		var tagged []algorithm.Entry
		for _, e := range entries {
			if e.HasTag(algorithmsTag) {
				tagged = append(tagged, e)
			}
		}
		entries = tagged
	}

	if algorithmsJSON {
		if entries == nil {
			entries = []algorithm.Entry{}
		}
		return writeJSON(cmd.OutOrStdout(), entries)
	}

	printer.Printf("%-28s %-10s %-9s %s\n", "NAME", "FAMILY", "TYPE", "DESCRIPTION")
	for _, e := range entries {
		printer.Printf("%-28s %-10s %-9s %s\n", e.Name, e.Family, e.Type, e.Description)
		if algorithmsOverrides && e.IsPreset() {
			printer.Printf("%-28s %s\n", "", formatOverrides(e.Overrides))
		}
	}
	printer.Printf("\n%d of %d entries\n", len(entries), algorithm.Len())
	return nil
}

func knownFamily(f algorithm.Family) bool {
	for _, known := range algorithm.Families {
		if f == known {
			return true
		}
	}
	return false
}

func familyNames() string {
	names := make([]string, len(algorithm.Families))
	for i, f := range algorithm.Families {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

// formatOverrides renders overrides in field name order.
func formatOverrides(o params.Overrides) string {
	fields := make([]string, 0, len(o))
	for f := range o {
		fields = append(fields, string(f))
	}
	sort.Strings(fields)

	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = fmt.Sprintf("%s=%g", f, o[params.Field(f)])
	}
	return "↳ " + strings.Join(parts, " ")
}
