package designer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sumitttt4/glyph/internal/algorithm"
)

// RunSelection keeps every approved logo, backfills with the best of the rest
// up to opts.MaxVariants, and recommends the highest overall score.
//
// The refined pool is never empty for a sketched brand, but an empty pool
// still yields one variant rendered from the first library entry.
func RunSelection(c Checked, opts Options) Output {
	opts = opts.withDefaults()

	ranked := append([]RefinedLogo(nil), c.Logos...)
	if len(ranked) == 0 {
		ranked = []RefinedLogo{fallbackLogo(c.Discovery, opts)}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Quality.Overall > ranked[j].Quality.Overall
	})

	var variants []RefinedLogo
	for _, approved := range []bool{true, false} {
		for _, l := range ranked {
			if len(variants) == opts.MaxVariants {
				break
			}
			if l.Approved == approved {
				variants = append(variants, l)
			}
		}
	}

	passed := 0
	for _, l := range c.Logos {
		if l.Approved {
			passed++
		}
	}

	return Output{
		Discovery:      c.Discovery,
		Associations:   c.Associations,
		ConceptCount:   len(c.Concepts),
		Variants:       variants,
		Recommendation: ranked[0],
		Rationale:      rationale(c.Discovery, ranked[0], passed, len(c.Logos), opts.PassThreshold),
	}
}

func fallbackLogo(d Discovery, opts Options) RefinedLogo {
	e := algorithm.At(0)
	c := SketchConcept{
		ID:        "concept-00",
		Approach:  e.Description,
		Algorithm: e.Name,
		Family:    e.Family,
		Type:      entryType(e),
		Source:    SourceFill,
		Score:     scoreFill,
		Tags:      append([]string(nil), e.Tags...),
	}
	markup, v := Render(c, d, opts.Paint)
	return RefinedLogo{Concept: c, SVG: markup, Params: v}
}

func rationale(d Discovery, rec RefinedLogo, passed, total int, threshold float64) string {
	traits := make([]string, len(d.Personality))
	for i, p := range d.Personality {
		traits[i] = string(p)
	}
	name := d.Input.Name
	if name == "" {
		name = "The brand"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s comes across as %s, serving %s, so the mark should feel %s with a %s direction. ",
		name, joinWords(traits), joinWords(d.WhoTheyServe), d.EmotionalTone, d.VisualDirection)
	fmt.Fprintf(&b, "The recommendation is %s (%s", rec.Concept.Approach, rec.Concept.Type)
	if len(rec.Concept.Tags) > 0 {
		fmt.Fprintf(&b, "; %s", strings.Join(rec.Concept.Tags, ", "))
	}
	fmt.Fprintf(&b, ") at %.0f overall. ", rec.Quality.Overall)
	fmt.Fprintf(&b, "%d of %d refined concepts passed the %.0f threshold.", passed, total, threshold)
	return b.String()
}

// joinWords renders a, b and c as "a, b and c".
func joinWords(words []string) string {
	switch len(words) {
	case 0:
		return ""
	case 1:
		return words[0]
	}
	return strings.Join(words[:len(words)-1], ", ") + " and " + words[len(words)-1]
}
