package designer

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// Refinement bonuses.
const (
	bonusPersonality = 10
	bonusDirection   = 8
	bonusShortName   = 12
	bonusPreference  = 15

	// shortName is the longest name that earns the lettermark bonus.
	shortName = 6
)

// RunRefinement re-scores every concept against the discovery and greedily
// keeps the best opts.RefineTop, allowing at most opts.TypeCap of any one
// concept type. It returns fewer concepts when the cap runs the pool dry.
func RunRefinement(s Sketched, opts Options) Refined {
	opts = opts.withDefaults()

	scored := make([]SketchConcept, len(s.Concepts))
	for i, c := range s.Concepts {
		c.Tags = append([]string(nil), c.Tags...)
		c.Score = rescore(c, s.Discovery)
		scored[i] = c
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	perType := make(map[ConceptType]int)
	var selected []SketchConcept
	for _, c := range scored {
		if len(selected) == opts.RefineTop {
			break
		}
		if perType[c.Type] >= opts.TypeCap {
			continue
		}
		perType[c.Type]++
		selected = append(selected, c)
	}
	return Refined{Sketched: s, Selected: selected}
}

func rescore(c SketchConcept, d Discovery) float64 {
	score := c.Score
	for _, p := range d.Personality {
		if c.HasTag(string(p)) {
			score += bonusPersonality
			break
		}
	}
	if tag, ok := directionTags[d.VisualDirection]; ok && c.HasTag(tag) {
		score += bonusDirection
	}
	if c.Type == TypeLettermark {
		if utf8.RuneCountInString(strings.TrimSpace(d.Input.Name)) <= shortName {
			score += bonusShortName
		}
		if d.Input.PreferLettermark {
			score += bonusPreference
		}
	}
	if c.Type == TypeAbstract && d.Input.PreferAbstract {
		score += bonusPreference
	}
	return clamp(score)
}

func clamp(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 100:
		return 100
	}
	return v
}
