package designer

import (
	"fmt"
	"strings"

	"github.com/sumitttt4/glyph/internal/algorithm"
	"github.com/sumitttt4/glyph/internal/icon"
	"github.com/sumitttt4/glyph/internal/params"
	"github.com/sumitttt4/glyph/internal/seed"
	"github.com/sumitttt4/glyph/internal/skeleton"
)

// Sketch pool bounds.
const (
	MinConcepts = 20
	MaxConcepts = 30
)

// Concept sources, in sketching order.
const (
	SourceLettermark  = "lettermark"
	SourcePersonality = "personality"
	SourceCategory    = "category"
	SourceIcon        = "icon"
	SourceFusion      = "fusion"
	SourcePremium     = "premium"
	SourceMetaphor    = "metaphor"
	SourceFill        = "fill"
)

// Starting scores by source.
const (
	scoreLettermark  = 70
	scorePersonality = 66
	scoreCategory    = 68
	scoreIcon        = 64
	scoreFusion      = 62
	scorePremium     = 65
	scoreMetaphor    = 60
	scoreFill        = 50
)

const (
	maxTraits          = 2
	picksPerTrait      = 2
	lettermarkVariants = 6
	maxIconCategories  = 3
	fusionVariants     = 2
	metaphorPicks      = 3
)

// sketchbook collects concepts, dropping repeats of the same algorithm or
// icon category.
type sketchbook struct {
	brand    string
	concepts []SketchConcept
	seen     map[string]bool
}

func (b *sketchbook) add(c SketchConcept) {
	key := "algorithm:" + strings.ToLower(c.Algorithm)
	if c.Icon != "" {
		key = "icon:" + c.Icon
	}
	if b.seen[key] || len(b.concepts) >= MaxConcepts {
		return
	}
	b.seen[key] = true
	b.concepts = append(b.concepts, c)
}

func (b *sketchbook) entry(e algorithm.Entry, source, approach string, score float64, ov params.Overrides) {
	c := SketchConcept{
		Approach:  approach,
		Algorithm: e.Name,
		Family:    e.Family,
		Type:      entryType(e),
		Source:    source,
		Overrides: ov,
		Score:     score,
		Tags:      append([]string(nil), e.Tags...),
	}
	if c.Type == TypeLettermark || e.HasTag(algorithm.TagLettermark) {
		c.Letter = string(skeleton.Initial(b.brand))
	}
	b.add(c)
}

// RunSketching builds the candidate pool from lettermark variants of the
// initial, personality and category matches, abstract icons, fusions, the
// fixed premium picks and metaphor picks. A short pool is topped up from the
// library.
func RunSketching(a Associated) Sketched {
	name := a.Input.Name
	b := &sketchbook{brand: name, seen: make(map[string]bool)}
	ind := industryRow(a.Industry)

	// Lettermarks go first so the initial always gets its full set of variants.
	letter := string(skeleton.Initial(name))
	for i, e := range spread(algorithm.ByFamily(algorithm.FamilyTechnique), name+"|lettermark", lettermarkVariants) {
		b.entry(e, SourceLettermark, fmt.Sprintf("Lettermark %s: %s", letter, strings.ToLower(e.Description)), scoreLettermark-float64(i), nil)
	}

	for i, trait := range a.Personality {
		if i == maxTraits {
			break
		}
		for _, e := range spread(algorithm.ByTag(string(trait)), name+"|"+string(trait), picksPerTrait) {
			b.entry(e, SourcePersonality, fmt.Sprintf("%s, for a %s feel", e.Description, trait), scorePersonality, personalityOverrides[trait])
		}
	}

	for _, tag := range ind.tags {
		for _, e := range spread(algorithm.ByTag(tag), name+"|"+tag, 1) {
			b.entry(e, SourceCategory, fmt.Sprintf("%s, suited to %s", e.Description, ind.name), scoreCategory, nil)
		}
	}

	for _, cat := range iconCategories(a) {
		b.add(SketchConcept{
			Approach: fmt.Sprintf("Abstract %s icon from shared primitives", cat),
			Icon:     cat,
			Family:   FamilyIcon,
			Type:     TypeAbstract,
			Source:   SourceIcon,
			Score:    scoreIcon,
			Tags:     []string{algorithm.TagAbstract, algorithm.TagGeometric},
		})
	}

	for _, e := range spread(algorithm.ByFamily(algorithm.FamilyFusion), name+"|fusion", fusionVariants) {
		b.entry(e, SourceFusion, e.Description, scoreFusion, nil)
	}

	for _, n := range premiumPicks {
		if e, err := algorithm.Lookup(n); err == nil {
			b.entry(e, SourcePremium, e.Description, scorePremium, nil)
		}
	}

	for i, assoc := range a.Associations {
		if i == metaphorPicks {
			break
		}
		m, tag, ok := drawableMetaphor(assoc)
		if !ok {
			continue
		}
		for _, e := range spread(algorithm.ByTag(tag), name+"|"+assoc.Word, 1) {
			b.entry(e, SourceMetaphor, fmt.Sprintf("%s as %s: %s", assoc.Word, m, strings.ToLower(e.Description)), scoreMetaphor+10*assoc.Relevance, nil)
		}
	}

	for i := 0; len(b.concepts) < MinConcepts && i < 4*algorithm.Len(); i++ {
		e := algorithm.Select(seed.ForIdentity(fmt.Sprintf("%s|fill|%d", name, i)))
		b.entry(e, SourceFill, e.Description, scoreFill, nil)
	}

	for i := range b.concepts {
		b.concepts[i].ID = fmt.Sprintf("concept-%02d", i+1)
	}
	return Sketched{Associated: a, Concepts: b.concepts}
}

// spread picks n entries evenly spaced around the list, starting at a
// position keyed on key.
func spread(entries []algorithm.Entry, key string, n int) []algorithm.Entry {
	if len(entries) == 0 || n <= 0 {
		return nil
	}
	if n > len(entries) {
		n = len(entries)
	}
	step := len(entries) / n
	start := seed.HashIndex(key, len(entries))
	out := make([]algorithm.Entry, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, entries[(start+i*step)%len(entries)])
	}
	return out
}

// entryType buckets a library entry for the refinement diversity cap.
func entryType(e algorithm.Entry) ConceptType {
	switch e.Family {
	case algorithm.FamilyTechnique, algorithm.FamilyMonogram:
		return TypeLettermark
	case algorithm.FamilyFusion:
		return TypeFusion
	case algorithm.FamilyPremium, algorithm.FamilyTrinity, algorithm.FamilyCreative:
		if e.HasTag(algorithm.TagLettermark) {
			return TypeFusion
		}
		return TypeAbstract
	default:
		return TypeOther
	}
}

// iconCategories picks up to three icon categories: the industry's own, then
// whatever the top associations and their metaphors resolve to.
func iconCategories(a Associated) []string {
	var out []string
	if c := industryRow(a.Industry).icon; c != icon.Default {
		out = append(out, c)
	}
	for _, assoc := range a.Associations {
		if len(out) == maxIconCategories {
			break
		}
		words := append([]string{assoc.Word}, assoc.Metaphors...)
		if c := icon.Resolve("", words).Name; c != icon.Default {
			out = appendUnique(out, c)
		}
	}
	if len(out) == 0 {
		out = append(out, icon.Default)
	}
	return out
}

// drawableMetaphor returns the first metaphor of a that some library tag can
// draw.
func drawableMetaphor(a ConceptAssociation) (string, string, bool) {
	for _, m := range a.Metaphors {
		if tag, ok := metaphorTags[m]; ok {
			return m, tag, true
		}
	}
	return "", "", false
}
