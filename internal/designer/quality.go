package designer

import (
	"context"
	"math"

	"github.com/sumitttt4/glyph/internal/algorithm"
	"github.com/sumitttt4/glyph/internal/fanout"
	"github.com/sumitttt4/glyph/internal/icon"
	"github.com/sumitttt4/glyph/internal/params"
	"github.com/sumitttt4/glyph/internal/seed"
	"github.com/sumitttt4/glyph/internal/svg"
)

// Quality weights; they sum to one.
const (
	weightScalability = 0.20
	weightSimplicity  = 0.25
	weightRelevance   = 0.25
	weightUniqueness  = 0.15
	weightVersatility = 0.15
)

// familyBonus rewards the more distinctive drawing families.
var familyBonus = map[algorithm.Family]float64{
	algorithm.FamilyPremium:   25,
	algorithm.FamilyTrinity:   25,
	algorithm.FamilyCreative:  25,
	algorithm.FamilyInterlock: 20,
	algorithm.FamilyFusion:    20,
	algorithm.FamilyMonogram:  15,
	FamilyIcon:                15,
	algorithm.FamilyTechnique: 5,
}

// RunQualityCheck renders every selected concept and scores the markup. Each
// concept renders from its own seed, so the work fans out across
// opts.Workers goroutines. The only error is context cancellation.
func RunQualityCheck(ctx context.Context, r Refined, opts Options) (Checked, error) {
	opts = opts.withDefaults()
	logos, err := fanout.Map(ctx, opts.Workers, len(r.Selected), func(ctx context.Context, i int) (RefinedLogo, error) {
		if err := ctx.Err(); err != nil {
			return RefinedLogo{}, err
		}
		c := r.Selected[i]
		markup, v := Render(c, r.Discovery, opts.Paint)
		q, ok := Assess(markup, c, r.Discovery)
		return RefinedLogo{
			Concept:  c,
			SVG:      markup,
			Params:   v,
			Quality:  q,
			Approved: ok && q.Overall >= opts.PassThreshold,
		}, nil
	})
	if err != nil {
		return Checked{}, err
	}
	return Checked{Refined: r, Logos: logos}, nil
}

// ConceptSeed is the repeatable seed a concept renders from.
func ConceptSeed(c SketchConcept, d Discovery) seed.Seed {
	return seed.ForIdentity(d.Input.Name + "|" + c.ID + "|" + c.Algorithm + c.Icon)
}

// Render draws a concept and returns the markup with the parameters used.
// Unknown algorithm names render with the first library entry.
func Render(c SketchConcept, d Discovery, paint svg.Paint) (string, params.Vector) {
	v := params.Apply(seed.DeriveParams(ConceptSeed(c, d)), c.Overrides)
	if c.Icon != "" {
		return icon.Generate(v, d.Input.Name, c.Icon, d.Input.Keywords, paint), v
	}
	e, err := algorithm.Lookup(c.Algorithm)
	if err != nil {
		e = algorithm.At(0)
	}
	return e.Generate(v, d.Input.Name, paint), e.Params(v)
}

// Assess inspects markup and scores it. Markup that does not parse, or that
// draws nothing, scores zero on every axis and reports false.
func Assess(markup string, c SketchConcept, d Discovery) (QualityScore, bool) {
	st, err := svg.Inspect(markup)
	if err != nil || st.Elements == 0 {
		return QualityScore{}, false
	}
	return Score(st, c, d), true
}

// Score computes the quality sub-scores of rendered markup from its structure
// and the concept's fit with the discovery.
func Score(st svg.Stats, c SketchConcept, d Discovery) QualityScore {
	el := float64(st.Elements)
	masks := float64(st.Masks)
	grads := float64(st.Gradients)

	scalability := 100 - 6*math.Max(0, el-4) - 5*math.Max(0, masks-1)
	if st.MinStroke > 0 && st.MinStroke < 1.5 {
		scalability -= 15
	}
	if st.HasText {
		scalability -= 10
	}

	simplicity := 100 - 5*el - 5*masks - 10*grads - 2*float64(st.Groups)

	relevance := 40 + 12*float64(overlap(c.Tags, discoveryTags(d)))

	uniqueness := 55 + familyBonus[c.Family] + 5*math.Min(masks, 2)

	versatility := 90 - 20*grads - 4*math.Max(0, el-3)
	if st.Elements <= 3 {
		versatility += 10
	}
	if st.HasText {
		versatility -= 10
	}

	q := QualityScore{
		Scalability: round(clamp(scalability)),
		Simplicity:  round(clamp(simplicity)),
		Relevance:   round(clamp(relevance)),
		Uniqueness:  round(clamp(uniqueness)),
		Versatility: round(clamp(versatility)),
	}
	q.Overall = round(weightScalability*q.Scalability +
		weightSimplicity*q.Simplicity +
		weightRelevance*q.Relevance +
		weightUniqueness*q.Uniqueness +
		weightVersatility*q.Versatility)
	return q
}

// discoveryTags is every library tag the discovery asks for.
func discoveryTags(d Discovery) []string {
	var tags []string
	for _, p := range d.Personality {
		tags = appendUnique(tags, string(p))
	}
	if t, ok := directionTags[d.VisualDirection]; ok {
		tags = appendUnique(tags, t)
	}
	for _, t := range industryRow(d.Industry).tags {
		tags = appendUnique(tags, t)
	}
	return tags
}

func overlap(a, b []string) int {
	n := 0
	for _, x := range a {
		for _, y := range b {
			if x == y {
				n++
				break
			}
		}
	}
	return n
}

func round(v float64) float64 {
	return math.Round(v*10) / 10
}
