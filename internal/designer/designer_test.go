package designer

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sumitttt4/glyph/internal/algorithm"
	"github.com/sumitttt4/glyph/internal/svg"
)

func TestDiscovery(t *testing.T) {
	tests := []struct {
		name      string
		in        BrandInput
		industry  string
		direction string
		tone      string
		first     Personality
	}{
		{name: "technology defaults to professional", in: BrandInput{Name: "Nexus", Category: "technology"}, industry: "technology", direction: "geometric", tone: "confident", first: Professional},
		{name: "explicit personality wins", in: BrandInput{Name: "Pop", Category: "technology", Personality: []Personality{Playful}}, industry: "technology", direction: "organic", tone: "joyful", first: Playful},
		{name: "alias", in: BrandInput{Name: "Vault", Category: "Banking"}, industry: "finance", direction: "geometric", tone: "confident", first: Professional},
		{name: "unknown category", in: BrandInput{Name: "Zed", Category: "xyzzy"}, industry: defaultIndustry, direction: "geometric", tone: "confident", first: Professional},
		{name: "keyword picks industry", in: BrandInput{Name: "Mend", Keywords: []string{"wellness"}}, industry: "health", direction: "organic", tone: "warm", first: Friendly},
		{name: "unknown traits dropped", in: BrandInput{Name: "Zed", Personality: []Personality{"grumpy", Bold, Bold}}, industry: defaultIndustry, direction: "bold", tone: "energetic", first: Bold},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := RunDiscovery(tt.in)
			assert.Equal(t, tt.industry, d.Industry)
			assert.Equal(t, tt.direction, d.VisualDirection)
			assert.Equal(t, tt.tone, d.EmotionalTone)
			require.NotEmpty(t, d.Personality)
			assert.Equal(t, tt.first, d.Personality[0])
			assert.NotEmpty(t, d.WhatTheyDo)
			assert.NotEmpty(t, d.WhoTheyServe)
		})
	}

	t.Run("free text", func(t *testing.T) {
		d := RunDiscovery(BrandInput{Name: "Shipyard", Description: "We build tools that help developers ship faster"})
		assert.Equal(t, []string{"identity", "innovation", "speed"}, d.WhatTheyDo)
		assert.Equal(t, []string{"developers"}, d.WhoTheyServe)
	})

	t.Run("duplicate traits collapse", func(t *testing.T) {
		d := RunDiscovery(BrandInput{Name: "Zed", Personality: []Personality{Bold, Bold}})
		assert.Equal(t, []Personality{Bold}, d.Personality)
	})
}

func TestAssociation(t *testing.T) {
	t.Run("lead name part ranks first", func(t *testing.T) {
		a := RunAssociation(RunDiscovery(BrandInput{Name: "Nexus", Category: "technology", Keywords: []string{"cloud"}}))
		require.NotEmpty(t, a.Associations)
		assert.LessOrEqual(t, len(a.Associations), MaxAssociations)
		assert.Equal(t, "nexus", a.Associations[0].Word)
		assert.Equal(t, 1.0, a.Associations[0].Relevance)
		assert.Equal(t, "cloud", a.Associations[1].Word)
		for i := 1; i < len(a.Associations); i++ {
			assert.GreaterOrEqual(t, a.Associations[i-1].Relevance, a.Associations[i].Relevance)
		}
	})

	t.Run("substring match", func(t *testing.T) {
		a := RunAssociation(RunDiscovery(BrandInput{Name: "Cloudly"}))
		require.NotEmpty(t, a.Associations)
		assert.Equal(t, "cloudly", a.Associations[0].Word)
		assert.Equal(t, "cloud", a.Associations[0].Related[0])
	})

	t.Run("unmatched name still associates industry", func(t *testing.T) {
		a := RunAssociation(RunDiscovery(BrandInput{Name: "Zq"}))
		require.NotEmpty(t, a.Associations)
		assert.Equal(t, "identity", a.Associations[0].Word)
	})

	t.Run("words are unique", func(t *testing.T) {
		a := RunAssociation(RunDiscovery(BrandInput{Name: "Data Data", Category: "data", Keywords: []string{"data"}}))
		seen := map[string]bool{}
		for _, as := range a.Associations {
			assert.False(t, seen[as.Word], as.Word)
			seen[as.Word] = true
		}
	})
}

func sketch(in BrandInput) Sketched {
	return RunSketching(RunAssociation(RunDiscovery(in)))
}

func TestSketching(t *testing.T) {
	for _, name := range []string{"Nexus", "NovaPay Labs", "9Brand", "#Brand", "日本", "x"} {
		t.Run(name, func(t *testing.T) {
			s := sketch(BrandInput{Name: name, Category: "technology"})
			assert.GreaterOrEqual(t, len(s.Concepts), MinConcepts)
			assert.LessOrEqual(t, len(s.Concepts), MaxConcepts)

			ids := map[string]bool{}
			algos := map[string]bool{}
			sources := map[string]int{}
			for _, c := range s.Concepts {
				assert.False(t, ids[c.ID], "duplicate id %s", c.ID)
				ids[c.ID] = true
				if c.Algorithm != "" {
					assert.False(t, algos[c.Algorithm], "duplicate algorithm %s", c.Algorithm)
					algos[c.Algorithm] = true
					_, err := algorithm.Lookup(c.Algorithm)
					assert.NoError(t, err)
				} else {
					assert.NotEmpty(t, c.Icon)
				}
				sources[c.Source]++
			}
			assert.Equal(t, lettermarkVariants, sources[SourceLettermark])
			assert.GreaterOrEqual(t, sources[SourceIcon], 1)
			assert.LessOrEqual(t, sources[SourceIcon], maxIconCategories)
			for _, n := range premiumPicks {
				assert.True(t, algos[n], "premium pick %s", n)
			}
		})
	}
}

func TestNexusSketchIncludesLettermarkN(t *testing.T) {
	d := RunDiscovery(BrandInput{Name: "Nexus", Category: "technology"})
	assert.Equal(t, "geometric", d.VisualDirection)

	s := RunSketching(RunAssociation(d))
	found := false
	for _, c := range s.Concepts {
		if c.Type == TypeLettermark && c.Letter == "N" {
			found = true
		}
	}
	assert.True(t, found, "expected a lettermark concept for N")
}

func TestSketchingDeterministic(t *testing.T) {
	in := BrandInput{Name: "Acme", Category: "finance", Keywords: []string{"trust"}}
	assert.Equal(t, sketch(in).Concepts, sketch(in).Concepts)
}

func TestRefinementDiversityCap(t *testing.T) {
	briefs := []BrandInput{
		{Name: "Nexus", Category: "technology"},
		{Name: "Acme", Category: "finance", PreferLettermark: true},
		{Name: "Bloom & Co", Category: "health", PreferAbstract: true},
		{Name: "Q", PreferLettermark: true, Personality: []Personality{Minimal}},
	}
	for _, in := range briefs {
		t.Run(in.Name, func(t *testing.T) {
			r := RunRefinement(sketch(in), DefaultOptions())
			require.NotEmpty(t, r.Selected)
			assert.LessOrEqual(t, len(r.Selected), 5)
			counts := map[ConceptType]int{}
			for i, c := range r.Selected {
				counts[c.Type]++
				if i > 0 {
					assert.GreaterOrEqual(t, r.Selected[i-1].Score, c.Score)
				}
			}
			for typ, n := range counts {
				assert.LessOrEqual(t, n, 2, "type %s", typ)
			}
		})
	}

	t.Run("cap shrinks an uneven pool", func(t *testing.T) {
		var s Sketched
		s.Input = BrandInput{Name: "Longbrandname"}
		for i := 0; i < 8; i++ {
			s.Concepts = append(s.Concepts, SketchConcept{ID: fmt.Sprintf("c%d", i), Type: TypeLettermark, Score: float64(60 + i)})
		}
		s.Concepts = append(s.Concepts, SketchConcept{ID: "a", Type: TypeAbstract, Score: 10})
		r := RunRefinement(s, DefaultOptions())
		require.Len(t, r.Selected, 3)
		assert.Equal(t, "c7", r.Selected[0].ID)
		assert.Equal(t, "c6", r.Selected[1].ID)
		assert.Equal(t, "a", r.Selected[2].ID)
	})

	t.Run("does not mutate sketches", func(t *testing.T) {
		s := sketch(BrandInput{Name: "Nexus", Category: "technology"})
		before := append([]SketchConcept(nil), s.Concepts...)
		RunRefinement(s, DefaultOptions())
		assert.Equal(t, before, s.Concepts)
	})

	t.Run("abstract preference", func(t *testing.T) {
		var s Sketched
		s.Input = BrandInput{Name: "Longbrandname", PreferAbstract: true}
		s.Concepts = []SketchConcept{
			{ID: "l", Type: TypeLettermark, Score: 70},
			{ID: "a", Type: TypeAbstract, Score: 60},
		}
		r := RunRefinement(s, DefaultOptions())
		assert.Equal(t, "a", r.Selected[0].ID)
	})
}

func TestScoreBounds(t *testing.T) {
	d := RunDiscovery(BrandInput{Name: "Nexus", Category: "technology"})
	stats := []svg.Stats{
		{},
		{Elements: 1},
		{Elements: 3, Masks: 1, MinStroke: 4, MaxStroke: 4},
		{Elements: 40, Masks: 6, Gradients: 4, Groups: 10, MinStroke: 0.5, HasText: true},
	}
	concepts := []SketchConcept{
		{Family: algorithm.FamilyPremium, Tags: []string{algorithm.TagGeometric, algorithm.TagProfessional, algorithm.TagTechnical, algorithm.TagInnovative}},
		{Family: algorithm.FamilyWordmark},
		{Family: FamilyIcon, Tags: []string{algorithm.TagAbstract}},
	}
	for _, st := range stats {
		for _, c := range concepts {
			q := Score(st, c, d)
			subs := []float64{q.Scalability, q.Simplicity, q.Relevance, q.Uniqueness, q.Versatility}
			lo, hi := 100.0, 0.0
			for _, v := range subs {
				assert.GreaterOrEqual(t, v, 0.0)
				assert.LessOrEqual(t, v, 100.0)
				lo, hi = math.Min(lo, v), math.Max(hi, v)
			}
			assert.GreaterOrEqual(t, q.Overall, lo-0.05)
			assert.LessOrEqual(t, q.Overall, hi+0.05)
		}
	}

	t.Run("gradients cost versatility", func(t *testing.T) {
		flat := Score(svg.Stats{Elements: 2}, SketchConcept{}, d)
		shaded := Score(svg.Stats{Elements: 2, Gradients: 1}, SketchConcept{}, d)
		assert.Greater(t, flat.Versatility, shaded.Versatility)
	})
}

func TestQualityCheck(t *testing.T) {
	r := RunRefinement(sketch(BrandInput{Name: "Nexus", Category: "technology"}), DefaultOptions())
	c, err := RunQualityCheck(context.Background(), r, DefaultOptions())
	require.NoError(t, err)
	require.Len(t, c.Logos, len(r.Selected))
	for i, l := range c.Logos {
		assert.Equal(t, r.Selected[i].ID, l.Concept.ID)
		st, err := svg.Inspect(l.SVG)
		require.NoError(t, err)
		assert.Greater(t, st.Elements, 0)
		assert.Equal(t, l.Quality.Overall >= 65, l.Approved)
		assert.NoError(t, l.Params.Validate())
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = RunQualityCheck(ctx, r, DefaultOptions())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAssess(t *testing.T) {
	d := RunDiscovery(BrandInput{Name: "Nexus", Category: "technology"})
	c := SketchConcept{Family: algorithm.FamilyPremium, Tags: []string{algorithm.TagGeometric}}

	tests := []struct {
		name   string
		markup string
		ok     bool
	}{
		{"well formed", svg.Document(svg.DefaultPaint(), nil, svg.Circle(50, 50, 20)), true},
		{"invalid utf-8", "<svg><text>\xff\xfe</text></svg>", false},
		{"unclosed", "<svg><circle", false},
		{"empty document", "<svg></svg>", false},
		{"not markup", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, ok := Assess(tt.markup, c, d)
			assert.Equal(t, tt.ok, ok)
			if !ok {
				assert.Equal(t, QualityScore{}, q)
				return
			}
			assert.Greater(t, q.Overall, 0.0)
		})
	}
}

func logo(id string, overall float64, approved bool) RefinedLogo {
	return RefinedLogo{
		Concept:  SketchConcept{ID: id, Approach: "approach " + id, Type: TypeAbstract},
		Quality:  QualityScore{Overall: overall},
		Approved: approved,
	}
}

func TestSelection(t *testing.T) {
	d := RunDiscovery(BrandInput{Name: "Nexus", Category: "technology"})
	base := Checked{}
	base.Discovery = d

	t.Run("backfills to four", func(t *testing.T) {
		c := base
		c.Logos = []RefinedLogo{logo("a", 50, false), logo("b", 70, true), logo("c", 60, false), logo("d", 40, false), logo("e", 55, false)}
		out := RunSelection(c, DefaultOptions())
		require.Len(t, out.Variants, 4)
		ids := []string{}
		for _, v := range out.Variants {
			ids = append(ids, v.Concept.ID)
		}
		assert.Equal(t, []string{"b", "c", "e", "a"}, ids)
		assert.Equal(t, "b", out.Recommendation.Concept.ID)
		assert.Contains(t, out.Rationale, "Nexus")
		assert.Contains(t, out.Rationale, "geometric")
		assert.Contains(t, out.Rationale, "1 of 5")
	})

	t.Run("approved beat higher unapproved ordering", func(t *testing.T) {
		c := base
		c.Logos = []RefinedLogo{logo("a", 90, true), logo("b", 80, true), logo("c", 70, true), logo("d", 66, true), logo("e", 65, true)}
		out := RunSelection(c, DefaultOptions())
		assert.Len(t, out.Variants, 4)
		assert.Equal(t, "a", out.Recommendation.Concept.ID)
	})

	t.Run("small pool", func(t *testing.T) {
		c := base
		c.Logos = []RefinedLogo{logo("a", 20, false)}
		out := RunSelection(c, DefaultOptions())
		assert.Len(t, out.Variants, 1)
		assert.Equal(t, "a", out.Recommendation.Concept.ID)
	})

	t.Run("empty pool falls back", func(t *testing.T) {
		out := RunSelection(base, DefaultOptions())
		require.Len(t, out.Variants, 1)
		assert.Equal(t, algorithm.At(0).Name, out.Recommendation.Concept.Algorithm)
		assert.NotEmpty(t, out.Recommendation.SVG)
	})
}

func TestPipelineRun(t *testing.T) {
	var buf bytes.Buffer
	p := New(DefaultOptions(), log.New(&buf, "", 0))

	out, err := p.Run(context.Background(), BrandInput{Name: "Nexus", Category: "technology"})
	require.NoError(t, err)
	assert.Equal(t, "geometric", out.Discovery.VisualDirection)
	assert.GreaterOrEqual(t, len(out.Variants), 1)
	assert.LessOrEqual(t, len(out.Variants), 4)
	assert.Equal(t, out.Variants[0], out.Recommendation)
	assert.GreaterOrEqual(t, out.ConceptCount, MinConcepts)
	assert.NotEmpty(t, out.Rationale)
	assert.Contains(t, buf.String(), `"event_type":"design_complete"`)
	assert.Contains(t, buf.String(), "[Designer]")

	again, err := New(DefaultOptions(), nil).Run(context.Background(), BrandInput{Name: "Nexus", Category: "technology"})
	require.NoError(t, err)
	assert.Equal(t, out.Recommendation.SVG, again.Recommendation.SVG)
	assert.Equal(t, out.Rationale, again.Rationale)
}

func TestPipelineErrors(t *testing.T) {
	p := New(Options{}, nil)
	_, err := p.Run(context.Background(), BrandInput{Name: "  "})
	assert.ErrorIs(t, err, ErrEmptyName)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = p.Run(ctx, BrandInput{Name: "Nexus"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPaintReachesMarkup(t *testing.T) {
	opts := DefaultOptions()
	opts.Paint = svg.Paint{Color: "#123456"}
	out, err := New(opts, nil).Run(context.Background(), BrandInput{Name: "Nexus", Category: "technology"})
	require.NoError(t, err)
	for _, v := range out.Variants {
		assert.Contains(t, v.SVG, "#123456")
	}
}
