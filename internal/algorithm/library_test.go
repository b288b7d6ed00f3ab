package algorithm

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sumitttt4/glyph/internal/params"
	"github.com/sumitttt4/glyph/internal/seed"
	"github.com/sumitttt4/glyph/internal/svg"
)

func TestLibraryShape(t *testing.T) {
	lib := Library()
	require.GreaterOrEqual(t, len(lib), 75)
	assert.Equal(t, len(lib), Len())

	names := make(map[string]bool)
	presets := 0
	for _, e := range lib {
		assert.False(t, names[e.Name], "duplicate name %q", e.Name)
		names[e.Name] = true
		assert.NotEmpty(t, e.Description, e.Name)
		assert.True(t, HasBase(e.Base), "%s names unknown base %s", e.Name, e.Base)
		assert.Contains(t, Families, e.Family, e.Name)
		assert.Contains(t, []Kind{KindSymbol, KindWordmark}, e.Type, e.Name)
		for _, f := range e.Overrides.Keys() {
			_, ok := params.Ranges[f]
			assert.True(t, ok, "%s overrides unknown field %s", e.Name, f)
		}
		if e.IsPreset() {
			presets++
		}
	}
	assert.Greater(t, presets, len(lib)/2, "most entries are presets")
	assert.Less(t, len(Bases()), len(lib)/2)
}

func TestLibraryIsACopy(t *testing.T) {
	lib := Library()
	first := lib[0].Name
	lib[0].Name = "mutated"
	assert.Equal(t, first, Library()[0].Name)
}

func TestLookup(t *testing.T) {
	e, err := Lookup("stencil bold")
	require.NoError(t, err)
	assert.Equal(t, "Stencil Bold", e.Name)
	assert.Equal(t, params.Overrides{params.StrokeWidth: 8, params.SpacingRatio: 1.8}, e.Overrides)

	_, err = Lookup("Woodcut")
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)
}

func TestPresetOverridesWin(t *testing.T) {
	e, err := Lookup("Monoline Heavy")
	require.NoError(t, err)
	v := params.Default()
	v.StrokeWidth = 1
	assert.Equal(t, 8.0, e.Params(v).StrokeWidth)
	assert.Equal(t, v.CornerRadius, e.Params(v).CornerRadius)
}

func TestSelect(t *testing.T) {
	s := seed.ForIdentity("Acme")
	idx := SelectIndex(s)
	for i := 0; i < 5; i++ {
		assert.Equal(t, idx, SelectIndex(s))
	}
	assert.Equal(t, At(idx), Select(s))
	assert.Equal(t, seed.SelectIndex(s, Len()), idx)
	assert.Equal(t, At(0), At(Len()))
	assert.Equal(t, At(Len()-1), At(-1))
}

func TestEveryEntryRenders(t *testing.T) {
	brands := []string{"Acme", "NovaPay Labs", "9Brand", "#Brand", "", "x", "\xff\xfe", "A\x00\x1bcme"}
	vectors := []params.Vector{
		params.Default(),
		seed.DeriveParams(seed.ForIdentity("a")),
		seed.DeriveParams(seed.ForIdentity("b")),
	}
	for _, e := range Library() {
		t.Run(e.Name, func(t *testing.T) {
			for _, brand := range brands {
				for _, v := range vectors {
					out := e.Generate(v, brand, svg.DefaultPaint())
					require.True(t, strings.HasPrefix(out, "<svg"), "%s/%q", e.Name, brand)
					st, err := svg.Inspect(out)
					require.NoError(t, err, "%s/%q", e.Name, brand)
					assert.Greater(t, st.Elements, 0, "%s/%q", e.Name, brand)
					assert.NotContains(t, out, "NaN")
				}
			}
		})
	}
}

func TestWordmarkName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Acme", "Acme"},
		{"  Acme  ", "Acme"},
		{"\xff\xfe", "Brand"},
		{"A\x00c\x1bme", "Acme"},
		{"Caf\xe9 Noir", "Caf Noir"},
		{"\t\n", "Brand"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, wordmarkName(tt.in))
		})
	}

	for _, name := range []string{"Wordmark", "Wordmark Heavy", "Wordmark Symbol"} {
		t.Run(name+" stays well-formed", func(t *testing.T) {
			e, err := Lookup(name)
			require.NoError(t, err)
			out := e.Generate(params.Default(), "\xff\xfe", svg.DefaultPaint())
			_, err = svg.Inspect(out)
			require.NoError(t, err)
			assert.Contains(t, out, ">Brand</text>")
		})
	}
}

var maskIDPattern = regexp.MustCompile(`<mask id="([^"]+)"`)

func maskIDs(markup string) []string {
	var ids []string
	for _, m := range maskIDPattern.FindAllStringSubmatch(markup, -1) {
		ids = append(ids, m[1])
	}
	return ids
}

func TestMaskIDsFollowContent(t *testing.T) {
	tweaks := map[string]func(v *params.Vector){
		"scale variance":  func(v *params.Vector) { v.ScaleVariance = 1.15 },
		"interlock depth": func(v *params.Vector) { v.InterlockDepth = 80 },
		"element count":   func(v *params.Vector) { v.ElementCount = 6 },
		"spacing ratio":   func(v *params.Vector) { v.SpacingRatio = 1.8 },
		"corner radius":   func(v *params.Vector) { v.CornerRadius = 40 },
	}
	for _, e := range Library() {
		base := e.Generate(params.Default(), "Acme", svg.DefaultPaint())
		baseIDs := maskIDs(base)
		if len(baseIDs) == 0 {
			continue
		}
		for name, tweak := range tweaks {
			t.Run(e.Name+"/"+name, func(t *testing.T) {
				v := params.Default()
				tweak(&v)
				out := e.Generate(v, "Acme", svg.DefaultPaint())
				if out == base {
					return
				}
				for _, id := range maskIDs(out) {
					assert.NotContains(t, baseIDs, id, "different markup must not reuse a mask id")
				}
			})
		}
	}
}

func TestDeterministicMarkup(t *testing.T) {
	s := seed.ForIdentity("Orbit")
	v := seed.DeriveParams(s)
	e := Select(s)
	assert.Equal(t, e.Generate(v, "Orbit", svg.DefaultPaint()), e.Generate(v, "Orbit", svg.DefaultPaint()))
}

func TestMaskedVariants(t *testing.T) {
	for _, base := range []string{BasePremiumCube, BasePremiumOrb, BasePremiumHex, BaseFusionEmblem} {
		t.Run(base, func(t *testing.T) {
			outs := make(map[string]bool)
			for cut := 0; cut < 3; cut++ {
				v := params.Default()
				v.CutoutPosition = cut
				out := bases[base](v, "Acme", svg.DefaultPaint())
				st, err := svg.Inspect(out)
				require.NoError(t, err)
				assert.Equal(t, 1, st.Masks)
				outs[out] = true
			}
			assert.Len(t, outs, 3, "each cutout variant draws differently")
		})
	}

	t.Run("variant repeats modulo three", func(t *testing.T) {
		a, b := params.Default(), params.Default()
		a.CutoutPosition, b.CutoutPosition = 1, 4
		assert.Equal(t, variant(a), variant(b))
	})
}

func TestNameParts(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{in: "NovaPay Labs", want: []string{"Nova", "Pay", "Labs"}},
		{in: "green-leaf_co", want: []string{"green", "leaf", "co"}},
		{in: "ACME", want: []string{"ACME"}},
		{in: "", want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NameParts(tt.in))
		})
	}

	assert.Equal(t, []rune{'N', 'P'}, initials("NovaPay", 2))
	assert.Equal(t, []rune{'A', 'C'}, initials("acme", 2))
	assert.Equal(t, []rune{'?', '?'}, initials("", 2))
}

func TestByFamilyAndTag(t *testing.T) {
	for _, f := range Families {
		assert.NotEmpty(t, ByFamily(f), f)
	}
	for _, e := range ByTag(TagLettermark) {
		assert.True(t, e.HasTag(TagLettermark))
	}
	for _, e := range ByFamily(FamilyWordmark) {
		assert.Equal(t, KindWordmark, e.Type)
	}
}
