package technique

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sumitttt4/glyph/internal/params"
	"github.com/sumitttt4/glyph/internal/seed"
	"github.com/sumitttt4/glyph/internal/svg"
)

func TestAllTechniques(t *testing.T) {
	require.Len(t, All(), 8)

	brands := []string{"Acme", "nexus", "Orbit", "9Brand", "#Brand", "", "  ", "Élan", "日本"}
	vectors := []params.Vector{
		params.Default(),
		seed.DeriveParams(seed.ForIdentity("low")),
		seed.DeriveParams(seed.ForIdentity("high")),
	}

	for _, tech := range All() {
		for _, brand := range brands {
			t.Run(tech.ID+"/"+brand, func(t *testing.T) {
				for _, v := range vectors {
					out := tech.Render(v, brand, svg.DefaultPaint())
					require.NotEmpty(t, out)
					assert.True(t, strings.HasPrefix(out, "<svg"))

					st, err := svg.Inspect(out)
					require.NoError(t, err)
					assert.Greater(t, st.Elements, 0)
				}
			})
		}
	}
}

func TestStencilMaskIDTracksParams(t *testing.T) {
	a, b := params.Default(), params.Default()
	b.ScaleVariance = 1.15
	for _, brand := range []string{"Acme", "9Brand"} {
		t.Run(brand, func(t *testing.T) {
			outA := RenderStencil(a, brand, svg.DefaultPaint())
			outB := RenderStencil(b, brand, svg.DefaultPaint())
			idA := svg.ID("stencil", brand, a.Key())
			if !strings.Contains(outA, idA) {
				idA = svg.ID("stencil-fallback", brand, a.Key())
			}
			require.Contains(t, outA, idA)
			assert.NotContains(t, outB, idA)
		})
	}
}

func TestGet(t *testing.T) {
	tech, ok := Get(Stencil)
	require.True(t, ok)
	assert.Equal(t, "Stencil", tech.Name)

	_, ok = Get("woodcut")
	assert.False(t, ok)
}

func TestPaintIsThreaded(t *testing.T) {
	paint := svg.Paint{Color: "#0a7"}
	for _, tech := range All() {
		out := tech.Render(params.Default(), "Acme", paint)
		assert.Contains(t, out, "#0a7", tech.ID)
		assert.NotContains(t, out, `"`+svg.CurrentColor+`"`, tech.ID)
	}
}

func TestTechniqueDetails(t *testing.T) {
	p := params.Default()

	t.Run("stencil cuts one bridge per segment", func(t *testing.T) {
		st, err := svg.Inspect(RenderStencil(p, "H", svg.DefaultPaint()))
		require.NoError(t, err)
		assert.Equal(t, 1, st.Masks)
		assert.Equal(t, 1, st.Elements)
	})

	t.Run("outline draws one echo per element plus the contour", func(t *testing.T) {
		p := p
		p.ElementCount = 4
		st, err := svg.Inspect(RenderOutline(p, "A", svg.DefaultPaint()))
		require.NoError(t, err)
		assert.Equal(t, 5, st.Elements)
		assert.Equal(t, 1.5, st.MinStroke)
	})

	t.Run("modular picks circles at high corner radius", func(t *testing.T) {
		p := p
		p.CornerRadius = 40
		out := RenderModular(p, "L", svg.DefaultPaint())
		assert.Equal(t, 3, strings.Count(out, "<circle"))

		p.CornerRadius = 5
		out = RenderModular(p, "L", svg.DefaultPaint())
		assert.Equal(t, 3, strings.Count(out, "<rect"))
	})

	t.Run("construction guides only at low fill opacity", func(t *testing.T) {
		p := p
		p.FillOpacity = 0.4
		assert.Contains(t, RenderConstruction(p, "O", svg.DefaultPaint()), "<circle")
		p.FillOpacity = 0.9
		assert.NotContains(t, RenderConstruction(p, "O", svg.DefaultPaint()), "<circle")
	})

	t.Run("calligraphic skips terminals", func(t *testing.T) {
		out := RenderCalligraphic(p, "C", svg.DefaultPaint())
		assert.Equal(t, 1, strings.Count(out, "<path"))
	})

	t.Run("shadow renders three layers", func(t *testing.T) {
		assert.Equal(t, 3, strings.Count(RenderShadow(p, "Z", svg.DefaultPaint()), "<path"))
	})

	t.Run("dotted uses a dash pattern", func(t *testing.T) {
		assert.Contains(t, RenderDotted(p, "S", svg.DefaultPaint()), "stroke-dasharray")
	})

	t.Run("scale variance is applied structurally", func(t *testing.T) {
		p := p
		p.ScaleVariance = 1.2
		out := RenderMonoline(p, "L", svg.DefaultPaint())
		// L stem at x=30 scaled by 1.2 about the centre lands at x=26
		assert.Contains(t, out, "M26 14 L26 86")
	})
}
