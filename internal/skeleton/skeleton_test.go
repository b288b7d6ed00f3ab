package skeleton

import (
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEveryLetterIsModelled(t *testing.T) {
	require.Len(t, Letters(), 26)
	for r := 'A'; r <= 'Z'; r++ {
		t.Run(string(r), func(t *testing.T) {
			upper, ok := Get(r)
			require.True(t, ok)
			lower, ok := Get(unicode.ToLower(r))
			require.True(t, ok)
			assert.Same(t, upper, lower)

			require.NoError(t, upper.Validate())
			assert.NotEmpty(t, upper.SVGPath)
			assert.NotEmpty(t, upper.PrimaryAnchors())
			for _, p := range upper.Anatomy {
				for _, idx := range p.Anchors {
					assert.Less(t, idx, len(upper.Anchors))
					assert.GreaterOrEqual(t, idx, 0)
				}
			}
		})
	}
}

func TestGetMisses(t *testing.T) {
	for _, r := range []rune{'9', '#', ' ', 'é', 'Ж', 0} {
		_, ok := Get(r)
		assert.False(t, ok, "%q", r)
	}

	_, ok := ForBrand("")
	assert.False(t, ok)
	_, ok = ForBrand("9Brand")
	assert.False(t, ok)
	sk, ok := ForBrand("  nexus")
	require.True(t, ok)
	assert.Equal(t, 'N', sk.Letter)

	assert.Equal(t, '?', Initial(""))
	assert.Equal(t, 'A', Initial("acme"))
	assert.Equal(t, '#', Initial("#Brand"))
}

func TestPredicates(t *testing.T) {
	tests := []struct {
		letter    rune
		curves    bool
		diagonals bool
	}{
		{letter: 'A', curves: false, diagonals: true},
		{letter: 'E', curves: false, diagonals: false},
		{letter: 'O', curves: true, diagonals: false},
		{letter: 'R', curves: true, diagonals: true},
		{letter: 'S', curves: true, diagonals: false},
		{letter: 'K', curves: false, diagonals: true},
	}
	for _, tt := range tests {
		t.Run(string(tt.letter), func(t *testing.T) {
			sk, ok := Get(tt.letter)
			require.True(t, ok)
			assert.Equal(t, tt.curves, sk.HasCurves())
			assert.Equal(t, tt.diagonals, sk.HasDiagonals())
		})
	}
}

func TestDerivedQueries(t *testing.T) {
	a, _ := Get('A')

	t.Run("primary anchors", func(t *testing.T) {
		assert.Equal(t, []Point{{X: 50, Y: 20}, {X: 28, Y: 80}, {X: 72, Y: 80}}, a.PrimaryAnchors())
	})

	t.Run("parts of type", func(t *testing.T) {
		assert.Len(t, a.PartsOfType(Diagonal), 2)
		assert.Len(t, a.PartsOfType(Crossbar), 1)
		assert.Empty(t, a.PartsOfType(Bowl))
	})

	t.Run("bounds", func(t *testing.T) {
		min, max := a.Bounds()
		assert.Equal(t, Point{X: 28, Y: 20}, min)
		assert.Equal(t, Point{X: 72, Y: 80}, max)
	})

	t.Run("modular points are a copy", func(t *testing.T) {
		pts := a.ModularPoints()
		require.Len(t, pts, len(a.Anchors))
		pts[0] = Point{}
		assert.Equal(t, Point{X: 50, Y: 20}, a.Anchors[0])
	})

	t.Run("outline segments skip marker parts", func(t *testing.T) {
		assert.Len(t, a.OutlineSegments(), 3)
		assert.Equal(t, "M37 58 L63 58", a.OutlineSegments()[2])
	})
}

func TestStencilGaps(t *testing.T) {
	h, _ := Get('H')
	gaps := h.StencilGaps(0)
	require.Len(t, gaps, 3)
	assert.Equal(t, Point{X: 30, Y: 50}, gaps[0].Point)
	assert.InDelta(t, 90, gaps[0].Angle, 1e-9)
	assert.Equal(t, Point{X: 50, Y: 50}, gaps[2].Point)

	t.Run("margin keeps gaps inside the bounds", func(t *testing.T) {
		a, _ := Get('A')
		min, max := a.Bounds()
		for _, g := range a.StencilGaps(6) {
			assert.GreaterOrEqual(t, g.X, min.X+6)
			assert.LessOrEqual(t, g.X, max.X-6)
			assert.GreaterOrEqual(t, g.Y, min.Y+6)
			assert.LessOrEqual(t, g.Y, max.Y-6)
		}
	})

	t.Run("curved parts are cut on the curve", func(t *testing.T) {
		o, _ := Get('O')
		gaps := o.StencilGaps(0)
		require.Len(t, gaps, 1)
		assert.Equal(t, Point{X: 50, Y: 80}, gaps[0].Point)
	})
}
