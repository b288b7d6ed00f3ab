package params

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRangeClamp(t *testing.T) {
	tests := []struct {
		name string
		r    Range
		in   float64
		want float64
	}{
		{name: "below min", r: Ranges[StrokeWidth], in: -3, want: 1},
		{name: "above max", r: Ranges[StrokeWidth], in: 12, want: 8},
		{name: "inside", r: Ranges[StrokeWidth], in: 2.5, want: 2.5},
		{name: "integer rounding", r: Ranges[ElementCount], in: 3.6, want: 4},
		{name: "step snapping", r: Ranges[GradientAngle], in: 37, want: 30},
		{name: "step snapping up", r: Ranges[GradientAngle], in: 38, want: 45},
		{name: "NaN becomes min", r: Ranges[FillOpacity], in: math.NaN(), want: 0.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.r.Clamp(tt.in))
		})
	}
}

func TestVectorClamp(t *testing.T) {
	v := Vector{
		StrokeWidth:    100,
		CornerRadius:   -1,
		Rotation:       720,
		CurveTension:   0,
		ElementCount:   99,
		SpacingRatio:   0,
		ScaleVariance:  3,
		Symmetry:       "spiral",
		FillOpacity:    0,
		GradientAngle:  7,
		AnatomySubset:  []string{"bowl", "tail", "bowl", "stem"},
		CutoutPosition: -4,
		InterlockDepth: 500,
		StrokeTaper:    -10,
	}

	got := v.Clamp()
	require.NoError(t, got.Validate())
	assert.Equal(t, 8.0, got.StrokeWidth)
	assert.Equal(t, 6, got.ElementCount)
	assert.Equal(t, SymmetryBilateral, got.Symmetry)
	assert.Equal(t, 0.0, got.GradientAngle)
	assert.Equal(t, []string{PartStem, PartBowl}, got.AnatomySubset)
	assert.Equal(t, 0, got.CutoutPosition)

	t.Run("empty subset falls back to stem", func(t *testing.T) {
		assert.Equal(t, []string{PartStem}, Vector{}.Clamp().AnatomySubset)
	})
}

func TestValidate(t *testing.T) {
	require.NoError(t, Default().Validate())

	v := Default()
	v.StrokeWidth = 9
	assert.ErrorContains(t, v.Validate(), "strokeWidth")

	v = Default()
	v.GradientAngle = 20
	assert.ErrorContains(t, v.Validate(), "multiple of 15")

	v = Default()
	v.AnatomySubset = nil
	assert.ErrorContains(t, v.Validate(), "anatomySubset")
}

func TestApply(t *testing.T) {
	base := Default()

	t.Run("overrides take precedence", func(t *testing.T) {
		got := Apply(base, Overrides{StrokeWidth: 7, SpacingRatio: 1.8})
		assert.Equal(t, 7.0, got.StrokeWidth)
		assert.Equal(t, 1.8, got.SpacingRatio)
		assert.Equal(t, base.CornerRadius, got.CornerRadius)
	})

	t.Run("overrides are clamped", func(t *testing.T) {
		got := Apply(base, Overrides{StrokeWidth: 40, ElementCount: 1})
		assert.Equal(t, 8.0, got.StrokeWidth)
		assert.Equal(t, 2, got.ElementCount)
	})

	t.Run("symmetry by index", func(t *testing.T) {
		assert.Equal(t, SymmetryRadial, Apply(base, Overrides{SymmetryIndex: 1}).Symmetry)
		assert.Equal(t, SymmetryNone, Apply(base, Overrides{SymmetryIndex: 9}).Symmetry)
	})

	t.Run("subset size", func(t *testing.T) {
		got := Apply(base, Overrides{AnatomySubset: 3})
		assert.Equal(t, []string{PartStem, PartBowl, PartCrossbar}, got.AnatomySubset)
	})

	t.Run("caller vector is not mutated", func(t *testing.T) {
		orig := Default()
		_ = Apply(orig, Overrides{AnatomySubset: 1, StrokeWidth: 1})
		assert.Equal(t, Default(), orig)
	})

	t.Run("nil overrides only clamp", func(t *testing.T) {
		assert.Equal(t, base.Clamp(), Apply(base, nil))
	})
}

func TestOverridesKeys(t *testing.T) {
	o := Overrides{StrokeTaper: 1, StrokeWidth: 2, SymmetryIndex: 0}
	assert.Equal(t, []Field{StrokeWidth, SymmetryIndex, StrokeTaper}, o.Keys())
}

func TestVectorKey(t *testing.T) {
	base := Default()
	assert.Equal(t, base.Key(), Default().Key())

	tweaks := map[string]func(v *Vector){
		"stroke width":    func(v *Vector) { v.StrokeWidth++ },
		"scale variance":  func(v *Vector) { v.ScaleVariance = 1.1 },
		"element count":   func(v *Vector) { v.ElementCount++ },
		"interlock depth": func(v *Vector) { v.InterlockDepth += 5 },
		"symmetry":        func(v *Vector) { v.Symmetry = SymmetryRadial },
		"anatomy":         func(v *Vector) { v.AnatomySubset = []string{PartBowl} },
		"taper":           func(v *Vector) { v.StrokeTaper += 1 },
	}
	for name, tweak := range tweaks {
		t.Run(name, func(t *testing.T) {
			v := Default()
			v.AnatomySubset = append([]string(nil), base.AnatomySubset...)
			tweak(&v)
			assert.NotEqual(t, base.Key(), v.Key())
		})
	}
}

func TestHasPart(t *testing.T) {
	v := Default()
	assert.True(t, v.HasPart(PartBowl))
	assert.False(t, v.HasPart(PartTerminal))
}
