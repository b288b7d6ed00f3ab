// Package params defines the fixed-shape parameter vector that drives every
// generator, the declarative range table that bounds it, and the preset
// override merge used by named algorithm variants.
package params

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Symmetry is the symmetry mode of a composition.
type Symmetry string

const (
	SymmetryBilateral Symmetry = "bilateral"
	SymmetryRadial    Symmetry = "radial"
	SymmetryNone      Symmetry = "none"
)

// Symmetries is the fixed bucket order used when a symmetry is derived from a
// normalised value or set through an override index.
var Symmetries = []Symmetry{SymmetryBilateral, SymmetryRadial, SymmetryNone}

// Anatomy part names eligible for the anatomy subset.
const (
	PartStem     = "stem"
	PartBowl     = "bowl"
	PartCrossbar = "crossbar"
	PartTerminal = "terminal"
)

// AnatomyPool is the fixed list the anatomy subset draws from.
var AnatomyPool = []string{PartStem, PartBowl, PartCrossbar, PartTerminal}

// Vector is the parameter vector for one generation request. It is derived
// from a seed and never mutated afterwards except through Apply.
type Vector struct {
	StrokeWidth    float64  `json:"strokeWidth" yaml:"stroke_width"`
	CornerRadius   float64  `json:"cornerRadius" yaml:"corner_radius"`
	Rotation       float64  `json:"rotation" yaml:"rotation"`
	CurveTension   float64  `json:"curveTension" yaml:"curve_tension"`
	ElementCount   int      `json:"elementCount" yaml:"element_count"`
	SpacingRatio   float64  `json:"spacingRatio" yaml:"spacing_ratio"`
	ScaleVariance  float64  `json:"scaleVariance" yaml:"scale_variance"`
	Symmetry       Symmetry `json:"symmetry" yaml:"symmetry"`
	FillOpacity    float64  `json:"fillOpacity" yaml:"fill_opacity"`
	GradientAngle  float64  `json:"gradientAngle" yaml:"gradient_angle"`
	AnatomySubset  []string `json:"anatomySubset" yaml:"anatomy_subset"`
	CutoutPosition int      `json:"cutoutPosition" yaml:"cutout_position"`
	InterlockDepth float64  `json:"interlockDepth" yaml:"interlock_depth"`
	StrokeTaper    float64  `json:"strokeTaper" yaml:"stroke_taper"`
}

// Field names a numeric field of Vector.
type Field string

const (
	StrokeWidth    Field = "strokeWidth"
	CornerRadius   Field = "cornerRadius"
	Rotation       Field = "rotation"
	CurveTension   Field = "curveTension"
	ElementCount   Field = "elementCount"
	SpacingRatio   Field = "spacingRatio"
	ScaleVariance  Field = "scaleVariance"
	SymmetryIndex  Field = "symmetry" // index into Symmetries
	FillOpacity    Field = "fillOpacity"
	GradientAngle  Field = "gradientAngle"
	AnatomySubset  Field = "anatomySubset" // index into the subset table of package seed
	CutoutPosition Field = "cutoutPosition"
	InterlockDepth Field = "interlockDepth"
	StrokeTaper    Field = "strokeTaper"
)

// Fields is the canonical field order. Seed derivation reads one word per
// field in this order, so it must never be reordered.
var Fields = []Field{
	StrokeWidth, CornerRadius, Rotation, CurveTension, ElementCount,
	SpacingRatio, ScaleVariance, SymmetryIndex, FillOpacity, GradientAngle,
	AnatomySubset, CutoutPosition, InterlockDepth, StrokeTaper,
}

// Range is the declared domain of a numeric field.
type Range struct {
	Min, Max float64
	Step     float64 // snap step, 0 = continuous
	Integer  bool
}

// Ranges is the declarative range table for every field.
var Ranges = map[Field]Range{
	StrokeWidth:    {Min: 1, Max: 8},
	CornerRadius:   {Min: 0, Max: 50},
	Rotation:       {Min: 0, Max: 360},
	CurveTension:   {Min: 0.1, Max: 1.0},
	ElementCount:   {Min: 2, Max: 6, Integer: true},
	SpacingRatio:   {Min: 0.5, Max: 2.0},
	ScaleVariance:  {Min: 0.8, Max: 1.2},
	SymmetryIndex:  {Min: 0, Max: 2, Integer: true},
	FillOpacity:    {Min: 0.3, Max: 1.0},
	GradientAngle:  {Min: 0, Max: 360, Step: 15},
	AnatomySubset:  {Min: 1, Max: 3, Integer: true}, // subset size
	CutoutPosition: {Min: 0, Max: 11, Integer: true},
	InterlockDepth: {Min: 10, Max: 90},
	StrokeTaper:    {Min: 0, Max: 100},
}

// Clamp bounds v to r, snapping to the step and rounding integers.
func (r Range) Clamp(v float64) float64 {
	if math.IsNaN(v) {
		v = r.Min
	}
	if r.Step > 0 {
		v = math.Round(v/r.Step) * r.Step
	}
	if r.Integer {
		v = math.Round(v)
	}
	return math.Max(r.Min, math.Min(r.Max, v))
}

// Clamp returns a copy of v with every field bounded to its declared range.
func (v Vector) Clamp() Vector {
	out := v
	out.StrokeWidth = Ranges[StrokeWidth].Clamp(v.StrokeWidth)
	out.CornerRadius = Ranges[CornerRadius].Clamp(v.CornerRadius)
	out.Rotation = Ranges[Rotation].Clamp(v.Rotation)
	out.CurveTension = Ranges[CurveTension].Clamp(v.CurveTension)
	out.ElementCount = int(Ranges[ElementCount].Clamp(float64(v.ElementCount)))
	out.SpacingRatio = Ranges[SpacingRatio].Clamp(v.SpacingRatio)
	out.ScaleVariance = Ranges[ScaleVariance].Clamp(v.ScaleVariance)
	out.FillOpacity = Ranges[FillOpacity].Clamp(v.FillOpacity)
	out.GradientAngle = Ranges[GradientAngle].Clamp(v.GradientAngle)
	out.CutoutPosition = int(Ranges[CutoutPosition].Clamp(float64(v.CutoutPosition)))
	out.InterlockDepth = Ranges[InterlockDepth].Clamp(v.InterlockDepth)
	out.StrokeTaper = Ranges[StrokeTaper].Clamp(v.StrokeTaper)

	switch v.Symmetry {
	case SymmetryBilateral, SymmetryRadial, SymmetryNone:
	default:
		out.Symmetry = SymmetryBilateral
	}
	out.AnatomySubset = cleanSubset(v.AnatomySubset)
	return out
}

// cleanSubset keeps known, unique part names in pool order, capped at three.
// An empty result falls back to the stem.
func cleanSubset(in []string) []string {
	seen := make(map[string]bool, len(in))
	for _, p := range in {
		seen[p] = true
	}
	out := make([]string, 0, 3)
	for _, p := range AnatomyPool {
		if seen[p] && len(out) < 3 {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		out = append(out, PartStem)
	}
	return out
}

// Validate reports the first field that lies outside its declared range.
func (v Vector) Validate() error {
	check := func(f Field, x float64) error {
		r := Ranges[f]
		if x < r.Min || x > r.Max {
			return fmt.Errorf("%s=%v outside [%v, %v]", f, x, r.Min, r.Max)
		}
		if r.Integer && x != math.Trunc(x) {
			return fmt.Errorf("%s=%v must be an integer", f, x)
		}
		return nil
	}
	for _, c := range []struct {
		f Field
		x float64
	}{
		{StrokeWidth, v.StrokeWidth}, {CornerRadius, v.CornerRadius}, {Rotation, v.Rotation},
		{CurveTension, v.CurveTension}, {ElementCount, float64(v.ElementCount)},
		{SpacingRatio, v.SpacingRatio}, {ScaleVariance, v.ScaleVariance},
		{FillOpacity, v.FillOpacity}, {GradientAngle, v.GradientAngle},
		{CutoutPosition, float64(v.CutoutPosition)}, {InterlockDepth, v.InterlockDepth},
		{StrokeTaper, v.StrokeTaper},
	} {
		if err := check(c.f, c.x); err != nil {
			return err
		}
	}
	if math.Mod(v.GradientAngle, 15) != 0 {
		return fmt.Errorf("%s=%v is not a multiple of 15", GradientAngle, v.GradientAngle)
	}
	if n := len(v.AnatomySubset); n < 1 || n > 3 {
		return fmt.Errorf("%s has %d entries, want 1-3", AnatomySubset, n)
	}
	return nil
}

// HasPart reports whether the anatomy subset contains part.
func (v Vector) HasPart(part string) bool {
	for _, p := range v.AnatomySubset {
		if p == part {
			return true
		}
	}
	return false
}

// Key is a canonical encoding of every field. Equal vectors have equal keys.
func (v Vector) Key() string {
	return fmt.Sprintf("%g|%g|%g|%g|%d|%g|%g|%s|%g|%g|%s|%d|%g|%g",
		v.StrokeWidth, v.CornerRadius, v.Rotation, v.CurveTension, v.ElementCount,
		v.SpacingRatio, v.ScaleVariance, v.Symmetry, v.FillOpacity, v.GradientAngle,
		strings.Join(v.AnatomySubset, ","), v.CutoutPosition, v.InterlockDepth, v.StrokeTaper)
}

// Default returns a mid-range vector, used when a caller supplies no seed.
func Default() Vector {
	return Vector{
		StrokeWidth:    4,
		CornerRadius:   12,
		Rotation:       0,
		CurveTension:   0.5,
		ElementCount:   3,
		SpacingRatio:   1,
		ScaleVariance:  1,
		Symmetry:       SymmetryBilateral,
		FillOpacity:    0.8,
		GradientAngle:  45,
		AnatomySubset:  []string{PartStem, PartBowl},
		CutoutPosition: 0,
		InterlockDepth: 50,
		StrokeTaper:    40,
	}
}

// Overrides is a fixed set of field values forced onto a caller's vector.
// Symmetry is given as an index into Symmetries.
type Overrides map[Field]float64

// Keys returns the overridden fields in canonical order.
func (o Overrides) Keys() []Field {
	keys := make([]Field, 0, len(o))
	for k := range o {
		keys = append(keys, k)
	}
	order := make(map[Field]int, len(Fields))
	for i, f := range Fields {
		order[f] = i
	}
	sort.Slice(keys, func(i, j int) bool { return order[keys[i]] < order[keys[j]] })
	return keys
}

// Apply merges overrides onto v. Overrides take precedence; the result is
// clamped so a preset can never push a field out of range. AnatomySubset
// overrides set the subset size, keeping the first entries of the pool order.
func Apply(v Vector, o Overrides) Vector {
	out := v
	out.AnatomySubset = append([]string(nil), v.AnatomySubset...)
	for f, x := range o {
		switch f {
		case StrokeWidth:
			out.StrokeWidth = x
		case CornerRadius:
			out.CornerRadius = x
		case Rotation:
			out.Rotation = x
		case CurveTension:
			out.CurveTension = x
		case ElementCount:
			out.ElementCount = int(math.Round(x))
		case SpacingRatio:
			out.SpacingRatio = x
		case ScaleVariance:
			out.ScaleVariance = x
		case SymmetryIndex:
			i := int(Ranges[SymmetryIndex].Clamp(x))
			out.Symmetry = Symmetries[i]
		case FillOpacity:
			out.FillOpacity = x
		case GradientAngle:
			out.GradientAngle = x
		case AnatomySubset:
			n := int(Ranges[AnatomySubset].Clamp(x))
			out.AnatomySubset = append([]string(nil), AnatomyPool[:n]...)
		case CutoutPosition:
			out.CutoutPosition = int(math.Round(x))
		case InterlockDepth:
			out.InterlockDepth = x
		case StrokeTaper:
			out.StrokeTaper = x
		}
	}
	return out.Clamp()
}
