package seed

import (
	"math"

	"github.com/sumitttt4/glyph/internal/params"
)

// AnatomySubsets is the fixed table the anatomy-subset field indexes into.
var AnatomySubsets = [][]string{
	{params.PartStem},
	{params.PartBowl},
	{params.PartStem, params.PartBowl},
	{params.PartStem, params.PartCrossbar},
	{params.PartBowl, params.PartTerminal},
	{params.PartCrossbar, params.PartTerminal},
	{params.PartStem, params.PartBowl, params.PartCrossbar},
	{params.PartStem, params.PartBowl, params.PartTerminal},
}

// word returns the 16-bit big-endian word at byte offset off, wrapping around
// short inputs. An empty input yields zero.
func word(b []byte, off int) uint32 {
	if len(b) == 0 {
		return 0
	}
	hi := uint32(b[off%len(b)])
	lo := uint32(b[(off+1)%len(b)])
	return hi<<8 | lo
}

const wordMax = 0xffff

// scaled maps w onto [min, max] in hundredths, using integer arithmetic so the
// result is identical on every platform.
func scaled(w uint32, r params.Range) float64 {
	lo := int64(math.Round(r.Min * 100))
	span := uint32(math.Round((r.Max - r.Min) * 100))
	hundredths := int64(w * span / wordMax)
	return r.Clamp(float64(lo+hundredths) / 100)
}

// bucket maps w onto [0, n) using integer arithmetic.
func bucket(w uint32, n int) int {
	return int(w * uint32(n) / (wordMax + 1))
}

// DeriveParams slices s into a parameter vector. Field i reads the word at
// byte offset 2*i in params.Fields order.
func DeriveParams(s Seed) params.Vector {
	b := s.Bytes()
	w := func(f params.Field) uint32 {
		for i, x := range params.Fields {
			if x == f {
				return word(b, 2*i)
			}
		}
		return 0
	}
	r := params.Ranges

	v := params.Vector{
		StrokeWidth:    scaled(w(params.StrokeWidth), r[params.StrokeWidth]),
		CornerRadius:   scaled(w(params.CornerRadius), r[params.CornerRadius]),
		Rotation:       scaled(w(params.Rotation), r[params.Rotation]),
		CurveTension:   scaled(w(params.CurveTension), r[params.CurveTension]),
		ElementCount:   int(r[params.ElementCount].Min) + bucket(w(params.ElementCount), 5),
		SpacingRatio:   scaled(w(params.SpacingRatio), r[params.SpacingRatio]),
		ScaleVariance:  scaled(w(params.ScaleVariance), r[params.ScaleVariance]),
		Symmetry:       params.Symmetries[bucket(w(params.SymmetryIndex), len(params.Symmetries))],
		FillOpacity:    scaled(w(params.FillOpacity), r[params.FillOpacity]),
		GradientAngle:  float64(bucket(w(params.GradientAngle), 25) * 15),
		AnatomySubset:  append([]string(nil), AnatomySubsets[bucket(w(params.AnatomySubset), len(AnatomySubsets))]...),
		CutoutPosition: bucket(w(params.CutoutPosition), 12),
		InterlockDepth: scaled(w(params.InterlockDepth), r[params.InterlockDepth]),
		StrokeTaper:    scaled(w(params.StrokeTaper), r[params.StrokeTaper]),
	}
	return v.Clamp()
}

// SelectIndex reduces bytes 0..3 of s, read as a big-endian uint32, modulo n.
// It returns 0 when n is not positive.
func SelectIndex(s Seed, n int) int {
	if n <= 0 {
		return 0
	}
	b := s.Bytes()
	v := word(b, 0)<<16 | word(b, 2)
	return int(v % uint32(n))
}

// BatchQuality maps bytes 4..5 of s into [85, 99].
func BatchQuality(s Seed) int {
	return 85 + int(word(s.Bytes(), 4)%15)
}
