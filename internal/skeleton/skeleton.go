// Package skeleton holds the anatomical model of the 26 Latin capitals: anchor
// points, named anatomy parts and a composite path, all on the shared 100×100
// canvas.
//
// The table is built once at init and is read-only afterwards. Lookups for
// anything outside A–Z miss; callers are expected to draw their own fallback
// shape in that case.
package skeleton

import (
	"fmt"
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/sumitttt4/glyph/internal/svg"
	"github.com/sumitttt4/glyph/internal/svgpath"
)

// Point is an anchor position in canvas units.
type Point = svgpath.Point

// PartType names an anatomical component of a letterform.
type PartType string

const (
	Stem     PartType = "stem"
	Bowl     PartType = "bowl"
	Crossbar PartType = "crossbar"
	Diagonal PartType = "diagonal"
	Terminal PartType = "terminal"
	Apex     PartType = "apex"
	Vertex   PartType = "vertex"
	Arm      PartType = "arm"
	Leg      PartType = "leg"
	Spine    PartType = "spine"
	Bar      PartType = "bar"
	Tail     PartType = "tail"
	Hook     PartType = "hook"
	Arc      PartType = "arc"
	Loop     PartType = "loop"
	Shoulder PartType = "shoulder"
)

// Curved reports whether parts of this type are drawn as curves.
func (t PartType) Curved() bool {
	switch t {
	case Bowl, Spine, Hook, Arc, Loop, Shoulder, Tail:
		return true
	}
	return false
}

// Part is one anatomy component. Anchors index into the owning skeleton's
// anchor list. Single-anchor parts (apex, vertex, terminal) mark a location
// and carry no path.
type Part struct {
	Type    PartType `json:"type"`
	Anchors []int    `json:"anchors"`
	Primary bool     `json:"primary,omitempty"`
	Path    string   `json:"path,omitempty"`
}

// Skeleton is the anatomical model of one letter.
type Skeleton struct {
	Letter           rune    `json:"letter"`
	Anchors          []Point `json:"anchors"`
	Anatomy          []Part  `json:"anatomy"`
	SVGPath          string  `json:"svgPath"`
	StrokeWidthRatio float64 `json:"strokeWidthRatio"`
}

var table map[rune]*Skeleton

func init() {
	table = make(map[rune]*Skeleton, len(letters))
	for _, s := range letters {
		sk := build(s)
		if err := sk.Validate(); err != nil {
			panic(fmt.Sprintf("skeleton: %v", err))
		}
		table[sk.Letter] = sk
	}
}

// build fills straight-part paths from their anchors and assembles the
// composite path.
func build(s letterDef) *Skeleton {
	sk := &Skeleton{
		Letter:           s.letter,
		Anchors:          s.anchors,
		StrokeWidthRatio: s.ratio,
		Anatomy:          make([]Part, len(s.parts)),
	}
	var paths []string
	for i, p := range s.parts {
		if p.Path == "" && len(p.Anchors) > 1 {
			var b strings.Builder
			for j, idx := range p.Anchors {
				if idx < 0 || idx >= len(s.anchors) {
					break
				}
				if j == 0 {
					b.WriteString("M")
				} else {
					b.WriteString(" L")
				}
				a := s.anchors[idx]
				b.WriteString(svg.Num(a.X) + " " + svg.Num(a.Y))
			}
			p.Path = b.String()
		}
		sk.Anatomy[i] = p
		if p.Path != "" {
			paths = append(paths, p.Path)
		}
	}
	sk.SVGPath = strings.Join(paths, " ")
	return sk
}

// Get returns the skeleton for letter, case-insensitively. The returned
// skeleton is shared and must not be modified.
func Get(letter rune) (*Skeleton, bool) {
	sk, ok := table[unicode.ToUpper(letter)]
	return sk, ok
}

// ForBrand returns the skeleton of the first character of brand.
func ForBrand(brand string) (*Skeleton, bool) {
	r, _ := utf8.DecodeRuneInString(strings.TrimSpace(brand))
	if r == utf8.RuneError {
		return nil, false
	}
	return Get(r)
}

// Initial returns the upper-cased first character of brand, or '?' for an
// empty name.
func Initial(brand string) rune {
	r, _ := utf8.DecodeRuneInString(strings.TrimSpace(brand))
	if r == utf8.RuneError {
		return '?'
	}
	return unicode.ToUpper(r)
}

// Letters returns every modelled letter in alphabetical order.
func Letters() []rune {
	out := make([]rune, 0, len(letters))
	for _, s := range letters {
		out = append(out, s.letter)
	}
	return out
}

// Validate checks that every anchor index referenced by a part is in range and
// that the composite path parses.
func (s *Skeleton) Validate() error {
	if len(s.Anchors) == 0 {
		return fmt.Errorf("letter %c has no anchors", s.Letter)
	}
	primary := false
	for i, p := range s.Anatomy {
		if len(p.Anchors) == 0 {
			return fmt.Errorf("letter %c part %d (%s) references no anchors", s.Letter, i, p.Type)
		}
		for _, idx := range p.Anchors {
			if idx < 0 || idx >= len(s.Anchors) {
				return fmt.Errorf("letter %c part %d (%s) references anchor %d of %d", s.Letter, i, p.Type, idx, len(s.Anchors))
			}
		}
		primary = primary || p.Primary
	}
	if !primary {
		return fmt.Errorf("letter %c has no primary part", s.Letter)
	}
	if _, err := svgpath.Parse(s.SVGPath); err != nil {
		return fmt.Errorf("letter %c path: %w", s.Letter, err)
	}
	return nil
}

// Path returns the parsed composite path.
func (s *Skeleton) Path() svgpath.Path {
	return svgpath.MustParse(s.SVGPath)
}

// PrimaryAnchors returns the anchors referenced by primary parts, in first
// reference order without duplicates.
func (s *Skeleton) PrimaryAnchors() []Point {
	seen := make(map[int]bool)
	var out []Point
	for _, p := range s.Anatomy {
		if !p.Primary {
			continue
		}
		for _, idx := range p.Anchors {
			if !seen[idx] {
				seen[idx] = true
				out = append(out, s.Anchors[idx])
			}
		}
	}
	return out
}

// PartsOfType returns the parts of type t in anatomy order.
func (s *Skeleton) PartsOfType(t PartType) []Part {
	var out []Part
	for _, p := range s.Anatomy {
		if p.Type == t {
			out = append(out, p)
		}
	}
	return out
}

// Bounds returns the box covering every anchor and path point.
func (s *Skeleton) Bounds() (min, max Point) {
	min, max = s.Anchors[0], s.Anchors[0]
	grow := func(p Point) {
		min.X, min.Y = math.Min(min.X, p.X), math.Min(min.Y, p.Y)
		max.X, max.Y = math.Max(max.X, p.X), math.Max(max.Y, p.Y)
	}
	for _, a := range s.Anchors {
		grow(a)
	}
	if lo, hi, ok := s.Path().Bounds(); ok {
		grow(lo)
		grow(hi)
	}
	return min, max
}

// HasCurves reports whether any part draws a curve.
func (s *Skeleton) HasCurves() bool {
	for _, p := range s.Anatomy {
		if p.Path != "" && svgpath.MustParse(p.Path).HasCurves() {
			return true
		}
	}
	return false
}

// HasDiagonals reports whether the letter has a diagonal part or any straight
// segment that is neither horizontal nor vertical.
func (s *Skeleton) HasDiagonals() bool {
	if len(s.PartsOfType(Diagonal)) > 0 {
		return true
	}
	for _, seg := range s.Path().Lines() {
		dx := math.Abs(seg[1].X - seg[0].X)
		dy := math.Abs(seg[1].Y - seg[0].Y)
		if dx > 0.5 && dy > 0.5 {
			return true
		}
	}
	return false
}

// ModularPoints returns every anchor, for unit placement.
func (s *Skeleton) ModularPoints() []Point {
	return append([]Point(nil), s.Anchors...)
}

// Gap is a stencil cut position with the direction of the part it breaks.
type Gap struct {
	Point
	Angle float64 // degrees
}

// StencilGaps returns one gap per multi-anchor part. Straight parts are cut at
// the midpoint of their first and last anchors; curved parts at their middle
// anchor, which lies on the curve. Every gap is kept at least margin inside
// the skeleton bounds.
func (s *Skeleton) StencilGaps(margin float64) []Gap {
	lo, hi := s.Bounds()
	clamp := func(v, a, b float64) float64 {
		if a+margin > b-margin {
			return (a + b) / 2
		}
		return math.Max(a+margin, math.Min(b-margin, v))
	}
	var out []Gap
	for _, p := range s.Anatomy {
		if len(p.Anchors) < 2 {
			continue
		}
		first, last := s.Anchors[p.Anchors[0]], s.Anchors[p.Anchors[len(p.Anchors)-1]]
		at := Point{X: (first.X + last.X) / 2, Y: (first.Y + last.Y) / 2}
		angle := math.Atan2(last.Y-first.Y, last.X-first.X) * 180 / math.Pi
		if p.Type.Curved() && len(p.Anchors) > 2 {
			mid := len(p.Anchors) / 2
			at = s.Anchors[p.Anchors[mid]]
			prev, next := s.Anchors[p.Anchors[mid-1]], s.Anchors[p.Anchors[mid+1]]
			angle = math.Atan2(next.Y-prev.Y, next.X-prev.X) * 180 / math.Pi
		}
		out = append(out, Gap{
			Point: Point{X: clamp(at.X, lo.X, hi.X), Y: clamp(at.Y, lo.Y, hi.Y)},
			Angle: angle,
		})
	}
	return out
}

// OutlineSegments returns the path of every part that draws something.
func (s *Skeleton) OutlineSegments() []string {
	var out []string
	for _, p := range s.Anatomy {
		if p.Path != "" {
			out = append(out, p.Path)
		}
	}
	return out
}
