package algorithm

import (
	"math"
	"strings"
	"unicode"

	"github.com/sumitttt4/glyph/internal/params"
	"github.com/sumitttt4/glyph/internal/skeleton"
	"github.com/sumitttt4/glyph/internal/svg"
	"github.com/sumitttt4/glyph/internal/svgpath"
)

// variant picks one of three positive/negative pairings for masked
// compositions.
func variant(p params.Vector) int {
	return p.CutoutPosition % 3
}

// maskID keys a mask on the brand and the whole parameter vector, so marks
// that differ in any field never share an id on one page.
func maskID(kind, brand string, p params.Vector) string {
	return svg.ID(kind, brand, p.Key())
}

// masked draws positive shapes through a mask that cuts away the negatives.
func masked(paint svg.Paint, id string, negatives []string, positive ...string) string {
	return svg.Document(paint,
		[]string{svg.Mask(id, negatives...)},
		svg.Group([]svg.Attr{svg.Masked(id)}, positive...),
	)
}

// letterPath returns the skeleton path of r scaled about the canvas centre.
func letterPath(r rune, scale float64) (string, bool) {
	sk, ok := skeleton.Get(r)
	if !ok {
		return "", false
	}
	return sk.Path().Transform(svgpath.ScaleAbout(scale, scale, svg.Center, svg.Center)).String(), true
}

// initialPath is letterPath for the first character of brand.
func initialPath(brand string, scale float64) (string, bool) {
	return letterPath(skeleton.Initial(brand), scale)
}

// letterCut is a negative stroke of the brand initial, or a negative disc when
// the initial has no skeleton.
func letterCut(brand string, scale, width float64) string {
	if d, ok := initialPath(brand, scale); ok {
		return svg.Path(d, append(svg.CutStroke(width), svg.A("stroke-linecap", "round"), svg.A("stroke-linejoin", "round"))...)
	}
	return svg.Circle(svg.Center, svg.Center, 14*scale, svg.Cut())
}

// letterInk strokes the brand initial in the paint's ink, or draws a disc when
// the initial has no skeleton.
func letterInk(brand string, scale, width float64, paint svg.Paint) string {
	if d, ok := initialPath(brand, scale); ok {
		return svg.Path(d, append(paint.Stroke(width), svg.A("stroke-linecap", "round"), svg.A("stroke-linejoin", "round"))...)
	}
	return svg.Circle(svg.Center, svg.Center, 14*scale, paint.Fill())
}

// regular returns the vertices of a regular n-gon as a flat x,y list.
func regular(n int, r, rotation, cx, cy float64) []float64 {
	out := make([]float64, 0, 2*n)
	for i := 0; i < n; i++ {
		a := (rotation + float64(i)*360/float64(n) - 90) * math.Pi / 180
		out = append(out, cx+r*math.Cos(a), cy+r*math.Sin(a))
	}
	return out
}

// polar returns the point at distance r and angle deg (0 = up) from the
// centre.
func polar(r, deg float64) (float64, float64) {
	a := (deg - 90) * math.Pi / 180
	return svg.Center + r*math.Cos(a), svg.Center + r*math.Sin(a)
}

// NameParts splits a brand name on separators and lower-to-upper case
// boundaries: "NovaPay Labs" gives ["Nova", "Pay", "Labs"].
func NameParts(name string) []string {
	var parts []string
	var cur []rune
	flush := func() {
		if len(cur) > 0 {
			parts = append(parts, string(cur))
			cur = cur[:0]
		}
	}
	var prev rune
	for _, r := range name {
		switch {
		case unicode.IsSpace(r) || r == '-' || r == '_' || r == '.' || r == '&' || r == '/':
			flush()
		case unicode.IsUpper(r) && unicode.IsLower(prev):
			flush()
			cur = append(cur, r)
		default:
			cur = append(cur, r)
		}
		prev = r
	}
	flush()
	return parts
}

// initials returns the upper-cased first rune of up to n name parts. Short
// names repeat their first rune so callers always get n runes.
func initials(brand string, n int) []rune {
	var out []rune
	for _, part := range NameParts(brand) {
		if len(out) == n {
			break
		}
		out = append(out, unicode.ToUpper([]rune(part)[0]))
	}
	if len(out) < n {
		rs := []rune(strings.ToUpper(strings.TrimSpace(brand)))
		for i := len(out); i < n; i++ {
			switch {
			case i < len(rs) && !unicode.IsSpace(rs[i]):
				out = append(out, rs[i])
			case len(out) > 0:
				out = append(out, out[0])
			default:
				out = append(out, '?')
			}
		}
	}
	return out
}
