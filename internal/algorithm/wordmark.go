package algorithm

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/sumitttt4/glyph/internal/params"
	"github.com/sumitttt4/glyph/internal/svg"
)

const fontStack = "Inter, Helvetica, Arial, sans-serif"

// wordmarkName is the display text, never empty. Invalid UTF-8 and
// non-printable runes are dropped so the text is always well-formed XML.
func wordmarkName(brand string) string {
	name := strings.Map(func(r rune) rune {
		if !unicode.IsPrint(r) {
			return -1
		}
		return r
	}, strings.ToValidUTF8(brand, ""))
	name = strings.TrimSpace(name)
	if name == "" {
		return "Brand"
	}
	return name
}

// fontSize fits n characters of advance-width ratio adv into width units.
func fontSize(n int, adv, width float64) float64 {
	return math.Min(32, width/(math.Max(float64(n), 1)*adv))
}

func fontWeight(p params.Vector) int {
	return 300 + int(math.Round((p.StrokeWidth-1)/7*6))*100
}

func wordText(x, y, size float64, name string, p params.Vector, paint svg.Paint, extra ...svg.Attr) string {
	attrs := []svg.Attr{
		paint.Fill(),
		svg.A("font-family", fontStack),
		svg.A("font-size", size),
		svg.A("font-weight", fontWeight(p)),
		svg.A("text-anchor", "middle"),
		svg.A("dominant-baseline", "central"),
	}
	return svg.Text(x, y, name, append(attrs, extra...)...)
}

func wordmarkPlain(p params.Vector, brand string, paint svg.Paint) string {
	name := wordmarkName(brand)
	size := fontSize(utf8.RuneCountInString(name), 0.6, 88)
	return svg.Document(paint, nil, wordText(svg.Center, svg.Center, size, name, p, paint))
}

func wordmarkSpaced(p params.Vector, brand string, paint svg.Paint) string {
	name := strings.ToUpper(wordmarkName(brand))
	n := utf8.RuneCountInString(name)
	spacing := p.SpacingRatio * 2
	size := fontSize(n, 0.62+spacing/20, 88)
	return svg.Document(paint, nil,
		wordText(svg.Center, svg.Center, size, name, p, paint, svg.A("letter-spacing", spacing)),
		svg.Line(svg.Center-30, svg.Center+size*0.8, svg.Center+30, svg.Center+size*0.8, paint.Stroke(math.Max(1, p.StrokeWidth/4))...),
	)
}

// wordmarkSymbol pairs a small lettermark disc with the name beneath it.
func wordmarkSymbol(p params.Vector, brand string, paint svg.Paint) string {
	name := wordmarkName(brand)
	size := math.Min(18, fontSize(utf8.RuneCountInString(name), 0.6, 88))
	id := maskID("wordmark-symbol", brand, p)
	disc := svg.Group([]svg.Attr{svg.Masked(id)}, svg.Circle(svg.Center, 34, 18, paint.Fill()))
	cut := svg.Group([]svg.Attr{svg.A("transform", "translate(0 -16)")}, letterCut(brand, 0.3, p.StrokeWidth*0.4+1.5))
	return svg.Document(paint,
		[]string{svg.Mask(id, cut)},
		disc,
		wordText(svg.Center, 72, size, name, p, paint),
	)
}
