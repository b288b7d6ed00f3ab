package algorithm

import (
	"github.com/sumitttt4/glyph/internal/params"
	"github.com/sumitttt4/glyph/internal/svg"
	"github.com/sumitttt4/glyph/internal/svgpath"
)

func monogramRing(p params.Vector, brand string, paint svg.Paint) string {
	return svg.Document(paint, nil,
		svg.Circle(svg.Center, svg.Center, 38, paint.Stroke(p.StrokeWidth*0.6+1)...),
		letterInk(brand, 0.62, p.StrokeWidth+1.5, paint),
	)
}

func monogramTile(p params.Vector, brand string, paint svg.Paint) string {
	r := p.CornerRadius / 50 * 20
	return svg.Document(paint, nil,
		svg.Rect(14, 14, 72, 72, append(paint.Stroke(p.StrokeWidth*0.6+1), svg.A("rx", r))...),
		letterInk(brand, 0.62, p.StrokeWidth+1.5, paint),
	)
}

// monogramSplit sets two initials side by side with a rule between them.
func monogramSplit(p params.Vector, brand string, paint svg.Paint) string {
	rs := initials(brand, 2)
	width := p.StrokeWidth + 1
	body := []string{svg.Line(svg.Center, 28, svg.Center, 72, paint.Stroke(p.StrokeWidth*0.4+0.5)...)}
	for i, r := range rs {
		dx := -18.0
		if i == 1 {
			dx = 18
		}
		attrs := append(paint.Stroke(width), svg.A("stroke-linecap", "round"), svg.A("stroke-linejoin", "round"))
		if d, ok := letterPath(r, 0.5); ok {
			body = append(body, svg.Path(svgpath.MustParse(d).Transform(svgpath.Translate(dx, 0)).String(), attrs...))
		} else {
			body = append(body, svg.Circle(svg.Center+dx, svg.Center, 10, attrs...))
		}
	}
	return svg.Document(paint, nil, body...)
}

// monogramStripe draws a heavy initial sliced by horizontal negative rules.
func monogramStripe(p params.Vector, brand string, paint svg.Paint) string {
	n := p.ElementCount + 2
	h := 0.8 + p.SpacingRatio
	step := 64.0 / float64(n+1)
	var cuts []string
	for i := 1; i <= n; i++ {
		y := 18 + float64(i)*step
		cuts = append(cuts, svg.Rect(0, y-h/2, svg.Size, h, svg.Cut()))
	}
	return masked(paint, maskID("stripe", brand, p), cuts,
		letterInk(brand, 0.8, p.StrokeWidth*1.5+6, paint))
}
