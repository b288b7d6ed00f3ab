package algorithm

import (
	"github.com/sumitttt4/glyph/internal/params"
	"github.com/sumitttt4/glyph/internal/svg"
)

// Premium compositions: one solid positive form with a negative shape masked
// out of it. variant(p) picks the negative.

func premiumCube(p params.Vector, brand string, paint svg.Paint) string {
	s := 30 * p.ScaleVariance
	w := s * 0.866
	c := svg.Center
	top := []float64{c, c - s, c + w, c - s/2, c, c, c - w, c - s/2}
	left := []float64{c - w, c - s/2, c, c, c, c + s, c - w, c + s/2}
	right := []float64{c + w, c - s/2, c + w, c + s/2, c, c + s, c, c}

	var cut string
	switch variant(p) {
	case 0:
		cut = svg.Circle(c, c, s*0.28, svg.Cut())
	case 1:
		cut = letterCut(brand, 0.45*p.ScaleVariance, p.StrokeWidth*0.6+1.5)
	default:
		d := s * 0.3
		cut = svg.Polygon([]float64{c, c - d, c + d, c, c, c + d, c - d, c}, svg.Cut())
	}
	return masked(paint, maskID("cube", brand, p), []string{cut},
		svg.Polygon(top, paint.Fill()),
		svg.Polygon(left, paint.Fill(), svg.A("fill-opacity", 0.72)),
		svg.Polygon(right, paint.Fill(), svg.A("fill-opacity", 0.46)),
	)
}

func premiumOrb(p params.Vector, brand string, paint svg.Paint) string {
	r := 30 * p.ScaleVariance
	c := svg.Center
	var cuts []string
	switch variant(p) {
	case 0:
		off := r * (0.2 + p.InterlockDepth/250)
		cuts = append(cuts, svg.Circle(c+off, c-off, r*0.78, svg.Cut()))
	case 1:
		cuts = append(cuts, letterCut(brand, 0.5*p.ScaleVariance, p.StrokeWidth*0.6+1.5))
	default:
		n := p.ElementCount
		gap := 2 * r / float64(n+1)
		h := 1 + p.StrokeWidth*0.4
		for i := 1; i <= n; i++ {
			y := c - r + float64(i)*gap
			cuts = append(cuts, svg.Rect(c-r, y-h/2, 2*r, h, svg.Cut()))
		}
	}
	// The orb is shaded along the gradient angle, fading towards fill opacity.
	id := maskID("orb", brand, p)
	grad := svg.ID("orb-shade", id, svg.Num(p.GradientAngle), svg.Num(p.FillOpacity))
	return svg.Document(paint,
		[]string{
			svg.Mask(id, cuts...),
			svg.LinearGradient(grad, p.GradientAngle, paint, svg.Stop{Offset: 0, Opacity: 1}, svg.Stop{Offset: 1, Opacity: p.FillOpacity}),
		},
		svg.Group([]svg.Attr{svg.Masked(id)},
			svg.Circle(c, c, r, svg.A("fill", "url(#"+grad+")")),
		),
	)
}

const shield = "M50 18 L76 27 V48 C76 64 65 75 50 82 C35 75 24 64 24 48 V27 Z"

func premiumShield(p params.Vector, brand string, paint svg.Paint) string {
	var cut string
	switch variant(p) {
	case 0:
		w := 3 + p.StrokeWidth*0.7
		cut = svg.Polyline([]float64{36, 44, 50, 56, 64, 44}, append(svg.CutStroke(w), svg.A("stroke-linejoin", "miter"))...)
	case 1:
		cut = letterCut(brand, 0.42, p.StrokeWidth*0.6+1.5)
	default:
		cut = svg.Circle(50, 48, 9+p.CornerRadius/10, svg.Cut())
	}
	return masked(paint, maskID("shield", brand, p), []string{cut},
		svg.Path(shield, paint.Fill()),
	)
}

func premiumHex(p params.Vector, brand string, paint svg.Paint) string {
	r := 30 * p.ScaleVariance
	rot := float64(int(p.Rotation/30)%2) * 30
	outer := regular(6, r, rot, svg.Center, svg.Center)
	var cut string
	switch variant(p) {
	case 0:
		cut = svg.Polygon(regular(6, r*0.45, rot, svg.Center, svg.Center), svg.Cut())
	case 1:
		cut = letterCut(brand, 0.45*p.ScaleVariance, p.StrokeWidth*0.6+1.5)
	default:
		cut = svg.Polygon(regular(3, r*0.5, rot, svg.Center, svg.Center), svg.Cut())
	}
	return masked(paint, maskID("hex", brand, p), []string{cut},
		svg.Polygon(outer, paint.Fill()),
	)
}
