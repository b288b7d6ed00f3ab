package algorithm

import (
	"github.com/sumitttt4/glyph/internal/params"
	"github.com/sumitttt4/glyph/internal/svg"
)

// Geometric trinity: three copies of one form rotated 120° apart, with a
// central negative picked by variant(p).

func trinityCut(p params.Vector, r float64) []string {
	switch variant(p) {
	case 0:
		return []string{svg.Circle(svg.Center, svg.Center, r, svg.Cut())}
	case 1:
		return []string{svg.Polygon(regular(3, r*1.3, 180+p.Rotation, svg.Center, svg.Center), svg.Cut())}
	default:
		var out []string
		for i := 0; i < 3; i++ {
			x, y := polar(r*1.6, p.Rotation+float64(i)*120+60)
			out = append(out, svg.Circle(x, y, r*0.35, svg.Cut()))
		}
		return out
	}
}

func trinityTriangles(p params.Vector, brand string, paint svg.Paint) string {
	var forms []string
	for i := 0; i < 3; i++ {
		cx, cy := polar(14*p.ScaleVariance, p.Rotation+float64(i)*120)
		forms = append(forms, svg.Polygon(regular(3, 18*p.ScaleVariance, p.Rotation+float64(i)*120, cx, cy),
			paint.Fill(), svg.A("fill-opacity", p.FillOpacity)))
	}
	return masked(paint, maskID("trinity-tri", brand, p), trinityCut(p, 6), forms...)
}

func trinityCircles(p params.Vector, brand string, paint svg.Paint) string {
	var forms []string
	r := 19 * p.ScaleVariance
	for i := 0; i < 3; i++ {
		cx, cy := polar(r*(0.5+p.SpacingRatio*0.25), p.Rotation+float64(i)*120)
		forms = append(forms, svg.Circle(cx, cy, r, paint.Fill(), svg.A("fill-opacity", p.FillOpacity)))
	}
	return masked(paint, maskID("trinity-circle", brand, p), trinityCut(p, 5), forms...)
}

func trinityPetals(p params.Vector, brand string, paint svg.Paint) string {
	var forms []string
	for i := 0; i < 3; i++ {
		angle := p.Rotation + float64(i)*120
		cx, cy := polar(15*p.ScaleVariance, angle)
		forms = append(forms, svg.Ellipse(cx, cy, 10*p.ScaleVariance+p.CurveTension*4, 20*p.ScaleVariance,
			paint.Fill(), svg.A("fill-opacity", p.FillOpacity), rotateAt(angle, cx, cy)))
	}
	return masked(paint, maskID("trinity-petal", brand, p), trinityCut(p, 5), forms...)
}

// rotateAt is a rotation transform about (x, y).
func rotateAt(deg, x, y float64) svg.Attr {
	if deg == 0 {
		return svg.Attr{}
	}
	return svg.A("transform", "rotate("+svg.Num(deg)+" "+svg.Num(x)+" "+svg.Num(y)+")")
}
