package algorithm

import (
	"github.com/sumitttt4/glyph/internal/params"
	"github.com/sumitttt4/glyph/internal/svg"
	"github.com/sumitttt4/glyph/internal/svgpath"
)

// fusionEmblem knocks the brand initial out of a solid container. The
// container is a disc, a rounded tile or a hexagon.
func fusionEmblem(p params.Vector, brand string, paint svg.Paint) string {
	r := 32 * p.ScaleVariance
	var container string
	switch variant(p) {
	case 0:
		container = svg.Circle(svg.Center, svg.Center, r, paint.Fill())
	case 1:
		container = svg.Rect(svg.Center-r, svg.Center-r, 2*r, 2*r, paint.Fill(), svg.A("rx", p.CornerRadius/50*r))
	default:
		container = svg.Polygon(regular(6, r*1.08, 30, svg.Center, svg.Center), paint.Fill())
	}
	cut := letterCut(brand, 0.62*p.ScaleVariance, p.StrokeWidth*0.8+2)
	return masked(paint, maskID("emblem", brand, p), []string{cut}, container)
}

// fusionPair overlays the first two initials. The second is shifted by the
// interlock depth and drawn lighter so the crossing reads.
func fusionPair(p params.Vector, brand string, paint svg.Paint) string {
	rs := initials(brand, 2)
	shift := 6 + (100-p.InterlockDepth)/6
	width := p.StrokeWidth + 2
	draw := func(r rune, dx, opacity float64) string {
		attrs := append(paint.Stroke(width), svg.A("stroke-opacity", opacity), svg.A("stroke-linecap", "round"), svg.A("stroke-linejoin", "round"))
		d, ok := letterPath(r, 0.7)
		if !ok {
			return svg.Circle(svg.Center+dx, svg.Center, 16, attrs...)
		}
		return svg.Path(svgpath.MustParse(d).Transform(svgpath.Translate(dx, 0)).String(), attrs...)
	}
	return svg.Document(paint, nil,
		draw(rs[0], -shift, 1),
		draw(rs[1], shift, p.FillOpacity),
	)
}

// fusionOrbit draws the initial inside a partial ring whose opening follows
// the rotation.
func fusionOrbit(p params.Vector, brand string, paint svg.Paint) string {
	r := 36.0
	sweep := 240 + p.CurveTension*90
	x1, y1 := polar(r, p.Rotation)
	x2, y2 := polar(r, p.Rotation+sweep)
	large := 0
	if sweep > 180 {
		large = 1
	}
	ring := svgpath.Path{
		{Op: 'M', Args: []float64{x1, y1}},
		{Op: 'A', Args: []float64{r, r, 0, float64(large), 1, x2, y2}},
	}
	return svg.Document(paint, nil,
		svg.Path(ring.String(), append(paint.Stroke(p.StrokeWidth), svg.A("stroke-linecap", "round"))...),
		svg.Circle(x2, y2, p.StrokeWidth*0.9+1, paint.Fill()),
		letterInk(brand, 0.6, p.StrokeWidth+1.5, paint),
	)
}
