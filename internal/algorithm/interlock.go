package algorithm

import (
	"math"

	"github.com/sumitttt4/glyph/internal/params"
	"github.com/sumitttt4/glyph/internal/svg"
)

// interlockRings draws ElementCount rings whose overlap grows with the
// interlock depth. Symmetry decides the arrangement: a row, a circle around
// the centre, or a diagonal run.
func interlockRings(p params.Vector, brand string, paint svg.Paint) string {
	n := p.ElementCount
	overlap := p.InterlockDepth / 100
	var rings []string
	switch p.Symmetry {
	case params.SymmetryRadial:
		r := 14 + 10*overlap
		orbit := 22 - 8*overlap
		for i := 0; i < n; i++ {
			x, y := polar(orbit, p.Rotation+float64(i)*360/float64(n))
			rings = append(rings, svg.Circle(x, y, r, paint.Stroke(p.StrokeWidth)...))
		}
	default:
		// n rings of diameter d, each step apart, span 80 units.
		d := 80 / (float64(n-1)*(1-overlap*0.8) + 1)
		step := d * (1 - overlap*0.8)
		span := float64(n-1) * step
		for i := 0; i < n; i++ {
			x := svg.Center - span/2 + float64(i)*step
			y := svg.Center
			if p.Symmetry == params.SymmetryNone {
				y += (float64(i) - float64(n-1)/2) * step * 0.3
			}
			rings = append(rings, svg.Circle(x, y, d/2-p.StrokeWidth/2, paint.Stroke(p.StrokeWidth)...))
		}
	}
	return svg.Document(paint, nil, svg.Group([]svg.Attr{svg.A("stroke-opacity", math.Max(p.FillOpacity, 0.6))}, rings...))
}

// interlockWeave draws horizontal and vertical bands that alternate over and
// under at every crossing.
func interlockWeave(p params.Vector, brand string, paint svg.Paint) string {
	n := p.ElementCount
	band := 2 + p.StrokeWidth*0.9
	lo, hi := 22.0, 78.0
	step := (hi - lo) / float64(n-1)
	pad := band * 0.6

	var horiz, vert, cutH, cutV []string
	for i := 0; i < n; i++ {
		at := lo + float64(i)*step
		horiz = append(horiz, svg.Rect(lo-band, at-band/2, hi-lo+2*band, band, paint.Fill()))
		vert = append(vert, svg.Rect(at-band/2, lo-band, band, hi-lo+2*band, paint.Fill()))
		for j := 0; j < n; j++ {
			x, y := lo+float64(j)*step, at
			gap := svg.Rect(x-band/2-pad, y-band/2-pad, band+2*pad, band+2*pad, svg.Cut())
			if (i+j)%2 == 0 {
				cutH = append(cutH, gap)
			} else {
				cutV = append(cutV, gap)
			}
		}
	}
	idH := maskID("weave-h", brand, p)
	idV := maskID("weave-v", brand, p)
	return svg.Document(paint,
		[]string{svg.Mask(idH, cutH...), svg.Mask(idV, cutV...)},
		svg.Group([]svg.Attr{svg.Masked(idH)}, horiz...),
		svg.Group([]svg.Attr{svg.Masked(idV)}, vert...),
	)
}

// interlockLinks draws two chain links; the right link is cut where it
// passes under the left.
func interlockLinks(p params.Vector, brand string, paint svg.Paint) string {
	w, h := 34.0, 22.0
	overlap := w * p.InterlockDepth / 200
	lx := svg.Center - w + overlap/2
	rx := svg.Center - overlap/2
	y := svg.Center - h/2
	rx2 := math.Min(h/2, p.CornerRadius/2+4)
	stroke := p.StrokeWidth + 1

	id := maskID("links", brand, p)
	cut := svg.Rect(lx+w-stroke*1.5, y-stroke, stroke*3, stroke*2, svg.Cut())
	return svg.Document(paint,
		[]string{svg.Mask(id, cut)},
		svg.Group([]svg.Attr{svg.Rotate(p.Rotation)},
			svg.Rect(lx, y, w, h, append(paint.Stroke(stroke), svg.A("rx", rx2))...),
			svg.Group([]svg.Attr{svg.Masked(id)},
				svg.Rect(rx, y, w, h, append(paint.Stroke(stroke), svg.A("rx", rx2))...),
			),
		),
	)
}
