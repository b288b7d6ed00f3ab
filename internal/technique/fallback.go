package technique

import (
	"math"

	"github.com/sumitttt4/glyph/internal/params"
	"github.com/sumitttt4/glyph/internal/svg"
	"github.com/sumitttt4/glyph/internal/svgpath"
)

// Hand-authored shapes for names whose first character has no skeleton.

// genericMark is a rounded square with a central bar, drawn on the same
// 25..75 box as the letters.
const genericMark = "M30 25 H70 Q75 25 75 30 V70 Q75 75 70 75 H30 Q25 75 25 70 V30 Q25 25 30 25 Z M38 50 H62"

func fallbackModular(p params.Vector, paint svg.Paint) string {
	unit := 5 + p.StrokeWidth*0.75
	var units []string
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			if row == 1 && col == 1 {
				continue
			}
			units = append(units, modularUnit(30+float64(col)*20, 30+float64(row)*20, unit, p, paint))
		}
	}
	return svg.Document(paint, nil,
		svg.Rect(30, 30, 40, 40, paint.Stroke(1)...),
		svg.Group([]svg.Attr{svg.A("fill-opacity", p.FillOpacity)}, units...),
	)
}

func fallbackStencil(p params.Vector, brand string, paint svg.Paint) string {
	width := p.StrokeWidth*1.4 + 6
	var cuts []string
	for i := 0; i < 4; i++ {
		angle := float64(i)*90 + 45
		rad := angle * math.Pi / 180
		x, y := svg.Center+22*math.Cos(rad), svg.Center+22*math.Sin(rad)
		cuts = append(cuts, bridge(x, y, angle+90, width, p))
	}
	id := svg.ID("stencil-fallback", brand, p.Key())
	return svg.Document(paint,
		[]string{svg.Mask(id, cuts...)},
		svg.Circle(svg.Center, svg.Center, 22, with(paint.Stroke(width), svg.Masked(id))...),
	)
}

func fallbackOutline(p params.Vector, paint svg.Paint) string {
	var layers []string
	for i := p.ElementCount; i >= 1; i-- {
		inset := 30 - float64(i)*p.SpacingRatio*2
		layers = append(layers, svg.Rect(inset, inset, 100-2*inset, 100-2*inset,
			with(paint.Stroke(p.StrokeWidth/2+1), svg.A("stroke-opacity", 0.5/float64(i+1)), svg.A("rx", p.CornerRadius/4))...))
	}
	layers = append(layers, svg.Rect(30, 30, 40, 40, with(paint.Stroke(1.5), svg.A("rx", p.CornerRadius/4))...))
	return svg.Document(paint, nil, layers...)
}

func fallbackConstruction(p params.Vector, paint svg.Paint) string {
	tri := []float64{50, 28, 69.05, 61, 30.95, 61}
	body := []string{
		svg.Circle(svg.Center, svg.Center, 22, paint.Stroke(p.StrokeWidth)...),
		svg.Polygon(tri, with(paint.Stroke(p.StrokeWidth), svg.A("stroke-linejoin", "miter"))...),
	}
	if p.FillOpacity < 0.6 {
		body = append(body, svg.Group([]svg.Attr{svg.A("opacity", 0.3)},
			svg.Line(20, 50, 80, 50, paint.Stroke(0.5)...),
			svg.Line(50, 20, 50, 80, paint.Stroke(0.5)...),
		))
	}
	return svg.Document(paint, nil, body...)
}

func fallbackCalligraphic(p params.Vector, paint svg.Paint) string {
	taper := 1 - p.StrokeTaper/200
	return svg.Document(paint, nil,
		svg.Path("M28 66 C36 30 60 26 72 34", with(paint.Stroke(p.StrokeWidth*1.6+2), round()...)...),
		svg.Path("M34 72 C50 62 62 58 72 60", with(paint.Stroke((p.StrokeWidth*0.6+1)*taper), round()...)...),
	)
}

func fallbackMonoline(p params.Vector, paint svg.Paint) string {
	return svg.Document(paint, nil, svg.Path(genericMark, with(paint.Stroke(p.StrokeWidth+2), round()...)...))
}

func fallbackShadow(p params.Vector, paint svg.Paint) string {
	base := svgpath.MustParse(genericMark)
	depth := 1 + p.SpacingRatio*1.5
	var layers []string
	for i := 1; i <= 3; i++ {
		off := float64(i-1) * depth
		layers = append(layers, svg.Path(base.Transform(svgpath.Translate(off, off)).String(),
			with(paint.Stroke(p.StrokeWidth+2), svg.A("stroke-opacity", float64(i)/3))...))
	}
	return svg.Document(paint, nil, layers...)
}

func fallbackDotted(p params.Vector, paint svg.Paint) string {
	width := p.StrokeWidth + 2
	return svg.Document(paint, nil,
		svg.Circle(svg.Center, svg.Center, 24, with(paint.Stroke(width), round()[0], svg.A("stroke-dasharray", dashes(p, width)))...),
	)
}
