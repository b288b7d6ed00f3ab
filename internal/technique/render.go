package technique

import (
	"fmt"
	"math"

	"github.com/sumitttt4/glyph/internal/params"
	"github.com/sumitttt4/glyph/internal/skeleton"
	"github.com/sumitttt4/glyph/internal/svg"
	"github.com/sumitttt4/glyph/internal/svgpath"
)

// RenderModular places a circle or square at every anchor, chosen by corner
// radius, and joins sequential anchors of each part with hairlines.
func RenderModular(p params.Vector, brand string, paint svg.Paint) string {
	sk, ok := skeleton.ForBrand(brand)
	if !ok {
		return fallbackModular(p, paint)
	}
	pts := anchors(sk, p)
	unit := 5 + p.StrokeWidth*0.75

	var links, units []string
	for _, part := range sk.Anatomy {
		for i := 1; i < len(part.Anchors); i++ {
			a, b := pts[part.Anchors[i-1]], pts[part.Anchors[i]]
			links = append(links, svg.Line(a.X, a.Y, b.X, b.Y, paint.Stroke(1)...))
		}
	}
	for _, pt := range pts {
		units = append(units, modularUnit(pt.X, pt.Y, unit, p, paint))
	}
	return svg.Document(paint, nil,
		svg.Group(nil, links...),
		svg.Group([]svg.Attr{svg.A("fill-opacity", p.FillOpacity)}, units...),
	)
}

func modularUnit(x, y, size float64, p params.Vector, paint svg.Paint) string {
	if p.CornerRadius > 25 {
		return svg.Circle(x, y, size/2, paint.Fill())
	}
	rx := p.CornerRadius / 50 * size / 2
	return svg.Rect(x-size/2, y-size/2, size, size, paint.Fill(), svg.A("rx", rx))
}

// RenderStencil strokes the whole letter heavily and masks a small rotated
// bridge across the midpoint of every anatomy segment.
func RenderStencil(p params.Vector, brand string, paint svg.Paint) string {
	sk, ok := skeleton.ForBrand(brand)
	if !ok {
		return fallbackStencil(p, brand, paint)
	}
	width := letterStroke(sk, p) * 1.4
	m := frame(p)
	var cuts []string
	for _, g := range sk.StencilGaps(4) {
		at := m.Apply(g.Point)
		cuts = append(cuts, bridge(at.X, at.Y, g.Angle, width, p))
	}
	id := svg.ID("stencil", brand, p.Key())
	return svg.Document(paint,
		[]string{svg.Mask(id, cuts...)},
		svg.Path(letterPath(sk, p), with(paint.Stroke(width), svg.A("stroke-linejoin", "miter"), svg.Masked(id))...),
	)
}

// bridge is a negative rect centred on (x, y), laid across a stroke running at
// angle degrees.
func bridge(x, y, angle, stroke float64, p params.Vector) string {
	w := 1.5 + p.SpacingRatio*1.5
	h := stroke + 4
	return svg.Rect(x-w/2, y-h/2, w, h, svg.Cut(),
		svg.A("transform", fmt.Sprintf("rotate(%s %s %s)", svg.Num(angle-90), svg.Num(x), svg.Num(y))))
}

// RenderOutline draws fading echoes that widen outward, then one thin
// contour on top.
func RenderOutline(p params.Vector, brand string, paint svg.Paint) string {
	sk, ok := skeleton.ForBrand(brand)
	if !ok {
		return fallbackOutline(p, paint)
	}
	d := letterPath(sk, p)
	n := p.ElementCount
	layers := make([]string, 0, n+1)
	for i := n; i >= 1; i-- {
		width := p.StrokeWidth + float64(i)*p.SpacingRatio*3
		opacity := 0.5 / float64(i+1)
		layers = append(layers, svg.Path(d, with(paint.Stroke(width), svg.A("stroke-opacity", opacity), svg.A("stroke-linejoin", "round"))...))
	}
	layers = append(layers, svg.Path(d, with(paint.Stroke(1.5), round()...)...))
	return svg.Document(paint, nil, layers...)
}

// RenderConstruction strokes each part with caps keyed on its type and, at
// low fill opacity, overlays faint guide circles on the anchors.
func RenderConstruction(p params.Vector, brand string, paint svg.Paint) string {
	sk, ok := skeleton.ForBrand(brand)
	if !ok {
		return fallbackConstruction(p, paint)
	}
	width := letterStroke(sk, p)
	var body []string
	if p.FillOpacity < 0.6 {
		var guides []string
		r := 4 + p.CornerRadius/5
		for _, pt := range anchors(sk, p) {
			guides = append(guides, svg.Circle(pt.X, pt.Y, r, paint.Stroke(0.5)...))
		}
		body = append(body, svg.Group([]svg.Attr{svg.A("opacity", 0.3)}, guides...))
	}
	for _, part := range sk.Anatomy {
		if part.Path == "" {
			continue
		}
		lineCap := "square"
		if part.Type.Curved() {
			lineCap = "round"
		}
		body = append(body, svg.Path(partPath(part, p), with(paint.Stroke(width), svg.A("stroke-linecap", lineCap))...))
	}
	return svg.Document(paint, nil, body...)
}

// RenderCalligraphic strokes every non-terminal part, heavier for primary
// parts and thinned by the stroke taper.
func RenderCalligraphic(p params.Vector, brand string, paint svg.Paint) string {
	sk, ok := skeleton.ForBrand(brand)
	if !ok {
		return fallbackCalligraphic(p, paint)
	}
	base := letterStroke(sk, p)
	taper := 1 - p.StrokeTaper/200
	var body []string
	for _, part := range sk.Anatomy {
		if part.Path == "" || part.Type == skeleton.Terminal {
			continue
		}
		w := base * 0.6 * taper
		if part.Primary {
			w = base * 1.3
		}
		body = append(body, svg.Path(partPath(part, p), with(paint.Stroke(w), round()...)...))
	}
	return svg.Document(paint, nil, body...)
}

// RenderMonoline strokes the letter once with rounded joins.
func RenderMonoline(p params.Vector, brand string, paint svg.Paint) string {
	sk, ok := skeleton.ForBrand(brand)
	if !ok {
		return fallbackMonoline(p, paint)
	}
	return svg.Document(paint, nil, svg.Path(letterPath(sk, p), with(paint.Stroke(letterStroke(sk, p)), round()...)...))
}

// RenderShadow stacks three copies at increasing offset and opacity, the last
// one fully opaque.
func RenderShadow(p params.Vector, brand string, paint svg.Paint) string {
	sk, ok := skeleton.ForBrand(brand)
	if !ok {
		return fallbackShadow(p, paint)
	}
	path := sk.Path().Transform(frame(p))
	width := letterStroke(sk, p)
	depth := 1 + p.SpacingRatio*1.5
	layers := make([]string, 0, 3)
	for i := 1; i <= 3; i++ {
		off := float64(i-1) * depth
		d := path.Transform(svgpath.Translate(off, off)).String()
		layers = append(layers, svg.Path(d, with(paint.Stroke(width), svg.A("stroke-opacity", float64(i)/3), svg.A("stroke-linejoin", "round"))...))
	}
	return svg.Document(paint, nil, layers...)
}

// RenderDotted traces the letter with a dash pattern derived from spacing.
func RenderDotted(p params.Vector, brand string, paint svg.Paint) string {
	sk, ok := skeleton.ForBrand(brand)
	if !ok {
		return fallbackDotted(p, paint)
	}
	width := letterStroke(sk, p)
	return svg.Document(paint, nil, svg.Path(letterPath(sk, p),
		with(paint.Stroke(width), round()[0], svg.A("stroke-dasharray", dashes(p, width)))...))
}

// dashes returns a dash pattern; short dashes under round caps read as dots.
func dashes(p params.Vector, width float64) string {
	dash := math.Max(0.1, (p.SpacingRatio-0.5)*4)
	gap := width + p.SpacingRatio*3
	return svg.Num(dash) + " " + svg.Num(gap)
}
