package icon

import (
	"math"

	"github.com/sumitttt4/glyph/internal/svg"
	"github.com/sumitttt4/glyph/internal/svgpath"
)

// Toolkit is the shared primitive set every composition draws with. It holds
// the paint and stroke weight so compositions only place shapes.
type Toolkit struct {
	paint  svg.Paint
	stroke float64
}

// NewToolkit returns a toolkit drawing with paint at the given stroke width.
func NewToolkit(paint svg.Paint, stroke float64) Toolkit {
	return Toolkit{paint: paint, stroke: stroke}
}

func (k Toolkit) outline() []svg.Attr {
	return append(k.paint.Stroke(k.stroke), svg.A("stroke-linecap", "round"), svg.A("stroke-linejoin", "round"))
}

// polar returns the point at distance r and angle deg from (cx, cy); 0° is up.
func polar(cx, cy, r, deg float64) (float64, float64) {
	a := (deg - 90) * math.Pi / 180
	return cx + r*math.Cos(a), cy + r*math.Sin(a)
}

// Circle is a filled disc.
func (k Toolkit) Circle(cx, cy, r float64) string {
	return svg.Circle(cx, cy, r, k.paint.Fill())
}

// Ring is a stroked circle.
func (k Toolkit) Ring(cx, cy, r float64) string {
	return svg.Circle(cx, cy, r, k.outline()...)
}

// Semicircle is a filled half disc whose flat side faces away from rotation.
func (k Toolkit) Semicircle(cx, cy, r, rotation float64) string {
	x1, y1 := polar(cx, cy, r, rotation-90)
	x2, y2 := polar(cx, cy, r, rotation+90)
	d := svgpath.Path{
		{Op: 'M', Args: []float64{x1, y1}},
		{Op: 'A', Args: []float64{r, r, 0, 0, 1, x2, y2}},
		{Op: 'Z'},
	}
	return svg.Path(d.String(), k.paint.Fill())
}

// QuarterCircle is a filled quadrant with its corner at (cx, cy).
func (k Toolkit) QuarterCircle(cx, cy, r, rotation float64) string {
	x1, y1 := polar(cx, cy, r, rotation)
	x2, y2 := polar(cx, cy, r, rotation+90)
	d := svgpath.Path{
		{Op: 'M', Args: []float64{cx, cy}},
		{Op: 'L', Args: []float64{x1, y1}},
		{Op: 'A', Args: []float64{r, r, 0, 0, 1, x2, y2}},
		{Op: 'Z'},
	}
	return svg.Path(d.String(), k.paint.Fill())
}

// Square is a filled square centred on (cx, cy).
func (k Toolkit) Square(cx, cy, size, radius float64) string {
	return svg.Rect(cx-size/2, cy-size/2, size, size, k.paint.Fill(), svg.A("rx", radius))
}

// Rect is a filled rectangle.
func (k Toolkit) Rect(x, y, w, h, radius float64) string {
	return svg.Rect(x, y, w, h, k.paint.Fill(), svg.A("rx", radius))
}

// Triangle is a filled equilateral triangle pointing towards rotation.
func (k Toolkit) Triangle(cx, cy, r, rotation float64) string {
	var pts []float64
	for i := 0; i < 3; i++ {
		x, y := polar(cx, cy, r, rotation+float64(i)*120)
		pts = append(pts, x, y)
	}
	return svg.Polygon(pts, k.paint.Fill())
}

// Arrow is a stroked shaft with a head, pointing towards angle.
func (k Toolkit) Arrow(cx, cy, length, angle float64) string {
	tx, ty := polar(cx, cy, length/2, angle)
	bx, by := polar(cx, cy, length/2, angle+180)
	head := length * 0.3
	lx, ly := polar(tx, ty, head, angle+180-35)
	rx, ry := polar(tx, ty, head, angle+180+35)
	d := svgpath.Path{
		{Op: 'M', Args: []float64{bx, by}},
		{Op: 'L', Args: []float64{tx, ty}},
		{Op: 'M', Args: []float64{lx, ly}},
		{Op: 'L', Args: []float64{tx, ty}},
		{Op: 'L', Args: []float64{rx, ry}},
	}
	return svg.Path(d.String(), k.outline()...)
}

// Chevron is a stroked open angle pointing towards angle.
func (k Toolkit) Chevron(cx, cy, size, angle float64) string {
	tx, ty := polar(cx, cy, size/2, angle)
	lx, ly := polar(tx, ty, size, angle+180-45)
	rx, ry := polar(tx, ty, size, angle+180+45)
	return svg.Polyline([]float64{lx, ly, tx, ty, rx, ry}, k.outline()...)
}

// Line is a stroked segment.
func (k Toolkit) Line(x1, y1, x2, y2 float64) string {
	return svg.Line(x1, y1, x2, y2, k.outline()...)
}

// Arc is a stroked circular arc from start sweeping clockwise by sweep
// degrees.
func (k Toolkit) Arc(cx, cy, r, start, sweep float64) string {
	sweep = math.Max(-359.9, math.Min(359.9, sweep))
	x1, y1 := polar(cx, cy, r, start)
	x2, y2 := polar(cx, cy, r, start+sweep)
	large, dir := 0.0, 1.0
	if math.Abs(sweep) > 180 {
		large = 1
	}
	if sweep < 0 {
		dir = 0
	}
	d := svgpath.Path{
		{Op: 'M', Args: []float64{x1, y1}},
		{Op: 'A', Args: []float64{r, r, 0, large, dir, x2, y2}},
	}
	return svg.Path(d.String(), k.outline()...)
}

// Wave is a stroked sine-like wave of the given number of periods starting at
// (x, y).
func (k Toolkit) Wave(x, y, width, amplitude float64, periods int) string {
	if periods < 1 {
		periods = 1
	}
	half := width / float64(2*periods)
	d := svgpath.Path{{Op: 'M', Args: []float64{x, y}}}
	for i := 0; i < 2*periods; i++ {
		amp := amplitude
		if i%2 == 1 {
			amp = -amplitude
		}
		x0 := x + float64(i)*half
		d = append(d, svgpath.Command{Op: 'Q', Args: []float64{x0 + half/2, y - 2*amp, x0 + half, y}})
	}
	return svg.Path(d.String(), k.outline()...)
}

// Spiral is a stroked Archimedean spiral of the given turns out to radius r.
func (k Toolkit) Spiral(cx, cy, r, turns float64) string {
	steps := int(math.Max(8, turns*16))
	d := svgpath.Path{{Op: 'M', Args: []float64{cx, cy}}}
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x, y := polar(cx, cy, r*t, t*turns*360)
		d = append(d, svgpath.Command{Op: 'L', Args: []float64{x, y}})
	}
	return svg.Path(d.String(), k.outline()...)
}

// Dot is a small disc sized from the stroke weight.
func (k Toolkit) Dot(cx, cy float64) string {
	return svg.Circle(cx, cy, k.stroke*0.8+1, k.paint.Fill())
}

// DotGrid is an n×n grid of dots centred on (cx, cy).
func (k Toolkit) DotGrid(cx, cy float64, n int, spacing float64) []string {
	var out []string
	off := float64(n-1) * spacing / 2
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			out = append(out, k.Dot(cx-off+float64(col)*spacing, cy-off+float64(row)*spacing))
		}
	}
	return out
}

// RadialDots is n dots evenly spaced on a circle of radius r.
func (k Toolkit) RadialDots(cx, cy float64, n int, r, rotation float64) []string {
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		x, y := polar(cx, cy, r, rotation+float64(i)*360/float64(n))
		out = append(out, k.Dot(x, y))
	}
	return out
}

// Fade groups elements at reduced opacity.
func (k Toolkit) Fade(opacity float64, elements ...string) string {
	return svg.Group([]svg.Attr{svg.A("opacity", opacity)}, elements...)
}
