// Package svg assembles the vector markup emitted by every generator.
//
// All marks share one fixed square canvas (Size × Size, centred on Center) and
// draw with the ink of an explicit Paint value. The default paint resolves to
// the "currentColor" token so callers can recolour a mark without regenerating
// it; a concrete colour can be threaded through instead.
package svg

import (
	"fmt"
	"hash/fnv"
	"math"
	"strconv"
	"strings"
)

const (
	// Size is the width and height of the canvas in user units.
	Size = 100.0

	// Center is the x and y coordinate of the canvas centre.
	Center = Size / 2

	// CurrentColor is the inherited colour token used when no ink is set.
	CurrentColor = "currentColor"

	namespace = "http://www.w3.org/2000/svg"
)

// Paint is the colour context threaded through every generator.
type Paint struct {
	// Color is the ink used for fills and strokes. Empty means CurrentColor.
	Color string `json:"color,omitempty" yaml:"color,omitempty"`

	// Background, when set, is painted as a full-canvas rect behind the mark.
	Background string `json:"background,omitempty" yaml:"background,omitempty"`
}

// DefaultPaint returns a paint that inherits the caller's colour.
func DefaultPaint() Paint {
	return Paint{Color: CurrentColor}
}

// Ink returns the resolved ink colour.
func (p Paint) Ink() string {
	if p.Color == "" {
		return CurrentColor
	}
	return p.Color
}

// Fill returns a fill attribute using the paint's ink.
func (p Paint) Fill() Attr {
	return Attr{Key: "fill", Value: p.Ink()}
}

// Stroke returns stroke attributes using the paint's ink and the given width.
func (p Paint) Stroke(width float64) []Attr {
	return []Attr{
		{Key: "fill", Value: "none"},
		{Key: "stroke", Value: p.Ink()},
		{Key: "stroke-width", Value: Num(width)},
	}
}

// Attr is a single markup attribute. Attributes keep their insertion order so
// output is byte-stable.
type Attr struct {
	Key   string
	Value string
}

// A builds an attribute, formatting numeric values with Num.
func A(key string, value any) Attr {
	switch v := value.(type) {
	case float64:
		return Attr{Key: key, Value: Num(v)}
	case int:
		return Attr{Key: key, Value: strconv.Itoa(v)}
	case string:
		return Attr{Key: key, Value: v}
	default:
		return Attr{Key: key, Value: fmt.Sprint(v)}
	}
}

// Num formats a coordinate with at most two decimals and no trailing zeros.
func Num(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "0"
	}
	r := math.Round(f*100) / 100
	if r == 0 {
		r = 0 // normalise -0
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

// Points formats a flat x,y list as a polygon points attribute value.
func Points(xy ...float64) string {
	var b strings.Builder
	for i := 0; i+1 < len(xy); i += 2 {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(Num(xy[i]))
		b.WriteByte(',')
		b.WriteString(Num(xy[i+1]))
	}
	return b.String()
}

// ID derives a short, stable element id from a prefix and arbitrary parts, so
// that several marks inlined into one page do not share mask ids.
func ID(prefix string, parts ...string) string {
	h := fnv.New32a()
	for _, p := range parts {
		h.Write([]byte(p))
		h.Write([]byte{0})
	}
	return fmt.Sprintf("%s-%08x", prefix, h.Sum32())
}

func element(name string, attrs []Attr, children ...string) string {
	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(name)
	for _, a := range attrs {
		if a.Key == "" {
			continue
		}
		b.WriteByte(' ')
		b.WriteString(a.Key)
		b.WriteString(`="`)
		b.WriteString(escape(a.Value))
		b.WriteByte('"')
	}
	if len(children) == 0 {
		b.WriteString("/>")
		return b.String()
	}
	b.WriteByte('>')
	for _, c := range children {
		b.WriteString(c)
	}
	b.WriteString("</")
	b.WriteString(name)
	b.WriteByte('>')
	return b.String()
}

var escaper = strings.NewReplacer(`&`, "&amp;", `<`, "&lt;", `>`, "&gt;", `"`, "&quot;")

func escape(s string) string {
	return escaper.Replace(s)
}

// Circle returns a circle element.
func Circle(cx, cy, r float64, attrs ...Attr) string {
	return element("circle", append([]Attr{A("cx", cx), A("cy", cy), A("r", math.Max(r, 0))}, attrs...))
}

// Ellipse returns an ellipse element.
func Ellipse(cx, cy, rx, ry float64, attrs ...Attr) string {
	return element("ellipse", append([]Attr{A("cx", cx), A("cy", cy), A("rx", math.Max(rx, 0)), A("ry", math.Max(ry, 0))}, attrs...))
}

// Rect returns a rect element. Negative sizes are clamped to zero.
func Rect(x, y, w, h float64, attrs ...Attr) string {
	return element("rect", append([]Attr{A("x", x), A("y", y), A("width", math.Max(w, 0)), A("height", math.Max(h, 0))}, attrs...))
}

// Line returns a line element.
func Line(x1, y1, x2, y2 float64, attrs ...Attr) string {
	return element("line", append([]Attr{A("x1", x1), A("y1", y1), A("x2", x2), A("y2", y2)}, attrs...))
}

// Path returns a path element for the given path data.
func Path(d string, attrs ...Attr) string {
	return element("path", append([]Attr{{Key: "d", Value: d}}, attrs...))
}

// Polygon returns a polygon element over a flat x,y list.
func Polygon(xy []float64, attrs ...Attr) string {
	return element("polygon", append([]Attr{{Key: "points", Value: Points(xy...)}}, attrs...))
}

// Polyline returns a polyline element over a flat x,y list.
func Polyline(xy []float64, attrs ...Attr) string {
	return element("polyline", append([]Attr{{Key: "points", Value: Points(xy...)}}, attrs...))
}

// Text returns a text element. Content is escaped.
func Text(x, y float64, content string, attrs ...Attr) string {
	return element("text", append([]Attr{A("x", x), A("y", y)}, attrs...), escape(content))
}

// Group wraps children in a g element.
func Group(attrs []Attr, children ...string) string {
	if len(children) == 0 {
		return ""
	}
	return element("g", attrs, children...)
}

// Rotate returns a transform attribute rotating about the canvas centre.
// Zero rotation yields an empty attribute, which element() skips.
func Rotate(deg float64) Attr {
	deg = math.Mod(deg, 360)
	if deg == 0 {
		return Attr{}
	}
	return Attr{Key: "transform", Value: fmt.Sprintf("rotate(%s %s %s)", Num(deg), Num(Center), Num(Center))}
}

// Mask returns a luminance mask: the canvas is kept (white) and every child is
// cut away. Children should be drawn with Cut().
func Mask(id string, children ...string) string {
	body := append([]string{Rect(0, 0, Size, Size, A("fill", "white"))}, children...)
	return element("mask", []Attr{{Key: "id", Value: id}, A("maskUnits", "userSpaceOnUse")}, body...)
}

// Cut is the fill used for negative shapes inside a Mask.
func Cut() Attr {
	return Attr{Key: "fill", Value: "black"}
}

// CutStroke is the stroke used for negative strokes inside a Mask.
func CutStroke(width float64) []Attr {
	return []Attr{{Key: "fill", Value: "none"}, {Key: "stroke", Value: "black"}, A("stroke-width", width)}
}

// Masked returns the mask reference attribute for an element.
func Masked(id string) Attr {
	return Attr{Key: "mask", Value: "url(#" + id + ")"}
}

// Stop is one colour stop of a gradient.
type Stop struct {
	Offset  float64
	Opacity float64
}

// LinearGradient returns a gradient of the paint's ink at varying opacity,
// oriented by angle degrees.
func LinearGradient(id string, angle float64, paint Paint, stops ...Stop) string {
	rad := angle * math.Pi / 180
	x1, y1 := 0.5-math.Cos(rad)/2, 0.5-math.Sin(rad)/2
	x2, y2 := 0.5+math.Cos(rad)/2, 0.5+math.Sin(rad)/2
	children := make([]string, 0, len(stops))
	for _, s := range stops {
		children = append(children, element("stop", []Attr{
			A("offset", s.Offset),
			A("stop-color", paint.Ink()),
			A("stop-opacity", s.Opacity),
		}))
	}
	return element("linearGradient", []Attr{
		{Key: "id", Value: id},
		A("x1", x1), A("y1", y1), A("x2", x2), A("y2", y2),
	}, children...)
}

// Document wraps body elements in the root svg element. Defs, when present,
// are emitted first inside a defs element.
func Document(paint Paint, defs []string, body ...string) string {
	var children []string
	if len(defs) > 0 {
		children = append(children, element("defs", nil, defs...))
	}
	if paint.Background != "" {
		children = append(children, Rect(0, 0, Size, Size, A("fill", paint.Background)))
	}
	children = append(children, body...)
	attrs := []Attr{
		{Key: "xmlns", Value: namespace},
		{Key: "viewBox", Value: "0 0 " + Num(Size) + " " + Num(Size)},
		A("width", Size),
		A("height", Size),
	}
	if paint.Color != "" && paint.Color != CurrentColor {
		attrs = append(attrs, Attr{Key: "color", Value: paint.Color})
	}
	if len(children) == 0 {
		children = []string{""}
	}
	return element("svg", attrs, children...)
}
