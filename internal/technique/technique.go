// Package technique renders a letter skeleton in one of eight styles. Each
// technique draws the first letter of the brand name; characters outside A–Z
// get a hand-authored shape in the same style instead.
package technique

import (
	"github.com/sumitttt4/glyph/internal/params"
	"github.com/sumitttt4/glyph/internal/skeleton"
	"github.com/sumitttt4/glyph/internal/svg"
	"github.com/sumitttt4/glyph/internal/svgpath"
)

// Func renders a complete document for brand.
type Func func(p params.Vector, brand string, paint svg.Paint) string

// Technique is a named rendering style.
type Technique struct {
	ID          string
	Name        string
	Description string
	Render      Func
}

// Technique identifiers.
const (
	Modular      = "modular"
	Stencil      = "stencil"
	Outline      = "outline"
	Construction = "construction"
	Calligraphic = "calligraphic"
	Monoline     = "monoline"
	Shadow       = "shadow"
	Dotted       = "dotted"
)

var all = []Technique{
	{ID: Modular, Name: "Modular", Description: "Geometric units placed on every anchor of the letter, joined by hairlines", Render: RenderModular},
	{ID: Stencil, Name: "Stencil", Description: "Heavy letter stroke broken by rotated stencil bridges", Render: RenderStencil},
	{ID: Outline, Name: "Outline", Description: "Fading echo strokes under one crisp contour", Render: RenderOutline},
	{ID: Construction, Name: "Geometric Construction", Description: "Anatomy parts drawn with type-keyed caps over faint construction guides", Render: RenderConstruction},
	{ID: Calligraphic, Name: "Calligraphic", Description: "Weighted primary strokes with tapered secondary strokes", Render: RenderCalligraphic},
	{ID: Monoline, Name: "Monoline", Description: "A single uniform stroke with rounded joins", Render: RenderMonoline},
	{ID: Shadow, Name: "Shadow", Description: "Stacked offset copies that build extruded depth", Render: RenderShadow},
	{ID: Dotted, Name: "Dotted", Description: "The letter traced as a rhythm of dashes and dots", Render: RenderDotted},
}

// All returns the techniques in their fixed order.
func All() []Technique {
	return append([]Technique(nil), all...)
}

// Get returns the technique with the given id.
func Get(id string) (Technique, bool) {
	for _, t := range all {
		if t.ID == id {
			return t, true
		}
	}
	return Technique{}, false
}

// frame maps skeleton coordinates into the drawn mark: scale variance about
// the canvas centre.
func frame(p params.Vector) svgpath.Affine {
	return svgpath.ScaleAbout(p.ScaleVariance, p.ScaleVariance, svg.Center, svg.Center)
}

func letterPath(sk *skeleton.Skeleton, p params.Vector) string {
	return sk.Path().Transform(frame(p)).String()
}

func partPath(part skeleton.Part, p params.Vector) string {
	return svgpath.MustParse(part.Path).Transform(frame(p)).String()
}

func anchors(sk *skeleton.Skeleton, p params.Vector) []svgpath.Point {
	m := frame(p)
	out := make([]svgpath.Point, len(sk.Anchors))
	for i, a := range sk.Anchors {
		out[i] = m.Apply(a)
	}
	return out
}

// letterStroke is the stroke width a technique uses for the letter body.
func letterStroke(sk *skeleton.Skeleton, p params.Vector) float64 {
	return p.StrokeWidth + sk.StrokeWidthRatio*40
}

func round() []svg.Attr {
	return []svg.Attr{svg.A("stroke-linecap", "round"), svg.A("stroke-linejoin", "round")}
}

func with(base []svg.Attr, extra ...svg.Attr) []svg.Attr {
	return append(append([]svg.Attr(nil), base...), extra...)
}
