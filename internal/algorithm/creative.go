package algorithm

import (
	"math"
	"strings"

	"github.com/sumitttt4/glyph/internal/params"
	"github.com/sumitttt4/glyph/internal/seed"
	"github.com/sumitttt4/glyph/internal/svg"
	"github.com/sumitttt4/glyph/internal/svgpath"
)

// blob returns a closed smooth shape with n lobes. Lobe radii are jittered by
// a stream keyed on key, so the same brand always gets the same outline.
func blob(n int, r, tension float64, key string) svgpath.Path {
	next := seed.Stream(key)
	k := 3 * (n + 1)
	pts := make([]svgpath.Point, k)
	for i := range pts {
		a := float64(i) / float64(k) * 2 * math.Pi
		lobe := 1 + 0.12*math.Sin(a*float64(n))
		rr := r * lobe * (0.92 + 0.16*next())
		pts[i] = svgpath.Point{X: svg.Center + rr*math.Cos(a), Y: svg.Center + rr*math.Sin(a)}
	}
	// Catmull-Rom through every point, scaled by tension.
	t := tension / 3
	path := svgpath.Path{{Op: 'M', Args: []float64{pts[0].X, pts[0].Y}}}
	for i := 0; i < k; i++ {
		p0, p1 := pts[(i-1+k)%k], pts[i]
		p2, p3 := pts[(i+1)%k], pts[(i+2)%k]
		path = append(path, svgpath.Command{Op: 'C', Args: []float64{
			p1.X + (p2.X-p0.X)*t, p1.Y + (p2.Y-p0.Y)*t,
			p2.X - (p3.X-p1.X)*t, p2.Y - (p3.Y-p1.Y)*t,
			p2.X, p2.Y,
		}})
	}
	return append(path, svgpath.Command{Op: 'Z'})
}

func creativeBio(p params.Vector, brand string, paint svg.Paint) string {
	key := strings.ToLower(brand)
	body := blob(p.ElementCount, 30*p.ScaleVariance, p.CurveTension, key)
	var cuts []string
	switch variant(p) {
	case 0:
		cuts = append(cuts, svg.Circle(svg.Center+6, svg.Center-6, 7+p.StrokeWidth, svg.Cut()))
	case 1:
		inner := blob(p.ElementCount, 12*p.ScaleVariance, p.CurveTension, key+"/nucleus")
		cuts = append(cuts, svg.Path(inner.Transform(svgpath.Translate(4, -4)).String(), svg.Cut()))
	default:
		next := seed.Stream(key + "/spores")
		for i := 0; i < p.ElementCount; i++ {
			x, y := polar(12+next()*8, float64(i)*360/float64(p.ElementCount)+p.Rotation)
			cuts = append(cuts, svg.Circle(x, y, 2+next()*3, svg.Cut()))
		}
	}
	return masked(paint, maskID("bio", brand, p), cuts,
		svg.Path(body.String(), paint.Fill(), svg.A("fill-opacity", p.FillOpacity)))
}

// gear returns a toothed wheel outline.
func gear(teeth int, outer, inner, rotation float64) []float64 {
	var pts []float64
	for i := 0; i < teeth; i++ {
		base := rotation + float64(i)*360/float64(teeth)
		step := 360 / float64(teeth) / 4
		for j, r := range []float64{inner, outer, outer, inner} {
			x, y := polar(r, base+float64(j)*step)
			pts = append(pts, x, y)
		}
	}
	return pts
}

func creativeIndustrial(p params.Vector, brand string, paint svg.Paint) string {
	teeth := p.ElementCount*2 + 4
	outer := 34 * p.ScaleVariance
	body := gear(teeth, outer, outer*0.82, p.Rotation)
	var cut string
	switch variant(p) {
	case 0:
		cut = svg.Circle(svg.Center, svg.Center, outer*0.35, svg.Cut())
	case 1:
		s := outer * 0.5
		cut = svg.Rect(svg.Center-s/2, svg.Center-s/2, s, s, svg.Cut(), svg.A("rx", p.CornerRadius/12))
	default:
		cut = svg.Polygon(regular(6, outer*0.34, 0, svg.Center, svg.Center), svg.Cut())
	}
	return masked(paint, maskID("gear", brand, p), []string{cut},
		svg.Polygon(body, paint.Fill(), svg.A("stroke-linejoin", "round")))
}

// creativeChunky fills a grid of heavy blocks, drops the blocks picked by the
// brand hash and cuts the initial across the rest.
func creativeChunky(p params.Vector, brand string, paint svg.Paint) string {
	n := 2
	if p.ElementCount > 3 {
		n = 3
	}
	gap := 2 + p.SpacingRatio*2
	cell := (64 - gap*float64(n-1)) / float64(n)
	drop := seed.HashIndex(brand, n*n+1)
	var blocks []string
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			if row*n+col == drop && variant(p) != 1 {
				continue
			}
			x := 18 + float64(col)*(cell+gap)
			y := 18 + float64(row)*(cell+gap)
			blocks = append(blocks, svg.Rect(x, y, cell, cell, paint.Fill(), svg.A("rx", p.CornerRadius/50*cell/2)))
		}
	}
	var cuts []string
	if variant(p) != 2 {
		cuts = append(cuts, letterCut(brand, 0.55, p.StrokeWidth*0.7+2))
	}
	return masked(paint, maskID("chunky", brand, p), cuts, blocks...)
}
