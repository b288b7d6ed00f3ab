package icon

import (
	"math"

	"github.com/sumitttt4/glyph/internal/params"
)

// Composition places toolkit primitives on the shared canvas.
type Composition struct {
	Name string
	Draw func(k Toolkit, p params.Vector) []string
}

const mid = 50.0

// count keeps element-count driven repetitions in a readable band.
func count(p params.Vector, lo, hi int) int {
	n := p.ElementCount
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

var speed = []Composition{
	{Name: "chevron-run", Draw: func(k Toolkit, p params.Vector) []string {
		n := count(p, 2, 4)
		var out []string
		step := 12 * p.SpacingRatio
		start := mid - float64(n-1)*step/2
		for i := 0; i < n; i++ {
			out = append(out, k.Fade(0.4+0.6*float64(i+1)/float64(n), k.Chevron(start+float64(i)*step, mid, 22, 90)))
		}
		return out
	}},
	{Name: "arrow-trails", Draw: func(k Toolkit, p params.Vector) []string {
		out := []string{k.Arrow(60, mid, 40, 90)}
		for i, y := range []float64{38, 50, 62} {
			l := 14 - float64(i%2)*5
			out = append(out, k.Line(18, y, 18+l, y))
		}
		return out
	}},
	{Name: "gauge", Draw: func(k Toolkit, p params.Vector) []string {
		x, y := polar(mid, 58, 24, 40)
		return []string{
			k.Arc(mid, 58, 30, -90, 180),
			k.Line(mid, 58, x, y),
			k.Dot(mid, 58),
		}
	}},
	{Name: "streak", Draw: func(k Toolkit, p params.Vector) []string {
		return []string{
			k.Circle(64, mid, 14),
			k.Fade(0.6, k.Line(20, 42, 44, 42)),
			k.Fade(0.4, k.Line(14, 50, 44, 50)),
			k.Fade(0.6, k.Line(20, 58, 44, 58)),
		}
	}},
}

var growth = []Composition{
	{Name: "rising-bars", Draw: func(k Toolkit, p params.Vector) []string {
		n := count(p, 3, 5)
		w := 48 / float64(n) * 0.7
		var out []string
		for i := 0; i < n; i++ {
			h := 14 + float64(i)*44/float64(n)
			out = append(out, k.Rect(26+float64(i)*48/float64(n), 76-h, w, h, p.CornerRadius/25))
		}
		return out
	}},
	{Name: "sprout", Draw: func(k Toolkit, p params.Vector) []string {
		return []string{
			k.Semicircle(mid, 74, 24, 0),
			k.Arrow(mid, 38, 34, 0),
		}
	}},
	{Name: "peaks", Draw: func(k Toolkit, p params.Vector) []string {
		return []string{
			k.Fade(0.5, k.Triangle(36, 60, 18, 0)),
			k.Triangle(58, 52, 26, 0),
		}
	}},
	{Name: "unfolding", Draw: func(k Toolkit, p params.Vector) []string {
		return []string{k.Spiral(mid, mid, 30, 1.5+p.CurveTension*1.5)}
	}},
}

var connect = []Composition{
	{Name: "linked-rings", Draw: func(k Toolkit, p params.Vector) []string {
		off := 8 + p.InterlockDepth/10
		return []string{k.Ring(mid-off, mid, 18), k.Ring(mid+off, mid, 18)}
	}},
	{Name: "network", Draw: func(k Toolkit, p params.Vector) []string {
		n := count(p, 3, 6)
		var out []string
		for i := 0; i < n; i++ {
			x, y := polar(mid, mid, 28, p.Rotation+float64(i)*360/float64(n))
			out = append(out, k.Line(mid, mid, x, y))
		}
		out = append(out, k.RadialDots(mid, mid, n, 28, p.Rotation)...)
		return append(out, k.Circle(mid, mid, 7))
	}},
	{Name: "hub", Draw: func(k Toolkit, p params.Vector) []string {
		out := []string{k.Ring(mid, mid, 20)}
		return append(out, k.RadialDots(mid, mid, count(p, 4, 8)+2, 32, 0)...)
	}},
	{Name: "bridge", Draw: func(k Toolkit, p params.Vector) []string {
		return []string{
			k.Arc(mid, 62, 26, -80, 160),
			k.Line(20, 62, 80, 62),
			k.Dot(24, 62), k.Dot(76, 62),
		}
	}},
}

var secure = []Composition{
	{Name: "padlock", Draw: func(k Toolkit, p params.Vector) []string {
		return []string{
			k.Arc(mid, 44, 14, -90, 180),
			k.Line(36, 44, 36, 50), k.Line(64, 44, 64, 50),
			k.Rect(28, 50, 44, 30, p.CornerRadius/10),
		}
	}},
	{Name: "keyhole", Draw: func(k Toolkit, p params.Vector) []string {
		return []string{
			k.Ring(mid, mid, 30),
			k.Circle(mid, 44, 8),
			k.Triangle(mid, 58, 10, 180),
		}
	}},
	{Name: "guarded", Draw: func(k Toolkit, p params.Vector) []string {
		return []string{k.Ring(mid, mid, 32), k.Triangle(mid, 53, 20, 0)}
	}},
	{Name: "vault", Draw: func(k Toolkit, p params.Vector) []string {
		out := []string{k.Square(mid, mid, 60, p.CornerRadius/5)}
		return append(out, k.Fade(0.5, k.Square(mid, mid, 36, p.CornerRadius/8)), k.Dot(mid, mid))
	}},
}

var tech = []Composition{
	{Name: "circuit", Draw: func(k Toolkit, p params.Vector) []string {
		out := k.DotGrid(mid, mid, 3, 22)
		return append(out, k.Line(28, 28, 50, 28), k.Line(50, 28, 50, 72), k.Line(50, 50, 72, 50))
	}},
	{Name: "brackets", Draw: func(k Toolkit, p params.Vector) []string {
		return []string{k.Chevron(30, mid, 18, 270), k.Chevron(70, mid, 18, 90), k.Line(56, 34, 44, 66)}
	}},
	{Name: "chip", Draw: func(k Toolkit, p params.Vector) []string {
		out := []string{k.Square(mid, mid, 36, p.CornerRadius/10)}
		for i := 0; i < 3; i++ {
			v := 38 + float64(i)*12
			out = append(out, k.Line(v, 16, v, 28), k.Line(v, 72, v, 84), k.Line(16, v, 28, v), k.Line(72, v, 84, v))
		}
		return out
	}},
	{Name: "pixel", Draw: func(k Toolkit, p params.Vector) []string {
		var out []string
		for i := 0; i < 4; i++ {
			x := 30 + float64(i%2)*22
			y := 30 + float64(i/2)*22
			if i == 3 {
				out = append(out, k.Fade(0.4, k.Square(x+8, y+8, 18, 2)))
				continue
			}
			out = append(out, k.Square(x+8, y+8, 18, 2))
		}
		return out
	}},
}

var creative = []Composition{
	{Name: "swirl", Draw: func(k Toolkit, p params.Vector) []string {
		return []string{k.Spiral(mid, mid, 32, 2.5), k.Dot(mid, mid)}
	}},
	{Name: "overlap", Draw: func(k Toolkit, p params.Vector) []string {
		var out []string
		for i := 0; i < 3; i++ {
			x, y := polar(mid, mid, 12, p.Rotation+float64(i)*120)
			out = append(out, k.Fade(p.FillOpacity*0.8, k.Circle(x, y, 18)))
		}
		return out
	}},
	{Name: "brushstroke", Draw: func(k Toolkit, p params.Vector) []string {
		return []string{k.Wave(18, 54, 64, 10*p.CurveTension+4, 2), k.Circle(70, 30, 7)}
	}},
	{Name: "halves", Draw: func(k Toolkit, p params.Vector) []string {
		return []string{k.Semicircle(mid, 46, 24, 0), k.Fade(0.5, k.Semicircle(mid, 54, 24, 180))}
	}},
}

var data = []Composition{
	{Name: "bar-chart", Draw: func(k Toolkit, p params.Vector) []string {
		heights := []float64{24, 40, 30, 52}
		var out []string
		for i, h := range heights {
			out = append(out, k.Rect(24+float64(i)*14, 76-h, 9, h, 1))
		}
		return append(out, k.Line(20, 78, 80, 78))
	}},
	{Name: "pie", Draw: func(k Toolkit, p params.Vector) []string {
		return []string{
			k.QuarterCircle(mid+2, mid-2, 28, 0),
			k.Fade(0.6, k.QuarterCircle(mid, mid, 28, 90)),
			k.Fade(0.35, k.QuarterCircle(mid, mid, 28, 180)),
			k.Fade(0.8, k.QuarterCircle(mid, mid, 28, 270)),
		}
	}},
	{Name: "scatter", Draw: func(k Toolkit, p params.Vector) []string {
		out := []string{k.Line(20, 74, 80, 30)}
		for _, pt := range [][2]float64{{26, 64}, {38, 62}, {46, 50}, {58, 48}, {70, 36}} {
			out = append(out, k.Dot(pt[0], pt[1]))
		}
		return out
	}},
	{Name: "rings", Draw: func(k Toolkit, p params.Vector) []string {
		return []string{k.Arc(mid, mid, 30, 0, 300), k.Arc(mid, mid, 20, 0, 220), k.Arc(mid, mid, 10, 0, 140)}
	}},
}

var communication = []Composition{
	{Name: "bubble", Draw: func(k Toolkit, p params.Vector) []string {
		return []string{k.Rect(20, 24, 60, 40, 10+p.CornerRadius/10), k.Triangle(34, 68, 10, 180)}
	}},
	{Name: "signal", Draw: func(k Toolkit, p params.Vector) []string {
		out := []string{k.Dot(30, 70)}
		for i := 1; i <= 3; i++ {
			out = append(out, k.Arc(30, 70, float64(i)*14, 0, 90))
		}
		return out
	}},
	{Name: "dialogue", Draw: func(k Toolkit, p params.Vector) []string {
		return []string{k.Semicircle(38, mid, 18, 270), k.Fade(0.6, k.Semicircle(62, mid, 18, 90))}
	}},
	{Name: "ellipsis", Draw: func(k Toolkit, p params.Vector) []string {
		out := []string{k.Ring(mid, mid, 32)}
		for _, x := range []float64{36, 50, 64} {
			out = append(out, k.Circle(x, mid, 4))
		}
		return out
	}},
}

var finance = []Composition{
	{Name: "coin-stack", Draw: func(k Toolkit, p params.Vector) []string {
		n := count(p, 3, 5)
		var out []string
		for i := 0; i < n; i++ {
			out = append(out, k.Rect(28, 72-float64(i)*10, 44, 7, 3.5))
		}
		return out
	}},
	{Name: "returns", Draw: func(k Toolkit, p params.Vector) []string {
		return []string{k.Ring(mid, mid, 32), k.Arrow(mid, mid, 34, 45)}
	}},
	{Name: "coin", Draw: func(k Toolkit, p params.Vector) []string {
		return []string{k.Ring(mid, mid, 30), k.Ring(mid, mid, 22), k.Line(mid, 36, mid, 64)}
	}},
	{Name: "trendline", Draw: func(k Toolkit, p params.Vector) []string {
		pts := []float64{20, 70, 38, 56, 52, 62, 78, 30}
		var out []string
		for i := 2; i < len(pts); i += 2 {
			out = append(out, k.Line(pts[i-2], pts[i-1], pts[i], pts[i+1]))
		}
		return append(out, k.Dot(78, 30))
	}},
}

var health = []Composition{
	{Name: "cross", Draw: func(k Toolkit, p params.Vector) []string {
		r := math.Min(p.CornerRadius/10, 4)
		return []string{k.Rect(40, 20, 20, 60, r), k.Rect(20, 40, 60, 20, r)}
	}},
	{Name: "pulse", Draw: func(k Toolkit, p params.Vector) []string {
		return []string{
			k.Ring(mid, mid, 32),
			k.Line(22, mid, 38, mid), k.Line(38, mid, 44, 36), k.Line(44, 36, 54, 66),
			k.Line(54, 66, 60, mid), k.Line(60, mid, 78, mid),
		}
	}},
	{Name: "leaf", Draw: func(k Toolkit, p params.Vector) []string {
		return []string{k.Semicircle(mid, mid, 26, 45), k.Fade(0.6, k.Semicircle(mid, mid, 26, 225)), k.Line(34, 66, 66, 34)}
	}},
	{Name: "vital", Draw: func(k Toolkit, p params.Vector) []string {
		return []string{k.Circle(mid, mid, 16), k.Fade(0.4, k.Ring(mid, mid, 28))}
	}},
}

var fallback = []Composition{
	{Name: "orbit", Draw: func(k Toolkit, p params.Vector) []string {
		x, y := polar(mid, mid, 30, p.Rotation)
		return []string{k.Ring(mid, mid, 30), k.Circle(mid, mid, 12), k.Dot(x, y)}
	}},
	{Name: "tile", Draw: func(k Toolkit, p params.Vector) []string {
		return []string{k.Square(mid, mid, 48, p.CornerRadius/4)}
	}},
	{Name: "prism", Draw: func(k Toolkit, p params.Vector) []string {
		return []string{k.Triangle(mid, 54, 30, p.Rotation)}
	}},
	{Name: "grid", Draw: func(k Toolkit, p params.Vector) []string {
		return k.DotGrid(mid, mid, count(p, 3, 4), 14*p.SpacingRatio)
	}},
}
