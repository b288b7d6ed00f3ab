package svgpath

import "math"

// Affine is a 2-D affine transform in SVG matrix(a b c d e f) order:
//
//	x' = A*x + C*y + E
//	y' = B*x + D*y + F
type Affine struct {
	A, B, C, D, E, F float64
}

// Identity returns the identity transform.
func Identity() Affine {
	return Affine{A: 1, D: 1}
}

// Translate returns a translation.
func Translate(tx, ty float64) Affine {
	return Affine{A: 1, D: 1, E: tx, F: ty}
}

// Scale returns a scale about the origin.
func Scale(sx, sy float64) Affine {
	return Affine{A: sx, D: sy}
}

// Rotate returns a rotation about the origin by deg degrees.
func Rotate(deg float64) Affine {
	rad := deg * math.Pi / 180
	cos, sin := math.Cos(rad), math.Sin(rad)
	return Affine{A: cos, B: sin, C: -sin, D: cos}
}

// ScaleAbout returns a scale about the point (cx, cy).
func ScaleAbout(sx, sy, cx, cy float64) Affine {
	return Translate(-cx, -cy).Then(Scale(sx, sy)).Then(Translate(cx, cy))
}

// RotateAbout returns a rotation about the point (cx, cy).
func RotateAbout(deg, cx, cy float64) Affine {
	return Translate(-cx, -cy).Then(Rotate(deg)).Then(Translate(cx, cy))
}

// Then returns the transform that applies m first and n second.
func (m Affine) Then(n Affine) Affine {
	return Affine{
		A: n.A*m.A + n.C*m.B,
		B: n.B*m.A + n.D*m.B,
		C: n.A*m.C + n.C*m.D,
		D: n.B*m.C + n.D*m.D,
		E: n.A*m.E + n.C*m.F + n.E,
		F: n.B*m.E + n.D*m.F + n.F,
	}
}

// Apply transforms a point.
func (m Affine) Apply(p Point) Point {
	return Point{
		X: m.A*p.X + m.C*p.Y + m.E,
		Y: m.B*p.X + m.D*p.Y + m.F,
	}
}

func (m Affine) det() float64 {
	return m.A*m.D - m.B*m.C
}

// Transform returns the path with m applied to every coordinate. The result is
// absolute; H and V commands become L because a rotated axis-aligned line is
// no longer axis-aligned. Arc radii are scaled by the transform's axis scale
// factors and the sweep flag flips when the transform mirrors.
func (p Path) Transform(m Affine) Path {
	abs := p.Absolute()
	out := make(Path, 0, len(abs))
	var cur, start Point
	for _, c := range abs {
		switch c.Op {
		case 'Z':
			out = append(out, Command{Op: 'Z'})
			cur = start
			continue
		case 'H':
			cur.X = c.Args[0]
			t := m.Apply(cur)
			out = append(out, Command{Op: 'L', Args: []float64{t.X, t.Y}})
			continue
		case 'V':
			cur.Y = c.Args[0]
			t := m.Apply(cur)
			out = append(out, Command{Op: 'L', Args: []float64{t.X, t.Y}})
			continue
		case 'A':
			sx := math.Hypot(m.A, m.B)
			sy := math.Hypot(m.C, m.D)
			rot := math.Atan2(m.B, m.A) * 180 / math.Pi
			end := m.Apply(Point{c.Args[5], c.Args[6]})
			sweep := c.Args[4]
			if m.det() < 0 {
				// m = R(θ)·diag(-sx, sy)
				rot = math.Atan2(-m.C, m.D) * 180 / math.Pi
				sweep = 1 - sweep
			}
			out = append(out, Command{Op: 'A', Args: []float64{
				c.Args[0] * sx, c.Args[1] * sy, c.Args[2] + rot, c.Args[3], sweep, end.X, end.Y,
			}})
			cur = Point{c.Args[5], c.Args[6]}
			continue
		}
		args := make([]float64, len(c.Args))
		for i := 0; i+1 < len(c.Args); i += 2 {
			t := m.Apply(Point{c.Args[i], c.Args[i+1]})
			args[i], args[i+1] = t.X, t.Y
		}
		n := len(c.Args)
		cur = Point{c.Args[n-2], c.Args[n-1]}
		if c.Op == 'M' {
			start = cur
		}
		out = append(out, Command{Op: c.Op, Args: args})
	}
	return out
}
