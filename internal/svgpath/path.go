// Package svgpath parses SVG path data into a command list with explicitly
// tagged coordinates, so that paths can be transformed structurally instead
// of by rewriting numeric tokens in the raw string.
package svgpath

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sumitttt4/glyph/internal/svg"
)

// Point is a 2-D coordinate in canvas units.
type Point struct {
	X, Y float64
}

// ArgKind tags what a single command argument means.
type ArgKind uint8

const (
	// ArgX is an x coordinate.
	ArgX ArgKind = iota
	// ArgY is a y coordinate.
	ArgY
	// ArgRadius is an arc radius (rx or ry).
	ArgRadius
	// ArgAngle is an arc x-axis rotation in degrees.
	ArgAngle
	// ArgFlag is an arc large-arc or sweep flag (0 or 1).
	ArgFlag
)

// argKinds lists the argument layout of every command, keyed by upper-case
// letter. Lower-case commands share the layout but carry relative values.
var argKinds = map[byte][]ArgKind{
	'M': {ArgX, ArgY},
	'L': {ArgX, ArgY},
	'T': {ArgX, ArgY},
	'H': {ArgX},
	'V': {ArgY},
	'C': {ArgX, ArgY, ArgX, ArgY, ArgX, ArgY},
	'S': {ArgX, ArgY, ArgX, ArgY},
	'Q': {ArgX, ArgY, ArgX, ArgY},
	'A': {ArgRadius, ArgRadius, ArgAngle, ArgFlag, ArgFlag, ArgX, ArgY},
	'Z': {},
}

// Command is one path command with its arguments.
type Command struct {
	Op   byte
	Args []float64
}

// Relative reports whether the command uses relative coordinates.
func (c Command) Relative() bool {
	return c.Op >= 'a' && c.Op <= 'z'
}

// Upper returns the command letter in upper case.
func (c Command) Upper() byte {
	if c.Relative() {
		return c.Op - ('a' - 'A')
	}
	return c.Op
}

// Kinds returns the argument tags for this command.
func (c Command) Kinds() []ArgKind {
	return argKinds[c.Upper()]
}

// Path is an ordered list of commands.
type Path []Command

// Parse parses SVG path data. Implicit command repetition is expanded so that
// every Command carries exactly one argument tuple; repeated pairs after a
// moveto become lineto commands as the SVG grammar requires.
func Parse(d string) (Path, error) {
	s := &scanner{src: d}
	var out Path
	var op byte
	for {
		s.skipSeparators()
		if s.done() {
			return out, nil
		}
		if c := s.peek(); isCommand(c) {
			op = c
			s.pos++
		} else if op == 0 {
			return nil, fmt.Errorf("path data must start with a command, got %q at offset %d", c, s.pos)
		}

		kinds := argKinds[upper(op)]
		if len(kinds) == 0 {
			out = append(out, Command{Op: op})
			op = 0
			continue
		}

		args := make([]float64, len(kinds))
		for i, k := range kinds {
			s.skipSeparators()
			var (
				v   float64
				err error
			)
			if k == ArgFlag {
				v, err = s.flag()
			} else {
				v, err = s.number()
			}
			if err != nil {
				return nil, fmt.Errorf("command %c argument %d: %w", op, i+1, err)
			}
			args[i] = v
		}
		out = append(out, Command{Op: op, Args: args})

		// Subsequent implicit tuples after M/m are line commands.
		switch op {
		case 'M':
			op = 'L'
		case 'm':
			op = 'l'
		}
	}
}

// MustParse parses path data authored in this repository and panics on error.
// It is intended for package-level literal data only.
func MustParse(d string) Path {
	p, err := Parse(d)
	if err != nil {
		panic(fmt.Sprintf("svgpath: %v", err))
	}
	return p
}

// String serialises the path back to compact path data.
func (p Path) String() string {
	var b strings.Builder
	for i, c := range p {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteByte(c.Op)
		for j, a := range c.Args {
			if j > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(svg.Num(a))
		}
	}
	return b.String()
}

// Absolute returns an equivalent path where every command uses absolute
// coordinates. H and V stay H and V.
func (p Path) Absolute() Path {
	out := make(Path, 0, len(p))
	var cur, start Point
	for _, c := range p {
		up := c.Upper()
		args := append([]float64(nil), c.Args...)
		if c.Relative() {
			for i, k := range c.Kinds() {
				switch k {
				case ArgX:
					args[i] += cur.X
				case ArgY:
					args[i] += cur.Y
				}
			}
		}
		out = append(out, Command{Op: up, Args: args})

		switch up {
		case 'Z':
			cur = start
		case 'H':
			cur.X = args[0]
		case 'V':
			cur.Y = args[0]
		default:
			n := len(args)
			cur = Point{X: args[n-2], Y: args[n-1]}
			if up == 'M' {
				start = cur
			}
		}
	}
	return out
}

// HasCurves reports whether any command draws a curve or arc.
func (p Path) HasCurves() bool {
	for _, c := range p {
		switch c.Upper() {
		case 'C', 'S', 'Q', 'T', 'A':
			return true
		}
	}
	return false
}

// Lines returns the straight segments drawn by the path as start/end pairs.
func (p Path) Lines() [][2]Point {
	var out [][2]Point
	var cur, start Point
	for _, c := range p.Absolute() {
		switch c.Op {
		case 'M':
			cur = Point{c.Args[0], c.Args[1]}
			start = cur
		case 'L':
			next := Point{c.Args[0], c.Args[1]}
			out = append(out, [2]Point{cur, next})
			cur = next
		case 'H':
			next := Point{c.Args[0], cur.Y}
			out = append(out, [2]Point{cur, next})
			cur = next
		case 'V':
			next := Point{cur.X, c.Args[0]}
			out = append(out, [2]Point{cur, next})
			cur = next
		case 'Z':
			if cur != start {
				out = append(out, [2]Point{cur, start})
			}
			cur = start
		default:
			n := len(c.Args)
			cur = Point{c.Args[n-2], c.Args[n-1]}
		}
	}
	return out
}

// Bounds returns the axis-aligned box containing every on-curve and control
// point of the path. Control points make the box conservative for curves.
// ok is false for an empty path.
func (p Path) Bounds() (min, max Point, ok bool) {
	add := func(pt Point) {
		if !ok {
			min, max, ok = pt, pt, true
			return
		}
		if pt.X < min.X {
			min.X = pt.X
		}
		if pt.Y < min.Y {
			min.Y = pt.Y
		}
		if pt.X > max.X {
			max.X = pt.X
		}
		if pt.Y > max.Y {
			max.Y = pt.Y
		}
	}
	var cur Point
	for _, c := range p.Absolute() {
		switch c.Op {
		case 'Z':
			continue
		case 'H':
			cur.X = c.Args[0]
			add(cur)
		case 'V':
			cur.Y = c.Args[0]
			add(cur)
		case 'A':
			cur = Point{c.Args[5], c.Args[6]}
			add(cur)
		default:
			for i := 0; i+1 < len(c.Args); i += 2 {
				add(Point{c.Args[i], c.Args[i+1]})
			}
			n := len(c.Args)
			cur = Point{c.Args[n-2], c.Args[n-1]}
		}
	}
	return min, max, ok
}

func isCommand(c byte) bool {
	_, ok := argKinds[upper(c)]
	return ok && ((c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z'))
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}

type scanner struct {
	src string
	pos int
}

func (s *scanner) done() bool { return s.pos >= len(s.src) }

func (s *scanner) peek() byte { return s.src[s.pos] }

func (s *scanner) skipSeparators() {
	for !s.done() {
		switch s.peek() {
		case ' ', '\t', '\n', '\r', ',':
			s.pos++
		default:
			return
		}
	}
}

func (s *scanner) flag() (float64, error) {
	if s.done() {
		return 0, fmt.Errorf("unexpected end of path data")
	}
	switch s.peek() {
	case '0':
		s.pos++
		return 0, nil
	case '1':
		s.pos++
		return 1, nil
	}
	return 0, fmt.Errorf("invalid arc flag %q at offset %d", s.peek(), s.pos)
}

func (s *scanner) number() (float64, error) {
	start := s.pos
	if !s.done() && (s.peek() == '-' || s.peek() == '+') {
		s.pos++
	}
	digits, dot := 0, false
	for !s.done() {
		c := s.peek()
		if c >= '0' && c <= '9' {
			digits++
			s.pos++
			continue
		}
		if c == '.' && !dot {
			dot = true
			s.pos++
			continue
		}
		break
	}
	if digits > 0 && !s.done() && (s.peek() == 'e' || s.peek() == 'E') {
		save := s.pos
		s.pos++
		if !s.done() && (s.peek() == '-' || s.peek() == '+') {
			s.pos++
		}
		exp := 0
		for !s.done() && s.peek() >= '0' && s.peek() <= '9' {
			exp++
			s.pos++
		}
		if exp == 0 {
			s.pos = save
		}
	}
	if digits == 0 {
		s.pos = start
		if s.done() {
			return 0, fmt.Errorf("unexpected end of path data")
		}
		return 0, fmt.Errorf("expected number at offset %d, got %q", start, s.peek())
	}
	v, err := strconv.ParseFloat(s.src[start:s.pos], 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q: %w", s.src[start:s.pos], err)
	}
	return v, nil
}
