package skeleton

// Letter geometry (data only).
//
// Glyphs sit in the box x 25..75, y 20..80 with the cap height at y=20 and the
// baseline at y=80. Straight parts leave Path empty and are drawn as a
// polyline through their anchors; curved parts carry explicit path data whose
// on-curve points coincide with their anchors. Never reorder anchors: indices
// are referenced by the parts below and by consumers that cut stencil gaps.

type letterDef struct {
	letter  rune
	ratio   float64
	anchors []Point
	parts   []Part
}

func pts(xy ...float64) []Point {
	out := make([]Point, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		out = append(out, Point{X: xy[i], Y: xy[i+1]})
	}
	return out
}

// line is a straight part through the given anchors.
func line(t PartType, primary bool, anchors ...int) Part {
	return Part{Type: t, Primary: primary, Anchors: anchors}
}

// curve is a part with explicit path data.
func curve(t PartType, primary bool, d string, anchors ...int) Part {
	return Part{Type: t, Primary: primary, Path: d, Anchors: anchors}
}

// mark is a single-anchor location part.
func mark(t PartType, anchor int) Part {
	return Part{Type: t, Anchors: []int{anchor}}
}

var letters = []letterDef{
	{
		letter:  'A',
		ratio:   0.12,
		anchors: pts(50, 20, 28, 80, 72, 80, 37, 58, 63, 58),
		parts: []Part{
			mark(Apex, 0),
			line(Diagonal, true, 0, 1),
			line(Diagonal, true, 0, 2),
			line(Crossbar, false, 3, 4),
		},
	},
	{
		letter:  'B',
		ratio:   0.11,
		anchors: pts(30, 20, 30, 50, 30, 80, 66, 35, 70, 65),
		parts: []Part{
			line(Stem, true, 0, 2),
			curve(Bowl, true, "M30 20 H55 C62 20 66 27 66 35 C66 43 62 50 55 50 H30", 0, 3, 1),
			curve(Bowl, false, "M30 50 H58 C65 50 70 57 70 65 C70 73 65 80 58 80 H30", 1, 4, 2),
		},
	},
	{
		letter:  'C',
		ratio:   0.1,
		anchors: pts(70, 28, 50, 20, 30, 50, 50, 80, 70, 72),
		parts: []Part{
			curve(Arc, true, "M70 28 C65 23 58 20 50 20 C39 20 30 33 30 50 C30 67 39 80 50 80 C58 80 65 77 70 72", 0, 1, 2, 3, 4),
			mark(Terminal, 0),
			mark(Terminal, 4),
		},
	},
	{
		letter:  'D',
		ratio:   0.11,
		anchors: pts(30, 20, 30, 80, 72, 50),
		parts: []Part{
			line(Stem, true, 0, 1),
			curve(Bowl, true, "M30 20 H45 C62 20 72 33 72 50 C72 67 62 80 45 80 H30", 0, 2, 1),
		},
	},
	{
		letter:  'E',
		ratio:   0.11,
		anchors: pts(30, 20, 30, 80, 70, 20, 64, 50, 70, 80, 30, 50),
		parts: []Part{
			line(Stem, true, 0, 1),
			line(Arm, true, 0, 2),
			line(Crossbar, false, 5, 3),
			line(Arm, false, 1, 4),
		},
	},
	{
		letter:  'F',
		ratio:   0.11,
		anchors: pts(30, 20, 30, 80, 70, 20, 30, 50, 63, 50),
		parts: []Part{
			line(Stem, true, 0, 1),
			line(Arm, true, 0, 2),
			line(Crossbar, false, 3, 4),
		},
	},
	{
		letter:  'G',
		ratio:   0.1,
		anchors: pts(70, 28, 30, 50, 50, 80, 70, 52, 54, 52),
		parts: []Part{
			curve(Arc, true, "M70 28 C65 23 58 20 50 20 C39 20 30 33 30 50 C30 67 39 80 50 80 C61 80 70 73 70 63 V52", 0, 1, 2, 3),
			line(Bar, false, 4, 3),
			mark(Terminal, 0),
		},
	},
	{
		letter:  'H',
		ratio:   0.11,
		anchors: pts(30, 20, 30, 80, 70, 20, 70, 80, 30, 50, 70, 50),
		parts: []Part{
			line(Stem, true, 0, 1),
			line(Stem, true, 2, 3),
			line(Crossbar, false, 4, 5),
		},
	},
	{
		letter:  'I',
		ratio:   0.12,
		anchors: pts(50, 20, 50, 80, 38, 20, 62, 20, 38, 80, 62, 80),
		parts: []Part{
			line(Stem, true, 0, 1),
			line(Bar, false, 2, 3),
			line(Bar, false, 4, 5),
		},
	},
	{
		letter:  'J',
		ratio:   0.11,
		anchors: pts(62, 20, 62, 64, 46, 80, 30, 66),
		parts: []Part{
			line(Stem, true, 0, 1),
			curve(Hook, false, "M62 64 C62 74 55 80 46 80 C37 80 30 74 30 66", 1, 2, 3),
			mark(Terminal, 3),
		},
	},
	{
		letter:  'K',
		ratio:   0.11,
		anchors: pts(30, 20, 30, 80, 70, 20, 30, 56, 70, 80, 44, 45),
		parts: []Part{
			line(Stem, true, 0, 1),
			line(Arm, true, 2, 3),
			line(Leg, false, 5, 4),
		},
	},
	{
		letter:  'L',
		ratio:   0.11,
		anchors: pts(30, 20, 30, 80, 68, 80),
		parts: []Part{
			line(Stem, true, 0, 1),
			line(Arm, false, 1, 2),
		},
	},
	{
		letter:  'M',
		ratio:   0.1,
		anchors: pts(27, 80, 27, 20, 50, 58, 73, 20, 73, 80),
		parts: []Part{
			line(Stem, true, 0, 1),
			line(Diagonal, false, 1, 2),
			line(Diagonal, false, 2, 3),
			line(Stem, true, 3, 4),
			mark(Vertex, 2),
		},
	},
	{
		letter:  'N',
		ratio:   0.11,
		anchors: pts(30, 80, 30, 20, 70, 80, 70, 20),
		parts: []Part{
			line(Stem, true, 0, 1),
			line(Diagonal, true, 1, 2),
			line(Stem, false, 2, 3),
		},
	},
	{
		letter:  'O',
		ratio:   0.1,
		anchors: pts(50, 20, 74, 50, 50, 80, 26, 50),
		parts: []Part{
			curve(Bowl, true, "M50 20 C63 20 74 33 74 50 C74 67 63 80 50 80 C37 80 26 67 26 50 C26 33 37 20 50 20 Z", 0, 1, 2, 3),
		},
	},
	{
		letter:  'P',
		ratio:   0.11,
		anchors: pts(30, 20, 30, 80, 30, 52, 68, 36),
		parts: []Part{
			line(Stem, true, 0, 1),
			curve(Bowl, true, "M30 20 H52 C62 20 68 27 68 36 C68 45 62 52 52 52 H30", 0, 3, 2),
		},
	},
	{
		letter:  'Q',
		ratio:   0.1,
		anchors: pts(50, 20, 74, 50, 50, 80, 26, 50, 58, 66, 74, 82),
		parts: []Part{
			curve(Bowl, true, "M50 20 C63 20 74 33 74 50 C74 67 63 80 50 80 C37 80 26 67 26 50 C26 33 37 20 50 20 Z", 0, 1, 2, 3),
			line(Tail, false, 4, 5),
		},
	},
	{
		letter:  'R',
		ratio:   0.11,
		anchors: pts(30, 20, 30, 80, 30, 52, 68, 36, 50, 52, 70, 80),
		parts: []Part{
			line(Stem, true, 0, 1),
			curve(Bowl, true, "M30 20 H52 C62 20 68 27 68 36 C68 45 62 52 52 52 H30", 0, 3, 2),
			line(Leg, false, 4, 5),
		},
	},
	{
		letter:  'S',
		ratio:   0.1,
		anchors: pts(68, 28, 50, 20, 32, 34, 50, 50, 68, 66, 50, 80, 32, 72),
		parts: []Part{
			curve(Spine, true, "M68 28 C64 23 58 20 50 20 C40 20 32 26 32 34 C32 44 42 47 50 50 C58 53 68 56 68 66 C68 74 60 80 50 80 C42 80 35 77 32 72", 0, 1, 2, 3, 4, 5, 6),
			mark(Terminal, 0),
			mark(Terminal, 6),
		},
	},
	{
		letter:  'T',
		ratio:   0.11,
		anchors: pts(26, 20, 74, 20, 50, 20, 50, 80),
		parts: []Part{
			line(Bar, true, 0, 1),
			line(Stem, true, 2, 3),
		},
	},
	{
		letter:  'U',
		ratio:   0.11,
		anchors: pts(30, 20, 30, 60, 50, 80, 70, 60, 70, 20),
		parts: []Part{
			line(Stem, true, 0, 1),
			curve(Arc, false, "M30 60 C30 72 39 80 50 80 C61 80 70 72 70 60", 1, 2, 3),
			line(Stem, true, 3, 4),
		},
	},
	{
		letter:  'V',
		ratio:   0.11,
		anchors: pts(26, 20, 50, 80, 74, 20),
		parts: []Part{
			line(Diagonal, true, 0, 1),
			line(Diagonal, true, 1, 2),
			mark(Vertex, 1),
		},
	},
	{
		letter:  'W',
		ratio:   0.09,
		anchors: pts(22, 20, 36, 80, 50, 40, 64, 80, 78, 20),
		parts: []Part{
			line(Diagonal, true, 0, 1),
			line(Diagonal, false, 1, 2),
			line(Diagonal, false, 2, 3),
			line(Diagonal, true, 3, 4),
			mark(Vertex, 1),
			mark(Apex, 2),
			mark(Vertex, 3),
		},
	},
	{
		letter:  'X',
		ratio:   0.11,
		anchors: pts(28, 20, 72, 80, 72, 20, 28, 80),
		parts: []Part{
			line(Diagonal, true, 0, 1),
			line(Diagonal, true, 2, 3),
		},
	},
	{
		letter:  'Y',
		ratio:   0.11,
		anchors: pts(26, 20, 50, 50, 74, 20, 50, 80),
		parts: []Part{
			line(Arm, false, 0, 1),
			line(Arm, false, 2, 1),
			line(Stem, true, 1, 3),
		},
	},
	{
		letter:  'Z',
		ratio:   0.11,
		anchors: pts(28, 20, 72, 20, 28, 80, 72, 80),
		parts: []Part{
			line(Bar, false, 0, 1),
			line(Diagonal, true, 1, 2),
			line(Bar, false, 2, 3),
		},
	},
}
