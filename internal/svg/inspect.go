package svg

import (
	"encoding/xml"
	"errors"
	"io"
	"strconv"
	"strings"
)

// Stats summarises the structure of a markup document. Quality heuristics are
// computed from it rather than from the generator that produced the markup.
type Stats struct {
	Elements  int // drawable elements (shapes, paths, text)
	Masks     int
	Gradients int
	Groups    int

	// MinStroke and MaxStroke are the extreme stroke-width values seen; both are
	// zero when no element sets a stroke width.
	MinStroke float64
	MaxStroke float64

	HasText bool
}

var drawable = map[string]bool{
	"circle": true, "ellipse": true, "rect": true, "line": true,
	"path": true, "polygon": true, "polyline": true, "text": true,
}

// Inspect walks markup and counts its elements. Elements inside mask
// definitions count as masks' content, not as drawable elements.
func Inspect(markup string) (Stats, error) {
	var st Stats
	dec := xml.NewDecoder(strings.NewReader(markup))
	maskDepth := 0
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return st, nil
		}
		if err != nil {
			return st, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			name := t.Name.Local
			switch {
			case name == "mask":
				st.Masks++
				maskDepth++
			case name == "linearGradient" || name == "radialGradient":
				st.Gradients++
			case name == "g":
				st.Groups++
			case drawable[name] && maskDepth == 0:
				st.Elements++
				if name == "text" {
					st.HasText = true
				}
			}
			if maskDepth == 0 {
				for _, a := range t.Attr {
					if a.Name.Local != "stroke-width" {
						continue
					}
					w, err := strconv.ParseFloat(a.Value, 64)
					if err != nil {
						continue
					}
					if st.MinStroke == 0 || w < st.MinStroke {
						st.MinStroke = w
					}
					if w > st.MaxStroke {
						st.MaxStroke = w
					}
				}
			}
		case xml.EndElement:
			if t.Name.Local == "mask" && maskDepth > 0 {
				maskDepth--
			}
		}
	}
}
