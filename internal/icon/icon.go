// Package icon draws abstract category icons. Each semantic category owns a
// handful of compositions built only from the primitives in Toolkit, so every
// icon shares one visual vocabulary.
package icon

import (
	"strings"

	"github.com/sumitttt4/glyph/internal/params"
	"github.com/sumitttt4/glyph/internal/seed"
	"github.com/sumitttt4/glyph/internal/svg"
)

// Category names.
const (
	Speed         = "speed"
	Growth        = "growth"
	Connect       = "connect"
	Secure        = "secure"
	Tech          = "tech"
	Creative      = "creative"
	Data          = "data"
	Communication = "communication"
	Finance       = "finance"
	Health        = "health"
	Default       = "default"
)

// Category is a named set of compositions and the keywords that select it.
type Category struct {
	Name         string
	Keywords     []string
	Compositions []Composition
}

// categories is scanned in order when resolving by keyword; the default set
// is kept separately and never matched.
var categories = []Category{
	{Name: Speed, Compositions: speed, Keywords: []string{"fast", "quick", "rapid", "swift", "speed", "velocity", "express", "instant", "rush", "turbo", "zoom", "delivery"}},
	{Name: Growth, Compositions: growth, Keywords: []string{"grow", "rise", "scale", "expand", "bloom", "thrive", "boost", "climb", "progress", "startup"}},
	{Name: Connect, Compositions: connect, Keywords: []string{"connect", "link", "network", "social", "together", "community", "bridge", "join", "sync", "hub", "unite"}},
	{Name: Secure, Compositions: secure, Keywords: []string{"secure", "security", "safe", "protect", "guard", "shield", "trust", "lock", "vault", "privacy", "defend"}},
	{Name: Tech, Compositions: tech, Keywords: []string{"tech", "software", "digital", "code", "cloud", "cyber", "app", "platform", "compute", "robot", "ai"}},
	{Name: Creative, Compositions: creative, Keywords: []string{"creative", "design", "art", "studio", "craft", "idea", "imagine", "paint", "story", "agency"}},
	{Name: Data, Compositions: data, Keywords: []string{"data", "analytic", "insight", "metric", "stats", "chart", "intelligence", "research", "report"}},
	{Name: Communication, Compositions: communication, Keywords: []string{"chat", "message", "talk", "voice", "communicat", "mail", "signal", "broadcast", "call", "speak", "media"}},
	{Name: Finance, Compositions: finance, Keywords: []string{"financ", "bank", "money", "pay", "invest", "capital", "fund", "wealth", "coin", "credit", "trade", "account"}},
	{Name: Health, Compositions: health, Keywords: []string{"health", "care", "medic", "wellness", "fit", "clinic", "bio", "life", "pharma", "heal", "vital"}},
}

var defaultCategory = Category{Name: Default, Compositions: fallback}

// Categories returns every category name, default last.
func Categories() []string {
	out := make([]string, 0, len(categories)+1)
	for _, c := range categories {
		out = append(out, c.Name)
	}
	return append(out, Default)
}

// Lookup returns the category with exactly this name.
func Lookup(name string) (Category, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == Default {
		return defaultCategory, true
	}
	for _, c := range categories {
		if c.Name == name {
			return c, true
		}
	}
	return Category{}, false
}

// matches reports a fuzzy match between a caller word and a category keyword.
// Keywords shorter than three letters must match exactly.
func matches(word, keyword string) bool {
	if word == keyword {
		return true
	}
	if len(keyword) < 3 || len(word) < 3 {
		return false
	}
	return strings.Contains(word, keyword) || strings.Contains(keyword, word)
}

// Resolve picks the category for a request. An exact category name wins.
// Otherwise the keywords, plus an unrecognised category string, are scanned
// against each category's keyword list and the first category with a match
// wins. Anything else resolves to the default set.
func Resolve(category string, keywords []string) Category {
	if c, ok := Lookup(category); ok {
		return c
	}
	words := make([]string, 0, len(keywords)+1)
	if s := strings.ToLower(strings.TrimSpace(category)); s != "" {
		words = append(words, s)
	}
	for _, k := range keywords {
		if s := strings.ToLower(strings.TrimSpace(k)); s != "" {
			words = append(words, s)
		}
	}
	for _, c := range categories {
		for _, kw := range c.Keywords {
			for _, w := range words {
				if matches(w, kw) {
					return c
				}
			}
		}
	}
	return defaultCategory
}

// Generate draws the icon for brand. The composition within the resolved
// category is picked by the brand name hash.
func Generate(p params.Vector, brand, category string, keywords []string, paint svg.Paint) string {
	c := Resolve(category, keywords)
	return Render(p, c, seed.HashIndex(brand, len(c.Compositions)), paint)
}

// Render draws composition i of c, wrapping out-of-range indices.
func Render(p params.Vector, c Category, i int, paint svg.Paint) string {
	if len(c.Compositions) == 0 {
		c = defaultCategory
	}
	n := len(c.Compositions)
	comp := c.Compositions[((i%n)+n)%n]
	k := NewToolkit(paint, p.StrokeWidth*0.75+1.5)
	return svg.Document(paint, nil,
		svg.Group([]svg.Attr{svg.Rotate(rotation(p))}, comp.Draw(k, p)...),
	)
}

// rotation applies the vector's rotation only under radial symmetry;
// bilateral and asymmetric icons stay upright.
func rotation(p params.Vector) float64 {
	if p.Symmetry != params.SymmetryRadial {
		return 0
	}
	return float64(int(p.Rotation/45)) * 45
}
