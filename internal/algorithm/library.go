// Package algorithm is the ordered library of named mark generators.
//
// A small set of base generators does the drawing. Every library entry names
// one base and an optional fixed override table; generating an entry merges
// the overrides onto the caller's parameters before delegating. Entries are
// plain data, so the override tables can be listed and tested without
// rendering anything.
//
// Selection by seed indexes into the library, so the order of entries is part
// of the contract: append new entries, never reorder or filter.
package algorithm

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sumitttt4/glyph/internal/params"
	"github.com/sumitttt4/glyph/internal/seed"
	"github.com/sumitttt4/glyph/internal/svg"
)

// ErrUnknownAlgorithm is returned by Lookup for a name not in the library.
var ErrUnknownAlgorithm = errors.New("unknown algorithm")

// Kind tags what an entry produces.
type Kind string

const (
	KindSymbol   Kind = "symbol"
	KindWordmark Kind = "wordmark"
)

// Family groups entries that share a drawing idea.
type Family string

const (
	FamilyTechnique Family = "technique"
	FamilyPremium   Family = "premium"
	FamilyInterlock Family = "interlock"
	FamilyFusion    Family = "fusion"
	FamilyTrinity   Family = "trinity"
	FamilyCreative  Family = "creative"
	FamilyMonogram  Family = "monogram"
	FamilyWordmark  Family = "wordmark"
)

// Families lists every family in library order.
var Families = []Family{
	FamilyTechnique, FamilyPremium, FamilyInterlock, FamilyFusion,
	FamilyTrinity, FamilyCreative, FamilyMonogram, FamilyWordmark,
}

// Generator draws a complete document.
type Generator func(p params.Vector, brand string, paint svg.Paint) string

// Entry is one named style.
type Entry struct {
	Name        string           `json:"name" yaml:"name"`
	Description string           `json:"description" yaml:"description"`
	Type        Kind             `json:"type" yaml:"type"`
	Family      Family           `json:"family" yaml:"family"`
	Base        string           `json:"base" yaml:"base"`
	Overrides   params.Overrides `json:"overrides,omitempty" yaml:"overrides,omitempty"`
	Tags        []string         `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// IsPreset reports whether the entry forces any parameters.
func (e Entry) IsPreset() bool {
	return len(e.Overrides) > 0
}

// HasTag reports whether the entry carries tag.
func (e Entry) HasTag(tag string) bool {
	for _, t := range e.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Params returns p with the entry's overrides applied.
func (e Entry) Params(p params.Vector) params.Vector {
	return params.Apply(p, e.Overrides)
}

// Generate renders the entry for brand.
func (e Entry) Generate(p params.Vector, brand string, paint svg.Paint) string {
	gen, ok := bases[e.Base]
	if !ok {
		gen = bases[defaultBase]
	}
	return gen(e.Params(p), brand, paint)
}

// Library returns a copy of the ordered library.
func Library() []Entry {
	return append([]Entry(nil), library...)
}

// Len returns the number of entries.
func Len() int {
	return len(library)
}

// At returns the entry at index i, wrapping out-of-range indices.
func At(i int) Entry {
	n := len(library)
	return library[((i%n)+n)%n]
}

// Lookup returns the entry with the given name, case-insensitively.
func Lookup(name string) (Entry, error) {
	for _, e := range library {
		if strings.EqualFold(e.Name, name) {
			return e, nil
		}
	}
	return Entry{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// SelectIndex returns the library index chosen by s.
func SelectIndex(s seed.Seed) int {
	return seed.SelectIndex(s, len(library))
}

// Select returns the entry chosen by s.
func Select(s seed.Seed) Entry {
	return library[SelectIndex(s)]
}

// ByFamily returns the entries of family f in library order.
func ByFamily(f Family) []Entry {
	var out []Entry
	for _, e := range library {
		if e.Family == f {
			out = append(out, e)
		}
	}
	return out
}

// ByTag returns the entries carrying tag in library order.
func ByTag(tag string) []Entry {
	var out []Entry
	for _, e := range library {
		if e.HasTag(tag) {
			out = append(out, e)
		}
	}
	return out
}

// Bases returns the ids of every base generator the library references.
func Bases() []string {
	seen := make(map[string]bool)
	var out []string
	for _, e := range library {
		if !seen[e.Base] {
			seen[e.Base] = true
			out = append(out, e.Base)
		}
	}
	return out
}
