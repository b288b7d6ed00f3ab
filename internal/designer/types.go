// Package designer runs the designer-brain pipeline: a fixed sequence of pure
// stages that turns a brand brief into a handful of scored logo variants.
//
//	BrandInput -> Discovery -> Associated -> Sketched -> Refined -> Checked -> Output
//
// Each stage takes only its predecessor's record and returns a new one. Stage
// records embed their predecessor, so later stages can read earlier results
// without any stage mutating them.
package designer

import (
	"github.com/sumitttt4/glyph/internal/algorithm"
	"github.com/sumitttt4/glyph/internal/params"
)

// Personality is a brand personality trait. Every trait doubles as an
// algorithm library tag.
type Personality string

const (
	Professional Personality = algorithm.TagProfessional
	Playful      Personality = algorithm.TagPlayful
	Bold         Personality = algorithm.TagBold
	Minimal      Personality = algorithm.TagMinimal
	Elegant      Personality = algorithm.TagElegant
	Friendly     Personality = algorithm.TagFriendly
	Innovative   Personality = algorithm.TagInnovative
	Technical    Personality = algorithm.TagTechnical
)

// Personalities lists every known trait.
var Personalities = []Personality{Professional, Playful, Bold, Minimal, Elegant, Friendly, Innovative, Technical}

// ParsePersonality returns the trait named s.
func ParsePersonality(s string) (Personality, bool) {
	for _, p := range Personalities {
		if string(p) == s {
			return p, true
		}
	}
	return "", false
}

// BrandInput is the caller's brief. Only Name is required.
type BrandInput struct {
	Name             string        `json:"name" yaml:"name"`
	Category         string        `json:"category,omitempty" yaml:"category,omitempty"`
	Description      string        `json:"description,omitempty" yaml:"description,omitempty"`
	Audience         string        `json:"audience,omitempty" yaml:"audience,omitempty"`
	Keywords         []string      `json:"keywords,omitempty" yaml:"keywords,omitempty"`
	Personality      []Personality `json:"personality,omitempty" yaml:"personality,omitempty"`
	PreferLettermark bool          `json:"preferLettermark,omitempty" yaml:"prefer_lettermark,omitempty"`
	PreferAbstract   bool          `json:"preferAbstract,omitempty" yaml:"prefer_abstract,omitempty"`
}

// Discovery is what the pipeline infers about the brand.
type Discovery struct {
	Input           BrandInput    `json:"-"`
	Industry        string        `json:"industry"`
	WhatTheyDo      []string      `json:"whatTheyDo"`
	WhoTheyServe    []string      `json:"whoTheyServe"`
	Personality     []Personality `json:"personality"`
	EmotionalTone   string        `json:"emotionalTone"`
	VisualDirection string        `json:"visualDirection"`
}

// ConceptAssociation links one word from the brief to related concepts and the
// visual metaphors that can carry them.
type ConceptAssociation struct {
	Word      string   `json:"word"`
	Related   []string `json:"related"`
	Metaphors []string `json:"metaphors"`
	Relevance float64  `json:"relevance"`
}

// Associated is the output of the association stage.
type Associated struct {
	Discovery
	Associations []ConceptAssociation
}

// ConceptType is the diversity bucket a concept counts against during
// refinement.
type ConceptType string

const (
	TypeLettermark ConceptType = "lettermark"
	TypeAbstract   ConceptType = "abstract"
	TypeFusion     ConceptType = "fusion"
	TypeOther      ConceptType = "other"
)

// FamilyIcon marks concepts drawn by the abstract icon system rather than an
// algorithm library entry.
const FamilyIcon algorithm.Family = "icon"

// SketchConcept is one candidate idea. Exactly one of Algorithm and Icon is
// set.
type SketchConcept struct {
	ID        string           `json:"id"`
	Approach  string           `json:"approach"`
	Algorithm string           `json:"algorithm,omitempty"`
	Icon      string           `json:"icon,omitempty"`
	Family    algorithm.Family `json:"family"`
	Type      ConceptType      `json:"type"`
	Letter    string           `json:"letter,omitempty"`
	Source    string           `json:"source"`
	Overrides params.Overrides `json:"overrides,omitempty"`
	Score     float64          `json:"score"`
	Tags      []string         `json:"tags"`
}

// HasTag reports whether the concept carries tag.
func (c SketchConcept) HasTag(tag string) bool {
	for _, t := range c.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Sketched is the output of the sketching stage.
type Sketched struct {
	Associated
	Concepts []SketchConcept
}

// Refined is the output of the refinement stage. Selected holds at most
// Options.RefineTop concepts, best first.
type Refined struct {
	Sketched
	Selected []SketchConcept
}

// QualityScore holds the five sub-scores and their weighted overall, each in
// [0, 100].
type QualityScore struct {
	Scalability float64 `json:"scalability"`
	Simplicity  float64 `json:"simplicity"`
	Relevance   float64 `json:"relevance"`
	Uniqueness  float64 `json:"uniqueness"`
	Versatility float64 `json:"versatility"`
	Overall     float64 `json:"overall"`
}

// RefinedLogo is a rendered, scored concept.
type RefinedLogo struct {
	Concept  SketchConcept `json:"concept"`
	SVG      string        `json:"svg"`
	Params   params.Vector `json:"params"`
	Quality  QualityScore  `json:"quality"`
	Approved bool          `json:"approved"`
}

// Checked is the output of the quality check stage.
type Checked struct {
	Refined
	Logos []RefinedLogo
}

// Output is the pipeline result.
type Output struct {
	Discovery      Discovery            `json:"discovery"`
	Associations   []ConceptAssociation `json:"associations"`
	ConceptCount   int                  `json:"conceptCount"`
	Variants       []RefinedLogo        `json:"variants"`
	Recommendation RefinedLogo          `json:"recommendation"`
	Rationale      string               `json:"rationale"`
}
