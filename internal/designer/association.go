package designer

import (
	"sort"
	"strings"

	"github.com/sumitttt4/glyph/internal/algorithm"
)

// MaxAssociations is how many associations the association stage keeps.
const MaxAssociations = 10

// Relevance weights by where a word came from.
const (
	relevanceLeadName = 1.0
	relevanceKeyword  = 0.9
	relevanceName     = 0.8
	relevanceIndustry = 0.6
	relevanceActivity = 0.5
)

// metaphorKeys is the metaphor table's keys, longest first, for substring
// matching in a stable order.
var metaphorKeys = func() []string {
	keys := make([]string, 0, len(metaphors))
	for k := range metaphors {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	return keys
}()

// RunAssociation matches name parts, keywords, industry concepts and inferred
// activities against the metaphor table and keeps the most relevant.
func RunAssociation(d Discovery) Associated {
	var found []ConceptAssociation
	add := func(word string, relevance float64) {
		a, ok := associate(word, relevance)
		if !ok {
			return
		}
		for i := range found {
			if found[i].Word == a.Word {
				if a.Relevance > found[i].Relevance {
					found[i].Relevance = a.Relevance
				}
				return
			}
		}
		found = append(found, a)
	}

	for i, part := range algorithm.NameParts(d.Input.Name) {
		if i == 0 {
			add(part, relevanceLeadName)
		} else {
			add(part, relevanceName)
		}
	}
	for _, k := range d.Input.Keywords {
		add(k, relevanceKeyword)
	}
	ind := industryRow(d.Industry)
	for i, c := range ind.concepts {
		add(c, relevanceIndustry-0.02*float64(i))
	}
	for _, c := range d.WhatTheyDo {
		add(c, relevanceActivity)
	}

	sort.SliceStable(found, func(i, j int) bool {
		return found[i].Relevance > found[j].Relevance
	})
	if len(found) > MaxAssociations {
		found = found[:MaxAssociations]
	}
	return Associated{Discovery: d, Associations: found}
}

// associate looks word up in the metaphor table. Words of four or more
// letters also match any key they contain, which is then listed first among
// the related concepts.
func associate(word string, relevance float64) (ConceptAssociation, bool) {
	w := strings.ToLower(strings.TrimSpace(word))
	if w == "" {
		return ConceptAssociation{}, false
	}
	if m, ok := metaphors[w]; ok {
		return newAssociation(w, m, relevance), true
	}
	if len(w) < 4 {
		return ConceptAssociation{}, false
	}
	for _, k := range metaphorKeys {
		if len(k) >= 3 && strings.Contains(w, k) {
			a := newAssociation(w, metaphors[k], relevance)
			a.Related = append([]string{k}, a.Related...)
			return a, true
		}
	}
	return ConceptAssociation{}, false
}

func newAssociation(word string, m metaphor, relevance float64) ConceptAssociation {
	return ConceptAssociation{
		Word:      word,
		Related:   append([]string(nil), m.related...),
		Metaphors: append([]string(nil), m.metaphors...),
		Relevance: relevance,
	}
}
