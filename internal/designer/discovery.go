package designer

import (
	"strings"
)

// RunDiscovery infers what the brand does, who it serves and how it should
// feel. It never fails: unknown categories use the general industry and an
// empty audience serves everyone.
func RunDiscovery(in BrandInput) Discovery {
	in.Name = strings.TrimSpace(in.Name)
	ind := findIndustry(in.Category)
	if ind.name == defaultIndustry {
		for _, k := range in.Keywords {
			if alt := findIndustry(k); alt.name != defaultIndustry {
				ind = alt
				break
			}
		}
	}

	d := Discovery{
		Input:        in,
		Industry:     ind.name,
		WhatTheyDo:   whatTheyDo(ind, in.Description),
		WhoTheyServe: whoTheyServe(in.Audience + " " + in.Description),
		Personality:  personality(in.Personality, ind),
	}
	d.EmotionalTone = tones[d.Personality[0]]
	d.VisualDirection = directions[d.Personality[0]]
	return d
}

// industryRow returns the table row for a resolved industry name.
func industryRow(name string) industry {
	for _, ind := range industries {
		if ind.name == name {
			return ind
		}
	}
	return industries[len(industries)-1]
}

// findIndustry resolves a free-form category. Exact alias matches win over
// substring matches; aliases shorter than three letters only match exactly.
func findIndustry(category string) industry {
	c := strings.ToLower(strings.TrimSpace(category))
	fallback := industries[len(industries)-1]
	if c == "" {
		return fallback
	}
	for _, ind := range industries {
		for _, a := range ind.aliases {
			if a == c {
				return ind
			}
		}
	}
	for _, ind := range industries {
		for _, a := range ind.aliases {
			if len(a) >= 3 && len(c) >= 3 && (strings.Contains(c, a) || strings.Contains(a, c)) {
				return ind
			}
		}
	}
	return fallback
}

func whatTheyDo(ind industry, description string) []string {
	out := []string{ind.concepts[0]}
	desc := strings.ToLower(description)
	for _, v := range verbs {
		if strings.Contains(desc, v.stem) {
			out = appendUnique(out, v.concept)
		}
	}
	return out
}

func whoTheyServe(text string) []string {
	text = strings.ToLower(text)
	var out []string
	for _, a := range audiences {
		if strings.Contains(text, a.stem) {
			out = appendUnique(out, a.group)
		}
	}
	if len(out) == 0 {
		return []string{defaultAudience}
	}
	return out
}

// personality keeps the caller's known traits in order, or infers them from
// the industry.
func personality(given []Personality, ind industry) []Personality {
	var out []Personality
	seen := make(map[Personality]bool)
	for _, p := range given {
		if _, ok := tones[p]; ok && !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return append([]Personality(nil), ind.personality...)
	}
	return out
}

func appendUnique(list []string, s string) []string {
	for _, x := range list {
		if x == s {
			return list
		}
	}
	return append(list, s)
}
