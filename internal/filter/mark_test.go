package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/sumitttt4/glyph/pkg/portfolio"
)

func TestCriteriaMatches(t *testing.T) {
	mark := &portfolio.Mark{
		ID:           "abc",
		Brand:        "Acme",
		Algorithm:    "premium-cube",
		QualityScore: 90,
		Source:       portfolio.SourceBatch,
		CreatedAtMs:  5000,
	}

	tests := []struct {
		name     string
		criteria Criteria
		want     bool
	}{
		{"empty matches all", Criteria{}, true},
		{"since before", Criteria{SinceTimestampMs: 4000}, true},
		{"since after", Criteria{SinceTimestampMs: 6000}, false},
		{"until after", Criteria{UntilTimestampMs: 6000}, true},
		{"until before", Criteria{UntilTimestampMs: 4000}, false},
		{"algorithm glob", Criteria{AlgorithmGlob: "premium-*"}, true},
		{"algorithm glob miss", Criteria{AlgorithmGlob: "ring-*"}, false},
		{"bad glob", Criteria{AlgorithmGlob: "["}, false},
		{"brand case-insensitive", Criteria{Brand: "ACME"}, true},
		{"brand miss", Criteria{Brand: "Globex"}, false},
		{"source", Criteria{Source: portfolio.SourceBatch}, true},
		{"source miss", Criteria{Source: portfolio.SourceDesign}, false},
		{"score floor", Criteria{MinScore: 85}, true},
		{"score floor miss", Criteria{MinScore: 95}, false},
		{"all anded", Criteria{Brand: "acme", AlgorithmGlob: "*cube", SinceTimestampMs: 1}, true},
		{"one failing fails all", Criteria{Brand: "acme", AlgorithmGlob: "*orb"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.criteria.Matches(mark))
		})
	}
}

func TestCriteriaHasFilters(t *testing.T) {
	assert.False(t, (&Criteria{}).HasFilters())
	assert.True(t, (&Criteria{Brand: "acme"}).HasFilters())
	assert.True(t, (&Criteria{MinScore: 1}).HasFilters())
	assert.True(t, (&Criteria{Source: portfolio.SourceIcon}).HasFilters())
}
