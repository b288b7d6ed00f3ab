package filter

import (
	"path/filepath"
	"strings"

	"github.com/sumitttt4/glyph/pkg/portfolio"
)

// Criteria defines filtering criteria for archived marks.
// All filters are ANDed together - a mark must match ALL criteria to pass.
type Criteria struct {
	SinceTimestampMs int64            // Unix timestamp in milliseconds, 0 = no filter
	UntilTimestampMs int64            // Unix timestamp in milliseconds, 0 = no filter
	AlgorithmGlob    string           // Glob pattern for algorithm name, empty = no filter
	Brand            string           // Case-insensitive brand match, empty = no filter
	Source           portfolio.Source // Exact match on source, empty = no filter
	MinScore         float64          // Lowest quality score kept, 0 = no filter
}

// Matches returns true if the mark matches all filter criteria.
// Empty/zero criteria values are treated as "match all" for that criterion.
func (c *Criteria) Matches(m *portfolio.Mark) bool {
	if c.SinceTimestampMs > 0 && m.CreatedAtMs < c.SinceTimestampMs {
		return false
	}
	if c.UntilTimestampMs > 0 && m.CreatedAtMs > c.UntilTimestampMs {
		return false
	}

	if c.AlgorithmGlob != "" {
		matched, err := filepath.Match(c.AlgorithmGlob, m.Algorithm)
		if err != nil || !matched {
			return false
		}
	}

	if c.Brand != "" && !strings.EqualFold(strings.TrimSpace(c.Brand), strings.TrimSpace(m.Brand)) {
		return false
	}
	if c.Source != "" && m.Source != c.Source {
		return false
	}
	if c.MinScore > 0 && m.QualityScore < c.MinScore {
		return false
	}

	return true
}

// HasFilters returns true if any filters are active.
func (c *Criteria) HasFilters() bool {
	return c.SinceTimestampMs > 0 ||
		c.UntilTimestampMs > 0 ||
		c.AlgorithmGlob != "" ||
		c.Brand != "" ||
		c.Source != "" ||
		c.MinScore > 0
}
