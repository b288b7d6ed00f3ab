package portfolio

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Redis stores marks as string hashes. The parameter vector stays a JSON
// document in a single field.

// MarkToHash converts a Mark to a Redis hash.
func MarkToHash(m *Mark) map[string]interface{} {
	return map[string]interface{}{
		"id":            m.ID,
		"brand":         m.Brand,
		"category":      m.Category,
		"algorithm":     m.Algorithm,
		"description":   m.Description,
		"svg":           m.SVG,
		"params":        string(m.Params),
		"quality_score": strconv.FormatFloat(m.QualityScore, 'f', -1, 64),
		"source":        string(m.Source),
		"created_at_ms": m.CreatedAtMs,
	}
}

// HashToMark converts a Redis hash back to a Mark.
func HashToMark(hash map[string]string) (*Mark, error) {
	score, err := strconv.ParseFloat(hash["quality_score"], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid quality_score field: %w", err)
	}
	createdAtMs, err := strconv.ParseInt(hash["created_at_ms"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid created_at_ms field: %w", err)
	}

	var params json.RawMessage
	if p := hash["params"]; p != "" {
		if !json.Valid([]byte(p)) {
			return nil, fmt.Errorf("invalid params field")
		}
		params = json.RawMessage(p)
	}

	return &Mark{
		ID:           hash["id"],
		Brand:        hash["brand"],
		Category:     hash["category"],
		Algorithm:    hash["algorithm"],
		Description:  hash["description"],
		SVG:          hash["svg"],
		Params:       params,
		QualityScore: score,
		Source:       Source(hash["source"]),
		CreatedAtMs:  createdAtMs,
	}, nil
}
