package portfolio

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Source records which command produced a mark.
type Source string

const (
	SourceGenerate Source = "generate"
	SourceBatch    Source = "batch"
	SourceDesign   Source = "design"
	SourceIcon     Source = "icon"
)

// Validate checks the source is one of the known values.
func (s Source) Validate() error {
	switch s {
	case SourceGenerate, SourceBatch, SourceDesign, SourceIcon:
		return nil
	}
	return fmt.Errorf("invalid source: %q", s)
}

// Mark is one archived result.
type Mark struct {
	ID           string          `json:"id"`
	Brand        string          `json:"brand"`
	Category     string          `json:"category,omitempty"`
	Algorithm    string          `json:"algorithm"`
	Description  string          `json:"description,omitempty"`
	SVG          string          `json:"svg"`
	Params       json.RawMessage `json:"params,omitempty"`
	QualityScore float64         `json:"quality_score"`
	Source       Source          `json:"source"`
	CreatedAtMs  int64           `json:"created_at_ms"`
}

// Validate checks the mark can be stored.
func (m *Mark) Validate() error {
	if m.ID == "" {
		return errors.New("mark id cannot be empty")
	}
	if m.SVG == "" {
		return errors.New("mark svg cannot be empty")
	}
	if m.QualityScore < 0 || m.QualityScore > 100 {
		return fmt.Errorf("quality score %.1f out of range [0, 100]", m.QualityScore)
	}
	if len(m.Params) > 0 && !json.Valid(m.Params) {
		return errors.New("mark params are not valid JSON")
	}
	return m.Source.Validate()
}
