package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/sumitttt4/glyph/internal/designer"
	"gopkg.in/yaml.v3"
)

// LoadBrief reads a YAML brand brief for `glyph design --brief`.
func LoadBrief(path string) (*designer.BrandInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read brief: %w", err)
	}

	var in designer.BrandInput
	if err := yaml.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("failed to parse brief YAML: %w", err)
	}

	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("brief: %w", designer.ErrEmptyName)
	}
	for _, p := range in.Personality {
		if _, ok := designer.ParsePersonality(string(p)); !ok {
			return nil, fmt.Errorf("brief: unknown personality %q", p)
		}
	}
	return &in, nil
}
