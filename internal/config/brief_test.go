package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sumitttt4/glyph/internal/designer"
)

func writeBrief(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "brief.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadBrief(t *testing.T) {
	t.Run("full brief", func(t *testing.T) {
		in, err := LoadBrief(writeBrief(t, `name: Nexus
category: technology
description: networking tools
audience: developers
keywords: [connect, cloud]
personality: [innovative, professional]
prefer_lettermark: true
`))
		require.NoError(t, err)
		assert.Equal(t, "Nexus", in.Name)
		assert.Equal(t, "technology", in.Category)
		assert.Equal(t, []string{"connect", "cloud"}, in.Keywords)
		assert.Equal(t, []designer.Personality{designer.Innovative, designer.Professional}, in.Personality)
		assert.True(t, in.PreferLettermark)
		assert.False(t, in.PreferAbstract)
	})

	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"missing name", "category: finance\n", "brand name is required"},
		{"unknown personality", "name: Acme\npersonality: [grumpy]\n", "unknown personality"},
		{"bad yaml", "name: [unclosed\n", "failed to parse brief YAML"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadBrief(writeBrief(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	t.Run("missing name wraps sentinel", func(t *testing.T) {
		_, err := LoadBrief(writeBrief(t, "name: \"  \"\n"))
		assert.True(t, errors.Is(err, designer.ErrEmptyName))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadBrief("/nonexistent/brief.yml")
		assert.Error(t, err)
	})
}
