package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sumitttt4/glyph/internal/batch"
	"github.com/sumitttt4/glyph/internal/svg"
)

func writeConfig(t *testing.T, content string) string {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, FileName)
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))
	return configPath
}

func TestLoad_ValidConfig(t *testing.T) {
	configPath := writeConfig(t, `version: "1.0"
paint:
  color: "#0a7"
  background: "#fff"
batch:
  min_candidates: 20
  order: score
designer:
  pass_threshold: 70
  max_variants: 3
portfolio:
  redis_url: "redis://localhost:6379/2"
  workspace: studio
`)

	config, err := Load(configPath)
	require.NoError(t, err)
	assert.Equal(t, "1.0", config.Version)
	assert.Equal(t, svg.Paint{Color: "#0a7", Background: "#fff"}, config.Paint)
	assert.Equal(t, 20, config.Batch.MinCandidates)
	assert.Equal(t, 4, config.Batch.Workers)
	assert.Equal(t, "score", config.Batch.Order)
	assert.Equal(t, 70.0, config.Designer.PassThreshold)
	assert.Equal(t, 3, config.Designer.MaxVariants)
	assert.Equal(t, 5, config.Designer.RefineTop)
	assert.Equal(t, "studio", config.Portfolio.Workspace)

	opts, err := config.RedisOptions()
	require.NoError(t, err)
	require.NotNil(t, opts)
	assert.Equal(t, "localhost:6379", opts.Addr)
	assert.Equal(t, 2, opts.DB)
}

func TestLoad_FileNotFound(t *testing.T) {
	config, err := Load("/nonexistent/glyph.yml")
	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "failed to read config")
}

func TestLoadOrDefault(t *testing.T) {
	t.Run("missing file yields defaults", func(t *testing.T) {
		config, err := LoadOrDefault(filepath.Join(t.TempDir(), FileName))
		require.NoError(t, err)
		assert.Equal(t, Default(), config)
	})

	t.Run("existing file is loaded", func(t *testing.T) {
		config, err := LoadOrDefault(writeConfig(t, "version: \"1.0\"\nbatch:\n  workers: 8\n"))
		require.NoError(t, err)
		assert.Equal(t, 8, config.Batch.Workers)
	})

	t.Run("invalid file still errors", func(t *testing.T) {
		_, err := LoadOrDefault(writeConfig(t, "version: \"2.0\"\n"))
		assert.Error(t, err)
	})
}

func TestLoad_InvalidYAML(t *testing.T) {
	configPath := writeConfig(t, `version: "1.0"
batch:
  - this is invalid
    yaml syntax
`)
	config, err := Load(configPath)
	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestDefault(t *testing.T) {
	c := Default()
	assert.Equal(t, CurrentVersion, c.Version)
	assert.Equal(t, svg.CurrentColor, c.Paint.Color)
	assert.Equal(t, batch.DefaultMinCandidates, c.Batch.MinCandidates)
	assert.Equal(t, 4, c.Batch.Workers)
	assert.Equal(t, "generated", c.Batch.Order)
	assert.Equal(t, 65.0, c.Designer.PassThreshold)
	assert.Equal(t, 4, c.Designer.MaxVariants)
	assert.Equal(t, 5, c.Designer.RefineTop)
	assert.Equal(t, 2, c.Designer.TypeCap)
	assert.Equal(t, 4, c.Designer.Workers)
	assert.Equal(t, "default", c.Portfolio.Workspace)

	opts, err := c.RedisOptions()
	require.NoError(t, err)
	assert.Nil(t, opts)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"minimal", `version: "1.0"`, ""},
		{"missing version", `batch: {workers: 2}`, "unsupported config version"},
		{"wrong version", `version: "2.0"`, "unsupported config version"},
		{"negative min candidates", "version: \"1.0\"\nbatch: {min_candidates: -1}", "batch.min_candidates must be >= 1"},
		{"negative batch workers", "version: \"1.0\"\nbatch: {workers: -2}", "batch.workers must be >= 1"},
		{"unknown order", "version: \"1.0\"\nbatch: {order: random}", "batch.order"},
		{"threshold out of range", "version: \"1.0\"\ndesigner: {pass_threshold: 120}", "designer.pass_threshold"},
		{"negative type cap", "version: \"1.0\"\ndesigner: {type_cap: -1}", "designer.type_cap must be >= 1"},
		{"negative variants", "version: \"1.0\"\ndesigner: {max_variants: -3}", "designer.max_variants must be >= 1"},
		{"bad redis url", "version: \"1.0\"\nportfolio: {redis_url: \"http://nope\"}", "portfolio.redis_url"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_VersionSentinel(t *testing.T) {
	_, err := Parse([]byte(`version: "0.9"`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedVersion))
}

func TestOptionsConversion(t *testing.T) {
	c, err := Parse([]byte(`version: "1.0"
paint: {color: "#123"}
batch: {min_candidates: 30, workers: 2, order: score}
designer: {pass_threshold: 60, refine_top: 6, type_cap: 3}
`))
	require.NoError(t, err)

	b := c.BatchOptions()
	assert.Equal(t, 30, b.MinCandidates)
	assert.Equal(t, 2, b.Workers)
	assert.Equal(t, batch.OrderByScore, b.Order)
	assert.Equal(t, "#123", b.Paint.Color)

	d := c.DesignerOptions()
	assert.Equal(t, 60.0, d.PassThreshold)
	assert.Equal(t, 6, d.RefineTop)
	assert.Equal(t, 3, d.TypeCap)
	assert.Equal(t, 4, d.MaxVariants)
	assert.Equal(t, "#123", d.Paint.Color)
}
