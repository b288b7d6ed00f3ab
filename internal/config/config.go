// Package config loads glyph.yml, the per-project settings file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/redis/go-redis/v9"
	"github.com/sumitttt4/glyph/internal/batch"
	"github.com/sumitttt4/glyph/internal/designer"
	"github.com/sumitttt4/glyph/internal/svg"
	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the working directory.
const FileName = "glyph.yml"

// CurrentVersion is the only supported config version.
const CurrentVersion = "1.0"

// ErrUnsupportedVersion is returned for a version other than CurrentVersion.
var ErrUnsupportedVersion = errors.New("unsupported config version")

// Config represents the top-level glyph.yml configuration
type Config struct {
	Version   string          `yaml:"version"`
	Paint     svg.Paint       `yaml:"paint"`
	Batch     BatchConfig     `yaml:"batch"`
	Designer  DesignerConfig  `yaml:"designer"`
	Portfolio PortfolioConfig `yaml:"portfolio"`
}

// BatchConfig tunes `glyph batch`.
type BatchConfig struct {
	MinCandidates int    `yaml:"min_candidates,omitempty"` // Default: 15
	Workers       int    `yaml:"workers,omitempty"`        // Default: 4
	Order         string `yaml:"order,omitempty"`          // "generated" or "score"
}

// DesignerConfig tunes `glyph design`.
type DesignerConfig struct {
	PassThreshold float64 `yaml:"pass_threshold,omitempty"` // Default: 65
	MaxVariants   int     `yaml:"max_variants,omitempty"`   // Default: 4
	RefineTop     int     `yaml:"refine_top,omitempty"`     // Default: 5
	TypeCap       int     `yaml:"type_cap,omitempty"`       // Default: 2
	Workers       int     `yaml:"workers,omitempty"`        // Default: 4
}

// PortfolioConfig points at the Redis archive. An empty RedisURL disables
// archiving.
type PortfolioConfig struct {
	RedisURL  string `yaml:"redis_url,omitempty"`
	Workspace string `yaml:"workspace,omitempty"` // Default: "default"
}

// Default returns the configuration used when no glyph.yml exists.
func Default() *Config {
	c := &Config{Version: CurrentVersion}
	// Defaults cannot fail validation.
	_ = c.Validate()
	return c
}

// Validate applies defaults and rejects out-of-range values.
func (c *Config) Validate() error {
	if c.Version != CurrentVersion {
		return fmt.Errorf("%w: %q (expected: %s)", ErrUnsupportedVersion, c.Version, CurrentVersion)
	}

	if c.Paint.Color == "" {
		c.Paint.Color = svg.CurrentColor
	}

	if err := c.Batch.validate(); err != nil {
		return err
	}
	if err := c.Designer.validate(); err != nil {
		return err
	}
	if err := c.Portfolio.validate(); err != nil {
		return err
	}
	return nil
}

func (b *BatchConfig) validate() error {
	if b.MinCandidates == 0 {
		b.MinCandidates = batch.DefaultMinCandidates
	}
	if b.MinCandidates < 1 {
		return fmt.Errorf("batch.min_candidates must be >= 1, got %d", b.MinCandidates)
	}

	if b.Workers == 0 {
		b.Workers = 4
	}
	if b.Workers < 1 {
		return fmt.Errorf("batch.workers must be >= 1, got %d", b.Workers)
	}

	order, err := batch.ParseOrder(b.Order)
	if err != nil {
		return fmt.Errorf("batch.order: %w", err)
	}
	b.Order = string(order)
	return nil
}

func (d *DesignerConfig) validate() error {
	def := designer.DefaultOptions()

	if d.PassThreshold == 0 {
		d.PassThreshold = def.PassThreshold
	}
	if d.PassThreshold < 0 || d.PassThreshold > 100 {
		return fmt.Errorf("designer.pass_threshold must be within [0, 100], got %g", d.PassThreshold)
	}

	fields := []struct {
		name  string
		value *int
		def   int
	}{
		{"max_variants", &d.MaxVariants, def.MaxVariants},
		{"refine_top", &d.RefineTop, def.RefineTop},
		{"type_cap", &d.TypeCap, def.TypeCap},
		{"workers", &d.Workers, def.Workers},
	}
	for _, f := range fields {
		if *f.value == 0 {
			*f.value = f.def
		}
		if *f.value < 1 {
			return fmt.Errorf("designer.%s must be >= 1, got %d", f.name, *f.value)
		}
	}
	return nil
}

func (p *PortfolioConfig) validate() error {
	if p.Workspace == "" {
		p.Workspace = "default"
	}
	if p.RedisURL != "" {
		if _, err := redis.ParseURL(p.RedisURL); err != nil {
			return fmt.Errorf("portfolio.redis_url: %w", err)
		}
	}
	return nil
}

// BatchOptions converts the batch section into engine options.
func (c *Config) BatchOptions() batch.Options {
	return batch.Options{
		MinCandidates: c.Batch.MinCandidates,
		Workers:       c.Batch.Workers,
		Order:         batch.Order(c.Batch.Order),
		Paint:         c.Paint,
	}
}

// DesignerOptions converts the designer section into pipeline options.
func (c *Config) DesignerOptions() designer.Options {
	return designer.Options{
		PassThreshold: c.Designer.PassThreshold,
		MaxVariants:   c.Designer.MaxVariants,
		RefineTop:     c.Designer.RefineTop,
		TypeCap:       c.Designer.TypeCap,
		Workers:       c.Designer.Workers,
		Paint:         c.Paint,
	}
}

// RedisOptions parses the archive URL. Returns nil when archiving is
// disabled.
func (c *Config) RedisOptions() (*redis.Options, error) {
	if c.Portfolio.RedisURL == "" {
		return nil, nil
	}
	return redis.ParseURL(c.Portfolio.RedisURL)
}

// Load reads and validates glyph.yml from the specified path
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

// LoadOrDefault is Load, except that a missing file yields Default.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Parse decodes and validates a glyph.yml document.
func Parse(data []byte) (*Config, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}
