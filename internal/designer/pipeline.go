package designer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/sumitttt4/glyph/internal/svg"
)

// ErrEmptyName is returned by Pipeline.Run for a brief without a name.
var ErrEmptyName = errors.New("brand name is required")

// Options tunes the refinement, quality and selection stages. Zero fields
// take the defaults.
type Options struct {
	PassThreshold float64
	MaxVariants   int
	RefineTop     int
	TypeCap       int
	Workers       int
	Paint         svg.Paint
}

// DefaultOptions returns the standard tuning.
func DefaultOptions() Options {
	return Options{
		PassThreshold: 65,
		MaxVariants:   4,
		RefineTop:     5,
		TypeCap:       2,
		Workers:       4,
		Paint:         svg.DefaultPaint(),
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.PassThreshold <= 0 {
		o.PassThreshold = d.PassThreshold
	}
	if o.MaxVariants <= 0 {
		o.MaxVariants = d.MaxVariants
	}
	if o.RefineTop <= 0 {
		o.RefineTop = d.RefineTop
	}
	if o.TypeCap <= 0 {
		o.TypeCap = d.TypeCap
	}
	if o.Workers <= 0 {
		o.Workers = d.Workers
	}
	if o.Paint.Color == "" {
		o.Paint.Color = d.Paint.Color
	}
	return o
}

// Pipeline runs the six stages in order.
type Pipeline struct {
	opts   Options
	logger *log.Logger
}

// New creates a pipeline. A nil logger discards all output.
func New(opts Options, logger *log.Logger) *Pipeline {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Pipeline{opts: opts.withDefaults(), logger: logger}
}

// Run takes a brief through discovery, association, sketching, refinement,
// quality check and selection. It fails only for an empty name or a cancelled
// context.
func (p *Pipeline) Run(ctx context.Context, in BrandInput) (Output, error) {
	if strings.TrimSpace(in.Name) == "" {
		return Output{}, ErrEmptyName
	}
	start := time.Now()

	d := RunDiscovery(in)
	p.logger.Printf("[Designer] Discovery for '%s': industry=%s personality=%v direction=%s", d.Input.Name, d.Industry, d.Personality, d.VisualDirection)

	a := RunAssociation(d)
	s := RunSketching(a)
	p.logger.Printf("[Designer] Sketched %d concepts from %d associations", len(s.Concepts), len(a.Associations))

	r := RunRefinement(s, p.opts)
	p.logEvent("refined", map[string]interface{}{
		"brand":    d.Input.Name,
		"concepts": len(s.Concepts),
		"selected": len(r.Selected),
	})

	c, err := RunQualityCheck(ctx, r, p.opts)
	if err != nil {
		return Output{}, fmt.Errorf("quality check failed: %w", err)
	}

	out := RunSelection(c, p.opts)
	p.logEvent("design_complete", map[string]interface{}{
		"brand":          d.Input.Name,
		"variants":       len(out.Variants),
		"recommendation": out.Recommendation.Concept.Approach,
		"overall":        out.Recommendation.Quality.Overall,
		"duration_ms":    time.Since(start).Milliseconds(),
	})
	return out, nil
}

func (p *Pipeline) logEvent(eventType string, data map[string]interface{}) {
	data["timestamp"] = time.Now().UTC().Format(time.RFC3339)
	data["level"] = "info"
	data["component"] = "designer"
	data["event_type"] = eventType

	jsonData, err := json.Marshal(data)
	if err != nil {
		p.logger.Printf("[Designer] Failed to marshal log event: %v", err)
		return
	}
	p.logger.Println(string(jsonData))
}
