// Package batch generates many independent marks for one brand.
//
// Every candidate gets its own salted seed, so candidates share no state and
// are computed concurrently. The engine always generates at least
// MinCandidates before trimming to the requested count.
package batch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"sort"
	"time"

	"github.com/sumitttt4/glyph/internal/algorithm"
	"github.com/sumitttt4/glyph/internal/fanout"
	"github.com/sumitttt4/glyph/internal/params"
	"github.com/sumitttt4/glyph/internal/seed"
	"github.com/sumitttt4/glyph/internal/svg"
)

// Order decides which candidates survive the trim to the requested count.
type Order string

const (
	// OrderGenerated keeps the first candidates in generation-slot order.
	OrderGenerated Order = "generated"
	// OrderByScore keeps the highest quality scores, ties in slot order.
	OrderByScore Order = "score"
)

// ParseOrder validates an order name. Empty means OrderGenerated.
func ParseOrder(s string) (Order, error) {
	switch Order(s) {
	case "", OrderGenerated:
		return OrderGenerated, nil
	case OrderByScore:
		return OrderByScore, nil
	}
	return "", fmt.Errorf("unknown batch order %q (want %q or %q)", s, OrderGenerated, OrderByScore)
}

// DefaultMinCandidates is the smallest pool the engine generates.
const DefaultMinCandidates = 15

// Options configures an Engine. Zero fields take defaults.
type Options struct {
	MinCandidates int
	Workers       int
	Order         Order
	Paint         svg.Paint

	// Source supplies candidate seeds. Defaults to a salted seed.Generator.
	Source seed.Source
}

// Result is one generated mark.
type Result struct {
	ID           seed.Seed     `json:"id"`
	SVG          string        `json:"svg"`
	Algorithm    string        `json:"algorithm"`
	Description  string        `json:"description"`
	Params       params.Vector `json:"params"`
	QualityScore int           `json:"qualityScore"`
}

// Engine generates batches.
type Engine struct {
	opts   Options
	logger *log.Logger
}

// New creates an engine. A nil logger discards all output.
func New(opts Options, logger *log.Logger) *Engine {
	if opts.MinCandidates <= 0 {
		opts.MinCandidates = DefaultMinCandidates
	}
	if opts.Order == "" {
		opts.Order = OrderGenerated
	}
	if opts.Paint.Color == "" {
		opts.Paint = svg.DefaultPaint()
	}
	if opts.Source == nil {
		opts.Source = seed.NewGenerator()
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Engine{opts: opts, logger: logger}
}

// Generate returns count marks for brand. It builds max(count,
// MinCandidates) candidates and trims them according to the engine's Order.
// A count of zero or less returns an empty slice.
func (e *Engine) Generate(ctx context.Context, brand, category string, count int) ([]Result, error) {
	if count <= 0 {
		return []Result{}, nil
	}
	start := time.Now()
	n := count
	if n < e.opts.MinCandidates {
		n = e.opts.MinCandidates
	}

	results, err := fanout.Map(ctx, e.opts.Workers, n, func(ctx context.Context, _ int) (Result, error) {
		return e.candidate(ctx, brand, category)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate batch for %q: %w", brand, err)
	}

	if e.opts.Order == OrderByScore {
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].QualityScore > results[j].QualityScore
		})
	}
	results = results[:count]

	e.logger.Printf("[Batch] Generated %d candidates for '%s', returning %d (%s order)", n, brand, count, e.opts.Order)
	e.logEvent("batch_complete", map[string]interface{}{
		"brand":       brand,
		"category":    category,
		"candidates":  n,
		"returned":    count,
		"order":       string(e.opts.Order),
		"duration_ms": time.Since(start).Milliseconds(),
	})
	return results, nil
}

// One renders a single freshly seeded mark. An empty algorithm name lets
// the seed choose; otherwise the named library entry is used.
func (e *Engine) One(ctx context.Context, brand, category, algorithmName string) (Result, error) {
	var entry *algorithm.Entry
	if algorithmName != "" {
		found, err := algorithm.Lookup(algorithmName)
		if err != nil {
			return Result{}, err
		}
		entry = &found
	}
	r, err := e.render(ctx, brand, category, entry)
	if err != nil {
		return Result{}, fmt.Errorf("failed to generate mark for %q: %w", brand, err)
	}
	e.logger.Printf("[Batch] Generated '%s' with %s", brand, r.Algorithm)
	return r, nil
}

// candidate renders one independently seeded mark.
func (e *Engine) candidate(ctx context.Context, brand, category string) (Result, error) {
	return e.render(ctx, brand, category, nil)
}

// render seeds and draws one mark. A nil entry is chosen by the seed.
func (e *Engine) render(ctx context.Context, brand, category string, forced *algorithm.Entry) (Result, error) {
	s, err := e.opts.Source.Generate(ctx, brand, category)
	if err != nil {
		return Result{}, err
	}
	v := seed.DeriveParams(s)
	entry := algorithm.Select(s)
	if forced != nil {
		entry = *forced
	}
	return Result{
		ID:           s,
		SVG:          entry.Generate(v, brand, e.opts.Paint),
		Algorithm:    entry.Name,
		Description:  entry.Description,
		Params:       entry.Params(v),
		QualityScore: seed.BatchQuality(s),
	}, nil
}

func (e *Engine) logEvent(eventType string, data map[string]interface{}) {
	data["timestamp"] = time.Now().UTC().Format(time.RFC3339)
	data["level"] = "info"
	data["component"] = "batch"
	data["event_type"] = eventType

	jsonData, err := json.Marshal(data)
	if err != nil {
		e.logger.Printf("[Batch] Failed to marshal log event: %v", err)
		return
	}
	e.logger.Println(string(jsonData))
}
