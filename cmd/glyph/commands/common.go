package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/redis/go-redis/v9"
	"github.com/sumitttt4/glyph/internal/config"
	"github.com/sumitttt4/glyph/internal/printer"
	"github.com/sumitttt4/glyph/pkg/portfolio"
)

// loadConfig reads the --config file, falling back to defaults when it does
// not exist.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return nil, printer.Error(
			"invalid configuration",
			err.Error(),
			[]string{fmt.Sprintf("Fix %s or regenerate it:\n  glyph init --force", configPath)},
		)
	}
	return cfg, nil
}

// newLogger returns a stderr logger with --verbose, or nil to discard.
func newLogger() *log.Logger {
	if !verbose {
		return nil
	}
	return log.New(os.Stderr, "", log.LstdFlags)
}

// openPortfolio connects to the configured archive and verifies it answers.
func openPortfolio(ctx context.Context, cfg *config.Config) (*portfolio.Client, error) {
	redisOpts, err := cfg.RedisOptions()
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}
	if redisOpts == nil {
		return nil, printer.Error(
			"archive not configured",
			"portfolio.redis_url is not set.",
			[]string{fmt.Sprintf("Set it in %s:\n  portfolio:\n    redis_url: \"redis://localhost:6379/0\"", configPath)},
		)
	}
	return connectPortfolio(ctx, redisOpts, cfg.Portfolio.Workspace, cfg.Portfolio.RedisURL)
}

func connectPortfolio(ctx context.Context, redisOpts *redis.Options, workspace, url string) (*portfolio.Client, error) {
	client, err := portfolio.NewClient(redisOpts, workspace)
	if err != nil {
		return nil, fmt.Errorf("failed to create portfolio client: %w", err)
	}
	if err := client.Ping(ctx); err != nil {
		client.Close()
		return nil, printer.ErrorWithContext(
			"Redis connection failed",
			fmt.Sprintf("Could not connect to Redis at %s", url),
			map[string]string{"Workspace": workspace},
			[]string{"Check that Redis is running and portfolio.redis_url is correct."},
		)
	}
	return client, nil
}

// saveMarks archives marks, opening the portfolio once for all of them.
func saveMarks(ctx context.Context, cfg *config.Config, marks []*portfolio.Mark) error {
	client, err := openPortfolio(ctx, cfg)
	if err != nil {
		return err
	}
	defer client.Close()

	for _, m := range marks {
		if err := client.SaveMark(ctx, m); err != nil {
			return fmt.Errorf("failed to save mark %s: %w", shortID(m.ID), err)
		}
	}
	printer.Success("Saved %d %s to workspace '%s'\n", len(marks), plural(len(marks), "mark", "marks"), client.Workspace())
	return nil
}

// writeOutput writes markup to path, or to w when path is empty.
func writeOutput(w io.Writer, path, markup string) error {
	if path == "" {
		_, err := fmt.Fprintln(w, markup)
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, []byte(markup+"\n"), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// writeJSON writes v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

var unsafeFileChars = regexp.MustCompile(`[^a-z0-9]+`)

// fileName builds a filesystem-safe SVG name from its parts.
func fileName(parts ...string) string {
	var clean []string
	for _, p := range parts {
		p = strings.Trim(unsafeFileChars.ReplaceAllString(strings.ToLower(p), "-"), "-")
		if p != "" {
			clean = append(clean, p)
		}
	}
	if len(clean) == 0 {
		clean = []string{"mark"}
	}
	return strings.Join(clean, "-") + ".svg"
}

func shortID(id string) string {
	if len(id) > 10 {
		return id[:10]
	}
	return id
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// rawJSON encodes a value for Mark.Params. Parameter vectors always encode.
func rawJSON(v any) json.RawMessage {
	data, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return data
}
