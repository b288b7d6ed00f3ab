package hoard

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/sumitttt4/glyph/internal/filter"
	"github.com/sumitttt4/glyph/pkg/portfolio"
)

// OutputFormat specifies how to format the mark list output.
type OutputFormat string

const (
	// OutputFormatDefault uses a table format with one row per mark
	OutputFormatDefault OutputFormat = "default"

	// OutputFormatJSONL outputs complete marks as line-delimited JSON
	OutputFormatJSONL OutputFormat = "jsonl"
)

// ParseOutputFormat maps a flag value to an OutputFormat.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch OutputFormat(s) {
	case OutputFormatDefault, OutputFormatJSONL:
		return OutputFormat(s), nil
	}
	return "", fmt.Errorf("unknown output format: %s", s)
}

// ListMarks retrieves the archived marks of a workspace and writes them to w.
// With a brand filter it reads the brand index; otherwise it uses Redis SCAN
// over mark keys without blocking the server. Marks are sorted by creation
// time, oldest first. Malformed marks are skipped with a warning to stderr.
func ListMarks(ctx context.Context, client *portfolio.Client, format OutputFormat, criteria *filter.Criteria, w io.Writer) error {
	ids, err := markIDs(ctx, client, criteria)
	if err != nil {
		return err
	}

	var marks []*portfolio.Mark
	for _, id := range ids {
		mark, err := client.GetMark(ctx, id)
		if err != nil {
			if portfolio.IsNotFound(err) {
				continue
			}
			fmt.Fprintf(os.Stderr, "⚠️  Skipping malformed mark: id=%s (error: %v)\n", id, err)
			continue
		}
		if criteria != nil && !criteria.Matches(mark) {
			continue
		}
		marks = append(marks, mark)
	}

	sort.SliceStable(marks, func(i, j int) bool {
		return marks[i].CreatedAtMs < marks[j].CreatedAtMs
	})

	switch format {
	case OutputFormatDefault:
		FormatTable(w, marks, client.Workspace())
	case OutputFormatJSONL:
		if err := FormatJSONL(w, marks); err != nil {
			return fmt.Errorf("failed to format JSONL output: %w", err)
		}
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}

	return nil
}

func markIDs(ctx context.Context, client *portfolio.Client, criteria *filter.Criteria) ([]string, error) {
	if criteria != nil && criteria.Brand != "" {
		ids, err := client.BrandMarkIDs(ctx, criteria.Brand)
		if err != nil {
			return nil, fmt.Errorf("failed to read brand index: %w", err)
		}
		return ids, nil
	}

	return client.ScanMarkIDs(ctx, "")
}
