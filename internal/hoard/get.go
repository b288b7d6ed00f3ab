package hoard

import (
	"context"
	"fmt"
	"io"

	"github.com/sumitttt4/glyph/pkg/portfolio"
)

// GetMark retrieves a single mark by full ID and writes it to w, as
// pretty-printed JSON or, with svgOnly, as the raw markup.
func GetMark(ctx context.Context, client *portfolio.Client, markID string, svgOnly bool, w io.Writer) error {
	if markID == "" {
		return fmt.Errorf("mark ID cannot be empty")
	}

	mark, err := client.GetMark(ctx, markID)
	if err != nil {
		if portfolio.IsNotFound(err) {
			return &MarkNotFoundError{MarkID: markID}
		}
		return fmt.Errorf("failed to fetch mark: %w", err)
	}

	if svgOnly {
		if _, err := fmt.Fprintln(w, mark.SVG); err != nil {
			return fmt.Errorf("failed to write svg output: %w", err)
		}
		return nil
	}

	if err := FormatSingleJSON(w, mark); err != nil {
		return fmt.Errorf("failed to format mark: %w", err)
	}
	return nil
}

// MarkNotFoundError represents a specific "mark not found" error.
type MarkNotFoundError struct {
	MarkID string
}

func (e *MarkNotFoundError) Error() string {
	return fmt.Sprintf("mark with ID '%s' not found", e.MarkID)
}

// IsNotFound returns true if the error is a MarkNotFoundError.
func IsNotFound(err error) bool {
	_, ok := err.(*MarkNotFoundError)
	return ok
}
