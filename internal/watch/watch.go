// Package watch streams archive activity to a terminal or a JSON pipe.
package watch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/sumitttt4/glyph/internal/filter"
	"github.com/sumitttt4/glyph/pkg/portfolio"
)

// OutputFormat selects how streamed events are written.
type OutputFormat string

const (
	// OutputFormatDefault writes one human-readable line per event
	OutputFormatDefault OutputFormat = "default"

	// OutputFormatJSON writes one JSON object per line
	OutputFormatJSON OutputFormat = "json"
)

// ParseOutputFormat maps a flag value to an OutputFormat.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch OutputFormat(s) {
	case OutputFormatDefault, OutputFormatJSON:
		return OutputFormat(s), nil
	}
	return "", fmt.Errorf("unknown output format: %s", s)
}

// StreamMarks writes every mark saved to the workspace until ctx is done.
// Marks not matching criteria are skipped. Malformed events are reported
// inline and the stream continues. Returns nil when ctx is cancelled.
func StreamMarks(ctx context.Context, client *portfolio.Client, format OutputFormat, criteria *filter.Criteria, w io.Writer) error {
	sub, err := client.SubscribeMarkEvents(ctx)
	if err != nil {
		return fmt.Errorf("failed to subscribe to mark events: %w", err)
	}
	defer sub.Close()

	if format == OutputFormatDefault {
		fmt.Fprintf(w, "👀 Watching workspace '%s' for new marks (Ctrl+C to stop)\n", client.Workspace())
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case mark, ok := <-sub.Events():
			if !ok {
				return nil
			}
			if criteria != nil && !criteria.Matches(mark) {
				continue
			}
			if err := WriteEvent(w, format, mark); err != nil {
				return err
			}
		case err, ok := <-sub.Errors():
			if !ok {
				return nil
			}
			if format == OutputFormatDefault {
				fmt.Fprintf(w, "⚠️  %v\n", err)
			}
		}
	}
}

// WriteEvent writes a single saved mark in the given format.
func WriteEvent(w io.Writer, format OutputFormat, m *portfolio.Mark) error {
	switch format {
	case OutputFormatJSON:
		data, err := json.Marshal(markEvent{Event: "mark_saved", Mark: m})
		if err != nil {
			return fmt.Errorf("failed to marshal event: %w", err)
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	case OutputFormatDefault:
		_, err := fmt.Fprintln(w, FormatEvent(m))
		return err
	}
	return fmt.Errorf("unknown output format: %s", format)
}

type markEvent struct {
	Event string          `json:"event"`
	Mark  *portfolio.Mark `json:"mark"`
}

// FormatEvent renders a saved mark as a one-line summary.
func FormatEvent(m *portfolio.Mark) string {
	ts := "--:--:--"
	if m.CreatedAtMs > 0 {
		ts = time.UnixMilli(m.CreatedAtMs).Format("15:04:05")
	}
	id := m.ID
	if len(id) > 10 {
		id = id[:10]
	}
	line := fmt.Sprintf("[%s] ✨ Mark saved: id=%s brand=%s algorithm=%s source=%s", ts, id, m.Brand, m.Algorithm, m.Source)
	if m.QualityScore > 0 {
		line += fmt.Sprintf(" score=%.0f", m.QualityScore)
	}
	return line
}

// PollForMark polls until a mark with the given ID exists. It checks every
// 200ms for at most timeout.
func PollForMark(ctx context.Context, client *portfolio.Client, markID string, timeout time.Duration) (*portfolio.Mark, error) {
	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()

	timeoutCh := time.After(timeout)

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()

		case <-timeoutCh:
			return nil, fmt.Errorf("timeout waiting for mark after %v", timeout)

		case <-ticker.C:
			mark, err := client.GetMark(ctx, markID)
			if err != nil {
				if portfolio.IsNotFound(err) {
					continue
				}
				return nil, fmt.Errorf("failed to query for mark: %w", err)
			}
			return mark, nil
		}
	}
}
