package hoard

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/sumitttt4/glyph/pkg/portfolio"
)

// FormatTable writes marks as a table with columns ID, BRAND, ALGORITHM,
// SCORE, SOURCE and AGE. Returns the number of marks formatted.
func FormatTable(w io.Writer, marks []*portfolio.Mark, workspace string) int {
	if len(marks) == 0 {
		fmt.Fprintf(w, "No marks found in workspace '%s'\n", workspace)
		return 0
	}

	fmt.Fprintf(w, "Marks in workspace '%s':\n\n", workspace)

	fmt.Fprintf(w, "%-10s %-16s %-24s %-6s %-9s %s\n",
		"ID", "BRAND", "ALGORITHM", "SCORE", "SOURCE", "AGE")
	fmt.Fprintf(w, "%-10s %-16s %-24s %-6s %-9s %s\n",
		"----------", "----------------", "------------------------", "------", "---------", "--------")

	for _, m := range marks {
		fmt.Fprintf(w, "%-10s %-16s %-24s %-6s %-9s %s\n",
			formatID(m.ID),
			truncate(m.Brand, 16),
			truncate(m.Algorithm, 24),
			formatScore(m.QualityScore),
			string(m.Source),
			formatTimestamp(m.CreatedAtMs),
		)
	}

	countMsg := "mark"
	if len(marks) != 1 {
		countMsg = "marks"
	}
	fmt.Fprintf(w, "\n%d %s found\n", len(marks), countMsg)

	return len(marks)
}

// FormatJSONL writes marks as line-delimited JSON, one compact object per
// line, for piping into jq.
func FormatJSONL(w io.Writer, marks []*portfolio.Mark) error {
	for _, m := range marks {
		data, err := json.Marshal(m)
		if err != nil {
			return fmt.Errorf("failed to marshal mark to JSON: %w", err)
		}
		if _, err := fmt.Fprintf(w, "%s\n", data); err != nil {
			return fmt.Errorf("failed to write JSONL output: %w", err)
		}
	}
	return nil
}

// FormatSingleJSON writes a single mark as pretty-printed JSON.
func FormatSingleJSON(w io.Writer, m *portfolio.Mark) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal mark to JSON: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write JSON output: %w", err)
	}
	fmt.Fprintln(w)
	return nil
}

// formatID truncates a mark ID to its first 10 characters.
func formatID(id string) string {
	if len(id) > 10 {
		return id[:10]
	}
	return id
}

// truncate shortens s to max characters with a trailing ellipsis. Empty
// values return "-".
func truncate(s string, max int) string {
	if s == "" {
		return "-"
	}
	r := []rune(s)
	if len(r) > max {
		return string(r[:max-3]) + "..."
	}
	return s
}

func formatScore(score float64) string {
	if score == 0 {
		return "-"
	}
	return fmt.Sprintf("%.0f", score)
}

// formatTimestamp formats Unix timestamp in milliseconds as relative time
// like "2m ago" or "1h ago".
func formatTimestamp(timestampMs int64) string {
	if timestampMs == 0 {
		return "-"
	}

	diff := time.Since(time.UnixMilli(timestampMs))

	switch {
	case diff < time.Minute:
		return fmt.Sprintf("%ds ago", int(diff.Seconds()))
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(diff.Hours()/24))
	}
}
