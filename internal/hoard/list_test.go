package hoard

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sumitttt4/glyph/internal/filter"
	"github.com/sumitttt4/glyph/pkg/portfolio"
)

func setupClient(t *testing.T) (*portfolio.Client, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client, err := portfolio.NewClient(&redis.Options{Addr: mr.Addr()}, "test-workspace")
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })
	return client, mr
}

func newMark(id, brand, algorithm string, createdAtMs int64) *portfolio.Mark {
	return &portfolio.Mark{
		ID:           id,
		Brand:        brand,
		Category:     "finance",
		Algorithm:    algorithm,
		SVG:          `<svg viewBox="0 0 100 100"/>`,
		QualityScore: 88,
		Source:       portfolio.SourceGenerate,
		CreatedAtMs:  createdAtMs,
	}
}

func saveAll(t *testing.T, client *portfolio.Client, marks ...*portfolio.Mark) {
	for _, m := range marks {
		require.NoError(t, client.SaveMark(context.Background(), m))
	}
}

func TestListMarks(t *testing.T) {
	ctx := context.Background()

	t.Run("empty archive - default format", func(t *testing.T) {
		client, _ := setupClient(t)
		var buf bytes.Buffer
		require.NoError(t, ListMarks(ctx, client, OutputFormatDefault, nil, &buf))
		assert.Contains(t, buf.String(), "No marks found in workspace 'test-workspace'")
	})

	t.Run("empty archive - JSONL format", func(t *testing.T) {
		client, _ := setupClient(t)
		var buf bytes.Buffer
		require.NoError(t, ListMarks(ctx, client, OutputFormatJSONL, nil, &buf))
		assert.Empty(t, buf.String())
	})

	t.Run("sorted oldest first", func(t *testing.T) {
		client, _ := setupClient(t)
		saveAll(t, client,
			newMark("cccccccccccc", "Acme", "premium-orb", 3000),
			newMark("aaaaaaaaaaaa", "Acme", "premium-cube", 1000),
			newMark("bbbbbbbbbbbb", "Globex", "ring-mark", 2000),
		)

		var buf bytes.Buffer
		require.NoError(t, ListMarks(ctx, client, OutputFormatJSONL, nil, &buf))

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 3)
		var ids []string
		for _, line := range lines {
			var m portfolio.Mark
			require.NoError(t, json.Unmarshal([]byte(line), &m))
			ids = append(ids, m.ID)
		}
		assert.Equal(t, []string{"aaaaaaaaaaaa", "bbbbbbbbbbbb", "cccccccccccc"}, ids)
	})

	t.Run("brand filter uses the index", func(t *testing.T) {
		client, _ := setupClient(t)
		saveAll(t, client,
			newMark("aaaaaaaaaaaa", "Acme", "premium-cube", 1000),
			newMark("bbbbbbbbbbbb", "Globex", "ring-mark", 2000),
		)

		var buf bytes.Buffer
		require.NoError(t, ListMarks(ctx, client, OutputFormatDefault, &filter.Criteria{Brand: "acme"}, &buf))

		output := buf.String()
		assert.Contains(t, output, "aaaaaaaaaa")
		assert.NotContains(t, output, "bbbbbbbbbb")
		assert.Contains(t, output, "1 mark found")
	})

	t.Run("algorithm and time filters", func(t *testing.T) {
		client, _ := setupClient(t)
		saveAll(t, client,
			newMark("aaaaaaaaaaaa", "Acme", "premium-cube", 1000),
			newMark("bbbbbbbbbbbb", "Acme", "premium-orb", 2000),
			newMark("cccccccccccc", "Acme", "ring-mark", 3000),
		)

		var buf bytes.Buffer
		criteria := &filter.Criteria{AlgorithmGlob: "premium-*", SinceTimestampMs: 1500}
		require.NoError(t, ListMarks(ctx, client, OutputFormatJSONL, criteria, &buf))

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 1)
		assert.Contains(t, lines[0], `"id":"bbbbbbbbbbbb"`)
	})

	t.Run("invalid output format", func(t *testing.T) {
		client, _ := setupClient(t)
		var buf bytes.Buffer
		err := ListMarks(ctx, client, OutputFormat("xml"), nil, &buf)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown output format")
	})

	t.Run("skips malformed marks", func(t *testing.T) {
		client, mr := setupClient(t)
		saveAll(t, client, newMark("aaaaaaaaaaaa", "Acme", "premium-cube", 1000))
		mr.HSet(portfolio.MarkKey("test-workspace", "broken"), "id", "broken", "quality_score", "x")

		var buf bytes.Buffer
		require.NoError(t, ListMarks(ctx, client, OutputFormatDefault, nil, &buf))
		assert.Contains(t, buf.String(), "1 mark found")
	})
}

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    OutputFormat
		wantErr bool
	}{
		{"default", OutputFormatDefault, false},
		{"jsonl", OutputFormatJSONL, false},
		{"json", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseOutputFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
