package hoard

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sumitttt4/glyph/pkg/portfolio"
)

func TestGetMark(t *testing.T) {
	ctx := context.Background()

	t.Run("writes pretty JSON", func(t *testing.T) {
		client, _ := setupClient(t)
		saveAll(t, client, newMark("aaaaaaaaaaaa", "Acme", "premium-cube", 1000))

		var buf bytes.Buffer
		require.NoError(t, GetMark(ctx, client, "aaaaaaaaaaaa", false, &buf))

		var m portfolio.Mark
		require.NoError(t, json.Unmarshal(buf.Bytes(), &m))
		assert.Equal(t, "Acme", m.Brand)
		assert.Contains(t, buf.String(), "\n  \"id\"")
	})

	t.Run("writes raw svg", func(t *testing.T) {
		client, _ := setupClient(t)
		saveAll(t, client, newMark("aaaaaaaaaaaa", "Acme", "premium-cube", 1000))

		var buf bytes.Buffer
		require.NoError(t, GetMark(ctx, client, "aaaaaaaaaaaa", true, &buf))
		assert.True(t, strings.HasPrefix(buf.String(), "<svg"))
	})

	t.Run("mark not found", func(t *testing.T) {
		client, _ := setupClient(t)
		var buf bytes.Buffer
		err := GetMark(ctx, client, "missing", false, &buf)
		require.Error(t, err)
		assert.True(t, IsNotFound(err))
		assert.Contains(t, err.Error(), "mark with ID 'missing' not found")
	})

	t.Run("empty mark ID", func(t *testing.T) {
		client, _ := setupClient(t)
		var buf bytes.Buffer
		err := GetMark(ctx, client, "", false, &buf)
		require.Error(t, err)
		assert.False(t, IsNotFound(err))
	})
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(&MarkNotFoundError{MarkID: "x"}))
	assert.False(t, IsNotFound(errors.New("other")))
	assert.False(t, IsNotFound(nil))
}
