package batch

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sumitttt4/glyph/internal/algorithm"
	"github.com/sumitttt4/glyph/internal/seed"
	"github.com/sumitttt4/glyph/internal/svg"
)

// counting hands out ForIdentity seeds keyed on call order.
func counting() (seed.Source, *int32) {
	var n int32
	return seed.SourceFunc(func(ctx context.Context, identity, category string) (seed.Seed, error) {
		i := atomic.AddInt32(&n, 1) - 1
		return seed.ForIdentity(fmt.Sprintf("%s|%s|%d", identity, category, i)), nil
	}), &n
}

func TestGenerateAcmeFinance(t *testing.T) {
	var buf bytes.Buffer
	e := New(Options{}, log.New(&buf, "", 0))

	results, err := e.Generate(context.Background(), "Acme", "finance", 5)
	require.NoError(t, err)
	require.Len(t, results, 5)

	ids := map[seed.Seed]bool{}
	for _, r := range results {
		assert.False(t, ids[r.ID], "duplicate id %s", r.ID)
		ids[r.ID] = true
		assert.True(t, r.ID.Valid())
		assert.GreaterOrEqual(t, r.QualityScore, 85)
		assert.LessOrEqual(t, r.QualityScore, 99)
		assert.Equal(t, algorithm.Select(r.ID).Name, r.Algorithm)
		assert.NoError(t, r.Params.Validate())

		st, err := svg.Inspect(r.SVG)
		require.NoError(t, err)
		assert.Greater(t, st.Elements, 0)
	}
	assert.Contains(t, buf.String(), `"event_type":"batch_complete"`)
	assert.Contains(t, buf.String(), `"candidates":15`)
}

func TestGenerateCounts(t *testing.T) {
	tests := []struct {
		count      int
		want       int
		candidates int32
	}{
		{count: 0, want: 0, candidates: 0},
		{count: -3, want: 0, candidates: 0},
		{count: 1, want: 1, candidates: 15},
		{count: 15, want: 15, candidates: 15},
		{count: 20, want: 20, candidates: 20},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.count), func(t *testing.T) {
			src, calls := counting()
			results, err := New(Options{Source: src}, nil).Generate(context.Background(), "Acme", "finance", tt.count)
			require.NoError(t, err)
			assert.NotNil(t, results)
			assert.Len(t, results, tt.want)
			assert.Equal(t, tt.candidates, atomic.LoadInt32(calls))
		})
	}
}

func TestGeneratedOrderKeepsFirstSlots(t *testing.T) {
	src, _ := counting()
	results, err := New(Options{Source: src, Workers: 1}, nil).Generate(context.Background(), "Acme", "finance", 5)
	require.NoError(t, err)
	for i, r := range results {
		assert.Equal(t, seed.ForIdentity(fmt.Sprintf("Acme|finance|%d", i)), r.ID)
	}
}

func TestScoreOrderKeepsBest(t *testing.T) {
	src, _ := counting()
	results, err := New(Options{Source: src, Workers: 1, Order: OrderByScore}, nil).Generate(context.Background(), "Acme", "finance", 5)
	require.NoError(t, err)
	require.Len(t, results, 5)

	var all []int
	for i := 0; i < DefaultMinCandidates; i++ {
		all = append(all, seed.BatchQuality(seed.ForIdentity(fmt.Sprintf("Acme|finance|%d", i))))
	}
	sort.Sort(sort.Reverse(sort.IntSlice(all)))
	for i, r := range results {
		assert.Equal(t, all[i], r.QualityScore)
	}
}

func TestGenerateErrors(t *testing.T) {
	boom := errors.New("entropy exhausted")
	failing := seed.SourceFunc(func(context.Context, string, string) (seed.Seed, error) {
		return "", boom
	})
	_, err := New(Options{Source: failing}, nil).Generate(context.Background(), "Acme", "finance", 3)
	assert.ErrorIs(t, err, boom)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = New(Options{}, nil).Generate(ctx, "Acme", "finance", 3)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestParseOrder(t *testing.T) {
	for in, want := range map[string]Order{"": OrderGenerated, "generated": OrderGenerated, "score": OrderByScore} {
		got, err := ParseOrder(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseOrder("random")
	assert.Error(t, err)
}

func TestFallbackBrands(t *testing.T) {
	for _, brand := range []string{"9Brand", "#Brand", ""} {
		results, err := New(Options{}, nil).Generate(context.Background(), brand, "", 3)
		require.NoError(t, err, brand)
		for _, r := range results {
			assert.NotEmpty(t, r.SVG)
		}
	}
}

func TestOne(t *testing.T) {
	ctx := context.Background()

	t.Run("seed chooses the algorithm", func(t *testing.T) {
		src, _ := counting()
		r, err := New(Options{Source: src}, nil).One(ctx, "Acme", "finance", "")
		require.NoError(t, err)

		want := algorithm.Select(seed.ForIdentity("Acme|finance|0"))
		assert.Equal(t, want.Name, r.Algorithm)
		assert.Equal(t, seed.ForIdentity("Acme|finance|0"), r.ID)
		assert.NotEmpty(t, r.SVG)
	})

	t.Run("named algorithm is forced", func(t *testing.T) {
		src, _ := counting()
		r, err := New(Options{Source: src}, nil).One(ctx, "Acme", "finance", "premium orb")
		require.NoError(t, err)
		assert.Equal(t, "Premium Orb", r.Algorithm)
		assert.Equal(t, "Solid orb with a negative form", r.Description)
	})

	t.Run("unknown algorithm", func(t *testing.T) {
		_, err := New(Options{}, nil).One(ctx, "Acme", "finance", "Nope")
		assert.ErrorIs(t, err, algorithm.ErrUnknownAlgorithm)
	})
}
