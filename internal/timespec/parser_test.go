package timespec

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAt(t *testing.T) {
	now := time.Date(2025, 10, 29, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		spec    string
		want    time.Time
		wantErr bool
	}{
		{name: "rfc3339", spec: "2025-10-29T13:00:00Z", want: time.Date(2025, 10, 29, 13, 0, 0, 0, time.UTC)},
		{name: "date", spec: "2025-10-01", want: time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)},
		{name: "duration", spec: "1h30m", want: now.Add(-90 * time.Minute)},
		{name: "days", spec: "7d", want: now.AddDate(0, 0, -7)},
		{name: "padded", spec: " 2h ", want: now.Add(-2 * time.Hour)},
		{name: "empty", spec: "", wantErr: true},
		{name: "garbage", spec: "yesterday", wantErr: true},
		{name: "negative duration", spec: "-1h", wantErr: true},
		{name: "bad days", spec: "xd", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAt(tt.spec, now)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want.UnixMilli(), got)
		})
	}
}

func TestParseRangeAt(t *testing.T) {
	now := time.Date(2025, 10, 29, 12, 0, 0, 0, time.UTC)

	t.Run("no bounds", func(t *testing.T) {
		since, until, err := ParseRangeAt("", "", now)
		require.NoError(t, err)
		assert.Zero(t, since)
		assert.Zero(t, until)
	})

	t.Run("both bounds", func(t *testing.T) {
		since, until, err := ParseRangeAt("2h", "1h", now)
		require.NoError(t, err)
		assert.Less(t, since, until)
	})

	t.Run("inverted range", func(t *testing.T) {
		_, _, err := ParseRangeAt("1h", "2h", now)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "--since must be before --until")
	})

	t.Run("invalid since", func(t *testing.T) {
		_, _, err := ParseRangeAt("soon", "", now)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid --since")
	})

	t.Run("invalid until", func(t *testing.T) {
		_, _, err := ParseRangeAt("", "later", now)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid --until")
	})
}
