package scaffold

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sumitttt4/glyph/internal/config"
)

func TestInitialize(t *testing.T) {
	tests := []struct {
		name      string
		force     bool
		setupFunc func(t *testing.T, dir string)
		wantErr   bool
		wantOut   string
	}{
		{
			name:      "fresh initialization",
			setupFunc: func(t *testing.T, dir string) {},
		},
		{
			name:  "existing config without force",
			force: false,
			setupFunc: func(t *testing.T, dir string) {
				require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName), []byte("old content"), 0644))
			},
			wantErr: true,
		},
		{
			name:  "force replaces existing files and keeps marks",
			force: true,
			setupFunc: func(t *testing.T, dir string) {
				require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName), []byte("old content"), 0644))
				require.NoError(t, os.MkdirAll(filepath.Join(dir, MarksDir), 0755))
				require.NoError(t, os.WriteFile(filepath.Join(dir, MarksDir, "keep.svg"), []byte("<svg/>"), 0644))
			},
			wantOut: "Replacing existing glyph.yml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			tt.setupFunc(t, dir)

			var out bytes.Buffer
			err := Initialize(dir, tt.force, &out)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "project already initialized")
				return
			}
			require.NoError(t, err)
			assert.Contains(t, out.String(), tt.wantOut)

			cfg, err := config.Load(filepath.Join(dir, config.FileName))
			require.NoError(t, err)
			assert.Equal(t, config.Default(), cfg)

			brief, err := config.LoadBrief(filepath.Join(dir, BriefFile))
			require.NoError(t, err)
			assert.Equal(t, "Nexus", brief.Name)

			info, err := os.Stat(filepath.Join(dir, MarksDir))
			require.NoError(t, err)
			assert.True(t, info.IsDir())

			if tt.force {
				_, err := os.Stat(filepath.Join(dir, MarksDir, "keep.svg"))
				assert.NoError(t, err)
			}
		})
	}
}

func TestPrintSuccess(t *testing.T) {
	var out bytes.Buffer
	PrintSuccess(&out)
	assert.Contains(t, out.String(), "Successfully initialized glyph project")
	assert.Contains(t, out.String(), "✓ glyph.yml")
	assert.Contains(t, out.String(), "✓ brief.yml")
	assert.Contains(t, out.String(), "✓ marks/")
}
