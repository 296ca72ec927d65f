package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "salesdash.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, int64(10<<20), cfg.Pipeline.MaxFileSize)
	assert.Equal(t, "calendar", cfg.Pipeline.MonthlyMode)
	assert.Equal(t, "UTC", cfg.Pipeline.Timezone)
	assert.Equal(t, 5, cfg.Pipeline.TopCategories)
	assert.Equal(t, 8, cfg.Pipeline.TopProducts)
	assert.False(t, cfg.Export.Charts)
	assert.Equal(t, ".", cfg.Export.Dir)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("SALESDASH_LOGGING_LEVEL", "debug")
	t.Setenv("SALESDASH_PIPELINE_MONTHLY_MODE", "recent")
	t.Setenv("SALESDASH_EXPORT_CHARTS", "true")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "recent", cfg.Pipeline.MonthlyMode)
	assert.True(t, cfg.Export.Charts)
}

func TestLoadFile(t *testing.T) {
	path := writeFile(t, `
logging:
  format: text
pipeline:
  timezone: Europe/Berlin
  top_products: 3
export:
  charts: true
  dir: out
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "Europe/Berlin", cfg.Pipeline.Timezone)
	assert.Equal(t, 3, cfg.Pipeline.TopProducts)
	assert.Equal(t, 5, cfg.Pipeline.TopCategories)
	assert.True(t, cfg.Export.Charts)
	assert.Equal(t, "out", cfg.Export.Dir)

	loc, err := cfg.Pipeline.Location()
	require.NoError(t, err)
	assert.Equal(t, "Europe/Berlin", loc.String())
}

func TestLoadEnvOverridesFile(t *testing.T) {
	t.Setenv("SALESDASH_PIPELINE_TOP_PRODUCTS", "4")
	path := writeFile(t, "pipeline:\n  top_products: 3\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Pipeline.TopProducts)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		file string
	}{
		{"bad level", map[string]string{"SALESDASH_LOGGING_LEVEL": "loud"}, ""},
		{"bad monthly mode", nil, "pipeline:\n  monthly_mode: weekly\n"},
		{"bad timezone", map[string]string{"SALESDASH_PIPELINE_TIMEZONE": "Mars/Olympus"}, ""},
		{"too many products", nil, "pipeline:\n  top_products: 500\n"},
		{"unparsable env", map[string]string{"SALESDASH_PIPELINE_MAX_FILE_SIZE": "big"}, ""},
		{"malformed yaml", nil, "pipeline: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			path := ""
			if tt.file != "" {
				path = writeFile(t, tt.file)
			}

			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
