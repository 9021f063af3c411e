package config

import (
	"os"
	"path/filepath"
	"testing"

	serr "binviz/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := New()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "default", cfg.Display.Theme)
	assert.Equal(t, CodeUnitsWiden, cfg.Text.CodeUnits)
	assert.Equal(t, DefaultPreviewLimit, cfg.Image.PreviewLimit)
	assert.False(t, cfg.Image.AlwaysEllipsis)
	assert.NotEmpty(t, cfg.Image.Patterns)
	assert.Empty(t, cfg.Watch.Directories)
}

func TestLoadConfigFile(t *testing.T) {
	t.Run("missing file returns defaults", func(t *testing.T) {
		cfg, err := LoadConfigFile(filepath.Join(t.TempDir(), "nope.yaml"))
		require.NoError(t, err)
		assert.Equal(t, New().Image, cfg.Image)
	})

	t.Run("partial file keeps defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		content := `
display:
  theme: ocean
text:
  code_units: latin1
image:
  always_ellipsis: true
watch:
  directories: ["/tmp/pics"]
logging:
  debug: true
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		cfg, err := LoadConfigFile(path)
		require.NoError(t, err)
		assert.Equal(t, "ocean", cfg.Display.Theme)
		assert.Equal(t, GetTheme("ocean").One, cfg.Display.OneColor)
		assert.Equal(t, CodeUnitsLatin1, cfg.Text.CodeUnits)
		assert.Equal(t, DefaultPreviewLimit, cfg.Image.PreviewLimit)
		assert.True(t, cfg.Image.AlwaysEllipsis)
		assert.Equal(t, []string{"/tmp/pics"}, cfg.Watch.Directories)
		assert.True(t, cfg.Logging.Debug)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("display: [unclosed"), 0644))

		_, err := LoadConfigFile(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "error parsing config file")
	})

	t.Run("invalid values", func(t *testing.T) {
		tests := []struct {
			name    string
			content string
			param   string
		}{
			{"code units", "text:\n  code_units: utf8\n", "text"},
			{"negative limit", "image:\n  preview_limit: -4\n", "image"},
			{"empty pattern", "image:\n  patterns: [\"\"]\n", "image"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				path := filepath.Join(t.TempDir(), "config.yaml")
				require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

				_, err := LoadConfigFile(path)
				require.Error(t, err)
				assert.True(t, serr.IsInvalidConfig(err))
				var configErr *serr.ConfigError
				require.True(t, serr.As(err, &configErr))
				assert.Equal(t, tt.param, configErr.Param())
			})
		}
	})
}

func TestEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	t.Setenv(EnvConfigPath, path)
	t.Setenv(EnvDebug, "true")

	got, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, path, got)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.True(t, cfg.Logging.Debug)
}

func TestSaveConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := New()
	cfg.ApplyTheme("sunset")
	cfg.Image.PreviewLimit = 90

	require.NoError(t, SaveConfig(cfg, path))

	loaded, err := LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.Display, loaded.Display)
	assert.Equal(t, 90, loaded.Image.PreviewLimit)
}

func TestThemes(t *testing.T) {
	for _, name := range ListThemes() {
		p := GetTheme(name)
		assert.NotEmpty(t, p.One, name)
		assert.NotEmpty(t, p.Zero, name)
	}
	assert.Equal(t, GetTheme("default"), GetTheme("no-such-theme"))

	cfg := New()
	cfg.ApplyTheme("no-such-theme")
	assert.Equal(t, "default", cfg.Display.Theme)
}
