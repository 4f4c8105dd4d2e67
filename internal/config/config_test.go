package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nnyyxxxx/linutil/internal/theme"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "default", cfg.TUI.Theme)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, theme.Default, cfg.ThemeID())
}

func TestLoadWithoutFileUsesDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadFromFile(t *testing.T) {
	path := writeFile(t, "config.yaml", "tui:\n  theme: catppuccin-mocha\nlogging:\n  level: debug\n  file: /tmp/linutil.log\n")

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, theme.CatppuccinMocha, cfg.ThemeID())
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "/tmp/linutil.log", cfg.Logging.File)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeFile(t, "config.toml", "[tui]\ntheme = \"nord\"\n")
	t.Setenv("LINUTIL_TUI_THEME", "Solarized")

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, theme.Solarized, cfg.ThemeID())
}

func TestLoadRejectsUnknownTheme(t *testing.T) {
	path := writeFile(t, "config.json", `{"tui": {"theme": "dracula"}}`)

	_, err := Load(viper.New(), path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, theme.ErrUnknownTheme))
}

func TestLoadRejectsBadLevel(t *testing.T) {
	path := writeFile(t, "config.yaml", "logging:\n  level: loud\n")

	_, err := Load(viper.New(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging.level")
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(viper.New(), filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestThemeIDFallsBack(t *testing.T) {
	cfg := &Config{TUI: TUIConfig{Theme: "nope"}}
	assert.Equal(t, theme.Default, cfg.ThemeID())

	var nilCfg *Config
	assert.Equal(t, theme.Default, nilCfg.ThemeID())
	assert.Error(t, nilCfg.Validate())
}
