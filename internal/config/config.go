// Package config loads linutil settings from file, environment and flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/nnyyxxxx/linutil/internal/theme"
)

// EnvPrefix is prepended to environment overrides, e.g. LINUTIL_TUI_THEME.
const EnvPrefix = "LINUTIL"

// Config is the resolved application configuration.
type Config struct {
	TUI     TUIConfig     `mapstructure:"tui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// TUIConfig configures the terminal interface.
type TUIConfig struct {
	// Theme is the slug or display name of the startup theme.
	Theme   string `mapstructure:"theme"`
	NoColor bool   `mapstructure:"no_color"`
}

// LoggingConfig configures the zerolog logger.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
	// File receives log output. Empty disables logging inside the TUI.
	File string `mapstructure:"file"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		TUI: TUIConfig{
			Theme: theme.Default.Slug(),
		},
		Logging: LoggingConfig{
			Level: zerolog.InfoLevel.String(),
		},
	}
}

// SetDefaults registers every key with v so environment overrides apply.
func SetDefaults(v *viper.Viper) {
	def := DefaultConfig()
	v.SetDefault("tui.theme", def.TUI.Theme)
	v.SetDefault("tui.no_color", def.TUI.NoColor)
	v.SetDefault("logging.level", def.Logging.Level)
	v.SetDefault("logging.file", def.Logging.File)
}

// Load reads configuration into v. An explicit path must exist; otherwise
// config.{yaml,toml,json} is looked up in the user config directory and may be absent.
func Load(v *viper.Viper, path string) (*Config, error) {
	if v == nil {
		v = viper.New()
	}
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		if dir, err := DefaultDir(); err == nil {
			v.AddConfigPath(dir)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the theme and log level name known values.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("nil config")
	}
	if _, err := theme.Parse(c.TUI.Theme); err != nil {
		return fmt.Errorf("tui.theme: %w", err)
	}
	if _, err := zerolog.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	return nil
}

// ThemeID resolves the configured theme, falling back to the default.
func (c *Config) ThemeID() theme.ID {
	if c == nil {
		return theme.Default
	}
	id, err := theme.Parse(c.TUI.Theme)
	if err != nil {
		return theme.Default
	}
	return id
}

// DefaultDir is the directory searched for config files.
func DefaultDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil || base == "" {
		base = os.Getenv("HOME")
		if base == "" {
			return "", fmt.Errorf("cannot resolve config directory: %w", err)
		}
		base = filepath.Join(base, ".config")
	}
	return filepath.Join(base, "linutil"), nil
}
