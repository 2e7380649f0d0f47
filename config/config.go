// Package config provides color scheme and configuration management.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every configuration key when read from the
// environment: history_dir is VERSE_HISTORY_DIR.
const EnvPrefix = "VERSE"

// ColorScheme defines the color palette for menu tree rendering.
type ColorScheme struct {
	Base        string // menu name color (hex)
	Statement   string // statement name color
	Flag        string // flag aliases
	Option      string // option aliases
	Placeholder string // option value placeholder, e.g. PATH
	Constraint  string // constraint and default annotations
	Invalid     string // error text
}

// DefaultColors returns the default color scheme.
func DefaultColors() ColorScheme {
	return ColorScheme{
		Base:        "#FFFFFF",
		Statement:   "#5EA4F5",
		Flag:        "#50FA7B", // green
		Option:      "#8BE9FD", // cyan
		Placeholder: "#F1FA8C",
		Constraint:  "#FFB86C", // orange
		Invalid:     "#FF5555",
	}
}

// Config holds all verse configuration.
type Config struct {
	Colors     ColorScheme
	NoColor    bool
	LogLevel   zerolog.Level
	LogFile    string
	HistoryDir string
	NoHistory  bool
}

// DefaultConfig returns config with sensible defaults, ignoring the
// environment.
func DefaultConfig() *Config {
	return &Config{
		Colors:     DefaultColors(),
		LogLevel:   zerolog.WarnLevel,
		HistoryDir: defaultHistoryDir(),
	}
}

func defaultHistoryDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), ".verse")
	}
	return filepath.Join(home, ".verse")
}

// Load reads configuration from VERSE_* environment variables on top of
// the defaults. NO_COLOR is honoured as well as VERSE_NO_COLOR.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetDefault("no_color", false)
	v.SetDefault("log_level", "warn")
	v.SetDefault("log_file", "")
	v.SetDefault("history_dir", defaultHistoryDir())
	v.SetDefault("no_history", false)

	level, err := zerolog.ParseLevel(v.GetString("log_level"))
	if err != nil {
		return nil, fmt.Errorf("%s_LOG_LEVEL: %w", EnvPrefix, err)
	}
	cfg := DefaultConfig()
	cfg.NoColor = v.GetBool("no_color") || os.Getenv("NO_COLOR") != ""
	cfg.LogLevel = level
	cfg.LogFile = v.GetString("log_file")
	cfg.HistoryDir = v.GetString("history_dir")
	cfg.NoHistory = v.GetBool("no_history")
	return cfg, nil
}
