package config_test

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/aallbrig/verse/config"
)

func TestDefaultColors(t *testing.T) {
	c := config.DefaultColors()
	if c.Base == "" || c.Statement == "" || c.Flag == "" || c.Option == "" {
		t.Error("expected non-empty default colors")
	}
	if c.Base != "#FFFFFF" {
		t.Errorf("Base color = %q, want #FFFFFF", c.Base)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	if cfg == nil {
		t.Fatal("DefaultConfig() returned nil")
	}
	if cfg.LogLevel != zerolog.WarnLevel {
		t.Errorf("LogLevel = %v, want warn", cfg.LogLevel)
	}
	if cfg.HistoryDir == "" {
		t.Error("expected a default history dir")
	}
}

func TestLoadFromEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("NO_COLOR", "")
	t.Setenv("VERSE_NO_COLOR", "true")
	t.Setenv("VERSE_LOG_LEVEL", "debug")
	t.Setenv("VERSE_LOG_FILE", dir+"/verse.log")
	t.Setenv("VERSE_HISTORY_DIR", dir)
	t.Setenv("VERSE_NO_HISTORY", "1")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if !cfg.NoColor {
		t.Error("NoColor = false, want true")
	}
	if cfg.LogLevel != zerolog.DebugLevel {
		t.Errorf("LogLevel = %v, want debug", cfg.LogLevel)
	}
	if cfg.LogFile != dir+"/verse.log" {
		t.Errorf("LogFile = %q, want %q", cfg.LogFile, dir+"/verse.log")
	}
	if cfg.HistoryDir != dir {
		t.Errorf("HistoryDir = %q, want %q", cfg.HistoryDir, dir)
	}
	if !cfg.NoHistory {
		t.Error("NoHistory = false, want true")
	}
}

func TestLoadHonoursNoColor(t *testing.T) {
	t.Setenv("VERSE_NO_COLOR", "")
	t.Setenv("NO_COLOR", "1")
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if !cfg.NoColor {
		t.Error("NO_COLOR should disable color")
	}
}

func TestLoadRejectsBadLevel(t *testing.T) {
	t.Setenv("VERSE_LOG_LEVEL", "loud")
	if _, err := config.Load(); err == nil {
		t.Error("expected error for unknown log level")
	}
}
