package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load default config: %v", err)
	}

	if cfg.Window.Width != 800 || cfg.Window.Height != 600 {
		t.Errorf("Expected 800x600 default window, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Assets.Root != "assets" {
		t.Errorf("Expected default asset root 'assets', got %q", cfg.Assets.Root)
	}
	if cfg.Assets.Layout != "" {
		t.Errorf("Expected embedded layout by default, got %q", cfg.Assets.Layout)
	}
	if cfg.Debug.Verbose {
		t.Error("Expected verbose off by default")
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("AGESAIL_WINDOW_WIDTH", "1280")
	t.Setenv("AGESAIL_DEBUG_VERBOSE", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Window.Width != 1280 {
		t.Errorf("Expected env override width 1280, got %d", cfg.Window.Width)
	}
	if !cfg.Debug.Verbose {
		t.Error("Expected env override to enable verbose")
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "agesail.yaml")
	content := []byte("window:\n  title: Test Run\nassets:\n  layout: custom/hud.yaml\n")
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	t.Setenv("AGESAIL_CONFIG", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config file: %v", err)
	}

	if cfg.Window.Title != "Test Run" {
		t.Errorf("Expected title 'Test Run', got %q", cfg.Window.Title)
	}
	if cfg.Assets.Layout != "custom/hud.yaml" {
		t.Errorf("Expected layout 'custom/hud.yaml', got %q", cfg.Assets.Layout)
	}
	// Unset keys keep their defaults.
	if cfg.Window.Width != 800 {
		t.Errorf("Expected default width alongside file values, got %d", cfg.Window.Width)
	}
}

func TestLoad_RejectsBadWindowSize(t *testing.T) {
	t.Setenv("AGESAIL_WINDOW_WIDTH", "0")

	if _, err := Load(); err == nil {
		t.Fatal("Expected error for zero window width")
	}
}
