// Package config loads the host application configuration: window
// geometry, asset locations, and debug switches. Values come from an
// optional YAML config file with AGESAIL_-prefixed environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Window WindowConfig
	Assets AssetsConfig
	Debug  DebugConfig
}

// WindowConfig holds window geometry and title.
type WindowConfig struct {
	Width  int
	Height int
	Title  string
}

// AssetsConfig locates the asset tree and the HUD layout document. An empty
// layout path selects the embedded default document.
type AssetsConfig struct {
	Root   string
	Layout string
}

// DebugConfig holds development switches.
type DebugConfig struct {
	Verbose bool
}

// Load reads configuration from file and env. Env var overrides use prefix
// AGESAIL_.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("window.width", 800)
	v.SetDefault("window.height", 600)
	v.SetDefault("window.title", "Age of Sail")
	v.SetDefault("assets.root", "assets")
	v.SetDefault("assets.layout", "")
	v.SetDefault("debug.verbose", false)

	v.SetConfigType("yaml")

	cfgPath := os.Getenv("AGESAIL_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "agesail"))
		v.AddConfigPath(".")
		v.SetConfigName("agesail")
	}

	v.SetEnvPrefix("AGESAIL")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// A missing config file is fine; defaults and env cover everything.
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return Config{}, fmt.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}
	return c, nil
}
