// Package config loads the CLI's optional YAML config file. Values from
// the file are defaults for the CLI.
package config

import (
	"os"

	"github.com/goccy/go-yaml"
)

// Config holds the CLI's adjustable defaults. Only NoRender has a
// matching command-line flag (-n/--no-render), and that flag can only
// turn rendering off; LogLevel and LogFormat are set from the file alone.
type Config struct {
	NoRender  bool   `yaml:"no_render"`
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

// Default returns the configuration used when no file is loaded.
func Default() Config {
	return Config{LogLevel: "info", LogFormat: "text"}
}

// Load reads and parses the YAML file at path. A missing path is not an
// error: callers pass an empty path when --config was not given, and
// Load returns Default() unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
