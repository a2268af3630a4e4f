package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DefaultOutput = "tmp"
	DefaultOffset = int64(-5)
)

// settings for one shift run
type Config struct {
	Input string `yaml:"input"`
	// defaults to "tmp"
	Output string `yaml:"output"`
	// seconds, negative moves subtitles earlier
	Offset     int64 `yaml:"offset"`
	BlankLines bool  `yaml:"blank_lines"`
}

func Default() Config {
	return Config{
		Output: DefaultOutput,
		Offset: DefaultOffset,
	}
}

// Load reads a YAML file over the defaults. An empty path returns the
// defaults unchanged; fields missing from the file keep their default.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	cfg.normalize()
	return cfg, nil
}

func (c *Config) normalize() {
	c.Input = strings.TrimSpace(c.Input)
	c.Output = strings.TrimSpace(c.Output)
	if c.Output == "" {
		c.Output = DefaultOutput
	}
}

// Validate checks that the config is runnable.
func (c Config) Validate() error {
	if c.Input == "" {
		return fmt.Errorf("input file is required")
	}
	if c.Output == "" {
		return fmt.Errorf("output path is required")
	}
	return nil
}
