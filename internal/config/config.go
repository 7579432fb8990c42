package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"
)

// Config holds all montague configuration.
type Config struct {
	// Lexicon used by translate and the shell
	Lexicon LexiconConfig `yaml:"lexicon"`

	// World model used by eval and the shell
	World WorldConfig `yaml:"world"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`

	// Evaluation settings
	Eval EvalConfig `yaml:"eval"`
}

// LexiconConfig locates the lexicon. The format follows the file extension:
// .json, .yaml/.yml or a SQLite .db.
type LexiconConfig struct {
	Path string `yaml:"path"`
}

// WorldConfig locates the Mangle program describing the world model.
type WorldConfig struct {
	Path string `yaml:"path"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level       string   `yaml:"level"`  // debug, info, warn, error
	Format      string   `yaml:"format"` // json, console
	OutputPaths []string `yaml:"output_paths"`
}

// EvalConfig configures formula evaluation.
type EvalConfig struct {
	// Maximum number of formulas evaluated at once; 0 means no limit
	Workers int `yaml:"workers"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Lexicon: LexiconConfig{
			Path: "lexicon.json",
		},
		World: WorldConfig{
			Path: "world.mg",
		},
		Logging: LoggingConfig{
			Level:       "info",
			Format:      "console",
			OutputPaths: []string{"stderr"},
		},
		Eval: EvalConfig{
			Workers: 4,
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults. Environment overrides are applied in both cases.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if path := os.Getenv("MONTAGUE_LEXICON"); path != "" {
		c.Lexicon.Path = path
	}
	if path := os.Getenv("MONTAGUE_WORLD"); path != "" {
		c.World.Path = path
	}
	if level := os.Getenv("MONTAGUE_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
}

// ValidLogLevels lists the accepted logging levels.
var ValidLogLevels = []string{"debug", "info", "warn", "error"}

// ValidLogFormats lists the accepted logging encodings.
var ValidLogFormats = []string{"json", "console"}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if !slices.Contains(ValidLogLevels, c.Logging.Level) {
		return fmt.Errorf("invalid log level: %s (valid: %v)", c.Logging.Level, ValidLogLevels)
	}
	if !slices.Contains(ValidLogFormats, c.Logging.Format) {
		return fmt.Errorf("invalid log format: %s (valid: %v)", c.Logging.Format, ValidLogFormats)
	}
	if c.Eval.Workers < 0 {
		return fmt.Errorf("eval workers must not be negative, got %d", c.Eval.Workers)
	}
	return nil
}
