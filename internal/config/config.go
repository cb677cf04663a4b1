package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrNoOutput is returned by Validate when no output path stem is configured.
var ErrNoOutput = errors.New("no output file specified")

// Config describes one compiler invocation. It can be read from a YAML file
// and is then overridden by command line flags.
type Config struct {
	// Sources is the ordered list of resource files to embed.
	Sources []string `yaml:"sources"`
	// Output is the output path without extension. The compiler writes
	// <Output>.h and <Output>.cpp.
	Output string `yaml:"output"`
	// Strict makes identifier collisions fatal instead of last-wins.
	Strict bool `yaml:"strict"`
	// Logging contains logging configuration.
	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures logging behavior.
type LoggingConfig struct {
	// Level is the log level (debug, info, warn, error).
	Level string `yaml:"level"`
	// Path is the log file path. Empty means stderr.
	Path string `yaml:"path"`
}

// Load reads a YAML configuration file.
//
// Parameters:
//   - path: The configuration file to read.
//
// Returns:
//   - *Config: The parsed configuration, without defaults applied.
//   - error: An error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &cfg, nil
}

// SplitSources splits a comma separated list of paths. Empty items, as in
// "a,,b" or a trailing comma, are skipped.
func SplitSources(list string) []string {
	return strings.FieldsFunc(list, func(r rune) bool { return r == ',' })
}

// Validate checks the configuration for errors.
//
// Parameters:
//   - config: The Config object to validate.
//
// Returns:
//   - error: ErrNoOutput if no output is set, another error for invalid
//     settings, or nil otherwise.
func Validate(config *Config) error {
	if config.Output == "" {
		return ErrNoOutput
	}

	for i, src := range config.Sources {
		if src == "" {
			return fmt.Errorf("source #%d is empty", i+1)
		}
	}

	if config.Logging.Level != "" {
		switch strings.ToLower(config.Logging.Level) {
		case "debug", "info", "warn", "error":
			// ok
		default:
			return fmt.Errorf("invalid logging level: %s (allowed: debug, info, warn, error)", config.Logging.Level)
		}
	}

	return nil
}

// ApplyDefaults sets default values for configuration fields that are missing.
//
// Parameters:
//   - config: The Config object to modify.
func ApplyDefaults(config *Config) {
	if config.Logging.Level == "" {
		config.Logging.Level = "info"
	}
}
