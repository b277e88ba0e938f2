// Package config loads the YAML settings shared by the id3dump command and
// its HTTP server.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/simonhull/id3tags"
)

// Output formats understood by the renderers.
const (
	FormatText = "text"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Config represents the id3dump configuration
type Config struct {
	Parsing Parsing `yaml:"parsing"`
	Output  Output  `yaml:"output"`
	Server  Server  `yaml:"server"`
	Logging Logging `yaml:"logging"`
}

// Parsing mirrors the extraction options
type Parsing struct {
	StrictFrames   bool `yaml:"strict_frames"`
	IgnoreWarnings bool `yaml:"ignore_warnings"`
}

// Output controls how results are rendered
type Output struct {
	Format string `yaml:"format"`
	Trim   bool   `yaml:"trim"`
}

// Server contains HTTP server settings
type Server struct {
	Addr           string `yaml:"addr"`
	MaxUploadBytes int64  `yaml:"max_upload_bytes"`
}

// Logging contains logging configuration
type Logging struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Output: Output{
			Format: FormatText,
			Trim:   true,
		},
		Server: Server{
			Addr:           ":8080",
			MaxUploadBytes: 64 << 20,
		},
		Logging: Logging{
			Level: "info",
		},
	}
}

// LoadConfig reads the file at path over the defaults. Keys missing from
// the file keep their default values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return config, nil
}

// Validate checks every field that has a closed set of values.
func (c *Config) Validate() error {
	var errs []error

	switch c.Output.Format {
	case FormatText, FormatYAML, FormatJSON:
	default:
		errs = append(errs, fmt.Errorf("output.format %q must be text, yaml, or json", c.Output.Format))
	}

	if c.Server.Addr == "" {
		errs = append(errs, errors.New("server.addr is empty"))
	}
	if c.Server.MaxUploadBytes <= 0 {
		errs = append(errs, fmt.Errorf("server.max_upload_bytes %d must be positive", c.Server.MaxUploadBytes))
	}

	if _, err := ParseLevel(c.Logging.Level); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// ExtractOptions converts the parsing section into library options.
func (c *Config) ExtractOptions() []id3tags.Option {
	var opts []id3tags.Option
	if c.Parsing.StrictFrames {
		opts = append(opts, id3tags.WithStrictFrames())
	}
	if c.Parsing.IgnoreWarnings {
		opts = append(opts, id3tags.WithIgnoreWarnings())
	}
	return opts
}

// ParseLevel maps a level name to a slog level.
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return 0, fmt.Errorf("logging.level: %w", err)
	}
	return level, nil
}
