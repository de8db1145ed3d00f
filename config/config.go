// Package config loads reader settings from TOML or YAML files.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/xiam/ruse"
)

// Format represents the configuration file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// Output formats
const (
	OutputSexpr = "sexpr"
	OutputTree  = "tree"
	OutputDump  = "dump"
)

// Config holds the complete configuration
type Config struct {
	Reader ReaderConfig `toml:"reader" yaml:"reader"`
	Output OutputConfig `toml:"output" yaml:"output"`
}

// ReaderConfig holds the reader settings
type ReaderConfig struct {
	StrictDelimiters bool `toml:"strict_delimiters" yaml:"strict_delimiters"`
	MaxDepth         int  `toml:"max_depth" yaml:"max_depth"`
	Trace            bool `toml:"trace" yaml:"trace"`
}

// OutputConfig holds settings for printing results
type OutputConfig struct {
	Format string `toml:"format" yaml:"format"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Output: OutputConfig{Format: OutputSexpr},
	}
}

// Load reads a configuration file. The format is detected from the file
// extension.
func Load(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config %q", path)
	}

	cfg, err := Parse(content, detectFormat(path))
	if err != nil {
		return nil, errors.Wrapf(err, "loading config %q", path)
	}
	return cfg, nil
}

// Parse decodes configuration content, filling in defaults for missing
// values.
func Parse(content []byte, format Format) (*Config, error) {
	cfg := Default()

	switch format {
	case FormatTOML:
		if _, err := toml.Decode(string(content), cfg); err != nil {
			return nil, errors.Wrap(err, "TOML parse error")
		}
	case FormatYAML:
		if err := yaml.Unmarshal(content, cfg); err != nil {
			return nil, errors.Wrap(err, "YAML parse error")
		}
	default:
		return nil, errors.Errorf("unsupported format: %s", format)
	}

	if cfg.Output.Format == "" {
		cfg.Output.Format = OutputSexpr
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that every value is known.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case OutputSexpr, OutputTree, OutputDump:
		return nil
	}
	return errors.Errorf("unknown output format %q", c.Output.Format)
}

// ReaderOptions returns the reader options described by the configuration.
func (c *Config) ReaderOptions() []ruse.Option {
	opts := []ruse.Option{
		ruse.WithStrictDelimiters(c.Reader.StrictDelimiters),
	}
	// Zero keeps the reader's default.
	if c.Reader.MaxDepth != 0 {
		opts = append(opts, ruse.WithMaxDepth(c.Reader.MaxDepth))
	}
	return opts
}

func detectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}
