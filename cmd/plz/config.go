package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/woozymasta/plz"
)

// Output formats accepted by --output and [output] format.
const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

// Config is the TOML configuration of the plz command.
type Config struct {
	Parse  ParseConfig  `toml:"parse"`
	Format FormatConfig `toml:"format"`
	Check  CheckConfig  `toml:"check"`
	Output OutputConfig `toml:"output"`
}

// ParseConfig holds parser settings.
type ParseConfig struct {
	MaxDepth int `toml:"max_depth"`
}

// FormatConfig holds writer settings.
type FormatConfig struct {
	Compact bool `toml:"compact"`
}

// CheckConfig toggles individual validator checks.
type CheckConfig struct {
	DisableUndeclared bool `toml:"disable_undeclared"`
	DisableRedeclare  bool `toml:"disable_redeclare"`
	DisableUnused     bool `toml:"disable_unused"`
	DisableDivZero    bool `toml:"disable_div_zero"`
}

// OutputConfig selects how results are printed.
type OutputConfig struct {
	Format string `toml:"format"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Parse:  ParseConfig{MaxDepth: 256},
		Output: OutputConfig{Format: outputText},
	}
}

// LoadConfig reads a TOML file on top of DefaultConfig.
// An empty path falls back to $PLZ_CONFIG, then to the defaults.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv("PLZ_CONFIG")
	}
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	path = os.ExpandEnv(path)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("unknown config keys in %s: %s", path, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field values.
func (c *Config) Validate() error {
	if c.Parse.MaxDepth < 0 {
		return fmt.Errorf("parse.max_depth must not be negative, got %d", c.Parse.MaxDepth)
	}
	return checkOutputFormat(c.Output.Format)
}

func checkOutputFormat(f string) error {
	switch f {
	case outputText, outputJSON, outputYAML:
		return nil
	default:
		return fmt.Errorf("unsupported output format %q (want text, json or yaml)", f)
	}
}

func (c *Config) parseOptions() *plz.ParseOptions {
	return &plz.ParseOptions{MaxDepth: c.Parse.MaxDepth}
}

func (c *Config) formatOptions() *plz.FormatOptions {
	return &plz.FormatOptions{Compact: c.Format.Compact}
}

func (c *Config) validateOptions() *plz.ValidateOptions {
	return &plz.ValidateOptions{
		DisableUndeclaredCheck: c.Check.DisableUndeclared,
		DisableRedeclareCheck:  c.Check.DisableRedeclare,
		DisableUnusedCheck:     c.Check.DisableUnused,
		DisableDivZeroCheck:    c.Check.DisableDivZero,
	}
}
