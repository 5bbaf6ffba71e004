// Package config is for app wide settings that are unmarshalled
// from Viper (see: internal/cli)
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"localign/internal/engine"
)

// EnvPrefix namespaces environment overrides, e.g. LOCALIGN_MATCH=2.
const EnvPrefix = "LOCALIGN"

// Config is the root-level settings struct and is a mix of settings from an
// optional config file, the environment, and the command line.
type Config struct {
	// scoring scheme
	Match    int    `mapstructure:"match"`
	Mismatch int    `mapstructure:"mismatch"`
	Indel    int    `mapstructure:"indel"`
	Gap      string `mapstructure:"gap"`

	// which pairs to align and how many at once
	Mode    string `mapstructure:"mode"`
	Threads int    `mapstructure:"threads"`

	// presentation
	Format    string `mapstructure:"format"`
	Output    string `mapstructure:"output"`
	Alignment bool   `mapstructure:"alignment"`
	Pretty    bool   `mapstructure:"pretty"`
	Width     int    `mapstructure:"width"`
	NoHeader  bool   `mapstructure:"no-header"`

	NoMatchExitCode int `mapstructure:"no-match-exit-code"`

	// SQLite database to record the run in (empty = off)
	DB string `mapstructure:"db"`

	Quiet   bool `mapstructure:"quiet"`
	Verbose bool `mapstructure:"verbose"`
}

// Defaults mirrors the command-line defaults.
var Defaults = map[string]any{
	"match":              1,
	"mismatch":           -10,
	"indel":              -1,
	"gap":                "-",
	"mode":               "first",
	"threads":            0,
	"format":             "text",
	"output":             "",
	"alignment":          false,
	"pretty":             false,
	"width":              60,
	"no-header":          false,
	"no-match-exit-code": 0,
	"db":                 "",
	"quiet":              false,
	"verbose":            false,
}

// NewViper returns a viper instance with defaults and environment lookup.
func NewViper() *viper.Viper {
	v := viper.New()
	for k, val := range Defaults {
		v.SetDefault(k, val)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the optional config file at path, unmarshals v and validates
// the result.
func Load(v *viper.Viper, path string) (Config, error) {
	var c Config
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return c, fmt.Errorf("read config %s: %w", path, err)
		}
	}
	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("decode config: %w", err)
	}
	return c, c.Validate()
}

// Validate applies shared invariants.
func (c Config) Validate() error {
	switch c.Format {
	case "text", "json", "jsonl", "fasta":
	default:
		return fmt.Errorf("invalid --format %q", c.Format)
	}
	switch c.Mode {
	case "first", "query", "all":
	default:
		return fmt.Errorf("invalid --mode %q", c.Mode)
	}
	if c.Threads < 0 {
		return errors.New("--threads must be ≥ 0")
	}
	if c.Width < 0 {
		return errors.New("--width must be ≥ 0")
	}
	if len(c.Gap) != 1 {
		return fmt.Errorf("--gap must be a single character, got %q", c.Gap)
	}
	if c.NoMatchExitCode < 0 || c.NoMatchExitCode > 255 {
		return errors.New("--no-match-exit-code must be between 0 and 255")
	}
	if c.Quiet && c.Verbose {
		return errors.New("--quiet conflicts with --verbose")
	}
	return nil
}

// Params returns the scoring scheme.
func (c Config) Params() engine.ScoreParams {
	return engine.ScoreParams{Match: c.Match, Mismatch: c.Mismatch, Indel: c.Indel}
}

// GapByte returns the gap symbol.
func (c Config) GapByte() byte {
	if c.Gap == "" {
		return engine.DefaultGap
	}
	return c.Gap[0]
}
