// Package config loads the per-run tunables: an optional TOML file
// overridden by CLI flags registered on the root command.
package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"
)

// Config holds every run-scoped tunable: ontology directory, output
// directory, explanation limits, per-ontology timeout, stats-log
// interval, and worker concurrency.
type Config struct {
	OntologyDir string `toml:"ontology_dir"`
	OutputDir   string `toml:"output_dir"`

	MaxExplanationsPerInference int `toml:"max_explanations_per_inference"`
	ExplanationDepthBound       int `toml:"explanation_depth_bound"`

	OntologyTimeout time.Duration `toml:"ontology_timeout"`
	StatsInterval   time.Duration `toml:"stats_interval"`

	Concurrency int `toml:"concurrency"`

	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`
}

// Default returns the configuration used when no file and no flags
// override a field.
func Default() Config {
	return Config{
		OntologyDir:                 "ontologies",
		OutputDir:                   "out",
		MaxExplanationsPerInference: 5,
		ExplanationDepthBound:       8,
		OntologyTimeout:             2 * time.Minute,
		StatsInterval:               30 * time.Second,
		Concurrency:                 4,
		LogLevel:                    "info",
		LogFormat:                   "text",
	}
}

// Load reads path (if non-empty and it exists) over Default, then
// returns the merged Config. A missing path is not an error; a
// malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}
	return cfg, nil
}

// Flags holds the CLI flag names bound to a Config by RegisterFlags,
// mirroring the corpus's Config/Flags split so callers can rename flags
// without touching field names.
type Flags struct {
	OntologyDir string
	OutputDir   string
	MaxExpl     string
	DepthBound  string
	Timeout     string
	StatsEvery  string
	Concurrency string
	LogLevel    string
	LogFormat   string
}

// DefaultFlags returns the default flag names used by RegisterFlags.
func DefaultFlags() Flags {
	return Flags{
		OntologyDir: "ontology-dir",
		OutputDir:   "output-dir",
		MaxExpl:     "max-explanations",
		DepthBound:  "explanation-depth",
		Timeout:     "ontology-timeout",
		StatsEvery:  "stats-interval",
		Concurrency: "concurrency",
		LogLevel:    "log-level",
		LogFormat:   "log-format",
	}
}

// RegisterFlags binds cfg's fields to flags under fl's names, so that a
// flag set by the caller on the command line overrides the TOML value.
func RegisterFlags(flags *pflag.FlagSet, fl Flags, cfg *Config) {
	flags.StringVar(&cfg.OntologyDir, fl.OntologyDir, cfg.OntologyDir, "directory of input ontology files")
	flags.StringVar(&cfg.OutputDir, fl.OutputDir, cfg.OutputDir, "directory for CSV/JSON/summary output")
	flags.IntVar(&cfg.MaxExplanationsPerInference, fl.MaxExpl, cfg.MaxExplanationsPerInference, "maximum justification blocks per explained inference")
	flags.IntVar(&cfg.ExplanationDepthBound, fl.DepthBound, cfg.ExplanationDepthBound, "pattern-matching recursion depth bound")
	flags.DurationVar(&cfg.OntologyTimeout, fl.Timeout, cfg.OntologyTimeout, "per-ontology processing timeout")
	flags.DurationVar(&cfg.StatsInterval, fl.StatsEvery, cfg.StatsInterval, "periodic register-stats logging interval")
	flags.IntVar(&cfg.Concurrency, fl.Concurrency, cfg.Concurrency, "worker concurrency limit per ontology")
	flags.StringVar(&cfg.LogLevel, fl.LogLevel, cfg.LogLevel, "log level: debug, info, warn, error")
	flags.StringVar(&cfg.LogFormat, fl.LogFormat, cfg.LogFormat, "log format: text or json")
}
