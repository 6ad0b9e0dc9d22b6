// Package config loads the equity tool configuration from an HCL file with
// environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/ilyakaznacheev/cleanenv"
)

// Solver names accepted in configuration and on the command line.
const (
	SolverRuntime = "runtime"
	SolverCached  = "cached"
)

// Config represents the complete tool configuration
type Config struct {
	Log      *LogConfig    `hcl:"log,block"`
	Solver   string        `hcl:"solver,optional"`
	Progress bool          `hcl:"progress,optional"`
	Verify   *VerifyConfig `hcl:"verify,block"`
}

// LogConfig controls logger construction.
type LogConfig struct {
	Level  string `hcl:"level,optional"`
	Format string `hcl:"format,optional"`
	File   string `hcl:"file,optional"`
}

// VerifyConfig controls the random cross-check run.
type VerifyConfig struct {
	Deals int   `hcl:"deals,optional"`
	Seed  int64 `hcl:"seed,optional"`
}

// envOverrides lists the environment variables that win over the file.
type envOverrides struct {
	LogLevel    string `env:"EQUITY_LOG_LEVEL"`
	LogFormat   string `env:"EQUITY_LOG_FORMAT"`
	Solver      string `env:"EQUITY_SOLVER"`
	VerifyDeals int    `env:"EQUITY_VERIFY_DEALS"`
}

// Default returns the default configuration
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads filename, applies defaults and environment overrides, and
// validates the result. A missing file yields the defaults.
func Load(filename string) (*Config, error) {
	var cfg *Config
	src, err := os.ReadFile(filename)
	switch {
	case errors.Is(err, os.ErrNotExist):
		cfg = Default()
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if cfg, err = Parse(src, filename); err != nil {
			return nil, err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes HCL source and applies defaults for missing values.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Log == nil {
		c.Log = &LogConfig{}
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
	if c.Solver == "" {
		c.Solver = SolverRuntime
	}
	if c.Verify == nil {
		c.Verify = &VerifyConfig{}
	}
	if c.Verify.Deals == 0 {
		c.Verify.Deals = 10000
	}
}

func (c *Config) applyEnv() error {
	var env envOverrides
	if err := cleanenv.ReadEnv(&env); err != nil {
		return fmt.Errorf("failed to read environment: %w", err)
	}
	if env.LogLevel != "" {
		c.Log.Level = env.LogLevel
	}
	if env.LogFormat != "" {
		c.Log.Format = env.LogFormat
	}
	if env.Solver != "" {
		c.Solver = env.Solver
	}
	if env.VerifyDeals != 0 {
		c.Verify.Deals = env.VerifyDeals
	}
	return nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.Solver {
	case SolverRuntime, SolverCached:
	default:
		return fmt.Errorf("invalid solver %q: must be %q or %q", c.Solver, SolverRuntime, SolverCached)
	}
	switch c.Log.Format {
	case "text", "json", "logfmt":
	default:
		return fmt.Errorf("invalid log format %q", c.Log.Format)
	}
	if c.Verify.Deals < 1 {
		return fmt.Errorf("verify deals must be positive, got %d", c.Verify.Deals)
	}
	return nil
}
