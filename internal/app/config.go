package app

import (
	"fmt"
	"os"
	"strconv"

	"gcat/internal/convergence"
	"gcat/internal/domain"
	"gcat/internal/format"
	"gcat/internal/services/analysis"
	"gcat/internal/store"
)

// Environment variables that override the config file.
const (
	EnvSafetyFactor = "GCAT_SAFETY_FACTOR"
	EnvTolerance    = "GCAT_TOLERANCE"
	EnvMaxIter      = "GCAT_MAX_ITER"
	EnvFormat       = "GCAT_FORMAT"
)

// Config holds runtime options for building the app.
//
// Example file:
//
//	format: markdown
//	solver:
//	  safety_factor: 1.25
//	  tolerance: 1.0e-6
//	  max_iterations: 100
//	  relaxation: 1
//	  max_residual: 1.0e6
type Config struct {
	Solver domain.SolverSettings `yaml:"solver"`
	Format string                `yaml:"format"` // table, markdown or json
}

// DefaultConfig returns the published procedure's settings with table output.
func DefaultConfig() *Config {
	return &Config{
		Solver: analysis.Settings(convergence.DefaultOptions()),
		Format: format.ASCII.String(),
	}
}

// Load resolves configuration from defaults, the YAML file at path and the
// environment, in that order. An empty path or a missing file yields the
// defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		if _, err := store.ReadYAML(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}
	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() error {
	if v, ok := os.LookupEnv(EnvSafetyFactor); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSafetyFactor, err)
		}
		c.Solver.SafetyFactor = f
	}
	if v, ok := os.LookupEnv(EnvTolerance); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvTolerance, err)
		}
		c.Solver.Tolerance = f
	}
	if v, ok := os.LookupEnv(EnvMaxIter); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMaxIter, err)
		}
		c.Solver.MaxIterations = n
	}
	if v, ok := os.LookupEnv(EnvFormat); ok && v != "" {
		c.Format = v
	}
	return nil
}

// Validate rejects unknown output formats and out-of-range solver settings.
func (c *Config) Validate() error {
	if _, err := format.ParseMode(c.Format); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := analysis.Options(c.Solver).Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Mode returns the parsed output format.
func (c *Config) Mode() format.Mode {
	m, _ := format.ParseMode(c.Format)
	return m
}
