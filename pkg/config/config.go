// Package config handles rbfdesc configuration via YAML files and
// environment variables.
//
// Configuration Precedence (highest to lowest):
//  1. Environment variables (RBFDESC_*)
//  2. Config file (rbfdesc.yaml)
//  3. Built-in defaults
//
// Example Usage:
//
//	cfg, err := config.LoadFromFile("rbfdesc.yaml")
//	if err != nil {
//		log.Fatalf("Invalid config: %v", err)
//	}
//	params := cfg.Params()
//
// Environment Variables (all use the RBFDESC_ prefix):
//
// Descriptor:
//   - RBFDESC_CUTOFF=3.0
//   - RBFDESC_ALPHA=0.5
//   - RBFDESC_BETA=0.5
//
// Parallelism:
//   - RBFDESC_PARALLEL=true
//   - RBFDESC_MAX_WORKERS=8
//   - RBFDESC_MIN_ATOMS=16
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/orneryd/rbfdesc/pkg/dataset"
	"github.com/orneryd/rbfdesc/pkg/descriptor"
)

// Config holds descriptor hyper-parameters and driver settings.
type Config struct {
	// Descriptor hyper-parameters.
	Cutoff float64 `yaml:"cutoff"`
	Alpha  float64 `yaml:"alpha"`
	Beta   float64 `yaml:"beta"`

	// Parallel driver settings.
	Parallel ParallelConfig `yaml:"parallel"`
}

// ParallelConfig mirrors dataset.ParallelConfig for YAML loading.
type ParallelConfig struct {
	Enabled    bool `yaml:"enabled"`
	MaxWorkers int  `yaml:"max_workers"`
	MinAtoms   int  `yaml:"min_atoms"`
}

// LoadDefaults returns the built-in defaults: the canonical
// hyper-parameters (cutoff 3.0, alpha 0.5, beta 0.5) and the default
// parallel driver settings.
func LoadDefaults() *Config {
	params := descriptor.DefaultParams()
	par := dataset.DefaultParallelConfig()
	return &Config{
		Cutoff: params.Cutoff,
		Alpha:  params.Alpha,
		Beta:   params.Beta,
		Parallel: ParallelConfig{
			Enabled:    par.Enabled,
			MaxWorkers: par.MaxWorkers,
			MinAtoms:   par.MinAtoms,
		},
	}
}

// LoadFromEnv returns the defaults with RBFDESC_* environment overrides
// applied.
func LoadFromEnv() *Config {
	cfg := LoadDefaults()
	ApplyEnvVars(cfg)
	return cfg
}

// LoadFromFile loads configuration from a YAML file, then applies
// RBFDESC_* environment overrides and validates the result.
func LoadFromFile(path string) (*Config, error) {
	cfg := LoadDefaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	ApplyEnvVars(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnvVars overrides config values from RBFDESC_* environment
// variables.
func ApplyEnvVars(cfg *Config) {
	cfg.Cutoff = getEnvFloat("RBFDESC_CUTOFF", cfg.Cutoff)
	cfg.Alpha = getEnvFloat("RBFDESC_ALPHA", cfg.Alpha)
	cfg.Beta = getEnvFloat("RBFDESC_BETA", cfg.Beta)

	cfg.Parallel.Enabled = getEnvBool("RBFDESC_PARALLEL", cfg.Parallel.Enabled)
	cfg.Parallel.MaxWorkers = getEnvInt("RBFDESC_MAX_WORKERS", cfg.Parallel.MaxWorkers)
	cfg.Parallel.MinAtoms = getEnvInt("RBFDESC_MIN_ATOMS", cfg.Parallel.MinAtoms)
}

// Params returns the descriptor hyper-parameters.
func (c *Config) Params() descriptor.Params {
	return descriptor.Params{
		Cutoff: c.Cutoff,
		Alpha:  c.Alpha,
		Beta:   c.Beta,
	}
}

// ParallelSettings returns the driver parallelism settings.
func (c *Config) ParallelSettings() dataset.ParallelConfig {
	return dataset.ParallelConfig{
		Enabled:    c.Parallel.Enabled,
		MaxWorkers: c.Parallel.MaxWorkers,
		MinAtoms:   c.Parallel.MinAtoms,
	}
}

// Validate checks hyper-parameters and driver settings.
func (c *Config) Validate() error {
	if err := c.Params().Validate(); err != nil {
		return err
	}
	if c.Parallel.MaxWorkers < 0 {
		return fmt.Errorf("parallel.max_workers must be >= 0, got %d", c.Parallel.MaxWorkers)
	}
	if c.Parallel.MinAtoms < 0 {
		return fmt.Errorf("parallel.min_atoms must be >= 0, got %d", c.Parallel.MinAtoms)
	}
	return nil
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if val := os.Getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return defaultVal
}
