// Package config loads run settings for the mincut commands from defaults,
// an optional config file, MINCUT_* environment variables and command-line
// flags, in increasing order of precedence.
package config

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/mincut/experiment"
	"github.com/katalvlaran/mincut/mincut"
)

// EnvPrefix prefixes environment overrides: run.seed is MINCUT_RUN_SEED.
const EnvPrefix = "MINCUT"

// Config manages settings using Viper.
type Config struct {
	v *viper.Viper
}

// NewConfig creates a configuration with defaults.
func NewConfig() *Config {
	v := viper.New()

	// Algorithm parameters
	v.SetDefault("algorithm.strategy", mincut.StrategyKargerStein.String())
	v.SetDefault("algorithm.base_threshold", mincut.MinBaseThreshold)
	v.SetDefault("algorithm.base_mode", mincut.BaseEnumerate.String())
	v.SetDefault("algorithm.base_repeats", 1)

	// Run parameters
	v.SetDefault("run.seed", 0)
	v.SetDefault("run.workers", runtime.NumCPU())
	v.SetDefault("run.timeout", time.Duration(0))

	// Experiment parameters
	v.SetDefault("experiment.budgets", []int{1, 5, 10, 20, 50, 100, 150})
	v.SetDefault("experiment.append_quadratic", false)
	v.SetDefault("experiment.runtime_trials", 0)
	v.SetDefault("experiment.runtime_samples", 1)
	v.SetDefault("experiment.verify_truth", false)

	// Logging parameters
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Config{v: v}
}

// LoadFromFile merges a config file; the format follows the extension.
func (c *Config) LoadFromFile(path string) error {
	c.v.SetConfigFile(path)
	if err := c.v.ReadInConfig(); err != nil {
		return fmt.Errorf("LoadFromFile: %w", err)
	}

	return nil
}

// flagKeys maps command-line flags to config keys.
var flagKeys = map[string]string{
	"seed":      "run.seed",
	"workers":   "run.workers",
	"timeout":   "run.timeout",
	"strategy":  "algorithm.strategy",
	"log-level": "logging.level",
}

// BindFlags defines the shared run flags on fs and binds them, so a flag set
// on the command line overrides file and environment values.
func (c *Config) BindFlags(fs *pflag.FlagSet) error {
	fs.Int64("seed", c.Seed(), "base seed; 0 draws one from the OS entropy source")
	fs.Int("workers", c.Workers(), "concurrent trials")
	fs.Duration("timeout", c.Timeout(), "wall-clock limit for the whole run; 0 disables it")
	fs.String("strategy", c.Strategy(), "per-trial algorithm: karger-stein or karger")
	fs.String("log-level", c.LogLevel(), "zerolog level: trace, debug, info, warn, error")

	for name, key := range flagKeys {
		if err := c.v.BindPFlag(key, fs.Lookup(name)); err != nil {
			return fmt.Errorf("BindFlags: %s: %w", name, err)
		}
	}

	return nil
}

// Getters for algorithm parameters
func (c *Config) Strategy() string   { return c.v.GetString("algorithm.strategy") }
func (c *Config) BaseThreshold() int { return c.v.GetInt("algorithm.base_threshold") }
func (c *Config) BaseMode() string   { return c.v.GetString("algorithm.base_mode") }
func (c *Config) BaseRepeats() int   { return c.v.GetInt("algorithm.base_repeats") }

// Getters for run parameters
func (c *Config) Seed() int64            { return c.v.GetInt64("run.seed") }
func (c *Config) Workers() int           { return c.v.GetInt("run.workers") }
func (c *Config) Timeout() time.Duration { return c.v.GetDuration("run.timeout") }

// Getters for experiment parameters
func (c *Config) Budgets() []int        { return c.v.GetIntSlice("experiment.budgets") }
func (c *Config) AppendQuadratic() bool { return c.v.GetBool("experiment.append_quadratic") }
func (c *Config) RuntimeTrials() int    { return c.v.GetInt("experiment.runtime_trials") }
func (c *Config) RuntimeSamples() int   { return c.v.GetInt("experiment.runtime_samples") }
func (c *Config) VerifyTruth() bool     { return c.v.GetBool("experiment.verify_truth") }

// Getters for logging parameters
func (c *Config) LogLevel() string  { return c.v.GetString("logging.level") }
func (c *Config) LogFormat() string { return c.v.GetString("logging.format") }

// Set allows dynamic configuration changes.
func (c *Config) Set(key string, value interface{}) {
	c.v.Set(key, value)
}

// SolverOptions converts the algorithm and run sections into validated mincut.Options.
func (c *Config) SolverOptions() (mincut.Options, error) {
	strategy, err := mincut.ParseStrategy(c.Strategy())
	if err != nil {
		return mincut.Options{}, fmt.Errorf("SolverOptions: algorithm.strategy: %w", err)
	}
	mode, err := mincut.ParseBaseMode(c.BaseMode())
	if err != nil {
		return mincut.Options{}, fmt.Errorf("SolverOptions: algorithm.base_mode: %w", err)
	}
	o := mincut.Options{
		Strategy:      strategy,
		BaseThreshold: c.BaseThreshold(),
		BaseMode:      mode,
		BaseRepeats:   c.BaseRepeats(),
		Workers:       c.Workers(),
	}
	if err = o.Validate(); err != nil {
		return mincut.Options{}, fmt.Errorf("SolverOptions: %w", err)
	}

	return o, nil
}

// Solver builds a mincut.Solver from SolverOptions.
func (c *Config) Solver() (*mincut.Solver, error) {
	o, err := c.SolverOptions()
	if err != nil {
		return nil, err
	}

	return mincut.NewSolver(mincut.WithOptions(o))
}

// ExperimentSettings converts the run and experiment sections.
func (c *Config) ExperimentSettings() experiment.Settings {
	return experiment.Settings{
		Seed:            c.Seed(),
		Budgets:         c.Budgets(),
		AppendQuadratic: c.AppendQuadratic(),
		RuntimeTrials:   c.RuntimeTrials(),
		RuntimeSamples:  c.RuntimeSamples(),
		VerifyTruth:     c.VerifyTruth(),
	}
}

// CreateLogger creates a zerolog logger writing to w (os.Stderr when nil).
// logging.format "json" emits JSON lines; anything else a console writer.
// An unknown level falls back to info.
func (c *Config) CreateLogger(w io.Writer) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}
	level, err := zerolog.ParseLevel(c.LogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}
	if c.LogFormat() != "json" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	}

	return zerolog.New(w).Level(level).With().Timestamp().Str("service", "mincut").Logger()
}
