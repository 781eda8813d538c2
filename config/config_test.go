package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mincut/config"
	"github.com/katalvlaran/mincut/mincut"
)

func TestDefaults(t *testing.T) {
	c := config.NewConfig()
	assert.Equal(t, "karger-stein", c.Strategy())
	assert.Equal(t, 6, c.BaseThreshold())
	assert.Equal(t, "enumerate", c.BaseMode())
	assert.Equal(t, 1, c.BaseRepeats())
	assert.Equal(t, int64(0), c.Seed())
	assert.Positive(t, c.Workers())
	assert.Equal(t, time.Duration(0), c.Timeout())
	assert.Equal(t, []int{1, 5, 10, 20, 50, 100, 150}, c.Budgets())
	assert.False(t, c.AppendQuadratic())
	assert.Equal(t, 0, c.RuntimeTrials())
	assert.Equal(t, 1, c.RuntimeSamples())
	assert.False(t, c.VerifyTruth())
	assert.Equal(t, "info", c.LogLevel())
	assert.Equal(t, "console", c.LogFormat())

	o, err := c.SolverOptions()
	require.NoError(t, err)
	assert.Equal(t, mincut.StrategyKargerStein, o.Strategy)
	assert.Equal(t, mincut.BaseEnumerate, o.BaseMode)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mincut.yaml")
	yaml := `algorithm:
  strategy: karger
  base_mode: contract
  base_repeats: 4
run:
  seed: 42
  timeout: 2s
experiment:
  budgets: [1, 3]
  verify_truth: true
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	c := config.NewConfig()
	require.NoError(t, c.LoadFromFile(path))
	assert.Equal(t, "karger", c.Strategy())
	assert.Equal(t, int64(42), c.Seed())
	assert.Equal(t, 2*time.Second, c.Timeout())
	assert.Equal(t, []int{1, 3}, c.Budgets())
	assert.True(t, c.VerifyTruth())

	o, err := c.SolverOptions()
	require.NoError(t, err)
	assert.Equal(t, mincut.StrategyKarger, o.Strategy)
	assert.Equal(t, mincut.BaseContract, o.BaseMode)
	assert.Equal(t, 4, o.BaseRepeats)

	set := c.ExperimentSettings()
	assert.Equal(t, int64(42), set.Seed)
	assert.Equal(t, []int{1, 3}, set.Budgets)

	assert.Error(t, config.NewConfig().LoadFromFile(filepath.Join(t.TempDir(), "none.yaml")))
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("MINCUT_RUN_SEED", "77")
	t.Setenv("MINCUT_ALGORITHM_BASE_THRESHOLD", "9")

	c := config.NewConfig()
	assert.Equal(t, int64(77), c.Seed())
	assert.Equal(t, 9, c.BaseThreshold())
}

func TestBindFlags(t *testing.T) {
	c := config.NewConfig()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	require.NoError(t, c.BindFlags(fs))
	require.NoError(t, fs.Parse([]string{"--seed=5", "--workers=2", "--timeout=1m", "--strategy=karger", "--log-level=debug"}))

	assert.Equal(t, int64(5), c.Seed())
	assert.Equal(t, 2, c.Workers())
	assert.Equal(t, time.Minute, c.Timeout())
	assert.Equal(t, "karger", c.Strategy())
	assert.Equal(t, "debug", c.LogLevel())

	s, err := c.Solver()
	require.NoError(t, err)
	assert.Equal(t, 2, s.Options().Workers)
}

func TestSolverOptions_Invalid(t *testing.T) {
	tests := map[string]any{
		"algorithm.strategy":       "gomory-hu",
		"algorithm.base_mode":      "guess",
		"algorithm.base_threshold": 3,
		"run.workers":              0,
	}
	for key, value := range tests {
		c := config.NewConfig()
		c.Set(key, value)
		_, err := c.SolverOptions()
		assert.ErrorIs(t, err, mincut.ErrBadOptions, key)
	}
}

func TestCreateLogger(t *testing.T) {
	var buf bytes.Buffer
	c := config.NewConfig()
	c.Set("logging.format", "json")
	c.Set("logging.level", "warn")
	log := c.CreateLogger(&buf)

	log.Info().Msg("hidden")
	log.Warn().Int("n", 3).Msg("shown")
	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"message":"shown"`)
	assert.Contains(t, out, `"service":"mincut"`)

	buf.Reset()
	c.Set("logging.level", "nonsense")
	c.Set("logging.format", "console")
	fallback := c.CreateLogger(&buf)
	fallback.Info().Msg("fallback")
	assert.Contains(t, buf.String(), "fallback")
}
