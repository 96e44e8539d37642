package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/william92380/option-models-comparison/internal/config"
	"github.com/william92380/option-models-comparison/internal/params"
)

func writeScenario(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

const validScenario = `
option:
  spot: 100
  strike: 95
  maturity: 0.5
  rate: 0.03
  volatility: 0.25
  steps: 250
  kind: put
  style: american
comparison:
  threshold_pct: 2.5
logging:
  verbosity: 2
`

func TestLoad(t *testing.T) {
	cfg, err := config.Load(writeScenario(t, validScenario))
	require.NoError(t, err)

	assert.Equal(t, 100.0, cfg.Option.Spot)
	assert.Equal(t, 95.0, cfg.Option.Strike)
	assert.Equal(t, 250, cfg.Option.Steps)
	assert.Equal(t, 2.5, cfg.Comparison.ThresholdPct)
	assert.Equal(t, 2, cfg.Logging.Verbosity)

	p, err := cfg.Parameters()
	require.NoError(t, err)
	assert.Equal(t, params.Put, p.Kind)
	assert.Equal(t, params.American, p.Style)
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load(writeScenario(t, `
option:
  spot: 100
  strike: 100
  maturity: 1
  rate: 0.05
  volatility: 0.2
`))
	require.NoError(t, err)

	assert.Equal(t, "call", cfg.Option.Kind)
	assert.Equal(t, "european", cfg.Option.Style)
	assert.Equal(t, 100, cfg.Option.Steps)
	assert.Equal(t, 5.0, cfg.Comparison.ThresholdPct)
	assert.Equal(t, 1, cfg.Logging.Verbosity)

	_, err = cfg.Parameters()
	require.NoError(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestParametersRejectsBadValues(t *testing.T) {
	cfg, err := config.Load(writeScenario(t, `
option:
  spot: -100
  strike: 100
  maturity: 1
  rate: 0.05
  volatility: 0.2
`))
	require.NoError(t, err)

	_, err = cfg.Parameters()
	require.Error(t, err)
	assert.True(t, errors.Is(err, params.ErrInvalidParameter))
}

func TestParametersRejectsBadKind(t *testing.T) {
	cfg, err := config.Load(writeScenario(t, `
option:
  spot: 100
  strike: 100
  maturity: 1
  rate: 0.05
  volatility: 0.2
  kind: straddle
`))
	require.NoError(t, err)

	_, err = cfg.Parameters()
	require.Error(t, err)
	assert.True(t, errors.Is(err, params.ErrInvalidParameter))
}
