package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slam-datagen/internal/config"
	"slam-datagen/internal/datagen"
	"slam-datagen/internal/simulation"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.False(t, cfg.Visualize())
}

func TestLoadConfigOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `{
		"params": {"n": 50, "num_landmarks": 3, "world_size": 10, "measurement_range": -1, "noise_model": "gaussian"},
		"seed": 42,
		"output": {"snapshot_dir": "frames"}
	}`)
	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 50, cfg.Params.N)
	assert.Equal(t, 3, cfg.Params.NumLandmarks)
	assert.Equal(t, 10.0, cfg.Params.WorldSize)
	assert.Equal(t, simulation.UnlimitedRange, cfg.Params.MeasurementRange)
	assert.Equal(t, simulation.NoiseGaussian, cfg.Params.NoiseModel)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, 20.0, cfg.Params.Distance, "unset fields keep their defaults")
	assert.Equal(t, datagen.DefaultMaxAttempts, cfg.MaxAttempts)
	assert.True(t, cfg.Visualize())
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := config.LoadConfig(filepath.Join(t.TempDir(), "absent.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = config.LoadConfig(writeConfig(t, `{"params": `))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := config.Default()
	cfg.Params.N = 1
	assert.ErrorIs(t, cfg.Validate(), datagen.ErrInvalidParams)

	cfg = config.Default()
	cfg.MaxAttempts = 0
	assert.Error(t, cfg.Validate())

	cfg = config.Default()
	cfg.MaxResamples = -1
	assert.Error(t, cfg.Validate())

	cfg = config.Default()
	cfg.Output.PrintSteps = -2
	assert.Error(t, cfg.Validate())

	cfg = config.Default()
	cfg.Output.TicksPerStep = 0
	assert.Error(t, cfg.Validate())
}

func TestMixedCaseNoiseModelRuns(t *testing.T) {
	cfg, err := config.LoadConfig(writeConfig(t, `{"params": {"noise_model": "Gaussian"}}`))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	_, err = datagen.New(datagen.WithSeed(6)).Generate(cfg.Params)
	assert.NoError(t, err)
}
