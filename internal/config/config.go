package config

import (
	"encoding/json"
	"fmt"
	"os"

	"slam-datagen/internal/datagen"
	"slam-datagen/internal/simulation"
)

// OutputConfig controls what the CLI does with an accepted run.
type OutputConfig struct {
	Window         bool   `json:"window"`          // Replay the accepted attempt in a window
	SnapshotDir    string `json:"snapshot_dir"`    // Write one PNG per step here
	TrajectoryPlot string `json:"trajectory_plot"` // Write a summary plot to this file
	PrintSteps     int    `json:"print_steps"`     // Dataset entries printed in the report, -1 for all
	Baseline       bool   `json:"baseline"`        // Print the odometry baseline estimate
	TicksPerStep   int    `json:"ticks_per_step"`  // Window replay speed, ticks each step stays on screen
}

// LogConfig controls progress logging.
type LogConfig struct {
	Enabled bool `json:"enabled"`
}

// AppConfig aggregates all configuration sections.
type AppConfig struct {
	Params       datagen.Params `json:"params"`
	Seed         int64          `json:"seed"` // 0 picks a fresh seed per run
	MaxAttempts  int            `json:"max_attempts"`
	MaxResamples int            `json:"max_resamples"`
	Output       OutputConfig   `json:"output"`
	Log          LogConfig      `json:"log"`
}

// Default returns the configuration used when no file is given.
func Default() AppConfig {
	return AppConfig{
		Params: datagen.Params{
			N:                20,
			NumLandmarks:     5,
			WorldSize:        100,
			MeasurementRange: 50,
			MotionNoise:      2,
			MeasurementNoise: 2,
			Distance:         20,
			NoiseModel:       simulation.NoiseUniform,
		},
		MaxAttempts:  datagen.DefaultMaxAttempts,
		MaxResamples: datagen.DefaultMaxResamples,
		Output: OutputConfig{
			PrintSteps:   3,
			Baseline:     true,
			TicksPerStep: 15,
		},
		Log: LogConfig{Enabled: true},
	}
}

// LoadConfig reads a JSON config from disk on top of Default.
func LoadConfig(path string) (AppConfig, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// Visualize reports whether any step-level visual output is requested.
func (c AppConfig) Visualize() bool {
	return c.Params.Visualize || c.Output.Window || c.Output.SnapshotDir != ""
}

// Validate checks the generation parameters and run limits.
func (c AppConfig) Validate() error {
	if err := c.Params.Validate(); err != nil {
		return err
	}
	if c.MaxAttempts < 1 {
		return fmt.Errorf("max_attempts must be >= 1, got %d", c.MaxAttempts)
	}
	if c.MaxResamples < 0 {
		return fmt.Errorf("max_resamples must be >= 0, got %d", c.MaxResamples)
	}
	if c.Output.TicksPerStep < 1 {
		return fmt.Errorf("ticks_per_step must be >= 1, got %d", c.Output.TicksPerStep)
	}
	if c.Output.PrintSteps < -1 {
		return fmt.Errorf("print_steps must be >= -1, got %d", c.Output.PrintSteps)
	}
	return nil
}
