package datagen

import (
	"fmt"

	"slam-datagen/internal/simulation"
)

// Params are the inputs of one generation run.
type Params struct {
	N                int                   `json:"n"`             // Time steps, the dataset holds N-1 entries
	NumLandmarks     int                   `json:"num_landmarks"` // Landmarks that must all be observed
	WorldSize        float64               `json:"world_size"` // Side of the square world
	MeasurementRange float64               `json:"measurement_range"` // simulation.UnlimitedRange disables the check
	MotionNoise      float64               `json:"motion_noise"`      // Magnitude, see NoiseModel
	MeasurementNoise float64               `json:"measurement_noise"` // Magnitude, see NoiseModel
	Distance         float64               `json:"distance"` // Length of every attempted motion
	NoiseModel       simulation.NoiseModel `json:"noise_model"`
	Visualize        bool                  `json:"visualize"` // Invoke the step hook after every accepted move
}

// Validate reports the first parameter that makes the run meaningless.
func (p Params) Validate() error {
	if p.N < 2 {
		return fmt.Errorf("%w: n must be at least 2, got %d", ErrInvalidParams, p.N)
	}
	if p.NumLandmarks < 1 {
		return fmt.Errorf("%w: num_landmarks must be positive, got %d", ErrInvalidParams, p.NumLandmarks)
	}
	if p.Distance <= 0 {
		return fmt.Errorf("%w: distance must be positive, got %.3f", ErrInvalidParams, p.Distance)
	}
	if err := p.SimulationConfig().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidParams, err)
	}
	return nil
}

// SimulationConfig returns the part of p the simulator is built from.
func (p Params) SimulationConfig() simulation.Config {
	return simulation.Config{
		WorldSize:        p.WorldSize,
		MeasurementRange: p.MeasurementRange,
		MotionNoise:      p.MotionNoise,
		MeasurementNoise: p.MeasurementNoise,
		NoiseModel:       p.NoiseModel,
	}
}
