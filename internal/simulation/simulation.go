package simulation

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"slam-datagen/internal/common"
)

var (
	// ErrInvalidConfig is returned for a world or noise setup the robot cannot run in.
	ErrInvalidConfig = errors.New("simulation: invalid config")
	// ErrNeedRandSource is returned when a robot is built without a rand source.
	ErrNeedRandSource = errors.New("simulation: rng is required")
	// ErrLandmarksPlaced is returned when PlaceLandmarks is called a second time.
	ErrLandmarksPlaced = errors.New("simulation: landmarks already placed")
)

// NoiseModel selects the distribution used for motion and measurement noise.
type NoiseModel string

const (
	NoiseUniform    NoiseModel = "uniform" // U[-1, 1) * magnitude, the default
	NoiseGaussian   NoiseModel = "gaussian"   // N(0, 1) * magnitude
	NoisePercentage NoiseModel = "percentage" // Uniform, scaled by |value| * magnitude
	NoiseDrift      NoiseModel = "drift"      // Simplex field, correlated between calls
	NoiseNone       NoiseModel = "none"
)

// ParseNoiseModel converts a model name into a NoiseModel. Empty means uniform.
func ParseNoiseModel(value string) (NoiseModel, error) {
	switch m := NoiseModel(strings.ToLower(strings.TrimSpace(value))); m {
	case "":
		return NoiseUniform, nil
	case NoiseUniform, NoiseGaussian, NoisePercentage, NoiseDrift, NoiseNone:
		return m, nil
	default:
		return NoiseUniform, fmt.Errorf("unknown noise model %q", value)
	}
}

// Func builds the NoiseFunction of this model with the given magnitude.
// The name is normalised the same way ParseNoiseModel does it.
func (m NoiseModel) Func(rng *rand.Rand, magnitude float64) (NoiseFunction, error) {
	model, err := ParseNoiseModel(string(m))
	if err != nil {
		return nil, err
	}
	switch model {
	case NoiseUniform:
		return UniformNoise(rng, magnitude), nil
	case NoiseGaussian:
		return GaussianNoise(rng, magnitude), nil
	case NoisePercentage:
		return PercentageNoise(rng, magnitude), nil
	case NoiseDrift:
		return DriftNoise(rng, magnitude), nil
	case NoiseNone:
		return NoNoise, nil
	default:
		return nil, fmt.Errorf("unknown noise model %q", string(m))
	}
}

// Config holds the world and noise parameters of a Robot.
type Config struct {
	WorldSize        float64    `json:"world_size"`        // Side of the square world, poses live in [0, WorldSize]
	MeasurementRange float64    `json:"measurement_range"` // Sensing half-width, UnlimitedRange for none
	MotionNoise      float64    `json:"motion_noise"`      // Magnitude of the noise added to each motion component
	MeasurementNoise float64    `json:"measurement_noise"` // Magnitude of the noise added to each measured offset
	NoiseModel       NoiseModel `json:"noise_model"`       // Distribution of both noises, case-insensitive
}

// Validate checks that the config describes a usable world.
func (c Config) Validate() error {
	if c.WorldSize <= 0 {
		return fmt.Errorf("%w: world size must be positive, got %.3f", ErrInvalidConfig, c.WorldSize)
	}
	if c.MeasurementRange < 0 && c.MeasurementRange != UnlimitedRange {
		return fmt.Errorf("%w: measurement range must be >= 0 or %v, got %.3f", ErrInvalidConfig, UnlimitedRange, c.MeasurementRange)
	}
	if c.MotionNoise < 0 || c.MeasurementNoise < 0 {
		return fmt.Errorf("%w: noise must be non-negative, got motion %.3f measurement %.3f", ErrInvalidConfig, c.MotionNoise, c.MeasurementNoise)
	}
	if _, err := ParseNoiseModel(string(c.NoiseModel)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Bounds returns the world bounds as [minX, maxX, minY, maxY].
func (c Config) Bounds() []float64 {
	return common.SquareBounds(c.WorldSize)
}
