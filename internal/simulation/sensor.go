package simulation

import (
	"fmt"
	"math"
	"math/rand"

	opensimplex "github.com/ojrac/opensimplex-go"

	"slam-datagen/internal/common"
)

// UnlimitedRange disables the sensing range check when used as a measurement range.
const UnlimitedRange = -1.0

// NoiseFunction defines a function signature for adding noise to a value.
// It takes the true value and returns the noisy value.
type NoiseFunction func(value float64) float64

// Measurement is a noisy offset from the robot to landmark Index.
type Measurement struct {
	Index int     `json:"index"` // Landmark index, 0-based
	DX    float64 `json:"dx"`    // Noisy landmark x minus robot x
	DY    float64 `json:"dy"`    // Noisy landmark y minus robot y
}

// String representation for logging
func (m Measurement) String() string {
	return fmt.Sprintf("[%d, %.3f, %.3f]", m.Index, m.DX, m.DY)
}

// Sensor measures relative landmark offsets within a square window around the robot.
type Sensor struct {
	rangeLimit float64       // Half-width of the sensing window, UnlimitedRange for none
	noiseFunc  NoiseFunction // Function to add noise to each offset component
}

// NewSensor creates a sensor with the given range and noise.
// A nil noise function leaves offsets untouched.
func NewSensor(rangeLimit float64, noise NoiseFunction) *Sensor {
	return &Sensor{
		rangeLimit: rangeLimit,
		noiseFunc:  noise,
	}
}

// Range returns the sensing window half-width.
func (s *Sensor) Range() float64 {
	return s.rangeLimit
}

// Unlimited reports whether the sensor sees every landmark.
func (s *Sensor) Unlimited() bool {
	return s.rangeLimit == UnlimitedRange
}

// Measure returns one Measurement per landmark whose noisy offset from pose
// falls inside the sensing window, in landmark index order.
func (s *Sensor) Measure(pose common.Vector, landmarks []common.Vector) []Measurement {
	measurements := make([]Measurement, 0, len(landmarks))
	for i, lm := range landmarks {
		offset, err := lm.Subtract(pose)
		if err != nil {
			continue // Not a 2D landmark, nothing to measure
		}
		dx := s.noisy(offset.X())
		dy := s.noisy(offset.Y())
		// Window test on the noisy offsets, so noise can move a landmark in or out of view
		if !s.Unlimited() && (math.Abs(dx) > s.Range() || math.Abs(dy) > s.Range()) {
			continue
		}
		measurements = append(measurements, Measurement{Index: i, DX: dx, DY: dy})
	}
	return measurements
}

func (s *Sensor) noisy(v float64) float64 {
	if s.noiseFunc == nil {
		return v
	}
	return s.noiseFunc(v)
}

// String representation for logging
func (s *Sensor) String() string {
	if s.Unlimited() {
		return "Sensor Range: unlimited"
	}
	return fmt.Sprintf("Sensor Range: %.2f", s.Range())
}

// --- Noise Functions ---

// NoNoise is a NoiseFunction that adds no noise.
func NoNoise(value float64) float64 {
	return value
}

// GaussianNoise creates a NoiseFunction that adds Gaussian (normal) noise drawn from rng.
func GaussianNoise(rng *rand.Rand, stdDev float64) NoiseFunction {
	if stdDev < 0 {
		stdDev = 0
	}
	return func(value float64) float64 {
		return value + rng.NormFloat64()*stdDev
	}
}

// UniformNoise creates a NoiseFunction that adds uniform noise within [-maxDelta, +maxDelta).
func UniformNoise(rng *rand.Rand, maxDelta float64) NoiseFunction {
	if maxDelta < 0 {
		maxDelta = 0
	}
	return func(value float64) float64 {
		return value + (rng.Float64()*2-1)*maxDelta
	}
}

// PercentageNoise creates a NoiseFunction that adds uniform noise proportional to |value|.
// percentage is e.g., 0.05 for 5% noise.
func PercentageNoise(rng *rand.Rand, percentage float64) NoiseFunction {
	if percentage < 0 {
		percentage = 0
	}
	return func(value float64) float64 {
		noiseMagnitude := math.Abs(value) * percentage
		return value + (rng.Float64()*2-1)*noiseMagnitude
	}
}

// driftStep is how far along the noise field each DriftNoise call moves.
const driftStep = 0.05

// DriftNoise creates a NoiseFunction whose offsets follow a slowly varying
// simplex noise field scaled to [-maxDelta, maxDelta]. Consecutive calls are
// correlated, which models bias that wanders over time. The field is seeded from rng.
func DriftNoise(rng *rand.Rand, maxDelta float64) NoiseFunction {
	if maxDelta < 0 {
		maxDelta = 0
	}
	field := opensimplex.New(rng.Int63())
	t := 0.0
	return func(value float64) float64 {
		t += driftStep
		return value + field.Eval2(t, 0)*maxDelta
	}
}
