package simulation

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"slam-datagen/internal/common"
)

// Robot is a point agent in a square world with a set of fixed landmarks.
// It starts at the centre of the world and moves only when the noisy
// destination stays inside the world.
type Robot struct {
	id          string          // Unique identifier, robot-<uuid prefix>
	bounds      []float64       // [0, WorldSize] on both axes
	position    common.Vector   // Current true pose
	landmarks   []common.Vector // True landmark positions on the integer grid
	placed      bool            // Set once PlaceLandmarks succeeded
	sensor      *Sensor
	motionNoise NoiseFunction // Applied to each component of a commanded motion
	rng         *rand.Rand    // Landmark placement
}

// New creates a robot at the centre of the world described by cfg.
// All randomness (landmark placement and noise) is drawn from rng.
func New(cfg Config, rng *rand.Rand) (*Robot, error) {
	if rng == nil {
		return nil, ErrNeedRandSource
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	motionNoise, err := cfg.NoiseModel.Func(rng, cfg.MotionNoise)
	if err != nil {
		return nil, fmt.Errorf("motion noise: %w", err)
	}
	measurementNoise, err := cfg.NoiseModel.Func(rng, cfg.MeasurementNoise)
	if err != nil {
		return nil, fmt.Errorf("measurement noise: %w", err)
	}
	return &Robot{
		id:          fmt.Sprintf("robot-%s", uuid.NewString()[:8]),
		bounds:      cfg.Bounds(),
		position:    common.NewVector2(cfg.WorldSize/2, cfg.WorldSize/2),
		sensor:      NewSensor(cfg.MeasurementRange, measurementNoise),
		motionNoise: motionNoise,
		rng:         rng,
	}, nil
}

// GetID returns the unique identifier of the robot.
func (r *Robot) GetID() string {
	return r.id
}

// Position returns the current pose of the robot.
func (r *Robot) Position() common.Vector {
	return r.position.Clone()
}

// Landmarks returns a copy of the landmark positions.
func (r *Robot) Landmarks() []common.Vector {
	out := make([]common.Vector, len(r.landmarks))
	for i, lm := range r.landmarks {
		out[i] = lm.Clone()
	}
	return out
}

// PlaceLandmarks scatters n landmarks over the integer grid of the world.
// It may be called only once per robot.
func (r *Robot) PlaceLandmarks(n int) error {
	if r.placed {
		return ErrLandmarksPlaced
	}
	if n < 0 {
		return fmt.Errorf("%w: landmark count must be non-negative, got %d", ErrInvalidConfig, n)
	}
	landmarks := make([]common.Vector, 0, n)
	for i := 0; i < n; i++ {
		pos, err := common.NewRandomVector(r.rng, 2, r.bounds)
		if err != nil {
			return fmt.Errorf("failed to generate random position for landmark %d: %w", i, err)
		}
		landmarks = append(landmarks, pos.Round()) // Landmarks sit on integer coordinates
	}
	r.landmarks = landmarks
	r.placed = true
	return nil
}

// Sense measures the noisy offset to every landmark within range of the current pose.
func (r *Robot) Sense() []Measurement {
	return r.sensor.Measure(r.position, r.landmarks)
}

// Move applies motion noise to (dx, dy) and moves the robot if the result
// stays inside the world. It reports whether the move was accepted; a
// rejected move leaves the pose unchanged.
func (r *Robot) Move(dx, dy float64) bool {
	step := common.NewVector2(r.motionNoise(dx), r.motionNoise(dy)) // Noise first, then the bounds check
	next, err := r.position.Add(step)
	if err != nil || !next.Within(r.bounds) {
		return false // Rejected, the pose stays where it was
	}
	r.position = next
	return true
}

// String representation for logging
func (r *Robot) String() string {
	return fmt.Sprintf("Robot[%s]: [x=%.5f y=%.5f] %s", r.GetID(), r.position.X(), r.position.Y(), r.sensor)
}
