package datagen

import (
	"math/rand"

	"slam-datagen/internal/common"
	"slam-datagen/internal/simulation"
)

// Simulator is the world a generation attempt drives. simulation.Robot is
// the default implementation.
type Simulator interface {
	// PlaceLandmarks creates n fixed landmarks. It is called once, before any step.
	PlaceLandmarks(n int) error
	// Sense returns the noisy offsets to every landmark currently in range.
	Sense() []simulation.Measurement
	// Move tries to displace the agent by (dx, dy) plus noise and reports
	// whether it stayed in the world. A rejected move must not change the pose.
	Move(dx, dy float64) bool
	// Position returns the current pose.
	Position() common.Vector
	// Landmarks returns the landmark positions.
	Landmarks() []common.Vector
}

// SimulatorFactory builds a fresh simulator for one attempt.
type SimulatorFactory func(cfg simulation.Config, rng *rand.Rand) (Simulator, error)

// RobotFactory builds a simulation.Robot.
func RobotFactory(cfg simulation.Config, rng *rand.Rand) (Simulator, error) {
	r, err := simulation.New(cfg, rng)
	if err != nil {
		return nil, err
	}
	return r, nil
}

var _ Simulator = (*simulation.Robot)(nil)
