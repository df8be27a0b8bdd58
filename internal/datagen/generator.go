package datagen

import (
	"fmt"
	"io"
	"log"
	"math/rand"
	"slices"

	"slam-datagen/internal/common"
)

// Generator produces datasets in which every landmark is observed at least once.
// A Generator is not safe for concurrent use.
type Generator struct {
	rng          *rand.Rand
	factory      SimulatorFactory
	hook         StepHook
	logger       *log.Logger
	maxAttempts  int
	maxResamples int
}

// New creates a generator. Without options it drives simulation.Robot with
// the default seed and discards its log output.
func New(opts ...Option) *Generator {
	g := &Generator{
		factory:      RobotFactory,
		logger:       log.New(io.Discard, "", 0),
		maxAttempts:  DefaultMaxAttempts,
		maxResamples: DefaultMaxResamples,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rngFromSeed(0)
	}
	return g
}

// Generate runs attempts until one observes every landmark within p.N-1 steps.
// It returns ErrCoverageIncomplete once the attempt budget is spent and
// ErrMotionStuck if a step cannot find an admissible heading.
func (g *Generator) Generate(p Params) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	sampler := NewHeadingSampler(g.rng, p.Distance)
	coverage := NewCoverageTracker(p.NumLandmarks)

	for attempt := 1; attempt <= g.maxAttempts; attempt++ {
		res, err := g.runAttempt(attempt, p, sampler, coverage)
		if err != nil {
			return nil, err
		}
		if coverage.IsComplete() {
			res.Attempts = attempt
			g.logger.Printf("attempt %d accepted: %d steps, %d resamples", attempt, len(res.Data), res.Resamples)
			g.logger.Printf("landmarks: %v", res.Landmarks())
			g.logger.Printf("%v", res.Robot)
			return res, nil
		}
		g.logger.Printf("attempt %d rejected: observed %d/%d landmarks, missing %v",
			attempt, coverage.Seen(), p.NumLandmarks, coverage.Missing())
	}

	return nil, fmt.Errorf("%w: %d attempts, last one missed landmarks %v",
		ErrCoverageIncomplete, g.maxAttempts, coverage.Missing())
}

// runAttempt drives one fresh world for p.N-1 steps, recording coverage into
// coverage. The caller decides whether the attempt is accepted.
func (g *Generator) runAttempt(attempt int, p Params, sampler *HeadingSampler, coverage *CoverageTracker) (*Result, error) {
	sim, err := g.factory(p.SimulationConfig(), g.rng)
	if err != nil {
		return nil, fmt.Errorf("attempt %d: create simulator: %w", attempt, err)
	}
	g.logger.Printf("attempt %d: robot starts at %s", attempt, sim.Position())
	if err := sim.PlaceLandmarks(p.NumLandmarks); err != nil {
		return nil, fmt.Errorf("attempt %d: place landmarks: %w", attempt, err)
	}
	coverage.Reset()

	notify := p.Visualize && g.hook != nil
	var landmarks []common.Vector
	if notify {
		landmarks = sim.Landmarks()
	}

	res := &Result{
		Data:       make(Dataset, 0, p.N-1),
		Robot:      sim,
		Trajectory: make([]common.Vector, 0, p.N),
	}
	res.Trajectory = append(res.Trajectory, sim.Position())

	// The accepted motion of a step is the first candidate of the next one.
	motion := sampler.Sample()
	for k := 0; k < p.N-1; k++ {
		from := res.Trajectory[len(res.Trajectory)-1]
		z := sim.Sense()
		for _, m := range z {
			coverage.MarkSeen(m.Index)
		}

		rejected := 0
		for !sim.Move(motion.DX, motion.DY) {
			rejected++
			if rejected > g.maxResamples {
				return nil, fmt.Errorf("%w: attempt %d step %d rejected %d headings of length %.3f",
					ErrMotionStuck, attempt, k, rejected, p.Distance)
			}
			motion = sampler.Sample()
		}
		res.Resamples += rejected

		pose := sim.Position()
		res.Trajectory = append(res.Trajectory, pose)
		if notify {
			// The hook gets its own copies so it cannot reach into res
			g.hook(StepEvent{
				Attempt:      attempt,
				Step:         k,
				From:         from.Clone(),
				Pose:         pose.Clone(),
				Landmarks:    cloneVectors(landmarks),
				Motion:       motion,
				Measurements: slices.Clone(z),
			})
		}
		res.Data = append(res.Data, Step{Measurements: z, Motion: motion})
	}
	return res, nil
}

func cloneVectors(vs []common.Vector) []common.Vector {
	out := make([]common.Vector, len(vs))
	for i, v := range vs {
		out[i] = v.Clone()
	}
	return out
}
