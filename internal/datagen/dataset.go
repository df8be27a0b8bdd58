package datagen

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"slam-datagen/internal/common"
	"slam-datagen/internal/simulation"
)

// Step is one dataset entry: what the robot sensed, then how it moved.
type Step struct {
	Measurements []simulation.Measurement `json:"measurements"`
	Motion       Motion                   `json:"motion"`
}

// Dataset is the chronological sequence of steps of an accepted attempt.
type Dataset []Step

// Coverage returns a tracker with every landmark index measured in d marked as seen.
func (d Dataset) Coverage(numLandmarks int) *CoverageTracker {
	c := NewCoverageTracker(numLandmarks)
	for _, step := range d {
		for _, m := range step.Measurements {
			c.MarkSeen(m.Index)
		}
	}
	return c
}

// Result is an accepted dataset together with the state needed to report on it.
type Result struct {
	Data       Dataset
	Robot      Simulator       // Final simulator state of the accepted attempt
	Trajectory []common.Vector // True poses, starting pose first, N entries
	Attempts   int             // Attempts run, including the accepted one
	Resamples  int             // Rejected headings in the accepted attempt
}

// FinalPose returns the pose of the robot after the last step.
func (r *Result) FinalPose() common.Vector {
	return r.Robot.Position()
}

// Landmarks returns the landmark positions of the accepted attempt.
func (r *Result) Landmarks() []common.Vector {
	return r.Robot.Landmarks()
}

// Summary holds descriptive statistics of a dataset.
type Summary struct {
	Steps                int     // Dataset entries
	Measurements         int     // Measurements over all entries
	MeanPerStep          float64 // Measurements per entry
	StdDevPerStep        float64 // Sample standard deviation, 0 for a single entry
	MinPerStep           int
	MaxPerStep           int
	MeanMotionLength     float64
	ObservationsPerIndex map[int]int // Landmark index -> times measured
}

// Summarize computes measurement and motion statistics of d.
func Summarize(d Dataset) Summary {
	s := Summary{
		Steps:                len(d),
		ObservationsPerIndex: make(map[int]int),
	}
	if len(d) == 0 {
		return s
	}
	counts := make([]float64, len(d))
	lengths := make([]float64, len(d))
	s.MinPerStep = math.MaxInt
	for i, step := range d {
		n := len(step.Measurements)
		counts[i] = float64(n)
		lengths[i] = common.NewVector2(step.Motion.DX, step.Motion.DY).Norm()
		s.Measurements += n
		s.MinPerStep = min(s.MinPerStep, n)
		s.MaxPerStep = max(s.MaxPerStep, n)
		for _, m := range step.Measurements {
			s.ObservationsPerIndex[m.Index]++
		}
	}
	// MeanStdDev divides by n-1, a single step has no spread
	if len(d) > 1 {
		s.MeanPerStep, s.StdDevPerStep = stat.MeanStdDev(counts, nil)
	} else {
		s.MeanPerStep = counts[0]
	}
	s.MeanMotionLength = stat.Mean(lengths, nil)
	return s
}
