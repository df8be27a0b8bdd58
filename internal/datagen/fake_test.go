package datagen_test

import (
	"math/rand"

	"slam-datagen/internal/common"
	"slam-datagen/internal/datagen"
	"slam-datagen/internal/simulation"
)

// scriptedSim is a Simulator whose measurements and move outcomes are canned.
type scriptedSim struct {
	attempt   int
	step      int
	pos       common.Vector
	landmarks []common.Vector
	visible   func(attempt, step int) []int
	rejectN   int // moves rejected at the start of every step
	rejected  int
	accepted  []datagen.Motion
	moveCalls int
}

func (s *scriptedSim) PlaceLandmarks(n int) error {
	s.landmarks = make([]common.Vector, n)
	for i := range s.landmarks {
		s.landmarks[i] = common.NewVector2(float64(i), float64(i))
	}
	return nil
}

func (s *scriptedSim) Sense() []simulation.Measurement {
	var z []simulation.Measurement
	for _, i := range s.visible(s.attempt, s.step) {
		z = append(z, simulation.Measurement{Index: i, DX: float64(i), DY: float64(s.step)})
	}
	return z
}

func (s *scriptedSim) Move(dx, dy float64) bool {
	s.moveCalls++
	if s.rejectN < 0 || s.rejected < s.rejectN {
		s.rejected++
		return false
	}
	s.rejected = 0
	s.step++
	s.pos = common.NewVector2(s.pos.X()+dx, s.pos.Y()+dy)
	s.accepted = append(s.accepted, datagen.Motion{DX: dx, DY: dy})
	return true
}

func (s *scriptedSim) Position() common.Vector    { return s.pos.Clone() }
func (s *scriptedSim) Landmarks() []common.Vector { return s.landmarks }

// scriptedFactory hands out a new scriptedSim per attempt and keeps them all.
type scriptedFactory struct {
	visible func(attempt, step int) []int
	rejectN int
	sims    []*scriptedSim
}

func (f *scriptedFactory) build(_ simulation.Config, _ *rand.Rand) (datagen.Simulator, error) {
	s := &scriptedSim{
		attempt: len(f.sims) + 1,
		pos:     common.NewVector2(0, 0),
		visible: f.visible,
		rejectN: f.rejectN,
	}
	f.sims = append(f.sims, s)
	return s, nil
}

func (f *scriptedFactory) last() *scriptedSim {
	return f.sims[len(f.sims)-1]
}

// allFrom returns a visibility script that sees every one of n landmarks from attempt onwards
// and only landmark 0 before.
func allFrom(attempt, n int) func(int, int) []int {
	return func(a, _ int) []int {
		if a < attempt {
			return []int{0}
		}
		out := make([]int, n)
		for i := range out {
			out[i] = i
		}
		return out
	}
}
