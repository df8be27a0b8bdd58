package datagen

import (
	"fmt"
	"math"
	"math/rand"

	"slam-datagen/internal/common"
)

// Motion is an attempted displacement of the robot.
type Motion struct {
	DX float64 `json:"dx"`
	DY float64 `json:"dy"`
}

// String representation for logging
func (m Motion) String() string {
	return fmt.Sprintf("[%.3f, %.3f]", m.DX, m.DY)
}

// HeadingSampler turns uniformly drawn headings into motions of a fixed length.
type HeadingSampler struct {
	rng      *rand.Rand
	distance float64 // Length of every sampled motion
}

// NewHeadingSampler creates a sampler drawing headings from rng.
func NewHeadingSampler(rng *rand.Rand, distance float64) *HeadingSampler {
	return &HeadingSampler{rng: rng, distance: distance}
}

// Sample draws a heading in [0, 2π) and returns the motion of length distance along it.
func (h *HeadingSampler) Sample() Motion {
	orientation := h.rng.Float64() * 2.0 * math.Pi
	v := common.NewVector2(math.Cos(orientation), math.Sin(orientation)).MultiplyByScalar(h.distance)
	return Motion{DX: v.X(), DY: v.Y()}
}
