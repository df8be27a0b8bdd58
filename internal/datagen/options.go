package datagen

import (
	"io"
	"log"
	"math/rand"
)

const (
	// DefaultMaxAttempts bounds how many fresh worlds are tried before giving up on coverage.
	DefaultMaxAttempts = 1000
	// DefaultMaxResamples bounds how many headings a single step may reject.
	DefaultMaxResamples = 10000

	// defaultSeed is used when no rand source is configured or seed 0 is given.
	defaultSeed int64 = 1
)

// Option customizes a Generator.
type Option func(*Generator)

// WithRand sets the rand source shared by heading sampling and the simulator.
// Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("datagen: WithRand(nil)")
	}
	return func(g *Generator) {
		g.rng = r
	}
}

// WithSeed seeds a new rand source. Seed 0 selects the default seed.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.rng = rngFromSeed(seed)
	}
}

// WithSimulatorFactory replaces the simulator built for every attempt. Panics on nil.
func WithSimulatorFactory(f SimulatorFactory) Option {
	if f == nil {
		panic("datagen: WithSimulatorFactory(nil)")
	}
	return func(g *Generator) {
		g.factory = f
	}
}

// WithStepHook sets the hook called after every accepted step when Params.Visualize is set.
func WithStepHook(h StepHook) Option {
	return func(g *Generator) {
		g.hook = h
	}
}

// WithLogger sets the progress logger. Nil discards output.
func WithLogger(l *log.Logger) Option {
	return func(g *Generator) {
		if l == nil {
			l = log.New(io.Discard, "", 0)
		}
		g.logger = l
	}
}

// WithMaxAttempts bounds the number of attempts. Panics if n < 1.
func WithMaxAttempts(n int) Option {
	if n < 1 {
		panic("datagen: WithMaxAttempts(n < 1)")
	}
	return func(g *Generator) {
		g.maxAttempts = n
	}
}

// WithMaxResamples bounds the rejected headings allowed per step. Panics if n < 0.
func WithMaxResamples(n int) Option {
	if n < 0 {
		panic("datagen: WithMaxResamples(n < 0)")
	}
	return func(g *Generator) {
		g.maxResamples = n
	}
}

func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(seed))
}
