package datagen

import "errors"

var (
	// ErrInvalidParams is returned when generation parameters cannot describe a run.
	ErrInvalidParams = errors.New("datagen: invalid params")

	// ErrCoverageIncomplete is returned when no attempt within the attempt
	// budget observed every landmark.
	ErrCoverageIncomplete = errors.New("datagen: landmark coverage not achieved")

	// ErrMotionStuck is returned when a step rejects more headings than the
	// resample budget allows, usually because distance is too large for the world.
	ErrMotionStuck = errors.New("datagen: no admissible motion found")
)
