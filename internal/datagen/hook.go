package datagen

import (
	"slam-datagen/internal/common"
	"slam-datagen/internal/simulation"
)

// StepEvent describes an accepted step, passed to the step hook.
type StepEvent struct {
	Attempt      int
	Step         int
	From         common.Vector // Pose before the move, where Measurements were taken
	Pose         common.Vector // Pose after the accepted move
	Landmarks    []common.Vector
	Motion       Motion
	Measurements []simulation.Measurement // Taken before the move
}

// StepHook observes accepted steps. It must not influence the generated data.
type StepHook func(StepEvent)

// Hooks fans a step out to several hooks in order. Nil hooks are skipped.
func Hooks(hooks ...StepHook) StepHook {
	return func(e StepEvent) {
		for _, h := range hooks {
			if h != nil {
				h(e)
			}
		}
	}
}

// StepRecorder keeps the events of the most recent attempt.
type StepRecorder struct {
	attempt int
	events  []StepEvent
}

// Record is a StepHook. An event from a new attempt drops the previous attempt's events.
func (r *StepRecorder) Record(e StepEvent) {
	if e.Attempt != r.attempt {
		r.attempt = e.Attempt
		r.events = nil
	}
	r.events = append(r.events, e)
}

// Events returns the recorded events of the latest attempt.
func (r *StepRecorder) Events() []StepEvent {
	return r.events
}

// Attempt returns the attempt the recorded events belong to.
func (r *StepRecorder) Attempt() int {
	return r.attempt
}
