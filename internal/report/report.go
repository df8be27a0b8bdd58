// Package report prints a human readable account of an accepted run.
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"slam-datagen/internal/config"
	"slam-datagen/internal/datagen"
	"slam-datagen/internal/estimate"
)

// Write prints the accepted run: world state, dataset statistics, the first
// dataset entries and, if enabled, the odometry baseline with its error.
func Write(w io.Writer, cfg config.AppConfig, res *datagen.Result) error {
	p := cfg.Params
	s := datagen.Summarize(res.Data)

	var b strings.Builder
	fmt.Fprintf(&b, "Accepted attempt %d (%d heading resamples)\n", res.Attempts, res.Resamples)
	fmt.Fprintf(&b, "Landmarks: %v\n", res.Landmarks())
	fmt.Fprintf(&b, "%v\n\n", res.Robot)

	fmt.Fprintf(&b, "Steps: %d, measurements: %d (%.2f ± %.2f per step, min %d, max %d)\n",
		s.Steps, s.Measurements, s.MeanPerStep, s.StdDevPerStep, s.MinPerStep, s.MaxPerStep)
	fmt.Fprintf(&b, "Mean motion length: %.3f\n", s.MeanMotionLength)
	indices := make([]int, 0, len(s.ObservationsPerIndex))
	for i := range s.ObservationsPerIndex {
		indices = append(indices, i)
	}
	sort.Ints(indices)
	for _, i := range indices {
		fmt.Fprintf(&b, "  landmark %d observed %d times\n", i, s.ObservationsPerIndex[i])
	}

	shown := cfg.Output.PrintSteps
	if shown < 0 || shown > len(res.Data) {
		shown = len(res.Data)
	}
	for k := 0; k < shown; k++ {
		step := res.Data[k]
		fmt.Fprintf(&b, "\nStep %d\n  Measurements: %v\n  Motion: %s\n", k, step.Measurements, step.Motion)
	}

	if cfg.Output.Baseline {
		mu, err := estimate.OdometryBaseline(res.Data, res.Trajectory[0], p.NumLandmarks)
		if err != nil {
			return err
		}
		poses, landmarks := estimate.PosesAndLandmarks(mu, p.N, p.NumLandmarks)
		fmt.Fprint(&b, "\nOdometry baseline:")
		if err := estimate.FormatAll(&b, poses, landmarks); err != nil {
			return err
		}
		poseErr, poseWorst, err := estimate.LocalizationError(res.Trajectory, poses)
		if err != nil {
			return err
		}
		lmErr, lmWorst, err := estimate.LocalizationError(res.Landmarks(), landmarks)
		if err != nil {
			return err
		}
		fmt.Fprintf(&b, "\nBaseline pose error: mean %.3f, max %.3f\n", poseErr, poseWorst)
		fmt.Fprintf(&b, "Baseline landmark error: mean %.3f, max %.3f\n", lmErr, lmWorst)
	}

	_, err := io.WriteString(w, b.String())
	return err
}
