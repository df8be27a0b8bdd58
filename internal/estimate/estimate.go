// Package estimate reshapes flattened SLAM estimates and compares them with
// the ground truth of a generated run.
//
// Estimates use the interleaved layout expected by the downstream solver:
// N poses first, then the landmarks, each as consecutive x, y entries.
//
//	mu = [x0, y0, x1, y1, ..., x(N-1), y(N-1), lx0, ly0, ..., lx(L-1), ly(L-1)]
package estimate

import (
	"fmt"
	"io"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"slam-datagen/internal/common"
	"slam-datagen/internal/datagen"
)

// PosesAndLandmarks splits mu into n poses and numLandmarks landmarks.
// The shape of mu is not checked; a short vector panics like any out of range AtVec.
func PosesAndLandmarks(mu mat.Vector, n, numLandmarks int) (poses, landmarks []common.Vector) {
	poses = make([]common.Vector, n)
	for i := 0; i < n; i++ {
		poses[i] = common.NewVector2(mu.AtVec(2*i), mu.AtVec(2*i+1))
	}
	landmarks = make([]common.Vector, numLandmarks)
	for i := 0; i < numLandmarks; i++ {
		landmarks[i] = common.NewVector2(mu.AtVec(2*(n+i)), mu.AtVec(2*(n+i)+1))
	}
	return poses, landmarks
}

// Flatten is the inverse of PosesAndLandmarks.
func Flatten(poses, landmarks []common.Vector) *mat.VecDense {
	mu := mat.NewVecDense(2*(len(poses)+len(landmarks)), nil)
	for i, p := range append(append([]common.Vector{}, poses...), landmarks...) {
		mu.SetVec(2*i, p.X())
		mu.SetVec(2*i+1, p.Y())
	}
	return mu
}

// FormatAll writes poses and landmarks as bracketed rows with three decimals.
func FormatAll(w io.Writer, poses, landmarks []common.Vector) error {
	if _, err := fmt.Fprint(w, "\nEstimated Poses:\n"); err != nil {
		return err
	}
	for _, p := range poses {
		if _, err := fmt.Fprintln(w, p); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprint(w, "\nEstimated Landmarks:\n"); err != nil {
		return err
	}
	for _, l := range landmarks {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}

// LocalizationError returns the mean and maximum Euclidean distance between
// paired true and estimated positions.
func LocalizationError(truth, estimated []common.Vector) (mean, worst float64, err error) {
	if len(truth) != len(estimated) {
		return 0, 0, fmt.Errorf("cannot compare %d true positions with %d estimates", len(truth), len(estimated))
	}
	if len(truth) == 0 {
		return 0, 0, fmt.Errorf("cannot calculate error with no positions")
	}
	dists := make([]float64, len(truth))
	for i := range truth {
		d, err := truth[i].Distance(estimated[i])
		if err != nil {
			return 0, 0, fmt.Errorf("position %d: %w", i, err)
		}
		dists[i] = d
		worst = math.Max(worst, d)
	}
	return stat.Mean(dists, nil), worst, nil
}

// OdometryBaseline builds a flattened estimate by dead reckoning: poses
// integrate the commanded motions from start, and each landmark is the mean
// of pose+offset over all its observations. Unobserved landmarks are NaN.
// It is a reference point for solver output, not a solver. start must be 2D.
func OdometryBaseline(data datagen.Dataset, start common.Vector, numLandmarks int) (*mat.VecDense, error) {
	n := len(data) + 1
	poses := make([]common.Vector, n)
	poses[0] = start.Clone()
	xs := make([][]float64, numLandmarks) // Per landmark x of every sighting
	ys := make([][]float64, numLandmarks)
	for k, step := range data {
		pose := poses[k]
		for _, m := range step.Measurements {
			if m.Index < 0 || m.Index >= numLandmarks {
				continue
			}
			seen, err := pose.Add(common.NewVector2(m.DX, m.DY))
			if err != nil {
				return nil, fmt.Errorf("step %d landmark %d: %w", k, m.Index, err)
			}
			xs[m.Index] = append(xs[m.Index], seen.X())
			ys[m.Index] = append(ys[m.Index], seen.Y())
		}
		next, err := pose.Add(common.NewVector2(step.Motion.DX, step.Motion.DY))
		if err != nil {
			return nil, fmt.Errorf("step %d motion: %w", k, err)
		}
		poses[k+1] = next
	}

	landmarks := make([]common.Vector, numLandmarks)
	for i := range landmarks {
		if len(xs[i]) == 0 {
			landmarks[i] = common.NewVector2(math.NaN(), math.NaN())
			continue
		}
		landmarks[i] = common.NewVector2(stat.Mean(xs[i], nil), stat.Mean(ys[i], nil))
	}
	return Flatten(poses, landmarks), nil
}
