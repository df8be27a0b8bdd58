// Package plotting draws the robot world to image files with gonum/plot.
// It serves as a headless step hook and as a summary trajectory plot.
package plotting

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"slam-datagen/internal/common"
	"slam-datagen/internal/datagen"
)

var (
	robotColor    = color.RGBA{R: 220, A: 255}
	landmarkColor = color.RGBA{R: 128, B: 128, A: 255}
	motionColor   = color.RGBA{A: 255}
	trailColor    = color.RGBA{R: 220, A: 120}
)

// DefaultSize is the side of the square images written by this package.
const DefaultSize = 6 * vg.Inch

func toXYs(points []common.Vector) plotter.XYs {
	xys := make(plotter.XYs, len(points))
	for i, p := range points {
		xys[i].X = p.X()
		xys[i].Y = p.Y()
	}
	return xys
}

// worldPlot builds a plot of the world with landmarks, the trail so far,
// the robot and its last motion. motion may be nil.
func worldPlot(title string, worldSize float64, trail, landmarks []common.Vector, motion *datagen.Motion) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(plotter.NewGrid())

	if len(landmarks) > 0 {
		s, err := plotter.NewScatter(toXYs(landmarks))
		if err != nil {
			return nil, fmt.Errorf("landmarks: %w", err)
		}
		s.GlyphStyle.Shape = draw.CrossGlyph{}
		s.GlyphStyle.Color = landmarkColor
		s.GlyphStyle.Radius = vg.Points(5)
		p.Add(s)
		p.Legend.Add("landmarks", s)
	}

	if len(trail) > 1 {
		l, err := plotter.NewLine(toXYs(trail))
		if err != nil {
			return nil, fmt.Errorf("trail: %w", err)
		}
		l.LineStyle.Color = trailColor
		l.LineStyle.Width = vg.Points(1)
		p.Add(l)
	}

	if len(trail) > 0 {
		pose := trail[len(trail)-1]
		if motion != nil {
			arrow, err := plotter.NewLine(plotter.XYs{
				{X: pose.X(), Y: pose.Y()},
				{X: pose.X() + motion.DX, Y: pose.Y() + motion.DY},
			})
			if err != nil {
				return nil, fmt.Errorf("motion: %w", err)
			}
			arrow.LineStyle.Color = motionColor
			arrow.LineStyle.Width = vg.Points(1.5)
			p.Add(arrow)
		}
		r, err := plotter.NewScatter(plotter.XYs{{X: pose.X(), Y: pose.Y()}})
		if err != nil {
			return nil, fmt.Errorf("robot: %w", err)
		}
		r.GlyphStyle.Shape = draw.CircleGlyph{}
		r.GlyphStyle.Color = robotColor
		r.GlyphStyle.Radius = vg.Points(5)
		p.Add(r)
		p.Legend.Add("robot", r)
	}

	// Add widens the axes to the data, so the world limits are set last.
	p.X.Min, p.X.Max = 0, worldSize
	p.Y.Min, p.Y.Max = 0, worldSize
	return p, nil
}

// Snapshotter is a step hook that keeps the steps of the latest attempt and,
// on Write, renders one PNG per step into a directory. Rejected attempts are
// replaced by the next one and never reach the disk.
type Snapshotter struct {
	dir       string
	worldSize float64
	size      vg.Length // Side of every image

	recorder datagen.StepRecorder
}

// NewSnapshotter creates the output directory and returns a hook writing into it.
func NewSnapshotter(dir string, worldSize float64) (*Snapshotter, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create snapshot dir %q: %w", dir, err)
	}
	return &Snapshotter{
		dir:       dir,
		worldSize: worldSize,
		size:      DefaultSize,
	}, nil
}

// Hook is a datagen.StepHook.
func (s *Snapshotter) Hook(e datagen.StepEvent) {
	s.recorder.Record(e)
}

// Write renders the recorded attempt, one image per step, and returns the
// paths in step order. Call it once Generate has accepted an attempt.
func (s *Snapshotter) Write() ([]string, error) {
	events := s.recorder.Events()
	files := make([]string, 0, len(events))
	var trail []common.Vector
	for _, e := range events {
		if trail == nil {
			trail = []common.Vector{e.From} // Start pose of the attempt
		}
		trail = append(trail, e.Pose)

		title := fmt.Sprintf("attempt %d, step %d", e.Attempt, e.Step+1)
		p, err := worldPlot(title, s.worldSize, trail, e.Landmarks, &e.Motion)
		if err != nil {
			return files, err
		}
		path := filepath.Join(s.dir, fmt.Sprintf("attempt%03d_step%04d.png", e.Attempt, e.Step+1))
		if err := p.Save(s.size, s.size, path); err != nil {
			return files, fmt.Errorf("save %q: %w", path, err)
		}
		files = append(files, path)
	}
	return files, nil
}

// SaveTrajectory writes a plot of a whole run to path; the format follows the extension.
func SaveTrajectory(path string, worldSize float64, trajectory, landmarks []common.Vector) error {
	p, err := worldPlot("trajectory", worldSize, nil, landmarks, nil)
	if err != nil {
		return err
	}
	if len(trajectory) > 0 {
		if err := plotutil.AddLinePoints(p, "trajectory", toXYs(trajectory)); err != nil {
			return fmt.Errorf("trajectory: %w", err)
		}
	}
	p.X.Min, p.X.Max = 0, worldSize
	p.Y.Min, p.Y.Max = 0, worldSize
	if err := p.Save(DefaultSize, DefaultSize, path); err != nil {
		return fmt.Errorf("save %q: %w", path, err)
	}
	return nil
}
