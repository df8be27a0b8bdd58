package visualization

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"slam-datagen/internal/datagen"
)

const (
	robotRadiusOnScreen = 6.0  // Robot marker radius in pixels
	landmarkArmOnScreen = 6.0  // Half-length of a landmark cross in pixels
	padding             = 40.0 // Space between the world square and the window edge
	defaultTicksPerStep = 15   // Ebiten ticks each recorded step stays on screen
	maxGridLines        = 20
)

var (
	backgroundColor  = color.RGBA{60, 60, 68, 255}
	gridColor        = color.RGBA{255, 255, 255, 60}
	borderColor      = color.RGBA{255, 255, 255, 200}
	robotColor       = color.RGBA{230, 40, 40, 255}
	trailColor       = color.RGBA{230, 40, 40, 110}
	landmarkColor    = color.RGBA{170, 90, 220, 255}
	measurementColor = color.RGBA{120, 200, 120, 120}
	motionColor      = color.RGBA{0, 0, 0, 255}
)

// Renderer implements ebiten.Game and replays the recorded steps of an attempt.
type Renderer struct {
	worldSize float64
	events    []datagen.StepEvent

	current       int // Index of the step on screen
	tick          int
	ticksPerStep  int
	screenWidth   int
	screenHeight  int
	scale         float64
	offsetX       float64
	offsetY       float64
	finishedCycle bool
}

// NewRenderer creates a renderer replaying events in a world of side worldSize.
func NewRenderer(worldSize float64, events []datagen.StepEvent) *Renderer {
	return &Renderer{
		worldSize:    worldSize,
		events:       events,
		ticksPerStep: defaultTicksPerStep,
	}
}

// SetTicksPerStep changes the replay speed. Values below 1 are ignored.
func (r *Renderer) SetTicksPerStep(n int) {
	if n >= 1 {
		r.ticksPerStep = n
	}
}

// Update is called every tick and advances the replay.
func (r *Renderer) Update() error {
	if len(r.events) == 0 {
		return nil
	}
	r.tick++
	if r.tick < r.ticksPerStep {
		return nil
	}
	r.tick = 0
	if r.current < len(r.events)-1 {
		r.current++
	} else {
		r.finishedCycle = true
	}
	return nil
}

// calculateTransform fits the world square into the window, keeping the aspect ratio.
func (r *Renderer) calculateTransform() {
	usable := math.Min(float64(r.screenWidth), float64(r.screenHeight)) - 2*padding
	if usable <= 0 || r.worldSize <= 0 {
		r.scale = 1
	} else {
		r.scale = usable / r.worldSize
	}
	side := r.worldSize * r.scale
	r.offsetX = (float64(r.screenWidth) - side) / 2
	r.offsetY = (float64(r.screenHeight) + side) / 2 // Screen y of world y = 0
}

// worldToScreen converts world coordinates to screen coordinates. Ebiten's y
// axis points down, the world's points up.
func (r *Renderer) worldToScreen(x, y float64) (float32, float32) {
	return float32(x*r.scale + r.offsetX), float32(r.offsetY - y*r.scale)
}

// Draw is called every frame to render the world at the current step.
func (r *Renderer) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	r.calculateTransform()
	r.drawGrid(screen)

	if len(r.events) == 0 {
		ebitenutil.DebugPrint(screen, "No steps recorded. Run with visualize enabled.")
		return
	}
	e := r.events[r.current]

	// Trail of poses up to the current step
	for i := 0; i <= r.current; i++ {
		from, to := r.events[i].From, r.events[i].Pose
		x0, y0 := r.worldToScreen(from.X(), from.Y())
		x1, y1 := r.worldToScreen(to.X(), to.Y())
		vector.StrokeLine(screen, x0, y0, x1, y1, 2, trailColor, true)
	}

	// Measurements were taken at the pose before the move
	sx, sy := r.worldToScreen(e.From.X(), e.From.Y())
	for _, m := range e.Measurements {
		mx, my := r.worldToScreen(e.From.X()+m.DX, e.From.Y()+m.DY)
		vector.StrokeLine(screen, sx, sy, mx, my, 1, measurementColor, true)
	}

	for _, lm := range e.Landmarks {
		lx, ly := r.worldToScreen(lm.X(), lm.Y())
		vector.StrokeLine(screen, lx-landmarkArmOnScreen, ly-landmarkArmOnScreen, lx+landmarkArmOnScreen, ly+landmarkArmOnScreen, 2, landmarkColor, true)
		vector.StrokeLine(screen, lx-landmarkArmOnScreen, ly+landmarkArmOnScreen, lx+landmarkArmOnScreen, ly-landmarkArmOnScreen, 2, landmarkColor, true)
	}

	// Robot and the motion it will try next
	rx, ry := r.worldToScreen(e.Pose.X(), e.Pose.Y())
	ax, ay := r.worldToScreen(e.Pose.X()+e.Motion.DX, e.Pose.Y()+e.Motion.DY)
	vector.StrokeLine(screen, rx, ry, ax, ay, 2, motionColor, true)
	vector.DrawFilledCircle(screen, ax, ay, 3, motionColor, true)
	vector.DrawFilledCircle(screen, rx, ry, robotRadiusOnScreen, robotColor, true)

	r.drawDebugInfo(screen, e)
}

// drawGrid draws the world border and integer grid lines, thinned out for large worlds.
func (r *Renderer) drawGrid(screen *ebiten.Image) {
	if r.worldSize <= 0 {
		return
	}
	spacing := math.Max(1, math.Ceil(r.worldSize/maxGridLines))
	for v := spacing; v < r.worldSize; v += spacing {
		x0, y0 := r.worldToScreen(v, 0)
		x1, y1 := r.worldToScreen(v, r.worldSize)
		vector.StrokeLine(screen, x0, y0, x1, y1, 1, gridColor, false)
		x0, y0 = r.worldToScreen(0, v)
		x1, y1 = r.worldToScreen(r.worldSize, v)
		vector.StrokeLine(screen, x0, y0, x1, y1, 1, gridColor, false)
	}
	left, top := r.worldToScreen(0, r.worldSize)
	side := float32(r.worldSize * r.scale)
	vector.StrokeRect(screen, left, top, side, side, 2, borderColor, false)
}

func (r *Renderer) drawDebugInfo(screen *ebiten.Image, e datagen.StepEvent) {
	lines := []string{
		fmt.Sprintf("Attempt %d, step %d/%d", e.Attempt, e.Step+1, len(r.events)),
		fmt.Sprintf("Robot: %s", e.Pose),
		fmt.Sprintf("Motion: %s", e.Motion),
		fmt.Sprintf("Measurements: %d", len(e.Measurements)),
		fmt.Sprintf("FPS: %.1f, TPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()),
	}
	if r.finishedCycle {
		lines = append(lines, "Replay finished.")
	}
	ebitenutil.DebugPrint(screen, strings.Join(lines, "\n"))
}

// Layout is called when the window size changes.
func (r *Renderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	r.screenWidth = outsideWidth
	r.screenHeight = outsideHeight
	return r.screenWidth, r.screenHeight
}

// Run opens a window and replays the renderer until the window is closed.
func Run(r *Renderer, title string) error {
	ebiten.SetWindowSize(800, 800)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(r)
}
