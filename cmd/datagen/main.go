package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"slam-datagen/internal/config"
	"slam-datagen/internal/datagen"
	"slam-datagen/internal/plotting"
	"slam-datagen/internal/report"
	"slam-datagen/internal/simulation"
	"slam-datagen/internal/visualization"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "Path to JSON config. Defaults are used when empty.")

	// Generation overrides, applied only when given on the command line.
	n := flag.Int("n", 0, "Number of time steps (dataset length is n-1).")
	numLandmarks := flag.Int("landmarks", 0, "Number of landmarks.")
	worldSize := flag.Float64("world", 0, "Side length of the square world.")
	measurementRange := flag.Float64("range", 0, "Sensing range, -1 for unlimited.")
	motionNoise := flag.Float64("motion-noise", 0, "Motion noise magnitude.")
	measurementNoise := flag.Float64("measurement-noise", 0, "Measurement noise magnitude.")
	distance := flag.Float64("distance", 0, "Length of every attempted motion.")
	noiseModel := flag.String("noise-model", "", "Noise distribution: uniform, gaussian, percentage, drift or none.")
	seed := flag.Int64("seed", 0, "Random seed, 0 picks one from the clock.")
	maxAttempts := flag.Int("max-attempts", 0, "Attempts before giving up on landmark coverage.")
	maxResamples := flag.Int("max-resamples", 0, "Rejected headings allowed per step.")
	window := flag.Bool("window", false, "Replay the accepted attempt in a window.")
	snapshots := flag.String("snapshots", "", "Directory for one PNG per step of the accepted attempt.")
	plotPath := flag.String("plot", "", "Write a trajectory plot to this file.")
	printSteps := flag.Int("print-steps", 0, "Dataset entries to print, -1 for all.")
	ticksPerStep := flag.Int("ticks-per-step", 0, "Window replay speed: ticks each step stays on screen.")
	quiet := flag.Bool("quiet", false, "Disable progress logging.")
	flag.Parse()

	cfg := config.Default()
	if configPath != "" {
		var err error
		cfg, err = config.LoadConfig(configPath)
		if err != nil {
			log.Fatalf("load config %q: %v", configPath, err)
		}
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "n":
			cfg.Params.N = *n
		case "landmarks":
			cfg.Params.NumLandmarks = *numLandmarks
		case "world":
			cfg.Params.WorldSize = *worldSize
		case "range":
			cfg.Params.MeasurementRange = *measurementRange
		case "motion-noise":
			cfg.Params.MotionNoise = *motionNoise
		case "measurement-noise":
			cfg.Params.MeasurementNoise = *measurementNoise
		case "distance":
			cfg.Params.Distance = *distance
		case "noise-model":
			model, err := simulation.ParseNoiseModel(*noiseModel)
			if err != nil {
				log.Fatalf("invalid noise model %q: %v", *noiseModel, err)
			}
			cfg.Params.NoiseModel = model
		case "seed":
			cfg.Seed = *seed
		case "max-attempts":
			cfg.MaxAttempts = *maxAttempts
		case "max-resamples":
			cfg.MaxResamples = *maxResamples
		case "window":
			cfg.Output.Window = *window
		case "snapshots":
			cfg.Output.SnapshotDir = *snapshots
		case "plot":
			cfg.Output.TrajectoryPlot = *plotPath
		case "print-steps":
			cfg.Output.PrintSteps = *printSteps
		case "ticks-per-step":
			cfg.Output.TicksPerStep = *ticksPerStep
		case "quiet":
			cfg.Log.Enabled = !*quiet
		}
	})

	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}
	if err := run(cfg); err != nil {
		log.Fatal(err)
	}
}

func run(cfg config.AppConfig) error {
	logger := log.New(io.Discard, "", 0)
	if cfg.Log.Enabled {
		logger = log.New(os.Stderr, "datagen: ", log.LstdFlags)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Printf("seed %d", seed)

	params := cfg.Params
	params.Visualize = cfg.Visualize()

	var recorder datagen.StepRecorder
	hooks := []datagen.StepHook{}
	if cfg.Output.Window {
		hooks = append(hooks, recorder.Record)
	}
	var snap *plotting.Snapshotter
	if cfg.Output.SnapshotDir != "" {
		var err error
		snap, err = plotting.NewSnapshotter(cfg.Output.SnapshotDir, params.WorldSize)
		if err != nil {
			return err
		}
		hooks = append(hooks, snap.Hook)
	}

	gen := datagen.New(
		datagen.WithSeed(seed),
		datagen.WithLogger(logger),
		datagen.WithMaxAttempts(cfg.MaxAttempts),
		datagen.WithMaxResamples(cfg.MaxResamples),
		datagen.WithStepHook(datagen.Hooks(hooks...)),
	)
	res, err := gen.Generate(params)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	if snap != nil {
		files, err := snap.Write()
		if err != nil {
			return fmt.Errorf("snapshots: %w", err)
		}
		logger.Printf("wrote %d snapshots of attempt %d to %s", len(files), res.Attempts, cfg.Output.SnapshotDir)
	}
	if cfg.Output.TrajectoryPlot != "" {
		if err := plotting.SaveTrajectory(cfg.Output.TrajectoryPlot, params.WorldSize, res.Trajectory, res.Landmarks()); err != nil {
			return err
		}
		logger.Printf("wrote trajectory plot to %s", cfg.Output.TrajectoryPlot)
	}

	if err := report.Write(os.Stdout, cfg, res); err != nil {
		return err
	}

	if cfg.Output.Window {
		r := visualization.NewRenderer(params.WorldSize, recorder.Events())
		r.SetTicksPerStep(cfg.Output.TicksPerStep)
		if err := visualization.Run(r, "SLAM dataset generator"); err != nil {
			return fmt.Errorf("window: %w", err)
		}
	}
	return nil
}
