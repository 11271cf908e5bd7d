// Command chaosrender plays the chaos game without a window and writes the
// resulting attractor to an image or SVG file.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"chaos-game/internal/chaos"
	"chaos-game/internal/render"
	"chaos-game/internal/surface"
	"chaos-game/internal/surface/cvmat"
	"chaos-game/internal/version"
	"chaos-game/pkg/colorutil"
	"chaos-game/pkg/geometry"
)

type config struct {
	corners    string
	sides      int
	start      string
	ratio      float64
	steps      int
	seed       uint64
	radius     float64
	width      int
	height     int
	backend    string
	out        string
	dump       bool
	dot        string
	background string
}

// outputSurface is a surface that can be written to a file.
type outputSurface interface {
	surface.Surface
	Save(path string) error
}

func main() {
	var cfg config
	flag.StringVar(&cfg.corners, "corners", "", `Polygon corners as "x,y;x,y;..." (at least three)`)
	flag.IntVar(&cfg.sides, "sides", 3, "Regular polygon corner count, used when -corners is empty")
	flag.StringVar(&cfg.start, "start", "", `Start point as "x,y" (default: polygon centroid)`)
	flag.Float64Var(&cfg.ratio, "ratio", chaos.DefaultRatio, "Split ratio; 1 stays put, 0 jumps onto the corner")
	flag.IntVar(&cfg.steps, "steps", 50000, "Number of points to generate")
	flag.Uint64Var(&cfg.seed, "seed", 0, "Random seed (0 picks a random seed)")
	flag.Float64Var(&cfg.radius, "radius", surface.DefaultDotRadius, "Dot radius in pixels")
	flag.IntVar(&cfg.width, "width", 500, "Canvas width in pixels")
	flag.IntVar(&cfg.height, "height", 500, "Canvas height in pixels")
	flag.StringVar(&cfg.backend, "backend", "raster", "Drawing backend: raster or opencv")
	flag.StringVar(&cfg.out, "out", "chaos.png", "Output file (.png, .tif, .bmp, .svg; any OpenCV format with -backend opencv)")
	flag.BoolVar(&cfg.dump, "dump", false, "Print every generated point to stdout")
	flag.StringVar(&cfg.dot, "dot-color", "#000000", "Dot color")
	flag.StringVar(&cfg.background, "background", "#ffffff", "Background color")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("chaosrender %s\n", version.String())
		return
	}

	if err := run(cfg, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "chaosrender: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config, stdout io.Writer) error {
	if cfg.width <= 0 || cfg.height <= 0 {
		return fmt.Errorf("invalid canvas size %dx%d", cfg.width, cfg.height)
	}

	job := render.Job{Ratio: cfg.ratio, Steps: cfg.steps}
	var err error
	if cfg.corners != "" {
		if job.Corners, err = render.ParseCorners(cfg.corners); err != nil {
			return fmt.Errorf("-corners: %w", err)
		}
	} else if job.Corners, err = render.RegularCorners(cfg.sides, cfg.width, cfg.height, 2*cfg.radius); err != nil {
		return fmt.Errorf("-sides: %w", err)
	}
	if cfg.start != "" {
		var start geometry.Point
		if start, err = render.ParsePoint(cfg.start); err != nil {
			return fmt.Errorf("-start: %w", err)
		}
		job.Start = &start
	}

	out, closeOut, err := newOutputSurface(cfg)
	if err != nil {
		return err
	}
	defer closeOut()

	opts := []chaos.Option{chaos.WithDotRadius(cfg.radius)}
	if cfg.seed != 0 {
		opts = append(opts, chaos.WithRandom(chaos.NewSeededRandom(cfg.seed)))
	}
	engine, err := chaos.New(out, opts...)
	if err != nil {
		return err
	}

	res, err := render.Run(engine, job)
	if err != nil {
		return err
	}
	if err := out.Save(cfg.out); err != nil {
		return fmt.Errorf("save: %w", err)
	}

	if cfg.dump {
		if err := render.WritePoints(stdout, res.Points); err != nil {
			return err
		}
	}
	fmt.Fprintf(stdout, "Wrote %s (%dx%d, %s backend)\n", cfg.out, cfg.width, cfg.height, cfg.backend)
	render.WriteReport(stdout, job, res)
	return nil
}

func newOutputSurface(cfg config) (outputSurface, func(), error) {
	dot, err := colorutil.ParseHex(cfg.dot)
	if err != nil {
		return nil, nil, fmt.Errorf("-dot-color: %w", err)
	}
	bg, err := colorutil.ParseHex(cfg.background)
	if err != nil {
		return nil, nil, fmt.Errorf("-background: %w", err)
	}

	switch cfg.backend {
	case "opencv":
		s := cvmat.New(cfg.width, cfg.height, bg, dot)
		return s, func() { s.Close() }, nil
	case "raster":
		format, err := surface.FormatFromPath(cfg.out)
		if err != nil {
			return nil, nil, err
		}
		if format == surface.FormatSVG {
			return surface.NewSVG(float64(cfg.width), float64(cfg.height), bg, dot), func() {}, nil
		}
		return surface.NewRaster(cfg.width, cfg.height, bg, dot), func() {}, nil
	}
	return nil, nil, fmt.Errorf("unknown backend %q", cfg.backend)
}
