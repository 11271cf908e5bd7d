// Package render plays a complete chaos game without user interaction, for
// batch rendering from the command line.
package render

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"chaos-game/internal/chaos"
	"chaos-game/pkg/geometry"
)

var errBadPoint = errors.New(`expected "x,y"`)

// Job describes one headless run.
type Job struct {
	Corners []geometry.Point
	// Start defaults to the centroid of Corners when nil.
	Start *geometry.Point
	Ratio float64
	Steps int
}

// Result is the outcome of a run.
type Result struct {
	Start   geometry.Point
	Points  []geometry.Point
	Summary chaos.Summary
}

// Run applies the job to the engine through the same events the window sends:
// one click per corner, set polygon, a start click, then one advance request.
func Run(engine *chaos.Engine, job Job) (Result, error) {
	if !engine.SetRatio(job.Ratio) {
		return Result{}, fmt.Errorf("ratio must be finite, got %v", job.Ratio)
	}
	if !engine.SetSteps(job.Steps) {
		return Result{}, fmt.Errorf("steps must be positive, got %d", job.Steps)
	}

	start := geometry.Centroid(job.Corners)
	if job.Start != nil {
		start = *job.Start
	}

	events := make([]chaos.Event, 0, len(job.Corners)+3)
	for _, c := range job.Corners {
		events = append(events, chaos.PointClicked{X: c.X, Y: c.Y})
	}
	events = append(events,
		chaos.FinalizeRequested{},
		chaos.PointClicked{X: start.X, Y: start.Y},
		chaos.AdvanceRequested{},
	)

	res := Result{Start: start}
	for _, ev := range events {
		pts, err := engine.Handle(ev)
		if err != nil {
			return Result{}, err
		}
		res.Points = append(res.Points, pts...)
	}
	res.Summary = chaos.Summarize(res.Points)
	return res, nil
}

// RegularCorners returns an n-gon centered on a width x height canvas, inset
// by margin from the shorter edge.
func RegularCorners(n, width, height int, margin float64) ([]geometry.Point, error) {
	if n < chaos.MinCorners {
		return nil, chaos.ErrInsufficientCorners
	}
	w, h := float64(width), float64(height)
	radius := math.Min(w, h)/2 - margin
	return geometry.RegularPolygon(geometry.NewPoint(w/2, h/2), radius, n), nil
}

// ParsePoint parses "x,y".
func ParsePoint(s string) (geometry.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return geometry.Point{}, fmt.Errorf("%w, got %q", errBadPoint, s)
	}
	x, errX := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	y, errY := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if errX != nil || errY != nil {
		return geometry.Point{}, fmt.Errorf("%w, got %q", errBadPoint, s)
	}
	return geometry.NewPoint(x, y), nil
}

// ParseCorners parses "x,y;x,y;...". Empty segments are ignored.
func ParseCorners(s string) ([]geometry.Point, error) {
	var corners []geometry.Point
	for _, part := range strings.Split(s, ";") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		p, err := ParsePoint(part)
		if err != nil {
			return nil, err
		}
		corners = append(corners, p)
	}
	return corners, nil
}

// WritePoints prints one "x,y" line per point.
func WritePoints(w io.Writer, points []geometry.Point) error {
	for _, p := range points {
		if _, err := fmt.Fprintf(w, "%g,%g\n", p.X, p.Y); err != nil {
			return err
		}
	}
	return nil
}

// WriteReport prints a human-readable summary of a run.
func WriteReport(w io.Writer, job Job, res Result) {
	fmt.Fprintf(w, "Corners: %d, start (%.2f, %.2f), ratio %g\n", len(job.Corners), res.Start.X, res.Start.Y, job.Ratio)
	s := res.Summary
	fmt.Fprintf(w, "Points: %d\n", s.Count)
	if s.Count == 0 {
		return
	}
	fmt.Fprintf(w, "  mean   (%.2f, %.2f)\n", s.Mean.X, s.Mean.Y)
	fmt.Fprintf(w, "  stddev (%.2f, %.2f)\n", s.StdDev.X, s.StdDev.Y)
	fmt.Fprintf(w, "  bounds x %.2f..%.2f, y %.2f..%.2f\n",
		s.Bounds.X, s.Bounds.X+s.Bounds.Width, s.Bounds.Y, s.Bounds.Y+s.Bounds.Height)
}
