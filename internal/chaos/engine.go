// Package chaos implements the chaos game: an interactive state machine that
// collects polygon corners and a start point, then plots points by repeatedly
// jumping part of the way toward randomly chosen corners.
package chaos

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"chaos-game/internal/surface"
	"chaos-game/pkg/geometry"
)

const (
	// DefaultRatio is the split ratio after construction and reset.
	DefaultRatio = 0.5
	// DefaultSteps is the number of steps per advance after construction and reset.
	DefaultSteps = 1
	// MinCorners is the fewest corners a polygon may be finalized with.
	MinCorners = 3
)

var (
	// ErrInsufficientCorners is returned when finalizing a polygon with fewer
	// than MinCorners corners.
	ErrInsufficientCorners = errors.New("you must enter at least three points")

	// ErrSurfaceUnsupported is returned when no drawing surface is available.
	ErrSurfaceUnsupported = errors.New("drawing surface unsupported")

	// ErrNoCorners is returned when advancing without any corners to jump toward.
	ErrNoCorners = errors.New("polygon has no corners")
)

// State is the interaction state; it decides how a clicked point is interpreted.
type State int

const (
	DrawingPolygon State = iota
	SettingStart
	Stepping
)

func (s State) String() string {
	switch s {
	case DrawingPolygon:
		return "drawing polygon"
	case SettingStart:
		return "setting start"
	case Stepping:
		return "stepping"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// ParamSource supplies the current ratio and steps text on demand, e.g. from
// two text inputs.
type ParamSource interface {
	RatioText() string
	StepsText() string
}

// Option configures an Engine.
type Option func(*Engine)

// WithRandom sets the source used to choose corners.
func WithRandom(r RandomSource) Option {
	return func(e *Engine) {
		e.rng = r
	}
}

// WithParams attaches a parameter source that is consulted on every click and
// advance request.
func WithParams(p ParamSource) Option {
	return func(e *Engine) {
		e.params = p
	}
}

// WithDotRadius sets the radius of every plotted dot.
func WithDotRadius(radius float64) Option {
	return func(e *Engine) {
		e.radius = radius
	}
}

// Engine owns the chaos game state. It is not safe for concurrent use; all
// calls are expected from a single event loop.
type Engine struct {
	surface surface.Surface
	rng     RandomSource
	params  ParamSource
	radius  float64

	state     State
	corners   []geometry.Point
	ratio     float64
	steps     int
	last      geometry.Point
	hasLast   bool
	generated int

	listeners map[EventType][]Listener
}

// New creates an engine that plots onto s.
func New(s surface.Surface, opts ...Option) (*Engine, error) {
	if s == nil {
		return nil, ErrSurfaceUnsupported
	}

	e := &Engine{
		surface:   s,
		radius:    surface.DefaultDotRadius,
		state:     DrawingPolygon,
		ratio:     DefaultRatio,
		steps:     DefaultSteps,
		listeners: make(map[EventType][]Listener),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = NewRandom()
	}
	return e, nil
}

// Handle applies one input event and returns the points generated by it, if any.
func (e *Engine) Handle(ev Event) ([]geometry.Point, error) {
	switch ev := ev.(type) {
	case PointClicked:
		e.refreshRatio()
		return e.handleClick(geometry.NewPoint(ev.X, ev.Y))
	case FinalizeRequested:
		return nil, e.FinalizePolygon()
	case ResetRequested:
		e.Reset()
		return nil, nil
	case AdvanceRequested:
		e.refreshRatio()
		e.refreshSteps()
		return e.Advance(e.steps)
	case nil:
		return nil, errors.New("nil event")
	}
	return nil, fmt.Errorf("unknown event %T", ev)
}

func (e *Engine) handleClick(p geometry.Point) ([]geometry.Point, error) {
	switch e.state {
	case DrawingPolygon:
		e.corners = append(e.corners, p)
		e.surface.PlotDot(p, e.radius)
		e.emit(EventCornerAdded, p)
		return nil, nil

	case SettingStart:
		e.last = p
		e.hasLast = true
		e.surface.PlotDot(p, e.radius)
		e.emit(EventStartSet, p)
		e.setState(Stepping)
		return nil, nil

	default:
		e.refreshSteps()
		return e.Advance(e.steps)
	}
}

// FinalizePolygon closes the corner list and moves on to start point selection.
// It fails with ErrInsufficientCorners, leaving the state unchanged, when fewer
// than MinCorners corners exist. Outside DrawingPolygon it does nothing.
func (e *Engine) FinalizePolygon() error {
	if e.state != DrawingPolygon {
		return nil
	}
	if len(e.corners) < MinCorners {
		return ErrInsufficientCorners
	}
	e.setState(SettingStart)
	return nil
}

// Advance runs n iterations, plotting each new point as it is produced, and
// returns the points in order. The last point carries over to the next call.
func (e *Engine) Advance(n int) ([]geometry.Point, error) {
	if len(e.corners) == 0 {
		return nil, ErrNoCorners
	}
	if n < 1 {
		return nil, nil
	}

	points := make([]geometry.Point, 0, min(n, 4096))
	for i := 0; i < n; i++ {
		base := e.corners[0]
		if e.hasLast {
			base = e.last
		}
		corner := e.corners[e.rng.IntN(len(e.corners))]
		p := base.Split(e.ratio, corner)

		e.surface.PlotDot(p, e.radius)
		e.last = p
		e.hasLast = true
		points = append(points, p)
	}
	e.generated += n
	e.emit(EventPointsGenerated, points)
	return points, nil
}

// Reset restores the initial state and clears the drawing surface.
func (e *Engine) Reset() {
	e.corners = nil
	e.ratio = DefaultRatio
	e.steps = DefaultSteps
	e.last = geometry.Point{}
	e.hasLast = false
	e.generated = 0
	e.surface.Clear()
	e.emit(EventReset, nil)
	e.setState(DrawingPolygon)
}

func (e *Engine) setState(s State) {
	if e.state == s {
		return
	}
	e.state = s
	e.emit(EventStateChanged, s)
}

// State returns the current interaction state.
func (e *Engine) State() State {
	return e.state
}

// Corners returns a copy of the polygon corners in click order.
func (e *Engine) Corners() []geometry.Point {
	return append([]geometry.Point(nil), e.corners...)
}

// LastPoint returns the most recent start or generated point, if any.
func (e *Engine) LastPoint() (geometry.Point, bool) {
	return e.last, e.hasLast
}

// Ratio returns the current split ratio.
func (e *Engine) Ratio() float64 {
	return e.ratio
}

// Steps returns the number of steps taken per advance.
func (e *Engine) Steps() int {
	return e.steps
}

// Generated returns how many points were generated since the last reset.
func (e *Engine) Generated() int {
	return e.generated
}

// DotRadius returns the radius used for plotted dots.
func (e *Engine) DotRadius() float64 {
	return e.radius
}

// SetRatio sets the split ratio. Non-finite values are rejected and the
// previous ratio is kept. Values outside [0, 1] are allowed.
func (e *Engine) SetRatio(ratio float64) bool {
	if math.IsNaN(ratio) || math.IsInf(ratio, 0) {
		return false
	}
	e.ratio = ratio
	return true
}

// SetRatioText parses and sets the ratio, keeping the previous value when the
// text is not a finite number.
func (e *Engine) SetRatioText(text string) bool {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return false
	}
	return e.SetRatio(v)
}

// SetSteps sets the steps per advance. Non-positive values are rejected.
func (e *Engine) SetSteps(steps int) bool {
	if steps < 1 {
		return false
	}
	e.steps = steps
	return true
}

// SetStepsText parses and sets the steps per advance, keeping the previous
// value when the text is not a positive integer.
func (e *Engine) SetStepsText(text string) bool {
	v, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return false
	}
	return e.SetSteps(v)
}

func (e *Engine) refreshRatio() {
	if e.params != nil {
		e.SetRatioText(e.params.RatioText())
	}
}

func (e *Engine) refreshSteps() {
	if e.params != nil {
		e.SetStepsText(e.params.StepsText())
	}
}
