package surface

import "chaos-game/pkg/geometry"

// Op identifies a recorded surface call.
type Op int

const (
	OpClear Op = iota
	OpPlotDot
)

// Call is one recorded surface call.
type Call struct {
	Op     Op
	Point  geometry.Point
	Radius float64
}

// Recorder is a Surface that remembers every call made to it.
type Recorder struct {
	Calls []Call
}

// Clear records a clear.
func (r *Recorder) Clear() {
	r.Calls = append(r.Calls, Call{Op: OpClear})
}

// PlotDot records a dot.
func (r *Recorder) PlotDot(p geometry.Point, radius float64) {
	r.Calls = append(r.Calls, Call{Op: OpPlotDot, Point: p, Radius: radius})
}

// Dots returns the dots plotted since the most recent clear.
func (r *Recorder) Dots() []geometry.Point {
	var dots []geometry.Point
	for _, c := range r.Calls {
		switch c.Op {
		case OpClear:
			dots = dots[:0]
		case OpPlotDot:
			dots = append(dots, c.Point)
		}
	}
	return dots
}

// Clears returns how many times Clear was called.
func (r *Recorder) Clears() int {
	n := 0
	for _, c := range r.Calls {
		if c.Op == OpClear {
			n++
		}
	}
	return n
}
