package chaos

import (
	"chaos-game/pkg/geometry"

	"gonum.org/v1/gonum/stat"
)

// Summary describes a set of generated points.
type Summary struct {
	Count  int
	Mean   geometry.Point
	StdDev geometry.Point
	Bounds geometry.Rect
}

// Summarize computes the mean, sample standard deviation and bounding box of
// points. The deviation is zero for fewer than two points.
func Summarize(points []geometry.Point) Summary {
	s := Summary{Count: len(points)}
	if len(points) == 0 {
		return s
	}

	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i] = p.X
		ys[i] = p.Y
	}

	if len(points) == 1 {
		s.Mean = points[0]
	} else {
		s.Mean.X, s.StdDev.X = stat.MeanStdDev(xs, nil)
		s.Mean.Y, s.StdDev.Y = stat.MeanStdDev(ys, nil)
	}
	s.Bounds = geometry.BoundingBox(points)
	return s
}
