// Package cvmat provides a drawing surface backed by an OpenCV Mat.
package cvmat

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"chaos-game/internal/surface"
	"chaos-game/pkg/geometry"

	"gocv.io/x/gocv"
)

// Surface plots dots into a BGR Mat. Call Close when done.
type Surface struct {
	mat        gocv.Mat
	background gocv.Scalar
	dot        color.RGBA
}

var _ surface.Surface = (*Surface)(nil)

// New creates a cleared width x height surface.
func New(width, height int, background, dot color.RGBA) *Surface {
	s := &Surface{
		mat: gocv.NewMatWithSize(height, width, gocv.MatTypeCV8UC3),
		// OpenCV scalars are in BGR order
		background: gocv.NewScalar(float64(background.B), float64(background.G), float64(background.R), 255),
		dot:        dot,
	}
	s.Clear()
	return s
}

// Clear fills the Mat with the background color.
func (s *Surface) Clear() {
	s.mat.SetTo(s.background)
}

// PlotDot draws a filled circle. Radii are rounded to whole pixels, minimum 1.
func (s *Surface) PlotDot(p geometry.Point, radius float64) {
	if !(radius > 0) || math.IsNaN(p.X) || math.IsNaN(p.Y) ||
		math.Abs(p.X) > math.MaxInt32 || math.Abs(p.Y) > math.MaxInt32 {
		return
	}
	r := int(math.Round(radius))
	if r < 1 {
		r = 1
	}
	center := image.Pt(int(math.Round(p.X)), int(math.Round(p.Y)))
	gocv.Circle(&s.mat, center, r, s.dot, -1)
}

// Save writes the Mat to path; the format follows the extension.
func (s *Surface) Save(path string) error {
	if ok := gocv.IMWrite(path, s.mat); !ok {
		return fmt.Errorf("opencv: failed to write %s", path)
	}
	return nil
}

// Close releases the underlying Mat.
func (s *Surface) Close() error {
	return s.mat.Close()
}
