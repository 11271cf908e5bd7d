package surface

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
	"os"

	"chaos-game/pkg/colorutil"
	"chaos-game/pkg/geometry"

	"github.com/jbeda/geom"
)

type svgDot struct {
	center geom.Coord
	radius float64
}

// SVG records dots and serializes them as an SVG document.
type SVG struct {
	viewBox    geom.Rect
	background color.RGBA
	fill       color.RGBA
	dots       []svgDot
}

// NewSVG creates an SVG surface covering a width x height canvas.
func NewSVG(width, height float64, background, fill color.RGBA) *SVG {
	return &SVG{
		viewBox:    geom.Rect{Max: geom.Coord{X: width, Y: height}},
		background: background,
		fill:       fill,
	}
}

// Clear drops all recorded dots.
func (s *SVG) Clear() {
	s.dots = s.dots[:0]
}

// PlotDot records a dot.
func (s *SVG) PlotDot(p geometry.Point, radius float64) {
	if !(radius > 0) || !finite(radius) || !finite(p.X) || !finite(p.Y) {
		return
	}
	s.dots = append(s.dots, svgDot{center: geom.Coord{X: p.X, Y: p.Y}, radius: radius})
}

// Len returns the number of recorded dots.
func (s *SVG) Len() int {
	return len(s.dots)
}

// WriteTo writes the SVG document to w.
func (s *SVG) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	cw := &countingWriter{w: bw}

	fmt.Fprintf(cw, `<?xml version="1.0"?>
<svg version="1.1"
     viewBox="%f %f %f %f"
     xmlns="http://www.w3.org/2000/svg">
`, s.viewBox.Min.X, s.viewBox.Min.Y, s.viewBox.Width(), s.viewBox.Height())
	fmt.Fprintf(cw, "<rect x='%f' y='%f' width='%f' height='%f' fill='%s'/>\n",
		s.viewBox.Min.X, s.viewBox.Min.Y, s.viewBox.Width(), s.viewBox.Height(), colorutil.Hex(s.background))
	fmt.Fprintf(cw, "<g fill='%s'>\n", colorutil.Hex(s.fill))
	for _, d := range s.dots {
		fmt.Fprintf(cw, "<circle cx='%f' cy='%f' r='%f'/>\n", d.center.X, d.center.Y, d.radius)
	}
	fmt.Fprintf(cw, "</g>\n</svg>\n")

	if cw.err != nil {
		return cw.n, cw.err
	}
	return cw.n, bw.Flush()
}

// Save writes the SVG document to path.
func (s *SVG) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := s.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

// countingWriter remembers the first write error so the serializer can
// use plain Fprintf calls.
type countingWriter struct {
	w   io.Writer
	n   int64
	err error
}

func (c *countingWriter) Write(p []byte) (int, error) {
	if c.err != nil {
		return 0, c.err
	}
	n, err := c.w.Write(p)
	c.n += int64(n)
	c.err = err
	return n, err
}
