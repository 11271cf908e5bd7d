// Package surface provides drawing surfaces the chaos engine plots onto.
package surface

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"chaos-game/pkg/geometry"
)

// DefaultDotRadius is the radius of every plotted dot unless configured otherwise.
const DefaultDotRadius = 2.0

// ErrUnsupportedFormat is returned when exporting to an unknown file format.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// Surface is a drawing target for generated points.
type Surface interface {
	// Clear erases everything plotted so far.
	Clear()
	// PlotDot renders a filled circle of the given radius centered at p.
	PlotDot(p geometry.Point, radius float64)
}

// Format identifies an export file format.
type Format string

const (
	FormatPNG  Format = "png"
	FormatTIFF Format = "tiff"
	FormatBMP  Format = "bmp"
	FormatSVG  Format = "svg"
)

// FormatFromPath determines the export format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".png":
		return FormatPNG, nil
	case ".tif", ".tiff":
		return FormatTIFF, nil
	case ".bmp":
		return FormatBMP, nil
	case ".svg":
		return FormatSVG, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
}

// Multi fans every call out to each of its surfaces in order.
type Multi []Surface

// Clear clears every surface.
func (m Multi) Clear() {
	for _, s := range m {
		s.Clear()
	}
}

// PlotDot plots the dot on every surface.
func (m Multi) PlotDot(p geometry.Point, radius float64) {
	for _, s := range m {
		s.PlotDot(p, radius)
	}
}
