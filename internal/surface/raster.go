package surface

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"

	"chaos-game/pkg/colorutil"
	"chaos-game/pkg/geometry"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"golang.org/x/image/vector"
)

// kappa is the cubic Bézier control distance for a quarter circle of radius 1.
const kappa = 0.5522847498

// Raster is an in-memory RGBA surface with anti-aliased dots.
type Raster struct {
	img        *image.RGBA
	background color.RGBA
	dot        *image.Uniform
	z          *vector.Rasterizer
	mask       *image.Alpha
}

// NewRaster creates a cleared raster surface of the given size.
func NewRaster(width, height int, background, dot color.RGBA) *Raster {
	r := &Raster{
		img:        image.NewRGBA(image.Rect(0, 0, width, height)),
		background: background,
		dot:        image.NewUniform(dot),
		z:          vector.NewRasterizer(0, 0),
	}
	r.Clear()
	return r
}

// NewDefaultRaster creates a white raster that plots black dots, like an
// empty HTML canvas.
func NewDefaultRaster(width, height int) *Raster {
	return NewRaster(width, height, colorutil.White, colorutil.Black)
}

// Image returns the backing image. It is updated in place by PlotDot and Clear.
func (r *Raster) Image() *image.RGBA {
	return r.img
}

// Bounds returns the image bounds.
func (r *Raster) Bounds() image.Rectangle {
	return r.img.Bounds()
}

// Clear fills the image with the background color.
func (r *Raster) Clear() {
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(r.background), image.Point{}, draw.Src)
}

// PlotDot draws a filled circle centered at p. Dots with a non-positive
// radius or non-finite coordinates are skipped.
func (r *Raster) PlotDot(p geometry.Point, radius float64) {
	if !(radius > 0) || !finite(radius) || !finite(p.X) || !finite(p.Y) {
		return
	}

	b := r.img.Bounds()
	if p.X+radius < float64(b.Min.X) || p.Y+radius < float64(b.Min.Y) ||
		p.X-radius > float64(b.Max.X) || p.Y-radius > float64(b.Max.Y) {
		return
	}

	// Rasterize into a small mask around the dot, then composite with clipping.
	x0 := int(math.Floor(p.X-radius)) - 1
	y0 := int(math.Floor(p.Y-radius)) - 1
	size := int(math.Ceil(2*radius)) + 3
	cx := float32(p.X - float64(x0))
	cy := float32(p.Y - float64(y0))

	dr := image.Rect(x0, y0, x0+size, y0+size)

	r.z.Reset(size, size)
	r.z.DrawOp = draw.Src
	circlePath(r.z, cx, cy, float32(radius))

	if r.mask == nil || r.mask.Bounds().Dx() != size {
		r.mask = image.NewAlpha(image.Rect(0, 0, size, size))
	}
	r.z.Draw(r.mask, r.mask.Bounds(), image.Opaque, image.Point{})

	draw.DrawMask(r.img, dr, r.dot, image.Point{}, r.mask, image.Point{}, draw.Over)
}

// circlePath adds a closed circle made of four cubic segments.
func circlePath(z *vector.Rasterizer, cx, cy, rad float32) {
	k := rad * kappa
	z.MoveTo(cx+rad, cy)
	z.CubeTo(cx+rad, cy+k, cx+k, cy+rad, cx, cy+rad)
	z.CubeTo(cx-k, cy+rad, cx-rad, cy+k, cx-rad, cy)
	z.CubeTo(cx-rad, cy-k, cx-k, cy-rad, cx, cy-rad)
	z.CubeTo(cx+k, cy-rad, cx+rad, cy-k, cx+rad, cy)
	z.ClosePath()
}

// Encode writes the image in the given raster format.
func (r *Raster) Encode(w io.Writer, format Format) error {
	switch format {
	case FormatPNG:
		return png.Encode(w, r.img)
	case FormatTIFF:
		return tiff.Encode(w, r.img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	case FormatBMP:
		return bmp.Encode(w, r.img)
	}
	return fmt.Errorf("%w for raster: %q", ErrUnsupportedFormat, format)
}

// Save writes the image to path, choosing the encoder from the extension.
func (r *Raster) Save(path string) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	if format == FormatSVG {
		return fmt.Errorf("%w for raster: %q", ErrUnsupportedFormat, format)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := r.Encode(f, format); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
