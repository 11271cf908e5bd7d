// Package canvas provides the clickable drawing canvas for the chaos game.
package canvas

import (
	"image"

	"chaos-game/internal/surface"
	"chaos-game/pkg/geometry"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// ChaosCanvas displays a raster surface and reports clicks in image coordinates.
// It is itself a surface.Surface: dots land in the backing image immediately
// and become visible on the next Refresh.
type ChaosCanvas struct {
	widget.BaseWidget

	surface *surface.Raster
	raster  *fynecanvas.Raster

	onLeftClick func(x, y float64)
}

var (
	_ surface.Surface = (*ChaosCanvas)(nil)
	_ fyne.Tappable   = (*ChaosCanvas)(nil)
)

// NewChaosCanvas creates a canvas backed by the given raster surface.
func NewChaosCanvas(s *surface.Raster) *ChaosCanvas {
	cc := &ChaosCanvas{surface: s}

	cc.raster = fynecanvas.NewRaster(cc.draw)
	cc.raster.ScaleMode = fynecanvas.ImageScalePixels
	b := s.Bounds()
	cc.raster.SetMinSize(fyne.NewSize(float32(b.Dx()), float32(b.Dy())))

	cc.ExtendBaseWidget(cc)
	return cc
}

// Surface returns the backing raster surface.
func (cc *ChaosCanvas) Surface() *surface.Raster {
	return cc.surface
}

// Clear clears the backing surface and repaints.
func (cc *ChaosCanvas) Clear() {
	cc.surface.Clear()
	cc.Refresh()
}

// PlotDot draws a dot into the backing surface.
func (cc *ChaosCanvas) PlotDot(p geometry.Point, radius float64) {
	cc.surface.PlotDot(p, radius)
}

// OnLeftClick sets a callback for left-click events.
// Coordinates are in image space.
func (cc *ChaosCanvas) OnLeftClick(callback func(x, y float64)) {
	cc.onLeftClick = callback
}

// Tapped handles left-click events.
func (cc *ChaosCanvas) Tapped(ev *fyne.PointEvent) {
	if cc.onLeftClick == nil {
		return
	}

	// Reject clicks outside the widget bounds
	size := cc.Size()
	if ev.Position.X < 0 || ev.Position.Y < 0 ||
		ev.Position.X > size.Width || ev.Position.Y > size.Height ||
		size.Width <= 0 || size.Height <= 0 {
		return
	}

	x, y := cc.CanvasToImage(ev.Position)
	cc.onLeftClick(x, y)
}

// CanvasToImage converts a widget position to image coordinates, accounting
// for the widget being stretched to a size other than the image's.
func (cc *ChaosCanvas) CanvasToImage(pos fyne.Position) (imgX, imgY float64) {
	b := cc.surface.Bounds()
	size := cc.Size()
	imgX = float64(pos.X) * float64(b.Dx()) / float64(size.Width)
	imgY = float64(pos.Y) * float64(b.Dy()) / float64(size.Height)
	return
}

// Refresh repaints the canvas.
func (cc *ChaosCanvas) Refresh() {
	cc.raster.Refresh()
}

// draw is the raster drawing function. Fyne scales the image to (w, h).
func (cc *ChaosCanvas) draw(w, h int) image.Image {
	return cc.surface.Image()
}

// CreateRenderer implements fyne.Widget.
func (cc *ChaosCanvas) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(cc.raster)
}
