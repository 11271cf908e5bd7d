package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitBoundaries(t *testing.T) {
	pairs := [][2]Point{
		{{0, 0}, {100, 0}},
		{{-3.5, 7.25}, {12, -9}},
		{{1e6, -1e6}, {0.001, 0.002}},
	}
	for _, pair := range pairs {
		a, b := pair[0], pair[1]
		assert.Equal(t, a, a.Split(1, b), "ratio 1 keeps the base point")
		assert.Equal(t, b, a.Split(0, b), "ratio 0 lands on the target")
	}
}

func TestSplitMidpoint(t *testing.T) {
	a := NewPoint(0, 0)
	assert.Equal(t, NewPoint(50, 0), a.Split(0.5, NewPoint(100, 0)))
	assert.Equal(t, NewPoint(25, 50), a.Split(0.5, NewPoint(50, 100)))
}

func TestSplitExtrapolates(t *testing.T) {
	a := NewPoint(0, 0)
	b := NewPoint(10, 0)

	// ratio > 1 moves away from the target, ratio < 0 overshoots it
	assert.InDelta(t, -5.0, a.Split(1.5, b).X, 1e-12)
	assert.InDelta(t, 15.0, a.Split(-0.5, b).X, 1e-12)
}

func TestDistance(t *testing.T) {
	a := NewPoint(1, 2)
	b := NewPoint(4, 6)

	assert.Equal(t, 5.0, a.Distance(b))
	assert.Equal(t, a.Distance(b), b.Distance(a))
	assert.Zero(t, a.Distance(a))
}

func TestRegularPolygon(t *testing.T) {
	center := NewPoint(100, 100)
	corners := RegularPolygon(center, 50, 3)

	assert.Len(t, corners, 3)
	assert.InDelta(t, 100.0, corners[0].X, 1e-9)
	assert.InDelta(t, 50.0, corners[0].Y, 1e-9)
	for _, c := range corners {
		assert.InDelta(t, 50.0, c.Distance(center), 1e-9)
	}

	c := Centroid(corners)
	assert.InDelta(t, center.X, c.X, 1e-9)
	assert.InDelta(t, center.Y, c.Y, 1e-9)
}

func TestBoundingBox(t *testing.T) {
	box := BoundingBox([]Point{{0, 0}, {100, 0}, {50, 100}})
	assert.Equal(t, NewRect(0, 0, 100, 100), box)
	assert.True(t, box.Contains(NewPoint(50, 50)))
	assert.False(t, box.Contains(NewPoint(-1, 50)))
	assert.Equal(t, NewPoint(50, 50), box.Center())

	assert.Equal(t, Rect{}, BoundingBox(nil))
	assert.Equal(t, Point{}, Centroid(nil))
}

func TestPointInPolygon(t *testing.T) {
	triangle := []Point{{0, 0}, {100, 0}, {50, 100}}

	assert.True(t, PointInPolygon(NewPoint(50, 30), triangle))
	assert.False(t, PointInPolygon(NewPoint(5, 90), triangle))
	assert.False(t, PointInPolygon(NewPoint(50, 30), triangle[:2]))
}

func TestVecRoundTrip(t *testing.T) {
	p := NewPoint(math.Pi, -math.E)
	assert.Equal(t, p, FromVec(p.Vec()))
}
