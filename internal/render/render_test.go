package render

import (
	"bytes"
	"strings"
	"testing"

	"chaos-game/internal/chaos"
	"chaos-game/internal/surface"
	"chaos-game/pkg/geometry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cycle picks corners 0, 1, 2, ... in turn.
type cycle struct{ n int }

func (c *cycle) IntN(n int) int {
	i := c.n % n
	c.n++
	return i
}

var triangle = []geometry.Point{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 50, Y: 100}}

func newEngine(t *testing.T) (*chaos.Engine, *surface.Recorder) {
	t.Helper()
	rec := &surface.Recorder{}
	e, err := chaos.New(rec, chaos.WithRandom(&cycle{}))
	require.NoError(t, err)
	return e, rec
}

func TestRun(t *testing.T) {
	e, rec := newEngine(t)
	start := geometry.NewPoint(50, 50)

	res, err := Run(e, Job{Corners: triangle, Start: &start, Ratio: 0.5, Steps: 3})
	require.NoError(t, err)

	assert.Equal(t, chaos.Stepping, e.State())
	assert.Equal(t, []geometry.Point{{X: 25, Y: 25}, {X: 62.5, Y: 12.5}, {X: 56.25, Y: 56.25}}, res.Points)
	assert.Equal(t, 3, res.Summary.Count)
	assert.Len(t, rec.Dots(), len(triangle)+1+3, "corners, start and generated points")
}

func TestRunDefaultsStartToCentroid(t *testing.T) {
	e, _ := newEngine(t)

	res, err := Run(e, Job{Corners: triangle, Ratio: 0.5, Steps: 1})
	require.NoError(t, err)
	assert.Equal(t, geometry.Centroid(triangle), res.Start)
}

func TestRunRatioZeroLandsOnCorners(t *testing.T) {
	e, _ := newEngine(t)

	res, err := Run(e, Job{Corners: triangle, Ratio: 0, Steps: 6})
	require.NoError(t, err)
	for i, p := range res.Points {
		assert.Equal(t, triangle[i%3], p)
	}
}

func TestRunErrors(t *testing.T) {
	e, _ := newEngine(t)
	_, err := Run(e, Job{Corners: triangle[:2], Ratio: 0.5, Steps: 1})
	assert.ErrorIs(t, err, chaos.ErrInsufficientCorners)

	e, _ = newEngine(t)
	_, err = Run(e, Job{Corners: triangle, Ratio: 0.5, Steps: 0})
	assert.Error(t, err)
}

func TestRegularCorners(t *testing.T) {
	corners, err := RegularCorners(4, 200, 100, 10)
	require.NoError(t, err)
	require.Len(t, corners, 4)
	center := geometry.NewPoint(100, 50)
	for _, c := range corners {
		assert.InDelta(t, 40, c.Distance(center), 1e-9)
	}

	_, err = RegularCorners(2, 200, 100, 10)
	assert.ErrorIs(t, err, chaos.ErrInsufficientCorners)
}

func TestParsePoint(t *testing.T) {
	p, err := ParsePoint(" 1.5, -2 ")
	require.NoError(t, err)
	assert.Equal(t, geometry.NewPoint(1.5, -2), p)

	for _, bad := range []string{"", "1", "1,", "a,b", "1x,2"} {
		_, err := ParsePoint(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestParseCorners(t *testing.T) {
	corners, err := ParseCorners("0,0;100,0; 50,100;")
	require.NoError(t, err)
	assert.Equal(t, triangle, corners)

	_, err = ParseCorners("0,0;oops")
	assert.Error(t, err)
}

func TestWriteReport(t *testing.T) {
	e, _ := newEngine(t)
	job := Job{Corners: triangle, Ratio: 0.5, Steps: 10}
	res, err := Run(e, job)
	require.NoError(t, err)

	var buf bytes.Buffer
	WriteReport(&buf, job, res)
	out := buf.String()
	assert.Contains(t, out, "Corners: 3")
	assert.Contains(t, out, "Points: 10")
	assert.Contains(t, out, "bounds")

	buf.Reset()
	require.NoError(t, WritePoints(&buf, res.Points[:2]))
	assert.Equal(t, 2, strings.Count(buf.String(), "\n"))
}
