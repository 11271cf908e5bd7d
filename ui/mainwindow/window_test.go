package mainwindow

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"chaos-game/internal/chaos"
	"chaos-game/ui/prefs"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWindow(t *testing.T) *MainWindow {
	t.Helper()
	a := test.NewApp()
	t.Cleanup(a.Quit)

	p := prefs.LoadFrom(filepath.Join(t.TempDir(), "preferences.json"))
	mw, err := New(a, p)
	require.NoError(t, err)
	return mw
}

func clickTriangle(mw *MainWindow) {
	mw.onCanvasClick(10, 10)
	mw.onCanvasClick(200, 10)
	mw.onCanvasClick(100, 200)
}

func TestFullInteraction(t *testing.T) {
	mw := newTestWindow(t)
	engine := mw.Engine()

	clickTriangle(mw)
	assert.Len(t, engine.Corners(), 3)
	assert.Contains(t, mw.statusBar.Text, "3 corners")

	test.Tap(mw.polygonBtn)
	assert.Equal(t, chaos.SettingStart, engine.State())
	assert.Equal(t, stateHints[chaos.SettingStart], mw.statusBar.Text)

	mw.onCanvasClick(100, 80)
	assert.Equal(t, chaos.Stepping, engine.State())

	mw.stepsEntry.SetText("25")
	mw.onCanvasClick(0, 0)
	assert.Equal(t, 25, engine.Generated())
	assert.Len(t, engine.Corners(), 3)

	test.Tap(mw.nextBtn)
	assert.Equal(t, 50, engine.Generated())
	assert.True(t, strings.HasPrefix(mw.statusBar.Text, "50 points generated"))
}

func TestSetPolygonNeedsThreeCorners(t *testing.T) {
	mw := newTestWindow(t)

	mw.onCanvasClick(10, 10)
	mw.onCanvasClick(20, 20)
	test.Tap(mw.polygonBtn)

	assert.Equal(t, chaos.DrawingPolygon, mw.Engine().State())
	assert.NotNil(t, mw.Canvas().Overlays().Top(), "a blocking notification is shown")
}

func TestEntriesFeedTheEngine(t *testing.T) {
	mw := newTestWindow(t)
	engine := mw.Engine()

	mw.ratioEntry.SetText("0.25")
	mw.onCanvasClick(10, 10)
	assert.Equal(t, 0.25, engine.Ratio())

	mw.ratioEntry.SetText("abc")
	mw.onCanvasClick(20, 10)
	assert.Equal(t, 0.25, engine.Ratio())
}

func TestResetRestoresEntries(t *testing.T) {
	mw := newTestWindow(t)
	engine := mw.Engine()

	mw.ratioEntry.SetText("0.3")
	mw.stepsEntry.SetText("9")
	clickTriangle(mw)
	test.Tap(mw.polygonBtn)
	mw.onCanvasClick(100, 80)
	test.Tap(mw.nextBtn)
	require.Equal(t, 9, engine.Generated())

	test.Tap(mw.resetBtn)

	assert.Equal(t, chaos.DrawingPolygon, engine.State())
	assert.Empty(t, engine.Corners())
	assert.Equal(t, "0.5", mw.ratioEntry.Text)
	assert.Equal(t, "", mw.stepsEntry.Text)
	assert.Zero(t, mw.svg.Len())
}

func TestNextWithoutCorners(t *testing.T) {
	mw := newTestWindow(t)

	test.Tap(mw.nextBtn)
	assert.Zero(t, mw.Engine().Generated())
	assert.Equal(t, "Add polygon corners before advancing", mw.statusBar.Text)
}

func TestExports(t *testing.T) {
	mw := newTestWindow(t)
	clickTriangle(mw)
	test.Tap(mw.polygonBtn)
	mw.onCanvasClick(100, 80)
	test.Tap(mw.nextBtn)

	dir := t.TempDir()
	png := filepath.Join(dir, "chaos.png")
	require.NoError(t, mw.exportImage(png))
	_, err := os.Stat(png)
	assert.NoError(t, err)

	svg := filepath.Join(dir, "chaos.svg")
	require.NoError(t, mw.exportSVG(svg))
	data, err := os.ReadFile(svg)
	require.NoError(t, err)
	assert.Equal(t, 5, strings.Count(string(data), "<circle"), "3 corners, the start and one step")

	assert.Error(t, mw.exportImage(filepath.Join(dir, "chaos.gif")))
}

func TestSavePreferences(t *testing.T) {
	mw := newTestWindow(t)
	mw.ratioEntry.SetText("0.4")
	mw.onCanvasClick(1, 1)

	require.NoError(t, mw.SavePreferences())
	assert.Equal(t, 0.4, prefs.LoadFrom(mw.prefs.Path()).Settings().Ratio)
}
