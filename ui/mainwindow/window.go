// Package mainwindow provides the main application window.
package mainwindow

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strconv"

	"chaos-game/internal/chaos"
	"chaos-game/internal/surface"
	"chaos-game/internal/version"
	"chaos-game/pkg/geometry"
	"chaos-game/ui/canvas"
	"chaos-game/ui/prefs"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
)

const prefKeyLastDir = "lastDirectory"

// Status bar texts per state.
var stateHints = map[chaos.State]string{
	chaos.DrawingPolygon: "Click to add polygon corners, then press Set polygon",
	chaos.SettingStart:   "Click to choose a starting point",
	chaos.Stepping:       "Click the canvas or press Next to advance",
}

// MainWindow is the primary application window.
type MainWindow struct {
	fyne.Window
	app    fyne.App
	prefs  *prefs.Prefs
	engine *chaos.Engine

	canvas *canvas.ChaosCanvas
	svg    *surface.SVG

	ratioEntry *widget.Entry
	stepsEntry *widget.Entry
	polygonBtn *widget.Button
	resetBtn   *widget.Button
	nextBtn    *widget.Button
	statusBar  *widget.Label
}

// New creates a new main window. It fails with chaos.ErrSurfaceUnsupported
// when no drawing surface can be created.
func New(fyneApp fyne.App, appPrefs *prefs.Prefs) (*MainWindow, error) {
	settings := appPrefs.Settings()

	mw := &MainWindow{
		app:   fyneApp,
		prefs: appPrefs,
	}

	raster := surface.NewRaster(settings.CanvasWidth, settings.CanvasHeight, settings.Background, settings.Dot)
	mw.canvas = canvas.NewChaosCanvas(raster)
	mw.svg = surface.NewSVG(float64(settings.CanvasWidth), float64(settings.CanvasHeight), settings.Background, settings.Dot)

	engine, err := chaos.New(surface.Multi{mw.canvas, mw.svg},
		chaos.WithParams(mw),
		chaos.WithDotRadius(settings.DotRadius),
	)
	if err != nil {
		return nil, fmt.Errorf("create engine: %w", err)
	}
	mw.engine = engine

	mw.Window = fyneApp.NewWindow("Chaos Game")
	mw.setupUI(settings)
	mw.setupMenus()
	mw.setupEventHandlers()

	return mw, nil
}

// RatioText implements chaos.ParamSource.
func (mw *MainWindow) RatioText() string {
	return mw.ratioEntry.Text
}

// StepsText implements chaos.ParamSource.
func (mw *MainWindow) StepsText() string {
	return mw.stepsEntry.Text
}

// Engine returns the engine driven by this window.
func (mw *MainWindow) Engine() *chaos.Engine {
	return mw.engine
}

// SavePreferences stores the current ratio as the next session's default and
// writes the preferences file.
func (mw *MainWindow) SavePreferences() error {
	mw.prefs.SetFloat(prefs.KeyRatio, mw.engine.Ratio())
	return mw.prefs.Save()
}

// setupUI creates the main UI layout.
func (mw *MainWindow) setupUI(settings prefs.Settings) {
	mw.canvas.OnLeftClick(mw.onCanvasClick)

	mw.ratioEntry = widget.NewEntry()
	mw.ratioEntry.SetText(strconv.FormatFloat(settings.Ratio, 'g', -1, 64))
	mw.stepsEntry = widget.NewEntry()
	mw.stepsEntry.SetPlaceHolder("1")

	mw.polygonBtn = widget.NewButton("Set polygon", func() {
		mw.handle(chaos.FinalizeRequested{})
	})
	mw.resetBtn = widget.NewButton("Reset", func() {
		mw.handle(chaos.ResetRequested{})
	})
	mw.nextBtn = widget.NewButton("Next", func() {
		mw.handle(chaos.AdvanceRequested{})
	})

	mw.statusBar = widget.NewLabel(stateHints[mw.engine.State()])

	form := widget.NewForm(
		widget.NewFormItem("Ratio", mw.ratioEntry),
		widget.NewFormItem("How many steps?", mw.stepsEntry),
	)
	toolbar := container.NewVBox(
		form,
		container.NewHBox(mw.polygonBtn, mw.resetBtn, mw.nextBtn),
	)

	content := container.NewBorder(
		toolbar,                           // top
		container.NewPadded(mw.statusBar), // bottom
		nil,                               // left
		nil,                               // right
		container.NewCenter(mw.canvas),    // center
	)

	mw.SetContent(content)
}

// setupMenus creates the application menus.
func (mw *MainWindow) setupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Export Image...", mw.onExportImage),
		fyne.NewMenuItem("Export SVG...", mw.onExportSVG),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() { mw.app.Quit() }),
	)
	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", mw.onAbout),
	)
	mw.SetMainMenu(fyne.NewMainMenu(fileMenu, helpMenu))
}

// setupEventHandlers registers for engine events.
func (mw *MainWindow) setupEventHandlers() {
	mw.engine.On(chaos.EventStateChanged, func(data interface{}) {
		if state, ok := data.(chaos.State); ok {
			mw.updateStatus(stateHints[state])
		}
	})

	mw.engine.On(chaos.EventCornerAdded, func(data interface{}) {
		if p, ok := data.(geometry.Point); ok {
			log.Printf("corner %d at (%.1f, %.1f)", len(mw.engine.Corners()), p.X, p.Y)
			mw.updateStatus(fmt.Sprintf("%d corners. %s", len(mw.engine.Corners()), stateHints[chaos.DrawingPolygon]))
		}
	})

	mw.engine.On(chaos.EventStartSet, func(data interface{}) {
		p, ok := data.(geometry.Point)
		if !ok {
			return
		}
		if !geometry.PointInPolygon(p, mw.engine.Corners()) {
			log.Printf("start point (%.1f, %.1f) lies outside the polygon", p.X, p.Y)
		}
	})

	mw.engine.On(chaos.EventPointsGenerated, func(data interface{}) {
		points, ok := data.([]geometry.Point)
		if !ok || len(points) == 0 {
			return
		}
		s := chaos.Summarize(points)
		mw.updateStatus(fmt.Sprintf("%d points generated (+%d, centered near %.0f, %.0f)",
			mw.engine.Generated(), s.Count, s.Mean.X, s.Mean.Y))
	})

	mw.engine.On(chaos.EventReset, func(interface{}) {
		log.Println("reset")
		mw.ratioEntry.SetText(strconv.FormatFloat(mw.engine.Ratio(), 'g', -1, 64))
		mw.stepsEntry.SetText("")
	})
}

// onCanvasClick forwards a canvas click to the engine.
func (mw *MainWindow) onCanvasClick(x, y float64) {
	mw.handle(chaos.PointClicked{X: x, Y: y})
}

// handle applies an event, repaints, and reports errors to the user.
func (mw *MainWindow) handle(ev chaos.Event) {
	_, err := mw.engine.Handle(ev)
	mw.canvas.Refresh()

	switch {
	case err == nil:
	case errors.Is(err, chaos.ErrInsufficientCorners):
		dialog.ShowInformation("Set polygon", "You must enter at least three points.", mw.Window)
	case errors.Is(err, chaos.ErrNoCorners):
		mw.updateStatus("Add polygon corners before advancing")
	default:
		log.Printf("event %T failed: %v", ev, err)
		dialog.ShowError(err, mw.Window)
	}
}

// updateStatus updates the status bar text.
func (mw *MainWindow) updateStatus(text string) {
	mw.statusBar.SetText(text)
}

// getLastDir returns the last used directory as a ListableURI, or nil.
func (mw *MainWindow) getLastDir() fyne.ListableURI {
	path := mw.app.Preferences().String(prefKeyLastDir)
	if path == "" {
		return nil
	}
	uri := storage.NewFileURI(path)
	listable, err := storage.ListerForURI(uri)
	if err != nil {
		return nil
	}
	return listable
}

// saveLastDir saves the directory of the given file path.
func (mw *MainWindow) saveLastDir(filePath string) {
	mw.app.Preferences().SetString(prefKeyLastDir, filepath.Dir(filePath))
}

func (mw *MainWindow) onExportImage() {
	mw.showSaveDialog("chaos.png", []string{".png", ".tiff", ".tif", ".bmp"}, mw.exportImage)
}

func (mw *MainWindow) onExportSVG() {
	mw.showSaveDialog("chaos.svg", []string{".svg"}, mw.exportSVG)
}

// showSaveDialog asks for a destination and passes its path to save.
func (mw *MainWindow) showSaveDialog(name string, exts []string, save func(path string) error) {
	fd := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		writer.Close()
		path := writer.URI().Path()
		mw.saveLastDir(path)
		if err := save(path); err != nil {
			dialog.ShowError(err, mw.Window)
			return
		}
		mw.updateStatus("Exported " + filepath.Base(path))
	}, mw.Window)
	fd.SetFileName(name)
	fd.SetFilter(storage.NewExtensionFileFilter(exts))
	if loc := mw.getLastDir(); loc != nil {
		fd.SetLocation(loc)
	}
	fd.Show()
}

// exportImage writes the canvas raster; the format follows the extension.
func (mw *MainWindow) exportImage(path string) error {
	log.Printf("exporting image to %s", path)
	return mw.canvas.Surface().Save(path)
}

// exportSVG writes every dot plotted since the last reset as SVG circles.
func (mw *MainWindow) exportSVG(path string) error {
	log.Printf("exporting %d dots to %s", mw.svg.Len(), path)
	return mw.svg.Save(path)
}

func (mw *MainWindow) onAbout() {
	dialog.ShowInformation("About Chaos Game",
		fmt.Sprintf("Chaos Game v%s\n\n"+
			"Click to place polygon corners, press Set polygon,\n"+
			"click a starting point, then click or press Next\n"+
			"to jump toward randomly chosen corners.\n\n"+
			"Built: %s\n"+
			"Commit: %s",
			version.Version, version.BuildTime, version.GitCommit),
		mw.Window)
}
