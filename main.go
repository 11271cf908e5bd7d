// Package main provides the entry point for the Chaos Game application.
package main

import (
	"errors"
	"log"

	chaosapp "chaos-game/internal/app"
	"chaos-game/internal/chaos"
	"chaos-game/internal/version"
	"chaos-game/ui/mainwindow"
	"chaos-game/ui/prefs"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/dialog"
)

const (
	appID    = "io.github.chaos-game"
	appTitle = "Chaos Game"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Printf("Starting %s %s", appTitle, version.String())

	fyneApp := app.NewWithID(appID)
	fyneApp.Settings().SetTheme(&chaosapp.ChaosTheme{})

	appPrefs := prefs.Load()
	log.Printf("Preferences: %s", appPrefs.Path())

	win, err := mainwindow.New(fyneApp, appPrefs)
	if err != nil {
		showFatal(fyneApp, err)
		return
	}

	win.Resize(fyne.NewSize(640, 720))
	win.ShowAndRun()

	if err := win.SavePreferences(); err != nil {
		log.Printf("Failed to save preferences: %v", err)
	}
}

// showFatal shows a window that only reports why the game cannot run.
func showFatal(fyneApp fyne.App, err error) {
	log.Printf("Fatal: %v", err)

	msg := err
	if errors.Is(err, chaos.ErrSurfaceUnsupported) {
		msg = errors.New("your system does not provide a drawing surface for the canvas")
	}

	win := fyneApp.NewWindow(appTitle)
	win.Resize(fyne.NewSize(400, 200))
	dialog.ShowError(msg, win)
	win.ShowAndRun()
}
