// Package main provides the entry point for the Floor Sketch editor.
package main

import (
	"log"
	"os"

	"floorsketch/internal/app"
	"floorsketch/internal/version"
	"floorsketch/ui/mainwindow"
	"floorsketch/ui/prefs"

	fyneapp "fyne.io/fyne/v2/app"
)

const appTitle = "Floor Sketch"

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Printf("Starting %s v%s", appTitle, version.Version)

	fyneApp := fyneapp.NewWithID("floorsketch")
	fyneApp.Settings().SetTheme(&app.SketchTheme{})

	appState := app.NewState()
	appPrefs := prefs.Load()
	appPrefs.Apply(appState.Sketch)

	win := mainwindow.New(fyneApp, appState, appPrefs)

	// Handle command line arguments
	if len(os.Args) > 1 {
		win.OpenFile(os.Args[1])
	}

	win.Show()
}
