package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/profile-sample/internal/config"
	"github.com/ytget/profile-sample/internal/ui"
	"github.com/ytget/profile-sample/internal/viewmodel"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.profile-sample"
	AppName = "Profile"
)

func main() {
	// Log version information
	fmt.Printf("%s v%s starting...\n", AppName, version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewProfileTheme())

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	// Initialize settings and localization
	settings := config.NewSettings(myApp)
	localization := ui.NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	// The screen owns the profile state; closing the window cancels its work
	state := viewmodel.New(ui.FyneDispatcher{}, viewmodel.WithCheckDelay(settings.GetEmailCheckDelay()))
	ui.NewProfileScreen(myWindow, state, settings, localization)

	// Show and run
	myWindow.ShowAndRun()
}
