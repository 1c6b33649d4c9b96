package views

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
)

// Screen identifies which view fills the window
type Screen int

const (
	ScreenWelcome Screen = iota
	ScreenBuild
	ScreenWin
)

func (s Screen) String() string {
	switch s {
	case ScreenBuild:
		return "build"
	case ScreenWin:
		return "win"
	default:
		return "welcome"
	}
}

// MainView owns the window and switches between the three screens
type MainView struct {
	window  fyne.Window
	welcome *WelcomeView
	build   *BuildView
	win     *WinView
	current Screen
	animate bool
}

// NewMainView creates a new main view
func NewMainView(window fyne.Window) *MainView {
	view := &MainView{
		window:  window,
		welcome: NewWelcomeView(),
		build:   NewBuildView(window),
		win:     NewWinView(),
		animate: true,
	}
	view.setScreen(ScreenWelcome, view.welcome.GetContainer())
	return view
}

// SetAnimate turns the welcome animation ticker on or off. When off the
// icon only moves through WelcomeView.Tick.
func (mv *MainView) SetAnimate(enabled bool) {
	mv.animate = enabled
	if !enabled {
		mv.welcome.StopAnimation()
	}
}

// ShowWelcome switches to the welcome screen and restarts its animation
func (mv *MainView) ShowWelcome() {
	mv.welcome.ResetAnimation()
	mv.setScreen(ScreenWelcome, mv.welcome.GetContainer())
	if mv.animate {
		mv.welcome.StartAnimation()
	}
}

// ShowBuild switches to the build screen
func (mv *MainView) ShowBuild() {
	mv.welcome.StopAnimation()
	mv.setScreen(ScreenBuild, mv.build.GetContainer())
}

// ShowWin switches to the win screen
func (mv *MainView) ShowWin() {
	mv.setScreen(ScreenWin, mv.win.GetContainer())
}

// Current returns the visible screen
func (mv *MainView) Current() Screen {
	return mv.current
}

// Welcome returns the welcome screen
func (mv *MainView) Welcome() *WelcomeView {
	return mv.welcome
}

// Build returns the build screen
func (mv *MainView) Build() *BuildView {
	return mv.build
}

// Win returns the win screen
func (mv *MainView) Win() *WinView {
	return mv.win
}

// ShowError displays an error dialog
func (mv *MainView) ShowError(err error) {
	dialog.ShowError(err, mv.window)
}

// ShowConfirm displays a confirmation dialog
func (mv *MainView) ShowConfirm(title, message string, callback func(bool)) {
	dialog.ShowConfirm(title, message, callback, mv.window)
}

// GetWindow returns the main window
func (mv *MainView) GetWindow() fyne.Window {
	return mv.window
}

// Show displays the main window
func (mv *MainView) Show() {
	mv.window.Show()
}

// Shutdown stops the view tickers
func (mv *MainView) Shutdown() {
	mv.welcome.Shutdown()
	mv.build.Shutdown()
}

func (mv *MainView) setScreen(s Screen, content fyne.CanvasObject) {
	mv.current = s
	mv.window.SetContent(content)
}
