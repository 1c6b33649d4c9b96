package views

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// WinView is shown once the build is complete
type WinView struct {
	content      *fyne.Container
	againButton  *widget.Button
	quitButton   *widget.Button
	againHandler func()
	quitHandler  func()
}

// NewWinView creates the win screen
func NewWinView() *WinView {
	view := &WinView{}

	view.againButton = widget.NewButton("Build Again", func() {
		if view.againHandler != nil {
			view.againHandler()
		}
	})
	view.againButton.Importance = widget.HighImportance
	view.quitButton = widget.NewButton("Quit", func() {
		if view.quitHandler != nil {
			view.quitHandler()
		}
	})

	view.content = container.NewCenter(container.NewVBox(
		widget.NewLabelWithStyle("Congratulations!", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("You assembled a working PC.", fyne.TextAlignCenter, fyne.TextStyle{}),
		container.NewHBox(layout.NewSpacer(), view.againButton, view.quitButton, layout.NewSpacer()),
	))
	return view
}

// SetAgainHandler sets the handler for starting over
func (wv *WinView) SetAgainHandler(handler func()) {
	wv.againHandler = handler
}

// SetQuitHandler sets the handler for leaving the application
func (wv *WinView) SetQuitHandler(handler func()) {
	wv.quitHandler = handler
}

// GetAgainButton exposes the restart button
func (wv *WinView) GetAgainButton() *widget.Button {
	return wv.againButton
}

// GetQuitButton exposes the quit button
func (wv *WinView) GetQuitButton() *widget.Button {
	return wv.quitButton
}

// GetContainer returns the screen content
func (wv *WinView) GetContainer() *fyne.Container {
	return wv.content
}
