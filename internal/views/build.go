package views

import (
	"image"

	"pc-builder/internal/models"
	"pc-builder/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
)

// Notice is a dialog shown to the user
type Notice struct {
	Title string
	Text  string
}

// BuildView is the screen where parts are dragged into the case. It is the
// display surface and notifier for the drag controller, and is only touched
// from the UI goroutine.
type BuildView struct {
	window   fyne.Window
	content  *fyne.Container
	toolbar  *components.Toolbar
	surface  *components.DragSurface
	progress *components.ProgressPanel

	notices []Notice
}

// NewBuildView creates the build screen
func NewBuildView(window fyne.Window) *BuildView {
	view := &BuildView{window: window}
	view.initializeComponents()
	view.buildLayout()
	return view
}

// initializeComponents creates all UI components
func (bv *BuildView) initializeComponents() {
	bv.toolbar = components.NewToolbar()
	bv.surface = components.NewDragSurface()
	bv.progress = components.NewProgressPanel()
}

// buildLayout constructs the build screen layout
func (bv *BuildView) buildLayout() {
	bv.content = container.NewBorder(
		bv.toolbar.GetContainer(),
		bv.progress.GetContainer(),
		nil,
		nil,
		bv.surface,
	)
}

// Load puts every component on the surface at its current position
func (bv *BuildView) Load(parts []*models.Component) {
	bv.surface.Clear()
	for _, p := range parts {
		bv.surface.Add(p.ID, p.Title, p.Visual, p.Position, p.Size)
	}
	bv.progress.Reset()
	bv.notices = nil
}

// SetPressHandler sets the handler for presses on the surface
func (bv *BuildView) SetPressHandler(handler func(image.Point) (string, bool)) {
	bv.surface.SetPressHandler(handler)
}

// SetDropHandler sets the handler for drops on the surface
func (bv *BuildView) SetDropHandler(handler func(image.Point)) {
	bv.surface.SetDropHandler(handler)
}

// SetCancelHandler sets the handler for aborted drags
func (bv *BuildView) SetCancelHandler(handler func()) {
	bv.surface.SetCancelHandler(handler)
}

// SetBackHandler sets the handler for the back button
func (bv *BuildView) SetBackHandler(handler func()) {
	bv.toolbar.SetBackHandler(handler)
}

// SetStep updates the task shown in the toolbar
func (bv *BuildView) SetStep(step, total int, hint string) {
	bv.toolbar.SetStep(step, total, hint)
}

// SetProgress implements services.Display
func (bv *BuildView) SetProgress(percent float64) {
	bv.progress.SetProgress(percent)
}

// ShowStatus implements services.Display
func (bv *BuildView) ShowStatus(text string) {
	bv.progress.ShowStatus(text)
}

// HideStatus implements services.Display
func (bv *BuildView) HideStatus() {
	bv.progress.HideStatus()
}

// PlaceVisual implements services.Display
func (bv *BuildView) PlaceVisual(id string, pos image.Point, size models.Size) {
	bv.surface.Place(id, pos, size)
}

// MoveVisual implements services.Display
func (bv *BuildView) MoveVisual(id string, pos image.Point) {
	bv.surface.MovePart(id, pos)
}

// Notify implements services.Notifier with a modal information dialog.
// The dialog blocks window input until dismissed but not the event loop.
func (bv *BuildView) Notify(title, text string) {
	bv.notices = append(bv.notices, Notice{Title: title, Text: text})
	dialog.ShowInformation(title, text, bv.window)
}

// Notices returns the dialogs shown since the last Load
func (bv *BuildView) Notices() []Notice {
	return append([]Notice(nil), bv.notices...)
}

// GetSurface returns the drag surface
func (bv *BuildView) GetSurface() *components.DragSurface {
	return bv.surface
}

// GetProgress returns the progress panel
func (bv *BuildView) GetProgress() *components.ProgressPanel {
	return bv.progress
}

// GetToolbar returns the toolbar
func (bv *BuildView) GetToolbar() *components.Toolbar {
	return bv.toolbar
}

// GetContainer returns the screen content
func (bv *BuildView) GetContainer() *fyne.Container {
	return bv.content
}

// Shutdown stops the status color cycling
func (bv *BuildView) Shutdown() {
	bv.progress.Shutdown()
}
