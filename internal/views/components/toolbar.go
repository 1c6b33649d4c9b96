package components

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Toolbar sits above the drag surface: back navigation and the current task
type Toolbar struct {
	container  *fyne.Container
	backButton *widget.Button
	stepLabel  *widget.Label
	hintLabel  *widget.Label

	backHandler func()
}

// NewToolbar creates a new toolbar component
func NewToolbar() *Toolbar {
	toolbar := &Toolbar{}
	toolbar.createComponents()
	toolbar.buildLayout()
	return toolbar
}

// createComponents initializes all toolbar components
func (t *Toolbar) createComponents() {
	t.backButton = widget.NewButtonWithIcon("Back", theme.NavigateBackIcon(), func() {
		if t.backHandler != nil {
			t.backHandler()
		}
	})
	t.backButton.Importance = widget.MediumImportance

	t.stepLabel = widget.NewLabel("")
	t.stepLabel.TextStyle = fyne.TextStyle{Bold: true}
	t.hintLabel = widget.NewLabel("")
}

// buildLayout constructs the toolbar layout
func (t *Toolbar) buildLayout() {
	t.container = container.NewHBox(
		t.backButton,
		widget.NewSeparator(),
		t.stepLabel,
		t.hintLabel,
	)
}

// SetBackHandler sets the back button handler
func (t *Toolbar) SetBackHandler(handler func()) {
	t.backHandler = handler
}

// SetStep shows which step of how many is in progress. A step past total
// reads as finished.
func (t *Toolbar) SetStep(step, total int, hint string) {
	if step > total {
		t.stepLabel.SetText("Build complete")
		t.hintLabel.SetText("")
		return
	}
	t.stepLabel.SetText(fmt.Sprintf("Step %d of %d", step, total))
	t.hintLabel.SetText(fmt.Sprintf("Install the %s", hint))
}

// GetStep returns the step label text
func (t *Toolbar) GetStep() string {
	return t.stepLabel.Text
}

// GetHint returns the hint label text
func (t *Toolbar) GetHint() string {
	return t.hintLabel.Text
}

// GetBackButton exposes the back button
func (t *Toolbar) GetBackButton() *widget.Button {
	return t.backButton
}

// GetContainer returns the toolbar container
func (t *Toolbar) GetContainer() *fyne.Container {
	return t.container
}
