package components

import (
	"image/color"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// StatusColors are cycled through by the status text
var StatusColors = []color.NRGBA{
	{R: 255, A: 255},                 // red
	{R: 255, G: 165, A: 255},         // orange
	{R: 255, G: 215, A: 255},         // yellow
	{G: 160, A: 255},                 // green
	{B: 255, A: 255},                 // blue
	{R: 75, B: 130, A: 255},          // indigo
	{R: 238, G: 130, B: 238, A: 255}, // violet
}

// ColorInterval is the time each status color is shown
const ColorInterval = 200 * time.Millisecond

// ProgressPanel shows build progress and a color-cycling status message
type ProgressPanel struct {
	container   *fyne.Container
	progressBar *widget.ProgressBar
	statusText  *canvas.Text

	percent    float64
	colorIndex int
	visible    bool

	mu   sync.Mutex
	stop chan struct{}
}

// NewProgressPanel creates a new progress panel component
func NewProgressPanel() *ProgressPanel {
	pp := &ProgressPanel{}
	pp.createComponents()
	pp.buildLayout()
	return pp
}

// createComponents initializes progress panel components
func (pp *ProgressPanel) createComponents() {
	pp.progressBar = widget.NewProgressBar()
	pp.progressBar.SetValue(0.0)

	pp.statusText = canvas.NewText("", StatusColors[0])
	pp.statusText.TextSize = 48
	pp.statusText.TextStyle = fyne.TextStyle{Bold: true}
	pp.statusText.Alignment = fyne.TextAlignCenter
	pp.statusText.Hide()
}

// buildLayout constructs the progress panel layout
func (pp *ProgressPanel) buildLayout() {
	pp.container = container.NewVBox(
		pp.statusText,
		pp.progressBar,
	)
}

// SetProgress updates the bar from a percentage (0 to 100)
func (pp *ProgressPanel) SetProgress(percent float64) {
	if percent < 0 {
		percent = 0
	} else if percent > 100 {
		percent = 100
	}
	pp.percent = percent
	pp.progressBar.SetValue(percent / 100)
}

// GetProgress returns the current percentage
func (pp *ProgressPanel) GetProgress() float64 {
	return pp.percent
}

// ShowStatus displays text above the bar
func (pp *ProgressPanel) ShowStatus(text string) {
	pp.statusText.Text = text
	pp.statusText.Show()
	pp.statusText.Refresh()
	pp.visible = true
}

// HideStatus hides the status text
func (pp *ProgressPanel) HideStatus() {
	pp.statusText.Hide()
	pp.visible = false
}

// GetStatus returns the status text, shown or not
func (pp *ProgressPanel) GetStatus() string {
	return pp.statusText.Text
}

// IsStatusVisible returns true if the status text is shown
func (pp *ProgressPanel) IsStatusVisible() bool {
	return pp.visible
}

// StatusColor returns the color the status text is drawn with
func (pp *ProgressPanel) StatusColor() color.Color {
	return pp.statusText.Color
}

// NextColor moves the status text to the next color of the cycle
func (pp *ProgressPanel) NextColor() {
	pp.colorIndex = (pp.colorIndex + 1) % len(StatusColors)
	pp.statusText.Color = StatusColors[pp.colorIndex]
	pp.statusText.Refresh()
}

// StartCycling changes the status color every interval until Shutdown
func (pp *ProgressPanel) StartCycling(interval time.Duration) {
	pp.mu.Lock()
	defer pp.mu.Unlock()
	if pp.stop != nil {
		return
	}
	stop := make(chan struct{})
	pp.stop = stop

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				fyne.Do(pp.NextColor)
			case <-stop:
				return
			}
		}
	}()
}

// Shutdown stops the color cycling
func (pp *ProgressPanel) Shutdown() {
	pp.mu.Lock()
	defer pp.mu.Unlock()
	if pp.stop != nil {
		close(pp.stop)
		pp.stop = nil
	}
}

// Reset clears progress and hides the status
func (pp *ProgressPanel) Reset() {
	pp.SetProgress(0)
	pp.HideStatus()
	pp.statusText.Text = ""
}

// GetContainer returns the progress panel container
func (pp *ProgressPanel) GetContainer() *fyne.Container {
	return pp.container
}
