package views

import (
	"image/color"
	"sync"
	"time"

	"pc-builder/internal/physics"
	"pc-builder/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Welcome animation geometry in pixels
const (
	iconStartX    = 140
	iconStartY    = -400
	floorY        = 370
	restitution   = 0.6
	sceneWidth    = 800
	sceneHeight   = 560
	frameInterval = 16 * time.Millisecond
)

// WelcomeView is the entry screen with the falling PC icon
type WelcomeView struct {
	content     *fyne.Container
	scene       *fyne.Container
	icon        *canvas.Image
	startButton *widget.Button
	body        *physics.Body

	startHandler func()

	mu   sync.Mutex
	stop chan struct{}
}

// NewWelcomeView creates the welcome screen
func NewWelcomeView() *WelcomeView {
	view := &WelcomeView{}
	view.initializeComponents()
	view.buildLayout()
	view.ResetAnimation()
	return view
}

// initializeComponents creates all UI components
func (wv *WelcomeView) initializeComponents() {
	wv.icon = canvas.NewImageFromImage(components.PCIcon(components.IconSize))
	wv.icon.FillMode = canvas.ImageFillStretch
	wv.icon.Resize(fyne.NewSize(components.IconSize, components.IconSize))

	wv.startButton = widget.NewButton("Start", func() {
		if wv.startHandler != nil {
			wv.startHandler()
		}
	})
	wv.startButton.Importance = widget.HighImportance
}

// buildLayout constructs the welcome screen layout
func (wv *WelcomeView) buildLayout() {
	title := widget.NewLabelWithStyle("Welcome to PC Builder", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	info := widget.NewLabelWithStyle(
		"Learn what goes into a computer, then put one together yourself.",
		fyne.TextAlignCenter, fyne.TextStyle{},
	)

	spacer := canvas.NewRectangle(color.Transparent)
	spacer.SetMinSize(fyne.NewSize(sceneWidth, sceneHeight))
	wv.scene = container.NewStack(spacer, container.NewWithoutLayout(wv.icon))

	wv.content = container.NewBorder(
		container.NewVBox(title, info),
		container.NewHBox(layout.NewSpacer(), wv.startButton, layout.NewSpacer()),
		nil, nil,
		wv.scene,
	)
}

// SetStartHandler sets the handler for the start button
func (wv *WelcomeView) SetStartHandler(handler func()) {
	wv.startHandler = handler
}

// ResetAnimation puts the icon back above the scene
func (wv *WelcomeView) ResetAnimation() {
	wv.body = physics.NewBodyPx(iconStartX, iconStartY, components.IconSize, components.IconSize, floorY, restitution)
	wv.syncIcon()
}

// Tick advances the animation by one fixed step and reports whether the
// icon has come to rest
func (wv *WelcomeView) Tick() bool {
	wv.body.Step(physics.TimeStep)
	wv.syncIcon()
	return wv.body.Resting()
}

// IconPosition returns the icon's top-left corner
func (wv *WelcomeView) IconPosition() fyne.Position {
	return wv.icon.Position()
}

// StartAnimation runs the animation on a ticker until the icon rests or
// StopAnimation is called. Frames are applied on the UI goroutine.
func (wv *WelcomeView) StartAnimation() {
	wv.mu.Lock()
	defer wv.mu.Unlock()
	if wv.stop != nil {
		return
	}
	stop := make(chan struct{})
	wv.stop = stop

	go func() {
		ticker := time.NewTicker(frameInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				rested := make(chan bool, 1)
				fyne.Do(func() { rested <- wv.Tick() })
				select {
				case r := <-rested:
					if r {
						wv.finish(stop)
						return
					}
				case <-stop:
					return
				}
			case <-stop:
				return
			}
		}
	}()
}

// StopAnimation stops the ticker; calling it twice is harmless
func (wv *WelcomeView) StopAnimation() {
	wv.mu.Lock()
	defer wv.mu.Unlock()
	if wv.stop != nil {
		close(wv.stop)
		wv.stop = nil
	}
}

// finish releases stop if it still belongs to the running animation
func (wv *WelcomeView) finish(stop chan struct{}) {
	wv.mu.Lock()
	defer wv.mu.Unlock()
	if wv.stop == stop {
		close(stop)
		wv.stop = nil
	}
}

// Animating reports whether the ticker is running
func (wv *WelcomeView) Animating() bool {
	wv.mu.Lock()
	defer wv.mu.Unlock()
	return wv.stop != nil
}

// GetStartButton exposes the start button
func (wv *WelcomeView) GetStartButton() *widget.Button {
	return wv.startButton
}

// GetContainer returns the screen content
func (wv *WelcomeView) GetContainer() *fyne.Container {
	return wv.content
}

// Shutdown stops the animation
func (wv *WelcomeView) Shutdown() {
	wv.StopAnimation()
}

func (wv *WelcomeView) syncIcon() {
	x, y := wv.body.TopLeftPx()
	wv.icon.Move(fyne.NewPos(float32(x), float32(y)))
}
