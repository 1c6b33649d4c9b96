package controllers

import (
	"image"
	"sync"
	"time"

	"pc-builder/internal/blueprint"
	"pc-builder/internal/logger"
	"pc-builder/internal/models"
	"pc-builder/internal/services"
	"pc-builder/internal/validator"
	"pc-builder/internal/views"

	"fyne.io/fyne/v2"
)

// Texts of the confirmation shown when leaving a build in progress
const (
	AbandonTitle   = "Abandon this build?"
	AbandonMessage = "The parts you placed will be taken out again."
)

// DefaultWinDelay keeps the build screen up long enough to read "Nice Job!"
const DefaultWinDelay = 1500 * time.Millisecond

// MainController connects the views to the build engine and moves between
// the welcome, build and win screens
type MainController struct {
	mainView *views.MainView
	drag     *services.DragController
	logger   logger.Logger

	payload  models.DragPayload
	winDelay time.Duration
	quit     func()

	mu       sync.Mutex
	winTimer *time.Timer
}

// NewMainController creates a controller for the build described by bp.
// sound may be nil.
func NewMainController(view *views.MainView, bp *blueprint.Blueprint, sound services.Sound, log logger.Logger) *MainController {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	mc := &MainController{
		mainView: view,
		logger:   log,
		winDelay: DefaultWinDelay,
	}

	build := view.Build()
	feedback := services.NewFeedbackOrchestrator(build, sound, build, mc, log)
	mc.drag = services.NewDragController(
		bp.Table,
		validator.New(bp.Steps),
		models.DefaultCatalog(),
		feedback,
		build,
		log,
	)

	mc.setupViewEventHandlers()
	return mc
}

// SetWinDelay sets how long the finished build stays visible. Zero switches
// to the win screen immediately.
func (mc *MainController) SetWinDelay(d time.Duration) {
	mc.winDelay = d
}

// SetQuitHandler sets what the win screen's quit button does
func (mc *MainController) SetQuitHandler(quit func()) {
	mc.quit = quit
}

// Start shows the welcome screen
func (mc *MainController) Start() {
	mc.logger.Info("MainController", "showing welcome screen", nil)
	mc.mainView.ShowWelcome()
}

// StartBuild begins a fresh build attempt
func (mc *MainController) StartBuild() {
	mc.stopWinTimer()
	mc.drag.Reset()
	mc.payload = models.DragPayload{}

	build := mc.mainView.Build()
	build.Load(mc.drag.Components())
	mc.updateStep()
	mc.mainView.ShowBuild()

	mc.logger.Info("MainController", "build started", map[string]interface{}{
		"steps": mc.drag.Steps(),
	})
}

// Back returns to the welcome screen. A build with placed parts is only
// abandoned after the user confirms.
func (mc *MainController) Back() {
	if s, ok := mc.drag.Dragging(); ok {
		mc.mainView.Build().GetSurface().CancelDrag(s.Origin)
	}
	mc.drag.Cancel()

	if mc.inProgress() {
		mc.mainView.ShowConfirm(AbandonTitle, AbandonMessage, func(confirmed bool) {
			if confirmed {
				mc.abandon()
			}
		})
		return
	}
	mc.abandon()
}

func (mc *MainController) inProgress() bool {
	return mc.mainView.Current() == views.ScreenBuild &&
		mc.drag.CurrentStep() > 1 && !mc.drag.IsComplete()
}

func (mc *MainController) abandon() {
	mc.stopWinTimer()
	mc.drag.Reset()

	mc.logger.Info("MainController", "build abandoned", nil)
	mc.mainView.ShowWelcome()
}

// OnCompleted implements services.WinTransition
func (mc *MainController) OnCompleted() {
	mc.logger.Info("MainController", "build complete", nil)
	if mc.winDelay <= 0 {
		mc.mainView.ShowWin()
		return
	}

	mc.mu.Lock()
	defer mc.mu.Unlock()
	mc.winTimer = time.AfterFunc(mc.winDelay, func() {
		fyne.Do(mc.mainView.ShowWin)
	})
}

// Drag returns the build engine
func (mc *MainController) Drag() *services.DragController {
	return mc.drag
}

// Shutdown stops pending screen changes. It may run off the UI goroutine,
// so the drag engine is left alone.
func (mc *MainController) Shutdown() {
	mc.stopWinTimer()
}

// setupViewEventHandlers connects view events to controller methods
func (mc *MainController) setupViewEventHandlers() {
	mc.mainView.Welcome().SetStartHandler(mc.StartBuild)
	mc.mainView.Win().SetAgainHandler(mc.Back)
	mc.mainView.Win().SetQuitHandler(func() {
		if mc.quit != nil {
			mc.quit()
		}
	})

	build := mc.mainView.Build()
	build.SetBackHandler(mc.Back)
	build.SetPressHandler(mc.press)
	build.SetDropHandler(mc.drop)
	build.SetCancelHandler(mc.drag.Cancel)
}

func (mc *MainController) press(cursor image.Point) (string, bool) {
	payload, ok := mc.drag.PressAt(cursor)
	if !ok {
		return "", false
	}
	mc.payload = payload
	return payload.ComponentID, true
}

func (mc *MainController) drop(cursor image.Point) {
	payload := mc.payload
	mc.payload = models.DragPayload{}

	out, ok := mc.drag.Drop(payload, cursor)
	if !ok {
		return
	}
	mc.updateStep()

	mc.logger.Debug("MainController", "drop handled", map[string]interface{}{
		"part":    out.ComponentID,
		"outcome": out.Outcome.String(),
		"final":   out.Final.String(),
	})
}

func (mc *MainController) updateStep() {
	mc.mainView.Build().SetStep(mc.drag.CurrentStep(), mc.drag.Steps(), mc.drag.Hint())
}

func (mc *MainController) stopWinTimer() {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	if mc.winTimer != nil {
		mc.winTimer.Stop()
		mc.winTimer = nil
	}
}

var _ services.WinTransition = (*MainController)(nil)
