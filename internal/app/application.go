package app

import (
	"fmt"

	"pc-builder/internal/audio"
	"pc-builder/internal/blueprint"
	"pc-builder/internal/config"
	"pc-builder/internal/controllers"
	"pc-builder/internal/logger"
	"pc-builder/internal/views"
	"pc-builder/internal/views/components"

	"fyne.io/fyne/v2"
)

const (
	AppName      = "PC Builder"
	AppID        = "com.pcbuilder.trainer"
	AppVersion   = "1.0.0"
	WindowWidth  = 960
	WindowHeight = 820
)

type Application struct {
	fyneApp    fyne.App
	window     fyne.Window
	config     config.Config
	logger     logger.Logger
	player     *audio.Player
	view       *views.MainView
	controller *controllers.MainController
	lifecycle  *Lifecycle
	loadErr    error
}

// NewApplication assembles the trainer inside fyneApp
func NewApplication(fyneApp fyne.App, cfg config.Config, log logger.Logger) (*Application, error) {
	if log == nil {
		log = logger.NoOpLogger{}
	}

	bp, loadErr := blueprint.Load(cfg.Blueprint)
	if loadErr != nil {
		log.Error("Application", loadErr, map[string]interface{}{
			"blueprint": cfg.Blueprint,
		})
		var err error
		if bp, err = blueprint.Default(); err != nil {
			return nil, fmt.Errorf("loading built-in blueprint: %w", err)
		}
	}
	for _, pair := range bp.Table.Overlaps() {
		log.Debug("Application", "zones overlap, table order decides", map[string]interface{}{
			"first":  pair[0],
			"second": pair[1],
		})
	}

	player := audio.NewPlayer(cfg.Audio, log)
	if err := player.Start(); err != nil {
		log.Warning("Application", "audio unavailable, continuing silently", map[string]interface{}{
			"error": err.Error(),
		})
	}

	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(WindowWidth, WindowHeight))
	window.SetFixedSize(true)
	window.CenterOnScreen()
	window.SetMaster()

	view := views.NewMainView(window)
	controller := controllers.NewMainController(view, bp, player, log)
	controller.SetQuitHandler(fyneApp.Quit)

	if loadErr != nil {
		view.ShowError(fmt.Errorf("blueprint %s could not be used, the built-in build is loaded instead: %w", cfg.Blueprint, loadErr))
	}

	lifecycle := NewLifecycle(log)
	lifecycle.Register("audio player", player)
	lifecycle.Register("main view", view)
	lifecycle.Register("main controller", controller)

	log.Info("Application", "initialization complete", map[string]interface{}{
		"version":   AppVersion,
		"blueprint": bp.Name,
		"steps":     len(bp.Steps),
		"silent":    player.Silent(),
	})

	return &Application{
		fyneApp:    fyneApp,
		window:     window,
		config:     cfg,
		logger:     log,
		player:     player,
		view:       view,
		controller: controller,
		lifecycle:  lifecycle,
		loadErr:    loadErr,
	}, nil
}

// Show puts the welcome screen up and starts the view tickers
func (a *Application) Show() {
	a.window.SetCloseIntercept(func() {
		a.logger.Info("Application", "shutdown requested", nil)
		a.lifecycle.Shutdown()
		a.window.Close()
	})

	a.controller.Start()
	a.view.Build().GetProgress().StartCycling(components.ColorInterval)
	a.view.Show()
}

// Run shows the window and blocks until the application exits
func (a *Application) Run() error {
	a.lifecycle.Listen(func() {
		fyne.Do(a.fyneApp.Quit)
	})
	a.Show()

	a.logger.Info("Application", "GUI displayed", nil)
	a.fyneApp.Run()

	a.lifecycle.Shutdown()
	return nil
}

// BlueprintError returns why the configured blueprint was rejected, if it was
func (a *Application) BlueprintError() error {
	return a.loadErr
}

// Controller returns the main controller
func (a *Application) Controller() *controllers.MainController {
	return a.controller
}

// View returns the main view
func (a *Application) View() *views.MainView {
	return a.view
}

// Player returns the audio player
func (a *Application) Player() *audio.Player {
	return a.player
}

// Lifecycle returns the shutdown coordinator
func (a *Application) Lifecycle() *Lifecycle {
	return a.lifecycle
}
