package main

import (
	"log"
	"runtime"

	"pc-builder/internal/app"
	"pc-builder/internal/config"
	"pc-builder/internal/logger"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration invalid: %v", err)
	}

	appLogger := logger.New(cfg.LogLevel, cfg.JSONLogs)
	appLogger.Info("Main", "application starting", map[string]interface{}{
		"version":    app.AppVersion,
		"go_version": runtime.Version(),
		"log_level":  cfg.LogLevel.String(),
		"blueprint":  cfg.Blueprint,
	})

	fyneapp.SetMetadata(fyne.AppMetadata{
		ID:      app.AppID,
		Name:    app.AppName,
		Version: app.AppVersion,
	})
	fyneApp := fyneapp.NewWithID(app.AppID)

	application, err := app.NewApplication(fyneApp, cfg, appLogger)
	if err != nil {
		appLogger.Error("Main", err, nil)
		log.Fatalf("Application initialization failed: %v", err)
	}

	if err := application.Run(); err != nil {
		log.Fatalf("Application execution failed: %v", err)
	}

	appLogger.Info("Main", "application terminated", nil)
}
