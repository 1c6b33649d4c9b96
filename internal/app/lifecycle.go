package app

import (
	"pc-builder/internal/logger"
	"pc-builder/internal/shutdown"
)

// Lifecycle stops long-lived components in reverse dependency order, either
// on window close or on a termination signal
type Lifecycle struct {
	manager    *shutdown.Manager
	logger     logger.Logger
	isShutdown bool
}

func NewLifecycle(log logger.Logger) *Lifecycle {
	return &Lifecycle{
		manager: shutdown.NewManager(log),
		logger:  log,
	}
}

// Register adds a component; later registrations stop first
func (l *Lifecycle) Register(name string, component shutdown.Shutdownable) {
	l.manager.Register(name, component)
}

// Listen watches for termination signals and calls quit after shutdown
func (l *Lifecycle) Listen(quit func()) {
	l.manager.Listen(quit)
}

func (l *Lifecycle) Shutdown() {
	if l.isShutdown {
		return
	}
	l.isShutdown = true
	l.manager.Shutdown()
}

// IsShutdown reports whether Shutdown has run
func (l *Lifecycle) IsShutdown() bool {
	return l.isShutdown
}
