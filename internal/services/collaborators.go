package services

import (
	"image"

	"pc-builder/internal/audio"
	"pc-builder/internal/models"
)

// Display is the surface the test screen renders onto
type Display interface {
	SetProgress(percent float64)
	ShowStatus(text string)
	HideStatus()
	PlaceVisual(id string, pos image.Point, size models.Size)
	MoveVisual(id string, pos image.Point)
}

// Sound plays a feedback cue without waiting for it to finish
type Sound interface {
	Play(cue audio.Cue)
}

// Notifier shows a modal message the user has to dismiss
type Notifier interface {
	Notify(title, text string)
}

// WinTransition hands control to the win screen once the build is complete
type WinTransition interface {
	OnCompleted()
}
