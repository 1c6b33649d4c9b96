package models

import "image"

// DragFormat tags payloads produced by this application's drag surface
const DragFormat = "application/x-dnditemdata"

// DragPayload travels with a drag gesture from press to drop
type DragPayload struct {
	Format      string
	ComponentID string
	Visual      image.Image
	Offset      image.Point
	hasOffset   bool
}

// NewDragPayload builds an internal payload carrying the part visual and grab offset
func NewDragPayload(id string, visual image.Image, offset image.Point) DragPayload {
	return DragPayload{
		Format:      DragFormat,
		ComponentID: id,
		Visual:      visual,
		Offset:      offset,
		hasOffset:   true,
	}
}

// Valid reports whether the payload came from this application and is complete
func (p DragPayload) Valid() bool {
	return p.Format == DragFormat && p.ComponentID != "" && p.Visual != nil && p.hasOffset
}

// DragSession is the state of one press-to-drop gesture
type DragSession struct {
	ComponentID string
	Size        Size
	Origin      image.Point
	Offset      image.Point
}
