package models

import (
	"fmt"
	"image"
)

// Size is an integer width/height pair in display coordinates
type Size struct {
	Width  int
	Height int
}

// NewSize creates a size
func NewSize(w, h int) Size {
	return Size{Width: w, Height: h}
}

// Half returns the offset from a component origin to its center
func (s Size) Half() image.Point {
	return image.Pt(s.Width/2, s.Height/2)
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// Rect is an axis-aligned rectangle whose bounds are both inclusive.
// image.Rectangle is half-open, which would drop the zone edges.
type Rect struct {
	Min image.Point
	Max image.Point
}

// NewRect builds a rect from its corner coordinates
func NewRect(x0, y0, x1, y1 int) Rect {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	return Rect{Min: image.Pt(x0, y0), Max: image.Pt(x1, y1)}
}

// Contains reports whether p lies inside r, edges included
func (r Rect) Contains(p image.Point) bool {
	return r.Min.X <= p.X && p.X <= r.Max.X &&
		r.Min.Y <= p.Y && p.Y <= r.Max.Y
}

// Intersects reports whether r and o share at least one point
func (r Rect) Intersects(o Rect) bool {
	return r.Min.X <= o.Max.X && o.Min.X <= r.Max.X &&
		r.Min.Y <= o.Max.Y && o.Min.Y <= r.Max.Y
}

func (r Rect) String() string {
	return fmt.Sprintf("[%d,%d]-[%d,%d]", r.Min.X, r.Min.Y, r.Max.X, r.Max.Y)
}
