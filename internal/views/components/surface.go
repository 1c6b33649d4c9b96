package components

import (
	"image"
	"image/color"

	"pc-builder/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

const (
	SurfaceWidth  = 900
	SurfaceHeight = 660
)

// surfacePart is one draggable visual on the surface
type surfacePart struct {
	id    string
	title string
	image *canvas.Image
	pos   image.Point
	size  models.Size
}

// DragSurface is the work area parts are dragged across. It positions part
// visuals absolutely, one unit per pixel, and reports press and drop
// positions in the same coordinates.
type DragSurface struct {
	widget.BaseWidget

	background *canvas.Rectangle
	layer      *fyne.Container
	tooltip    *fyne.Container
	tipText    *canvas.Text

	parts map[string]*surfacePart
	order []string

	pressHandler  func(image.Point) (string, bool)
	dropHandler   func(image.Point)
	cancelHandler func()

	active  string
	grab    image.Point
	cursor  image.Point
	dragged bool
}

// NewDragSurface creates an empty surface
func NewDragSurface() *DragSurface {
	s := &DragSurface{parts: make(map[string]*surfacePart)}

	s.background = canvas.NewRectangle(color.NRGBA{R: 236, G: 240, B: 244, A: 255})
	s.background.SetMinSize(fyne.NewSize(SurfaceWidth, SurfaceHeight))

	s.tipText = canvas.NewText("", color.White)
	s.tipText.TextSize = 12
	tipBackground := canvas.NewRectangle(color.NRGBA{R: 30, G: 30, B: 30, A: 220})
	s.tooltip = container.NewStack(tipBackground, container.NewPadded(s.tipText))
	s.tooltip.Hide()

	s.layer = container.NewWithoutLayout()
	s.ExtendBaseWidget(s)
	return s
}

// CreateRenderer implements fyne.Widget
func (s *DragSurface) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewStack(s.background, s.layer))
}

// SetPressHandler sets the handler asked whether a press starts a drag. It
// returns the id of the part picked up.
func (s *DragSurface) SetPressHandler(handler func(image.Point) (string, bool)) {
	s.pressHandler = handler
}

// SetDropHandler sets the handler called when a drag ends
func (s *DragSurface) SetDropHandler(handler func(image.Point)) {
	s.dropHandler = handler
}

// SetCancelHandler sets the handler called when a drag is aborted
func (s *DragSurface) SetCancelHandler(handler func()) {
	s.cancelHandler = handler
}

// Add places a new part visual, or replaces the one with the same id
func (s *DragSurface) Add(id, title string, visual image.Image, pos image.Point, size models.Size) {
	if old, ok := s.parts[id]; ok {
		s.layer.Remove(old.image)
		s.removeOrder(id)
	}

	img := canvas.NewImageFromImage(visual)
	img.FillMode = canvas.ImageFillStretch
	img.ScaleMode = canvas.ImageScalePixels

	part := &surfacePart{id: id, title: title, image: img, size: size}
	s.parts[id] = part
	s.order = append(s.order, id)
	s.layer.Add(img)
	s.setGeometry(part, pos, size)
	s.raiseTooltip()
}

// Place moves part id to pos with the given size and draws it on top
func (s *DragSurface) Place(id string, pos image.Point, size models.Size) {
	part, ok := s.parts[id]
	if !ok {
		return
	}
	s.setGeometry(part, pos, size)
	s.Raise(id)
}

// MovePart repositions part id keeping its size
func (s *DragSurface) MovePart(id string, pos image.Point) {
	if part, ok := s.parts[id]; ok {
		s.setGeometry(part, pos, part.size)
	}
}

// Raise draws part id above every other part
func (s *DragSurface) Raise(id string) {
	part, ok := s.parts[id]
	if !ok {
		return
	}
	s.layer.Remove(part.image)
	s.layer.Add(part.image)
	s.removeOrder(id)
	s.order = append(s.order, id)
	s.raiseTooltip()
}

// Clear removes every part and aborts any drag
func (s *DragSurface) Clear() {
	s.layer.RemoveAll()
	s.parts = make(map[string]*surfacePart)
	s.order = nil
	s.active = ""
	s.dragged = false
	s.tooltip.Hide()
}

// PartPosition returns where part id is drawn
func (s *DragSurface) PartPosition(id string) (image.Point, bool) {
	part, ok := s.parts[id]
	if !ok {
		return image.Point{}, false
	}
	return part.pos, true
}

// Order returns part ids from bottom to top
func (s *DragSurface) Order() []string {
	return append([]string(nil), s.order...)
}

// Tooltip returns the visible tooltip text, or "" when hidden
func (s *DragSurface) Tooltip() string {
	if !s.tooltip.Visible() {
		return ""
	}
	return s.tipText.Text
}

// Dragging returns the id of the part being dragged
func (s *DragSurface) Dragging() (string, bool) {
	return s.active, s.active != ""
}

// MouseDown implements desktop.Mouseable
func (s *DragSurface) MouseDown(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary {
		return
	}
	s.press(toPoint(ev.Position))
}

// MouseUp implements desktop.Mouseable. A release without movement still
// counts as a drop.
func (s *DragSurface) MouseUp(ev *desktop.MouseEvent) {
	if s.active == "" || s.dragged {
		return
	}
	s.drop(toPoint(ev.Position))
}

// Dragged implements fyne.Draggable
func (s *DragSurface) Dragged(ev *fyne.DragEvent) {
	cursor := toPoint(ev.Position)
	if s.active == "" {
		start := toPoint(ev.Position.Subtract(ev.Dragged))
		if !s.press(start) {
			return
		}
	}
	s.dragged = true
	s.tooltip.Hide()
	s.cursor = cursor
	s.MovePart(s.active, cursor.Sub(s.grab))
}

// DragEnd implements fyne.Draggable
func (s *DragSurface) DragEnd() {
	if s.active == "" {
		return
	}
	s.drop(s.cursor)
}

// CancelDrag aborts the current drag and puts the visual back
func (s *DragSurface) CancelDrag(origin image.Point) {
	if s.active == "" {
		return
	}
	s.MovePart(s.active, origin)
	s.active = ""
	s.dragged = false
	if s.cancelHandler != nil {
		s.cancelHandler()
	}
}

// MouseIn implements desktop.Hoverable
func (s *DragSurface) MouseIn(ev *desktop.MouseEvent) {
	s.MouseMoved(ev)
}

// MouseMoved implements desktop.Hoverable and shows the part title under the pointer
func (s *DragSurface) MouseMoved(ev *desktop.MouseEvent) {
	if s.active != "" {
		return
	}
	p := toPoint(ev.Position)
	part, ok := s.partAt(p)
	if !ok || part.title == "" {
		s.tooltip.Hide()
		return
	}
	s.tipText.Text = part.title
	s.tipText.Refresh()
	s.tooltip.Resize(s.tooltip.MinSize())
	s.tooltip.Move(ev.Position.Add(fyne.NewPos(12, 16)))
	s.tooltip.Show()
}

// MouseOut implements desktop.Hoverable
func (s *DragSurface) MouseOut() {
	s.tooltip.Hide()
}

func (s *DragSurface) press(cursor image.Point) bool {
	if s.pressHandler == nil {
		return false
	}
	id, ok := s.pressHandler(cursor)
	if !ok {
		return false
	}
	part, found := s.parts[id]
	if !found {
		return false
	}
	s.active = id
	s.grab = cursor.Sub(part.pos)
	s.cursor = cursor
	s.dragged = false
	s.Raise(id)
	return true
}

func (s *DragSurface) drop(cursor image.Point) {
	s.active = ""
	s.dragged = false
	if s.dropHandler != nil {
		s.dropHandler(cursor)
	}
}

func (s *DragSurface) partAt(p image.Point) (*surfacePart, bool) {
	for i := len(s.order) - 1; i >= 0; i-- {
		part := s.parts[s.order[i]]
		if p.In(image.Rectangle{Min: part.pos, Max: part.pos.Add(image.Pt(part.size.Width, part.size.Height))}) {
			return part, true
		}
	}
	return nil, false
}

func (s *DragSurface) setGeometry(part *surfacePart, pos image.Point, size models.Size) {
	part.pos = pos
	part.size = size
	part.image.Move(fyne.NewPos(float32(pos.X), float32(pos.Y)))
	part.image.Resize(fyne.NewSize(float32(size.Width), float32(size.Height)))
	s.layer.Refresh()
}

func (s *DragSurface) raiseTooltip() {
	s.layer.Remove(s.tooltip)
	s.layer.Add(s.tooltip)
}

func (s *DragSurface) removeOrder(id string) {
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			return
		}
	}
}

func toPoint(p fyne.Position) image.Point {
	return image.Pt(int(p.X), int(p.Y))
}
