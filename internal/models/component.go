package models

import (
	"image"
	"image/color"
	"image/draw"
	"sort"
)

// Component identifiers used by the build
const (
	CaseID        = "caseLabel"
	BackgroundID  = "background"
	MotherboardID = "motherboardLabel"
	CPUID         = "cpuLabel"
	MemoryID      = "memoryLabel"
	GPUID         = "gpuLabel"
	RAM1ID        = "ramLabel1"
	RAM2ID        = "ramLabel2"
)

// Component is a simulated PC part shown on the test screen
type Component struct {
	ID       string
	Title    string
	Size     Size
	Position image.Point
	Color    color.RGBA
	Visual   image.Image
	Fixed    bool
}

// Bounds returns the half-open screen area covered by the component
func (c *Component) Bounds() image.Rectangle {
	return image.Rect(c.Position.X, c.Position.Y,
		c.Position.X+c.Size.Width, c.Position.Y+c.Size.Height)
}

// Catalog holds every component of one session keyed by id.
// It is owned by the event goroutine and is not safe for concurrent use.
type Catalog struct {
	components map[string]*Component
	order      []string
}

// NewCatalog creates a catalog from the given components, preserving order
func NewCatalog(components ...*Component) *Catalog {
	c := &Catalog{
		components: make(map[string]*Component, len(components)),
		order:      make([]string, 0, len(components)),
	}
	for _, comp := range components {
		c.Add(comp)
	}
	return c
}

// Add registers a component, drawing its visual when none is set
func (c *Catalog) Add(comp *Component) {
	if comp == nil || comp.ID == "" {
		return
	}
	if comp.Visual == nil {
		comp.Visual = DrawPart(comp.Size, comp.Color)
	}
	if _, exists := c.components[comp.ID]; !exists {
		c.order = append(c.order, comp.ID)
	}
	c.components[comp.ID] = comp
}

// Get returns the component with the given id
func (c *Catalog) Get(id string) (*Component, bool) {
	comp, ok := c.components[id]
	return comp, ok
}

// Move updates a component's position
func (c *Catalog) Move(id string, pos image.Point) {
	if comp, ok := c.components[id]; ok {
		comp.Position = pos
	}
}

// At returns the topmost component covering p. Later entries are drawn above
// earlier ones, so the search runs back to front.
func (c *Catalog) At(p image.Point) (*Component, bool) {
	for i := len(c.order) - 1; i >= 0; i-- {
		comp := c.components[c.order[i]]
		if p.In(comp.Bounds()) {
			return comp, true
		}
	}
	return nil, false
}

// Raise moves a component to the top of the drawing order
func (c *Catalog) Raise(id string) {
	for i, v := range c.order {
		if v == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, id)
			return
		}
	}
}

// All returns components in drawing order
func (c *Catalog) All() []*Component {
	out := make([]*Component, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.components[id])
	}
	return out
}

// IDs returns the sorted component ids
func (c *Catalog) IDs() []string {
	ids := make([]string, 0, len(c.components))
	for id := range c.components {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Clone deep-copies positions so a session can be restarted from the original layout
func (c *Catalog) Clone() *Catalog {
	out := NewCatalog()
	for _, comp := range c.All() {
		cp := *comp
		out.Add(&cp)
	}
	return out
}

// DefaultCatalog returns the case and the six parts laid out in the parts tray
func DefaultCatalog() *Catalog {
	return NewCatalog(
		&Component{ID: CaseID, Title: "Computer Case", Size: NewSize(380, 440),
			Position: image.Pt(130, 200), Color: color.RGBA{R: 60, G: 63, B: 70, A: 255}, Fixed: true},
		&Component{ID: MotherboardID, Title: "Motherboard", Size: NewSize(260, 300),
			Position: image.Pt(580, 30), Color: color.RGBA{R: 34, G: 120, B: 70, A: 255}},
		&Component{ID: CPUID, Title: "Central Processing Unit (CPU)", Size: NewSize(80, 80),
			Position: image.Pt(580, 350), Color: color.RGBA{R: 180, G: 180, B: 190, A: 255}},
		&Component{ID: MemoryID, Title: "Solid State Drive (SSD)", Size: NewSize(90, 45),
			Position: image.Pt(680, 350), Color: color.RGBA{R: 30, G: 30, B: 35, A: 255}},
		&Component{ID: GPUID, Title: "Graphics Processing Unit (GPU)", Size: NewSize(150, 45),
			Position: image.Pt(580, 460), Color: color.RGBA{R: 200, G: 60, B: 45, A: 255}},
		&Component{ID: RAM1ID, Title: "Random Access Memory (RAM)", Size: NewSize(17, 140),
			Position: image.Pt(790, 350), Color: color.RGBA{R: 40, G: 90, B: 200, A: 255}},
		&Component{ID: RAM2ID, Title: "Random Access Memory (RAM)", Size: NewSize(17, 140),
			Position: image.Pt(820, 350), Color: color.RGBA{R: 40, G: 90, B: 200, A: 255}},
	)
}

// DrawPart renders a flat part image with a darker one-pixel border
func DrawPart(size Size, fill color.RGBA) image.Image {
	w, h := size.Width, size.Height
	if w <= 0 || h <= 0 {
		w, h = 1, 1
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: fill}, image.Point{}, draw.Src)

	border := color.RGBA{R: fill.R / 2, G: fill.G / 2, B: fill.B / 2, A: 255}
	for x := 0; x < w; x++ {
		img.SetRGBA(x, 0, border)
		img.SetRGBA(x, h-1, border)
	}
	for y := 0; y < h; y++ {
		img.SetRGBA(0, y, border)
		img.SetRGBA(w-1, y, border)
	}
	return img
}
