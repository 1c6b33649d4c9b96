// Package board maps drop coordinates onto the canonical positions of the
// build. Each zone applies to a contiguous range of steps; zones are tested
// in table order and the first one containing the cursor wins.
package board

import (
	"image"

	"pc-builder/internal/models"
)

// Zone is a drop target valid for steps FirstStep through LastStep
type Zone struct {
	Name      string
	FirstStep int
	LastStep  int
	Bounds    models.Rect
	Snap      image.Point
}

// AppliesTo reports whether the zone is active at step
func (z Zone) AppliesTo(step int) bool {
	return z.FirstStep <= step && step <= z.LastStep
}

// Table is the ordered placement rule table
type Table struct {
	zones []Zone
}

// NewTable creates a table evaluated in the given order
func NewTable(zones ...Zone) *Table {
	return &Table{zones: append([]Zone(nil), zones...)}
}

// DefaultTable returns the zone geometry of the shipped case layout
func DefaultTable() *Table {
	return NewTable(
		Zone{Name: "motherboard", FirstStep: 1, LastStep: 1,
			Bounds: models.NewRect(150, 290, 450, 590), Snap: image.Pt(200, 245)},
		Zone{Name: "cpu", FirstStep: 2, LastStep: 6,
			Bounds: models.NewRect(315, 295, 395, 375), Snap: image.Pt(315, 295)},
		Zone{Name: "memory", FirstStep: 2, LastStep: 6,
			Bounds: models.NewRect(260, 370, 350, 420), Snap: image.Pt(260, 370)},
		Zone{Name: "gpu", FirstStep: 2, LastStep: 6,
			Bounds: models.NewRect(300, 430, 350, 550), Snap: image.Pt(200, 370)},
		Zone{Name: "ram1", FirstStep: 2, LastStep: 6,
			Bounds: models.NewRect(420, 280, 440, 410), Snap: image.Pt(423, 270)},
		Zone{Name: "ram2", FirstStep: 2, LastStep: 6,
			Bounds: models.NewRect(440, 280, 460, 410), Snap: image.Pt(443, 270)},
	)
}

// Zones returns a copy of the zones in evaluation order
func (t *Table) Zones() []Zone {
	return append([]Zone(nil), t.zones...)
}

// Match returns the first zone active at step that contains cursor
func (t *Table) Match(step int, cursor image.Point) (Zone, bool) {
	for _, z := range t.zones {
		if z.AppliesTo(step) && z.Bounds.Contains(cursor) {
			return z, true
		}
	}
	return Zone{}, false
}

// Snap returns where a part of the given size lands when released at cursor.
// Outside every zone the part stays centered under the cursor.
func (t *Table) Snap(step int, cursor image.Point, size models.Size) image.Point {
	if z, ok := t.Match(step, cursor); ok {
		return z.Snap
	}
	return cursor.Sub(size.Half())
}

// Overlaps lists pairs of zones that share a step and intersect
func (t *Table) Overlaps() [][2]string {
	var pairs [][2]string
	for i := 0; i < len(t.zones); i++ {
		for j := i + 1; j < len(t.zones); j++ {
			a, b := t.zones[i], t.zones[j]
			if a.FirstStep > b.LastStep || b.FirstStep > a.LastStep {
				continue
			}
			if a.Bounds.Intersects(b.Bounds) {
				pairs = append(pairs, [2]string{a.Name, b.Name})
			}
		}
	}
	return pairs
}

// Steps returns the highest step any zone applies to
func (t *Table) Steps() int {
	n := 0
	for _, z := range t.zones {
		if z.LastStep > n {
			n = z.LastStep
		}
	}
	return n
}
