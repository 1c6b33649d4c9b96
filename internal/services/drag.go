package services

import (
	"image"

	"pc-builder/internal/board"
	"pc-builder/internal/logger"
	"pc-builder/internal/models"
	"pc-builder/internal/sequencer"
	"pc-builder/internal/validator"
)

// DropOutcome describes what happened to an accepted drop
type DropOutcome struct {
	ComponentID string
	Step        int
	Zone        string
	Snapped     image.Point
	Final       image.Point
	Verdict     models.Verdict
	Outcome     Outcome
}

// DragController runs press-drag-drop gestures against the current build.
// It is driven from the UI event goroutine only and holds no locks.
type DragController struct {
	table     *board.Table
	validator *validator.Validator
	layout    *models.Catalog
	feedback  *FeedbackOrchestrator
	display   Display
	logger    logger.Logger

	catalog *models.Catalog
	seq     *sequencer.Sequencer
	state   *models.SessionState
	session *models.DragSession
}

// NewDragController creates a controller starting a fresh session on layout
func NewDragController(
	table *board.Table,
	v *validator.Validator,
	layout *models.Catalog,
	feedback *FeedbackOrchestrator,
	display Display,
	log logger.Logger,
) *DragController {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	dc := &DragController{
		table:     table,
		validator: v,
		layout:    layout,
		feedback:  feedback,
		display:   display,
		logger:    log,
	}
	dc.Reset()
	return dc
}

// Reset discards all progress and restores the initial layout
func (dc *DragController) Reset() {
	dc.catalog = dc.layout.Clone()
	dc.seq = sequencer.New(dc.validator.Steps())
	dc.state = models.DefaultSessionState()
	for _, comp := range dc.catalog.All() {
		if comp.Fixed {
			dc.state.Lock(comp.ID)
		}
	}
	dc.session = nil

	dc.logger.Debug("DragController", "session reset", map[string]interface{}{
		"steps":  dc.seq.Final(),
		"locked": dc.state.Locked(),
	})
}

// PressAt starts a gesture on the topmost component under cursor
func (dc *DragController) PressAt(cursor image.Point) (models.DragPayload, bool) {
	comp, ok := dc.catalog.At(cursor)
	if !ok {
		return models.DragPayload{}, false
	}
	return dc.Press(comp.ID, cursor)
}

// Press starts a gesture on component id. Unknown or locked components are
// ignored and no gesture begins.
func (dc *DragController) Press(id string, cursor image.Point) (models.DragPayload, bool) {
	comp, ok := dc.catalog.Get(id)
	if !ok || dc.state.IsLocked(id) {
		return models.DragPayload{}, false
	}

	offset := cursor.Sub(comp.Position)
	dc.session = &models.DragSession{
		ComponentID: id,
		Size:        comp.Size,
		Origin:      comp.Position,
		Offset:      offset,
	}

	dc.logger.Debug("DragController", "drag started", map[string]interface{}{
		"part":   id,
		"origin": comp.Position.String(),
		"offset": offset.String(),
	})
	return models.NewDragPayload(id, comp.Visual, offset), true
}

// Cancel drops an in-flight gesture without changing any state
func (dc *DragController) Cancel() {
	if dc.session != nil {
		dc.logger.Debug("DragController", "drag cancelled", map[string]interface{}{
			"part": dc.session.ComponentID,
		})
	}
	dc.session = nil
}

// Drop finishes the gesture at cursor. Foreign or incomplete payloads and
// drops without a matching press are ignored.
func (dc *DragController) Drop(payload models.DragPayload, cursor image.Point) (DropOutcome, bool) {
	if !payload.Valid() {
		dc.logger.Debug("DragController", "ignoring foreign drag payload", map[string]interface{}{
			"format": payload.Format,
		})
		return DropOutcome{}, false
	}
	session := dc.session
	if session == nil || session.ComponentID != payload.ComponentID {
		return DropOutcome{}, false
	}
	dc.session = nil

	id := session.ComponentID
	step := dc.seq.CurrentStep()

	snapped := dc.table.Snap(step, cursor, session.Size)
	zone, _ := dc.table.Match(step, cursor)

	dc.catalog.Move(id, snapped)
	dc.catalog.Raise(id)
	if dc.display != nil {
		dc.display.PlaceVisual(id, snapped, session.Size)
	}

	verdict := dc.validator.Validate(id, snapped, step)
	if verdict.Correct {
		if occupant, taken := dc.state.Occupant(snapped); taken && occupant != id {
			verdict = dc.validator.Occupied(occupant)
		}
	}

	dc.logger.Info("DragController", "drop validated", map[string]interface{}{
		"part":    id,
		"step":    step,
		"cursor":  cursor.String(),
		"snapped": snapped.String(),
		"zone":    zone.Name,
		"verdict": verdict.Kind.String(),
	})

	outcome := OutcomeRejected
	if dc.feedback != nil {
		outcome = dc.feedback.Apply(verdict, Placement{ComponentID: id, Position: snapped, Step: step}, dc.seq, dc.state)
	} else if !verdict.Correct {
		dc.state.RequestReset()
	}

	final := snapped
	if dc.state.ConsumeReset() {
		final = session.Origin
		dc.catalog.Move(id, final)
		if dc.display != nil {
			dc.display.MoveVisual(id, final)
		}
	}

	return DropOutcome{
		ComponentID: id,
		Step:        step,
		Zone:        zone.Name,
		Snapped:     snapped,
		Final:       final,
		Verdict:     verdict,
		Outcome:     outcome,
	}, true
}

// CurrentStep returns the step awaiting placement
func (dc *DragController) CurrentStep() int {
	return dc.seq.CurrentStep()
}

// Steps returns the number of steps in the build
func (dc *DragController) Steps() int {
	return dc.seq.Final()
}

// IsComplete reports whether the build is finished
func (dc *DragController) IsComplete() bool {
	return dc.seq.IsComplete()
}

// IsLocked reports whether component id can no longer be dragged
func (dc *DragController) IsLocked(id string) bool {
	return dc.state.IsLocked(id)
}

// Dragging returns the active gesture, if any
func (dc *DragController) Dragging() (models.DragSession, bool) {
	if dc.session == nil {
		return models.DragSession{}, false
	}
	return *dc.session, true
}

// Components returns the session's components in drawing order
func (dc *DragController) Components() []*models.Component {
	return dc.catalog.All()
}

// Component returns one of the session's components
func (dc *DragController) Component(id string) (*models.Component, bool) {
	return dc.catalog.Get(id)
}

// Hint returns the title of the part the current step expects
func (dc *DragController) Hint() string {
	s, ok := dc.validator.Step(dc.seq.CurrentStep())
	if !ok {
		return ""
	}
	if comp, found := dc.catalog.Get(s.Part); found {
		return comp.Title
	}
	return s.Part
}
