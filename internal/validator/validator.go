// Package validator decides whether a dropped part is the one the current
// build step expects and whether it landed on an accepted position.
package validator

import (
	"fmt"
	"image"

	"pc-builder/internal/models"
)

// Step describes one stage of the build
type Step struct {
	Index      int
	Name       string
	Part       string
	Accepted   []image.Point
	Correct    string
	WrongPart  string
	WrongPlace string
}

// Accepts reports whether pos is one of the step's snapped positions
func (s Step) Accepts(pos image.Point) bool {
	for _, p := range s.Accepted {
		if p == pos {
			return true
		}
	}
	return false
}

// Validator is stateless; it is queried once per drop
type Validator struct {
	steps []Step
}

// New creates a validator for steps ordered by index, starting at 1
func New(steps []Step) *Validator {
	return &Validator{steps: append([]Step(nil), steps...)}
}

// Steps returns the number of build steps
func (v *Validator) Steps() int {
	return len(v.steps)
}

// Step returns the definition of step n
func (v *Validator) Step(n int) (Step, bool) {
	if n < 1 || n > len(v.steps) {
		return Step{}, false
	}
	return v.steps[n-1], true
}

// Validate checks a drop of componentID at the snapped position pos during step
func (v *Validator) Validate(componentID string, pos image.Point, step int) models.Verdict {
	s, ok := v.Step(step)
	if !ok {
		return models.Verdict{
			Kind:   models.VerdictBuildComplete,
			Reason: "The build is already complete.",
		}
	}

	if componentID != s.Part {
		return models.Verdict{
			Kind:   models.VerdictWrongComponent,
			Reason: orDefault(s.WrongPart, fmt.Sprintf("That part does not go in at step %d.", s.Index)),
		}
	}

	if !s.Accepts(pos) {
		return models.Verdict{
			Kind:   models.VerdictWrongLocation,
			Reason: orDefault(s.WrongPlace, "Right part, wrong location."),
		}
	}

	return models.Verdict{
		Correct: true,
		Kind:    models.VerdictCorrect,
		Reason:  orDefault(s.Correct, "Correct placement."),
	}
}

// Occupied is the verdict for a drop onto a slot that already holds a part
func (v *Validator) Occupied(occupant string) models.Verdict {
	return models.Verdict{
		Kind:   models.VerdictOccupied,
		Reason: fmt.Sprintf("That slot is already taken by %s. Use the free one.", partName(occupant)),
	}
}

func partName(id string) string {
	switch id {
	case models.RAM1ID, models.RAM2ID:
		return "the other memory stick"
	case "":
		return "another part"
	default:
		return id
	}
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
