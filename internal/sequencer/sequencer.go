// Package sequencer owns the build step counter.
//
// The counter starts at 1 and only moves forward, one step per confirmed
// placement. Advancing past the final step enters the Complete state; that
// transition is reported exactly once.
package sequencer

// Sequencer is the single source of truth for the current build step
type Sequencer struct {
	step     int
	final    int
	complete bool
}

// New creates a sequencer for a build of the given number of steps
func New(final int) *Sequencer {
	if final < 1 {
		final = 1
	}
	return &Sequencer{step: 1, final: final}
}

// CurrentStep returns the step awaiting placement. Once complete it stays at
// final+1, which no step definition matches.
func (s *Sequencer) CurrentStep() int {
	return s.step
}

// Final returns the last step number
func (s *Sequencer) Final() int {
	return s.final
}

// IsFinal reports whether step is the last one of the build
func (s *Sequencer) IsFinal(step int) bool {
	return step == s.final
}

// IsComplete reports whether every step has been placed
func (s *Sequencer) IsComplete() bool {
	return s.complete
}

// Advance moves to the next step. It returns true only on the call that
// completes the build; calls after completion change nothing.
func (s *Sequencer) Advance() bool {
	if s.complete {
		return false
	}
	s.step++
	if s.step > s.final {
		s.complete = true
		return true
	}
	return false
}

// Percent converts a count of finished steps into a progress percentage
func (s *Sequencer) Percent(done int) float64 {
	if done <= 0 {
		return 0
	}
	if done >= s.final {
		return 100
	}
	return float64(done) / float64(s.final) * 100
}
