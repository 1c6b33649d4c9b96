package services

import (
	"image"

	"pc-builder/internal/audio"
	"pc-builder/internal/logger"
	"pc-builder/internal/models"
	"pc-builder/internal/sequencer"
)

// Status texts shown over the progress bar
const (
	StatusHalfway  = "Almost There!"
	StatusComplete = "Nice Job!"
)

// Dialog titles
const (
	TitleCorrect   = "Correct"
	TitleIncorrect = "Incorrect"
)

// halfwayPercent is the progress from which StatusHalfway is shown
const halfwayPercent = 50.0

// Outcome is the feedback path taken for a drop
type Outcome int

const (
	OutcomeRejected Outcome = iota
	OutcomeAdvanced
	OutcomeCompleted
)

func (o Outcome) String() string {
	switch o {
	case OutcomeAdvanced:
		return "advanced"
	case OutcomeCompleted:
		return "completed"
	default:
		return "rejected"
	}
}

// Placement identifies the drop a verdict was computed for
type Placement struct {
	ComponentID string
	Position    image.Point
	Step        int
}

// FeedbackOrchestrator turns verdicts into sound, progress, status text and
// dialogs, and moves the sequencer forward on success.
type FeedbackOrchestrator struct {
	display  Display
	sound    Sound
	notifier Notifier
	win      WinTransition
	logger   logger.Logger
}

// NewFeedbackOrchestrator creates an orchestrator; nil collaborators are skipped
func NewFeedbackOrchestrator(display Display, sound Sound, notifier Notifier, win WinTransition, log logger.Logger) *FeedbackOrchestrator {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &FeedbackOrchestrator{
		display:  display,
		sound:    sound,
		notifier: notifier,
		win:      win,
		logger:   log,
	}
}

// Apply runs exactly one feedback path for verdict. The progress math uses
// p.Step, the step the verdict was computed for.
func (f *FeedbackOrchestrator) Apply(v models.Verdict, p Placement, seq *sequencer.Sequencer, state *models.SessionState) Outcome {
	switch {
	case v.Correct && seq.IsFinal(p.Step):
		return f.complete(v, p, seq, state)
	case v.Correct:
		return f.advance(v, p, seq, state)
	default:
		return f.reject(v, p, state)
	}
}

func (f *FeedbackOrchestrator) advance(v models.Verdict, p Placement, seq *sequencer.Sequencer, state *models.SessionState) Outcome {
	state.Lock(p.ComponentID)
	state.Occupy(p.Position, p.ComponentID)
	seq.Advance()

	f.play(audio.CueCorrect)

	percent := seq.Percent(p.Step - 1)
	if f.display != nil {
		f.display.SetProgress(percent)
		if percent >= halfwayPercent {
			f.display.ShowStatus(StatusHalfway)
		} else {
			f.display.HideStatus()
		}
	}

	f.logger.Info("Feedback", "placement accepted", map[string]interface{}{
		"part":     p.ComponentID,
		"step":     p.Step,
		"progress": percent,
	})

	f.notify(TitleCorrect, v.Reason)
	return OutcomeAdvanced
}

func (f *FeedbackOrchestrator) complete(v models.Verdict, p Placement, seq *sequencer.Sequencer, state *models.SessionState) Outcome {
	state.Lock(p.ComponentID)
	state.Occupy(p.Position, p.ComponentID)
	completed := seq.Advance()

	f.play(audio.CueWin)

	if completed && f.win != nil {
		f.win.OnCompleted()
	}

	percent := seq.Percent(p.Step)
	if f.display != nil {
		f.display.SetProgress(percent)
		if percent == 100 {
			f.display.ShowStatus(StatusComplete)
		}
	}

	f.logger.Info("Feedback", "build completed", map[string]interface{}{
		"part":     p.ComponentID,
		"step":     p.Step,
		"progress": percent,
	})
	return OutcomeCompleted
}

func (f *FeedbackOrchestrator) reject(v models.Verdict, p Placement, state *models.SessionState) Outcome {
	state.RequestReset()

	f.play(audio.CueIncorrect)

	f.logger.Info("Feedback", "placement rejected", map[string]interface{}{
		"part":   p.ComponentID,
		"step":   p.Step,
		"reason": v.Kind.String(),
	})

	f.notify(TitleIncorrect, v.Reason)
	return OutcomeRejected
}

func (f *FeedbackOrchestrator) play(cue audio.Cue) {
	if f.sound != nil {
		f.sound.Play(cue)
	}
}

func (f *FeedbackOrchestrator) notify(title, text string) {
	if f.notifier != nil {
		f.notifier.Notify(title, text)
	}
}
