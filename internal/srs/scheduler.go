package srs

import "time"

// Learning-step ladders in minutes. A new or failed card climbs four short
// steps before graduating to the long-term model. Focus mode compresses the
// ladder so a card can graduate within a sitting.
var (
	learningStepsNormal = [4]int64{1, 10, 60, 240}
	learningStepsFocus  = [4]int64{1, 5, 15, 30}
)

// GraduatingStep is the learning step at which a card graduates.
const GraduatingStep = 4

// Choice selects the scheduling algorithm for an owner.
type Choice string

const (
	// ChoiceModern is the stability/difficulty memory model.
	ChoiceModern Choice = "modern"
	// ChoiceClassic is the ease-factor fallback.
	ChoiceClassic Choice = "classic"
)

// Options are the owner-level scheduling knobs, passed explicitly so the
// schedulers stay pure.
type Options struct {
	// TargetRetention is the predicted retention aimed for at the next
	// review date. Clamped to [0.80, 0.95].
	TargetRetention float64
	// FocusMode selects the compressed learning-step ladder.
	FocusMode bool
}

// Scheduler advances a card's memory state in response to one quality
// rating. Implementations are pure: identical inputs produce identical
// outputs, and elapsed time comes from the state and the supplied clock,
// never from the wall.
type Scheduler interface {
	Advance(state MemoryState, quality int, now time.Time) MemoryState
}

// New returns the scheduler for the given choice. Callers never learn which
// algorithm is behind the interface.
func New(choice Choice, opts Options) Scheduler {
	opts.TargetRetention = clampRetention(opts.TargetRetention)
	if choice == ChoiceClassic {
		return &classicScheduler{opts: opts}
	}
	return newModernScheduler(opts)
}

func clampRetention(r float64) float64 {
	switch {
	case r == 0:
		return 0.90
	case r < 0.80:
		return 0.80
	case r > 0.95:
		return 0.95
	}
	return r
}

// learningSteps returns the active ladder.
func learningSteps(focus bool) [4]int64 {
	if focus {
		return learningStepsFocus
	}
	return learningStepsNormal
}

// advanceLearning handles a rating for a card still on the ladder. It is
// shared by both schedulers; graduate is called when the card completes the
// final step.
func advanceLearning(state MemoryState, quality int, now time.Time, focus bool, graduate func(MemoryState, int, time.Time) MemoryState) MemoryState {
	steps := learningSteps(focus)

	if !passes(quality) {
		state.LearningStep = 0
		state.State = StateLearning
		state.Repetitions = 0
		state.NextReview = now.Add(time.Duration(steps[0]) * time.Minute)
		return state
	}

	next := state.LearningStep + 1
	if next >= GraduatingStep {
		return graduate(state, quality, now)
	}
	state.LearningStep = next
	state.State = StateLearning
	state.Repetitions = 0
	state.NextReview = now.Add(time.Duration(steps[next]) * time.Minute)
	return state
}

// demote sends a graduated card back to the ladder after a failed recall.
// Stability and difficulty survive as priors for re-graduation.
func demote(state MemoryState, now time.Time, focus bool) MemoryState {
	steps := learningSteps(focus)
	state.LearningStep = 0
	state.State = StateRelearning
	state.Repetitions = 0
	state.NextReview = now.Add(time.Duration(steps[0]) * time.Minute)
	return state
}
