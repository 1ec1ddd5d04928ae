package srs

import "time"

const (
	defaultEaseFactor = 2.5
	minEaseFactor     = 1.3
)

// classicScheduler is the ease-factor fallback. Intervals are whole days,
// multiplied by the ease factor on success and reset by sending the card
// back to the learning ladder on failure. It exposes the same contract as
// the modern scheduler; callers cannot tell them apart.
type classicScheduler struct {
	opts Options
}

func (s *classicScheduler) Advance(state MemoryState, quality int, now time.Time) MemoryState {
	out := state
	out.tally(quality)
	if out.EaseFactor == 0 {
		out.EaseFactor = defaultEaseFactor
	}

	if !out.Graduated() {
		return advanceLearning(out, quality, now, s.opts.FocusMode, s.graduate)
	}

	// EF' = EF + (0.1 - (5-q) * (0.08 + (5-q) * 0.02)), floored.
	q := float64(quality)
	delta := 0.1 - (5.0-q)*(0.08+(5.0-q)*0.02)
	out.EaseFactor = max(out.EaseFactor+delta, minEaseFactor)

	if !passes(quality) {
		out.IntervalDays = 0
		return demote(out, now, s.opts.FocusMode)
	}

	out.Repetitions++
	switch out.Repetitions {
	case 1:
		out.IntervalDays = 1
	case 2:
		out.IntervalDays = 6
	default:
		out.IntervalDays = int(float64(out.IntervalDays)*out.EaseFactor + 0.5)
	}
	if out.IntervalDays < 1 {
		out.IntervalDays = 1
	}
	out.State = StateReview
	out.NextReview = now.AddDate(0, 0, out.IntervalDays)
	return out
}

// graduate moves a card off the ladder onto day-based intervals.
func (s *classicScheduler) graduate(state MemoryState, _ int, now time.Time) MemoryState {
	state.LearningStep = GraduatingStep
	state.State = StateReview
	state.Repetitions = 1
	state.IntervalDays = 1
	state.NextReview = now.AddDate(0, 0, 1)
	return state
}
