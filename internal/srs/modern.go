package srs

import (
	"time"

	gofsrs "github.com/open-spaced-repetition/go-fsrs"
)

// modernScheduler runs the two-phase schedule: learning-step ladder first,
// then the FSRS memory model for graduated cards.
type modernScheduler struct {
	params gofsrs.Parameters
	opts   Options
}

func newModernScheduler(opts Options) *modernScheduler {
	params := gofsrs.DefaultParam()
	params.RequestRetention = opts.TargetRetention
	return &modernScheduler{params: params, opts: opts}
}

func (s *modernScheduler) Advance(state MemoryState, quality int, now time.Time) MemoryState {
	out := state
	out.tally(quality)

	if !out.Graduated() {
		return advanceLearning(out, quality, now, s.opts.FocusMode, s.graduate)
	}
	if !passes(quality) {
		return demote(out, now, s.opts.FocusMode)
	}
	return s.review(out, quality, now)
}

// graduate initializes the memory model when the card completes the ladder.
// The ladder already filtered recall strength, so every graduation seeds the
// Good rating; only an effortless final pass seeds Easy.
func (s *modernScheduler) graduate(state MemoryState, quality int, now time.Time) MemoryState {
	seed := gofsrs.Card{Due: now, State: gofsrs.New}
	r := gofsrs.Good
	if quality == QualityEasy {
		r = gofsrs.Easy
	}
	scheduled := s.params.Repeat(seed, now)[r]

	state.LearningStep = GraduatingStep
	state.State = StateReview
	state.Repetitions = 1
	state.Stability = ptr(scheduled.Card.Stability)
	state.Difficulty = ptr(scheduled.Card.Difficulty)
	state.NextReview = now.Add(24 * time.Hour)
	return state
}

// review recomputes stability and difficulty for a successful recall on a
// graduated card. Elapsed time is measured from the scheduled due date, so
// replaying the same (quality, timestamp) sequence is deterministic.
func (s *modernScheduler) review(state MemoryState, quality int, now time.Time) MemoryState {
	anchor := state.NextReview
	if anchor.After(now) {
		// Reviewed early; treat as zero elapsed days.
		anchor = now
	}
	card := gofsrs.Card{
		Due:        state.NextReview,
		Stability:  deref(state.Stability, 1.0),
		Difficulty: deref(state.Difficulty, 5.0),
		Reps:       uint64(state.Repetitions),
		State:      gofsrs.Review,
		LastReview: anchor,
	}
	scheduled := s.params.Repeat(card, now)[rating(quality)]

	state.State = StateReview
	state.Repetitions++
	state.Stability = ptr(scheduled.Card.Stability)
	state.Difficulty = ptr(scheduled.Card.Difficulty)
	state.NextReview = scheduled.Card.Due
	if min := now.Add(24 * time.Hour); state.NextReview.Before(min) {
		state.NextReview = min
	}
	return state
}

// rating maps a quality rating onto the model's four-grade scale. Quality 3
// (correct with a hint) grades as Good: the recall succeeded, the hint
// penalty already landed in the quality itself.
func rating(quality int) gofsrs.Rating {
	switch quality {
	case QualityAgain:
		return gofsrs.Again
	case QualityHard:
		return gofsrs.Hard
	case QualityEasy:
		return gofsrs.Easy
	default:
		return gofsrs.Good
	}
}

func ptr(v float64) *float64 { return &v }

func deref(p *float64, fallback float64) float64 {
	if p == nil {
		return fallback
	}
	return *p
}
