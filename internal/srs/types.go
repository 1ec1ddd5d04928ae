package srs

import "time"

// State is the card lifecycle state.
type State string

const (
	StateNew        State = "New"
	StateLearning   State = "Learning"
	StateReview     State = "Review"
	StateRelearning State = "Relearning"
)

// Quality ratings. These are the only valid scheduler inputs: 0 failed
// recall, 2 a partial (knowledge-gap) answer, 3 correct with a hint, 4
// correct, 5 effortless.
const (
	QualityAgain = 0
	QualityHard  = 2
	QualityGood  = 4
	QualityEasy  = 5
)

// ValidQuality reports whether q is one of the defined ratings.
func ValidQuality(q int) bool {
	switch q {
	case 0, 2, 3, 4, 5:
		return true
	}
	return false
}

// passes reports whether a rating counts as a successful recall. Anything
// above Again advances the learning ladder and, for graduated cards, feeds
// the long-term model; only Again resets.
func passes(q int) bool {
	return q >= QualityHard
}

// MemoryState is the per-card scheduling state. The scheduler is its only
// writer. Stability and Difficulty are nil until the card graduates; the
// classic scheduler ignores them and keeps its own ease factor and interval
// instead.
type MemoryState struct {
	LearningStep   int        `json:"learning_step"`
	Stability      *float64   `json:"stability,omitempty"`
	Difficulty     *float64   `json:"difficulty,omitempty"`
	Repetitions    int        `json:"repetitions"`
	State          State      `json:"state"`
	NextReview     time.Time  `json:"next_review"`
	TotalReviews   int        `json:"total_reviews"`
	CorrectReviews int        `json:"correct_reviews"`

	// Classic (ease-factor) scheduler state.
	EaseFactor   float64 `json:"ease_factor"`
	IntervalDays int     `json:"interval_days"`
}

// NewMemoryState returns the state of a card on first exposure.
func NewMemoryState(now time.Time) MemoryState {
	return MemoryState{
		LearningStep: 0,
		State:        StateNew,
		NextReview:   now,
		EaseFactor:   defaultEaseFactor,
	}
}

// Graduated reports whether the card has left the learning-step ladder.
func (m MemoryState) Graduated() bool {
	return m.LearningStep >= GraduatingStep
}

// SuccessRate returns the lifetime success ratio, or 0.5 for an unreviewed
// card (the selector's neutral assumption).
func (m MemoryState) SuccessRate() float64 {
	if m.TotalReviews == 0 {
		return 0.5
	}
	return float64(m.CorrectReviews) / float64(m.TotalReviews)
}

// tally updates the lifetime counters for one review.
func (m *MemoryState) tally(q int) {
	m.TotalReviews++
	if passes(q) {
		m.CorrectReviews++
	}
}
