package selector

import (
	"strings"
	"time"

	"github.com/minhokang/baeum/internal/srs"
)

// Candidate is a card eligible for selection, with the scheduling state and
// review-history facts the weighting needs. Upstream filtering (unlocks,
// due-ness) has already happened.
type Candidate struct {
	ID       string
	Prompt   string
	Answer   string
	Category string
	Memory   srs.MemoryState
	// LastReview is the most recent review time; zero means never reviewed.
	LastReview time.Time
	// LastFailure is the most recent failed review; zero means none recorded.
	LastFailure time.Time
}

// Session is the ephemeral per-study-session state: the reinforcement queue
// of recently failed cards plus what was shown last, for anti-repetition.
// One Session belongs to one owner's study loop; it is created at session
// start and discarded at the end, never persisted.
type Session struct {
	reinforce      []string
	sinceReinforce int

	lastID       string
	lastPrompt   string
	lastAnswer   string
	lastCategory string
}

// NewSession returns an empty session state.
func NewSession() *Session {
	return &Session{}
}

// RecordFailure queues a failed card for short-term re-exposure. Duplicates
// are ignored; the queue stays FIFO by first failure.
func (s *Session) RecordFailure(cardID string) {
	for _, id := range s.reinforce {
		if id == cardID {
			return
		}
	}
	s.reinforce = append(s.reinforce, cardID)
}

// RecordSuccess drops a card from the reinforcement queue once it has been
// answered correctly.
func (s *Session) RecordSuccess(cardID string) {
	for i, id := range s.reinforce {
		if id == cardID {
			s.reinforce = append(s.reinforce[:i], s.reinforce[i+1:]...)
			return
		}
	}
}

// LastCardID returns the card most recently served, or "" at session start.
func (s *Session) LastCardID() string {
	return s.lastID
}

// QueueLen returns the number of cards awaiting reinforcement.
func (s *Session) QueueLen() int {
	return len(s.reinforce)
}

// queued reports whether a card is awaiting reinforcement.
func (s *Session) queued(cardID string) bool {
	for _, id := range s.reinforce {
		if id == cardID {
			return true
		}
	}
	return false
}

// isSibling reports whether c is too similar to the last shown card to
// present back to back: same card, same answer text, or either card's
// prompt containing the other's answer.
func (s *Session) isSibling(c Candidate) bool {
	if s.lastID == "" {
		return false
	}
	if c.ID == s.lastID {
		return true
	}
	lastAnswer := foldText(s.lastAnswer)
	answer := foldText(c.Answer)
	if answer != "" && answer == lastAnswer {
		return true
	}
	if lastAnswer != "" && strings.Contains(foldText(c.Prompt), lastAnswer) {
		return true
	}
	if answer != "" && strings.Contains(foldText(s.lastPrompt), answer) {
		return true
	}
	return false
}

// noteShown records a served card. reinforced marks a reinforcement pop,
// which resets the spacing counter instead of advancing it.
func (s *Session) noteShown(c Candidate, reinforced bool) {
	s.lastID = c.ID
	s.lastPrompt = c.Prompt
	s.lastAnswer = c.Answer
	s.lastCategory = c.Category
	if reinforced {
		s.sinceReinforce = 0
	} else {
		s.sinceReinforce++
	}
}

func foldText(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
