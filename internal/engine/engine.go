package engine

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/minhokang/baeum/internal/answer"
	"github.com/minhokang/baeum/internal/offline"
	"github.com/minhokang/baeum/internal/selector"
	"github.com/minhokang/baeum/internal/srs"
)

var (
	// ErrNoSelection is returned when a result is reported with no card
	// outstanding.
	ErrNoSelection = errors.New("no card selected")
	// ErrCardNotInHand is returned when a result is reported for a card
	// other than the one last selected.
	ErrCardNotInHand = errors.New("card is not the current selection")
	// ErrPoolExhausted is returned when nothing remains to study.
	ErrPoolExhausted = errors.New("no cards available")
)

// Config carries the owner-level knobs the engine needs.
type Config struct {
	Scheduler       srs.Choice
	TargetRetention float64
	FocusMode       bool
	Interleave      bool
	// Rng seeds the selector; nil means time-seeded.
	Rng    *rand.Rand
	Logger *logrus.Logger
}

// Engine drives one owner's study loop: pick a card, grade the typed
// answer, advance the schedule, and feed failures back into the session
// queue. It holds no persistent state; callers supply card pools and
// memory states and persist what comes back.
type Engine struct {
	sched   srs.Scheduler
	picker  *selector.Picker
	session *selector.Session
	log     *logrus.Entry

	retention float64
	focusMode bool

	inHand string
}

// New builds an engine for one study session.
func New(cfg Config) *Engine {
	logger := cfg.Logger
	if logger == nil {
		logger = logrus.New()
	}
	return &Engine{
		sched:     srs.New(cfg.Scheduler, srs.Options{TargetRetention: cfg.TargetRetention, FocusMode: cfg.FocusMode}),
		picker:    selector.NewPicker(cfg.Interleave, cfg.Rng),
		session:   selector.NewSession(),
		log:       logger.WithField("component", "engine"),
		retention: cfg.TargetRetention,
		focusMode: cfg.FocusMode,
	}
}

// SelectNext picks the next card to present and marks it in hand. The pool
// holds every card currently eligible; ErrPoolExhausted means the session
// is over.
func (e *Engine) SelectNext(pool []selector.Candidate, now time.Time) (selector.Candidate, error) {
	c, ok := e.picker.Next(pool, e.session, now)
	if !ok {
		return selector.Candidate{}, ErrPoolExhausted
	}
	e.inHand = c.ID
	e.log.WithFields(logrus.Fields{"card": c.ID, "category": c.Category}).Debug("card selected")
	return c, nil
}

// Validate grades typed input against the in-hand card's answer spec. A
// PartialMatch result allows a retry, so it leaves the card in hand without
// advancing anything; the caller decides when to stop retrying and report.
func (e *Engine) Validate(input, answerSpec string, usedHint bool) (answer.ValidationResult, error) {
	return answer.Validate(input, answerSpec, usedHint)
}

// Hint reveals part of the answer. Level 1 gives the first letter and
// length, level 2 the first two letters, level 3 the whole answer.
func (e *Engine) Hint(answerText string, level int) string {
	return answer.Hint(answerText, level)
}

// Report finalizes the in-hand card with a graded quality: the schedule
// advances, failures join the reinforcement queue, and the hand empties.
// The returned state replaces the card's stored state.
func (e *Engine) Report(cardID string, state srs.MemoryState, quality int, now time.Time) (srs.MemoryState, error) {
	if e.inHand == "" {
		return state, ErrNoSelection
	}
	if cardID != e.inHand {
		return state, fmt.Errorf("%w: have %q, got %q", ErrCardNotInHand, e.inHand, cardID)
	}
	if !srs.ValidQuality(quality) {
		return state, fmt.Errorf("invalid quality %d", quality)
	}

	next := e.sched.Advance(state, quality, now)
	if quality == srs.QualityAgain {
		e.session.RecordFailure(cardID)
	} else {
		e.session.RecordSuccess(cardID)
	}
	e.inHand = ""

	e.log.WithFields(logrus.Fields{
		"card":        cardID,
		"quality":     quality,
		"state":       next.State,
		"next_review": next.NextReview,
	}).Debug("review recorded")
	return next, nil
}

// Snapshot freezes the given card states for offline study under this
// engine's scheduler knobs.
func (e *Engine) Snapshot(now time.Time, cards map[string]srs.MemoryState) *offline.Session {
	return offline.NewSession(now, cards, e.retention, e.focusMode)
}

// Reconcile replays an offline review batch against its snapshot with the
// same scheduler the online path uses. All or nothing.
func (e *Engine) Reconcile(sess *offline.Session, reviews []offline.Review, now time.Time) (map[string]srs.MemoryState, error) {
	states, err := offline.NewReconciler(e.sched).Apply(sess, reviews, now)
	if err != nil {
		e.log.WithError(err).Warn("offline batch rejected")
		return nil, err
	}
	e.log.WithFields(logrus.Fields{"session": sess.ID, "reviews": len(reviews)}).Info("offline batch reconciled")
	return states, nil
}
