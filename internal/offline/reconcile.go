package offline

import (
	"fmt"
	"sort"
	"time"

	"github.com/minhokang/baeum/internal/srs"
)

// RejectReason enumerates why a replayed batch was refused.
type RejectReason string

const (
	ReasonExpiredSession RejectReason = "expired_session"
	ReasonUnknownCard    RejectReason = "unknown_card"
	ReasonMissingField   RejectReason = "missing_field"
	ReasonInvalidQuality RejectReason = "invalid_quality"
)

// RejectError reports the first review that made a batch unacceptable.
// Index is -1 when the whole session is at fault rather than one review.
type RejectError struct {
	Reason RejectReason
	CardID string
	Index  int
}

func (e *RejectError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("offline batch rejected: %s", e.Reason)
	}
	return fmt.Sprintf("offline batch rejected: %s (review %d, card %q)", e.Reason, e.Index, e.CardID)
}

// Reconciler replays offline review batches against a session snapshot
// using the same scheduler the online path uses.
type Reconciler struct {
	sched srs.Scheduler
}

func NewReconciler(sched srs.Scheduler) *Reconciler {
	return &Reconciler{sched: sched}
}

// Apply replays reviews against the session snapshot and returns the
// resulting state for every snapshotted card. The batch is all or nothing:
// any invalid review rejects the whole batch and the snapshot states come
// back untouched.
//
// Reviews are replayed in timestamp order regardless of their order in the
// batch, and each review's own timestamp drives the scheduler, so the
// outcome is independent of when the device finally syncs.
func (r *Reconciler) Apply(sess *Session, reviews []Review, now time.Time) (map[string]srs.MemoryState, error) {
	if sess.Expired(now) {
		return nil, &RejectError{Reason: ReasonExpiredSession, Index: -1}
	}
	for i, rev := range reviews {
		if err := r.validate(sess, rev, i); err != nil {
			return nil, err
		}
	}

	ordered := make([]Review, len(reviews))
	copy(ordered, reviews)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Timestamp.Before(ordered[j].Timestamp)
	})

	states := make(map[string]srs.MemoryState, len(sess.Cards))
	for id, state := range sess.Cards {
		states[id] = state
	}
	for _, rev := range ordered {
		states[rev.CardID] = r.sched.Advance(states[rev.CardID], rev.Quality, rev.Timestamp)
	}
	return states, nil
}

func (r *Reconciler) validate(sess *Session, rev Review, index int) error {
	if rev.CardID == "" || rev.Timestamp.IsZero() {
		return &RejectError{Reason: ReasonMissingField, CardID: rev.CardID, Index: index}
	}
	if !srs.ValidQuality(rev.Quality) {
		return &RejectError{Reason: ReasonInvalidQuality, CardID: rev.CardID, Index: index}
	}
	if _, ok := sess.Cards[rev.CardID]; !ok {
		return &RejectError{Reason: ReasonUnknownCard, CardID: rev.CardID, Index: index}
	}
	if rev.Timestamp.Before(sess.CreatedAt) || rev.Timestamp.After(sess.ExpiresAt) {
		return &RejectError{Reason: ReasonExpiredSession, CardID: rev.CardID, Index: index}
	}
	return nil
}
