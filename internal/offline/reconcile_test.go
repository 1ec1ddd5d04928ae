package offline

import (
	"errors"
	"testing"
	"time"

	"github.com/minhokang/baeum/internal/srs"
)

var off0 = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func snapshot(t *testing.T, ids ...string) *Session {
	t.Helper()
	cards := make(map[string]srs.MemoryState, len(ids))
	for _, id := range ids {
		cards[id] = srs.NewMemoryState(off0)
	}
	return NewSession(off0, cards, 0.90, false)
}

func newReconciler(t *testing.T) *Reconciler {
	t.Helper()
	return NewReconciler(srs.New(srs.ChoiceModern, srs.Options{TargetRetention: 0.90}))
}

// sameState compares two memory states by value, dereferencing the model
// pointers.
func sameState(a, b srs.MemoryState) bool {
	if !samePtr(a.Stability, b.Stability) || !samePtr(a.Difficulty, b.Difficulty) {
		return false
	}
	a.Stability, a.Difficulty = nil, nil
	b.Stability, b.Difficulty = nil, nil
	return a == b
}

func samePtr(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func TestApply_ReplaysInTimestampOrder(t *testing.T) {
	r := newReconciler(t)
	sess := snapshot(t, "a")

	// batch arrives out of order; the later review lands last
	reviews := []Review{
		{CardID: "a", Quality: srs.QualityGood, IsCorrect: true, Timestamp: off0.Add(30 * time.Minute)},
		{CardID: "a", Quality: srs.QualityGood, IsCorrect: true, Timestamp: off0.Add(10 * time.Minute)},
	}
	got, err := r.Apply(sess, reviews, off0.Add(time.Hour))
	if err != nil {
		t.Fatal(err)
	}

	sorted := []Review{reviews[1], reviews[0]}
	want, err := r.Apply(sess, sorted, off0.Add(time.Hour))
	if err != nil {
		t.Fatal(err)
	}
	if !sameState(got["a"], want["a"]) {
		t.Errorf("out-of-order batch produced a different state:\n got %+v\nwant %+v", got["a"], want["a"])
	}
	if got["a"].TotalReviews != 2 {
		t.Errorf("TotalReviews = %d, want 2", got["a"].TotalReviews)
	}
}

func TestApply_SyncTimeDoesNotChangeOutcome(t *testing.T) {
	r := newReconciler(t)
	sess := snapshot(t, "a")
	reviews := []Review{
		{CardID: "a", Quality: srs.QualityGood, IsCorrect: true, Timestamp: off0.Add(10 * time.Minute)},
		{CardID: "a", Quality: srs.QualityAgain, Timestamp: off0.Add(25 * time.Minute)},
	}

	early, err := r.Apply(sess, reviews, off0.Add(time.Hour))
	if err != nil {
		t.Fatal(err)
	}
	late, err := r.Apply(sess, reviews, off0.Add(47*time.Hour))
	if err != nil {
		t.Fatal(err)
	}
	if !sameState(early["a"], late["a"]) {
		t.Errorf("sync time leaked into the outcome:\n early %+v\n late  %+v", early["a"], late["a"])
	}
}

func TestApply_UntouchedCardsPassThrough(t *testing.T) {
	r := newReconciler(t)
	sess := snapshot(t, "a", "b")
	reviews := []Review{
		{CardID: "a", Quality: srs.QualityGood, IsCorrect: true, Timestamp: off0.Add(time.Minute)},
	}
	got, err := r.Apply(sess, reviews, off0.Add(time.Hour))
	if err != nil {
		t.Fatal(err)
	}
	if !sameState(got["b"], sess.Cards["b"]) {
		t.Errorf("unreviewed card changed: %+v", got["b"])
	}
}

func TestApply_RejectsWholeBatch(t *testing.T) {
	r := newReconciler(t)
	sess := snapshot(t, "a")

	cases := []struct {
		name   string
		review Review
		reason RejectReason
	}{
		{
			name:   "unknown card",
			review: Review{CardID: "ghost", Quality: srs.QualityGood, Timestamp: off0.Add(time.Minute)},
			reason: ReasonUnknownCard,
		},
		{
			name:   "missing card id",
			review: Review{Quality: srs.QualityGood, Timestamp: off0.Add(time.Minute)},
			reason: ReasonMissingField,
		},
		{
			name:   "zero timestamp",
			review: Review{CardID: "a", Quality: srs.QualityGood},
			reason: ReasonMissingField,
		},
		{
			name:   "invalid quality",
			review: Review{CardID: "a", Quality: 1, Timestamp: off0.Add(time.Minute)},
			reason: ReasonInvalidQuality,
		},
		{
			name:   "timestamp past expiry",
			review: Review{CardID: "a", Quality: srs.QualityGood, Timestamp: off0.Add(SessionTTL + time.Minute)},
			reason: ReasonExpiredSession,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			reviews := []Review{
				{CardID: "a", Quality: srs.QualityGood, IsCorrect: true, Timestamp: off0.Add(time.Minute)},
				tc.review,
			}
			got, err := r.Apply(sess, reviews, off0.Add(time.Hour))
			if got != nil {
				t.Error("rejected batch must not return states")
			}
			var rej *RejectError
			if !errors.As(err, &rej) {
				t.Fatalf("error = %v, want *RejectError", err)
			}
			if rej.Reason != tc.reason {
				t.Errorf("reason = %q, want %q", rej.Reason, tc.reason)
			}
			if rej.Index != 1 {
				t.Errorf("index = %d, want 1", rej.Index)
			}
		})
	}
}

func TestApply_ExpiredSessionRejected(t *testing.T) {
	r := newReconciler(t)
	sess := snapshot(t, "a")
	reviews := []Review{
		{CardID: "a", Quality: srs.QualityGood, IsCorrect: true, Timestamp: off0.Add(time.Minute)},
	}
	_, err := r.Apply(sess, reviews, off0.Add(SessionTTL+time.Second))
	var rej *RejectError
	if !errors.As(err, &rej) {
		t.Fatalf("error = %v, want *RejectError", err)
	}
	if rej.Reason != ReasonExpiredSession || rej.Index != -1 {
		t.Errorf("got reason %q index %d, want %q index -1", rej.Reason, rej.Index, ReasonExpiredSession)
	}
}

func TestApply_EmptyBatchIsNoOp(t *testing.T) {
	r := newReconciler(t)
	sess := snapshot(t, "a")
	got, err := r.Apply(sess, nil, off0.Add(time.Hour))
	if err != nil {
		t.Fatal(err)
	}
	if !sameState(got["a"], sess.Cards["a"]) {
		t.Errorf("empty batch changed state: %+v", got["a"])
	}
}

func TestNewSession_SnapshotIsIndependent(t *testing.T) {
	cards := map[string]srs.MemoryState{"a": srs.NewMemoryState(off0)}
	sess := NewSession(off0, cards, 0.85, true)
	if sess.ID == "" {
		t.Error("session id not assigned")
	}
	if want := off0.Add(SessionTTL); !sess.ExpiresAt.Equal(want) {
		t.Errorf("ExpiresAt = %v, want %v", sess.ExpiresAt, want)
	}

	mutated := cards["a"]
	mutated.TotalReviews = 99
	cards["a"] = mutated
	if sess.Cards["a"].TotalReviews != 0 {
		t.Error("snapshot shares state with the caller's map")
	}
}
