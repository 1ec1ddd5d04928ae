package store

import (
	"context"
	"testing"
	"time"

	"github.com/minhokang/baeum/internal/offline"
	"github.com/minhokang/baeum/internal/srs"
)

var st0 = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestProgressUpsertAndGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	// Unknown card.
	got, err := repo.Get(ctx, "w-water")
	if err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Fatalf("expected nil progress for an unstudied card, got %+v", got)
	}

	state := srs.NewMemoryState(st0)
	state.State = srs.StateLearning
	state.LearningStep = 2
	state.TotalReviews = 2
	state.CorrectReviews = 2
	state.NextReview = st0.Add(time.Hour)
	if err := repo.Upsert(ctx, "w-water", state); err != nil {
		t.Fatal(err)
	}

	got, err = repo.Get(ctx, "w-water")
	if err != nil {
		t.Fatal(err)
	}
	if got == nil {
		t.Fatal("expected stored progress")
	}
	if got.Memory.State != srs.StateLearning || got.Memory.LearningStep != 2 {
		t.Errorf("stored state = %+v", got.Memory)
	}
	if !got.Memory.NextReview.Equal(state.NextReview) {
		t.Errorf("NextReview = %v, want %v", got.Memory.NextReview, state.NextReview)
	}

	// Second upsert updates in place.
	stab := 12.5
	state.State = srs.StateReview
	state.Stability = &stab
	if err := repo.Upsert(ctx, "w-water", state); err != nil {
		t.Fatal(err)
	}
	all, err := repo.All(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 1 {
		t.Fatalf("All returned %d rows, want 1", len(all))
	}
	if got := all["w-water"]; got.State != srs.StateReview || got.Stability == nil || *got.Stability != stab {
		t.Errorf("updated state = %+v", got)
	}

	if err := repo.Reset(ctx); err != nil {
		t.Fatal(err)
	}
	all, err = repo.All(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 0 {
		t.Errorf("Reset left %d rows", len(all))
	}
}

func TestReviewLogQueries(t *testing.T) {
	s := openTestStore(t)
	repo := s.ReviewLogRepo()
	ctx := context.Background()

	recs := []ReviewRecord{
		{CardID: "a", Quality: srs.QualityGood, Correct: true, Timestamp: st0},
		{CardID: "a", Quality: srs.QualityAgain, Correct: false, Timestamp: st0.Add(10 * time.Minute)},
		{CardID: "b", Quality: srs.QualityAgain, Correct: false, Timestamp: st0.Add(5 * time.Minute)},
		{CardID: "b", Quality: srs.QualityGood, Correct: true, HintsUsed: 1, Timestamp: st0.Add(20 * time.Minute)},
	}
	for _, rec := range recs {
		if err := repo.Append(ctx, rec); err != nil {
			t.Fatal(err)
		}
	}

	failures, err := repo.LastFailures(ctx, st0)
	if err != nil {
		t.Fatal(err)
	}
	if len(failures) != 2 {
		t.Fatalf("LastFailures returned %d cards, want 2", len(failures))
	}
	if !failures["a"].Equal(st0.Add(10 * time.Minute)) {
		t.Errorf("last failure for a = %v", failures["a"])
	}

	last, err := repo.LastReviews(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if !last["b"].Equal(st0.Add(20 * time.Minute)) {
		t.Errorf("last review for b = %v", last["b"])
	}

	total, correct, err := repo.CountSince(ctx, st0)
	if err != nil {
		t.Fatal(err)
	}
	if total != 4 || correct != 2 {
		t.Errorf("CountSince = %d/%d, want 4/2", correct, total)
	}
}

func TestOfflineSessionRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.OfflineSessionRepo()
	ctx := context.Background()

	sess := offline.NewSession(st0, map[string]srs.MemoryState{
		"a": srs.NewMemoryState(st0),
	}, 0.90, true)
	if err := repo.Save(ctx, sess); err != nil {
		t.Fatal(err)
	}

	got, err := repo.Get(ctx, sess.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got == nil {
		t.Fatal("expected stored session")
	}
	if !got.ExpiresAt.Equal(sess.ExpiresAt) || !got.FocusMode || got.DesiredRetention != 0.90 {
		t.Errorf("stored session = %+v", got)
	}
	if _, ok := got.Cards["a"]; !ok {
		t.Error("stored session lost its card snapshot")
	}

	consumed, err := repo.Consumed(ctx, sess.ID)
	if err != nil {
		t.Fatal(err)
	}
	if consumed {
		t.Error("fresh session reported consumed")
	}

	// A newer snapshot supersedes the unconsumed one.
	next := offline.NewSession(st0.Add(time.Hour), map[string]srs.MemoryState{
		"a": srs.NewMemoryState(st0),
	}, 0.90, false)
	if err := repo.Save(ctx, next); err != nil {
		t.Fatal(err)
	}
	got, err = repo.Get(ctx, sess.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Error("superseded session still present")
	}
}

func TestSyncService_ReconcilesOnce(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	sched := srs.New(srs.ChoiceModern, srs.Options{TargetRetention: 0.90})
	svc := NewSyncService(s, sched)

	sess := offline.NewSession(st0, map[string]srs.MemoryState{
		"a": srs.NewMemoryState(st0),
	}, 0.90, false)
	if err := s.OfflineSessionRepo().Save(ctx, sess); err != nil {
		t.Fatal(err)
	}

	reviews := []offline.Review{
		{CardID: "a", Quality: srs.QualityGood, IsCorrect: true, Timestamp: st0.Add(time.Minute)},
	}
	states, err := svc.Reconcile(ctx, sess.ID, reviews, st0.Add(time.Hour))
	if err != nil {
		t.Fatal(err)
	}
	if states["a"].TotalReviews != 1 {
		t.Errorf("reconciled TotalReviews = %d, want 1", states["a"].TotalReviews)
	}

	prog, err := s.ProgressRepo().Get(ctx, "a")
	if err != nil {
		t.Fatal(err)
	}
	if prog == nil || prog.Memory.TotalReviews != 1 {
		t.Errorf("persisted progress = %+v", prog)
	}

	failures, err := s.ReviewLogRepo().LastFailures(ctx, st0)
	if err != nil {
		t.Fatal(err)
	}
	if len(failures) != 0 {
		t.Errorf("correct-only batch logged %d failures", len(failures))
	}

	if _, err := svc.Reconcile(ctx, sess.ID, reviews, st0.Add(time.Hour)); err == nil {
		t.Error("second replay of a consumed session should fail")
	}
}

func TestSyncService_PreservesOnlineProgressForUntouchedCards(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	sched := srs.New(srs.ChoiceModern, srs.Options{TargetRetention: 0.90})
	svc := NewSyncService(s, sched)

	// Snapshot both cards, then keep studying b online.
	sess := offline.NewSession(st0, map[string]srs.MemoryState{
		"a": srs.NewMemoryState(st0),
		"b": srs.NewMemoryState(st0),
	}, 0.90, false)
	if err := s.OfflineSessionRepo().Save(ctx, sess); err != nil {
		t.Fatal(err)
	}

	online := srs.NewMemoryState(st0)
	online = sched.Advance(online, srs.QualityGood, st0.Add(5*time.Minute))
	online = sched.Advance(online, srs.QualityGood, st0.Add(20*time.Minute))
	if err := s.ProgressRepo().Upsert(ctx, "b", online); err != nil {
		t.Fatal(err)
	}

	// The offline batch only touched a.
	reviews := []offline.Review{
		{CardID: "a", Quality: srs.QualityGood, IsCorrect: true, Timestamp: st0.Add(10 * time.Minute)},
	}
	if _, err := svc.Reconcile(ctx, sess.ID, reviews, st0.Add(time.Hour)); err != nil {
		t.Fatal(err)
	}

	prog, err := s.ProgressRepo().Get(ctx, "b")
	if err != nil {
		t.Fatal(err)
	}
	if prog == nil {
		t.Fatal("online progress for b disappeared")
	}
	if prog.Memory.LearningStep != online.LearningStep || prog.Memory.TotalReviews != online.TotalReviews {
		t.Errorf("online progress for b reverted to the snapshot: %+v, want %+v", prog.Memory, online)
	}

	prog, err = s.ProgressRepo().Get(ctx, "a")
	if err != nil {
		t.Fatal(err)
	}
	if prog == nil || prog.Memory.TotalReviews != 1 {
		t.Errorf("reviewed card a not persisted: %+v", prog)
	}
}
