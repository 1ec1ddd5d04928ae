package engine

import (
	"errors"
	"io"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/minhokang/baeum/internal/answer"
	"github.com/minhokang/baeum/internal/offline"
	"github.com/minhokang/baeum/internal/selector"
	"github.com/minhokang/baeum/internal/srs"
)

var eng0 = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return New(Config{
		Scheduler:       srs.ChoiceModern,
		TargetRetention: 0.90,
		Rng:             rand.New(rand.NewPCG(3, 5)),
		Logger:          logger,
	})
}

func pool(ids ...string) []selector.Candidate {
	cs := make([]selector.Candidate, 0, len(ids))
	for _, id := range ids {
		cs = append(cs, selector.Candidate{
			ID:     id,
			Prompt: "prompt " + id,
			Answer: "answer " + id,
			Memory: srs.NewMemoryState(eng0),
		})
	}
	return cs
}

func TestSelectThenReport(t *testing.T) {
	e := newTestEngine(t)
	cards := pool("a", "b", "c")

	c, err := e.SelectNext(cards, eng0)
	if err != nil {
		t.Fatal(err)
	}
	state, err := e.Report(c.ID, c.Memory, srs.QualityGood, eng0)
	if err != nil {
		t.Fatal(err)
	}
	if state.TotalReviews != 1 || state.CorrectReviews != 1 {
		t.Errorf("counters = %d/%d, want 1/1", state.CorrectReviews, state.TotalReviews)
	}
	if state.LearningStep != 1 {
		t.Errorf("LearningStep = %d, want 1", state.LearningStep)
	}
}

func TestReport_RequiresSelection(t *testing.T) {
	e := newTestEngine(t)
	if _, err := e.Report("a", srs.NewMemoryState(eng0), srs.QualityGood, eng0); !errors.Is(err, ErrNoSelection) {
		t.Errorf("err = %v, want ErrNoSelection", err)
	}
}

func TestReport_RejectsWrongCard(t *testing.T) {
	e := newTestEngine(t)
	cards := pool("a", "b", "c")
	c, err := e.SelectNext(cards, eng0)
	if err != nil {
		t.Fatal(err)
	}
	other := "a"
	if c.ID == "a" {
		other = "b"
	}
	if _, err := e.Report(other, srs.NewMemoryState(eng0), srs.QualityGood, eng0); !errors.Is(err, ErrCardNotInHand) {
		t.Errorf("err = %v, want ErrCardNotInHand", err)
	}
	// the right card still reports fine afterwards
	if _, err := e.Report(c.ID, c.Memory, srs.QualityGood, eng0); err != nil {
		t.Errorf("reporting the selected card failed: %v", err)
	}
}

func TestReport_RejectsDoubleReport(t *testing.T) {
	e := newTestEngine(t)
	cards := pool("a", "b")
	c, err := e.SelectNext(cards, eng0)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := e.Report(c.ID, c.Memory, srs.QualityGood, eng0); err != nil {
		t.Fatal(err)
	}
	if _, err := e.Report(c.ID, c.Memory, srs.QualityGood, eng0); !errors.Is(err, ErrNoSelection) {
		t.Errorf("second report err = %v, want ErrNoSelection", err)
	}
}

func TestReport_RejectsInvalidQuality(t *testing.T) {
	e := newTestEngine(t)
	c, err := e.SelectNext(pool("a"), eng0)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := e.Report(c.ID, c.Memory, 7, eng0); err == nil {
		t.Error("expected an error for quality 7")
	}
}

func TestFailureFeedsReinforcementQueue(t *testing.T) {
	e := newTestEngine(t)
	cards := pool("a", "b", "c", "d", "e")

	first, err := e.SelectNext(cards, eng0)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := e.Report(first.ID, first.Memory, srs.QualityAgain, eng0); err != nil {
		t.Fatal(err)
	}

	// the failed card stays away for the spacing gap, then comes back
	for i := 0; i < 3; i++ {
		c, err := e.SelectNext(cards, eng0)
		if err != nil {
			t.Fatal(err)
		}
		if c.ID == first.ID {
			t.Fatalf("failed card resurfaced at pick %d, before the gap", i)
		}
		if _, err := e.Report(c.ID, c.Memory, srs.QualityGood, eng0); err != nil {
			t.Fatal(err)
		}
	}
	c, err := e.SelectNext(cards, eng0)
	if err != nil {
		t.Fatal(err)
	}
	if c.ID != first.ID {
		t.Errorf("pick after gap = %q, want the failed card %q", c.ID, first.ID)
	}
}

func TestSelectNext_PoolExhausted(t *testing.T) {
	e := newTestEngine(t)
	if _, err := e.SelectNext(nil, eng0); !errors.Is(err, ErrPoolExhausted) {
		t.Errorf("err = %v, want ErrPoolExhausted", err)
	}
}

func TestValidateAndHintPassThrough(t *testing.T) {
	e := newTestEngine(t)
	res, err := e.Validate("mul", "mul", false)
	if err != nil {
		t.Fatal(err)
	}
	if res.Result != answer.ResultCorrect || res.Quality != 4 {
		t.Errorf("Validate = %+v", res)
	}
	if got := e.Hint("mul", 1); got == "" || got == "mul" {
		t.Errorf("level-1 hint should mask the answer, got %q", got)
	}
	if got := e.Hint("mul", 3); got != "mul" {
		t.Errorf("level-3 hint = %q, want the full answer", got)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	e := newTestEngine(t)
	cards := map[string]srs.MemoryState{
		"a": srs.NewMemoryState(eng0),
		"b": srs.NewMemoryState(eng0),
	}
	sess := e.Snapshot(eng0, cards)
	reviews := []offline.Review{
		{CardID: "a", Quality: srs.QualityGood, IsCorrect: true, Timestamp: eng0.Add(5 * time.Minute)},
		{CardID: "a", Quality: srs.QualityGood, IsCorrect: true, Timestamp: eng0.Add(20 * time.Minute)},
	}
	states, err := e.Reconcile(sess, reviews, eng0.Add(time.Hour))
	if err != nil {
		t.Fatal(err)
	}
	if states["a"].TotalReviews != 2 {
		t.Errorf("replayed TotalReviews = %d, want 2", states["a"].TotalReviews)
	}
	if states["b"].TotalReviews != 0 {
		t.Errorf("unreviewed card advanced: %+v", states["b"])
	}

	var rej *offline.RejectError
	_, err = e.Reconcile(sess, reviews, eng0.Add(offline.SessionTTL+time.Hour))
	if !errors.As(err, &rej) || rej.Reason != offline.ReasonExpiredSession {
		t.Errorf("expired replay err = %v, want expired_session rejection", err)
	}
}
