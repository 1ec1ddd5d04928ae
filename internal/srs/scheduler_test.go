package srs

import (
	"testing"
	"time"
)

var t0 = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

func advanceTimes(s Scheduler, state MemoryState, quality, n int, start time.Time) (MemoryState, time.Time) {
	now := start
	for i := 0; i < n; i++ {
		state = s.Advance(state, quality, now)
		now = state.NextReview
	}
	return state, now
}

func TestModern_NewCardAdvancesLadder(t *testing.T) {
	s := New(ChoiceModern, Options{TargetRetention: 0.9})
	state := s.Advance(NewMemoryState(t0), QualityGood, t0)

	if state.LearningStep != 1 {
		t.Errorf("LearningStep = %d, want 1", state.LearningStep)
	}
	if state.State != StateLearning {
		t.Errorf("State = %v, want Learning", state.State)
	}
	if state.Repetitions != 0 {
		t.Errorf("Repetitions = %d, want 0", state.Repetitions)
	}
	// Step 1 interval is 10 minutes in normal mode.
	if want := t0.Add(10 * time.Minute); !state.NextReview.Equal(want) {
		t.Errorf("NextReview = %v, want %v", state.NextReview, want)
	}
}

func TestModern_GraduationAfterFourPasses(t *testing.T) {
	s := New(ChoiceModern, Options{TargetRetention: 0.9})
	state, _ := advanceTimes(s, NewMemoryState(t0), QualityGood, 4, t0)

	if state.State != StateReview {
		t.Errorf("State = %v, want Review", state.State)
	}
	if state.LearningStep != GraduatingStep {
		t.Errorf("LearningStep = %d, want %d", state.LearningStep, GraduatingStep)
	}
	if state.Repetitions != 1 {
		t.Errorf("Repetitions = %d, want 1", state.Repetitions)
	}
	if state.Stability == nil || state.Difficulty == nil {
		t.Fatal("expected stability and difficulty after graduation")
	}
	if state.TotalReviews != 4 || state.CorrectReviews != 4 {
		t.Errorf("counters = %d/%d, want 4/4", state.CorrectReviews, state.TotalReviews)
	}
	// Graduation schedules one day out from the final ladder step
	// (reached 10m + 60m + 240m after first exposure).
	if want := t0.Add(310*time.Minute + 24*time.Hour); !state.NextReview.Equal(want) {
		t.Errorf("NextReview = %v, want %v", state.NextReview, want)
	}
}

func TestModern_GraduationSeedUniformBelowEasy(t *testing.T) {
	s := New(ChoiceModern, Options{TargetRetention: 0.9})

	grad := func(quality int) MemoryState {
		state, _ := advanceTimes(s, NewMemoryState(t0), quality, 4, t0)
		return state
	}

	partial := grad(QualityHard)
	good := grad(QualityGood)
	easy := grad(QualityEasy)

	if *partial.Stability != *good.Stability || *partial.Difficulty != *good.Difficulty {
		t.Errorf("barely-passing graduation seeded a different model state: %v/%v vs %v/%v",
			*partial.Stability, *partial.Difficulty, *good.Stability, *good.Difficulty)
	}
	if *easy.Stability <= *good.Stability {
		t.Errorf("effortless graduation should seed higher stability: %v vs %v",
			*easy.Stability, *good.Stability)
	}
}

func TestModern_FocusModeCompressesLadder(t *testing.T) {
	s := New(ChoiceModern, Options{TargetRetention: 0.9, FocusMode: true})
	state := s.Advance(NewMemoryState(t0), QualityGood, t0)

	if want := t0.Add(5 * time.Minute); !state.NextReview.Equal(want) {
		t.Errorf("NextReview = %v, want %v", state.NextReview, want)
	}
}

func TestModern_FailResetsLadder(t *testing.T) {
	s := New(ChoiceModern, Options{TargetRetention: 0.9})
	state := NewMemoryState(t0)
	state.LearningStep = 2
	state.State = StateLearning

	state = s.Advance(state, QualityAgain, t0)
	if state.LearningStep != 0 {
		t.Errorf("LearningStep = %d, want 0", state.LearningStep)
	}
	if state.State != StateLearning {
		t.Errorf("State = %v, want Learning", state.State)
	}
	if want := t0.Add(1 * time.Minute); !state.NextReview.Equal(want) {
		t.Errorf("NextReview = %v, want %v", state.NextReview, want)
	}
}

func TestModern_GraduatedFailEntersRelearning(t *testing.T) {
	s := New(ChoiceModern, Options{TargetRetention: 0.9})
	state, now := advanceTimes(s, NewMemoryState(t0), QualityGood, 4, t0)
	stability := *state.Stability

	for _, reps := range []int{1, 7, 40} {
		failed := state
		failed.Repetitions = reps
		failed = s.Advance(failed, QualityAgain, now)

		if failed.State != StateRelearning {
			t.Errorf("reps=%d: State = %v, want Relearning", reps, failed.State)
		}
		if failed.LearningStep != 0 {
			t.Errorf("reps=%d: LearningStep = %d, want 0", reps, failed.LearningStep)
		}
		if failed.Stability == nil || *failed.Stability != stability {
			t.Errorf("reps=%d: stability prior not preserved", reps)
		}
	}
}

func TestModern_ReviewGrowsStability(t *testing.T) {
	s := New(ChoiceModern, Options{TargetRetention: 0.9})
	state, now := advanceTimes(s, NewMemoryState(t0), QualityGood, 4, t0)

	prev := *state.Stability
	for i := 0; i < 3; i++ {
		now = state.NextReview
		state = s.Advance(state, QualityGood, now)
		if *state.Stability <= prev {
			t.Fatalf("review %d: stability %.3f did not grow past %.3f", i+1, *state.Stability, prev)
		}
		prev = *state.Stability
		if state.NextReview.Sub(now) < 24*time.Hour {
			t.Errorf("review %d: interval below one day", i+1)
		}
	}
	if state.Repetitions != 4 {
		t.Errorf("Repetitions = %d, want 4", state.Repetitions)
	}
}

func TestModern_Deterministic(t *testing.T) {
	mk := func() MemoryState {
		s := New(ChoiceModern, Options{TargetRetention: 0.9})
		state, now := advanceTimes(s, NewMemoryState(t0), QualityGood, 4, t0)
		state = s.Advance(state, QualityHard, now.AddDate(0, 0, 3))
		return s.Advance(state, QualityGood, state.NextReview)
	}
	a, b := mk(), mk()
	if !a.NextReview.Equal(b.NextReview) || *a.Stability != *b.Stability || *a.Difficulty != *b.Difficulty {
		t.Errorf("replay diverged: %+v vs %+v", a, b)
	}
}

func TestClassic_IntervalProgression(t *testing.T) {
	s := New(ChoiceClassic, Options{})
	state, now := advanceTimes(s, NewMemoryState(t0), QualityGood, 4, t0)

	if state.IntervalDays != 1 || state.Repetitions != 1 {
		t.Fatalf("after graduation: interval=%d reps=%d, want 1/1", state.IntervalDays, state.Repetitions)
	}

	now = state.NextReview
	state = s.Advance(state, QualityGood, now)
	if state.IntervalDays != 6 {
		t.Errorf("second interval = %d, want 6", state.IntervalDays)
	}

	now = state.NextReview
	state = s.Advance(state, QualityGood, now)
	if state.IntervalDays < 15 {
		t.Errorf("third interval = %d, want >= 15 (6 * ease)", state.IntervalDays)
	}
}

func TestClassic_EaseFactorFloor(t *testing.T) {
	s := New(ChoiceClassic, Options{})
	state, now := advanceTimes(s, NewMemoryState(t0), QualityGood, 4, t0)

	for i := 0; i < 10; i++ {
		state = s.Advance(state, QualityAgain, now)
		// Climb back out so the next failure hits a graduated card again.
		state, now = advanceTimes(s, state, QualityGood, 4, now.Add(time.Minute))
	}
	if state.EaseFactor < minEaseFactor {
		t.Errorf("EaseFactor = %.2f, below floor %.2f", state.EaseFactor, minEaseFactor)
	}
}

func TestClassic_FailReturnsToLadder(t *testing.T) {
	s := New(ChoiceClassic, Options{})
	state, now := advanceTimes(s, NewMemoryState(t0), QualityGood, 4, t0)
	state.Repetitions = 5
	state.IntervalDays = 15

	state = s.Advance(state, QualityAgain, now)
	if state.State != StateRelearning {
		t.Errorf("State = %v, want Relearning", state.State)
	}
	if state.LearningStep != 0 || state.Repetitions != 0 || state.IntervalDays != 0 {
		t.Errorf("state not reset: %+v", state)
	}
}

func TestSchedulers_ShareOneContract(t *testing.T) {
	for _, choice := range []Choice{ChoiceModern, ChoiceClassic} {
		s := New(choice, Options{TargetRetention: 0.9})
		state, _ := advanceTimes(s, NewMemoryState(t0), QualityGood, 4, t0)
		if state.State != StateReview {
			t.Errorf("%s: State = %v, want Review", choice, state.State)
		}
		if state.LearningStep != GraduatingStep {
			t.Errorf("%s: LearningStep = %d, want %d", choice, state.LearningStep, GraduatingStep)
		}
	}
}

func TestClampRetention(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0.90},
		{0.5, 0.80},
		{0.85, 0.85},
		{0.99, 0.95},
	}
	for _, tt := range tests {
		if got := clampRetention(tt.in); got != tt.want {
			t.Errorf("clampRetention(%.2f) = %.2f, want %.2f", tt.in, got, tt.want)
		}
	}
}
