package engine

import (
	"testing"
	"time"

	"github.com/minhokang/baeum/internal/contentpack"
	"github.com/minhokang/baeum/internal/srs"
)

func testPack() *contentpack.Pack {
	return &contentpack.Pack{
		Name:    "test",
		Version: "1",
		Categories: []contentpack.Category{
			{
				Name: "consonants",
				Cards: []contentpack.Card{
					{ID: "basic", Prompt: "ㄱ", Answer: "[g, k]"},
					{ID: "advanced", Prompt: "ㄲ", Answer: "g (tense)", UnlockAfter: []string{"basic"}},
				},
			},
			{
				Name: "words",
				Cards: []contentpack.Card{
					{ID: "water", Prompt: "water", Answer: "mul"},
				},
			},
		},
	}
}

func poolIDs(t *testing.T, states map[string]srs.MemoryState, now time.Time) map[string]bool {
	t.Helper()
	ids := make(map[string]bool)
	for _, c := range BuildPool(testPack(), states, nil, nil, now, 0) {
		ids[c.ID] = true
	}
	return ids
}

func TestBuildPool_NewCardsAreDue(t *testing.T) {
	ids := poolIDs(t, nil, eng0)
	if !ids["basic"] || !ids["water"] {
		t.Errorf("new unlocked cards missing from pool: %v", ids)
	}
}

func TestBuildPool_LockedUntilDependencyGraduates(t *testing.T) {
	ids := poolIDs(t, nil, eng0)
	if ids["advanced"] {
		t.Error("card with an ungraduated dependency should stay locked")
	}

	basic := srs.NewMemoryState(eng0)
	basic.LearningStep = srs.GraduatingStep
	basic.State = srs.StateReview
	ids = poolIDs(t, map[string]srs.MemoryState{"basic": basic}, eng0)
	if !ids["advanced"] {
		t.Error("card should unlock once its dependency graduates")
	}
}

func TestBuildPool_FutureReviewsExcluded(t *testing.T) {
	water := srs.NewMemoryState(eng0)
	water.NextReview = eng0.Add(24 * time.Hour)
	states := map[string]srs.MemoryState{"water": water}

	if ids := poolIDs(t, states, eng0); ids["water"] {
		t.Error("card due tomorrow should not be in today's pool")
	}
	if ids := poolIDs(t, states, eng0.Add(25*time.Hour)); !ids["water"] {
		t.Error("card should return to the pool once due")
	}
}

func TestBuildPool_HorizonKeepsLearningCardsInPlay(t *testing.T) {
	water := srs.NewMemoryState(eng0)
	water.State = srs.StateLearning
	water.NextReview = eng0.Add(time.Minute)
	states := map[string]srs.MemoryState{"water": water}

	if ids := poolIDs(t, states, eng0); ids["water"] {
		t.Error("card a minute out is not due with a zero horizon")
	}

	ids := make(map[string]bool)
	for _, c := range BuildPool(testPack(), states, nil, nil, eng0, 10*time.Minute) {
		ids[c.ID] = true
	}
	if !ids["water"] {
		t.Error("card a minute out should be in play with a ten-minute horizon")
	}
}

func TestBuildPool_CarriesHistoryIntoCandidates(t *testing.T) {
	failures := map[string]time.Time{"water": eng0.Add(-2 * time.Minute)}
	lastReviews := map[string]time.Time{"water": eng0.Add(-time.Minute)}
	pool := BuildPool(testPack(), nil, failures, lastReviews, eng0, 0)
	for _, c := range pool {
		if c.ID != "water" {
			continue
		}
		if !c.LastFailure.Equal(failures["water"]) || !c.LastReview.Equal(lastReviews["water"]) {
			t.Errorf("candidate history not carried: %+v", c)
		}
		if c.Category != "words" {
			t.Errorf("category = %q, want words", c.Category)
		}
		return
	}
	t.Fatal("water not in pool")
}
