package engine

import (
	"time"

	"github.com/minhokang/baeum/internal/contentpack"
	"github.com/minhokang/baeum/internal/selector"
	"github.com/minhokang/baeum/internal/srs"
)

// BuildPool assembles the selectable cards for one pass of the study loop:
// every unlocked card due within the horizon of now. Cards never studied
// are due immediately; a card with unlock_after dependencies stays out
// until every dependency has graduated.
//
// The horizon keeps intra-session cards in play: a card on a short
// learning step becomes due mid-session and must stay visible to the
// reinforcement queue, not vanish until its step timer lapses.
func BuildPool(pack *contentpack.Pack, states map[string]srs.MemoryState, failures, lastReviews map[string]time.Time, now time.Time, horizon time.Duration) []selector.Candidate {
	cutoff := now.Add(horizon)
	var pool []selector.Candidate
	for _, cat := range pack.Categories {
		for _, card := range cat.Cards {
			state, studied := states[card.ID]
			if !studied {
				state = srs.NewMemoryState(now)
			}
			if state.NextReview.After(cutoff) {
				continue
			}
			if !unlocked(card, states) {
				continue
			}
			pool = append(pool, selector.Candidate{
				ID:          card.ID,
				Prompt:      card.Prompt,
				Answer:      card.Answer,
				Category:    cat.Name,
				Memory:      state,
				LastReview:  lastReviews[card.ID],
				LastFailure: failures[card.ID],
			})
		}
	}
	return pool
}

func unlocked(card contentpack.Card, states map[string]srs.MemoryState) bool {
	for _, dep := range card.UnlockAfter {
		if !states[dep].Graduated() {
			return false
		}
	}
	return true
}
