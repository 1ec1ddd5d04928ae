package store

import (
	"context"
	"fmt"

	"github.com/minhokang/baeum/ent"
	"github.com/minhokang/baeum/ent/cardprogress"
	"github.com/minhokang/baeum/internal/srs"
)

// progressRepo implements ProgressRepo using the ent client.
type progressRepo struct {
	client *ent.Client
}

func (r *progressRepo) Get(ctx context.Context, cardID string) (*Progress, error) {
	row, err := r.client.CardProgress.Query().
		Where(cardprogress.CardID(cardID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query progress for %q: %w", cardID, err)
	}
	return &Progress{CardID: row.CardID, Memory: rowToMemory(row), UpdatedAt: row.UpdatedAt}, nil
}

func (r *progressRepo) All(ctx context.Context) (map[string]srs.MemoryState, error) {
	rows, err := r.client.CardProgress.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query all progress: %w", err)
	}
	states := make(map[string]srs.MemoryState, len(rows))
	for _, row := range rows {
		states[row.CardID] = rowToMemory(row)
	}
	return states, nil
}

func (r *progressRepo) Upsert(ctx context.Context, cardID string, state srs.MemoryState) error {
	err := upsertProgress(ctx, r.client, cardID, state)
	if err != nil {
		return fmt.Errorf("upsert progress for %q: %w", cardID, err)
	}
	return nil
}

func (r *progressRepo) Reset(ctx context.Context) error {
	if _, err := r.client.CardProgress.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("reset progress: %w", err)
	}
	return nil
}

// upsertProgress writes one card's state through the given client, which
// may be transactional.
func upsertProgress(ctx context.Context, client *ent.Client, cardID string, state srs.MemoryState) error {
	n, err := client.CardProgress.Update().
		Where(cardprogress.CardID(cardID)).
		SetState(string(state.State)).
		SetLearningStep(state.LearningStep).
		SetNillableStability(state.Stability).
		SetNillableDifficulty(state.Difficulty).
		SetRepetitions(state.Repetitions).
		SetEaseFactor(state.EaseFactor).
		SetIntervalDays(state.IntervalDays).
		SetNextReview(state.NextReview).
		SetTotalReviews(state.TotalReviews).
		SetCorrectReviews(state.CorrectReviews).
		Save(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	_, err = client.CardProgress.Create().
		SetCardID(cardID).
		SetState(string(state.State)).
		SetLearningStep(state.LearningStep).
		SetNillableStability(state.Stability).
		SetNillableDifficulty(state.Difficulty).
		SetRepetitions(state.Repetitions).
		SetEaseFactor(state.EaseFactor).
		SetIntervalDays(state.IntervalDays).
		SetNextReview(state.NextReview).
		SetTotalReviews(state.TotalReviews).
		SetCorrectReviews(state.CorrectReviews).
		Save(ctx)
	return err
}

// rowToMemory maps a stored row back to the scheduler's state type.
func rowToMemory(row *ent.CardProgress) srs.MemoryState {
	return srs.MemoryState{
		LearningStep:   row.LearningStep,
		Stability:      row.Stability,
		Difficulty:     row.Difficulty,
		Repetitions:    row.Repetitions,
		State:          srs.State(row.State),
		NextReview:     row.NextReview,
		TotalReviews:   row.TotalReviews,
		CorrectReviews: row.CorrectReviews,
		EaseFactor:     row.EaseFactor,
		IntervalDays:   row.IntervalDays,
	}
}
