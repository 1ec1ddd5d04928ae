package store

import (
	"context"
	"fmt"
	"time"

	"github.com/minhokang/baeum/ent"
	"github.com/minhokang/baeum/ent/reviewlog"
)

// reviewLogRepo implements ReviewLogRepo using the ent client.
type reviewLogRepo struct {
	client *ent.Client
}

func (r *reviewLogRepo) Append(ctx context.Context, rec ReviewRecord) error {
	return appendReview(ctx, r.client, rec)
}

func appendReview(ctx context.Context, client *ent.Client, rec ReviewRecord) error {
	mode := rec.StudyMode
	if mode == "" {
		mode = "online"
	}
	_, err := client.ReviewLog.Create().
		SetCardID(rec.CardID).
		SetQuality(rec.Quality).
		SetCorrect(rec.Correct).
		SetHintsUsed(rec.HintsUsed).
		SetStudyMode(mode).
		SetTimestamp(rec.Timestamp).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("append review for %q: %w", rec.CardID, err)
	}
	return nil
}

func (r *reviewLogRepo) LastFailures(ctx context.Context, since time.Time) (map[string]time.Time, error) {
	rows, err := r.client.ReviewLog.Query().
		Where(reviewlog.CorrectEQ(false), reviewlog.TimestampGTE(since)).
		Order(ent.Asc(reviewlog.FieldTimestamp)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query recent failures: %w", err)
	}
	failures := make(map[string]time.Time, len(rows))
	for _, row := range rows {
		failures[row.CardID] = row.Timestamp
	}
	return failures, nil
}

func (r *reviewLogRepo) LastReviews(ctx context.Context) (map[string]time.Time, error) {
	rows, err := r.client.ReviewLog.Query().
		Order(ent.Asc(reviewlog.FieldTimestamp)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query last reviews: %w", err)
	}
	last := make(map[string]time.Time, len(rows))
	for _, row := range rows {
		last[row.CardID] = row.Timestamp
	}
	return last, nil
}

func (r *reviewLogRepo) CountSince(ctx context.Context, since time.Time) (total, correct int, err error) {
	total, err = r.client.ReviewLog.Query().
		Where(reviewlog.TimestampGTE(since)).
		Count(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("count reviews: %w", err)
	}
	correct, err = r.client.ReviewLog.Query().
		Where(reviewlog.TimestampGTE(since), reviewlog.CorrectEQ(true)).
		Count(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("count correct reviews: %w", err)
	}
	return total, correct, nil
}
