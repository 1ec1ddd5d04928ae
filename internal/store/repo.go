package store

import (
	"context"
	"time"

	"github.com/minhokang/baeum/internal/offline"
	"github.com/minhokang/baeum/internal/srs"
)

// Progress pairs a card with its stored scheduling state.
type Progress struct {
	CardID    string
	Memory    srs.MemoryState
	UpdatedAt time.Time
}

// ProgressRepo manages per-card scheduling state.
type ProgressRepo interface {
	// Get returns the state for one card, or nil if the card has never
	// been studied.
	Get(ctx context.Context, cardID string) (*Progress, error)

	// All returns the stored state for every studied card.
	All(ctx context.Context) (map[string]srs.MemoryState, error)

	// Upsert writes the state for one card, creating the row on first
	// review.
	Upsert(ctx context.Context, cardID string, state srs.MemoryState) error

	// Reset deletes all stored progress.
	Reset(ctx context.Context) error
}

// ReviewRecord is one graded answer as persisted.
type ReviewRecord struct {
	CardID    string
	Quality   int
	Correct   bool
	HintsUsed int
	StudyMode string // "online" or "offline"
	Timestamp time.Time
}

// ReviewLogRepo provides append and history access to the review log.
type ReviewLogRepo interface {
	// Append records one review.
	Append(ctx context.Context, rec ReviewRecord) error

	// LastFailures returns each card's most recent failed review at or
	// after since. Cards with no failure in the window are absent.
	LastFailures(ctx context.Context, since time.Time) (map[string]time.Time, error)

	// LastReviews returns each card's most recent review time.
	LastReviews(ctx context.Context) (map[string]time.Time, error)

	// CountSince returns total and correct review counts at or after
	// since.
	CountSince(ctx context.Context, since time.Time) (total, correct int, err error)
}

// OfflineSessionRepo persists offline study snapshots.
type OfflineSessionRepo interface {
	// Save stores a new snapshot. At most one unconsumed snapshot is
	// kept; saving supersedes any previous one.
	Save(ctx context.Context, sess *offline.Session) error

	// Get returns a snapshot by id, or nil if unknown.
	Get(ctx context.Context, sessionID string) (*offline.Session, error)

	// MarkConsumed flags a snapshot as reconciled so it cannot be
	// replayed twice.
	MarkConsumed(ctx context.Context, sessionID string) error

	// Consumed reports whether a snapshot has already been reconciled.
	Consumed(ctx context.Context, sessionID string) (bool, error)

	// PruneExpired deletes snapshots whose replay deadline has passed.
	PruneExpired(ctx context.Context, now time.Time) error
}
