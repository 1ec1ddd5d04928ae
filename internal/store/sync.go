package store

import (
	"context"
	"fmt"
	"time"

	"github.com/minhokang/baeum/ent"
	"github.com/minhokang/baeum/ent/offlinesession"
	"github.com/minhokang/baeum/internal/offline"
	"github.com/minhokang/baeum/internal/srs"
)

// SyncService reconciles offline review batches and persists the outcome
// atomically: card states, review log rows, and the consumed flag all land
// in one transaction or not at all.
type SyncService struct {
	store *Store
	sched srs.Scheduler
}

func NewSyncService(store *Store, sched srs.Scheduler) *SyncService {
	return &SyncService{store: store, sched: sched}
}

// Reconcile replays a batch against its stored snapshot. A snapshot can be
// consumed once; a second replay is refused.
func (s *SyncService) Reconcile(ctx context.Context, sessionID string, reviews []offline.Review, now time.Time) (map[string]srs.MemoryState, error) {
	sess, err := s.store.OfflineSessionRepo().Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, fmt.Errorf("offline session %q not found", sessionID)
	}
	consumed, err := s.store.OfflineSessionRepo().Consumed(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if consumed {
		return nil, fmt.Errorf("offline session %q already reconciled", sessionID)
	}

	states, err := offline.NewReconciler(s.sched).Apply(sess, reviews, now)
	if err != nil {
		return nil, err
	}

	tx, err := s.store.Client().Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin sync transaction: %w", err)
	}
	if err := s.persist(ctx, tx.Client(), sessionID, states, reviews); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			return nil, fmt.Errorf("%w (rollback: %v)", err, rerr)
		}
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit sync transaction: %w", err)
	}
	return states, nil
}

func (s *SyncService) persist(ctx context.Context, client *ent.Client, sessionID string, states map[string]srs.MemoryState, reviews []offline.Review) error {
	// Only cards the batch actually reviewed are written back. The
	// reconciler returns a state for every snapshotted card, but an
	// untouched card may have progressed online since the snapshot was
	// taken; its snapshot state is stale, not authoritative.
	touched := make(map[string]bool, len(reviews))
	for _, rev := range reviews {
		touched[rev.CardID] = true
	}
	for cardID := range touched {
		if err := upsertProgress(ctx, client, cardID, states[cardID]); err != nil {
			return fmt.Errorf("persist state for %q: %w", cardID, err)
		}
	}
	for _, rev := range reviews {
		err := appendReview(ctx, client, ReviewRecord{
			CardID:    rev.CardID,
			Quality:   rev.Quality,
			Correct:   rev.IsCorrect,
			HintsUsed: rev.HintsUsed,
			StudyMode: "offline",
			Timestamp: rev.Timestamp,
		})
		if err != nil {
			return err
		}
	}
	n, err := client.OfflineSession.Update().
		Where(offlinesession.SessionID(sessionID)).
		SetConsumed(true).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("mark session consumed: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("mark session consumed: %q not found", sessionID)
	}
	return nil
}

// PruneExpired drops replay-expired snapshots. Intended to run at startup.
func (s *SyncService) PruneExpired(ctx context.Context, now time.Time) error {
	return s.store.OfflineSessionRepo().PruneExpired(ctx, now)
}
