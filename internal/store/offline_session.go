package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/minhokang/baeum/ent"
	"github.com/minhokang/baeum/ent/offlinesession"
	"github.com/minhokang/baeum/internal/offline"
	"github.com/minhokang/baeum/internal/srs"
)

// offlineSessionRepo implements OfflineSessionRepo using the ent client.
type offlineSessionRepo struct {
	client *ent.Client
}

func (r *offlineSessionRepo) Save(ctx context.Context, sess *offline.Session) error {
	cards, err := cardsToMap(sess.Cards)
	if err != nil {
		return fmt.Errorf("marshal session cards: %w", err)
	}

	// A new snapshot supersedes any unconsumed predecessor.
	_, err = r.client.OfflineSession.Delete().
		Where(offlinesession.ConsumedEQ(false)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("supersede offline sessions: %w", err)
	}

	_, err = r.client.OfflineSession.Create().
		SetSessionID(sess.ID).
		SetCreatedAt(sess.CreatedAt).
		SetExpiresAt(sess.ExpiresAt).
		SetDesiredRetention(sess.DesiredRetention).
		SetFocusMode(sess.FocusMode).
		SetCards(cards).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save offline session: %w", err)
	}
	return nil
}

func (r *offlineSessionRepo) Get(ctx context.Context, sessionID string) (*offline.Session, error) {
	row, err := r.client.OfflineSession.Query().
		Where(offlinesession.SessionID(sessionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query offline session %q: %w", sessionID, err)
	}
	return rowToSession(row)
}

func (r *offlineSessionRepo) MarkConsumed(ctx context.Context, sessionID string) error {
	n, err := r.client.OfflineSession.Update().
		Where(offlinesession.SessionID(sessionID)).
		SetConsumed(true).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("mark session %q consumed: %w", sessionID, err)
	}
	if n == 0 {
		return fmt.Errorf("mark session %q consumed: not found", sessionID)
	}
	return nil
}

func (r *offlineSessionRepo) Consumed(ctx context.Context, sessionID string) (bool, error) {
	row, err := r.client.OfflineSession.Query().
		Where(offlinesession.SessionID(sessionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("query offline session %q: %w", sessionID, err)
	}
	return row.Consumed, nil
}

func (r *offlineSessionRepo) PruneExpired(ctx context.Context, now time.Time) error {
	_, err := r.client.OfflineSession.Delete().
		Where(offlinesession.ExpiresAtLT(now)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("prune expired sessions: %w", err)
	}
	return nil
}

// cardsToMap converts frozen memory states to map[string]any for ent JSON
// storage.
func cardsToMap(cards map[string]srs.MemoryState) (map[string]any, error) {
	b, err := json.Marshal(cards)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func rowToSession(row *ent.OfflineSession) (*offline.Session, error) {
	b, err := json.Marshal(row.Cards)
	if err != nil {
		return nil, fmt.Errorf("marshal stored cards: %w", err)
	}
	var cards map[string]srs.MemoryState
	if err := json.Unmarshal(b, &cards); err != nil {
		return nil, fmt.Errorf("decode stored cards: %w", err)
	}
	return &offline.Session{
		ID:               row.SessionID,
		CreatedAt:        row.CreatedAt,
		ExpiresAt:        row.ExpiresAt,
		DesiredRetention: row.DesiredRetention,
		FocusMode:        row.FocusMode,
		Cards:            cards,
	}, nil
}
