package offline

import (
	"time"

	"github.com/google/uuid"

	"github.com/minhokang/baeum/internal/srs"
)

// SessionTTL is how long an offline snapshot stays replayable.
const SessionTTL = 48 * time.Hour

// Session is a snapshot handed to a device before it goes offline. It
// freezes each card's scheduling state plus the scheduler knobs in effect,
// so the device and the server compute the same progression.
type Session struct {
	ID               string                     `json:"id"`
	CreatedAt        time.Time                  `json:"created_at"`
	ExpiresAt        time.Time                  `json:"expires_at"`
	DesiredRetention float64                    `json:"desired_retention"`
	FocusMode        bool                       `json:"focus_mode"`
	Cards            map[string]srs.MemoryState `json:"cards"`
}

// NewSession snapshots the given card states at now.
func NewSession(now time.Time, cards map[string]srs.MemoryState, desiredRetention float64, focusMode bool) *Session {
	snapshot := make(map[string]srs.MemoryState, len(cards))
	for id, state := range cards {
		snapshot[id] = state
	}
	return &Session{
		ID:               uuid.NewString(),
		CreatedAt:        now,
		ExpiresAt:        now.Add(SessionTTL),
		DesiredRetention: desiredRetention,
		FocusMode:        focusMode,
		Cards:            snapshot,
	}
}

// Expired reports whether the snapshot can no longer be replayed.
func (s *Session) Expired(at time.Time) bool {
	return at.After(s.ExpiresAt)
}

// Review is one graded answer recorded while offline. The server recomputes
// scheduling from the quality and timestamp alone; any scheduling state the
// device computed locally is untrusted and ignored.
type Review struct {
	CardID    string    `json:"card_id"`
	Quality   int       `json:"quality"`
	IsCorrect bool      `json:"is_correct"`
	HintsUsed int       `json:"hints_used"`
	Timestamp time.Time `json:"timestamp"`
}
