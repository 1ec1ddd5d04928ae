// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/minhokang/baeum/ent/cardprogress"
	"github.com/minhokang/baeum/ent/offlinesession"
	"github.com/minhokang/baeum/ent/predicate"
	"github.com/minhokang/baeum/ent/reviewlog"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeCardProgress   = "CardProgress"
	TypeOfflineSession = "OfflineSession"
	TypeReviewLog      = "ReviewLog"
)

// CardProgressMutation represents an operation that mutates the CardProgress nodes in the graph.
type CardProgressMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	card_id            *string
	state              *string
	learning_step      *int
	addlearning_step   *int
	stability          *float64
	addstability       *float64
	difficulty         *float64
	adddifficulty      *float64
	repetitions        *int
	addrepetitions     *int
	ease_factor        *float64
	addease_factor     *float64
	interval_days      *int
	addinterval_days   *int
	next_review        *time.Time
	total_reviews      *int
	addtotal_reviews   *int
	correct_reviews    *int
	addcorrect_reviews *int
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*CardProgress, error)
	predicates         []predicate.CardProgress
}

var _ ent.Mutation = (*CardProgressMutation)(nil)

// cardprogressOption allows management of the mutation configuration using functional options.
type cardprogressOption func(*CardProgressMutation)

// newCardProgressMutation creates new mutation for the CardProgress entity.
func newCardProgressMutation(c config, op Op, opts ...cardprogressOption) *CardProgressMutation {
	m := &CardProgressMutation{
		config:        c,
		op:            op,
		typ:           TypeCardProgress,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCardProgressID sets the ID field of the mutation.
func withCardProgressID(id int) cardprogressOption {
	return func(m *CardProgressMutation) {
		var (
			err   error
			once  sync.Once
			value *CardProgress
		)
		m.oldValue = func(ctx context.Context) (*CardProgress, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CardProgress.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCardProgress sets the old CardProgress of the mutation.
func withCardProgress(node *CardProgress) cardprogressOption {
	return func(m *CardProgressMutation) {
		m.oldValue = func(context.Context) (*CardProgress, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CardProgressMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CardProgressMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CardProgressMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CardProgressMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CardProgress.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCardID sets the "card_id" field.
func (m *CardProgressMutation) SetCardID(s string) {
	m.card_id = &s
}

// CardID returns the value of the "card_id" field in the mutation.
func (m *CardProgressMutation) CardID() (r string, exists bool) {
	v := m.card_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCardID returns the old "card_id" field's value of the CardProgress entity.
// If the CardProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CardProgressMutation) OldCardID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCardID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCardID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCardID: %w", err)
	}
	return oldValue.CardID, nil
}

// ResetCardID resets all changes to the "card_id" field.
func (m *CardProgressMutation) ResetCardID() {
	m.card_id = nil
}

// SetState sets the "state" field.
func (m *CardProgressMutation) SetState(s string) {
	m.state = &s
}

// State returns the value of the "state" field in the mutation.
func (m *CardProgressMutation) State() (r string, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the CardProgress entity.
// If the CardProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CardProgressMutation) OldState(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ResetState resets all changes to the "state" field.
func (m *CardProgressMutation) ResetState() {
	m.state = nil
}

// SetLearningStep sets the "learning_step" field.
func (m *CardProgressMutation) SetLearningStep(i int) {
	m.learning_step = &i
	m.addlearning_step = nil
}

// LearningStep returns the value of the "learning_step" field in the mutation.
func (m *CardProgressMutation) LearningStep() (r int, exists bool) {
	v := m.learning_step
	if v == nil {
		return
	}
	return *v, true
}

// OldLearningStep returns the old "learning_step" field's value of the CardProgress entity.
// If the CardProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CardProgressMutation) OldLearningStep(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLearningStep is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLearningStep requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLearningStep: %w", err)
	}
	return oldValue.LearningStep, nil
}

// AddLearningStep adds i to the "learning_step" field.
func (m *CardProgressMutation) AddLearningStep(i int) {
	if m.addlearning_step != nil {
		*m.addlearning_step += i
	} else {
		m.addlearning_step = &i
	}
}

// AddedLearningStep returns the value that was added to the "learning_step" field in this mutation.
func (m *CardProgressMutation) AddedLearningStep() (r int, exists bool) {
	v := m.addlearning_step
	if v == nil {
		return
	}
	return *v, true
}

// ResetLearningStep resets all changes to the "learning_step" field.
func (m *CardProgressMutation) ResetLearningStep() {
	m.learning_step = nil
	m.addlearning_step = nil
}

// SetStability sets the "stability" field.
func (m *CardProgressMutation) SetStability(f float64) {
	m.stability = &f
	m.addstability = nil
}

// Stability returns the value of the "stability" field in the mutation.
func (m *CardProgressMutation) Stability() (r float64, exists bool) {
	v := m.stability
	if v == nil {
		return
	}
	return *v, true
}

// OldStability returns the old "stability" field's value of the CardProgress entity.
// If the CardProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CardProgressMutation) OldStability(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStability is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStability requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStability: %w", err)
	}
	return oldValue.Stability, nil
}

// AddStability adds f to the "stability" field.
func (m *CardProgressMutation) AddStability(f float64) {
	if m.addstability != nil {
		*m.addstability += f
	} else {
		m.addstability = &f
	}
}

// AddedStability returns the value that was added to the "stability" field in this mutation.
func (m *CardProgressMutation) AddedStability() (r float64, exists bool) {
	v := m.addstability
	if v == nil {
		return
	}
	return *v, true
}

// ClearStability clears the value of the "stability" field.
func (m *CardProgressMutation) ClearStability() {
	m.stability = nil
	m.addstability = nil
	m.clearedFields[cardprogress.FieldStability] = struct{}{}
}

// StabilityCleared returns if the "stability" field was cleared in this mutation.
func (m *CardProgressMutation) StabilityCleared() bool {
	_, ok := m.clearedFields[cardprogress.FieldStability]
	return ok
}

// ResetStability resets all changes to the "stability" field.
func (m *CardProgressMutation) ResetStability() {
	m.stability = nil
	m.addstability = nil
	delete(m.clearedFields, cardprogress.FieldStability)
}

// SetDifficulty sets the "difficulty" field.
func (m *CardProgressMutation) SetDifficulty(f float64) {
	m.difficulty = &f
	m.adddifficulty = nil
}

// Difficulty returns the value of the "difficulty" field in the mutation.
func (m *CardProgressMutation) Difficulty() (r float64, exists bool) {
	v := m.difficulty
	if v == nil {
		return
	}
	return *v, true
}

// OldDifficulty returns the old "difficulty" field's value of the CardProgress entity.
// If the CardProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CardProgressMutation) OldDifficulty(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifficulty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifficulty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifficulty: %w", err)
	}
	return oldValue.Difficulty, nil
}

// AddDifficulty adds f to the "difficulty" field.
func (m *CardProgressMutation) AddDifficulty(f float64) {
	if m.adddifficulty != nil {
		*m.adddifficulty += f
	} else {
		m.adddifficulty = &f
	}
}

// AddedDifficulty returns the value that was added to the "difficulty" field in this mutation.
func (m *CardProgressMutation) AddedDifficulty() (r float64, exists bool) {
	v := m.adddifficulty
	if v == nil {
		return
	}
	return *v, true
}

// ClearDifficulty clears the value of the "difficulty" field.
func (m *CardProgressMutation) ClearDifficulty() {
	m.difficulty = nil
	m.adddifficulty = nil
	m.clearedFields[cardprogress.FieldDifficulty] = struct{}{}
}

// DifficultyCleared returns if the "difficulty" field was cleared in this mutation.
func (m *CardProgressMutation) DifficultyCleared() bool {
	_, ok := m.clearedFields[cardprogress.FieldDifficulty]
	return ok
}

// ResetDifficulty resets all changes to the "difficulty" field.
func (m *CardProgressMutation) ResetDifficulty() {
	m.difficulty = nil
	m.adddifficulty = nil
	delete(m.clearedFields, cardprogress.FieldDifficulty)
}

// SetRepetitions sets the "repetitions" field.
func (m *CardProgressMutation) SetRepetitions(i int) {
	m.repetitions = &i
	m.addrepetitions = nil
}

// Repetitions returns the value of the "repetitions" field in the mutation.
func (m *CardProgressMutation) Repetitions() (r int, exists bool) {
	v := m.repetitions
	if v == nil {
		return
	}
	return *v, true
}

// OldRepetitions returns the old "repetitions" field's value of the CardProgress entity.
// If the CardProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CardProgressMutation) OldRepetitions(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRepetitions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRepetitions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRepetitions: %w", err)
	}
	return oldValue.Repetitions, nil
}

// AddRepetitions adds i to the "repetitions" field.
func (m *CardProgressMutation) AddRepetitions(i int) {
	if m.addrepetitions != nil {
		*m.addrepetitions += i
	} else {
		m.addrepetitions = &i
	}
}

// AddedRepetitions returns the value that was added to the "repetitions" field in this mutation.
func (m *CardProgressMutation) AddedRepetitions() (r int, exists bool) {
	v := m.addrepetitions
	if v == nil {
		return
	}
	return *v, true
}

// ResetRepetitions resets all changes to the "repetitions" field.
func (m *CardProgressMutation) ResetRepetitions() {
	m.repetitions = nil
	m.addrepetitions = nil
}

// SetEaseFactor sets the "ease_factor" field.
func (m *CardProgressMutation) SetEaseFactor(f float64) {
	m.ease_factor = &f
	m.addease_factor = nil
}

// EaseFactor returns the value of the "ease_factor" field in the mutation.
func (m *CardProgressMutation) EaseFactor() (r float64, exists bool) {
	v := m.ease_factor
	if v == nil {
		return
	}
	return *v, true
}

// OldEaseFactor returns the old "ease_factor" field's value of the CardProgress entity.
// If the CardProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CardProgressMutation) OldEaseFactor(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEaseFactor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEaseFactor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEaseFactor: %w", err)
	}
	return oldValue.EaseFactor, nil
}

// AddEaseFactor adds f to the "ease_factor" field.
func (m *CardProgressMutation) AddEaseFactor(f float64) {
	if m.addease_factor != nil {
		*m.addease_factor += f
	} else {
		m.addease_factor = &f
	}
}

// AddedEaseFactor returns the value that was added to the "ease_factor" field in this mutation.
func (m *CardProgressMutation) AddedEaseFactor() (r float64, exists bool) {
	v := m.addease_factor
	if v == nil {
		return
	}
	return *v, true
}

// ResetEaseFactor resets all changes to the "ease_factor" field.
func (m *CardProgressMutation) ResetEaseFactor() {
	m.ease_factor = nil
	m.addease_factor = nil
}

// SetIntervalDays sets the "interval_days" field.
func (m *CardProgressMutation) SetIntervalDays(i int) {
	m.interval_days = &i
	m.addinterval_days = nil
}

// IntervalDays returns the value of the "interval_days" field in the mutation.
func (m *CardProgressMutation) IntervalDays() (r int, exists bool) {
	v := m.interval_days
	if v == nil {
		return
	}
	return *v, true
}

// OldIntervalDays returns the old "interval_days" field's value of the CardProgress entity.
// If the CardProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CardProgressMutation) OldIntervalDays(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIntervalDays is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIntervalDays requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIntervalDays: %w", err)
	}
	return oldValue.IntervalDays, nil
}

// AddIntervalDays adds i to the "interval_days" field.
func (m *CardProgressMutation) AddIntervalDays(i int) {
	if m.addinterval_days != nil {
		*m.addinterval_days += i
	} else {
		m.addinterval_days = &i
	}
}

// AddedIntervalDays returns the value that was added to the "interval_days" field in this mutation.
func (m *CardProgressMutation) AddedIntervalDays() (r int, exists bool) {
	v := m.addinterval_days
	if v == nil {
		return
	}
	return *v, true
}

// ResetIntervalDays resets all changes to the "interval_days" field.
func (m *CardProgressMutation) ResetIntervalDays() {
	m.interval_days = nil
	m.addinterval_days = nil
}

// SetNextReview sets the "next_review" field.
func (m *CardProgressMutation) SetNextReview(t time.Time) {
	m.next_review = &t
}

// NextReview returns the value of the "next_review" field in the mutation.
func (m *CardProgressMutation) NextReview() (r time.Time, exists bool) {
	v := m.next_review
	if v == nil {
		return
	}
	return *v, true
}

// OldNextReview returns the old "next_review" field's value of the CardProgress entity.
// If the CardProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CardProgressMutation) OldNextReview(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextReview is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextReview requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextReview: %w", err)
	}
	return oldValue.NextReview, nil
}

// ResetNextReview resets all changes to the "next_review" field.
func (m *CardProgressMutation) ResetNextReview() {
	m.next_review = nil
}

// SetTotalReviews sets the "total_reviews" field.
func (m *CardProgressMutation) SetTotalReviews(i int) {
	m.total_reviews = &i
	m.addtotal_reviews = nil
}

// TotalReviews returns the value of the "total_reviews" field in the mutation.
func (m *CardProgressMutation) TotalReviews() (r int, exists bool) {
	v := m.total_reviews
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalReviews returns the old "total_reviews" field's value of the CardProgress entity.
// If the CardProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CardProgressMutation) OldTotalReviews(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalReviews is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalReviews requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalReviews: %w", err)
	}
	return oldValue.TotalReviews, nil
}

// AddTotalReviews adds i to the "total_reviews" field.
func (m *CardProgressMutation) AddTotalReviews(i int) {
	if m.addtotal_reviews != nil {
		*m.addtotal_reviews += i
	} else {
		m.addtotal_reviews = &i
	}
}

// AddedTotalReviews returns the value that was added to the "total_reviews" field in this mutation.
func (m *CardProgressMutation) AddedTotalReviews() (r int, exists bool) {
	v := m.addtotal_reviews
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalReviews resets all changes to the "total_reviews" field.
func (m *CardProgressMutation) ResetTotalReviews() {
	m.total_reviews = nil
	m.addtotal_reviews = nil
}

// SetCorrectReviews sets the "correct_reviews" field.
func (m *CardProgressMutation) SetCorrectReviews(i int) {
	m.correct_reviews = &i
	m.addcorrect_reviews = nil
}

// CorrectReviews returns the value of the "correct_reviews" field in the mutation.
func (m *CardProgressMutation) CorrectReviews() (r int, exists bool) {
	v := m.correct_reviews
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrectReviews returns the old "correct_reviews" field's value of the CardProgress entity.
// If the CardProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CardProgressMutation) OldCorrectReviews(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrectReviews is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrectReviews requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrectReviews: %w", err)
	}
	return oldValue.CorrectReviews, nil
}

// AddCorrectReviews adds i to the "correct_reviews" field.
func (m *CardProgressMutation) AddCorrectReviews(i int) {
	if m.addcorrect_reviews != nil {
		*m.addcorrect_reviews += i
	} else {
		m.addcorrect_reviews = &i
	}
}

// AddedCorrectReviews returns the value that was added to the "correct_reviews" field in this mutation.
func (m *CardProgressMutation) AddedCorrectReviews() (r int, exists bool) {
	v := m.addcorrect_reviews
	if v == nil {
		return
	}
	return *v, true
}

// ResetCorrectReviews resets all changes to the "correct_reviews" field.
func (m *CardProgressMutation) ResetCorrectReviews() {
	m.correct_reviews = nil
	m.addcorrect_reviews = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CardProgressMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CardProgressMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the CardProgress entity.
// If the CardProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CardProgressMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CardProgressMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the CardProgressMutation builder.
func (m *CardProgressMutation) Where(ps ...predicate.CardProgress) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CardProgressMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CardProgressMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CardProgress, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CardProgressMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CardProgressMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CardProgress).
func (m *CardProgressMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CardProgressMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.card_id != nil {
		fields = append(fields, cardprogress.FieldCardID)
	}
	if m.state != nil {
		fields = append(fields, cardprogress.FieldState)
	}
	if m.learning_step != nil {
		fields = append(fields, cardprogress.FieldLearningStep)
	}
	if m.stability != nil {
		fields = append(fields, cardprogress.FieldStability)
	}
	if m.difficulty != nil {
		fields = append(fields, cardprogress.FieldDifficulty)
	}
	if m.repetitions != nil {
		fields = append(fields, cardprogress.FieldRepetitions)
	}
	if m.ease_factor != nil {
		fields = append(fields, cardprogress.FieldEaseFactor)
	}
	if m.interval_days != nil {
		fields = append(fields, cardprogress.FieldIntervalDays)
	}
	if m.next_review != nil {
		fields = append(fields, cardprogress.FieldNextReview)
	}
	if m.total_reviews != nil {
		fields = append(fields, cardprogress.FieldTotalReviews)
	}
	if m.correct_reviews != nil {
		fields = append(fields, cardprogress.FieldCorrectReviews)
	}
	if m.updated_at != nil {
		fields = append(fields, cardprogress.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CardProgressMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case cardprogress.FieldCardID:
		return m.CardID()
	case cardprogress.FieldState:
		return m.State()
	case cardprogress.FieldLearningStep:
		return m.LearningStep()
	case cardprogress.FieldStability:
		return m.Stability()
	case cardprogress.FieldDifficulty:
		return m.Difficulty()
	case cardprogress.FieldRepetitions:
		return m.Repetitions()
	case cardprogress.FieldEaseFactor:
		return m.EaseFactor()
	case cardprogress.FieldIntervalDays:
		return m.IntervalDays()
	case cardprogress.FieldNextReview:
		return m.NextReview()
	case cardprogress.FieldTotalReviews:
		return m.TotalReviews()
	case cardprogress.FieldCorrectReviews:
		return m.CorrectReviews()
	case cardprogress.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CardProgressMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case cardprogress.FieldCardID:
		return m.OldCardID(ctx)
	case cardprogress.FieldState:
		return m.OldState(ctx)
	case cardprogress.FieldLearningStep:
		return m.OldLearningStep(ctx)
	case cardprogress.FieldStability:
		return m.OldStability(ctx)
	case cardprogress.FieldDifficulty:
		return m.OldDifficulty(ctx)
	case cardprogress.FieldRepetitions:
		return m.OldRepetitions(ctx)
	case cardprogress.FieldEaseFactor:
		return m.OldEaseFactor(ctx)
	case cardprogress.FieldIntervalDays:
		return m.OldIntervalDays(ctx)
	case cardprogress.FieldNextReview:
		return m.OldNextReview(ctx)
	case cardprogress.FieldTotalReviews:
		return m.OldTotalReviews(ctx)
	case cardprogress.FieldCorrectReviews:
		return m.OldCorrectReviews(ctx)
	case cardprogress.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CardProgress field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CardProgressMutation) SetField(name string, value ent.Value) error {
	switch name {
	case cardprogress.FieldCardID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCardID(v)
		return nil
	case cardprogress.FieldState:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case cardprogress.FieldLearningStep:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLearningStep(v)
		return nil
	case cardprogress.FieldStability:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStability(v)
		return nil
	case cardprogress.FieldDifficulty:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifficulty(v)
		return nil
	case cardprogress.FieldRepetitions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRepetitions(v)
		return nil
	case cardprogress.FieldEaseFactor:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEaseFactor(v)
		return nil
	case cardprogress.FieldIntervalDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIntervalDays(v)
		return nil
	case cardprogress.FieldNextReview:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextReview(v)
		return nil
	case cardprogress.FieldTotalReviews:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalReviews(v)
		return nil
	case cardprogress.FieldCorrectReviews:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrectReviews(v)
		return nil
	case cardprogress.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CardProgress field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CardProgressMutation) AddedFields() []string {
	var fields []string
	if m.addlearning_step != nil {
		fields = append(fields, cardprogress.FieldLearningStep)
	}
	if m.addstability != nil {
		fields = append(fields, cardprogress.FieldStability)
	}
	if m.adddifficulty != nil {
		fields = append(fields, cardprogress.FieldDifficulty)
	}
	if m.addrepetitions != nil {
		fields = append(fields, cardprogress.FieldRepetitions)
	}
	if m.addease_factor != nil {
		fields = append(fields, cardprogress.FieldEaseFactor)
	}
	if m.addinterval_days != nil {
		fields = append(fields, cardprogress.FieldIntervalDays)
	}
	if m.addtotal_reviews != nil {
		fields = append(fields, cardprogress.FieldTotalReviews)
	}
	if m.addcorrect_reviews != nil {
		fields = append(fields, cardprogress.FieldCorrectReviews)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CardProgressMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case cardprogress.FieldLearningStep:
		return m.AddedLearningStep()
	case cardprogress.FieldStability:
		return m.AddedStability()
	case cardprogress.FieldDifficulty:
		return m.AddedDifficulty()
	case cardprogress.FieldRepetitions:
		return m.AddedRepetitions()
	case cardprogress.FieldEaseFactor:
		return m.AddedEaseFactor()
	case cardprogress.FieldIntervalDays:
		return m.AddedIntervalDays()
	case cardprogress.FieldTotalReviews:
		return m.AddedTotalReviews()
	case cardprogress.FieldCorrectReviews:
		return m.AddedCorrectReviews()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CardProgressMutation) AddField(name string, value ent.Value) error {
	switch name {
	case cardprogress.FieldLearningStep:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLearningStep(v)
		return nil
	case cardprogress.FieldStability:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStability(v)
		return nil
	case cardprogress.FieldDifficulty:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDifficulty(v)
		return nil
	case cardprogress.FieldRepetitions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRepetitions(v)
		return nil
	case cardprogress.FieldEaseFactor:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEaseFactor(v)
		return nil
	case cardprogress.FieldIntervalDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIntervalDays(v)
		return nil
	case cardprogress.FieldTotalReviews:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalReviews(v)
		return nil
	case cardprogress.FieldCorrectReviews:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCorrectReviews(v)
		return nil
	}
	return fmt.Errorf("unknown CardProgress numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CardProgressMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(cardprogress.FieldStability) {
		fields = append(fields, cardprogress.FieldStability)
	}
	if m.FieldCleared(cardprogress.FieldDifficulty) {
		fields = append(fields, cardprogress.FieldDifficulty)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CardProgressMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CardProgressMutation) ClearField(name string) error {
	switch name {
	case cardprogress.FieldStability:
		m.ClearStability()
		return nil
	case cardprogress.FieldDifficulty:
		m.ClearDifficulty()
		return nil
	}
	return fmt.Errorf("unknown CardProgress nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CardProgressMutation) ResetField(name string) error {
	switch name {
	case cardprogress.FieldCardID:
		m.ResetCardID()
		return nil
	case cardprogress.FieldState:
		m.ResetState()
		return nil
	case cardprogress.FieldLearningStep:
		m.ResetLearningStep()
		return nil
	case cardprogress.FieldStability:
		m.ResetStability()
		return nil
	case cardprogress.FieldDifficulty:
		m.ResetDifficulty()
		return nil
	case cardprogress.FieldRepetitions:
		m.ResetRepetitions()
		return nil
	case cardprogress.FieldEaseFactor:
		m.ResetEaseFactor()
		return nil
	case cardprogress.FieldIntervalDays:
		m.ResetIntervalDays()
		return nil
	case cardprogress.FieldNextReview:
		m.ResetNextReview()
		return nil
	case cardprogress.FieldTotalReviews:
		m.ResetTotalReviews()
		return nil
	case cardprogress.FieldCorrectReviews:
		m.ResetCorrectReviews()
		return nil
	case cardprogress.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown CardProgress field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CardProgressMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CardProgressMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CardProgressMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CardProgressMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CardProgressMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CardProgressMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CardProgressMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown CardProgress unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CardProgressMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown CardProgress edge %s", name)
}

// OfflineSessionMutation represents an operation that mutates the OfflineSession nodes in the graph.
type OfflineSessionMutation struct {
	config
	op                   Op
	typ                  string
	id                   *int
	session_id           *string
	created_at           *time.Time
	expires_at           *time.Time
	desired_retention    *float64
	adddesired_retention *float64
	focus_mode           *bool
	cards                *map[string]interface{}
	consumed             *bool
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*OfflineSession, error)
	predicates           []predicate.OfflineSession
}

var _ ent.Mutation = (*OfflineSessionMutation)(nil)

// offlinesessionOption allows management of the mutation configuration using functional options.
type offlinesessionOption func(*OfflineSessionMutation)

// newOfflineSessionMutation creates new mutation for the OfflineSession entity.
func newOfflineSessionMutation(c config, op Op, opts ...offlinesessionOption) *OfflineSessionMutation {
	m := &OfflineSessionMutation{
		config:        c,
		op:            op,
		typ:           TypeOfflineSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withOfflineSessionID sets the ID field of the mutation.
func withOfflineSessionID(id int) offlinesessionOption {
	return func(m *OfflineSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *OfflineSession
		)
		m.oldValue = func(ctx context.Context) (*OfflineSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().OfflineSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withOfflineSession sets the old OfflineSession of the mutation.
func withOfflineSession(node *OfflineSession) offlinesessionOption {
	return func(m *OfflineSessionMutation) {
		m.oldValue = func(context.Context) (*OfflineSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m OfflineSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m OfflineSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *OfflineSessionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *OfflineSessionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().OfflineSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *OfflineSessionMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *OfflineSessionMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the OfflineSession entity.
// If the OfflineSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OfflineSessionMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *OfflineSessionMutation) ResetSessionID() {
	m.session_id = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *OfflineSessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *OfflineSessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the OfflineSession entity.
// If the OfflineSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OfflineSessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *OfflineSessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetExpiresAt sets the "expires_at" field.
func (m *OfflineSessionMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *OfflineSessionMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the OfflineSession entity.
// If the OfflineSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OfflineSessionMutation) OldExpiresAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *OfflineSessionMutation) ResetExpiresAt() {
	m.expires_at = nil
}

// SetDesiredRetention sets the "desired_retention" field.
func (m *OfflineSessionMutation) SetDesiredRetention(f float64) {
	m.desired_retention = &f
	m.adddesired_retention = nil
}

// DesiredRetention returns the value of the "desired_retention" field in the mutation.
func (m *OfflineSessionMutation) DesiredRetention() (r float64, exists bool) {
	v := m.desired_retention
	if v == nil {
		return
	}
	return *v, true
}

// OldDesiredRetention returns the old "desired_retention" field's value of the OfflineSession entity.
// If the OfflineSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OfflineSessionMutation) OldDesiredRetention(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDesiredRetention is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDesiredRetention requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDesiredRetention: %w", err)
	}
	return oldValue.DesiredRetention, nil
}

// AddDesiredRetention adds f to the "desired_retention" field.
func (m *OfflineSessionMutation) AddDesiredRetention(f float64) {
	if m.adddesired_retention != nil {
		*m.adddesired_retention += f
	} else {
		m.adddesired_retention = &f
	}
}

// AddedDesiredRetention returns the value that was added to the "desired_retention" field in this mutation.
func (m *OfflineSessionMutation) AddedDesiredRetention() (r float64, exists bool) {
	v := m.adddesired_retention
	if v == nil {
		return
	}
	return *v, true
}

// ResetDesiredRetention resets all changes to the "desired_retention" field.
func (m *OfflineSessionMutation) ResetDesiredRetention() {
	m.desired_retention = nil
	m.adddesired_retention = nil
}

// SetFocusMode sets the "focus_mode" field.
func (m *OfflineSessionMutation) SetFocusMode(b bool) {
	m.focus_mode = &b
}

// FocusMode returns the value of the "focus_mode" field in the mutation.
func (m *OfflineSessionMutation) FocusMode() (r bool, exists bool) {
	v := m.focus_mode
	if v == nil {
		return
	}
	return *v, true
}

// OldFocusMode returns the old "focus_mode" field's value of the OfflineSession entity.
// If the OfflineSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OfflineSessionMutation) OldFocusMode(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFocusMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFocusMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFocusMode: %w", err)
	}
	return oldValue.FocusMode, nil
}

// ResetFocusMode resets all changes to the "focus_mode" field.
func (m *OfflineSessionMutation) ResetFocusMode() {
	m.focus_mode = nil
}

// SetCards sets the "cards" field.
func (m *OfflineSessionMutation) SetCards(value map[string]interface{}) {
	m.cards = &value
}

// Cards returns the value of the "cards" field in the mutation.
func (m *OfflineSessionMutation) Cards() (r map[string]interface{}, exists bool) {
	v := m.cards
	if v == nil {
		return
	}
	return *v, true
}

// OldCards returns the old "cards" field's value of the OfflineSession entity.
// If the OfflineSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OfflineSessionMutation) OldCards(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCards is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCards requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCards: %w", err)
	}
	return oldValue.Cards, nil
}

// ResetCards resets all changes to the "cards" field.
func (m *OfflineSessionMutation) ResetCards() {
	m.cards = nil
}

// SetConsumed sets the "consumed" field.
func (m *OfflineSessionMutation) SetConsumed(b bool) {
	m.consumed = &b
}

// Consumed returns the value of the "consumed" field in the mutation.
func (m *OfflineSessionMutation) Consumed() (r bool, exists bool) {
	v := m.consumed
	if v == nil {
		return
	}
	return *v, true
}

// OldConsumed returns the old "consumed" field's value of the OfflineSession entity.
// If the OfflineSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OfflineSessionMutation) OldConsumed(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConsumed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConsumed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConsumed: %w", err)
	}
	return oldValue.Consumed, nil
}

// ResetConsumed resets all changes to the "consumed" field.
func (m *OfflineSessionMutation) ResetConsumed() {
	m.consumed = nil
}

// Where appends a list predicates to the OfflineSessionMutation builder.
func (m *OfflineSessionMutation) Where(ps ...predicate.OfflineSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the OfflineSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *OfflineSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.OfflineSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *OfflineSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *OfflineSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (OfflineSession).
func (m *OfflineSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *OfflineSessionMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.session_id != nil {
		fields = append(fields, offlinesession.FieldSessionID)
	}
	if m.created_at != nil {
		fields = append(fields, offlinesession.FieldCreatedAt)
	}
	if m.expires_at != nil {
		fields = append(fields, offlinesession.FieldExpiresAt)
	}
	if m.desired_retention != nil {
		fields = append(fields, offlinesession.FieldDesiredRetention)
	}
	if m.focus_mode != nil {
		fields = append(fields, offlinesession.FieldFocusMode)
	}
	if m.cards != nil {
		fields = append(fields, offlinesession.FieldCards)
	}
	if m.consumed != nil {
		fields = append(fields, offlinesession.FieldConsumed)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *OfflineSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case offlinesession.FieldSessionID:
		return m.SessionID()
	case offlinesession.FieldCreatedAt:
		return m.CreatedAt()
	case offlinesession.FieldExpiresAt:
		return m.ExpiresAt()
	case offlinesession.FieldDesiredRetention:
		return m.DesiredRetention()
	case offlinesession.FieldFocusMode:
		return m.FocusMode()
	case offlinesession.FieldCards:
		return m.Cards()
	case offlinesession.FieldConsumed:
		return m.Consumed()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *OfflineSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case offlinesession.FieldSessionID:
		return m.OldSessionID(ctx)
	case offlinesession.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case offlinesession.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	case offlinesession.FieldDesiredRetention:
		return m.OldDesiredRetention(ctx)
	case offlinesession.FieldFocusMode:
		return m.OldFocusMode(ctx)
	case offlinesession.FieldCards:
		return m.OldCards(ctx)
	case offlinesession.FieldConsumed:
		return m.OldConsumed(ctx)
	}
	return nil, fmt.Errorf("unknown OfflineSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OfflineSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case offlinesession.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case offlinesession.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case offlinesession.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	case offlinesession.FieldDesiredRetention:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDesiredRetention(v)
		return nil
	case offlinesession.FieldFocusMode:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFocusMode(v)
		return nil
	case offlinesession.FieldCards:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCards(v)
		return nil
	case offlinesession.FieldConsumed:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConsumed(v)
		return nil
	}
	return fmt.Errorf("unknown OfflineSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *OfflineSessionMutation) AddedFields() []string {
	var fields []string
	if m.adddesired_retention != nil {
		fields = append(fields, offlinesession.FieldDesiredRetention)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *OfflineSessionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case offlinesession.FieldDesiredRetention:
		return m.AddedDesiredRetention()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OfflineSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case offlinesession.FieldDesiredRetention:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDesiredRetention(v)
		return nil
	}
	return fmt.Errorf("unknown OfflineSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *OfflineSessionMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *OfflineSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *OfflineSessionMutation) ClearField(name string) error {
	return fmt.Errorf("unknown OfflineSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *OfflineSessionMutation) ResetField(name string) error {
	switch name {
	case offlinesession.FieldSessionID:
		m.ResetSessionID()
		return nil
	case offlinesession.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case offlinesession.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	case offlinesession.FieldDesiredRetention:
		m.ResetDesiredRetention()
		return nil
	case offlinesession.FieldFocusMode:
		m.ResetFocusMode()
		return nil
	case offlinesession.FieldCards:
		m.ResetCards()
		return nil
	case offlinesession.FieldConsumed:
		m.ResetConsumed()
		return nil
	}
	return fmt.Errorf("unknown OfflineSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *OfflineSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *OfflineSessionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *OfflineSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *OfflineSessionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *OfflineSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *OfflineSessionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *OfflineSessionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown OfflineSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *OfflineSessionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown OfflineSession edge %s", name)
}

// ReviewLogMutation represents an operation that mutates the ReviewLog nodes in the graph.
type ReviewLogMutation struct {
	config
	op            Op
	typ           string
	id            *int
	card_id       *string
	quality       *int
	addquality    *int
	correct       *bool
	hints_used    *int
	addhints_used *int
	study_mode    *string
	timestamp     *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*ReviewLog, error)
	predicates    []predicate.ReviewLog
}

var _ ent.Mutation = (*ReviewLogMutation)(nil)

// reviewlogOption allows management of the mutation configuration using functional options.
type reviewlogOption func(*ReviewLogMutation)

// newReviewLogMutation creates new mutation for the ReviewLog entity.
func newReviewLogMutation(c config, op Op, opts ...reviewlogOption) *ReviewLogMutation {
	m := &ReviewLogMutation{
		config:        c,
		op:            op,
		typ:           TypeReviewLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withReviewLogID sets the ID field of the mutation.
func withReviewLogID(id int) reviewlogOption {
	return func(m *ReviewLogMutation) {
		var (
			err   error
			once  sync.Once
			value *ReviewLog
		)
		m.oldValue = func(ctx context.Context) (*ReviewLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ReviewLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withReviewLog sets the old ReviewLog of the mutation.
func withReviewLog(node *ReviewLog) reviewlogOption {
	return func(m *ReviewLogMutation) {
		m.oldValue = func(context.Context) (*ReviewLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ReviewLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ReviewLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ReviewLogMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ReviewLogMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ReviewLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCardID sets the "card_id" field.
func (m *ReviewLogMutation) SetCardID(s string) {
	m.card_id = &s
}

// CardID returns the value of the "card_id" field in the mutation.
func (m *ReviewLogMutation) CardID() (r string, exists bool) {
	v := m.card_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCardID returns the old "card_id" field's value of the ReviewLog entity.
// If the ReviewLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewLogMutation) OldCardID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCardID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCardID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCardID: %w", err)
	}
	return oldValue.CardID, nil
}

// ResetCardID resets all changes to the "card_id" field.
func (m *ReviewLogMutation) ResetCardID() {
	m.card_id = nil
}

// SetQuality sets the "quality" field.
func (m *ReviewLogMutation) SetQuality(i int) {
	m.quality = &i
	m.addquality = nil
}

// Quality returns the value of the "quality" field in the mutation.
func (m *ReviewLogMutation) Quality() (r int, exists bool) {
	v := m.quality
	if v == nil {
		return
	}
	return *v, true
}

// OldQuality returns the old "quality" field's value of the ReviewLog entity.
// If the ReviewLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewLogMutation) OldQuality(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuality is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuality requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuality: %w", err)
	}
	return oldValue.Quality, nil
}

// AddQuality adds i to the "quality" field.
func (m *ReviewLogMutation) AddQuality(i int) {
	if m.addquality != nil {
		*m.addquality += i
	} else {
		m.addquality = &i
	}
}

// AddedQuality returns the value that was added to the "quality" field in this mutation.
func (m *ReviewLogMutation) AddedQuality() (r int, exists bool) {
	v := m.addquality
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuality resets all changes to the "quality" field.
func (m *ReviewLogMutation) ResetQuality() {
	m.quality = nil
	m.addquality = nil
}

// SetCorrect sets the "correct" field.
func (m *ReviewLogMutation) SetCorrect(b bool) {
	m.correct = &b
}

// Correct returns the value of the "correct" field in the mutation.
func (m *ReviewLogMutation) Correct() (r bool, exists bool) {
	v := m.correct
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrect returns the old "correct" field's value of the ReviewLog entity.
// If the ReviewLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewLogMutation) OldCorrect(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrect: %w", err)
	}
	return oldValue.Correct, nil
}

// ResetCorrect resets all changes to the "correct" field.
func (m *ReviewLogMutation) ResetCorrect() {
	m.correct = nil
}

// SetHintsUsed sets the "hints_used" field.
func (m *ReviewLogMutation) SetHintsUsed(i int) {
	m.hints_used = &i
	m.addhints_used = nil
}

// HintsUsed returns the value of the "hints_used" field in the mutation.
func (m *ReviewLogMutation) HintsUsed() (r int, exists bool) {
	v := m.hints_used
	if v == nil {
		return
	}
	return *v, true
}

// OldHintsUsed returns the old "hints_used" field's value of the ReviewLog entity.
// If the ReviewLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewLogMutation) OldHintsUsed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHintsUsed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHintsUsed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHintsUsed: %w", err)
	}
	return oldValue.HintsUsed, nil
}

// AddHintsUsed adds i to the "hints_used" field.
func (m *ReviewLogMutation) AddHintsUsed(i int) {
	if m.addhints_used != nil {
		*m.addhints_used += i
	} else {
		m.addhints_used = &i
	}
}

// AddedHintsUsed returns the value that was added to the "hints_used" field in this mutation.
func (m *ReviewLogMutation) AddedHintsUsed() (r int, exists bool) {
	v := m.addhints_used
	if v == nil {
		return
	}
	return *v, true
}

// ResetHintsUsed resets all changes to the "hints_used" field.
func (m *ReviewLogMutation) ResetHintsUsed() {
	m.hints_used = nil
	m.addhints_used = nil
}

// SetStudyMode sets the "study_mode" field.
func (m *ReviewLogMutation) SetStudyMode(s string) {
	m.study_mode = &s
}

// StudyMode returns the value of the "study_mode" field in the mutation.
func (m *ReviewLogMutation) StudyMode() (r string, exists bool) {
	v := m.study_mode
	if v == nil {
		return
	}
	return *v, true
}

// OldStudyMode returns the old "study_mode" field's value of the ReviewLog entity.
// If the ReviewLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewLogMutation) OldStudyMode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStudyMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStudyMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStudyMode: %w", err)
	}
	return oldValue.StudyMode, nil
}

// ResetStudyMode resets all changes to the "study_mode" field.
func (m *ReviewLogMutation) ResetStudyMode() {
	m.study_mode = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *ReviewLogMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *ReviewLogMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the ReviewLog entity.
// If the ReviewLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewLogMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *ReviewLogMutation) ResetTimestamp() {
	m.timestamp = nil
}

// Where appends a list predicates to the ReviewLogMutation builder.
func (m *ReviewLogMutation) Where(ps ...predicate.ReviewLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ReviewLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ReviewLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ReviewLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ReviewLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ReviewLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ReviewLog).
func (m *ReviewLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ReviewLogMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.card_id != nil {
		fields = append(fields, reviewlog.FieldCardID)
	}
	if m.quality != nil {
		fields = append(fields, reviewlog.FieldQuality)
	}
	if m.correct != nil {
		fields = append(fields, reviewlog.FieldCorrect)
	}
	if m.hints_used != nil {
		fields = append(fields, reviewlog.FieldHintsUsed)
	}
	if m.study_mode != nil {
		fields = append(fields, reviewlog.FieldStudyMode)
	}
	if m.timestamp != nil {
		fields = append(fields, reviewlog.FieldTimestamp)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ReviewLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case reviewlog.FieldCardID:
		return m.CardID()
	case reviewlog.FieldQuality:
		return m.Quality()
	case reviewlog.FieldCorrect:
		return m.Correct()
	case reviewlog.FieldHintsUsed:
		return m.HintsUsed()
	case reviewlog.FieldStudyMode:
		return m.StudyMode()
	case reviewlog.FieldTimestamp:
		return m.Timestamp()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ReviewLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case reviewlog.FieldCardID:
		return m.OldCardID(ctx)
	case reviewlog.FieldQuality:
		return m.OldQuality(ctx)
	case reviewlog.FieldCorrect:
		return m.OldCorrect(ctx)
	case reviewlog.FieldHintsUsed:
		return m.OldHintsUsed(ctx)
	case reviewlog.FieldStudyMode:
		return m.OldStudyMode(ctx)
	case reviewlog.FieldTimestamp:
		return m.OldTimestamp(ctx)
	}
	return nil, fmt.Errorf("unknown ReviewLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReviewLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case reviewlog.FieldCardID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCardID(v)
		return nil
	case reviewlog.FieldQuality:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuality(v)
		return nil
	case reviewlog.FieldCorrect:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrect(v)
		return nil
	case reviewlog.FieldHintsUsed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHintsUsed(v)
		return nil
	case reviewlog.FieldStudyMode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStudyMode(v)
		return nil
	case reviewlog.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	}
	return fmt.Errorf("unknown ReviewLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ReviewLogMutation) AddedFields() []string {
	var fields []string
	if m.addquality != nil {
		fields = append(fields, reviewlog.FieldQuality)
	}
	if m.addhints_used != nil {
		fields = append(fields, reviewlog.FieldHintsUsed)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ReviewLogMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case reviewlog.FieldQuality:
		return m.AddedQuality()
	case reviewlog.FieldHintsUsed:
		return m.AddedHintsUsed()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReviewLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	case reviewlog.FieldQuality:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuality(v)
		return nil
	case reviewlog.FieldHintsUsed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddHintsUsed(v)
		return nil
	}
	return fmt.Errorf("unknown ReviewLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ReviewLogMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ReviewLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ReviewLogMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ReviewLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ReviewLogMutation) ResetField(name string) error {
	switch name {
	case reviewlog.FieldCardID:
		m.ResetCardID()
		return nil
	case reviewlog.FieldQuality:
		m.ResetQuality()
		return nil
	case reviewlog.FieldCorrect:
		m.ResetCorrect()
		return nil
	case reviewlog.FieldHintsUsed:
		m.ResetHintsUsed()
		return nil
	case reviewlog.FieldStudyMode:
		m.ResetStudyMode()
		return nil
	case reviewlog.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	}
	return fmt.Errorf("unknown ReviewLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ReviewLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ReviewLogMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ReviewLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ReviewLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ReviewLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ReviewLogMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ReviewLogMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ReviewLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ReviewLogMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ReviewLog edge %s", name)
}
