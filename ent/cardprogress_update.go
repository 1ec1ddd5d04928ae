// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/minhokang/baeum/ent/cardprogress"
	"github.com/minhokang/baeum/ent/predicate"
)

// CardProgressUpdate is the builder for updating CardProgress entities.
type CardProgressUpdate struct {
	config
	hooks    []Hook
	mutation *CardProgressMutation
}

// Where appends a list predicates to the CardProgressUpdate builder.
func (_u *CardProgressUpdate) Where(ps ...predicate.CardProgress) *CardProgressUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCardID sets the "card_id" field.
func (_u *CardProgressUpdate) SetCardID(v string) *CardProgressUpdate {
	_u.mutation.SetCardID(v)
	return _u
}

// SetNillableCardID sets the "card_id" field if the given value is not nil.
func (_u *CardProgressUpdate) SetNillableCardID(v *string) *CardProgressUpdate {
	if v != nil {
		_u.SetCardID(*v)
	}
	return _u
}

// SetState sets the "state" field.
func (_u *CardProgressUpdate) SetState(v string) *CardProgressUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *CardProgressUpdate) SetNillableState(v *string) *CardProgressUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetLearningStep sets the "learning_step" field.
func (_u *CardProgressUpdate) SetLearningStep(v int) *CardProgressUpdate {
	_u.mutation.ResetLearningStep()
	_u.mutation.SetLearningStep(v)
	return _u
}

// SetNillableLearningStep sets the "learning_step" field if the given value is not nil.
func (_u *CardProgressUpdate) SetNillableLearningStep(v *int) *CardProgressUpdate {
	if v != nil {
		_u.SetLearningStep(*v)
	}
	return _u
}

// AddLearningStep adds value to the "learning_step" field.
func (_u *CardProgressUpdate) AddLearningStep(v int) *CardProgressUpdate {
	_u.mutation.AddLearningStep(v)
	return _u
}

// SetStability sets the "stability" field.
func (_u *CardProgressUpdate) SetStability(v float64) *CardProgressUpdate {
	_u.mutation.ResetStability()
	_u.mutation.SetStability(v)
	return _u
}

// SetNillableStability sets the "stability" field if the given value is not nil.
func (_u *CardProgressUpdate) SetNillableStability(v *float64) *CardProgressUpdate {
	if v != nil {
		_u.SetStability(*v)
	}
	return _u
}

// AddStability adds value to the "stability" field.
func (_u *CardProgressUpdate) AddStability(v float64) *CardProgressUpdate {
	_u.mutation.AddStability(v)
	return _u
}

// ClearStability clears the value of the "stability" field.
func (_u *CardProgressUpdate) ClearStability() *CardProgressUpdate {
	_u.mutation.ClearStability()
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *CardProgressUpdate) SetDifficulty(v float64) *CardProgressUpdate {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *CardProgressUpdate) SetNillableDifficulty(v *float64) *CardProgressUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *CardProgressUpdate) AddDifficulty(v float64) *CardProgressUpdate {
	_u.mutation.AddDifficulty(v)
	return _u
}

// ClearDifficulty clears the value of the "difficulty" field.
func (_u *CardProgressUpdate) ClearDifficulty() *CardProgressUpdate {
	_u.mutation.ClearDifficulty()
	return _u
}

// SetRepetitions sets the "repetitions" field.
func (_u *CardProgressUpdate) SetRepetitions(v int) *CardProgressUpdate {
	_u.mutation.ResetRepetitions()
	_u.mutation.SetRepetitions(v)
	return _u
}

// SetNillableRepetitions sets the "repetitions" field if the given value is not nil.
func (_u *CardProgressUpdate) SetNillableRepetitions(v *int) *CardProgressUpdate {
	if v != nil {
		_u.SetRepetitions(*v)
	}
	return _u
}

// AddRepetitions adds value to the "repetitions" field.
func (_u *CardProgressUpdate) AddRepetitions(v int) *CardProgressUpdate {
	_u.mutation.AddRepetitions(v)
	return _u
}

// SetEaseFactor sets the "ease_factor" field.
func (_u *CardProgressUpdate) SetEaseFactor(v float64) *CardProgressUpdate {
	_u.mutation.ResetEaseFactor()
	_u.mutation.SetEaseFactor(v)
	return _u
}

// SetNillableEaseFactor sets the "ease_factor" field if the given value is not nil.
func (_u *CardProgressUpdate) SetNillableEaseFactor(v *float64) *CardProgressUpdate {
	if v != nil {
		_u.SetEaseFactor(*v)
	}
	return _u
}

// AddEaseFactor adds value to the "ease_factor" field.
func (_u *CardProgressUpdate) AddEaseFactor(v float64) *CardProgressUpdate {
	_u.mutation.AddEaseFactor(v)
	return _u
}

// SetIntervalDays sets the "interval_days" field.
func (_u *CardProgressUpdate) SetIntervalDays(v int) *CardProgressUpdate {
	_u.mutation.ResetIntervalDays()
	_u.mutation.SetIntervalDays(v)
	return _u
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_u *CardProgressUpdate) SetNillableIntervalDays(v *int) *CardProgressUpdate {
	if v != nil {
		_u.SetIntervalDays(*v)
	}
	return _u
}

// AddIntervalDays adds value to the "interval_days" field.
func (_u *CardProgressUpdate) AddIntervalDays(v int) *CardProgressUpdate {
	_u.mutation.AddIntervalDays(v)
	return _u
}

// SetNextReview sets the "next_review" field.
func (_u *CardProgressUpdate) SetNextReview(v time.Time) *CardProgressUpdate {
	_u.mutation.SetNextReview(v)
	return _u
}

// SetNillableNextReview sets the "next_review" field if the given value is not nil.
func (_u *CardProgressUpdate) SetNillableNextReview(v *time.Time) *CardProgressUpdate {
	if v != nil {
		_u.SetNextReview(*v)
	}
	return _u
}

// SetTotalReviews sets the "total_reviews" field.
func (_u *CardProgressUpdate) SetTotalReviews(v int) *CardProgressUpdate {
	_u.mutation.ResetTotalReviews()
	_u.mutation.SetTotalReviews(v)
	return _u
}

// SetNillableTotalReviews sets the "total_reviews" field if the given value is not nil.
func (_u *CardProgressUpdate) SetNillableTotalReviews(v *int) *CardProgressUpdate {
	if v != nil {
		_u.SetTotalReviews(*v)
	}
	return _u
}

// AddTotalReviews adds value to the "total_reviews" field.
func (_u *CardProgressUpdate) AddTotalReviews(v int) *CardProgressUpdate {
	_u.mutation.AddTotalReviews(v)
	return _u
}

// SetCorrectReviews sets the "correct_reviews" field.
func (_u *CardProgressUpdate) SetCorrectReviews(v int) *CardProgressUpdate {
	_u.mutation.ResetCorrectReviews()
	_u.mutation.SetCorrectReviews(v)
	return _u
}

// SetNillableCorrectReviews sets the "correct_reviews" field if the given value is not nil.
func (_u *CardProgressUpdate) SetNillableCorrectReviews(v *int) *CardProgressUpdate {
	if v != nil {
		_u.SetCorrectReviews(*v)
	}
	return _u
}

// AddCorrectReviews adds value to the "correct_reviews" field.
func (_u *CardProgressUpdate) AddCorrectReviews(v int) *CardProgressUpdate {
	_u.mutation.AddCorrectReviews(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CardProgressUpdate) SetUpdatedAt(v time.Time) *CardProgressUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the CardProgressMutation object of the builder.
func (_u *CardProgressUpdate) Mutation() *CardProgressMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CardProgressUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CardProgressUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CardProgressUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CardProgressUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CardProgressUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := cardprogress.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CardProgressUpdate) check() error {
	if v, ok := _u.mutation.CardID(); ok {
		if err := cardprogress.CardIDValidator(v); err != nil {
			return &ValidationError{Name: "card_id", err: fmt.Errorf(`ent: validator failed for field "CardProgress.card_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.State(); ok {
		if err := cardprogress.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "CardProgress.state": %w`, err)}
		}
	}
	return nil
}

func (_u *CardProgressUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(cardprogress.Table, cardprogress.Columns, sqlgraph.NewFieldSpec(cardprogress.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CardID(); ok {
		_spec.SetField(cardprogress.FieldCardID, field.TypeString, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(cardprogress.FieldState, field.TypeString, value)
	}
	if value, ok := _u.mutation.LearningStep(); ok {
		_spec.SetField(cardprogress.FieldLearningStep, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLearningStep(); ok {
		_spec.AddField(cardprogress.FieldLearningStep, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Stability(); ok {
		_spec.SetField(cardprogress.FieldStability, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedStability(); ok {
		_spec.AddField(cardprogress.FieldStability, field.TypeFloat64, value)
	}
	if _u.mutation.StabilityCleared() {
		_spec.ClearField(cardprogress.FieldStability, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(cardprogress.FieldDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(cardprogress.FieldDifficulty, field.TypeFloat64, value)
	}
	if _u.mutation.DifficultyCleared() {
		_spec.ClearField(cardprogress.FieldDifficulty, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Repetitions(); ok {
		_spec.SetField(cardprogress.FieldRepetitions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRepetitions(); ok {
		_spec.AddField(cardprogress.FieldRepetitions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EaseFactor(); ok {
		_spec.SetField(cardprogress.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEaseFactor(); ok {
		_spec.AddField(cardprogress.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.IntervalDays(); ok {
		_spec.SetField(cardprogress.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntervalDays(); ok {
		_spec.AddField(cardprogress.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NextReview(); ok {
		_spec.SetField(cardprogress.FieldNextReview, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TotalReviews(); ok {
		_spec.SetField(cardprogress.FieldTotalReviews, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalReviews(); ok {
		_spec.AddField(cardprogress.FieldTotalReviews, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectReviews(); ok {
		_spec.SetField(cardprogress.FieldCorrectReviews, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectReviews(); ok {
		_spec.AddField(cardprogress.FieldCorrectReviews, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(cardprogress.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{cardprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CardProgressUpdateOne is the builder for updating a single CardProgress entity.
type CardProgressUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CardProgressMutation
}

// SetCardID sets the "card_id" field.
func (_u *CardProgressUpdateOne) SetCardID(v string) *CardProgressUpdateOne {
	_u.mutation.SetCardID(v)
	return _u
}

// SetNillableCardID sets the "card_id" field if the given value is not nil.
func (_u *CardProgressUpdateOne) SetNillableCardID(v *string) *CardProgressUpdateOne {
	if v != nil {
		_u.SetCardID(*v)
	}
	return _u
}

// SetState sets the "state" field.
func (_u *CardProgressUpdateOne) SetState(v string) *CardProgressUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *CardProgressUpdateOne) SetNillableState(v *string) *CardProgressUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetLearningStep sets the "learning_step" field.
func (_u *CardProgressUpdateOne) SetLearningStep(v int) *CardProgressUpdateOne {
	_u.mutation.ResetLearningStep()
	_u.mutation.SetLearningStep(v)
	return _u
}

// SetNillableLearningStep sets the "learning_step" field if the given value is not nil.
func (_u *CardProgressUpdateOne) SetNillableLearningStep(v *int) *CardProgressUpdateOne {
	if v != nil {
		_u.SetLearningStep(*v)
	}
	return _u
}

// AddLearningStep adds value to the "learning_step" field.
func (_u *CardProgressUpdateOne) AddLearningStep(v int) *CardProgressUpdateOne {
	_u.mutation.AddLearningStep(v)
	return _u
}

// SetStability sets the "stability" field.
func (_u *CardProgressUpdateOne) SetStability(v float64) *CardProgressUpdateOne {
	_u.mutation.ResetStability()
	_u.mutation.SetStability(v)
	return _u
}

// SetNillableStability sets the "stability" field if the given value is not nil.
func (_u *CardProgressUpdateOne) SetNillableStability(v *float64) *CardProgressUpdateOne {
	if v != nil {
		_u.SetStability(*v)
	}
	return _u
}

// AddStability adds value to the "stability" field.
func (_u *CardProgressUpdateOne) AddStability(v float64) *CardProgressUpdateOne {
	_u.mutation.AddStability(v)
	return _u
}

// ClearStability clears the value of the "stability" field.
func (_u *CardProgressUpdateOne) ClearStability() *CardProgressUpdateOne {
	_u.mutation.ClearStability()
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *CardProgressUpdateOne) SetDifficulty(v float64) *CardProgressUpdateOne {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *CardProgressUpdateOne) SetNillableDifficulty(v *float64) *CardProgressUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *CardProgressUpdateOne) AddDifficulty(v float64) *CardProgressUpdateOne {
	_u.mutation.AddDifficulty(v)
	return _u
}

// ClearDifficulty clears the value of the "difficulty" field.
func (_u *CardProgressUpdateOne) ClearDifficulty() *CardProgressUpdateOne {
	_u.mutation.ClearDifficulty()
	return _u
}

// SetRepetitions sets the "repetitions" field.
func (_u *CardProgressUpdateOne) SetRepetitions(v int) *CardProgressUpdateOne {
	_u.mutation.ResetRepetitions()
	_u.mutation.SetRepetitions(v)
	return _u
}

// SetNillableRepetitions sets the "repetitions" field if the given value is not nil.
func (_u *CardProgressUpdateOne) SetNillableRepetitions(v *int) *CardProgressUpdateOne {
	if v != nil {
		_u.SetRepetitions(*v)
	}
	return _u
}

// AddRepetitions adds value to the "repetitions" field.
func (_u *CardProgressUpdateOne) AddRepetitions(v int) *CardProgressUpdateOne {
	_u.mutation.AddRepetitions(v)
	return _u
}

// SetEaseFactor sets the "ease_factor" field.
func (_u *CardProgressUpdateOne) SetEaseFactor(v float64) *CardProgressUpdateOne {
	_u.mutation.ResetEaseFactor()
	_u.mutation.SetEaseFactor(v)
	return _u
}

// SetNillableEaseFactor sets the "ease_factor" field if the given value is not nil.
func (_u *CardProgressUpdateOne) SetNillableEaseFactor(v *float64) *CardProgressUpdateOne {
	if v != nil {
		_u.SetEaseFactor(*v)
	}
	return _u
}

// AddEaseFactor adds value to the "ease_factor" field.
func (_u *CardProgressUpdateOne) AddEaseFactor(v float64) *CardProgressUpdateOne {
	_u.mutation.AddEaseFactor(v)
	return _u
}

// SetIntervalDays sets the "interval_days" field.
func (_u *CardProgressUpdateOne) SetIntervalDays(v int) *CardProgressUpdateOne {
	_u.mutation.ResetIntervalDays()
	_u.mutation.SetIntervalDays(v)
	return _u
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_u *CardProgressUpdateOne) SetNillableIntervalDays(v *int) *CardProgressUpdateOne {
	if v != nil {
		_u.SetIntervalDays(*v)
	}
	return _u
}

// AddIntervalDays adds value to the "interval_days" field.
func (_u *CardProgressUpdateOne) AddIntervalDays(v int) *CardProgressUpdateOne {
	_u.mutation.AddIntervalDays(v)
	return _u
}

// SetNextReview sets the "next_review" field.
func (_u *CardProgressUpdateOne) SetNextReview(v time.Time) *CardProgressUpdateOne {
	_u.mutation.SetNextReview(v)
	return _u
}

// SetNillableNextReview sets the "next_review" field if the given value is not nil.
func (_u *CardProgressUpdateOne) SetNillableNextReview(v *time.Time) *CardProgressUpdateOne {
	if v != nil {
		_u.SetNextReview(*v)
	}
	return _u
}

// SetTotalReviews sets the "total_reviews" field.
func (_u *CardProgressUpdateOne) SetTotalReviews(v int) *CardProgressUpdateOne {
	_u.mutation.ResetTotalReviews()
	_u.mutation.SetTotalReviews(v)
	return _u
}

// SetNillableTotalReviews sets the "total_reviews" field if the given value is not nil.
func (_u *CardProgressUpdateOne) SetNillableTotalReviews(v *int) *CardProgressUpdateOne {
	if v != nil {
		_u.SetTotalReviews(*v)
	}
	return _u
}

// AddTotalReviews adds value to the "total_reviews" field.
func (_u *CardProgressUpdateOne) AddTotalReviews(v int) *CardProgressUpdateOne {
	_u.mutation.AddTotalReviews(v)
	return _u
}

// SetCorrectReviews sets the "correct_reviews" field.
func (_u *CardProgressUpdateOne) SetCorrectReviews(v int) *CardProgressUpdateOne {
	_u.mutation.ResetCorrectReviews()
	_u.mutation.SetCorrectReviews(v)
	return _u
}

// SetNillableCorrectReviews sets the "correct_reviews" field if the given value is not nil.
func (_u *CardProgressUpdateOne) SetNillableCorrectReviews(v *int) *CardProgressUpdateOne {
	if v != nil {
		_u.SetCorrectReviews(*v)
	}
	return _u
}

// AddCorrectReviews adds value to the "correct_reviews" field.
func (_u *CardProgressUpdateOne) AddCorrectReviews(v int) *CardProgressUpdateOne {
	_u.mutation.AddCorrectReviews(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CardProgressUpdateOne) SetUpdatedAt(v time.Time) *CardProgressUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the CardProgressMutation object of the builder.
func (_u *CardProgressUpdateOne) Mutation() *CardProgressMutation {
	return _u.mutation
}

// Where appends a list predicates to the CardProgressUpdate builder.
func (_u *CardProgressUpdateOne) Where(ps ...predicate.CardProgress) *CardProgressUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CardProgressUpdateOne) Select(field string, fields ...string) *CardProgressUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CardProgress entity.
func (_u *CardProgressUpdateOne) Save(ctx context.Context) (*CardProgress, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CardProgressUpdateOne) SaveX(ctx context.Context) *CardProgress {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CardProgressUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CardProgressUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CardProgressUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := cardprogress.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CardProgressUpdateOne) check() error {
	if v, ok := _u.mutation.CardID(); ok {
		if err := cardprogress.CardIDValidator(v); err != nil {
			return &ValidationError{Name: "card_id", err: fmt.Errorf(`ent: validator failed for field "CardProgress.card_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.State(); ok {
		if err := cardprogress.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "CardProgress.state": %w`, err)}
		}
	}
	return nil
}

func (_u *CardProgressUpdateOne) sqlSave(ctx context.Context) (_node *CardProgress, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(cardprogress.Table, cardprogress.Columns, sqlgraph.NewFieldSpec(cardprogress.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CardProgress.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, cardprogress.FieldID)
		for _, f := range fields {
			if !cardprogress.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != cardprogress.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CardID(); ok {
		_spec.SetField(cardprogress.FieldCardID, field.TypeString, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(cardprogress.FieldState, field.TypeString, value)
	}
	if value, ok := _u.mutation.LearningStep(); ok {
		_spec.SetField(cardprogress.FieldLearningStep, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLearningStep(); ok {
		_spec.AddField(cardprogress.FieldLearningStep, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Stability(); ok {
		_spec.SetField(cardprogress.FieldStability, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedStability(); ok {
		_spec.AddField(cardprogress.FieldStability, field.TypeFloat64, value)
	}
	if _u.mutation.StabilityCleared() {
		_spec.ClearField(cardprogress.FieldStability, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(cardprogress.FieldDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(cardprogress.FieldDifficulty, field.TypeFloat64, value)
	}
	if _u.mutation.DifficultyCleared() {
		_spec.ClearField(cardprogress.FieldDifficulty, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Repetitions(); ok {
		_spec.SetField(cardprogress.FieldRepetitions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRepetitions(); ok {
		_spec.AddField(cardprogress.FieldRepetitions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EaseFactor(); ok {
		_spec.SetField(cardprogress.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEaseFactor(); ok {
		_spec.AddField(cardprogress.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.IntervalDays(); ok {
		_spec.SetField(cardprogress.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntervalDays(); ok {
		_spec.AddField(cardprogress.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NextReview(); ok {
		_spec.SetField(cardprogress.FieldNextReview, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TotalReviews(); ok {
		_spec.SetField(cardprogress.FieldTotalReviews, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalReviews(); ok {
		_spec.AddField(cardprogress.FieldTotalReviews, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectReviews(); ok {
		_spec.SetField(cardprogress.FieldCorrectReviews, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectReviews(); ok {
		_spec.AddField(cardprogress.FieldCorrectReviews, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(cardprogress.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &CardProgress{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{cardprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
