// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/minhokang/baeum/ent/cardprogress"
)

// CardProgressCreate is the builder for creating a CardProgress entity.
type CardProgressCreate struct {
	config
	mutation *CardProgressMutation
	hooks    []Hook
}

// SetCardID sets the "card_id" field.
func (_c *CardProgressCreate) SetCardID(v string) *CardProgressCreate {
	_c.mutation.SetCardID(v)
	return _c
}

// SetState sets the "state" field.
func (_c *CardProgressCreate) SetState(v string) *CardProgressCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetLearningStep sets the "learning_step" field.
func (_c *CardProgressCreate) SetLearningStep(v int) *CardProgressCreate {
	_c.mutation.SetLearningStep(v)
	return _c
}

// SetNillableLearningStep sets the "learning_step" field if the given value is not nil.
func (_c *CardProgressCreate) SetNillableLearningStep(v *int) *CardProgressCreate {
	if v != nil {
		_c.SetLearningStep(*v)
	}
	return _c
}

// SetStability sets the "stability" field.
func (_c *CardProgressCreate) SetStability(v float64) *CardProgressCreate {
	_c.mutation.SetStability(v)
	return _c
}

// SetNillableStability sets the "stability" field if the given value is not nil.
func (_c *CardProgressCreate) SetNillableStability(v *float64) *CardProgressCreate {
	if v != nil {
		_c.SetStability(*v)
	}
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *CardProgressCreate) SetDifficulty(v float64) *CardProgressCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_c *CardProgressCreate) SetNillableDifficulty(v *float64) *CardProgressCreate {
	if v != nil {
		_c.SetDifficulty(*v)
	}
	return _c
}

// SetRepetitions sets the "repetitions" field.
func (_c *CardProgressCreate) SetRepetitions(v int) *CardProgressCreate {
	_c.mutation.SetRepetitions(v)
	return _c
}

// SetNillableRepetitions sets the "repetitions" field if the given value is not nil.
func (_c *CardProgressCreate) SetNillableRepetitions(v *int) *CardProgressCreate {
	if v != nil {
		_c.SetRepetitions(*v)
	}
	return _c
}

// SetEaseFactor sets the "ease_factor" field.
func (_c *CardProgressCreate) SetEaseFactor(v float64) *CardProgressCreate {
	_c.mutation.SetEaseFactor(v)
	return _c
}

// SetNillableEaseFactor sets the "ease_factor" field if the given value is not nil.
func (_c *CardProgressCreate) SetNillableEaseFactor(v *float64) *CardProgressCreate {
	if v != nil {
		_c.SetEaseFactor(*v)
	}
	return _c
}

// SetIntervalDays sets the "interval_days" field.
func (_c *CardProgressCreate) SetIntervalDays(v int) *CardProgressCreate {
	_c.mutation.SetIntervalDays(v)
	return _c
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_c *CardProgressCreate) SetNillableIntervalDays(v *int) *CardProgressCreate {
	if v != nil {
		_c.SetIntervalDays(*v)
	}
	return _c
}

// SetNextReview sets the "next_review" field.
func (_c *CardProgressCreate) SetNextReview(v time.Time) *CardProgressCreate {
	_c.mutation.SetNextReview(v)
	return _c
}

// SetTotalReviews sets the "total_reviews" field.
func (_c *CardProgressCreate) SetTotalReviews(v int) *CardProgressCreate {
	_c.mutation.SetTotalReviews(v)
	return _c
}

// SetNillableTotalReviews sets the "total_reviews" field if the given value is not nil.
func (_c *CardProgressCreate) SetNillableTotalReviews(v *int) *CardProgressCreate {
	if v != nil {
		_c.SetTotalReviews(*v)
	}
	return _c
}

// SetCorrectReviews sets the "correct_reviews" field.
func (_c *CardProgressCreate) SetCorrectReviews(v int) *CardProgressCreate {
	_c.mutation.SetCorrectReviews(v)
	return _c
}

// SetNillableCorrectReviews sets the "correct_reviews" field if the given value is not nil.
func (_c *CardProgressCreate) SetNillableCorrectReviews(v *int) *CardProgressCreate {
	if v != nil {
		_c.SetCorrectReviews(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CardProgressCreate) SetUpdatedAt(v time.Time) *CardProgressCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CardProgressCreate) SetNillableUpdatedAt(v *time.Time) *CardProgressCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the CardProgressMutation object of the builder.
func (_c *CardProgressCreate) Mutation() *CardProgressMutation {
	return _c.mutation
}

// Save creates the CardProgress in the database.
func (_c *CardProgressCreate) Save(ctx context.Context) (*CardProgress, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CardProgressCreate) SaveX(ctx context.Context) *CardProgress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CardProgressCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CardProgressCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CardProgressCreate) defaults() {
	if _, ok := _c.mutation.LearningStep(); !ok {
		v := cardprogress.DefaultLearningStep
		_c.mutation.SetLearningStep(v)
	}
	if _, ok := _c.mutation.Repetitions(); !ok {
		v := cardprogress.DefaultRepetitions
		_c.mutation.SetRepetitions(v)
	}
	if _, ok := _c.mutation.EaseFactor(); !ok {
		v := cardprogress.DefaultEaseFactor
		_c.mutation.SetEaseFactor(v)
	}
	if _, ok := _c.mutation.IntervalDays(); !ok {
		v := cardprogress.DefaultIntervalDays
		_c.mutation.SetIntervalDays(v)
	}
	if _, ok := _c.mutation.TotalReviews(); !ok {
		v := cardprogress.DefaultTotalReviews
		_c.mutation.SetTotalReviews(v)
	}
	if _, ok := _c.mutation.CorrectReviews(); !ok {
		v := cardprogress.DefaultCorrectReviews
		_c.mutation.SetCorrectReviews(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := cardprogress.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CardProgressCreate) check() error {
	if _, ok := _c.mutation.CardID(); !ok {
		return &ValidationError{Name: "card_id", err: errors.New(`ent: missing required field "CardProgress.card_id"`)}
	}
	if v, ok := _c.mutation.CardID(); ok {
		if err := cardprogress.CardIDValidator(v); err != nil {
			return &ValidationError{Name: "card_id", err: fmt.Errorf(`ent: validator failed for field "CardProgress.card_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "CardProgress.state"`)}
	}
	if v, ok := _c.mutation.State(); ok {
		if err := cardprogress.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "CardProgress.state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LearningStep(); !ok {
		return &ValidationError{Name: "learning_step", err: errors.New(`ent: missing required field "CardProgress.learning_step"`)}
	}
	if _, ok := _c.mutation.Repetitions(); !ok {
		return &ValidationError{Name: "repetitions", err: errors.New(`ent: missing required field "CardProgress.repetitions"`)}
	}
	if _, ok := _c.mutation.EaseFactor(); !ok {
		return &ValidationError{Name: "ease_factor", err: errors.New(`ent: missing required field "CardProgress.ease_factor"`)}
	}
	if _, ok := _c.mutation.IntervalDays(); !ok {
		return &ValidationError{Name: "interval_days", err: errors.New(`ent: missing required field "CardProgress.interval_days"`)}
	}
	if _, ok := _c.mutation.NextReview(); !ok {
		return &ValidationError{Name: "next_review", err: errors.New(`ent: missing required field "CardProgress.next_review"`)}
	}
	if _, ok := _c.mutation.TotalReviews(); !ok {
		return &ValidationError{Name: "total_reviews", err: errors.New(`ent: missing required field "CardProgress.total_reviews"`)}
	}
	if _, ok := _c.mutation.CorrectReviews(); !ok {
		return &ValidationError{Name: "correct_reviews", err: errors.New(`ent: missing required field "CardProgress.correct_reviews"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "CardProgress.updated_at"`)}
	}
	return nil
}

func (_c *CardProgressCreate) sqlSave(ctx context.Context) (*CardProgress, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CardProgressCreate) createSpec() (*CardProgress, *sqlgraph.CreateSpec) {
	var (
		_node = &CardProgress{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(cardprogress.Table, sqlgraph.NewFieldSpec(cardprogress.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CardID(); ok {
		_spec.SetField(cardprogress.FieldCardID, field.TypeString, value)
		_node.CardID = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(cardprogress.FieldState, field.TypeString, value)
		_node.State = value
	}
	if value, ok := _c.mutation.LearningStep(); ok {
		_spec.SetField(cardprogress.FieldLearningStep, field.TypeInt, value)
		_node.LearningStep = value
	}
	if value, ok := _c.mutation.Stability(); ok {
		_spec.SetField(cardprogress.FieldStability, field.TypeFloat64, value)
		_node.Stability = &value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(cardprogress.FieldDifficulty, field.TypeFloat64, value)
		_node.Difficulty = &value
	}
	if value, ok := _c.mutation.Repetitions(); ok {
		_spec.SetField(cardprogress.FieldRepetitions, field.TypeInt, value)
		_node.Repetitions = value
	}
	if value, ok := _c.mutation.EaseFactor(); ok {
		_spec.SetField(cardprogress.FieldEaseFactor, field.TypeFloat64, value)
		_node.EaseFactor = value
	}
	if value, ok := _c.mutation.IntervalDays(); ok {
		_spec.SetField(cardprogress.FieldIntervalDays, field.TypeInt, value)
		_node.IntervalDays = value
	}
	if value, ok := _c.mutation.NextReview(); ok {
		_spec.SetField(cardprogress.FieldNextReview, field.TypeTime, value)
		_node.NextReview = value
	}
	if value, ok := _c.mutation.TotalReviews(); ok {
		_spec.SetField(cardprogress.FieldTotalReviews, field.TypeInt, value)
		_node.TotalReviews = value
	}
	if value, ok := _c.mutation.CorrectReviews(); ok {
		_spec.SetField(cardprogress.FieldCorrectReviews, field.TypeInt, value)
		_node.CorrectReviews = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(cardprogress.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// CardProgressCreateBulk is the builder for creating many CardProgress entities in bulk.
type CardProgressCreateBulk struct {
	config
	err      error
	builders []*CardProgressCreate
}

// Save creates the CardProgress entities in the database.
func (_c *CardProgressCreateBulk) Save(ctx context.Context) ([]*CardProgress, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CardProgress, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CardProgressMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *CardProgressCreateBulk) SaveX(ctx context.Context) []*CardProgress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CardProgressCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CardProgressCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
