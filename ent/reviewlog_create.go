// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/minhokang/baeum/ent/reviewlog"
)

// ReviewLogCreate is the builder for creating a ReviewLog entity.
type ReviewLogCreate struct {
	config
	mutation *ReviewLogMutation
	hooks    []Hook
}

// SetCardID sets the "card_id" field.
func (_c *ReviewLogCreate) SetCardID(v string) *ReviewLogCreate {
	_c.mutation.SetCardID(v)
	return _c
}

// SetQuality sets the "quality" field.
func (_c *ReviewLogCreate) SetQuality(v int) *ReviewLogCreate {
	_c.mutation.SetQuality(v)
	return _c
}

// SetCorrect sets the "correct" field.
func (_c *ReviewLogCreate) SetCorrect(v bool) *ReviewLogCreate {
	_c.mutation.SetCorrect(v)
	return _c
}

// SetHintsUsed sets the "hints_used" field.
func (_c *ReviewLogCreate) SetHintsUsed(v int) *ReviewLogCreate {
	_c.mutation.SetHintsUsed(v)
	return _c
}

// SetNillableHintsUsed sets the "hints_used" field if the given value is not nil.
func (_c *ReviewLogCreate) SetNillableHintsUsed(v *int) *ReviewLogCreate {
	if v != nil {
		_c.SetHintsUsed(*v)
	}
	return _c
}

// SetStudyMode sets the "study_mode" field.
func (_c *ReviewLogCreate) SetStudyMode(v string) *ReviewLogCreate {
	_c.mutation.SetStudyMode(v)
	return _c
}

// SetNillableStudyMode sets the "study_mode" field if the given value is not nil.
func (_c *ReviewLogCreate) SetNillableStudyMode(v *string) *ReviewLogCreate {
	if v != nil {
		_c.SetStudyMode(*v)
	}
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ReviewLogCreate) SetTimestamp(v time.Time) *ReviewLogCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ReviewLogCreate) SetNillableTimestamp(v *time.Time) *ReviewLogCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// Mutation returns the ReviewLogMutation object of the builder.
func (_c *ReviewLogCreate) Mutation() *ReviewLogMutation {
	return _c.mutation
}

// Save creates the ReviewLog in the database.
func (_c *ReviewLogCreate) Save(ctx context.Context) (*ReviewLog, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReviewLogCreate) SaveX(ctx context.Context) *ReviewLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReviewLogCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReviewLogCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReviewLogCreate) defaults() {
	if _, ok := _c.mutation.HintsUsed(); !ok {
		v := reviewlog.DefaultHintsUsed
		_c.mutation.SetHintsUsed(v)
	}
	if _, ok := _c.mutation.StudyMode(); !ok {
		v := reviewlog.DefaultStudyMode
		_c.mutation.SetStudyMode(v)
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := reviewlog.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReviewLogCreate) check() error {
	if _, ok := _c.mutation.CardID(); !ok {
		return &ValidationError{Name: "card_id", err: errors.New(`ent: missing required field "ReviewLog.card_id"`)}
	}
	if v, ok := _c.mutation.CardID(); ok {
		if err := reviewlog.CardIDValidator(v); err != nil {
			return &ValidationError{Name: "card_id", err: fmt.Errorf(`ent: validator failed for field "ReviewLog.card_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Quality(); !ok {
		return &ValidationError{Name: "quality", err: errors.New(`ent: missing required field "ReviewLog.quality"`)}
	}
	if _, ok := _c.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "ReviewLog.correct"`)}
	}
	if _, ok := _c.mutation.HintsUsed(); !ok {
		return &ValidationError{Name: "hints_used", err: errors.New(`ent: missing required field "ReviewLog.hints_used"`)}
	}
	if _, ok := _c.mutation.StudyMode(); !ok {
		return &ValidationError{Name: "study_mode", err: errors.New(`ent: missing required field "ReviewLog.study_mode"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ReviewLog.timestamp"`)}
	}
	return nil
}

func (_c *ReviewLogCreate) sqlSave(ctx context.Context) (*ReviewLog, error) {
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

func (_c *ReviewLogCreate) createSpec() (*ReviewLog, *sqlgraph.CreateSpec) {
	var (
		_node = &ReviewLog{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(reviewlog.Table, sqlgraph.NewFieldSpec(reviewlog.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CardID(); ok {
		_spec.SetField(reviewlog.FieldCardID, field.TypeString, value)
		_node.CardID = value
	}
	if value, ok := _c.mutation.Quality(); ok {
		_spec.SetField(reviewlog.FieldQuality, field.TypeInt, value)
		_node.Quality = value
	}
	if value, ok := _c.mutation.Correct(); ok {
		_spec.SetField(reviewlog.FieldCorrect, field.TypeBool, value)
		_node.Correct = value
	}
	if value, ok := _c.mutation.HintsUsed(); ok {
		_spec.SetField(reviewlog.FieldHintsUsed, field.TypeInt, value)
		_node.HintsUsed = value
	}
	if value, ok := _c.mutation.StudyMode(); ok {
		_spec.SetField(reviewlog.FieldStudyMode, field.TypeString, value)
		_node.StudyMode = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(reviewlog.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	return _node, _spec
}

// ReviewLogCreateBulk is the builder for creating many ReviewLog entities in bulk.
type ReviewLogCreateBulk struct {
	config
	err      error
	builders []*ReviewLogCreate
}

// Save creates the ReviewLog entities in the database.
func (_c *ReviewLogCreateBulk) Save(ctx context.Context) ([]*ReviewLog, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ReviewLog, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReviewLogMutation)
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
func (_c *ReviewLogCreateBulk) SaveX(ctx context.Context) []*ReviewLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReviewLogCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReviewLogCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
