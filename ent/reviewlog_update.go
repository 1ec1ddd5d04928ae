// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/minhokang/baeum/ent/predicate"
	"github.com/minhokang/baeum/ent/reviewlog"
)

// ReviewLogUpdate is the builder for updating ReviewLog entities.
type ReviewLogUpdate struct {
	config
	hooks    []Hook
	mutation *ReviewLogMutation
}

// Where appends a list predicates to the ReviewLogUpdate builder.
func (_u *ReviewLogUpdate) Where(ps ...predicate.ReviewLog) *ReviewLogUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCardID sets the "card_id" field.
func (_u *ReviewLogUpdate) SetCardID(v string) *ReviewLogUpdate {
	_u.mutation.SetCardID(v)
	return _u
}

// SetNillableCardID sets the "card_id" field if the given value is not nil.
func (_u *ReviewLogUpdate) SetNillableCardID(v *string) *ReviewLogUpdate {
	if v != nil {
		_u.SetCardID(*v)
	}
	return _u
}

// SetQuality sets the "quality" field.
func (_u *ReviewLogUpdate) SetQuality(v int) *ReviewLogUpdate {
	_u.mutation.ResetQuality()
	_u.mutation.SetQuality(v)
	return _u
}

// SetNillableQuality sets the "quality" field if the given value is not nil.
func (_u *ReviewLogUpdate) SetNillableQuality(v *int) *ReviewLogUpdate {
	if v != nil {
		_u.SetQuality(*v)
	}
	return _u
}

// AddQuality adds value to the "quality" field.
func (_u *ReviewLogUpdate) AddQuality(v int) *ReviewLogUpdate {
	_u.mutation.AddQuality(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *ReviewLogUpdate) SetCorrect(v bool) *ReviewLogUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *ReviewLogUpdate) SetNillableCorrect(v *bool) *ReviewLogUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetHintsUsed sets the "hints_used" field.
func (_u *ReviewLogUpdate) SetHintsUsed(v int) *ReviewLogUpdate {
	_u.mutation.ResetHintsUsed()
	_u.mutation.SetHintsUsed(v)
	return _u
}

// SetNillableHintsUsed sets the "hints_used" field if the given value is not nil.
func (_u *ReviewLogUpdate) SetNillableHintsUsed(v *int) *ReviewLogUpdate {
	if v != nil {
		_u.SetHintsUsed(*v)
	}
	return _u
}

// AddHintsUsed adds value to the "hints_used" field.
func (_u *ReviewLogUpdate) AddHintsUsed(v int) *ReviewLogUpdate {
	_u.mutation.AddHintsUsed(v)
	return _u
}

// SetStudyMode sets the "study_mode" field.
func (_u *ReviewLogUpdate) SetStudyMode(v string) *ReviewLogUpdate {
	_u.mutation.SetStudyMode(v)
	return _u
}

// SetNillableStudyMode sets the "study_mode" field if the given value is not nil.
func (_u *ReviewLogUpdate) SetNillableStudyMode(v *string) *ReviewLogUpdate {
	if v != nil {
		_u.SetStudyMode(*v)
	}
	return _u
}

// Mutation returns the ReviewLogMutation object of the builder.
func (_u *ReviewLogUpdate) Mutation() *ReviewLogMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReviewLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewLogUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReviewLogUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewLogUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReviewLogUpdate) check() error {
	if v, ok := _u.mutation.CardID(); ok {
		if err := reviewlog.CardIDValidator(v); err != nil {
			return &ValidationError{Name: "card_id", err: fmt.Errorf(`ent: validator failed for field "ReviewLog.card_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ReviewLogUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reviewlog.Table, reviewlog.Columns, sqlgraph.NewFieldSpec(reviewlog.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CardID(); ok {
		_spec.SetField(reviewlog.FieldCardID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Quality(); ok {
		_spec.SetField(reviewlog.FieldQuality, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuality(); ok {
		_spec.AddField(reviewlog.FieldQuality, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(reviewlog.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.HintsUsed(); ok {
		_spec.SetField(reviewlog.FieldHintsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHintsUsed(); ok {
		_spec.AddField(reviewlog.FieldHintsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StudyMode(); ok {
		_spec.SetField(reviewlog.FieldStudyMode, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReviewLogUpdateOne is the builder for updating a single ReviewLog entity.
type ReviewLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReviewLogMutation
}

// SetCardID sets the "card_id" field.
func (_u *ReviewLogUpdateOne) SetCardID(v string) *ReviewLogUpdateOne {
	_u.mutation.SetCardID(v)
	return _u
}

// SetNillableCardID sets the "card_id" field if the given value is not nil.
func (_u *ReviewLogUpdateOne) SetNillableCardID(v *string) *ReviewLogUpdateOne {
	if v != nil {
		_u.SetCardID(*v)
	}
	return _u
}

// SetQuality sets the "quality" field.
func (_u *ReviewLogUpdateOne) SetQuality(v int) *ReviewLogUpdateOne {
	_u.mutation.ResetQuality()
	_u.mutation.SetQuality(v)
	return _u
}

// SetNillableQuality sets the "quality" field if the given value is not nil.
func (_u *ReviewLogUpdateOne) SetNillableQuality(v *int) *ReviewLogUpdateOne {
	if v != nil {
		_u.SetQuality(*v)
	}
	return _u
}

// AddQuality adds value to the "quality" field.
func (_u *ReviewLogUpdateOne) AddQuality(v int) *ReviewLogUpdateOne {
	_u.mutation.AddQuality(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *ReviewLogUpdateOne) SetCorrect(v bool) *ReviewLogUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *ReviewLogUpdateOne) SetNillableCorrect(v *bool) *ReviewLogUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetHintsUsed sets the "hints_used" field.
func (_u *ReviewLogUpdateOne) SetHintsUsed(v int) *ReviewLogUpdateOne {
	_u.mutation.ResetHintsUsed()
	_u.mutation.SetHintsUsed(v)
	return _u
}

// SetNillableHintsUsed sets the "hints_used" field if the given value is not nil.
func (_u *ReviewLogUpdateOne) SetNillableHintsUsed(v *int) *ReviewLogUpdateOne {
	if v != nil {
		_u.SetHintsUsed(*v)
	}
	return _u
}

// AddHintsUsed adds value to the "hints_used" field.
func (_u *ReviewLogUpdateOne) AddHintsUsed(v int) *ReviewLogUpdateOne {
	_u.mutation.AddHintsUsed(v)
	return _u
}

// SetStudyMode sets the "study_mode" field.
func (_u *ReviewLogUpdateOne) SetStudyMode(v string) *ReviewLogUpdateOne {
	_u.mutation.SetStudyMode(v)
	return _u
}

// SetNillableStudyMode sets the "study_mode" field if the given value is not nil.
func (_u *ReviewLogUpdateOne) SetNillableStudyMode(v *string) *ReviewLogUpdateOne {
	if v != nil {
		_u.SetStudyMode(*v)
	}
	return _u
}

// Mutation returns the ReviewLogMutation object of the builder.
func (_u *ReviewLogUpdateOne) Mutation() *ReviewLogMutation {
	return _u.mutation
}

// Where appends a list predicates to the ReviewLogUpdate builder.
func (_u *ReviewLogUpdateOne) Where(ps ...predicate.ReviewLog) *ReviewLogUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReviewLogUpdateOne) Select(field string, fields ...string) *ReviewLogUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ReviewLog entity.
func (_u *ReviewLogUpdateOne) Save(ctx context.Context) (*ReviewLog, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewLogUpdateOne) SaveX(ctx context.Context) *ReviewLog {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReviewLogUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewLogUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReviewLogUpdateOne) check() error {
	if v, ok := _u.mutation.CardID(); ok {
		if err := reviewlog.CardIDValidator(v); err != nil {
			return &ValidationError{Name: "card_id", err: fmt.Errorf(`ent: validator failed for field "ReviewLog.card_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ReviewLogUpdateOne) sqlSave(ctx context.Context) (_node *ReviewLog, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reviewlog.Table, reviewlog.Columns, sqlgraph.NewFieldSpec(reviewlog.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ReviewLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reviewlog.FieldID)
		for _, f := range fields {
			if !reviewlog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != reviewlog.FieldID {
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
		_spec.SetField(reviewlog.FieldCardID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Quality(); ok {
		_spec.SetField(reviewlog.FieldQuality, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuality(); ok {
		_spec.AddField(reviewlog.FieldQuality, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(reviewlog.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.HintsUsed(); ok {
		_spec.SetField(reviewlog.FieldHintsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHintsUsed(); ok {
		_spec.AddField(reviewlog.FieldHintsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StudyMode(); ok {
		_spec.SetField(reviewlog.FieldStudyMode, field.TypeString, value)
	}
	_node = &ReviewLog{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
