// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/minhokang/baeum/ent/offlinesession"
	"github.com/minhokang/baeum/ent/predicate"
)

// OfflineSessionUpdate is the builder for updating OfflineSession entities.
type OfflineSessionUpdate struct {
	config
	hooks    []Hook
	mutation *OfflineSessionMutation
}

// Where appends a list predicates to the OfflineSessionUpdate builder.
func (_u *OfflineSessionUpdate) Where(ps ...predicate.OfflineSession) *OfflineSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *OfflineSessionUpdate) SetSessionID(v string) *OfflineSessionUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *OfflineSessionUpdate) SetNillableSessionID(v *string) *OfflineSessionUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetDesiredRetention sets the "desired_retention" field.
func (_u *OfflineSessionUpdate) SetDesiredRetention(v float64) *OfflineSessionUpdate {
	_u.mutation.ResetDesiredRetention()
	_u.mutation.SetDesiredRetention(v)
	return _u
}

// SetNillableDesiredRetention sets the "desired_retention" field if the given value is not nil.
func (_u *OfflineSessionUpdate) SetNillableDesiredRetention(v *float64) *OfflineSessionUpdate {
	if v != nil {
		_u.SetDesiredRetention(*v)
	}
	return _u
}

// AddDesiredRetention adds value to the "desired_retention" field.
func (_u *OfflineSessionUpdate) AddDesiredRetention(v float64) *OfflineSessionUpdate {
	_u.mutation.AddDesiredRetention(v)
	return _u
}

// SetFocusMode sets the "focus_mode" field.
func (_u *OfflineSessionUpdate) SetFocusMode(v bool) *OfflineSessionUpdate {
	_u.mutation.SetFocusMode(v)
	return _u
}

// SetNillableFocusMode sets the "focus_mode" field if the given value is not nil.
func (_u *OfflineSessionUpdate) SetNillableFocusMode(v *bool) *OfflineSessionUpdate {
	if v != nil {
		_u.SetFocusMode(*v)
	}
	return _u
}

// SetCards sets the "cards" field.
func (_u *OfflineSessionUpdate) SetCards(v map[string]interface{}) *OfflineSessionUpdate {
	_u.mutation.SetCards(v)
	return _u
}

// SetConsumed sets the "consumed" field.
func (_u *OfflineSessionUpdate) SetConsumed(v bool) *OfflineSessionUpdate {
	_u.mutation.SetConsumed(v)
	return _u
}

// SetNillableConsumed sets the "consumed" field if the given value is not nil.
func (_u *OfflineSessionUpdate) SetNillableConsumed(v *bool) *OfflineSessionUpdate {
	if v != nil {
		_u.SetConsumed(*v)
	}
	return _u
}

// Mutation returns the OfflineSessionMutation object of the builder.
func (_u *OfflineSessionUpdate) Mutation() *OfflineSessionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *OfflineSessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OfflineSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *OfflineSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OfflineSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OfflineSessionUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := offlinesession.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "OfflineSession.session_id": %w`, err)}
		}
	}
	return nil
}

func (_u *OfflineSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(offlinesession.Table, offlinesession.Columns, sqlgraph.NewFieldSpec(offlinesession.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(offlinesession.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DesiredRetention(); ok {
		_spec.SetField(offlinesession.FieldDesiredRetention, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDesiredRetention(); ok {
		_spec.AddField(offlinesession.FieldDesiredRetention, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.FocusMode(); ok {
		_spec.SetField(offlinesession.FieldFocusMode, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Cards(); ok {
		_spec.SetField(offlinesession.FieldCards, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Consumed(); ok {
		_spec.SetField(offlinesession.FieldConsumed, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{offlinesession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// OfflineSessionUpdateOne is the builder for updating a single OfflineSession entity.
type OfflineSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *OfflineSessionMutation
}

// SetSessionID sets the "session_id" field.
func (_u *OfflineSessionUpdateOne) SetSessionID(v string) *OfflineSessionUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *OfflineSessionUpdateOne) SetNillableSessionID(v *string) *OfflineSessionUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetDesiredRetention sets the "desired_retention" field.
func (_u *OfflineSessionUpdateOne) SetDesiredRetention(v float64) *OfflineSessionUpdateOne {
	_u.mutation.ResetDesiredRetention()
	_u.mutation.SetDesiredRetention(v)
	return _u
}

// SetNillableDesiredRetention sets the "desired_retention" field if the given value is not nil.
func (_u *OfflineSessionUpdateOne) SetNillableDesiredRetention(v *float64) *OfflineSessionUpdateOne {
	if v != nil {
		_u.SetDesiredRetention(*v)
	}
	return _u
}

// AddDesiredRetention adds value to the "desired_retention" field.
func (_u *OfflineSessionUpdateOne) AddDesiredRetention(v float64) *OfflineSessionUpdateOne {
	_u.mutation.AddDesiredRetention(v)
	return _u
}

// SetFocusMode sets the "focus_mode" field.
func (_u *OfflineSessionUpdateOne) SetFocusMode(v bool) *OfflineSessionUpdateOne {
	_u.mutation.SetFocusMode(v)
	return _u
}

// SetNillableFocusMode sets the "focus_mode" field if the given value is not nil.
func (_u *OfflineSessionUpdateOne) SetNillableFocusMode(v *bool) *OfflineSessionUpdateOne {
	if v != nil {
		_u.SetFocusMode(*v)
	}
	return _u
}

// SetCards sets the "cards" field.
func (_u *OfflineSessionUpdateOne) SetCards(v map[string]interface{}) *OfflineSessionUpdateOne {
	_u.mutation.SetCards(v)
	return _u
}

// SetConsumed sets the "consumed" field.
func (_u *OfflineSessionUpdateOne) SetConsumed(v bool) *OfflineSessionUpdateOne {
	_u.mutation.SetConsumed(v)
	return _u
}

// SetNillableConsumed sets the "consumed" field if the given value is not nil.
func (_u *OfflineSessionUpdateOne) SetNillableConsumed(v *bool) *OfflineSessionUpdateOne {
	if v != nil {
		_u.SetConsumed(*v)
	}
	return _u
}

// Mutation returns the OfflineSessionMutation object of the builder.
func (_u *OfflineSessionUpdateOne) Mutation() *OfflineSessionMutation {
	return _u.mutation
}

// Where appends a list predicates to the OfflineSessionUpdate builder.
func (_u *OfflineSessionUpdateOne) Where(ps ...predicate.OfflineSession) *OfflineSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *OfflineSessionUpdateOne) Select(field string, fields ...string) *OfflineSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated OfflineSession entity.
func (_u *OfflineSessionUpdateOne) Save(ctx context.Context) (*OfflineSession, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OfflineSessionUpdateOne) SaveX(ctx context.Context) *OfflineSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *OfflineSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OfflineSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OfflineSessionUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := offlinesession.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "OfflineSession.session_id": %w`, err)}
		}
	}
	return nil
}

func (_u *OfflineSessionUpdateOne) sqlSave(ctx context.Context) (_node *OfflineSession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(offlinesession.Table, offlinesession.Columns, sqlgraph.NewFieldSpec(offlinesession.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "OfflineSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, offlinesession.FieldID)
		for _, f := range fields {
			if !offlinesession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != offlinesession.FieldID {
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(offlinesession.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DesiredRetention(); ok {
		_spec.SetField(offlinesession.FieldDesiredRetention, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDesiredRetention(); ok {
		_spec.AddField(offlinesession.FieldDesiredRetention, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.FocusMode(); ok {
		_spec.SetField(offlinesession.FieldFocusMode, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Cards(); ok {
		_spec.SetField(offlinesession.FieldCards, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Consumed(); ok {
		_spec.SetField(offlinesession.FieldConsumed, field.TypeBool, value)
	}
	_node = &OfflineSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{offlinesession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
