// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/minhokang/baeum/ent/offlinesession"
)

// OfflineSessionCreate is the builder for creating a OfflineSession entity.
type OfflineSessionCreate struct {
	config
	mutation *OfflineSessionMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *OfflineSessionCreate) SetSessionID(v string) *OfflineSessionCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *OfflineSessionCreate) SetCreatedAt(v time.Time) *OfflineSessionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *OfflineSessionCreate) SetExpiresAt(v time.Time) *OfflineSessionCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetDesiredRetention sets the "desired_retention" field.
func (_c *OfflineSessionCreate) SetDesiredRetention(v float64) *OfflineSessionCreate {
	_c.mutation.SetDesiredRetention(v)
	return _c
}

// SetFocusMode sets the "focus_mode" field.
func (_c *OfflineSessionCreate) SetFocusMode(v bool) *OfflineSessionCreate {
	_c.mutation.SetFocusMode(v)
	return _c
}

// SetNillableFocusMode sets the "focus_mode" field if the given value is not nil.
func (_c *OfflineSessionCreate) SetNillableFocusMode(v *bool) *OfflineSessionCreate {
	if v != nil {
		_c.SetFocusMode(*v)
	}
	return _c
}

// SetCards sets the "cards" field.
func (_c *OfflineSessionCreate) SetCards(v map[string]interface{}) *OfflineSessionCreate {
	_c.mutation.SetCards(v)
	return _c
}

// SetConsumed sets the "consumed" field.
func (_c *OfflineSessionCreate) SetConsumed(v bool) *OfflineSessionCreate {
	_c.mutation.SetConsumed(v)
	return _c
}

// SetNillableConsumed sets the "consumed" field if the given value is not nil.
func (_c *OfflineSessionCreate) SetNillableConsumed(v *bool) *OfflineSessionCreate {
	if v != nil {
		_c.SetConsumed(*v)
	}
	return _c
}

// Mutation returns the OfflineSessionMutation object of the builder.
func (_c *OfflineSessionCreate) Mutation() *OfflineSessionMutation {
	return _c.mutation
}

// Save creates the OfflineSession in the database.
func (_c *OfflineSessionCreate) Save(ctx context.Context) (*OfflineSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *OfflineSessionCreate) SaveX(ctx context.Context) *OfflineSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OfflineSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OfflineSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *OfflineSessionCreate) defaults() {
	if _, ok := _c.mutation.FocusMode(); !ok {
		v := offlinesession.DefaultFocusMode
		_c.mutation.SetFocusMode(v)
	}
	if _, ok := _c.mutation.Consumed(); !ok {
		v := offlinesession.DefaultConsumed
		_c.mutation.SetConsumed(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *OfflineSessionCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "OfflineSession.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := offlinesession.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "OfflineSession.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "OfflineSession.created_at"`)}
	}
	if _, ok := _c.mutation.ExpiresAt(); !ok {
		return &ValidationError{Name: "expires_at", err: errors.New(`ent: missing required field "OfflineSession.expires_at"`)}
	}
	if _, ok := _c.mutation.DesiredRetention(); !ok {
		return &ValidationError{Name: "desired_retention", err: errors.New(`ent: missing required field "OfflineSession.desired_retention"`)}
	}
	if _, ok := _c.mutation.FocusMode(); !ok {
		return &ValidationError{Name: "focus_mode", err: errors.New(`ent: missing required field "OfflineSession.focus_mode"`)}
	}
	if _, ok := _c.mutation.Cards(); !ok {
		return &ValidationError{Name: "cards", err: errors.New(`ent: missing required field "OfflineSession.cards"`)}
	}
	if _, ok := _c.mutation.Consumed(); !ok {
		return &ValidationError{Name: "consumed", err: errors.New(`ent: missing required field "OfflineSession.consumed"`)}
	}
	return nil
}

func (_c *OfflineSessionCreate) sqlSave(ctx context.Context) (*OfflineSession, error) {
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

func (_c *OfflineSessionCreate) createSpec() (*OfflineSession, *sqlgraph.CreateSpec) {
	var (
		_node = &OfflineSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(offlinesession.Table, sqlgraph.NewFieldSpec(offlinesession.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(offlinesession.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(offlinesession.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(offlinesession.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = value
	}
	if value, ok := _c.mutation.DesiredRetention(); ok {
		_spec.SetField(offlinesession.FieldDesiredRetention, field.TypeFloat64, value)
		_node.DesiredRetention = value
	}
	if value, ok := _c.mutation.FocusMode(); ok {
		_spec.SetField(offlinesession.FieldFocusMode, field.TypeBool, value)
		_node.FocusMode = value
	}
	if value, ok := _c.mutation.Cards(); ok {
		_spec.SetField(offlinesession.FieldCards, field.TypeJSON, value)
		_node.Cards = value
	}
	if value, ok := _c.mutation.Consumed(); ok {
		_spec.SetField(offlinesession.FieldConsumed, field.TypeBool, value)
		_node.Consumed = value
	}
	return _node, _spec
}

// OfflineSessionCreateBulk is the builder for creating many OfflineSession entities in bulk.
type OfflineSessionCreateBulk struct {
	config
	err      error
	builders []*OfflineSessionCreate
}

// Save creates the OfflineSession entities in the database.
func (_c *OfflineSessionCreateBulk) Save(ctx context.Context) ([]*OfflineSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*OfflineSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*OfflineSessionMutation)
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
func (_c *OfflineSessionCreateBulk) SaveX(ctx context.Context) []*OfflineSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OfflineSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OfflineSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
