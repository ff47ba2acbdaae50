// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/eduvoyager/ent/appsession"
)

// AppSessionCreate is the builder for creating a AppSession entity.
type AppSessionCreate struct {
	config
	mutation *AppSessionMutation
	hooks    []Hook
}

// SetEmail sets the "email" field.
func (_c *AppSessionCreate) SetEmail(v string) *AppSessionCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *AppSessionCreate) SetStartedAt(v time.Time) *AppSessionCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *AppSessionCreate) SetNillableStartedAt(v *time.Time) *AppSessionCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// Mutation returns the AppSessionMutation object of the builder.
func (_c *AppSessionCreate) Mutation() *AppSessionMutation {
	return _c.mutation
}

// Save creates the AppSession in the database.
func (_c *AppSessionCreate) Save(ctx context.Context) (*AppSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AppSessionCreate) SaveX(ctx context.Context) *AppSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AppSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AppSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AppSessionCreate) defaults() {
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := appsession.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AppSessionCreate) check() error {
	if _, ok := _c.mutation.Email(); !ok {
		return &ValidationError{Name: "email", err: errors.New(`ent: missing required field "AppSession.email"`)}
	}
	if v, ok := _c.mutation.Email(); ok {
		if err := appsession.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "AppSession.email": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "AppSession.started_at"`)}
	}
	return nil
}

func (_c *AppSessionCreate) sqlSave(ctx context.Context) (*AppSession, error) {
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

func (_c *AppSessionCreate) createSpec() (*AppSession, *sqlgraph.CreateSpec) {
	var (
		_node = &AppSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(appsession.Table, sqlgraph.NewFieldSpec(appsession.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(appsession.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(appsession.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	return _node, _spec
}

// AppSessionCreateBulk is the builder for creating many AppSession entities in bulk.
type AppSessionCreateBulk struct {
	config
	err      error
	builders []*AppSessionCreate
}

// Save creates the AppSession entities in the database.
func (_c *AppSessionCreateBulk) Save(ctx context.Context) ([]*AppSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AppSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AppSessionMutation)
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
func (_c *AppSessionCreateBulk) SaveX(ctx context.Context) []*AppSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AppSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AppSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
