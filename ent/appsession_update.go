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
	"github.com/abhisek/eduvoyager/ent/appsession"
	"github.com/abhisek/eduvoyager/ent/predicate"
)

// AppSessionUpdate is the builder for updating AppSession entities.
type AppSessionUpdate struct {
	config
	hooks    []Hook
	mutation *AppSessionMutation
}

// Where appends a list predicates to the AppSessionUpdate builder.
func (_u *AppSessionUpdate) Where(ps ...predicate.AppSession) *AppSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEmail sets the "email" field.
func (_u *AppSessionUpdate) SetEmail(v string) *AppSessionUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *AppSessionUpdate) SetNillableEmail(v *string) *AppSessionUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *AppSessionUpdate) SetStartedAt(v time.Time) *AppSessionUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *AppSessionUpdate) SetNillableStartedAt(v *time.Time) *AppSessionUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// Mutation returns the AppSessionMutation object of the builder.
func (_u *AppSessionUpdate) Mutation() *AppSessionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AppSessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AppSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AppSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AppSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AppSessionUpdate) check() error {
	if v, ok := _u.mutation.Email(); ok {
		if err := appsession.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "AppSession.email": %w`, err)}
		}
	}
	return nil
}

func (_u *AppSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(appsession.Table, appsession.Columns, sqlgraph.NewFieldSpec(appsession.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(appsession.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(appsession.FieldStartedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{appsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AppSessionUpdateOne is the builder for updating a single AppSession entity.
type AppSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AppSessionMutation
}

// SetEmail sets the "email" field.
func (_u *AppSessionUpdateOne) SetEmail(v string) *AppSessionUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *AppSessionUpdateOne) SetNillableEmail(v *string) *AppSessionUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *AppSessionUpdateOne) SetStartedAt(v time.Time) *AppSessionUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *AppSessionUpdateOne) SetNillableStartedAt(v *time.Time) *AppSessionUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// Mutation returns the AppSessionMutation object of the builder.
func (_u *AppSessionUpdateOne) Mutation() *AppSessionMutation {
	return _u.mutation
}

// Where appends a list predicates to the AppSessionUpdate builder.
func (_u *AppSessionUpdateOne) Where(ps ...predicate.AppSession) *AppSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AppSessionUpdateOne) Select(field string, fields ...string) *AppSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AppSession entity.
func (_u *AppSessionUpdateOne) Save(ctx context.Context) (*AppSession, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AppSessionUpdateOne) SaveX(ctx context.Context) *AppSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AppSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AppSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AppSessionUpdateOne) check() error {
	if v, ok := _u.mutation.Email(); ok {
		if err := appsession.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "AppSession.email": %w`, err)}
		}
	}
	return nil
}

func (_u *AppSessionUpdateOne) sqlSave(ctx context.Context) (_node *AppSession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(appsession.Table, appsession.Columns, sqlgraph.NewFieldSpec(appsession.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AppSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, appsession.FieldID)
		for _, f := range fields {
			if !appsession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != appsession.FieldID {
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
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(appsession.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(appsession.FieldStartedAt, field.TypeTime, value)
	}
	_node = &AppSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{appsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
