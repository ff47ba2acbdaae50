// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/eduvoyager/ent/progressevent"
)

// ProgressEventCreate is the builder for creating a ProgressEvent entity.
type ProgressEventCreate struct {
	config
	mutation *ProgressEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *ProgressEventCreate) SetSequence(v int64) *ProgressEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ProgressEventCreate) SetTimestamp(v time.Time) *ProgressEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ProgressEventCreate) SetNillableTimestamp(v *time.Time) *ProgressEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetEmail sets the "email" field.
func (_c *ProgressEventCreate) SetEmail(v string) *ProgressEventCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetAction sets the "action" field.
func (_c *ProgressEventCreate) SetAction(v string) *ProgressEventCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetStepID sets the "step_id" field.
func (_c *ProgressEventCreate) SetStepID(v string) *ProgressEventCreate {
	_c.mutation.SetStepID(v)
	return _c
}

// SetNillableStepID sets the "step_id" field if the given value is not nil.
func (_c *ProgressEventCreate) SetNillableStepID(v *string) *ProgressEventCreate {
	if v != nil {
		_c.SetStepID(*v)
	}
	return _c
}

// SetRoadmapTitle sets the "roadmap_title" field.
func (_c *ProgressEventCreate) SetRoadmapTitle(v string) *ProgressEventCreate {
	_c.mutation.SetRoadmapTitle(v)
	return _c
}

// SetNillableRoadmapTitle sets the "roadmap_title" field if the given value is not nil.
func (_c *ProgressEventCreate) SetNillableRoadmapTitle(v *string) *ProgressEventCreate {
	if v != nil {
		_c.SetRoadmapTitle(*v)
	}
	return _c
}

// SetNsqfLevel sets the "nsqf_level" field.
func (_c *ProgressEventCreate) SetNsqfLevel(v int) *ProgressEventCreate {
	_c.mutation.SetNsqfLevel(v)
	return _c
}

// SetNillableNsqfLevel sets the "nsqf_level" field if the given value is not nil.
func (_c *ProgressEventCreate) SetNillableNsqfLevel(v *int) *ProgressEventCreate {
	if v != nil {
		_c.SetNsqfLevel(*v)
	}
	return _c
}

// SetXpDelta sets the "xp_delta" field.
func (_c *ProgressEventCreate) SetXpDelta(v int) *ProgressEventCreate {
	_c.mutation.SetXpDelta(v)
	return _c
}

// SetNillableXpDelta sets the "xp_delta" field if the given value is not nil.
func (_c *ProgressEventCreate) SetNillableXpDelta(v *int) *ProgressEventCreate {
	if v != nil {
		_c.SetXpDelta(*v)
	}
	return _c
}

// SetBadgeID sets the "badge_id" field.
func (_c *ProgressEventCreate) SetBadgeID(v string) *ProgressEventCreate {
	_c.mutation.SetBadgeID(v)
	return _c
}

// SetNillableBadgeID sets the "badge_id" field if the given value is not nil.
func (_c *ProgressEventCreate) SetNillableBadgeID(v *string) *ProgressEventCreate {
	if v != nil {
		_c.SetBadgeID(*v)
	}
	return _c
}

// Mutation returns the ProgressEventMutation object of the builder.
func (_c *ProgressEventCreate) Mutation() *ProgressEventMutation {
	return _c.mutation
}

// Save creates the ProgressEvent in the database.
func (_c *ProgressEventCreate) Save(ctx context.Context) (*ProgressEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProgressEventCreate) SaveX(ctx context.Context) *ProgressEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProgressEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProgressEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProgressEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := progressevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.NsqfLevel(); !ok {
		v := progressevent.DefaultNsqfLevel
		_c.mutation.SetNsqfLevel(v)
	}
	if _, ok := _c.mutation.XpDelta(); !ok {
		v := progressevent.DefaultXpDelta
		_c.mutation.SetXpDelta(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProgressEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ProgressEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ProgressEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.Email(); !ok {
		return &ValidationError{Name: "email", err: errors.New(`ent: missing required field "ProgressEvent.email"`)}
	}
	if v, ok := _c.mutation.Email(); ok {
		if err := progressevent.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "ProgressEvent.email": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "ProgressEvent.action"`)}
	}
	if v, ok := _c.mutation.Action(); ok {
		if err := progressevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "ProgressEvent.action": %w`, err)}
		}
	}
	if _, ok := _c.mutation.NsqfLevel(); !ok {
		return &ValidationError{Name: "nsqf_level", err: errors.New(`ent: missing required field "ProgressEvent.nsqf_level"`)}
	}
	if _, ok := _c.mutation.XpDelta(); !ok {
		return &ValidationError{Name: "xp_delta", err: errors.New(`ent: missing required field "ProgressEvent.xp_delta"`)}
	}
	return nil
}

func (_c *ProgressEventCreate) sqlSave(ctx context.Context) (*ProgressEvent, error) {
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

func (_c *ProgressEventCreate) createSpec() (*ProgressEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ProgressEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(progressevent.Table, sqlgraph.NewFieldSpec(progressevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(progressevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(progressevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(progressevent.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(progressevent.FieldAction, field.TypeString, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.StepID(); ok {
		_spec.SetField(progressevent.FieldStepID, field.TypeString, value)
		_node.StepID = &value
	}
	if value, ok := _c.mutation.RoadmapTitle(); ok {
		_spec.SetField(progressevent.FieldRoadmapTitle, field.TypeString, value)
		_node.RoadmapTitle = value
	}
	if value, ok := _c.mutation.NsqfLevel(); ok {
		_spec.SetField(progressevent.FieldNsqfLevel, field.TypeInt, value)
		_node.NsqfLevel = value
	}
	if value, ok := _c.mutation.XpDelta(); ok {
		_spec.SetField(progressevent.FieldXpDelta, field.TypeInt, value)
		_node.XpDelta = value
	}
	if value, ok := _c.mutation.BadgeID(); ok {
		_spec.SetField(progressevent.FieldBadgeID, field.TypeString, value)
		_node.BadgeID = &value
	}
	return _node, _spec
}

// ProgressEventCreateBulk is the builder for creating many ProgressEvent entities in bulk.
type ProgressEventCreateBulk struct {
	config
	err      error
	builders []*ProgressEventCreate
}

// Save creates the ProgressEvent entities in the database.
func (_c *ProgressEventCreateBulk) Save(ctx context.Context) ([]*ProgressEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProgressEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProgressEventMutation)
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
func (_c *ProgressEventCreateBulk) SaveX(ctx context.Context) []*ProgressEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProgressEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProgressEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
