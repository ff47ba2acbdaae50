// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/eduvoyager/ent/predicate"
	"github.com/abhisek/eduvoyager/ent/progressevent"
)

// ProgressEventUpdate is the builder for updating ProgressEvent entities.
type ProgressEventUpdate struct {
	config
	hooks    []Hook
	mutation *ProgressEventMutation
}

// Where appends a list predicates to the ProgressEventUpdate builder.
func (_u *ProgressEventUpdate) Where(ps ...predicate.ProgressEvent) *ProgressEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEmail sets the "email" field.
func (_u *ProgressEventUpdate) SetEmail(v string) *ProgressEventUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *ProgressEventUpdate) SetNillableEmail(v *string) *ProgressEventUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *ProgressEventUpdate) SetAction(v string) *ProgressEventUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *ProgressEventUpdate) SetNillableAction(v *string) *ProgressEventUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetStepID sets the "step_id" field.
func (_u *ProgressEventUpdate) SetStepID(v string) *ProgressEventUpdate {
	_u.mutation.SetStepID(v)
	return _u
}

// SetNillableStepID sets the "step_id" field if the given value is not nil.
func (_u *ProgressEventUpdate) SetNillableStepID(v *string) *ProgressEventUpdate {
	if v != nil {
		_u.SetStepID(*v)
	}
	return _u
}

// ClearStepID clears the value of the "step_id" field.
func (_u *ProgressEventUpdate) ClearStepID() *ProgressEventUpdate {
	_u.mutation.ClearStepID()
	return _u
}

// SetRoadmapTitle sets the "roadmap_title" field.
func (_u *ProgressEventUpdate) SetRoadmapTitle(v string) *ProgressEventUpdate {
	_u.mutation.SetRoadmapTitle(v)
	return _u
}

// SetNillableRoadmapTitle sets the "roadmap_title" field if the given value is not nil.
func (_u *ProgressEventUpdate) SetNillableRoadmapTitle(v *string) *ProgressEventUpdate {
	if v != nil {
		_u.SetRoadmapTitle(*v)
	}
	return _u
}

// ClearRoadmapTitle clears the value of the "roadmap_title" field.
func (_u *ProgressEventUpdate) ClearRoadmapTitle() *ProgressEventUpdate {
	_u.mutation.ClearRoadmapTitle()
	return _u
}

// SetNsqfLevel sets the "nsqf_level" field.
func (_u *ProgressEventUpdate) SetNsqfLevel(v int) *ProgressEventUpdate {
	_u.mutation.ResetNsqfLevel()
	_u.mutation.SetNsqfLevel(v)
	return _u
}

// SetNillableNsqfLevel sets the "nsqf_level" field if the given value is not nil.
func (_u *ProgressEventUpdate) SetNillableNsqfLevel(v *int) *ProgressEventUpdate {
	if v != nil {
		_u.SetNsqfLevel(*v)
	}
	return _u
}

// AddNsqfLevel adds value to the "nsqf_level" field.
func (_u *ProgressEventUpdate) AddNsqfLevel(v int) *ProgressEventUpdate {
	_u.mutation.AddNsqfLevel(v)
	return _u
}

// SetXpDelta sets the "xp_delta" field.
func (_u *ProgressEventUpdate) SetXpDelta(v int) *ProgressEventUpdate {
	_u.mutation.ResetXpDelta()
	_u.mutation.SetXpDelta(v)
	return _u
}

// SetNillableXpDelta sets the "xp_delta" field if the given value is not nil.
func (_u *ProgressEventUpdate) SetNillableXpDelta(v *int) *ProgressEventUpdate {
	if v != nil {
		_u.SetXpDelta(*v)
	}
	return _u
}

// AddXpDelta adds value to the "xp_delta" field.
func (_u *ProgressEventUpdate) AddXpDelta(v int) *ProgressEventUpdate {
	_u.mutation.AddXpDelta(v)
	return _u
}

// SetBadgeID sets the "badge_id" field.
func (_u *ProgressEventUpdate) SetBadgeID(v string) *ProgressEventUpdate {
	_u.mutation.SetBadgeID(v)
	return _u
}

// SetNillableBadgeID sets the "badge_id" field if the given value is not nil.
func (_u *ProgressEventUpdate) SetNillableBadgeID(v *string) *ProgressEventUpdate {
	if v != nil {
		_u.SetBadgeID(*v)
	}
	return _u
}

// ClearBadgeID clears the value of the "badge_id" field.
func (_u *ProgressEventUpdate) ClearBadgeID() *ProgressEventUpdate {
	_u.mutation.ClearBadgeID()
	return _u
}

// Mutation returns the ProgressEventMutation object of the builder.
func (_u *ProgressEventUpdate) Mutation() *ProgressEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProgressEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProgressEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProgressEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProgressEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProgressEventUpdate) check() error {
	if v, ok := _u.mutation.Email(); ok {
		if err := progressevent.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "ProgressEvent.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := progressevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "ProgressEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *ProgressEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(progressevent.Table, progressevent.Columns, sqlgraph.NewFieldSpec(progressevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(progressevent.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(progressevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.StepID(); ok {
		_spec.SetField(progressevent.FieldStepID, field.TypeString, value)
	}
	if _u.mutation.StepIDCleared() {
		_spec.ClearField(progressevent.FieldStepID, field.TypeString)
	}
	if value, ok := _u.mutation.RoadmapTitle(); ok {
		_spec.SetField(progressevent.FieldRoadmapTitle, field.TypeString, value)
	}
	if _u.mutation.RoadmapTitleCleared() {
		_spec.ClearField(progressevent.FieldRoadmapTitle, field.TypeString)
	}
	if value, ok := _u.mutation.NsqfLevel(); ok {
		_spec.SetField(progressevent.FieldNsqfLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNsqfLevel(); ok {
		_spec.AddField(progressevent.FieldNsqfLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.XpDelta(); ok {
		_spec.SetField(progressevent.FieldXpDelta, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXpDelta(); ok {
		_spec.AddField(progressevent.FieldXpDelta, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BadgeID(); ok {
		_spec.SetField(progressevent.FieldBadgeID, field.TypeString, value)
	}
	if _u.mutation.BadgeIDCleared() {
		_spec.ClearField(progressevent.FieldBadgeID, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{progressevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProgressEventUpdateOne is the builder for updating a single ProgressEvent entity.
type ProgressEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProgressEventMutation
}

// SetEmail sets the "email" field.
func (_u *ProgressEventUpdateOne) SetEmail(v string) *ProgressEventUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *ProgressEventUpdateOne) SetNillableEmail(v *string) *ProgressEventUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *ProgressEventUpdateOne) SetAction(v string) *ProgressEventUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *ProgressEventUpdateOne) SetNillableAction(v *string) *ProgressEventUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetStepID sets the "step_id" field.
func (_u *ProgressEventUpdateOne) SetStepID(v string) *ProgressEventUpdateOne {
	_u.mutation.SetStepID(v)
	return _u
}

// SetNillableStepID sets the "step_id" field if the given value is not nil.
func (_u *ProgressEventUpdateOne) SetNillableStepID(v *string) *ProgressEventUpdateOne {
	if v != nil {
		_u.SetStepID(*v)
	}
	return _u
}

// ClearStepID clears the value of the "step_id" field.
func (_u *ProgressEventUpdateOne) ClearStepID() *ProgressEventUpdateOne {
	_u.mutation.ClearStepID()
	return _u
}

// SetRoadmapTitle sets the "roadmap_title" field.
func (_u *ProgressEventUpdateOne) SetRoadmapTitle(v string) *ProgressEventUpdateOne {
	_u.mutation.SetRoadmapTitle(v)
	return _u
}

// SetNillableRoadmapTitle sets the "roadmap_title" field if the given value is not nil.
func (_u *ProgressEventUpdateOne) SetNillableRoadmapTitle(v *string) *ProgressEventUpdateOne {
	if v != nil {
		_u.SetRoadmapTitle(*v)
	}
	return _u
}

// ClearRoadmapTitle clears the value of the "roadmap_title" field.
func (_u *ProgressEventUpdateOne) ClearRoadmapTitle() *ProgressEventUpdateOne {
	_u.mutation.ClearRoadmapTitle()
	return _u
}

// SetNsqfLevel sets the "nsqf_level" field.
func (_u *ProgressEventUpdateOne) SetNsqfLevel(v int) *ProgressEventUpdateOne {
	_u.mutation.ResetNsqfLevel()
	_u.mutation.SetNsqfLevel(v)
	return _u
}

// SetNillableNsqfLevel sets the "nsqf_level" field if the given value is not nil.
func (_u *ProgressEventUpdateOne) SetNillableNsqfLevel(v *int) *ProgressEventUpdateOne {
	if v != nil {
		_u.SetNsqfLevel(*v)
	}
	return _u
}

// AddNsqfLevel adds value to the "nsqf_level" field.
func (_u *ProgressEventUpdateOne) AddNsqfLevel(v int) *ProgressEventUpdateOne {
	_u.mutation.AddNsqfLevel(v)
	return _u
}

// SetXpDelta sets the "xp_delta" field.
func (_u *ProgressEventUpdateOne) SetXpDelta(v int) *ProgressEventUpdateOne {
	_u.mutation.ResetXpDelta()
	_u.mutation.SetXpDelta(v)
	return _u
}

// SetNillableXpDelta sets the "xp_delta" field if the given value is not nil.
func (_u *ProgressEventUpdateOne) SetNillableXpDelta(v *int) *ProgressEventUpdateOne {
	if v != nil {
		_u.SetXpDelta(*v)
	}
	return _u
}

// AddXpDelta adds value to the "xp_delta" field.
func (_u *ProgressEventUpdateOne) AddXpDelta(v int) *ProgressEventUpdateOne {
	_u.mutation.AddXpDelta(v)
	return _u
}

// SetBadgeID sets the "badge_id" field.
func (_u *ProgressEventUpdateOne) SetBadgeID(v string) *ProgressEventUpdateOne {
	_u.mutation.SetBadgeID(v)
	return _u
}

// SetNillableBadgeID sets the "badge_id" field if the given value is not nil.
func (_u *ProgressEventUpdateOne) SetNillableBadgeID(v *string) *ProgressEventUpdateOne {
	if v != nil {
		_u.SetBadgeID(*v)
	}
	return _u
}

// ClearBadgeID clears the value of the "badge_id" field.
func (_u *ProgressEventUpdateOne) ClearBadgeID() *ProgressEventUpdateOne {
	_u.mutation.ClearBadgeID()
	return _u
}

// Mutation returns the ProgressEventMutation object of the builder.
func (_u *ProgressEventUpdateOne) Mutation() *ProgressEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProgressEventUpdate builder.
func (_u *ProgressEventUpdateOne) Where(ps ...predicate.ProgressEvent) *ProgressEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProgressEventUpdateOne) Select(field string, fields ...string) *ProgressEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProgressEvent entity.
func (_u *ProgressEventUpdateOne) Save(ctx context.Context) (*ProgressEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProgressEventUpdateOne) SaveX(ctx context.Context) *ProgressEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProgressEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProgressEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProgressEventUpdateOne) check() error {
	if v, ok := _u.mutation.Email(); ok {
		if err := progressevent.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "ProgressEvent.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := progressevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "ProgressEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *ProgressEventUpdateOne) sqlSave(ctx context.Context) (_node *ProgressEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(progressevent.Table, progressevent.Columns, sqlgraph.NewFieldSpec(progressevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProgressEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, progressevent.FieldID)
		for _, f := range fields {
			if !progressevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != progressevent.FieldID {
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
		_spec.SetField(progressevent.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(progressevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.StepID(); ok {
		_spec.SetField(progressevent.FieldStepID, field.TypeString, value)
	}
	if _u.mutation.StepIDCleared() {
		_spec.ClearField(progressevent.FieldStepID, field.TypeString)
	}
	if value, ok := _u.mutation.RoadmapTitle(); ok {
		_spec.SetField(progressevent.FieldRoadmapTitle, field.TypeString, value)
	}
	if _u.mutation.RoadmapTitleCleared() {
		_spec.ClearField(progressevent.FieldRoadmapTitle, field.TypeString)
	}
	if value, ok := _u.mutation.NsqfLevel(); ok {
		_spec.SetField(progressevent.FieldNsqfLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNsqfLevel(); ok {
		_spec.AddField(progressevent.FieldNsqfLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.XpDelta(); ok {
		_spec.SetField(progressevent.FieldXpDelta, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXpDelta(); ok {
		_spec.AddField(progressevent.FieldXpDelta, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BadgeID(); ok {
		_spec.SetField(progressevent.FieldBadgeID, field.TypeString, value)
	}
	if _u.mutation.BadgeIDCleared() {
		_spec.ClearField(progressevent.FieldBadgeID, field.TypeString)
	}
	_node = &ProgressEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{progressevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
