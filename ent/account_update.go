// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/eduvoyager/ent/account"
	"github.com/abhisek/eduvoyager/ent/predicate"
)

// AccountUpdate is the builder for updating Account entities.
type AccountUpdate struct {
	config
	hooks    []Hook
	mutation *AccountMutation
}

// Where appends a list predicates to the AccountUpdate builder.
func (_u *AccountUpdate) Where(ps ...predicate.Account) *AccountUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEmail sets the "email" field.
func (_u *AccountUpdate) SetEmail(v string) *AccountUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *AccountUpdate) SetNillableEmail(v *string) *AccountUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetFirstName sets the "first_name" field.
func (_u *AccountUpdate) SetFirstName(v string) *AccountUpdate {
	_u.mutation.SetFirstName(v)
	return _u
}

// SetNillableFirstName sets the "first_name" field if the given value is not nil.
func (_u *AccountUpdate) SetNillableFirstName(v *string) *AccountUpdate {
	if v != nil {
		_u.SetFirstName(*v)
	}
	return _u
}

// SetLastName sets the "last_name" field.
func (_u *AccountUpdate) SetLastName(v string) *AccountUpdate {
	_u.mutation.SetLastName(v)
	return _u
}

// SetNillableLastName sets the "last_name" field if the given value is not nil.
func (_u *AccountUpdate) SetNillableLastName(v *string) *AccountUpdate {
	if v != nil {
		_u.SetLastName(*v)
	}
	return _u
}

// SetDesignation sets the "designation" field.
func (_u *AccountUpdate) SetDesignation(v string) *AccountUpdate {
	_u.mutation.SetDesignation(v)
	return _u
}

// SetNillableDesignation sets the "designation" field if the given value is not nil.
func (_u *AccountUpdate) SetNillableDesignation(v *string) *AccountUpdate {
	if v != nil {
		_u.SetDesignation(*v)
	}
	return _u
}

// SetEducationStage sets the "education_stage" field.
func (_u *AccountUpdate) SetEducationStage(v account.EducationStage) *AccountUpdate {
	_u.mutation.SetEducationStage(v)
	return _u
}

// SetNillableEducationStage sets the "education_stage" field if the given value is not nil.
func (_u *AccountUpdate) SetNillableEducationStage(v *account.EducationStage) *AccountUpdate {
	if v != nil {
		_u.SetEducationStage(*v)
	}
	return _u
}

// SetAge sets the "age" field.
func (_u *AccountUpdate) SetAge(v int) *AccountUpdate {
	_u.mutation.ResetAge()
	_u.mutation.SetAge(v)
	return _u
}

// SetNillableAge sets the "age" field if the given value is not nil.
func (_u *AccountUpdate) SetNillableAge(v *int) *AccountUpdate {
	if v != nil {
		_u.SetAge(*v)
	}
	return _u
}

// AddAge adds value to the "age" field.
func (_u *AccountUpdate) AddAge(v int) *AccountUpdate {
	_u.mutation.AddAge(v)
	return _u
}

// SetPassword sets the "password" field.
func (_u *AccountUpdate) SetPassword(v string) *AccountUpdate {
	_u.mutation.SetPassword(v)
	return _u
}

// SetNillablePassword sets the "password" field if the given value is not nil.
func (_u *AccountUpdate) SetNillablePassword(v *string) *AccountUpdate {
	if v != nil {
		_u.SetPassword(*v)
	}
	return _u
}

// SetStats sets the "stats" field.
func (_u *AccountUpdate) SetStats(v map[string]interface{}) *AccountUpdate {
	_u.mutation.SetStats(v)
	return _u
}

// SetCurrentRoadmap sets the "current_roadmap" field.
func (_u *AccountUpdate) SetCurrentRoadmap(v map[string]interface{}) *AccountUpdate {
	_u.mutation.SetCurrentRoadmap(v)
	return _u
}

// ClearCurrentRoadmap clears the value of the "current_roadmap" field.
func (_u *AccountUpdate) ClearCurrentRoadmap() *AccountUpdate {
	_u.mutation.ClearCurrentRoadmap()
	return _u
}

// SetRoadmapHistory sets the "roadmap_history" field.
func (_u *AccountUpdate) SetRoadmapHistory(v []map[string]interface{}) *AccountUpdate {
	_u.mutation.SetRoadmapHistory(v)
	return _u
}

// AppendRoadmapHistory appends value to the "roadmap_history" field.
func (_u *AccountUpdate) AppendRoadmapHistory(v []map[string]interface{}) *AccountUpdate {
	_u.mutation.AppendRoadmapHistory(v)
	return _u
}

// ClearRoadmapHistory clears the value of the "roadmap_history" field.
func (_u *AccountUpdate) ClearRoadmapHistory() *AccountUpdate {
	_u.mutation.ClearRoadmapHistory()
	return _u
}

// Mutation returns the AccountMutation object of the builder.
func (_u *AccountUpdate) Mutation() *AccountMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AccountUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AccountUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AccountUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AccountUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AccountUpdate) check() error {
	if v, ok := _u.mutation.Email(); ok {
		if err := account.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "Account.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FirstName(); ok {
		if err := account.FirstNameValidator(v); err != nil {
			return &ValidationError{Name: "first_name", err: fmt.Errorf(`ent: validator failed for field "Account.first_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EducationStage(); ok {
		if err := account.EducationStageValidator(v); err != nil {
			return &ValidationError{Name: "education_stage", err: fmt.Errorf(`ent: validator failed for field "Account.education_stage": %w`, err)}
		}
	}
	return nil
}

func (_u *AccountUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(account.Table, account.Columns, sqlgraph.NewFieldSpec(account.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(account.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.FirstName(); ok {
		_spec.SetField(account.FieldFirstName, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastName(); ok {
		_spec.SetField(account.FieldLastName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Designation(); ok {
		_spec.SetField(account.FieldDesignation, field.TypeString, value)
	}
	if value, ok := _u.mutation.EducationStage(); ok {
		_spec.SetField(account.FieldEducationStage, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Age(); ok {
		_spec.SetField(account.FieldAge, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAge(); ok {
		_spec.AddField(account.FieldAge, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Password(); ok {
		_spec.SetField(account.FieldPassword, field.TypeString, value)
	}
	if value, ok := _u.mutation.Stats(); ok {
		_spec.SetField(account.FieldStats, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.CurrentRoadmap(); ok {
		_spec.SetField(account.FieldCurrentRoadmap, field.TypeJSON, value)
	}
	if _u.mutation.CurrentRoadmapCleared() {
		_spec.ClearField(account.FieldCurrentRoadmap, field.TypeJSON)
	}
	if value, ok := _u.mutation.RoadmapHistory(); ok {
		_spec.SetField(account.FieldRoadmapHistory, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRoadmapHistory(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, account.FieldRoadmapHistory, value)
		})
	}
	if _u.mutation.RoadmapHistoryCleared() {
		_spec.ClearField(account.FieldRoadmapHistory, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{account.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AccountUpdateOne is the builder for updating a single Account entity.
type AccountUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AccountMutation
}

// SetEmail sets the "email" field.
func (_u *AccountUpdateOne) SetEmail(v string) *AccountUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *AccountUpdateOne) SetNillableEmail(v *string) *AccountUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetFirstName sets the "first_name" field.
func (_u *AccountUpdateOne) SetFirstName(v string) *AccountUpdateOne {
	_u.mutation.SetFirstName(v)
	return _u
}

// SetNillableFirstName sets the "first_name" field if the given value is not nil.
func (_u *AccountUpdateOne) SetNillableFirstName(v *string) *AccountUpdateOne {
	if v != nil {
		_u.SetFirstName(*v)
	}
	return _u
}

// SetLastName sets the "last_name" field.
func (_u *AccountUpdateOne) SetLastName(v string) *AccountUpdateOne {
	_u.mutation.SetLastName(v)
	return _u
}

// SetNillableLastName sets the "last_name" field if the given value is not nil.
func (_u *AccountUpdateOne) SetNillableLastName(v *string) *AccountUpdateOne {
	if v != nil {
		_u.SetLastName(*v)
	}
	return _u
}

// SetDesignation sets the "designation" field.
func (_u *AccountUpdateOne) SetDesignation(v string) *AccountUpdateOne {
	_u.mutation.SetDesignation(v)
	return _u
}

// SetNillableDesignation sets the "designation" field if the given value is not nil.
func (_u *AccountUpdateOne) SetNillableDesignation(v *string) *AccountUpdateOne {
	if v != nil {
		_u.SetDesignation(*v)
	}
	return _u
}

// SetEducationStage sets the "education_stage" field.
func (_u *AccountUpdateOne) SetEducationStage(v account.EducationStage) *AccountUpdateOne {
	_u.mutation.SetEducationStage(v)
	return _u
}

// SetNillableEducationStage sets the "education_stage" field if the given value is not nil.
func (_u *AccountUpdateOne) SetNillableEducationStage(v *account.EducationStage) *AccountUpdateOne {
	if v != nil {
		_u.SetEducationStage(*v)
	}
	return _u
}

// SetAge sets the "age" field.
func (_u *AccountUpdateOne) SetAge(v int) *AccountUpdateOne {
	_u.mutation.ResetAge()
	_u.mutation.SetAge(v)
	return _u
}

// SetNillableAge sets the "age" field if the given value is not nil.
func (_u *AccountUpdateOne) SetNillableAge(v *int) *AccountUpdateOne {
	if v != nil {
		_u.SetAge(*v)
	}
	return _u
}

// AddAge adds value to the "age" field.
func (_u *AccountUpdateOne) AddAge(v int) *AccountUpdateOne {
	_u.mutation.AddAge(v)
	return _u
}

// SetPassword sets the "password" field.
func (_u *AccountUpdateOne) SetPassword(v string) *AccountUpdateOne {
	_u.mutation.SetPassword(v)
	return _u
}

// SetNillablePassword sets the "password" field if the given value is not nil.
func (_u *AccountUpdateOne) SetNillablePassword(v *string) *AccountUpdateOne {
	if v != nil {
		_u.SetPassword(*v)
	}
	return _u
}

// SetStats sets the "stats" field.
func (_u *AccountUpdateOne) SetStats(v map[string]interface{}) *AccountUpdateOne {
	_u.mutation.SetStats(v)
	return _u
}

// SetCurrentRoadmap sets the "current_roadmap" field.
func (_u *AccountUpdateOne) SetCurrentRoadmap(v map[string]interface{}) *AccountUpdateOne {
	_u.mutation.SetCurrentRoadmap(v)
	return _u
}

// ClearCurrentRoadmap clears the value of the "current_roadmap" field.
func (_u *AccountUpdateOne) ClearCurrentRoadmap() *AccountUpdateOne {
	_u.mutation.ClearCurrentRoadmap()
	return _u
}

// SetRoadmapHistory sets the "roadmap_history" field.
func (_u *AccountUpdateOne) SetRoadmapHistory(v []map[string]interface{}) *AccountUpdateOne {
	_u.mutation.SetRoadmapHistory(v)
	return _u
}

// AppendRoadmapHistory appends value to the "roadmap_history" field.
func (_u *AccountUpdateOne) AppendRoadmapHistory(v []map[string]interface{}) *AccountUpdateOne {
	_u.mutation.AppendRoadmapHistory(v)
	return _u
}

// ClearRoadmapHistory clears the value of the "roadmap_history" field.
func (_u *AccountUpdateOne) ClearRoadmapHistory() *AccountUpdateOne {
	_u.mutation.ClearRoadmapHistory()
	return _u
}

// Mutation returns the AccountMutation object of the builder.
func (_u *AccountUpdateOne) Mutation() *AccountMutation {
	return _u.mutation
}

// Where appends a list predicates to the AccountUpdate builder.
func (_u *AccountUpdateOne) Where(ps ...predicate.Account) *AccountUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AccountUpdateOne) Select(field string, fields ...string) *AccountUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Account entity.
func (_u *AccountUpdateOne) Save(ctx context.Context) (*Account, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AccountUpdateOne) SaveX(ctx context.Context) *Account {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AccountUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AccountUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AccountUpdateOne) check() error {
	if v, ok := _u.mutation.Email(); ok {
		if err := account.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "Account.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FirstName(); ok {
		if err := account.FirstNameValidator(v); err != nil {
			return &ValidationError{Name: "first_name", err: fmt.Errorf(`ent: validator failed for field "Account.first_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EducationStage(); ok {
		if err := account.EducationStageValidator(v); err != nil {
			return &ValidationError{Name: "education_stage", err: fmt.Errorf(`ent: validator failed for field "Account.education_stage": %w`, err)}
		}
	}
	return nil
}

func (_u *AccountUpdateOne) sqlSave(ctx context.Context) (_node *Account, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(account.Table, account.Columns, sqlgraph.NewFieldSpec(account.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Account.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, account.FieldID)
		for _, f := range fields {
			if !account.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != account.FieldID {
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
		_spec.SetField(account.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.FirstName(); ok {
		_spec.SetField(account.FieldFirstName, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastName(); ok {
		_spec.SetField(account.FieldLastName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Designation(); ok {
		_spec.SetField(account.FieldDesignation, field.TypeString, value)
	}
	if value, ok := _u.mutation.EducationStage(); ok {
		_spec.SetField(account.FieldEducationStage, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Age(); ok {
		_spec.SetField(account.FieldAge, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAge(); ok {
		_spec.AddField(account.FieldAge, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Password(); ok {
		_spec.SetField(account.FieldPassword, field.TypeString, value)
	}
	if value, ok := _u.mutation.Stats(); ok {
		_spec.SetField(account.FieldStats, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.CurrentRoadmap(); ok {
		_spec.SetField(account.FieldCurrentRoadmap, field.TypeJSON, value)
	}
	if _u.mutation.CurrentRoadmapCleared() {
		_spec.ClearField(account.FieldCurrentRoadmap, field.TypeJSON)
	}
	if value, ok := _u.mutation.RoadmapHistory(); ok {
		_spec.SetField(account.FieldRoadmapHistory, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRoadmapHistory(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, account.FieldRoadmapHistory, value)
		})
	}
	if _u.mutation.RoadmapHistoryCleared() {
		_spec.ClearField(account.FieldRoadmapHistory, field.TypeJSON)
	}
	_node = &Account{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{account.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
