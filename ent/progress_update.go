// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/thinkwise-edu/thinkwise/ent/predicate"
	"github.com/thinkwise-edu/thinkwise/ent/progress"
	"github.com/thinkwise-edu/thinkwise/ent/user"
)

// ProgressUpdate is the builder for updating Progress entities.
type ProgressUpdate struct {
	config
	hooks    []Hook
	mutation *ProgressMutation
}

// Where appends a list predicates to the ProgressUpdate builder.
func (_u *ProgressUpdate) Where(ps ...predicate.Progress) *ProgressUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ProgressUpdate) SetUserID(v uuid.UUID) *ProgressUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ProgressUpdate) SetNillableUserID(v *uuid.UUID) *ProgressUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetDay sets the "day" field.
func (_u *ProgressUpdate) SetDay(v string) *ProgressUpdate {
	_u.mutation.SetDay(v)
	return _u
}

// SetNillableDay sets the "day" field if the given value is not nil.
func (_u *ProgressUpdate) SetNillableDay(v *string) *ProgressUpdate {
	if v != nil {
		_u.SetDay(*v)
	}
	return _u
}

// SetProblemsSolved sets the "problems_solved" field.
func (_u *ProgressUpdate) SetProblemsSolved(v int) *ProgressUpdate {
	_u.mutation.ResetProblemsSolved()
	_u.mutation.SetProblemsSolved(v)
	return _u
}

// SetNillableProblemsSolved sets the "problems_solved" field if the given value is not nil.
func (_u *ProgressUpdate) SetNillableProblemsSolved(v *int) *ProgressUpdate {
	if v != nil {
		_u.SetProblemsSolved(*v)
	}
	return _u
}

// AddProblemsSolved adds value to the "problems_solved" field.
func (_u *ProgressUpdate) AddProblemsSolved(v int) *ProgressUpdate {
	_u.mutation.AddProblemsSolved(v)
	return _u
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_u *ProgressUpdate) SetCorrectAnswers(v int) *ProgressUpdate {
	_u.mutation.ResetCorrectAnswers()
	_u.mutation.SetCorrectAnswers(v)
	return _u
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_u *ProgressUpdate) SetNillableCorrectAnswers(v *int) *ProgressUpdate {
	if v != nil {
		_u.SetCorrectAnswers(*v)
	}
	return _u
}

// AddCorrectAnswers adds value to the "correct_answers" field.
func (_u *ProgressUpdate) AddCorrectAnswers(v int) *ProgressUpdate {
	_u.mutation.AddCorrectAnswers(v)
	return _u
}

// SetTotalTime sets the "total_time" field.
func (_u *ProgressUpdate) SetTotalTime(v int) *ProgressUpdate {
	_u.mutation.ResetTotalTime()
	_u.mutation.SetTotalTime(v)
	return _u
}

// SetNillableTotalTime sets the "total_time" field if the given value is not nil.
func (_u *ProgressUpdate) SetNillableTotalTime(v *int) *ProgressUpdate {
	if v != nil {
		_u.SetTotalTime(*v)
	}
	return _u
}

// AddTotalTime adds value to the "total_time" field.
func (_u *ProgressUpdate) AddTotalTime(v int) *ProgressUpdate {
	_u.mutation.AddTotalTime(v)
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *ProgressUpdate) SetUser(v *User) *ProgressUpdate {
	return _u.SetUserID(v.ID)
}

// Mutation returns the ProgressMutation object of the builder.
func (_u *ProgressUpdate) Mutation() *ProgressMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *ProgressUpdate) ClearUser() *ProgressUpdate {
	_u.mutation.ClearUser()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProgressUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProgressUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProgressUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProgressUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProgressUpdate) check() error {
	if v, ok := _u.mutation.Day(); ok {
		if err := progress.DayValidator(v); err != nil {
			return &ValidationError{Name: "day", err: fmt.Errorf(`ent: validator failed for field "Progress.day": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Progress.user"`)
	}
	return nil
}

func (_u *ProgressUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(progress.Table, progress.Columns, sqlgraph.NewFieldSpec(progress.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Day(); ok {
		_spec.SetField(progress.FieldDay, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProblemsSolved(); ok {
		_spec.SetField(progress.FieldProblemsSolved, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProblemsSolved(); ok {
		_spec.AddField(progress.FieldProblemsSolved, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectAnswers(); ok {
		_spec.SetField(progress.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectAnswers(); ok {
		_spec.AddField(progress.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalTime(); ok {
		_spec.SetField(progress.FieldTotalTime, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTime(); ok {
		_spec.AddField(progress.FieldTotalTime, field.TypeInt, value)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   progress.UserTable,
			Columns: []string{progress.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   progress.UserTable,
			Columns: []string{progress.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{progress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProgressUpdateOne is the builder for updating a single Progress entity.
type ProgressUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProgressMutation
}

// SetUserID sets the "user_id" field.
func (_u *ProgressUpdateOne) SetUserID(v uuid.UUID) *ProgressUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ProgressUpdateOne) SetNillableUserID(v *uuid.UUID) *ProgressUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetDay sets the "day" field.
func (_u *ProgressUpdateOne) SetDay(v string) *ProgressUpdateOne {
	_u.mutation.SetDay(v)
	return _u
}

// SetNillableDay sets the "day" field if the given value is not nil.
func (_u *ProgressUpdateOne) SetNillableDay(v *string) *ProgressUpdateOne {
	if v != nil {
		_u.SetDay(*v)
	}
	return _u
}

// SetProblemsSolved sets the "problems_solved" field.
func (_u *ProgressUpdateOne) SetProblemsSolved(v int) *ProgressUpdateOne {
	_u.mutation.ResetProblemsSolved()
	_u.mutation.SetProblemsSolved(v)
	return _u
}

// SetNillableProblemsSolved sets the "problems_solved" field if the given value is not nil.
func (_u *ProgressUpdateOne) SetNillableProblemsSolved(v *int) *ProgressUpdateOne {
	if v != nil {
		_u.SetProblemsSolved(*v)
	}
	return _u
}

// AddProblemsSolved adds value to the "problems_solved" field.
func (_u *ProgressUpdateOne) AddProblemsSolved(v int) *ProgressUpdateOne {
	_u.mutation.AddProblemsSolved(v)
	return _u
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_u *ProgressUpdateOne) SetCorrectAnswers(v int) *ProgressUpdateOne {
	_u.mutation.ResetCorrectAnswers()
	_u.mutation.SetCorrectAnswers(v)
	return _u
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_u *ProgressUpdateOne) SetNillableCorrectAnswers(v *int) *ProgressUpdateOne {
	if v != nil {
		_u.SetCorrectAnswers(*v)
	}
	return _u
}

// AddCorrectAnswers adds value to the "correct_answers" field.
func (_u *ProgressUpdateOne) AddCorrectAnswers(v int) *ProgressUpdateOne {
	_u.mutation.AddCorrectAnswers(v)
	return _u
}

// SetTotalTime sets the "total_time" field.
func (_u *ProgressUpdateOne) SetTotalTime(v int) *ProgressUpdateOne {
	_u.mutation.ResetTotalTime()
	_u.mutation.SetTotalTime(v)
	return _u
}

// SetNillableTotalTime sets the "total_time" field if the given value is not nil.
func (_u *ProgressUpdateOne) SetNillableTotalTime(v *int) *ProgressUpdateOne {
	if v != nil {
		_u.SetTotalTime(*v)
	}
	return _u
}

// AddTotalTime adds value to the "total_time" field.
func (_u *ProgressUpdateOne) AddTotalTime(v int) *ProgressUpdateOne {
	_u.mutation.AddTotalTime(v)
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *ProgressUpdateOne) SetUser(v *User) *ProgressUpdateOne {
	return _u.SetUserID(v.ID)
}

// Mutation returns the ProgressMutation object of the builder.
func (_u *ProgressUpdateOne) Mutation() *ProgressMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *ProgressUpdateOne) ClearUser() *ProgressUpdateOne {
	_u.mutation.ClearUser()
	return _u
}

// Where appends a list predicates to the ProgressUpdate builder.
func (_u *ProgressUpdateOne) Where(ps ...predicate.Progress) *ProgressUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProgressUpdateOne) Select(field string, fields ...string) *ProgressUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Progress entity.
func (_u *ProgressUpdateOne) Save(ctx context.Context) (*Progress, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProgressUpdateOne) SaveX(ctx context.Context) *Progress {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProgressUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProgressUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProgressUpdateOne) check() error {
	if v, ok := _u.mutation.Day(); ok {
		if err := progress.DayValidator(v); err != nil {
			return &ValidationError{Name: "day", err: fmt.Errorf(`ent: validator failed for field "Progress.day": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Progress.user"`)
	}
	return nil
}

func (_u *ProgressUpdateOne) sqlSave(ctx context.Context) (_node *Progress, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(progress.Table, progress.Columns, sqlgraph.NewFieldSpec(progress.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Progress.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, progress.FieldID)
		for _, f := range fields {
			if !progress.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != progress.FieldID {
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
	if value, ok := _u.mutation.Day(); ok {
		_spec.SetField(progress.FieldDay, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProblemsSolved(); ok {
		_spec.SetField(progress.FieldProblemsSolved, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProblemsSolved(); ok {
		_spec.AddField(progress.FieldProblemsSolved, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectAnswers(); ok {
		_spec.SetField(progress.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectAnswers(); ok {
		_spec.AddField(progress.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalTime(); ok {
		_spec.SetField(progress.FieldTotalTime, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTime(); ok {
		_spec.AddField(progress.FieldTotalTime, field.TypeInt, value)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   progress.UserTable,
			Columns: []string{progress.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   progress.UserTable,
			Columns: []string{progress.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Progress{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{progress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
