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
	"github.com/google/uuid"
	"github.com/thinkwise-edu/thinkwise/ent/predicate"
	"github.com/thinkwise-edu/thinkwise/ent/problem"
	"github.com/thinkwise-edu/thinkwise/ent/problemstep"
)

// ProblemStepUpdate is the builder for updating ProblemStep entities.
type ProblemStepUpdate struct {
	config
	hooks    []Hook
	mutation *ProblemStepMutation
}

// Where appends a list predicates to the ProblemStepUpdate builder.
func (_u *ProblemStepUpdate) Where(ps ...predicate.ProblemStep) *ProblemStepUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProblemID sets the "problem_id" field.
func (_u *ProblemStepUpdate) SetProblemID(v uuid.UUID) *ProblemStepUpdate {
	_u.mutation.SetProblemID(v)
	return _u
}

// SetNillableProblemID sets the "problem_id" field if the given value is not nil.
func (_u *ProblemStepUpdate) SetNillableProblemID(v *uuid.UUID) *ProblemStepUpdate {
	if v != nil {
		_u.SetProblemID(*v)
	}
	return _u
}

// SetStepNumber sets the "step_number" field.
func (_u *ProblemStepUpdate) SetStepNumber(v int) *ProblemStepUpdate {
	_u.mutation.ResetStepNumber()
	_u.mutation.SetStepNumber(v)
	return _u
}

// SetNillableStepNumber sets the "step_number" field if the given value is not nil.
func (_u *ProblemStepUpdate) SetNillableStepNumber(v *int) *ProblemStepUpdate {
	if v != nil {
		_u.SetStepNumber(*v)
	}
	return _u
}

// AddStepNumber adds value to the "step_number" field.
func (_u *ProblemStepUpdate) AddStepNumber(v int) *ProblemStepUpdate {
	_u.mutation.AddStepNumber(v)
	return _u
}

// SetTitle sets the "title" field.
func (_u *ProblemStepUpdate) SetTitle(v string) *ProblemStepUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ProblemStepUpdate) SetNillableTitle(v *string) *ProblemStepUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ProblemStepUpdate) SetDescription(v string) *ProblemStepUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ProblemStepUpdate) SetNillableDescription(v *string) *ProblemStepUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetHint sets the "hint" field.
func (_u *ProblemStepUpdate) SetHint(v string) *ProblemStepUpdate {
	_u.mutation.SetHint(v)
	return _u
}

// SetNillableHint sets the "hint" field if the given value is not nil.
func (_u *ProblemStepUpdate) SetNillableHint(v *string) *ProblemStepUpdate {
	if v != nil {
		_u.SetHint(*v)
	}
	return _u
}

// SetOptions sets the "options" field.
func (_u *ProblemStepUpdate) SetOptions(v []string) *ProblemStepUpdate {
	_u.mutation.SetOptions(v)
	return _u
}

// AppendOptions appends value to the "options" field.
func (_u *ProblemStepUpdate) AppendOptions(v []string) *ProblemStepUpdate {
	_u.mutation.AppendOptions(v)
	return _u
}

// ClearOptions clears the value of the "options" field.
func (_u *ProblemStepUpdate) ClearOptions() *ProblemStepUpdate {
	_u.mutation.ClearOptions()
	return _u
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_u *ProblemStepUpdate) SetCorrectAnswer(v string) *ProblemStepUpdate {
	_u.mutation.SetCorrectAnswer(v)
	return _u
}

// SetNillableCorrectAnswer sets the "correct_answer" field if the given value is not nil.
func (_u *ProblemStepUpdate) SetNillableCorrectAnswer(v *string) *ProblemStepUpdate {
	if v != nil {
		_u.SetCorrectAnswer(*v)
	}
	return _u
}

// SetProblem sets the "problem" edge to the Problem entity.
func (_u *ProblemStepUpdate) SetProblem(v *Problem) *ProblemStepUpdate {
	return _u.SetProblemID(v.ID)
}

// Mutation returns the ProblemStepMutation object of the builder.
func (_u *ProblemStepUpdate) Mutation() *ProblemStepMutation {
	return _u.mutation
}

// ClearProblem clears the "problem" edge to the Problem entity.
func (_u *ProblemStepUpdate) ClearProblem() *ProblemStepUpdate {
	_u.mutation.ClearProblem()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProblemStepUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProblemStepUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProblemStepUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProblemStepUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProblemStepUpdate) check() error {
	if v, ok := _u.mutation.StepNumber(); ok {
		if err := problemstep.StepNumberValidator(v); err != nil {
			return &ValidationError{Name: "step_number", err: fmt.Errorf(`ent: validator failed for field "ProblemStep.step_number": %w`, err)}
		}
	}
	if _u.mutation.ProblemCleared() && len(_u.mutation.ProblemIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ProblemStep.problem"`)
	}
	return nil
}

func (_u *ProblemStepUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(problemstep.Table, problemstep.Columns, sqlgraph.NewFieldSpec(problemstep.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StepNumber(); ok {
		_spec.SetField(problemstep.FieldStepNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStepNumber(); ok {
		_spec.AddField(problemstep.FieldStepNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(problemstep.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(problemstep.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Hint(); ok {
		_spec.SetField(problemstep.FieldHint, field.TypeString, value)
	}
	if value, ok := _u.mutation.Options(); ok {
		_spec.SetField(problemstep.FieldOptions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOptions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, problemstep.FieldOptions, value)
		})
	}
	if _u.mutation.OptionsCleared() {
		_spec.ClearField(problemstep.FieldOptions, field.TypeJSON)
	}
	if value, ok := _u.mutation.CorrectAnswer(); ok {
		_spec.SetField(problemstep.FieldCorrectAnswer, field.TypeString, value)
	}
	if _u.mutation.ProblemCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   problemstep.ProblemTable,
			Columns: []string{problemstep.ProblemColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(problem.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProblemIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   problemstep.ProblemTable,
			Columns: []string{problemstep.ProblemColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(problem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{problemstep.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProblemStepUpdateOne is the builder for updating a single ProblemStep entity.
type ProblemStepUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProblemStepMutation
}

// SetProblemID sets the "problem_id" field.
func (_u *ProblemStepUpdateOne) SetProblemID(v uuid.UUID) *ProblemStepUpdateOne {
	_u.mutation.SetProblemID(v)
	return _u
}

// SetNillableProblemID sets the "problem_id" field if the given value is not nil.
func (_u *ProblemStepUpdateOne) SetNillableProblemID(v *uuid.UUID) *ProblemStepUpdateOne {
	if v != nil {
		_u.SetProblemID(*v)
	}
	return _u
}

// SetStepNumber sets the "step_number" field.
func (_u *ProblemStepUpdateOne) SetStepNumber(v int) *ProblemStepUpdateOne {
	_u.mutation.ResetStepNumber()
	_u.mutation.SetStepNumber(v)
	return _u
}

// SetNillableStepNumber sets the "step_number" field if the given value is not nil.
func (_u *ProblemStepUpdateOne) SetNillableStepNumber(v *int) *ProblemStepUpdateOne {
	if v != nil {
		_u.SetStepNumber(*v)
	}
	return _u
}

// AddStepNumber adds value to the "step_number" field.
func (_u *ProblemStepUpdateOne) AddStepNumber(v int) *ProblemStepUpdateOne {
	_u.mutation.AddStepNumber(v)
	return _u
}

// SetTitle sets the "title" field.
func (_u *ProblemStepUpdateOne) SetTitle(v string) *ProblemStepUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ProblemStepUpdateOne) SetNillableTitle(v *string) *ProblemStepUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ProblemStepUpdateOne) SetDescription(v string) *ProblemStepUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ProblemStepUpdateOne) SetNillableDescription(v *string) *ProblemStepUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetHint sets the "hint" field.
func (_u *ProblemStepUpdateOne) SetHint(v string) *ProblemStepUpdateOne {
	_u.mutation.SetHint(v)
	return _u
}

// SetNillableHint sets the "hint" field if the given value is not nil.
func (_u *ProblemStepUpdateOne) SetNillableHint(v *string) *ProblemStepUpdateOne {
	if v != nil {
		_u.SetHint(*v)
	}
	return _u
}

// SetOptions sets the "options" field.
func (_u *ProblemStepUpdateOne) SetOptions(v []string) *ProblemStepUpdateOne {
	_u.mutation.SetOptions(v)
	return _u
}

// AppendOptions appends value to the "options" field.
func (_u *ProblemStepUpdateOne) AppendOptions(v []string) *ProblemStepUpdateOne {
	_u.mutation.AppendOptions(v)
	return _u
}

// ClearOptions clears the value of the "options" field.
func (_u *ProblemStepUpdateOne) ClearOptions() *ProblemStepUpdateOne {
	_u.mutation.ClearOptions()
	return _u
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_u *ProblemStepUpdateOne) SetCorrectAnswer(v string) *ProblemStepUpdateOne {
	_u.mutation.SetCorrectAnswer(v)
	return _u
}

// SetNillableCorrectAnswer sets the "correct_answer" field if the given value is not nil.
func (_u *ProblemStepUpdateOne) SetNillableCorrectAnswer(v *string) *ProblemStepUpdateOne {
	if v != nil {
		_u.SetCorrectAnswer(*v)
	}
	return _u
}

// SetProblem sets the "problem" edge to the Problem entity.
func (_u *ProblemStepUpdateOne) SetProblem(v *Problem) *ProblemStepUpdateOne {
	return _u.SetProblemID(v.ID)
}

// Mutation returns the ProblemStepMutation object of the builder.
func (_u *ProblemStepUpdateOne) Mutation() *ProblemStepMutation {
	return _u.mutation
}

// ClearProblem clears the "problem" edge to the Problem entity.
func (_u *ProblemStepUpdateOne) ClearProblem() *ProblemStepUpdateOne {
	_u.mutation.ClearProblem()
	return _u
}

// Where appends a list predicates to the ProblemStepUpdate builder.
func (_u *ProblemStepUpdateOne) Where(ps ...predicate.ProblemStep) *ProblemStepUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProblemStepUpdateOne) Select(field string, fields ...string) *ProblemStepUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProblemStep entity.
func (_u *ProblemStepUpdateOne) Save(ctx context.Context) (*ProblemStep, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProblemStepUpdateOne) SaveX(ctx context.Context) *ProblemStep {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProblemStepUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProblemStepUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProblemStepUpdateOne) check() error {
	if v, ok := _u.mutation.StepNumber(); ok {
		if err := problemstep.StepNumberValidator(v); err != nil {
			return &ValidationError{Name: "step_number", err: fmt.Errorf(`ent: validator failed for field "ProblemStep.step_number": %w`, err)}
		}
	}
	if _u.mutation.ProblemCleared() && len(_u.mutation.ProblemIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ProblemStep.problem"`)
	}
	return nil
}

func (_u *ProblemStepUpdateOne) sqlSave(ctx context.Context) (_node *ProblemStep, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(problemstep.Table, problemstep.Columns, sqlgraph.NewFieldSpec(problemstep.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProblemStep.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, problemstep.FieldID)
		for _, f := range fields {
			if !problemstep.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != problemstep.FieldID {
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
	if value, ok := _u.mutation.StepNumber(); ok {
		_spec.SetField(problemstep.FieldStepNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStepNumber(); ok {
		_spec.AddField(problemstep.FieldStepNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(problemstep.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(problemstep.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Hint(); ok {
		_spec.SetField(problemstep.FieldHint, field.TypeString, value)
	}
	if value, ok := _u.mutation.Options(); ok {
		_spec.SetField(problemstep.FieldOptions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOptions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, problemstep.FieldOptions, value)
		})
	}
	if _u.mutation.OptionsCleared() {
		_spec.ClearField(problemstep.FieldOptions, field.TypeJSON)
	}
	if value, ok := _u.mutation.CorrectAnswer(); ok {
		_spec.SetField(problemstep.FieldCorrectAnswer, field.TypeString, value)
	}
	if _u.mutation.ProblemCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   problemstep.ProblemTable,
			Columns: []string{problemstep.ProblemColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(problem.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProblemIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   problemstep.ProblemTable,
			Columns: []string{problemstep.ProblemColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(problem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ProblemStep{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{problemstep.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
