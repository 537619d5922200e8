// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/thinkwise-edu/thinkwise/ent/problem"
	"github.com/thinkwise-edu/thinkwise/ent/problemstep"
)

// ProblemStepCreate is the builder for creating a ProblemStep entity.
type ProblemStepCreate struct {
	config
	mutation *ProblemStepMutation
	hooks    []Hook
}

// SetProblemID sets the "problem_id" field.
func (_c *ProblemStepCreate) SetProblemID(v uuid.UUID) *ProblemStepCreate {
	_c.mutation.SetProblemID(v)
	return _c
}

// SetStepNumber sets the "step_number" field.
func (_c *ProblemStepCreate) SetStepNumber(v int) *ProblemStepCreate {
	_c.mutation.SetStepNumber(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *ProblemStepCreate) SetTitle(v string) *ProblemStepCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *ProblemStepCreate) SetDescription(v string) *ProblemStepCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetHint sets the "hint" field.
func (_c *ProblemStepCreate) SetHint(v string) *ProblemStepCreate {
	_c.mutation.SetHint(v)
	return _c
}

// SetNillableHint sets the "hint" field if the given value is not nil.
func (_c *ProblemStepCreate) SetNillableHint(v *string) *ProblemStepCreate {
	if v != nil {
		_c.SetHint(*v)
	}
	return _c
}

// SetOptions sets the "options" field.
func (_c *ProblemStepCreate) SetOptions(v []string) *ProblemStepCreate {
	_c.mutation.SetOptions(v)
	return _c
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_c *ProblemStepCreate) SetCorrectAnswer(v string) *ProblemStepCreate {
	_c.mutation.SetCorrectAnswer(v)
	return _c
}

// SetNillableCorrectAnswer sets the "correct_answer" field if the given value is not nil.
func (_c *ProblemStepCreate) SetNillableCorrectAnswer(v *string) *ProblemStepCreate {
	if v != nil {
		_c.SetCorrectAnswer(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ProblemStepCreate) SetID(v uuid.UUID) *ProblemStepCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ProblemStepCreate) SetNillableID(v *uuid.UUID) *ProblemStepCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetProblem sets the "problem" edge to the Problem entity.
func (_c *ProblemStepCreate) SetProblem(v *Problem) *ProblemStepCreate {
	return _c.SetProblemID(v.ID)
}

// Mutation returns the ProblemStepMutation object of the builder.
func (_c *ProblemStepCreate) Mutation() *ProblemStepMutation {
	return _c.mutation
}

// Save creates the ProblemStep in the database.
func (_c *ProblemStepCreate) Save(ctx context.Context) (*ProblemStep, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProblemStepCreate) SaveX(ctx context.Context) *ProblemStep {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProblemStepCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProblemStepCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProblemStepCreate) defaults() {
	if _, ok := _c.mutation.Hint(); !ok {
		v := problemstep.DefaultHint
		_c.mutation.SetHint(v)
	}
	if _, ok := _c.mutation.CorrectAnswer(); !ok {
		v := problemstep.DefaultCorrectAnswer
		_c.mutation.SetCorrectAnswer(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := problemstep.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProblemStepCreate) check() error {
	if _, ok := _c.mutation.ProblemID(); !ok {
		return &ValidationError{Name: "problem_id", err: errors.New(`ent: missing required field "ProblemStep.problem_id"`)}
	}
	if _, ok := _c.mutation.StepNumber(); !ok {
		return &ValidationError{Name: "step_number", err: errors.New(`ent: missing required field "ProblemStep.step_number"`)}
	}
	if v, ok := _c.mutation.StepNumber(); ok {
		if err := problemstep.StepNumberValidator(v); err != nil {
			return &ValidationError{Name: "step_number", err: fmt.Errorf(`ent: validator failed for field "ProblemStep.step_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "ProblemStep.title"`)}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "ProblemStep.description"`)}
	}
	if _, ok := _c.mutation.Hint(); !ok {
		return &ValidationError{Name: "hint", err: errors.New(`ent: missing required field "ProblemStep.hint"`)}
	}
	if _, ok := _c.mutation.CorrectAnswer(); !ok {
		return &ValidationError{Name: "correct_answer", err: errors.New(`ent: missing required field "ProblemStep.correct_answer"`)}
	}
	if len(_c.mutation.ProblemIDs()) == 0 {
		return &ValidationError{Name: "problem", err: errors.New(`ent: missing required edge "ProblemStep.problem"`)}
	}
	return nil
}

func (_c *ProblemStepCreate) sqlSave(ctx context.Context) (*ProblemStep, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ProblemStepCreate) createSpec() (*ProblemStep, *sqlgraph.CreateSpec) {
	var (
		_node = &ProblemStep{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(problemstep.Table, sqlgraph.NewFieldSpec(problemstep.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.StepNumber(); ok {
		_spec.SetField(problemstep.FieldStepNumber, field.TypeInt, value)
		_node.StepNumber = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(problemstep.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(problemstep.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Hint(); ok {
		_spec.SetField(problemstep.FieldHint, field.TypeString, value)
		_node.Hint = value
	}
	if value, ok := _c.mutation.Options(); ok {
		_spec.SetField(problemstep.FieldOptions, field.TypeJSON, value)
		_node.Options = value
	}
	if value, ok := _c.mutation.CorrectAnswer(); ok {
		_spec.SetField(problemstep.FieldCorrectAnswer, field.TypeString, value)
		_node.CorrectAnswer = value
	}
	if nodes := _c.mutation.ProblemIDs(); len(nodes) > 0 {
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
		_node.ProblemID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ProblemStepCreateBulk is the builder for creating many ProblemStep entities in bulk.
type ProblemStepCreateBulk struct {
	config
	err      error
	builders []*ProblemStepCreate
}

// Save creates the ProblemStep entities in the database.
func (_c *ProblemStepCreateBulk) Save(ctx context.Context) ([]*ProblemStep, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProblemStep, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProblemStepMutation)
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
func (_c *ProblemStepCreateBulk) SaveX(ctx context.Context) []*ProblemStep {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProblemStepCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProblemStepCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
