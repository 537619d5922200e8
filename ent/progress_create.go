// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/thinkwise-edu/thinkwise/ent/progress"
	"github.com/thinkwise-edu/thinkwise/ent/user"
)

// ProgressCreate is the builder for creating a Progress entity.
type ProgressCreate struct {
	config
	mutation *ProgressMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *ProgressCreate) SetUserID(v uuid.UUID) *ProgressCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetDay sets the "day" field.
func (_c *ProgressCreate) SetDay(v string) *ProgressCreate {
	_c.mutation.SetDay(v)
	return _c
}

// SetProblemsSolved sets the "problems_solved" field.
func (_c *ProgressCreate) SetProblemsSolved(v int) *ProgressCreate {
	_c.mutation.SetProblemsSolved(v)
	return _c
}

// SetNillableProblemsSolved sets the "problems_solved" field if the given value is not nil.
func (_c *ProgressCreate) SetNillableProblemsSolved(v *int) *ProgressCreate {
	if v != nil {
		_c.SetProblemsSolved(*v)
	}
	return _c
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_c *ProgressCreate) SetCorrectAnswers(v int) *ProgressCreate {
	_c.mutation.SetCorrectAnswers(v)
	return _c
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_c *ProgressCreate) SetNillableCorrectAnswers(v *int) *ProgressCreate {
	if v != nil {
		_c.SetCorrectAnswers(*v)
	}
	return _c
}

// SetTotalTime sets the "total_time" field.
func (_c *ProgressCreate) SetTotalTime(v int) *ProgressCreate {
	_c.mutation.SetTotalTime(v)
	return _c
}

// SetNillableTotalTime sets the "total_time" field if the given value is not nil.
func (_c *ProgressCreate) SetNillableTotalTime(v *int) *ProgressCreate {
	if v != nil {
		_c.SetTotalTime(*v)
	}
	return _c
}

// SetUser sets the "user" edge to the User entity.
func (_c *ProgressCreate) SetUser(v *User) *ProgressCreate {
	return _c.SetUserID(v.ID)
}

// Mutation returns the ProgressMutation object of the builder.
func (_c *ProgressCreate) Mutation() *ProgressMutation {
	return _c.mutation
}

// Save creates the Progress in the database.
func (_c *ProgressCreate) Save(ctx context.Context) (*Progress, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProgressCreate) SaveX(ctx context.Context) *Progress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProgressCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProgressCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProgressCreate) defaults() {
	if _, ok := _c.mutation.ProblemsSolved(); !ok {
		v := progress.DefaultProblemsSolved
		_c.mutation.SetProblemsSolved(v)
	}
	if _, ok := _c.mutation.CorrectAnswers(); !ok {
		v := progress.DefaultCorrectAnswers
		_c.mutation.SetCorrectAnswers(v)
	}
	if _, ok := _c.mutation.TotalTime(); !ok {
		v := progress.DefaultTotalTime
		_c.mutation.SetTotalTime(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProgressCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Progress.user_id"`)}
	}
	if _, ok := _c.mutation.Day(); !ok {
		return &ValidationError{Name: "day", err: errors.New(`ent: missing required field "Progress.day"`)}
	}
	if v, ok := _c.mutation.Day(); ok {
		if err := progress.DayValidator(v); err != nil {
			return &ValidationError{Name: "day", err: fmt.Errorf(`ent: validator failed for field "Progress.day": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ProblemsSolved(); !ok {
		return &ValidationError{Name: "problems_solved", err: errors.New(`ent: missing required field "Progress.problems_solved"`)}
	}
	if _, ok := _c.mutation.CorrectAnswers(); !ok {
		return &ValidationError{Name: "correct_answers", err: errors.New(`ent: missing required field "Progress.correct_answers"`)}
	}
	if _, ok := _c.mutation.TotalTime(); !ok {
		return &ValidationError{Name: "total_time", err: errors.New(`ent: missing required field "Progress.total_time"`)}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`ent: missing required edge "Progress.user"`)}
	}
	return nil
}

func (_c *ProgressCreate) sqlSave(ctx context.Context) (*Progress, error) {
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

func (_c *ProgressCreate) createSpec() (*Progress, *sqlgraph.CreateSpec) {
	var (
		_node = &Progress{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(progress.Table, sqlgraph.NewFieldSpec(progress.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Day(); ok {
		_spec.SetField(progress.FieldDay, field.TypeString, value)
		_node.Day = value
	}
	if value, ok := _c.mutation.ProblemsSolved(); ok {
		_spec.SetField(progress.FieldProblemsSolved, field.TypeInt, value)
		_node.ProblemsSolved = value
	}
	if value, ok := _c.mutation.CorrectAnswers(); ok {
		_spec.SetField(progress.FieldCorrectAnswers, field.TypeInt, value)
		_node.CorrectAnswers = value
	}
	if value, ok := _c.mutation.TotalTime(); ok {
		_spec.SetField(progress.FieldTotalTime, field.TypeInt, value)
		_node.TotalTime = value
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
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
		_node.UserID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ProgressCreateBulk is the builder for creating many Progress entities in bulk.
type ProgressCreateBulk struct {
	config
	err      error
	builders []*ProgressCreate
}

// Save creates the Progress entities in the database.
func (_c *ProgressCreateBulk) Save(ctx context.Context) ([]*Progress, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Progress, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProgressMutation)
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
func (_c *ProgressCreateBulk) SaveX(ctx context.Context) []*Progress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProgressCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProgressCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
