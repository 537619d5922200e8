// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/thinkwise-edu/thinkwise/ent/aigenerationlog"
)

// AIGenerationLogCreate is the builder for creating a AIGenerationLog entity.
type AIGenerationLogCreate struct {
	config
	mutation *AIGenerationLogMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *AIGenerationLogCreate) SetSequence(v int64) *AIGenerationLogCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *AIGenerationLogCreate) SetTimestamp(v time.Time) *AIGenerationLogCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *AIGenerationLogCreate) SetNillableTimestamp(v *time.Time) *AIGenerationLogCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetProblemType sets the "problem_type" field.
func (_c *AIGenerationLogCreate) SetProblemType(v string) *AIGenerationLogCreate {
	_c.mutation.SetProblemType(v)
	return _c
}

// SetModel sets the "model" field.
func (_c *AIGenerationLogCreate) SetModel(v string) *AIGenerationLogCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetSuccess sets the "success" field.
func (_c *AIGenerationLogCreate) SetSuccess(v bool) *AIGenerationLogCreate {
	_c.mutation.SetSuccess(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *AIGenerationLogCreate) SetErrorMessage(v string) *AIGenerationLogCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *AIGenerationLogCreate) SetNillableErrorMessage(v *string) *AIGenerationLogCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetProblemID sets the "problem_id" field.
func (_c *AIGenerationLogCreate) SetProblemID(v uuid.UUID) *AIGenerationLogCreate {
	_c.mutation.SetProblemID(v)
	return _c
}

// SetNillableProblemID sets the "problem_id" field if the given value is not nil.
func (_c *AIGenerationLogCreate) SetNillableProblemID(v *uuid.UUID) *AIGenerationLogCreate {
	if v != nil {
		_c.SetProblemID(*v)
	}
	return _c
}

// SetInputTokens sets the "input_tokens" field.
func (_c *AIGenerationLogCreate) SetInputTokens(v int) *AIGenerationLogCreate {
	_c.mutation.SetInputTokens(v)
	return _c
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_c *AIGenerationLogCreate) SetNillableInputTokens(v *int) *AIGenerationLogCreate {
	if v != nil {
		_c.SetInputTokens(*v)
	}
	return _c
}

// SetOutputTokens sets the "output_tokens" field.
func (_c *AIGenerationLogCreate) SetOutputTokens(v int) *AIGenerationLogCreate {
	_c.mutation.SetOutputTokens(v)
	return _c
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_c *AIGenerationLogCreate) SetNillableOutputTokens(v *int) *AIGenerationLogCreate {
	if v != nil {
		_c.SetOutputTokens(*v)
	}
	return _c
}

// SetCost sets the "cost" field.
func (_c *AIGenerationLogCreate) SetCost(v float64) *AIGenerationLogCreate {
	_c.mutation.SetCost(v)
	return _c
}

// SetNillableCost sets the "cost" field if the given value is not nil.
func (_c *AIGenerationLogCreate) SetNillableCost(v *float64) *AIGenerationLogCreate {
	if v != nil {
		_c.SetCost(*v)
	}
	return _c
}

// Mutation returns the AIGenerationLogMutation object of the builder.
func (_c *AIGenerationLogCreate) Mutation() *AIGenerationLogMutation {
	return _c.mutation
}

// Save creates the AIGenerationLog in the database.
func (_c *AIGenerationLogCreate) Save(ctx context.Context) (*AIGenerationLog, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AIGenerationLogCreate) SaveX(ctx context.Context) *AIGenerationLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AIGenerationLogCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AIGenerationLogCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AIGenerationLogCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := aigenerationlog.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.ErrorMessage(); !ok {
		v := aigenerationlog.DefaultErrorMessage
		_c.mutation.SetErrorMessage(v)
	}
	if _, ok := _c.mutation.InputTokens(); !ok {
		v := aigenerationlog.DefaultInputTokens
		_c.mutation.SetInputTokens(v)
	}
	if _, ok := _c.mutation.OutputTokens(); !ok {
		v := aigenerationlog.DefaultOutputTokens
		_c.mutation.SetOutputTokens(v)
	}
	if _, ok := _c.mutation.Cost(); !ok {
		v := aigenerationlog.DefaultCost
		_c.mutation.SetCost(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AIGenerationLogCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "AIGenerationLog.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "AIGenerationLog.timestamp"`)}
	}
	if _, ok := _c.mutation.ProblemType(); !ok {
		return &ValidationError{Name: "problem_type", err: errors.New(`ent: missing required field "AIGenerationLog.problem_type"`)}
	}
	if _, ok := _c.mutation.Model(); !ok {
		return &ValidationError{Name: "model", err: errors.New(`ent: missing required field "AIGenerationLog.model"`)}
	}
	if _, ok := _c.mutation.Success(); !ok {
		return &ValidationError{Name: "success", err: errors.New(`ent: missing required field "AIGenerationLog.success"`)}
	}
	if _, ok := _c.mutation.ErrorMessage(); !ok {
		return &ValidationError{Name: "error_message", err: errors.New(`ent: missing required field "AIGenerationLog.error_message"`)}
	}
	if _, ok := _c.mutation.InputTokens(); !ok {
		return &ValidationError{Name: "input_tokens", err: errors.New(`ent: missing required field "AIGenerationLog.input_tokens"`)}
	}
	if _, ok := _c.mutation.OutputTokens(); !ok {
		return &ValidationError{Name: "output_tokens", err: errors.New(`ent: missing required field "AIGenerationLog.output_tokens"`)}
	}
	if _, ok := _c.mutation.Cost(); !ok {
		return &ValidationError{Name: "cost", err: errors.New(`ent: missing required field "AIGenerationLog.cost"`)}
	}
	return nil
}

func (_c *AIGenerationLogCreate) sqlSave(ctx context.Context) (*AIGenerationLog, error) {
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

func (_c *AIGenerationLogCreate) createSpec() (*AIGenerationLog, *sqlgraph.CreateSpec) {
	var (
		_node = &AIGenerationLog{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(aigenerationlog.Table, sqlgraph.NewFieldSpec(aigenerationlog.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(aigenerationlog.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(aigenerationlog.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.ProblemType(); ok {
		_spec.SetField(aigenerationlog.FieldProblemType, field.TypeString, value)
		_node.ProblemType = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(aigenerationlog.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.Success(); ok {
		_spec.SetField(aigenerationlog.FieldSuccess, field.TypeBool, value)
		_node.Success = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(aigenerationlog.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = value
	}
	if value, ok := _c.mutation.ProblemID(); ok {
		_spec.SetField(aigenerationlog.FieldProblemID, field.TypeUUID, value)
		_node.ProblemID = &value
	}
	if value, ok := _c.mutation.InputTokens(); ok {
		_spec.SetField(aigenerationlog.FieldInputTokens, field.TypeInt, value)
		_node.InputTokens = value
	}
	if value, ok := _c.mutation.OutputTokens(); ok {
		_spec.SetField(aigenerationlog.FieldOutputTokens, field.TypeInt, value)
		_node.OutputTokens = value
	}
	if value, ok := _c.mutation.Cost(); ok {
		_spec.SetField(aigenerationlog.FieldCost, field.TypeFloat64, value)
		_node.Cost = value
	}
	return _node, _spec
}

// AIGenerationLogCreateBulk is the builder for creating many AIGenerationLog entities in bulk.
type AIGenerationLogCreateBulk struct {
	config
	err      error
	builders []*AIGenerationLogCreate
}

// Save creates the AIGenerationLog entities in the database.
func (_c *AIGenerationLogCreateBulk) Save(ctx context.Context) ([]*AIGenerationLog, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AIGenerationLog, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AIGenerationLogMutation)
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
func (_c *AIGenerationLogCreateBulk) SaveX(ctx context.Context) []*AIGenerationLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AIGenerationLogCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AIGenerationLogCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
