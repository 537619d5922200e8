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
	"github.com/thinkwise-edu/thinkwise/ent/attempt"
	"github.com/thinkwise-edu/thinkwise/ent/problem"
	"github.com/thinkwise-edu/thinkwise/ent/schema"
	"github.com/thinkwise-edu/thinkwise/ent/user"
)

// AttemptCreate is the builder for creating a Attempt entity.
type AttemptCreate struct {
	config
	mutation *AttemptMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *AttemptCreate) SetUserID(v uuid.UUID) *AttemptCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetProblemID sets the "problem_id" field.
func (_c *AttemptCreate) SetProblemID(v uuid.UUID) *AttemptCreate {
	_c.mutation.SetProblemID(v)
	return _c
}

// SetAnswer sets the "answer" field.
func (_c *AttemptCreate) SetAnswer(v string) *AttemptCreate {
	_c.mutation.SetAnswer(v)
	return _c
}

// SetIsCorrect sets the "is_correct" field.
func (_c *AttemptCreate) SetIsCorrect(v bool) *AttemptCreate {
	_c.mutation.SetIsCorrect(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *AttemptCreate) SetScore(v int) *AttemptCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetFeedback sets the "feedback" field.
func (_c *AttemptCreate) SetFeedback(v string) *AttemptCreate {
	_c.mutation.SetFeedback(v)
	return _c
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (_c *AttemptCreate) SetNillableFeedback(v *string) *AttemptCreate {
	if v != nil {
		_c.SetFeedback(*v)
	}
	return _c
}

// SetStepResults sets the "step_results" field.
func (_c *AttemptCreate) SetStepResults(v []schema.StepOutcome) *AttemptCreate {
	_c.mutation.SetStepResults(v)
	return _c
}

// SetGradingMethod sets the "grading_method" field.
func (_c *AttemptCreate) SetGradingMethod(v string) *AttemptCreate {
	_c.mutation.SetGradingMethod(v)
	return _c
}

// SetNillableGradingMethod sets the "grading_method" field if the given value is not nil.
func (_c *AttemptCreate) SetNillableGradingMethod(v *string) *AttemptCreate {
	if v != nil {
		_c.SetGradingMethod(*v)
	}
	return _c
}

// SetTimeSpent sets the "time_spent" field.
func (_c *AttemptCreate) SetTimeSpent(v int) *AttemptCreate {
	_c.mutation.SetTimeSpent(v)
	return _c
}

// SetNillableTimeSpent sets the "time_spent" field if the given value is not nil.
func (_c *AttemptCreate) SetNillableTimeSpent(v *int) *AttemptCreate {
	if v != nil {
		_c.SetTimeSpent(*v)
	}
	return _c
}

// SetHintUsed sets the "hint_used" field.
func (_c *AttemptCreate) SetHintUsed(v bool) *AttemptCreate {
	_c.mutation.SetHintUsed(v)
	return _c
}

// SetNillableHintUsed sets the "hint_used" field if the given value is not nil.
func (_c *AttemptCreate) SetNillableHintUsed(v *bool) *AttemptCreate {
	if v != nil {
		_c.SetHintUsed(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AttemptCreate) SetCreatedAt(v time.Time) *AttemptCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AttemptCreate) SetNillableCreatedAt(v *time.Time) *AttemptCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AttemptCreate) SetID(v uuid.UUID) *AttemptCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *AttemptCreate) SetNillableID(v *uuid.UUID) *AttemptCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetProblem sets the "problem" edge to the Problem entity.
func (_c *AttemptCreate) SetProblem(v *Problem) *AttemptCreate {
	return _c.SetProblemID(v.ID)
}

// SetUser sets the "user" edge to the User entity.
func (_c *AttemptCreate) SetUser(v *User) *AttemptCreate {
	return _c.SetUserID(v.ID)
}

// Mutation returns the AttemptMutation object of the builder.
func (_c *AttemptCreate) Mutation() *AttemptMutation {
	return _c.mutation
}

// Save creates the Attempt in the database.
func (_c *AttemptCreate) Save(ctx context.Context) (*Attempt, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AttemptCreate) SaveX(ctx context.Context) *Attempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AttemptCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AttemptCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AttemptCreate) defaults() {
	if _, ok := _c.mutation.Feedback(); !ok {
		v := attempt.DefaultFeedback
		_c.mutation.SetFeedback(v)
	}
	if _, ok := _c.mutation.GradingMethod(); !ok {
		v := attempt.DefaultGradingMethod
		_c.mutation.SetGradingMethod(v)
	}
	if _, ok := _c.mutation.TimeSpent(); !ok {
		v := attempt.DefaultTimeSpent
		_c.mutation.SetTimeSpent(v)
	}
	if _, ok := _c.mutation.HintUsed(); !ok {
		v := attempt.DefaultHintUsed
		_c.mutation.SetHintUsed(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := attempt.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := attempt.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AttemptCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Attempt.user_id"`)}
	}
	if _, ok := _c.mutation.ProblemID(); !ok {
		return &ValidationError{Name: "problem_id", err: errors.New(`ent: missing required field "Attempt.problem_id"`)}
	}
	if _, ok := _c.mutation.Answer(); !ok {
		return &ValidationError{Name: "answer", err: errors.New(`ent: missing required field "Attempt.answer"`)}
	}
	if _, ok := _c.mutation.IsCorrect(); !ok {
		return &ValidationError{Name: "is_correct", err: errors.New(`ent: missing required field "Attempt.is_correct"`)}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "Attempt.score"`)}
	}
	if v, ok := _c.mutation.Score(); ok {
		if err := attempt.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "Attempt.score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Feedback(); !ok {
		return &ValidationError{Name: "feedback", err: errors.New(`ent: missing required field "Attempt.feedback"`)}
	}
	if _, ok := _c.mutation.GradingMethod(); !ok {
		return &ValidationError{Name: "grading_method", err: errors.New(`ent: missing required field "Attempt.grading_method"`)}
	}
	if _, ok := _c.mutation.TimeSpent(); !ok {
		return &ValidationError{Name: "time_spent", err: errors.New(`ent: missing required field "Attempt.time_spent"`)}
	}
	if v, ok := _c.mutation.TimeSpent(); ok {
		if err := attempt.TimeSpentValidator(v); err != nil {
			return &ValidationError{Name: "time_spent", err: fmt.Errorf(`ent: validator failed for field "Attempt.time_spent": %w`, err)}
		}
	}
	if _, ok := _c.mutation.HintUsed(); !ok {
		return &ValidationError{Name: "hint_used", err: errors.New(`ent: missing required field "Attempt.hint_used"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Attempt.created_at"`)}
	}
	if len(_c.mutation.ProblemIDs()) == 0 {
		return &ValidationError{Name: "problem", err: errors.New(`ent: missing required edge "Attempt.problem"`)}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`ent: missing required edge "Attempt.user"`)}
	}
	return nil
}

func (_c *AttemptCreate) sqlSave(ctx context.Context) (*Attempt, error) {
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

func (_c *AttemptCreate) createSpec() (*Attempt, *sqlgraph.CreateSpec) {
	var (
		_node = &Attempt{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(attempt.Table, sqlgraph.NewFieldSpec(attempt.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Answer(); ok {
		_spec.SetField(attempt.FieldAnswer, field.TypeString, value)
		_node.Answer = value
	}
	if value, ok := _c.mutation.IsCorrect(); ok {
		_spec.SetField(attempt.FieldIsCorrect, field.TypeBool, value)
		_node.IsCorrect = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(attempt.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.Feedback(); ok {
		_spec.SetField(attempt.FieldFeedback, field.TypeString, value)
		_node.Feedback = value
	}
	if value, ok := _c.mutation.StepResults(); ok {
		_spec.SetField(attempt.FieldStepResults, field.TypeJSON, value)
		_node.StepResults = value
	}
	if value, ok := _c.mutation.GradingMethod(); ok {
		_spec.SetField(attempt.FieldGradingMethod, field.TypeString, value)
		_node.GradingMethod = value
	}
	if value, ok := _c.mutation.TimeSpent(); ok {
		_spec.SetField(attempt.FieldTimeSpent, field.TypeInt, value)
		_node.TimeSpent = value
	}
	if value, ok := _c.mutation.HintUsed(); ok {
		_spec.SetField(attempt.FieldHintUsed, field.TypeBool, value)
		_node.HintUsed = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(attempt.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ProblemIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   attempt.ProblemTable,
			Columns: []string{attempt.ProblemColumn},
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
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   attempt.UserTable,
			Columns: []string{attempt.UserColumn},
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

// AttemptCreateBulk is the builder for creating many Attempt entities in bulk.
type AttemptCreateBulk struct {
	config
	err      error
	builders []*AttemptCreate
}

// Save creates the Attempt entities in the database.
func (_c *AttemptCreateBulk) Save(ctx context.Context) ([]*Attempt, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Attempt, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AttemptMutation)
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
func (_c *AttemptCreateBulk) SaveX(ctx context.Context) []*Attempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AttemptCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AttemptCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
