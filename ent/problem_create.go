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
	"github.com/thinkwise-edu/thinkwise/ent/problemstep"
)

// ProblemCreate is the builder for creating a Problem entity.
type ProblemCreate struct {
	config
	mutation *ProblemMutation
	hooks    []Hook
}

// SetProblemType sets the "problem_type" field.
func (_c *ProblemCreate) SetProblemType(v problem.ProblemType) *ProblemCreate {
	_c.mutation.SetProblemType(v)
	return _c
}

// SetAnswerFormat sets the "answer_format" field.
func (_c *ProblemCreate) SetAnswerFormat(v problem.AnswerFormat) *ProblemCreate {
	_c.mutation.SetAnswerFormat(v)
	return _c
}

// SetNillableAnswerFormat sets the "answer_format" field if the given value is not nil.
func (_c *ProblemCreate) SetNillableAnswerFormat(v *problem.AnswerFormat) *ProblemCreate {
	if v != nil {
		_c.SetAnswerFormat(*v)
	}
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *ProblemCreate) SetDifficulty(v problem.Difficulty) *ProblemCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *ProblemCreate) SetTitle(v string) *ProblemCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *ProblemCreate) SetContent(v string) *ProblemCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_c *ProblemCreate) SetCorrectAnswer(v string) *ProblemCreate {
	_c.mutation.SetCorrectAnswer(v)
	return _c
}

// SetExplanation sets the "explanation" field.
func (_c *ProblemCreate) SetExplanation(v string) *ProblemCreate {
	_c.mutation.SetExplanation(v)
	return _c
}

// SetNillableExplanation sets the "explanation" field if the given value is not nil.
func (_c *ProblemCreate) SetNillableExplanation(v *string) *ProblemCreate {
	if v != nil {
		_c.SetExplanation(*v)
	}
	return _c
}

// SetSubject sets the "subject" field.
func (_c *ProblemCreate) SetSubject(v string) *ProblemCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_c *ProblemCreate) SetNillableSubject(v *string) *ProblemCreate {
	if v != nil {
		_c.SetSubject(*v)
	}
	return _c
}

// SetGrade sets the "grade" field.
func (_c *ProblemCreate) SetGrade(v int) *ProblemCreate {
	_c.mutation.SetGrade(v)
	return _c
}

// SetOptions sets the "options" field.
func (_c *ProblemCreate) SetOptions(v []string) *ProblemCreate {
	_c.mutation.SetOptions(v)
	return _c
}

// SetHints sets the "hints" field.
func (_c *ProblemCreate) SetHints(v []string) *ProblemCreate {
	_c.mutation.SetHints(v)
	return _c
}

// SetGeneratedBy sets the "generated_by" field.
func (_c *ProblemCreate) SetGeneratedBy(v problem.GeneratedBy) *ProblemCreate {
	_c.mutation.SetGeneratedBy(v)
	return _c
}

// SetGeneratorModel sets the "generator_model" field.
func (_c *ProblemCreate) SetGeneratorModel(v string) *ProblemCreate {
	_c.mutation.SetGeneratorModel(v)
	return _c
}

// SetNillableGeneratorModel sets the "generator_model" field if the given value is not nil.
func (_c *ProblemCreate) SetNillableGeneratorModel(v *string) *ProblemCreate {
	if v != nil {
		_c.SetGeneratorModel(*v)
	}
	return _c
}

// SetReviewed sets the "reviewed" field.
func (_c *ProblemCreate) SetReviewed(v bool) *ProblemCreate {
	_c.mutation.SetReviewed(v)
	return _c
}

// SetNillableReviewed sets the "reviewed" field if the given value is not nil.
func (_c *ProblemCreate) SetNillableReviewed(v *bool) *ProblemCreate {
	if v != nil {
		_c.SetReviewed(*v)
	}
	return _c
}

// SetActive sets the "active" field.
func (_c *ProblemCreate) SetActive(v bool) *ProblemCreate {
	_c.mutation.SetActive(v)
	return _c
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_c *ProblemCreate) SetNillableActive(v *bool) *ProblemCreate {
	if v != nil {
		_c.SetActive(*v)
	}
	return _c
}

// SetTotalAttempts sets the "total_attempts" field.
func (_c *ProblemCreate) SetTotalAttempts(v int) *ProblemCreate {
	_c.mutation.SetTotalAttempts(v)
	return _c
}

// SetNillableTotalAttempts sets the "total_attempts" field if the given value is not nil.
func (_c *ProblemCreate) SetNillableTotalAttempts(v *int) *ProblemCreate {
	if v != nil {
		_c.SetTotalAttempts(*v)
	}
	return _c
}

// SetCorrectAttempts sets the "correct_attempts" field.
func (_c *ProblemCreate) SetCorrectAttempts(v int) *ProblemCreate {
	_c.mutation.SetCorrectAttempts(v)
	return _c
}

// SetNillableCorrectAttempts sets the "correct_attempts" field if the given value is not nil.
func (_c *ProblemCreate) SetNillableCorrectAttempts(v *int) *ProblemCreate {
	if v != nil {
		_c.SetCorrectAttempts(*v)
	}
	return _c
}

// SetCorrectRate sets the "correct_rate" field.
func (_c *ProblemCreate) SetCorrectRate(v int) *ProblemCreate {
	_c.mutation.SetCorrectRate(v)
	return _c
}

// SetNillableCorrectRate sets the "correct_rate" field if the given value is not nil.
func (_c *ProblemCreate) SetNillableCorrectRate(v *int) *ProblemCreate {
	if v != nil {
		_c.SetCorrectRate(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ProblemCreate) SetCreatedAt(v time.Time) *ProblemCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ProblemCreate) SetNillableCreatedAt(v *time.Time) *ProblemCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ProblemCreate) SetUpdatedAt(v time.Time) *ProblemCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ProblemCreate) SetNillableUpdatedAt(v *time.Time) *ProblemCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ProblemCreate) SetID(v uuid.UUID) *ProblemCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ProblemCreate) SetNillableID(v *uuid.UUID) *ProblemCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddStepIDs adds the "steps" edge to the ProblemStep entity by IDs.
func (_c *ProblemCreate) AddStepIDs(ids ...uuid.UUID) *ProblemCreate {
	_c.mutation.AddStepIDs(ids...)
	return _c
}

// AddSteps adds the "steps" edges to the ProblemStep entity.
func (_c *ProblemCreate) AddSteps(v ...*ProblemStep) *ProblemCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddStepIDs(ids...)
}

// AddAttemptIDs adds the "attempts" edge to the Attempt entity by IDs.
func (_c *ProblemCreate) AddAttemptIDs(ids ...uuid.UUID) *ProblemCreate {
	_c.mutation.AddAttemptIDs(ids...)
	return _c
}

// AddAttempts adds the "attempts" edges to the Attempt entity.
func (_c *ProblemCreate) AddAttempts(v ...*Attempt) *ProblemCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAttemptIDs(ids...)
}

// Mutation returns the ProblemMutation object of the builder.
func (_c *ProblemCreate) Mutation() *ProblemMutation {
	return _c.mutation
}

// Save creates the Problem in the database.
func (_c *ProblemCreate) Save(ctx context.Context) (*Problem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProblemCreate) SaveX(ctx context.Context) *Problem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProblemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProblemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProblemCreate) defaults() {
	if _, ok := _c.mutation.AnswerFormat(); !ok {
		v := problem.DefaultAnswerFormat
		_c.mutation.SetAnswerFormat(v)
	}
	if _, ok := _c.mutation.Explanation(); !ok {
		v := problem.DefaultExplanation
		_c.mutation.SetExplanation(v)
	}
	if _, ok := _c.mutation.Subject(); !ok {
		v := problem.DefaultSubject
		_c.mutation.SetSubject(v)
	}
	if _, ok := _c.mutation.GeneratorModel(); !ok {
		v := problem.DefaultGeneratorModel
		_c.mutation.SetGeneratorModel(v)
	}
	if _, ok := _c.mutation.Reviewed(); !ok {
		v := problem.DefaultReviewed
		_c.mutation.SetReviewed(v)
	}
	if _, ok := _c.mutation.Active(); !ok {
		v := problem.DefaultActive
		_c.mutation.SetActive(v)
	}
	if _, ok := _c.mutation.TotalAttempts(); !ok {
		v := problem.DefaultTotalAttempts
		_c.mutation.SetTotalAttempts(v)
	}
	if _, ok := _c.mutation.CorrectAttempts(); !ok {
		v := problem.DefaultCorrectAttempts
		_c.mutation.SetCorrectAttempts(v)
	}
	if _, ok := _c.mutation.CorrectRate(); !ok {
		v := problem.DefaultCorrectRate
		_c.mutation.SetCorrectRate(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := problem.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := problem.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := problem.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProblemCreate) check() error {
	if _, ok := _c.mutation.ProblemType(); !ok {
		return &ValidationError{Name: "problem_type", err: errors.New(`ent: missing required field "Problem.problem_type"`)}
	}
	if v, ok := _c.mutation.ProblemType(); ok {
		if err := problem.ProblemTypeValidator(v); err != nil {
			return &ValidationError{Name: "problem_type", err: fmt.Errorf(`ent: validator failed for field "Problem.problem_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AnswerFormat(); !ok {
		return &ValidationError{Name: "answer_format", err: errors.New(`ent: missing required field "Problem.answer_format"`)}
	}
	if v, ok := _c.mutation.AnswerFormat(); ok {
		if err := problem.AnswerFormatValidator(v); err != nil {
			return &ValidationError{Name: "answer_format", err: fmt.Errorf(`ent: validator failed for field "Problem.answer_format": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "Problem.difficulty"`)}
	}
	if v, ok := _c.mutation.Difficulty(); ok {
		if err := problem.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "Problem.difficulty": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Problem.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := problem.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Problem.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "Problem.content"`)}
	}
	if _, ok := _c.mutation.CorrectAnswer(); !ok {
		return &ValidationError{Name: "correct_answer", err: errors.New(`ent: missing required field "Problem.correct_answer"`)}
	}
	if _, ok := _c.mutation.Explanation(); !ok {
		return &ValidationError{Name: "explanation", err: errors.New(`ent: missing required field "Problem.explanation"`)}
	}
	if _, ok := _c.mutation.Subject(); !ok {
		return &ValidationError{Name: "subject", err: errors.New(`ent: missing required field "Problem.subject"`)}
	}
	if _, ok := _c.mutation.Grade(); !ok {
		return &ValidationError{Name: "grade", err: errors.New(`ent: missing required field "Problem.grade"`)}
	}
	if v, ok := _c.mutation.Grade(); ok {
		if err := problem.GradeValidator(v); err != nil {
			return &ValidationError{Name: "grade", err: fmt.Errorf(`ent: validator failed for field "Problem.grade": %w`, err)}
		}
	}
	if _, ok := _c.mutation.GeneratedBy(); !ok {
		return &ValidationError{Name: "generated_by", err: errors.New(`ent: missing required field "Problem.generated_by"`)}
	}
	if v, ok := _c.mutation.GeneratedBy(); ok {
		if err := problem.GeneratedByValidator(v); err != nil {
			return &ValidationError{Name: "generated_by", err: fmt.Errorf(`ent: validator failed for field "Problem.generated_by": %w`, err)}
		}
	}
	if _, ok := _c.mutation.GeneratorModel(); !ok {
		return &ValidationError{Name: "generator_model", err: errors.New(`ent: missing required field "Problem.generator_model"`)}
	}
	if _, ok := _c.mutation.Reviewed(); !ok {
		return &ValidationError{Name: "reviewed", err: errors.New(`ent: missing required field "Problem.reviewed"`)}
	}
	if _, ok := _c.mutation.Active(); !ok {
		return &ValidationError{Name: "active", err: errors.New(`ent: missing required field "Problem.active"`)}
	}
	if _, ok := _c.mutation.TotalAttempts(); !ok {
		return &ValidationError{Name: "total_attempts", err: errors.New(`ent: missing required field "Problem.total_attempts"`)}
	}
	if _, ok := _c.mutation.CorrectAttempts(); !ok {
		return &ValidationError{Name: "correct_attempts", err: errors.New(`ent: missing required field "Problem.correct_attempts"`)}
	}
	if _, ok := _c.mutation.CorrectRate(); !ok {
		return &ValidationError{Name: "correct_rate", err: errors.New(`ent: missing required field "Problem.correct_rate"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Problem.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Problem.updated_at"`)}
	}
	return nil
}

func (_c *ProblemCreate) sqlSave(ctx context.Context) (*Problem, error) {
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

func (_c *ProblemCreate) createSpec() (*Problem, *sqlgraph.CreateSpec) {
	var (
		_node = &Problem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(problem.Table, sqlgraph.NewFieldSpec(problem.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.ProblemType(); ok {
		_spec.SetField(problem.FieldProblemType, field.TypeEnum, value)
		_node.ProblemType = value
	}
	if value, ok := _c.mutation.AnswerFormat(); ok {
		_spec.SetField(problem.FieldAnswerFormat, field.TypeEnum, value)
		_node.AnswerFormat = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(problem.FieldDifficulty, field.TypeEnum, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(problem.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(problem.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.CorrectAnswer(); ok {
		_spec.SetField(problem.FieldCorrectAnswer, field.TypeString, value)
		_node.CorrectAnswer = value
	}
	if value, ok := _c.mutation.Explanation(); ok {
		_spec.SetField(problem.FieldExplanation, field.TypeString, value)
		_node.Explanation = value
	}
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(problem.FieldSubject, field.TypeString, value)
		_node.Subject = value
	}
	if value, ok := _c.mutation.Grade(); ok {
		_spec.SetField(problem.FieldGrade, field.TypeInt, value)
		_node.Grade = value
	}
	if value, ok := _c.mutation.Options(); ok {
		_spec.SetField(problem.FieldOptions, field.TypeJSON, value)
		_node.Options = value
	}
	if value, ok := _c.mutation.Hints(); ok {
		_spec.SetField(problem.FieldHints, field.TypeJSON, value)
		_node.Hints = value
	}
	if value, ok := _c.mutation.GeneratedBy(); ok {
		_spec.SetField(problem.FieldGeneratedBy, field.TypeEnum, value)
		_node.GeneratedBy = value
	}
	if value, ok := _c.mutation.GeneratorModel(); ok {
		_spec.SetField(problem.FieldGeneratorModel, field.TypeString, value)
		_node.GeneratorModel = value
	}
	if value, ok := _c.mutation.Reviewed(); ok {
		_spec.SetField(problem.FieldReviewed, field.TypeBool, value)
		_node.Reviewed = value
	}
	if value, ok := _c.mutation.Active(); ok {
		_spec.SetField(problem.FieldActive, field.TypeBool, value)
		_node.Active = value
	}
	if value, ok := _c.mutation.TotalAttempts(); ok {
		_spec.SetField(problem.FieldTotalAttempts, field.TypeInt, value)
		_node.TotalAttempts = value
	}
	if value, ok := _c.mutation.CorrectAttempts(); ok {
		_spec.SetField(problem.FieldCorrectAttempts, field.TypeInt, value)
		_node.CorrectAttempts = value
	}
	if value, ok := _c.mutation.CorrectRate(); ok {
		_spec.SetField(problem.FieldCorrectRate, field.TypeInt, value)
		_node.CorrectRate = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(problem.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(problem.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.StepsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   problem.StepsTable,
			Columns: []string{problem.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(problemstep.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AttemptsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   problem.AttemptsTable,
			Columns: []string{problem.AttemptsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(attempt.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ProblemCreateBulk is the builder for creating many Problem entities in bulk.
type ProblemCreateBulk struct {
	config
	err      error
	builders []*ProblemCreate
}

// Save creates the Problem entities in the database.
func (_c *ProblemCreateBulk) Save(ctx context.Context) ([]*Problem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Problem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProblemMutation)
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
func (_c *ProblemCreateBulk) SaveX(ctx context.Context) []*Problem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProblemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProblemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
