// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/thinkwise-edu/thinkwise/ent/attempt"
	"github.com/thinkwise-edu/thinkwise/ent/predicate"
	"github.com/thinkwise-edu/thinkwise/ent/problem"
	"github.com/thinkwise-edu/thinkwise/ent/problemstep"
)

// ProblemUpdate is the builder for updating Problem entities.
type ProblemUpdate struct {
	config
	hooks    []Hook
	mutation *ProblemMutation
}

// Where appends a list predicates to the ProblemUpdate builder.
func (_u *ProblemUpdate) Where(ps ...predicate.Problem) *ProblemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProblemType sets the "problem_type" field.
func (_u *ProblemUpdate) SetProblemType(v problem.ProblemType) *ProblemUpdate {
	_u.mutation.SetProblemType(v)
	return _u
}

// SetNillableProblemType sets the "problem_type" field if the given value is not nil.
func (_u *ProblemUpdate) SetNillableProblemType(v *problem.ProblemType) *ProblemUpdate {
	if v != nil {
		_u.SetProblemType(*v)
	}
	return _u
}

// SetAnswerFormat sets the "answer_format" field.
func (_u *ProblemUpdate) SetAnswerFormat(v problem.AnswerFormat) *ProblemUpdate {
	_u.mutation.SetAnswerFormat(v)
	return _u
}

// SetNillableAnswerFormat sets the "answer_format" field if the given value is not nil.
func (_u *ProblemUpdate) SetNillableAnswerFormat(v *problem.AnswerFormat) *ProblemUpdate {
	if v != nil {
		_u.SetAnswerFormat(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *ProblemUpdate) SetDifficulty(v problem.Difficulty) *ProblemUpdate {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *ProblemUpdate) SetNillableDifficulty(v *problem.Difficulty) *ProblemUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *ProblemUpdate) SetTitle(v string) *ProblemUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ProblemUpdate) SetNillableTitle(v *string) *ProblemUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *ProblemUpdate) SetContent(v string) *ProblemUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *ProblemUpdate) SetNillableContent(v *string) *ProblemUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_u *ProblemUpdate) SetCorrectAnswer(v string) *ProblemUpdate {
	_u.mutation.SetCorrectAnswer(v)
	return _u
}

// SetNillableCorrectAnswer sets the "correct_answer" field if the given value is not nil.
func (_u *ProblemUpdate) SetNillableCorrectAnswer(v *string) *ProblemUpdate {
	if v != nil {
		_u.SetCorrectAnswer(*v)
	}
	return _u
}

// SetExplanation sets the "explanation" field.
func (_u *ProblemUpdate) SetExplanation(v string) *ProblemUpdate {
	_u.mutation.SetExplanation(v)
	return _u
}

// SetNillableExplanation sets the "explanation" field if the given value is not nil.
func (_u *ProblemUpdate) SetNillableExplanation(v *string) *ProblemUpdate {
	if v != nil {
		_u.SetExplanation(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *ProblemUpdate) SetSubject(v string) *ProblemUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *ProblemUpdate) SetNillableSubject(v *string) *ProblemUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetGrade sets the "grade" field.
func (_u *ProblemUpdate) SetGrade(v int) *ProblemUpdate {
	_u.mutation.ResetGrade()
	_u.mutation.SetGrade(v)
	return _u
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (_u *ProblemUpdate) SetNillableGrade(v *int) *ProblemUpdate {
	if v != nil {
		_u.SetGrade(*v)
	}
	return _u
}

// AddGrade adds value to the "grade" field.
func (_u *ProblemUpdate) AddGrade(v int) *ProblemUpdate {
	_u.mutation.AddGrade(v)
	return _u
}

// SetOptions sets the "options" field.
func (_u *ProblemUpdate) SetOptions(v []string) *ProblemUpdate {
	_u.mutation.SetOptions(v)
	return _u
}

// AppendOptions appends value to the "options" field.
func (_u *ProblemUpdate) AppendOptions(v []string) *ProblemUpdate {
	_u.mutation.AppendOptions(v)
	return _u
}

// ClearOptions clears the value of the "options" field.
func (_u *ProblemUpdate) ClearOptions() *ProblemUpdate {
	_u.mutation.ClearOptions()
	return _u
}

// SetHints sets the "hints" field.
func (_u *ProblemUpdate) SetHints(v []string) *ProblemUpdate {
	_u.mutation.SetHints(v)
	return _u
}

// AppendHints appends value to the "hints" field.
func (_u *ProblemUpdate) AppendHints(v []string) *ProblemUpdate {
	_u.mutation.AppendHints(v)
	return _u
}

// ClearHints clears the value of the "hints" field.
func (_u *ProblemUpdate) ClearHints() *ProblemUpdate {
	_u.mutation.ClearHints()
	return _u
}

// SetGeneratedBy sets the "generated_by" field.
func (_u *ProblemUpdate) SetGeneratedBy(v problem.GeneratedBy) *ProblemUpdate {
	_u.mutation.SetGeneratedBy(v)
	return _u
}

// SetNillableGeneratedBy sets the "generated_by" field if the given value is not nil.
func (_u *ProblemUpdate) SetNillableGeneratedBy(v *problem.GeneratedBy) *ProblemUpdate {
	if v != nil {
		_u.SetGeneratedBy(*v)
	}
	return _u
}

// SetGeneratorModel sets the "generator_model" field.
func (_u *ProblemUpdate) SetGeneratorModel(v string) *ProblemUpdate {
	_u.mutation.SetGeneratorModel(v)
	return _u
}

// SetNillableGeneratorModel sets the "generator_model" field if the given value is not nil.
func (_u *ProblemUpdate) SetNillableGeneratorModel(v *string) *ProblemUpdate {
	if v != nil {
		_u.SetGeneratorModel(*v)
	}
	return _u
}

// SetReviewed sets the "reviewed" field.
func (_u *ProblemUpdate) SetReviewed(v bool) *ProblemUpdate {
	_u.mutation.SetReviewed(v)
	return _u
}

// SetNillableReviewed sets the "reviewed" field if the given value is not nil.
func (_u *ProblemUpdate) SetNillableReviewed(v *bool) *ProblemUpdate {
	if v != nil {
		_u.SetReviewed(*v)
	}
	return _u
}

// SetActive sets the "active" field.
func (_u *ProblemUpdate) SetActive(v bool) *ProblemUpdate {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *ProblemUpdate) SetNillableActive(v *bool) *ProblemUpdate {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetTotalAttempts sets the "total_attempts" field.
func (_u *ProblemUpdate) SetTotalAttempts(v int) *ProblemUpdate {
	_u.mutation.ResetTotalAttempts()
	_u.mutation.SetTotalAttempts(v)
	return _u
}

// SetNillableTotalAttempts sets the "total_attempts" field if the given value is not nil.
func (_u *ProblemUpdate) SetNillableTotalAttempts(v *int) *ProblemUpdate {
	if v != nil {
		_u.SetTotalAttempts(*v)
	}
	return _u
}

// AddTotalAttempts adds value to the "total_attempts" field.
func (_u *ProblemUpdate) AddTotalAttempts(v int) *ProblemUpdate {
	_u.mutation.AddTotalAttempts(v)
	return _u
}

// SetCorrectAttempts sets the "correct_attempts" field.
func (_u *ProblemUpdate) SetCorrectAttempts(v int) *ProblemUpdate {
	_u.mutation.ResetCorrectAttempts()
	_u.mutation.SetCorrectAttempts(v)
	return _u
}

// SetNillableCorrectAttempts sets the "correct_attempts" field if the given value is not nil.
func (_u *ProblemUpdate) SetNillableCorrectAttempts(v *int) *ProblemUpdate {
	if v != nil {
		_u.SetCorrectAttempts(*v)
	}
	return _u
}

// AddCorrectAttempts adds value to the "correct_attempts" field.
func (_u *ProblemUpdate) AddCorrectAttempts(v int) *ProblemUpdate {
	_u.mutation.AddCorrectAttempts(v)
	return _u
}

// SetCorrectRate sets the "correct_rate" field.
func (_u *ProblemUpdate) SetCorrectRate(v int) *ProblemUpdate {
	_u.mutation.ResetCorrectRate()
	_u.mutation.SetCorrectRate(v)
	return _u
}

// SetNillableCorrectRate sets the "correct_rate" field if the given value is not nil.
func (_u *ProblemUpdate) SetNillableCorrectRate(v *int) *ProblemUpdate {
	if v != nil {
		_u.SetCorrectRate(*v)
	}
	return _u
}

// AddCorrectRate adds value to the "correct_rate" field.
func (_u *ProblemUpdate) AddCorrectRate(v int) *ProblemUpdate {
	_u.mutation.AddCorrectRate(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProblemUpdate) SetUpdatedAt(v time.Time) *ProblemUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddStepIDs adds the "steps" edge to the ProblemStep entity by IDs.
func (_u *ProblemUpdate) AddStepIDs(ids ...uuid.UUID) *ProblemUpdate {
	_u.mutation.AddStepIDs(ids...)
	return _u
}

// AddSteps adds the "steps" edges to the ProblemStep entity.
func (_u *ProblemUpdate) AddSteps(v ...*ProblemStep) *ProblemUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStepIDs(ids...)
}

// AddAttemptIDs adds the "attempts" edge to the Attempt entity by IDs.
func (_u *ProblemUpdate) AddAttemptIDs(ids ...uuid.UUID) *ProblemUpdate {
	_u.mutation.AddAttemptIDs(ids...)
	return _u
}

// AddAttempts adds the "attempts" edges to the Attempt entity.
func (_u *ProblemUpdate) AddAttempts(v ...*Attempt) *ProblemUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAttemptIDs(ids...)
}

// Mutation returns the ProblemMutation object of the builder.
func (_u *ProblemUpdate) Mutation() *ProblemMutation {
	return _u.mutation
}

// ClearSteps clears all "steps" edges to the ProblemStep entity.
func (_u *ProblemUpdate) ClearSteps() *ProblemUpdate {
	_u.mutation.ClearSteps()
	return _u
}

// RemoveStepIDs removes the "steps" edge to ProblemStep entities by IDs.
func (_u *ProblemUpdate) RemoveStepIDs(ids ...uuid.UUID) *ProblemUpdate {
	_u.mutation.RemoveStepIDs(ids...)
	return _u
}

// RemoveSteps removes "steps" edges to ProblemStep entities.
func (_u *ProblemUpdate) RemoveSteps(v ...*ProblemStep) *ProblemUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStepIDs(ids...)
}

// ClearAttempts clears all "attempts" edges to the Attempt entity.
func (_u *ProblemUpdate) ClearAttempts() *ProblemUpdate {
	_u.mutation.ClearAttempts()
	return _u
}

// RemoveAttemptIDs removes the "attempts" edge to Attempt entities by IDs.
func (_u *ProblemUpdate) RemoveAttemptIDs(ids ...uuid.UUID) *ProblemUpdate {
	_u.mutation.RemoveAttemptIDs(ids...)
	return _u
}

// RemoveAttempts removes "attempts" edges to Attempt entities.
func (_u *ProblemUpdate) RemoveAttempts(v ...*Attempt) *ProblemUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAttemptIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProblemUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProblemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProblemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProblemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProblemUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := problem.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProblemUpdate) check() error {
	if v, ok := _u.mutation.ProblemType(); ok {
		if err := problem.ProblemTypeValidator(v); err != nil {
			return &ValidationError{Name: "problem_type", err: fmt.Errorf(`ent: validator failed for field "Problem.problem_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AnswerFormat(); ok {
		if err := problem.AnswerFormatValidator(v); err != nil {
			return &ValidationError{Name: "answer_format", err: fmt.Errorf(`ent: validator failed for field "Problem.answer_format": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := problem.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "Problem.difficulty": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := problem.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Problem.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Grade(); ok {
		if err := problem.GradeValidator(v); err != nil {
			return &ValidationError{Name: "grade", err: fmt.Errorf(`ent: validator failed for field "Problem.grade": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GeneratedBy(); ok {
		if err := problem.GeneratedByValidator(v); err != nil {
			return &ValidationError{Name: "generated_by", err: fmt.Errorf(`ent: validator failed for field "Problem.generated_by": %w`, err)}
		}
	}
	return nil
}

func (_u *ProblemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(problem.Table, problem.Columns, sqlgraph.NewFieldSpec(problem.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ProblemType(); ok {
		_spec.SetField(problem.FieldProblemType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AnswerFormat(); ok {
		_spec.SetField(problem.FieldAnswerFormat, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(problem.FieldDifficulty, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(problem.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(problem.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorrectAnswer(); ok {
		_spec.SetField(problem.FieldCorrectAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Explanation(); ok {
		_spec.SetField(problem.FieldExplanation, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(problem.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Grade(); ok {
		_spec.SetField(problem.FieldGrade, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGrade(); ok {
		_spec.AddField(problem.FieldGrade, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Options(); ok {
		_spec.SetField(problem.FieldOptions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOptions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, problem.FieldOptions, value)
		})
	}
	if _u.mutation.OptionsCleared() {
		_spec.ClearField(problem.FieldOptions, field.TypeJSON)
	}
	if value, ok := _u.mutation.Hints(); ok {
		_spec.SetField(problem.FieldHints, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedHints(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, problem.FieldHints, value)
		})
	}
	if _u.mutation.HintsCleared() {
		_spec.ClearField(problem.FieldHints, field.TypeJSON)
	}
	if value, ok := _u.mutation.GeneratedBy(); ok {
		_spec.SetField(problem.FieldGeneratedBy, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.GeneratorModel(); ok {
		_spec.SetField(problem.FieldGeneratorModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reviewed(); ok {
		_spec.SetField(problem.FieldReviewed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(problem.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TotalAttempts(); ok {
		_spec.SetField(problem.FieldTotalAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalAttempts(); ok {
		_spec.AddField(problem.FieldTotalAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectAttempts(); ok {
		_spec.SetField(problem.FieldCorrectAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectAttempts(); ok {
		_spec.AddField(problem.FieldCorrectAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectRate(); ok {
		_spec.SetField(problem.FieldCorrectRate, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectRate(); ok {
		_spec.AddField(problem.FieldCorrectRate, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(problem.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.StepsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStepsIDs(); len(nodes) > 0 && !_u.mutation.StepsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StepsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AttemptsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAttemptsIDs(); len(nodes) > 0 && !_u.mutation.AttemptsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AttemptsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{problem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProblemUpdateOne is the builder for updating a single Problem entity.
type ProblemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProblemMutation
}

// SetProblemType sets the "problem_type" field.
func (_u *ProblemUpdateOne) SetProblemType(v problem.ProblemType) *ProblemUpdateOne {
	_u.mutation.SetProblemType(v)
	return _u
}

// SetNillableProblemType sets the "problem_type" field if the given value is not nil.
func (_u *ProblemUpdateOne) SetNillableProblemType(v *problem.ProblemType) *ProblemUpdateOne {
	if v != nil {
		_u.SetProblemType(*v)
	}
	return _u
}

// SetAnswerFormat sets the "answer_format" field.
func (_u *ProblemUpdateOne) SetAnswerFormat(v problem.AnswerFormat) *ProblemUpdateOne {
	_u.mutation.SetAnswerFormat(v)
	return _u
}

// SetNillableAnswerFormat sets the "answer_format" field if the given value is not nil.
func (_u *ProblemUpdateOne) SetNillableAnswerFormat(v *problem.AnswerFormat) *ProblemUpdateOne {
	if v != nil {
		_u.SetAnswerFormat(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *ProblemUpdateOne) SetDifficulty(v problem.Difficulty) *ProblemUpdateOne {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *ProblemUpdateOne) SetNillableDifficulty(v *problem.Difficulty) *ProblemUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *ProblemUpdateOne) SetTitle(v string) *ProblemUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ProblemUpdateOne) SetNillableTitle(v *string) *ProblemUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *ProblemUpdateOne) SetContent(v string) *ProblemUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *ProblemUpdateOne) SetNillableContent(v *string) *ProblemUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_u *ProblemUpdateOne) SetCorrectAnswer(v string) *ProblemUpdateOne {
	_u.mutation.SetCorrectAnswer(v)
	return _u
}

// SetNillableCorrectAnswer sets the "correct_answer" field if the given value is not nil.
func (_u *ProblemUpdateOne) SetNillableCorrectAnswer(v *string) *ProblemUpdateOne {
	if v != nil {
		_u.SetCorrectAnswer(*v)
	}
	return _u
}

// SetExplanation sets the "explanation" field.
func (_u *ProblemUpdateOne) SetExplanation(v string) *ProblemUpdateOne {
	_u.mutation.SetExplanation(v)
	return _u
}

// SetNillableExplanation sets the "explanation" field if the given value is not nil.
func (_u *ProblemUpdateOne) SetNillableExplanation(v *string) *ProblemUpdateOne {
	if v != nil {
		_u.SetExplanation(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *ProblemUpdateOne) SetSubject(v string) *ProblemUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *ProblemUpdateOne) SetNillableSubject(v *string) *ProblemUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetGrade sets the "grade" field.
func (_u *ProblemUpdateOne) SetGrade(v int) *ProblemUpdateOne {
	_u.mutation.ResetGrade()
	_u.mutation.SetGrade(v)
	return _u
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (_u *ProblemUpdateOne) SetNillableGrade(v *int) *ProblemUpdateOne {
	if v != nil {
		_u.SetGrade(*v)
	}
	return _u
}

// AddGrade adds value to the "grade" field.
func (_u *ProblemUpdateOne) AddGrade(v int) *ProblemUpdateOne {
	_u.mutation.AddGrade(v)
	return _u
}

// SetOptions sets the "options" field.
func (_u *ProblemUpdateOne) SetOptions(v []string) *ProblemUpdateOne {
	_u.mutation.SetOptions(v)
	return _u
}

// AppendOptions appends value to the "options" field.
func (_u *ProblemUpdateOne) AppendOptions(v []string) *ProblemUpdateOne {
	_u.mutation.AppendOptions(v)
	return _u
}

// ClearOptions clears the value of the "options" field.
func (_u *ProblemUpdateOne) ClearOptions() *ProblemUpdateOne {
	_u.mutation.ClearOptions()
	return _u
}

// SetHints sets the "hints" field.
func (_u *ProblemUpdateOne) SetHints(v []string) *ProblemUpdateOne {
	_u.mutation.SetHints(v)
	return _u
}

// AppendHints appends value to the "hints" field.
func (_u *ProblemUpdateOne) AppendHints(v []string) *ProblemUpdateOne {
	_u.mutation.AppendHints(v)
	return _u
}

// ClearHints clears the value of the "hints" field.
func (_u *ProblemUpdateOne) ClearHints() *ProblemUpdateOne {
	_u.mutation.ClearHints()
	return _u
}

// SetGeneratedBy sets the "generated_by" field.
func (_u *ProblemUpdateOne) SetGeneratedBy(v problem.GeneratedBy) *ProblemUpdateOne {
	_u.mutation.SetGeneratedBy(v)
	return _u
}

// SetNillableGeneratedBy sets the "generated_by" field if the given value is not nil.
func (_u *ProblemUpdateOne) SetNillableGeneratedBy(v *problem.GeneratedBy) *ProblemUpdateOne {
	if v != nil {
		_u.SetGeneratedBy(*v)
	}
	return _u
}

// SetGeneratorModel sets the "generator_model" field.
func (_u *ProblemUpdateOne) SetGeneratorModel(v string) *ProblemUpdateOne {
	_u.mutation.SetGeneratorModel(v)
	return _u
}

// SetNillableGeneratorModel sets the "generator_model" field if the given value is not nil.
func (_u *ProblemUpdateOne) SetNillableGeneratorModel(v *string) *ProblemUpdateOne {
	if v != nil {
		_u.SetGeneratorModel(*v)
	}
	return _u
}

// SetReviewed sets the "reviewed" field.
func (_u *ProblemUpdateOne) SetReviewed(v bool) *ProblemUpdateOne {
	_u.mutation.SetReviewed(v)
	return _u
}

// SetNillableReviewed sets the "reviewed" field if the given value is not nil.
func (_u *ProblemUpdateOne) SetNillableReviewed(v *bool) *ProblemUpdateOne {
	if v != nil {
		_u.SetReviewed(*v)
	}
	return _u
}

// SetActive sets the "active" field.
func (_u *ProblemUpdateOne) SetActive(v bool) *ProblemUpdateOne {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *ProblemUpdateOne) SetNillableActive(v *bool) *ProblemUpdateOne {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetTotalAttempts sets the "total_attempts" field.
func (_u *ProblemUpdateOne) SetTotalAttempts(v int) *ProblemUpdateOne {
	_u.mutation.ResetTotalAttempts()
	_u.mutation.SetTotalAttempts(v)
	return _u
}

// SetNillableTotalAttempts sets the "total_attempts" field if the given value is not nil.
func (_u *ProblemUpdateOne) SetNillableTotalAttempts(v *int) *ProblemUpdateOne {
	if v != nil {
		_u.SetTotalAttempts(*v)
	}
	return _u
}

// AddTotalAttempts adds value to the "total_attempts" field.
func (_u *ProblemUpdateOne) AddTotalAttempts(v int) *ProblemUpdateOne {
	_u.mutation.AddTotalAttempts(v)
	return _u
}

// SetCorrectAttempts sets the "correct_attempts" field.
func (_u *ProblemUpdateOne) SetCorrectAttempts(v int) *ProblemUpdateOne {
	_u.mutation.ResetCorrectAttempts()
	_u.mutation.SetCorrectAttempts(v)
	return _u
}

// SetNillableCorrectAttempts sets the "correct_attempts" field if the given value is not nil.
func (_u *ProblemUpdateOne) SetNillableCorrectAttempts(v *int) *ProblemUpdateOne {
	if v != nil {
		_u.SetCorrectAttempts(*v)
	}
	return _u
}

// AddCorrectAttempts adds value to the "correct_attempts" field.
func (_u *ProblemUpdateOne) AddCorrectAttempts(v int) *ProblemUpdateOne {
	_u.mutation.AddCorrectAttempts(v)
	return _u
}

// SetCorrectRate sets the "correct_rate" field.
func (_u *ProblemUpdateOne) SetCorrectRate(v int) *ProblemUpdateOne {
	_u.mutation.ResetCorrectRate()
	_u.mutation.SetCorrectRate(v)
	return _u
}

// SetNillableCorrectRate sets the "correct_rate" field if the given value is not nil.
func (_u *ProblemUpdateOne) SetNillableCorrectRate(v *int) *ProblemUpdateOne {
	if v != nil {
		_u.SetCorrectRate(*v)
	}
	return _u
}

// AddCorrectRate adds value to the "correct_rate" field.
func (_u *ProblemUpdateOne) AddCorrectRate(v int) *ProblemUpdateOne {
	_u.mutation.AddCorrectRate(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProblemUpdateOne) SetUpdatedAt(v time.Time) *ProblemUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddStepIDs adds the "steps" edge to the ProblemStep entity by IDs.
func (_u *ProblemUpdateOne) AddStepIDs(ids ...uuid.UUID) *ProblemUpdateOne {
	_u.mutation.AddStepIDs(ids...)
	return _u
}

// AddSteps adds the "steps" edges to the ProblemStep entity.
func (_u *ProblemUpdateOne) AddSteps(v ...*ProblemStep) *ProblemUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStepIDs(ids...)
}

// AddAttemptIDs adds the "attempts" edge to the Attempt entity by IDs.
func (_u *ProblemUpdateOne) AddAttemptIDs(ids ...uuid.UUID) *ProblemUpdateOne {
	_u.mutation.AddAttemptIDs(ids...)
	return _u
}

// AddAttempts adds the "attempts" edges to the Attempt entity.
func (_u *ProblemUpdateOne) AddAttempts(v ...*Attempt) *ProblemUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAttemptIDs(ids...)
}

// Mutation returns the ProblemMutation object of the builder.
func (_u *ProblemUpdateOne) Mutation() *ProblemMutation {
	return _u.mutation
}

// ClearSteps clears all "steps" edges to the ProblemStep entity.
func (_u *ProblemUpdateOne) ClearSteps() *ProblemUpdateOne {
	_u.mutation.ClearSteps()
	return _u
}

// RemoveStepIDs removes the "steps" edge to ProblemStep entities by IDs.
func (_u *ProblemUpdateOne) RemoveStepIDs(ids ...uuid.UUID) *ProblemUpdateOne {
	_u.mutation.RemoveStepIDs(ids...)
	return _u
}

// RemoveSteps removes "steps" edges to ProblemStep entities.
func (_u *ProblemUpdateOne) RemoveSteps(v ...*ProblemStep) *ProblemUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStepIDs(ids...)
}

// ClearAttempts clears all "attempts" edges to the Attempt entity.
func (_u *ProblemUpdateOne) ClearAttempts() *ProblemUpdateOne {
	_u.mutation.ClearAttempts()
	return _u
}

// RemoveAttemptIDs removes the "attempts" edge to Attempt entities by IDs.
func (_u *ProblemUpdateOne) RemoveAttemptIDs(ids ...uuid.UUID) *ProblemUpdateOne {
	_u.mutation.RemoveAttemptIDs(ids...)
	return _u
}

// RemoveAttempts removes "attempts" edges to Attempt entities.
func (_u *ProblemUpdateOne) RemoveAttempts(v ...*Attempt) *ProblemUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAttemptIDs(ids...)
}

// Where appends a list predicates to the ProblemUpdate builder.
func (_u *ProblemUpdateOne) Where(ps ...predicate.Problem) *ProblemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProblemUpdateOne) Select(field string, fields ...string) *ProblemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Problem entity.
func (_u *ProblemUpdateOne) Save(ctx context.Context) (*Problem, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProblemUpdateOne) SaveX(ctx context.Context) *Problem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProblemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProblemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProblemUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := problem.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProblemUpdateOne) check() error {
	if v, ok := _u.mutation.ProblemType(); ok {
		if err := problem.ProblemTypeValidator(v); err != nil {
			return &ValidationError{Name: "problem_type", err: fmt.Errorf(`ent: validator failed for field "Problem.problem_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AnswerFormat(); ok {
		if err := problem.AnswerFormatValidator(v); err != nil {
			return &ValidationError{Name: "answer_format", err: fmt.Errorf(`ent: validator failed for field "Problem.answer_format": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := problem.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "Problem.difficulty": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := problem.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Problem.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Grade(); ok {
		if err := problem.GradeValidator(v); err != nil {
			return &ValidationError{Name: "grade", err: fmt.Errorf(`ent: validator failed for field "Problem.grade": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GeneratedBy(); ok {
		if err := problem.GeneratedByValidator(v); err != nil {
			return &ValidationError{Name: "generated_by", err: fmt.Errorf(`ent: validator failed for field "Problem.generated_by": %w`, err)}
		}
	}
	return nil
}

func (_u *ProblemUpdateOne) sqlSave(ctx context.Context) (_node *Problem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(problem.Table, problem.Columns, sqlgraph.NewFieldSpec(problem.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Problem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, problem.FieldID)
		for _, f := range fields {
			if !problem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != problem.FieldID {
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
	if value, ok := _u.mutation.ProblemType(); ok {
		_spec.SetField(problem.FieldProblemType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AnswerFormat(); ok {
		_spec.SetField(problem.FieldAnswerFormat, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(problem.FieldDifficulty, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(problem.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(problem.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorrectAnswer(); ok {
		_spec.SetField(problem.FieldCorrectAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Explanation(); ok {
		_spec.SetField(problem.FieldExplanation, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(problem.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Grade(); ok {
		_spec.SetField(problem.FieldGrade, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGrade(); ok {
		_spec.AddField(problem.FieldGrade, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Options(); ok {
		_spec.SetField(problem.FieldOptions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOptions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, problem.FieldOptions, value)
		})
	}
	if _u.mutation.OptionsCleared() {
		_spec.ClearField(problem.FieldOptions, field.TypeJSON)
	}
	if value, ok := _u.mutation.Hints(); ok {
		_spec.SetField(problem.FieldHints, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedHints(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, problem.FieldHints, value)
		})
	}
	if _u.mutation.HintsCleared() {
		_spec.ClearField(problem.FieldHints, field.TypeJSON)
	}
	if value, ok := _u.mutation.GeneratedBy(); ok {
		_spec.SetField(problem.FieldGeneratedBy, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.GeneratorModel(); ok {
		_spec.SetField(problem.FieldGeneratorModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reviewed(); ok {
		_spec.SetField(problem.FieldReviewed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(problem.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TotalAttempts(); ok {
		_spec.SetField(problem.FieldTotalAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalAttempts(); ok {
		_spec.AddField(problem.FieldTotalAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectAttempts(); ok {
		_spec.SetField(problem.FieldCorrectAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectAttempts(); ok {
		_spec.AddField(problem.FieldCorrectAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectRate(); ok {
		_spec.SetField(problem.FieldCorrectRate, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectRate(); ok {
		_spec.AddField(problem.FieldCorrectRate, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(problem.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.StepsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStepsIDs(); len(nodes) > 0 && !_u.mutation.StepsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StepsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AttemptsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAttemptsIDs(); len(nodes) > 0 && !_u.mutation.AttemptsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AttemptsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Problem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{problem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
