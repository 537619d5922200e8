// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/thinkwise-edu/thinkwise/ent/aigenerationlog"
	"github.com/thinkwise-edu/thinkwise/ent/predicate"
)

// AIGenerationLogUpdate is the builder for updating AIGenerationLog entities.
type AIGenerationLogUpdate struct {
	config
	hooks    []Hook
	mutation *AIGenerationLogMutation
}

// Where appends a list predicates to the AIGenerationLogUpdate builder.
func (_u *AIGenerationLogUpdate) Where(ps ...predicate.AIGenerationLog) *AIGenerationLogUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the AIGenerationLogMutation object of the builder.
func (_u *AIGenerationLogUpdate) Mutation() *AIGenerationLogMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AIGenerationLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AIGenerationLogUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AIGenerationLogUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AIGenerationLogUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AIGenerationLogUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(aigenerationlog.Table, aigenerationlog.Columns, sqlgraph.NewFieldSpec(aigenerationlog.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.ProblemIDCleared() {
		_spec.ClearField(aigenerationlog.FieldProblemID, field.TypeUUID)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{aigenerationlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AIGenerationLogUpdateOne is the builder for updating a single AIGenerationLog entity.
type AIGenerationLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AIGenerationLogMutation
}

// Mutation returns the AIGenerationLogMutation object of the builder.
func (_u *AIGenerationLogUpdateOne) Mutation() *AIGenerationLogMutation {
	return _u.mutation
}

// Where appends a list predicates to the AIGenerationLogUpdate builder.
func (_u *AIGenerationLogUpdateOne) Where(ps ...predicate.AIGenerationLog) *AIGenerationLogUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AIGenerationLogUpdateOne) Select(field string, fields ...string) *AIGenerationLogUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AIGenerationLog entity.
func (_u *AIGenerationLogUpdateOne) Save(ctx context.Context) (*AIGenerationLog, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AIGenerationLogUpdateOne) SaveX(ctx context.Context) *AIGenerationLog {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AIGenerationLogUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AIGenerationLogUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AIGenerationLogUpdateOne) sqlSave(ctx context.Context) (_node *AIGenerationLog, err error) {
	_spec := sqlgraph.NewUpdateSpec(aigenerationlog.Table, aigenerationlog.Columns, sqlgraph.NewFieldSpec(aigenerationlog.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AIGenerationLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, aigenerationlog.FieldID)
		for _, f := range fields {
			if !aigenerationlog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != aigenerationlog.FieldID {
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
	if _u.mutation.ProblemIDCleared() {
		_spec.ClearField(aigenerationlog.FieldProblemID, field.TypeUUID)
	}
	_node = &AIGenerationLog{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{aigenerationlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
