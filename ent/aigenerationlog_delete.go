// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/thinkwise-edu/thinkwise/ent/aigenerationlog"
	"github.com/thinkwise-edu/thinkwise/ent/predicate"
)

// AIGenerationLogDelete is the builder for deleting a AIGenerationLog entity.
type AIGenerationLogDelete struct {
	config
	hooks    []Hook
	mutation *AIGenerationLogMutation
}

// Where appends a list predicates to the AIGenerationLogDelete builder.
func (_d *AIGenerationLogDelete) Where(ps ...predicate.AIGenerationLog) *AIGenerationLogDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *AIGenerationLogDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AIGenerationLogDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *AIGenerationLogDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(aigenerationlog.Table, sqlgraph.NewFieldSpec(aigenerationlog.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// AIGenerationLogDeleteOne is the builder for deleting a single AIGenerationLog entity.
type AIGenerationLogDeleteOne struct {
	_d *AIGenerationLogDelete
}

// Where appends a list predicates to the AIGenerationLogDelete builder.
func (_d *AIGenerationLogDeleteOne) Where(ps ...predicate.AIGenerationLog) *AIGenerationLogDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *AIGenerationLogDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{aigenerationlog.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AIGenerationLogDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
