// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/thinkwise-edu/thinkwise/ent/problem"
	"github.com/thinkwise-edu/thinkwise/ent/problemstep"
)

// ProblemStep is the model entity for the ProblemStep schema.
type ProblemStep struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ProblemID holds the value of the "problem_id" field.
	ProblemID uuid.UUID `json:"problem_id,omitempty"`
	// StepNumber holds the value of the "step_number" field.
	StepNumber int `json:"step_number,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Hint holds the value of the "hint" field.
	Hint string `json:"hint,omitempty"`
	// Options holds the value of the "options" field.
	Options []string `json:"options,omitempty"`
	// Set when the parent uses a non-free-text answer format
	CorrectAnswer string `json:"correct_answer,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ProblemStepQuery when eager-loading is set.
	Edges        ProblemStepEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ProblemStepEdges holds the relations/edges for other nodes in the graph.
type ProblemStepEdges struct {
	// Problem holds the value of the problem edge.
	Problem *Problem `json:"problem,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ProblemOrErr returns the Problem value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ProblemStepEdges) ProblemOrErr() (*Problem, error) {
	if e.Problem != nil {
		return e.Problem, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: problem.Label}
	}
	return nil, &NotLoadedError{edge: "problem"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ProblemStep) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case problemstep.FieldOptions:
			values[i] = new([]byte)
		case problemstep.FieldStepNumber:
			values[i] = new(sql.NullInt64)
		case problemstep.FieldTitle, problemstep.FieldDescription, problemstep.FieldHint, problemstep.FieldCorrectAnswer:
			values[i] = new(sql.NullString)
		case problemstep.FieldID, problemstep.FieldProblemID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ProblemStep fields.
func (_m *ProblemStep) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case problemstep.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case problemstep.FieldProblemID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field problem_id", values[i])
			} else if value != nil {
				_m.ProblemID = *value
			}
		case problemstep.FieldStepNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field step_number", values[i])
			} else if value.Valid {
				_m.StepNumber = int(value.Int64)
			}
		case problemstep.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case problemstep.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case problemstep.FieldHint:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field hint", values[i])
			} else if value.Valid {
				_m.Hint = value.String
			}
		case problemstep.FieldOptions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field options", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Options); err != nil {
					return fmt.Errorf("unmarshal field options: %w", err)
				}
			}
		case problemstep.FieldCorrectAnswer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field correct_answer", values[i])
			} else if value.Valid {
				_m.CorrectAnswer = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ProblemStep.
// This includes values selected through modifiers, order, etc.
func (_m *ProblemStep) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProblem queries the "problem" edge of the ProblemStep entity.
func (_m *ProblemStep) QueryProblem() *ProblemQuery {
	return NewProblemStepClient(_m.config).QueryProblem(_m)
}

// Update returns a builder for updating this ProblemStep.
// Note that you need to call ProblemStep.Unwrap() before calling this method if this ProblemStep
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ProblemStep) Update() *ProblemStepUpdateOne {
	return NewProblemStepClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ProblemStep entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ProblemStep) Unwrap() *ProblemStep {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ProblemStep is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ProblemStep) String() string {
	var builder strings.Builder
	builder.WriteString("ProblemStep(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("problem_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProblemID))
	builder.WriteString(", ")
	builder.WriteString("step_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.StepNumber))
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("hint=")
	builder.WriteString(_m.Hint)
	builder.WriteString(", ")
	builder.WriteString("options=")
	builder.WriteString(fmt.Sprintf("%v", _m.Options))
	builder.WriteString(", ")
	builder.WriteString("correct_answer=")
	builder.WriteString(_m.CorrectAnswer)
	builder.WriteByte(')')
	return builder.String()
}

// ProblemSteps is a parsable slice of ProblemStep.
type ProblemSteps []*ProblemStep
