// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/thinkwise-edu/thinkwise/ent/problem"
)

// Problem is the model entity for the Problem schema.
type Problem struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Cognitive task: spot planted errors or decompose a scenario
	ProblemType problem.ProblemType `json:"problem_type,omitempty"`
	// AnswerFormat holds the value of the "answer_format" field.
	AnswerFormat problem.AnswerFormat `json:"answer_format,omitempty"`
	// Difficulty holds the value of the "difficulty" field.
	Difficulty problem.Difficulty `json:"difficulty,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Content holds the value of the "content" field.
	Content string `json:"content,omitempty"`
	// CorrectAnswer holds the value of the "correct_answer" field.
	CorrectAnswer string `json:"correct_answer,omitempty"`
	// Explanation holds the value of the "explanation" field.
	Explanation string `json:"explanation,omitempty"`
	// Subject holds the value of the "subject" field.
	Subject string `json:"subject,omitempty"`
	// Grade holds the value of the "grade" field.
	Grade int `json:"grade,omitempty"`
	// Four labeled options for MULTIPLE_CHOICE
	Options []string `json:"options,omitempty"`
	// Hints holds the value of the "hints" field.
	Hints []string `json:"hints,omitempty"`
	// GeneratedBy holds the value of the "generated_by" field.
	GeneratedBy problem.GeneratedBy `json:"generated_by,omitempty"`
	// Model that produced an AI-generated problem
	GeneratorModel string `json:"generator_model,omitempty"`
	// Reviewed holds the value of the "reviewed" field.
	Reviewed bool `json:"reviewed,omitempty"`
	// Active holds the value of the "active" field.
	Active bool `json:"active,omitempty"`
	// TotalAttempts holds the value of the "total_attempts" field.
	TotalAttempts int `json:"total_attempts,omitempty"`
	// CorrectAttempts holds the value of the "correct_attempts" field.
	CorrectAttempts int `json:"correct_attempts,omitempty"`
	// round(100 * correct_attempts / total_attempts)
	CorrectRate int `json:"correct_rate,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ProblemQuery when eager-loading is set.
	Edges        ProblemEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ProblemEdges holds the relations/edges for other nodes in the graph.
type ProblemEdges struct {
	// Steps holds the value of the steps edge.
	Steps []*ProblemStep `json:"steps,omitempty"`
	// Attempts holds the value of the attempts edge.
	Attempts []*Attempt `json:"attempts,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// StepsOrErr returns the Steps value or an error if the edge
// was not loaded in eager-loading.
func (e ProblemEdges) StepsOrErr() ([]*ProblemStep, error) {
	if e.loadedTypes[0] {
		return e.Steps, nil
	}
	return nil, &NotLoadedError{edge: "steps"}
}

// AttemptsOrErr returns the Attempts value or an error if the edge
// was not loaded in eager-loading.
func (e ProblemEdges) AttemptsOrErr() ([]*Attempt, error) {
	if e.loadedTypes[1] {
		return e.Attempts, nil
	}
	return nil, &NotLoadedError{edge: "attempts"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Problem) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case problem.FieldOptions, problem.FieldHints:
			values[i] = new([]byte)
		case problem.FieldReviewed, problem.FieldActive:
			values[i] = new(sql.NullBool)
		case problem.FieldGrade, problem.FieldTotalAttempts, problem.FieldCorrectAttempts, problem.FieldCorrectRate:
			values[i] = new(sql.NullInt64)
		case problem.FieldProblemType, problem.FieldAnswerFormat, problem.FieldDifficulty, problem.FieldTitle, problem.FieldContent, problem.FieldCorrectAnswer, problem.FieldExplanation, problem.FieldSubject, problem.FieldGeneratedBy, problem.FieldGeneratorModel:
			values[i] = new(sql.NullString)
		case problem.FieldCreatedAt, problem.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case problem.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Problem fields.
func (_m *Problem) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case problem.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case problem.FieldProblemType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field problem_type", values[i])
			} else if value.Valid {
				_m.ProblemType = problem.ProblemType(value.String)
			}
		case problem.FieldAnswerFormat:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field answer_format", values[i])
			} else if value.Valid {
				_m.AnswerFormat = problem.AnswerFormat(value.String)
			}
		case problem.FieldDifficulty:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty", values[i])
			} else if value.Valid {
				_m.Difficulty = problem.Difficulty(value.String)
			}
		case problem.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case problem.FieldContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content", values[i])
			} else if value.Valid {
				_m.Content = value.String
			}
		case problem.FieldCorrectAnswer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field correct_answer", values[i])
			} else if value.Valid {
				_m.CorrectAnswer = value.String
			}
		case problem.FieldExplanation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field explanation", values[i])
			} else if value.Valid {
				_m.Explanation = value.String
			}
		case problem.FieldSubject:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subject", values[i])
			} else if value.Valid {
				_m.Subject = value.String
			}
		case problem.FieldGrade:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field grade", values[i])
			} else if value.Valid {
				_m.Grade = int(value.Int64)
			}
		case problem.FieldOptions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field options", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Options); err != nil {
					return fmt.Errorf("unmarshal field options: %w", err)
				}
			}
		case problem.FieldHints:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field hints", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Hints); err != nil {
					return fmt.Errorf("unmarshal field hints: %w", err)
				}
			}
		case problem.FieldGeneratedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field generated_by", values[i])
			} else if value.Valid {
				_m.GeneratedBy = problem.GeneratedBy(value.String)
			}
		case problem.FieldGeneratorModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field generator_model", values[i])
			} else if value.Valid {
				_m.GeneratorModel = value.String
			}
		case problem.FieldReviewed:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field reviewed", values[i])
			} else if value.Valid {
				_m.Reviewed = value.Bool
			}
		case problem.FieldActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field active", values[i])
			} else if value.Valid {
				_m.Active = value.Bool
			}
		case problem.FieldTotalAttempts:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_attempts", values[i])
			} else if value.Valid {
				_m.TotalAttempts = int(value.Int64)
			}
		case problem.FieldCorrectAttempts:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field correct_attempts", values[i])
			} else if value.Valid {
				_m.CorrectAttempts = int(value.Int64)
			}
		case problem.FieldCorrectRate:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field correct_rate", values[i])
			} else if value.Valid {
				_m.CorrectRate = int(value.Int64)
			}
		case problem.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case problem.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Problem.
// This includes values selected through modifiers, order, etc.
func (_m *Problem) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySteps queries the "steps" edge of the Problem entity.
func (_m *Problem) QuerySteps() *ProblemStepQuery {
	return NewProblemClient(_m.config).QuerySteps(_m)
}

// QueryAttempts queries the "attempts" edge of the Problem entity.
func (_m *Problem) QueryAttempts() *AttemptQuery {
	return NewProblemClient(_m.config).QueryAttempts(_m)
}

// Update returns a builder for updating this Problem.
// Note that you need to call Problem.Unwrap() before calling this method if this Problem
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Problem) Update() *ProblemUpdateOne {
	return NewProblemClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Problem entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Problem) Unwrap() *Problem {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Problem is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Problem) String() string {
	var builder strings.Builder
	builder.WriteString("Problem(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("problem_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProblemType))
	builder.WriteString(", ")
	builder.WriteString("answer_format=")
	builder.WriteString(fmt.Sprintf("%v", _m.AnswerFormat))
	builder.WriteString(", ")
	builder.WriteString("difficulty=")
	builder.WriteString(fmt.Sprintf("%v", _m.Difficulty))
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("content=")
	builder.WriteString(_m.Content)
	builder.WriteString(", ")
	builder.WriteString("correct_answer=")
	builder.WriteString(_m.CorrectAnswer)
	builder.WriteString(", ")
	builder.WriteString("explanation=")
	builder.WriteString(_m.Explanation)
	builder.WriteString(", ")
	builder.WriteString("subject=")
	builder.WriteString(_m.Subject)
	builder.WriteString(", ")
	builder.WriteString("grade=")
	builder.WriteString(fmt.Sprintf("%v", _m.Grade))
	builder.WriteString(", ")
	builder.WriteString("options=")
	builder.WriteString(fmt.Sprintf("%v", _m.Options))
	builder.WriteString(", ")
	builder.WriteString("hints=")
	builder.WriteString(fmt.Sprintf("%v", _m.Hints))
	builder.WriteString(", ")
	builder.WriteString("generated_by=")
	builder.WriteString(fmt.Sprintf("%v", _m.GeneratedBy))
	builder.WriteString(", ")
	builder.WriteString("generator_model=")
	builder.WriteString(_m.GeneratorModel)
	builder.WriteString(", ")
	builder.WriteString("reviewed=")
	builder.WriteString(fmt.Sprintf("%v", _m.Reviewed))
	builder.WriteString(", ")
	builder.WriteString("active=")
	builder.WriteString(fmt.Sprintf("%v", _m.Active))
	builder.WriteString(", ")
	builder.WriteString("total_attempts=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalAttempts))
	builder.WriteString(", ")
	builder.WriteString("correct_attempts=")
	builder.WriteString(fmt.Sprintf("%v", _m.CorrectAttempts))
	builder.WriteString(", ")
	builder.WriteString("correct_rate=")
	builder.WriteString(fmt.Sprintf("%v", _m.CorrectRate))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Problems is a parsable slice of Problem.
type Problems []*Problem
