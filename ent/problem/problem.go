// Code generated by ent, DO NOT EDIT.

package problem

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the problem type in the database.
	Label = "problem"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldProblemType holds the string denoting the problem_type field in the database.
	FieldProblemType = "problem_type"
	// FieldAnswerFormat holds the string denoting the answer_format field in the database.
	FieldAnswerFormat = "answer_format"
	// FieldDifficulty holds the string denoting the difficulty field in the database.
	FieldDifficulty = "difficulty"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldContent holds the string denoting the content field in the database.
	FieldContent = "content"
	// FieldCorrectAnswer holds the string denoting the correct_answer field in the database.
	FieldCorrectAnswer = "correct_answer"
	// FieldExplanation holds the string denoting the explanation field in the database.
	FieldExplanation = "explanation"
	// FieldSubject holds the string denoting the subject field in the database.
	FieldSubject = "subject"
	// FieldGrade holds the string denoting the grade field in the database.
	FieldGrade = "grade"
	// FieldOptions holds the string denoting the options field in the database.
	FieldOptions = "options"
	// FieldHints holds the string denoting the hints field in the database.
	FieldHints = "hints"
	// FieldGeneratedBy holds the string denoting the generated_by field in the database.
	FieldGeneratedBy = "generated_by"
	// FieldGeneratorModel holds the string denoting the generator_model field in the database.
	FieldGeneratorModel = "generator_model"
	// FieldReviewed holds the string denoting the reviewed field in the database.
	FieldReviewed = "reviewed"
	// FieldActive holds the string denoting the active field in the database.
	FieldActive = "active"
	// FieldTotalAttempts holds the string denoting the total_attempts field in the database.
	FieldTotalAttempts = "total_attempts"
	// FieldCorrectAttempts holds the string denoting the correct_attempts field in the database.
	FieldCorrectAttempts = "correct_attempts"
	// FieldCorrectRate holds the string denoting the correct_rate field in the database.
	FieldCorrectRate = "correct_rate"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeSteps holds the string denoting the steps edge name in mutations.
	EdgeSteps = "steps"
	// EdgeAttempts holds the string denoting the attempts edge name in mutations.
	EdgeAttempts = "attempts"
	// Table holds the table name of the problem in the database.
	Table = "problems"
	// StepsTable is the table that holds the steps relation/edge.
	StepsTable = "problem_steps"
	// StepsInverseTable is the table name for the ProblemStep entity.
	// It exists in this package in order to avoid circular dependency with the "problemstep" package.
	StepsInverseTable = "problem_steps"
	// StepsColumn is the table column denoting the steps relation/edge.
	StepsColumn = "problem_id"
	// AttemptsTable is the table that holds the attempts relation/edge.
	AttemptsTable = "attempts"
	// AttemptsInverseTable is the table name for the Attempt entity.
	// It exists in this package in order to avoid circular dependency with the "attempt" package.
	AttemptsInverseTable = "attempts"
	// AttemptsColumn is the table column denoting the attempts relation/edge.
	AttemptsColumn = "problem_id"
)

// Columns holds all SQL columns for problem fields.
var Columns = []string{
	FieldID,
	FieldProblemType,
	FieldAnswerFormat,
	FieldDifficulty,
	FieldTitle,
	FieldContent,
	FieldCorrectAnswer,
	FieldExplanation,
	FieldSubject,
	FieldGrade,
	FieldOptions,
	FieldHints,
	FieldGeneratedBy,
	FieldGeneratorModel,
	FieldReviewed,
	FieldActive,
	FieldTotalAttempts,
	FieldCorrectAttempts,
	FieldCorrectRate,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// TitleValidator is a validator for the "title" field. It is called by the builders before save.
	TitleValidator func(string) error
	// DefaultExplanation holds the default value on creation for the "explanation" field.
	DefaultExplanation string
	// DefaultSubject holds the default value on creation for the "subject" field.
	DefaultSubject string
	// GradeValidator is a validator for the "grade" field. It is called by the builders before save.
	GradeValidator func(int) error
	// DefaultGeneratorModel holds the default value on creation for the "generator_model" field.
	DefaultGeneratorModel string
	// DefaultReviewed holds the default value on creation for the "reviewed" field.
	DefaultReviewed bool
	// DefaultActive holds the default value on creation for the "active" field.
	DefaultActive bool
	// DefaultTotalAttempts holds the default value on creation for the "total_attempts" field.
	DefaultTotalAttempts int
	// DefaultCorrectAttempts holds the default value on creation for the "correct_attempts" field.
	DefaultCorrectAttempts int
	// DefaultCorrectRate holds the default value on creation for the "correct_rate" field.
	DefaultCorrectRate int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// ProblemType defines the type for the "problem_type" enum field.
type ProblemType string

// ProblemType values.
const (
	ProblemTypeAI_VERIFICATION       ProblemType = "AI_VERIFICATION"
	ProblemTypePROBLEM_DECOMPOSITION ProblemType = "PROBLEM_DECOMPOSITION"
)

func (pt ProblemType) String() string {
	return string(pt)
}

// ProblemTypeValidator is a validator for the "problem_type" field enum values. It is called by the builders before save.
func ProblemTypeValidator(pt ProblemType) error {
	switch pt {
	case ProblemTypeAI_VERIFICATION, ProblemTypePROBLEM_DECOMPOSITION:
		return nil
	default:
		return fmt.Errorf("problem: invalid enum value for problem_type field: %q", pt)
	}
}

// AnswerFormat defines the type for the "answer_format" enum field.
type AnswerFormat string

// AnswerFormatSHORT_ANSWER is the default value of the AnswerFormat enum.
const DefaultAnswerFormat = AnswerFormatSHORT_ANSWER

// AnswerFormat values.
const (
	AnswerFormatSHORT_ANSWER    AnswerFormat = "SHORT_ANSWER"
	AnswerFormatMULTIPLE_CHOICE AnswerFormat = "MULTIPLE_CHOICE"
	AnswerFormatTRUE_FALSE      AnswerFormat = "TRUE_FALSE"
)

func (af AnswerFormat) String() string {
	return string(af)
}

// AnswerFormatValidator is a validator for the "answer_format" field enum values. It is called by the builders before save.
func AnswerFormatValidator(af AnswerFormat) error {
	switch af {
	case AnswerFormatSHORT_ANSWER, AnswerFormatMULTIPLE_CHOICE, AnswerFormatTRUE_FALSE:
		return nil
	default:
		return fmt.Errorf("problem: invalid enum value for answer_format field: %q", af)
	}
}

// Difficulty defines the type for the "difficulty" enum field.
type Difficulty string

// Difficulty values.
const (
	DifficultyEASY   Difficulty = "EASY"
	DifficultyMEDIUM Difficulty = "MEDIUM"
	DifficultyHARD   Difficulty = "HARD"
)

func (d Difficulty) String() string {
	return string(d)
}

// DifficultyValidator is a validator for the "difficulty" field enum values. It is called by the builders before save.
func DifficultyValidator(d Difficulty) error {
	switch d {
	case DifficultyEASY, DifficultyMEDIUM, DifficultyHARD:
		return nil
	default:
		return fmt.Errorf("problem: invalid enum value for difficulty field: %q", d)
	}
}

// GeneratedBy defines the type for the "generated_by" enum field.
type GeneratedBy string

// GeneratedBy values.
const (
	GeneratedByAI      GeneratedBy = "AI"
	GeneratedByTEACHER GeneratedBy = "TEACHER"
)

func (gb GeneratedBy) String() string {
	return string(gb)
}

// GeneratedByValidator is a validator for the "generated_by" field enum values. It is called by the builders before save.
func GeneratedByValidator(gb GeneratedBy) error {
	switch gb {
	case GeneratedByAI, GeneratedByTEACHER:
		return nil
	default:
		return fmt.Errorf("problem: invalid enum value for generated_by field: %q", gb)
	}
}

// OrderOption defines the ordering options for the Problem queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByProblemType orders the results by the problem_type field.
func ByProblemType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProblemType, opts...).ToFunc()
}

// ByAnswerFormat orders the results by the answer_format field.
func ByAnswerFormat(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnswerFormat, opts...).ToFunc()
}

// ByDifficulty orders the results by the difficulty field.
func ByDifficulty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDifficulty, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByContent orders the results by the content field.
func ByContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContent, opts...).ToFunc()
}

// ByCorrectAnswer orders the results by the correct_answer field.
func ByCorrectAnswer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectAnswer, opts...).ToFunc()
}

// ByExplanation orders the results by the explanation field.
func ByExplanation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExplanation, opts...).ToFunc()
}

// BySubject orders the results by the subject field.
func BySubject(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubject, opts...).ToFunc()
}

// ByGrade orders the results by the grade field.
func ByGrade(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGrade, opts...).ToFunc()
}

// ByGeneratedBy orders the results by the generated_by field.
func ByGeneratedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGeneratedBy, opts...).ToFunc()
}

// ByGeneratorModel orders the results by the generator_model field.
func ByGeneratorModel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGeneratorModel, opts...).ToFunc()
}

// ByReviewed orders the results by the reviewed field.
func ByReviewed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReviewed, opts...).ToFunc()
}

// ByActive orders the results by the active field.
func ByActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActive, opts...).ToFunc()
}

// ByTotalAttempts orders the results by the total_attempts field.
func ByTotalAttempts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalAttempts, opts...).ToFunc()
}

// ByCorrectAttempts orders the results by the correct_attempts field.
func ByCorrectAttempts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectAttempts, opts...).ToFunc()
}

// ByCorrectRate orders the results by the correct_rate field.
func ByCorrectRate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectRate, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByStepsCount orders the results by steps count.
func ByStepsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newStepsStep(), opts...)
	}
}

// BySteps orders the results by steps terms.
func BySteps(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newStepsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByAttemptsCount orders the results by attempts count.
func ByAttemptsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAttemptsStep(), opts...)
	}
}

// ByAttempts orders the results by attempts terms.
func ByAttempts(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAttemptsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newStepsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(StepsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, StepsTable, StepsColumn),
	)
}
func newAttemptsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AttemptsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AttemptsTable, AttemptsColumn),
	)
}
