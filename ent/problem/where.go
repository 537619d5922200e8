// Code generated by ent, DO NOT EDIT.

package problem

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/thinkwise-edu/thinkwise/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Problem {
	return predicate.Problem(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Problem {
	return predicate.Problem(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Problem {
	return predicate.Problem(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Problem {
	return predicate.Problem(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Problem {
	return predicate.Problem(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Problem {
	return predicate.Problem(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Problem {
	return predicate.Problem(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Problem {
	return predicate.Problem(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Problem {
	return predicate.Problem(sql.FieldLTE(FieldID, id))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Problem {
	return predicate.Problem(sql.FieldEQ(FieldTitle, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.Problem {
	return predicate.Problem(sql.FieldEQ(FieldContent, v))
}

// CorrectAnswer applies equality check predicate on the "correct_answer" field. It's identical to CorrectAnswerEQ.
func CorrectAnswer(v string) predicate.Problem {
	return predicate.Problem(sql.FieldEQ(FieldCorrectAnswer, v))
}

// Explanation applies equality check predicate on the "explanation" field. It's identical to ExplanationEQ.
func Explanation(v string) predicate.Problem {
	return predicate.Problem(sql.FieldEQ(FieldExplanation, v))
}

// Subject applies equality check predicate on the "subject" field. It's identical to SubjectEQ.
func Subject(v string) predicate.Problem {
	return predicate.Problem(sql.FieldEQ(FieldSubject, v))
}

// Grade applies equality check predicate on the "grade" field. It's identical to GradeEQ.
func Grade(v int) predicate.Problem {
	return predicate.Problem(sql.FieldEQ(FieldGrade, v))
}

// GeneratorModel applies equality check predicate on the "generator_model" field. It's identical to GeneratorModelEQ.
func GeneratorModel(v string) predicate.Problem {
	return predicate.Problem(sql.FieldEQ(FieldGeneratorModel, v))
}

// Reviewed applies equality check predicate on the "reviewed" field. It's identical to ReviewedEQ.
func Reviewed(v bool) predicate.Problem {
	return predicate.Problem(sql.FieldEQ(FieldReviewed, v))
}

// Active applies equality check predicate on the "active" field. It's identical to ActiveEQ.
func Active(v bool) predicate.Problem {
	return predicate.Problem(sql.FieldEQ(FieldActive, v))
}

// TotalAttempts applies equality check predicate on the "total_attempts" field. It's identical to TotalAttemptsEQ.
func TotalAttempts(v int) predicate.Problem {
	return predicate.Problem(sql.FieldEQ(FieldTotalAttempts, v))
}

// CorrectAttempts applies equality check predicate on the "correct_attempts" field. It's identical to CorrectAttemptsEQ.
func CorrectAttempts(v int) predicate.Problem {
	return predicate.Problem(sql.FieldEQ(FieldCorrectAttempts, v))
}

// CorrectRate applies equality check predicate on the "correct_rate" field. It's identical to CorrectRateEQ.
func CorrectRate(v int) predicate.Problem {
	return predicate.Problem(sql.FieldEQ(FieldCorrectRate, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Problem {
	return predicate.Problem(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Problem {
	return predicate.Problem(sql.FieldEQ(FieldUpdatedAt, v))
}

// ProblemTypeEQ applies the EQ predicate on the "problem_type" field.
func ProblemTypeEQ(v ProblemType) predicate.Problem {
	return predicate.Problem(sql.FieldEQ(FieldProblemType, v))
}

// ProblemTypeNEQ applies the NEQ predicate on the "problem_type" field.
func ProblemTypeNEQ(v ProblemType) predicate.Problem {
	return predicate.Problem(sql.FieldNEQ(FieldProblemType, v))
}

// ProblemTypeIn applies the In predicate on the "problem_type" field.
func ProblemTypeIn(vs ...ProblemType) predicate.Problem {
	return predicate.Problem(sql.FieldIn(FieldProblemType, vs...))
}

// ProblemTypeNotIn applies the NotIn predicate on the "problem_type" field.
func ProblemTypeNotIn(vs ...ProblemType) predicate.Problem {
	return predicate.Problem(sql.FieldNotIn(FieldProblemType, vs...))
}

// AnswerFormatEQ applies the EQ predicate on the "answer_format" field.
func AnswerFormatEQ(v AnswerFormat) predicate.Problem {
	return predicate.Problem(sql.FieldEQ(FieldAnswerFormat, v))
}

// AnswerFormatNEQ applies the NEQ predicate on the "answer_format" field.
func AnswerFormatNEQ(v AnswerFormat) predicate.Problem {
	return predicate.Problem(sql.FieldNEQ(FieldAnswerFormat, v))
}

// AnswerFormatIn applies the In predicate on the "answer_format" field.
func AnswerFormatIn(vs ...AnswerFormat) predicate.Problem {
	return predicate.Problem(sql.FieldIn(FieldAnswerFormat, vs...))
}

// AnswerFormatNotIn applies the NotIn predicate on the "answer_format" field.
func AnswerFormatNotIn(vs ...AnswerFormat) predicate.Problem {
	return predicate.Problem(sql.FieldNotIn(FieldAnswerFormat, vs...))
}

// DifficultyEQ applies the EQ predicate on the "difficulty" field.
func DifficultyEQ(v Difficulty) predicate.Problem {
	return predicate.Problem(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyNEQ applies the NEQ predicate on the "difficulty" field.
func DifficultyNEQ(v Difficulty) predicate.Problem {
	return predicate.Problem(sql.FieldNEQ(FieldDifficulty, v))
}

// DifficultyIn applies the In predicate on the "difficulty" field.
func DifficultyIn(vs ...Difficulty) predicate.Problem {
	return predicate.Problem(sql.FieldIn(FieldDifficulty, vs...))
}

// DifficultyNotIn applies the NotIn predicate on the "difficulty" field.
func DifficultyNotIn(vs ...Difficulty) predicate.Problem {
	return predicate.Problem(sql.FieldNotIn(FieldDifficulty, vs...))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Problem {
	return predicate.Problem(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Problem {
	return predicate.Problem(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Problem {
	return predicate.Problem(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Problem {
	return predicate.Problem(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Problem {
	return predicate.Problem(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Problem {
	return predicate.Problem(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Problem {
	return predicate.Problem(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Problem {
	return predicate.Problem(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Problem {
	return predicate.Problem(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Problem {
	return predicate.Problem(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Problem {
	return predicate.Problem(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Problem {
	return predicate.Problem(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Problem {
	return predicate.Problem(sql.FieldContainsFold(FieldTitle, v))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.Problem {
	return predicate.Problem(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.Problem {
	return predicate.Problem(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.Problem {
	return predicate.Problem(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.Problem {
	return predicate.Problem(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.Problem {
	return predicate.Problem(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.Problem {
	return predicate.Problem(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.Problem {
	return predicate.Problem(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.Problem {
	return predicate.Problem(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.Problem {
	return predicate.Problem(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.Problem {
	return predicate.Problem(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.Problem {
	return predicate.Problem(sql.FieldHasSuffix(FieldContent, v))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.Problem {
	return predicate.Problem(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.Problem {
	return predicate.Problem(sql.FieldContainsFold(FieldContent, v))
}

// CorrectAnswerEQ applies the EQ predicate on the "correct_answer" field.
func CorrectAnswerEQ(v string) predicate.Problem {
	return predicate.Problem(sql.FieldEQ(FieldCorrectAnswer, v))
}

// CorrectAnswerNEQ applies the NEQ predicate on the "correct_answer" field.
func CorrectAnswerNEQ(v string) predicate.Problem {
	return predicate.Problem(sql.FieldNEQ(FieldCorrectAnswer, v))
}

// CorrectAnswerIn applies the In predicate on the "correct_answer" field.
func CorrectAnswerIn(vs ...string) predicate.Problem {
	return predicate.Problem(sql.FieldIn(FieldCorrectAnswer, vs...))
}

// CorrectAnswerNotIn applies the NotIn predicate on the "correct_answer" field.
func CorrectAnswerNotIn(vs ...string) predicate.Problem {
	return predicate.Problem(sql.FieldNotIn(FieldCorrectAnswer, vs...))
}

// CorrectAnswerGT applies the GT predicate on the "correct_answer" field.
func CorrectAnswerGT(v string) predicate.Problem {
	return predicate.Problem(sql.FieldGT(FieldCorrectAnswer, v))
}

// CorrectAnswerGTE applies the GTE predicate on the "correct_answer" field.
func CorrectAnswerGTE(v string) predicate.Problem {
	return predicate.Problem(sql.FieldGTE(FieldCorrectAnswer, v))
}

// CorrectAnswerLT applies the LT predicate on the "correct_answer" field.
func CorrectAnswerLT(v string) predicate.Problem {
	return predicate.Problem(sql.FieldLT(FieldCorrectAnswer, v))
}

// CorrectAnswerLTE applies the LTE predicate on the "correct_answer" field.
func CorrectAnswerLTE(v string) predicate.Problem {
	return predicate.Problem(sql.FieldLTE(FieldCorrectAnswer, v))
}

// CorrectAnswerContains applies the Contains predicate on the "correct_answer" field.
func CorrectAnswerContains(v string) predicate.Problem {
	return predicate.Problem(sql.FieldContains(FieldCorrectAnswer, v))
}

// CorrectAnswerHasPrefix applies the HasPrefix predicate on the "correct_answer" field.
func CorrectAnswerHasPrefix(v string) predicate.Problem {
	return predicate.Problem(sql.FieldHasPrefix(FieldCorrectAnswer, v))
}

// CorrectAnswerHasSuffix applies the HasSuffix predicate on the "correct_answer" field.
func CorrectAnswerHasSuffix(v string) predicate.Problem {
	return predicate.Problem(sql.FieldHasSuffix(FieldCorrectAnswer, v))
}

// CorrectAnswerEqualFold applies the EqualFold predicate on the "correct_answer" field.
func CorrectAnswerEqualFold(v string) predicate.Problem {
	return predicate.Problem(sql.FieldEqualFold(FieldCorrectAnswer, v))
}

// CorrectAnswerContainsFold applies the ContainsFold predicate on the "correct_answer" field.
func CorrectAnswerContainsFold(v string) predicate.Problem {
	return predicate.Problem(sql.FieldContainsFold(FieldCorrectAnswer, v))
}

// ExplanationEQ applies the EQ predicate on the "explanation" field.
func ExplanationEQ(v string) predicate.Problem {
	return predicate.Problem(sql.FieldEQ(FieldExplanation, v))
}

// ExplanationNEQ applies the NEQ predicate on the "explanation" field.
func ExplanationNEQ(v string) predicate.Problem {
	return predicate.Problem(sql.FieldNEQ(FieldExplanation, v))
}

// ExplanationIn applies the In predicate on the "explanation" field.
func ExplanationIn(vs ...string) predicate.Problem {
	return predicate.Problem(sql.FieldIn(FieldExplanation, vs...))
}

// ExplanationNotIn applies the NotIn predicate on the "explanation" field.
func ExplanationNotIn(vs ...string) predicate.Problem {
	return predicate.Problem(sql.FieldNotIn(FieldExplanation, vs...))
}

// ExplanationGT applies the GT predicate on the "explanation" field.
func ExplanationGT(v string) predicate.Problem {
	return predicate.Problem(sql.FieldGT(FieldExplanation, v))
}

// ExplanationGTE applies the GTE predicate on the "explanation" field.
func ExplanationGTE(v string) predicate.Problem {
	return predicate.Problem(sql.FieldGTE(FieldExplanation, v))
}

// ExplanationLT applies the LT predicate on the "explanation" field.
func ExplanationLT(v string) predicate.Problem {
	return predicate.Problem(sql.FieldLT(FieldExplanation, v))
}

// ExplanationLTE applies the LTE predicate on the "explanation" field.
func ExplanationLTE(v string) predicate.Problem {
	return predicate.Problem(sql.FieldLTE(FieldExplanation, v))
}

// ExplanationContains applies the Contains predicate on the "explanation" field.
func ExplanationContains(v string) predicate.Problem {
	return predicate.Problem(sql.FieldContains(FieldExplanation, v))
}

// ExplanationHasPrefix applies the HasPrefix predicate on the "explanation" field.
func ExplanationHasPrefix(v string) predicate.Problem {
	return predicate.Problem(sql.FieldHasPrefix(FieldExplanation, v))
}

// ExplanationHasSuffix applies the HasSuffix predicate on the "explanation" field.
func ExplanationHasSuffix(v string) predicate.Problem {
	return predicate.Problem(sql.FieldHasSuffix(FieldExplanation, v))
}

// ExplanationEqualFold applies the EqualFold predicate on the "explanation" field.
func ExplanationEqualFold(v string) predicate.Problem {
	return predicate.Problem(sql.FieldEqualFold(FieldExplanation, v))
}

// ExplanationContainsFold applies the ContainsFold predicate on the "explanation" field.
func ExplanationContainsFold(v string) predicate.Problem {
	return predicate.Problem(sql.FieldContainsFold(FieldExplanation, v))
}

// SubjectEQ applies the EQ predicate on the "subject" field.
func SubjectEQ(v string) predicate.Problem {
	return predicate.Problem(sql.FieldEQ(FieldSubject, v))
}

// SubjectNEQ applies the NEQ predicate on the "subject" field.
func SubjectNEQ(v string) predicate.Problem {
	return predicate.Problem(sql.FieldNEQ(FieldSubject, v))
}

// SubjectIn applies the In predicate on the "subject" field.
func SubjectIn(vs ...string) predicate.Problem {
	return predicate.Problem(sql.FieldIn(FieldSubject, vs...))
}

// SubjectNotIn applies the NotIn predicate on the "subject" field.
func SubjectNotIn(vs ...string) predicate.Problem {
	return predicate.Problem(sql.FieldNotIn(FieldSubject, vs...))
}

// SubjectGT applies the GT predicate on the "subject" field.
func SubjectGT(v string) predicate.Problem {
	return predicate.Problem(sql.FieldGT(FieldSubject, v))
}

// SubjectGTE applies the GTE predicate on the "subject" field.
func SubjectGTE(v string) predicate.Problem {
	return predicate.Problem(sql.FieldGTE(FieldSubject, v))
}

// SubjectLT applies the LT predicate on the "subject" field.
func SubjectLT(v string) predicate.Problem {
	return predicate.Problem(sql.FieldLT(FieldSubject, v))
}

// SubjectLTE applies the LTE predicate on the "subject" field.
func SubjectLTE(v string) predicate.Problem {
	return predicate.Problem(sql.FieldLTE(FieldSubject, v))
}

// SubjectContains applies the Contains predicate on the "subject" field.
func SubjectContains(v string) predicate.Problem {
	return predicate.Problem(sql.FieldContains(FieldSubject, v))
}

// SubjectHasPrefix applies the HasPrefix predicate on the "subject" field.
func SubjectHasPrefix(v string) predicate.Problem {
	return predicate.Problem(sql.FieldHasPrefix(FieldSubject, v))
}

// SubjectHasSuffix applies the HasSuffix predicate on the "subject" field.
func SubjectHasSuffix(v string) predicate.Problem {
	return predicate.Problem(sql.FieldHasSuffix(FieldSubject, v))
}

// SubjectEqualFold applies the EqualFold predicate on the "subject" field.
func SubjectEqualFold(v string) predicate.Problem {
	return predicate.Problem(sql.FieldEqualFold(FieldSubject, v))
}

// SubjectContainsFold applies the ContainsFold predicate on the "subject" field.
func SubjectContainsFold(v string) predicate.Problem {
	return predicate.Problem(sql.FieldContainsFold(FieldSubject, v))
}

// GradeEQ applies the EQ predicate on the "grade" field.
func GradeEQ(v int) predicate.Problem {
	return predicate.Problem(sql.FieldEQ(FieldGrade, v))
}

// GradeNEQ applies the NEQ predicate on the "grade" field.
func GradeNEQ(v int) predicate.Problem {
	return predicate.Problem(sql.FieldNEQ(FieldGrade, v))
}

// GradeIn applies the In predicate on the "grade" field.
func GradeIn(vs ...int) predicate.Problem {
	return predicate.Problem(sql.FieldIn(FieldGrade, vs...))
}

// GradeNotIn applies the NotIn predicate on the "grade" field.
func GradeNotIn(vs ...int) predicate.Problem {
	return predicate.Problem(sql.FieldNotIn(FieldGrade, vs...))
}

// GradeGT applies the GT predicate on the "grade" field.
func GradeGT(v int) predicate.Problem {
	return predicate.Problem(sql.FieldGT(FieldGrade, v))
}

// GradeGTE applies the GTE predicate on the "grade" field.
func GradeGTE(v int) predicate.Problem {
	return predicate.Problem(sql.FieldGTE(FieldGrade, v))
}

// GradeLT applies the LT predicate on the "grade" field.
func GradeLT(v int) predicate.Problem {
	return predicate.Problem(sql.FieldLT(FieldGrade, v))
}

// GradeLTE applies the LTE predicate on the "grade" field.
func GradeLTE(v int) predicate.Problem {
	return predicate.Problem(sql.FieldLTE(FieldGrade, v))
}

// OptionsIsNil applies the IsNil predicate on the "options" field.
func OptionsIsNil() predicate.Problem {
	return predicate.Problem(sql.FieldIsNull(FieldOptions))
}

// OptionsNotNil applies the NotNil predicate on the "options" field.
func OptionsNotNil() predicate.Problem {
	return predicate.Problem(sql.FieldNotNull(FieldOptions))
}

// HintsIsNil applies the IsNil predicate on the "hints" field.
func HintsIsNil() predicate.Problem {
	return predicate.Problem(sql.FieldIsNull(FieldHints))
}

// HintsNotNil applies the NotNil predicate on the "hints" field.
func HintsNotNil() predicate.Problem {
	return predicate.Problem(sql.FieldNotNull(FieldHints))
}

// GeneratedByEQ applies the EQ predicate on the "generated_by" field.
func GeneratedByEQ(v GeneratedBy) predicate.Problem {
	return predicate.Problem(sql.FieldEQ(FieldGeneratedBy, v))
}

// GeneratedByNEQ applies the NEQ predicate on the "generated_by" field.
func GeneratedByNEQ(v GeneratedBy) predicate.Problem {
	return predicate.Problem(sql.FieldNEQ(FieldGeneratedBy, v))
}

// GeneratedByIn applies the In predicate on the "generated_by" field.
func GeneratedByIn(vs ...GeneratedBy) predicate.Problem {
	return predicate.Problem(sql.FieldIn(FieldGeneratedBy, vs...))
}

// GeneratedByNotIn applies the NotIn predicate on the "generated_by" field.
func GeneratedByNotIn(vs ...GeneratedBy) predicate.Problem {
	return predicate.Problem(sql.FieldNotIn(FieldGeneratedBy, vs...))
}

// GeneratorModelEQ applies the EQ predicate on the "generator_model" field.
func GeneratorModelEQ(v string) predicate.Problem {
	return predicate.Problem(sql.FieldEQ(FieldGeneratorModel, v))
}

// GeneratorModelNEQ applies the NEQ predicate on the "generator_model" field.
func GeneratorModelNEQ(v string) predicate.Problem {
	return predicate.Problem(sql.FieldNEQ(FieldGeneratorModel, v))
}

// GeneratorModelIn applies the In predicate on the "generator_model" field.
func GeneratorModelIn(vs ...string) predicate.Problem {
	return predicate.Problem(sql.FieldIn(FieldGeneratorModel, vs...))
}

// GeneratorModelNotIn applies the NotIn predicate on the "generator_model" field.
func GeneratorModelNotIn(vs ...string) predicate.Problem {
	return predicate.Problem(sql.FieldNotIn(FieldGeneratorModel, vs...))
}

// GeneratorModelGT applies the GT predicate on the "generator_model" field.
func GeneratorModelGT(v string) predicate.Problem {
	return predicate.Problem(sql.FieldGT(FieldGeneratorModel, v))
}

// GeneratorModelGTE applies the GTE predicate on the "generator_model" field.
func GeneratorModelGTE(v string) predicate.Problem {
	return predicate.Problem(sql.FieldGTE(FieldGeneratorModel, v))
}

// GeneratorModelLT applies the LT predicate on the "generator_model" field.
func GeneratorModelLT(v string) predicate.Problem {
	return predicate.Problem(sql.FieldLT(FieldGeneratorModel, v))
}

// GeneratorModelLTE applies the LTE predicate on the "generator_model" field.
func GeneratorModelLTE(v string) predicate.Problem {
	return predicate.Problem(sql.FieldLTE(FieldGeneratorModel, v))
}

// GeneratorModelContains applies the Contains predicate on the "generator_model" field.
func GeneratorModelContains(v string) predicate.Problem {
	return predicate.Problem(sql.FieldContains(FieldGeneratorModel, v))
}

// GeneratorModelHasPrefix applies the HasPrefix predicate on the "generator_model" field.
func GeneratorModelHasPrefix(v string) predicate.Problem {
	return predicate.Problem(sql.FieldHasPrefix(FieldGeneratorModel, v))
}

// GeneratorModelHasSuffix applies the HasSuffix predicate on the "generator_model" field.
func GeneratorModelHasSuffix(v string) predicate.Problem {
	return predicate.Problem(sql.FieldHasSuffix(FieldGeneratorModel, v))
}

// GeneratorModelEqualFold applies the EqualFold predicate on the "generator_model" field.
func GeneratorModelEqualFold(v string) predicate.Problem {
	return predicate.Problem(sql.FieldEqualFold(FieldGeneratorModel, v))
}

// GeneratorModelContainsFold applies the ContainsFold predicate on the "generator_model" field.
func GeneratorModelContainsFold(v string) predicate.Problem {
	return predicate.Problem(sql.FieldContainsFold(FieldGeneratorModel, v))
}

// ReviewedEQ applies the EQ predicate on the "reviewed" field.
func ReviewedEQ(v bool) predicate.Problem {
	return predicate.Problem(sql.FieldEQ(FieldReviewed, v))
}

// ReviewedNEQ applies the NEQ predicate on the "reviewed" field.
func ReviewedNEQ(v bool) predicate.Problem {
	return predicate.Problem(sql.FieldNEQ(FieldReviewed, v))
}

// ActiveEQ applies the EQ predicate on the "active" field.
func ActiveEQ(v bool) predicate.Problem {
	return predicate.Problem(sql.FieldEQ(FieldActive, v))
}

// ActiveNEQ applies the NEQ predicate on the "active" field.
func ActiveNEQ(v bool) predicate.Problem {
	return predicate.Problem(sql.FieldNEQ(FieldActive, v))
}

// TotalAttemptsEQ applies the EQ predicate on the "total_attempts" field.
func TotalAttemptsEQ(v int) predicate.Problem {
	return predicate.Problem(sql.FieldEQ(FieldTotalAttempts, v))
}

// TotalAttemptsNEQ applies the NEQ predicate on the "total_attempts" field.
func TotalAttemptsNEQ(v int) predicate.Problem {
	return predicate.Problem(sql.FieldNEQ(FieldTotalAttempts, v))
}

// TotalAttemptsIn applies the In predicate on the "total_attempts" field.
func TotalAttemptsIn(vs ...int) predicate.Problem {
	return predicate.Problem(sql.FieldIn(FieldTotalAttempts, vs...))
}

// TotalAttemptsNotIn applies the NotIn predicate on the "total_attempts" field.
func TotalAttemptsNotIn(vs ...int) predicate.Problem {
	return predicate.Problem(sql.FieldNotIn(FieldTotalAttempts, vs...))
}

// TotalAttemptsGT applies the GT predicate on the "total_attempts" field.
func TotalAttemptsGT(v int) predicate.Problem {
	return predicate.Problem(sql.FieldGT(FieldTotalAttempts, v))
}

// TotalAttemptsGTE applies the GTE predicate on the "total_attempts" field.
func TotalAttemptsGTE(v int) predicate.Problem {
	return predicate.Problem(sql.FieldGTE(FieldTotalAttempts, v))
}

// TotalAttemptsLT applies the LT predicate on the "total_attempts" field.
func TotalAttemptsLT(v int) predicate.Problem {
	return predicate.Problem(sql.FieldLT(FieldTotalAttempts, v))
}

// TotalAttemptsLTE applies the LTE predicate on the "total_attempts" field.
func TotalAttemptsLTE(v int) predicate.Problem {
	return predicate.Problem(sql.FieldLTE(FieldTotalAttempts, v))
}

// CorrectAttemptsEQ applies the EQ predicate on the "correct_attempts" field.
func CorrectAttemptsEQ(v int) predicate.Problem {
	return predicate.Problem(sql.FieldEQ(FieldCorrectAttempts, v))
}

// CorrectAttemptsNEQ applies the NEQ predicate on the "correct_attempts" field.
func CorrectAttemptsNEQ(v int) predicate.Problem {
	return predicate.Problem(sql.FieldNEQ(FieldCorrectAttempts, v))
}

// CorrectAttemptsIn applies the In predicate on the "correct_attempts" field.
func CorrectAttemptsIn(vs ...int) predicate.Problem {
	return predicate.Problem(sql.FieldIn(FieldCorrectAttempts, vs...))
}

// CorrectAttemptsNotIn applies the NotIn predicate on the "correct_attempts" field.
func CorrectAttemptsNotIn(vs ...int) predicate.Problem {
	return predicate.Problem(sql.FieldNotIn(FieldCorrectAttempts, vs...))
}

// CorrectAttemptsGT applies the GT predicate on the "correct_attempts" field.
func CorrectAttemptsGT(v int) predicate.Problem {
	return predicate.Problem(sql.FieldGT(FieldCorrectAttempts, v))
}

// CorrectAttemptsGTE applies the GTE predicate on the "correct_attempts" field.
func CorrectAttemptsGTE(v int) predicate.Problem {
	return predicate.Problem(sql.FieldGTE(FieldCorrectAttempts, v))
}

// CorrectAttemptsLT applies the LT predicate on the "correct_attempts" field.
func CorrectAttemptsLT(v int) predicate.Problem {
	return predicate.Problem(sql.FieldLT(FieldCorrectAttempts, v))
}

// CorrectAttemptsLTE applies the LTE predicate on the "correct_attempts" field.
func CorrectAttemptsLTE(v int) predicate.Problem {
	return predicate.Problem(sql.FieldLTE(FieldCorrectAttempts, v))
}

// CorrectRateEQ applies the EQ predicate on the "correct_rate" field.
func CorrectRateEQ(v int) predicate.Problem {
	return predicate.Problem(sql.FieldEQ(FieldCorrectRate, v))
}

// CorrectRateNEQ applies the NEQ predicate on the "correct_rate" field.
func CorrectRateNEQ(v int) predicate.Problem {
	return predicate.Problem(sql.FieldNEQ(FieldCorrectRate, v))
}

// CorrectRateIn applies the In predicate on the "correct_rate" field.
func CorrectRateIn(vs ...int) predicate.Problem {
	return predicate.Problem(sql.FieldIn(FieldCorrectRate, vs...))
}

// CorrectRateNotIn applies the NotIn predicate on the "correct_rate" field.
func CorrectRateNotIn(vs ...int) predicate.Problem {
	return predicate.Problem(sql.FieldNotIn(FieldCorrectRate, vs...))
}

// CorrectRateGT applies the GT predicate on the "correct_rate" field.
func CorrectRateGT(v int) predicate.Problem {
	return predicate.Problem(sql.FieldGT(FieldCorrectRate, v))
}

// CorrectRateGTE applies the GTE predicate on the "correct_rate" field.
func CorrectRateGTE(v int) predicate.Problem {
	return predicate.Problem(sql.FieldGTE(FieldCorrectRate, v))
}

// CorrectRateLT applies the LT predicate on the "correct_rate" field.
func CorrectRateLT(v int) predicate.Problem {
	return predicate.Problem(sql.FieldLT(FieldCorrectRate, v))
}

// CorrectRateLTE applies the LTE predicate on the "correct_rate" field.
func CorrectRateLTE(v int) predicate.Problem {
	return predicate.Problem(sql.FieldLTE(FieldCorrectRate, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Problem {
	return predicate.Problem(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Problem {
	return predicate.Problem(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Problem {
	return predicate.Problem(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Problem {
	return predicate.Problem(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Problem {
	return predicate.Problem(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Problem {
	return predicate.Problem(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Problem {
	return predicate.Problem(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Problem {
	return predicate.Problem(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Problem {
	return predicate.Problem(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Problem {
	return predicate.Problem(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Problem {
	return predicate.Problem(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Problem {
	return predicate.Problem(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Problem {
	return predicate.Problem(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Problem {
	return predicate.Problem(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Problem {
	return predicate.Problem(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Problem {
	return predicate.Problem(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasSteps applies the HasEdge predicate on the "steps" edge.
func HasSteps() predicate.Problem {
	return predicate.Problem(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, StepsTable, StepsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStepsWith applies the HasEdge predicate on the "steps" edge with a given conditions (other predicates).
func HasStepsWith(preds ...predicate.ProblemStep) predicate.Problem {
	return predicate.Problem(func(s *sql.Selector) {
		step := newStepsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAttempts applies the HasEdge predicate on the "attempts" edge.
func HasAttempts() predicate.Problem {
	return predicate.Problem(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AttemptsTable, AttemptsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAttemptsWith applies the HasEdge predicate on the "attempts" edge with a given conditions (other predicates).
func HasAttemptsWith(preds ...predicate.Attempt) predicate.Problem {
	return predicate.Problem(func(s *sql.Selector) {
		step := newAttemptsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Problem) predicate.Problem {
	return predicate.Problem(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Problem) predicate.Problem {
	return predicate.Problem(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Problem) predicate.Problem {
	return predicate.Problem(sql.NotPredicates(p))
}
