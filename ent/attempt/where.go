// Code generated by ent, DO NOT EDIT.

package attempt

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/thinkwise-edu/thinkwise/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v uuid.UUID) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldUserID, v))
}

// ProblemID applies equality check predicate on the "problem_id" field. It's identical to ProblemIDEQ.
func ProblemID(v uuid.UUID) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldProblemID, v))
}

// Answer applies equality check predicate on the "answer" field. It's identical to AnswerEQ.
func Answer(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldAnswer, v))
}

// IsCorrect applies equality check predicate on the "is_correct" field. It's identical to IsCorrectEQ.
func IsCorrect(v bool) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldIsCorrect, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldScore, v))
}

// Feedback applies equality check predicate on the "feedback" field. It's identical to FeedbackEQ.
func Feedback(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldFeedback, v))
}

// GradingMethod applies equality check predicate on the "grading_method" field. It's identical to GradingMethodEQ.
func GradingMethod(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldGradingMethod, v))
}

// TimeSpent applies equality check predicate on the "time_spent" field. It's identical to TimeSpentEQ.
func TimeSpent(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldTimeSpent, v))
}

// HintUsed applies equality check predicate on the "hint_used" field. It's identical to HintUsedEQ.
func HintUsed(v bool) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldHintUsed, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldCreatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v uuid.UUID) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v uuid.UUID) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...uuid.UUID) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...uuid.UUID) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldUserID, vs...))
}

// ProblemIDEQ applies the EQ predicate on the "problem_id" field.
func ProblemIDEQ(v uuid.UUID) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldProblemID, v))
}

// ProblemIDNEQ applies the NEQ predicate on the "problem_id" field.
func ProblemIDNEQ(v uuid.UUID) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldProblemID, v))
}

// ProblemIDIn applies the In predicate on the "problem_id" field.
func ProblemIDIn(vs ...uuid.UUID) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldProblemID, vs...))
}

// ProblemIDNotIn applies the NotIn predicate on the "problem_id" field.
func ProblemIDNotIn(vs ...uuid.UUID) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldProblemID, vs...))
}

// AnswerEQ applies the EQ predicate on the "answer" field.
func AnswerEQ(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldAnswer, v))
}

// AnswerNEQ applies the NEQ predicate on the "answer" field.
func AnswerNEQ(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldAnswer, v))
}

// AnswerIn applies the In predicate on the "answer" field.
func AnswerIn(vs ...string) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldAnswer, vs...))
}

// AnswerNotIn applies the NotIn predicate on the "answer" field.
func AnswerNotIn(vs ...string) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldAnswer, vs...))
}

// AnswerGT applies the GT predicate on the "answer" field.
func AnswerGT(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldAnswer, v))
}

// AnswerGTE applies the GTE predicate on the "answer" field.
func AnswerGTE(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldAnswer, v))
}

// AnswerLT applies the LT predicate on the "answer" field.
func AnswerLT(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldAnswer, v))
}

// AnswerLTE applies the LTE predicate on the "answer" field.
func AnswerLTE(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldAnswer, v))
}

// AnswerContains applies the Contains predicate on the "answer" field.
func AnswerContains(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldContains(FieldAnswer, v))
}

// AnswerHasPrefix applies the HasPrefix predicate on the "answer" field.
func AnswerHasPrefix(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldHasPrefix(FieldAnswer, v))
}

// AnswerHasSuffix applies the HasSuffix predicate on the "answer" field.
func AnswerHasSuffix(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldHasSuffix(FieldAnswer, v))
}

// AnswerEqualFold applies the EqualFold predicate on the "answer" field.
func AnswerEqualFold(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEqualFold(FieldAnswer, v))
}

// AnswerContainsFold applies the ContainsFold predicate on the "answer" field.
func AnswerContainsFold(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldContainsFold(FieldAnswer, v))
}

// IsCorrectEQ applies the EQ predicate on the "is_correct" field.
func IsCorrectEQ(v bool) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldIsCorrect, v))
}

// IsCorrectNEQ applies the NEQ predicate on the "is_correct" field.
func IsCorrectNEQ(v bool) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldIsCorrect, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...int) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...int) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldScore, v))
}

// FeedbackEQ applies the EQ predicate on the "feedback" field.
func FeedbackEQ(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldFeedback, v))
}

// FeedbackNEQ applies the NEQ predicate on the "feedback" field.
func FeedbackNEQ(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldFeedback, v))
}

// FeedbackIn applies the In predicate on the "feedback" field.
func FeedbackIn(vs ...string) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldFeedback, vs...))
}

// FeedbackNotIn applies the NotIn predicate on the "feedback" field.
func FeedbackNotIn(vs ...string) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldFeedback, vs...))
}

// FeedbackGT applies the GT predicate on the "feedback" field.
func FeedbackGT(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldFeedback, v))
}

// FeedbackGTE applies the GTE predicate on the "feedback" field.
func FeedbackGTE(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldFeedback, v))
}

// FeedbackLT applies the LT predicate on the "feedback" field.
func FeedbackLT(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldFeedback, v))
}

// FeedbackLTE applies the LTE predicate on the "feedback" field.
func FeedbackLTE(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldFeedback, v))
}

// FeedbackContains applies the Contains predicate on the "feedback" field.
func FeedbackContains(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldContains(FieldFeedback, v))
}

// FeedbackHasPrefix applies the HasPrefix predicate on the "feedback" field.
func FeedbackHasPrefix(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldHasPrefix(FieldFeedback, v))
}

// FeedbackHasSuffix applies the HasSuffix predicate on the "feedback" field.
func FeedbackHasSuffix(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldHasSuffix(FieldFeedback, v))
}

// FeedbackEqualFold applies the EqualFold predicate on the "feedback" field.
func FeedbackEqualFold(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEqualFold(FieldFeedback, v))
}

// FeedbackContainsFold applies the ContainsFold predicate on the "feedback" field.
func FeedbackContainsFold(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldContainsFold(FieldFeedback, v))
}

// StepResultsIsNil applies the IsNil predicate on the "step_results" field.
func StepResultsIsNil() predicate.Attempt {
	return predicate.Attempt(sql.FieldIsNull(FieldStepResults))
}

// StepResultsNotNil applies the NotNil predicate on the "step_results" field.
func StepResultsNotNil() predicate.Attempt {
	return predicate.Attempt(sql.FieldNotNull(FieldStepResults))
}

// GradingMethodEQ applies the EQ predicate on the "grading_method" field.
func GradingMethodEQ(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldGradingMethod, v))
}

// GradingMethodNEQ applies the NEQ predicate on the "grading_method" field.
func GradingMethodNEQ(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldGradingMethod, v))
}

// GradingMethodIn applies the In predicate on the "grading_method" field.
func GradingMethodIn(vs ...string) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldGradingMethod, vs...))
}

// GradingMethodNotIn applies the NotIn predicate on the "grading_method" field.
func GradingMethodNotIn(vs ...string) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldGradingMethod, vs...))
}

// GradingMethodGT applies the GT predicate on the "grading_method" field.
func GradingMethodGT(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldGradingMethod, v))
}

// GradingMethodGTE applies the GTE predicate on the "grading_method" field.
func GradingMethodGTE(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldGradingMethod, v))
}

// GradingMethodLT applies the LT predicate on the "grading_method" field.
func GradingMethodLT(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldGradingMethod, v))
}

// GradingMethodLTE applies the LTE predicate on the "grading_method" field.
func GradingMethodLTE(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldGradingMethod, v))
}

// GradingMethodContains applies the Contains predicate on the "grading_method" field.
func GradingMethodContains(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldContains(FieldGradingMethod, v))
}

// GradingMethodHasPrefix applies the HasPrefix predicate on the "grading_method" field.
func GradingMethodHasPrefix(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldHasPrefix(FieldGradingMethod, v))
}

// GradingMethodHasSuffix applies the HasSuffix predicate on the "grading_method" field.
func GradingMethodHasSuffix(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldHasSuffix(FieldGradingMethod, v))
}

// GradingMethodEqualFold applies the EqualFold predicate on the "grading_method" field.
func GradingMethodEqualFold(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEqualFold(FieldGradingMethod, v))
}

// GradingMethodContainsFold applies the ContainsFold predicate on the "grading_method" field.
func GradingMethodContainsFold(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldContainsFold(FieldGradingMethod, v))
}

// TimeSpentEQ applies the EQ predicate on the "time_spent" field.
func TimeSpentEQ(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldTimeSpent, v))
}

// TimeSpentNEQ applies the NEQ predicate on the "time_spent" field.
func TimeSpentNEQ(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldTimeSpent, v))
}

// TimeSpentIn applies the In predicate on the "time_spent" field.
func TimeSpentIn(vs ...int) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldTimeSpent, vs...))
}

// TimeSpentNotIn applies the NotIn predicate on the "time_spent" field.
func TimeSpentNotIn(vs ...int) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldTimeSpent, vs...))
}

// TimeSpentGT applies the GT predicate on the "time_spent" field.
func TimeSpentGT(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldTimeSpent, v))
}

// TimeSpentGTE applies the GTE predicate on the "time_spent" field.
func TimeSpentGTE(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldTimeSpent, v))
}

// TimeSpentLT applies the LT predicate on the "time_spent" field.
func TimeSpentLT(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldTimeSpent, v))
}

// TimeSpentLTE applies the LTE predicate on the "time_spent" field.
func TimeSpentLTE(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldTimeSpent, v))
}

// HintUsedEQ applies the EQ predicate on the "hint_used" field.
func HintUsedEQ(v bool) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldHintUsed, v))
}

// HintUsedNEQ applies the NEQ predicate on the "hint_used" field.
func HintUsedNEQ(v bool) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldHintUsed, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldCreatedAt, v))
}

// HasProblem applies the HasEdge predicate on the "problem" edge.
func HasProblem() predicate.Attempt {
	return predicate.Attempt(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProblemTable, ProblemColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProblemWith applies the HasEdge predicate on the "problem" edge with a given conditions (other predicates).
func HasProblemWith(preds ...predicate.Problem) predicate.Attempt {
	return predicate.Attempt(func(s *sql.Selector) {
		step := newProblemStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasUser applies the HasEdge predicate on the "user" edge.
func HasUser() predicate.Attempt {
	return predicate.Attempt(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, UserTable, UserColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUserWith applies the HasEdge predicate on the "user" edge with a given conditions (other predicates).
func HasUserWith(preds ...predicate.User) predicate.Attempt {
	return predicate.Attempt(func(s *sql.Selector) {
		step := newUserStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Attempt) predicate.Attempt {
	return predicate.Attempt(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Attempt) predicate.Attempt {
	return predicate.Attempt(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Attempt) predicate.Attempt {
	return predicate.Attempt(sql.NotPredicates(p))
}
