// Code generated by ent, DO NOT EDIT.

package progress

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/thinkwise-edu/thinkwise/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Progress {
	return predicate.Progress(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Progress {
	return predicate.Progress(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Progress {
	return predicate.Progress(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Progress {
	return predicate.Progress(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Progress {
	return predicate.Progress(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Progress {
	return predicate.Progress(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Progress {
	return predicate.Progress(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v uuid.UUID) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldUserID, v))
}

// Day applies equality check predicate on the "day" field. It's identical to DayEQ.
func Day(v string) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldDay, v))
}

// ProblemsSolved applies equality check predicate on the "problems_solved" field. It's identical to ProblemsSolvedEQ.
func ProblemsSolved(v int) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldProblemsSolved, v))
}

// CorrectAnswers applies equality check predicate on the "correct_answers" field. It's identical to CorrectAnswersEQ.
func CorrectAnswers(v int) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldCorrectAnswers, v))
}

// TotalTime applies equality check predicate on the "total_time" field. It's identical to TotalTimeEQ.
func TotalTime(v int) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldTotalTime, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v uuid.UUID) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v uuid.UUID) predicate.Progress {
	return predicate.Progress(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...uuid.UUID) predicate.Progress {
	return predicate.Progress(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...uuid.UUID) predicate.Progress {
	return predicate.Progress(sql.FieldNotIn(FieldUserID, vs...))
}

// DayEQ applies the EQ predicate on the "day" field.
func DayEQ(v string) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldDay, v))
}

// DayNEQ applies the NEQ predicate on the "day" field.
func DayNEQ(v string) predicate.Progress {
	return predicate.Progress(sql.FieldNEQ(FieldDay, v))
}

// DayIn applies the In predicate on the "day" field.
func DayIn(vs ...string) predicate.Progress {
	return predicate.Progress(sql.FieldIn(FieldDay, vs...))
}

// DayNotIn applies the NotIn predicate on the "day" field.
func DayNotIn(vs ...string) predicate.Progress {
	return predicate.Progress(sql.FieldNotIn(FieldDay, vs...))
}

// DayGT applies the GT predicate on the "day" field.
func DayGT(v string) predicate.Progress {
	return predicate.Progress(sql.FieldGT(FieldDay, v))
}

// DayGTE applies the GTE predicate on the "day" field.
func DayGTE(v string) predicate.Progress {
	return predicate.Progress(sql.FieldGTE(FieldDay, v))
}

// DayLT applies the LT predicate on the "day" field.
func DayLT(v string) predicate.Progress {
	return predicate.Progress(sql.FieldLT(FieldDay, v))
}

// DayLTE applies the LTE predicate on the "day" field.
func DayLTE(v string) predicate.Progress {
	return predicate.Progress(sql.FieldLTE(FieldDay, v))
}

// DayContains applies the Contains predicate on the "day" field.
func DayContains(v string) predicate.Progress {
	return predicate.Progress(sql.FieldContains(FieldDay, v))
}

// DayHasPrefix applies the HasPrefix predicate on the "day" field.
func DayHasPrefix(v string) predicate.Progress {
	return predicate.Progress(sql.FieldHasPrefix(FieldDay, v))
}

// DayHasSuffix applies the HasSuffix predicate on the "day" field.
func DayHasSuffix(v string) predicate.Progress {
	return predicate.Progress(sql.FieldHasSuffix(FieldDay, v))
}

// DayEqualFold applies the EqualFold predicate on the "day" field.
func DayEqualFold(v string) predicate.Progress {
	return predicate.Progress(sql.FieldEqualFold(FieldDay, v))
}

// DayContainsFold applies the ContainsFold predicate on the "day" field.
func DayContainsFold(v string) predicate.Progress {
	return predicate.Progress(sql.FieldContainsFold(FieldDay, v))
}

// ProblemsSolvedEQ applies the EQ predicate on the "problems_solved" field.
func ProblemsSolvedEQ(v int) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldProblemsSolved, v))
}

// ProblemsSolvedNEQ applies the NEQ predicate on the "problems_solved" field.
func ProblemsSolvedNEQ(v int) predicate.Progress {
	return predicate.Progress(sql.FieldNEQ(FieldProblemsSolved, v))
}

// ProblemsSolvedIn applies the In predicate on the "problems_solved" field.
func ProblemsSolvedIn(vs ...int) predicate.Progress {
	return predicate.Progress(sql.FieldIn(FieldProblemsSolved, vs...))
}

// ProblemsSolvedNotIn applies the NotIn predicate on the "problems_solved" field.
func ProblemsSolvedNotIn(vs ...int) predicate.Progress {
	return predicate.Progress(sql.FieldNotIn(FieldProblemsSolved, vs...))
}

// ProblemsSolvedGT applies the GT predicate on the "problems_solved" field.
func ProblemsSolvedGT(v int) predicate.Progress {
	return predicate.Progress(sql.FieldGT(FieldProblemsSolved, v))
}

// ProblemsSolvedGTE applies the GTE predicate on the "problems_solved" field.
func ProblemsSolvedGTE(v int) predicate.Progress {
	return predicate.Progress(sql.FieldGTE(FieldProblemsSolved, v))
}

// ProblemsSolvedLT applies the LT predicate on the "problems_solved" field.
func ProblemsSolvedLT(v int) predicate.Progress {
	return predicate.Progress(sql.FieldLT(FieldProblemsSolved, v))
}

// ProblemsSolvedLTE applies the LTE predicate on the "problems_solved" field.
func ProblemsSolvedLTE(v int) predicate.Progress {
	return predicate.Progress(sql.FieldLTE(FieldProblemsSolved, v))
}

// CorrectAnswersEQ applies the EQ predicate on the "correct_answers" field.
func CorrectAnswersEQ(v int) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldCorrectAnswers, v))
}

// CorrectAnswersNEQ applies the NEQ predicate on the "correct_answers" field.
func CorrectAnswersNEQ(v int) predicate.Progress {
	return predicate.Progress(sql.FieldNEQ(FieldCorrectAnswers, v))
}

// CorrectAnswersIn applies the In predicate on the "correct_answers" field.
func CorrectAnswersIn(vs ...int) predicate.Progress {
	return predicate.Progress(sql.FieldIn(FieldCorrectAnswers, vs...))
}

// CorrectAnswersNotIn applies the NotIn predicate on the "correct_answers" field.
func CorrectAnswersNotIn(vs ...int) predicate.Progress {
	return predicate.Progress(sql.FieldNotIn(FieldCorrectAnswers, vs...))
}

// CorrectAnswersGT applies the GT predicate on the "correct_answers" field.
func CorrectAnswersGT(v int) predicate.Progress {
	return predicate.Progress(sql.FieldGT(FieldCorrectAnswers, v))
}

// CorrectAnswersGTE applies the GTE predicate on the "correct_answers" field.
func CorrectAnswersGTE(v int) predicate.Progress {
	return predicate.Progress(sql.FieldGTE(FieldCorrectAnswers, v))
}

// CorrectAnswersLT applies the LT predicate on the "correct_answers" field.
func CorrectAnswersLT(v int) predicate.Progress {
	return predicate.Progress(sql.FieldLT(FieldCorrectAnswers, v))
}

// CorrectAnswersLTE applies the LTE predicate on the "correct_answers" field.
func CorrectAnswersLTE(v int) predicate.Progress {
	return predicate.Progress(sql.FieldLTE(FieldCorrectAnswers, v))
}

// TotalTimeEQ applies the EQ predicate on the "total_time" field.
func TotalTimeEQ(v int) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldTotalTime, v))
}

// TotalTimeNEQ applies the NEQ predicate on the "total_time" field.
func TotalTimeNEQ(v int) predicate.Progress {
	return predicate.Progress(sql.FieldNEQ(FieldTotalTime, v))
}

// TotalTimeIn applies the In predicate on the "total_time" field.
func TotalTimeIn(vs ...int) predicate.Progress {
	return predicate.Progress(sql.FieldIn(FieldTotalTime, vs...))
}

// TotalTimeNotIn applies the NotIn predicate on the "total_time" field.
func TotalTimeNotIn(vs ...int) predicate.Progress {
	return predicate.Progress(sql.FieldNotIn(FieldTotalTime, vs...))
}

// TotalTimeGT applies the GT predicate on the "total_time" field.
func TotalTimeGT(v int) predicate.Progress {
	return predicate.Progress(sql.FieldGT(FieldTotalTime, v))
}

// TotalTimeGTE applies the GTE predicate on the "total_time" field.
func TotalTimeGTE(v int) predicate.Progress {
	return predicate.Progress(sql.FieldGTE(FieldTotalTime, v))
}

// TotalTimeLT applies the LT predicate on the "total_time" field.
func TotalTimeLT(v int) predicate.Progress {
	return predicate.Progress(sql.FieldLT(FieldTotalTime, v))
}

// TotalTimeLTE applies the LTE predicate on the "total_time" field.
func TotalTimeLTE(v int) predicate.Progress {
	return predicate.Progress(sql.FieldLTE(FieldTotalTime, v))
}

// HasUser applies the HasEdge predicate on the "user" edge.
func HasUser() predicate.Progress {
	return predicate.Progress(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, UserTable, UserColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUserWith applies the HasEdge predicate on the "user" edge with a given conditions (other predicates).
func HasUserWith(preds ...predicate.User) predicate.Progress {
	return predicate.Progress(func(s *sql.Selector) {
		step := newUserStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Progress) predicate.Progress {
	return predicate.Progress(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Progress) predicate.Progress {
	return predicate.Progress(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Progress) predicate.Progress {
	return predicate.Progress(sql.NotPredicates(p))
}
