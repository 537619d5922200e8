// Code generated by ent, DO NOT EDIT.

package aigenerationlog

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/thinkwise-edu/thinkwise/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.AIGenerationLog {
	return predicate.AIGenerationLog(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.AIGenerationLog {
	return predicate.AIGenerationLog(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.AIGenerationLog {
	return predicate.AIGenerationLog(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.AIGenerationLog {
	return predicate.AIGenerationLog(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.AIGenerationLog {
	return predicate.AIGenerationLog(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.AIGenerationLog {
	return predicate.AIGenerationLog(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.AIGenerationLog {
	return predicate.AIGenerationLog(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.AIGenerationLog {
	return predicate.AIGenerationLog(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.AIGenerationLog {
	return predicate.AIGenerationLog(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.AIGenerationLog {
	return predicate.AIGenerationLog(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.AIGenerationLog {
	return predicate.AIGenerationLog(sql.FieldEQ(FieldTimestamp, v))
}

// ProblemType applies equality check predicate on the "problem_type" field. It's identical to ProblemTypeEQ.
func ProblemType(v string) predicate.AIGenerationLog {
	return predicate.AIGenerationLog(sql.FieldEQ(FieldProblemType, v))
}

// Model applies equality check predicate on the "model" field. It's identical to ModelEQ.
func Model(v string) predicate.AIGenerationLog {
	return predicate.AIGenerationLog(sql.FieldEQ(FieldModel, v))
}

// Success applies equality check predicate on the "success" field. It's identical to SuccessEQ.
func Success(v bool) predicate.AIGenerationLog {
	return predicate.AIGenerationLog(sql.FieldEQ(FieldSuccess, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.AIGenerationLog {
	return predicate.AIGenerationLog(sql.FieldEQ(FieldErrorMessage, v))
}

// ProblemID applies equality check predicate on the "problem_id" field. It's identical to ProblemIDEQ.
func ProblemID(v uuid.UUID) predicate.AIGenerationLog {
	return predicate.AIGenerationLog(sql.FieldEQ(FieldProblemID, v))
}

// InputTokens applies equality check predicate on the "input_tokens" field. It's identical to InputTokensEQ.
func InputTokens(v int) predicate.AIGenerationLog {
	return predicate.AIGenerationLog(sql.FieldEQ(FieldInputTokens, v))
}

// OutputTokens applies equality check predicate on the "output_tokens" field. It's identical to OutputTokensEQ.
func OutputTokens(v int) predicate.AIGenerationLog {
	return predicate.AIGenerationLog(sql.FieldEQ(FieldOutputTokens, v))
}

// Cost applies equality check predicate on the "cost" field. It's identical to CostEQ.
func Cost(v float64) predicate.AIGenerationLog {
	return predicate.AIGenerationLog(sql.FieldEQ(FieldCost, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.AIGenerationLog {
	return predicate.AIGenerationLog(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.AIGenerationLog {
	return predicate.AIGenerationLog(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.AIGenerationLog {
	return predicate.AIGenerationLog(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.AIGenerationLog {
	return predicate.AIGenerationLog(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.AIGenerationLog {
	return predicate.AIGenerationLog(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.AIGenerationLog {
	return predicate.AIGenerationLog(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.AIGenerationLog {
	return predicate.AIGenerationLog(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.AIGenerationLog {
	return predicate.AIGenerationLog(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.AIGenerationLog {
	return predicate.AIGenerationLog(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.AIGenerationLog {
	return predicate.AIGenerationLog(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.AIGenerationLog {
	return predicate.AIGenerationLog(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.AIGenerationLog {
	return predicate.AIGenerationLog(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.AIGenerationLog {
	return predicate.AIGenerationLog(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.AIGenerationLog {
	return predicate.AIGenerationLog(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.AIGenerationLog {
	return predicate.AIGenerationLog(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.AIGenerationLog {
	return predicate.AIGenerationLog(sql.FieldLTE(FieldTimestamp, v))
}

// ProblemTypeEQ applies the EQ predicate on the "problem_type" field.
func ProblemTypeEQ(v string) predicate.AIGenerationLog {
	return predicate.AIGenerationLog(sql.FieldEQ(FieldProblemType, v))
}

// ProblemTypeNEQ applies the NEQ predicate on the "problem_type" field.
func ProblemTypeNEQ(v string) predicate.AIGenerationLog {
	return predicate.AIGenerationLog(sql.FieldNEQ(FieldProblemType, v))
}

// ProblemTypeIn applies the In predicate on the "problem_type" field.
func ProblemTypeIn(vs ...string) predicate.AIGenerationLog {
	return predicate.AIGenerationLog(sql.FieldIn(FieldProblemType, vs...))
}

// ProblemTypeNotIn applies the NotIn predicate on the "problem_type" field.
func ProblemTypeNotIn(vs ...string) predicate.AIGenerationLog {
	return predicate.AIGenerationLog(sql.FieldNotIn(FieldProblemType, vs...))
}

// ProblemTypeGT applies the GT predicate on the "problem_type" field.
func ProblemTypeGT(v string) predicate.AIGenerationLog {
	return predicate.AIGenerationLog(sql.FieldGT(FieldProblemType, v))
}

// ProblemTypeGTE applies the GTE predicate on the "problem_type" field.
func ProblemTypeGTE(v string) predicate.AIGenerationLog {
	return predicate.AIGenerationLog(sql.FieldGTE(FieldProblemType, v))
}

// ProblemTypeLT applies the LT predicate on the "problem_type" field.
func ProblemTypeLT(v string) predicate.AIGenerationLog {
	return predicate.AIGenerationLog(sql.FieldLT(FieldProblemType, v))
}

// ProblemTypeLTE applies the LTE predicate on the "problem_type" field.
func ProblemTypeLTE(v string) predicate.AIGenerationLog {
	return predicate.AIGenerationLog(sql.FieldLTE(FieldProblemType, v))
}

// ProblemTypeContains applies the Contains predicate on the "problem_type" field.
func ProblemTypeContains(v string) predicate.AIGenerationLog {
	return predicate.AIGenerationLog(sql.FieldContains(FieldProblemType, v))
}

// ProblemTypeHasPrefix applies the HasPrefix predicate on the "problem_type" field.
func ProblemTypeHasPrefix(v string) predicate.AIGenerationLog {
	return predicate.AIGenerationLog(sql.FieldHasPrefix(FieldProblemType, v))
}

// ProblemTypeHasSuffix applies the HasSuffix predicate on the "problem_type" field.
func ProblemTypeHasSuffix(v string) predicate.AIGenerationLog {
	return predicate.AIGenerationLog(sql.FieldHasSuffix(FieldProblemType, v))
}

// ProblemTypeEqualFold applies the EqualFold predicate on the "problem_type" field.
func ProblemTypeEqualFold(v string) predicate.AIGenerationLog {
	return predicate.AIGenerationLog(sql.FieldEqualFold(FieldProblemType, v))
}

// ProblemTypeContainsFold applies the ContainsFold predicate on the "problem_type" field.
func ProblemTypeContainsFold(v string) predicate.AIGenerationLog {
	return predicate.AIGenerationLog(sql.FieldContainsFold(FieldProblemType, v))
}

// ModelEQ applies the EQ predicate on the "model" field.
func ModelEQ(v string) predicate.AIGenerationLog {
	return predicate.AIGenerationLog(sql.FieldEQ(FieldModel, v))
}

// ModelNEQ applies the NEQ predicate on the "model" field.
func ModelNEQ(v string) predicate.AIGenerationLog {
	return predicate.AIGenerationLog(sql.FieldNEQ(FieldModel, v))
}

// ModelIn applies the In predicate on the "model" field.
func ModelIn(vs ...string) predicate.AIGenerationLog {
	return predicate.AIGenerationLog(sql.FieldIn(FieldModel, vs...))
}

// ModelNotIn applies the NotIn predicate on the "model" field.
func ModelNotIn(vs ...string) predicate.AIGenerationLog {
	return predicate.AIGenerationLog(sql.FieldNotIn(FieldModel, vs...))
}

// ModelGT applies the GT predicate on the "model" field.
func ModelGT(v string) predicate.AIGenerationLog {
	return predicate.AIGenerationLog(sql.FieldGT(FieldModel, v))
}

// ModelGTE applies the GTE predicate on the "model" field.
func ModelGTE(v string) predicate.AIGenerationLog {
	return predicate.AIGenerationLog(sql.FieldGTE(FieldModel, v))
}

// ModelLT applies the LT predicate on the "model" field.
func ModelLT(v string) predicate.AIGenerationLog {
	return predicate.AIGenerationLog(sql.FieldLT(FieldModel, v))
}

// ModelLTE applies the LTE predicate on the "model" field.
func ModelLTE(v string) predicate.AIGenerationLog {
	return predicate.AIGenerationLog(sql.FieldLTE(FieldModel, v))
}

// ModelContains applies the Contains predicate on the "model" field.
func ModelContains(v string) predicate.AIGenerationLog {
	return predicate.AIGenerationLog(sql.FieldContains(FieldModel, v))
}

// ModelHasPrefix applies the HasPrefix predicate on the "model" field.
func ModelHasPrefix(v string) predicate.AIGenerationLog {
	return predicate.AIGenerationLog(sql.FieldHasPrefix(FieldModel, v))
}

// ModelHasSuffix applies the HasSuffix predicate on the "model" field.
func ModelHasSuffix(v string) predicate.AIGenerationLog {
	return predicate.AIGenerationLog(sql.FieldHasSuffix(FieldModel, v))
}

// ModelEqualFold applies the EqualFold predicate on the "model" field.
func ModelEqualFold(v string) predicate.AIGenerationLog {
	return predicate.AIGenerationLog(sql.FieldEqualFold(FieldModel, v))
}

// ModelContainsFold applies the ContainsFold predicate on the "model" field.
func ModelContainsFold(v string) predicate.AIGenerationLog {
	return predicate.AIGenerationLog(sql.FieldContainsFold(FieldModel, v))
}

// SuccessEQ applies the EQ predicate on the "success" field.
func SuccessEQ(v bool) predicate.AIGenerationLog {
	return predicate.AIGenerationLog(sql.FieldEQ(FieldSuccess, v))
}

// SuccessNEQ applies the NEQ predicate on the "success" field.
func SuccessNEQ(v bool) predicate.AIGenerationLog {
	return predicate.AIGenerationLog(sql.FieldNEQ(FieldSuccess, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.AIGenerationLog {
	return predicate.AIGenerationLog(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.AIGenerationLog {
	return predicate.AIGenerationLog(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.AIGenerationLog {
	return predicate.AIGenerationLog(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.AIGenerationLog {
	return predicate.AIGenerationLog(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.AIGenerationLog {
	return predicate.AIGenerationLog(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.AIGenerationLog {
	return predicate.AIGenerationLog(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.AIGenerationLog {
	return predicate.AIGenerationLog(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.AIGenerationLog {
	return predicate.AIGenerationLog(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.AIGenerationLog {
	return predicate.AIGenerationLog(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.AIGenerationLog {
	return predicate.AIGenerationLog(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.AIGenerationLog {
	return predicate.AIGenerationLog(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.AIGenerationLog {
	return predicate.AIGenerationLog(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.AIGenerationLog {
	return predicate.AIGenerationLog(sql.FieldContainsFold(FieldErrorMessage, v))
}

// ProblemIDEQ applies the EQ predicate on the "problem_id" field.
func ProblemIDEQ(v uuid.UUID) predicate.AIGenerationLog {
	return predicate.AIGenerationLog(sql.FieldEQ(FieldProblemID, v))
}

// ProblemIDNEQ applies the NEQ predicate on the "problem_id" field.
func ProblemIDNEQ(v uuid.UUID) predicate.AIGenerationLog {
	return predicate.AIGenerationLog(sql.FieldNEQ(FieldProblemID, v))
}

// ProblemIDIn applies the In predicate on the "problem_id" field.
func ProblemIDIn(vs ...uuid.UUID) predicate.AIGenerationLog {
	return predicate.AIGenerationLog(sql.FieldIn(FieldProblemID, vs...))
}

// ProblemIDNotIn applies the NotIn predicate on the "problem_id" field.
func ProblemIDNotIn(vs ...uuid.UUID) predicate.AIGenerationLog {
	return predicate.AIGenerationLog(sql.FieldNotIn(FieldProblemID, vs...))
}

// ProblemIDGT applies the GT predicate on the "problem_id" field.
func ProblemIDGT(v uuid.UUID) predicate.AIGenerationLog {
	return predicate.AIGenerationLog(sql.FieldGT(FieldProblemID, v))
}

// ProblemIDGTE applies the GTE predicate on the "problem_id" field.
func ProblemIDGTE(v uuid.UUID) predicate.AIGenerationLog {
	return predicate.AIGenerationLog(sql.FieldGTE(FieldProblemID, v))
}

// ProblemIDLT applies the LT predicate on the "problem_id" field.
func ProblemIDLT(v uuid.UUID) predicate.AIGenerationLog {
	return predicate.AIGenerationLog(sql.FieldLT(FieldProblemID, v))
}

// ProblemIDLTE applies the LTE predicate on the "problem_id" field.
func ProblemIDLTE(v uuid.UUID) predicate.AIGenerationLog {
	return predicate.AIGenerationLog(sql.FieldLTE(FieldProblemID, v))
}

// ProblemIDIsNil applies the IsNil predicate on the "problem_id" field.
func ProblemIDIsNil() predicate.AIGenerationLog {
	return predicate.AIGenerationLog(sql.FieldIsNull(FieldProblemID))
}

// ProblemIDNotNil applies the NotNil predicate on the "problem_id" field.
func ProblemIDNotNil() predicate.AIGenerationLog {
	return predicate.AIGenerationLog(sql.FieldNotNull(FieldProblemID))
}

// InputTokensEQ applies the EQ predicate on the "input_tokens" field.
func InputTokensEQ(v int) predicate.AIGenerationLog {
	return predicate.AIGenerationLog(sql.FieldEQ(FieldInputTokens, v))
}

// InputTokensNEQ applies the NEQ predicate on the "input_tokens" field.
func InputTokensNEQ(v int) predicate.AIGenerationLog {
	return predicate.AIGenerationLog(sql.FieldNEQ(FieldInputTokens, v))
}

// InputTokensIn applies the In predicate on the "input_tokens" field.
func InputTokensIn(vs ...int) predicate.AIGenerationLog {
	return predicate.AIGenerationLog(sql.FieldIn(FieldInputTokens, vs...))
}

// InputTokensNotIn applies the NotIn predicate on the "input_tokens" field.
func InputTokensNotIn(vs ...int) predicate.AIGenerationLog {
	return predicate.AIGenerationLog(sql.FieldNotIn(FieldInputTokens, vs...))
}

// InputTokensGT applies the GT predicate on the "input_tokens" field.
func InputTokensGT(v int) predicate.AIGenerationLog {
	return predicate.AIGenerationLog(sql.FieldGT(FieldInputTokens, v))
}

// InputTokensGTE applies the GTE predicate on the "input_tokens" field.
func InputTokensGTE(v int) predicate.AIGenerationLog {
	return predicate.AIGenerationLog(sql.FieldGTE(FieldInputTokens, v))
}

// InputTokensLT applies the LT predicate on the "input_tokens" field.
func InputTokensLT(v int) predicate.AIGenerationLog {
	return predicate.AIGenerationLog(sql.FieldLT(FieldInputTokens, v))
}

// InputTokensLTE applies the LTE predicate on the "input_tokens" field.
func InputTokensLTE(v int) predicate.AIGenerationLog {
	return predicate.AIGenerationLog(sql.FieldLTE(FieldInputTokens, v))
}

// OutputTokensEQ applies the EQ predicate on the "output_tokens" field.
func OutputTokensEQ(v int) predicate.AIGenerationLog {
	return predicate.AIGenerationLog(sql.FieldEQ(FieldOutputTokens, v))
}

// OutputTokensNEQ applies the NEQ predicate on the "output_tokens" field.
func OutputTokensNEQ(v int) predicate.AIGenerationLog {
	return predicate.AIGenerationLog(sql.FieldNEQ(FieldOutputTokens, v))
}

// OutputTokensIn applies the In predicate on the "output_tokens" field.
func OutputTokensIn(vs ...int) predicate.AIGenerationLog {
	return predicate.AIGenerationLog(sql.FieldIn(FieldOutputTokens, vs...))
}

// OutputTokensNotIn applies the NotIn predicate on the "output_tokens" field.
func OutputTokensNotIn(vs ...int) predicate.AIGenerationLog {
	return predicate.AIGenerationLog(sql.FieldNotIn(FieldOutputTokens, vs...))
}

// OutputTokensGT applies the GT predicate on the "output_tokens" field.
func OutputTokensGT(v int) predicate.AIGenerationLog {
	return predicate.AIGenerationLog(sql.FieldGT(FieldOutputTokens, v))
}

// OutputTokensGTE applies the GTE predicate on the "output_tokens" field.
func OutputTokensGTE(v int) predicate.AIGenerationLog {
	return predicate.AIGenerationLog(sql.FieldGTE(FieldOutputTokens, v))
}

// OutputTokensLT applies the LT predicate on the "output_tokens" field.
func OutputTokensLT(v int) predicate.AIGenerationLog {
	return predicate.AIGenerationLog(sql.FieldLT(FieldOutputTokens, v))
}

// OutputTokensLTE applies the LTE predicate on the "output_tokens" field.
func OutputTokensLTE(v int) predicate.AIGenerationLog {
	return predicate.AIGenerationLog(sql.FieldLTE(FieldOutputTokens, v))
}

// CostEQ applies the EQ predicate on the "cost" field.
func CostEQ(v float64) predicate.AIGenerationLog {
	return predicate.AIGenerationLog(sql.FieldEQ(FieldCost, v))
}

// CostNEQ applies the NEQ predicate on the "cost" field.
func CostNEQ(v float64) predicate.AIGenerationLog {
	return predicate.AIGenerationLog(sql.FieldNEQ(FieldCost, v))
}

// CostIn applies the In predicate on the "cost" field.
func CostIn(vs ...float64) predicate.AIGenerationLog {
	return predicate.AIGenerationLog(sql.FieldIn(FieldCost, vs...))
}

// CostNotIn applies the NotIn predicate on the "cost" field.
func CostNotIn(vs ...float64) predicate.AIGenerationLog {
	return predicate.AIGenerationLog(sql.FieldNotIn(FieldCost, vs...))
}

// CostGT applies the GT predicate on the "cost" field.
func CostGT(v float64) predicate.AIGenerationLog {
	return predicate.AIGenerationLog(sql.FieldGT(FieldCost, v))
}

// CostGTE applies the GTE predicate on the "cost" field.
func CostGTE(v float64) predicate.AIGenerationLog {
	return predicate.AIGenerationLog(sql.FieldGTE(FieldCost, v))
}

// CostLT applies the LT predicate on the "cost" field.
func CostLT(v float64) predicate.AIGenerationLog {
	return predicate.AIGenerationLog(sql.FieldLT(FieldCost, v))
}

// CostLTE applies the LTE predicate on the "cost" field.
func CostLTE(v float64) predicate.AIGenerationLog {
	return predicate.AIGenerationLog(sql.FieldLTE(FieldCost, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AIGenerationLog) predicate.AIGenerationLog {
	return predicate.AIGenerationLog(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AIGenerationLog) predicate.AIGenerationLog {
	return predicate.AIGenerationLog(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AIGenerationLog) predicate.AIGenerationLog {
	return predicate.AIGenerationLog(sql.NotPredicates(p))
}
