// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/thinkwise-edu/thinkwise/ent/aigenerationlog"
	"github.com/thinkwise-edu/thinkwise/ent/attempt"
	"github.com/thinkwise-edu/thinkwise/ent/llmrequestevent"
	"github.com/thinkwise-edu/thinkwise/ent/problem"
	"github.com/thinkwise-edu/thinkwise/ent/problemstep"
	"github.com/thinkwise-edu/thinkwise/ent/progress"
	"github.com/thinkwise-edu/thinkwise/ent/schema"
	"github.com/thinkwise-edu/thinkwise/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	aigenerationlogMixin := schema.AIGenerationLog{}.Mixin()
	aigenerationlogMixinFields0 := aigenerationlogMixin[0].Fields()
	_ = aigenerationlogMixinFields0
	aigenerationlogFields := schema.AIGenerationLog{}.Fields()
	_ = aigenerationlogFields
	// aigenerationlogDescTimestamp is the schema descriptor for timestamp field.
	aigenerationlogDescTimestamp := aigenerationlogMixinFields0[1].Descriptor()
	// aigenerationlog.DefaultTimestamp holds the default value on creation for the timestamp field.
	aigenerationlog.DefaultTimestamp = aigenerationlogDescTimestamp.Default.(func() time.Time)
	// aigenerationlogDescErrorMessage is the schema descriptor for error_message field.
	aigenerationlogDescErrorMessage := aigenerationlogFields[3].Descriptor()
	// aigenerationlog.DefaultErrorMessage holds the default value on creation for the error_message field.
	aigenerationlog.DefaultErrorMessage = aigenerationlogDescErrorMessage.Default.(string)
	// aigenerationlogDescInputTokens is the schema descriptor for input_tokens field.
	aigenerationlogDescInputTokens := aigenerationlogFields[5].Descriptor()
	// aigenerationlog.DefaultInputTokens holds the default value on creation for the input_tokens field.
	aigenerationlog.DefaultInputTokens = aigenerationlogDescInputTokens.Default.(int)
	// aigenerationlogDescOutputTokens is the schema descriptor for output_tokens field.
	aigenerationlogDescOutputTokens := aigenerationlogFields[6].Descriptor()
	// aigenerationlog.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	aigenerationlog.DefaultOutputTokens = aigenerationlogDescOutputTokens.Default.(int)
	// aigenerationlogDescCost is the schema descriptor for cost field.
	aigenerationlogDescCost := aigenerationlogFields[7].Descriptor()
	// aigenerationlog.DefaultCost holds the default value on creation for the cost field.
	aigenerationlog.DefaultCost = aigenerationlogDescCost.Default.(float64)
	attemptFields := schema.Attempt{}.Fields()
	_ = attemptFields
	// attemptDescScore is the schema descriptor for score field.
	attemptDescScore := attemptFields[5].Descriptor()
	// attempt.ScoreValidator is a validator for the "score" field. It is called by the builders before save.
	attempt.ScoreValidator = attemptDescScore.Validators[0].(func(int) error)
	// attemptDescFeedback is the schema descriptor for feedback field.
	attemptDescFeedback := attemptFields[6].Descriptor()
	// attempt.DefaultFeedback holds the default value on creation for the feedback field.
	attempt.DefaultFeedback = attemptDescFeedback.Default.(string)
	// attemptDescGradingMethod is the schema descriptor for grading_method field.
	attemptDescGradingMethod := attemptFields[8].Descriptor()
	// attempt.DefaultGradingMethod holds the default value on creation for the grading_method field.
	attempt.DefaultGradingMethod = attemptDescGradingMethod.Default.(string)
	// attemptDescTimeSpent is the schema descriptor for time_spent field.
	attemptDescTimeSpent := attemptFields[9].Descriptor()
	// attempt.DefaultTimeSpent holds the default value on creation for the time_spent field.
	attempt.DefaultTimeSpent = attemptDescTimeSpent.Default.(int)
	// attempt.TimeSpentValidator is a validator for the "time_spent" field. It is called by the builders before save.
	attempt.TimeSpentValidator = attemptDescTimeSpent.Validators[0].(func(int) error)
	// attemptDescHintUsed is the schema descriptor for hint_used field.
	attemptDescHintUsed := attemptFields[10].Descriptor()
	// attempt.DefaultHintUsed holds the default value on creation for the hint_used field.
	attempt.DefaultHintUsed = attemptDescHintUsed.Default.(bool)
	// attemptDescCreatedAt is the schema descriptor for created_at field.
	attemptDescCreatedAt := attemptFields[11].Descriptor()
	// attempt.DefaultCreatedAt holds the default value on creation for the created_at field.
	attempt.DefaultCreatedAt = attemptDescCreatedAt.Default.(func() time.Time)
	// attemptDescID is the schema descriptor for id field.
	attemptDescID := attemptFields[0].Descriptor()
	// attempt.DefaultID holds the default value on creation for the id field.
	attempt.DefaultID = attemptDescID.Default.(func() uuid.UUID)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	problemFields := schema.Problem{}.Fields()
	_ = problemFields
	// problemDescTitle is the schema descriptor for title field.
	problemDescTitle := problemFields[4].Descriptor()
	// problem.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	problem.TitleValidator = problemDescTitle.Validators[0].(func(string) error)
	// problemDescExplanation is the schema descriptor for explanation field.
	problemDescExplanation := problemFields[7].Descriptor()
	// problem.DefaultExplanation holds the default value on creation for the explanation field.
	problem.DefaultExplanation = problemDescExplanation.Default.(string)
	// problemDescSubject is the schema descriptor for subject field.
	problemDescSubject := problemFields[8].Descriptor()
	// problem.DefaultSubject holds the default value on creation for the subject field.
	problem.DefaultSubject = problemDescSubject.Default.(string)
	// problemDescGrade is the schema descriptor for grade field.
	problemDescGrade := problemFields[9].Descriptor()
	// problem.GradeValidator is a validator for the "grade" field. It is called by the builders before save.
	problem.GradeValidator = problemDescGrade.Validators[0].(func(int) error)
	// problemDescGeneratorModel is the schema descriptor for generator_model field.
	problemDescGeneratorModel := problemFields[13].Descriptor()
	// problem.DefaultGeneratorModel holds the default value on creation for the generator_model field.
	problem.DefaultGeneratorModel = problemDescGeneratorModel.Default.(string)
	// problemDescReviewed is the schema descriptor for reviewed field.
	problemDescReviewed := problemFields[14].Descriptor()
	// problem.DefaultReviewed holds the default value on creation for the reviewed field.
	problem.DefaultReviewed = problemDescReviewed.Default.(bool)
	// problemDescActive is the schema descriptor for active field.
	problemDescActive := problemFields[15].Descriptor()
	// problem.DefaultActive holds the default value on creation for the active field.
	problem.DefaultActive = problemDescActive.Default.(bool)
	// problemDescTotalAttempts is the schema descriptor for total_attempts field.
	problemDescTotalAttempts := problemFields[16].Descriptor()
	// problem.DefaultTotalAttempts holds the default value on creation for the total_attempts field.
	problem.DefaultTotalAttempts = problemDescTotalAttempts.Default.(int)
	// problemDescCorrectAttempts is the schema descriptor for correct_attempts field.
	problemDescCorrectAttempts := problemFields[17].Descriptor()
	// problem.DefaultCorrectAttempts holds the default value on creation for the correct_attempts field.
	problem.DefaultCorrectAttempts = problemDescCorrectAttempts.Default.(int)
	// problemDescCorrectRate is the schema descriptor for correct_rate field.
	problemDescCorrectRate := problemFields[18].Descriptor()
	// problem.DefaultCorrectRate holds the default value on creation for the correct_rate field.
	problem.DefaultCorrectRate = problemDescCorrectRate.Default.(int)
	// problemDescCreatedAt is the schema descriptor for created_at field.
	problemDescCreatedAt := problemFields[19].Descriptor()
	// problem.DefaultCreatedAt holds the default value on creation for the created_at field.
	problem.DefaultCreatedAt = problemDescCreatedAt.Default.(func() time.Time)
	// problemDescUpdatedAt is the schema descriptor for updated_at field.
	problemDescUpdatedAt := problemFields[20].Descriptor()
	// problem.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	problem.DefaultUpdatedAt = problemDescUpdatedAt.Default.(func() time.Time)
	// problem.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	problem.UpdateDefaultUpdatedAt = problemDescUpdatedAt.UpdateDefault.(func() time.Time)
	// problemDescID is the schema descriptor for id field.
	problemDescID := problemFields[0].Descriptor()
	// problem.DefaultID holds the default value on creation for the id field.
	problem.DefaultID = problemDescID.Default.(func() uuid.UUID)
	problemstepFields := schema.ProblemStep{}.Fields()
	_ = problemstepFields
	// problemstepDescStepNumber is the schema descriptor for step_number field.
	problemstepDescStepNumber := problemstepFields[2].Descriptor()
	// problemstep.StepNumberValidator is a validator for the "step_number" field. It is called by the builders before save.
	problemstep.StepNumberValidator = problemstepDescStepNumber.Validators[0].(func(int) error)
	// problemstepDescHint is the schema descriptor for hint field.
	problemstepDescHint := problemstepFields[5].Descriptor()
	// problemstep.DefaultHint holds the default value on creation for the hint field.
	problemstep.DefaultHint = problemstepDescHint.Default.(string)
	// problemstepDescCorrectAnswer is the schema descriptor for correct_answer field.
	problemstepDescCorrectAnswer := problemstepFields[7].Descriptor()
	// problemstep.DefaultCorrectAnswer holds the default value on creation for the correct_answer field.
	problemstep.DefaultCorrectAnswer = problemstepDescCorrectAnswer.Default.(string)
	// problemstepDescID is the schema descriptor for id field.
	problemstepDescID := problemstepFields[0].Descriptor()
	// problemstep.DefaultID holds the default value on creation for the id field.
	problemstep.DefaultID = problemstepDescID.Default.(func() uuid.UUID)
	progressFields := schema.Progress{}.Fields()
	_ = progressFields
	// progressDescDay is the schema descriptor for day field.
	progressDescDay := progressFields[1].Descriptor()
	// progress.DayValidator is a validator for the "day" field. It is called by the builders before save.
	progress.DayValidator = progressDescDay.Validators[0].(func(string) error)
	// progressDescProblemsSolved is the schema descriptor for problems_solved field.
	progressDescProblemsSolved := progressFields[2].Descriptor()
	// progress.DefaultProblemsSolved holds the default value on creation for the problems_solved field.
	progress.DefaultProblemsSolved = progressDescProblemsSolved.Default.(int)
	// progressDescCorrectAnswers is the schema descriptor for correct_answers field.
	progressDescCorrectAnswers := progressFields[3].Descriptor()
	// progress.DefaultCorrectAnswers holds the default value on creation for the correct_answers field.
	progress.DefaultCorrectAnswers = progressDescCorrectAnswers.Default.(int)
	// progressDescTotalTime is the schema descriptor for total_time field.
	progressDescTotalTime := progressFields[4].Descriptor()
	// progress.DefaultTotalTime holds the default value on creation for the total_time field.
	progress.DefaultTotalTime = progressDescTotalTime.Default.(int)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[1].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescName is the schema descriptor for name field.
	userDescName := userFields[2].Descriptor()
	// user.DefaultName holds the default value on creation for the name field.
	user.DefaultName = userDescName.Default.(string)
	// userDescGrade is the schema descriptor for grade field.
	userDescGrade := userFields[5].Descriptor()
	// user.GradeValidator is a validator for the "grade" field. It is called by the builders before save.
	user.GradeValidator = userDescGrade.Validators[0].(func(int) error)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[6].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescID is the schema descriptor for id field.
	userDescID := userFields[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
}
