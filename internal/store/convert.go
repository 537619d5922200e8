package store

import (
	"github.com/thinkwise-edu/thinkwise/ent"
	"github.com/thinkwise-edu/thinkwise/ent/schema"
	"github.com/thinkwise-edu/thinkwise/internal/exercise"
)

func problemFromEnt(p *ent.Problem) *exercise.Problem {
	out := &exercise.Problem{
		ID:              p.ID,
		Type:            exercise.Type(p.ProblemType),
		Format:          exercise.AnswerFormat(p.AnswerFormat),
		Difficulty:      exercise.Difficulty(p.Difficulty),
		Title:           p.Title,
		Content:         p.Content,
		CorrectAnswer:   p.CorrectAnswer,
		Explanation:     p.Explanation,
		Subject:         p.Subject,
		Grade:           p.Grade,
		Options:         p.Options,
		Hints:           p.Hints,
		GeneratedBy:     exercise.Source(p.GeneratedBy),
		Model:           p.GeneratorModel,
		Reviewed:        p.Reviewed,
		Active:          p.Active,
		TotalAttempts:   p.TotalAttempts,
		CorrectAttempts: p.CorrectAttempts,
		CorrectRate:     p.CorrectRate,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
	for _, s := range p.Edges.Steps {
		out.Steps = append(out.Steps, exercise.Step{
			ID:            s.ID,
			StepNumber:    s.StepNumber,
			Title:         s.Title,
			Description:   s.Description,
			Hint:          s.Hint,
			Options:       s.Options,
			CorrectAnswer: s.CorrectAnswer,
		})
	}
	return out
}

func attemptFromEnt(a *ent.Attempt) *exercise.Attempt {
	out := &exercise.Attempt{
		ID:        a.ID,
		UserID:    a.UserID,
		ProblemID: a.ProblemID,
		Answer:    a.Answer,
		IsCorrect: a.IsCorrect,
		Score:     a.Score,
		Feedback:  a.Feedback,
		Method:    a.GradingMethod,
		TimeSpent: a.TimeSpent,
		HintUsed:  a.HintUsed,
		CreatedAt: a.CreatedAt,
	}
	for _, o := range a.StepResults {
		out.StepResults = append(out.StepResults, exercise.StepResult{
			StepNumber: o.StepNumber,
			Answer:     o.Answer,
			IsCorrect:  o.IsCorrect,
			Score:      o.Score,
			Feedback:   o.Feedback,
			Reasoning:  o.Reasoning,
			Method:     o.Method,
		})
	}
	if p := a.Edges.Problem; p != nil {
		out.ProblemTitle = p.Title
		out.ProblemType = exercise.Type(p.ProblemType)
	}
	return out
}

func toOutcomes(results []exercise.StepResult) []schema.StepOutcome {
	if len(results) == 0 {
		return nil
	}
	out := make([]schema.StepOutcome, len(results))
	for i, r := range results {
		out[i] = schema.StepOutcome{
			StepNumber: r.StepNumber,
			Answer:     r.Answer,
			IsCorrect:  r.IsCorrect,
			Score:      r.Score,
			Feedback:   r.Feedback,
			Reasoning:  r.Reasoning,
			Method:     r.Method,
		}
	}
	return out
}

func userFromEnt(u *ent.User) *exercise.User {
	return &exercise.User{
		ID:           u.ID,
		Email:        u.Email,
		Name:         u.Name,
		Role:         exercise.Role(u.Role),
		Subscription: exercise.Subscription(u.Subscription),
		Grade:        u.Grade,
		CreatedAt:    u.CreatedAt,
	}
}
