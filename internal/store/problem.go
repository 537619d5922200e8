package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/thinkwise-edu/thinkwise/ent"
	"github.com/thinkwise-edu/thinkwise/ent/attempt"
	"github.com/thinkwise-edu/thinkwise/ent/problem"
	"github.com/thinkwise-edu/thinkwise/ent/problemstep"
	"github.com/thinkwise-edu/thinkwise/internal/exercise"
)

type problemRepo struct {
	client *ent.Client
}

func orderedSteps(q *ent.ProblemStepQuery) {
	q.Order(ent.Asc(problemstep.FieldStepNumber))
}

func (r *problemRepo) Create(ctx context.Context, p *exercise.Problem) (*exercise.Problem, error) {
	var id uuid.UUID
	err := withTx(ctx, r.client, func(tx *ent.Tx) error {
		c := tx.Problem.Create().
			SetProblemType(problem.ProblemType(p.Type)).
			SetAnswerFormat(problem.AnswerFormat(p.Format)).
			SetDifficulty(problem.Difficulty(p.Difficulty)).
			SetTitle(p.Title).
			SetContent(p.Content).
			SetCorrectAnswer(p.CorrectAnswer).
			SetExplanation(p.Explanation).
			SetSubject(p.Subject).
			SetGrade(p.Grade).
			SetGeneratedBy(problem.GeneratedBy(p.GeneratedBy)).
			SetGeneratorModel(p.Model).
			SetReviewed(p.Reviewed).
			SetActive(p.Active)
		if p.Options != nil {
			c.SetOptions(p.Options)
		}
		if p.Hints != nil {
			c.SetHints(p.Hints)
		}

		created, err := c.Save(ctx)
		if err != nil {
			return fmt.Errorf("save problem: %w", err)
		}
		id = created.ID

		if len(p.Steps) == 0 {
			return nil
		}
		builders := make([]*ent.ProblemStepCreate, len(p.Steps))
		for i, s := range p.Steps {
			num := s.StepNumber
			if num <= 0 {
				num = i + 1
			}
			b := tx.ProblemStep.Create().
				SetProblemID(created.ID).
				SetStepNumber(num).
				SetTitle(s.Title).
				SetDescription(s.Description).
				SetHint(s.Hint).
				SetCorrectAnswer(s.CorrectAnswer)
			if s.Options != nil {
				b.SetOptions(s.Options)
			}
			builders[i] = b
		}
		if _, err := tx.ProblemStep.CreateBulk(builders...).Save(ctx); err != nil {
			return fmt.Errorf("save steps: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.Get(ctx, id)
}

func (r *problemRepo) Get(ctx context.Context, id uuid.UUID) (*exercise.Problem, error) {
	p, err := r.client.Problem.Query().
		Where(problem.ID(id)).
		WithSteps(orderedSteps).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("problem %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("get problem %s: %w", id, err)
	}
	return problemFromEnt(p), nil
}

func (r *problemRepo) List(ctx context.Context, f ProblemFilter) ([]*exercise.Problem, error) {
	q := r.client.Problem.Query()
	if f.Type != "" {
		q.Where(problem.ProblemTypeEQ(problem.ProblemType(f.Type)))
	}
	if f.Difficulty != "" {
		q.Where(problem.DifficultyEQ(problem.Difficulty(f.Difficulty)))
	}
	if f.Grade > 0 {
		q.Where(problem.Grade(f.Grade))
	}
	if f.Reviewed != nil {
		q.Where(problem.Reviewed(*f.Reviewed))
	}
	if f.Active != nil {
		q.Where(problem.Active(*f.Active))
	}
	if f.WithSteps {
		q.WithSteps(orderedSteps)
	}
	q.Order(ent.Desc(problem.FieldCreatedAt))
	if f.Limit > 0 {
		q.Limit(f.Limit)
	}
	if f.Offset > 0 {
		q.Offset(f.Offset)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list problems: %w", err)
	}
	out := make([]*exercise.Problem, len(rows))
	for i, p := range rows {
		out[i] = problemFromEnt(p)
	}
	return out, nil
}

func (r *problemRepo) Update(ctx context.Context, id uuid.UUID, patch ProblemPatch) (*exercise.Problem, error) {
	u := r.client.Problem.UpdateOneID(id)
	if patch.Title != nil {
		u.SetTitle(*patch.Title)
	}
	if patch.Content != nil {
		u.SetContent(*patch.Content)
	}
	if patch.CorrectAnswer != nil {
		u.SetCorrectAnswer(*patch.CorrectAnswer)
	}
	if patch.Explanation != nil {
		u.SetExplanation(*patch.Explanation)
	}
	if patch.Subject != nil {
		u.SetSubject(*patch.Subject)
	}
	if patch.Difficulty != nil {
		u.SetDifficulty(problem.Difficulty(*patch.Difficulty))
	}
	if patch.Grade != nil {
		u.SetGrade(*patch.Grade)
	}
	if patch.Options != nil {
		u.SetOptions(*patch.Options)
	}
	if patch.Hints != nil {
		u.SetHints(*patch.Hints)
	}
	if patch.Reviewed != nil {
		u.SetReviewed(*patch.Reviewed)
	}
	if patch.Active != nil {
		u.SetActive(*patch.Active)
	}

	if err := u.Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("problem %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("update problem %s: %w", id, err)
	}
	return r.Get(ctx, id)
}

func (r *problemRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return withTx(ctx, r.client, func(tx *ent.Tx) error {
		if _, err := tx.Attempt.Delete().Where(attempt.ProblemID(id)).Exec(ctx); err != nil {
			return fmt.Errorf("delete attempts: %w", err)
		}
		if _, err := tx.ProblemStep.Delete().Where(problemstep.ProblemID(id)).Exec(ctx); err != nil {
			return fmt.Errorf("delete steps: %w", err)
		}
		if err := tx.Problem.DeleteOneID(id).Exec(ctx); err != nil {
			if ent.IsNotFound(err) {
				return fmt.Errorf("problem %s: %w", id, ErrNotFound)
			}
			return fmt.Errorf("delete problem %s: %w", id, err)
		}
		return nil
	})
}
