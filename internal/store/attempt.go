package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/thinkwise-edu/thinkwise/ent"
	"github.com/thinkwise-edu/thinkwise/ent/attempt"
	"github.com/thinkwise-edu/thinkwise/ent/progress"
	"github.com/thinkwise-edu/thinkwise/internal/exercise"
)

type attemptRepo struct {
	client *ent.Client
}

// CorrectRate returns round(100 * correct / total), or 0 with no attempts.
func CorrectRate(correct, total int) int {
	if total <= 0 {
		return 0
	}
	return (200*correct + total) / (2 * total)
}

func (r *attemptRepo) Record(ctx context.Context, rec AttemptRecord) (*exercise.Attempt, ProblemStats, error) {
	var (
		saved *ent.Attempt
		stats ProblemStats
	)

	correct := 0
	if rec.IsCorrect {
		correct = 1
	}

	err := withTx(ctx, r.client, func(tx *ent.Tx) error {
		var err error
		saved, err = tx.Attempt.Create().
			SetUserID(rec.UserID).
			SetProblemID(rec.ProblemID).
			SetAnswer(rec.Answer).
			SetIsCorrect(rec.IsCorrect).
			SetScore(rec.Score).
			SetFeedback(rec.Feedback).
			SetStepResults(toOutcomes(rec.StepResults)).
			SetGradingMethod(rec.Method).
			SetTimeSpent(rec.TimeSpent).
			SetHintUsed(rec.HintUsed).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("save attempt: %w", err)
		}

		// Increment in place; the returned row reflects the new counters.
		p, err := tx.Problem.UpdateOneID(rec.ProblemID).
			AddTotalAttempts(1).
			AddCorrectAttempts(correct).
			Save(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return fmt.Errorf("problem %s: %w", rec.ProblemID, ErrNotFound)
			}
			return fmt.Errorf("update problem stats: %w", err)
		}

		rate := CorrectRate(p.CorrectAttempts, p.TotalAttempts)
		if rate != p.CorrectRate {
			if err := tx.Problem.UpdateOneID(p.ID).SetCorrectRate(rate).Exec(ctx); err != nil {
				return fmt.Errorf("update correct rate: %w", err)
			}
		}
		stats = ProblemStats{
			TotalAttempts:   p.TotalAttempts,
			CorrectAttempts: p.CorrectAttempts,
			CorrectRate:     rate,
		}

		return upsertProgress(ctx, tx, rec, correct)
	})
	if err != nil {
		return nil, ProblemStats{}, err
	}
	return attemptFromEnt(saved), stats, nil
}

func upsertProgress(ctx context.Context, tx *ent.Tx, rec AttemptRecord, correct int) error {
	n, err := tx.Progress.Update().
		Where(progress.UserID(rec.UserID), progress.Day(rec.Day)).
		AddProblemsSolved(1).
		AddCorrectAnswers(correct).
		AddTotalTime(rec.TimeSpent).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update progress: %w", err)
	}
	if n > 0 {
		return nil
	}
	_, err = tx.Progress.Create().
		SetUserID(rec.UserID).
		SetDay(rec.Day).
		SetProblemsSolved(1).
		SetCorrectAnswers(correct).
		SetTotalTime(rec.TimeSpent).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create progress: %w", err)
	}
	return nil
}

func (r *attemptRepo) Recent(ctx context.Context, userID uuid.UUID, limit int) ([]*exercise.Attempt, error) {
	q := r.client.Attempt.Query().
		Where(attempt.UserID(userID)).
		WithProblem().
		Order(ent.Desc(attempt.FieldCreatedAt))
	if limit > 0 {
		q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("recent attempts: %w", err)
	}
	return attemptsFromEnt(rows), nil
}

func (r *attemptRepo) ForUser(ctx context.Context, userID uuid.UUID) ([]*exercise.Attempt, error) {
	rows, err := r.client.Attempt.Query().
		Where(attempt.UserID(userID)).
		WithProblem().
		Order(ent.Asc(attempt.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("user attempts: %w", err)
	}
	return attemptsFromEnt(rows), nil
}

func attemptsFromEnt(rows []*ent.Attempt) []*exercise.Attempt {
	out := make([]*exercise.Attempt, len(rows))
	for i, a := range rows {
		out[i] = attemptFromEnt(a)
	}
	return out
}

type progressRepo struct {
	client *ent.Client
}

func (r *progressRepo) ForDay(ctx context.Context, userID uuid.UUID, day string) (DailyProgress, error) {
	p, err := r.client.Progress.Query().
		Where(progress.UserID(userID), progress.Day(day)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return DailyProgress{UserID: userID, Day: day}, nil
		}
		return DailyProgress{}, fmt.Errorf("progress for %s: %w", day, err)
	}
	return DailyProgress{
		UserID:         p.UserID,
		Day:            p.Day,
		ProblemsSolved: p.ProblemsSolved,
		CorrectAnswers: p.CorrectAnswers,
		TotalTime:      p.TotalTime,
	}, nil
}
