package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/thinkwise-edu/thinkwise/ent"
	"github.com/thinkwise-edu/thinkwise/ent/user"
	"github.com/thinkwise-edu/thinkwise/internal/exercise"
)

// ErrConflict is returned when a unique constraint would be violated.
var ErrConflict = errors.New("already exists")

type userRepo struct {
	client *ent.Client
}

func (r *userRepo) Create(ctx context.Context, u *exercise.User) (*exercise.User, error) {
	role := u.Role
	if role == "" {
		role = exercise.RoleStudent
	}
	sub := u.Subscription
	if sub == "" {
		sub = exercise.SubscriptionFree
	}

	created, err := r.client.User.Create().
		SetEmail(strings.ToLower(strings.TrimSpace(u.Email))).
		SetName(u.Name).
		SetRole(user.Role(role)).
		SetSubscription(user.Subscription(sub)).
		SetNillableGrade(u.Grade).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("user %s: %w", u.Email, ErrConflict)
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return userFromEnt(created), nil
}

func (r *userRepo) Get(ctx context.Context, id uuid.UUID) (*exercise.User, error) {
	u, err := r.client.User.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("user %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("get user %s: %w", id, err)
	}
	return userFromEnt(u), nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*exercise.User, error) {
	u, err := r.client.User.Query().
		Where(user.Email(strings.ToLower(strings.TrimSpace(email)))).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("user %s: %w", email, ErrNotFound)
		}
		return nil, fmt.Errorf("get user %s: %w", email, err)
	}
	return userFromEnt(u), nil
}

func (r *userRepo) SetRole(ctx context.Context, id uuid.UUID, role exercise.Role) (*exercise.User, error) {
	u, err := r.client.User.UpdateOneID(id).
		SetRole(user.Role(role)).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("user %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("set role: %w", err)
	}
	return userFromEnt(u), nil
}

func (r *userRepo) List(ctx context.Context, f UserFilter) ([]*exercise.User, int, error) {
	q := r.client.User.Query()
	if f.Role != "" {
		q.Where(user.RoleEQ(user.Role(f.Role)))
	}
	if f.Subscription != "" {
		q.Where(user.SubscriptionEQ(user.Subscription(f.Subscription)))
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		q.Where(user.Or(user.EmailContainsFold(s), user.NameContainsFold(s)))
	}

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}

	q.Order(ent.Desc(user.FieldCreatedAt))
	if f.Limit > 0 {
		q.Limit(f.Limit)
	}
	if f.Offset > 0 {
		q.Offset(f.Offset)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}

	out := make([]*exercise.User, len(rows))
	for i, u := range rows {
		out[i] = userFromEnt(u)
	}
	return out, total, nil
}
