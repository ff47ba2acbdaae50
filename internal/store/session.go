package store

import (
	"context"
	"fmt"

	"github.com/abhisek/eduvoyager/ent"
)

// sessionRepo implements SessionRepo. The table holds at most one row.
type sessionRepo struct {
	client *ent.Client
}

func (r *sessionRepo) Set(ctx context.Context, email string) error {
	if _, err := r.client.AppSession.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("clear previous session: %w", err)
	}
	if _, err := r.client.AppSession.Create().SetEmail(email).Save(ctx); err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	return nil
}

func (r *sessionRepo) Current(ctx context.Context) (string, error) {
	s, err := r.client.AppSession.Query().First(ctx)
	if ent.IsNotFound(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("query session: %w", err)
	}
	return s.Email, nil
}

func (r *sessionRepo) Clear(ctx context.Context) error {
	if _, err := r.client.AppSession.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
