package progress

import (
	"context"
	"errors"
	"fmt"

	"github.com/abhisek/eduvoyager/internal/learner"
	"github.com/abhisek/eduvoyager/internal/store"
)

// ErrEmailTaken is returned by Register when the email already has an
// account.
var ErrEmailTaken = errors.New("email already registered")

// ErrInvalidCredentials is returned by Login for an unknown email or a
// wrong password. The two cases are deliberately indistinguishable.
var ErrInvalidCredentials = errors.New("invalid email or password")

// Manager handles account lifecycle: registration, login, resuming the
// persisted session, logout and deletion. It hands out Sessions.
type Manager struct {
	accounts store.AccountRepo
	sessions store.SessionRepo
	events   store.EventRepo
}

// NewManager creates a Manager over the given repositories.
func NewManager(accounts store.AccountRepo, sessions store.SessionRepo, events store.EventRepo) *Manager {
	return &Manager{accounts: accounts, sessions: sessions, events: events}
}

// Register creates a new account with zeroed stats and signs it in. The
// NSQF level stays 0 until the first assessment derives it.
func (m *Manager) Register(ctx context.Context, profile learner.Profile, password string) (*Session, error) {
	rec := store.AccountRecord{
		Profile:  profile,
		Password: password,
		Stats: learner.Stats{
			Badges: []string{},
		},
	}

	created, err := m.accounts.Register(ctx, rec)
	if err != nil {
		return nil, fmt.Errorf("register account: %w", err)
	}
	if !created {
		return nil, ErrEmailTaken
	}

	if err := m.sessions.Set(ctx, profile.Email); err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}
	return NewSession(&rec, m.accounts, m.events), nil
}

// Login authenticates and signs in an existing account.
func (m *Manager) Login(ctx context.Context, email, password string) (*Session, error) {
	rec, err := m.accounts.Authenticate(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("authenticate: %w", err)
	}
	if rec == nil {
		return nil, ErrInvalidCredentials
	}

	if err := m.sessions.Set(ctx, email); err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}
	return NewSession(rec, m.accounts, m.events), nil
}

// Resume restores the session persisted from a previous run. Returns
// (nil, nil) when nobody is signed in. A session pointing at a deleted
// account is cleared and treated as signed out.
func (m *Manager) Resume(ctx context.Context) (*Session, error) {
	email, err := m.sessions.Current(ctx)
	if err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}
	if email == "" {
		return nil, nil
	}

	rec, err := m.accounts.Get(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("load account: %w", err)
	}
	if rec == nil {
		if err := m.sessions.Clear(ctx); err != nil {
			return nil, fmt.Errorf("clear stale session: %w", err)
		}
		return nil, nil
	}

	return NewSession(rec, m.accounts, m.events), nil
}

// Logout ends the active session. Account data is untouched.
func (m *Manager) Logout(ctx context.Context) error {
	if err := m.sessions.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// DeleteAccount removes the account and ends any session pointing at it.
func (m *Manager) DeleteAccount(ctx context.Context, email string) error {
	if err := m.accounts.Delete(ctx, email); err != nil {
		return fmt.Errorf("delete account: %w", err)
	}

	current, err := m.sessions.Current(ctx)
	if err != nil {
		return fmt.Errorf("read session: %w", err)
	}
	if current == email {
		if err := m.sessions.Clear(ctx); err != nil {
			return fmt.Errorf("clear session: %w", err)
		}
	}
	return nil
}
