package progress

import (
	"context"
	"errors"
	"testing"

	"github.com/abhisek/eduvoyager/internal/learner"
)

func newTestManager() (*Manager, *mockAccountRepo, *mockSessionRepo) {
	accounts := newMockAccountRepo()
	sessions := &mockSessionRepo{}
	return NewManager(accounts, sessions, &mockEventRepo{}), accounts, sessions
}

func testProfile(email string) learner.Profile {
	return learner.Profile{
		Email:          email,
		FirstName:      "Asha",
		LastName:       "Kumar",
		EducationStage: learner.StageDiscovery,
	}
}

func TestRegisterSignsIn(t *testing.T) {
	m, _, sessions := newTestManager()
	ctx := context.Background()

	s, err := m.Register(ctx, testProfile("asha@example.com"), "pw")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	// All zeroes until the first assessment derives a level.
	if s.Stats.XP != 0 || s.Stats.Streak != 0 || s.Stats.CompletedModules != 0 || s.Stats.CurrentNSQFLevel != 0 {
		t.Errorf("fresh stats = %+v, want zeroed", s.Stats)
	}
	if s.Roadmap != nil {
		t.Error("fresh account should have no roadmap")
	}
	if sessions.current != "asha@example.com" {
		t.Errorf("session = %q, want asha@example.com", sessions.current)
	}
}

func TestRegisterDuplicate(t *testing.T) {
	m, _, _ := newTestManager()
	ctx := context.Background()

	if _, err := m.Register(ctx, testProfile("dup@example.com"), "pw"); err != nil {
		t.Fatalf("register: %v", err)
	}
	_, err := m.Register(ctx, testProfile("dup@example.com"), "other")
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("err = %v, want ErrEmailTaken", err)
	}
}

func TestLogin(t *testing.T) {
	m, _, sessions := newTestManager()
	ctx := context.Background()

	if _, err := m.Register(ctx, testProfile("asha@example.com"), "pw"); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := m.Logout(ctx); err != nil {
		t.Fatalf("logout: %v", err)
	}

	s, err := m.Login(ctx, "asha@example.com", "pw")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if s.Profile.FirstName != "Asha" {
		t.Errorf("profile = %+v", s.Profile)
	}
	if sessions.current != "asha@example.com" {
		t.Error("login must set the session")
	}

	_, err = m.Login(ctx, "asha@example.com", "wrong")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
	_, err = m.Login(ctx, "ghost@example.com", "pw")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials for unknown email", err)
	}
}

func TestResume(t *testing.T) {
	m, _, _ := newTestManager()
	ctx := context.Background()

	// Nobody signed in.
	s, err := m.Resume(ctx)
	if err != nil {
		t.Fatalf("resume (signed out): %v", err)
	}
	if s != nil {
		t.Fatal("expected nil session when signed out")
	}

	if _, err := m.Register(ctx, testProfile("asha@example.com"), "pw"); err != nil {
		t.Fatalf("register: %v", err)
	}

	s, err = m.Resume(ctx)
	if err != nil {
		t.Fatalf("resume: %v", err)
	}
	if s == nil || s.Profile.Email != "asha@example.com" {
		t.Fatalf("resumed session = %+v", s)
	}
}

func TestResumeStaleSession(t *testing.T) {
	m, accounts, sessions := newTestManager()
	ctx := context.Background()

	if _, err := m.Register(ctx, testProfile("gone@example.com"), "pw"); err != nil {
		t.Fatalf("register: %v", err)
	}
	// Account removed out from under the session.
	if err := accounts.Delete(ctx, "gone@example.com"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	s, err := m.Resume(ctx)
	if err != nil {
		t.Fatalf("resume: %v", err)
	}
	if s != nil {
		t.Fatal("stale session must resolve to signed out")
	}
	if sessions.current != "" {
		t.Error("stale session must be cleared")
	}
}

func TestDeleteAccountClearsOwnSession(t *testing.T) {
	m, accounts, sessions := newTestManager()
	ctx := context.Background()

	if _, err := m.Register(ctx, testProfile("asha@example.com"), "pw"); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := m.DeleteAccount(ctx, "asha@example.com"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, ok := accounts.records["asha@example.com"]; ok {
		t.Error("account should be gone")
	}
	if sessions.current != "" {
		t.Error("deleting the signed-in account must end the session")
	}
}

func TestDeleteOtherAccountKeepsSession(t *testing.T) {
	m, _, sessions := newTestManager()
	ctx := context.Background()

	if _, err := m.Register(ctx, testProfile("other@example.com"), "pw"); err != nil {
		t.Fatalf("register other: %v", err)
	}
	if _, err := m.Register(ctx, testProfile("asha@example.com"), "pw"); err != nil {
		t.Fatalf("register: %v", err)
	}

	if err := m.DeleteAccount(ctx, "other@example.com"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if sessions.current != "asha@example.com" {
		t.Error("deleting another account must not end the session")
	}
}
