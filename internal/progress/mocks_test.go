package progress

import (
	"context"

	"github.com/abhisek/eduvoyager/internal/learner"
	"github.com/abhisek/eduvoyager/internal/roadmap"
	"github.com/abhisek/eduvoyager/internal/store"
)

// mockAccountRepo is an in-memory AccountRepo recording every SaveProgress
// call for assertions.
type mockAccountRepo struct {
	records map[string]*store.AccountRecord
	saves   []store.AccountRecord
}

func newMockAccountRepo() *mockAccountRepo {
	return &mockAccountRepo{records: map[string]*store.AccountRecord{}}
}

func (m *mockAccountRepo) Register(_ context.Context, rec store.AccountRecord) (bool, error) {
	if _, ok := m.records[rec.Profile.Email]; ok {
		return false, nil
	}
	r := rec
	m.records[rec.Profile.Email] = &r
	return true, nil
}

func (m *mockAccountRepo) Authenticate(_ context.Context, email, password string) (*store.AccountRecord, error) {
	rec, ok := m.records[email]
	if !ok || rec.Password != password {
		return nil, nil
	}
	r := *rec
	return &r, nil
}

func (m *mockAccountRepo) Get(_ context.Context, email string) (*store.AccountRecord, error) {
	rec, ok := m.records[email]
	if !ok {
		return nil, nil
	}
	r := *rec
	return &r, nil
}

func (m *mockAccountRepo) SaveProgress(_ context.Context, email string, stats learner.Stats, rm *roadmap.Roadmap, history []roadmap.Roadmap) error {
	rec, ok := m.records[email]
	if ok {
		rec.Stats = stats
		rec.CurrentRoadmap = rm
		rec.History = history
	}
	m.saves = append(m.saves, store.AccountRecord{
		Profile:        learner.Profile{Email: email},
		Stats:          stats,
		CurrentRoadmap: rm,
		History:        history,
	})
	return nil
}

func (m *mockAccountRepo) ReplaceStats(_ context.Context, email string, stats learner.Stats) error {
	if rec, ok := m.records[email]; ok {
		rec.Stats = stats
	}
	return nil
}

func (m *mockAccountRepo) ReplaceRoadmap(_ context.Context, email string, rm *roadmap.Roadmap) error {
	if rec, ok := m.records[email]; ok {
		rec.CurrentRoadmap = rm
	}
	return nil
}

func (m *mockAccountRepo) ReplaceHistory(_ context.Context, email string, history []roadmap.Roadmap) error {
	if rec, ok := m.records[email]; ok {
		rec.History = history
	}
	return nil
}

func (m *mockAccountRepo) Delete(_ context.Context, email string) error {
	delete(m.records, email)
	return nil
}

// mockSessionRepo holds the active-session scalar in memory.
type mockSessionRepo struct {
	current string
}

func (m *mockSessionRepo) Set(_ context.Context, email string) error {
	m.current = email
	return nil
}

func (m *mockSessionRepo) Current(_ context.Context) (string, error) {
	return m.current, nil
}

func (m *mockSessionRepo) Clear(_ context.Context) error {
	m.current = ""
	return nil
}

// mockEventRepo records appended progress events.
type mockEventRepo struct {
	progressEvents []store.ProgressEventData
}

func (m *mockEventRepo) AppendLLMRequest(_ context.Context, _ store.LLMRequestEventData) error {
	return nil
}

func (m *mockEventRepo) AppendProgressEvent(_ context.Context, data store.ProgressEventData) error {
	m.progressEvents = append(m.progressEvents, data)
	return nil
}

func (m *mockEventRepo) QueryLLMEvents(_ context.Context, _ store.QueryOpts) ([]store.LLMRequestEventRecord, error) {
	return nil, nil
}

func (m *mockEventRepo) GetLLMEvent(_ context.Context, _ int) (*store.LLMRequestEventRecord, error) {
	return nil, nil
}

func (m *mockEventRepo) LLMUsageByPurpose(_ context.Context) ([]store.LLMUsageStats, error) {
	return nil, nil
}

func (m *mockEventRepo) LLMUsageByModel(_ context.Context) ([]store.LLMModelUsage, error) {
	return nil, nil
}

func (m *mockEventRepo) QueryProgressEvents(_ context.Context, _ store.QueryOpts) ([]store.ProgressEventRecord, error) {
	return nil, nil
}

func (m *mockEventRepo) actions() []string {
	out := make([]string, len(m.progressEvents))
	for i, e := range m.progressEvents {
		out[i] = e.Action
	}
	return out
}
