package store

import (
	"context"
	"testing"

	"github.com/abhisek/eduvoyager/internal/learner"
	"github.com/abhisek/eduvoyager/internal/roadmap"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testRecord(email string) AccountRecord {
	return AccountRecord{
		Profile: learner.Profile{
			Email:          email,
			FirstName:      "Asha",
			LastName:       "Kumar",
			Designation:    "Student",
			EducationStage: learner.StageDiscovery,
			Age:            19,
		},
		Password: "secret",
		Stats:    learner.Stats{CurrentNSQFLevel: 1},
	}
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestRegisterAndGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.AccountRepo()
	ctx := context.Background()

	created, err := repo.Register(ctx, testRecord("asha@example.com"))
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if !created {
		t.Fatal("expected account to be created")
	}

	rec, err := repo.Get(ctx, "asha@example.com")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec == nil {
		t.Fatal("expected account, got nil")
	}
	if rec.Profile.FirstName != "Asha" {
		t.Errorf("first name = %q, want Asha", rec.Profile.FirstName)
	}
	if rec.Stats.CurrentNSQFLevel != 1 {
		t.Errorf("nsqf level = %d, want 1", rec.Stats.CurrentNSQFLevel)
	}
	if rec.CurrentRoadmap != nil {
		t.Error("fresh account should have no roadmap")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	s := openTestStore(t)
	repo := s.AccountRepo()
	ctx := context.Background()

	if _, err := repo.Register(ctx, testRecord("dup@example.com")); err != nil {
		t.Fatalf("register: %v", err)
	}

	other := testRecord("dup@example.com")
	other.Profile.FirstName = "Imposter"
	created, err := repo.Register(ctx, other)
	if err != nil {
		t.Fatalf("register duplicate: %v", err)
	}
	if created {
		t.Fatal("duplicate registration must not create")
	}

	// Original row untouched.
	rec, err := repo.Get(ctx, "dup@example.com")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec.Profile.FirstName != "Asha" {
		t.Errorf("first name = %q, want original Asha", rec.Profile.FirstName)
	}
}

func TestAuthenticate(t *testing.T) {
	s := openTestStore(t)
	repo := s.AccountRepo()
	ctx := context.Background()

	if _, err := repo.Register(ctx, testRecord("auth@example.com")); err != nil {
		t.Fatalf("register: %v", err)
	}

	rec, err := repo.Authenticate(ctx, "auth@example.com", "secret")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if rec == nil {
		t.Fatal("expected successful authentication")
	}

	rec, err = repo.Authenticate(ctx, "auth@example.com", "wrong")
	if err != nil {
		t.Fatalf("authenticate wrong password: %v", err)
	}
	if rec != nil {
		t.Fatal("wrong password must not authenticate")
	}

	rec, err = repo.Authenticate(ctx, "ghost@example.com", "secret")
	if err != nil {
		t.Fatalf("authenticate unknown email: %v", err)
	}
	if rec != nil {
		t.Fatal("unknown email must not authenticate")
	}
}

func TestSaveProgressRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.AccountRepo()
	ctx := context.Background()

	if _, err := repo.Register(ctx, testRecord("prog@example.com")); err != nil {
		t.Fatalf("register: %v", err)
	}

	rm := &roadmap.Roadmap{
		Title:           "Web Development Path",
		Domain:          "Web Development",
		TargetNSQFLevel: 5,
		Steps: []roadmap.Step{
			{ID: "step-0", Title: "HTML", Completed: true},
			{ID: "step-1", Title: "CSS"},
		},
	}
	old := roadmap.Roadmap{Title: "Old Path", TargetNSQFLevel: 4}
	stats := learner.Stats{
		XP:               150,
		Streak:           1,
		CompletedModules: 1,
		CurrentNSQFLevel: 4,
		Badges:           []string{"first_step"},
	}

	if err := repo.SaveProgress(ctx, "prog@example.com", stats, rm, []roadmap.Roadmap{old}); err != nil {
		t.Fatalf("save progress: %v", err)
	}

	rec, err := repo.Get(ctx, "prog@example.com")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec.Stats.XP != 150 {
		t.Errorf("xp = %d, want 150", rec.Stats.XP)
	}
	if !rec.Stats.HasBadge("first_step") {
		t.Error("badge list lost in round trip")
	}
	if rec.CurrentRoadmap == nil {
		t.Fatal("expected roadmap")
	}
	if rec.CurrentRoadmap.Steps[0].ID != "step-0" || !rec.CurrentRoadmap.Steps[0].Completed {
		t.Error("step state lost in round trip")
	}
	if len(rec.History) != 1 || rec.History[0].Title != "Old Path" {
		t.Errorf("history = %+v, want one entry Old Path", rec.History)
	}
}

func TestSaveProgressClearsRoadmap(t *testing.T) {
	s := openTestStore(t)
	repo := s.AccountRepo()
	ctx := context.Background()

	rec := testRecord("clear@example.com")
	rec.CurrentRoadmap = &roadmap.Roadmap{Title: "t"}
	if _, err := repo.Register(ctx, rec); err != nil {
		t.Fatalf("register: %v", err)
	}

	if err := repo.SaveProgress(ctx, "clear@example.com", learner.Stats{}, nil, nil); err != nil {
		t.Fatalf("save progress: %v", err)
	}

	got, err := repo.Get(ctx, "clear@example.com")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.CurrentRoadmap != nil {
		t.Error("nil roadmap should clear the stored one")
	}
}

func TestReplaceHistory(t *testing.T) {
	s := openTestStore(t)
	repo := s.AccountRepo()
	ctx := context.Background()

	if _, err := repo.Register(ctx, testRecord("hist@example.com")); err != nil {
		t.Fatalf("register: %v", err)
	}

	hist := []roadmap.Roadmap{
		{Title: "Level 4 Path", TargetNSQFLevel: 4},
		{Title: "Level 5 Path", TargetNSQFLevel: 5},
	}
	if err := repo.ReplaceHistory(ctx, "hist@example.com", hist); err != nil {
		t.Fatalf("replace history: %v", err)
	}

	rec, err := repo.Get(ctx, "hist@example.com")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(rec.History) != 2 || rec.History[1].Title != "Level 5 Path" {
		t.Errorf("history = %+v, want both entries in order", rec.History)
	}

	// Only the history column changes.
	if rec.CurrentRoadmap != nil {
		t.Error("replace history must not touch the current roadmap")
	}

	if err := repo.ReplaceHistory(ctx, "hist@example.com", nil); err != nil {
		t.Fatalf("replace history with nil: %v", err)
	}
	rec, err = repo.Get(ctx, "hist@example.com")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(rec.History) != 0 {
		t.Errorf("history = %+v, want cleared", rec.History)
	}
}

func TestWritesToMissingAccountAreNoOps(t *testing.T) {
	s := openTestStore(t)
	repo := s.AccountRepo()
	ctx := context.Background()

	if err := repo.SaveProgress(ctx, "ghost@example.com", learner.Stats{XP: 9}, nil, nil); err != nil {
		t.Errorf("save progress on missing account: %v", err)
	}
	if err := repo.ReplaceStats(ctx, "ghost@example.com", learner.Stats{XP: 9}); err != nil {
		t.Errorf("replace stats on missing account: %v", err)
	}
	if err := repo.ReplaceRoadmap(ctx, "ghost@example.com", &roadmap.Roadmap{}); err != nil {
		t.Errorf("replace roadmap on missing account: %v", err)
	}
	if err := repo.ReplaceHistory(ctx, "ghost@example.com", []roadmap.Roadmap{{Title: "x"}}); err != nil {
		t.Errorf("replace history on missing account: %v", err)
	}

	// Still no account.
	rec, err := repo.Get(ctx, "ghost@example.com")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec != nil {
		t.Fatal("writes must not create accounts")
	}
}

func TestDeleteAccount(t *testing.T) {
	s := openTestStore(t)
	repo := s.AccountRepo()
	ctx := context.Background()

	if _, err := repo.Register(ctx, testRecord("gone@example.com")); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := repo.Delete(ctx, "gone@example.com"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	rec, err := repo.Get(ctx, "gone@example.com")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec != nil {
		t.Fatal("account should be gone")
	}

	// Deleting again is fine.
	if err := repo.Delete(ctx, "gone@example.com"); err != nil {
		t.Errorf("second delete: %v", err)
	}
}

func TestSessionLifecycle(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	email, err := repo.Current(ctx)
	if err != nil {
		t.Fatalf("current (empty): %v", err)
	}
	if email != "" {
		t.Fatalf("current = %q, want empty", email)
	}

	if err := repo.Set(ctx, "a@example.com"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := repo.Set(ctx, "b@example.com"); err != nil {
		t.Fatalf("set again: %v", err)
	}

	email, err = repo.Current(ctx)
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if email != "b@example.com" {
		t.Errorf("current = %q, want b@example.com (replaced)", email)
	}

	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	email, err = repo.Current(ctx)
	if err != nil {
		t.Fatalf("current after clear: %v", err)
	}
	if email != "" {
		t.Errorf("current = %q, want empty after clear", email)
	}
}

func TestAppendAndQueryLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "gemini",
			Model:        "gemini-2.5-flash",
			Purpose:      "roadmap",
			InputTokens:  100 + i,
			OutputTokens: 200,
			LatencyMs:    1500,
			Success:      true,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("events = %d, want 2 (limited)", len(events))
	}
	// Newest first.
	if events[0].Sequence <= events[1].Sequence {
		t.Errorf("order: seq %d then %d, want descending", events[0].Sequence, events[1].Sequence)
	}

	got, err := repo.GetLLMEvent(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("get event: %v", err)
	}
	if got == nil || got.Provider != "gemini" {
		t.Error("get by id failed")
	}

	missing, err := repo.GetLLMEvent(ctx, 999999)
	if err != nil {
		t.Fatalf("get missing event: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for unknown event id")
	}
}

func TestLLMUsageByPurpose(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	data := []LLMRequestEventData{
		{Provider: "gemini", Model: "m", Purpose: "roadmap", InputTokens: 100, OutputTokens: 50, LatencyMs: 1000, Success: true},
		{Provider: "gemini", Model: "m", Purpose: "roadmap", InputTokens: 200, OutputTokens: 70, LatencyMs: 2000, Success: true},
		{Provider: "gemini", Model: "m", Purpose: "jobs", InputTokens: 30, OutputTokens: 10, LatencyMs: 500, Success: true},
	}
	for i, d := range data {
		if err := repo.AppendLLMRequest(ctx, d); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	stats, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}

	byPurpose := map[string]LLMUsageStats{}
	for _, st := range stats {
		byPurpose[st.Purpose] = st
	}
	rm := byPurpose["roadmap"]
	if rm.Calls != 2 || rm.InputTokens != 300 || rm.OutputTokens != 120 {
		t.Errorf("roadmap usage = %+v", rm)
	}
	if rm.AvgLatencyMs != 1500 {
		t.Errorf("roadmap avg latency = %d, want 1500", rm.AvgLatencyMs)
	}
	if byPurpose["jobs"].Calls != 1 {
		t.Errorf("jobs usage = %+v", byPurpose["jobs"])
	}
}

func TestAppendAndQueryProgressEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	stepID := "step-1"
	err := repo.AppendProgressEvent(ctx, ProgressEventData{
		Email:        "asha@example.com",
		Action:       "step_completed",
		StepID:       &stepID,
		RoadmapTitle: "Web Development Path",
		NSQFLevel:    4,
		XPDelta:      100,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	badge := "first_step"
	err = repo.AppendProgressEvent(ctx, ProgressEventData{
		Email:   "asha@example.com",
		Action:  "badge_unlocked",
		BadgeID: &badge,
		XPDelta: 50,
	})
	if err != nil {
		t.Fatalf("append badge: %v", err)
	}

	events, err := repo.QueryProgressEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("events = %d, want 2", len(events))
	}
	// Newest first: badge unlock on top.
	if events[0].Action != "badge_unlocked" {
		t.Errorf("first action = %q, want badge_unlocked", events[0].Action)
	}
	if events[0].BadgeID == nil || *events[0].BadgeID != "first_step" {
		t.Error("badge id lost")
	}
	if events[1].StepID == nil || *events[1].StepID != "step-1" {
		t.Error("step id lost")
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Monotonically increasing with no gaps.
	for i := 1; i < len(seqs); i++ {
		if seqs[i] != seqs[i-1]+1 {
			t.Errorf("seq[%d] = %d, want %d", i, seqs[i], seqs[i-1]+1)
		}
	}
}

func TestEventsShareSequence(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendLLMRequest(ctx, LLMRequestEventData{Provider: "p", Model: "m", Purpose: "roadmap", Success: true}); err != nil {
		t.Fatalf("append llm: %v", err)
	}
	if err := repo.AppendProgressEvent(ctx, ProgressEventData{Email: "e", Action: "xp_awarded", XPDelta: 10}); err != nil {
		t.Fatalf("append progress: %v", err)
	}

	llm, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query llm: %v", err)
	}
	prog, err := repo.QueryProgressEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query progress: %v", err)
	}

	// Cross-type ordering: the progress event was appended after the LLM
	// event and must carry the higher sequence.
	if prog[0].Sequence <= llm[0].Sequence {
		t.Errorf("progress seq %d, llm seq %d: want strictly increasing across types",
			prog[0].Sequence, llm[0].Sequence)
	}
}
