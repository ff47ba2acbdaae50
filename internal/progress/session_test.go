package progress

import (
	"context"
	"testing"

	"github.com/abhisek/eduvoyager/internal/learner"
	"github.com/abhisek/eduvoyager/internal/roadmap"
	"github.com/abhisek/eduvoyager/internal/store"
)

func newTestSession(t *testing.T) (*Session, *mockAccountRepo, *mockEventRepo) {
	t.Helper()
	accounts := newMockAccountRepo()
	events := &mockEventRepo{}

	rec := store.AccountRecord{
		Profile:  learner.Profile{Email: "asha@example.com", FirstName: "Asha"},
		Password: "pw",
		Stats:    learner.Stats{CurrentNSQFLevel: 1, Badges: []string{}},
	}
	if _, err := accounts.Register(context.Background(), rec); err != nil {
		t.Fatalf("seed account: %v", err)
	}

	return NewSession(&rec, accounts, events), accounts, events
}

func testRoadmap(target int) *roadmap.Roadmap {
	return &roadmap.Roadmap{
		Title:           "Web Development Path",
		Domain:          "Web Development",
		TargetNSQFLevel: target,
		Steps: []roadmap.Step{
			{ID: "step-0", Title: "HTML Basics"},
			{ID: "step-1", Title: "CSS Fundamentals"},
			{ID: "step-2", Title: "JavaScript"},
		},
	}
}

func TestCompleteAssessmentSetsInitialLevel(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		target int
		want   int
	}{
		{8, 4}, // target - 4
		{5, 1},
		{3, 1}, // floored at 1
		{10, 6},
	}

	for _, tt := range tests {
		s, _, _ := newTestSession(t)
		if err := s.CompleteAssessment(ctx, testRoadmap(tt.target)); err != nil {
			t.Fatalf("complete assessment (target %d): %v", tt.target, err)
		}
		if s.Stats.CurrentNSQFLevel != tt.want {
			t.Errorf("target %d: level = %d, want %d", tt.target, s.Stats.CurrentNSQFLevel, tt.want)
		}
	}
}

func TestCompleteAssessmentResetsHistory(t *testing.T) {
	s, accounts, _ := newTestSession(t)
	ctx := context.Background()

	// Build up a voyage with history, then start over.
	if err := s.CompleteAssessment(ctx, testRoadmap(6)); err != nil {
		t.Fatalf("first assessment: %v", err)
	}
	if err := s.AdvanceLevel(ctx, testRoadmap(7)); err != nil {
		t.Fatalf("advance: %v", err)
	}

	second := testRoadmap(7)
	second.Title = "Data Science Path"
	if err := s.CompleteAssessment(ctx, second); err != nil {
		t.Fatalf("second assessment: %v", err)
	}

	if len(s.History) != 0 {
		t.Errorf("history = %+v, want empty after re-assessment", s.History)
	}
	if s.Roadmap.Title != "Data Science Path" {
		t.Errorf("active roadmap = %q", s.Roadmap.Title)
	}

	saved := accounts.records["asha@example.com"]
	if len(saved.History) != 0 {
		t.Errorf("persisted history = %d entries, want 0", len(saved.History))
	}
}

func TestToggleStepCompletion(t *testing.T) {
	s, accounts, events := newTestSession(t)
	ctx := context.Background()
	if err := s.CompleteAssessment(ctx, testRoadmap(6)); err != nil {
		t.Fatalf("assessment: %v", err)
	}

	res, err := s.ToggleStep(ctx, "step-0")
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if res == nil || !res.CompletedNow {
		t.Fatal("expected step to complete")
	}

	// 100 step XP + 50 first_step bonus.
	if s.Stats.XP != 150 {
		t.Errorf("xp = %d, want 150", s.Stats.XP)
	}
	if s.Stats.CompletedModules != 1 {
		t.Errorf("modules = %d, want 1", s.Stats.CompletedModules)
	}
	if s.Stats.Streak != 1 {
		t.Errorf("streak = %d, want 1 (bumped from zero)", s.Stats.Streak)
	}
	if !s.Stats.HasBadge("first_step") {
		t.Error("first_step badge missing")
	}
	if res.XPGained != 150 {
		t.Errorf("gain = %d, want 150 including bonus", res.XPGained)
	}

	// Persisted composite state matches the in-memory snapshot.
	saved := accounts.records["asha@example.com"]
	if saved.Stats.XP != 150 {
		t.Errorf("persisted xp = %d, want 150", saved.Stats.XP)
	}
	if !saved.CurrentRoadmap.Steps[0].Completed {
		t.Error("persisted roadmap lost step completion")
	}

	wantActions := []string{"assessment_completed", "step_completed", "badge_unlocked"}
	got := events.actions()
	if len(got) != len(wantActions) {
		t.Fatalf("events = %v, want %v", got, wantActions)
	}
	for i := range wantActions {
		if got[i] != wantActions[i] {
			t.Errorf("event[%d] = %q, want %q", i, got[i], wantActions[i])
		}
	}
}

func TestToggleStepBackKeepsXP(t *testing.T) {
	s, _, _ := newTestSession(t)
	ctx := context.Background()
	if err := s.CompleteAssessment(ctx, testRoadmap(6)); err != nil {
		t.Fatalf("assessment: %v", err)
	}

	if _, err := s.ToggleStep(ctx, "step-0"); err != nil {
		t.Fatalf("toggle on: %v", err)
	}
	res, err := s.ToggleStep(ctx, "step-0")
	if err != nil {
		t.Fatalf("toggle off: %v", err)
	}
	if res.CompletedNow {
		t.Fatal("expected step to un-complete")
	}

	// Un-completing leaves every stat in place.
	if s.Stats.CompletedModules != 1 {
		t.Errorf("modules = %d, want 1 (never decremented)", s.Stats.CompletedModules)
	}
	if s.Stats.XP != 150 {
		t.Errorf("xp = %d, want 150 retained", s.Stats.XP)
	}
	if !s.Stats.HasBadge("first_step") {
		t.Error("unlocked badges are permanent")
	}

	// Re-completing awards step XP and a module again, but not the badge
	// bonus.
	res, err = s.ToggleStep(ctx, "step-0")
	if err != nil {
		t.Fatalf("toggle on again: %v", err)
	}
	if s.Stats.XP != 250 {
		t.Errorf("xp = %d, want 250", s.Stats.XP)
	}
	if s.Stats.CompletedModules != 2 {
		t.Errorf("modules = %d, want 2", s.Stats.CompletedModules)
	}
	if len(res.Unlocked) != 0 {
		t.Errorf("unlocked = %v, want none on re-completion", res.Unlocked)
	}
}

func TestToggleUnknownStepIsNoOp(t *testing.T) {
	s, accounts, events := newTestSession(t)
	ctx := context.Background()
	if err := s.CompleteAssessment(ctx, testRoadmap(6)); err != nil {
		t.Fatalf("assessment: %v", err)
	}
	savesBefore := len(accounts.saves)
	eventsBefore := len(events.progressEvents)

	res, err := s.ToggleStep(ctx, "no-such-step")
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if res != nil {
		t.Fatal("expected nil result for unknown step")
	}
	if len(accounts.saves) != savesBefore {
		t.Error("no-op toggle must not persist")
	}
	if len(events.progressEvents) != eventsBefore {
		t.Error("no-op toggle must not append events")
	}
}

func TestToggleWithoutRoadmapIsNoOp(t *testing.T) {
	s, _, _ := newTestSession(t)

	res, err := s.ToggleStep(context.Background(), "step-0")
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if res != nil {
		t.Fatal("expected nil result with no roadmap")
	}
}

func TestAdvanceLevel(t *testing.T) {
	s, _, _ := newTestSession(t)
	ctx := context.Background()
	if err := s.CompleteAssessment(ctx, testRoadmap(6)); err != nil {
		t.Fatalf("assessment: %v", err)
	}
	if _, err := s.ToggleStep(ctx, "step-0"); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	next := testRoadmap(7)
	next.Title = "Advanced Web Path"
	if err := s.AdvanceLevel(ctx, next); err != nil {
		t.Fatalf("advance: %v", err)
	}

	if s.Roadmap.Title != "Advanced Web Path" {
		t.Errorf("active roadmap = %q", s.Roadmap.Title)
	}
	if s.Stats.CurrentNSQFLevel != 6 {
		t.Errorf("level = %d, want 6 (target - 1)", s.Stats.CurrentNSQFLevel)
	}
	if len(s.History) != 1 {
		t.Fatalf("history = %d entries, want 1", len(s.History))
	}
	// The archived roadmap keeps its completion state.
	if !s.History[0].Steps[0].Completed {
		t.Error("archived roadmap lost step completion")
	}
}

func TestRetreatLevel(t *testing.T) {
	s, _, _ := newTestSession(t)
	ctx := context.Background()
	if err := s.CompleteAssessment(ctx, testRoadmap(6)); err != nil {
		t.Fatalf("assessment: %v", err)
	}
	if _, err := s.ToggleStep(ctx, "step-0"); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if err := s.AdvanceLevel(ctx, testRoadmap(7)); err != nil {
		t.Fatalf("advance: %v", err)
	}
	// Progress on the advanced roadmap will be discarded by the retreat.
	if _, err := s.ToggleStep(ctx, "step-1"); err != nil {
		t.Fatalf("toggle on advanced: %v", err)
	}

	ok, err := s.RetreatLevel(ctx)
	if err != nil {
		t.Fatalf("retreat: %v", err)
	}
	if !ok {
		t.Fatal("expected retreat to succeed")
	}

	if s.Roadmap.TargetNSQFLevel != 6 {
		t.Errorf("restored target = %d, want 6", s.Roadmap.TargetNSQFLevel)
	}
	if !s.Roadmap.Steps[0].Completed {
		t.Error("restored roadmap lost its own completion state")
	}
	// Retreat only pops history; stats stay where the advance left them.
	if s.Stats.CurrentNSQFLevel != 6 {
		t.Errorf("level = %d, want 6 (unchanged by retreat)", s.Stats.CurrentNSQFLevel)
	}
	if len(s.History) != 0 {
		t.Errorf("history = %d entries, want 0 after pop", len(s.History))
	}
}

func TestRetreatWithEmptyHistory(t *testing.T) {
	s, accounts, _ := newTestSession(t)
	ctx := context.Background()
	if err := s.CompleteAssessment(ctx, testRoadmap(6)); err != nil {
		t.Fatalf("assessment: %v", err)
	}
	savesBefore := len(accounts.saves)

	ok, err := s.RetreatLevel(ctx)
	if err != nil {
		t.Fatalf("retreat: %v", err)
	}
	if ok {
		t.Fatal("retreat with no history must report false")
	}
	if len(accounts.saves) != savesBefore {
		t.Error("failed retreat must not persist")
	}
}

func TestAwardXPCrossesEliteThreshold(t *testing.T) {
	s, _, _ := newTestSession(t)
	ctx := context.Background()
	s.Stats = learner.Stats{
		XP:               980,
		Streak:           2,
		CompletedModules: 3,
		CurrentNSQFLevel: 4,
		Badges:           []string{"first_step", "xp_hunter"},
	}

	res, err := s.AwardXP(ctx, 100)
	if err != nil {
		t.Fatalf("award: %v", err)
	}

	// 980 + 100 = 1080 crosses 1000; elite adds 500.
	if s.Stats.XP != 1580 {
		t.Errorf("xp = %d, want 1580", s.Stats.XP)
	}
	if len(res.Unlocked) != 1 || res.Unlocked[0].ID != "elite" {
		t.Errorf("unlocked = %v, want [elite]", res.Unlocked)
	}
	if res.XPGained != 600 {
		t.Errorf("gain = %d, want 600 (100 + 500 bonus)", res.XPGained)
	}
}

func TestRecordGameResult(t *testing.T) {
	s, _, events := newTestSession(t)
	ctx := context.Background()
	s.Stats.Streak = 2

	res, err := s.RecordGameResult(ctx, "hard", 5)
	if err != nil {
		t.Fatalf("record: %v", err)
	}

	// 5 points x 30 (hard).
	if s.Stats.XP != 150 {
		t.Errorf("xp = %d, want 150", s.Stats.XP)
	}
	if s.Stats.Streak != 3 {
		t.Errorf("streak = %d, want 3 (incremented)", s.Stats.Streak)
	}
	if res.XPGained != 150 {
		t.Errorf("gain = %d, want 150", res.XPGained)
	}
	if events.progressEvents[len(events.progressEvents)-1].Action != ActionGamePlayed {
		t.Error("expected game_played event")
	}
}

func TestRecordGameResultUnknownDifficulty(t *testing.T) {
	s, _, _ := newTestSession(t)

	if _, err := s.RecordGameResult(context.Background(), "nightmare", 4); err != nil {
		t.Fatalf("record: %v", err)
	}
	// Falls back to the easy multiplier.
	if s.Stats.XP != 40 {
		t.Errorf("xp = %d, want 40", s.Stats.XP)
	}
}

func TestGameStreakUnlocksBadge(t *testing.T) {
	s, _, _ := newTestSession(t)
	ctx := context.Background()
	s.Stats.Streak = 2

	res, err := s.RecordGameResult(ctx, "easy", 1)
	if err != nil {
		t.Fatalf("record: %v", err)
	}

	// Streak reaches 3: streak_week unlocks through the same evaluator
	// path as every other gain.
	if !s.Stats.HasBadge("streak_week") {
		t.Error("streak_week should unlock at streak 3")
	}
	if len(res.Unlocked) != 1 || res.Unlocked[0].ID != "streak_week" {
		t.Errorf("unlocked = %v, want [streak_week]", res.Unlocked)
	}
	// 10 game XP + 100 badge bonus.
	if s.Stats.XP != 110 {
		t.Errorf("xp = %d, want 110", s.Stats.XP)
	}
}
