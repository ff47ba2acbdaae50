package progress

import (
	"context"
	"fmt"
	"os"

	"github.com/abhisek/eduvoyager/internal/badges"
	"github.com/abhisek/eduvoyager/internal/learner"
	"github.com/abhisek/eduvoyager/internal/roadmap"
	"github.com/abhisek/eduvoyager/internal/store"
)

// StepXP is awarded when a roadmap step transitions to complete.
const StepXP = 100

// InitialLevelOffset is subtracted from the roadmap target to place a
// learner's starting NSQF level after the first assessment.
const InitialLevelOffset = 4

// MaxNSQFLevel is the top of the National Skills Qualification Framework.
const MaxNSQFLevel = 10

// DailyTaskXP is awarded per completed daily task; DayCompleteBonus lands
// when every task of the day is done.
const (
	DailyTaskXP      = 10
	DayCompleteBonus = 50
)

// Progress event action names.
const (
	ActionAssessmentCompleted = "assessment_completed"
	ActionStepCompleted       = "step_completed"
	ActionStepUncompleted     = "step_uncompleted"
	ActionLevelAdvanced       = "level_advanced"
	ActionLevelRetreated      = "level_retreated"
	ActionXPAwarded           = "xp_awarded"
	ActionGamePlayed          = "game_played"
	ActionBadgeUnlocked       = "badge_unlocked"
)

// gameMultipliers maps arcade difficulty to XP per point of score.
var gameMultipliers = map[string]int{
	"easy":   10,
	"medium": 20,
	"hard":   30,
}

// GainResult reports the outcome of an XP-earning transition.
type GainResult struct {
	XPGained int // includes badge bonuses
	Unlocked []badges.Badge
	Stats    learner.Stats
}

// StepToggle reports the outcome of toggling a roadmap step.
type StepToggle struct {
	Step         roadmap.Step
	CompletedNow bool
	GainResult
}

// Session is the signed-in learner's working state. All progression
// mutations flow through it: each one updates the in-memory snapshot,
// persists stats, roadmap and history in a single write, and appends a
// progress event. There is exactly one Session per signed-in account.
type Session struct {
	Profile learner.Profile
	Stats   learner.Stats
	Roadmap *roadmap.Roadmap
	History []roadmap.Roadmap

	accounts store.AccountRepo
	events   store.EventRepo
}

// NewSession builds a Session from a loaded account record.
func NewSession(rec *store.AccountRecord, accounts store.AccountRepo, events store.EventRepo) *Session {
	return &Session{
		Profile:  rec.Profile,
		Stats:    rec.Stats,
		Roadmap:  rec.CurrentRoadmap,
		History:  rec.History,
		accounts: accounts,
		events:   events,
	}
}

// CompleteAssessment installs the roadmap produced from the adaptive
// questionnaire and places the learner InitialLevelOffset levels below the
// target, floored at 1. A fresh assessment is a full restart: any previous
// roadmap and its history are discarded, not archived.
func (s *Session) CompleteAssessment(ctx context.Context, rm *roadmap.Roadmap) error {
	s.Roadmap = rm
	s.History = nil

	level := rm.TargetNSQFLevel - InitialLevelOffset
	if level < 1 {
		level = 1
	}
	s.Stats.CurrentNSQFLevel = level

	if err := s.persist(ctx); err != nil {
		return err
	}
	s.appendEvent(ctx, ActionAssessmentCompleted, nil, 0, nil)
	return nil
}

// ToggleStep flips the completion state of the step with the given id.
// Completing a step awards StepXP and counts a module. Un-completing
// persists the flipped flag but leaves stats untouched: XP and the module
// count are never taken back. An unknown id is a no-op and returns nil.
func (s *Session) ToggleStep(ctx context.Context, stepID string) (*StepToggle, error) {
	if s.Roadmap == nil {
		return nil, nil
	}
	step := s.Roadmap.FindStep(stepID)
	if step == nil {
		return nil, nil
	}

	step.Completed = !step.Completed

	var gain *GainResult
	if step.Completed {
		var err error
		gain, err = s.applyGain(ctx, StepXP, 1, 0, ActionStepCompleted, &step.ID)
		if err != nil {
			return nil, err
		}
	} else {
		if err := s.persist(ctx); err != nil {
			return nil, err
		}
		s.appendEvent(ctx, ActionStepUncompleted, &step.ID, 0, nil)
		gain = &GainResult{Stats: s.Stats}
	}

	return &StepToggle{
		Step:         *step,
		CompletedNow: step.Completed,
		GainResult:   *gain,
	}, nil
}

// AdvanceLevel installs the next-level roadmap produced by the oracle.
// The superseded roadmap is pushed onto history and the learner's level
// becomes one below the new target.
func (s *Session) AdvanceLevel(ctx context.Context, next *roadmap.Roadmap) error {
	if s.Roadmap != nil {
		s.History = append(s.History, *s.Roadmap)
	}
	s.Roadmap = next
	s.Stats.CurrentNSQFLevel = clampLevel(next.TargetNSQFLevel - 1)

	if err := s.persist(ctx); err != nil {
		return err
	}
	s.appendEvent(ctx, ActionLevelAdvanced, nil, 0, nil)
	return nil
}

// RetreatLevel restores the most recent roadmap from history, discarding
// the current one. Step completion recorded on the discarded roadmap is
// lost and stats are left exactly as they are, including the NSQF level.
// Returns false without changes when there is no history.
func (s *Session) RetreatLevel(ctx context.Context) (bool, error) {
	if len(s.History) == 0 {
		return false, nil
	}

	restored := s.History[len(s.History)-1]
	s.History = s.History[:len(s.History)-1]
	s.Roadmap = &restored

	if err := s.persist(ctx); err != nil {
		return false, err
	}
	s.appendEvent(ctx, ActionLevelRetreated, nil, 0, nil)
	return true, nil
}

// AwardXP grants a flat XP amount, used by daily tasks and similar
// non-step sources.
func (s *Session) AwardXP(ctx context.Context, amount int) (*GainResult, error) {
	return s.applyGain(ctx, amount, 0, 0, ActionXPAwarded, nil)
}

// RecordGameResult converts an arcade score into XP using the difficulty
// multiplier and extends the streak by one.
func (s *Session) RecordGameResult(ctx context.Context, difficulty string, score int) (*GainResult, error) {
	mult, ok := gameMultipliers[difficulty]
	if !ok {
		mult = gameMultipliers["easy"]
	}
	return s.applyGain(ctx, score*mult, 0, 1, ActionGamePlayed, nil)
}

// applyGain is the single mutation path for stats. It applies the deltas,
// bumps a zero streak to one on any positive XP gain, runs the badge
// evaluator, persists, and appends events for the action and each unlock.
func (s *Session) applyGain(ctx context.Context, xp, modules, streakBonus int, action string, stepID *string) (*GainResult, error) {
	s.Stats.XP += xp
	s.Stats.CompletedModules += modules
	if s.Stats.CompletedModules < 0 {
		s.Stats.CompletedModules = 0
	}
	s.Stats.Streak += streakBonus
	if xp > 0 && s.Stats.Streak == 0 {
		s.Stats.Streak = 1
	}

	before := s.Stats.XP
	updated, unlocked := badges.Evaluate(s.Stats)
	s.Stats = updated

	if err := s.persist(ctx); err != nil {
		return nil, err
	}

	s.appendEvent(ctx, action, stepID, xp, nil)
	for _, b := range unlocked {
		id := b.ID
		s.appendEvent(ctx, ActionBadgeUnlocked, nil, b.XPBonus, &id)
	}

	return &GainResult{
		XPGained: xp + (s.Stats.XP - before),
		Unlocked: unlocked,
		Stats:    s.Stats,
	}, nil
}

// persist writes stats, roadmap and history as one atomic update.
func (s *Session) persist(ctx context.Context) error {
	if err := s.accounts.SaveProgress(ctx, s.Profile.Email, s.Stats, s.Roadmap, s.History); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}

// appendEvent records a progress event. Event logging is best-effort and
// never fails the transition.
func (s *Session) appendEvent(ctx context.Context, action string, stepID *string, xpDelta int, badgeID *string) {
	data := store.ProgressEventData{
		Email:     s.Profile.Email,
		Action:    action,
		StepID:    stepID,
		NSQFLevel: s.Stats.CurrentNSQFLevel,
		XPDelta:   xpDelta,
		BadgeID:   badgeID,
	}
	if s.Roadmap != nil {
		data.RoadmapTitle = s.Roadmap.Title
	}
	if err := s.events.AppendProgressEvent(ctx, data); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log progress event: %v\n", err)
	}
}

func clampLevel(level int) int {
	if level < 1 {
		return 1
	}
	if level > MaxNSQFLevel {
		return MaxNSQFLevel
	}
	return level
}
