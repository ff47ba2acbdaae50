package roadmapgen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/eduvoyager/internal/assessment"
	"github.com/abhisek/eduvoyager/internal/learner"
	"github.com/abhisek/eduvoyager/internal/llm"
	"github.com/abhisek/eduvoyager/internal/roadmap"
)

// Service generates learning roadmaps. Unlike the questionnaire and the
// recommendation services, roadmap generation has no static fallback:
// errors propagate so the caller can show them and keep the current state.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a roadmap generation service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Generate produces the first roadmap for a learner from their profile and
// questionnaire answers. The result is normalized: fresh step ids,
// everything incomplete, soft-skill fallback applied.
func (s *Service) Generate(ctx context.Context, profile learner.Profile, domain string, answers []assessment.Answer) (*roadmap.Roadmap, error) {
	ctx = llm.WithPurpose(ctx, "roadmap")

	req := llm.Request{
		System: roadmapSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildRoadmapUserMessage(profile, domain, answers)},
		},
		Schema:      RoadmapSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("roadmap generation: %w", err)
	}

	var rm roadmap.Roadmap
	if err := json.Unmarshal(resp.Content, &rm); err != nil {
		return nil, fmt.Errorf("parse roadmap response: %w", err)
	}

	roadmap.Normalize(&rm, domain, true)
	return &rm, nil
}

// NextLevel produces the follow-up roadmap one NSQF level above the
// current one (capped at 10), oriented around the learner's chosen focus.
// Step ids carry a unique suffix so they never collide with the previous
// roadmap's.
func (s *Service) NextLevel(ctx context.Context, current *roadmap.Roadmap, nextFocus string) (*roadmap.Roadmap, error) {
	ctx = llm.WithPurpose(ctx, "next-level")

	nextLevel := current.TargetNSQFLevel + 1
	if nextLevel > 10 {
		nextLevel = 10
	}

	req := llm.Request{
		System: roadmapSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildNextLevelUserMessage(current, nextFocus, nextLevel)},
		},
		Schema:      RoadmapSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("next-level roadmap generation: %w", err)
	}

	var rm roadmap.Roadmap
	if err := json.Unmarshal(resp.Content, &rm); err != nil {
		return nil, fmt.Errorf("parse next-level roadmap response: %w", err)
	}

	roadmap.Normalize(&rm, current.Domain, false)
	return &rm, nil
}
