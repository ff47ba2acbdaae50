package assessment

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/eduvoyager/internal/llm"
)

// Service generates the adaptive placement questionnaire.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates an assessment service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

type questionsOutput struct {
	Questions []Question `json:"questions"`
}

// Questions generates the placement questionnaire for a learner. The
// assessment must never block onboarding, so any oracle failure falls back
// to the static question set and no error is returned.
func (s *Service) Questions(ctx context.Context, designation, domain string, age int) []Question {
	ctx = llm.WithPurpose(ctx, "assessment")

	req := llm.Request{
		System: assessmentSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildAssessmentUserMessage(designation, domain, age)},
		},
		Schema:      QuestionsSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return FallbackQuestions(domain)
	}

	var out questionsOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return FallbackQuestions(domain)
	}
	if len(out.Questions) == 0 {
		return FallbackQuestions(domain)
	}

	return out.Questions
}

// FallbackQuestions is the static questionnaire used when the oracle is
// unreachable or returns garbage.
func FallbackQuestions(domain string) []Question {
	return []Question{
		{
			Question:      fmt.Sprintf("What is your current experience with %s?", domain),
			Options:       []string{"Complete Beginner", "Basic Knowledge", "Intermediate", "Advanced"},
			AllowMultiple: false,
		},
		{
			Question:      "How much time can you dedicate daily?",
			Options:       []string{"Less than 1 hour", "1-2 hours", "2-4 hours", "Full time"},
			AllowMultiple: false,
		},
		{
			Question:      "What are your preferred learning styles? (Select all that apply)",
			Options:       []string{"Video Tutorials", "Reading Documentation", "Hands-on Projects", "Mentorship", "Audiobooks"},
			AllowMultiple: true,
		},
		{
			Question:      "What is your ultimate goal?",
			Options:       []string{"Get a Job", "Start a Business", "Hobby/Fun", "Academic Success"},
			AllowMultiple: false,
		},
		{
			Question:      "What is your budget?",
			Options:       []string{"Free only", "Low budget", "Premium courses"},
			AllowMultiple: false,
		},
	}
}
