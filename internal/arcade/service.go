package arcade

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/abhisek/eduvoyager/internal/llm"
)

// Service generates revision quiz rounds from the learner's roadmap
// topics. A failed generation yields an empty round; the UI shows "no
// questions available" rather than an error screen.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates an arcade service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

type roundOutput struct {
	Questions []Question `json:"questions"`
}

// Round generates a 5-question revision quiz on the given topic.
func (s *Service) Round(ctx context.Context, topic string, difficulty Difficulty) []Question {
	ctx = llm.WithPurpose(ctx, "arcade")

	req := llm.Request{
		System: arcadeSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildRoundUserMessage(topic, difficulty)},
		},
		Schema:      RoundSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil
	}

	var out roundOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil
	}

	// Oracle ids are replaced with locally unique ones.
	for i := range out.Questions {
		out.Questions[i].ID = fmt.Sprintf("q-%d-%s", i, uuid.NewString()[:8])
	}
	return out.Questions
}
