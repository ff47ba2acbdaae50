package dailyplan

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/abhisek/eduvoyager/internal/llm"
)

// Service generates the day's micro-tasks for the learner's current
// roadmap step.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a daily plan service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

type planOutput struct {
	Tasks []struct {
		Text string `json:"text"`
	} `json:"tasks"`
}

// Plan generates 3 micro-tasks for the given step. Generation failures
// fall back to a generic plan built from the step title.
func (s *Service) Plan(ctx context.Context, stepTitle, stepDescription string) []Task {
	ctx = llm.WithPurpose(ctx, "daily-plan")

	req := llm.Request{
		System: dailyPlanSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildPlanUserMessage(stepTitle, stepDescription)},
		},
		Schema:      PlanSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return FallbackPlan(stepTitle)
	}

	var out planOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return FallbackPlan(stepTitle)
	}
	if len(out.Tasks) == 0 {
		return FallbackPlan(stepTitle)
	}

	tasks := make([]Task, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTask(i, t.Text)
	}
	return tasks
}

// FallbackPlan returns the generic three-task plan shown when the
// oracle is unavailable.
func FallbackPlan(stepTitle string) []Task {
	return []Task{
		newTask(0, fmt.Sprintf("Review resources for %s", stepTitle)),
		newTask(1, "Practice key concepts for 20 mins"),
		newTask(2, "Take notes on the main topic"),
	}
}

func newTask(i int, text string) Task {
	return Task{
		ID:   fmt.Sprintf("daily-task-%s-%d", uuid.NewString()[:8], i),
		Text: text,
		Type: "core",
	}
}
