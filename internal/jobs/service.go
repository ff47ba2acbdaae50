package jobs

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/abhisek/eduvoyager/internal/llm"
)

// Service generates job recommendations matched to the learner's target
// designation and the skills their roadmap has covered so far.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a jobs service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

type jobsOutput struct {
	Jobs []Job `json:"jobs"`
}

// Recommend generates up to 5 postings for the designation. On any
// generation failure it falls back to a single placeholder posting so
// the jobs screen always has something to render.
func (s *Service) Recommend(ctx context.Context, designation string, skills []string) []Job {
	ctx = llm.WithPurpose(ctx, "job-recommendations")

	req := llm.Request{
		System: jobsSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildJobsUserMessage(designation, skills)},
		},
		Schema:      JobsSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return FallbackJobs()
	}

	var out jobsOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return FallbackJobs()
	}
	if len(out.Jobs) == 0 {
		return FallbackJobs()
	}

	for i := range out.Jobs {
		out.Jobs[i].ID = fmt.Sprintf("job-%d-%s", i, uuid.NewString()[:8])
	}
	return out.Jobs
}

// FallbackJobs returns the placeholder recommendation shown when the
// oracle is unavailable.
func FallbackJobs() []Job {
	return []Job{
		{
			ID:          fmt.Sprintf("job-0-%s", uuid.NewString()[:8]),
			Title:       "Junior Developer",
			Company:     "Tech Solutions Inc.",
			Location:    "Remote",
			Type:        TypeFullTime,
			SalaryRange: "$60k - $80k",
			Platform:    PlatformLinkedIn,
			URL:         "https://www.linkedin.com/jobs/search/?keywords=Junior+Developer",
			MatchScore:  95,
			Skills:      []string{"React", "TypeScript"},
		},
	}
}
