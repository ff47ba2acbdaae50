package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/eduvoyager/internal/app"
	"github.com/abhisek/eduvoyager/internal/arcade"
	"github.com/abhisek/eduvoyager/internal/assessment"
	"github.com/abhisek/eduvoyager/internal/dailyplan"
	"github.com/abhisek/eduvoyager/internal/jobs"
	"github.com/abhisek/eduvoyager/internal/leaderboard"
	"github.com/abhisek/eduvoyager/internal/llm"
	"github.com/abhisek/eduvoyager/internal/progress"
	"github.com/abhisek/eduvoyager/internal/roadmapgen"
	"github.com/abhisek/eduvoyager/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	eventRepo := st.EventRepo()
	manager := progress.NewManager(st.AccountRepo(), st.SessionRepo(), eventRepo)

	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		// The questionnaire, arcade, jobs and daily plan all degrade to
		// static fallbacks; roadmap generation will surface the error.
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "AI features will fall back to canned content.")
		provider = llm.NewMockProvider()
	}

	resumed, err := manager.Resume(ctx)
	if err != nil {
		return fmt.Errorf("resume session: %w", err)
	}

	return app.Run(app.Deps{
		Manager:    manager,
		Assessment: assessment.NewService(provider, assessment.DefaultConfig()),
		Roadmaps:   roadmapgen.NewService(provider, roadmapgen.DefaultConfig()),
		Arcade:     arcade.NewService(provider, arcade.DefaultConfig()),
		Jobs:       jobs.NewService(provider, jobs.DefaultConfig()),
		Daily:      dailyplan.NewService(provider, dailyplan.DefaultConfig()),
		Board:      leaderboard.Mock{},
		Resumed:    resumed,
	})
}
