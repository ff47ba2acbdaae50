package jobboard

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	jobsgen "github.com/abhisek/eduvoyager/internal/jobs"
	"github.com/abhisek/eduvoyager/internal/progress"
	"github.com/abhisek/eduvoyager/internal/router"
	"github.com/abhisek/eduvoyager/internal/screen"
	"github.com/abhisek/eduvoyager/internal/ui/layout"
	"github.com/abhisek/eduvoyager/internal/ui/theme"
)

type jobsReadyMsg struct {
	Jobs []jobsgen.Job
}

type spinnerTickMsg time.Time

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// JobBoardScreen lists oracle-matched job recommendations.
type JobBoardScreen struct {
	sess    *progress.Session
	service *jobsgen.Service

	jobs         []jobsgen.Job
	cursor       int
	expanded     map[int]bool
	loaded       bool
	spinnerFrame int
}

var _ screen.Screen = (*JobBoardScreen)(nil)
var _ screen.KeyHintProvider = (*JobBoardScreen)(nil)

// New creates a JobBoardScreen for the signed-in session.
func New(sess *progress.Session, service *jobsgen.Service) *JobBoardScreen {
	return &JobBoardScreen{
		sess:     sess,
		service:  service,
		expanded: make(map[int]bool),
	}
}

func (s *JobBoardScreen) Init() tea.Cmd {
	return tea.Batch(s.spinnerTick(), func() tea.Msg {
		// Skills covered so far are the completed step titles.
		var skills []string
		if rm := s.sess.Roadmap; rm != nil {
			for _, step := range rm.Steps {
				if step.Completed {
					skills = append(skills, step.Title)
				}
			}
		}
		jobs := s.service.Recommend(context.Background(), s.sess.Profile.Designation, skills)
		return jobsReadyMsg{Jobs: jobs}
	})
}

func (s *JobBoardScreen) Title() string {
	return "Job Board"
}

func (s *JobBoardScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *JobBoardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case spinnerTickMsg:
		s.spinnerFrame++
		if !s.loaded {
			return s, s.spinnerTick()
		}
		return s, nil

	case jobsReadyMsg:
		s.jobs = msg.Jobs
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.cursor > 0 {
				s.cursor--
			}
		case "down", "j":
			if s.cursor < len(s.jobs)-1 {
				s.cursor++
			}
		case "enter":
			s.expanded[s.cursor] = !s.expanded[s.cursor]
		}
	}
	return s, nil
}

func (s *JobBoardScreen) View(width, height int) string {
	if !s.loaded {
		frame := spinnerFrames[s.spinnerFrame%len(spinnerFrames)]
		content := lipgloss.NewStyle().Foreground(theme.Primary).Render(frame) + "  " +
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Matching roles to your voyage...")
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, job := range s.jobs {
		prefix := "  "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.cursor {
			prefix = "▸ "
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}

		match := lipgloss.NewStyle().Foreground(theme.Success).
			Render(fmt.Sprintf("%d%% match", job.MatchScore))
		line := fmt.Sprintf("%s%s — %s  %s", prefix, job.Title, job.Company, match)
		b.WriteString("  " + style.Render(line) + "\n")

		if s.expanded[i] {
			dim := lipgloss.NewStyle().Foreground(theme.TextDim)
			b.WriteString(dim.Render(fmt.Sprintf("      %s  •  %s  •  %s",
				job.Location, job.Type, job.SalaryRange)) + "\n")
			b.WriteString(dim.Render(fmt.Sprintf("      Skills: %s",
				strings.Join(job.Skills, ", "))) + "\n")
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).
				Render(fmt.Sprintf("      %s: %s", job.Platform, job.URL)) + "\n")
		}
	}

	return b.String()
}

func (s *JobBoardScreen) spinnerTick() tea.Cmd {
	return tea.Tick(120*time.Millisecond, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}
